// Package services implements the business operations behind the ports.
// Every operation returns either the domain result or an *apperr.Error;
// store errors never leak past this package unclassified.
package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/jcmexdev/ecommerce-api/internal/core/domain/apperr"
)

// Pagination convention: skip defaults to 0, take to 5. Privileged order
// listings additionally clamp take to maxTake.
const (
	defaultTake = 5
	maxTake     = 50
)

// classify maps a store error onto the service error contract. Errors that
// already carry a kind pass through; a missing row becomes the given
// NotFound; anything else is an internal fault.
func classify(err error, notFoundCode, notFoundMsg string) error {
	var ae *apperr.Error
	if errors.As(err, &ae) {
		return ae
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperr.NotFound(notFoundCode, notFoundMsg)
	}
	return apperr.Internal(err)
}

// normalizePage floors skip at 0 and applies the default page size.
func normalizePage(skip, take int) (int, int) {
	if skip < 0 {
		skip = 0
	}
	if take <= 0 {
		take = defaultTake
	}
	return skip, take
}
