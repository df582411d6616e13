// Package apperr defines the single error contract every service operation
// returns. The HTTP layer maps Kind to a status class and renders the stable
// Code so clients can switch on it without parsing messages.
package apperr

import (
	"errors"
	"fmt"
)

type Kind int

const (
	KindValidation Kind = iota + 1
	KindUnauthorized
	KindForbidden
	KindNotFound
	KindConflict
	KindInternal
)

// Stable error codes, part of the API contract.
const (
	CodeUnprocessable       = "UNPROCESSABLE_ENTITY"
	CodeUnauthorized        = "UNAUTHORIZED"
	CodeForbidden           = "FORBIDDEN"
	CodeInternal            = "INTERNAL_EXCEPTION"
	CodeUserNotFound        = "USER_NOT_FOUND"
	CodeUserExists          = "USER_ALREADY_EXISTS"
	CodeIncorrectPassword   = "INCORRECT_PASSWORD"
	CodeProductNotFound     = "PRODUCT_NOT_FOUND"
	CodeAddressNotFound     = "ADDRESS_NOT_FOUND"
	CodeAddressNotOwned     = "ADDRESS_DOES_NOT_BELONG_TO_USER"
	CodeCartItemNotFound    = "CART_ITEM_NOT_FOUND"
	CodeCartItemNotOwned    = "CART_ITEM_DOES_NOT_BELONG_TO_USER"
	CodeOrderNotFound       = "ORDER_NOT_FOUND"
	CodeOrderNotOwned       = "ORDER_DOES_NOT_BELONG_TO_USER"
	CodeInvalidStatus       = "INVALID_ORDER_STATUS"
	CodeIllegalTransition   = "ILLEGAL_STATUS_TRANSITION"
	CodeSearchQueryRequired = "SEARCH_QUERY_REQUIRED"
)

// FieldIssue is one field-level validation problem.
type FieldIssue struct {
	Field string `json:"field"`
	Issue string `json:"issue"`
}

type Error struct {
	Kind    Kind
	Code    string
	Message string
	Fields  []FieldIssue
	cause   error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error {
	return e.cause
}

func Validation(code, msg string, fields ...FieldIssue) *Error {
	return &Error{Kind: KindValidation, Code: code, Message: msg, Fields: fields}
}

func Unauthorized(code, msg string) *Error {
	return &Error{Kind: KindUnauthorized, Code: code, Message: msg}
}

func Forbidden(code, msg string) *Error {
	return &Error{Kind: KindForbidden, Code: code, Message: msg}
}

func NotFound(code, msg string) *Error {
	return &Error{Kind: KindNotFound, Code: code, Message: msg}
}

func Conflict(code, msg string) *Error {
	return &Error{Kind: KindConflict, Code: code, Message: msg}
}

// Internal wraps an unexpected failure. The cause is kept for logging but
// the rendered message never leaks it.
func Internal(cause error) *Error {
	return &Error{Kind: KindInternal, Code: CodeInternal, Message: "Internal server error", cause: cause}
}

// From extracts the *Error from err, wrapping anything unclassified as
// Internal so the HTTP layer always has a kind to map.
func From(err error) *Error {
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	return Internal(err)
}

// IsKind reports whether err carries the given kind.
func IsKind(err error, kind Kind) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == kind
}
