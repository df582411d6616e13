package entity

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// tagSeparator is the character tags are joined with in the tags column.
// A tag containing it would be unsplittable, so JoinTags rejects that.
const tagSeparator = ","

type Product struct {
	ID          int64           `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string          `gorm:"size:191;not null;index" json:"name"`
	Description string          `gorm:"type:text;not null" json:"description"`
	Price       decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"price"`

	// Tags is the comma-joined storage form. It is deliberately excluded
	// from JSON: every read path must expose the split list instead.
	Tags string `gorm:"size:191" json:"-"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TagList is the read-side inverse of JoinTags.
func (p *Product) TagList() []string {
	return SplitTags(p.Tags)
}

// JoinTags serializes a tag list to the storage form.
func JoinTags(tags []string) (string, error) {
	for _, t := range tags {
		if strings.Contains(t, tagSeparator) {
			return "", fmt.Errorf("tag %q contains the separator %q", t, tagSeparator)
		}
	}
	return strings.Join(tags, tagSeparator), nil
}

// SplitTags parses the storage form back into a list. An empty column maps
// to an empty list, not []string{""}.
func SplitTags(s string) []string {
	if s == "" {
		return []string{}
	}
	return strings.Split(s, tagSeparator)
}
