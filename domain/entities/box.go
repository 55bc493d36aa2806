package entities

import (
	"fmt"
	"unicode/utf8"
)

const (
	// MaxBoxNameLength is the maximum length of a box name in runes.
	MaxBoxNameLength = 100
	// MaxBoxDescriptionLength is the maximum length of a box description in runes.
	MaxBoxDescriptionLength = 200
)

// Box represents a gift exchange group with a single owner.
type Box struct {
	ID          int64   `db:"id_box"`
	OwnerID     int64   `db:"user_id"`
	Name        string  `db:"box_name"`
	Description string  `db:"box_desc"`
	PhotoRef    *string `db:"box_photo"` // nil when the owner skipped the photo step
}

// ValidationError describes a rejected field value. Callers re-prompt the
// user rather than treating it as a system failure.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// ValidateBoxName rejects names over MaxBoxNameLength. Values are never
// truncated; over-length input is an error.
func ValidateBoxName(name string) error {
	if name == "" {
		return &ValidationError{Field: "box name", Reason: "must not be empty"}
	}
	if n := utf8.RuneCountInString(name); n > MaxBoxNameLength {
		return &ValidationError{
			Field:  "box name",
			Reason: fmt.Sprintf("%d characters, maximum is %d", n, MaxBoxNameLength),
		}
	}
	return nil
}

// ValidateBoxDescription rejects descriptions over MaxBoxDescriptionLength.
func ValidateBoxDescription(desc string) error {
	if desc == "" {
		return &ValidationError{Field: "box description", Reason: "must not be empty"}
	}
	if n := utf8.RuneCountInString(desc); n > MaxBoxDescriptionLength {
		return &ValidationError{
			Field:  "box description",
			Reason: fmt.Sprintf("%d characters, maximum is %d", n, MaxBoxDescriptionLength),
		}
	}
	return nil
}

// HasPhoto returns true if the box was created with a photo.
func (b *Box) HasPhoto() bool {
	return b.PhotoRef != nil && *b.PhotoRef != ""
}

// IsOwnedBy checks whether the given user owns the box.
func (b *Box) IsOwnedBy(userID int64) bool {
	return b.OwnerID == userID
}
