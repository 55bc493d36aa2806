package entities

import "fmt"

// Participant represents a user's enrollment in a specific box. The name may
// differ from the user's Discord username; it is whatever they entered when
// joining.
type Participant struct {
	ID      int64  `db:"id"`
	BoxID   int64  `db:"id_box"`
	UserID  int64  `db:"user_id"`
	Name    string `db:"user_name"`
	Address string `db:"user_adds"`
	Wish    string `db:"user_wish"`
}

// ParticipantField identifies an individually editable participant field.
type ParticipantField string

const (
	ParticipantFieldName    ParticipantField = "name"
	ParticipantFieldAddress ParticipantField = "address"
	ParticipantFieldWish    ParticipantField = "wish"
)

// Valid reports whether the field is one of the editable fields. Repositories
// map fields to columns through a whitelist, never by interpolating input.
func (f ParticipantField) Valid() bool {
	switch f {
	case ParticipantFieldName, ParticipantFieldAddress, ParticipantFieldWish:
		return true
	}
	return false
}

func (f ParticipantField) String() string {
	return string(f)
}

// ValidateParticipantField rejects unknown fields and empty values.
func ValidateParticipantField(field ParticipantField, value string) error {
	if !field.Valid() {
		return fmt.Errorf("unknown participant field %q", field)
	}
	if value == "" {
		return &ValidationError{Field: field.String(), Reason: "must not be empty"}
	}
	return nil
}
