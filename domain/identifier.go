package domain

import (
	"errors"

	"github.com/google/uuid"
)

// ErrInvalidIdentifier is returned when parsing an identifier from an invalid string.
var ErrInvalidIdentifier = errors.New("invalid identifier supplied")

// Identifier is a UUID-backed identity value for entities and aggregates.
//
// Identifiers compare by value; two entities are the same entity exactly when
// their identifiers are equal, regardless of their remaining state.
type Identifier struct {
	value uuid.UUID
}

// NewIdentifier generates a new random identifier.
func NewIdentifier() Identifier {
	return Identifier{value: uuid.New()}
}

// IdentifierFromString parses an identifier from its string representation.
func IdentifierFromString(value string) (Identifier, error) {
	parsed, err := uuid.Parse(value)
	if err != nil {
		return Identifier{}, errors.Join(ErrInvalidIdentifier, err)
	}

	return Identifier{value: parsed}, nil
}

// Equals reports whether two identifiers denote the same identity.
func (i Identifier) Equals(other Identifier) bool {
	return i.value == other.value
}

// IsZero reports whether the identifier is the zero value.
func (i Identifier) IsZero() bool {
	return i.value == uuid.Nil
}

// String returns the canonical string form of the identifier.
func (i Identifier) String() string {
	return i.value.String()
}
