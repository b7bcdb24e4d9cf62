package readers

import (
	"strings"
	"time"

	"github.com/domainblocks/ddd-blocks-go/domain"
)

// Reader is a registered library reader.
type Reader struct {
	domain.Entity
	Name         string
	Email        string
	RegisteredAt time.Time
}

// NewReader creates a reader with a fresh identity.
func NewReader(name, email string, registeredAt time.Time) Reader {
	return Reader{
		Entity:       domain.NewEntity(),
		Name:         name,
		Email:        email,
		RegisteredAt: registeredAt,
	}
}

// ReaderWithID rebuilds a reader from persisted state.
func ReaderWithID(id domain.Identifier, name, email string, registeredAt time.Time) Reader {
	return Reader{
		Entity:       domain.EntityWithID(id),
		Name:         name,
		Email:        email,
		RegisteredAt: registeredAt,
	}
}

// Properties describes the mutable reader fields by name,
// used for generic property access without reflection.
var Properties = domain.BuildPropertyTable(
	domain.Property[Reader]{
		Name: "name",
		Get:  func(r Reader) any { return r.Name },
		Set: func(r *Reader, value any) error {
			name, ok := value.(string)
			if !ok {
				return domain.ErrSettingPropertyFailed
			}
			r.Name = name

			return nil
		},
		Validate: func(r Reader) error {
			if strings.TrimSpace(r.Name) == "" {
				return domain.ErrPropertyValidationFailed
			}

			return nil
		},
	},
	domain.Property[Reader]{
		Name: "email",
		Get:  func(r Reader) any { return r.Email },
		Set: func(r *Reader, value any) error {
			email, ok := value.(string)
			if !ok {
				return domain.ErrSettingPropertyFailed
			}
			r.Email = email

			return nil
		},
		Validate: func(r Reader) error {
			if !strings.Contains(r.Email, "@") {
				return domain.ErrPropertyValidationFailed
			}

			return nil
		},
	},
)
