package domain

/***** Entity *****/

// Entity is the base for identity-bearing domain objects.
// Embed it in a concrete type to get identifier-based equality.
type Entity struct {
	id Identifier
}

// NewEntity creates an entity base with a fresh identifier.
func NewEntity() Entity {
	return Entity{id: NewIdentifier()}
}

// EntityWithID creates an entity base with a pre-existing identifier,
// e.g. when reconstituting from storage.
func EntityWithID(id Identifier) Entity {
	return Entity{id: id}
}

// ID returns the entity's identifier.
func (e Entity) ID() Identifier {
	return e.id
}

// SameIdentityAs reports whether both entities denote the same identity.
// Entities compare by identifier only, never by their remaining state.
func (e Entity) SameIdentityAs(other Entity) bool {
	return e.id.Equals(other.id)
}

/***** Value objects *****/

// EqualValues reports value equality for comparable value-object types.
// Value objects have no identity; two values are interchangeable exactly
// when all their components are equal.
func EqualValues[T comparable](a, b T) bool {
	return a == b
}
