package domain

import (
	"errors"
)

var ErrUnknownProperty = errors.New("unknown property")
var ErrSettingPropertyFailed = errors.New("setting property failed")
var ErrPropertyValidationFailed = errors.New("property validation failed")

// Property describes one named property of a data-transfer object type T:
// a typed getter, setter, and validator registered statically per type.
// This replaces reflective property dispatch with an explicit table.
type Property[T any] struct {
	Name     string
	Get      func(T) any
	Set      func(*T, any) error
	Validate func(T) error
}

// PropertyTable is the static property registry for a DTO type T.
//
// Build one table per type, typically as a package-level variable, and route
// dynamic by-name access through it instead of reflection.
type PropertyTable[T any] struct {
	properties []Property[T]
	byName     map[string]int
}

// BuildPropertyTable creates a property table from the given property specs.
// Properties keep their registration order.
func BuildPropertyTable[T any](properties ...Property[T]) PropertyTable[T] {
	table := PropertyTable[T]{
		properties: properties,
		byName:     make(map[string]int, len(properties)),
	}

	for i, property := range properties {
		table.byName[property.Name] = i
	}

	return table
}

// Names returns the registered property names in registration order.
func (t PropertyTable[T]) Names() []string {
	names := make([]string, 0, len(t.properties))

	for _, property := range t.properties {
		names = append(names, property.Name)
	}

	return names
}

// Get returns the named property's value.
func (t PropertyTable[T]) Get(value T, name string) (any, error) {
	index, ok := t.byName[name]
	if !ok || t.properties[index].Get == nil {
		return nil, errors.Join(ErrUnknownProperty, errors.New(name))
	}

	return t.properties[index].Get(value), nil
}

// Set assigns the named property on the target.
func (t PropertyTable[T]) Set(target *T, name string, propertyValue any) error {
	index, ok := t.byName[name]
	if !ok || t.properties[index].Set == nil {
		return errors.Join(ErrUnknownProperty, errors.New(name))
	}

	if err := t.properties[index].Set(target, propertyValue); err != nil {
		return errors.Join(ErrSettingPropertyFailed, err)
	}

	return nil
}

// Validate runs every registered validator against the value and returns the
// joined validation errors, if any.
func (t PropertyTable[T]) Validate(value T) error {
	var validationErrs []error

	for _, property := range t.properties {
		if property.Validate == nil {
			continue
		}

		if err := property.Validate(value); err != nil {
			validationErrs = append(validationErrs, err)
		}
	}

	if len(validationErrs) > 0 {
		return errors.Join(append([]error{ErrPropertyValidationFailed}, validationErrs...)...)
	}

	return nil
}
