// Package readers is a compact example of building a repository on top of
// the library: entities and identifiers from the domain package, persistence
// through the fluent query builder, and domain events published on the
// event bus after successful writes.
package readers
