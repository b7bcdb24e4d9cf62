// Package domain provides base building blocks for domain-driven design:
// UUID-backed identifiers, entities with identifier-based equality, value
// object equality helpers, domain events with tracking metadata, an explicit
// event bus, and static property tables for data-transfer objects.
//
// Key types:
//   - Identifier: UUID-backed identity value
//   - Entity: embeddable base with identity-based equality
//   - DomainEvent / EventEnvelope / EventMetadata: business events with
//     message, causation, and correlation tracking
//   - EventBus: explicit, injected publisher (no ambient global state)
//   - PropertyTable: per-type registry of typed getter/setter/validator
//     functions, replacing reflective property dispatch
package domain
