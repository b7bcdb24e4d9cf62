package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
	jsoniter "github.com/json-iterator/go"
)

// ErrMappingToEventMetadataFailed is returned when metadata conversion fails.
var ErrMappingToEventMetadataFailed = errors.New("mapping to event metadata failed")

// ErrMarshalingPayloadFailed is returned when an event payload cannot be serialized.
var ErrMarshalingPayloadFailed = errors.New("marshaling event payload failed")

// DomainEvents is a slice of DomainEvent instances.
type DomainEvents = []DomainEvent

// DomainEvent represents a business event that has occurred in the domain.
type DomainEvent interface {
	// EventType returns the string identifier for this event type.
	EventType() string

	// OccurredAt returns when this event occurred.
	OccurredAt() time.Time
}

// MessageID represents a unique message identifier.
type MessageID = string

// CausationID represents the ID of the event that caused this event.
type CausationID = string

// CorrelationID represents the ID correlating related events.
type CorrelationID = string

// EventMetadata contains event tracking information.
type EventMetadata struct {
	MessageID     MessageID
	CausationID   CausationID
	CorrelationID CorrelationID
}

// BuildEventMetadata creates EventMetadata from UUID values.
func BuildEventMetadata(messageID uuid.UUID, causationID uuid.UUID, correlationID uuid.UUID) EventMetadata {
	return EventMetadata{
		MessageID:     messageID.String(),
		CausationID:   causationID.String(),
		CorrelationID: correlationID.String(),
	}
}

// EventMetadataFromJSON deserializes metadata from its JSON form.
func EventMetadataFromJSON(metadataJSON []byte) (EventMetadata, error) {
	metadata := new(EventMetadata)

	if err := jsoniter.ConfigFastest.Unmarshal(metadataJSON, metadata); err != nil {
		return EventMetadata{}, errors.Join(ErrMappingToEventMetadataFailed, err)
	}

	return *metadata, nil
}

// ToJSON serializes the metadata.
func (m EventMetadata) ToJSON() ([]byte, error) {
	return jsoniter.ConfigFastest.Marshal(m)
}

// EventEnvelopes is a slice of EventEnvelope instances.
type EventEnvelopes = []EventEnvelope

// EventEnvelope combines a domain event with its metadata.
type EventEnvelope struct {
	DomainEvent   DomainEvent
	EventMetadata EventMetadata
}

// BuildEventEnvelope creates a new EventEnvelope from domain event and metadata.
func BuildEventEnvelope(domainEvent DomainEvent, eventMetadata EventMetadata) EventEnvelope {
	return EventEnvelope{
		DomainEvent:   domainEvent,
		EventMetadata: eventMetadata,
	}
}

// PayloadJSON serializes the wrapped domain event.
func (e EventEnvelope) PayloadJSON() ([]byte, error) {
	payload, err := jsoniter.ConfigFastest.Marshal(e.DomainEvent)
	if err != nil {
		return nil, errors.Join(ErrMarshalingPayloadFailed, err)
	}

	return payload, nil
}
