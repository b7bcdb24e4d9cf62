package readers

import (
	"time"

	"github.com/google/uuid"

	"github.com/domainblocks/ddd-blocks-go/domain"
)

// ReaderRegisteredEventType is the type identifier for ReaderRegistered events.
const ReaderRegisteredEventType = "ReaderRegistered"

// ReaderContactChangedEventType is the type identifier for ReaderContactChanged events.
const ReaderContactChangedEventType = "ReaderContactChanged"

// ReaderDeregisteredEventType is the type identifier for ReaderDeregistered events.
const ReaderDeregisteredEventType = "ReaderDeregistered"

// ReaderRegistered is published after a reader was stored for the first time.
type ReaderRegistered struct {
	ReaderID   string    `json:"readerID"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	HappenedAt time.Time `json:"happenedAt"`
}

// BuildReaderRegistered creates the event from a reader.
func BuildReaderRegistered(reader Reader, happenedAt time.Time) ReaderRegistered {
	return ReaderRegistered{
		ReaderID:   reader.ID().String(),
		Name:       reader.Name,
		Email:      reader.Email,
		HappenedAt: happenedAt,
	}
}

// EventType implements domain.DomainEvent.
func (e ReaderRegistered) EventType() string {
	return ReaderRegisteredEventType
}

// OccurredAt implements domain.DomainEvent.
func (e ReaderRegistered) OccurredAt() time.Time {
	return e.HappenedAt
}

// ReaderContactChanged is published after a reader's contact email was updated.
type ReaderContactChanged struct {
	ReaderID   string    `json:"readerID"`
	Email      string    `json:"email"`
	HappenedAt time.Time `json:"happenedAt"`
}

// BuildReaderContactChanged creates the event for a contact change.
func BuildReaderContactChanged(readerID domain.Identifier, email string, happenedAt time.Time) ReaderContactChanged {
	return ReaderContactChanged{
		ReaderID:   readerID.String(),
		Email:      email,
		HappenedAt: happenedAt,
	}
}

// EventType implements domain.DomainEvent.
func (e ReaderContactChanged) EventType() string {
	return ReaderContactChangedEventType
}

// OccurredAt implements domain.DomainEvent.
func (e ReaderContactChanged) OccurredAt() time.Time {
	return e.HappenedAt
}

// ReaderDeregistered is published after a reader was removed.
type ReaderDeregistered struct {
	ReaderID   string    `json:"readerID"`
	HappenedAt time.Time `json:"happenedAt"`
}

// BuildReaderDeregistered creates the event for a removal.
func BuildReaderDeregistered(readerID domain.Identifier, happenedAt time.Time) ReaderDeregistered {
	return ReaderDeregistered{
		ReaderID:   readerID.String(),
		HappenedAt: happenedAt,
	}
}

// EventType implements domain.DomainEvent.
func (e ReaderDeregistered) EventType() string {
	return ReaderDeregisteredEventType
}

// OccurredAt implements domain.DomainEvent.
func (e ReaderDeregistered) OccurredAt() time.Time {
	return e.HappenedAt
}

// envelope wraps an event with fresh message metadata for publishing.
func envelope(event domain.DomainEvent) domain.EventEnvelope {
	messageID := uuid.New()

	return domain.BuildEventEnvelope(event, domain.BuildEventMetadata(messageID, messageID, messageID))
}
