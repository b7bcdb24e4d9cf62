package domain_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/domainblocks/ddd-blocks-go/domain"
)

type otherThingHappened struct {
	HappenedAt time.Time `json:"happenedAt"`
}

func (e otherThingHappened) EventType() string {
	return "OtherThingHappened"
}

func (e otherThingHappened) OccurredAt() time.Time {
	return e.HappenedAt
}

func newEnvelope(event domain.DomainEvent) domain.EventEnvelope {
	id := uuid.New()
	return domain.BuildEventEnvelope(event, domain.BuildEventMetadata(id, id, id))
}

func Test_EventBus_DispatchesToMatchingSubscribersInOrder(t *testing.T) {
	bus := domain.NewEventBus()

	var calls []string
	bus.Subscribe("SomethingHappened", func(_ context.Context, _ domain.EventEnvelope) error {
		calls = append(calls, "first")
		return nil
	})
	bus.Subscribe("SomethingHappened", func(_ context.Context, _ domain.EventEnvelope) error {
		calls = append(calls, "second")
		return nil
	})
	bus.Subscribe("OtherThingHappened", func(_ context.Context, _ domain.EventEnvelope) error {
		calls = append(calls, "other")
		return nil
	})

	err := bus.Publish(context.Background(), newEnvelope(somethingHappened{Subject: "x"}))

	require.NoError(t, err)
	assert.Equal(t, []string{"first", "second"}, calls)
}

func Test_EventBus_SubscribeAllReceivesEveryEvent(t *testing.T) {
	bus := domain.NewEventBus()

	var seen []string
	bus.SubscribeAll(func(_ context.Context, envelope domain.EventEnvelope) error {
		seen = append(seen, envelope.DomainEvent.EventType())
		return nil
	})

	err := bus.Publish(context.Background(),
		newEnvelope(somethingHappened{Subject: "x"}),
		newEnvelope(otherThingHappened{}),
	)

	require.NoError(t, err)
	assert.Equal(t, []string{"SomethingHappened", "OtherThingHappened"}, seen)
}

func Test_EventBus_HandlerErrorsAreJoinedAndDeliveryContinues(t *testing.T) {
	bus := domain.NewEventBus()

	firstErr := errors.New("first handler failed")
	var secondCalled bool

	bus.Subscribe("SomethingHappened", func(_ context.Context, _ domain.EventEnvelope) error {
		return firstErr
	})
	bus.Subscribe("SomethingHappened", func(_ context.Context, _ domain.EventEnvelope) error {
		secondCalled = true
		return nil
	})

	err := bus.Publish(context.Background(), newEnvelope(somethingHappened{Subject: "x"}))

	assert.ErrorIs(t, err, domain.ErrPublishingEventFailed)
	assert.ErrorIs(t, err, firstErr)
	assert.True(t, secondCalled)
}

func Test_EventBus_PublishWithoutSubscribersSucceeds(t *testing.T) {
	bus := domain.NewEventBus()

	err := bus.Publish(context.Background(), newEnvelope(somethingHappened{Subject: "x"}))

	assert.NoError(t, err)
}
