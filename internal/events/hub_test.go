package events_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/example/dealboard/internal/events"
	"github.com/example/dealboard/internal/ports/secondary"
)

func TestHub_PublishReachesSubscriber(t *testing.T) {
	hub := events.NewHub()

	var received []secondary.DealEvent
	hub.Subscribe("PIPE-001", func(e secondary.DealEvent) {
		received = append(received, e)
	})

	hub.Publish(secondary.DealEvent{
		Type:       secondary.DealEventInsert,
		PipelineID: "PIPE-001",
		New:        &secondary.DealRecord{ID: "deal-1"},
	})

	assert.Len(t, received, 1)
	assert.Equal(t, secondary.DealEventInsert, received[0].Type)
	assert.Equal(t, "deal-1", received[0].New.ID)
}

func TestHub_PipelineIsolation(t *testing.T) {
	hub := events.NewHub()

	var gotA, gotB int
	hub.Subscribe("PIPE-001", func(secondary.DealEvent) { gotA++ })
	hub.Subscribe("PIPE-002", func(secondary.DealEvent) { gotB++ })

	hub.Publish(secondary.DealEvent{Type: secondary.DealEventUpdate, PipelineID: "PIPE-001"})

	assert.Equal(t, 1, gotA)
	assert.Equal(t, 0, gotB)
}

func TestHub_MultipleSubscribers(t *testing.T) {
	hub := events.NewHub()

	var first, second int
	hub.Subscribe("PIPE-001", func(secondary.DealEvent) { first++ })
	hub.Subscribe("PIPE-001", func(secondary.DealEvent) { second++ })

	hub.Publish(secondary.DealEvent{Type: secondary.DealEventDelete, PipelineID: "PIPE-001"})

	assert.Equal(t, 1, first)
	assert.Equal(t, 1, second)
}

func TestHub_UnsubscribeStopsDelivery(t *testing.T) {
	hub := events.NewHub()

	var got int
	sub := hub.Subscribe("PIPE-001", func(secondary.DealEvent) { got++ })

	hub.Publish(secondary.DealEvent{Type: secondary.DealEventInsert, PipelineID: "PIPE-001"})
	sub.Unsubscribe()
	hub.Publish(secondary.DealEvent{Type: secondary.DealEventInsert, PipelineID: "PIPE-001"})

	assert.Equal(t, 1, got)
}

func TestHub_UnsubscribeIsIdempotent(t *testing.T) {
	hub := events.NewHub()

	var stayed int
	sub := hub.Subscribe("PIPE-001", func(secondary.DealEvent) {})
	hub.Subscribe("PIPE-001", func(secondary.DealEvent) { stayed++ })

	sub.Unsubscribe()
	sub.Unsubscribe()

	hub.Publish(secondary.DealEvent{Type: secondary.DealEventUpdate, PipelineID: "PIPE-001"})
	assert.Equal(t, 1, stayed, "remaining subscriber should be unaffected")
}

func TestHub_PublishWithNoSubscribers(t *testing.T) {
	hub := events.NewHub()

	assert.NotPanics(t, func() {
		hub.Publish(secondary.DealEvent{Type: secondary.DealEventInsert, PipelineID: "PIPE-404"})
	})
}
