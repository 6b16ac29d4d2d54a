package secondary

// DealEventType classifies a change event on the deals table.
type DealEventType string

const (
	DealEventInsert DealEventType = "INSERT"
	DealEventUpdate DealEventType = "UPDATE"
	DealEventDelete DealEventType = "DELETE"
)

// DealEvent is one change event on a pipeline's deal set. New is nil for
// deletes, Old is nil for inserts.
type DealEvent struct {
	Type       DealEventType
	PipelineID string
	New        *DealRecord
	Old        *DealRecord
}

// DealEventPublisher defines the secondary port through which services push
// change events to subscribers.
type DealEventPublisher interface {
	// Publish delivers the event to every subscriber of its pipeline.
	Publish(event DealEvent)
}
