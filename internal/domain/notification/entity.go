package notification

import "time"

// EventType names an event pushed to the admin dashboard stream.
type EventType string

const (
	EventComplaintCreated       EventType = "complaint.created"
	EventComplaintStatusUpdated EventType = "complaint.status_updated"
	EventRosterChanged          EventType = "roster.changed"
)

// Event is a dashboard notification. Data is encoded as JSON on the stream.
type Event struct {
	Type       EventType   `json:"type"`
	Data       interface{} `json:"data"`
	OccurredAt time.Time   `json:"occurred_at"`
}

// StatusUpdatedData is the payload of EventComplaintStatusUpdated.
type StatusUpdatedData struct {
	ID     string `json:"id"`
	OpsID  string `json:"ops_id"`
	Status string `json:"status"`
}

// RosterChangedData is the payload of EventRosterChanged.
type RosterChangedData struct {
	Action string `json:"action"`
	OpsID  string `json:"ops_id"`
}
