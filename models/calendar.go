package models

import "time"

// CalendarInfo describes one calendar visible to the caller in the
// provider's directory.
type CalendarInfo struct {
	Name  string        `json:"name"`
	Owner CalendarOwner `json:"owner"`
}

type CalendarOwner struct {
	Name    string `json:"name"`
	Address string `json:"address"`
}

// CalendarEvent is an event returned by an availability query.
type CalendarEvent struct {
	Subject string    `json:"subject"`
	Start   time.Time `json:"start"`
	End     time.Time `json:"end"`
}

// EventDraft is the payload for a booking write.
type EventDraft struct {
	Subject         string    `json:"subject"`
	Body            string    `json:"body"`
	Start           time.Time `json:"start"`
	End             time.Time `json:"end"`
	AttendeeName    string    `json:"attendeeName"`
	AttendeeAddress string    `json:"attendeeAddress"`
}
