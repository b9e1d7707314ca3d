package models

import "time"

// Candidate is a bookable meeting room backed by an owning mailbox. It is
// sourced from the calendar directory and never mutated by this service.
type Candidate struct {
	Name         string `json:"name"`
	OwnerName    string `json:"ownerName"`
	OwnerAddress string `json:"ownerAddress"`
}

// BookingRequest is the time window a meeting should occupy. It is derived
// once from a validated duration and the invocation's wall-clock time and is
// immutable after construction.
type BookingRequest struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// NewBookingRequest builds the window [now, now+minutes).
func NewBookingRequest(now time.Time, minutes int) BookingRequest {
	return BookingRequest{
		Start: now,
		End:   now.Add(time.Duration(minutes) * time.Minute),
	}
}

// BookingRecord is the audit entry persisted after a successful commit.
type BookingRecord struct {
	ID              string    `bson:"id" json:"id"`
	UserID          string    `bson:"userId" json:"userId"`
	RoomName        string    `bson:"roomName" json:"roomName"`
	OwnerAddress    string    `bson:"ownerAddress" json:"ownerAddress"`
	Start           time.Time `bson:"start" json:"start"`
	End             time.Time `bson:"end" json:"end"`
	DurationMinutes int       `bson:"durationMinutes" json:"durationMinutes"`
	RequestToken    string    `bson:"requestToken" json:"requestToken"`
	CreatedAt       time.Time `bson:"createdAt" json:"createdAt"`
}
