package models

import "time"

// SessionState identifies where a dialog session is in the booking flow.
// A session that has never been stored is materialized as a fresh idle
// session; the empty string is never written to the store.
type SessionState string

const (
	StateIdle                 SessionState = "idle"
	StateCollectingDuration   SessionState = "collecting_duration"
	StateAwaitingConfirmation SessionState = "awaiting_confirmation"
)

// Session holds per-user conversational state between stateless webhook
// invocations. It is serialized as a JSON blob in Redis, keyed by the
// platform user ID, and does not outlive one conversation.
type Session struct {
	UserID string       `json:"userId"`
	State  SessionState `json:"state"`

	// Booking fields. These are set and cleared together: SetBooking writes
	// the whole group when a room is resolved, ClearBooking empties it on
	// restart. Individual fields are never mutated in isolation.
	RoomName        string    `json:"roomName,omitempty"`
	OwnerName       string    `json:"ownerName,omitempty"`
	OwnerAddress    string    `json:"ownerAddress,omitempty"`
	Start           time.Time `json:"start,omitempty"`
	End             time.Time `json:"end,omitempty"`
	DurationMinutes int       `json:"durationMinutes,omitempty"`

	// Last prompt issued, replayed verbatim on a repeat request.
	LastSpeech   string `json:"lastSpeech,omitempty"`
	LastReprompt string `json:"lastReprompt,omitempty"`
}

// NewSession returns a fresh idle session for the given user.
func NewSession(userID string) *Session {
	return &Session{UserID: userID, State: StateIdle}
}

// SetBooking records the resolved room and confirmed window as one group.
func (s *Session) SetBooking(c Candidate, req BookingRequest, durationMinutes int) {
	s.RoomName = c.Name
	s.OwnerName = c.OwnerName
	s.OwnerAddress = c.OwnerAddress
	s.Start = req.Start
	s.End = req.End
	s.DurationMinutes = durationMinutes
}

// ClearBooking empties the booking field group.
func (s *Session) ClearBooking() {
	s.RoomName = ""
	s.OwnerName = ""
	s.OwnerAddress = ""
	s.Start = time.Time{}
	s.End = time.Time{}
	s.DurationMinutes = 0
}

// HasBooking reports whether the booking field group is populated.
func (s *Session) HasBooking() bool {
	return s.RoomName != "" && !s.Start.IsZero() && !s.End.IsZero()
}

// RememberPrompt overwrites the replay buffer for the repeat intent.
func (s *Session) RememberPrompt(speech, reprompt string) {
	s.LastSpeech = speech
	s.LastReprompt = reprompt
}
