// File: services/dialog/speech.go
package dialog

import (
	"fmt"
	"time"

	"roomly/models"
)

// All spoken output lives here so the handlers stay about flow, not wording.

const (
	speechAskDuration   = "Welcome to Roomly. For how long would you like to book a meeting room?"
	repromptAskDuration = "Tell me a meeting length, for example, thirty minutes."

	speechGoodbye = "Okay, goodbye."

	repromptConfirm = "Shall I book it? Say yes or no."
)

func promptDurationBounds(capMinutes int) string {
	return fmt.Sprintf(
		"I can book a room for up to %d minutes. How long should the meeting be?",
		capMinutes)
}

func promptDurationUnparseable() string {
	return "Sorry, I didn't catch that as a meeting length. How long should the meeting be?"
}

func promptConfirm(roomName string, minutes int) string {
	return fmt.Sprintf(
		"%s is free for %d minutes. Shall I book it?", roomName, minutes)
}

func promptNoneFree(start, end time.Time) string {
	return fmt.Sprintf(
		"Sorry, no rooms are free between %s and %s. Would you like to try a different length?",
		start.Format(time.Kitchen), end.Format(time.Kitchen))
}

func speechBooked(roomName string, minutes int) string {
	return fmt.Sprintf("Done. I've booked %s for %d minutes.", roomName, minutes)
}

func cardBooked(roomName string, minutes int, start time.Time) *models.Card {
	return &models.Card{
		Type:  "Simple",
		Title: "Room booked",
		Content: fmt.Sprintf("%s\n%d minutes from %s",
			roomName, minutes, start.Format(time.Kitchen)),
	}
}

const speechFailure = "Sorry, something went wrong talking to the calendar service. Please try again later."

func cardFailure(err error) *models.Card {
	return &models.Card{
		Type:    "Simple",
		Title:   "Booking error",
		Content: err.Error(),
	}
}

func helpFor(state models.SessionState) (speech, reprompt string) {
	switch state {
	case models.StateCollectingDuration:
		return "Tell me how long you need a room for, for example, forty five minutes.",
			repromptAskDuration
	case models.StateAwaitingConfirmation:
		return "I found a free room. Say yes to book it, or no to cancel.",
			repromptConfirm
	default:
		return "You can ask me to book a meeting room. Just say, book a meeting.",
			"Say, book a meeting, to get started."
	}
}

func fallbackFor(state models.SessionState) (speech, reprompt string) {
	switch state {
	case models.StateCollectingDuration:
		return "Sorry, I didn't understand. How long should the meeting be?",
			repromptAskDuration
	case models.StateAwaitingConfirmation:
		return "Sorry, I didn't understand. Shall I book the room? Say yes or no.",
			repromptConfirm
	default:
		return "Sorry, I didn't understand. Say, book a meeting, to get started.",
			"Say, book a meeting, to get started."
	}
}
