package models

// Request envelope types for the voice platform webhook. One envelope
// arrives per user turn; exactly one ResponseEnvelope goes back.

const (
	RequestTypeLaunch       = "LaunchRequest"
	RequestTypeIntent       = "IntentRequest"
	RequestTypeSessionEnded = "SessionEndedRequest"
)

// Platform intent names. Slot filling and intent classification happen
// upstream; these arrive fully resolved.
const (
	IntentBookMeeting = "BookMeetingIntent"
	IntentDuration    = "DurationIntent"
	IntentYes         = "AMAZON.YesIntent"
	IntentNo          = "AMAZON.NoIntent"
	IntentHelp        = "AMAZON.HelpIntent"
	IntentRepeat      = "AMAZON.RepeatIntent"
	IntentStartOver   = "AMAZON.StartOverIntent"
	IntentCancel      = "AMAZON.CancelIntent"
	IntentStop        = "AMAZON.StopIntent"
)

// SlotDuration is the slot carrying the ISO-8601 duration string.
const SlotDuration = "duration"

type RequestEnvelope struct {
	Version string          `json:"version"`
	Session EnvelopeSession `json:"session"`
	Request EnvelopeRequest `json:"request"`
}

type EnvelopeSession struct {
	SessionID   string              `json:"sessionId"`
	New         bool                `json:"new"`
	Application EnvelopeApplication `json:"application"`
	User        EnvelopeUser        `json:"user"`
}

type EnvelopeApplication struct {
	ApplicationID string `json:"applicationId"`
}

type EnvelopeUser struct {
	UserID      string `json:"userId"`
	AccessToken string `json:"accessToken,omitempty"`
}

type EnvelopeRequest struct {
	Type      string          `json:"type"`
	RequestID string          `json:"requestId"`
	Timestamp string          `json:"timestamp"`
	Intent    *EnvelopeIntent `json:"intent,omitempty"`
}

type EnvelopeIntent struct {
	Name  string          `json:"name"`
	Slots map[string]Slot `json:"slots,omitempty"`
}

type Slot struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

type ResponseEnvelope struct {
	Version           string         `json:"version"`
	SessionAttributes map[string]any `json:"sessionAttributes,omitempty"`
	Response          ResponseBody   `json:"response"`
}

type ResponseBody struct {
	OutputSpeech     *OutputSpeech `json:"outputSpeech,omitempty"`
	Reprompt         *Reprompt     `json:"reprompt,omitempty"`
	Card             *Card         `json:"card,omitempty"`
	ShouldEndSession bool          `json:"shouldEndSession"`
}

type OutputSpeech struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

type Reprompt struct {
	OutputSpeech OutputSpeech `json:"outputSpeech"`
}

type Card struct {
	Type    string `json:"type"`
	Title   string `json:"title"`
	Content string `json:"content"`
}

// NewResponseEnvelope assembles the single outbound envelope for a turn.
func NewResponseEnvelope(speech, reprompt string, card *Card, endSession bool) ResponseEnvelope {
	body := ResponseBody{
		OutputSpeech:     &OutputSpeech{Type: "PlainText", Text: speech},
		Card:             card,
		ShouldEndSession: endSession,
	}
	if reprompt != "" {
		body.Reprompt = &Reprompt{OutputSpeech: OutputSpeech{Type: "PlainText", Text: reprompt}}
	}
	return ResponseEnvelope{Version: "1.0", Response: body}
}
