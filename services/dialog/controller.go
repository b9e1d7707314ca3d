// File: services/dialog/controller.go
package dialog

import (
	"context"
	"time"

	"roomly/models"
	"roomly/services/availability"
	"roomly/services/booking"
	"roomly/utils"

	"go.uber.org/zap"
)

// Turn is one user utterance, already classified by the voice platform.
type Turn struct {
	UserID string
	Type   string // models.RequestType*
	Intent string
	Slots  map[string]string
}

// Result is the single outbound response of a turn. EndSession closes the
// conversation; otherwise Speech/Reprompt keep it open.
type Result struct {
	Speech     string
	Reprompt   string
	Card       *models.Card
	EndSession bool
}

type stateIntentKey struct {
	State  models.SessionState
	Intent string
}

type handlerFunc func(ctx context.Context, sess *models.Session, turn Turn) Result

// Controller is the session dialog state machine. Each invocation loads the
// user's session, dispatches on the (state, intent) pair, and persists the
// next state. It is the final catch point: collaborator failures become
// spoken error responses, never returned errors.
type Controller struct {
	Store      SessionStore
	Directory  booking.CandidateDirectory
	Resolver   *availability.Resolver
	Committer  booking.Committer
	CapMinutes int

	now      func() time.Time
	handlers map[stateIntentKey]handlerFunc
}

func NewController(
	store SessionStore,
	directory booking.CandidateDirectory,
	resolver *availability.Resolver,
	committer booking.Committer,
	capMinutes int,
) *Controller {
	c := &Controller{
		Store:      store,
		Directory:  directory,
		Resolver:   resolver,
		Committer:  committer,
		CapMinutes: capMinutes,
		now:        time.Now,
	}
	c.handlers = c.buildRegistry()
	return c
}

// buildRegistry wires the transition table. Lookup is always keyed by the
// (state, intent) pair: the same intent name is legitimately handled
// differently per state, so intent name alone never selects a handler.
func (c *Controller) buildRegistry() map[stateIntentKey]handlerFunc {
	h := map[stateIntentKey]handlerFunc{
		{models.StateIdle, models.IntentBookMeeting}: c.handleStartBooking,
		{models.StateIdle, models.IntentYes}:         c.handleStartBooking,

		{models.StateCollectingDuration, models.IntentDuration}: c.handleDuration,

		{models.StateAwaitingConfirmation, models.IntentYes}: c.handleConfirm,
		{models.StateAwaitingConfirmation, models.IntentNo}:  c.handleDecline,
	}

	allStates := []models.SessionState{
		models.StateIdle,
		models.StateCollectingDuration,
		models.StateAwaitingConfirmation,
	}
	for _, st := range allStates {
		h[stateIntentKey{st, models.IntentStartOver}] = c.handleStartBooking
		h[stateIntentKey{st, models.IntentHelp}] = c.handleHelp
		h[stateIntentKey{st, models.IntentRepeat}] = c.handleRepeat
		h[stateIntentKey{st, models.IntentCancel}] = c.handleDecline
		h[stateIntentKey{st, models.IntentStop}] = c.handleDecline
	}
	// Asking to book mid-flow restarts the flow.
	h[stateIntentKey{models.StateCollectingDuration, models.IntentBookMeeting}] = c.handleStartBooking
	h[stateIntentKey{models.StateAwaitingConfirmation, models.IntentBookMeeting}] = c.handleStartBooking

	return h
}

// HandleTurn processes one invocation end to end and produces exactly one
// response envelope.
func (c *Controller) HandleTurn(ctx context.Context, turn Turn) models.ResponseEnvelope {
	logger := utils.GetLogger()

	sess, err := c.Store.Get(ctx, turn.UserID)
	if err != nil {
		logger.Error("failed to load dialog session", zap.String("userID", turn.UserID), zap.Error(err))
		return models.NewResponseEnvelope(speechFailure, "", cardFailure(err), true)
	}

	var res Result
	switch turn.Type {
	case models.RequestTypeLaunch:
		res = c.handleStartBooking(ctx, sess, turn)
	case models.RequestTypeSessionEnded:
		// The platform is notifying us, not asking; nothing is spoken back.
		if err := c.Store.Clear(ctx, turn.UserID); err != nil {
			logger.Warn("failed to clear dialog session", zap.Error(err))
		}
		return models.ResponseEnvelope{Version: "1.0", Response: models.ResponseBody{ShouldEndSession: true}}
	default:
		res = c.dispatch(ctx, sess, turn)
	}

	if res.EndSession {
		if err := c.Store.Clear(ctx, turn.UserID); err != nil {
			logger.Warn("failed to clear dialog session", zap.Error(err))
		}
	} else {
		// Overwrite the replay buffer before persisting so a repeat request
		// always reproduces this turn.
		sess.RememberPrompt(res.Speech, res.Reprompt)
		if err := c.Store.Set(ctx, sess); err != nil {
			logger.Error("failed to persist dialog session", zap.String("userID", turn.UserID), zap.Error(err))
			return models.NewResponseEnvelope(speechFailure, "", cardFailure(err), true)
		}
	}

	return models.NewResponseEnvelope(res.Speech, res.Reprompt, res.Card, res.EndSession)
}

func (c *Controller) dispatch(ctx context.Context, sess *models.Session, turn Turn) Result {
	if h, ok := c.handlers[stateIntentKey{State: sess.State, Intent: turn.Intent}]; ok {
		return h(ctx, sess, turn)
	}
	speech, reprompt := fallbackFor(sess.State)
	return Result{Speech: speech, Reprompt: reprompt}
}
