// File: services/dialog/handlers.go
package dialog

import (
	"context"
	"errors"

	"roomly/models"
	"roomly/services/availability"
	"roomly/utils"

	"go.uber.org/zap"
)

// handleStartBooking opens (or restarts) the booking flow. Any prior
// booking fields are cleared as a group before re-entering duration
// collection.
func (c *Controller) handleStartBooking(ctx context.Context, sess *models.Session, turn Turn) Result {
	sess.ClearBooking()
	sess.State = models.StateCollectingDuration
	return Result{Speech: speechAskDuration, Reprompt: repromptAskDuration}
}

// handleDuration validates the supplied duration and, when it passes, races
// the candidate rooms for the requested window.
func (c *Controller) handleDuration(ctx context.Context, sess *models.Session, turn Turn) Result {
	logger := utils.GetLogger()

	raw := turn.Slots[models.SlotDuration]
	minutes, err := utils.ValidateMeetingDuration(raw, c.CapMinutes)
	if err != nil {
		// Input errors are recovered locally: reprompt, stay in this state.
		if errors.Is(err, utils.ErrDurationTooShort) || errors.Is(err, utils.ErrDurationTooLong) {
			return Result{Speech: promptDurationBounds(c.CapMinutes), Reprompt: repromptAskDuration}
		}
		return Result{Speech: promptDurationUnparseable(), Reprompt: repromptAskDuration}
	}

	req := models.NewBookingRequest(c.now(), minutes)

	candidates, err := c.Directory.Candidates(ctx)
	if err != nil {
		logger.Error("candidate directory lookup failed", zap.Error(err))
		return Result{Speech: speechFailure, Card: cardFailure(err), EndSession: true}
	}

	outcome := c.Resolver.Resolve(ctx, req, candidates)
	switch outcome.Kind {
	case availability.KindResolved:
		sess.SetBooking(outcome.Candidate, req, minutes)
		sess.State = models.StateAwaitingConfirmation
		return Result{
			Speech:   promptConfirm(outcome.Candidate.Name, minutes),
			Reprompt: repromptConfirm,
		}
	case availability.KindNoneFree:
		// Stay in duration collection; a shorter meeting might fit.
		return Result{Speech: promptNoneFree(req.Start, req.End), Reprompt: repromptAskDuration}
	default:
		logger.Error("availability resolution failed", zap.Error(outcome.Err))
		return Result{Speech: speechFailure, Card: cardFailure(outcome.Err), EndSession: true}
	}
}

// handleConfirm commits the booking the user just affirmed. The session
// ends on both success and failure, so the commit can never be re-entered
// from this state.
func (c *Controller) handleConfirm(ctx context.Context, sess *models.Session, turn Turn) Result {
	logger := utils.GetLogger()

	if !sess.HasBooking() {
		speech, reprompt := fallbackFor(sess.State)
		return Result{Speech: speech, Reprompt: reprompt}
	}

	candidate := models.Candidate{
		Name:         sess.RoomName,
		OwnerName:    sess.OwnerName,
		OwnerAddress: sess.OwnerAddress,
	}
	req := models.BookingRequest{Start: sess.Start, End: sess.End}

	if err := c.Committer.Commit(ctx, sess.UserID, candidate, req); err != nil {
		logger.Error("booking commit failed", zap.String("room", candidate.Name), zap.Error(err))
		return Result{Speech: speechFailure, Card: cardFailure(err), EndSession: true}
	}

	return Result{
		Speech:     speechBooked(sess.RoomName, sess.DurationMinutes),
		Card:       cardBooked(sess.RoomName, sess.DurationMinutes, sess.Start),
		EndSession: true,
	}
}

func (c *Controller) handleDecline(ctx context.Context, sess *models.Session, turn Turn) Result {
	return Result{Speech: speechGoodbye, EndSession: true}
}

func (c *Controller) handleHelp(ctx context.Context, sess *models.Session, turn Turn) Result {
	speech, reprompt := helpFor(sess.State)
	return Result{Speech: speech, Reprompt: reprompt}
}

// handleRepeat replays the previous turn's prompt verbatim.
func (c *Controller) handleRepeat(ctx context.Context, sess *models.Session, turn Turn) Result {
	if sess.LastSpeech == "" {
		speech, reprompt := fallbackFor(sess.State)
		return Result{Speech: speech, Reprompt: reprompt}
	}
	return Result{Speech: sess.LastSpeech, Reprompt: sess.LastReprompt}
}
