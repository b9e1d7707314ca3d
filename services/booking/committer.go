// File: services/booking/committer.go
package booking

import (
	"context"
	"fmt"
	"time"

	"roomly/models"
	"roomly/services/calendar"
	"roomly/utils"

	recordsRepo "roomly/database/repository/records"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Committer finalizes a booking with a single calendar write. No retry: a
// second write after an ambiguous failure risks a duplicate meeting, so an
// uncertain outcome is reported, never re-attempted.
type Committer interface {
	Commit(ctx context.Context, userID string, candidate models.Candidate, req models.BookingRequest) error
}

// DefaultCommitter creates the meeting on the caller's own calendar and
// invites the room's owning mailbox as a required attendee. Each commit
// carries a fresh request token so the provider can dedupe platform-level
// replays if it supports that.
type DefaultCommitter struct {
	Calendar calendar.API
	Records  recordsRepo.BookingRecordRepository
}

const (
	eventSubject = "Meeting room booking"
	eventBody    = "Booked via the Roomly voice assistant."
)

func (c *DefaultCommitter) Commit(ctx context.Context, userID string, candidate models.Candidate, req models.BookingRequest) error {
	logger := utils.GetLogger()
	token := uuid.New().String()

	draft := models.EventDraft{
		Subject:         eventSubject,
		Body:            eventBody,
		Start:           req.Start,
		End:             req.End,
		AttendeeName:    candidate.OwnerName,
		AttendeeAddress: candidate.OwnerAddress,
	}
	if err := c.Calendar.CreateEvent(ctx, draft, token); err != nil {
		return NewCommitError(fmt.Sprintf("failed to book %q: %v", candidate.Name, err))
	}

	record := models.BookingRecord{
		UserID:          userID,
		RoomName:        candidate.Name,
		OwnerAddress:    candidate.OwnerAddress,
		Start:           req.Start,
		End:             req.End,
		DurationMinutes: int(req.End.Sub(req.Start) / time.Minute),
		RequestToken:    token,
	}
	if c.Records != nil {
		// The meeting exists either way; a failed audit write is logged, not
		// surfaced to the user.
		if _, err := c.Records.Create(ctx, record); err != nil {
			logger.Error("failed to persist booking record",
				zap.String("room", candidate.Name), zap.Error(err))
		}
	}

	logger.Info("booking committed",
		zap.String("room", candidate.Name),
		zap.Time("start", req.Start),
		zap.Time("end", req.End))
	return nil
}
