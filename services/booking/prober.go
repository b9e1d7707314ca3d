// File: services/booking/prober.go
package booking

import (
	"context"
	"fmt"

	"roomly/models"
	"roomly/services/calendar"
)

// CalendarProber answers availability probes by querying the candidate's
// calendar for events overlapping the requested window. Empty means free.
type CalendarProber struct {
	Calendar calendar.API
}

func (p *CalendarProber) Probe(ctx context.Context, candidate models.Candidate, req models.BookingRequest) (bool, error) {
	events, err := p.Calendar.ListEvents(ctx, candidate.Name, req.Start, req.End)
	if err != nil {
		return false, fmt.Errorf("probing %q: %w", candidate.Name, err)
	}
	return len(events) == 0, nil
}
