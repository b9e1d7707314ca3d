// File: services/booking/directory.go
package booking

import (
	"context"
	"fmt"
	"strings"

	"roomly/models"
	"roomly/services/calendar"
)

// CandidateDirectory yields the rooms eligible for availability probing.
type CandidateDirectory interface {
	Candidates(ctx context.Context) ([]models.Candidate, error)
}

// DefaultCandidateDirectory filters the provider's calendar directory down
// to the configured allow-list of bookable room names.
type DefaultCandidateDirectory struct {
	Calendar  calendar.API
	RoomNames []string
}

// Candidates lists the bookable rooms visible to the caller. Name matching
// against the allow-list is case-insensitive.
func (d *DefaultCandidateDirectory) Candidates(ctx context.Context) ([]models.Candidate, error) {
	calendars, err := d.Calendar.ListCalendars(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list calendars: %w", err)
	}

	allowed := make(map[string]bool, len(d.RoomNames))
	for _, name := range d.RoomNames {
		allowed[strings.ToLower(name)] = true
	}

	var candidates []models.Candidate
	for _, cal := range calendars {
		if !allowed[strings.ToLower(cal.Name)] {
			continue
		}
		candidates = append(candidates, models.Candidate{
			Name:         cal.Name,
			OwnerName:    cal.Owner.Name,
			OwnerAddress: cal.Owner.Address,
		})
	}
	if len(candidates) == 0 {
		return nil, NewDirectoryError("no bookable rooms are visible to this account")
	}
	return candidates, nil
}
