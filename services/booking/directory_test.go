package booking

import (
	"context"
	"errors"
	"testing"
	"time"

	"roomly/models"
)

// fakeCalendarAPI is an in-memory stand-in for the provider client.
type fakeCalendarAPI struct {
	calendars    []models.CalendarInfo
	calendarsErr error

	events    map[string][]models.CalendarEvent
	eventsErr error

	created      []models.EventDraft
	createTokens []string
	createErr    error
}

func (f *fakeCalendarAPI) ListCalendars(ctx context.Context) ([]models.CalendarInfo, error) {
	if f.calendarsErr != nil {
		return nil, f.calendarsErr
	}
	return f.calendars, nil
}

func (f *fakeCalendarAPI) ListEvents(ctx context.Context, name string, start, end time.Time) ([]models.CalendarEvent, error) {
	if f.eventsErr != nil {
		return nil, f.eventsErr
	}
	return f.events[name], nil
}

func (f *fakeCalendarAPI) CreateEvent(ctx context.Context, draft models.EventDraft, token string) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.created = append(f.created, draft)
	f.createTokens = append(f.createTokens, token)
	return nil
}

func calInfo(name, ownerName, ownerAddr string) models.CalendarInfo {
	return models.CalendarInfo{Name: name, Owner: models.CalendarOwner{Name: ownerName, Address: ownerAddr}}
}

func TestDefaultCandidateDirectory_Candidates(t *testing.T) {
	t.Run("filters directory to the allow-list, case-insensitively", func(t *testing.T) {
		api := &fakeCalendarAPI{calendars: []models.CalendarInfo{
			calInfo("Boardroom", "Boardroom Mailbox", "boardroom@corp.example.com"),
			calInfo("Personal", "Jo", "jo@corp.example.com"),
			calInfo("huddle space", "Huddle Mailbox", "huddle@corp.example.com"),
		}}
		d := &DefaultCandidateDirectory{Calendar: api, RoomNames: []string{"boardroom", "Huddle Space"}}

		got, err := d.Candidates(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 2 {
			t.Fatalf("expected 2 candidates, got %d: %+v", len(got), got)
		}
		if got[0].Name != "Boardroom" || got[0].OwnerAddress != "boardroom@corp.example.com" {
			t.Fatalf("unexpected first candidate: %+v", got[0])
		}
		if got[1].Name != "huddle space" {
			t.Fatalf("unexpected second candidate: %+v", got[1])
		}
	})

	t.Run("empty result is a directory error", func(t *testing.T) {
		api := &fakeCalendarAPI{calendars: []models.CalendarInfo{
			calInfo("Personal", "Jo", "jo@corp.example.com"),
		}}
		d := &DefaultCandidateDirectory{Calendar: api, RoomNames: []string{"Boardroom"}}

		_, err := d.Candidates(context.Background())
		var dirErr *DirectoryError
		if !errors.As(err, &dirErr) {
			t.Fatalf("expected DirectoryError, got %v", err)
		}
	})

	t.Run("provider failure is wrapped", func(t *testing.T) {
		api := &fakeCalendarAPI{calendarsErr: errors.New("503 from provider")}
		d := &DefaultCandidateDirectory{Calendar: api, RoomNames: []string{"Boardroom"}}

		if _, err := d.Candidates(context.Background()); err == nil {
			t.Fatal("expected an error")
		}
	})
}

func TestCalendarProber_Probe(t *testing.T) {
	start := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	req := models.BookingRequest{Start: start, End: start.Add(time.Hour)}
	room := models.Candidate{Name: "Boardroom", OwnerAddress: "boardroom@corp.example.com"}

	t.Run("no overlapping events means free", func(t *testing.T) {
		api := &fakeCalendarAPI{events: map[string][]models.CalendarEvent{}}
		p := &CalendarProber{Calendar: api}

		free, err := p.Probe(context.Background(), room, req)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !free {
			t.Fatal("expected free")
		}
	})

	t.Run("overlapping event means busy", func(t *testing.T) {
		api := &fakeCalendarAPI{events: map[string][]models.CalendarEvent{
			"Boardroom": {{Subject: "Standup", Start: start, End: start.Add(15 * time.Minute)}},
		}}
		p := &CalendarProber{Calendar: api}

		free, err := p.Probe(context.Background(), room, req)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if free {
			t.Fatal("expected busy")
		}
	})

	t.Run("query failure propagates", func(t *testing.T) {
		api := &fakeCalendarAPI{eventsErr: errors.New("timeout")}
		p := &CalendarProber{Calendar: api}

		if _, err := p.Probe(context.Background(), room, req); err == nil {
			t.Fatal("expected an error")
		}
	})
}
