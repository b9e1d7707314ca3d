package availability

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"roomly/models"
)

type scriptedProbe struct {
	free  bool
	err   error
	delay time.Duration
	// waits for ctx cancellation instead of answering
	hang bool
}

// scriptedProber answers probes per candidate name with optional delays so
// tests can force specific completion orders.
type scriptedProber struct {
	probes map[string]scriptedProbe
	calls  atomic.Int32
}

func (p *scriptedProber) Probe(ctx context.Context, c models.Candidate, req models.BookingRequest) (bool, error) {
	p.calls.Add(1)
	probe := p.probes[c.Name]
	if probe.hang {
		<-ctx.Done()
		return false, ctx.Err()
	}
	if probe.delay > 0 {
		select {
		case <-time.After(probe.delay):
		case <-ctx.Done():
			return false, ctx.Err()
		}
	}
	return probe.free, probe.err
}

func candidates(names ...string) []models.Candidate {
	out := make([]models.Candidate, len(names))
	for i, n := range names {
		out[i] = models.Candidate{Name: n, OwnerName: n + " Owner", OwnerAddress: n + "@rooms.example.com"}
	}
	return out
}

func window() models.BookingRequest {
	start := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	return models.BookingRequest{Start: start, End: start.Add(30 * time.Minute)}
}

func TestResolver_Resolve(t *testing.T) {
	t.Run("single free candidate wins regardless of completion order", func(t *testing.T) {
		// The free room answers last; it must still win.
		prober := &scriptedProber{probes: map[string]scriptedProbe{
			"Mercury": {free: false},
			"Venus":   {free: false},
			"Earth":   {free: true, delay: 20 * time.Millisecond},
		}}
		r := NewResolver(prober, time.Second)

		outcome := r.Resolve(context.Background(), window(), candidates("Mercury", "Venus", "Earth"))
		if outcome.Kind != KindResolved {
			t.Fatalf("expected Resolved, got %s (err: %v)", outcome.Kind, outcome.Err)
		}
		if outcome.Candidate.Name != "Earth" {
			t.Fatalf("expected Earth to win, got %q", outcome.Candidate.Name)
		}
	})

	t.Run("first free result returns before slower probes settle", func(t *testing.T) {
		prober := &scriptedProber{probes: map[string]scriptedProbe{
			"Fast": {free: true},
			"Slow": {free: true, delay: 500 * time.Millisecond},
		}}
		r := NewResolver(prober, time.Second)

		startAt := time.Now()
		outcome := r.Resolve(context.Background(), window(), candidates("Fast", "Slow"))
		if outcome.Kind != KindResolved {
			t.Fatalf("expected Resolved, got %s", outcome.Kind)
		}
		if outcome.Candidate.Name != "Fast" {
			t.Fatalf("expected Fast to win, got %q", outcome.Candidate.Name)
		}
		if elapsed := time.Since(startAt); elapsed > 400*time.Millisecond {
			t.Fatalf("resolver waited %v for the losing probe", elapsed)
		}
	})

	t.Run("all busy settles to NoneFree", func(t *testing.T) {
		prober := &scriptedProber{probes: map[string]scriptedProbe{
			"Mercury": {free: false},
			"Venus":   {free: false},
		}}
		r := NewResolver(prober, time.Second)

		outcome := r.Resolve(context.Background(), window(), candidates("Mercury", "Venus"))
		if outcome.Kind != KindNoneFree {
			t.Fatalf("expected NoneFree, got %s", outcome.Kind)
		}
	})

	t.Run("busy plus error is Failed, never NoneFree", func(t *testing.T) {
		probeErr := errors.New("calendar unreachable")
		prober := &scriptedProber{probes: map[string]scriptedProbe{
			"Mercury": {free: false},
			"Venus":   {err: probeErr},
			"Earth":   {free: false},
		}}
		r := NewResolver(prober, time.Second)

		outcome := r.Resolve(context.Background(), window(), candidates("Mercury", "Venus", "Earth"))
		if outcome.Kind != KindFailed {
			t.Fatalf("expected Failed, got %s", outcome.Kind)
		}
		if !errors.Is(outcome.Err, probeErr) {
			t.Fatalf("expected the probe error, got %v", outcome.Err)
		}
	})

	t.Run("late error is discarded once a winner was found", func(t *testing.T) {
		prober := &scriptedProber{probes: map[string]scriptedProbe{
			"Earth": {free: true},
			"Venus": {err: errors.New("boom"), delay: 50 * time.Millisecond},
		}}
		r := NewResolver(prober, time.Second)

		outcome := r.Resolve(context.Background(), window(), candidates("Earth", "Venus"))
		if outcome.Kind != KindResolved {
			t.Fatalf("expected Resolved, got %s (err: %v)", outcome.Kind, outcome.Err)
		}
		if outcome.Candidate.Name != "Earth" {
			t.Fatalf("expected Earth, got %q", outcome.Candidate.Name)
		}
	})

	t.Run("hung probe is treated as a timeout error", func(t *testing.T) {
		prober := &scriptedProber{probes: map[string]scriptedProbe{
			"Mercury": {free: false},
			"Venus":   {hang: true},
		}}
		r := NewResolver(prober, 20*time.Millisecond)

		outcome := r.Resolve(context.Background(), window(), candidates("Mercury", "Venus"))
		if outcome.Kind != KindFailed {
			t.Fatalf("expected Failed, got %s", outcome.Kind)
		}
		if !errors.Is(outcome.Err, context.DeadlineExceeded) {
			t.Fatalf("expected deadline error, got %v", outcome.Err)
		}
	})

	t.Run("no candidates settles to NoneFree", func(t *testing.T) {
		r := NewResolver(&scriptedProber{probes: map[string]scriptedProbe{}}, time.Second)
		outcome := r.Resolve(context.Background(), window(), nil)
		if outcome.Kind != KindNoneFree {
			t.Fatalf("expected NoneFree, got %s", outcome.Kind)
		}
	})
}
