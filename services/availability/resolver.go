// File: services/availability/resolver.go
package availability

import (
	"context"
	"time"

	"roomly/models"
	"roomly/utils"

	"go.uber.org/zap"
)

// OutcomeKind classifies the result of an availability search.
type OutcomeKind string

const (
	KindResolved OutcomeKind = "resolved"
	KindNoneFree OutcomeKind = "noneFree"
	KindFailed   OutcomeKind = "failed"
)

// Outcome is the single result of resolving a booking window against a set
// of candidate rooms: the winning candidate, a definitive "every room is
// busy", or the first probe failure.
type Outcome struct {
	Kind      OutcomeKind
	Candidate models.Candidate
	Err       error
}

func Resolved(c models.Candidate) Outcome { return Outcome{Kind: KindResolved, Candidate: c} }
func NoneFree() Outcome                   { return Outcome{Kind: KindNoneFree} }
func Failed(err error) Outcome            { return Outcome{Kind: KindFailed, Err: err} }

// Prober answers whether one candidate's calendar is free over a window.
// Probes are read-only, so abandoning one mid-flight is harmless.
type Prober interface {
	Probe(ctx context.Context, candidate models.Candidate, req models.BookingRequest) (free bool, err error)
}

// Resolver races one probe per candidate and applies the winner policy:
// first free room wins immediately; otherwise the search settles to
// NoneFree only when every probe reported busy, and to Failed when any
// probe errored.
type Resolver struct {
	Prober       Prober
	ProbeTimeout time.Duration
}

func NewResolver(prober Prober, probeTimeout time.Duration) *Resolver {
	return &Resolver{Prober: prober, ProbeTimeout: probeTimeout}
}

type probeResult struct {
	candidate models.Candidate
	free      bool
	err       error
}

// Resolve probes every candidate concurrently. Completion order decides the
// winner; repeated calls with several free rooms may legitimately pick
// different ones.
func (r *Resolver) Resolve(ctx context.Context, req models.BookingRequest, candidates []models.Candidate) Outcome {
	logger := utils.GetLogger()

	if len(candidates) == 0 {
		return NoneFree()
	}

	probeCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	// Buffered to the fan-out width so abandoned probes never block on send.
	results := make(chan probeResult, len(candidates))
	for _, c := range candidates {
		go func(c models.Candidate) {
			pctx, pcancel := context.WithTimeout(probeCtx, r.ProbeTimeout)
			defer pcancel()
			free, err := r.Prober.Probe(pctx, c, req)
			results <- probeResult{candidate: c, free: free, err: err}
		}(c)
	}

	var firstErr error
	for settled := 0; settled < len(candidates); settled++ {
		res := <-results
		switch {
		case res.err != nil:
			logger.Warn("availability probe failed",
				zap.String("room", res.candidate.Name), zap.Error(res.err))
			if firstErr == nil {
				firstErr = res.err
			}
		case res.free:
			// Winner. Outstanding probes are abandoned; their late results
			// land in the buffered channel and are discarded.
			return Resolved(res.candidate)
		}
	}

	// Full settlement with no winner. A failure is a reliability problem the
	// caller should hear about, never folded into "all rooms are busy".
	if firstErr != nil {
		return Failed(firstErr)
	}
	return NoneFree()
}
