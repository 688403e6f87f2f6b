package soda

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/lvyanru/soda-apiserver/internal/domain"
	"github.com/lvyanru/soda-apiserver/internal/domain/entity"
)

// ExecutionGate serializes scan engine invocations process-wide. The engine
// corrupts shared emitter state when two scans run at once, so at most one
// evaluation is in flight at any instant; everyone else queues. This is a
// correctness requirement, not a tuning knob.
//
// The gate is a capacity-1 token channel rather than a sync.Mutex so a
// queued caller can abandon its wait on context cancellation without
// touching gate state.
type ExecutionGate struct {
	engine   domain.ScanEngine
	token    chan struct{}
	deadline time.Duration
	logger   *slog.Logger
}

// NewExecutionGate creates the gate. scanDeadline bounds a single holder's
// occupancy.
func NewExecutionGate(engine domain.ScanEngine, scanDeadline time.Duration, logger *slog.Logger) *ExecutionGate {
	if logger == nil {
		// noop logger by default
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &ExecutionGate{
		engine:   engine,
		token:    make(chan struct{}, 1),
		deadline: scanDeadline,
		logger:   logger,
	}
}

type evalResult struct {
	results *entity.ScanResults
	err     error
}

// RunExclusive acquires the gate, runs one engine evaluation under the scan
// deadline and releases the gate on every exit path. On deadline expiry the
// in-flight call is abandoned from the caller's perspective and the token is
// released as soon as the engine call returns, so one slow scan cannot
// starve the queue beyond the deadline.
func (g *ExecutionGate) RunExclusive(ctx context.Context, scanID, dataSourceYAML, checksYAML string) (*entity.ScanResults, error) {
	waitStart := time.Now()
	select {
	case g.token <- struct{}{}:
	case <-ctx.Done():
		// abandoned while queued, nothing acquired and nothing to release
		return nil, domain.NewScanTimeoutError(
			fmt.Sprintf("gave up waiting for the scan gate after %s", time.Since(waitStart).Round(time.Millisecond)))
	}

	if waited := time.Since(waitStart); waited > time.Second {
		g.logger.Info("scan queued behind earlier scans", "scan_id", scanID, "waited", waited.String())
	}

	scanCtx, cancel := context.WithTimeout(ctx, g.deadline)

	done := make(chan evalResult, 1)
	go func() {
		results, err := g.engine.Evaluate(scanCtx, scanID, dataSourceYAML, checksYAML)
		done <- evalResult{results: results, err: err}
	}()

	select {
	case r := <-done:
		cancel()
		<-g.token
		if r.err != nil {
			if errors.Is(r.err, context.DeadlineExceeded) {
				return nil, domain.NewScanTimeoutError(
					fmt.Sprintf("scan exceeded the %s deadline", g.deadline))
			}
			if errors.Is(r.err, context.Canceled) {
				return nil, domain.NewScanTimeoutError("scan canceled by the caller")
			}
			return nil, r.err
		}
		return r.results, nil

	case <-scanCtx.Done():
		cancel()
		// The result is discarded; release the token the moment the
		// abandoned call returns. The engine honors cancellation, so
		// this happens promptly and queued callers are not starved.
		go func() {
			<-done
			<-g.token
			g.logger.Debug("gate released after abandoned scan", "scan_id", scanID)
		}()
		if ctx.Err() != nil {
			return nil, domain.NewScanTimeoutError("scan canceled by the caller")
		}
		return nil, domain.NewScanTimeoutError(
			fmt.Sprintf("scan exceeded the %s deadline", g.deadline))
	}
}
