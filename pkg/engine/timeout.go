package engine

import (
	"fmt"
	"time"

	"github.com/turboflow/geom/pkg/geometry"
)

// EvalTimeout is the default hard limit for a single evaluation.
const EvalTimeout = 5 * time.Second

// evalResult is the internal type used to pass evaluation results
// through channels.
type evalResult struct {
	domain *geometry.Cartesian
	errors []EvalError
	err    error
}

// waitWithTimeout waits for a result from ch, but returns a timeout error
// if the evaluation exceeds the engine's budget. It uses a generation
// counter to discard stale results from previous evaluations.
//
// On timeout, the goroutine may still be running; the generation check
// ensures its result is discarded when it eventually completes.
func waitWithTimeout(ch <-chan evalResult, gen uint64, e *Engine) (*geometry.Cartesian, []EvalError, error) {
	budget := e.Timeout
	if budget <= 0 {
		budget = EvalTimeout
	}
	timer := time.NewTimer(budget)
	defer timer.Stop()

	select {
	case res := <-ch:
		// Check if this result is still relevant (not stale).
		e.mu.Lock()
		current := e.generation
		e.mu.Unlock()

		if gen != current {
			// A newer evaluation was started; discard this result.
			return nil, nil, fmt.Errorf("evaluation superseded by newer request")
		}

		return res.domain, res.errors, res.err

	case <-timer.C:
		return nil, nil, fmt.Errorf("evaluation timed out after %s", budget)
	}
}
