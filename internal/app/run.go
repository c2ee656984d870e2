package app

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/specialistvlad/enforcetyping/enforce"
	"github.com/specialistvlad/enforcetyping/internal/config"
	"github.com/specialistvlad/enforcetyping/internal/ctxlog"
)

// Outcome is the result of checking one declared call.
type Outcome struct {
	Call *config.Call
	// Err is the error the call produced, if any. A call expecting an error
	// can pass with a non-nil Err.
	Err    error
	Passed bool
}

// ErrCallsFailed is returned by Run when at least one call did not pass.
var ErrCallsFailed = errors.New("calls failed")

// Run checks every declared call and reports each outcome through the
// logger. It returns an error wrapping ErrCallsFailed if any call failed.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	if len(a.model.Calls) == 0 {
		a.logger.Warn("No calls found in manifests, nothing to check.")
		return nil
	}

	outcomes := a.Check(ctx)
	failed := 0
	for _, o := range outcomes {
		logger := a.logger.With("function", o.Call.Function, "location", o.Call.Location)
		switch {
		case !o.Passed:
			failed++
			logger.Error("Call failed.", "error", o.Err)
		case o.Err != nil:
			logger.Info("Call failed as expected.", "error", o.Err)
		default:
			logger.Info("Call passed.")
		}
	}

	a.logger.Info("Check finished.", "calls", len(outcomes), "failed", failed)
	if failed > 0 {
		return fmt.Errorf("%d of %d: %w", failed, len(outcomes), ErrCallsFailed)
	}
	return nil
}

// Check validates every declared call concurrently and returns the outcomes
// in declaration order.
func (a *App) Check(ctx context.Context) []Outcome {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	calls := a.model.Calls
	outcomes := make([]Outcome, len(calls))

	readyChan := make(chan int)
	var wg sync.WaitGroup
	workers := a.config.Workers
	if workers < 1 {
		workers = 1
	}
	for workerID := 0; workerID < workers; workerID++ {
		wg.Add(1)
		go func(workerID int) {
			defer wg.Done()
			a.worker(ctx, calls, outcomes, readyChan, workerID)
		}(workerID)
	}

	for i := range calls {
		readyChan <- i
	}
	close(readyChan)
	wg.Wait()
	return outcomes
}

// worker is the processing loop for a single concurrent worker. Each index
// is written by exactly one worker.
func (a *App) worker(ctx context.Context, calls []*config.Call, outcomes []Outcome, readyChan <-chan int, workerID int) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Worker started.", "workerID", workerID)

	for i := range readyChan {
		call := calls[i]
		callCtx, callLogger := ctxlog.With(ctx, "workerID", workerID, "function", call.Function, "location", call.Location)
		callLogger.Debug("Worker picked up call.")

		err := a.safeCheckCall(callCtx, call)
		outcomes[i] = Outcome{Call: call, Err: err, Passed: passed(call, err)}
	}
	logger.Debug("Worker finished.", "workerID", workerID)
}

// passed decides a call's outcome. A call expecting an error passes only
// when validation failed with a message containing the expected text.
func passed(call *config.Call, err error) bool {
	if call.ExpectError == "" {
		return err == nil
	}
	return err != nil && errors.Is(err, enforce.ErrTypeMismatch) && strings.Contains(err.Error(), call.ExpectError)
}

// safeCheckCall runs checkCall, turning a panic into the call's error.
// Manifest packages are loaded lazily while calls are checked, so a failing
// package load surfaces here rather than at startup.
func (a *App) safeCheckCall(ctx context.Context, call *config.Call) (err error) {
	defer func() {
		if r := recover(); r != nil {
			ctxlog.FromContext(ctx).Error("Call check panicked.", "panic", r)
			err = fmt.Errorf("call check panicked: %v", r)
		}
	}()
	return a.checkCall(ctx, call)
}

// checkCall evaluates the call's values and invokes the declared function
// through the validator. The "function" simply produces the declared result.
func (a *App) checkCall(ctx context.Context, call *config.Call) error {
	sig, ok := a.signatures[call.Function]
	if !ok {
		return fmt.Errorf("call to undeclared function '%s'", call.Function)
	}

	args, err := a.converter.Value(ctx, call.Args)
	if err != nil {
		return fmt.Errorf("invalid args: %w", err)
	}
	result, err := a.converter.Value(ctx, call.Result)
	if err != nil {
		return fmt.Errorf("invalid result: %w", err)
	}

	fn, err := a.validator.Wrap(sig, producer(len(sig.Params), result))
	if err != nil {
		return err
	}

	switch v := args.(type) {
	case nil:
		_, err = fn.Call(ctx)
	case []any:
		_, err = fn.Call(ctx, v...)
	case map[string]any:
		_, err = fn.CallKw(ctx, nil, v)
	default:
		return fmt.Errorf("args must be an object or a list, got %T", args)
	}
	return err
}

var anyType = reflect.TypeOf((*any)(nil)).Elem()

// producer builds a function of arity n that ignores its arguments and
// returns result.
func producer(n int, result any) any {
	in := make([]reflect.Type, n)
	for i := range in {
		in[i] = anyType
	}
	fnType := reflect.FuncOf(in, []reflect.Type{anyType}, false)
	out := reflect.ValueOf(&result).Elem()
	return reflect.MakeFunc(fnType, func([]reflect.Value) []reflect.Value {
		return []reflect.Value{out}
	}).Interface()
}
