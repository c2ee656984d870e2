package testutil

import (
	"testing"

	"github.com/specialistvlad/enforcetyping/internal/app"
	"github.com/stretchr/testify/require"
)

// Outcome returns the outcome of the index-th declared call.
func Outcome(t *testing.T, result *HarnessResult, index int) app.Outcome {
	t.Helper()
	require.NoError(t, startupError(result), "app failed to start")
	require.Less(t, index, len(result.Outcomes), "call %d was not checked", index)
	return result.Outcomes[index]
}

// AssertCallPassed checks that the index-th declared call conformed.
func AssertCallPassed(t *testing.T, result *HarnessResult, index int) {
	t.Helper()
	o := Outcome(t, result, index)
	require.True(t, o.Passed, "expected call %d (%s at %s) to pass, got: %v", index, o.Call.Function, o.Call.Location, o.Err)
}

// AssertCallRejected checks that the index-th declared call failed
// validation with a message containing want.
func AssertCallRejected(t *testing.T, result *HarnessResult, index int, want string) {
	t.Helper()
	o := Outcome(t, result, index)
	require.Error(t, o.Err, "expected call %d (%s at %s) to be rejected", index, o.Call.Function, o.Call.Location)
	require.Contains(t, o.Err.Error(), want)
}

func startupError(result *HarnessResult) error {
	if result.App == nil {
		return result.Err
	}
	return nil
}
