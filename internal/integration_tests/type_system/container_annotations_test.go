package integration_tests

import (
	"testing"

	"github.com/specialistvlad/enforcetyping/internal/testutil"
	"github.com/stretchr/testify/require"
)

// TestTypeSystem_ContainerAnnotations runs the canonical container scenarios
// through manifests, once with each annotation dialect a manifest can use.
func TestTypeSystem_ContainerAnnotations(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	manifest := `
function "by_key" {
  param "data" { type = dict(str, int) }
}

function "by_key_text" {
  param "data" { type = "typing.Dict[str, int]" }
}

function "items" {
  param "items" { type = list(int) }
}

function "point" {
  param "p" { type = tuple(int, int) }
}

call "by_key"      { args = { data = { a = 1 } } }
call "by_key"      { args = { data = { a = "1" } } }
call "by_key_text" { args = { data = { a = "1" } } }
call "items"       { args = { items = [1, 1, 1] } }
call "items"       { args = { items = [1, 1, "1"] } }
call "point"       { args = { p = tuple(4, 1) } }
call "point"       { args = { p = tuple(4, 1, 1) } }
call "point"       { args = { p = [4, 1] } }
`

	// --- Act ---
	result := testutil.RunIntegrationTest(t, map[string]string{"main.hcl": manifest})

	// --- Assert ---
	require.Error(t, result.Err, "rejected calls must fail the run")
	testutil.AssertCallPassed(t, result, 0)
	testutil.AssertCallRejected(t, result, 1, "Should have a key type of str and a value type of int.")
	testutil.AssertCallRejected(t, result, 2, "a value type of str")
	testutil.AssertCallPassed(t, result, 3)
	testutil.AssertCallRejected(t, result, 4, "'items' has a str at index 2, but should be int.")
	testutil.AssertCallPassed(t, result, 5)
	testutil.AssertCallRejected(t, result, 6, "'p' has a length of 3, but should be a length of 2.")
	testutil.AssertCallRejected(t, result, 7, "'p' is a list, but should be tuple.")
}

// TestTypeSystem_ReturnValue checks that the produced result is validated
// against the declared return annotation.
func TestTypeSystem_ReturnValue(t *testing.T) {
	t.Parallel()

	manifest := `
function "describe" {
  param "data" { type = dict }
  returns = str
}

function "nothing" {
  returns = null
}

call "describe" {
  args   = { data = { index = 1 } }
  result = 1
}

call "describe" {
  args   = [{ index = 1 }]
  result = "index"
}

call "nothing" {}
`

	result := testutil.RunIntegrationTest(t, map[string]string{"main.hcl": manifest})

	testutil.AssertCallRejected(t, result, 0, "'return' is a int, but should be str.")
	testutil.AssertCallPassed(t, result, 1)
	testutil.AssertCallPassed(t, result, 2)
}

// TestTypeSystem_ExpectError checks calls that declare the failure they expect.
func TestTypeSystem_ExpectError(t *testing.T) {
	t.Parallel()

	manifest := `
function "square" {
  param "x" { type = int }
  returns = int
}

call "square" {
  args         = { x = "2" }
  expect_error = "'x' is a str, but should be int."
}

call "square" {
  args         = { x = 2 }
  result       = 4
  expect_error = "should be"
}

call "square" {
  args         = { x = 2.5 }
  result       = 6.25
  expect_error = "should be str"
}
`

	result := testutil.RunIntegrationTest(t, map[string]string{"main.hcl": manifest})

	testutil.AssertCallPassed(t, result, 0)
	require.False(t, testutil.Outcome(t, result, 1).Passed, "a call expecting an error must fail when none occurs")
	require.False(t, testutil.Outcome(t, result, 2).Passed, "the error message must contain the expected text")
	require.ErrorContains(t, result.Err, "2 of 3")
}

// TestTypeSystem_PermissiveAndStrict checks the handling of annotations that
// cannot be interpreted.
func TestTypeSystem_PermissiveAndStrict(t *testing.T) {
	t.Parallel()

	manifest := `
function "loose" {
  param "x" { type = "not a type" }
}

function "nested" {
  param "x" { type = list(Unknown) }
}

call "loose"  { args = { x = 1 } }
call "nested" { args = { x = [1] } }
`
	files := map[string]string{"main.hcl": manifest}

	permissive := testutil.RunIntegrationTest(t, files)
	testutil.AssertCallPassed(t, permissive, 0)
	testutil.AssertCallRejected(t, permissive, 1, "Unknown")
	require.Contains(t, permissive.LogOutput, "Annotation cannot be interpreted, skipping validation for this binding.")

	strict := testutil.RunIntegrationTestWithOptions(t.Context(), t, files, testutil.Options{Strict: true})
	testutil.AssertCallRejected(t, strict, 0, "'x' has an invalid annotation")
	testutil.AssertCallRejected(t, strict, 1, "Unknown")
}
