package integration_tests

import (
	"testing"

	"github.com/specialistvlad/enforcetyping/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestCLI_MergesHCL_FromDirectoryPath validates that the loader discovers and
// merges all HCL files below the given directory, whatever block they hold.
func TestCLI_MergesHCL_FromDirectoryPath(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	files := map[string]string{
		"types/models.hcl": `
package "shop" {
  class "Item" {
    attribute "price" { type = float }
  }
}`,
		"signatures/total.hcl": `
function "total" {
  param "items" { type = list(shop.Item) }
  returns = float
}`,
		"calls/a.hcl": `
call "total" {
  args   = [[new("shop.Item", { price = 1.5 })]]
  result = 1.5
}`,
		"calls/b.hcl": `
call "total" {
  args   = { items = [] }
  result = 0.5
}`,
		"notes.txt": "not a manifest",
	}

	// --- Act ---
	result := testutil.RunIntegrationTestWithOptions(t.Context(), t, files, testutil.Options{Workers: 1})

	// --- Assert ---
	require.NoError(t, result.Err, "app.Run() returned an unexpected error")
	model := result.App.Model()
	assert.Len(t, model.Packages, 1)
	assert.Len(t, model.Functions, 1)
	require.Len(t, model.Calls, 2)
	assert.Contains(t, model.Calls[0].Location, "a.hcl")
	assert.Contains(t, model.Calls[1].Location, "b.hcl")
	testutil.AssertCallPassed(t, result, 0)
	testutil.AssertCallPassed(t, result, 1)
}
