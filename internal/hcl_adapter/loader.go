package hcl_adapter

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/specialistvlad/enforcetyping/internal/config"
	"github.com/specialistvlad/enforcetyping/internal/ctxlog"
	"github.com/specialistvlad/enforcetyping/internal/fsutil"
)

// Loader is the HCL-specific implementation of the config.Loader interface.
type Loader struct{}

// NewLoader creates a new HCL manifest loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load orchestrates the entire HCL manifest loading process. Directories are
// searched recursively for .hcl files; any block may appear in any file.
func (l *Loader) Load(ctx context.Context, paths ...string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("HCL loader started.", "path_count", len(paths))

	hclFiles, err := fsutil.CollectFiles(paths, ".hcl")
	if err != nil {
		return nil, err
	}
	logger.Debug("Discovered HCL files.", "count", len(hclFiles))

	parser := hclparse.NewParser()
	model := config.NewModel()
	for _, file := range hclFiles {
		hclFile, diags := parser.ParseHCLFile(file)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to parse HCL file %s: %w", file, diags)
		}
		if err := l.decodeInto(ctx, model, hclFile.Body, file); err != nil {
			return nil, err
		}
	}

	logger.Debug("HCL loading complete.", "packages", len(model.Packages), "functions", len(model.Functions), "calls", len(model.Calls))
	return model, nil
}

// LoadSource loads a single manifest held in memory.
func (l *Loader) LoadSource(ctx context.Context, src []byte, filename string) (*config.Model, error) {
	hclFile, diags := hclparse.NewParser().ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file %s: %w", filename, diags)
	}
	model := config.NewModel()
	if err := l.decodeInto(ctx, model, hclFile.Body, filename); err != nil {
		return nil, err
	}
	return model, nil
}

// decodeInto decodes one file body and merges its blocks into the model.
func (l *Loader) decodeInto(ctx context.Context, model *config.Model, body hcl.Body, file string) error {
	var root fileRoot
	if diags := gohcl.DecodeBody(body, nil, &root); diags.HasErrors() {
		return fmt.Errorf("failed to decode HCL file %s: %w", file, diags)
	}

	for _, p := range root.Packages {
		if _, exists := model.Packages[p.Path]; exists {
			return fmt.Errorf("%s: package '%s' is declared more than once", file, p.Path)
		}
		pkg, err := l.translatePackage(ctx, p)
		if err != nil {
			return fmt.Errorf("%s: %w", file, err)
		}
		model.Packages[pkg.Path] = pkg
	}
	for _, f := range root.Functions {
		if _, exists := model.Functions[f.Name]; exists {
			return fmt.Errorf("%s: function '%s' is declared more than once", file, f.Name)
		}
		fn, err := l.translateFunction(ctx, f)
		if err != nil {
			return fmt.Errorf("%s: %w", file, err)
		}
		model.Functions[fn.Name] = fn
	}
	for _, c := range root.Calls {
		model.Calls = append(model.Calls, l.translateCall(c))
	}
	return nil
}
