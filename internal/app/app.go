package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/specialistvlad/enforcetyping/enforce"
	"github.com/specialistvlad/enforcetyping/internal/config"
	"github.com/specialistvlad/enforcetyping/internal/ctxlog"
	"github.com/specialistvlad/enforcetyping/internal/registry"
)

// ConverterFactory builds the value converter for a loaded model once its
// packages are installed in reg.
type ConverterFactory func(reg *registry.Registry) config.Converter

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	logger    *slog.Logger
	config    *Config
	registry  *registry.Registry
	validator *enforce.Validator
	model     *config.Model
	converter config.Converter

	signatures map[string]*enforce.Signature
}

// NewApp is the constructor for the main application. It loads the
// manifests, installs their packages into a fresh registry and prepares a
// signature for every declared function. Logs are written to outW.
func NewApp(outW io.Writer, cfg *Config, loader config.Loader, newConverter ConverterFactory) (*App, error) {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, outW)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	model, err := loader.Load(ctx, cfg.Paths...)
	if err != nil {
		return nil, fmt.Errorf("failed to load manifests: %w", err)
	}
	logger.Debug("Manifests loaded and translated into unified model.")

	reg := registry.New()
	if err := installPackages(ctx, reg, model); err != nil {
		return nil, fmt.Errorf("failed to install manifest packages: %w", err)
	}

	signatures := make(map[string]*enforce.Signature, len(model.Functions))
	for name, fn := range model.Functions {
		signatures[name] = signatureOf(fn)
	}

	return &App{
		logger:     logger,
		config:     cfg,
		registry:   reg,
		validator:  enforce.New(enforce.Config{Registry: reg, Strict: cfg.Strict}),
		model:      model,
		converter:  newConverter(reg),
		signatures: signatures,
	}, nil
}

// Registry returns the application's registry. This is primarily for testing.
func (a *App) Registry() *registry.Registry {
	return a.registry
}

// Model returns the loaded manifest model.
func (a *App) Model() *config.Model {
	return a.model
}

// signatureOf converts a declared function into a validator signature.
func signatureOf(fn *config.Function) *enforce.Signature {
	sig := &enforce.Signature{Name: fn.Name}
	for _, p := range fn.Params {
		param := enforce.Param{Name: p.Name}
		if p.Type != "" {
			param.Type = enforce.Text(p.Type)
		}
		sig.Params = append(sig.Params, param)
	}
	if fn.Returns != "" {
		sig.Return = enforce.Text(fn.Returns)
	}
	return sig
}
