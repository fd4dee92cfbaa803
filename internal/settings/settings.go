package settings

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/specialistvlad/numconv/internal/ctxlog"
	"github.com/zclconf/go-cty/cty"
)

// File is the decoded settings file. A nil field was not set in the file.
type File struct {
	Output    *string `hcl:"output,optional"`
	LogLevel  *string `hcl:"log_level,optional"`
	LogFormat *string `hcl:"log_format,optional"`
	Workers   *int    `hcl:"workers,optional"`
	PadHex    *bool   `hcl:"pad_hex,optional"`
}

// Load parses and decodes the settings file at path, evaluating expressions
// against the current process environment.
func Load(ctx context.Context, path string) (*File, error) {
	return LoadWithEnv(ctx, path, environ())
}

// LoadWithEnv is Load with an explicit environment.
func LoadWithEnv(ctx context.Context, path string, env map[string]string) (*File, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Decoding settings file.", "path", path)

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse settings file %s: %w", path, diags)
	}

	var settings File
	diags = gohcl.DecodeBody(file.Body, evalContext(env), &settings)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode settings file %s: %w", path, diags)
	}

	logger.Debug("Successfully decoded settings file.", "path", path)
	return &settings, nil
}

// evalContext exposes env as an object of strings.
func evalContext(env map[string]string) *hcl.EvalContext {
	vals := make(map[string]cty.Value, len(env))
	for k, v := range env {
		vals[k] = cty.StringVal(v)
	}
	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"env": cty.ObjectVal(vals),
		},
	}
}

func environ() map[string]string {
	env := make(map[string]string)
	for _, kv := range os.Environ() {
		k, v, ok := strings.Cut(kv, "=")
		if !ok || k == "" {
			continue
		}
		env[k] = v
	}
	return env
}
