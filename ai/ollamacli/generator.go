// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


// Package ollamacli provides an out-of-process ai.ResponseGenerator that
// shells out to the ollama binary. It is useful when no OpenAI-compatible
// HTTP endpoint is exposed but a local ollama installation is available.
package ollamacli

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os/exec"
	"strings"
	"time"

	"github.com/poiesic/cinemind/ai"
)

// ErrModelRequired is returned when a generator is constructed without a model name.
var ErrModelRequired = errors.New("model name required")

const defaultBinary = "ollama"

// Generator implements ai.ResponseGenerator by invoking `ollama run <model> -- <prompt>`.
// Each invocation is bounded by the configured timeout; exceeding it kills
// the child process and returns context.DeadlineExceeded.
type Generator struct {
	binary  string
	model   string
	timeout time.Duration
	logger  *slog.Logger
}

// Option configures a Generator.
type Option func(*Generator)

// WithBinary overrides the executable name or path.
// Default is "ollama", resolved through PATH.
func WithBinary(binary string) Option {
	return func(g *Generator) {
		if binary != "" {
			g.binary = binary
		}
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(g *Generator) {
		if logger == nil {
			logger = slog.Default()
		}
		g.logger = logger
	}
}

// NewGenerator creates a subprocess-backed generator for the given model.
// A non-positive timeout falls back to 60 seconds.
//
// Returns ai.ResponseGenerator interface to enforce abstraction.
func NewGenerator(model string, timeout time.Duration, opts ...Option) (ai.ResponseGenerator, error) {
	if model == "" {
		return nil, ErrModelRequired
	}
	if timeout <= 0 {
		timeout = 60 * time.Second
	}

	g := &Generator{
		binary:  defaultBinary,
		model:   model,
		timeout: timeout,
		logger:  slog.Default().With("component", "ollamacli-generator"),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g, nil
}

// Generate runs the ollama binary with the prompt and returns its stdout.
// Stderr is included in the error on a non-zero exit.
func (g *Generator) Generate(ctx context.Context, prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	g.logger.Debug("invoking generator subprocess", "binary", g.binary, "model", g.model, "promptLength", len(prompt))

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, g.binary, "run", g.model, "--", prompt)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		// Prefer the deadline error so callers can tell timeouts apart
		if ctxErr := ctx.Err(); ctxErr != nil {
			g.logger.Error("generator subprocess timed out", "timeout", g.timeout)
			return "", ctxErr
		}
		g.logger.Error("generator subprocess failed", "err", err, "stderr", stderr.String())
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return "", fmt.Errorf("%w: %s", err, msg)
		}
		return "", err
	}

	return strings.TrimSpace(stdout.String()), nil
}
