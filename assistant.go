// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//	http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package cinemind answers free-text questions about a media catalog. It
// loads a CSV catalog, embeds it once at startup, and then serves queries
// through a filter-first, semantic-fallback retrieval pipeline feeding an
// LLM-generated reply.
package cinemind

import (
	"context"
	"log/slog"

	"github.com/poiesic/cinemind/ai"
	"github.com/poiesic/cinemind/ai/openai"
	"github.com/poiesic/cinemind/catalog"
	"github.com/poiesic/cinemind/chat"
	"github.com/poiesic/cinemind/storage"
	"github.com/poiesic/cinemind/storage/badger"
)

// Assistant bundles the loaded catalog, the AI services, and the chat
// pipeline behind a single handle. Construct once at startup, share freely;
// Chat calls are independent and safe to run concurrently.
type Assistant struct {
	catalog  *catalog.Catalog
	provider ai.Provider
	cache    storage.VectorCache
	chatbot  *chat.Chatbot
	logger   *slog.Logger
}

// AssistantOption configures an Assistant.
type AssistantOption func(*assistantOptions)

type assistantOptions struct {
	aiConfig      *ai.Config
	provider      ai.Provider
	generator     ai.ResponseGenerator
	cachePath     string
	poolSize      int
	fallbackLimit int
}

// WithAIConfig sets the AI service configuration used to build the default
// provider. Ignored when WithProvider is given.
func WithAIConfig(config *ai.Config) AssistantOption {
	return func(o *assistantOptions) {
		o.aiConfig = config
	}
}

// WithProvider replaces the default OpenAI-compatible provider, mainly for
// tests.
func WithProvider(provider ai.Provider) AssistantOption {
	return func(o *assistantOptions) {
		o.provider = provider
	}
}

// WithGenerator replaces the provider's response generator, for example with
// the ollama CLI one.
func WithGenerator(generator ai.ResponseGenerator) AssistantOption {
	return func(o *assistantOptions) {
		o.generator = generator
	}
}

// WithCachePath enables the on-disk embedding cache at the given path.
// Without it every start re-embeds the whole catalog.
func WithCachePath(path string) AssistantOption {
	return func(o *assistantOptions) {
		o.cachePath = path
	}
}

// WithPoolSize sets the worker pool size for startup embedding.
func WithPoolSize(size int) AssistantOption {
	return func(o *assistantOptions) {
		o.poolSize = size
	}
}

// WithFallbackLimit sets how many entries the semantic fallback returns.
func WithFallbackLimit(limit int) AssistantOption {
	return func(o *assistantOptions) {
		o.fallbackLimit = limit
	}
}

// NewAssistant loads the catalog from csvPath, embeds it, and wires up the
// chat pipeline. The context bounds the startup embedding work.
func NewAssistant(ctx context.Context, csvPath string, opts ...AssistantOption) (*Assistant, error) {
	// Apply options
	options := &assistantOptions{
		aiConfig: ai.DefaultConfig(), // Default if not provided
	}
	for _, opt := range opts {
		opt(options)
	}
	if options.aiConfig == nil {
		options.aiConfig = ai.DefaultConfig()
	}

	entries, err := catalog.LoadFile(csvPath)
	if err != nil {
		return nil, err
	}

	// Create AI provider with configured settings
	provider := options.provider
	if provider == nil {
		provider, err = openai.NewProvider(options.aiConfig)
		if err != nil {
			return nil, err
		}
	}

	// Open the embedding cache when configured
	var cache storage.VectorCache
	if options.cachePath != "" {
		backend, err := badger.OpenBackend(options.cachePath, false)
		if err != nil {
			provider.Close()
			return nil, err
		}
		cache, err = badger.NewVectorCache(backend)
		if err != nil {
			backend.Close()
			provider.Close()
			return nil, err
		}
	}

	closeAll := func() {
		if cache != nil {
			cache.Close()
		}
		provider.Close()
	}

	cat := catalog.New(entries)
	embedOpts := make([]catalog.EmbedOption, 0, 2)
	if options.poolSize > 0 {
		embedOpts = append(embedOpts, catalog.WithPoolSize(options.poolSize))
	}
	if cache != nil {
		embedOpts = append(embedOpts, catalog.WithVectorCache(cache, options.aiConfig.EmbeddingModel))
	}
	if err := cat.Embed(ctx, provider.Embedder(), embedOpts...); err != nil {
		closeAll()
		return nil, err
	}

	chatOpts := make([]chat.Option, 0, 2)
	if options.generator != nil {
		chatOpts = append(chatOpts, chat.WithGenerator(options.generator))
	}
	if options.fallbackLimit > 0 {
		chatOpts = append(chatOpts, chat.WithFallbackLimit(options.fallbackLimit))
	}
	chatbot, err := chat.NewChatbot(cat, provider, chatOpts...)
	if err != nil {
		closeAll()
		return nil, err
	}

	return &Assistant{
		catalog:  cat,
		provider: provider,
		cache:    cache,
		chatbot:  chatbot,
		logger:   slog.Default(),
	}, nil
}

// Chat answers a query with a generated reply.
func (a *Assistant) Chat(ctx context.Context, query string) (string, error) {
	return a.chatbot.Chat(ctx, query)
}

// ChatWithMonitor answers a query with pipeline stage callbacks.
func (a *Assistant) ChatWithMonitor(ctx context.Context, query string, monitor chat.ChatMonitor) (string, error) {
	return a.chatbot.ChatWithMonitor(ctx, query, monitor)
}

// Catalog returns the loaded catalog.
func (a *Assistant) Catalog() *catalog.Catalog {
	return a.catalog
}

func (a *Assistant) Close() error {
	// Close AI provider first
	if err := a.provider.Close(); err != nil {
		a.logger.Error("error closing AI provider", "err", err)
	}

	// Close the embedding cache
	if a.cache != nil {
		if err := a.cache.Close(); err != nil {
			a.logger.Error("error closing embedding cache", "err", err)
			return err
		}
	}
	return nil
}
