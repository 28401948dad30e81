// Package chat runs the query-to-reply pipeline: filter extraction, catalog
// filtering with a semantic fallback, prompt construction, and response
// generation.
package chat

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/poiesic/cinemind/ai"
	"github.com/poiesic/cinemind/catalog"
	"github.com/poiesic/cinemind/extract"
	"github.com/poiesic/cinemind/search"
)

// defaultFallbackLimit is how many entries the semantic fallback selects
// when filtering finds nothing.
const defaultFallbackLimit = 5

// Chatbot answers free-text queries about a fixed catalog. Each call is
// independent; the catalog and its vectors are shared read-only, so a single
// Chatbot is safe for concurrent use.
type Chatbot struct {
	catalog       *catalog.Catalog
	extractor     *extract.Extractor
	ranker        *search.Ranker
	generator     ai.ResponseGenerator
	fallbackLimit int
	logger        *slog.Logger
}

// Option configures a Chatbot.
type Option func(*Chatbot) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(c *Chatbot) error {
		if logger == nil {
			logger = slog.Default()
		}
		c.logger = logger
		return nil
	}
}

// WithGenerator replaces the provider's response generator, for example with
// an out-of-process one.
func WithGenerator(generator ai.ResponseGenerator) Option {
	return func(c *Chatbot) error {
		if generator != nil {
			c.generator = generator
		}
		return nil
	}
}

// WithFallbackLimit sets how many entries the semantic fallback returns.
// Default is 5.
func WithFallbackLimit(limit int) Option {
	return func(c *Chatbot) error {
		if limit < 1 {
			return fmt.Errorf("fallback limit must be positive, got %d", limit)
		}
		c.fallbackLimit = limit
		return nil
	}
}

// NewChatbot creates a chatbot over an embedded catalog, wiring the
// extractor, ranker, and generator from the provider's services.
func NewChatbot(cat *catalog.Catalog, provider ai.Provider, opts ...Option) (*Chatbot, error) {
	if cat == nil {
		return nil, ErrCatalogRequired
	}
	if provider == nil {
		return nil, ErrAIProviderRequired
	}

	extractor, err := extract.NewExtractor(provider.EntityTagger())
	if err != nil {
		return nil, err
	}
	ranker, err := search.NewRanker(provider.Embedder())
	if err != nil {
		return nil, err
	}

	c := &Chatbot{
		catalog:       cat,
		extractor:     extractor,
		ranker:        ranker,
		generator:     provider.ResponseGenerator(),
		fallbackLimit: defaultFallbackLimit,
		logger:        slog.Default(),
	}

	// Apply options
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}

	return c, nil
}

// Chat answers a query with a generated reply.
func (c *Chatbot) Chat(ctx context.Context, query string) (string, error) {
	return c.ChatWithMonitor(ctx, query, nil)
}

// ChatWithMonitor answers a query with a generated reply, with monitoring.
// The monitor receives callbacks at each stage of the pipeline.
//
// Extraction and fallback-ranking failures propagate as errors. Generation
// failures do not: the reply is then a diagnostic string carrying the error
// and the prompt that was sent, so callers always get something to show.
func (c *Chatbot) ChatWithMonitor(ctx context.Context, query string, monitor ChatMonitor) (string, error) {
	// Use noop monitor if none provided
	if monitor == nil {
		monitor = &noopMonitor{}
	}

	monitor.Start(query)

	filters, err := c.extractor.Extract(ctx, query)
	if err != nil {
		c.logger.Error("error extracting filters from query", "query", query, "err", err)
		return "", err
	}
	monitor.AfterFilterExtraction(filters)

	matches := search.Apply(c.catalog, filters)
	monitor.AfterFilter(matches)

	if len(matches) == 0 {
		matches, err = c.ranker.Rank(ctx, query, c.catalog, c.fallbackLimit)
		if err != nil {
			c.logger.Error("error ranking catalog for query", "query", query, "err", err)
			return "", err
		}
		monitor.AfterFallbackRank(matches)
	}

	prompt := BuildPrompt(query, matches)
	monitor.AfterPromptBuild(prompt)

	reply, err := c.generator.Generate(ctx, prompt)
	if err != nil {
		// Recover locally: a generator failure must never lose the request.
		c.logger.Warn("response generation failed", "err", err)
		monitor.GenerationFailed(err)
		reply = generationFailureReply(err, prompt)
	}

	monitor.Finish(reply)
	return reply, nil
}

// generationFailureReply is the diagnostic fallback returned when the
// response generator fails. It carries both the failure and the prompt so
// the user can see what would have been asked.
func generationFailureReply(err error, prompt string) string {
	return fmt.Sprintf("Response generation failed:\n\n%v\n\nPrompt was:\n%s", err, prompt)
}
