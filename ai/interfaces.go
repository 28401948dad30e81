package ai

import "context"

// Embedder generates vector embeddings from text for semantic similarity search.
// Implementations must be thread-safe for concurrent use.
type Embedder interface {
	// EmbedText generates a vector embedding for a single text string.
	// The returned vector represents the semantic meaning of the text.
	// Returns an error if the embedding generation fails.
	EmbedText(ctx context.Context, text string) ([]float32, error)

	// EmbedTexts generates vector embeddings for multiple text strings in a batch.
	// Batch processing is more efficient than calling EmbedText multiple times.
	// The returned slice contains embeddings in the same order as the input texts.
	// Returns an error if any embedding generation fails.
	EmbedTexts(ctx context.Context, texts []string) ([][]float32, error)
}

// EntityTagger recognizes named entities in text.
// Implementations must be thread-safe for concurrent use.
type EntityTagger interface {
	// Tag analyzes text and returns the named entities it mentions, each
	// with a surface text and a label. Entities appear in the order they
	// occur in the input.
	// Returns an empty slice if no entities are found.
	// Returns an error if entity recognition fails.
	Tag(ctx context.Context, text string) ([]Entity, error)
}

// ResponseGenerator produces a natural-language reply from a grounding prompt.
// Implementations must bound each call with their configured timeout and
// must be thread-safe for concurrent use.
type ResponseGenerator interface {
	// Generate invokes the text generator with the given prompt and returns
	// its raw text output. A timeout, non-zero exit, or API failure is
	// returned as an ordinary error; callers decide how to recover.
	Generate(ctx context.Context, prompt string) (string, error)
}

// Provider aggregates AI services for convenient initialization and lifecycle management.
// A provider creates and manages Embedder, EntityTagger, and ResponseGenerator
// instances, ensuring they share configuration and resources appropriately.
type Provider interface {
	// Embedder returns the text embedding service.
	// The returned Embedder is safe for concurrent use.
	Embedder() Embedder

	// EntityTagger returns the named-entity recognition service.
	// The returned EntityTagger is safe for concurrent use.
	EntityTagger() EntityTagger

	// ResponseGenerator returns the reply generation service.
	// The returned ResponseGenerator is safe for concurrent use.
	ResponseGenerator() ResponseGenerator

	// Close releases resources held by the provider and its services.
	// After Close is called, the provider and its services should not be used.
	Close() error
}
