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


package openai

import (
	"context"
	"encoding/json"
	"log/slog"
	"slices"
	"strings"

	"github.com/poiesic/cinemind/ai"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
)

// EntityTagger implements ai.EntityTagger using OpenAI-compatible chat APIs.
// The model performs named-entity recognition in JSON mode.
type EntityTagger struct {
	client llms.Model
	logger *slog.Logger
}

// entity is an internal type used for JSON unmarshaling.
// It matches the structure expected from the LLM.
type entity struct {
	Text  string `json:"text"`
	Label string `json:"label"`
	Start int    `json:"start"`
}

// recognition is the wrapper structure for the LLM's JSON response.
type recognition struct {
	Entities []entity `json:"entities"`
}

// newEntityTagger is an internal constructor that returns the concrete type.
// Used by Provider to manage the instance.
func newEntityTagger(config *ai.Config) (*EntityTagger, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	// Create OpenAI client configured for chat/NER
	// Use "none" as token for local OpenAI-compatible services that don't require authentication
	client, err := openai.New(
		openai.WithBaseURL(config.TaggerHost),
		openai.WithToken("none"),
		openai.WithModel(config.TaggerModel),
	)
	if err != nil {
		return nil, err
	}

	return &EntityTagger{
		client: client,
		logger: slog.Default().With("component", "openai-tagger"),
	}, nil
}

// NewEntityTagger creates a new entity tagger using the provided configuration.
//
// Returns ai.EntityTagger interface to enforce abstraction.
func NewEntityTagger(config *ai.Config) (ai.EntityTagger, error) {
	return newEntityTagger(config)
}

// Tag recognizes named entities in text using an LLM.
// Entities are returned in order of appearance; unknown labels are dropped.
func (t *EntityTagger) Tag(ctx context.Context, text string) ([]ai.Entity, error) {
	// Build the system and user prompts
	systemPrompt := buildTaggerPrompt()
	content := []llms.MessageContent{
		{
			Role: llms.ChatMessageTypeSystem,
			Parts: []llms.ContentPart{
				llms.TextPart(systemPrompt),
			},
		},
		{
			Role: llms.ChatMessageTypeHuman,
			Parts: []llms.ContentPart{
				llms.TextPart(text),
			},
		},
	}

	// Try up to 3 times in case of malformed JSON
	var result recognition
	var lastErr error
	for attempt := 0; attempt < 3; attempt++ {
		response, err := t.client.GenerateContent(ctx, content, llms.WithTemperature(0.0), llms.WithJSONMode())
		if err != nil {
			t.logger.Error("failed to generate content", "attempt", attempt+1, "err", err)
			return nil, err
		}

		if len(response.Choices) < 1 {
			t.logger.Debug("no choices returned from model")
			return []ai.Entity{}, nil
		}

		choice := response.Choices[0]

		// Strip markdown code fences if present
		responseText := strings.TrimSpace(choice.Content)
		responseText = strings.TrimPrefix(responseText, "```json")
		responseText = strings.TrimPrefix(responseText, "```")
		responseText = strings.TrimSuffix(responseText, "```")
		responseText = strings.TrimSpace(responseText)

		// Try to repair common JSON issues
		responseText = repairJSON(responseText)

		if err := json.Unmarshal([]byte(responseText), &result); err != nil {
			lastErr = err
			t.logger.Warn("error parsing tagger response",
				"attempt", attempt+1,
				"response", responseText,
				"err", err)
			continue
		}

		// Success
		lastErr = nil
		break
	}

	if lastErr != nil {
		t.logger.Error("failed to parse tagger response after retries", "err", lastErr)
		return nil, lastErr
	}

	// Order by reported position; models that omit offsets keep their order
	slices.SortStableFunc(result.Entities, func(a, b entity) int {
		return a.Start - b.Start
	})

	// Keep only known labels
	entities := make([]ai.Entity, 0, len(result.Entities))
	for _, e := range result.Entities {
		label := strings.ToUpper(strings.TrimSpace(e.Label))
		if !slices.Contains(ai.EntityLabels, label) {
			t.logger.Debug("dropping entity with unknown label", "text", e.Text, "label", e.Label)
			continue
		}
		entities = append(entities, ai.Entity{
			Text:  strings.TrimSpace(e.Text),
			Label: label,
		})
	}

	t.logger.Debug("recognized entities",
		"total", len(result.Entities),
		"kept", len(entities))

	return entities, nil
}
