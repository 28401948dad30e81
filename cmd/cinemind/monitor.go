package main

import (
	"log/slog"

	"github.com/poiesic/cinemind/chat"
	"github.com/poiesic/cinemind/core"
)

// logMonitor logs each pipeline stage, for the --verbose flag.
type logMonitor struct {
	logger *slog.Logger
}

var _ chat.ChatMonitor = (*logMonitor)(nil)

func (m *logMonitor) Start(query string) {
	m.logger.Info("pipeline start", "query", query)
}

func (m *logMonitor) AfterFilterExtraction(filters core.Filters) {
	m.logger.Info("filters extracted",
		"type", filters.Type.String(),
		"country", filters.Country,
		"genre", filters.Genre,
		"year", filters.ReleaseYear)
}

func (m *logMonitor) AfterFilter(matches []core.Match) {
	m.logger.Info("catalog filtered", "hits", len(matches))
}

func (m *logMonitor) AfterFallbackRank(matches []core.Match) {
	for _, match := range matches {
		m.logger.Info("fallback hit", "index", match.Index, "title", match.Entry.Title, "score", match.Score)
	}
}

func (m *logMonitor) AfterPromptBuild(prompt string) {
	m.logger.Info("prompt built", "chars", len(prompt))
	m.logger.Debug("prompt contents", "prompt", prompt)
}

func (m *logMonitor) GenerationFailed(err error) {
	m.logger.Warn("generation failed, replying with diagnostics", "err", err)
}

func (m *logMonitor) Finish(reply string) {
	m.logger.Info("pipeline finished", "chars", len(reply))
}
