package chat

import "github.com/poiesic/cinemind/core"

// ChatMonitor provides hooks to observe the chat pipeline.
// Implement this interface to track intermediate steps and results during a chat call.
type ChatMonitor interface {
	Start(query string)
	AfterFilterExtraction(filters core.Filters)
	AfterFilter(matches []core.Match)
	AfterFallbackRank(matches []core.Match)
	AfterPromptBuild(prompt string)
	GenerationFailed(err error)
	Finish(reply string)
}

// noopMonitor is a no-op implementation of ChatMonitor
type noopMonitor struct{}

var _ ChatMonitor = (*noopMonitor)(nil)

func (n *noopMonitor) Start(_ string)                       {}
func (n *noopMonitor) AfterFilterExtraction(_ core.Filters) {}
func (n *noopMonitor) AfterFilter(_ []core.Match)           {}
func (n *noopMonitor) AfterFallbackRank(_ []core.Match)     {}
func (n *noopMonitor) AfterPromptBuild(_ string)            {}
func (n *noopMonitor) GenerationFailed(_ error)             {}
func (n *noopMonitor) Finish(_ string)                      {}
