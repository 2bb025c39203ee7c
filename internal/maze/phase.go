// Package maze implements the gameplay rules of the maze runner: the phase
// state machine, level progression, the level-1 tutorial, contact
// resolution and the health bar.
//
// Everything in this package is driven from a single goroutine. The caller
// feeds ticks, contacts and input into a Controller one at a time and the
// Controller talks to the scene, HUD, audio and persistence through the
// interfaces in collaborators.go.
package maze

import "fmt"

// Phase is the top-level state of a play session.
type Phase int

const (
	PhaseLoading Phase = iota
	PhaseAwaitingStart
	PhasePlaying
	PhaseLevelCleared
	PhaseGameOver
	PhaseAllLevelsCleared
)

func (p Phase) String() string {
	switch p {
	case PhaseLoading:
		return "loading"
	case PhaseAwaitingStart:
		return "awaiting_start"
	case PhasePlaying:
		return "playing"
	case PhaseLevelCleared:
		return "level_cleared"
	case PhaseGameOver:
		return "game_over"
	case PhaseAllLevelsCleared:
		return "all_levels_cleared"
	default:
		return "unknown"
	}
}

// HUD prompts.
const (
	PromptTapToPlay      = "Tap to play!"
	PromptGameOver       = "Game Over! Tap to play!"
	PromptAllCleared     = "You have cleared the game!"
	PromptTutorial       = "Tutorial"
	PromptTutorialFinish = "Tap to play level 1!"
)

// ClearedPrompt returns the message shown when a level is finished.
func ClearedPrompt(level int) string {
	return fmt.Sprintf("Level %d cleared!", level)
}
