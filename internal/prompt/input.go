// Package prompt provides interactive terminal input for lintrc commands.
package prompt

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/peterh/liner"
)

// Prompter wraps basic prompting functionality for testability.
type Prompter interface {
	Prompt(string) (string, error)
	Close() error
}

// LinerPrompter wraps liner.State to implement Prompter.
type LinerPrompter struct {
	*liner.State
}

// NewLinerPrompter creates a new liner-based prompter.
func NewLinerPrompter() Prompter {
	line := liner.NewLiner()
	line.SetCtrlCAborts(true)
	return &LinerPrompter{State: line}
}

// TextInput provides simple text input with a colored prompt.
func TextInput(prompt string) (string, error) {
	line := liner.NewLiner()
	defer func() { _ = line.Close() }()

	line.SetCtrlCAborts(true)

	coloredPrompt := color.CyanString(prompt + " ")
	result, err := line.Prompt(coloredPrompt)
	if err != nil {
		if errors.Is(err, liner.ErrPromptAborted) || errors.Is(err, io.EOF) {
			return "", errors.New("cancelled by user")
		}
		return "", fmt.Errorf("text input failed: %w", err)
	}

	return result, nil
}

// Confirm asks a yes/no question and reports whether the answer was yes.
func Confirm(prompter Prompter, question string) (bool, error) {
	answer, err := prompter.Prompt(color.CyanString(question + " [y/N] "))
	if err != nil {
		if errors.Is(err, liner.ErrPromptAborted) || errors.Is(err, io.EOF) {
			return false, nil
		}
		return false, fmt.Errorf("confirmation failed: %w", err)
	}

	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}
