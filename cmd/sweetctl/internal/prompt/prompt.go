// Package prompt asks the user for input in interactive sessions.
package prompt

import (
	"errors"

	"github.com/pterm/pterm"
)

// ErrNonInteractive is returned when input is needed but prompts are disabled.
var ErrNonInteractive = errors.New("interactive prompts are disabled (use flags or unset SWEETSHELF_NON_INTERACTIVE)")

// Prompter reads answers from the user.
type Prompter interface {
	Input(label, defaultValue string) (string, error)
	Password(label string) (string, error)
	Select(label string, options []string) (string, error)
	Confirm(label string, defaultValue bool) (bool, error)
}

// Terminal prompts on the controlling terminal with pterm.
type Terminal struct{}

var _ Prompter = Terminal{}

func (Terminal) Input(label, defaultValue string) (string, error) {
	return pterm.DefaultInteractiveTextInput.
		WithDefaultValue(defaultValue).
		Show(label)
}

func (Terminal) Password(label string) (string, error) {
	return pterm.DefaultInteractiveTextInput.
		WithMask("*").
		Show(label)
}

func (Terminal) Select(label string, options []string) (string, error) {
	return pterm.DefaultInteractiveSelect.
		WithOptions(options).
		WithMaxHeight(len(options)).
		Show(label)
}

func (Terminal) Confirm(label string, defaultValue bool) (bool, error) {
	return pterm.DefaultInteractiveConfirm.
		WithDefaultValue(defaultValue).
		Show(label)
}

// Disabled refuses every prompt. It backs --non-interactive runs.
type Disabled struct{}

var _ Prompter = Disabled{}

func (Disabled) Input(string, string) (string, error) { return "", ErrNonInteractive }

func (Disabled) Password(string) (string, error) { return "", ErrNonInteractive }

func (Disabled) Select(string, []string) (string, error) { return "", ErrNonInteractive }

func (Disabled) Confirm(string, bool) (bool, error) { return false, ErrNonInteractive }
