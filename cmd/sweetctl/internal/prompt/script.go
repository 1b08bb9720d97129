package prompt

import (
	"fmt"
	"strconv"
	"sync"
)

// Script replays canned answers in order. Tests use it to drive interactive flows.
// Select answers must be one of the offered options; Confirm answers parse with strconv.ParseBool.
type Script struct {
	mu      sync.Mutex
	answers []string
	// Asked records every label shown, in order.
	Asked []string
}

var _ Prompter = (*Script)(nil)

// NewScript returns a Script that answers with answers.
func NewScript(answers ...string) *Script {
	return &Script{answers: answers}
}

// Remaining reports how many answers have not been used.
func (s *Script) Remaining() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.answers)
}

func (s *Script) next(label string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Asked = append(s.Asked, label)
	if len(s.answers) == 0 {
		return "", fmt.Errorf("script exhausted at prompt %q", label)
	}
	answer := s.answers[0]
	s.answers = s.answers[1:]
	return answer, nil
}

func (s *Script) Input(label, defaultValue string) (string, error) {
	answer, err := s.next(label)
	if err != nil {
		return "", err
	}
	if answer == "" {
		return defaultValue, nil
	}
	return answer, nil
}

func (s *Script) Password(label string) (string, error) {
	return s.next(label)
}

func (s *Script) Select(label string, options []string) (string, error) {
	answer, err := s.next(label)
	if err != nil {
		return "", err
	}
	for _, o := range options {
		if o == answer {
			return answer, nil
		}
	}
	return "", fmt.Errorf("script answer %q is not an option of %q: %v", answer, label, options)
}

func (s *Script) Confirm(label string, defaultValue bool) (bool, error) {
	answer, err := s.next(label)
	if err != nil {
		return false, err
	}
	if answer == "" {
		return defaultValue, nil
	}
	return strconv.ParseBool(answer)
}
