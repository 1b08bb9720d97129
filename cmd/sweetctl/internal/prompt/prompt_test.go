package prompt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDisabled(t *testing.T) {
	var p Prompter = Disabled{}

	_, err := p.Input("Email", "x")
	assert.ErrorIs(t, err, ErrNonInteractive)
	_, err = p.Password("Password")
	assert.ErrorIs(t, err, ErrNonInteractive)
	_, err = p.Select("Menu", []string{"a"})
	assert.ErrorIs(t, err, ErrNonInteractive)
	_, err = p.Confirm("Sure?", true)
	assert.ErrorIs(t, err, ErrNonInteractive)
}

func TestScript(t *testing.T) {
	s := NewScript("", "hunter2", "Quit", "yes", "")

	v, err := s.Input("Name", "Asha")
	require.NoError(t, err)
	assert.Equal(t, "Asha", v, "an empty answer takes the default")

	v, err = s.Password("Password")
	require.NoError(t, err)
	assert.Equal(t, "hunter2", v)

	v, err = s.Select("Menu", []string{"Search", "Quit"})
	require.NoError(t, err)
	assert.Equal(t, "Quit", v)

	_, err = s.Confirm("Delete?", false)
	assert.Error(t, err, "yes is not a ParseBool value")

	ok, err := s.Confirm("Delete?", true)
	require.NoError(t, err)
	assert.True(t, ok)

	assert.Zero(t, s.Remaining())
	assert.Equal(t, []string{"Name", "Password", "Menu", "Delete?", "Delete?"}, s.Asked)

	_, err = s.Input("More", "")
	assert.ErrorContains(t, err, `script exhausted at prompt "More"`)
}

func TestScript_SelectRejectsUnknownOption(t *testing.T) {
	s := NewScript("Buy")
	_, err := s.Select("Menu", []string{"Search", "Quit"})
	assert.ErrorContains(t, err, "not an option")
}
