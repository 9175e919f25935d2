package helpspec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommandSpecValidate(t *testing.T) {
	cases := []struct {
		name string
		spec CommandSpec
	}{
		{"missing name", CommandSpec{Usage: "u", Description: "d"}},
		{"missing usage", CommandSpec{Name: "n", Description: "d"}},
		{"missing description", CommandSpec{Name: "n", Usage: "u"}},
		{"option without flags", CommandSpec{
			Name: "n", Usage: "u", Description: "d",
			Options: []Option{{Description: "d"}},
		}},
		{"option without description", CommandSpec{
			Name: "n", Usage: "u", Description: "d",
			Options: []Option{{Long: "debug"}},
		}},
		{"multi-character short flag", CommandSpec{
			Name: "n", Usage: "u", Description: "d",
			Options: []Option{{Short: "hh", Description: "d"}},
		}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Error(t, tc.spec.Validate())
		})
	}

	assert.NoError(t, testsSpec().Validate())
}

func TestWithHelpAppends(t *testing.T) {
	spec := testsSpec()
	got := spec.WithHelp()

	require.Len(t, got.Options, 2)
	assert.Equal(t, HelpOption, got.Options[1])

	// The receiver must stay untouched.
	assert.Len(t, spec.Options, 1)
}

func TestWithHelpKeepsDeclaredHelp(t *testing.T) {
	spec := CommandSpec{
		Name:        "n",
		Usage:       "u",
		Description: "d",
		Options: []Option{
			{Short: "h", Long: "help", Description: "Display usage"},
		},
	}
	got := spec.WithHelp()
	require.Len(t, got.Options, 1)
	assert.Equal(t, "Display usage", got.Options[0].Description)
}
