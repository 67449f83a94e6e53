package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"GroqAssistant/llm"
)

func TestRootCmd_RegistersSubcommands(t *testing.T) {
	names := map[string]bool{}
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}
	for _, want := range []string{"ask", "chat", "tools", "eval"} {
		assert.True(t, names[want], "missing subcommand %q", want)
	}
}

func TestAsk_MissingCredentialFailsWithoutNetwork(t *testing.T) {
	t.Setenv("GROQ_API_KEY", "")

	rootCmd.SetArgs([]string{"ask", "what is a goroutine"})
	defer rootCmd.SetArgs(nil)
	err := rootCmd.Execute()
	require.ErrorIs(t, err, llm.ErrClientUnavailable)
}

func TestEval_RequiresFlags(t *testing.T) {
	t.Setenv("GROQ_API_KEY", "gsk_test")

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs([]string{"eval"})
	defer rootCmd.SetArgs(nil)
	err := rootCmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "required flag")
}
