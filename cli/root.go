// Package cli wires the example drivers (one-shot ask, chat REPL,
// tool-calling REPL, judge) into a cobra command tree.
package cli

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"GroqAssistant/llm"
	"GroqAssistant/misc"
)

// Global flag values.
var (
	verbose bool
	noColor bool
)

var rootCmd = &cobra.Command{
	Use:   "groqassist",
	Short: "A Groq-hosted coding assistant with chat, tools and LLM-as-judge evaluation",
	Long: `groqassist is a small coding-assistant toolkit built on Groq's
OpenAI-compatible Chat Completions API. It answers coding questions,
keeps multi-turn conversation history, can call local tools when the
model asks for them, and can score a prior answer with a judge model.

Set GROQ_API_KEY in the environment before use.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		if verbose {
			misc.SetDebug(true)
		}
		if noColor {
			color.NoColor = true
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug output")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")

	rootCmd.AddCommand(askCmd)
	rootCmd.AddCommand(chatCmd)
	rootCmd.AddCommand(toolsCmd)
	rootCmd.AddCommand(evalCmd)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// newClient builds the API client once per command, with a friendly message
// when the credential is missing.
func newClient() (llm.Client, error) {
	cli, err := llm.NewClientFromEnv()
	if err != nil {
		misc.Error("client", "GROQ_API_KEY not found in environment variables. Please set it.")
		return nil, err
	}
	return cli, nil
}
