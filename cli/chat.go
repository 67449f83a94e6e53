package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"GroqAssistant/chat"
	"GroqAssistant/llm"
	"GroqAssistant/misc"
)

var (
	youPrompt       = color.New(color.FgGreen, color.Bold).Sprint("You: ")
	assistantPrefix = color.New(color.FgCyan, color.Bold).Sprint("Assistant: ")
)

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Start an interactive chat session with history",
	RunE: func(cmd *cobra.Command, _ []string) error {
		cli, err := newClient()
		if err != nil {
			return err
		}

		conv := chat.NewConversation(chat.CodingAssistantSystemPrompt)
		model := llm.ModelFromConfig()
		fmt.Println("Starting chat session (type 'quit' to exit):")

		scanner := bufio.NewScanner(os.Stdin)
		for {
			fmt.Print(youPrompt)
			if !scanner.Scan() {
				break
			}
			input := strings.TrimSpace(scanner.Text())
			if input == "" {
				continue
			}
			if strings.EqualFold(input, "quit") {
				break
			}

			reply, err := chat.Advance(cmd.Context(), cli, conv, input, model)
			if err != nil {
				fmt.Println(assistantPrefix + "Sorry, I encountered an error.")
				misc.Debug("chat turn failed: %s", err.Error())
				// Drop the unanswered user message so the history stays clean.
				conv.Rollback()
				continue
			}
			fmt.Println(assistantPrefix + reply)
		}

		usage := conv.Usage()
		misc.Info("chat", fmt.Sprintf("session ended — %d prompt + %d completion = %d tokens",
			usage.PromptTokens, usage.CompletionTokens, usage.TotalTokens))
		return scanner.Err()
	},
}
