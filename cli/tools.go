package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"GroqAssistant/chat"
	"GroqAssistant/llm"
	"GroqAssistant/misc"
	"GroqAssistant/toolCalling"
)

var toolsCmd = &cobra.Command{
	Use:   "tools",
	Short: "Start an interactive chat session with function calling enabled",
	RunE: func(cmd *cobra.Command, _ []string) error {
		cli, err := newClient()
		if err != nil {
			return err
		}

		tm := toolCalling.DefaultToolManager()
		conv := chat.NewConversation(chat.ToolAssistantSystemPrompt)
		model := llm.ModelFromConfig()
		fmt.Println("Starting tool-enabled chat session (type 'quit' to exit):")

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

			reply, err := tm.RunConversation(cmd.Context(), cli, conv, input, model)
			if err != nil {
				fmt.Println(assistantPrefix + "Sorry, I encountered an error.")
				misc.Debug("tool turn failed: %s", err.Error())
				conv.Rollback()
				continue
			}
			fmt.Println(assistantPrefix + reply)
		}

		usage := conv.Usage()
		misc.Info("tools", fmt.Sprintf("session ended — %d prompt + %d completion = %d tokens",
			usage.PromptTokens, usage.CompletionTokens, usage.TotalTokens))
		return scanner.Err()
	},
}
