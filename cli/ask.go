package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"GroqAssistant/chat"
	"GroqAssistant/llm"
	"GroqAssistant/misc"
)

var askCmd = &cobra.Command{
	Use:   "ask <question>",
	Short: "Ask the coding assistant a single question",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cli, err := newClient()
		if err != nil {
			return err
		}

		question := strings.Join(args, " ")
		conv := chat.NewConversation(chat.CodingAssistantSystemPrompt)
		reply, err := chat.Advance(cmd.Context(), cli, conv, question, llm.ModelFromConfig())
		if err != nil {
			misc.Error("ask", "request failed: "+err.Error())
			return err
		}
		fmt.Println(reply)
		return nil
	},
}
