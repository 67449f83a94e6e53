package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"GroqAssistant/evaluation"
	"GroqAssistant/llm"
	"GroqAssistant/misc"
)

var (
	evalQuery    string
	evalResponse string
)

var evalCmd = &cobra.Command{
	Use:   "eval --query <text> --response <text>",
	Short: "Score a prior assistant response with a judge model",
	RunE: func(cmd *cobra.Command, _ []string) error {
		cli, err := newClient()
		if err != nil {
			return err
		}

		judge := evaluation.NewEvaluator(cli, misc.GetConfigValueDefault("llm", "EVAL_MODEL", llm.ModelFromConfig()))
		result, err := judge.Evaluate(cmd.Context(), evalQuery, evalResponse)
		if err != nil {
			var parseErr *evaluation.ParseError
			if errors.As(err, &parseErr) {
				misc.Warn("eval", "could not extract a JSON verdict; raw judge output follows")
				fmt.Println(parseErr.Raw)
				return err
			}
			misc.Error("eval", "evaluation failed: "+err.Error())
			return err
		}

		fmt.Printf("is_coding_related:       %v\n", result.IsCodingRelated)
		if result.HelpfulnessRating != nil {
			fmt.Printf("helpfulness_rating:      %d\n", *result.HelpfulnessRating)
		} else {
			fmt.Printf("helpfulness_rating:      n/a\n")
		}
		if result.RefusalAppropriateness != nil {
			fmt.Printf("refusal_appropriateness: %v\n", *result.RefusalAppropriateness)
		} else {
			fmt.Printf("refusal_appropriateness: n/a\n")
		}
		fmt.Printf("reasoning:               %s\n", result.Reasoning)
		return nil
	},
}

func init() {
	evalCmd.Flags().StringVar(&evalQuery, "query", "", "the user query that was asked")
	evalCmd.Flags().StringVar(&evalResponse, "response", "", "the assistant response to score")
	_ = evalCmd.MarkFlagRequired("query")
	_ = evalCmd.MarkFlagRequired("response")
}
