// Package evaluation asks a judge model to score a prior (query, response)
// pair from the coding assistant.
package evaluation

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"GroqAssistant/llm"
)

// Sampling parameters for the judge call: low temperature for deterministic
// JSON, bounded output.
const (
	EvalTemperature = 0.2
	EvalMaxTokens   = 500
)

// EvaluationSystemPrompt instructs the judge model to emit a JSON object
// with the four evaluation fields.
const EvaluationSystemPrompt = `
You are an Evaluation AI. Your task is to evaluate the Coding Assistant's response to a user's query.
The Coding Assistant is programmed to ONLY answer coding-related questions and politely refuse others.

Please evaluate based on the following criteria:
1.  **Coding Relevance (is_coding_related)**:
    *   ` + "`true`" + `: If the USER'S QUERY is primarily about programming, software development, algorithms, data structures, coding tools, APIs, SDKs, or software architecture.
    *   ` + "`false`" + `: If the USER'S QUERY is off-topic (e.g., history, general knowledge, personal advice).
2.  **Helpfulness (helpfulness_rating)**:
    *   If ` + "`is_coding_related`" + ` is ` + "`true`" + `, rate the ASSISTANT'S RESPONSE from 1 (not helpful) to 5 (very helpful).
    *   If ` + "`is_coding_related`" + ` is ` + "`false`" + `, this should be ` + "`null`" + ` or not applicable.
3.  **Refusal Appropriateness (refusal_appropriateness)**:
    *   If ` + "`is_coding_related`" + ` is ` + "`false`" + `, did the ASSISTANT'S RESPONSE politely refuse to answer the off-topic query? (` + "`true`" + ` or ` + "`false`" + `).
    *   If ` + "`is_coding_related`" + ` is ` + "`true`" + `, this should be ` + "`null`" + ` or not applicable.
4.  **Reasoning (reasoning)**: Briefly explain your ratings.

Output your evaluation in JSON format like this:
{
  "is_coding_related": boolean,
  "helpfulness_rating": integer | null,
  "refusal_appropriateness": boolean | null,
  "reasoning": "Your brief explanation here."
}
`

// EvaluationResult is the judge's verdict. Pointer fields are nil when the
// judge marked them null or omitted them.
type EvaluationResult struct {
	IsCodingRelated        bool   `json:"is_coding_related"`
	HelpfulnessRating      *int   `json:"helpfulness_rating"`
	RefusalAppropriateness *bool  `json:"refusal_appropriateness"`
	Reasoning              string `json:"reasoning"`
}

// ParseError reports that the judge's output contained no extractable JSON
// object. Raw carries the verbatim model text for diagnostics.
type ParseError struct {
	Raw string
	Err error
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("evaluation: failed to parse JSON: %v", e.Err)
	}
	return "evaluation: no JSON block found in judge output"
}

func (e *ParseError) Unwrap() error { return e.Err }

// Evaluator scores assistant responses with a judge model.
type Evaluator struct {
	cli   llm.Client
	model string
}

// NewEvaluator builds an evaluator. An empty model falls back to the
// default chat model.
func NewEvaluator(cli llm.Client, model string) *Evaluator {
	if model == "" {
		model = llm.DefaultModel
	}
	return &Evaluator{cli: cli, model: model}
}

// Evaluate performs one judge call over the (query, response) pair. The
// verdict JSON is extracted with a best-effort first-'{' to last-'}' scan
// — the judge is only instructed, not guaranteed, to emit bare JSON.
// Extraction or decode failures come back as a *ParseError; no retries,
// and field presence beyond JSON well-formedness is trusted from the model.
func (e *Evaluator) Evaluate(ctx context.Context, query, response string) (*EvaluationResult, error) {
	if e.cli == nil {
		return nil, llm.ErrClientUnavailable
	}

	messages := []llm.Message{
		{Role: llm.RoleSystem, Content: EvaluationSystemPrompt},
		{Role: llm.RoleUser, Content: fmt.Sprintf(
			"User Query: %q\n\nAssistant Response: %q\n\nPlease provide your evaluation in JSON format.",
			query, response)},
	}

	resp, err := llm.RequestLLM(e.cli, ctx, llm.Request{
		Model:       e.model,
		Messages:    llm.NormalizeMessages(messages),
		Temperature: EvalTemperature,
		MaxTokens:   EvalMaxTokens,
		TopP:        llm.DefaultTopP,
	}, "")
	if err != nil {
		return nil, err
	}

	return parseEvaluation(resp.Content)
}

// parseEvaluation extracts and decodes the JSON verdict from free-form
// judge output.
func parseEvaluation(raw string) (*EvaluationResult, error) {
	start := strings.Index(raw, "{")
	end := strings.LastIndex(raw, "}")
	if start == -1 || end == -1 || end < start {
		return nil, &ParseError{Raw: raw}
	}
	var result EvaluationResult
	if err := json.Unmarshal([]byte(raw[start:end+1]), &result); err != nil {
		return nil, &ParseError{Raw: raw, Err: err}
	}
	return &result, nil
}
