package ai

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// MaxSuggestions caps the number of suggestions returned.
const MaxSuggestions = 5

var (
	// ErrNoArray means the response holds no JSON array.
	ErrNoArray = errors.New("AI response has no JSON array")
	// ErrNoSuggestions means an array was found but none of its items is usable.
	ErrNoSuggestions = errors.New("AI response has no usable suggestions")
)

const systemPrompt = `You help people plan their work. Reply with a JSON array of 3 to 5 short, concrete todo items as strings and nothing else.`

// itemSchema accepts strings with at least one non-space character.
var itemSchema = jsonschema.MustCompileString("suggestion.json", `{
	"type": "string",
	"pattern": "\\S"
}`)

// Suggest asks c for todo items that move toward goal.
func Suggest(ctx context.Context, c Completer, goal string) ([]string, error) {
	prompt := fmt.Sprintf("Suggest todo items for this goal: %s", strings.TrimSpace(goal))
	text, err := c.Complete(ctx, systemPrompt, prompt)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(text) == "" {
		return nil, ErrNoResponse
	}
	return ParseSuggestions(text)
}

// ParseSuggestions recovers suggestions from model output: code fence markers
// are removed, the first well-formed JSON array is decoded, and only non-blank
// strings are kept, at most MaxSuggestions of them.
func ParseSuggestions(text string) ([]string, error) {
	items, ok := firstArray(stripFences(text))
	if !ok {
		return nil, ErrNoArray
	}
	out := make([]string, 0, MaxSuggestions)
	for _, item := range items {
		if err := itemSchema.Validate(item); err != nil {
			continue
		}
		out = append(out, strings.TrimSpace(item.(string)))
		if len(out) == MaxSuggestions {
			break
		}
	}
	if len(out) == 0 {
		return nil, ErrNoSuggestions
	}
	return out, nil
}

// fences removes code fence markers wherever they appear, including a
// reply fenced on a single line.
var fences = strings.NewReplacer("```json", "", "```JSON", "", "```", "")

func stripFences(text string) string {
	return fences.Replace(text)
}

// firstArray decodes the first '[' in text that starts a valid JSON array.
func firstArray(text string) ([]any, bool) {
	for i := 0; i < len(text); i++ {
		if text[i] != '[' {
			continue
		}
		dec := json.NewDecoder(strings.NewReader(text[i:]))
		dec.UseNumber()
		var items []any
		if err := dec.Decode(&items); err == nil {
			return items, true
		}
	}
	return nil, false
}
