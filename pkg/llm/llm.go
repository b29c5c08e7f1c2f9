// Package llm abstracts the chat model behind the tailoring features so the
// business layer never sees a concrete provider.
package llm

import "context"

type ChatModel interface {
	Ask(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}
