package nlu

import (
	"context"
)

// Client turns a raw utterance into exactly one command string from the
// stage's template vocabulary, or the literal "unknown". The resolver treats
// any error as recoverable and falls back to local matching.
type Client interface {
	ParseCommand(ctx context.Context, stageContext string, vocabulary []string, utterance string) (string, error)
}
