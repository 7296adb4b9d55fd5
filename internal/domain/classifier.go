package domain

import "context"

// MoodClassifier maps journal text to a short mood label, typically a single
// emoji. Implementations call a remote model; the label is stored verbatim
// and only ever compared for equality when filtering.
type MoodClassifier interface {
	Classify(ctx context.Context, text string) (string, error)
}
