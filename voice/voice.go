// Package voice holds the speech boundaries of the assistant. Both
// directions are best-effort: a failed recognition yields an empty
// question and a failed playback is reported, never fatal to the session.
package voice

import (
	"context"
	"strings"
)

// Recognizer converts captured speech into a question string. An empty
// string means the audio was unintelligible or capture failed.
type Recognizer interface {
	Recognize(ctx context.Context) (string, error)
}

// Speaker narrates text back to the user.
type Speaker interface {
	Say(ctx context.Context, text string) error
}

// NopSpeaker discards narration, for headless runs and tests.
type NopSpeaker struct{}

func (NopSpeaker) Say(context.Context, string) error { return nil }

// visualizationKeywords maps spoken phrases to visualization modes.
var visualizationKeywords = map[string]string{
	"bar chart":  "Bar Chart",
	"line chart": "Line Chart",
	"pie chart":  "Pie Chart",
	"area chart": "Area Chart",
	"histogram":  "Histogram",
	"summary":    "Summary",
}

// DetectVisualization checks recognized speech for a visualization-mode
// phrase. When none matches, the text is treated as a question.
func DetectVisualization(text string) (string, bool) {
	lower := strings.ToLower(text)
	for phrase, mode := range visualizationKeywords {
		if strings.Contains(lower, phrase) {
			return mode, true
		}
	}
	return "", false
}
