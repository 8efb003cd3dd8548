package taxonomy

// DefaultMapping returns the built-in fine-to-coarse table. Positive
// affect collapses into joy; realization stands in for neutral statements
// of fact among the fine labels.
func DefaultMapping() map[string]string {
	return map[string]string{
		"admiration":     "joy",
		"amusement":      "joy",
		"anger":          "anger",
		"annoyance":      "anger",
		"approval":       "joy",
		"caring":         "caring",
		"confusion":      "confusion",
		"curiosity":      "confusion",
		"desire":         "caring",
		"disappointment": "disappointment",
		"disapproval":    "anger",
		"disgust":        "disgust",
		"embarrassment":  "disgust",
		"excitement":     "joy",
		"fear":           "fear",
		"gratitude":      "joy",
		"grief":          "grief",
		"joy":            "joy",
		"love":           "caring",
		"nervousness":    "nervousness",
		"optimism":       "joy",
		"pride":          "joy",
		"realization":    "neutral",
		"relief":         "relief",
		"remorse":        "sadness",
		"sadness":        "sadness",
		"surprise":       "surprise",
	}
}
