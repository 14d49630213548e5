package capture

// Category is the outcome of one pass through the pipeline.
type Category string

const (
	// NoInput means nothing was supplied; the dialogue must not advance.
	NoInput Category = "no_input"

	Greeting  Category = "greeting"
	Refusal   Category = "refusal"
	ValidName Category = "valid_name"
	Invalid   Category = "invalid"

	// Proceed is returned by Classify only: neither lexicon matched and name
	// extraction should be attempted.
	Proceed Category = "proceed"
)

// Classify reports whether text is a Greeting, a Refusal, or should Proceed
// to extraction. Greeting is checked first and wins when both match, so
// "hi, no thanks" is a greeting.
func (e *Engine) Classify(text string) Category {
	if e.greeting.MatchString(text) {
		return Greeting
	}
	if e.refusal.MatchString(text) {
		return Refusal
	}
	return Proceed
}
