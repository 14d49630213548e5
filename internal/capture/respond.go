package capture

import (
	"github.com/hritik3345/LIPA-Name/internal/reply"
)

// Session parameter keys written back to the agent platform.
const (
	ParamName         = "name"
	ParamNameProvided = "name_provided"
)

// Result is the decision for one input.
type Result struct {
	Category Category

	// Name is the normalized name; set only for ValidName.
	Name string

	// Candidate is what the extractor produced, before validation.
	Candidate string

	// Err explains an Invalid result.
	Err error
}

// Output is the platform-facing record. Both fields are nil for NoInput.
//
// Parameters[ParamName] holds the name or nil (rendered as JSON null);
// Parameters[ParamNameProvided] is "true" only for a ValidName.
type Output struct {
	Parameters map[string]any
	Messages   []string
}

// Empty reports whether the output carries nothing to send.
func (o Output) Empty() bool {
	return o.Parameters == nil && len(o.Messages) == 0
}

// Decide runs the pipeline up to, but not including, the reply. An empty
// raw string is NoInput.
func (e *Engine) Decide(raw string) Result {
	if raw == "" {
		return Result{Category: NoInput}
	}

	switch e.Classify(raw) {
	case Greeting:
		return Result{Category: Greeting}
	case Refusal:
		return Result{Category: Refusal}
	}

	candidate, ok := e.Extract(raw)
	if !ok {
		return Result{Category: Invalid, Err: ErrNoCandidate}
	}
	if err := e.Validate(candidate); err != nil {
		return Result{Category: Invalid, Candidate: candidate, Err: err}
	}
	return Result{Category: ValidName, Candidate: candidate, Name: e.Normalize(candidate)}
}

// Respond maps a Result to the parameter update and reply message.
func (e *Engine) Respond(res Result) Output {
	d := reply.Data{Name: res.Name, Product: e.product}
	switch res.Category {
	case NoInput:
		return Output{}
	case Greeting:
		return declined(e.replies.Render(reply.Greeting, d))
	case Refusal:
		return declined(e.replies.Render(reply.Refusal, d))
	case ValidName:
		return Output{
			Parameters: map[string]any{
				ParamName:         res.Name,
				ParamNameProvided: "true",
			},
			Messages: []string{e.replies.Render(reply.ValidName, d)},
		}
	default:
		return declined(e.replies.Render(reply.Invalid, d))
	}
}

func declined(msg string) Output {
	return Output{
		Parameters: map[string]any{
			ParamName:         nil,
			ParamNameProvided: "false",
		},
		Messages: []string{msg},
	}
}

// Process runs the whole pipeline for raw.
func (e *Engine) Process(raw string) (Result, Output) {
	res := e.Decide(raw)
	return res, e.Respond(res)
}
