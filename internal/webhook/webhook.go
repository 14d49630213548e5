// Package webhook defines the Dialogflow CX fulfillment envelope used on the
// wire: the request carrying session parameters and the response carrying
// parameter updates and reply messages.
package webhook

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/hritik3345/LIPA-Name/internal/capture"
)

// NameParam is the session parameter holding the user's free-text answer.
const NameParam = "name"

// Request is the subset of a CX WebhookRequest this service reads.
type Request struct {
	DetectIntentResponseID string           `json:"detectIntentResponseId,omitempty"`
	LanguageCode           string           `json:"languageCode,omitempty"`
	Text                   string           `json:"text,omitempty"`
	FulfillmentInfo        *FulfillmentInfo `json:"fulfillmentInfo,omitempty"`
	SessionInfo            *SessionInfo     `json:"sessionInfo,omitempty"`
}

// FulfillmentInfo identifies which webhook call site in the flow fired.
type FulfillmentInfo struct {
	Tag string `json:"tag,omitempty"`
}

// SessionInfo carries session parameters in both directions.
type SessionInfo struct {
	Session    string         `json:"session,omitempty"`
	Parameters map[string]any `json:"parameters,omitempty"`
}

// Tag returns the fulfillment tag, or "" when absent.
func (r Request) Tag() string {
	if r.FulfillmentInfo == nil {
		return ""
	}
	return r.FulfillmentInfo.Tag
}

// Session returns the session path, or "" when absent.
func (r Request) Session() string {
	if r.SessionInfo == nil {
		return ""
	}
	return r.SessionInfo.Session
}

// ParamState distinguishes a missing parameter from an explicit null.
type ParamState int

const (
	ParamAbsent ParamState = iota
	ParamNull
	ParamValue
)

func (s ParamState) String() string {
	switch s {
	case ParamNull:
		return "null"
	case ParamValue:
		return "value"
	default:
		return "absent"
	}
}

// Param is a session parameter as received. Non-string values are reported
// as ParamAbsent.
type Param struct {
	State ParamState
	Value string
}

// Text returns the parameter's string and whether there is anything to
// process. Absent, null and empty parameters all report false.
func (p Param) Text() (string, bool) {
	if p.State != ParamValue || p.Value == "" {
		return "", false
	}
	return p.Value, true
}

// Param looks up a session parameter.
func (r Request) Param(key string) Param {
	if r.SessionInfo == nil || r.SessionInfo.Parameters == nil {
		return Param{State: ParamAbsent}
	}
	v, ok := r.SessionInfo.Parameters[key]
	if !ok {
		return Param{State: ParamAbsent}
	}
	switch s := v.(type) {
	case nil:
		return Param{State: ParamNull}
	case string:
		return Param{State: ParamValue, Value: s}
	default:
		return Param{State: ParamAbsent}
	}
}

// DecodeRequest parses a webhook body. On any error it returns the zero
// Request, which carries no parameters, together with the error.
func DecodeRequest(r io.Reader) (Request, error) {
	var req Request
	if err := json.NewDecoder(r).Decode(&req); err != nil {
		if errors.Is(err, io.EOF) {
			return Request{}, fmt.Errorf("decode webhook request: empty body")
		}
		return Request{}, fmt.Errorf("decode webhook request: %w", err)
	}
	return req, nil
}

// Response is a CX WebhookResponse. Both members are omitted when there is
// nothing to update, which encodes as {}.
type Response struct {
	SessionInfo         *SessionInfo         `json:"sessionInfo,omitempty"`
	FulfillmentResponse *FulfillmentResponse `json:"fulfillmentResponse,omitempty"`
}

// FulfillmentResponse holds the reply messages.
type FulfillmentResponse struct {
	Messages []ResponseMessage `json:"messages"`
}

// ResponseMessage is one message; only text messages are produced.
type ResponseMessage struct {
	Text *Text `json:"text,omitempty"`
}

// Text is a text message with its alternatives.
type Text struct {
	Text []string `json:"text"`
}

// NewResponse converts pipeline output to the wire envelope. Each reply
// becomes its own message with a single text alternative.
func NewResponse(out capture.Output) Response {
	var resp Response
	if out.Parameters != nil {
		resp.SessionInfo = &SessionInfo{Parameters: out.Parameters}
	}
	if len(out.Messages) > 0 {
		msgs := make([]ResponseMessage, 0, len(out.Messages))
		for _, m := range out.Messages {
			msgs = append(msgs, ResponseMessage{Text: &Text{Text: []string{m}}})
		}
		resp.FulfillmentResponse = &FulfillmentResponse{Messages: msgs}
	}
	return resp
}
