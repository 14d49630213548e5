package api

import (
	"net/http"
	"time"

	"github.com/hritik3345/LIPA-Name/internal/capture"
	"github.com/hritik3345/LIPA-Name/internal/metrics"
	"github.com/hritik3345/LIPA-Name/internal/sanitize"
	"github.com/hritik3345/LIPA-Name/internal/webhook"
)

// handleWebhook answers a CX fulfillment call. It always replies 200: a body
// that cannot be read is handled as a call without a name parameter.
func (s *Server) handleWebhook(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	req, err := webhook.DecodeRequest(http.MaxBytesReader(w, r.Body, s.cfg.MaxBodyBytes))
	if err != nil {
		metrics.MalformedTotal.Inc()
		s.log.Debug("webhook body ignored", "error", err)
	}

	param := req.Param(webhook.NameParam)
	raw, _ := param.Text()
	if s.cfg.SanitizeInput {
		raw = sanitize.Text(raw)
	}

	res, out := s.engine.Process(raw)
	elapsed := time.Since(start)

	reason := capture.Reason(res.Err)
	metrics.ObserveWebhook(string(res.Category), reason, elapsed)
	s.latency.Record(elapsed)

	// Never log the raw text; it may be a person's name.
	s.log.Debug("webhook handled",
		"tag", req.Tag(),
		"session", req.Session(),
		"detect_intent_response_id", req.DetectIntentResponseID,
		"language", req.LanguageCode,
		"param", param.State.String(),
		"category", string(res.Category),
		"reason", reason,
		"candidate_len", len([]rune(res.Candidate)),
	)

	writeJSON(w, http.StatusOK, webhook.NewResponse(out))
}
