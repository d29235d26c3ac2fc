// Package api exposes the form editor pipeline over HTTP: markup parsing,
// code rendering, payload extraction, and response evaluation.
package api

import (
	"encoding/json"
	"net/http"
	"sort"
	"strconv"

	"formedit/internal/codegen"
	"formedit/internal/form"
	"formedit/internal/markup"
	"formedit/internal/payload"
	"formedit/internal/response"
)

// NewHandler builds the HTTP handler for the editor API.
func NewHandler() http.Handler {
	h := &handler{}
	mux := http.NewServeMux()
	mux.HandleFunc("/v1/parse", h.handleParse)
	mux.HandleFunc("/v1/render", h.handleRender)
	mux.HandleFunc("/v1/extract", h.handleExtract)
	mux.HandleFunc("/v1/visibility", h.handleVisibility)
	return mux
}

type handler struct{}

type parseRequest struct {
	Markup string `json:"markup"`
}

type parseResponse struct {
	Payload payload.Document `json:"payload"`
	Markup  string           `json:"markup"`
}

func (h *handler) handleParse(w http.ResponseWriter, r *http.Request) {
	var req parseRequest
	if !decodeRequest(w, r, &req) {
		return
	}
	questions := form.Merge(nil, markup.Parse(req.Markup))
	writeJSON(w, http.StatusOK, parseResponse{
		Payload: payload.Encode(questions),
		Markup:  markup.Render(questions),
	})
}

type renderRequest struct {
	Payload payload.Document `json:"payload"`
	Target  string           `json:"target"`
}

type renderResponse struct {
	Code string `json:"code"`
}

func (h *handler) handleRender(w http.ResponseWriter, r *http.Request) {
	var req renderRequest
	if !decodeRequest(w, r, &req) {
		return
	}
	target, err := codegen.ParseTarget(req.Target)
	if err != nil {
		writeError(w, http.StatusBadRequest, "unknown_target")
		return
	}
	code, err := codegen.Render(target, payload.Decode(req.Payload), "")
	if err != nil {
		writeError(w, http.StatusInternalServerError, "render_failed")
		return
	}
	writeJSON(w, http.StatusOK, renderResponse{Code: code})
}

type extractRequest struct {
	Code   string `json:"code"`
	Target string `json:"target"`
}

type extractResponse struct {
	Found   bool              `json:"found"`
	Payload *payload.Document `json:"payload,omitempty"`
}

func (h *handler) handleExtract(w http.ResponseWriter, r *http.Request) {
	var req extractRequest
	if !decodeRequest(w, r, &req) {
		return
	}
	target, err := codegen.ParseTarget(req.Target)
	if err != nil {
		writeError(w, http.StatusBadRequest, "unknown_target")
		return
	}
	block, ok := codegen.ExtractBlock(req.Code, target.Anchor())
	if !ok {
		writeJSON(w, http.StatusOK, extractResponse{Found: false})
		return
	}
	doc, err := payload.Parse(block.Text)
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, "invalid_payload")
		return
	}
	writeJSON(w, http.StatusOK, extractResponse{Found: true, Payload: &doc})
}

type visibilityRequest struct {
	Payload   payload.Document         `json:"payload"`
	Responses map[string]responseValue `json:"responses"`
}

type visibilityResponse struct {
	Visible []int         `json:"visible"`
	Quotas  []quotaResult `json:"quotas"`
}

type quotaResult struct {
	Question  int    `json:"question"`
	Condition string `json:"condition"`
	Value     *int   `json:"value"`
	Passed    bool   `json:"passed"`
}

func (h *handler) handleVisibility(w http.ResponseWriter, r *http.Request) {
	var req visibilityRequest
	if !decodeRequest(w, r, &req) {
		return
	}
	responses := make(response.Responses, len(req.Responses))
	for key, value := range req.Responses {
		index, err := strconv.Atoi(key)
		if err != nil || index < 0 {
			writeError(w, http.StatusBadRequest, "invalid_request")
			return
		}
		responses[index] = value.value
	}
	questions := payload.Decode(req.Payload)

	visible := make([]int, 0, len(questions))
	for index := range response.ResolveVisible(questions, responses) {
		visible = append(visible, index)
	}
	sort.Ints(visible)

	quotas := make([]quotaResult, 0)
	for _, result := range response.EvaluateQuotas(questions, responses) {
		quotas = append(quotas, quotaResult{
			Question:  result.QuestionIndex,
			Condition: result.Condition,
			Value:     result.Value,
			Passed:    result.Passed,
		})
	}
	writeJSON(w, http.StatusOK, visibilityResponse{Visible: visible, Quotas: quotas})
}

// responseValue accepts either a bare string or an array of strings, the two
// answer shapes the editor emits.
type responseValue struct {
	value response.Value
}

func (v *responseValue) UnmarshalJSON(data []byte) error {
	var scalar string
	if err := json.Unmarshal(data, &scalar); err == nil {
		v.value = response.Scalar(scalar)
		return nil
	}
	var multi []string
	if err := json.Unmarshal(data, &multi); err != nil {
		return err
	}
	v.value = response.Multi(multi...)
	return nil
}
