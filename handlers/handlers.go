// Package handlers provides HTTP request handlers for the MedGPT API
// endpoints: the chat-style ask flow, profile aware Q&A, brand mapping,
// document summarization, health checks and response formatting.
package handlers

import (
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"sync"

	"github.com/NITHIN-BHAT/MedGPT/config"
	"github.com/NITHIN-BHAT/MedGPT/gemini"
	"github.com/NITHIN-BHAT/MedGPT/interfaces"
	"github.com/NITHIN-BHAT/MedGPT/logging"
	"github.com/NITHIN-BHAT/MedGPT/medicines"
	"github.com/NITHIN-BHAT/MedGPT/medicines/entities"
)

// Compile-time check to ensure HTTPHandlerImpl implements HTTPHandler
var _ interfaces.HTTPHandler = (*HTTPHandlerImpl)(nil)

// HTTPHandlerImpl implements the interfaces.HTTPHandler interface
type HTTPHandlerImpl struct {
	dataStore     interfaces.DataStore
	completer     interfaces.Completer
	extractor     interfaces.DocumentExtractor
	validator     interfaces.Validator
	healthChecker interfaces.HealthChecker
	cfg           *config.Config
}

// NewHTTPHandler creates a new HTTP handler with injected dependencies
func NewHTTPHandler(
	dataStore interfaces.DataStore,
	completer interfaces.Completer,
	extractor interfaces.DocumentExtractor,
	validator interfaces.Validator,
	healthChecker interfaces.HealthChecker,
	cfg *config.Config,
) interfaces.HTTPHandler {
	return &HTTPHandlerImpl{
		dataStore:     dataStore,
		completer:     completer,
		extractor:     extractor,
		validator:     validator,
		healthChecker: healthChecker,
		cfg:           cfg,
	}
}

type askRequest struct {
	Query   string         `json:"query"`
	Profile map[string]any `json:"profile"`
	// Mode is accepted for client compatibility; both answer styles
	// are always produced.
	Mode string `json:"mode"`
}

type profileQARequest struct {
	Question string         `json:"question"`
	Profile  map[string]any `json:"profile"`
}

type brandMapQARequest struct {
	Question   string `json:"question"`
	RegionFrom string `json:"region_from"`
	RegionTo   string `json:"region_to"`
}

// Home returns basic service status.
func (h *HTTPHandlerImpl) Home(w http.ResponseWriter, r *http.Request) {
	RespondWithJSON(w, http.StatusOK, map[string]any{
		"status": "ok",
		"model":  h.dataStore.GetModelName(),
		"meds":   h.dataStore.GetStore().Len(),
	})
}

// Ask answers a free-text question with two register variants, one for
// patients and one for clinicians, produced concurrently. A completion
// failure never fails the request: the failing variant carries the
// diagnostic string instead.
func (h *HTTPHandlerImpl) Ask(w http.ResponseWriter, r *http.Request) {
	var req askRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		RespondWithError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	if err := h.validator.ValidateInput(req.Query); err != nil {
		RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	user := "User Query: " + req.Query + "\nProfile: " + encodeProfile(req.Profile)

	var wg sync.WaitGroup
	var simple, doctor string

	wg.Add(2)
	go func() {
		defer wg.Done()
		simple = h.complete(r, []gemini.Part{gemini.Text(promptSimple), gemini.Text(user)})
	}()
	go func() {
		defer wg.Done()
		doctor = h.complete(r, []gemini.Part{gemini.Text(promptDoctor), gemini.Text(user)})
	}()
	wg.Wait()

	detected := unionMentions(h.cfg.DetectLimit,
		medicines.DetectMentions(simple, h.cfg.DetectLimit),
		medicines.DetectMentions(doctor, h.cfg.DetectLimit))

	RespondWithJSON(w, http.StatusOK, map[string]any{
		"simple":             simple,
		"doctor":             doctor,
		"detected_medicines": detected,
	})
}

// ProfileQA answers a question in the context of a user profile.
func (h *HTTPHandlerImpl) ProfileQA(w http.ResponseWriter, r *http.Request) {
	var req profileQARequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		RespondWithError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	if err := h.validator.ValidateInput(req.Question); err != nil {
		RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	user := "Q: " + req.Question + "\nProfile: " + encodeProfile(req.Profile)
	answer := h.complete(r, []gemini.Part{gemini.Text(promptProfile), gemini.Text(user)})

	RespondWithJSON(w, http.StatusOK, map[string]any{
		"answer": answer,
	})
}

// BrandMapQA resolves a possibly misspelled medicine name against the
// reference table and maps its brand names between two regions. The
// structured mapping comes straight from the table; the completion only
// narrates it.
func (h *HTTPHandlerImpl) BrandMapQA(w http.ResponseWriter, r *http.Request) {
	var req brandMapQARequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		RespondWithError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	if err := h.validator.ValidateInput(req.Question); err != nil {
		RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	regionFrom, err := h.validator.ValidateRegion(req.RegionFrom, medicines.DefaultRegionFrom)
	if err != nil {
		RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}
	regionTo, err := h.validator.ValidateRegion(req.RegionTo, medicines.DefaultRegionTo)
	if err != nil {
		RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	store := h.dataStore.GetStore()
	query := strings.TrimSpace(req.Question)

	matches := store.Match(query, h.cfg.FuzzyLimit, h.cfg.FuzzyMinScore)

	// Collect the records behind the matched names, first hit per ID wins.
	seen := make(map[string]bool)
	var records []entities.MedicineRecord
	for _, m := range matches {
		for _, rec := range store.FindExact(m.Name) {
			if seen[rec.ID] {
				continue
			}
			seen[rec.ID] = true
			records = append(records, rec)
		}
	}

	mapping := medicines.MapRegions(records, regionFrom, regionTo)

	mappingJSON, err := json.Marshal(mapping)
	if err != nil {
		logging.Error("Failed to marshal brand mapping", "error", err)
		mappingJSON = []byte("[]")
	}

	user := "Query: " + query + "\nFrom: " + regionFrom + " To: " + regionTo +
		"\nMapping: " + string(mappingJSON)
	answer := h.complete(r, []gemini.Part{gemini.Text(promptBrandMap), gemini.Text(user)})

	RespondWithJSON(w, http.StatusOK, map[string]any{
		"matches": matches,
		"mapping": mapping,
		"answer":  answer,
		"regions": map[string]string{
			"from": regionFrom,
			"to":   regionTo,
		},
	})
}

// Summarize accepts a multipart file upload and produces a structured
// summary. PDFs contribute bounded extracted text plus an optional
// first-page preview image; images go to the model as-is; anything
// else is treated as plain text.
func (h *HTTPHandlerImpl) Summarize(w http.ResponseWriter, r *http.Request) {
	file, header, err := r.FormFile("file")
	if err != nil {
		RespondWithError(w, http.StatusBadRequest, "missing file upload")
		return
	}
	defer file.Close()

	doc, err := io.ReadAll(file)
	if err != nil {
		RespondWithError(w, http.StatusBadRequest, "could not read file upload")
		return
	}

	mime := header.Header.Get("Content-Type")

	switch {
	case strings.HasPrefix(mime, "application/pdf"):
		h.summarizePDF(w, r, doc)
	case strings.HasPrefix(mime, "image/"):
		h.summarizeImage(w, r, doc, mime, header.Filename)
	default:
		h.summarizeText(w, r, doc, header.Filename)
	}
}

func (h *HTTPHandlerImpl) summarizePDF(w http.ResponseWriter, r *http.Request, doc []byte) {
	text := h.extractor.ExtractText(doc, h.cfg.MaxExtractChars)
	preview := h.extractor.PreviewImage(doc, h.cfg.PreviewWidth)

	parts := []gemini.Part{
		gemini.Text(promptSummarize),
		gemini.Text("Summarize this PDF report."),
	}
	if preview != nil {
		parts = append(parts, gemini.Blob("image/jpeg", preview))
	}
	parts = append(parts, gemini.Text("Extracted text:\n"+text))

	summary := h.complete(r, parts)
	detected := medicines.DetectMentions(text+"\n"+summary, h.cfg.DetectLimit)

	RespondWithJSON(w, http.StatusOK, map[string]any{
		"summary":            summary,
		"title":              firstLine(text),
		"detected_medicines": detected,
	})
}

func (h *HTTPHandlerImpl) summarizeImage(w http.ResponseWriter, r *http.Request, doc []byte, mime, filename string) {
	parts := []gemini.Part{
		gemini.Text(promptSummarize),
		gemini.Text("Summarize this medical image report:"),
		gemini.Blob(mime, doc),
	}

	summary := h.complete(r, parts)
	detected := medicines.DetectMentions(summary, h.cfg.DetectLimit)

	RespondWithJSON(w, http.StatusOK, map[string]any{
		"summary":            summary,
		"title":              filename,
		"detected_medicines": detected,
	})
}

func (h *HTTPHandlerImpl) summarizeText(w http.ResponseWriter, r *http.Request, doc []byte, filename string) {
	// Invalid bytes are dropped, not replaced: the completion transport
	// rejects strings that are not valid UTF-8.
	text := strings.ToValidUTF8(string(doc), "")
	text = truncateRunes(text, h.cfg.MaxExtractChars)

	summary := h.complete(r, []gemini.Part{gemini.Text(promptSummarize), gemini.Text(text)})
	detected := medicines.DetectMentions(text+"\n"+summary, h.cfg.DetectLimit)

	RespondWithJSON(w, http.StatusOK, map[string]any{
		"summary":            summary,
		"title":              filename,
		"detected_medicines": detected,
	})
}

// HealthCheck returns server health information
func (h *HTTPHandlerImpl) HealthCheck(w http.ResponseWriter, r *http.Request) {
	status, details, err := h.healthChecker.HealthCheck()
	if err != nil {
		RespondWithError(w, http.StatusInternalServerError, "health check failed")
		return
	}

	response := map[string]any{"status": status}
	for k, v := range details {
		response[k] = v
	}

	RespondWithJSON(w, http.StatusOK, response)
}

// DebugModels lists the completion models visible to the API key.
func (h *HTTPHandlerImpl) DebugModels(w http.ResponseWriter, r *http.Request) {
	models, err := h.completer.AvailableModels(r.Context())
	if err != nil {
		logging.Error("Failed to list models", "error", err)
		RespondWithError(w, http.StatusBadGateway, "could not list models")
		return
	}

	RespondWithJSON(w, http.StatusOK, map[string]any{
		"models": models,
	})
}

// complete runs one completion request. Failures degrade to the
// diagnostic string so downstream consumers always get text.
func (h *HTTPHandlerImpl) complete(r *http.Request, parts []gemini.Part) string {
	out, err := h.completer.Complete(r.Context(), parts)
	if err != nil {
		logging.Error("Completion failed", "error", err, "path", r.URL.Path)
		return gemini.Diagnostic(err)
	}
	return out
}

// encodeProfile renders a user profile for prompt embedding. A nil
// profile renders as an empty object so prompts stay stable.
func encodeProfile(profile map[string]any) string {
	if profile == nil {
		profile = map[string]any{}
	}
	encoded, err := json.Marshal(profile)
	if err != nil {
		return "{}"
	}
	return string(encoded)
}

// unionMentions merges detection results preserving first occurrence.
func unionMentions(limit int, lists ...[]string) []string {
	seen := make(map[string]bool)
	union := []string{}
	for _, list := range lists {
		for _, name := range list {
			if seen[name] {
				continue
			}
			seen[name] = true
			union = append(union, name)
			if len(union) >= limit {
				return union
			}
		}
	}
	return union
}

// firstLine returns the trimmed first line of text.
func firstLine(text string) string {
	if text == "" {
		return ""
	}
	line, _, _ := strings.Cut(text, "\n")
	return strings.TrimSpace(line)
}

// truncateRunes caps text without splitting a rune.
func truncateRunes(text string, max int) string {
	if max <= 0 || len(text) <= max {
		return text
	}
	runes := []rune(text)
	if len(runes) <= max {
		return text
	}
	return string(runes[:max])
}
