// Package interfaces defines the core abstractions of the MedGPT
// backend so that handlers, server and scheduler can be wired and
// tested against contracts instead of concrete types.
package interfaces

import (
	"context"
	"net/http"
	"time"

	"github.com/NITHIN-BHAT/MedGPT/gemini"
	"github.com/NITHIN-BHAT/MedGPT/medicines"
)

// DataStore provides read access to the process-wide state resolved
// at startup: the medicine reference store and the completion model
// identifier. Both are immutable after initialization and safe to
// share across concurrent requests.
type DataStore interface {
	GetStore() *medicines.Store
	GetModelName() string
	GetLastLoaded() time.Time
	GetServerStartTime() time.Time
	SetServerStartTime(t time.Time)
}

// Completer is the external generative completion service: ordered
// text/binary parts in, text out. Failures are plain errors here; the
// fail-soft diagnostic conversion happens at the response layer.
type Completer interface {
	Complete(ctx context.Context, parts []gemini.Part) (string, error)
	ModelName() string
	AvailableModels(ctx context.Context) ([]gemini.ModelInfo, error)
}

// DocumentExtractor turns an uploaded document into bounded plain
// text and an optional compressed preview image. Both operations are
// fail-soft and never return errors.
type DocumentExtractor interface {
	ExtractText(doc []byte, maxChars int) string
	PreviewImage(doc []byte, targetWidth int) []byte
}

// Validator checks user input and dataset records.
type Validator interface {
	// ValidateInput validates free-text user input (queries, questions)
	ValidateInput(input string) error

	// ValidateRegion validates and canonicalizes a region code;
	// empty input yields the supplied fallback
	ValidateRegion(region, fallback string) (string, error)

	// ValidateRecord checks one dataset record for structural problems
	ValidateRecord(id, name, generic string) error
}

// HTTPHandler is the contract for all API endpoints.
type HTTPHandler interface {
	Home(w http.ResponseWriter, r *http.Request)
	Ask(w http.ResponseWriter, r *http.Request)
	ProfileQA(w http.ResponseWriter, r *http.Request)
	BrandMapQA(w http.ResponseWriter, r *http.Request)
	Summarize(w http.ResponseWriter, r *http.Request)
	HealthCheck(w http.ResponseWriter, r *http.Request)
	DebugModels(w http.ResponseWriter, r *http.Request)
}

// HealthChecker reports current system health.
type HealthChecker interface {
	HealthCheck() (status string, details map[string]any, err error)
}

// Scheduler manages background maintenance jobs.
type Scheduler interface {
	Start() error
	Stop()
}
