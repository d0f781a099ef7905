package gemini

import (
	"context"
	"errors"
	"strings"
	"testing"
)

func TestPickModelPreferenceOrder(t *testing.T) {
	available := map[string]string{
		"gemini-1.5-flash": "models/gemini-1.5-flash",
		"gemini-2.5-flash": "models/gemini-2.5-flash",
		"gemini-exp":       "models/gemini-exp",
	}
	order := []string{"gemini-exp", "gemini-1.5-flash", "gemini-2.5-flash"}

	got := pickModel(available, order, PreferredModels)
	if got != "models/gemini-2.5-flash" {
		t.Errorf("Expected the highest-preference available model, got %s", got)
	}
}

func TestPickModelFallsBackToFirstProbed(t *testing.T) {
	available := map[string]string{
		"gemini-exp":   "models/gemini-exp",
		"gemini-other": "models/gemini-other",
	}
	order := []string{"gemini-exp", "gemini-other"}

	got := pickModel(available, order, PreferredModels)
	if got != "models/gemini-exp" {
		t.Errorf("Expected first probed model when no preference matches, got %s", got)
	}
}

func TestPickModelEmptyProbe(t *testing.T) {
	got := pickModel(map[string]string{}, nil, PreferredModels)
	if got != DefaultModel {
		t.Errorf("Expected hardcoded default for empty probe, got %s", got)
	}
}

func TestSupportsGeneration(t *testing.T) {
	if !supportsGeneration([]string{"countTokens", "generateContent"}) {
		t.Error("Expected generateContent to be detected")
	}
	if supportsGeneration([]string{"embedContent"}) {
		t.Error("Expected embed-only model to be rejected")
	}
	if supportsGeneration(nil) {
		t.Error("Expected empty method list to be rejected")
	}
}

func TestDiagnosticPrefix(t *testing.T) {
	msg := Diagnostic(errors.New("quota exceeded"))

	if !strings.HasPrefix(msg, FailurePrefix) {
		t.Errorf("Diagnostic %q missing failure prefix", msg)
	}
	if !strings.Contains(msg, "quota exceeded") {
		t.Errorf("Diagnostic %q lost the error detail", msg)
	}
}

func TestNewClientRejectsEmptyKey(t *testing.T) {
	if _, err := NewClient(context.Background(), ""); err == nil {
		t.Error("Expected error for empty API key")
	}
}
