// Package docextract turns uploaded PDF documents into bounded plain
// text and a small compressed preview image for the completion call.
// Both operations are fail-soft: a corrupt document yields an empty
// result, never an error, so summarization can still proceed.
package docextract

import (
	"bytes"
	"image/jpeg"
	"strings"
	"unicode/utf8"

	"github.com/gen2brain/go-fitz"

	"github.com/NITHIN-BHAT/MedGPT/logging"
	"github.com/NITHIN-BHAT/MedGPT/metrics"
)

// Extraction defaults. Text and preview size are capped deliberately
// to keep the upstream completion request small enough to finish
// before proxy timeouts.
const (
	DefaultMaxChars     = 5000
	DefaultPreviewWidth = 500
	DefaultJPEGQuality  = 40
)

// Extractor extracts text and preview images from PDF payloads.
type Extractor struct {
	maxChars     int
	previewWidth int
	jpegQuality  int
}

// New creates an extractor. Non-positive arguments fall back to the
// package defaults.
func New(maxChars, previewWidth, jpegQuality int) *Extractor {
	e := &Extractor{
		maxChars:     maxChars,
		previewWidth: previewWidth,
		jpegQuality:  jpegQuality,
	}
	if e.maxChars <= 0 {
		e.maxChars = DefaultMaxChars
	}
	if e.previewWidth <= 0 {
		e.previewWidth = DefaultPreviewWidth
	}
	if e.jpegQuality <= 0 || e.jpegQuality > 100 {
		e.jpegQuality = DefaultJPEGQuality
	}
	return e
}

// ExtractText reads pages in document order, concatenating their text
// and stopping as soon as the accumulated length exceeds maxChars; the
// result is then truncated to exactly maxChars. A document that cannot
// be opened yields an empty string.
func (e *Extractor) ExtractText(doc []byte, maxChars int) string {
	if maxChars <= 0 {
		maxChars = e.maxChars
	}

	pdf, err := fitz.NewFromMemory(doc)
	if err != nil {
		logging.Warn("Failed to open document for text extraction", "error", err)
		metrics.DocumentExtractTotal.WithLabelValues("text", "error").Inc()
		return ""
	}
	defer pdf.Close()

	var sb strings.Builder
	for page := 0; page < pdf.NumPage(); page++ {
		text, err := pdf.Text(page)
		if err != nil {
			// Corrupt page: skip it and keep reading
			logging.Warn("Failed to extract page text", "page", page, "error", err)
			continue
		}
		if sb.Len() > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(text)
		if sb.Len() > maxChars {
			break
		}
	}

	metrics.DocumentExtractTotal.WithLabelValues("text", "ok").Inc()
	return truncate(sb.String(), maxChars)
}

// PreviewImage renders only the first page as a small lossy JPEG. The
// render resolution scales from the 72 DPI base unit by targetWidth,
// matching the document's native point size at that width. Returns nil
// if the document has no pages or rendering fails; callers treat a
// missing preview as non-fatal.
func (e *Extractor) PreviewImage(doc []byte, targetWidth int) []byte {
	if targetWidth <= 0 {
		targetWidth = e.previewWidth
	}

	pdf, err := fitz.NewFromMemory(doc)
	if err != nil {
		metrics.DocumentExtractTotal.WithLabelValues("preview", "error").Inc()
		return nil
	}
	defer pdf.Close()

	if pdf.NumPage() == 0 {
		metrics.DocumentExtractTotal.WithLabelValues("preview", "error").Inc()
		return nil
	}

	// Rendering at DPI == targetWidth is the width/72 scale matrix
	// applied to the 72-point base unit.
	img, err := pdf.ImageDPI(0, float64(targetWidth))
	if err != nil {
		logging.Warn("Failed to render preview image", "error", err)
		metrics.DocumentExtractTotal.WithLabelValues("preview", "error").Inc()
		return nil
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: e.jpegQuality}); err != nil {
		logging.Warn("Failed to encode preview image", "error", err)
		metrics.DocumentExtractTotal.WithLabelValues("preview", "error").Inc()
		return nil
	}

	metrics.DocumentExtractTotal.WithLabelValues("preview", "ok").Inc()
	return buf.Bytes()
}

// truncate cuts s to at most max bytes without splitting a UTF-8 rune.
// When the cut lands mid-rune it backs off at most one rune's width;
// invalid bytes elsewhere in the text are left alone.
func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	cut := max
	for i := 0; i < utf8.UTFMax-1 && cut > 0; i++ {
		r, size := utf8.DecodeLastRuneInString(s[:cut])
		if r != utf8.RuneError || size > 1 {
			break
		}
		cut--
	}
	return s[:cut]
}
