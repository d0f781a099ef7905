package gemini

// Part is one ordered element of a completion request: either a text
// segment or a mime-typed binary payload (inline image, PDF preview).
type Part struct {
	Text string
	MIME string
	Data []byte
}

// Text builds a text part.
func Text(s string) Part {
	return Part{Text: s}
}

// Blob builds a binary part with its mime type.
func Blob(mime string, data []byte) Part {
	return Part{MIME: mime, Data: data}
}
