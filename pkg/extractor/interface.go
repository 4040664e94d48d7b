package extractor

// IExtractor turns downloaded documents into model-ready text.
// Extraction never fails: unusable input yields an empty Result.Text.
type IExtractor interface {
	// Extract parses an HTML document.
	Extract(html string) Result

	// ExtractPlain normalizes a non-HTML document.
	ExtractPlain(text string) Result

	// MaxLength returns the truncation ceiling in characters.
	MaxLength() int
}

// New creates an extractor truncating to maxLength characters (DefaultMaxLength when <= 0).
func New(maxLength int) IExtractor {
	if maxLength <= 0 {
		maxLength = DefaultMaxLength
	}
	return &extractorImpl{maxLength: maxLength}
}
