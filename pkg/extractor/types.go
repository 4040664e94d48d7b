package extractor

// Result is the cleaned content of one document.
type Result struct {
	Text        string // whitespace-normalized, truncated visible text
	Title       string
	Description string
	SiteName    string
	RawLength   int  // characters before truncation
	Truncated   bool // Text was shortened to fit MaxLength
}

// Empty reports whether no usable text was found.
func (r Result) Empty() bool {
	return r.Text == ""
}

type extractorImpl struct {
	maxLength int
}
