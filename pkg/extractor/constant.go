package extractor

const (
	// DefaultMaxLength is the truncation ceiling used when none is configured.
	DefaultMaxLength = 2000

	ellipsis = "..."
)

// removedSelector lists elements whose text never reaches the context.
var removedSelector = "script, style, nav, footer, header, noscript, template, iframe, svg, object, embed"
