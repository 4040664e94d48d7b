package extractor

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/dyatlov/go-opengraph/opengraph"
	"golang.org/x/net/html"
)

// Extract parses document, drops non-content elements and returns its visible text.
func (e *extractorImpl) Extract(document string) Result {
	if strings.TrimSpace(document) == "" {
		return Result{}
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(document))
	if err != nil {
		return Result{}
	}

	res := Result{}
	e.readMetadata(document, doc, &res)

	doc.Find(removedSelector).Remove()

	var b strings.Builder
	for _, n := range doc.Nodes {
		collectText(n, &b)
	}

	e.finish(b.String(), &res)
	return res
}

// ExtractPlain normalizes and truncates text that is not HTML.
func (e *extractorImpl) ExtractPlain(text string) Result {
	res := Result{}
	e.finish(text, &res)
	return res
}

// MaxLength returns the truncation ceiling in characters.
func (e *extractorImpl) MaxLength() int {
	return e.maxLength
}

func (e *extractorImpl) finish(raw string, res *Result) {
	clean := NormalizeSpace(raw)
	res.RawLength = len([]rune(clean))
	res.Text, res.Truncated = Truncate(clean, e.maxLength)
}

// readMetadata prefers OpenGraph tags and falls back to <title> and meta description.
func (e *extractorImpl) readMetadata(document string, doc *goquery.Document, res *Result) {
	og := opengraph.NewOpenGraph()
	if err := og.ProcessHTML(strings.NewReader(document)); err == nil {
		res.Title = NormalizeSpace(og.Title)
		res.Description = NormalizeSpace(og.Description)
		res.SiteName = NormalizeSpace(og.SiteName)
	}

	if res.Title == "" {
		res.Title = NormalizeSpace(doc.Find("title").First().Text())
	}
	if res.Title == "" {
		res.Title = NormalizeSpace(doc.Find("h1").First().Text())
	}
	if res.Description == "" {
		if desc, ok := doc.Find("meta[name='description']").First().Attr("content"); ok {
			res.Description = NormalizeSpace(desc)
		}
	}
}

// collectText appends every text node under n, each followed by a space.
func collectText(n *html.Node, b *strings.Builder) {
	switch n.Type {
	case html.TextNode:
		b.WriteString(n.Data)
		b.WriteByte(' ')
		return
	case html.CommentNode, html.DoctypeNode:
		return
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectText(c, b)
	}
}

// NormalizeSpace collapses every whitespace run to a single space and trims the ends.
func NormalizeSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
