package post

import (
	"bytes"
	"strings"

	"github.com/adrg/frontmatter"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// Summary is the short description shown when listing saved posts.
type Summary struct {
	Title string
	Words int
}

type summaryMatter struct {
	Title string `yaml:"title"`
}

// Summarize extracts a title and word count from saved markdown. The title is
// taken from the front matter, then the first level-one heading. Title is
// empty when neither exists.
func Summarize(content []byte) Summary {
	var meta summaryMatter

	body, err := frontmatter.Parse(bytes.NewReader(content), &meta)
	if err != nil {
		// malformed front matter is treated as body text
		body = content
		meta = summaryMatter{}
	}

	title := strings.TrimSpace(meta.Title)
	if title == "" {
		title = firstHeading(body)
	}

	return Summary{
		Title: title,
		Words: len(strings.Fields(string(body))),
	}
}

func firstHeading(source []byte) string {
	doc := goldmark.New().Parser().Parse(text.NewReader(source))

	var title string
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}

		h, ok := n.(*ast.Heading)
		if !ok || h.Level != 1 {
			return ast.WalkContinue, nil
		}

		title = strings.TrimSpace(inlineText(h, source))
		return ast.WalkStop, nil
	})

	return title
}

// inlineText concatenates the text segments below n.
func inlineText(n ast.Node, source []byte) string {
	var b strings.Builder
	_ = ast.Walk(n, func(c ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		if t, ok := c.(*ast.Text); ok {
			b.Write(t.Segment.Value(source))
			if t.SoftLineBreak() || t.HardLineBreak() {
				b.WriteByte(' ')
			}
		}
		return ast.WalkContinue, nil
	})
	return b.String()
}
