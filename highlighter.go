package slidemacro

import (
	"fmt"
	"strings"

	"github.com/alecthomas/chroma/v2"
	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
)

// Highlighter abstracts the syntax-highlighting engine behind the code
// macro. Highlight renders source declared as lang into HTML markup, or
// fails with an error wrapping ErrUnknownLanguage when no lexer matches.
type Highlighter interface {
	Highlight(source, lang string) (string, error)
}

// chromaHighlighter highlights code via chroma with inline line numbers and
// class-based output (no inline background styling), matching the markup the
// deck themes style through an external stylesheet.
type chromaHighlighter struct {
	style     *chroma.Style
	formatter *chromahtml.Formatter
}

// newChromaHighlighter creates a chroma-backed highlighter using the named
// style. An empty or unregistered name falls back to chroma's default style.
func newChromaHighlighter(styleName string) *chromaHighlighter {
	return &chromaHighlighter{
		style: styles.Get(styleName),
		formatter: chromahtml.New(
			chromahtml.WithLineNumbers(true),
			chromahtml.WithClasses(true),
		),
	}
}

// Highlight tokenizes source with the lexer registered for lang and formats
// it as HTML. The lang lookup accepts chroma lexer names and aliases.
func (h *chromaHighlighter) Highlight(source, lang string) (string, error) {
	lexer := lexers.Get(lang)
	if lexer == nil {
		return "", fmt.Errorf("%w: %q", ErrUnknownLanguage, lang)
	}
	lexer = chroma.Coalesce(lexer)

	iterator, err := lexer.Tokenise(nil, source)
	if err != nil {
		return "", fmt.Errorf("%w: tokenizing %s source: %v", ErrHighlight, lang, err)
	}

	var buf strings.Builder
	if err := h.formatter.Format(&buf, h.style, iterator); err != nil {
		return "", fmt.Errorf("%w: formatting %s source: %v", ErrHighlight, lang, err)
	}
	return buf.String(), nil
}
