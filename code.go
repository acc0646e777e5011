package slidemacro

import (
	"errors"
	"fmt"
	"html"
	"regexp"
	"strings"
)

// codeBlockPattern matches an HTML fenced code block carrying a language
// marker: a <pre> wrapper, an optional <code> wrapper, "!" immediately
// followed by the language identifier and a newline, then the body.
// Capture groups: 1 = whole block, 2 = optional <code>, 3 = language,
// 4 = body, 5 = optional </code>.
var codeBlockPattern = regexp.MustCompile(`(?s)(<pre.+?>(<code>)?\s?!(\w+?)\n(.*?)(</code>)?</pre>)`)

// CodeHighlightingMacro replaces fenced code blocks with syntax-highlighted
// markup. The block body arrives HTML-escaped from the upstream renderer, so
// entities are decoded before highlighting. Highlighted output is not itself
// a fenced block, so re-running the macro leaves it alone.
type CodeHighlightingMacro struct {
	highlighter Highlighter
	log         LogFunc
}

// NewCodeHighlightingMacro creates the macro. A nil highlighter selects the
// chroma default; a nil log discards diagnostics.
func NewCodeHighlightingMacro(h Highlighter, log LogFunc) *CodeHighlightingMacro {
	if h == nil {
		h = newChromaHighlighter("")
	}
	if log == nil {
		log = NopLog
	}
	return &CodeHighlightingMacro{highlighter: h, log: log}
}

// Process highlights every fenced code block in content, replacing the first
// textual occurrence of each matched block so duplicate blocks are not
// corrupted. The first unknown language aborts the remaining blocks for this
// call: a warning is logged and the content is returned as transformed so
// far, with no classes. "has_code" is contributed only when every detected
// block resolved a lexer.
func (m *CodeHighlightingMacro) Process(content, source string) (string, []string) {
	blocks := codeBlockPattern.FindAllStringSubmatch(content, -1)
	if len(blocks) == 0 {
		return content, nil
	}

	for _, b := range blocks {
		block, lang, code := b[1], b[3], b[4]
		highlighted, err := m.highlighter.Highlight(descape(code), lang)
		if err != nil {
			if errors.Is(err, ErrUnknownLanguage) {
				m.log(fmt.Sprintf("unknown lexer %q, skipping", lang), LevelWarning)
			} else {
				m.log(fmt.Sprintf("highlighting %s block: %v", lang, err), LevelWarning)
			}
			return content, nil
		}
		content = strings.Replace(content, block, highlighted, 1)
	}

	return content, []string{"has_code"}
}

// descape decodes HTML character entities back to literal characters.
// The entity table is the standard library's static definition set.
func descape(s string) string {
	return html.UnescapeString(s)
}
