package slidemacro

import (
	"regexp"
	"strings"
)

// fxPattern matches a directive paragraph declaring per-slide effect
// classes, including one trailing newline when present. Group 1 is the full
// paragraph to strip, group 2 the space-separated class list.
var fxPattern = regexp.MustCompile(`(?s)(<p>\.fx:\s?(.*?)</p>\n?)`)

// FxMacro extracts a ".fx:" directive paragraph into presentation-effect
// class names and removes it from the slide. At most one directive is
// recognized per call; removing it makes a second pass a no-op.
type FxMacro struct{}

// NewFxMacro creates the macro.
func NewFxMacro() *FxMacro {
	return &FxMacro{}
}

// Process returns the directive's tokens as classes and the content with the
// matched paragraph removed. Tokens are split on single spaces as written:
// consecutive spaces yield empty tokens, which are passed through untouched.
func (m *FxMacro) Process(content, source string) (string, []string) {
	match := fxPattern.FindStringSubmatch(content)
	if match == nil {
		return content, nil
	}

	classes := strings.Split(match[2], " ")
	content = strings.Replace(content, match[1], "", 1)

	return content, classes
}
