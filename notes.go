package slidemacro

import "regexp"

// notesPattern matches a speaker-notes directive paragraph. DOTALL so notes
// spanning multiple lines are captured whole.
var notesPattern = regexp.MustCompile(`(?s)<p>\.notes:\s?(.*?)</p>`)

// NotesMacro rewrites ".notes:" directive paragraphs into styled speaker
// note blocks. Unlike FxMacro, every occurrence in the slide is rewritten.
type NotesMacro struct{}

// NewNotesMacro creates the macro.
func NewNotesMacro() *NotesMacro {
	return &NotesMacro{}
}

// Process replaces each notes paragraph in place with a paragraph carrying
// the "notes" class, preserving the captured text verbatim. "has_notes" is
// contributed iff at least one replacement occurred; otherwise the input is
// returned byte-for-byte, which callers may use as the no-op signal.
func (m *NotesMacro) Process(content, source string) (string, []string) {
	newContent := notesPattern.ReplaceAllString(content, `<p class="notes">$1</p>`)
	if newContent == content {
		return content, nil
	}
	return newContent, []string{"has_notes"}
}
