package slidemacro

import (
	"fmt"
	"strings"
	"sync"
)

// logRecorder captures diagnostic messages for assertions. Safe for
// concurrent use so parallel pipeline tests can share one.
type logRecorder struct {
	mu      sync.Mutex
	entries []string
}

func (r *logRecorder) log(message, level string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, level+": "+message)
}

func (r *logRecorder) all() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.entries...)
}

func (r *logRecorder) contains(substr string) bool {
	for _, e := range r.all() {
		if strings.Contains(e, substr) {
			return true
		}
	}
	return false
}

// stubHighlighter is a deterministic Highlighter for macro tests. It records
// the decoded source it receives and wraps it in a fixed marker, or fails
// for languages listed in unknown.
type stubHighlighter struct {
	unknown map[string]bool
	calls   []stubCall
}

type stubCall struct {
	source string
	lang   string
}

func (s *stubHighlighter) Highlight(source, lang string) (string, error) {
	if s.unknown[lang] {
		return "", fmt.Errorf("%w: %q", ErrUnknownLanguage, lang)
	}
	s.calls = append(s.calls, stubCall{source: source, lang: lang})
	return fmt.Sprintf(`<div class="highlight">[%s]%s</div>`, lang, source), nil
}
