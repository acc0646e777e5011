package slidemacro

import (
	"reflect"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
)

func TestNotesMacro(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		input       string
		wantContent string
		wantClasses []string
	}{
		{
			name:        "single note rewritten",
			input:       "<p>.notes: check the demo</p>",
			wantContent: `<p class="notes">check the demo</p>`,
			wantClasses: []string{"has_notes"},
		},
		{
			name:        "text preserved verbatim",
			input:       "<p>.notes: keep <em>calm</em> &amp; carry on</p>",
			wantContent: `<p class="notes">keep <em>calm</em> &amp; carry on</p>`,
			wantClasses: []string{"has_notes"},
		},
		{
			name:        "note spanning newlines",
			input:       "<p>.notes: first line\nsecond line</p>",
			wantContent: "<p class=\"notes\">first line\nsecond line</p>",
			wantClasses: []string{"has_notes"},
		},
		{
			name:        "no directive returns input byte-for-byte",
			input:       "<p>Visible content</p>\n",
			wantContent: "<p>Visible content</p>\n",
			wantClasses: nil,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			m := NewNotesMacro()
			got, classes := m.Process(tt.input, "")
			if got != tt.wantContent {
				t.Errorf("Process() content = %q, want %q", got, tt.wantContent)
			}
			if !reflect.DeepEqual(classes, tt.wantClasses) {
				t.Errorf("Process() classes = %v, want %v", classes, tt.wantClasses)
			}
		})
	}
}

func TestNotesMacroMultipleNotes(t *testing.T) {
	t.Parallel()

	m := NewNotesMacro()
	input := "<p>.notes: first</p>\n<p>Slide body</p>\n<p>.notes: second</p>"
	got, classes := m.Process(input, "")

	if !reflect.DeepEqual(classes, []string{"has_notes"}) {
		t.Fatalf("Process() classes = %v, want [has_notes]", classes)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(got))
	if err != nil {
		t.Fatalf("parsing output: %v", err)
	}
	notes := doc.Find("p.notes")
	if notes.Length() != 2 {
		t.Fatalf("found %d p.notes elements, want 2", notes.Length())
	}
	var texts []string
	notes.Each(func(_ int, s *goquery.Selection) {
		texts = append(texts, s.Text())
	})
	if !reflect.DeepEqual(texts, []string{"first", "second"}) {
		t.Errorf("note texts = %v, want [first second]", texts)
	}
}

// The directive is consumed on the first pass, so a second pass over the
// rewritten content is the identity.
func TestNotesMacroIdempotent(t *testing.T) {
	t.Parallel()

	m := NewNotesMacro()
	first, _ := m.Process("<p>.notes: once</p>", "")
	second, classes := m.Process(first, "")
	if second != first {
		t.Errorf("second pass changed content: %q -> %q", first, second)
	}
	if len(classes) != 0 {
		t.Errorf("second pass classes = %v, want none", classes)
	}
}
