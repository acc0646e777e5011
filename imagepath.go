package slidemacro

import (
	"fmt"
	"net/url"
	"path"
	"path/filepath"
	"regexp"
	"strings"
)

// imgSrcPattern matches a complete <img> tag and captures its src value.
var imgSrcPattern = regexp.MustCompile(`<img[^>]*?src="([^"]*)"[^>]*/?>`)

// FixImagePathsMacro rewrites relative image references into absolute URLs
// anchored at the directory containing the slide source, so a deck rendered
// to a different location still finds its images. Mutually exclusive with
// embedding: it is a no-op while the embed flag is set.
type FixImagePathsMacro struct {
	embed bool
	log   LogFunc
}

// NewFixImagePathsMacro creates the macro. A nil log discards diagnostics.
func NewFixImagePathsMacro(embed bool, log LogFunc) *FixImagePathsMacro {
	if log == nil {
		log = NopLog
	}
	return &FixImagePathsMacro{embed: embed, log: log}
}

// Process rewrites every img tag whose src is not an http(s) URL or a data
// URI into the normalized form <img src="..." />. Relative srcs are joined
// onto the file:// URL of the source's absolute directory; absolute
// filesystem paths are kept as-is. With embedding enabled or no source to
// anchor on, content passes through unchanged. Contributes no classes.
func (m *FixImagePathsMacro) Process(content, source string) (string, []string) {
	if m.embed || source == "" {
		return content, nil
	}

	absSource, err := filepath.Abs(source)
	if err != nil {
		m.log(fmt.Sprintf("%s: cannot resolve source path: %v", source, err), LevelWarning)
		return content, nil
	}
	baseURL := fileURL(filepath.Dir(absSource))

	content = imgSrcPattern.ReplaceAllStringFunc(content, func(tag string) string {
		src := imgSrcPattern.FindStringSubmatch(tag)[1]
		if strings.HasPrefix(src, "http://") ||
			strings.HasPrefix(src, "https://") ||
			strings.HasPrefix(src, "data:") {
			return tag
		}
		if filepath.IsAbs(src) {
			return fmt.Sprintf(`<img src="%s" />`, src)
		}
		return fmt.Sprintf(`<img src="%s" />`, joinURL(baseURL, src))
	})

	return content, nil
}

// fileURL converts an absolute path to a file:// URL, normalizing Windows
// separators.
func fileURL(absPath string) string {
	u := url.URL{
		Scheme: "file",
		Path:   filepath.ToSlash(absPath),
	}
	return u.String()
}

// joinURL appends a relative path to a base URL, cleaning "." and ".."
// segments.
func joinURL(base, rel string) string {
	return base + "/" + path.Clean(filepath.ToSlash(rel))
}
