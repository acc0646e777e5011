package slidemacro

import (
	"encoding/base64"
	"fmt"
	"mime"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

// imageTagPattern captures the src URL of an <img> tag. DOTALL so attribute
// lists broken across lines still match.
var imageTagPattern = regexp.MustCompile(`(?s)<img\s.*?src="(.+?)"\s?.*?/?>`)

// EmbedImagesMacro inlines local image files as base64 data URIs so a deck
// can be shipped as a single self-contained file. It is a no-op unless
// embedding was enabled at construction.
type EmbedImagesMacro struct {
	embed bool
	log   LogFunc
}

// NewEmbedImagesMacro creates the macro. A nil log discards diagnostics.
func NewEmbedImagesMacro(embed bool, log LogFunc) *EmbedImagesMacro {
	if log == nil {
		log = NopLog
	}
	return &EmbedImagesMacro{embed: embed, log: log}
}

// Process rewrites each local image reference to a data URI. Already-inlined
// (data:) references are skipped, making a second pass a no-op. Remote
// http(s) references are left untouched; file:// references are unsupported
// and skipped with a warning. Relative paths resolve against the directory
// containing source. Every per-image failure (missing file, unknown media
// type, unreadable file) is logged and skipped without aborting the call.
// Embedding contributes no classes.
func (m *EmbedImagesMacro) Process(content, source string) (string, []string) {
	if !m.embed {
		return content, nil
	}

	for _, img := range imageTagPattern.FindAllStringSubmatch(content, -1) {
		imageURL := img[1]
		if imageURL == "" || strings.HasPrefix(imageURL, "data:") {
			continue
		}

		if strings.HasPrefix(imageURL, "file://") {
			m.log(fmt.Sprintf("%s: file:// image urls are not supported: skipped", source), LevelWarning)
			continue
		}

		if strings.HasPrefix(imageURL, "http://") || strings.HasPrefix(imageURL, "https://") {
			continue
		}

		realPath := imageURL
		if !filepath.IsAbs(imageURL) {
			realPath = filepath.Join(filepath.Dir(source), imageURL)
		}

		if _, err := os.Stat(realPath); err != nil {
			m.log(fmt.Sprintf("%s: image file %s not found: skipped", source, realPath), LevelWarning)
			continue
		}

		mimeType := mime.TypeByExtension(filepath.Ext(realPath))
		if mimeType == "" {
			m.log(fmt.Sprintf("%s: unknown image mime-type in %s: skipped", source, realPath), LevelWarning)
			continue
		}

		data, err := os.ReadFile(realPath) // #nosec G304 -- path comes from slide content by design
		if err != nil {
			m.log(fmt.Sprintf("%s: unable to read image %s: skipping", source, realPath), LevelWarning)
			continue
		}

		encodedURL := fmt.Sprintf("data:%s;base64,%s", mimeType, base64.StdEncoding.EncodeToString(data))
		content = strings.Replace(content, imageURL, encodedURL, 1)

		m.log(fmt.Sprintf("embedded image %s", realPath), LevelNotice)
	}

	return content, nil
}
