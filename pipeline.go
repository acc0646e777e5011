package slidemacro

// Pipeline owns an ordered list of macros and feeds each slide's HTML
// through all of them in sequence, accumulating the contributed class
// names. Construct it once and reuse it across slides; it is immutable
// after New returns.
type Pipeline struct {
	macros      []Macro
	highlighter Highlighter
	log         LogFunc
	embed       bool
	style       string
}

// Option customizes a Pipeline at construction time.
type Option func(*Pipeline)

// WithEmbed enables inlining of local images as data URIs. While enabled,
// image path fixing is disabled (the two are mutually exclusive).
func WithEmbed(embed bool) Option {
	return func(p *Pipeline) { p.embed = embed }
}

// WithLogger sets the diagnostic sink shared by all default macros.
func WithLogger(log LogFunc) Option {
	return func(p *Pipeline) { p.log = log }
}

// WithStyle sets the chroma style used for code highlighting. Unregistered
// names fall back to chroma's default style; use Config.Validate to reject
// them instead.
func WithStyle(name string) Option {
	return func(p *Pipeline) { p.style = name }
}

// WithHighlighter replaces the chroma-backed highlighter, e.g. for tests.
func WithHighlighter(h Highlighter) Option {
	return func(p *Pipeline) { p.highlighter = h }
}

// WithMacros replaces the default macro list entirely. Macros run in the
// given order.
func WithMacros(macros ...Macro) Option {
	return func(p *Pipeline) { p.macros = macros }
}

// New creates a Pipeline with the default macro order: code highlighting,
// image embedding, image path fixing, fx directives, speaker notes.
func New(opts ...Option) *Pipeline {
	p := &Pipeline{log: NopLog}
	for _, opt := range opts {
		opt(p)
	}

	if p.highlighter == nil {
		p.highlighter = newChromaHighlighter(p.style)
	}
	if p.macros == nil {
		p.macros = []Macro{
			NewCodeHighlightingMacro(p.highlighter, p.log),
			NewEmbedImagesMacro(p.embed, p.log),
			NewFixImagePathsMacro(p.embed, p.log),
			NewFxMacro(),
			NewNotesMacro(),
		}
	}
	return p
}

// FromConfig creates a Pipeline from a loaded Config. Explicit options are
// applied after the config and take precedence.
func FromConfig(cfg *Config, opts ...Option) *Pipeline {
	if cfg == nil {
		return New(opts...)
	}
	return New(append([]Option{WithEmbed(cfg.Embed), WithStyle(cfg.Style)}, opts...)...)
}

// Process runs content through every macro in order, threading the slide
// source path along for relative-resource resolution. It returns the final
// content and the deduplicated class names in first-occurrence order.
// Individual macros may repeat a class; deduplication happens only here.
func (p *Pipeline) Process(content, source string) (string, []string) {
	var classes []string
	for _, m := range p.macros {
		var cls []string
		content, cls = m.Process(content, source)
		classes = append(classes, cls...)
	}
	return content, dedupe(classes)
}

// dedupe removes duplicate class names, keeping first-occurrence order.
func dedupe(classes []string) []string {
	if len(classes) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(classes))
	result := make([]string, 0, len(classes))
	for _, c := range classes {
		if _, ok := seen[c]; ok {
			continue
		}
		seen[c] = struct{}{}
		result = append(result, c)
	}
	return result
}
