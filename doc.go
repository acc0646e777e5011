// Package slidemacro transforms rendered slide HTML through an ordered
// sequence of independent macros. Each macro may rewrite the HTML fragment
// and contribute semantic class names describing the slide (for example
// "has_code" or "has_notes") which the surrounding deck generator attaches
// as presentation hints.
//
// # Quick Start
//
// Create a pipeline and run each slide's HTML body through it:
//
//	p := slidemacro.New()
//	content, classes := p.Process(slideHTML, "slides/intro.md")
//
// The returned content is the transformed HTML; classes is the deduplicated,
// order-preserving set of class names contributed by the macros.
//
// # Macros
//
// The default pipeline runs, in order:
//
//  1. CodeHighlightingMacro: highlights fenced code blocks via chroma
//  2. EmbedImagesMacro: inlines local images as base64 data URIs
//  3. FixImagePathsMacro: rewrites relative image paths to absolute URLs
//  4. FxMacro: extracts ".fx:" directive paragraphs into class names
//  5. NotesMacro: rewrites ".notes:" paragraphs into styled note blocks
//
// Image embedding and path fixing are mutually exclusive: embedding is off
// by default, and FixImagePathsMacro is a no-op while embedding is on.
//
// # Configuration
//
// Use functional options to customize the pipeline:
//
//	p := slidemacro.New(
//	    slidemacro.WithEmbed(true),
//	    slidemacro.WithStyle("monokai"),
//	    slidemacro.WithLogger(slidemacro.WriterLog(os.Stderr)),
//	)
//
// or load options from a YAML file:
//
//	cfg, err := slidemacro.LoadConfig("deck.yaml")
//	p := slidemacro.FromConfig(cfg)
//
// # Diagnostics
//
// Macros never fail a slide: recoverable problems (unknown language, missing
// image, unreadable file) are reported through the pipeline's LogFunc and the
// slide degrades gracefully. The default sink discards messages.
//
// # Concurrency
//
// A Pipeline is immutable after construction and safe for concurrent use on
// disjoint slides. The LogFunc must be safe for concurrent calls if slides
// are processed in parallel.
package slidemacro
