package slidemacro

// Macro is one independent content-transformation step in the pipeline.
//
// Process receives the current HTML fragment of a slide plus the path of the
// file it was rendered from (empty when unknown), and returns the possibly
// modified fragment along with zero or more class names to attach to the
// slide. A macro must treat "nothing to do" as success: unchanged content,
// nil classes. Macros hold no state across calls beyond their immutable
// configuration, so each call is a fresh transformation over whatever
// content it receives.
type Macro interface {
	Process(content, source string) (string, []string)
}
