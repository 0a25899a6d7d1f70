// Package chunker splits flattened profile text into logical sections.
// Profile documents are organized as enumerated categories ("1. Informasi
// Pribadi", "2. Pendidikan", ...); splitting on those headings keeps each
// retrievable chunk semantically whole, where fixed-size chunking would cut
// sections mid-sentence and hurt retrieval precision.
package chunker

import (
	"regexp"
	"strings"
)

// HeadingPattern matches a numbered section heading at the start of a line:
// digits, a dot, a space, then an uppercase letter. Documents using another
// numbering scheme can pass their own pattern to SplitWithPattern.
var HeadingPattern = regexp.MustCompile(`(?m)^\d+\.\s\p{Lu}`)

// Split cuts the text into trimmed, non-empty section chunks using the
// default heading pattern, with "1." marking the first real section.
func Split(text string) []string {
	return SplitWithPattern(text, HeadingPattern, "1.")
}

// SplitWithPattern cuts the text immediately before every line that starts a
// new heading. If the first segment does not itself begin with the first
// section's marker it is a title or preamble and gets folded into the front
// of the first real section. Text without any heading comes back as a
// single chunk.
func SplitWithPattern(text string, pattern *regexp.Regexp, firstHeading string) []string {
	segments := splitBefore(text, pattern)

	chunks := make([]string, 0, len(segments))
	for _, seg := range segments {
		seg = strings.TrimSpace(seg)
		if seg != "" {
			chunks = append(chunks, seg)
		}
	}

	if len(chunks) > 1 && !strings.HasPrefix(chunks[0], firstHeading) {
		chunks[1] = chunks[0] + "\n\n" + chunks[1]
		chunks = chunks[1:]
	}
	return chunks
}

// splitBefore cuts text at the start offset of every pattern match that does
// not sit at position zero, so each heading begins its own segment. Go's
// regexp has no lookahead, match offsets stand in for one.
func splitBefore(text string, pattern *regexp.Regexp) []string {
	matches := pattern.FindAllStringIndex(text, -1)
	if len(matches) == 0 {
		return []string{text}
	}

	var segments []string
	prev := 0
	for _, m := range matches {
		if m[0] == prev {
			continue
		}
		segments = append(segments, text[prev:m[0]])
		prev = m[0]
	}
	segments = append(segments, text[prev:])
	return segments
}
