package generate

import (
	"regexp"
	"strings"
)

var (
	frontmatterPattern = regexp.MustCompile(`(?s)---.*?---`)
	imagePattern       = regexp.MustCompile(`!\[[^\]]*\]\([^)]*\)`)
	linkPattern        = regexp.MustCompile(`\[([^\]]*)\]\([^)]*\)`)
	headingPattern     = regexp.MustCompile(`#{1,6}\s+`)
	inlinePattern      = regexp.MustCompile("[*_~`>]")
	blankLinePattern   = regexp.MustCompile(`\n{2,}`)
	whitespacePattern  = regexp.MustCompile(`\s+`)
)

// StripMarkdown reduces a generated markdown document to the plain text
// stored in a card body for searching: frontmatter and images dropped,
// links collapsed to their text, heading and emphasis markers removed,
// whitespace collapsed.
func StripMarkdown(markdown string) string {
	text := frontmatterPattern.ReplaceAllString(markdown, "")
	text = imagePattern.ReplaceAllString(text, "")
	text = linkPattern.ReplaceAllString(text, "$1")
	text = headingPattern.ReplaceAllString(text, "")
	text = inlinePattern.ReplaceAllString(text, "")
	text = blankLinePattern.ReplaceAllString(text, " ")
	text = whitespacePattern.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}
