package usecase

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/net/html"
)

// plainText strips markup from server-provided text and collapses whitespace.
// Input that does not parse is returned trimmed.
func plainText(input string) string {
	if strings.TrimSpace(input) == "" {
		return ""
	}

	node, err := html.Parse(strings.NewReader(input))
	if err != nil {
		return strings.TrimSpace(input)
	}

	var builder strings.Builder
	extractText(node, &builder)
	return strings.Join(strings.Fields(builder.String()), " ")
}

func extractText(node *html.Node, builder *strings.Builder) {
	switch node.Type {
	case html.TextNode:
		builder.WriteString(node.Data)
	case html.ElementNode:
		if node.Data == "script" || node.Data == "style" {
			return
		}
		if node.Data == "br" || node.Data == "p" || node.Data == "li" {
			builder.WriteRune(' ')
		}
	}

	for child := node.FirstChild; child != nil; child = child.NextSibling {
		extractText(child, builder)
	}
}

// truncate shortens s to at most limit runes, cutting at the last space when
// there is one.
func truncate(s string, limit int) string {
	if limit <= 0 || utf8.RuneCountInString(s) <= limit {
		return s
	}
	trimmed := string([]rune(s)[:limit])
	if lastSpace := strings.LastIndex(trimmed, " "); lastSpace > 0 {
		trimmed = trimmed[:lastSpace]
	}
	return trimmed + "..."
}

func titleCase(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
