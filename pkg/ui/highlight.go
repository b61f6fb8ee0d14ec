package ui

import (
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
)

// DefaultHighlightStyle is the chroma style used when none is configured
const DefaultHighlightStyle = "monokai"

// Highlight renders content with terminal syntax highlighting.
// The lexer is picked from hint (a language name or filename) when given,
// otherwise guessed from the content. On any failure content is returned as is.
func Highlight(content, hint, styleName string) string {
	lexer := pickLexer(content, hint)
	lexer = chroma.Coalesce(lexer)

	style := styles.Get(styleName)
	if style == nil {
		style = styles.Fallback
	}

	iterator, err := lexer.Tokenise(nil, content)
	if err != nil {
		return content
	}

	var buf strings.Builder
	if err := formatters.TTY256.Format(&buf, style, iterator); err != nil {
		return content
	}
	return buf.String()
}

func pickLexer(content, hint string) chroma.Lexer {
	if hint != "" {
		if l := lexers.Get(hint); l != nil {
			return l
		}
		if l := lexers.Match(hint); l != nil {
			return l
		}
	}
	if l := lexers.Analyse(content); l != nil {
		return l
	}
	return lexers.Fallback
}

// LexerName reports which lexer Highlight would use
func LexerName(content, hint string) string {
	return pickLexer(content, hint).Config().Name
}
