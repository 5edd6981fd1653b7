package highlight

import (
	"strings"

	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
)

// Code renders source text with ANSI colors for terminal display.
// The text is treated as opaque display data: a lexer tokenizes it for
// coloring but nothing is parsed or executed. Any failure falls back
// to the unmodified text.
func Code(source, language string) string {
	lexer := lexers.Get(language)
	if lexer == nil {
		lexer = lexers.Analyse(source)
	}
	if lexer == nil {
		return source
	}

	style := styles.Get("monokai")
	if style == nil {
		style = styles.Fallback
	}

	formatter := formatters.Get("terminal256")
	if formatter == nil {
		return source
	}

	iterator, err := lexer.Tokenise(nil, source)
	if err != nil {
		return source
	}

	var out strings.Builder
	if err := formatter.Format(&out, style, iterator); err != nil {
		return source
	}

	return strings.TrimRight(out.String(), "\n")
}
