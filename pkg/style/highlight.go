package style

import (
	"bytes"

	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	chromastyles "github.com/alecthomas/chroma/v2/styles"
)

// HighlightCSS returns the stylesheet with terminal color escapes for
// preview output. On any failure the source is returned unchanged, so
// callers never lose the preview to a highlighting problem.
func HighlightCSS(src string) string {
	lexer := lexers.Get("css")
	if lexer == nil {
		return src
	}

	iterator, err := lexer.Tokenise(nil, src)
	if err != nil {
		return src
	}

	formatter := formatters.Get("terminal256")
	if formatter == nil {
		return src
	}

	chromaStyle := chromastyles.Get("monokai")
	if chromaStyle == nil {
		chromaStyle = chromastyles.Fallback
	}

	out := new(bytes.Buffer)
	if err := formatter.Format(out, chromaStyle, iterator); err != nil {
		return src
	}

	return out.String()
}
