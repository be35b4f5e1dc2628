package render

import (
	"bytes"
	"html/template"
	"strings"

	"github.com/alecthomas/chroma/v2"
	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/util"
)

const DefaultCodeStyle = "monokai"

// Markdown converts note content to HTML. Raw HTML in the source is
// escaped; fenced code blocks are highlighted with inline styles.
type Markdown struct {
	md goldmark.Markdown
}

// NewMarkdown highlights code with the named chroma style; an empty name
// selects DefaultCodeStyle.
func NewMarkdown(codeStyle string) *Markdown {
	codeStyle = strings.TrimSpace(codeStyle)
	if codeStyle == "" {
		codeStyle = DefaultCodeStyle
	}
	style := styles.Get(codeStyle)
	if style == nil {
		style = styles.Fallback
	}
	hl := &codeRenderer{
		style:     style,
		formatter: chromahtml.New(chromahtml.WithClasses(false), chromahtml.TabWidth(4)),
	}
	md := goldmark.New(
		goldmark.WithRendererOptions(
			renderer.WithNodeRenderers(util.Prioritized(hl, 200)),
		),
	)
	return &Markdown{md: md}
}

func (m *Markdown) HTML(content string) (template.HTML, error) {
	var b bytes.Buffer
	if err := m.md.Convert([]byte(content), &b); err != nil {
		return "", err
	}
	return template.HTML(b.String()), nil
}

type codeRenderer struct {
	style     *chroma.Style
	formatter *chromahtml.Formatter
}

func (r *codeRenderer) RegisterFuncs(reg renderer.NodeRendererFuncRegisterer) {
	reg.Register(ast.KindFencedCodeBlock, r.renderFencedCode)
}

func (r *codeRenderer) renderFencedCode(w util.BufWriter, source []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	if !entering {
		return ast.WalkContinue, nil
	}
	n := node.(*ast.FencedCodeBlock)

	var code strings.Builder
	lines := n.Lines()
	for i := 0; i < lines.Len(); i++ {
		line := lines.At(i)
		code.Write(line.Value(source))
	}

	lexer := lexers.Get(string(n.Language(source)))
	if lexer == nil {
		lexer = lexers.Analyse(code.String())
	}
	if lexer == nil {
		lexer = lexers.Fallback
	}
	lexer = chroma.Coalesce(lexer)

	it, err := lexer.Tokenise(nil, code.String())
	if err != nil {
		return ast.WalkStop, err
	}
	if err := r.formatter.Format(w, r.style, it); err != nil {
		return ast.WalkStop, err
	}
	return ast.WalkSkipChildren, nil
}
