// Package emit serializes expansion units back into standalone declaration
// blocks. Each block is self-sufficient: no syntax is shared between blocks,
// and the body bytes are reproduced exactly as written, so attributes, doc
// comments and visibility modifiers inside survive unchanged.
package emit

import (
	"io"
	"strings"

	"implfan/internal/ast"
)

// BlockSeparator между отрендеренными блоками.
const BlockSeparator = "\n\n"

// Render writes every SingleSpec in order to w. Output order equals input
// order; identical input always produces byte-identical output.
func Render(w io.Writer, specs []ast.SingleSpec) error {
	for i, spec := range specs {
		if i > 0 {
			if _, err := io.WriteString(w, BlockSeparator); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, RenderBlock(spec)); err != nil {
			return err
		}
	}
	return nil
}

// RenderString renders the sequence into one string.
func RenderString(specs []ast.SingleSpec) string {
	var sb strings.Builder
	for i, spec := range specs {
		if i > 0 {
			sb.WriteString(BlockSeparator)
		}
		sb.WriteString(RenderBlock(spec))
	}
	return sb.String()
}

// RenderBlock reconstructs one standalone block:
//
//	impl<G> Trait for Type where P { body }
//
// The where clause loses the invocation's parentheses; the body keeps its
// original bytes between the braces.
func RenderBlock(spec ast.SingleSpec) string {
	var sb strings.Builder
	sb.WriteString("impl")
	writeGenerics(&sb, spec.Generics)
	sb.WriteByte(' ')
	if spec.Target.Trait != nil {
		sb.WriteString(spec.Target.Trait.Text)
		sb.WriteString(" for ")
	}
	sb.WriteString(spec.Target.Type.Text)
	if spec.Where != nil {
		sb.WriteString(" where ")
		sb.WriteString(strings.TrimSpace(spec.Where.Text))
	}
	sb.WriteString(" {")
	sb.WriteString(spec.Body.Text)
	sb.WriteByte('}')
	return sb.String()
}

func writeGenerics(sb *strings.Builder, params []ast.GenericParam) {
	if len(params) == 0 {
		return
	}
	sb.WriteByte('<')
	for i, param := range params {
		if i > 0 {
			sb.WriteString(", ")
		}
		switch param.Kind {
		case ast.GenericConst:
			sb.WriteString("const ")
			sb.WriteString(param.Name)
			sb.WriteString(": ")
			sb.WriteString(param.Bounds)
		default:
			sb.WriteString(param.Name)
			if param.Bounds != "" {
				sb.WriteString(": ")
				sb.WriteString(param.Bounds)
			}
		}
	}
	sb.WriteByte('>')
}
