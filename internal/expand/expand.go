// Package expand turns one parsed multi-target unit into N self-contained
// per-target units.
//
// The expansion is pure structural duplication: nothing inside the body is
// substituted, specialized, or even looked at. Binding each emitted block to
// its own target type is left to the host language's normal declaration
// processing, which is what keeps this function total — it cannot fail on any
// well-formed input the parser produces.
package expand

import (
	"implfan/internal/ast"
)

// Expand maps one SharedSpec to an ordered sequence of SingleSpec values,
// one per target, in source order. Every field of every SingleSpec is an
// independent clone; mutating one expansion can never leak into another.
func Expand(spec ast.SharedSpec) []ast.SingleSpec {
	out := make([]ast.SingleSpec, 0, len(spec.Targets))
	for _, target := range spec.Targets {
		out = append(out, ast.SingleSpec{
			Generics: ast.CloneGenerics(spec.Generics),
			Where:    ast.CloneWhere(spec.Where),
			Target:   ast.CloneTarget(target),
			Body:     spec.Body,
		})
	}
	return out
}

// ExpandInvocation expands every header group of an invocation against the
// shared body. Output order is group-major: all of group 0's targets, then
// group 1's, preserving source order throughout.
func ExpandInvocation(inv ast.Invocation) []ast.SingleSpec {
	out := make([]ast.SingleSpec, 0, inv.TargetCount())
	for _, group := range inv.Groups {
		out = append(out, Expand(group)...)
	}
	return out
}
