package ast

import (
	"implfan/internal/source"
)

// GenericParamKind classifies a generic parameter.
type GenericParamKind uint8

const (
	// GenericLifetime is a lifetime parameter such as 'a.
	GenericLifetime GenericParamKind = iota
	// GenericType is an ordinary type parameter.
	GenericType
	// GenericConst is a const parameter (`const N: usize`).
	GenericConst
)

func (k GenericParamKind) String() string {
	switch k {
	case GenericLifetime:
		return "lifetime"
	case GenericType:
		return "type"
	case GenericConst:
		return "const"
	}
	return "unknown"
}

// GenericParam represents one parameter of the shared generic list.
// Bounds (после ':') хранятся как непрозрачный текст.
type GenericParam struct {
	Kind     GenericParamKind
	Name     string
	NameSpan source.Span
	Bounds   string // "" если нет
	Span     source.Span
}

// TypeExpr is an opaque target type expression such as `WrappedSlice<'_, T>`.
type TypeExpr struct {
	Text string
	Span source.Span
}

// TraitRef is an opaque trait expression such as `Debug` or `From<T>`.
type TraitRef struct {
	Text string
	Span source.Span
}

// Target pairs one type expression with an optional trait being implemented
// for it (`Debug for Borrowed<'_, T>`).
type Target struct {
	Trait *TraitRef // nil для inherent-блока
	Type  TypeExpr
}

// WhereClause holds the raw predicates of a `where (...)` clause, without the
// surrounding parentheses.
type WhereClause struct {
	Text string
	Span source.Span
}

// Body is the shared declaration body: the raw text between the body braces,
// excluding the braces themselves. It is reproduced byte-for-byte in every
// expansion and never inspected.
type Body struct {
	Text string
	Span source.Span
}

// SharedSpec is one `impl` header group: generics, targets and an optional
// where clause, all applied uniformly to the shared body. Инвариант: Targets
// непустой; одиночная цель — легальный вырожденный случай.
type SharedSpec struct {
	Generics []GenericParam
	Where    *WhereClause
	Targets  []Target
	Body     Body
	Span     source.Span // весь заголовок группы
}

// SingleSpec is one fully self-contained expansion unit: everything the
// emitter needs to render a standalone block.
type SingleSpec struct {
	Generics []GenericParam
	Where    *WhereClause
	Target   Target
	Body     Body
}

// Invocation is the whole parsed call site: one or more header groups sharing
// a single body. The common case is exactly one group.
type Invocation struct {
	Groups []SharedSpec
	Span   source.Span // от первого 'impl' до закрывающей скобки тела
}

// CloneGenerics returns an independent deep copy of the generic list.
func CloneGenerics(in []GenericParam) []GenericParam {
	if in == nil {
		return nil
	}
	out := make([]GenericParam, len(in))
	copy(out, in)
	return out
}

// CloneWhere returns an independent copy of the where clause, or nil.
func CloneWhere(in *WhereClause) *WhereClause {
	if in == nil {
		return nil
	}
	w := *in
	return &w
}

// CloneTarget returns an independent copy of a target, including its trait.
func CloneTarget(in Target) Target {
	out := Target{Type: in.Type}
	if in.Trait != nil {
		tr := *in.Trait
		out.Trait = &tr
	}
	return out
}

// TargetCount reports the total number of targets across all groups.
func (inv *Invocation) TargetCount() int {
	n := 0
	for i := range inv.Groups {
		n += len(inv.Groups[i].Targets)
	}
	return n
}
