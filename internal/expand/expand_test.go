package expand_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"implfan/internal/ast"
	"implfan/internal/diag"
	"implfan/internal/expand"
	"implfan/internal/lexer"
	"implfan/internal/parser"
	"implfan/internal/source"
)

func parseOne(t *testing.T, input string) ast.Invocation {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.AddVirtual("inv.rs", []byte(input))
	file := fs.Get(id)

	bag := diag.NewBag(16)
	reporter := &diag.BagReporter{Bag: bag}
	lx := lexer.New(file, lexer.Options{Reporter: reporter})
	res := parser.Parse(fs, lx, parser.Options{Reporter: reporter})
	require.False(t, bag.HasErrors(), "input must parse cleanly")
	require.Len(t, res.Invocations, 1)
	return res.Invocations[0]
}

func TestExpandProducesOneSpecPerTarget(t *testing.T) {
	inv := parseOne(t, "impl<T> A<T>, B<T>, C<T> { fn get(&self) {} }")
	specs := expand.ExpandInvocation(inv)
	require.Len(t, specs, 3)

	wantTargets := []string{"A<T>", "B<T>", "C<T>"}
	for i, spec := range specs {
		assert.Equal(t, wantTargets[i], spec.Target.Type.Text, "output order must match source order")
	}
}

func TestExpandClonesAreIndependent(t *testing.T) {
	inv := parseOne(t, "impl<T: Clone> A<T>, B<T> where (T: Send) { fn x() {} }")
	specs := expand.Expand(inv.Groups[0])
	require.Len(t, specs, 2)

	// глубокое равенство между копиями и исходником
	assert.Equal(t, inv.Groups[0].Generics, specs[0].Generics)
	assert.Equal(t, specs[0].Generics, specs[1].Generics)
	assert.Equal(t, specs[0].Where.Text, specs[1].Where.Text)

	// мутация одной копии не видна другой
	specs[0].Generics[0].Name = "MUTATED"
	assert.Equal(t, "T", specs[1].Generics[0].Name)
	assert.Equal(t, "T", inv.Groups[0].Generics[0].Name)

	specs[0].Where.Text = "MUTATED"
	assert.Equal(t, "T: Send", specs[1].Where.Text)
	assert.Equal(t, "T: Send", inv.Groups[0].Where.Text)
}

func TestExpandBodyIsByteIdentical(t *testing.T) {
	body := " fn a() { \"}\" } /* } */ "
	inv := parseOne(t, "impl X, Y {"+body+"}")
	specs := expand.ExpandInvocation(inv)
	require.Len(t, specs, 2)
	for _, spec := range specs {
		assert.Equal(t, body, spec.Body.Text, "body must round-trip byte-for-byte")
	}
}

func TestExpandSingleTargetNoOp(t *testing.T) {
	inv := parseOne(t, "impl Owned { fn v() {} }")
	specs := expand.ExpandInvocation(inv)
	require.Len(t, specs, 1)
	assert.Equal(t, "Owned", specs[0].Target.Type.Text)
}

func TestExpandEmptyBody(t *testing.T) {
	inv := parseOne(t, "impl X, Y, Z {}")
	specs := expand.ExpandInvocation(inv)
	require.Len(t, specs, 3)
	for _, spec := range specs {
		assert.Empty(t, spec.Body.Text)
	}
}

func TestExpandGroupMajorOrder(t *testing.T) {
	inv := parseOne(t, "impl<A2, B2> Complex<A2, B2> impl<T> SimpleA<T>, SimpleB<T> { fn f() {} }")
	specs := expand.ExpandInvocation(inv)
	require.Len(t, specs, 3)

	assert.Equal(t, "Complex<A2, B2>", specs[0].Target.Type.Text)
	assert.Equal(t, "SimpleA<T>", specs[1].Target.Type.Text)
	assert.Equal(t, "SimpleB<T>", specs[2].Target.Type.Text)

	// каждая копия несёт дженерики своей группы
	assert.Len(t, specs[0].Generics, 2)
	assert.Len(t, specs[1].Generics, 1)
	assert.Len(t, specs[2].Generics, 1)
}

func TestExpandTraitRefCloned(t *testing.T) {
	inv := parseOne(t, "impl<T> Debug for A<T>, Debug for B<T> where (T: Debug) { fn fmt() {} }")
	specs := expand.ExpandInvocation(inv)
	require.Len(t, specs, 2)
	for _, spec := range specs {
		require.NotNil(t, spec.Target.Trait)
		assert.Equal(t, "Debug", spec.Target.Trait.Text)
	}
	// trait — независимая копия
	specs[0].Target.Trait.Text = "MUTATED"
	assert.Equal(t, "Debug", specs[1].Target.Trait.Text)
	assert.Equal(t, "Debug", inv.Groups[0].Targets[0].Trait.Text)
}

func TestExpandIsDeterministic(t *testing.T) {
	inv := parseOne(t, "impl<T> A<T>, B<T> { fn get(&self) {} }")
	first := expand.ExpandInvocation(inv)
	second := expand.ExpandInvocation(inv)
	assert.Equal(t, first, second, "identical input must expand identically")
}
