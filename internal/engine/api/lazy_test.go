package api

import (
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLazy_EvaluatesOnce(t *testing.T) {
	var calls atomic.Int32
	l := NewLazy(func() []Type {
		calls.Add(1)
		return []Type{&EmptyType{}}
	})

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.Len(t, l.Get(), 1)
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), calls.Load())
	assert.Same(t, l.Get()[0], l.Get()[0])
}

func TestLazy_StrictEqualsEvaluated(t *testing.T) {
	evaluated := NewLazy(func() string { return "A" })
	require.Equal(t, "A", evaluated.Get())
	assert.Equal(t, Strict("A"), evaluated)
}

func TestClassLike_SelfReference(t *testing.T) {
	var class *ClassLike
	structure := NewStructure(
		Strict[[]Type](nil),
		NewLazy(func() []Definition {
			return []Definition{&Val{Header: Header{Name: "self"}, Type: class.SelfType()}}
		}),
		Strict[[]Definition](nil),
	)
	self := &Singleton{Path: Path{Components: []PathComponent{&ID{Name: "A"}, &This{}}}}
	class = NewClassLike(Header{Name: "A", Access: &Public{}}, ClassDef, Strict[Type](self), Strict(structure))

	decl := class.Structure().Declared()
	require.Len(t, decl, 1)
	val, ok := decl[0].(*Val)
	require.True(t, ok)
	assert.Same(t, self, val.Type)
	assert.Equal(t, "self", val.Head().Name)
}

func TestUseScopes(t *testing.T) {
	s := ScopesOf(PatMatTargetScope, DefaultScope)
	assert.True(t, s.Has(DefaultScope))
	assert.False(t, s.Has(ImplicitScope))
	assert.Equal(t, []UseScope{DefaultScope, PatMatTargetScope}, s.List())
	assert.Equal(t, s, s.With(DefaultScope))
}

func TestModifiers(t *testing.T) {
	m := ModFinal | ModImplicit
	assert.True(t, m.IsFinal())
	assert.True(t, m.IsImplicit())
	assert.False(t, m.IsAbstract())
	assert.False(t, m.IsMacro())
}
