package traverse

import (
	"sync"
	"testing"

	"incstate/internal/engine/api"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func named(names ...string) api.Type {
	var t api.Type = &api.Singleton{Path: api.Path{Components: []api.PathComponent{&api.ID{Name: names[0]}}}}
	for _, n := range names[1:] {
		t = &api.Projection{Prefix: t, ID: n}
	}
	return t
}

func header(name string) api.Header {
	return api.Header{Name: name, Access: &api.Public{}}
}

func classLike(name string, self api.Type, s *api.Structure) *api.ClassLike {
	return api.NewClassLike(header(name), api.ClassDef, api.Strict(self), api.Strict(s))
}

func strictStructure(parents []api.Type, declared, inherited []api.Definition) *api.Structure {
	return api.NewStructure(api.Strict(parents), api.Strict(declared), api.Strict(inherited))
}

type recorder struct {
	Base
	names   []string
	strings []string
	visits  map[*api.Structure]int
	classes int
}

func newRecorder() *recorder {
	return &recorder{visits: make(map[*api.Structure]int)}
}

func (r *recorder) VisitName(name string) { r.names = append(r.names, name) }
func (r *recorder) VisitString(s string)  { r.strings = append(r.strings, s) }

func (r *recorder) VisitStructure(s *api.Structure) {
	r.visits[s]++
	r.Base.VisitStructure(s)
}

func (r *recorder) VisitClass(c *api.ClassLike) {
	r.classes++
	r.Base.VisitClass(c)
}

func TestWalk_NameOrder(t *testing.T) {
	x := &api.Val{Header: header("x"), Type: named("scala", "Int")}
	f := &api.Def{
		Header: header("f"),
		ValueParams: []api.ParameterList{{Params: []api.MethodParameter{
			{Name: "s", Type: named("java", "lang", "String")},
		}}},
		ReturnType: named("scala", "Unit"),
	}
	inherited := &api.Val{Header: header("hashCode"), Type: named("scala", "Int")}
	c := classLike("A", &api.EmptyType{}, strictStructure(nil, []api.Definition{x, f}, []api.Definition{inherited}))

	r := newRecorder()
	Walk(r, c)
	assert.Equal(t, []string{"x", "f", "s", "hashCode"}, r.names)

	declaredOnly := classLike("A", &api.EmptyType{}, strictStructure(nil, []api.Definition{x, f}, nil))
	assert.Equal(t, []string{"x", "f", "s"}, CollectNames(declaredOnly))
}

func TestWalk_StringOrder(t *testing.T) {
	ann := api.Annotation{
		Base: named("scala", "deprecated"),
		Args: []api.AnnotationArgument{{Name: "message", Value: "old"}},
	}
	v := &api.Val{
		Header: api.Header{
			Name:        "x",
			Access:      &api.Private{Qualifier: &api.IDQualifier{Value: "pkg"}},
			Annotations: []api.Annotation{ann},
		},
		Type: &api.Constant{Base: named("scala", "Int"), Value: "1"},
	}

	r := newRecorder()
	WalkDefinition(r, v)
	assert.Equal(t, []string{"x"}, r.names)
	assert.Equal(t, []string{
		"deprecated", "scala", "message", "old",
		"pkg",
		"1", "Int", "scala",
	}, r.strings)
}

func TestWalk_SharedSingletonTerminates(t *testing.T) {
	self := &api.Singleton{Path: api.Path{Components: []api.PathComponent{&api.ID{Name: "A"}}}}
	m := &api.Def{
		Header:     header("m"),
		ReturnType: &api.Projection{Prefix: self, ID: "T"},
	}
	s := strictStructure(nil, []api.Definition{m}, nil)
	c := classLike("A", self, s)

	r := newRecorder()
	Walk(r, c)

	assert.Equal(t, 1, r.visits[s])
	assert.Len(t, r.visits, 1)
	assert.Equal(t, 1, r.classes)
	assert.Equal(t, []string{"m"}, r.names)
}

func TestWalk_StructureCycle(t *testing.T) {
	var s *api.Structure
	m := &api.Val{Header: header("m")}
	s = api.NewStructure(
		api.NewLazy(func() []api.Type { return []api.Type{s, &api.Annotated{Base: s}} }),
		api.NewLazy(func() []api.Definition {
			m.Type = s
			return []api.Definition{m}
		}),
		api.Strict[[]api.Definition](nil),
	)

	c := api.NewClassLike(header("A"), api.Trait,
		api.NewLazy(func() api.Type { return s }),
		api.NewLazy(func() *api.Structure { return s }),
	)

	r := newRecorder()
	Walk(r, c)
	assert.Equal(t, 1, r.visits[s])
	assert.Equal(t, []string{"m"}, r.names)

	// A second walk starts with fresh visited sets.
	Walk(r, c)
	assert.Equal(t, 2, r.visits[s])
	assert.Equal(t, 2, r.classes)
}

func TestWalkAnalyzedClass_SameCompanionOnce(t *testing.T) {
	c := classLike("A", &api.EmptyType{}, strictStructure(nil, nil, nil))
	a := api.NewAnalyzedClass("A", api.Strict(api.Companions{ClassAPI: c, ObjectAPI: c}))

	r := newRecorder()
	WalkAnalyzedClass(r, a)
	assert.Equal(t, 1, r.classes)
}

func TestWalk_DefOrder(t *testing.T) {
	var order []string
	v := &orderVisitor{order: &order}

	d := &api.Def{
		Header: header("f"),
		TypeParams: []api.TypeParameter{{
			ID:         "T",
			LowerBound: &api.ParameterRef{ID: "lo"},
			UpperBound: &api.ParameterRef{ID: "hi"},
		}},
		ValueParams: []api.ParameterList{
			{Params: []api.MethodParameter{{Name: "a", Type: &api.ParameterRef{ID: "A"}}, {Name: "b", Type: &api.ParameterRef{ID: "B"}}}},
			{Params: []api.MethodParameter{{Name: "c", Type: &api.ParameterRef{ID: "C"}}}, Implicit: true},
		},
		ReturnType: &api.ParameterRef{ID: "R"},
	}
	WalkDefinition(v, d)
	require.Equal(t, []string{
		"name:f", "modifiers", "access",
		"ref:lo", "ref:hi",
		"name:a", "ref:A", "name:b", "ref:B",
		"name:c", "ref:C",
		"ref:R",
	}, order)
}

type orderVisitor struct {
	Base
	order *[]string
}

func (o *orderVisitor) VisitName(name string) {
	*o.order = append(*o.order, "name:"+name)
}

func (o *orderVisitor) VisitModifiers(api.Modifiers) {
	*o.order = append(*o.order, "modifiers")
}

func (o *orderVisitor) VisitAccess(api.Access) {
	*o.order = append(*o.order, "access")
}

func (o *orderVisitor) VisitParameterRef(t *api.ParameterRef) {
	*o.order = append(*o.order, "ref:"+t.ID)
}

func TestWalk_ConcurrentVisitorsShareGraph(t *testing.T) {
	var s *api.Structure
	m := &api.Val{Header: header("m")}
	f := &api.Def{
		Header:      header("f"),
		ValueParams: []api.ParameterList{{Params: []api.MethodParameter{{Name: "x", Type: named("scala", "Int")}}}},
		ReturnType:  named("scala", "Unit"),
	}
	s = api.NewStructure(
		api.NewLazy(func() []api.Type { return []api.Type{s} }),
		api.NewLazy(func() []api.Definition {
			m.Type = s
			return []api.Definition{m, f}
		}),
		api.Strict[[]api.Definition](nil),
	)
	c := api.NewClassLike(header("A"), api.ClassDef,
		api.NewLazy(func() api.Type { return s }),
		api.NewLazy(func() *api.Structure { return s }),
	)
	// The lazy cells are first evaluated by whichever walker gets there
	// first.
	const walkers = 8
	results := make([][]string, walkers)
	var wg sync.WaitGroup
	for i := 0; i < walkers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			r := newRecorder()
			for j := 0; j < 50; j++ {
				Walk(r, c)
			}
			assert.Equal(t, 50, r.visits[s])
			results[i] = CollectNames(c)
		}(i)
	}
	wg.Wait()

	for _, names := range results {
		assert.Equal(t, []string{"m", "f", "x"}, names)
	}
}
