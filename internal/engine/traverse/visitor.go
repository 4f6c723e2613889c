// Package traverse walks an API graph in a fixed order, calling one hook per
// node kind. Graphs may share Structure and ClassLike nodes or contain
// cycles through them; each of those is visited at most once per walk.
//
// A visitor embeds Base and overrides the hooks it cares about. Every hook
// on Base recurses into the node's children, dispatching through the
// outer visitor, so an override that wants the children visited calls the
// Base method itself:
//
//	type counter struct {
//		traverse.Base
//		defs int
//	}
//
//	func (c *counter) VisitDef(d *api.Def) {
//		c.defs++
//		c.Base.VisitDef(d)
//	}
package traverse

import (
	"fmt"

	"incstate/internal/engine/api"
)

func unknown(family string, v any) {
	panic(fmt.Sprintf("traverse: unknown %s variant %T", family, v))
}

// Visitor is implemented by embedding Base.
type Visitor interface {
	VisitClass(c *api.ClassLike)
	VisitStructure(s *api.Structure)

	VisitDefinition(d api.Definition)
	VisitClassLikeDef(d *api.ClassLikeDef)
	VisitDef(d *api.Def)
	VisitVal(d *api.Val)
	VisitVar(d *api.Var)
	VisitTypeAlias(d *api.TypeAlias)
	VisitTypeDeclaration(d *api.TypeDeclaration)

	VisitName(name string)
	VisitString(s string)
	VisitAnnotation(a api.Annotation)
	VisitModifiers(m api.Modifiers)
	VisitAccess(a api.Access)
	VisitQualifier(q api.Qualifier)

	VisitTypeParameter(p api.TypeParameter)
	VisitParameterList(l api.ParameterList)
	VisitMethodParameter(p api.MethodParameter)

	VisitType(t api.Type)
	VisitParameterRef(t *api.ParameterRef)
	VisitParameterized(t *api.Parameterized)
	VisitPolymorphic(t *api.Polymorphic)
	VisitConstant(t *api.Constant)
	VisitExistential(t *api.Existential)
	VisitSingleton(t *api.Singleton)
	VisitProjection(t *api.Projection)
	VisitAnnotated(t *api.Annotated)
	VisitEmptyType(t *api.EmptyType)

	VisitPath(p api.Path)
	VisitPathComponent(c api.PathComponent)

	base() *Base
}

// Base holds the visited sets of the current walk and implements every
// hook with the default recursion.
type Base struct {
	self       Visitor
	structures map[*api.Structure]struct{}
	classes    map[*api.ClassLike]struct{}
}

func (b *Base) base() *Base { return b }

func bind(v Visitor) *Base {
	b := v.base()
	b.self = v
	b.structures = make(map[*api.Structure]struct{})
	b.classes = make(map[*api.ClassLike]struct{})
	return b
}

// Walk visits c and everything reachable from it.
func Walk(v Visitor, c *api.ClassLike) {
	bind(v).class(c)
}

// WalkAnalyzedClass visits the class and then the object API of a.
func WalkAnalyzedClass(v Visitor, a *api.AnalyzedClass) {
	b := bind(v)
	companions := a.API()
	b.class(companions.ClassAPI)
	b.class(companions.ObjectAPI)
}

func WalkType(v Visitor, t api.Type) {
	bind(v).self.VisitType(t)
}

func WalkDefinition(v Visitor, d api.Definition) {
	bind(v).self.VisitDefinition(d)
}

func (b *Base) class(c *api.ClassLike) {
	if c == nil {
		return
	}
	if _, seen := b.classes[c]; seen {
		return
	}
	b.classes[c] = struct{}{}
	b.self.VisitClass(c)
}

func (b *Base) structure(s *api.Structure) {
	if _, seen := b.structures[s]; seen {
		return
	}
	b.structures[s] = struct{}{}
	b.self.VisitStructure(s)
}

// VisitClass is called once per ClassLike per walk.
func (b *Base) VisitClass(c *api.ClassLike) {
	b.self.VisitString(c.Name)
	b.header(&c.Header)
	for _, p := range c.TypeParams {
		b.self.VisitTypeParameter(p)
	}
	b.self.VisitType(c.SelfType())
	b.structure(c.Structure())
}

// VisitStructure is called once per Structure per walk.
func (b *Base) VisitStructure(s *api.Structure) {
	for _, t := range s.Parents() {
		b.self.VisitType(t)
	}
	for _, d := range s.Declared() {
		b.self.VisitDefinition(d)
	}
	for _, d := range s.Inherited() {
		b.self.VisitDefinition(d)
	}
}

func (b *Base) header(h *api.Header) {
	for _, a := range h.Annotations {
		b.self.VisitAnnotation(a)
	}
	b.self.VisitModifiers(h.Modifiers)
	b.self.VisitAccess(h.Access)
}

func (b *Base) VisitDefinition(d api.Definition) {
	h := d.Head()
	b.self.VisitName(h.Name)
	b.header(h)

	switch d := d.(type) {
	case *api.ClassLikeDef:
		b.self.VisitClassLikeDef(d)
	case *api.Def:
		b.self.VisitDef(d)
	case *api.Val:
		b.self.VisitVal(d)
	case *api.Var:
		b.self.VisitVar(d)
	case *api.TypeAlias:
		b.self.VisitTypeAlias(d)
	case *api.TypeDeclaration:
		b.self.VisitTypeDeclaration(d)
	default:
		unknown("definition", d)
	}
}

func (b *Base) VisitClassLikeDef(d *api.ClassLikeDef) {
	b.typeParams(d.TypeParams)
}

func (b *Base) VisitDef(d *api.Def) {
	b.typeParams(d.TypeParams)
	for _, l := range d.ValueParams {
		b.self.VisitParameterList(l)
	}
	b.self.VisitType(d.ReturnType)
}

func (b *Base) VisitVal(d *api.Val) { b.self.VisitType(d.Type) }
func (b *Base) VisitVar(d *api.Var) { b.self.VisitType(d.Type) }

func (b *Base) VisitTypeAlias(d *api.TypeAlias) {
	b.typeParams(d.TypeParams)
	b.self.VisitType(d.Type)
}

func (b *Base) VisitTypeDeclaration(d *api.TypeDeclaration) {
	b.typeParams(d.TypeParams)
	b.self.VisitType(d.LowerBound)
	b.self.VisitType(d.UpperBound)
}

func (b *Base) typeParams(ps []api.TypeParameter) {
	for _, p := range ps {
		b.self.VisitTypeParameter(p)
	}
}

// VisitName receives definition and method parameter names.
func (b *Base) VisitName(string) {}

// VisitString receives every other string leaf.
func (b *Base) VisitString(string) {}

func (b *Base) VisitModifiers(api.Modifiers) {}

func (b *Base) VisitAnnotation(a api.Annotation) {
	b.self.VisitType(a.Base)
	for _, arg := range a.Args {
		b.self.VisitString(arg.Name)
		b.self.VisitString(arg.Value)
	}
}

func (b *Base) VisitAccess(a api.Access) {
	switch a := a.(type) {
	case nil, *api.Public:
	case *api.Protected:
		b.self.VisitQualifier(a.Qualifier)
	case *api.Private:
		b.self.VisitQualifier(a.Qualifier)
	default:
		unknown("access", a)
	}
}

func (b *Base) VisitQualifier(q api.Qualifier) {
	switch q := q.(type) {
	case nil, *api.Unqualified, *api.ThisQualifier:
	case *api.IDQualifier:
		b.self.VisitString(q.Value)
	default:
		unknown("qualifier", q)
	}
}

func (b *Base) VisitTypeParameter(p api.TypeParameter) {
	b.typeParams(p.TypeParams)
	b.self.VisitType(p.LowerBound)
	b.self.VisitType(p.UpperBound)
	for _, a := range p.Annotations {
		b.self.VisitAnnotation(a)
	}
}

func (b *Base) VisitParameterList(l api.ParameterList) {
	for _, p := range l.Params {
		b.self.VisitMethodParameter(p)
	}
}

func (b *Base) VisitMethodParameter(p api.MethodParameter) {
	b.self.VisitName(p.Name)
	b.self.VisitType(p.Type)
}

// VisitType dispatches on the kind of t. Structures are guarded by the
// visited set before VisitStructure is called.
func (b *Base) VisitType(t api.Type) {
	switch t := t.(type) {
	case *api.ParameterRef:
		b.self.VisitParameterRef(t)
	case *api.Parameterized:
		b.self.VisitParameterized(t)
	case *api.Structure:
		b.structure(t)
	case *api.Polymorphic:
		b.self.VisitPolymorphic(t)
	case *api.Constant:
		b.self.VisitConstant(t)
	case *api.Existential:
		b.self.VisitExistential(t)
	case *api.Singleton:
		b.self.VisitSingleton(t)
	case *api.Projection:
		b.self.VisitProjection(t)
	case *api.Annotated:
		b.self.VisitAnnotated(t)
	case *api.EmptyType:
		b.self.VisitEmptyType(t)
	case nil:
	default:
		unknown("type", t)
	}
}

func (b *Base) VisitParameterRef(*api.ParameterRef) {}
func (b *Base) VisitEmptyType(*api.EmptyType)       {}

func (b *Base) VisitParameterized(t *api.Parameterized) {
	b.self.VisitType(t.Base)
	for _, arg := range t.Args {
		b.self.VisitType(arg)
	}
}

func (b *Base) VisitPolymorphic(t *api.Polymorphic) {
	b.typeParams(t.Params)
	b.self.VisitType(t.Base)
}

func (b *Base) VisitConstant(t *api.Constant) {
	b.self.VisitString(t.Value)
	b.self.VisitType(t.Base)
}

func (b *Base) VisitExistential(t *api.Existential) {
	b.typeParams(t.Clause)
	b.self.VisitType(t.Base)
}

func (b *Base) VisitSingleton(t *api.Singleton) {
	b.self.VisitPath(t.Path)
}

func (b *Base) VisitProjection(t *api.Projection) {
	b.self.VisitString(t.ID)
	b.self.VisitType(t.Prefix)
}

func (b *Base) VisitAnnotated(t *api.Annotated) {
	b.self.VisitType(t.Base)
	for _, a := range t.Annotations {
		b.self.VisitAnnotation(a)
	}
}

func (b *Base) VisitPath(p api.Path) {
	for _, c := range p.Components {
		b.self.VisitPathComponent(c)
	}
}

func (b *Base) VisitPathComponent(c api.PathComponent) {
	switch c := c.(type) {
	case *api.Super:
		b.self.VisitPath(c.Qualifier)
	case *api.ID:
		b.self.VisitString(c.Name)
	case *api.This:
	default:
		unknown("path component", c)
	}
}
