// Package api models the externally visible shape of compiled classes:
// paths, types, definitions, access and the class-like roots that tie them
// together. Values are immutable once built. Structure and ClassLike hold
// their recursive parts in Lazy cells so a class may refer to itself.
package api

// Path is an ordered sequence of components, e.g. this.outer.Inner.
type Path struct {
	Components []PathComponent
}

type PathComponent interface {
	isPathComponent()
}

type This struct{}

type Super struct {
	Qualifier Path
}

type ID struct {
	Name string
}

func (*This) isPathComponent()  {}
func (*Super) isPathComponent() {}
func (*ID) isPathComponent()    {}

// Type is the closed family of type shapes.
type Type interface {
	isType()
}

type ParameterRef struct {
	ID string
}

type Parameterized struct {
	Base Type
	Args []Type
}

// Structure is a refinement or class body. Its members are computed on
// first access.
type Structure struct {
	parents   *Lazy[[]Type]
	declared  *Lazy[[]Definition]
	inherited *Lazy[[]Definition]
}

func NewStructure(parents *Lazy[[]Type], declared, inherited *Lazy[[]Definition]) *Structure {
	return &Structure{parents: parents, declared: declared, inherited: inherited}
}

func (s *Structure) Parents() []Type         { return s.parents.Get() }
func (s *Structure) Declared() []Definition  { return s.declared.Get() }
func (s *Structure) Inherited() []Definition { return s.inherited.Get() }

type Polymorphic struct {
	Base   Type
	Params []TypeParameter
}

type Constant struct {
	Base  Type
	Value string
}

type Existential struct {
	Base   Type
	Clause []TypeParameter
}

type Singleton struct {
	Path Path
}

type Projection struct {
	Prefix Type
	ID     string
}

type Annotated struct {
	Base        Type
	Annotations []Annotation
}

// EmptyType marks an explicitly absent type, e.g. a missing self type.
type EmptyType struct{}

func (*ParameterRef) isType()  {}
func (*Parameterized) isType() {}
func (*Structure) isType()     {}
func (*Polymorphic) isType()   {}
func (*Constant) isType()      {}
func (*Existential) isType()   {}
func (*Singleton) isType()     {}
func (*Projection) isType()    {}
func (*Annotated) isType()     {}
func (*EmptyType) isType()     {}

type Annotation struct {
	Base Type
	Args []AnnotationArgument
}

type AnnotationArgument struct {
	Name  string
	Value string
}

type TypeParameter struct {
	ID          string
	Annotations []Annotation
	TypeParams  []TypeParameter
	Variance    Variance
	LowerBound  Type
	UpperBound  Type
}
