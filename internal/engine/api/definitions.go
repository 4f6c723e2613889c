package api

// Header holds the parts every definition shares.
type Header struct {
	Name        string
	Access      Access
	Modifiers   Modifiers
	Annotations []Annotation
}

func (h *Header) Head() *Header { return h }

// Definition is the closed family of member definitions found in a
// Structure.
type Definition interface {
	Head() *Header
	isDefinition()
}

// ClassLikeDef is a nested class, trait or object seen as a member. The
// full ClassLike is recorded separately.
type ClassLikeDef struct {
	Header
	TypeParams []TypeParameter
	Kind       DefinitionType
}

type Def struct {
	Header
	TypeParams  []TypeParameter
	ValueParams []ParameterList
	ReturnType  Type
}

type Val struct {
	Header
	Type Type
}

type Var struct {
	Header
	Type Type
}

type TypeAlias struct {
	Header
	TypeParams []TypeParameter
	Type       Type
}

type TypeDeclaration struct {
	Header
	TypeParams []TypeParameter
	LowerBound Type
	UpperBound Type
}

func (*ClassLikeDef) isDefinition()    {}
func (*Def) isDefinition()             {}
func (*Val) isDefinition()             {}
func (*Var) isDefinition()             {}
func (*TypeAlias) isDefinition()       {}
func (*TypeDeclaration) isDefinition() {}

type ParameterList struct {
	Params   []MethodParameter
	Implicit bool
}

type MethodParameter struct {
	Name       string
	Type       Type
	HasDefault bool
	Modifier   ParameterModifier
}
