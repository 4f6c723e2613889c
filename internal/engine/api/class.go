package api

// ClassLike is the API of one class, trait or object. Its self type and
// structure may transitively reference the class itself, so both are
// held lazily.
type ClassLike struct {
	Header
	Kind             DefinitionType
	selfType         *Lazy[Type]
	structure        *Lazy[*Structure]
	SavedAnnotations []string
	SealedChildren   []Type
	TopLevel         bool
	TypeParams       []TypeParameter
}

// NewClassLike builds a ClassLike around the given lazy cells. Callers fill
// the exported fields on the returned value.
func NewClassLike(h Header, kind DefinitionType, selfType *Lazy[Type], structure *Lazy[*Structure]) *ClassLike {
	return &ClassLike{
		Header:    h,
		Kind:      kind,
		selfType:  selfType,
		structure: structure,
	}
}

func (c *ClassLike) SelfType() Type {
	return c.selfType.Get()
}

func (c *ClassLike) Structure() *Structure {
	return c.structure.Get()
}

// Companions pairs the class and the object API of the same name.
type Companions struct {
	ClassAPI  *ClassLike
	ObjectAPI *ClassLike
}

type NameHash struct {
	Name  string
	Scope UseScope
	Hash  int32
}

// AnalyzedClass is the per-class record kept in the APIs section.
type AnalyzedClass struct {
	CompilationTimestamp int64
	Name                 string
	api                  *Lazy[Companions]
	APIHash              int32
	NameHashes           []NameHash
	HasMacro             bool
	ExtraHash            int32
	Provenance           string
}

func NewAnalyzedClass(name string, companions *Lazy[Companions]) *AnalyzedClass {
	return &AnalyzedClass{Name: name, api: companions}
}

func (a *AnalyzedClass) API() Companions {
	return a.api.Get()
}
