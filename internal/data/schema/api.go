package schema

// ID: 1 id.
type ID struct {
	ID string
}

// Super: 1 qualifier.
type Super struct {
	Qualifier *Path
}

type This struct{}

// ComponentValue is the PathComponent union: ID (1), Super (2), This (3).
type ComponentValue interface {
	Message
	isComponentValue()
}

func (*ID) isComponentValue()    {}
func (*Super) isComponentValue() {}
func (*This) isComponentValue()  {}

type PathComponent struct {
	Value ComponentValue
}

// Path: 1 components.
type Path struct {
	Components []*PathComponent
}

// AnnotationArgument: 1 name, 2 value.
type AnnotationArgument struct {
	Name  string
	Value string
}

// Annotation: 1 base, 2 arguments.
type Annotation struct {
	Base      *Type
	Arguments []*AnnotationArgument
}

// TypeValue is the Type union: parameterRef (1), parameterized (2),
// structure (3), polymorphic (4), constant (5), existential (6),
// singleton (7), projection (8), annotated (9), emptyType (10).
type TypeValue interface {
	Message
	isTypeValue()
}

type Type struct {
	Value TypeValue
}

// ParameterRef: 1 id.
type ParameterRef struct {
	ID string
}

// Parameterized: 1 baseType, 2 typeArguments.
type Parameterized struct {
	BaseType      *Type
	TypeArguments []*Type
}

// Structure: 1 parents, 2 declared, 3 inherited.
type Structure struct {
	Parents   []*Type
	Declared  []*ClassDefinition
	Inherited []*ClassDefinition
}

// Polymorphic: 1 baseType, 2 typeParameters.
type Polymorphic struct {
	BaseType       *Type
	TypeParameters []*TypeParameter
}

// Constant: 1 baseType, 2 value.
type Constant struct {
	BaseType *Type
	Value    string
}

// Existential: 1 baseType, 2 clause.
type Existential struct {
	BaseType *Type
	Clause   []*TypeParameter
}

// Singleton: 1 path.
type Singleton struct {
	Path *Path
}

// Projection: 1 prefix, 2 id.
type Projection struct {
	Prefix *Type
	ID     string
}

// Annotated: 1 baseType, 2 annotations.
type Annotated struct {
	BaseType    *Type
	Annotations []*Annotation
}

type EmptyType struct{}

func (*ParameterRef) isTypeValue()  {}
func (*Parameterized) isTypeValue() {}
func (*Structure) isTypeValue()     {}
func (*Polymorphic) isTypeValue()   {}
func (*Constant) isTypeValue()      {}
func (*Existential) isTypeValue()   {}
func (*Singleton) isTypeValue()     {}
func (*Projection) isTypeValue()    {}
func (*Annotated) isTypeValue()     {}
func (*EmptyType) isTypeValue()     {}

// Modifiers: 1 flags.
type Modifiers struct {
	Flags int32
}

// AccessValue is the Access union: public (1), protected (2), private (3).
type AccessValue interface {
	Message
	isAccessValue()
}

type Access struct {
	Value AccessValue
}

type Public struct{}

// Protected: 1 qualifier.
type Protected struct {
	Qualifier *Qualifier
}

// Private: 1 qualifier.
type Private struct {
	Qualifier *Qualifier
}

func (*Public) isAccessValue()    {}
func (*Protected) isAccessValue() {}
func (*Private) isAccessValue()   {}

// QualifierValue is the Qualifier union: thisQualifier (1),
// idQualifier (2), unqualified (3).
type QualifierValue interface {
	Message
	isQualifierValue()
}

type Qualifier struct {
	Value QualifierValue
}

type ThisQualifier struct{}

// IDQualifier: 1 value.
type IDQualifier struct {
	Value string
}

type Unqualified struct{}

func (*ThisQualifier) isQualifierValue() {}
func (*IDQualifier) isQualifierValue()   {}
func (*Unqualified) isQualifierValue()   {}

// TypeParameter: 1 id, 2 annotations, 3 typeParameters, 4 variance,
// 5 lowerBound, 6 upperBound.
type TypeParameter struct {
	ID             string
	Annotations    []*Annotation
	TypeParameters []*TypeParameter
	Variance       Variance
	LowerBound     *Type
	UpperBound     *Type
}

// MethodParameter: 1 name, 2 type, 3 hasDefault, 4 modifier.
type MethodParameter struct {
	Name       string
	Type       *Type
	HasDefault bool
	Modifier   ParameterModifier
}

// ParameterList: 1 parameters, 2 isImplicit.
type ParameterList struct {
	Parameters []*MethodParameter
	IsImplicit bool
}

// DefinitionExtra is the ClassDefinition union: classLikeDef (5),
// defDef (6), valDef (7), varDef (8), typeAlias (9), typeDeclaration (10).
type DefinitionExtra interface {
	Message
	isDefinitionExtra()
}

// ClassDefinition: 1 name, 2 access, 3 modifiers, 4 annotations, 5-10 extra.
type ClassDefinition struct {
	Name        string
	Access      *Access
	Modifiers   *Modifiers
	Annotations []*Annotation
	Extra       DefinitionExtra
}

// ClassLikeDef: 1 typeParameters, 2 definitionType.
type ClassLikeDef struct {
	TypeParameters []*TypeParameter
	DefinitionType DefinitionType
}

// Def: 1 typeParameters, 2 valueParameters, 3 returnType.
type Def struct {
	TypeParameters  []*TypeParameter
	ValueParameters []*ParameterList
	ReturnType      *Type
}

// Val: 1 type.
type Val struct {
	Type *Type
}

// Var: 1 type.
type Var struct {
	Type *Type
}

// TypeAlias: 1 typeParameters, 2 type.
type TypeAlias struct {
	TypeParameters []*TypeParameter
	Type           *Type
}

// TypeDeclaration: 1 typeParameters, 2 lowerBound, 3 upperBound.
type TypeDeclaration struct {
	TypeParameters []*TypeParameter
	LowerBound     *Type
	UpperBound     *Type
}

func (*ClassLikeDef) isDefinitionExtra()    {}
func (*Def) isDefinitionExtra()             {}
func (*Val) isDefinitionExtra()             {}
func (*Var) isDefinitionExtra()             {}
func (*TypeAlias) isDefinitionExtra()       {}
func (*TypeDeclaration) isDefinitionExtra() {}

// ClassLike: 1 name, 2 access, 3 modifiers, 4 annotations,
// 5 definitionType, 6 selfType, 7 structure, 8 savedAnnotations,
// 9 childrenOfSealedClass, 10 topLevel, 11 typeParameters.
type ClassLike struct {
	Name                  string
	Access                *Access
	Modifiers             *Modifiers
	Annotations           []*Annotation
	DefinitionType        DefinitionType
	SelfType              *Type
	Structure             *Structure
	SavedAnnotations      []string
	ChildrenOfSealedClass []*Type
	TopLevel              bool
	TypeParameters        []*TypeParameter
}

// Companions: 1 classApi, 2 objectApi.
type Companions struct {
	ClassApi  *ClassLike
	ObjectApi *ClassLike
}

// NameHash: 1 name, 2 scope, 3 hash.
type NameHash struct {
	Name  string
	Scope UseScope
	Hash  int32
}

// AnalyzedClass: 1 compilationTimestamp, 2 name, 3 api, 4 apiHash,
// 5 nameHashes, 6 hasMacro, 7 extraHash, 8 provenance.
type AnalyzedClass struct {
	CompilationTimestamp int64
	Name                 string
	Api                  *Companions
	ApiHash              int32
	NameHashes           []*NameHash
	HasMacro             bool
	ExtraHash            int32
	Provenance           string
}

// APIs: 1 internal, 2 external.
type APIs struct {
	Internal map[string]*AnalyzedClass
	External map[string]*AnalyzedClass
}

// APIsFile: 1 version, 2 apis.
type APIsFile struct {
	Version Version
	Apis    *APIs
}

func (m *ID) marshal(b []byte) []byte {
	return appendString(b, 1, m.ID)
}

func (m *ID) unmarshal(b []byte) error {
	d := newDecoder(b)
	for d.next() {
		switch d.num {
		case 1:
			m.ID = d.string()
		default:
			d.skip()
		}
	}
	return d.err
}

func (m *Super) marshal(b []byte) []byte {
	return appendMessage(b, 1, m.Qualifier)
}

func (m *Super) unmarshal(b []byte) error {
	d := newDecoder(b)
	for d.next() {
		switch d.num {
		case 1:
			m.Qualifier = readMessage[Path](d)
		default:
			d.skip()
		}
	}
	return d.err
}

// Field-less messages still have to skip whatever a newer producer wrote.
func skipAll(b []byte) error {
	d := newDecoder(b)
	for d.next() {
		d.skip()
	}
	return d.err
}

func (*This) marshal(b []byte) []byte           { return b }
func (*This) unmarshal(b []byte) error          { return skipAll(b) }
func (*EmptyType) marshal(b []byte) []byte      { return b }
func (*EmptyType) unmarshal(b []byte) error     { return skipAll(b) }
func (*Public) marshal(b []byte) []byte         { return b }
func (*Public) unmarshal(b []byte) error        { return skipAll(b) }
func (*ThisQualifier) marshal(b []byte) []byte  { return b }
func (*ThisQualifier) unmarshal(b []byte) error { return skipAll(b) }
func (*Unqualified) marshal(b []byte) []byte    { return b }
func (*Unqualified) unmarshal(b []byte) error   { return skipAll(b) }

func (m *PathComponent) marshal(b []byte) []byte {
	switch v := m.Value.(type) {
	case *ID:
		b = appendMessage(b, 1, v)
	case *Super:
		b = appendMessage(b, 2, v)
	case *This:
		b = appendMessage(b, 3, v)
	}
	return b
}

func (m *PathComponent) unmarshal(b []byte) error {
	d := newDecoder(b)
	for d.next() {
		switch d.num {
		case 1:
			m.Value = readMessage[ID](d)
		case 2:
			m.Value = readMessage[Super](d)
		case 3:
			m.Value = readMessage[This](d)
		default:
			d.skip()
		}
	}
	return d.err
}

func (m *Path) marshal(b []byte) []byte {
	return appendRepeated(b, 1, m.Components)
}

func (m *Path) unmarshal(b []byte) error {
	d := newDecoder(b)
	for d.next() {
		switch d.num {
		case 1:
			readRepeated(d, &m.Components)
		default:
			d.skip()
		}
	}
	return d.err
}

func (m *AnnotationArgument) marshal(b []byte) []byte {
	b = appendString(b, 1, m.Name)
	return appendString(b, 2, m.Value)
}

func (m *AnnotationArgument) unmarshal(b []byte) error {
	d := newDecoder(b)
	for d.next() {
		switch d.num {
		case 1:
			m.Name = d.string()
		case 2:
			m.Value = d.string()
		default:
			d.skip()
		}
	}
	return d.err
}

func (m *Annotation) marshal(b []byte) []byte {
	b = appendMessage(b, 1, m.Base)
	return appendRepeated(b, 2, m.Arguments)
}

func (m *Annotation) unmarshal(b []byte) error {
	d := newDecoder(b)
	for d.next() {
		switch d.num {
		case 1:
			m.Base = readMessage[Type](d)
		case 2:
			readRepeated(d, &m.Arguments)
		default:
			d.skip()
		}
	}
	return d.err
}

func (m *Type) marshal(b []byte) []byte {
	switch v := m.Value.(type) {
	case *ParameterRef:
		b = appendMessage(b, 1, v)
	case *Parameterized:
		b = appendMessage(b, 2, v)
	case *Structure:
		b = appendMessage(b, 3, v)
	case *Polymorphic:
		b = appendMessage(b, 4, v)
	case *Constant:
		b = appendMessage(b, 5, v)
	case *Existential:
		b = appendMessage(b, 6, v)
	case *Singleton:
		b = appendMessage(b, 7, v)
	case *Projection:
		b = appendMessage(b, 8, v)
	case *Annotated:
		b = appendMessage(b, 9, v)
	case *EmptyType:
		b = appendMessage(b, 10, v)
	}
	return b
}

func (m *Type) unmarshal(b []byte) error {
	d := newDecoder(b)
	for d.next() {
		switch d.num {
		case 1:
			m.Value = readMessage[ParameterRef](d)
		case 2:
			m.Value = readMessage[Parameterized](d)
		case 3:
			m.Value = readMessage[Structure](d)
		case 4:
			m.Value = readMessage[Polymorphic](d)
		case 5:
			m.Value = readMessage[Constant](d)
		case 6:
			m.Value = readMessage[Existential](d)
		case 7:
			m.Value = readMessage[Singleton](d)
		case 8:
			m.Value = readMessage[Projection](d)
		case 9:
			m.Value = readMessage[Annotated](d)
		case 10:
			m.Value = readMessage[EmptyType](d)
		default:
			d.skip()
		}
	}
	return d.err
}

func (m *ParameterRef) marshal(b []byte) []byte {
	return appendString(b, 1, m.ID)
}

func (m *ParameterRef) unmarshal(b []byte) error {
	d := newDecoder(b)
	for d.next() {
		switch d.num {
		case 1:
			m.ID = d.string()
		default:
			d.skip()
		}
	}
	return d.err
}

func (m *Parameterized) marshal(b []byte) []byte {
	b = appendMessage(b, 1, m.BaseType)
	return appendRepeated(b, 2, m.TypeArguments)
}

func (m *Parameterized) unmarshal(b []byte) error {
	d := newDecoder(b)
	for d.next() {
		switch d.num {
		case 1:
			m.BaseType = readMessage[Type](d)
		case 2:
			readRepeated(d, &m.TypeArguments)
		default:
			d.skip()
		}
	}
	return d.err
}

func (m *Structure) marshal(b []byte) []byte {
	b = appendRepeated(b, 1, m.Parents)
	b = appendRepeated(b, 2, m.Declared)
	return appendRepeated(b, 3, m.Inherited)
}

func (m *Structure) unmarshal(b []byte) error {
	d := newDecoder(b)
	for d.next() {
		switch d.num {
		case 1:
			readRepeated(d, &m.Parents)
		case 2:
			readRepeated(d, &m.Declared)
		case 3:
			readRepeated(d, &m.Inherited)
		default:
			d.skip()
		}
	}
	return d.err
}

func (m *Polymorphic) marshal(b []byte) []byte {
	b = appendMessage(b, 1, m.BaseType)
	return appendRepeated(b, 2, m.TypeParameters)
}

func (m *Polymorphic) unmarshal(b []byte) error {
	d := newDecoder(b)
	for d.next() {
		switch d.num {
		case 1:
			m.BaseType = readMessage[Type](d)
		case 2:
			readRepeated(d, &m.TypeParameters)
		default:
			d.skip()
		}
	}
	return d.err
}

func (m *Constant) marshal(b []byte) []byte {
	b = appendMessage(b, 1, m.BaseType)
	return appendString(b, 2, m.Value)
}

func (m *Constant) unmarshal(b []byte) error {
	d := newDecoder(b)
	for d.next() {
		switch d.num {
		case 1:
			m.BaseType = readMessage[Type](d)
		case 2:
			m.Value = d.string()
		default:
			d.skip()
		}
	}
	return d.err
}

func (m *Existential) marshal(b []byte) []byte {
	b = appendMessage(b, 1, m.BaseType)
	return appendRepeated(b, 2, m.Clause)
}

func (m *Existential) unmarshal(b []byte) error {
	d := newDecoder(b)
	for d.next() {
		switch d.num {
		case 1:
			m.BaseType = readMessage[Type](d)
		case 2:
			readRepeated(d, &m.Clause)
		default:
			d.skip()
		}
	}
	return d.err
}

func (m *Singleton) marshal(b []byte) []byte {
	return appendMessage(b, 1, m.Path)
}

func (m *Singleton) unmarshal(b []byte) error {
	d := newDecoder(b)
	for d.next() {
		switch d.num {
		case 1:
			m.Path = readMessage[Path](d)
		default:
			d.skip()
		}
	}
	return d.err
}

func (m *Projection) marshal(b []byte) []byte {
	b = appendMessage(b, 1, m.Prefix)
	return appendString(b, 2, m.ID)
}

func (m *Projection) unmarshal(b []byte) error {
	d := newDecoder(b)
	for d.next() {
		switch d.num {
		case 1:
			m.Prefix = readMessage[Type](d)
		case 2:
			m.ID = d.string()
		default:
			d.skip()
		}
	}
	return d.err
}

func (m *Annotated) marshal(b []byte) []byte {
	b = appendMessage(b, 1, m.BaseType)
	return appendRepeated(b, 2, m.Annotations)
}

func (m *Annotated) unmarshal(b []byte) error {
	d := newDecoder(b)
	for d.next() {
		switch d.num {
		case 1:
			m.BaseType = readMessage[Type](d)
		case 2:
			readRepeated(d, &m.Annotations)
		default:
			d.skip()
		}
	}
	return d.err
}

func (m *Modifiers) marshal(b []byte) []byte {
	return appendInt32(b, 1, m.Flags)
}

func (m *Modifiers) unmarshal(b []byte) error {
	d := newDecoder(b)
	for d.next() {
		switch d.num {
		case 1:
			m.Flags = d.int32()
		default:
			d.skip()
		}
	}
	return d.err
}

func (m *Access) marshal(b []byte) []byte {
	switch v := m.Value.(type) {
	case *Public:
		b = appendMessage(b, 1, v)
	case *Protected:
		b = appendMessage(b, 2, v)
	case *Private:
		b = appendMessage(b, 3, v)
	}
	return b
}

func (m *Access) unmarshal(b []byte) error {
	d := newDecoder(b)
	for d.next() {
		switch d.num {
		case 1:
			m.Value = readMessage[Public](d)
		case 2:
			m.Value = readMessage[Protected](d)
		case 3:
			m.Value = readMessage[Private](d)
		default:
			d.skip()
		}
	}
	return d.err
}

func (m *Protected) marshal(b []byte) []byte {
	return appendMessage(b, 1, m.Qualifier)
}

func (m *Protected) unmarshal(b []byte) error {
	d := newDecoder(b)
	for d.next() {
		switch d.num {
		case 1:
			m.Qualifier = readMessage[Qualifier](d)
		default:
			d.skip()
		}
	}
	return d.err
}

func (m *Private) marshal(b []byte) []byte {
	return appendMessage(b, 1, m.Qualifier)
}

func (m *Private) unmarshal(b []byte) error {
	d := newDecoder(b)
	for d.next() {
		switch d.num {
		case 1:
			m.Qualifier = readMessage[Qualifier](d)
		default:
			d.skip()
		}
	}
	return d.err
}

func (m *Qualifier) marshal(b []byte) []byte {
	switch v := m.Value.(type) {
	case *ThisQualifier:
		b = appendMessage(b, 1, v)
	case *IDQualifier:
		b = appendMessage(b, 2, v)
	case *Unqualified:
		b = appendMessage(b, 3, v)
	}
	return b
}

func (m *Qualifier) unmarshal(b []byte) error {
	d := newDecoder(b)
	for d.next() {
		switch d.num {
		case 1:
			m.Value = readMessage[ThisQualifier](d)
		case 2:
			m.Value = readMessage[IDQualifier](d)
		case 3:
			m.Value = readMessage[Unqualified](d)
		default:
			d.skip()
		}
	}
	return d.err
}

func (m *IDQualifier) marshal(b []byte) []byte {
	return appendString(b, 1, m.Value)
}

func (m *IDQualifier) unmarshal(b []byte) error {
	d := newDecoder(b)
	for d.next() {
		switch d.num {
		case 1:
			m.Value = d.string()
		default:
			d.skip()
		}
	}
	return d.err
}

func (m *TypeParameter) marshal(b []byte) []byte {
	b = appendString(b, 1, m.ID)
	b = appendRepeated(b, 2, m.Annotations)
	b = appendRepeated(b, 3, m.TypeParameters)
	b = appendInt32(b, 4, int32(m.Variance))
	b = appendMessage(b, 5, m.LowerBound)
	return appendMessage(b, 6, m.UpperBound)
}

func (m *TypeParameter) unmarshal(b []byte) error {
	d := newDecoder(b)
	for d.next() {
		switch d.num {
		case 1:
			m.ID = d.string()
		case 2:
			readRepeated(d, &m.Annotations)
		case 3:
			readRepeated(d, &m.TypeParameters)
		case 4:
			m.Variance = Variance(d.int32())
		case 5:
			m.LowerBound = readMessage[Type](d)
		case 6:
			m.UpperBound = readMessage[Type](d)
		default:
			d.skip()
		}
	}
	return d.err
}

func (m *MethodParameter) marshal(b []byte) []byte {
	b = appendString(b, 1, m.Name)
	b = appendMessage(b, 2, m.Type)
	b = appendBool(b, 3, m.HasDefault)
	return appendInt32(b, 4, int32(m.Modifier))
}

func (m *MethodParameter) unmarshal(b []byte) error {
	d := newDecoder(b)
	for d.next() {
		switch d.num {
		case 1:
			m.Name = d.string()
		case 2:
			m.Type = readMessage[Type](d)
		case 3:
			m.HasDefault = d.bool()
		case 4:
			m.Modifier = ParameterModifier(d.int32())
		default:
			d.skip()
		}
	}
	return d.err
}

func (m *ParameterList) marshal(b []byte) []byte {
	b = appendRepeated(b, 1, m.Parameters)
	return appendBool(b, 2, m.IsImplicit)
}

func (m *ParameterList) unmarshal(b []byte) error {
	d := newDecoder(b)
	for d.next() {
		switch d.num {
		case 1:
			readRepeated(d, &m.Parameters)
		case 2:
			m.IsImplicit = d.bool()
		default:
			d.skip()
		}
	}
	return d.err
}

func (m *ClassDefinition) marshal(b []byte) []byte {
	b = appendString(b, 1, m.Name)
	b = appendMessage(b, 2, m.Access)
	b = appendMessage(b, 3, m.Modifiers)
	b = appendRepeated(b, 4, m.Annotations)
	switch v := m.Extra.(type) {
	case *ClassLikeDef:
		b = appendMessage(b, 5, v)
	case *Def:
		b = appendMessage(b, 6, v)
	case *Val:
		b = appendMessage(b, 7, v)
	case *Var:
		b = appendMessage(b, 8, v)
	case *TypeAlias:
		b = appendMessage(b, 9, v)
	case *TypeDeclaration:
		b = appendMessage(b, 10, v)
	}
	return b
}

func (m *ClassDefinition) unmarshal(b []byte) error {
	d := newDecoder(b)
	for d.next() {
		switch d.num {
		case 1:
			m.Name = d.string()
		case 2:
			m.Access = readMessage[Access](d)
		case 3:
			m.Modifiers = readMessage[Modifiers](d)
		case 4:
			readRepeated(d, &m.Annotations)
		case 5:
			m.Extra = readMessage[ClassLikeDef](d)
		case 6:
			m.Extra = readMessage[Def](d)
		case 7:
			m.Extra = readMessage[Val](d)
		case 8:
			m.Extra = readMessage[Var](d)
		case 9:
			m.Extra = readMessage[TypeAlias](d)
		case 10:
			m.Extra = readMessage[TypeDeclaration](d)
		default:
			d.skip()
		}
	}
	return d.err
}

func (m *ClassLikeDef) marshal(b []byte) []byte {
	b = appendRepeated(b, 1, m.TypeParameters)
	return appendInt32(b, 2, int32(m.DefinitionType))
}

func (m *ClassLikeDef) unmarshal(b []byte) error {
	d := newDecoder(b)
	for d.next() {
		switch d.num {
		case 1:
			readRepeated(d, &m.TypeParameters)
		case 2:
			m.DefinitionType = DefinitionType(d.int32())
		default:
			d.skip()
		}
	}
	return d.err
}

func (m *Def) marshal(b []byte) []byte {
	b = appendRepeated(b, 1, m.TypeParameters)
	b = appendRepeated(b, 2, m.ValueParameters)
	return appendMessage(b, 3, m.ReturnType)
}

func (m *Def) unmarshal(b []byte) error {
	d := newDecoder(b)
	for d.next() {
		switch d.num {
		case 1:
			readRepeated(d, &m.TypeParameters)
		case 2:
			readRepeated(d, &m.ValueParameters)
		case 3:
			m.ReturnType = readMessage[Type](d)
		default:
			d.skip()
		}
	}
	return d.err
}

func (m *Val) marshal(b []byte) []byte {
	return appendMessage(b, 1, m.Type)
}

func (m *Val) unmarshal(b []byte) error {
	d := newDecoder(b)
	for d.next() {
		switch d.num {
		case 1:
			m.Type = readMessage[Type](d)
		default:
			d.skip()
		}
	}
	return d.err
}

func (m *Var) marshal(b []byte) []byte {
	return appendMessage(b, 1, m.Type)
}

func (m *Var) unmarshal(b []byte) error {
	d := newDecoder(b)
	for d.next() {
		switch d.num {
		case 1:
			m.Type = readMessage[Type](d)
		default:
			d.skip()
		}
	}
	return d.err
}

func (m *TypeAlias) marshal(b []byte) []byte {
	b = appendRepeated(b, 1, m.TypeParameters)
	return appendMessage(b, 2, m.Type)
}

func (m *TypeAlias) unmarshal(b []byte) error {
	d := newDecoder(b)
	for d.next() {
		switch d.num {
		case 1:
			readRepeated(d, &m.TypeParameters)
		case 2:
			m.Type = readMessage[Type](d)
		default:
			d.skip()
		}
	}
	return d.err
}

func (m *TypeDeclaration) marshal(b []byte) []byte {
	b = appendRepeated(b, 1, m.TypeParameters)
	b = appendMessage(b, 2, m.LowerBound)
	return appendMessage(b, 3, m.UpperBound)
}

func (m *TypeDeclaration) unmarshal(b []byte) error {
	d := newDecoder(b)
	for d.next() {
		switch d.num {
		case 1:
			readRepeated(d, &m.TypeParameters)
		case 2:
			m.LowerBound = readMessage[Type](d)
		case 3:
			m.UpperBound = readMessage[Type](d)
		default:
			d.skip()
		}
	}
	return d.err
}

func (m *ClassLike) marshal(b []byte) []byte {
	b = appendString(b, 1, m.Name)
	b = appendMessage(b, 2, m.Access)
	b = appendMessage(b, 3, m.Modifiers)
	b = appendRepeated(b, 4, m.Annotations)
	b = appendInt32(b, 5, int32(m.DefinitionType))
	b = appendMessage(b, 6, m.SelfType)
	b = appendMessage(b, 7, m.Structure)
	b = appendStrings(b, 8, m.SavedAnnotations)
	b = appendRepeated(b, 9, m.ChildrenOfSealedClass)
	b = appendBool(b, 10, m.TopLevel)
	return appendRepeated(b, 11, m.TypeParameters)
}

func (m *ClassLike) unmarshal(b []byte) error {
	d := newDecoder(b)
	for d.next() {
		switch d.num {
		case 1:
			m.Name = d.string()
		case 2:
			m.Access = readMessage[Access](d)
		case 3:
			m.Modifiers = readMessage[Modifiers](d)
		case 4:
			readRepeated(d, &m.Annotations)
		case 5:
			m.DefinitionType = DefinitionType(d.int32())
		case 6:
			m.SelfType = readMessage[Type](d)
		case 7:
			m.Structure = readMessage[Structure](d)
		case 8:
			m.SavedAnnotations = append(m.SavedAnnotations, d.string())
		case 9:
			readRepeated(d, &m.ChildrenOfSealedClass)
		case 10:
			m.TopLevel = d.bool()
		case 11:
			readRepeated(d, &m.TypeParameters)
		default:
			d.skip()
		}
	}
	return d.err
}

func (m *Companions) marshal(b []byte) []byte {
	b = appendMessage(b, 1, m.ClassApi)
	return appendMessage(b, 2, m.ObjectApi)
}

func (m *Companions) unmarshal(b []byte) error {
	d := newDecoder(b)
	for d.next() {
		switch d.num {
		case 1:
			m.ClassApi = readMessage[ClassLike](d)
		case 2:
			m.ObjectApi = readMessage[ClassLike](d)
		default:
			d.skip()
		}
	}
	return d.err
}

func (m *NameHash) marshal(b []byte) []byte {
	b = appendString(b, 1, m.Name)
	b = appendInt32(b, 2, int32(m.Scope))
	return appendInt32(b, 3, m.Hash)
}

func (m *NameHash) unmarshal(b []byte) error {
	d := newDecoder(b)
	for d.next() {
		switch d.num {
		case 1:
			m.Name = d.string()
		case 2:
			m.Scope = UseScope(d.int32())
		case 3:
			m.Hash = d.int32()
		default:
			d.skip()
		}
	}
	return d.err
}

func (m *AnalyzedClass) marshal(b []byte) []byte {
	b = appendInt64(b, 1, m.CompilationTimestamp)
	b = appendString(b, 2, m.Name)
	b = appendMessage(b, 3, m.Api)
	b = appendInt32(b, 4, m.ApiHash)
	b = appendRepeated(b, 5, m.NameHashes)
	b = appendBool(b, 6, m.HasMacro)
	b = appendInt32(b, 7, m.ExtraHash)
	return appendString(b, 8, m.Provenance)
}

func (m *AnalyzedClass) unmarshal(b []byte) error {
	d := newDecoder(b)
	for d.next() {
		switch d.num {
		case 1:
			m.CompilationTimestamp = d.int64()
		case 2:
			m.Name = d.string()
		case 3:
			m.Api = readMessage[Companions](d)
		case 4:
			m.ApiHash = d.int32()
		case 5:
			readRepeated(d, &m.NameHashes)
		case 6:
			m.HasMacro = d.bool()
		case 7:
			m.ExtraHash = d.int32()
		case 8:
			m.Provenance = d.string()
		default:
			d.skip()
		}
	}
	return d.err
}

func (m *APIs) marshal(b []byte) []byte {
	b = appendEntries(b, 1, m.Internal)
	return appendEntries(b, 2, m.External)
}

func (m *APIs) unmarshal(b []byte) error {
	d := newDecoder(b)
	for d.next() {
		switch d.num {
		case 1:
			readEntry(d, &m.Internal)
		case 2:
			readEntry(d, &m.External)
		default:
			d.skip()
		}
	}
	return d.err
}

func (m *APIsFile) marshal(b []byte) []byte {
	b = appendInt32(b, 1, int32(m.Version))
	return appendMessage(b, 2, m.Apis)
}

func (m *APIsFile) unmarshal(b []byte) error {
	d := newDecoder(b)
	for d.next() {
		switch d.num {
		case 1:
			m.Version = Version(d.int32())
		case 2:
			m.Apis = readMessage[APIs](d)
		default:
			d.skip()
		}
	}
	return d.err
}
