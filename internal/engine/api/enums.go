package api

type Variance int32

const (
	Invariant Variance = iota
	Covariant
	Contravariant
)

func (v Variance) String() string {
	switch v {
	case Invariant:
		return "invariant"
	case Covariant:
		return "covariant"
	case Contravariant:
		return "contravariant"
	default:
		return "unknown"
	}
}

type ParameterModifier int32

const (
	Plain ParameterModifier = iota
	ByName
	Repeated
)

func (m ParameterModifier) String() string {
	switch m {
	case Plain:
		return "plain"
	case ByName:
		return "by-name"
	case Repeated:
		return "repeated"
	default:
		return "unknown"
	}
}

// DefinitionType is the kind of a class-like definition.
type DefinitionType int32

const (
	ClassDef DefinitionType = iota
	Module
	Trait
	PackageModule
)

func (d DefinitionType) String() string {
	switch d {
	case ClassDef:
		return "class"
	case Module:
		return "module"
	case Trait:
		return "trait"
	case PackageModule:
		return "package-module"
	default:
		return "unknown"
	}
}

// UseScope is the context in which a name was referenced.
type UseScope int32

const (
	DefaultScope UseScope = iota
	ImplicitScope
	PatMatTargetScope
)

func (s UseScope) String() string {
	switch s {
	case DefaultScope:
		return "default"
	case ImplicitScope:
		return "implicit"
	case PatMatTargetScope:
		return "patmat-target"
	default:
		return "unknown"
	}
}

// UseScopes is a set of UseScope values.
type UseScopes uint8

func ScopesOf(scopes ...UseScope) UseScopes {
	var s UseScopes
	for _, scope := range scopes {
		s = s.With(scope)
	}
	return s
}

func (s UseScopes) With(scope UseScope) UseScopes {
	return s | 1<<uint(scope)
}

func (s UseScopes) Has(scope UseScope) bool {
	return s&(1<<uint(scope)) != 0
}

// List returns the members in ascending tag order.
func (s UseScopes) List() []UseScope {
	out := make([]UseScope, 0, 3)
	for _, scope := range []UseScope{DefaultScope, ImplicitScope, PatMatTargetScope} {
		if s.Has(scope) {
			out = append(out, scope)
		}
	}
	return out
}

// Modifiers is the opaque modifier bit set carried by definitions.
type Modifiers int32

const (
	ModAbstract Modifiers = 1 << iota
	ModOverride
	ModFinal
	ModSealed
	ModImplicit
	ModLazy
	ModMacro
	ModSuperAccessor
)

func (m Modifiers) IsAbstract() bool      { return m&ModAbstract != 0 }
func (m Modifiers) IsOverride() bool      { return m&ModOverride != 0 }
func (m Modifiers) IsFinal() bool         { return m&ModFinal != 0 }
func (m Modifiers) IsSealed() bool        { return m&ModSealed != 0 }
func (m Modifiers) IsImplicit() bool      { return m&ModImplicit != 0 }
func (m Modifiers) IsLazy() bool          { return m&ModLazy != 0 }
func (m Modifiers) IsMacro() bool         { return m&ModMacro != 0 }
func (m Modifiers) IsSuperAccessor() bool { return m&ModSuperAccessor != 0 }
