package analysis

import "incstate/internal/engine/api"

// DependencyContext says how one class came to depend on another.
type DependencyContext int

const (
	ByMemberRef DependencyContext = iota
	ByInheritance
	LocalByInheritance
)

func (c DependencyContext) String() string {
	switch c {
	case ByMemberRef:
		return "member-ref"
	case ByInheritance:
		return "inheritance"
	case LocalByInheritance:
		return "local-inheritance"
	default:
		return "unknown"
	}
}

// DependencyContexts lists every context in canonical order.
var DependencyContexts = []DependencyContext{ByMemberRef, ByInheritance, LocalByInheritance}

// UsedName is a name referenced by a class together with the scopes it was
// used in.
type UsedName struct {
	Name   string
	Scopes api.UseScopes
}

type ClassRelation = Relation[string, string]

type Relations struct {
	SrcProd          *Relation[FileRef, FileRef]
	LibraryDep       *Relation[FileRef, FileRef]
	LibraryClassName *Relation[FileRef, string]
	Internal         map[DependencyContext]*ClassRelation
	External         map[DependencyContext]*ClassRelation
	Classes          *Relation[FileRef, string]
	ProductClassName *Relation[string, string]
	Names            *Relation[string, UsedName]
}

func NewRelations() *Relations {
	r := &Relations{
		SrcProd:          NewRelation[FileRef, FileRef](),
		LibraryDep:       NewRelation[FileRef, FileRef](),
		LibraryClassName: NewRelation[FileRef, string](),
		Internal:         make(map[DependencyContext]*ClassRelation, len(DependencyContexts)),
		External:         make(map[DependencyContext]*ClassRelation, len(DependencyContexts)),
		Classes:          NewRelation[FileRef, string](),
		ProductClassName: NewRelation[string, string](),
		Names:            NewRelation[string, UsedName](),
	}
	for _, ctx := range DependencyContexts {
		r.Internal[ctx] = NewRelation[string, string]()
		r.External[ctx] = NewRelation[string, string]()
	}
	return r
}

// APIs holds the analyzed classes of the current project (internal) and of
// upstream projects it depends on (external), by class name.
type APIs struct {
	Internal map[string]*api.AnalyzedClass
	External map[string]*api.AnalyzedClass
}

type Analysis struct {
	Stamps       Stamps
	Relations    *Relations
	SourceInfos  SourceInfos
	Compilations []Compilation
}
