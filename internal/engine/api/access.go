package api

type Access interface {
	isAccess()
}

type Public struct{}

type Protected struct {
	Qualifier Qualifier
}

type Private struct {
	Qualifier Qualifier
}

func (*Public) isAccess()    {}
func (*Protected) isAccess() {}
func (*Private) isAccess()   {}

// Qualifier narrows protected or private access, e.g. private[pkg].
type Qualifier interface {
	isQualifier()
}

type Unqualified struct{}

type ThisQualifier struct{}

type IDQualifier struct {
	Value string
}

func (*Unqualified) isQualifier()   {}
func (*ThisQualifier) isQualifier() {}
func (*IDQualifier) isQualifier()   {}
