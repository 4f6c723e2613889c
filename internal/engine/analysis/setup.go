package analysis

// Output describes where compiled products are written.
type Output interface {
	isOutput()
}

type SingleOutput struct {
	OutputDir FileRef
}

type MultipleOutput struct {
	Groups []OutputGroup
}

type OutputGroup struct {
	SourceDir FileRef
	OutputDir FileRef
}

func (*SingleOutput) isOutput()   {}
func (*MultipleOutput) isOutput() {}

type Compilation struct {
	StartTime int64
	Output    Output
}

type CompileOrder int32

const (
	Mixed CompileOrder = iota
	JavaThenScala
	ScalaThenJava
)

func (o CompileOrder) String() string {
	switch o {
	case Mixed:
		return "Mixed"
	case JavaThenScala:
		return "JavaThenScala"
	case ScalaThenJava:
		return "ScalaThenJava"
	default:
		return "Unknown"
	}
}

type FileHash struct {
	File FileRef
	Hash int32
}

// MiniOptions is the part of the compiler configuration that invalidates
// the whole analysis when it changes.
type MiniOptions struct {
	ClasspathHash []FileHash
	ScalacOptions []string
	JavacOptions  []string
}

type KeyValue struct {
	Key   string
	Value string
}

type MiniSetup struct {
	Output          Output
	Options         MiniOptions
	CompilerVersion string
	Order           CompileOrder
	StoreAPIs       bool
	Extra           []KeyValue
}
