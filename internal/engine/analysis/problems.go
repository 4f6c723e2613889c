package analysis

type Severity int32

const (
	Info Severity = iota
	Warn
	Error
)

func (s Severity) String() string {
	switch s {
	case Info:
		return "info"
	case Warn:
		return "warn"
	case Error:
		return "error"
	default:
		return "unknown"
	}
}

// Position locates a diagnostic. Absent values are nil.
type Position struct {
	Line         *int32
	LineContent  string
	Offset       *int32
	Pointer      *int32
	PointerSpace *string
	SourcePath   *string
	SourceFile   *string
	StartOffset  *int32
	EndOffset    *int32
	StartLine    *int32
	StartColumn  *int32
	EndLine      *int32
	EndColumn    *int32
}

type Problem struct {
	Category string
	Message  string
	Severity Severity
	Position Position
	Rendered *string
}

type SourceInfo struct {
	ReportedProblems   []Problem
	UnreportedProblems []Problem
	MainClasses        []string
}

type SourceInfos map[FileRef]SourceInfo

// ProblemCount returns the number of reported and unreported problems.
func (s SourceInfos) ProblemCount() int {
	n := 0
	for _, info := range s {
		n += len(info.ReportedProblems) + len(info.UnreportedProblems)
	}
	return n
}
