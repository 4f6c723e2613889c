package schema

import "google.golang.org/protobuf/encoding/protowire"

// Hash: 1 hash.
type Hash struct {
	Hash string
}

// LastModified: 1 millis.
type LastModified struct {
	Millis int64
}

// StampValue is the StampType union: Hash (1) or LastModified (2). A nil
// value is the empty stamp.
type StampValue interface {
	Message
	isStampValue()
}

func (*Hash) isStampValue()         {}
func (*LastModified) isStampValue() {}

type StampType struct {
	Value StampValue
}

// Stamps: 1 binaryStamps, 2 sourceStamps, 3 productStamps.
type Stamps struct {
	BinaryStamps  map[string]*StampType
	SourceStamps  map[string]*StampType
	ProductStamps map[string]*StampType
}

// Position: 1 line, 2 lineContent, 3 offset, 4 pointer, 5 pointerSpace,
// 6 sourcePath, 7 sourceFilepath, 8 startOffset, 9 endOffset,
// 10 startLine, 11 startColumn, 12 endLine, 13 endColumn.
// Absent ints are -1 and absent strings are empty.
type Position struct {
	Line           int32
	LineContent    string
	Offset         int32
	Pointer        int32
	PointerSpace   string
	SourcePath     string
	SourceFilepath string
	StartOffset    int32
	EndOffset      int32
	StartLine      int32
	StartColumn    int32
	EndLine        int32
	EndColumn      int32
}

// Problem: 1 category, 2 message, 3 severity, 4 position, 5 rendered.
type Problem struct {
	Category string
	Message  string
	Severity Severity
	Position *Position
	Rendered string
}

// SourceInfo: 1 reportedProblems, 2 unreportedProblems, 3 mainClasses.
type SourceInfo struct {
	ReportedProblems   []*Problem
	UnreportedProblems []*Problem
	MainClasses        []string
}

// SourceInfos: 1 sourceInfos.
type SourceInfos struct {
	SourceInfos map[string]*SourceInfo
}

// OutputGroup: 1 sourcePath, 2 targetPath.
type OutputGroup struct {
	SourcePath string
	TargetPath string
}

// SingleOutput: 1 target.
type SingleOutput struct {
	Target string
}

// MultipleOutput: 1 outputGroups.
type MultipleOutput struct {
	OutputGroups []*OutputGroup
}

// Output is the output union carried by Compilation and MiniSetup. A nil
// value is the empty member.
type Output interface {
	Message
	isOutput()
}

func (*SingleOutput) isOutput()   {}
func (*MultipleOutput) isOutput() {}

// Compilation: 1 startTimeMillis, 2 singleOutput, 3 multipleOutput.
type Compilation struct {
	StartTimeMillis int64
	Output          Output
}

// Compilations: 1 compilations.
type Compilations struct {
	Compilations []*Compilation
}

// FileHash: 1 path, 2 hash.
type FileHash struct {
	Path string
	Hash int32
}

// MiniOptions: 1 classpathHash, 2 scalacOptions, 3 javacOptions.
type MiniOptions struct {
	ClasspathHash []*FileHash
	ScalacOptions []string
	JavacOptions  []string
}

// Tuple: 1 first, 2 second.
type Tuple struct {
	First  string
	Second string
}

// MiniSetup: 1 singleOutput, 2 multipleOutput, 3 miniOptions,
// 4 compilerVersion, 5 compileOrder, 6 storeApis, 7 extra.
type MiniSetup struct {
	Output          Output
	MiniOptions     *MiniOptions
	CompilerVersion string
	CompileOrder    CompileOrder
	StoreApis       bool
	Extra           []*Tuple
}

// Values: 1 values.
type Values struct {
	Values []string
}

// UsedName: 1 name, 2 scopes.
type UsedName struct {
	Name   string
	Scopes []UseScope
}

// UsedNames: 1 usedNames.
type UsedNames struct {
	UsedNames []*UsedName
}

// ClassDependencies: 1 internal, 2 external.
type ClassDependencies struct {
	Internal map[string]*Values
	External map[string]*Values
}

// Relations: 1 srcProd, 2 libraryDep, 3 libraryClassName, 4 memberRef,
// 5 inheritance, 6 localInheritance, 7 classes, 8 productClassName, 9 names.
type Relations struct {
	SrcProd          map[string]*Values
	LibraryDep       map[string]*Values
	LibraryClassName map[string]*Values
	MemberRef        *ClassDependencies
	Inheritance      *ClassDependencies
	LocalInheritance *ClassDependencies
	Classes          map[string]*Values
	ProductClassName map[string]*Values
	Names            map[string]*UsedNames
}

// Analysis: 1 stamps, 2 relations, 3 sourceInfos, 4 compilations.
type Analysis struct {
	Stamps       *Stamps
	Relations    *Relations
	SourceInfos  *SourceInfos
	Compilations *Compilations
}

// AnalysisFile: 1 version, 2 analysis, 3 miniSetup.
type AnalysisFile struct {
	Version   Version
	Analysis  *Analysis
	MiniSetup *MiniSetup
}

func (m *Hash) marshal(b []byte) []byte {
	return appendString(b, 1, m.Hash)
}

func (m *Hash) unmarshal(b []byte) error {
	d := newDecoder(b)
	for d.next() {
		switch d.num {
		case 1:
			m.Hash = d.string()
		default:
			d.skip()
		}
	}
	return d.err
}

func (m *LastModified) marshal(b []byte) []byte {
	return appendInt64(b, 1, m.Millis)
}

func (m *LastModified) unmarshal(b []byte) error {
	d := newDecoder(b)
	for d.next() {
		switch d.num {
		case 1:
			m.Millis = d.int64()
		default:
			d.skip()
		}
	}
	return d.err
}

func (m *StampType) marshal(b []byte) []byte {
	switch v := m.Value.(type) {
	case *Hash:
		b = appendMessage(b, 1, v)
	case *LastModified:
		b = appendMessage(b, 2, v)
	}
	return b
}

func (m *StampType) unmarshal(b []byte) error {
	d := newDecoder(b)
	for d.next() {
		switch d.num {
		case 1:
			m.Value = readMessage[Hash](d)
		case 2:
			m.Value = readMessage[LastModified](d)
		default:
			d.skip()
		}
	}
	return d.err
}

func (m *Stamps) marshal(b []byte) []byte {
	b = appendEntries(b, 1, m.BinaryStamps)
	b = appendEntries(b, 2, m.SourceStamps)
	return appendEntries(b, 3, m.ProductStamps)
}

func (m *Stamps) unmarshal(b []byte) error {
	d := newDecoder(b)
	for d.next() {
		switch d.num {
		case 1:
			readEntry(d, &m.BinaryStamps)
		case 2:
			readEntry(d, &m.SourceStamps)
		case 3:
			readEntry(d, &m.ProductStamps)
		default:
			d.skip()
		}
	}
	return d.err
}

func (m *Position) marshal(b []byte) []byte {
	b = appendInt32(b, 1, m.Line)
	b = appendString(b, 2, m.LineContent)
	b = appendInt32(b, 3, m.Offset)
	b = appendInt32(b, 4, m.Pointer)
	b = appendString(b, 5, m.PointerSpace)
	b = appendString(b, 6, m.SourcePath)
	b = appendString(b, 7, m.SourceFilepath)
	b = appendInt32(b, 8, m.StartOffset)
	b = appendInt32(b, 9, m.EndOffset)
	b = appendInt32(b, 10, m.StartLine)
	b = appendInt32(b, 11, m.StartColumn)
	b = appendInt32(b, 12, m.EndLine)
	return appendInt32(b, 13, m.EndColumn)
}

func (m *Position) unmarshal(b []byte) error {
	d := newDecoder(b)
	for d.next() {
		switch d.num {
		case 1:
			m.Line = d.int32()
		case 2:
			m.LineContent = d.string()
		case 3:
			m.Offset = d.int32()
		case 4:
			m.Pointer = d.int32()
		case 5:
			m.PointerSpace = d.string()
		case 6:
			m.SourcePath = d.string()
		case 7:
			m.SourceFilepath = d.string()
		case 8:
			m.StartOffset = d.int32()
		case 9:
			m.EndOffset = d.int32()
		case 10:
			m.StartLine = d.int32()
		case 11:
			m.StartColumn = d.int32()
		case 12:
			m.EndLine = d.int32()
		case 13:
			m.EndColumn = d.int32()
		default:
			d.skip()
		}
	}
	return d.err
}

func (m *Problem) marshal(b []byte) []byte {
	b = appendString(b, 1, m.Category)
	b = appendString(b, 2, m.Message)
	b = appendInt32(b, 3, int32(m.Severity))
	b = appendMessage(b, 4, m.Position)
	return appendString(b, 5, m.Rendered)
}

func (m *Problem) unmarshal(b []byte) error {
	d := newDecoder(b)
	for d.next() {
		switch d.num {
		case 1:
			m.Category = d.string()
		case 2:
			m.Message = d.string()
		case 3:
			m.Severity = Severity(d.int32())
		case 4:
			m.Position = readMessage[Position](d)
		case 5:
			m.Rendered = d.string()
		default:
			d.skip()
		}
	}
	return d.err
}

func (m *SourceInfo) marshal(b []byte) []byte {
	b = appendRepeated(b, 1, m.ReportedProblems)
	b = appendRepeated(b, 2, m.UnreportedProblems)
	return appendStrings(b, 3, m.MainClasses)
}

func (m *SourceInfo) unmarshal(b []byte) error {
	d := newDecoder(b)
	for d.next() {
		switch d.num {
		case 1:
			readRepeated(d, &m.ReportedProblems)
		case 2:
			readRepeated(d, &m.UnreportedProblems)
		case 3:
			m.MainClasses = append(m.MainClasses, d.string())
		default:
			d.skip()
		}
	}
	return d.err
}

func (m *SourceInfos) marshal(b []byte) []byte {
	return appendEntries(b, 1, m.SourceInfos)
}

func (m *SourceInfos) unmarshal(b []byte) error {
	d := newDecoder(b)
	for d.next() {
		switch d.num {
		case 1:
			readEntry(d, &m.SourceInfos)
		default:
			d.skip()
		}
	}
	return d.err
}

func (m *OutputGroup) marshal(b []byte) []byte {
	b = appendString(b, 1, m.SourcePath)
	return appendString(b, 2, m.TargetPath)
}

func (m *OutputGroup) unmarshal(b []byte) error {
	d := newDecoder(b)
	for d.next() {
		switch d.num {
		case 1:
			m.SourcePath = d.string()
		case 2:
			m.TargetPath = d.string()
		default:
			d.skip()
		}
	}
	return d.err
}

func (m *SingleOutput) marshal(b []byte) []byte {
	return appendString(b, 1, m.Target)
}

func (m *SingleOutput) unmarshal(b []byte) error {
	d := newDecoder(b)
	for d.next() {
		switch d.num {
		case 1:
			m.Target = d.string()
		default:
			d.skip()
		}
	}
	return d.err
}

func (m *MultipleOutput) marshal(b []byte) []byte {
	return appendRepeated(b, 1, m.OutputGroups)
}

func (m *MultipleOutput) unmarshal(b []byte) error {
	d := newDecoder(b)
	for d.next() {
		switch d.num {
		case 1:
			readRepeated(d, &m.OutputGroups)
		default:
			d.skip()
		}
	}
	return d.err
}

// appendOutput writes the output union at the given single/multiple field
// numbers.
func appendOutput(b []byte, single, multiple protowire.Number, o Output) []byte {
	switch v := o.(type) {
	case *SingleOutput:
		b = appendMessage(b, single, v)
	case *MultipleOutput:
		b = appendMessage(b, multiple, v)
	}
	return b
}

func (m *Compilation) marshal(b []byte) []byte {
	b = appendInt64(b, 1, m.StartTimeMillis)
	return appendOutput(b, 2, 3, m.Output)
}

func (m *Compilation) unmarshal(b []byte) error {
	d := newDecoder(b)
	for d.next() {
		switch d.num {
		case 1:
			m.StartTimeMillis = d.int64()
		case 2:
			m.Output = readMessage[SingleOutput](d)
		case 3:
			m.Output = readMessage[MultipleOutput](d)
		default:
			d.skip()
		}
	}
	return d.err
}

func (m *Compilations) marshal(b []byte) []byte {
	return appendRepeated(b, 1, m.Compilations)
}

func (m *Compilations) unmarshal(b []byte) error {
	d := newDecoder(b)
	for d.next() {
		switch d.num {
		case 1:
			readRepeated(d, &m.Compilations)
		default:
			d.skip()
		}
	}
	return d.err
}

func (m *FileHash) marshal(b []byte) []byte {
	b = appendString(b, 1, m.Path)
	return appendInt32(b, 2, m.Hash)
}

func (m *FileHash) unmarshal(b []byte) error {
	d := newDecoder(b)
	for d.next() {
		switch d.num {
		case 1:
			m.Path = d.string()
		case 2:
			m.Hash = d.int32()
		default:
			d.skip()
		}
	}
	return d.err
}

func (m *MiniOptions) marshal(b []byte) []byte {
	b = appendRepeated(b, 1, m.ClasspathHash)
	b = appendStrings(b, 2, m.ScalacOptions)
	return appendStrings(b, 3, m.JavacOptions)
}

func (m *MiniOptions) unmarshal(b []byte) error {
	d := newDecoder(b)
	for d.next() {
		switch d.num {
		case 1:
			readRepeated(d, &m.ClasspathHash)
		case 2:
			m.ScalacOptions = append(m.ScalacOptions, d.string())
		case 3:
			m.JavacOptions = append(m.JavacOptions, d.string())
		default:
			d.skip()
		}
	}
	return d.err
}

func (m *Tuple) marshal(b []byte) []byte {
	b = appendString(b, 1, m.First)
	return appendString(b, 2, m.Second)
}

func (m *Tuple) unmarshal(b []byte) error {
	d := newDecoder(b)
	for d.next() {
		switch d.num {
		case 1:
			m.First = d.string()
		case 2:
			m.Second = d.string()
		default:
			d.skip()
		}
	}
	return d.err
}

func (m *MiniSetup) marshal(b []byte) []byte {
	b = appendOutput(b, 1, 2, m.Output)
	b = appendMessage(b, 3, m.MiniOptions)
	b = appendString(b, 4, m.CompilerVersion)
	b = appendInt32(b, 5, int32(m.CompileOrder))
	b = appendBool(b, 6, m.StoreApis)
	return appendRepeated(b, 7, m.Extra)
}

func (m *MiniSetup) unmarshal(b []byte) error {
	d := newDecoder(b)
	for d.next() {
		switch d.num {
		case 1:
			m.Output = readMessage[SingleOutput](d)
		case 2:
			m.Output = readMessage[MultipleOutput](d)
		case 3:
			m.MiniOptions = readMessage[MiniOptions](d)
		case 4:
			m.CompilerVersion = d.string()
		case 5:
			m.CompileOrder = CompileOrder(d.int32())
		case 6:
			m.StoreApis = d.bool()
		case 7:
			readRepeated(d, &m.Extra)
		default:
			d.skip()
		}
	}
	return d.err
}

func (m *Values) marshal(b []byte) []byte {
	return appendStrings(b, 1, m.Values)
}

func (m *Values) unmarshal(b []byte) error {
	d := newDecoder(b)
	for d.next() {
		switch d.num {
		case 1:
			m.Values = append(m.Values, d.string())
		default:
			d.skip()
		}
	}
	return d.err
}

func (m *UsedName) marshal(b []byte) []byte {
	b = appendString(b, 1, m.Name)
	return appendPackedEnums(b, 2, m.Scopes)
}

func (m *UsedName) unmarshal(b []byte) error {
	d := newDecoder(b)
	for d.next() {
		switch d.num {
		case 1:
			m.Name = d.string()
		case 2:
			d.enums(func(v int32) { m.Scopes = append(m.Scopes, UseScope(v)) })
		default:
			d.skip()
		}
	}
	return d.err
}

func (m *UsedNames) marshal(b []byte) []byte {
	return appendRepeated(b, 1, m.UsedNames)
}

func (m *UsedNames) unmarshal(b []byte) error {
	d := newDecoder(b)
	for d.next() {
		switch d.num {
		case 1:
			readRepeated(d, &m.UsedNames)
		default:
			d.skip()
		}
	}
	return d.err
}

func (m *ClassDependencies) marshal(b []byte) []byte {
	b = appendEntries(b, 1, m.Internal)
	return appendEntries(b, 2, m.External)
}

func (m *ClassDependencies) unmarshal(b []byte) error {
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

func (m *Relations) marshal(b []byte) []byte {
	b = appendEntries(b, 1, m.SrcProd)
	b = appendEntries(b, 2, m.LibraryDep)
	b = appendEntries(b, 3, m.LibraryClassName)
	b = appendMessage(b, 4, m.MemberRef)
	b = appendMessage(b, 5, m.Inheritance)
	b = appendMessage(b, 6, m.LocalInheritance)
	b = appendEntries(b, 7, m.Classes)
	b = appendEntries(b, 8, m.ProductClassName)
	return appendEntries(b, 9, m.Names)
}

func (m *Relations) unmarshal(b []byte) error {
	d := newDecoder(b)
	for d.next() {
		switch d.num {
		case 1:
			readEntry(d, &m.SrcProd)
		case 2:
			readEntry(d, &m.LibraryDep)
		case 3:
			readEntry(d, &m.LibraryClassName)
		case 4:
			m.MemberRef = readMessage[ClassDependencies](d)
		case 5:
			m.Inheritance = readMessage[ClassDependencies](d)
		case 6:
			m.LocalInheritance = readMessage[ClassDependencies](d)
		case 7:
			readEntry(d, &m.Classes)
		case 8:
			readEntry(d, &m.ProductClassName)
		case 9:
			readEntry(d, &m.Names)
		default:
			d.skip()
		}
	}
	return d.err
}

func (m *Analysis) marshal(b []byte) []byte {
	b = appendMessage(b, 1, m.Stamps)
	b = appendMessage(b, 2, m.Relations)
	b = appendMessage(b, 3, m.SourceInfos)
	return appendMessage(b, 4, m.Compilations)
}

func (m *Analysis) unmarshal(b []byte) error {
	d := newDecoder(b)
	for d.next() {
		switch d.num {
		case 1:
			m.Stamps = readMessage[Stamps](d)
		case 2:
			m.Relations = readMessage[Relations](d)
		case 3:
			m.SourceInfos = readMessage[SourceInfos](d)
		case 4:
			m.Compilations = readMessage[Compilations](d)
		default:
			d.skip()
		}
	}
	return d.err
}

func (m *AnalysisFile) marshal(b []byte) []byte {
	b = appendInt32(b, 1, int32(m.Version))
	b = appendMessage(b, 2, m.Analysis)
	return appendMessage(b, 3, m.MiniSetup)
}

func (m *AnalysisFile) unmarshal(b []byte) error {
	d := newDecoder(b)
	for d.next() {
		switch d.num {
		case 1:
			m.Version = Version(d.int32())
		case 2:
			m.Analysis = readMessage[Analysis](d)
		case 3:
			m.MiniSetup = readMessage[MiniSetup](d)
		default:
			d.skip()
		}
	}
	return d.err
}
