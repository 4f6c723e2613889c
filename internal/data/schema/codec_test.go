package schema

import (
	"testing"

	derrors "incstate/internal/core/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/encoding/protowire"
)

func sampleAPIsFile() *APIsFile {
	intType := &Type{Value: &Projection{
		Prefix: &Type{Value: &Singleton{Path: &Path{Components: []*PathComponent{
			{Value: &ID{ID: "scala"}},
			{Value: &This{}},
		}}}},
		ID: "Int",
	}}
	foo := &ClassDefinition{
		Name:      "foo",
		Access:    &Access{Value: &Private{Qualifier: &Qualifier{Value: &IDQualifier{Value: "pkg"}}}},
		Modifiers: &Modifiers{Flags: 4},
		Extra: &Def{
			ValueParameters: []*ParameterList{{
				Parameters: []*MethodParameter{{Name: "x", Type: intType, Modifier: ParameterModifierByName}},
				IsImplicit: true,
			}},
			ReturnType: intType,
		},
	}
	return &APIsFile{
		Version: V1_1,
		Apis: &APIs{
			Internal: map[string]*AnalyzedClass{
				"a.A": {
					CompilationTimestamp: 1700000000000,
					Name:                 "a.A",
					Api: &Companions{
						ClassApi: &ClassLike{
							Name:           "a.A",
							Access:         &Access{Value: &Public{}},
							Modifiers:      &Modifiers{},
							DefinitionType: DefinitionTypeTrait,
							SelfType:       &Type{Value: &EmptyType{}},
							Structure: &Structure{
								Parents:  []*Type{intType},
								Declared: []*ClassDefinition{foo},
							},
							SavedAnnotations: []string{"deprecated"},
							TopLevel:         true,
							TypeParameters: []*TypeParameter{{
								ID:         "T",
								Variance:   VarianceContravariant,
								UpperBound: intType,
							}},
						},
					},
					ApiHash:    -42,
					NameHashes: []*NameHash{{Name: "foo", Scope: UseScopeImplicit, Hash: 7}},
					ExtraHash:  3,
					Provenance: "jar",
				},
			},
		},
	}
}

func TestAPIsFile_RoundTrip(t *testing.T) {
	in := sampleAPIsFile()
	out, err := UnmarshalAPIsFile(Marshal(in))
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestAnalysisFile_RoundTrip(t *testing.T) {
	in := &AnalysisFile{
		Version: V1,
		Analysis: &Analysis{
			Stamps: &Stamps{
				SourceStamps: map[string]*StampType{
					"/src/A.scala": {Value: &Hash{Hash: "dead"}},
					"/src/B.scala": {},
				},
				BinaryStamps: map[string]*StampType{
					"/lib/x.jar": {Value: &LastModified{Millis: 12}},
				},
			},
			SourceInfos: &SourceInfos{SourceInfos: map[string]*SourceInfo{
				"/src/A.scala": {
					ReportedProblems: []*Problem{{
						Category: "typer",
						Message:  "boom",
						Severity: SeverityError,
						Position: &Position{Line: -1, Offset: 0, Pointer: -1, StartLine: 3},
					}},
					MainClasses: []string{"a.Main"},
				},
			}},
			Relations: &Relations{
				SrcProd:     map[string]*Values{"/src/A.scala": {Values: []string{"/out/A.class"}}},
				MemberRef:   &ClassDependencies{Internal: map[string]*Values{"a.A": {Values: []string{"a.B"}}}},
				Inheritance: &ClassDependencies{},
				Names: map[string]*UsedNames{"a.A": {UsedNames: []*UsedName{
					{Name: "foo", Scopes: []UseScope{UseScopeDefault, UseScopePatMatTarget}},
				}}},
			},
			Compilations: &Compilations{Compilations: []*Compilation{
				{StartTimeMillis: 99, Output: &SingleOutput{Target: "/out"}},
			}},
		},
		MiniSetup: &MiniSetup{
			Output: &MultipleOutput{OutputGroups: []*OutputGroup{{SourcePath: "/src", TargetPath: "/out"}}},
			MiniOptions: &MiniOptions{
				ClasspathHash: []*FileHash{{Path: "/lib/x.jar", Hash: -5}},
				ScalacOptions: []string{"-deprecation"},
			},
			CompilerVersion: "2.13.12",
			CompileOrder:    CompileOrderScalaThenJava,
			StoreApis:       true,
			Extra:           []*Tuple{{First: "k", Second: "v"}},
		},
	}

	out, err := UnmarshalAnalysisFile(Marshal(in))
	require.NoError(t, err)
	assert.Equal(t, in, out)
	assert.Equal(t, int32(-1), out.Analysis.SourceInfos.SourceInfos["/src/A.scala"].ReportedProblems[0].Position.Line)
}

func TestUnmarshal_SkipsUnknownFields(t *testing.T) {
	b := Marshal(&NameHash{Name: "foo", Hash: 1})
	b = protowire.AppendTag(b, 99, protowire.BytesType)
	b = protowire.AppendString(b, "from the future")
	b = protowire.AppendTag(b, 100, protowire.VarintType)
	b = protowire.AppendVarint(b, 5)

	var out NameHash
	require.NoError(t, Unmarshal(b, &out))
	assert.Equal(t, NameHash{Name: "foo", Hash: 1}, out)
}

func TestUnmarshal_UnpackedEnums(t *testing.T) {
	var b []byte
	b = protowire.AppendTag(b, 2, protowire.VarintType)
	b = protowire.AppendVarint(b, uint64(UseScopeImplicit))
	b = protowire.AppendTag(b, 2, protowire.VarintType)
	b = protowire.AppendVarint(b, uint64(UseScopePatMatTarget))

	var out UsedName
	require.NoError(t, Unmarshal(b, &out))
	assert.Equal(t, []UseScope{UseScopeImplicit, UseScopePatMatTarget}, out.Scopes)
}

func TestUnmarshal_MapEntryWithoutValue(t *testing.T) {
	var entry []byte
	entry = protowire.AppendTag(entry, 1, protowire.BytesType)
	entry = protowire.AppendString(entry, "a.A")
	var b []byte
	b = protowire.AppendTag(b, 1, protowire.BytesType)
	b = protowire.AppendBytes(b, entry)

	var out APIs
	require.NoError(t, Unmarshal(b, &out))
	require.Contains(t, out.Internal, "a.A")
	assert.Equal(t, &AnalyzedClass{}, out.Internal["a.A"])
}

func TestUnmarshal_Malformed(t *testing.T) {
	full := Marshal(sampleAPIsFile())

	tests := []struct {
		name string
		in   []byte
	}{
		{name: "truncated", in: full[:len(full)-3]},
		{name: "bad tag", in: []byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff}},
		{name: "wrong wire type", in: protowire.AppendVarint(protowire.AppendTag(nil, 2, protowire.VarintType), 1)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := UnmarshalAPIsFile(tt.in)
			require.Error(t, err)
			assert.True(t, derrors.IsCode(err, derrors.CodeMalformedMessage))
		})
	}
}

func TestMarshal_Deterministic(t *testing.T) {
	assert.Equal(t, Marshal(sampleAPIsFile()), Marshal(sampleAPIsFile()))
}
