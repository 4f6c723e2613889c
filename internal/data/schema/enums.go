package schema

import "strconv"

// Enumerations are int32 backed so values written by newer producers
// survive decoding; the domain decoder rejects tags it does not know.

type Version int32

const (
	V1   Version = 0
	V1_1 Version = 1
)

func (v Version) String() string {
	switch v {
	case V1:
		return "V1"
	case V1_1:
		return "V1_1"
	default:
		return "Version(" + strconv.Itoa(int(v)) + ")"
	}
}

type Severity int32

const (
	SeverityInfo  Severity = 0
	SeverityWarn  Severity = 1
	SeverityError Severity = 2
)

type CompileOrder int32

const (
	CompileOrderMixed         CompileOrder = 0
	CompileOrderJavaThenScala CompileOrder = 1
	CompileOrderScalaThenJava CompileOrder = 2
)

type UseScope int32

const (
	UseScopeDefault      UseScope = 0
	UseScopeImplicit     UseScope = 1
	UseScopePatMatTarget UseScope = 2
)

type Variance int32

const (
	VarianceInvariant     Variance = 0
	VarianceCovariant     Variance = 1
	VarianceContravariant Variance = 2
)

type ParameterModifier int32

const (
	ParameterModifierPlain    ParameterModifier = 0
	ParameterModifierByName   ParameterModifier = 1
	ParameterModifierRepeated ParameterModifier = 2
)

type DefinitionType int32

const (
	DefinitionTypeClassDef      DefinitionType = 0
	DefinitionTypeModule        DefinitionType = 1
	DefinitionTypeTrait         DefinitionType = 2
	DefinitionTypePackageModule DefinitionType = 3
)
