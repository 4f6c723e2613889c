package decode

import (
	derrors "incstate/internal/core/errors"
	"incstate/internal/data/schema"
	"incstate/internal/engine/analysis"
	"incstate/internal/engine/api"
)

func severity(v schema.Severity) (analysis.Severity, error) {
	switch v {
	case schema.SeverityInfo:
		return analysis.Info, nil
	case schema.SeverityWarn:
		return analysis.Warn, nil
	case schema.SeverityError:
		return analysis.Error, nil
	}
	return 0, derrors.UnrecognizedTag("Severity", int32(v))
}

func compileOrder(v schema.CompileOrder) (analysis.CompileOrder, error) {
	switch v {
	case schema.CompileOrderMixed:
		return analysis.Mixed, nil
	case schema.CompileOrderJavaThenScala:
		return analysis.JavaThenScala, nil
	case schema.CompileOrderScalaThenJava:
		return analysis.ScalaThenJava, nil
	}
	return 0, derrors.UnrecognizedTag("CompileOrder", int32(v))
}

func useScope(v schema.UseScope) (api.UseScope, error) {
	switch v {
	case schema.UseScopeDefault:
		return api.DefaultScope, nil
	case schema.UseScopeImplicit:
		return api.ImplicitScope, nil
	case schema.UseScopePatMatTarget:
		return api.PatMatTargetScope, nil
	}
	return 0, derrors.UnrecognizedTag("UseScope", int32(v))
}

func variance(v schema.Variance) (api.Variance, error) {
	switch v {
	case schema.VarianceInvariant:
		return api.Invariant, nil
	case schema.VarianceCovariant:
		return api.Covariant, nil
	case schema.VarianceContravariant:
		return api.Contravariant, nil
	}
	return 0, derrors.UnrecognizedTag("Variance", int32(v))
}

func parameterModifier(v schema.ParameterModifier) (api.ParameterModifier, error) {
	switch v {
	case schema.ParameterModifierPlain:
		return api.Plain, nil
	case schema.ParameterModifierByName:
		return api.ByName, nil
	case schema.ParameterModifierRepeated:
		return api.Repeated, nil
	}
	return 0, derrors.UnrecognizedTag("ParameterModifier", int32(v))
}

func definitionType(v schema.DefinitionType) (api.DefinitionType, error) {
	switch v {
	case schema.DefinitionTypeClassDef:
		return api.ClassDef, nil
	case schema.DefinitionTypeModule:
		return api.Module, nil
	case schema.DefinitionTypeTrait:
		return api.Trait, nil
	case schema.DefinitionTypePackageModule:
		return api.PackageModule, nil
	}
	return 0, derrors.UnrecognizedTag("DefinitionType", int32(v))
}
