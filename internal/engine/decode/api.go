package decode

import (
	derrors "incstate/internal/core/errors"
	"incstate/internal/data/schema"
	"incstate/internal/engine/analysis"
	"incstate/internal/engine/api"
	"incstate/internal/shared/util"
)

func (r *Reader) apis(a *schema.APIs) (*analysis.APIs, error) {
	internal, err := r.classes(a.Internal)
	if err != nil {
		return nil, err
	}
	external, err := r.classes(a.External)
	if err != nil {
		return nil, err
	}
	return &analysis.APIs{Internal: internal, External: external}, nil
}

// classes decodes a class map in name order so the reported error does not
// depend on map iteration.
func (r *Reader) classes(m map[string]*schema.AnalyzedClass) (map[string]*api.AnalyzedClass, error) {
	out := make(map[string]*api.AnalyzedClass, len(m))
	for _, name := range util.SortedStringKeys(m) {
		c, err := r.analyzedClass(m[name])
		if err != nil {
			return nil, derrors.AddContext(err, derrors.CtxPath, name)
		}
		out[name] = c
	}
	return out, nil
}

func (r *Reader) analyzedClass(c *schema.AnalyzedClass) (*api.AnalyzedClass, error) {
	if c == nil || c.Api == nil {
		return nil, derrors.MissingField("AnalyzedClass", "api")
	}
	companions, err := r.companions(c.Api)
	if err != nil {
		return nil, err
	}
	hashes, err := each("AnalyzedClass", "nameHashes", c.NameHashes, nameHash)
	if err != nil {
		return nil, err
	}

	out := api.NewAnalyzedClass(c.Name, api.Strict(companions))
	out.CompilationTimestamp = c.CompilationTimestamp
	out.APIHash = c.ApiHash
	out.NameHashes = hashes
	out.HasMacro = c.HasMacro
	out.ExtraHash = c.ExtraHash
	out.Provenance = c.Provenance
	return out, nil
}

func nameHash(h *schema.NameHash) (api.NameHash, error) {
	scope, err := useScope(h.Scope)
	if err != nil {
		return api.NameHash{}, err
	}
	return api.NameHash{Name: h.Name, Scope: scope, Hash: h.Hash}, nil
}

func (r *Reader) companions(c *schema.Companions) (api.Companions, error) {
	if c.ClassApi == nil {
		return api.Companions{}, derrors.MissingField("Companions", "classApi")
	}
	if c.ObjectApi == nil {
		return api.Companions{}, derrors.MissingField("Companions", "objectApi")
	}
	classAPI, err := r.classLike(c.ClassApi)
	if err != nil {
		return api.Companions{}, err
	}
	objectAPI, err := r.classLike(c.ObjectApi)
	if err != nil {
		return api.Companions{}, err
	}
	return api.Companions{ClassAPI: classAPI, ObjectAPI: objectAPI}, nil
}

func (r *Reader) classLike(c *schema.ClassLike) (*api.ClassLike, error) {
	h, err := r.header("ClassLike", c.Name, c.Access, c.Modifiers, c.Annotations)
	if err != nil {
		return nil, err
	}
	kind, err := definitionType(c.DefinitionType)
	if err != nil {
		return nil, err
	}
	self, err := r.requiredType(c.SelfType, "ClassLike", "selfType")
	if err != nil {
		return nil, err
	}
	if c.Structure == nil {
		return nil, derrors.MissingField("ClassLike", "structure")
	}
	structure, err := r.structure(c.Structure)
	if err != nil {
		return nil, err
	}
	children, err := each("ClassLike", "childrenOfSealedClass", c.ChildrenOfSealedClass, r.typ)
	if err != nil {
		return nil, err
	}
	params, err := each("ClassLike", "typeParameters", c.TypeParameters, r.typeParameter)
	if err != nil {
		return nil, err
	}

	out := api.NewClassLike(h, kind, api.Strict(self), api.Strict(structure))
	out.SavedAnnotations = append([]string(nil), c.SavedAnnotations...)
	out.SealedChildren = children
	out.TopLevel = c.TopLevel
	out.TypeParams = params
	return out, nil
}

func (r *Reader) structure(s *schema.Structure) (*api.Structure, error) {
	parents, err := each("Structure", "parents", s.Parents, r.typ)
	if err != nil {
		return nil, err
	}
	declared, err := each("Structure", "declared", s.Declared, r.definition)
	if err != nil {
		return nil, err
	}
	inherited, err := each("Structure", "inherited", s.Inherited, r.definition)
	if err != nil {
		return nil, err
	}
	return api.NewStructure(api.Strict(parents), api.Strict(declared), api.Strict(inherited)), nil
}

func (r *Reader) header(shape, name string, access *schema.Access, mods *schema.Modifiers, annotations []*schema.Annotation) (api.Header, error) {
	a, err := r.access(access, shape)
	if err != nil {
		return api.Header{}, err
	}
	if mods == nil {
		return api.Header{}, derrors.MissingField(shape, "modifiers")
	}
	anns, err := each(shape, "annotations", annotations, r.annotation)
	if err != nil {
		return api.Header{}, err
	}
	return api.Header{
		Name:        name,
		Access:      a,
		Modifiers:   api.Modifiers(mods.Flags),
		Annotations: anns,
	}, nil
}

func (r *Reader) definition(d *schema.ClassDefinition) (api.Definition, error) {
	h, err := r.header("ClassDefinition", d.Name, d.Access, d.Modifiers, d.Annotations)
	if err != nil {
		return nil, err
	}

	switch v := d.Extra.(type) {
	case *schema.ClassLikeDef:
		if v == nil {
			break
		}
		params, err := each("ClassLikeDef", "typeParameters", v.TypeParameters, r.typeParameter)
		if err != nil {
			return nil, err
		}
		kind, err := definitionType(v.DefinitionType)
		if err != nil {
			return nil, err
		}
		return &api.ClassLikeDef{Header: h, TypeParams: params, Kind: kind}, nil

	case *schema.Def:
		if v == nil {
			break
		}
		params, err := each("Def", "typeParameters", v.TypeParameters, r.typeParameter)
		if err != nil {
			return nil, err
		}
		lists, err := each("Def", "valueParameters", v.ValueParameters, r.parameterList)
		if err != nil {
			return nil, err
		}
		ret, err := r.requiredType(v.ReturnType, "Def", "returnType")
		if err != nil {
			return nil, err
		}
		return &api.Def{Header: h, TypeParams: params, ValueParams: lists, ReturnType: ret}, nil

	case *schema.Val:
		if v == nil {
			break
		}
		t, err := r.requiredType(v.Type, "Val", "type")
		if err != nil {
			return nil, err
		}
		return &api.Val{Header: h, Type: t}, nil

	case *schema.Var:
		if v == nil {
			break
		}
		t, err := r.requiredType(v.Type, "Var", "type")
		if err != nil {
			return nil, err
		}
		return &api.Var{Header: h, Type: t}, nil

	case *schema.TypeAlias:
		if v == nil {
			break
		}
		params, err := each("TypeAlias", "typeParameters", v.TypeParameters, r.typeParameter)
		if err != nil {
			return nil, err
		}
		t, err := r.requiredType(v.Type, "TypeAlias", "type")
		if err != nil {
			return nil, err
		}
		return &api.TypeAlias{Header: h, TypeParams: params, Type: t}, nil

	case *schema.TypeDeclaration:
		if v == nil {
			break
		}
		params, err := each("TypeDeclaration", "typeParameters", v.TypeParameters, r.typeParameter)
		if err != nil {
			return nil, err
		}
		lower, err := r.requiredType(v.LowerBound, "TypeDeclaration", "lowerBound")
		if err != nil {
			return nil, err
		}
		upper, err := r.requiredType(v.UpperBound, "TypeDeclaration", "upperBound")
		if err != nil {
			return nil, err
		}
		return &api.TypeDeclaration{Header: h, TypeParams: params, LowerBound: lower, UpperBound: upper}, nil
	}
	return nil, derrors.EmptyPayload("ClassDefinition")
}

func (r *Reader) parameterList(l *schema.ParameterList) (api.ParameterList, error) {
	params, err := each("ParameterList", "parameters", l.Parameters, r.methodParameter)
	if err != nil {
		return api.ParameterList{}, err
	}
	return api.ParameterList{Params: params, Implicit: l.IsImplicit}, nil
}

func (r *Reader) methodParameter(p *schema.MethodParameter) (api.MethodParameter, error) {
	t, err := r.requiredType(p.Type, "MethodParameter", "type")
	if err != nil {
		return api.MethodParameter{}, err
	}
	mod, err := parameterModifier(p.Modifier)
	if err != nil {
		return api.MethodParameter{}, err
	}
	return api.MethodParameter{Name: p.Name, Type: t, HasDefault: p.HasDefault, Modifier: mod}, nil
}

func (r *Reader) typeParameter(p *schema.TypeParameter) (api.TypeParameter, error) {
	anns, err := each("TypeParameter", "annotations", p.Annotations, r.annotation)
	if err != nil {
		return api.TypeParameter{}, err
	}
	nested, err := each("TypeParameter", "typeParameters", p.TypeParameters, r.typeParameter)
	if err != nil {
		return api.TypeParameter{}, err
	}
	v, err := variance(p.Variance)
	if err != nil {
		return api.TypeParameter{}, err
	}
	lower, err := r.requiredType(p.LowerBound, "TypeParameter", "lowerBound")
	if err != nil {
		return api.TypeParameter{}, err
	}
	upper, err := r.requiredType(p.UpperBound, "TypeParameter", "upperBound")
	if err != nil {
		return api.TypeParameter{}, err
	}
	return api.TypeParameter{
		ID:          p.ID,
		Annotations: anns,
		TypeParams:  nested,
		Variance:    v,
		LowerBound:  lower,
		UpperBound:  upper,
	}, nil
}

func (r *Reader) annotation(a *schema.Annotation) (api.Annotation, error) {
	base, err := r.requiredType(a.Base, "Annotation", "base")
	if err != nil {
		return api.Annotation{}, err
	}
	args, err := each("Annotation", "arguments", a.Arguments, func(arg *schema.AnnotationArgument) (api.AnnotationArgument, error) {
		return api.AnnotationArgument{Name: arg.Name, Value: arg.Value}, nil
	})
	if err != nil {
		return api.Annotation{}, err
	}
	return api.Annotation{Base: base, Args: args}, nil
}

func (r *Reader) access(a *schema.Access, shape string) (api.Access, error) {
	if a == nil {
		return nil, derrors.MissingField(shape, "access")
	}
	switch v := a.Value.(type) {
	case *schema.Public:
		return &api.Public{}, nil
	case *schema.Protected:
		if v == nil {
			break
		}
		q, err := r.qualifier(v.Qualifier, "Protected")
		if err != nil {
			return nil, err
		}
		return &api.Protected{Qualifier: q}, nil
	case *schema.Private:
		if v == nil {
			break
		}
		q, err := r.qualifier(v.Qualifier, "Private")
		if err != nil {
			return nil, err
		}
		return &api.Private{Qualifier: q}, nil
	}
	return nil, derrors.EmptyPayload("Access")
}

func (r *Reader) qualifier(q *schema.Qualifier, shape string) (api.Qualifier, error) {
	if q == nil {
		return nil, derrors.MissingField(shape, "qualifier")
	}
	switch v := q.Value.(type) {
	case *schema.ThisQualifier:
		return &api.ThisQualifier{}, nil
	case *schema.IDQualifier:
		if v == nil {
			break
		}
		return &api.IDQualifier{Value: v.Value}, nil
	case *schema.Unqualified:
		return &api.Unqualified{}, nil
	}
	return nil, derrors.EmptyPayload("Qualifier")
}

func (r *Reader) requiredType(t *schema.Type, shape, field string) (api.Type, error) {
	if t == nil {
		return nil, derrors.MissingField(shape, field)
	}
	return r.typ(t)
}

func (r *Reader) typ(t *schema.Type) (api.Type, error) {
	if t == nil {
		return nil, derrors.EmptyPayload("Type")
	}

	switch v := t.Value.(type) {
	case *schema.ParameterRef:
		if v == nil {
			break
		}
		return &api.ParameterRef{ID: v.ID}, nil

	case *schema.Parameterized:
		if v == nil {
			break
		}
		base, err := r.requiredType(v.BaseType, "Parameterized", "baseType")
		if err != nil {
			return nil, err
		}
		args, err := each("Parameterized", "typeArguments", v.TypeArguments, r.typ)
		if err != nil {
			return nil, err
		}
		return &api.Parameterized{Base: base, Args: args}, nil

	case *schema.Structure:
		if v == nil {
			break
		}
		s, err := r.structure(v)
		if err != nil {
			return nil, err
		}
		return s, nil

	case *schema.Polymorphic:
		if v == nil {
			break
		}
		base, err := r.requiredType(v.BaseType, "Polymorphic", "baseType")
		if err != nil {
			return nil, err
		}
		params, err := each("Polymorphic", "typeParameters", v.TypeParameters, r.typeParameter)
		if err != nil {
			return nil, err
		}
		return &api.Polymorphic{Base: base, Params: params}, nil

	case *schema.Constant:
		if v == nil {
			break
		}
		base, err := r.requiredType(v.BaseType, "Constant", "baseType")
		if err != nil {
			return nil, err
		}
		return &api.Constant{Base: base, Value: v.Value}, nil

	case *schema.Existential:
		if v == nil {
			break
		}
		base, err := r.requiredType(v.BaseType, "Existential", "baseType")
		if err != nil {
			return nil, err
		}
		clause, err := each("Existential", "clause", v.Clause, r.typeParameter)
		if err != nil {
			return nil, err
		}
		return &api.Existential{Base: base, Clause: clause}, nil

	case *schema.Singleton:
		if v == nil {
			break
		}
		if v.Path == nil {
			return nil, derrors.MissingField("Singleton", "path")
		}
		p, err := r.path(v.Path)
		if err != nil {
			return nil, err
		}
		return &api.Singleton{Path: p}, nil

	case *schema.Projection:
		if v == nil {
			break
		}
		prefix, err := r.requiredType(v.Prefix, "Projection", "prefix")
		if err != nil {
			return nil, err
		}
		return &api.Projection{Prefix: prefix, ID: v.ID}, nil

	case *schema.Annotated:
		if v == nil {
			break
		}
		base, err := r.requiredType(v.BaseType, "Annotated", "baseType")
		if err != nil {
			return nil, err
		}
		anns, err := each("Annotated", "annotations", v.Annotations, r.annotation)
		if err != nil {
			return nil, err
		}
		return &api.Annotated{Base: base, Annotations: anns}, nil

	case *schema.EmptyType:
		return &api.EmptyType{}, nil
	}
	return nil, derrors.EmptyPayload("Type")
}

func (r *Reader) path(p *schema.Path) (api.Path, error) {
	components, err := each("Path", "components", p.Components, r.pathComponent)
	if err != nil {
		return api.Path{}, err
	}
	return api.Path{Components: components}, nil
}

func (r *Reader) pathComponent(c *schema.PathComponent) (api.PathComponent, error) {
	if c == nil {
		return nil, derrors.EmptyPayload("PathComponent")
	}
	switch v := c.Value.(type) {
	case *schema.ID:
		if v == nil {
			break
		}
		return &api.ID{Name: v.ID}, nil
	case *schema.Super:
		if v == nil {
			break
		}
		if v.Qualifier == nil {
			return nil, derrors.MissingField("Super", "qualifier")
		}
		q, err := r.path(v.Qualifier)
		if err != nil {
			return nil, err
		}
		return &api.Super{Qualifier: q}, nil
	case *schema.This:
		return &api.This{}, nil
	}
	return nil, derrors.EmptyPayload("PathComponent")
}
