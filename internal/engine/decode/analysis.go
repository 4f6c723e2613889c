package decode

import (
	derrors "incstate/internal/core/errors"
	"incstate/internal/data/schema"
	"incstate/internal/engine/analysis"
	"incstate/internal/engine/api"
	"incstate/internal/shared/util"
)

func (r *Reader) analysis(a *schema.Analysis) (*analysis.Analysis, error) {
	if a.Stamps == nil {
		return nil, derrors.MissingField("Analysis", "stamps")
	}
	if a.Relations == nil {
		return nil, derrors.MissingField("Analysis", "relations")
	}
	if a.SourceInfos == nil {
		return nil, derrors.MissingField("Analysis", "sourceInfos")
	}
	if a.Compilations == nil {
		return nil, derrors.MissingField("Analysis", "compilations")
	}

	stamps := r.stamps(a.Stamps)
	relations, err := r.relations(a.Relations)
	if err != nil {
		return nil, err
	}
	infos, err := r.sourceInfos(a.SourceInfos)
	if err != nil {
		return nil, err
	}
	compilations, err := each("Compilations", "compilations", a.Compilations.Compilations, r.compilation)
	if err != nil {
		return nil, err
	}

	return &analysis.Analysis{
		Stamps:       stamps,
		Relations:    relations,
		SourceInfos:  infos,
		Compilations: compilations,
	}, nil
}

func (r *Reader) stamps(s *schema.Stamps) analysis.Stamps {
	out := analysis.NewStamps()
	fill := func(into map[analysis.FileRef]analysis.Stamp, in map[string]*schema.StampType,
		mapFile func(analysis.FileRef) analysis.FileRef,
		mapStamp func(analysis.FileRef, analysis.Stamp) analysis.Stamp,
	) {
		for _, key := range util.SortedStringKeys(in) {
			file := mapFile(analysis.FileRef(key))
			into[file] = mapStamp(file, stamp(in[key]))
		}
	}
	fill(out.Binary, s.BinaryStamps, r.mapper.MapBinaryFile, r.mapper.MapBinaryStamp)
	fill(out.Source, s.SourceStamps, r.mapper.MapSourceFile, r.mapper.MapSourceStamp)
	fill(out.Product, s.ProductStamps, r.mapper.MapProductFile, r.mapper.MapProductStamp)
	return out
}

// stamp decodes a StampType; an unset union is the empty stamp.
func stamp(s *schema.StampType) analysis.Stamp {
	if s == nil {
		return analysis.EmptyStamp{}
	}
	switch v := s.Value.(type) {
	case *schema.Hash:
		if v == nil {
			break
		}
		return analysis.Hash{Value: v.Hash}
	case *schema.LastModified:
		if v == nil {
			break
		}
		return analysis.LastModified{Millis: v.Millis}
	}
	return analysis.EmptyStamp{}
}

func (r *Reader) relations(rel *schema.Relations) (*analysis.Relations, error) {
	for _, dep := range []struct {
		field string
		value *schema.ClassDependencies
	}{
		{"memberRef", rel.MemberRef},
		{"inheritance", rel.Inheritance},
		{"localInheritance", rel.LocalInheritance},
	} {
		if dep.value == nil {
			return nil, derrors.MissingField("Relations", dep.field)
		}
	}

	out := analysis.NewRelations()
	fileToFile(out.SrcProd, rel.SrcProd, r.mapper.MapSourceFile, r.mapper.MapProductFile)
	fileToFile(out.LibraryDep, rel.LibraryDep, r.mapper.MapSourceFile, r.mapper.MapBinaryFile)
	fileToName(out.LibraryClassName, rel.LibraryClassName, r.mapper.MapBinaryFile)
	fileToName(out.Classes, rel.Classes, r.mapper.MapSourceFile)
	nameToName(out.ProductClassName, rel.ProductClassName)

	byContext := map[analysis.DependencyContext]*schema.ClassDependencies{
		analysis.ByMemberRef:        rel.MemberRef,
		analysis.ByInheritance:      rel.Inheritance,
		analysis.LocalByInheritance: rel.LocalInheritance,
	}
	for ctx, deps := range byContext {
		nameToName(out.Internal[ctx], deps.Internal)
		nameToName(out.External[ctx], deps.External)
	}

	for _, class := range util.SortedStringKeys(rel.Names) {
		names := rel.Names[class]
		if names == nil {
			continue
		}
		for _, n := range names.UsedNames {
			if n == nil {
				return nil, derrors.AddContext(derrors.MissingField("UsedNames", "usedNames"), derrors.CtxPath, class)
			}
			used, err := usedName(n)
			if err != nil {
				return nil, derrors.AddContext(err, derrors.CtxPath, class)
			}
			out.Names.Add(class, used)
		}
	}
	return out, nil
}

func usedName(n *schema.UsedName) (analysis.UsedName, error) {
	var scopes api.UseScopes
	for _, s := range n.Scopes {
		scope, err := useScope(s)
		if err != nil {
			return analysis.UsedName{}, err
		}
		scopes = scopes.With(scope)
	}
	return analysis.UsedName{Name: n.Name, Scopes: scopes}, nil
}

func values(v *schema.Values) []string {
	if v == nil {
		return nil
	}
	return v.Values
}

func fileToFile(into *analysis.Relation[analysis.FileRef, analysis.FileRef], in map[string]*schema.Values,
	mapKey, mapValue func(analysis.FileRef) analysis.FileRef,
) {
	for key, vs := range in {
		k := mapKey(analysis.FileRef(key))
		for _, v := range values(vs) {
			into.Add(k, mapValue(analysis.FileRef(v)))
		}
	}
}

func fileToName(into *analysis.Relation[analysis.FileRef, string], in map[string]*schema.Values,
	mapKey func(analysis.FileRef) analysis.FileRef,
) {
	for key, vs := range in {
		k := mapKey(analysis.FileRef(key))
		for _, v := range values(vs) {
			into.Add(k, v)
		}
	}
}

func nameToName(into *analysis.Relation[string, string], in map[string]*schema.Values) {
	for key, vs := range in {
		for _, v := range values(vs) {
			into.Add(key, v)
		}
	}
}

func (r *Reader) sourceInfos(s *schema.SourceInfos) (analysis.SourceInfos, error) {
	out := make(analysis.SourceInfos, len(s.SourceInfos))
	for _, key := range util.SortedStringKeys(s.SourceInfos) {
		info, err := r.sourceInfo(s.SourceInfos[key])
		if err != nil {
			return nil, derrors.AddContext(err, derrors.CtxPath, key)
		}
		out[r.mapper.MapSourceFile(analysis.FileRef(key))] = info
	}
	return out, nil
}

func (r *Reader) sourceInfo(s *schema.SourceInfo) (analysis.SourceInfo, error) {
	if s == nil {
		return analysis.SourceInfo{}, nil
	}
	reported, err := each("SourceInfo", "reportedProblems", s.ReportedProblems, problem)
	if err != nil {
		return analysis.SourceInfo{}, err
	}
	unreported, err := each("SourceInfo", "unreportedProblems", s.UnreportedProblems, problem)
	if err != nil {
		return analysis.SourceInfo{}, err
	}
	return analysis.SourceInfo{
		ReportedProblems:   reported,
		UnreportedProblems: unreported,
		MainClasses:        append([]string(nil), s.MainClasses...),
	}, nil
}

func problem(p *schema.Problem) (analysis.Problem, error) {
	if p.Position == nil {
		return analysis.Problem{}, derrors.MissingField("Problem", "position")
	}
	sev, err := severity(p.Severity)
	if err != nil {
		return analysis.Problem{}, err
	}
	return analysis.Problem{
		Category: p.Category,
		Message:  p.Message,
		Severity: sev,
		Position: position(p.Position),
		Rendered: optString(p.Rendered),
	}, nil
}

// position keeps source paths as written; they are diagnostic text, not
// file identities.
func position(p *schema.Position) analysis.Position {
	return analysis.Position{
		Line:         optInt(p.Line),
		LineContent:  p.LineContent,
		Offset:       optInt(p.Offset),
		Pointer:      optInt(p.Pointer),
		PointerSpace: optString(p.PointerSpace),
		SourcePath:   optString(p.SourcePath),
		SourceFile:   optString(p.SourceFilepath),
		StartOffset:  optInt(p.StartOffset),
		EndOffset:    optInt(p.EndOffset),
		StartLine:    optInt(p.StartLine),
		StartColumn:  optInt(p.StartColumn),
		EndLine:      optInt(p.EndLine),
		EndColumn:    optInt(p.EndColumn),
	}
}
