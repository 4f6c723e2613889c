package decode

import (
	"incstate/internal/data/schema"
	"incstate/internal/engine/analysis"
	"incstate/internal/engine/api"
)

// Wire fixtures.

func pathType(names ...string) *schema.Type {
	p := &schema.Path{}
	for _, n := range names {
		p.Components = append(p.Components, &schema.PathComponent{Value: &schema.ID{ID: n}})
	}
	return &schema.Type{Value: &schema.Singleton{Path: p}}
}

func projection(prefix *schema.Type, id string) *schema.Type {
	return &schema.Type{Value: &schema.Projection{Prefix: prefix, ID: id}}
}

func intType() *schema.Type {
	return projection(pathType("scala"), "Int")
}

func publicAccess() *schema.Access {
	return &schema.Access{Value: &schema.Public{}}
}

func valDef(name string, t *schema.Type) *schema.ClassDefinition {
	return &schema.ClassDefinition{
		Name:      name,
		Access:    publicAccess(),
		Modifiers: &schema.Modifiers{},
		Extra:     &schema.Val{Type: t},
	}
}

func defDef(name string, params []*schema.MethodParameter, ret *schema.Type) *schema.ClassDefinition {
	return &schema.ClassDefinition{
		Name:      name,
		Access:    publicAccess(),
		Modifiers: &schema.Modifiers{},
		Extra: &schema.Def{
			ValueParameters: []*schema.ParameterList{{Parameters: params}},
			ReturnType:      ret,
		},
	}
}

func wireClassLike(name string, declared ...*schema.ClassDefinition) *schema.ClassLike {
	return &schema.ClassLike{
		Name:      name,
		Access:    publicAccess(),
		Modifiers: &schema.Modifiers{},
		SelfType:  &schema.Type{Value: &schema.EmptyType{}},
		Structure: &schema.Structure{Declared: declared},
		TopLevel:  true,
	}
}

func wireAPIsFile(declared ...*schema.ClassDefinition) *schema.APIsFile {
	return &schema.APIsFile{
		Version: schema.V1_1,
		Apis: &schema.APIs{
			Internal: map[string]*schema.AnalyzedClass{
				"a.A": {
					CompilationTimestamp: 1700000000000,
					Name:                 "a.A",
					Api: &schema.Companions{
						ClassApi:  wireClassLike("a.A", declared...),
						ObjectApi: wireClassLike("a.A"),
					},
					ApiHash: 11,
				},
			},
		},
	}
}

func wireAnalysisFile() *schema.AnalysisFile {
	return &schema.AnalysisFile{
		Version: schema.V1_1,
		Analysis: &schema.Analysis{
			Stamps: &schema.Stamps{
				SourceStamps: map[string]*schema.StampType{
					"/src/A.scala": {Value: &schema.Hash{Hash: "dead"}},
				},
			},
			Relations: &schema.Relations{
				MemberRef:        &schema.ClassDependencies{},
				Inheritance:      &schema.ClassDependencies{},
				LocalInheritance: &schema.ClassDependencies{},
			},
			SourceInfos:  &schema.SourceInfos{},
			Compilations: &schema.Compilations{},
		},
		MiniSetup: &schema.MiniSetup{
			Output:      &schema.SingleOutput{Target: "/out"},
			MiniOptions: &schema.MiniOptions{},
		},
	}
}

// Domain fixtures.

func sampleAnalysis() (*analysis.Analysis, *analysis.MiniSetup) {
	line, offset, startLine := int32(3), int32(0), int32(3)
	pointerSpace := "    "
	rendered := "[error] A.scala:3: type mismatch"

	stamps := analysis.NewStamps()
	stamps.Source["/src/A.scala"] = analysis.Hash{Value: "dead"}
	stamps.Source["/src/B.scala"] = analysis.EmptyStamp{}
	stamps.Binary["/lib/scala-library.jar"] = analysis.LastModified{Millis: 1700000000000}
	stamps.Product["/out/a/A.class"] = analysis.Hash{Value: "beef"}

	rel := analysis.NewRelations()
	rel.SrcProd.Add("/src/A.scala", "/out/a/A.class")
	rel.SrcProd.Add("/src/A.scala", "/out/a/A$.class")
	rel.LibraryDep.Add("/src/A.scala", "/lib/scala-library.jar")
	rel.LibraryClassName.Add("/lib/scala-library.jar", "scala.Int")
	rel.Internal[analysis.ByMemberRef].Add("a.A", "a.B")
	rel.Internal[analysis.LocalByInheritance].Add("a.A", "a.A$Local")
	rel.External[analysis.ByInheritance].Add("a.A", "scala.AnyRef")
	rel.Classes.Add("/src/A.scala", "a.A")
	rel.ProductClassName.Add("a.A", "a.A")
	rel.Names.Add("a.A", analysis.UsedName{Name: "foo", Scopes: api.ScopesOf(api.DefaultScope, api.ImplicitScope)})
	rel.Names.Add("a.A", analysis.UsedName{Name: "Bar", Scopes: api.ScopesOf(api.PatMatTargetScope)})

	a := &analysis.Analysis{
		Stamps:    stamps,
		Relations: rel,
		SourceInfos: analysis.SourceInfos{
			"/src/A.scala": {
				ReportedProblems: []analysis.Problem{{
					Category: "typer",
					Message:  "type mismatch",
					Severity: analysis.Error,
					Position: analysis.Position{
						Line:         &line,
						LineContent:  `  val x: Int = ""`,
						Offset:       &offset,
						PointerSpace: &pointerSpace,
						StartLine:    &startLine,
					},
					Rendered: &rendered,
				}},
				UnreportedProblems: []analysis.Problem{{
					Category: "lint",
					Message:  "unused import",
					Severity: analysis.Warn,
				}},
				MainClasses: []string{"a.Main"},
			},
			"/src/B.scala": {},
		},
		Compilations: []analysis.Compilation{
			{StartTime: 1700000000000, Output: &analysis.SingleOutput{OutputDir: "/out"}},
			{StartTime: 1700000001000, Output: &analysis.MultipleOutput{}},
		},
	}

	setup := &analysis.MiniSetup{
		Output: &analysis.MultipleOutput{Groups: []analysis.OutputGroup{
			{SourceDir: "/src/main", OutputDir: "/out/main"},
			{SourceDir: "/src/test", OutputDir: "/out/test"},
		}},
		Options: analysis.MiniOptions{
			ClasspathHash: []analysis.FileHash{{File: "/lib/scala-library.jar", Hash: -17}},
			ScalacOptions: []string{"-deprecation", "-Xfatal-warnings"},
			JavacOptions:  []string{"-g"},
		},
		CompilerVersion: "2.13.12",
		Order:           analysis.JavaThenScala,
		StoreAPIs:       true,
		Extra:           []analysis.KeyValue{{Key: "sbt.version", Value: "1.9.7"}},
	}
	return a, setup
}

// Domain to wire, the inverse of the Reader for the analysis side.

func encodeAnalysisFile(a *analysis.Analysis, s *analysis.MiniSetup) *schema.AnalysisFile {
	return &schema.AnalysisFile{
		Version: schema.V1_1,
		Analysis: &schema.Analysis{
			Stamps:       encodeStamps(a.Stamps),
			Relations:    encodeRelations(a.Relations),
			SourceInfos:  encodeSourceInfos(a.SourceInfos),
			Compilations: encodeCompilations(a.Compilations),
		},
		MiniSetup: encodeMiniSetup(s),
	}
}

func encodeStamps(s analysis.Stamps) *schema.Stamps {
	conv := func(in map[analysis.FileRef]analysis.Stamp) map[string]*schema.StampType {
		out := make(map[string]*schema.StampType, len(in))
		for f, st := range in {
			out[string(f)] = encodeStamp(st)
		}
		return out
	}
	return &schema.Stamps{
		BinaryStamps:  conv(s.Binary),
		SourceStamps:  conv(s.Source),
		ProductStamps: conv(s.Product),
	}
}

func encodeStamp(s analysis.Stamp) *schema.StampType {
	switch v := s.(type) {
	case analysis.Hash:
		return &schema.StampType{Value: &schema.Hash{Hash: v.Value}}
	case analysis.LastModified:
		return &schema.StampType{Value: &schema.LastModified{Millis: v.Millis}}
	}
	return &schema.StampType{}
}

func encodeRelation[A, B ~string](r *analysis.Relation[A, B]) map[string]*schema.Values {
	out := make(map[string]*schema.Values)
	for a, bs := range r.ForwardMap() {
		vs := make([]string, 0, len(bs))
		for _, b := range bs {
			vs = append(vs, string(b))
		}
		out[string(a)] = &schema.Values{Values: vs}
	}
	return out
}

func encodeRelations(r *analysis.Relations) *schema.Relations {
	deps := func(ctx analysis.DependencyContext) *schema.ClassDependencies {
		return &schema.ClassDependencies{
			Internal: encodeRelation(r.Internal[ctx]),
			External: encodeRelation(r.External[ctx]),
		}
	}
	names := make(map[string]*schema.UsedNames)
	for class, used := range r.Names.ForwardMap() {
		wire := &schema.UsedNames{}
		for _, u := range used {
			n := &schema.UsedName{Name: u.Name}
			for _, scope := range u.Scopes.List() {
				n.Scopes = append(n.Scopes, schema.UseScope(scope))
			}
			wire.UsedNames = append(wire.UsedNames, n)
		}
		names[class] = wire
	}
	return &schema.Relations{
		SrcProd:          encodeRelation(r.SrcProd),
		LibraryDep:       encodeRelation(r.LibraryDep),
		LibraryClassName: encodeRelation(r.LibraryClassName),
		MemberRef:        deps(analysis.ByMemberRef),
		Inheritance:      deps(analysis.ByInheritance),
		LocalInheritance: deps(analysis.LocalByInheritance),
		Classes:          encodeRelation(r.Classes),
		ProductClassName: encodeRelation(r.ProductClassName),
		Names:            names,
	}
}

func intOrMissing(v *int32) int32 {
	if v == nil {
		return MissingInt
	}
	return *v
}

func stringOrMissing(v *string) string {
	if v == nil {
		return MissingString
	}
	return *v
}

func encodePosition(p analysis.Position) *schema.Position {
	return &schema.Position{
		Line:           intOrMissing(p.Line),
		LineContent:    p.LineContent,
		Offset:         intOrMissing(p.Offset),
		Pointer:        intOrMissing(p.Pointer),
		PointerSpace:   stringOrMissing(p.PointerSpace),
		SourcePath:     stringOrMissing(p.SourcePath),
		SourceFilepath: stringOrMissing(p.SourceFile),
		StartOffset:    intOrMissing(p.StartOffset),
		EndOffset:      intOrMissing(p.EndOffset),
		StartLine:      intOrMissing(p.StartLine),
		StartColumn:    intOrMissing(p.StartColumn),
		EndLine:        intOrMissing(p.EndLine),
		EndColumn:      intOrMissing(p.EndColumn),
	}
}

func encodeProblems(ps []analysis.Problem) []*schema.Problem {
	var out []*schema.Problem
	for _, p := range ps {
		out = append(out, &schema.Problem{
			Category: p.Category,
			Message:  p.Message,
			Severity: schema.Severity(p.Severity),
			Position: encodePosition(p.Position),
			Rendered: stringOrMissing(p.Rendered),
		})
	}
	return out
}

func encodeSourceInfos(s analysis.SourceInfos) *schema.SourceInfos {
	out := &schema.SourceInfos{SourceInfos: make(map[string]*schema.SourceInfo, len(s))}
	for f, info := range s {
		out.SourceInfos[string(f)] = &schema.SourceInfo{
			ReportedProblems:   encodeProblems(info.ReportedProblems),
			UnreportedProblems: encodeProblems(info.UnreportedProblems),
			MainClasses:        info.MainClasses,
		}
	}
	return out
}

func encodeOutput(o analysis.Output) schema.Output {
	switch v := o.(type) {
	case *analysis.SingleOutput:
		return &schema.SingleOutput{Target: string(v.OutputDir)}
	case *analysis.MultipleOutput:
		out := &schema.MultipleOutput{}
		for _, g := range v.Groups {
			out.OutputGroups = append(out.OutputGroups, &schema.OutputGroup{
				SourcePath: string(g.SourceDir),
				TargetPath: string(g.OutputDir),
			})
		}
		return out
	}
	return nil
}

func encodeCompilations(cs []analysis.Compilation) *schema.Compilations {
	out := &schema.Compilations{}
	for _, c := range cs {
		out.Compilations = append(out.Compilations, &schema.Compilation{
			StartTimeMillis: c.StartTime,
			Output:          encodeOutput(c.Output),
		})
	}
	return out
}

func encodeMiniSetup(s *analysis.MiniSetup) *schema.MiniSetup {
	opts := &schema.MiniOptions{
		ScalacOptions: s.Options.ScalacOptions,
		JavacOptions:  s.Options.JavacOptions,
	}
	for _, h := range s.Options.ClasspathHash {
		opts.ClasspathHash = append(opts.ClasspathHash, &schema.FileHash{Path: string(h.File), Hash: h.Hash})
	}
	out := &schema.MiniSetup{
		Output:          encodeOutput(s.Output),
		MiniOptions:     opts,
		CompilerVersion: s.CompilerVersion,
		CompileOrder:    schema.CompileOrder(s.Order),
		StoreApis:       s.StoreAPIs,
	}
	for _, kv := range s.Extra {
		out.Extra = append(out.Extra, &schema.Tuple{First: kv.Key, Second: kv.Value})
	}
	return out
}
