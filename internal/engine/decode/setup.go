package decode

import (
	derrors "incstate/internal/core/errors"
	"incstate/internal/data/schema"
	"incstate/internal/engine/analysis"
)

func (r *Reader) compilation(c *schema.Compilation) (analysis.Compilation, error) {
	out, err := r.output(c.Output)
	if err != nil {
		return analysis.Compilation{}, err
	}
	return analysis.Compilation{StartTime: c.StartTimeMillis, Output: out}, nil
}

func (r *Reader) output(o schema.Output) (analysis.Output, error) {
	switch v := o.(type) {
	case *schema.SingleOutput:
		if v == nil {
			break
		}
		return &analysis.SingleOutput{
			OutputDir: r.mapper.MapOutputDir(analysis.FileRef(v.Target)),
		}, nil
	case *schema.MultipleOutput:
		if v == nil {
			break
		}
		var groups []analysis.OutputGroup
		for _, g := range v.OutputGroups {
			if g == nil {
				return nil, derrors.MissingField("MultipleOutput", "outputGroups")
			}
			groups = append(groups, analysis.OutputGroup{
				SourceDir: r.mapper.MapSourceDir(analysis.FileRef(g.SourcePath)),
				OutputDir: r.mapper.MapOutputDir(analysis.FileRef(g.TargetPath)),
			})
		}
		return &analysis.MultipleOutput{Groups: groups}, nil
	}
	return nil, derrors.EmptyPayload("Output")
}

func (r *Reader) miniSetup(s *schema.MiniSetup) (*analysis.MiniSetup, error) {
	out, err := r.output(s.Output)
	if err != nil {
		return nil, err
	}
	if s.MiniOptions == nil {
		return nil, derrors.MissingField("MiniSetup", "miniOptions")
	}
	order, err := compileOrder(s.CompileOrder)
	if err != nil {
		return nil, err
	}

	options, err := r.miniOptions(s.MiniOptions)
	if err != nil {
		return nil, err
	}

	setup := &analysis.MiniSetup{
		Output:          out,
		Options:         options,
		CompilerVersion: s.CompilerVersion,
		Order:           order,
		StoreAPIs:       s.StoreApis,
	}
	for _, kv := range s.Extra {
		if kv == nil {
			return nil, derrors.MissingField("MiniSetup", "extra")
		}
		setup.Extra = append(setup.Extra, analysis.KeyValue{Key: kv.First, Value: kv.Second})
	}
	return r.mapper.MapMiniSetup(setup), nil
}

func (r *Reader) miniOptions(o *schema.MiniOptions) (analysis.MiniOptions, error) {
	var out analysis.MiniOptions
	for _, h := range o.ClasspathHash {
		if h == nil {
			return analysis.MiniOptions{}, derrors.MissingField("MiniOptions", "classpathHash")
		}
		file := r.mapper.MapClasspathEntry(analysis.FileRef(h.Path))
		out.ClasspathHash = append(out.ClasspathHash, analysis.FileHash{
			File: file,
			Hash: r.mapper.MapClasspathHash(file, h.Hash),
		})
	}
	for _, opt := range o.ScalacOptions {
		out.ScalacOptions = append(out.ScalacOptions, r.mapper.MapCompilerOption(opt))
	}
	for _, opt := range o.JavacOptions {
		out.JavacOptions = append(out.JavacOptions, r.mapper.MapCompilerOption(opt))
	}
	return out, nil
}
