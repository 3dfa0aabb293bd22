// Package driver runs the binder over many files: loading, decoding,
// building the semantic model, early errors, caching and progress.
package driver

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"jsbind/internal/ast"
	"jsbind/internal/checker"
	"jsbind/internal/config"
	"jsbind/internal/diag"
	"jsbind/internal/observ"
	"jsbind/internal/semantic"
	"jsbind/internal/source"
	"jsbind/internal/trace"
)

// Options control one AnalyzeFiles run.
type Options struct {
	Jobs           int
	MaxDiagnostics int
	SourceType     config.SourceTypeMode
	ModuleRecord   bool
	EarlyErrors    bool
	TypeScript     bool
	// Timings appends an ObsTimings diagnostic to every file's bag.
	Timings bool
	// NeedSemantic keeps the semantic model in the results; cached results
	// carry none, so the cache is only read when this is false.
	NeedSemantic bool
	Cache        *DiskCache
	Progress     ProgressSink
	Tracer       trace.Tracer
	BaseDir      string
	// JSDoc attaches documentation comments; only the symbols dump reads them.
	JSDoc bool
}

// OptionsFromConfig maps a loaded jsbind.toml onto driver options.
func OptionsFromConfig(cfg config.Config) Options {
	return Options{
		Jobs:           cfg.Run.Jobs,
		MaxDiagnostics: cfg.Output.MaxDiagnostics,
		SourceType:     cfg.Analysis.SourceType,
		ModuleRecord:   cfg.Analysis.ModuleRecord,
		EarlyErrors:    cfg.Analysis.EarlyErrors,
		TypeScript:     cfg.Analysis.TypeScript,
	}
}

// FileResult is the outcome for one input file.
type FileResult struct {
	// Path is the ESTree input as given.
	Path string
	// FileID identifies the source text in the returned FileSet; spans in
	// Bag point at it.
	FileID     source.FileID
	SourceType ast.SourceType
	// Semantic is nil when decoding failed or the result came from the cache.
	Semantic *semantic.Semantic
	Bag      *diag.Bag
	Stats    semantic.Stats
	Timing   *observ.Report
	Cached   bool
}

// input is what the sequential preload prepares for a worker.
type input struct {
	path    string
	estree  []byte
	fileID  source.FileID
	loadErr error
}

// SourcePath returns the path the source text is expected at: the input
// path without its ".json" suffix. ok is false for inputs that are not
// named like an ESTree dump.
func SourcePath(path string) (string, bool) {
	if !strings.EqualFold(filepath.Ext(path), ".json") {
		return "", false
	}
	return path[:len(path)-len(".json")], true
}

// ListFiles expands directories into the sorted list of *.json files below
// them; plain file arguments are kept as given.
func ListFiles(args []string) ([]string, error) {
	var files []string
	for _, arg := range args {
		info, err := os.Stat(arg)
		if err != nil {
			// несуществующий путь попадёт в результаты как IO-диагностика
			files = append(files, arg)
			continue
		}
		if !info.IsDir() {
			files = append(files, arg)
			continue
		}
		var found []string
		err = filepath.WalkDir(arg, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() && path != arg && strings.HasPrefix(d.Name(), ".") {
				return filepath.SkipDir
			}
			if !d.IsDir() && strings.HasSuffix(path, ".json") {
				found = append(found, path)
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
		// Сортируем для детерминированного порядка
		sort.Strings(found)
		files = append(files, found...)
	}
	return files, nil
}

// AnalyzeFiles analyses every path in parallel and returns the results in
// input order. A per-file failure never aborts the run; it becomes a
// diagnostic in that file's bag. The returned error is only set when ctx is
// cancelled.
func AnalyzeFiles(ctx context.Context, paths []string, opts Options) (*source.FileSet, []FileResult, error) {
	fileSet := source.NewFileSet()
	if opts.BaseDir != "" {
		fileSet.SetBaseDir(opts.BaseDir)
	}
	tracer := opts.Tracer
	if tracer == nil {
		tracer = trace.FromContext(ctx)
	}
	runSpan := trace.Begin(tracer, trace.ScopeDriver, "analyze", 0)
	defer runSpan.End(fmt.Sprintf("%d files", len(paths)))

	if len(paths) == 0 {
		return fileSet, nil, nil
	}

	// FileSet не потокобезопасен: всё читаем заранее и последовательно.
	inputs := make([]input, len(paths))
	for i, path := range paths {
		emit(opts.Progress, Event{File: path, Stage: StageLoad, Status: StatusQueued})
		inputs[i] = preload(fileSet, path)
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	// индексы уникальны для каждой горутины, мьютекс не нужен
	results := make([]FileResult, len(paths))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(paths)))
	for i := range inputs {
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}
			results[i] = analyzeOne(fileSet, &inputs[i], &opts, tracer, runSpan.Anchor())
			return nil
		})
	}
	err := g.Wait()
	emit(opts.Progress, Event{Stage: StageAnalyze, Status: StatusDone})
	return fileSet, results, err
}

func preload(fileSet *source.FileSet, path string) input {
	in := input{path: path}
	data, err := os.ReadFile(path) // #nosec G304 -- path is provided by the caller
	if err != nil {
		in.loadErr = err
		in.fileID = fileSet.Add(path, nil, source.FileNoText)
		return in
	}
	in.estree = data
	srcPath, ok := SourcePath(path)
	if !ok {
		in.fileID = fileSet.Add(path, nil, source.FileNoText)
		return in
	}
	if id, err := fileSet.Load(srcPath); err == nil {
		in.fileID = id
	} else {
		in.fileID = fileSet.Add(srcPath, nil, source.FileNoText)
	}
	return in
}

// resolveSourceType combines the file name, the Program's sourceType and the
// configured mode.
func resolveSourceType(path string, prog *ast.Program, mode config.SourceTypeMode) ast.SourceType {
	name := path
	if src, ok := SourcePath(path); ok {
		name = src
	}
	st := ast.SourceTypeFromPath(name)
	switch mode {
	case config.SourceScript:
		st.Module = false
	case config.SourceModule:
		st.Module = true
	default:
		if prog != nil && prog.SourceType.Module {
			st.Module = true
		}
	}
	return st
}

func analyzeOne(fileSet *source.FileSet, in *input, opts *Options, tracer trace.Tracer, parent uint64) (res FileResult) {
	res = FileResult{
		Path:   in.path,
		FileID: in.fileID,
		Bag:    diag.NewBag(opts.MaxDiagnostics),
	}
	fileSpan := trace.Begin(tracer, trace.ScopeModule, "file", parent).WithExtra("path", in.path)
	timer := observ.NewTimer()
	started := time.Now()
	defer func() {
		report := timer.Report()
		res.Timing = &report
		if opts.Timings {
			appendTimingDiagnostic(res.Bag, timingPayload{Path: in.path, Cached: res.Cached, TotalMS: report.TotalMS, Phases: report.Phases})
		}
		status := StatusDone
		switch {
		case res.Cached:
			status = StatusCached
		case res.Bag.HasErrors():
			status = StatusError
		}
		emit(opts.Progress, Event{File: in.path, Stage: StageSemantic, Status: status, Elapsed: time.Since(started)})
		fileSpan.End(string(status))
	}()

	if in.loadErr != nil {
		res.Bag.Add(diag.NewError(diag.IOLoadFileError, source.Span{File: in.fileID}, "failed to load file: "+in.loadErr.Error()))
		return res
	}
	file := fileSet.Get(in.fileID)

	emit(opts.Progress, Event{File: in.path, Stage: StageDecode, Status: StatusWorking})
	done := timer.Track("decode")
	prog, err := ast.DecodeESTree(in.estree, in.fileID)
	if err != nil {
		done("failed")
		reportDecodeError(res.Bag, in.fileID, err)
		res.SourceType = resolveSourceType(in.path, nil, opts.SourceType)
		return res
	}
	done("")
	res.SourceType = resolveSourceType(in.path, prog, opts.SourceType)

	var key Key
	if opts.Cache != nil {
		key = cacheKey(in.estree, file.Content, opts, res.SourceType.String())
		if !opts.NeedSemantic {
			done := timer.Track("cache")
			var cached CachedResult
			ok, err := opts.Cache.Get(key, &cached)
			switch {
			case err != nil:
				done("read failed")
				res.Bag.Add(diag.New(diag.SevWarning, diag.IOCacheError, source.Span{File: in.fileID}, "result cache: "+err.Error()))
			case ok:
				done("hit")
				trace.Point(tracer, trace.ScopeModule, "cache_hit", fileSpan.Anchor(), in.path)
				cached.restore(res.Bag, in.fileID)
				res.Stats = cached.Stats
				res.Cached = true
				return res
			default:
				done("miss")
			}
		}
	}

	emit(opts.Progress, Event{File: in.path, Stage: StageSemantic, Status: StatusWorking})
	done = timer.Track("semantic")
	built, err := build(prog, res.SourceType, string(file.Content), file.Path, opts, tracer, fileSpan.Anchor())
	if err != nil {
		done("invariant")
		res.Bag.Add(diag.NewError(diag.InternalInvariant, source.Span{File: in.fileID}, err.Error()))
		return res
	}
	done(built.Semantic.Stats.String())
	res.Semantic = built.Semantic
	res.Stats = built.Semantic.Stats
	res.Bag.Merge(built.Diagnostics)
	res.Bag.Sort()

	if opts.Cache != nil {
		if err := opts.Cache.Put(key, toCachedResult(&res)); err != nil {
			res.Bag.Add(diag.New(diag.SevWarning, diag.IOCacheError, source.Span{File: in.fileID}, "result cache: "+err.Error()))
		}
	}
	if !opts.NeedSemantic {
		res.Semantic = nil
	}
	return res
}

// build runs semantic.Build and turns an invariant panic into an error.
func build(prog *ast.Program, st ast.SourceType, text, path string, opts *Options, tracer trace.Tracer, parent uint64) (res *semantic.Result, err error) {
	defer func() {
		if r := recover(); r != nil {
			perr, ok := r.(error)
			if !ok || !semantic.IsInvariantError(perr) {
				panic(r)
			}
			err = perr
		}
	}()
	var early semantic.EarlyChecker
	if opts.EarlyErrors {
		early = &checker.Checker{SkipTypeScript: !opts.TypeScript}
	}
	return semantic.Build(prog, semantic.Options{
		SourceType:     st,
		SourceText:     text,
		Path:           path,
		ModuleRecord:   opts.ModuleRecord,
		Checker:        early,
		Tracer:         tracer,
		ParentSpan:     parent,
		MaxDiagnostics: opts.MaxDiagnostics,
		JSDoc:          opts.JSDoc,
	}), nil
}

func reportDecodeError(bag *diag.Bag, file source.FileID, err error) {
	var de *ast.DecodeError
	if !errors.As(err, &de) {
		bag.Add(diag.NewError(diag.DecMalformedJSON, source.Span{File: file}, err.Error()))
		return
	}
	code := diag.DecMalformedJSON
	switch de.Kind {
	case ast.DecodeUnknownNode:
		code = diag.DecUnknownNode
	case ast.DecodeMissingField:
		code = diag.DecMissingField
	case ast.DecodeUnsupported:
		code = diag.DecUnsupported
	}
	sp := de.Span
	sp.File = file
	bag.Add(diag.NewError(code, sp, de.Error()))
}
