package driver

import (
	"context"
	"fmt"
	"runtime"
	"strconv"
	"time"

	"golang.org/x/sync/errgroup"

	"lunar/internal/diag"
	"lunar/internal/dialect"
	"lunar/internal/pipeline"
	"lunar/internal/project"
	"lunar/internal/source"
	"lunar/internal/trace"
)

// CheckOptions configures a multi-file run.
type CheckOptions struct {
	Options
	// Jobs bounds parallel workers; zero means GOMAXPROCS.
	Jobs    int
	Cache   *DiskCache
	Sink    pipeline.ProgressSink
	BaseDir string
	// Timings appends an OBS6001 diagnostic with the phase report.
	Timings bool
}

// FileReport is the outcome for one file.
type FileReport struct {
	Path   string
	FileID source.FileID
	Bag    *diag.Bag
	Cached bool
	// Minimal is the detected dialect name, empty when detection was off.
	Minimal string
	Elapsed time.Duration
	// LoadErr is set when the file could not be read; FileID is then unset.
	LoadErr error
}

// CheckResult aggregates every FileReport.
type CheckResult struct {
	FileSet *source.FileSet
	Files   []FileReport
	// Bag holds every diagnostic, sorted by file and position.
	Bag *diag.Bag
}

// HasErrors reports whether any file produced an error diagnostic.
func (r *CheckResult) HasErrors() bool {
	return r != nil && r.Bag.HasErrors()
}

// Check parses files in parallel. Results keep the order of files.
func Check(ctx context.Context, files []string, opts CheckOptions) (*CheckResult, error) {
	runSpan := trace.Begin(opts.Tracer, trace.ScopeDriver, "check", 0).
		WithExtra("files", strconv.Itoa(len(files)))
	defer func() { runSpan.End("") }()

	fileSet := source.NewFileSetWithBase(opts.BaseDir)
	reports := make([]FileReport, len(files))

	pipeline.EmitQueued(opts.Sink, files)
	opts.Timer.Measure("load", func() string {
		loaded := 0
		for i, path := range files {
			reports[i].Path = path
			start := time.Now()
			pipeline.Emit(opts.Sink, path, pipeline.StageLoad, pipeline.StatusWorking, nil, 0)
			id, err := fileSet.Load(path)
			if err != nil {
				reports[i].LoadErr = err
				pipeline.Emit(opts.Sink, path, pipeline.StageLoad, pipeline.StatusError, err, time.Since(start))
				continue
			}
			reports[i].FileID = id
			loaded++
		}
		return strconv.Itoa(loaded) + " files"
	})

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	fileOpts := opts.Options
	fileOpts.Timer = nil

	var runErr error
	opts.Timer.Measure("parse", func() string {
		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(max(1, min(jobs, len(files))))
		for i := range reports {
			if reports[i].LoadErr != nil {
				continue
			}
			g.Go(func() error {
				select {
				case <-gctx.Done():
					return gctx.Err()
				default:
				}
				checkOne(fileSet, &reports[i], fileOpts, opts.Cache, opts.Sink, runSpan.ID())
				return nil
			})
		}
		runErr = g.Wait()
		return strconv.Itoa(jobs) + " jobs"
	})
	if runErr != nil {
		return nil, runErr
	}

	total := diag.NewBag(opts.maxDiagnostics())
	for i := range reports {
		r := &reports[i]
		if r.LoadErr != nil {
			r.Bag = diag.NewBag(1)
			r.Bag.Add(diag.NewError(diag.IOLoadFileError, source.Span{}, fmt.Sprintf("%s: %v", r.Path, r.LoadErr)))
		}
		total.Merge(r.Bag)
	}
	total.Sort()

	if opts.Timings {
		total.Force(timingsDiagnostic("check", len(reports), opts.Timer.Report()))
	}
	return &CheckResult{FileSet: fileSet, Files: reports, Bag: total}, nil
}

// checkOne fills r from the cache or by parsing. FileSet reads are safe
// here because loading finished before any worker started.
func checkOne(fileSet *source.FileSet, r *FileReport, opts Options, cache *DiskCache, sink pipeline.ProgressSink, parent uint64) {
	start := time.Now()
	file := fileSet.Get(r.FileID)
	span := trace.Begin(opts.Tracer, trace.ScopeFile, "check", parent).WithExtra("path", file.Path)
	defer func() { span.End(strconv.Itoa(r.Bag.Len()) + " diagnostics") }()

	key := CacheKey(file.Hash, opts)
	if cache != nil {
		var payload DiskPayload
		ok, err := cache.Get(key, &payload)
		if err == nil && ok && payload.ContentHash == project.Digest(file.Hash) {
			r.Bag = diag.NewBag(opts.maxDiagnostics())
			payload.restore(r.FileID, r.Bag)
			r.Minimal = payload.Minimal
			r.Cached = true
			r.Elapsed = time.Since(start)
			pipeline.Emit(sink, r.Path, pipeline.StageCheck, pipeline.StatusCached, nil, r.Elapsed)
			return
		}
	}

	pipeline.Emit(sink, r.Path, pipeline.StageParse, pipeline.StatusWorking, nil, 0)
	res := ParseFile(fileSet, r.FileID, opts)
	r.Bag = res.Bag
	if res.Detection != nil {
		pipeline.Emit(sink, r.Path, pipeline.StageDetect, pipeline.StatusWorking, nil, 0)
		r.Minimal = minimalName(*res.Detection)
	}
	r.Elapsed = time.Since(start)

	if cache != nil {
		if err := cache.Put(key, toPayload(file, opts, r.Bag, r.Minimal)); err != nil {
			r.Bag.Add(diag.NewWarning(diag.IOCacheError, source.Span{File: r.FileID}, "cache write failed: "+err.Error()))
		}
	}

	status := pipeline.StatusDone
	if r.Bag.HasErrors() {
		status = pipeline.StatusError
	}
	pipeline.Emit(sink, r.Path, pipeline.StageCheck, status, nil, r.Elapsed)
}

func minimalName(cls dialect.Classification) string {
	if len(cls.Candidates) == 0 {
		return ""
	}
	return cls.Minimal.String()
}
