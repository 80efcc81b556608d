package main

import (
	"flag"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/go-logr/logr"

	"csv-mapper/internal/analyze"
	"csv-mapper/internal/common"
	"csv-mapper/internal/config"
	"csv-mapper/internal/gen"
)

func runGen(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("gen", flag.ContinueOnError)
	fs.SetOutput(stderr)
	pkg := fs.String("pkg", "", "Package pattern to analyse, e.g. ./examples/orders")
	typeList := fs.String("types", "", "Comma separated struct names; empty means every exported struct")
	out := fs.String("out", "", "Output directory; defaults to the package directory")
	profile := fs.String("config", "", "YAML profile whose generate jobs are run")
	noComments := fs.Bool("no-comments", false, "Omit doc comments from generated variables")
	verbosity := fs.Int("v", 0, "Log verbosity")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	logger := newLogger(stderr, *verbosity)

	var jobs []config.GenerateJob
	switch {
	case *profile != "":
		p, err := config.LoadFile(*profile)
		if err != nil {
			_, _ = fmt.Fprintf(stderr, "config error: %s\n", err)
			return 2
		}
		jobs = p.Generate
	case *pkg != "":
		jobs = []config.GenerateJob{{
			Package:    *pkg,
			Types:      splitList(*typeList),
			Out:        *out,
			File:       config.DefaultFilename,
			NoComments: *noComments,
		}}
	default:
		_, _ = fmt.Fprintln(stderr, "gen requires -pkg or -config")
		return 2
	}

	for _, job := range jobs {
		files, err := generate(job, logger)
		if err != nil {
			_, _ = fmt.Fprintf(stderr, "generate %s: %s\n", job.Package, err)
			return 1
		}
		if err := gen.WriteFiles(files, job.Out); err != nil {
			_, _ = fmt.Fprintf(stderr, "write %s: %s\n", job.Package, err)
			return 1
		}
		for _, f := range files {
			_, _ = fmt.Fprintf(stdout, "wrote %s\n", f.Filename)
		}
	}

	return 0
}

// generate runs one job. Type names are only accepted for patterns matching one package.
func generate(job config.GenerateJob, log logr.Logger) (files []gen.GeneratedFile, err error) {
	log = log.WithValues("package", job.Package)

	analyzer := analyze.NewAnalyzer()
	graph, err := analyzer.LoadPackages(job.Package)
	if err != nil {
		return nil, err
	}

	diags := analyzer.Diagnostics()
	defer func() {
		diags.Log(log)
		log.V(1).Info("job done", "files", len(files), "diagnostics", diags.Len())
	}()

	paths := make([]string, 0, len(graph.Packages))
	for path := range graph.Packages {
		paths = append(paths, path)
	}
	slices.Sort(paths)

	if !common.IsEmpty(job.Types) && !common.IsSingle(paths) {
		return nil, fmt.Errorf("-types needs a pattern matching one package, got %d", len(paths))
	}

	cfg := gen.DefaultGeneratorConfig()
	cfg.Filename = job.File
	cfg.OutputDir = job.Out
	cfg.GenerateComments = !job.NoComments

	for _, path := range paths {
		if common.IsEmpty(job.Types) && common.IsEmpty(graph.Packages[path].Structs) {
			log.V(1).Info("no structs, skipped", "path", path)
			continue
		}

		g := gen.NewGenerator(cfg)
		file, err := g.Generate(graph, path, job.Types...)
		diags.Merge(g.Diagnostics())
		if err != nil {
			return nil, err
		}

		log.V(1).Info("generated", "path", path, "file", file.Filename, "bytes", len(file.Content))
		files = append(files, *file)
	}

	return files, nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
