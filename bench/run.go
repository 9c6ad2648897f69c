package main

import (
	"fmt"
	"io"
	"log/slog"

	"gonum.org/v1/gonum/blas/blas32"
	"gonum.org/v1/gonum/mat"

	"github.com/ic-timon/la-bench/arena"
	"github.com/ic-timon/la-bench/bench/metrics"
	"github.com/ic-timon/la-bench/bench/runner"
	"github.com/ic-timon/la-bench/linalg"
	"github.com/ic-timon/la-bench/simd"
)

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// newRunner 按名称构造后端；operand 类型在此处被擦除
func newRunner(name string, cfg Config, alloc arena.Kind, opts runner.Options) (runner.Runner, error) {
	switch name {
	case linalg.NameGonum:
		return runner.For[*mat.VecDense, *mat.Dense](linalg.NewGonum(cfg.Seed), opts), nil
	case linalg.NameBLAS32:
		return runner.For[blas32.Vector, blas32.General](linalg.NewBLAS32(), opts), nil
	case linalg.NameSIMD:
		return runner.For[*linalg.Vector, *linalg.Matrix](linalg.NewSIMD(alloc, cfg.Seed), opts), nil
	}
	return nil, fmt.Errorf("%w: %q", linalg.ErrUnknownBackend, name)
}

// sectionAttrs 单个分段结束时的 debug 日志字段
func sectionAttrs(backend string, k runner.Kind, samples int, after metrics.Snapshot, d metrics.Delta) []any {
	return []any{
		"backend", backend,
		"op", k.String(),
		"samples", samples,
		"elapsed", d.Elapsed,
		"alloc_bytes", d.AllocBytes,
		"alloc_rate_bps", d.AllocRateBps,
		"gc_count", d.GCCount,
		"heap_alloc", after.HeapAlloc,
		"heap_sys", after.HeapSys,
		"goroutines", after.NumGoroutine,
	}
}

// runBench 结果写 stdout，日志写 stderr。cfg 需已通过 Validate
func runBench(stdout, stderr io.Writer, cfg Config) error {
	logger := newLogger(stderr, cfg.Verbose)

	kinds, err := cfg.ParsedKinds()
	if err != nil {
		return err
	}
	alloc, err := arena.ParseKind(cfg.Alloc)
	if err != nil {
		return err
	}
	var opts runner.Options
	if cfg.GC {
		opts.BeforeSample = metrics.GC
	}

	runners := make([]runner.Runner, 0, len(cfg.Backends))
	for _, name := range cfg.Backends {
		r, err := newRunner(name, cfg, alloc, opts)
		if err != nil {
			return err
		}
		runners = append(runners, r)
	}

	logger.Info("benchmark start",
		"backends", cfg.Backends,
		"exponents", cfg.Exponents,
		"simd_kernel", simd.DotProductDesc(),
		"alloc", alloc.String(),
		"gc", cfg.GC,
	)

	rep := metrics.NewReporter(stdout)
	for _, r := range runners {
		for _, k := range kinds {
			before := metrics.Take()
			count := runner.Section(rep, r, k, cfg.Exponents)
			after := metrics.Take()
			logger.Debug("section done", sectionAttrs(r.Name(), k, count, after, metrics.Diff(before, after))...)
			if err := rep.Err(); err != nil {
				return fmt.Errorf("write report: %w", err)
			}
		}
	}
	logger.Info("benchmark done")
	return nil
}
