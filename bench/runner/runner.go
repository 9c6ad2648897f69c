// Package runner 对每个 2 的幂规模计时一次后端乘法，
// 产出按渐近开销归一化后的耗时
package runner

import (
	"fmt"
	"io"
	"iter"
	"math"
	"runtime"
	"time"

	"github.com/ic-timon/la-bench/linalg"
)

// DefaultExponents 对应规模 1, 2, 4, ..., 1024
const DefaultExponents = 11

// Sample 单个规模的测量结果
type Sample struct {
	N          int
	Elapsed    time.Duration
	Normalized float64 // 耗时（秒）除以 N^Kind.Power()
}

// Options 运行选项，零值可用
type Options struct {
	// BeforeSample 在操作数构造完成之后、开始计时之前调用
	BeforeSample func()
}

// Sizes 返回 j ∈ [0, exponents) 的 2^j
func Sizes(exponents int) []int {
	if exponents <= 0 {
		return nil
	}
	out := make([]int, exponents)
	for j := range out {
		out[j] = 1 << j
	}
	return out
}

// Normalize 耗时秒数除以 n^p
func Normalize(elapsed time.Duration, n, p int) float64 {
	return elapsed.Seconds() / math.Pow(float64(n), float64(p))
}

// Run 等价于零值 Options 的 RunWith
func Run[V, M any](b linalg.Backend[V, M], kind Kind, exponents int) iter.Seq[Sample] {
	return RunWith(b, kind, exponents, Options{})
}

// RunWith 返回惰性序列，每个规模一个 Sample。每次迭代重新构造操作数，
// 只计时一次后端调用，产出前释放操作数与结果。后端 panic 不做 recover。
// 实现 linalg.Reseeder 的后端在每次遍历开始时重置随机源，两次运行的操作数一致
func RunWith[V, M any](b linalg.Backend[V, M], kind Kind, exponents int, opts Options) iter.Seq[Sample] {
	return func(yield func(Sample) bool) {
		if r, ok := any(b).(linalg.Reseeder); ok {
			r.Reseed()
		}
		for _, n := range Sizes(exponents) {
			if !yield(measure(b, kind, n, opts)) {
				return
			}
		}
	}
}

func measure[V, M any](b linalg.Backend[V, M], kind Kind, n int, opts Options) Sample {
	var elapsed time.Duration
	switch kind {
	case VecVec:
		x, y := b.NewVector(n), b.NewVector(n)
		defer release(x)
		defer release(y)
		opts.beforeSample()
		start := time.Now()
		r := b.Dot(x, y)
		elapsed = time.Since(start)
		runtime.KeepAlive(r)
	case MatVec:
		m, v := b.NewMatrix(n), b.NewVector(n)
		defer release(m)
		defer release(v)
		opts.beforeSample()
		start := time.Now()
		r := b.MulVec(m, v)
		elapsed = time.Since(start)
		defer release(r)
		runtime.KeepAlive(r)
	case MatMat:
		x, y := b.NewMatrix(n), b.NewMatrix(n)
		defer release(x)
		defer release(y)
		opts.beforeSample()
		start := time.Now()
		r := b.Mul(x, y)
		elapsed = time.Since(start)
		defer release(r)
		runtime.KeepAlive(r)
	default:
		panic(fmt.Sprintf("runner: unknown kind %d", int(kind)))
	}
	return Sample{N: n, Elapsed: elapsed, Normalized: Normalize(elapsed, n, kind.Power())}
}

func (o Options) beforeSample() {
	if o.BeforeSample != nil {
		o.BeforeSample()
	}
}

// release 关闭持有 Go 堆外内存的操作数
func release(v any) {
	if c, ok := v.(io.Closer); ok {
		_ = c.Close()
	}
}

// Runner 擦除了操作数类型的后端，不同类型的后端可放在同一列表中驱动
type Runner interface {
	Name() string
	Run(kind Kind, exponents int) iter.Seq[Sample]
}

// For 将带类型的后端包装为 Runner
func For[V, M any](b linalg.Backend[V, M], opts Options) Runner {
	return typedRunner[V, M]{backend: b, opts: opts}
}

type typedRunner[V, M any] struct {
	backend linalg.Backend[V, M]
	opts    Options
}

func (r typedRunner[V, M]) Name() string { return r.backend.Name() }

func (r typedRunner[V, M]) Run(kind Kind, exponents int) iter.Seq[Sample] {
	return RunWith(r.backend, kind, exponents, r.opts)
}
