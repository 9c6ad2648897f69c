package metrics

import (
	"fmt"
	"io"
)

// Separator 每个分段标题前的分隔线
const Separator = "------------------------"

// Reporter 将结果以纯文本写到 w：每个分段一行标题，每个规模一行 "n: value"。
// 写入错误会被记住，之后的写入直接跳过，由 Err 返回。
type Reporter struct {
	w   io.Writer
	err error
}

// NewReporter 创建写入 w 的报告器
func NewReporter(w io.Writer) *Reporter {
	return &Reporter{w: w}
}

// Header 写分隔线与 "<backend> <op>" 标题
func (r *Reporter) Header(backend, op string) {
	r.printf("%s\n%s %s\n", Separator, backend, op)
}

// Sample 写一行 "n: normalized"
func (r *Reporter) Sample(n int, normalized float64) {
	r.printf("%d: %g\n", n, normalized)
}

// Err 返回第一次写入失败的错误
func (r *Reporter) Err() error {
	return r.err
}

func (r *Reporter) printf(format string, args ...any) {
	if r.err != nil {
		return
	}
	_, r.err = fmt.Fprintf(r.w, format, args...)
}
