package runner

// Reporter 每个分段接收一行标题，每个规模接收一行结果
type Reporter interface {
	Header(backend, op string)
	Sample(n int, normalized float64)
}

// Section 报告 r 在一种运算下的全部规模，返回写出的样本数
func Section(rep Reporter, r Runner, kind Kind, exponents int) int {
	rep.Header(r.Name(), kind.String())
	count := 0
	for s := range r.Run(kind, exponents) {
		rep.Sample(s.N, s.Normalized)
		count++
	}
	return count
}

// Suite 按顺序报告 r 的每种运算
func Suite(rep Reporter, r Runner, kinds []Kind, exponents int) {
	for _, k := range kinds {
		Section(rep, r, k, exponents)
	}
}
