package runner

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type recordingReporter struct {
	headers []string
	samples []int
}

func (r *recordingReporter) Header(backend, op string) {
	r.headers = append(r.headers, backend+" "+op)
}

func (r *recordingReporter) Sample(n int, normalized float64) {
	r.samples = append(r.samples, n)
}

func TestSection(t *testing.T) {
	rep := &recordingReporter{}
	n := Section(rep, For[*fakeOperand, *fakeOperand](&fakeBackend{}, Options{}), MatVec, 4)
	assert.Equal(t, 4, n)
	assert.Equal(t, []string{"fake Matrix x Vector"}, rep.headers)
	assert.Equal(t, []int{1, 2, 4, 8}, rep.samples)
}

func TestSuite_AllKindsInOrder(t *testing.T) {
	rep := &recordingReporter{}
	fb := &fakeBackend{}
	Suite(rep, For[*fakeOperand, *fakeOperand](fb, Options{}), Kinds(), DefaultExponents)
	assert.Equal(t, []string{
		"fake Matrix x Matrix",
		"fake Matrix x Vector",
		"fake Vector x Vector",
	}, rep.headers)
	assert.Len(t, rep.samples, 33)
	assert.Equal(t, 33, fb.calls)
}
