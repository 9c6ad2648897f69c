package runner

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownKind ParseKind 遇到不支持的运算名称时返回
var ErrUnknownKind = errors.New("runner: unknown operation kind")

// Kind 被计时的乘法类型
type Kind int

const (
	MatMat Kind = iota // n×n · n×n, O(n³)
	MatVec             // n×n · n, O(n²)
	VecVec             // n · n, O(n)
)

// Kinds 按报告顺序返回全部运算
func Kinds() []Kind {
	return []Kind{MatMat, MatVec, VecVec}
}

func (k Kind) String() string {
	switch k {
	case MatMat:
		return "Matrix x Matrix"
	case MatVec:
		return "Matrix x Vector"
	case VecVec:
		return "Vector x Vector"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Short 命令行写法：mm、mv 或 vv
func (k Kind) Short() string {
	switch k {
	case MatMat:
		return "mm"
	case MatVec:
		return "mv"
	case VecVec:
		return "vv"
	default:
		return k.String()
	}
}

// Power 渐近开销 n^p 中的指数 p
func (k Kind) Power() int {
	switch k {
	case MatMat:
		return 3
	case MatVec:
		return 2
	default:
		return 1
	}
}

// ParseKind 接受短写法或显示名称，不区分大小写
func ParseKind(s string) (Kind, error) {
	norm := strings.ToLower(strings.TrimSpace(s))
	for _, k := range Kinds() {
		if norm == k.Short() || norm == strings.ToLower(k.String()) {
			return k, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownKind, s)
}
