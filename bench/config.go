package main

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/ic-timon/la-bench/arena"
	"github.com/ic-timon/la-bench/bench/runner"
	"github.com/ic-timon/la-bench/linalg"
)

// MaxExponents 上限：最大规模 n = 2^12，单个 float64 矩阵约 128MB；
// 再往上一档，矩阵乘法的耗时与内存都超出单次压测可接受的范围
const MaxExponents = 13

// Config 压测参数，可来自 YAML 文件，命令行显式设置的 flag 优先
type Config struct {
	Backends  []string `yaml:"backends"`
	Kinds     []string `yaml:"kinds"`
	Exponents int      `yaml:"exponents"`
	Alloc     string   `yaml:"alloc"`
	Seed      int64    `yaml:"seed"`
	GC        bool     `yaml:"gc"`
	Verbose   bool     `yaml:"verbose"`
}

// DefaultConfig 返回默认配置：全部后端、全部运算、指数 0..10
func DefaultConfig() Config {
	kinds := make([]string, 0, 3)
	for _, k := range runner.Kinds() {
		kinds = append(kinds, k.Short())
	}
	return Config{
		Backends:  linalg.Names(),
		Kinds:     kinds,
		Exponents: runner.DefaultExponents,
		Alloc:     arena.Heap.String(),
		Seed:      42,
	}
}

// LoadConfig 读取 YAML 文件，未出现的字段保留默认值
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	raw, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate 检查所有字段，返回合并后的错误
func (c Config) Validate() error {
	var errs []error
	if len(c.Backends) == 0 {
		errs = append(errs, errors.New("no backend selected"))
	}
	for _, b := range c.Backends {
		if err := linalg.CheckName(b); err != nil {
			errs = append(errs, err)
		}
	}
	if len(c.Kinds) == 0 {
		errs = append(errs, errors.New("no operation kind selected"))
	}
	if _, err := c.ParsedKinds(); err != nil {
		errs = append(errs, err)
	}
	if c.Exponents < 1 || c.Exponents > MaxExponents {
		errs = append(errs, fmt.Errorf("exponents must be in [1, %d], got %d", MaxExponents, c.Exponents))
	}
	if _, err := arena.ParseKind(c.Alloc); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// ParsedKinds 将 Kinds 转为 runner.Kind，保持给定顺序
func (c Config) ParsedKinds() ([]runner.Kind, error) {
	out := make([]runner.Kind, 0, len(c.Kinds))
	for _, s := range c.Kinds {
		k, err := runner.ParseKind(s)
		if err != nil {
			return nil, err
		}
		out = append(out, k)
	}
	return out, nil
}
