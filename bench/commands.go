package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/ic-timon/la-bench/linalg"
	"github.com/ic-timon/la-bench/simd"
)

func newRootCmd() *cobra.Command {
	flags := DefaultConfig()
	var configPath string

	rootCmd := &cobra.Command{
		Use:   "bench",
		Short: "Time vector and matrix multiplication across linear-algebra backends",
		Long: `bench times one multiplication per size n = 2^j and prints the elapsed
seconds divided by n, n^2 or n^3 for vector x vector, matrix x vector and
matrix x matrix respectively.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd.Flags(), configPath, flags)
			if err != nil {
				return err
			}
			return runBench(cmd.OutOrStdout(), cmd.ErrOrStderr(), cfg)
		},
	}

	f := rootCmd.Flags()
	f.StringVar(&configPath, "config", "", "YAML 配置文件路径")
	f.StringSliceVar(&flags.Backends, "backend", flags.Backends, "后端: gonum | blas32 | simd，可重复或逗号分隔")
	f.StringSliceVar(&flags.Kinds, "kind", flags.Kinds, "运算: mm | mv | vv，可重复或逗号分隔")
	f.IntVar(&flags.Exponents, "exponents", flags.Exponents, "规模指数个数，n = 2^0 .. 2^(exponents-1)")
	f.StringVar(&flags.Alloc, "alloc", flags.Alloc, "simd 后端操作数内存: heap | offheap(需 CGO) | mmap")
	f.Int64Var(&flags.Seed, "seed", flags.Seed, "随机填充种子")
	f.BoolVar(&flags.GC, "gc", flags.GC, "每次计时前强制 GC")
	f.BoolVarP(&flags.Verbose, "verbose", "v", flags.Verbose, "输出 debug 日志到 stderr")

	rootCmd.AddCommand(newBackendsCmd())
	return rootCmd
}

func newBackendsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "backends",
		Short: "List available backends and the active simd kernel",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for _, name := range linalg.Names() {
				desc := ""
				if name == linalg.NameSIMD {
					desc = " (" + simd.DotProductDesc() + ")"
				}
				if _, err := fmt.Fprintf(out, "%s%s\n", name, desc); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

// resolveConfig 合并配置：默认值 < YAML 文件 < 显式设置的 flag
func resolveConfig(fs *pflag.FlagSet, path string, flags Config) (Config, error) {
	cfg := flags
	if path != "" {
		fileCfg, err := LoadConfig(path)
		if err != nil {
			return Config{}, err
		}
		cfg = fileCfg
		fs.Visit(func(f *pflag.Flag) {
			switch f.Name {
			case "backend":
				cfg.Backends = flags.Backends
			case "kind":
				cfg.Kinds = flags.Kinds
			case "exponents":
				cfg.Exponents = flags.Exponents
			case "alloc":
				cfg.Alloc = flags.Alloc
			case "seed":
				cfg.Seed = flags.Seed
			case "gc":
				cfg.GC = flags.GC
			case "verbose":
				cfg.Verbose = flags.Verbose
			}
		})
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}
