package main

import (
	"fmt"
	"log/slog"
	"os"
	"runtime/pprof"

	"github.com/spf13/cobra"

	"github.com/radiarch/wetrace/internal/wetrace"
)

func main() {
	var (
		workers    int
		debug      bool
		cpuprofile string
	)

	root := &cobra.Command{
		Use:           "wetrace [config]",
		Short:         "Compute water equivalent thickness through a voxel phantom",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			level := slog.LevelInfo
			if debug {
				level = slog.LevelDebug
			}
			slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
			wetrace.Workers = workers

			if cpuprofile != "" {
				f, err := os.Create(cpuprofile)
				if err != nil {
					return err
				}
				if err := pprof.StartCPUProfile(f); err != nil {
					return err
				}
				defer func() {
					pprof.StopCPUProfile()
					_ = f.Close()
				}()
			}

			cfg := "configs/config.json"
			if len(args) > 0 {
				cfg = args[0]
			}
			return wetrace.Run(cfg)
		},
	}
	root.Flags().IntVar(&workers, "workers", 0, "worker goroutines (0 = all CPUs)")
	root.Flags().BoolVar(&debug, "debug", false, "verbose logging")
	root.Flags().StringVar(&cpuprofile, "cpuprofile", "", "write a CPU profile to this file")

	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
