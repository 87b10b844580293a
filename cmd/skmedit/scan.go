package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"skm-editor/internal/batch"
	"skm-editor/internal/config"
)

var scanWorkers int

var scanCmd = &cobra.Command{
	Use:   "scan <dir>",
	Short: "Audit every SKM file under a directory",
	Long: `Scan parses, builds, and indexes every .skm file under the directory
and reports joint/object counts plus any files whose hierarchy is
malformed (cycles, shared object lists, orphaned records).`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, _, err := setup(config.Flags{Workers: scanWorkers})
		if err != nil {
			return err
		}

		results, err := batch.Scan(batch.Config{
			Dir:      args[0],
			Workers:  cfg.Workers,
			Progress: true,
		})
		if err != nil {
			return err
		}
		if len(results) == 0 {
			fmt.Println("No .skm files found.")
			return nil
		}

		bad := 0
		for _, r := range results {
			if r.Error != "" {
				bad++
				fmt.Printf("FAIL %s: %s\n", r.Path, r.Error)
				continue
			}
			fmt.Printf("ok   %s  %q  %d joints, %d objects\n", r.Path, r.Name, r.Joints, r.Objects)
		}
		fmt.Printf("%d files, %d malformed\n", len(results), bad)
		if bad > 0 {
			return fmt.Errorf("%d of %d files malformed", bad, len(results))
		}
		return nil
	},
}

func init() {
	scanCmd.Flags().IntVar(&scanWorkers, "workers", 0, "worker goroutines (default: NumCPU)")
	rootCmd.AddCommand(scanCmd)
}
