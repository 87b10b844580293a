package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"skm-editor/internal/config"
	"skm-editor/internal/diagram"
)

var diagramOut string

var diagramCmd = &cobra.Command{
	Use:   "diagram <model.skm>",
	Short: "Render the joint hierarchy as an SVG or WebP image",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, labels, err := setup(config.Flags{})
		if err != nil {
			return err
		}

		_, _, s, err := openSession(args[0])
		if err != nil {
			return err
		}

		out, err := os.Create(diagramOut)
		if err != nil {
			return fmt.Errorf("create %s: %w", diagramOut, err)
		}
		defer out.Close()

		switch strings.ToLower(filepath.Ext(diagramOut)) {
		case ".svg":
			err = diagram.RenderSVG(out, s.Index(), labels)
		case ".webp":
			err = diagram.RenderWebP(out, s.Index(), labels)
		default:
			err = fmt.Errorf("unsupported output format %q (want .svg or .webp)", filepath.Ext(diagramOut))
		}
		if err != nil {
			return err
		}
		fmt.Printf("wrote %s\n", diagramOut)
		return nil
	},
}

func init() {
	diagramCmd.Flags().StringVarP(&diagramOut, "output", "o", "", "output image path (.svg or .webp)")
	_ = diagramCmd.MarkFlagRequired("output")
	rootCmd.AddCommand(diagramCmd)
}
