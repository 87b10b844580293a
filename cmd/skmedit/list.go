package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"skm-editor/internal/config"
	"skm-editor/internal/skeleton"
)

var listCmd = &cobra.Command{
	Use:   "list <model.skm>",
	Short: "List joints and objects in canonical pre-order",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, labels, err := setup(config.Flags{})
		if err != nil {
			return err
		}

		f, m, s, err := openSession(args[0])
		if err != nil {
			return err
		}
		idx := s.Index()

		fmt.Printf("%s  (version %d, %d joints, %d objects)\n",
			f.Name, f.Version, len(idx.Joints), idx.TotalObjects())

		// Joint tree with session indices.
		pos := make(map[*skeleton.Joint]int, len(idx.Joints))
		for i, j := range idx.Joints {
			pos[j] = i
		}
		var walk func(j *skeleton.Joint, indent string)
		walk = func(j *skeleton.Joint, indent string) {
			i := pos[j]
			fmt.Printf("%sjoint %-3d %s  (%d objects)\n",
				indent, i, labels.Label(j.Name, i), len(idx.Lists[i]))
			for _, c := range j.Children {
				walk(c, indent+"  ")
			}
		}
		walk(idx.Joints[0], "")

		// Flattened object listing.
		if idx.TotalObjects() > 0 {
			fmt.Println("objects:")
		}
		for _, e := range s.List() {
			j := idx.Joints[e.Joint]
			fmt.Printf("  obj %-3d joint %d pos %d  %s  %d bytes\n",
				e.Flat, e.Joint, e.Pos,
				labels.Label(j.Name, e.Joint),
				len(m.Payload(e.Object)))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}
