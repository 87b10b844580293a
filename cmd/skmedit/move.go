package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"skm-editor/internal/config"
	"skm-editor/internal/skm"
)

var (
	moveObjs []int
	moveTos  []int
	moveOut  string
)

var moveCmd = &cobra.Command{
	Use:   "move <model.skm>",
	Short: "Move render objects to other joints",
	Long: `Move relocates objects, addressed by their flattened index from "skmedit
list", to the tail of a target joint's object list. Multiple --obj/--to
pairs apply in order within one session; each move shifts the flattened
indices of the objects after it, so later --obj values address the
already-edited model.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(moveObjs) == 0 {
			return fmt.Errorf("no moves requested: use --obj and --to")
		}
		if len(moveObjs) != len(moveTos) {
			return fmt.Errorf("%d --obj values but %d --to values", len(moveObjs), len(moveTos))
		}

		cfg, labels, err := setup(config.Flags{})
		if err != nil {
			return err
		}

		in := args[0]
		f, _, s, err := openSession(in)
		if err != nil {
			return err
		}

		for i := range moveObjs {
			newFlat, err := s.Move(moveObjs[i], moveTos[i])
			if err != nil {
				return fmt.Errorf("move obj %d to joint %d: %w", moveObjs[i], moveTos[i], err)
			}
			j := s.Index().Joints[moveTos[i]]
			fmt.Printf("obj %d -> joint %d (%s), now obj %d\n",
				moveObjs[i], moveTos[i], labels.Label(j.Name, moveTos[i]), newFlat)
		}

		out, err := s.Close().ToFile()
		if err != nil {
			return err
		}
		out.Version = f.Version

		dest := moveOut
		if dest == "" {
			dest = in
			// Keep the unedited file around when overwriting in place.
			orig, err := os.ReadFile(in)
			if err != nil {
				return fmt.Errorf("backup %s: %w", in, err)
			}
			if err := os.WriteFile(in+cfg.BackupSuffix, orig, 0644); err != nil {
				return fmt.Errorf("backup %s: %w", in, err)
			}
		}
		if err := skm.Write(dest, out); err != nil {
			return err
		}
		fmt.Printf("wrote %s\n", dest)
		return nil
	},
}

func init() {
	moveCmd.Flags().IntSliceVar(&moveObjs, "obj", nil, "flattened object index to move (repeatable)")
	moveCmd.Flags().IntSliceVar(&moveTos, "to", nil, "target joint index (repeatable, pairs with --obj)")
	moveCmd.Flags().StringVarP(&moveOut, "output", "o", "", "output path (default: edit in place with backup)")
	rootCmd.AddCommand(moveCmd)
}
