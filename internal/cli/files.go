package cli

import (
	"fmt"
	"os"

	"VisualShell/internal/config"
	"VisualShell/internal/export"
	"VisualShell/internal/state"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func readShapes(path string) ([]state.Shape, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	shapes, err := export.ReadCSV(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return shapes, nil
}

func newCheckCmd(v *viper.Viper) *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "check <file.csv>",
		Short: "Validate a shape file and print its shape count",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			log := newLogger(v)
			shapes, err := readShapes(args[0])
			if err != nil {
				log.Error("cli", err, map[string]interface{}{"file": args[0]})
				return err
			}
			if err := state.NewBoard(limit).Replace(shapes); err != nil {
				return fmt.Errorf("%s: %w", args[0], err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %d shapes\n", args[0], len(shapes))
			return nil
		},
	}
	cmd.Flags().IntVar(&limit, "max", config.DefaultMaxShapes, "maximum number of shapes allowed")
	return cmd
}

func newPDFCmd(v *viper.Viper) *cobra.Command {
	var width, height int
	cmd := &cobra.Command{
		Use:   "pdf <in.csv> <out.pdf>",
		Short: "Render a shape file as a PDF page",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			log := newLogger(v)
			shapes, err := readShapes(args[0])
			if err != nil {
				return err
			}

			out, err := os.Create(args[1])
			if err != nil {
				return err
			}
			if err := export.WritePDF(out, shapes, width, height); err != nil {
				out.Close()
				os.Remove(args[1])
				return err
			}
			if err := out.Close(); err != nil {
				return err
			}

			log.Info("cli", "pdf written", map[string]interface{}{
				"in":    args[0],
				"out":   args[1],
				"count": len(shapes),
			})
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s (%d shapes)\n", args[1], len(shapes))
			return nil
		},
	}
	cmd.Flags().IntVar(&width, "width", config.DefaultCanvasWidth, "canvas width in pixels")
	cmd.Flags().IntVar(&height, "height", config.DefaultCanvasHeight, "canvas height in pixels")
	return cmd
}
