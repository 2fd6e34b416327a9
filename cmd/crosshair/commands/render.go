package commands

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/osse101/cs2-crosshair/internal/render"
	"github.com/osse101/cs2-crosshair/internal/sharecode"
)

const stdoutArg = "-"

func newRenderCmd() *cobra.Command {
	var (
		out  string
		size int
	)

	cmd := &cobra.Command{
		Use:   "render <code>",
		Short: "Render a share code to a PNG file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := sharecode.Decode(args[0])
			if err != nil {
				return err
			}
			data, err := render.Render(s, size)
			if err != nil {
				return err
			}
			if out == stdoutArg {
				_, err = cmd.OutOrStdout().Write(data)
				return err
			}
			return os.WriteFile(out, data, 0o644)
		},
	}

	cmd.Flags().StringVarP(&out, "output", "o", "crosshair.png", `output file, "-" for stdout`)
	cmd.Flags().IntVar(&size, "size", render.DefaultCanvasSize, "canvas width and height in pixels")
	return cmd
}
