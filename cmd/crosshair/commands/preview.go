package commands

import (
	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"

	"github.com/osse101/cs2-crosshair/internal/preview"
	"github.com/osse101/cs2-crosshair/internal/render"
	"github.com/osse101/cs2-crosshair/internal/sharecode"
)

const defaultPreviewSize = 32

func newPreviewCmd() *cobra.Command {
	var size int

	cmd := &cobra.Command{
		Use:   "preview <code>",
		Short: "Draw a share code in the terminal, any key exits",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := sharecode.Decode(args[0])
			if err != nil {
				return err
			}
			img, err := render.RenderImage(s, size)
			if err != nil {
				return err
			}

			screen, err := tcell.NewScreen()
			if err != nil {
				return err
			}
			if err := screen.Init(); err != nil {
				return err
			}
			defer screen.Fini()

			preview.Run(screen, img)
			return nil
		},
	}

	cmd.Flags().IntVar(&size, "size", defaultPreviewSize, "canvas size in pixels, two pixel rows per terminal row")
	return cmd
}
