// Package commands implements the crosshair command line tool.
package commands

import (
	"github.com/spf13/cobra"

	"github.com/osse101/cs2-crosshair/internal/handler"
)

// NewRootCmd builds the command tree.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "crosshair",
		Short:        "Decode, encode and render CS2 crosshair share codes",
		Version:      handler.ResolveVersion(),
		SilenceUsage: true,
	}

	root.AddCommand(
		newDecodeCmd(),
		newEncodeCmd(),
		newRenderCmd(),
		newPreviewCmd(),
	)
	return root
}
