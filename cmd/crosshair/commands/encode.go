package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/osse101/cs2-crosshair/internal/domain"
	"github.com/osse101/cs2-crosshair/internal/sharecode"
	"github.com/osse101/cs2-crosshair/internal/validation"
)

const stdinArg = "-"

func newEncodeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "encode [file|-]",
		Short: "Build a share code from settings JSON",
		Long: "Reads settings JSON in the shape printed by decode, from a file or stdin,\n" +
			"and prints the share code. A missing format_version means the current one.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in := cmd.InOrStdin()
			if len(args) == 1 && args[0] != stdinArg {
				f, err := os.Open(args[0])
				if err != nil {
					return err
				}
				defer f.Close()
				in = f
			}

			s, err := readSettings(in)
			if err != nil {
				return err
			}
			code, err := sharecode.Encode(s)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), code)
			return err
		},
	}
}

// readSettings checks the document against the settings schema, so typos
// and out-of-range values are reported by path before decoding.
func readSettings(r io.Reader) (domain.CrosshairSettings, error) {
	var s domain.CrosshairSettings

	data, err := io.ReadAll(r)
	if err != nil {
		return s, err
	}
	v, err := validation.NewSettingsValidator()
	if err != nil {
		return s, err
	}
	if err := v.ValidateBytes(data); err != nil {
		return s, fmt.Errorf("invalid settings JSON: %w", err)
	}
	if err := json.Unmarshal(data, &s); err != nil {
		return s, fmt.Errorf("invalid settings JSON: %w", err)
	}
	if s.FormatVersion == 0 {
		s.FormatVersion = domain.CurrentFormatVersion
	}
	return s, s.Validate()
}
