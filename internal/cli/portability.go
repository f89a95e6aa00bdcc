package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/ar-fit/internal/client"
)

func newExportCommand(o *rootOptions) *cobra.Command {
	var target client.ExportTarget

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export every user on this device as JSON",
		Long: "Export every user on this device as JSON. Without flags the file is written into the " +
			"configured export directory. The file holds passwords in plain text.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return o.withApp(cmd, func(a *client.App) error {
				sink, err := a.NewSink(cmd.Context(), target)
				if err != nil {
					return err
				}
				location, err := a.Services().PortabilityService.ExportTo(cmd.Context(), sink)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Exported data to %s\n", location)
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&target.Path, "out", "", "Output file path")
	cmd.Flags().BoolVar(&target.S3, "s3", false, "Upload to the configured S3 bucket")
	cmd.Flags().BoolVar(&target.Remote, "remote", false, "Send to the configured ar-fit server")
	cmd.MarkFlagsMutuallyExclusive("out", "s3", "remote")

	return cmd
}

func newImportCommand(o *rootOptions) *cobra.Command {
	var in string

	cmd := &cobra.Command{
		Use:   "import",
		Short: "Replace every user on this device with the users of an export file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if strings.TrimSpace(in) == "" {
				return fmt.Errorf("--in is required")
			}
			raw, err := os.ReadFile(in)
			if err != nil {
				return fmt.Errorf("read import file: %w", err)
			}

			return o.withApp(cmd, func(a *client.App) error {
				if err := a.Services().PortabilityService.ImportAll(cmd.Context(), raw); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Imported data from %s\n", in)
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&in, "in", "", "Input file path")

	return cmd
}
