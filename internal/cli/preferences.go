package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/ar-fit/internal/client"
)

func newLanguageCommand(o *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "lang [en|ar]",
		Short: "Show or set the interface language",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return o.withApp(cmd, func(a *client.App) error {
				prefs := a.Services().PreferenceService
				if len(args) == 1 {
					if err := prefs.SetLanguage(cmd.Context(), args[0]); err != nil {
						return err
					}
					o.resolvedLang = args[0]
				}
				lang, err := prefs.Language(cmd.Context())
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Language: %s\n", lang)
				return nil
			})
		},
	}
}

func newThemeCommand(o *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "theme [light|dark]",
		Short: "Show or set the theme",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return o.withApp(cmd, func(a *client.App) error {
				prefs := a.Services().PreferenceService
				if len(args) == 1 {
					if err := prefs.SetTheme(cmd.Context(), args[0]); err != nil {
						return err
					}
				}
				theme, err := prefs.Theme(cmd.Context())
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Theme: %s\n", theme)
				return nil
			})
		},
	}
}
