// Package cli is the command tree of the ar-fit terminal client.
//
// Running the binary without a subcommand opens the TUI. Every other
// command opens the local storage, performs one operation through the
// services and prints the outcome.
package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/ar-fit/internal/app"
	"github.com/MKhiriev/ar-fit/internal/client"
	"github.com/MKhiriev/ar-fit/internal/config"
	"github.com/MKhiriev/ar-fit/internal/logger"
	"github.com/MKhiriev/ar-fit/models"
)

const clientRole = "ar-fit-client"

// rootOptions holds the persistent flags of one command tree.
type rootOptions struct {
	driver      string
	statePath   string
	dsn         string
	lang        string
	configPath  string
	logDir      string
	logLevel    string
	strictState bool

	buildInfo models.AppBuildInfo

	// resolvedLang is the language errors are printed in.
	resolvedLang string
}

// NewRootCommand builds the arfit command tree.
func NewRootCommand(buildInfo models.AppBuildInfo) *cobra.Command {
	return newRootCommand(&rootOptions{buildInfo: buildInfo, resolvedLang: app.LangEnglish})
}

func newRootCommand(o *rootOptions) *cobra.Command {
	root := &cobra.Command{
		Use:           "arfit",
		Short:         "arfit tracks daily workouts, meals and subscriptions from your terminal",
		Long:          "arfit is a local-first fitness tracker: daily tasks, progress, meals, subscriptions and data export.",
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE:          o.runTUI,
	}

	flags := root.PersistentFlags()
	flags.StringVar(&o.driver, "driver", "", "Storage driver (memory, file, sqlite, postgres)")
	flags.StringVarP(&o.statePath, "state", "f", "", "State file path for the file driver")
	flags.StringVarP(&o.dsn, "dsn", "d", "", "Database DSN for the sqlite and postgres drivers")
	flags.StringVar(&o.lang, "lang", "", "Default interface language (en, ar)")
	flags.StringVarP(&o.configPath, "config", "c", "", "JSON config file path")
	flags.StringVar(&o.logDir, "log-dir", "", "Directory of the rotated log files")
	flags.StringVar(&o.logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	flags.BoolVar(&o.strictState, "strict-state", false, "Fail on unparseable persisted users")

	root.AddCommand(
		newTUICommand(o),
		newRegisterCommand(o),
		newLoginCommand(o),
		newLogoutCommand(o),
		newWhoAmICommand(o),
		newProfileCommand(o),
		newSurveyCommand(o),
		newMealCommand(o),
		newStepsCommand(o),
		newTasksCommand(o),
		newPlansCommand(o),
		newSubscribeCommand(o),
		newExportCommand(o),
		newImportCommand(o),
		newCalcCommand(o),
		newLanguageCommand(o),
		newThemeCommand(o),
		newVersionCommand(o),
	)

	return root
}

// Execute runs the command tree with os.Args and returns the process exit
// code. Errors are printed to stderr in the user's language.
func Execute(ctx context.Context, buildInfo models.AppBuildInfo) int {
	o := &rootOptions{buildInfo: buildInfo, resolvedLang: app.LangEnglish}
	root := newRootCommand(o)

	if err := root.ExecuteContext(ctx); err != nil {
		printError(root.ErrOrStderr(), err, o.resolvedLang)
		return 1
	}
	return 0
}

func printError(w io.Writer, err error, lang string) {
	text := err.Error()
	if app.MessageKey(err) != app.MsgInternalServerError {
		text = app.Message(err, lang)
	}
	fmt.Fprintln(w, "Error:", text)
}

// override turns the persistent flags into a config layer. Unset flags
// stay zero and do not override other sources.
func (o *rootOptions) override() *config.StructuredConfig {
	return &config.StructuredConfig{
		App: config.App{
			Language:    o.lang,
			StrictState: o.strictState,
		},
		Storage: config.Storage{
			Driver: o.driver,
			DB:     config.DB{DSN: o.dsn},
			Files:  config.Files{StatePath: o.statePath},
		},
		Log: config.Log{
			Dir:   o.logDir,
			Level: o.logLevel,
		},
		JSONFilePath: o.configPath,
	}
}

// withApp loads the configuration, opens the client app for the duration
// of run and closes it afterwards.
func (o *rootOptions) withApp(cmd *cobra.Command, run func(*client.App) error) error {
	cfg, err := config.GetClientConfig(o.override())
	if err != nil {
		return err
	}
	log := logger.NewClientLogger(clientRole, cfg.Log.Dir)
	if err = logger.SetLevel(cfg.Log.Level); err != nil {
		return err
	}

	a, err := client.NewApp(cmd.Context(), cfg, o.buildInfo, log)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := a.Close(); closeErr != nil {
			log.Err(closeErr).Msg("error closing storage")
		}
	}()

	o.resolvedLang = cfg.App.Language
	if lang, langErr := a.Services().PreferenceService.Language(cmd.Context()); langErr == nil {
		o.resolvedLang = lang
	}

	log.Debug().Str("command", cmd.CommandPath()).Msg("running command")
	return run(a)
}

func (o *rootOptions) runTUI(cmd *cobra.Command, _ []string) error {
	return o.withApp(cmd, func(a *client.App) error {
		return a.Run(cmd.Context())
	})
}

func newTUICommand(o *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Open the interactive terminal UI (default)",
		Args:  cobra.NoArgs,
		RunE:  o.runTUI,
	}
}
