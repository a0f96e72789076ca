package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/daniloc96/member-roster-sync/internal/config"
	"github.com/daniloc96/member-roster-sync/internal/log"
	"github.com/daniloc96/member-roster-sync/internal/models"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// SyncFunc runs one sync with the given configuration.
type SyncFunc func(ctx context.Context, cfg *config.Config, trigger models.Trigger) (*models.SyncResult, error)

// HistoryFunc lists recent runs from the run history store.
type HistoryFunc func(ctx context.Context, cfg *config.Config, limit int) ([]models.RunRecord, error)

var (
	cfgFile          string
	flagDryRun       bool
	flagLogLevel     string
	flagLogFormat    string
	flagGoogleCreds  string
	flagSheetID      string
	flagSheetRange   string
	flagSource       string
	flagXLSXPath     string
	flagNotionDB     string
	flagSkipContacts bool

	lambdaHandler func(ctx context.Context, event models.LambdaEvent) (*models.LambdaResponse, error)
	runSync       SyncFunc
	listRuns      HistoryFunc
)

// SetLambdaHandler registers the Lambda handler used in Lambda mode.
func SetLambdaHandler(handler func(ctx context.Context, event models.LambdaEvent) (*models.LambdaResponse, error)) {
	lambdaHandler = handler
}

// SetRunSync registers the sync runner used by the CLI.
func SetRunSync(handler SyncFunc) {
	runSync = handler
}

// SetListRuns registers the run history reader used by the history command.
func SetListRuns(handler HistoryFunc) {
	listRuns = handler
}

var rootCmd = &cobra.Command{
	Use:           "sync",
	Short:         "Sync the member roster sheet to Notion and Google Contacts",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		if runSync == nil {
			return fmt.Errorf("sync engine is not configured")
		}

		result, err := runSync(cmd.Context(), cfg, models.TriggerCLI)
		if err != nil {
			fmt.Fprintln(cmd.ErrOrStderr(), models.ErrorMessage(err))
			return err
		}

		logrus.Info("────────────────────────────────────────")
		printRows("⏭  Skipped rows", result.Outcomes, models.RowSkip)
		printErrors("❌ Failed rows", result.Errors)
		logrus.Info("────────────────────────────────────────")

		fmt.Fprintln(cmd.OutOrStdout(), result.Message())
		return nil
	},
}

// Execute runs the CLI or Lambda handler depending on environment.
func Execute() {
	if isLambda() {
		if lambdaHandler == nil {
			logrus.Fatal("lambda handler is not configured")
		}
		lambda.Start(lambdaHandler)
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		logrus.Fatal(err)
	}
}

func printRows(title string, outcomes []models.RowOutcome, action models.RowAction) {
	var lines []string
	for _, o := range outcomes {
		if o.Action == action {
			lines = append(lines, fmt.Sprintf("line %d (%s): %s", o.Line, o.MemberID, o.Reason))
		}
	}
	printErrors(title, lines)
}

func printErrors(title string, lines []string) {
	if len(lines) == 0 {
		logrus.Infof("%s: (none)", title)
		return
	}
	logrus.Infof("%s (%d):", title, len(lines))
	for i, line := range lines {
		logrus.Infof("  %d. %s", i+1, line)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file path")
	rootCmd.PersistentFlags().BoolVar(&flagDryRun, "dry-run", false, "Plan record writes without applying them")
	rootCmd.PersistentFlags().StringVar(&flagGoogleCreds, "google-creds", "", "Path to Google service account JSON")
	rootCmd.PersistentFlags().StringVar(&flagSheetID, "sheet-id", "", "Spreadsheet ID of the member roster")
	rootCmd.PersistentFlags().StringVar(&flagSheetRange, "range", "", "A1 range holding name, phone, member id")
	rootCmd.PersistentFlags().StringVar(&flagSource, "source", "", "Row source: sheets or xlsx")
	rootCmd.PersistentFlags().StringVar(&flagXLSXPath, "xlsx", "", "Path to a local .xlsx roster (implies --source=xlsx)")
	rootCmd.PersistentFlags().StringVar(&flagNotionDB, "notion-db", "", "Notion database ID")
	rootCmd.PersistentFlags().BoolVar(&flagSkipContacts, "skip-contacts", false, "Do not mirror rows into Google Contacts")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFormat, "log-format", "", "Log format: text, json or pretty")
}

func isLambda() bool {
	return os.Getenv("AWS_LAMBDA_FUNCTION_NAME") != ""
}

// loadConfig reads configuration, applies flag overrides, validates it and
// configures logging.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, err
	}

	overrideConfigFromFlags(cmd, cfg)
	if err := config.Validate(cfg); err != nil {
		return nil, err
	}

	log.ConfigureStandard(cfg.Log.Level, cfg.Log.Format)
	return cfg, nil
}

func overrideConfigFromFlags(cmd *cobra.Command, cfg *config.Config) {
	flags := cmd.Flags()
	if flags.Changed("dry-run") {
		cfg.Sync.DryRun = flagDryRun
	}
	if flags.Changed("google-creds") {
		cfg.Google.CredentialsFile = flagGoogleCreds
	}
	if flags.Changed("sheet-id") {
		cfg.Google.SpreadsheetID = flagSheetID
	}
	if flags.Changed("range") {
		cfg.Google.Range = flagSheetRange
	}
	if flags.Changed("source") {
		cfg.Source.Kind = flagSource
	}
	if flags.Changed("xlsx") {
		cfg.Source.Kind = config.SourceXLSX
		cfg.Source.XLSXPath = flagXLSXPath
	}
	if flags.Changed("notion-db") {
		cfg.Notion.DatabaseID = flagNotionDB
	}
	if flags.Changed("skip-contacts") {
		cfg.Contacts.Enabled = !flagSkipContacts
	}
	if flags.Changed("addr") {
		cfg.Server.Addr = flagAddr
	}
	if flags.Changed("path") {
		cfg.Server.Path = flagPath
	}
	if flags.Changed("interval") {
		cfg.Sync.Interval = flagInterval
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = flagLogLevel
	}
	if flags.Changed("log-format") {
		cfg.Log.Format = flagLogFormat
	}
}
