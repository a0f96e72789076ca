package config

import (
	"errors"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// DefaultRange is the roster range read when none is configured.
const DefaultRange = "Members!A7:C"

// Load reads configuration from .env, file, environment variables, and defaults.
func Load(configFile string) (*Config, error) {
	// Variables already present in the environment take precedence.
	_ = godotenv.Load()

	v := viper.New()
	v.SetDefault("google.range", DefaultRange)
	v.SetDefault("notion.name_property", "First Name")
	v.SetDefault("notion.phone_property", "Mobile Phone")
	v.SetDefault("notion.member_id_property", "Member ID")
	v.SetDefault("source.kind", SourceSheets)
	v.SetDefault("contacts.enabled", true)
	v.SetDefault("sync.dry_run", false)
	v.SetDefault("sync.interval", "24h")
	v.SetDefault("server.addr", ":3000")
	v.SetDefault("server.path", "/api/sync")
	v.SetDefault("server.read_timeout", "15s")
	v.SetDefault("server.write_timeout", "10m")
	v.SetDefault("server.shutdown_timeout", "30s")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
	v.SetDefault("dynamodb.enabled", false)
	v.SetDefault("dynamodb.table_name", "sync-runs")
	v.SetDefault("dynamodb.region", "eu-west-1")
	v.SetDefault("dynamodb.ttl_days", 90)
	v.SetDefault("metrics.enabled", false)
	v.SetDefault("metrics.namespace", "MemberRosterSync")
	v.SetDefault("metrics.region", "eu-west-1")

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	_ = v.BindEnv("google.credentials_file", "GOOGLE_CREDENTIALS_FILE")
	_ = v.BindEnv("google.credentials_secret", "GOOGLE_CREDENTIALS_SECRET")
	_ = v.BindEnv("google.spreadsheet_id", "SHEET_ID")
	_ = v.BindEnv("google.range", "SHEET_RANGE")
	_ = v.BindEnv("google.impersonate", "GOOGLE_IMPERSONATE_EMAIL")
	_ = v.BindEnv("notion.database_id", "NOTION_DB")
	_ = v.BindEnv("notion.token", "NOTION_TOKEN")
	_ = v.BindEnv("notion.token_secret", "NOTION_TOKEN_SECRET")
	_ = v.BindEnv("notion.name_property", "NOTION_NAME_PROPERTY")
	_ = v.BindEnv("notion.phone_property", "NOTION_PHONE_PROPERTY")
	_ = v.BindEnv("notion.member_id_property", "NOTION_MEMBER_ID_PROPERTY")
	_ = v.BindEnv("source.kind", "SOURCE_KIND")
	_ = v.BindEnv("source.xlsx_path", "SOURCE_XLSX_PATH")
	_ = v.BindEnv("contacts.enabled", "CONTACTS_ENABLED")
	_ = v.BindEnv("sync.dry_run", "DRY_RUN")
	_ = v.BindEnv("sync.interval", "SYNC_INTERVAL")
	_ = v.BindEnv("server.addr", "HTTP_ADDR")
	_ = v.BindEnv("server.path", "HTTP_PATH")
	_ = v.BindEnv("log.level", "LOG_LEVEL")
	_ = v.BindEnv("log.format", "LOG_FORMAT")
	_ = v.BindEnv("dynamodb.enabled", "DYNAMODB_ENABLED")
	_ = v.BindEnv("dynamodb.table_name", "DYNAMODB_TABLE_NAME")
	_ = v.BindEnv("dynamodb.region", "DYNAMODB_REGION")
	_ = v.BindEnv("dynamodb.endpoint", "DYNAMODB_ENDPOINT")
	_ = v.BindEnv("dynamodb.ttl_days", "DYNAMODB_TTL_DAYS")
	_ = v.BindEnv("metrics.enabled", "METRICS_ENABLED")
	_ = v.BindEnv("metrics.namespace", "METRICS_NAMESPACE")
	_ = v.BindEnv("metrics.region", "METRICS_REGION")

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, err
		}
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, err
			}
		}
	}

	cfg := &Config{}

	// Explicitly map values to avoid tag mismatch issues.
	cfg.Google.CredentialsFile = v.GetString("google.credentials_file")
	cfg.Google.CredentialsSecret = v.GetString("google.credentials_secret")
	cfg.Google.SpreadsheetID = v.GetString("google.spreadsheet_id")
	cfg.Google.Range = v.GetString("google.range")
	cfg.Google.Impersonate = v.GetString("google.impersonate")

	cfg.Notion.DatabaseID = v.GetString("notion.database_id")
	cfg.Notion.Token = v.GetString("notion.token")
	cfg.Notion.TokenSecret = v.GetString("notion.token_secret")
	cfg.Notion.NameProperty = v.GetString("notion.name_property")
	cfg.Notion.PhoneProperty = v.GetString("notion.phone_property")
	cfg.Notion.MemberIDProperty = v.GetString("notion.member_id_property")

	cfg.Source.Kind = strings.ToLower(v.GetString("source.kind"))
	cfg.Source.XLSXPath = v.GetString("source.xlsx_path")

	cfg.Contacts.Enabled = v.GetBool("contacts.enabled")

	cfg.Sync.DryRun = v.GetBool("sync.dry_run")
	cfg.Sync.Interval = v.GetDuration("sync.interval")

	cfg.Server.Addr = v.GetString("server.addr")
	cfg.Server.Path = v.GetString("server.path")
	cfg.Server.ReadTimeout = v.GetDuration("server.read_timeout")
	cfg.Server.WriteTimeout = v.GetDuration("server.write_timeout")
	cfg.Server.ShutdownTimeout = v.GetDuration("server.shutdown_timeout")

	cfg.Log.Level = v.GetString("log.level")
	cfg.Log.Format = v.GetString("log.format")

	cfg.DynamoDB.Enabled = v.GetBool("dynamodb.enabled")
	cfg.DynamoDB.TableName = v.GetString("dynamodb.table_name")
	cfg.DynamoDB.Region = v.GetString("dynamodb.region")
	cfg.DynamoDB.Endpoint = v.GetString("dynamodb.endpoint")
	cfg.DynamoDB.TTLDays = v.GetInt("dynamodb.ttl_days")

	cfg.Metrics.Enabled = v.GetBool("metrics.enabled")
	cfg.Metrics.Namespace = v.GetString("metrics.namespace")
	cfg.Metrics.Region = v.GetString("metrics.region")

	cfg.IsLambda = os.Getenv("AWS_LAMBDA_FUNCTION_NAME") != ""

	return cfg, nil
}
