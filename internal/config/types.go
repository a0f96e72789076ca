package config

import "time"

// Source kinds.
const (
	SourceSheets = "sheets"
	SourceXLSX   = "xlsx"
)

// Config holds all configuration for the sync operation.
type Config struct {
	Google   GoogleConfig   `json:"google"`
	Notion   NotionConfig   `json:"notion"`
	Source   SourceConfig   `json:"source"`
	Contacts ContactsConfig `json:"contacts"`
	Sync     SyncConfig     `json:"sync"`
	Server   ServerConfig   `json:"server"`
	Log      LogConfig      `json:"log"`
	DynamoDB DynamoDBConfig `json:"dynamodb"`
	Metrics  MetricsConfig  `json:"metrics"`
	IsLambda bool           `json:"-"`
}

// GoogleConfig holds service account and spreadsheet settings.
type GoogleConfig struct {
	CredentialsFile   string `json:"credentials_file,omitempty"`
	CredentialsSecret string `json:"credentials_secret,omitempty"`
	SpreadsheetID     string `json:"spreadsheet_id"`
	Range             string `json:"range"`
	Impersonate       string `json:"impersonate,omitempty"`
}

// NotionConfig holds record store settings.
type NotionConfig struct {
	DatabaseID       string `json:"database_id"`
	Token            string `json:"-"`
	TokenSecret      string `json:"token_secret,omitempty"`
	NameProperty     string `json:"name_property"`
	PhoneProperty    string `json:"phone_property"`
	MemberIDProperty string `json:"member_id_property"`
}

// SourceConfig selects where member rows come from.
type SourceConfig struct {
	Kind     string `json:"kind"`
	XLSXPath string `json:"xlsx_path,omitempty"`
}

// ContactsConfig holds contacts mirror settings.
type ContactsConfig struct {
	Enabled bool `json:"enabled"`
}

// SyncConfig holds sync behavior settings.
type SyncConfig struct {
	DryRun   bool          `json:"dry_run"`
	Interval time.Duration `json:"interval"`
}

// ServerConfig holds the HTTP trigger settings.
type ServerConfig struct {
	Addr            string        `json:"addr"`
	Path            string        `json:"path"`
	ReadTimeout     time.Duration `json:"read_timeout"`
	WriteTimeout    time.Duration `json:"write_timeout"`
	ShutdownTimeout time.Duration `json:"shutdown_timeout"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `json:"level"`
	Format string `json:"format"`
}

// DynamoDBConfig holds run history settings.
type DynamoDBConfig struct {
	TableName string `json:"table_name"`
	Region    string `json:"region"`
	Endpoint  string `json:"endpoint,omitempty"`
	Enabled   bool   `json:"enabled"`
	TTLDays   int    `json:"ttl_days"`
}

// MetricsConfig holds CloudWatch settings.
type MetricsConfig struct {
	Enabled   bool   `json:"enabled"`
	Namespace string `json:"namespace"`
	Region    string `json:"region"`
}
