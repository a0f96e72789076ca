package config

import (
	"fmt"
	"strings"
)

// Validate ensures configuration is complete and well-formed.
func Validate(cfg *Config) error {
	if cfg == nil {
		return fmt.Errorf("config is nil")
	}

	var errs []string

	requireNonEmpty := func(value string, field string) {
		if value == "" {
			errs = append(errs, fmt.Sprintf("%s is required", field))
		}
	}

	requireOneOf := func(a string, b string, fieldA string, fieldB string) {
		if a == "" && b == "" {
			errs = append(errs, fmt.Sprintf("one of %s or %s is required", fieldA, fieldB))
		}
	}

	requireNonEmpty(cfg.Notion.DatabaseID, "notion.database_id")
	requireNonEmpty(cfg.Notion.NameProperty, "notion.name_property")
	requireNonEmpty(cfg.Notion.PhoneProperty, "notion.phone_property")
	requireNonEmpty(cfg.Notion.MemberIDProperty, "notion.member_id_property")
	requireNonEmpty(cfg.Google.Range, "google.range")

	switch cfg.Source.Kind {
	case SourceSheets:
		requireNonEmpty(cfg.Google.SpreadsheetID, "google.spreadsheet_id")
	case SourceXLSX:
		requireNonEmpty(cfg.Source.XLSXPath, "source.xlsx_path")
	default:
		errs = append(errs, fmt.Sprintf("source.kind must be %q or %q", SourceSheets, SourceXLSX))
	}

	if cfg.IsLambda {
		requireNonEmpty(cfg.Google.CredentialsSecret, "google.credentials_secret")
		requireOneOf(cfg.Notion.Token, cfg.Notion.TokenSecret, "notion.token", "notion.token_secret")
	} else {
		requireOneOf(cfg.Google.CredentialsFile, cfg.Google.CredentialsSecret, "google.credentials_file", "google.credentials_secret")
		requireOneOf(cfg.Notion.Token, cfg.Notion.TokenSecret, "notion.token", "notion.token_secret")
	}

	if cfg.Sync.Interval <= 0 {
		errs = append(errs, "sync.interval must be positive")
	}

	if cfg.Server.Path != "" && !strings.HasPrefix(cfg.Server.Path, "/") {
		errs = append(errs, "server.path must start with /")
	}

	if cfg.DynamoDB.Enabled {
		requireNonEmpty(cfg.DynamoDB.TableName, "dynamodb.table_name")
		requireNonEmpty(cfg.DynamoDB.Region, "dynamodb.region")
		if cfg.DynamoDB.TTLDays <= 0 {
			errs = append(errs, "dynamodb.ttl_days must be positive")
		}
	}

	if cfg.Metrics.Enabled {
		requireNonEmpty(cfg.Metrics.Namespace, "metrics.namespace")
		requireNonEmpty(cfg.Metrics.Region, "metrics.region")
	}

	if len(errs) > 0 {
		return fmt.Errorf("config validation failed: %s", strings.Join(errs, "; "))
	}

	return nil
}
