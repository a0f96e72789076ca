package main

import (
	"context"
	"fmt"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/daniloc96/member-roster-sync/cmd"
	"github.com/daniloc96/member-roster-sync/internal/config"
	"github.com/daniloc96/member-roster-sync/internal/credentials"
	store "github.com/daniloc96/member-roster-sync/internal/dynamodb"
	"github.com/daniloc96/member-roster-sync/internal/google"
	"github.com/daniloc96/member-roster-sync/internal/metrics"
	"github.com/daniloc96/member-roster-sync/internal/models"
	"github.com/daniloc96/member-roster-sync/internal/notion"
	"github.com/daniloc96/member-roster-sync/internal/secrets"
	"github.com/daniloc96/member-roster-sync/internal/sync"
	"github.com/daniloc96/member-roster-sync/internal/workbook"
	"github.com/sirupsen/logrus"
)

func main() {
	cmd.SetLambdaHandler(HandleRequest)
	cmd.SetRunSync(runSync)
	cmd.SetListRuns(listRuns)
	cmd.Execute()
}

// HandleRequest is the AWS Lambda handler.
func HandleRequest(ctx context.Context, event models.LambdaEvent) (*models.LambdaResponse, error) {
	if event.Source != "" || event.DetailType != "" {
		if !event.IsScheduled() {
			return models.NewErrorResponse(fmt.Errorf("unsupported event source")), nil
		}
	}
	cfg, err := config.Load("")
	if err != nil {
		return models.NewErrorResponse(err), nil
	}

	cfg.Sync.DryRun = event.IsDryRun(cfg.Sync.DryRun)
	if err := config.Validate(cfg); err != nil {
		return models.NewErrorResponse(err), nil
	}

	result, err := runSync(ctx, cfg, event.Trigger())
	if err != nil {
		return models.NewErrorResponse(err), nil
	}

	return models.NewSuccessResponse(result), nil
}

var runSync = func(ctx context.Context, cfg *config.Config, trigger models.Trigger) (*models.SyncResult, error) {
	loader := credentials.NewLoader(cfg, secrets.NewResolver())
	engine := sync.NewEngine(loader, connector(cfg), cfg)

	if cfg.DynamoDB.Enabled {
		runStore, storeErr := store.NewStore(ctx, cfg.DynamoDB)
		if storeErr != nil {
			logrus.WithError(storeErr).Warn("⚠ DynamoDB store init failed, run history disabled")
		} else {
			engine.SetRunStore(runStore)
			logrus.WithFields(logrus.Fields{
				"table":    cfg.DynamoDB.TableName,
				"region":   cfg.DynamoDB.Region,
				"ttl_days": cfg.DynamoDB.TTLDays,
			}).Debug("✅ Run history enabled (DynamoDB)")
		}
	}

	if cfg.Metrics.Enabled {
		awsCfg, awsErr := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.Metrics.Region))
		if awsErr != nil {
			logrus.WithError(awsErr).Warn("⚠ AWS config load failed, metrics disabled")
		} else {
			engine.SetMetrics(metrics.NewEmitter(awsCfg, cfg.Metrics.Namespace))
		}
	}

	return engine.Sync(ctx, trigger)
}

var listRuns = func(ctx context.Context, cfg *config.Config, limit int) ([]models.RunRecord, error) {
	runStore, err := store.NewStore(ctx, cfg.DynamoDB)
	if err != nil {
		return nil, err
	}
	return runStore.ListRuns(ctx, cfg.Notion.DatabaseID, limit)
}

// connector builds the row source, record store, and contacts directory for
// one run from its credentials.
func connector(cfg *config.Config) sync.Connector {
	return sync.ConnectorFunc(func(ctx context.Context, creds *models.Credentials) (sync.Backends, error) {
		var backends sync.Backends

		opts, err := google.ClientOptions(ctx, creds.ServiceAccount, cfg.Google.Impersonate)
		if err != nil {
			return backends, err
		}

		switch cfg.Source.Kind {
		case config.SourceXLSX:
			source, err := workbook.NewSource(cfg.Source.XLSXPath, cfg.Google.Range)
			if err != nil {
				return backends, err
			}
			backends.Rows = source
		default:
			source, err := google.NewSheetsSource(ctx, cfg.Google.SpreadsheetID, cfg.Google.Range, opts...)
			if err != nil {
				return backends, err
			}
			backends.Rows = source
		}

		records, err := notion.NewStore(creds.NotionToken, cfg.Notion.DatabaseID, notion.SchemaFromConfig(cfg.Notion))
		if err != nil {
			return backends, err
		}
		backends.Records = records

		if cfg.Contacts.Enabled {
			contacts, err := google.NewContactsClient(ctx, opts...)
			if err != nil {
				return backends, err
			}
			backends.Contacts = contacts
		}

		return backends, nil
	})
}
