package main

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/daniloc96/member-roster-sync/internal/config"
	"github.com/daniloc96/member-roster-sync/internal/models"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("GOOGLE_CREDENTIALS_FILE", "/tmp/creds.json")
	t.Setenv("SHEET_ID", "sheet-id")
	t.Setenv("NOTION_DB", "db-1")
	t.Setenv("NOTION_TOKEN", "secret_test")
	t.Setenv("AWS_LAMBDA_FUNCTION_NAME", "")
}

func TestHandleRequest(t *testing.T) {
	originalRunSync := runSync
	defer func() { runSync = originalRunSync }()
	setRequiredEnv(t)

	var gotTrigger models.Trigger
	runSync = func(ctx context.Context, cfg *config.Config, trigger models.Trigger) (*models.SyncResult, error) {
		gotTrigger = trigger
		return &models.SyncResult{
			DryRun:    cfg.Sync.DryRun,
			StartTime: time.Now(),
			EndTime:   time.Now(),
			TotalRows: 2,
			Created:   1,
			Updated:   1,
		}, nil
	}

	dryRun := false
	event := models.LambdaEvent{DryRun: &dryRun}
	resp, err := HandleRequest(context.Background(), event)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if resp.StatusCode != 200 {
		t.Fatalf("expected status 200, got %d (%s)", resp.StatusCode, resp.Message)
	}
	if resp.Result == nil || resp.Result.DryRun != dryRun {
		t.Fatalf("expected dry_run %v, got %#v", dryRun, resp.Result)
	}
	if resp.Message != "SYNC DONE! 2 members processed (Created: 1 | Updated: 1)" {
		t.Fatalf("unexpected message: %s", resp.Message)
	}
	if gotTrigger != models.TriggerLambda {
		t.Fatalf("expected lambda trigger, got %s", gotTrigger)
	}
}

func TestHandleRequestDryRunMessage(t *testing.T) {
	originalRunSync := runSync
	defer func() { runSync = originalRunSync }()
	setRequiredEnv(t)

	runSync = func(ctx context.Context, cfg *config.Config, trigger models.Trigger) (*models.SyncResult, error) {
		return &models.SyncResult{DryRun: cfg.Sync.DryRun, TotalRows: 2, Created: 2}, nil
	}

	dryRun := true
	event := models.LambdaEvent{DryRun: &dryRun}
	resp, err := HandleRequest(context.Background(), event)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if resp.StatusCode != 200 {
		t.Fatalf("expected status 200, got %d (%s)", resp.StatusCode, resp.Message)
	}
	if !strings.HasPrefix(resp.Message, "[DRY RUN]") {
		t.Fatalf("expected dry-run message, got %s", resp.Message)
	}
}

func TestHandleRequestScheduledEvent(t *testing.T) {
	originalRunSync := runSync
	defer func() { runSync = originalRunSync }()
	setRequiredEnv(t)

	var gotTrigger models.Trigger
	runSync = func(ctx context.Context, cfg *config.Config, trigger models.Trigger) (*models.SyncResult, error) {
		gotTrigger = trigger
		return &models.SyncResult{}, nil
	}

	event := models.LambdaEvent{Source: "aws.events", DetailType: "Scheduled Event"}
	resp, err := HandleRequest(context.Background(), event)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if resp.StatusCode != 200 {
		t.Fatalf("expected status 200, got %d (%s)", resp.StatusCode, resp.Message)
	}
	if resp.Message != "SYNC DONE — No members" {
		t.Fatalf("unexpected message: %s", resp.Message)
	}
	if gotTrigger != models.TriggerSchedule {
		t.Fatalf("expected schedule trigger, got %s", gotTrigger)
	}
}

func TestHandleRequestUnsupportedEvent(t *testing.T) {
	originalRunSync := runSync
	defer func() { runSync = originalRunSync }()
	setRequiredEnv(t)

	called := false
	runSync = func(ctx context.Context, cfg *config.Config, trigger models.Trigger) (*models.SyncResult, error) {
		called = true
		return &models.SyncResult{}, nil
	}

	resp, _ := HandleRequest(context.Background(), models.LambdaEvent{Source: "aws.s3"})
	if resp.StatusCode != 500 || called {
		t.Fatalf("expected rejection without sync, got %d (called=%v)", resp.StatusCode, called)
	}
}

func TestHandleRequestSyncError(t *testing.T) {
	originalRunSync := runSync
	defer func() { runSync = originalRunSync }()
	setRequiredEnv(t)

	runSync = func(ctx context.Context, cfg *config.Config, trigger models.Trigger) (*models.SyncResult, error) {
		return nil, errors.New("credentials: secret not found")
	}

	resp, err := HandleRequest(context.Background(), models.LambdaEvent{})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if resp.StatusCode != 500 || resp.Message != "ERROR: credentials: secret not found" {
		t.Fatalf("unexpected response: %d %s", resp.StatusCode, resp.Message)
	}
}

func TestHandleRequestInvalidConfig(t *testing.T) {
	originalRunSync := runSync
	defer func() { runSync = originalRunSync }()
	setRequiredEnv(t)
	t.Setenv("NOTION_DB", "")

	resp, _ := HandleRequest(context.Background(), models.LambdaEvent{})
	if resp.StatusCode != 500 || !strings.Contains(resp.Message, "notion.database_id") {
		t.Fatalf("expected validation error, got %d %s", resp.StatusCode, resp.Message)
	}
}
