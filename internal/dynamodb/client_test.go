package dynamodb

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/daniloc96/member-roster-sync/internal/models"
)

type mockDynamo struct {
	put   *dynamodb.PutItemInput
	query *dynamodb.QueryInput
	items []map[string]types.AttributeValue
	err   error
}

func (m *mockDynamo) PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	m.put = params
	return &dynamodb.PutItemOutput{}, m.err
}

func (m *mockDynamo) Query(ctx context.Context, params *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error) {
	m.query = params
	if m.err != nil {
		return nil, m.err
	}
	return &dynamodb.QueryOutput{Items: m.items}, nil
}

func sampleRun(t *testing.T) models.RunRecord {
	t.Helper()
	started := time.Date(2026, 3, 1, 6, 0, 0, 0, time.UTC)
	result := &models.SyncResult{TotalRows: 3, Created: 1, Updated: 1, Skipped: 1}
	return models.NewRunRecord("db-1", "run-1", models.TriggerSchedule, started, result, nil, 90)
}

func TestSaveRun(t *testing.T) {
	client := &mockDynamo{}
	store := NewStoreWithClient(client, "sync-runs")

	if err := store.SaveRun(t.Context(), sampleRun(t)); err != nil {
		t.Fatalf("SaveRun failed: %v", err)
	}
	if aws.ToString(client.put.TableName) != "sync-runs" {
		t.Fatalf("expected table sync-runs, got %s", aws.ToString(client.put.TableName))
	}
	pk, ok := client.put.Item["pk"].(*types.AttributeValueMemberS)
	if !ok || pk.Value != "DB#db-1" {
		t.Fatalf("expected pk DB#db-1, got %#v", client.put.Item["pk"])
	}
	status, ok := client.put.Item["status"].(*types.AttributeValueMemberS)
	if !ok || status.Value != string(models.RunSucceeded) {
		t.Fatalf("expected status succeeded, got %#v", client.put.Item["status"])
	}
}

func TestSaveRunError(t *testing.T) {
	store := NewStoreWithClient(&mockDynamo{err: errors.New("throttled")}, "sync-runs")

	if err := store.SaveRun(t.Context(), sampleRun(t)); err == nil {
		t.Fatalf("expected error")
	}
}

func TestListRuns(t *testing.T) {
	item, err := attributevalue.MarshalMap(sampleRun(t))
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	client := &mockDynamo{items: []map[string]types.AttributeValue{item}}
	store := NewStoreWithClient(client, "sync-runs")

	runs, err := store.ListRuns(t.Context(), "db-1", 0)
	if err != nil {
		t.Fatalf("ListRuns failed: %v", err)
	}
	if len(runs) != 1 || runs[0].RunID != "run-1" || runs[0].Created != 1 {
		t.Fatalf("unexpected runs: %+v", runs)
	}
	if aws.ToInt32(client.query.Limit) != DefaultHistoryLimit {
		t.Fatalf("expected default limit %d, got %d", DefaultHistoryLimit, aws.ToInt32(client.query.Limit))
	}
	if aws.ToBool(client.query.ScanIndexForward) {
		t.Fatalf("expected newest-first query")
	}
}

func TestMockStoreTracking(t *testing.T) {
	store := &MockStore{}

	if err := store.SaveRun(t.Context(), sampleRun(t)); err != nil {
		t.Fatalf("SaveRun failed: %v", err)
	}
	if len(store.SavedRuns) != 1 {
		t.Fatalf("expected 1 saved run, got %d", len(store.SavedRuns))
	}
	runs, _ := store.ListRuns(t.Context(), "db-1", 5)
	if len(runs) != 1 || runs[0].SK != store.SavedRuns[0].SK {
		t.Fatalf("unexpected runs: %+v", runs)
	}
}
