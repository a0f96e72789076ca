package metrics

import (
	"context"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/cloudwatch"
	"github.com/daniloc96/member-roster-sync/internal/models"
)

type mockCloudWatch struct {
	input *cloudwatch.PutMetricDataInput
}

func (m *mockCloudWatch) PutMetricData(ctx context.Context, params *cloudwatch.PutMetricDataInput, optFns ...func(*cloudwatch.Options)) (*cloudwatch.PutMetricDataOutput, error) {
	m.input = params
	return &cloudwatch.PutMetricDataOutput{}, nil
}

func TestEmitResult(t *testing.T) {
	client := &mockCloudWatch{}
	emitter := &Emitter{client: client, namespace: "TestNamespace"}

	result := &models.SyncResult{
		Trigger:       models.TriggerHTTP,
		TotalRows:     5,
		Created:       2,
		Updated:       1,
		Skipped:       1,
		Failed:        1,
		ContactsAdded: 3,
		Errors:        []string{"update M1: conflict"},
	}

	err := emitter.EmitResult(context.Background(), result)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if client.input == nil {
		t.Fatalf("expected metric input to be sent")
	}
	if *client.input.Namespace != "TestNamespace" {
		t.Fatalf("expected namespace TestNamespace, got %s", aws.ToString(client.input.Namespace))
	}
	if len(client.input.MetricData) != 8 {
		t.Fatalf("expected 8 metrics, got %d", len(client.input.MetricData))
	}
	first := client.input.MetricData[0]
	if aws.ToString(first.MetricName) != "RowsTotal" || aws.ToFloat64(first.Value) != 5 {
		t.Fatalf("unexpected first metric: %s=%v", aws.ToString(first.MetricName), aws.ToFloat64(first.Value))
	}
	if len(first.Dimensions) != 1 || aws.ToString(first.Dimensions[0].Value) != "http" {
		t.Fatalf("unexpected dimensions: %+v", first.Dimensions)
	}
}

func TestEmitResultDryRunDimension(t *testing.T) {
	client := &mockCloudWatch{}
	emitter := &Emitter{client: client, namespace: "TestNamespace"}

	if err := emitter.EmitResult(context.Background(), &models.SyncResult{Trigger: models.TriggerCLI, DryRun: true}); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(client.input.MetricData[0].Dimensions) != 2 {
		t.Fatalf("expected DryRun dimension")
	}
}
