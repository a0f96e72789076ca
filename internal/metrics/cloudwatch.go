package metrics

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/cloudwatch"
	"github.com/aws/aws-sdk-go-v2/service/cloudwatch/types"
	"github.com/daniloc96/member-roster-sync/internal/models"
)

// CloudWatchAPI defines the CloudWatch client interface used for metrics.
type CloudWatchAPI interface {
	PutMetricData(ctx context.Context, params *cloudwatch.PutMetricDataInput, optFns ...func(*cloudwatch.Options)) (*cloudwatch.PutMetricDataOutput, error)
}

// Emitter sends sync metrics to CloudWatch.
type Emitter struct {
	client    CloudWatchAPI
	namespace string
}

// NewEmitter creates a CloudWatch metrics emitter.
func NewEmitter(cfg aws.Config, namespace string) *Emitter {
	return &Emitter{
		client:    cloudwatch.NewFromConfig(cfg),
		namespace: namespace,
	}
}

// EmitResult publishes the counters of one run to CloudWatch. Dry runs are
// tagged with a DryRun dimension so they do not mix with real runs.
func (e *Emitter) EmitResult(ctx context.Context, result *models.SyncResult) error {
	dims := []types.Dimension{
		{Name: aws.String("Trigger"), Value: aws.String(string(result.Trigger))},
	}
	if result.DryRun {
		dims = append(dims, types.Dimension{Name: aws.String("DryRun"), Value: aws.String("true")})
	}

	metrics := []types.MetricDatum{
		metricDatum("RowsTotal", result.TotalRows, dims),
		metricDatum("Created", result.Created, dims),
		metricDatum("Updated", result.Updated, dims),
		metricDatum("Skipped", result.Skipped, dims),
		metricDatum("Failed", result.Failed, dims),
		metricDatum("ContactsAdded", result.ContactsAdded, dims),
		metricDatum("ContactsFailed", result.ContactsFailed, dims),
		metricDatum("Errors", len(result.Errors), dims),
	}

	_, err := e.client.PutMetricData(ctx, &cloudwatch.PutMetricDataInput{
		Namespace:  aws.String(e.namespace),
		MetricData: metrics,
	})
	return err
}

func metricDatum(name string, value int, dims []types.Dimension) types.MetricDatum {
	return types.MetricDatum{
		MetricName: aws.String(name),
		Unit:       types.StandardUnitCount,
		Value:      aws.Float64(float64(value)),
		Dimensions: dims,
	}
}
