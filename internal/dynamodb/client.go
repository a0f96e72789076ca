package dynamodb

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/daniloc96/member-roster-sync/internal/config"
	"github.com/daniloc96/member-roster-sync/internal/models"
)

// DefaultHistoryLimit is the number of runs ListRuns returns when no limit is given.
const DefaultHistoryLimit = 20

// API defines the DynamoDB operations used by the run history store.
type API interface {
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	Query(ctx context.Context, params *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error)
}

// Store implements the RunStore interface using DynamoDB.
type Store struct {
	client    API
	tableName string
}

// NewStore creates a new DynamoDB-backed RunStore.
func NewStore(ctx context.Context, cfg config.DynamoDBConfig) (*Store, error) {
	var opts []func(*awsconfig.LoadOptions) error
	opts = append(opts, awsconfig.WithRegion(cfg.Region))

	if cfg.Endpoint != "" {
		// Local development: use static credentials and custom endpoint.
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider("local", "local", ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("loading AWS config: %w", err)
	}

	var clientOpts []func(*dynamodb.Options)
	if cfg.Endpoint != "" {
		clientOpts = append(clientOpts, func(o *dynamodb.Options) {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		})
	}

	return NewStoreWithClient(dynamodb.NewFromConfig(awsCfg, clientOpts...), cfg.TableName), nil
}

// NewStoreWithClient creates a Store around an existing client.
func NewStoreWithClient(client API, tableName string) *Store {
	return &Store{client: client, tableName: tableName}
}

// SaveRun stores the summary of one sync run.
func (s *Store) SaveRun(ctx context.Context, run models.RunRecord) error {
	item, err := attributevalue.MarshalMap(run)
	if err != nil {
		return fmt.Errorf("marshaling run: %w", err)
	}

	_, err = s.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(s.tableName),
		Item:      item,
	})
	if err != nil {
		return fmt.Errorf("saving run: %w", err)
	}

	return nil
}

// ListRuns returns the most recent runs for a database, newest first.
func (s *Store) ListRuns(ctx context.Context, databaseID string, limit int) ([]models.RunRecord, error) {
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}

	result, err := s.client.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(s.tableName),
		KeyConditionExpression: aws.String("pk = :pk AND begins_with(sk, :sk)"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pk": &types.AttributeValueMemberS{Value: models.RunPartitionKey(databaseID)},
			":sk": &types.AttributeValueMemberS{Value: "RUN#"},
		},
		ScanIndexForward: aws.Bool(false),
		Limit:            aws.Int32(int32(limit)),
	})
	if err != nil {
		return nil, fmt.Errorf("querying runs: %w", err)
	}

	var runs []models.RunRecord
	if err := attributevalue.UnmarshalListOfMaps(result.Items, &runs); err != nil {
		return nil, fmt.Errorf("unmarshaling runs: %w", err)
	}

	return runs, nil
}
