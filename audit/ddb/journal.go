/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package ddb

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log/slog"
	"regexp"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	sdk "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/suparena/redshiftctl/audit"
	rserrors "github.com/suparena/redshiftctl/errors"
	"github.com/suparena/redshiftctl/paging"
	"github.com/suparena/redshiftctl/registry"
)

// API is the subset of the DynamoDB client the journal uses.
type API interface {
	PutItem(ctx context.Context, params *sdk.PutItemInput, optFns ...func(*sdk.Options)) (*sdk.PutItemOutput, error)
	Query(ctx context.Context, params *sdk.QueryInput, optFns ...func(*sdk.Options)) (*sdk.QueryOutput, error)
}

var _ API = (*sdk.Client)(nil)

// timestampLayout sorts lexicographically in time order.
const timestampLayout = "2006-01-02T15:04:05.000000000Z"

const skPrefix = "AUDIT#"

// item is the stored shape of a record: the record plus a fixed-width
// timestamp the sort key is built from.
type item struct {
	audit.Record
	Timestamp string `dynamodbav:"Timestamp"`
}

// keySchema names a key pair the journal can query: the base table or a
// global secondary index.
type keySchema struct {
	// IndexName is empty for the base table.
	IndexName        string
	PartitionKeyName string
	SortKeyName      string
}

var (
	targetKeys    = keySchema{PartitionKeyName: "PK", SortKeyName: "SK"}
	operationKeys = keySchema{IndexName: "GSI1", PartitionKeyName: "GSI1PK", SortKeyName: "GSI1SK"}
)

func init() {
	registry.RegisterIndexMap[item](map[string]string{
		"PK":     "TARGET#{Target}",
		"SK":     skPrefix + "{Timestamp}#{ID}",
		"GSI1PK": "OPERATION#{Operation}",
		"GSI1SK": skPrefix + "{Timestamp}#{ID}",
	})
}

// Journal stores audit records in a DynamoDB single table with string PK and
// SK, plus a GSI1 index (GSI1PK, GSI1SK) keyed by operation.
type Journal struct {
	client    API
	tableName string
	logger    *slog.Logger
}

var _ audit.Journal = (*Journal)(nil)

// New creates a journal writing to tableName.
func New(client API, tableName string, logger *slog.Logger) *Journal {
	if logger == nil {
		logger = slog.Default()
	}
	return &Journal{client: client, tableName: tableName, logger: logger}
}

// NewFromConfig creates a journal backed by a DynamoDB client built from awsCfg.
func NewFromConfig(awsCfg aws.Config, tableName string, logger *slog.Logger) *Journal {
	return New(sdk.NewFromConfig(awsCfg), tableName, logger)
}

var macroPattern = regexp.MustCompile(`{([^}]+)}`)

func expandMacros(indexMap map[string]string, input any) (map[string]string, error) {
	av, err := attributevalue.MarshalMap(input)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal key input: %w", err)
	}

	res := make(map[string]string, len(indexMap))
	for field, template := range indexMap {
		res[field] = macroPattern.ReplaceAllStringFunc(template, func(macro string) string {
			switch tv := av[strings.Trim(macro, "{}")].(type) {
			case *types.AttributeValueMemberS:
				return tv.Value
			case *types.AttributeValueMemberN:
				return tv.Value
			case *types.AttributeValueMemberBOOL:
				return fmt.Sprintf("%v", tv.Value)
			default:
				return ""
			}
		})
	}
	return res, nil
}

// Put stores record with its expanded keys.
func (j *Journal) Put(ctx context.Context, record audit.Record) error {
	indexMap, ok := registry.GetIndexMap[item]()
	if !ok {
		return rserrors.ErrNoIndexMap
	}

	it := item{Record: record, Timestamp: record.CreatedAt.UTC().Format(timestampLayout)}
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return fmt.Errorf("failed to marshal audit record: %w", err)
	}

	expanded, err := expandMacros(indexMap, it)
	if err != nil {
		return err
	}
	for k, v := range expanded {
		av[k] = &types.AttributeValueMemberS{Value: v}
	}

	_, err = j.client.PutItem(ctx, &sdk.PutItemInput{
		TableName: aws.String(j.tableName),
		Item:      av,
	})
	if err != nil {
		return fmt.Errorf("PutItem failed: %w", err)
	}
	j.logger.Debug("audit record stored", "table", j.tableName, "id", record.ID, "operation", record.Operation)
	return nil
}

// List queries the records q selects, newest first. A target is read from the
// base table, an operation alone from GSI1. The paging cursor is the encoded
// LastEvaluatedKey of the previous page.
func (j *Journal) List(q audit.Query, opts ...paging.Option) *paging.Paginator[audit.Record] {
	fetch := func(ctx context.Context, marker *string, maxRecords *int32) (paging.Page[audit.Record], error) {
		input, err := j.buildQuery(q, marker, maxRecords)
		if err != nil {
			return paging.Page[audit.Record]{}, err
		}

		out, err := j.client.Query(ctx, input)
		if err != nil {
			return paging.Page[audit.Record]{}, fmt.Errorf("Query failed: %w", err)
		}

		var stored []item
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &stored); err != nil {
			return paging.Page[audit.Record]{}, fmt.Errorf("failed to unmarshal audit records: %w", err)
		}

		page := paging.Page[audit.Record]{Items: make([]audit.Record, len(stored))}
		for i, s := range stored {
			page.Items[i] = s.Record
		}
		if len(out.LastEvaluatedKey) > 0 {
			token, err := encodeToken(out.LastEvaluatedKey)
			if err != nil {
				return paging.Page[audit.Record]{}, err
			}
			page.NextToken = &token
		}
		return page, nil
	}
	return paging.New(fetch, opts...)
}

func (j *Journal) buildQuery(q audit.Query, marker *string, maxRecords *int32) (*sdk.QueryInput, error) {
	if err := q.Validate(); err != nil {
		return nil, err
	}

	indexMap, ok := registry.GetIndexMap[item]()
	if !ok {
		return nil, rserrors.ErrNoIndexMap
	}
	expanded, err := expandMacros(indexMap, item{Record: audit.Record{Target: q.Target, Operation: q.Operation}})
	if err != nil {
		return nil, err
	}

	keys := targetKeys
	if q.Target == "" {
		keys = operationKeys
	}

	from, to := skPrefix, skPrefix+"\uffff"
	if !q.Since.IsZero() {
		from = skPrefix + q.Since.UTC().Format(timestampLayout)
	}
	if !q.Until.IsZero() {
		// The suffix keeps records stamped exactly at Until.
		to = skPrefix + q.Until.UTC().Format(timestampLayout) + "#\uffff"
	}

	input := &sdk.QueryInput{
		TableName: aws.String(j.tableName),
		KeyConditionExpression: aws.String(fmt.Sprintf("%s = :pk AND %s BETWEEN :from AND :to",
			keys.PartitionKeyName, keys.SortKeyName)),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pk":   &types.AttributeValueMemberS{Value: expanded[keys.PartitionKeyName]},
			":from": &types.AttributeValueMemberS{Value: from},
			":to":   &types.AttributeValueMemberS{Value: to},
		},
		ScanIndexForward: aws.Bool(false),
		Limit:            maxRecords,
	}
	if keys.IndexName != "" {
		input.IndexName = aws.String(keys.IndexName)
	}
	if q.Target != "" && q.Operation != "" {
		input.FilterExpression = aws.String("#op = :op")
		input.ExpressionAttributeNames = map[string]string{"#op": "Operation"}
		input.ExpressionAttributeValues[":op"] = &types.AttributeValueMemberS{Value: q.Operation}
	}

	if marker != nil {
		key, err := decodeToken(*marker)
		if err != nil {
			return nil, err
		}
		input.ExclusiveStartKey = key
	}
	return input, nil
}

func encodeToken(key map[string]types.AttributeValue) (string, error) {
	var plain map[string]string
	if err := attributevalue.UnmarshalMap(key, &plain); err != nil {
		return "", fmt.Errorf("failed to encode paging token: %w", err)
	}
	data, err := json.Marshal(plain)
	if err != nil {
		return "", fmt.Errorf("failed to encode paging token: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(data), nil
}

func decodeToken(token string) (map[string]types.AttributeValue, error) {
	data, err := base64.RawURLEncoding.DecodeString(token)
	if err != nil {
		return nil, rserrors.NewValidationError("starting-token", "malformed audit paging token")
	}
	var plain map[string]string
	if err := json.Unmarshal(data, &plain); err != nil {
		return nil, rserrors.NewValidationError("starting-token", "malformed audit paging token")
	}
	return attributevalue.MarshalMap(plain)
}

// Timestamp formats t the way sort keys store it.
func Timestamp(t time.Time) string {
	return t.UTC().Format(timestampLayout)
}
