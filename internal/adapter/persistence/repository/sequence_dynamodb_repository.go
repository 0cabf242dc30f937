package repository

import (
	"context"
	"fmt"
	"strconv"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"permit_tracker/internal/usecase/interfaces"
)

const (
	sequencesKey  = "scope"
	sequenceValue = "current_value"
)

// SequenceDynamoRepository allocates yearly sequence numbers with an atomic counter.
//
// Table requirements:
//   - PK: scope (string, "{scope}#{year}")
//
// Each call to Next increments the counter server side, so concurrent callers never
// receive the same number.
type SequenceDynamoRepository struct {
	t table
}

var _ interfaces.ISequenceRepository = (*SequenceDynamoRepository)(nil)

func NewSequenceDynamoRepository(ddb DynamoAPI, tableName string) *SequenceDynamoRepository {
	return &SequenceDynamoRepository{t: table{ddb: ddb, name: tableName}}
}

func (r *SequenceDynamoRepository) Next(ctx context.Context, scope string, year int) (int, error) {
	out, err := r.t.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:        aws.String(r.t.name),
		Key:              stringKey(sequencesKey, sequenceScopeKey(scope, year)),
		UpdateExpression: aws.String("ADD #v :one"),
		ExpressionAttributeNames: map[string]string{
			"#v": sequenceValue,
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":one": &types.AttributeValueMemberN{Value: "1"},
		},
		ReturnValues: types.ReturnValueUpdatedNew,
	})
	if err != nil {
		return 0, err
	}

	n, ok := out.Attributes[sequenceValue].(*types.AttributeValueMemberN)
	if !ok {
		return 0, fmt.Errorf("sequence %s: missing %s in response", sequenceScopeKey(scope, year), sequenceValue)
	}
	return strconv.Atoi(n.Value)
}

func sequenceScopeKey(scope string, year int) string {
	return fmt.Sprintf("%s#%d", scope, year)
}
