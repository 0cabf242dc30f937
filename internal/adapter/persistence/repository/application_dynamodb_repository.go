package repository

import (
	"context"
	"errors"
	"sort"
	"strconv"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"permit_tracker/internal/domain/entities"
	"permit_tracker/internal/usecase/interfaces"
)

const (
	applicationsKey            = "application_number"
	applicationsStatusIndex    = "current_status-index"
	applicationsCreatedByIndex = "created_by-index"
	applicationsPermitIndex    = "permit_type_id-index"
)

type applicationItem struct {
	ApplicationNumber    string `dynamodbav:"application_number"`
	ProjectDescription   string `dynamodbav:"project_description"`
	EstimatedValue       int64  `dynamodbav:"estimated_value"`
	CurrentStatus        string `dynamodbav:"current_status"`
	Priority             int    `dynamodbav:"priority"`
	SubmissionDate       string `dynamodbav:"submission_date"`
	TargetCompletionDate string `dynamodbav:"target_completion_date,omitempty"`
	ActualCompletionDate string `dynamodbav:"actual_completion_date,omitempty"`
	CreatedBy            string `dynamodbav:"created_by,omitempty"`
	PermitTypeID         string `dynamodbav:"permit_type_id"`
	PropertyID           string `dynamodbav:"property_id"`
	LastModifiedBy       string `dynamodbav:"last_modified_by,omitempty"`
	LastModifiedDate     string `dynamodbav:"last_modified_date"`
}

// ApplicationDynamoRepository persists Application entities in DynamoDB.
//
// Table requirements:
//   - PK: application_number (string)
//   - GSI: current_status-index (PK: current_status)
//   - GSI: created_by-index (PK: created_by)
//   - GSI: permit_type_id-index (PK: permit_type_id)
//
// Status transitions write the application and its history row in one transaction.
type ApplicationDynamoRepository struct {
	apps    table
	history table
}

var _ interfaces.IApplicationRepository = (*ApplicationDynamoRepository)(nil)

func NewApplicationDynamoRepository(ddb DynamoAPI, applicationsTable, historyTable string) *ApplicationDynamoRepository {
	return &ApplicationDynamoRepository{
		apps:    table{ddb: ddb, name: applicationsTable},
		history: table{ddb: ddb, name: historyTable},
	}
}

func (r *ApplicationDynamoRepository) Create(ctx context.Context, a entities.Application) (entities.Application, error) {
	if err := r.apps.create(ctx, toApplicationItem(a), applicationsKey); err != nil {
		return entities.Application{}, err
	}
	return a, nil
}

func (r *ApplicationDynamoRepository) GetByNumber(ctx context.Context, number string) (entities.Application, error) {
	var it applicationItem
	found, err := r.apps.get(ctx, stringKey(applicationsKey, number), &it)
	if err != nil || !found {
		return entities.Application{}, err
	}
	return fromApplicationItem(it), nil
}

// List uses the most selective index available for the filter and applies the rest in memory.
// Results are ordered by submission date, newest first.
func (r *ApplicationDynamoRepository) List(ctx context.Context, filter interfaces.ApplicationFilter) ([]entities.Application, error) {
	var raw []map[string]types.AttributeValue
	var err error
	switch {
	case filter.Status != "":
		raw, err = r.apps.queryIndex(ctx, applicationsStatusIndex, "current_status", filter.Status)
	case filter.CreatedBy != "":
		raw, err = r.apps.queryIndex(ctx, applicationsCreatedByIndex, "created_by", filter.CreatedBy)
	case filter.PermitTypeID != "":
		raw, err = r.apps.queryIndex(ctx, applicationsPermitIndex, "permit_type_id", filter.PermitTypeID)
	default:
		raw, err = r.apps.scan(ctx)
	}
	if err != nil {
		return nil, err
	}

	items, err := unmarshalItems[applicationItem](raw)
	if err != nil {
		return nil, err
	}
	out := make([]entities.Application, 0, len(items))
	for _, it := range items {
		a := fromApplicationItem(it)
		if matchesApplicationFilter(a, filter) {
			out = append(out, a)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].SubmissionDate.After(out[j].SubmissionDate)
	})
	return out, nil
}

func matchesApplicationFilter(a entities.Application, f interfaces.ApplicationFilter) bool {
	if f.Status != "" && a.CurrentStatus != f.Status {
		return false
	}
	if f.CreatedBy != "" && a.CreatedBy != f.CreatedBy {
		return false
	}
	if f.PermitTypeID != "" && a.PermitTypeID != f.PermitTypeID {
		return false
	}
	return true
}

// Update writes the mutable fields. Status and identity fields are never touched here.
func (r *ApplicationDynamoRepository) Update(ctx context.Context, a entities.Application) (entities.Application, error) {
	return r.update(ctx, a.ApplicationNumber, func() (string, map[string]types.AttributeValue, map[string]string) {
		sets := []string{
			"#desc = :desc",
			"#value = :value",
			"#priority = :priority",
			"#property = :property",
			"#modified_date = :modified_date",
		}
		vals := map[string]types.AttributeValue{
			":desc":          &types.AttributeValueMemberS{Value: a.ProjectDescription},
			":value":         numberValue(int64(a.EstimatedValue)),
			":priority":      numberValue(int64(a.Priority)),
			":property":      &types.AttributeValueMemberS{Value: a.PropertyID},
			":modified_date": &types.AttributeValueMemberS{Value: formatTime(a.LastModifiedDate)},
		}
		names := map[string]string{
			"#desc":          "project_description",
			"#value":         "estimated_value",
			"#priority":      "priority",
			"#property":      "property_id",
			"#modified_date": "last_modified_date",
		}
		if a.LastModifiedBy != "" {
			sets = append(sets, "#modified_by = :modified_by")
			vals[":modified_by"] = &types.AttributeValueMemberS{Value: a.LastModifiedBy}
			names["#modified_by"] = "last_modified_by"
		}
		if a.TargetCompletionDate != nil {
			sets = append(sets, "#target = :target")
			vals[":target"] = &types.AttributeValueMemberS{Value: formatTime(*a.TargetCompletionDate)}
			names["#target"] = "target_completion_date"
		}
		return "SET " + strings.Join(sets, ", "), vals, names
	})
}

func (r *ApplicationDynamoRepository) update(
	ctx context.Context,
	number string,
	build func() (updateExpr string, values map[string]types.AttributeValue, names map[string]string),
) (entities.Application, error) {
	updateExpr, values, names := build()

	out, err := r.apps.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                 aws.String(r.apps.name),
		Key:                       stringKey(applicationsKey, number),
		ConditionExpression:       aws.String("attribute_exists(#id)"),
		UpdateExpression:          aws.String(updateExpr),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames:  mergeNames(names, map[string]string{"#id": applicationsKey}),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		if isConditionalCheckFailed(err) {
			return entities.Application{}, nil
		}
		return entities.Application{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Application{}, nil
	}
	var it applicationItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Application{}, err
	}
	return fromApplicationItem(it), nil
}

// TransitionStatus updates current_status only if it still equals change.From, and appends the
// history row in the same transaction.
func (r *ApplicationDynamoRepository) TransitionStatus(ctx context.Context, change interfaces.StatusChange) (entities.Application, error) {
	historyAV, err := attributevalue.MarshalMap(toStatusHistoryItem(change.History))
	if err != nil {
		return entities.Application{}, err
	}

	sets := []string{"#status = :to", "#modified_date = :at"}
	vals := map[string]types.AttributeValue{
		":to":   &types.AttributeValueMemberS{Value: change.To},
		":from": &types.AttributeValueMemberS{Value: change.From},
		":at":   &types.AttributeValueMemberS{Value: formatTime(change.ModifiedAt)},
	}
	names := map[string]string{
		"#id":            applicationsKey,
		"#status":        "current_status",
		"#modified_date": "last_modified_date",
	}
	if change.ModifiedBy != "" {
		sets = append(sets, "#modified_by = :by")
		vals[":by"] = &types.AttributeValueMemberS{Value: change.ModifiedBy}
		names["#modified_by"] = "last_modified_by"
	}
	if change.ActualCompletionDate != nil {
		sets = append(sets, "#done = :done")
		vals[":done"] = &types.AttributeValueMemberS{Value: formatTime(*change.ActualCompletionDate)}
		names["#done"] = "actual_completion_date"
	}

	_, err = r.apps.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{
				Update: &types.Update{
					TableName:                 aws.String(r.apps.name),
					Key:                       stringKey(applicationsKey, change.ApplicationNumber),
					UpdateExpression:          aws.String("SET " + strings.Join(sets, ", ")),
					ConditionExpression:       aws.String("attribute_exists(#id) AND #status = :from"),
					ExpressionAttributeNames:  names,
					ExpressionAttributeValues: vals,
				},
			},
			{
				Put: &types.Put{
					TableName:           aws.String(r.history.name),
					Item:                historyAV,
					ConditionExpression: aws.String("attribute_not_exists(#sk)"),
					ExpressionAttributeNames: map[string]string{
						"#sk": historySortKey,
					},
				},
			},
		},
	})
	if err != nil {
		var tce *types.TransactionCanceledException
		if errors.As(err, &tce) {
			for _, reason := range tce.CancellationReasons {
				if aws.ToString(reason.Code) == "ConditionalCheckFailed" {
					return entities.Application{}, interfaces.ErrConcurrentModification
				}
			}
		}
		return entities.Application{}, err
	}
	return r.GetByNumber(ctx, change.ApplicationNumber)
}

func (r *ApplicationDynamoRepository) Delete(ctx context.Context, number string) error {
	return r.apps.delete(ctx, stringKey(applicationsKey, number))
}

func toApplicationItem(a entities.Application) applicationItem {
	return applicationItem{
		ApplicationNumber:    a.ApplicationNumber,
		ProjectDescription:   a.ProjectDescription,
		EstimatedValue:       int64(a.EstimatedValue),
		CurrentStatus:        a.CurrentStatus,
		Priority:             int(a.Priority),
		SubmissionDate:       formatTime(a.SubmissionDate),
		TargetCompletionDate: formatTimePtr(a.TargetCompletionDate),
		ActualCompletionDate: formatTimePtr(a.ActualCompletionDate),
		CreatedBy:            a.CreatedBy,
		PermitTypeID:         a.PermitTypeID,
		PropertyID:           a.PropertyID,
		LastModifiedBy:       a.LastModifiedBy,
		LastModifiedDate:     formatTime(a.LastModifiedDate),
	}
}

func fromApplicationItem(it applicationItem) entities.Application {
	return entities.Application{
		ApplicationNumber:    it.ApplicationNumber,
		ProjectDescription:   it.ProjectDescription,
		EstimatedValue:       entities.Money(it.EstimatedValue),
		CurrentStatus:        it.CurrentStatus,
		Priority:             entities.Priority(it.Priority),
		SubmissionDate:       parseTime(it.SubmissionDate),
		TargetCompletionDate: parseTimePtr(it.TargetCompletionDate),
		ActualCompletionDate: parseTimePtr(it.ActualCompletionDate),
		CreatedBy:            it.CreatedBy,
		PermitTypeID:         it.PermitTypeID,
		PropertyID:           it.PropertyID,
		LastModifiedBy:       it.LastModifiedBy,
		LastModifiedDate:     parseTime(it.LastModifiedDate),
	}
}

func numberValue(v int64) *types.AttributeValueMemberN {
	return &types.AttributeValueMemberN{Value: strconv.FormatInt(v, 10)}
}
