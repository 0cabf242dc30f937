package repository

import (
	"context"
	"sort"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"permit_tracker/internal/domain/entities"
	"permit_tracker/internal/usecase/interfaces"
)

const (
	feeSchedulesKey         = "id"
	feeSchedulesPermitIndex = "permit_type_id-index"
)

type feeScheduleItem struct {
	ID            string `dynamodbav:"id"`
	PermitTypeID  string `dynamodbav:"permit_type_id"`
	Name          string `dynamodbav:"schedule_name"`
	EffectiveDate string `dynamodbav:"effective_date"`
	ExpiryDate    string `dynamodbav:"expiry_date,omitempty"`
	BaseFee       int64  `dynamodbav:"base_fee"`
	ValuationRate int64  `dynamodbav:"valuation_rate"`
	MinimumFee    int64  `dynamodbav:"minimum_fee"`
	MaximumFee    int64  `dynamodbav:"maximum_fee"`
	FeeType       string `dynamodbav:"fee_type"`
	CreatedAt     string `dynamodbav:"created_at"`
	UpdatedAt     string `dynamodbav:"updated_at"`
}

// FeeScheduleDynamoRepository persists fee schedules.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: permit_type_id-index (PK: permit_type_id)
type FeeScheduleDynamoRepository struct {
	t table
}

var _ interfaces.IFeeScheduleRepository = (*FeeScheduleDynamoRepository)(nil)

func NewFeeScheduleDynamoRepository(ddb DynamoAPI, tableName string) *FeeScheduleDynamoRepository {
	return &FeeScheduleDynamoRepository{t: table{ddb: ddb, name: tableName}}
}

func (r *FeeScheduleDynamoRepository) Create(ctx context.Context, s entities.FeeSchedule) (entities.FeeSchedule, error) {
	if err := r.t.create(ctx, toFeeScheduleItem(s), feeSchedulesKey); err != nil {
		return entities.FeeSchedule{}, err
	}
	return s, nil
}

func (r *FeeScheduleDynamoRepository) GetByID(ctx context.Context, id string) (entities.FeeSchedule, error) {
	var it feeScheduleItem
	found, err := r.t.get(ctx, stringKey(feeSchedulesKey, id), &it)
	if err != nil || !found {
		return entities.FeeSchedule{}, err
	}
	return fromFeeScheduleItem(it), nil
}

func (r *FeeScheduleDynamoRepository) List(ctx context.Context) ([]entities.FeeSchedule, error) {
	raw, err := r.t.scan(ctx)
	if err != nil {
		return nil, err
	}
	return feeSchedulesFromRaw(raw)
}

func (r *FeeScheduleDynamoRepository) ListByPermitType(ctx context.Context, permitTypeID string) ([]entities.FeeSchedule, error) {
	raw, err := r.t.queryIndex(ctx, feeSchedulesPermitIndex, "permit_type_id", permitTypeID)
	if err != nil {
		return nil, err
	}
	return feeSchedulesFromRaw(raw)
}

// feeSchedulesFromRaw orders schedules by effective date, newest first.
func feeSchedulesFromRaw(raw []map[string]types.AttributeValue) ([]entities.FeeSchedule, error) {
	items, err := unmarshalItems[feeScheduleItem](raw)
	if err != nil {
		return nil, err
	}
	out := make([]entities.FeeSchedule, 0, len(items))
	for _, it := range items {
		out = append(out, fromFeeScheduleItem(it))
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].EffectiveDate.After(out[j].EffectiveDate)
	})
	return out, nil
}

func toFeeScheduleItem(s entities.FeeSchedule) feeScheduleItem {
	return feeScheduleItem{
		ID:            s.ID,
		PermitTypeID:  s.PermitTypeID,
		Name:          s.Name,
		EffectiveDate: formatTime(s.EffectiveDate),
		ExpiryDate:    formatTimePtr(s.ExpiryDate),
		BaseFee:       int64(s.BaseFee),
		ValuationRate: int64(s.ValuationRate),
		MinimumFee:    int64(s.MinimumFee),
		MaximumFee:    int64(s.MaximumFee),
		FeeType:       s.FeeType,
		CreatedAt:     formatTime(s.CreatedAt),
		UpdatedAt:     formatTime(s.UpdatedAt),
	}
}

func fromFeeScheduleItem(it feeScheduleItem) entities.FeeSchedule {
	return entities.FeeSchedule{
		ID:            it.ID,
		PermitTypeID:  it.PermitTypeID,
		Name:          it.Name,
		EffectiveDate: parseTime(it.EffectiveDate),
		ExpiryDate:    parseTimePtr(it.ExpiryDate),
		BaseFee:       entities.Money(it.BaseFee),
		ValuationRate: entities.Rate(it.ValuationRate),
		MinimumFee:    entities.Money(it.MinimumFee),
		MaximumFee:    entities.Money(it.MaximumFee),
		FeeType:       it.FeeType,
		CreatedAt:     parseTime(it.CreatedAt),
		UpdatedAt:     parseTime(it.UpdatedAt),
	}
}
