package repository

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"permit_tracker/internal/adapter/persistence/repository/mocks"
	"permit_tracker/internal/domain/entities"
)

func samplePayment() entities.Payment {
	paid := time.Date(2024, 4, 2, 15, 0, 0, 0, time.UTC)
	return entities.Payment{
		ApplicationNumber:    "BP-2024-00001",
		ReceiptNumber:        "RCPT-2024-00007",
		PaymentDate:          paid,
		BaseAmount:           entities.Money(40_000),
		TaxAmount:            entities.Money(5_200),
		TotalAmount:          entities.Money(45_200),
		PaymentMethod:        entities.PaymentMethodCreditCard,
		Status:               entities.PaymentStatusCompleted,
		GatewayTransactionID: "123456",
		CardLastFour:         "4242",
		PaidBy:               "user-1",
		FeeScheduleID:        "fs-1",
		CreatedAt:            paid,
		UpdatedAt:            paid,
		GatewayPayloadRaw:    json.RawMessage(`{"id":123456,"status":"approved"}`),
	}
}

func TestPaymentDynamoRepository_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	ddb := mocks.NewMockDynamoAPI(ctrl)
	repo := NewPaymentDynamoRepository(ddb, "payments")

	ddb.EXPECT().PutItem(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, in *dynamodb.PutItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
			var it paymentItem
			require.NoError(t, attributevalue.UnmarshalMap(in.Item, &it))
			assert.Equal(t, int64(45_200), it.TotalAmount)
			assert.Equal(t, "approved", it.GatewayPayload["status"])
			assert.JSONEq(t, `{"id":123456,"status":"approved"}`, it.GatewayPayloadRaw)
			return &dynamodb.PutItemOutput{}, nil
		},
	)

	_, err := repo.Create(context.Background(), samplePayment())
	require.NoError(t, err)
}

func TestPaymentDynamoRepository_GetByReceipt(t *testing.T) {
	t.Run("found through index", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		ddb := mocks.NewMockDynamoAPI(ctrl)
		repo := NewPaymentDynamoRepository(ddb, "payments")
		want := samplePayment()

		ddb.EXPECT().Query(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, in *dynamodb.QueryInput, _ ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error) {
				assert.Equal(t, paymentsReceiptIndex, aws.ToString(in.IndexName))
				assert.Equal(t, &types.AttributeValueMemberS{Value: want.ReceiptNumber}, in.ExpressionAttributeValues[":v"])
				return &dynamodb.QueryOutput{Items: []map[string]types.AttributeValue{mustMarshal(t, toPaymentItem(want))}}, nil
			},
		)

		got, err := repo.GetByReceipt(context.Background(), want.ReceiptNumber)
		require.NoError(t, err)
		assert.Equal(t, want.ApplicationNumber, got.ApplicationNumber)
		assert.Equal(t, want.TotalAmount, got.TotalAmount)
		assert.Equal(t, want.PaymentDate, got.PaymentDate)
		assert.JSONEq(t, string(want.GatewayPayloadRaw), string(got.GatewayPayloadRaw))
	})

	t.Run("unknown receipt", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		ddb := mocks.NewMockDynamoAPI(ctrl)
		repo := NewPaymentDynamoRepository(ddb, "payments")

		ddb.EXPECT().Query(gomock.Any(), gomock.Any(), gomock.Any()).Return(&dynamodb.QueryOutput{}, nil)

		got, err := repo.GetByReceipt(context.Background(), "RCP-2024-999999")
		require.NoError(t, err)
		assert.Empty(t, got.ReceiptNumber)
	})
}

func TestPaymentDynamoRepository_Update(t *testing.T) {
	t.Run("replaces existing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		ddb := mocks.NewMockDynamoAPI(ctrl)
		repo := NewPaymentDynamoRepository(ddb, "payments")
		p := samplePayment()
		refunded := time.Date(2024, 4, 3, 0, 0, 0, 0, time.UTC)
		p.Status = entities.PaymentStatusRefunded
		p.RefundAmount = p.TotalAmount
		p.RefundDate = &refunded

		ddb.EXPECT().PutItem(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, in *dynamodb.PutItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
				assert.Equal(t, "attribute_exists(#pk)", aws.ToString(in.ConditionExpression))
				var it paymentItem
				require.NoError(t, attributevalue.UnmarshalMap(in.Item, &it))
				assert.Equal(t, "Refunded", it.Status)
				assert.Equal(t, "2024-04-03T00:00:00.000000000Z", it.RefundDate)
				return &dynamodb.PutItemOutput{}, nil
			},
		)

		got, err := repo.Update(context.Background(), p)
		require.NoError(t, err)
		assert.Equal(t, entities.PaymentStatusRefunded, got.Status)
	})

	t.Run("missing payment", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		ddb := mocks.NewMockDynamoAPI(ctrl)
		repo := NewPaymentDynamoRepository(ddb, "payments")

		ddb.EXPECT().PutItem(gomock.Any(), gomock.Any()).Return(nil, &types.ConditionalCheckFailedException{})

		got, err := repo.Update(context.Background(), samplePayment())
		require.NoError(t, err)
		assert.Empty(t, got.ApplicationNumber)
	})
}

func TestFeeScheduleDynamoRepository_ListByPermitType(t *testing.T) {
	ctrl := gomock.NewController(t)
	ddb := mocks.NewMockDynamoAPI(ctrl)
	repo := NewFeeScheduleDynamoRepository(ddb, "fee_schedules")

	old := entities.FeeSchedule{ID: "fs-old", PermitTypeID: "pt-1", EffectiveDate: time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC), BaseFee: 10_000, ValuationRate: 50, MinimumFee: 10_000, MaximumFee: 500_000}
	current := old
	current.ID = "fs-new"
	current.EffectiveDate = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	ddb.EXPECT().Query(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, in *dynamodb.QueryInput, _ ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error) {
			assert.Equal(t, feeSchedulesPermitIndex, aws.ToString(in.IndexName))
			return &dynamodb.QueryOutput{Items: []map[string]types.AttributeValue{
				mustMarshal(t, toFeeScheduleItem(old)),
				mustMarshal(t, toFeeScheduleItem(current)),
			}}, nil
		},
	)

	got, err := repo.ListByPermitType(context.Background(), "pt-1")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "fs-new", got[0].ID)
	assert.Equal(t, entities.Rate(50), got[0].ValuationRate)
	assert.Nil(t, got[0].ExpiryDate)
}

func TestTransactionDynamoRepository_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	ddb := mocks.NewMockDynamoAPI(ctrl)
	repo := NewTransactionDynamoRepository(ddb, "transactions")
	tx := entities.Transaction{
		ID:                "tx-1",
		ApplicationNumber: "BP-2024-00001",
		ReceiptNumber:     "RCPT-2024-00007",
		Type:              entities.TransactionTypeCapture,
		Amount:            45_200,
		Status:            entities.TransactionStatusSuccess,
		CreatedAt:         time.Date(2024, 4, 2, 15, 0, 0, 0, time.UTC),
	}

	ddb.EXPECT().PutItem(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, in *dynamodb.PutItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
			assert.Equal(t, transactionsSortKey, in.ExpressionAttributeNames["#pk"])
			var it transactionItem
			require.NoError(t, attributevalue.UnmarshalMap(in.Item, &it))
			assert.Equal(t, "2024-04-02T15:00:00.000000000Z#tx-1", it.CreatedAtID)
			return &dynamodb.PutItemOutput{}, nil
		},
	)

	_, err := repo.Create(context.Background(), tx)
	require.NoError(t, err)
}
