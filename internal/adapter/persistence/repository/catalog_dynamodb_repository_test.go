package repository

import (
	"context"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"permit_tracker/internal/adapter/persistence/repository/mocks"
	"permit_tracker/internal/domain/entities"
	"permit_tracker/internal/usecase/interfaces"
)

func TestStatusDynamoRepository_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	ddb := mocks.NewMockDynamoAPI(ctrl)
	repo := NewStatusDynamoRepository(ddb, "statuses")

	items := make([]map[string]types.AttributeValue, 0)
	defaults := entities.DefaultStatuses()
	for i := len(defaults) - 1; i >= 0; i-- {
		s := defaults[i]
		items = append(items, mustMarshal(t, statusItem{
			Code:         s.Code,
			Name:         s.Name,
			Category:     string(s.Category),
			IsOpen:       s.IsOpen,
			DisplayOrder: s.DisplayOrder,
		}))
	}
	ddb.EXPECT().Scan(gomock.Any(), gomock.Any(), gomock.Any()).Return(&dynamodb.ScanOutput{Items: items}, nil)

	got, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, got, len(defaults))
	for i := 1; i < len(got); i++ {
		assert.LessOrEqual(t, got[i-1].DisplayOrder, got[i].DisplayOrder)
	}
}

func TestStatusDynamoRepository_CreateDuplicate(t *testing.T) {
	ctrl := gomock.NewController(t)
	ddb := mocks.NewMockDynamoAPI(ctrl)
	repo := NewStatusDynamoRepository(ddb, "statuses")

	ddb.EXPECT().PutItem(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, in *dynamodb.PutItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
			assert.Equal(t, "status_code", in.ExpressionAttributeNames["#pk"])
			return nil, &types.ConditionalCheckFailedException{}
		},
	)

	_, err := repo.Create(context.Background(), entities.Status{Code: "SUBMITTED"})
	assert.ErrorIs(t, err, interfaces.ErrAlreadyExists)
}

func TestUserDynamoRepository_GetByEmail(t *testing.T) {
	ctrl := gomock.NewController(t)
	ddb := mocks.NewMockDynamoAPI(ctrl)
	repo := NewUserDynamoRepository(ddb, "users")

	ddb.EXPECT().Query(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, in *dynamodb.QueryInput, _ ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error) {
			assert.Equal(t, usersEmailIndex, aws.ToString(in.IndexName))
			return &dynamodb.QueryOutput{Items: []map[string]types.AttributeValue{
				mustMarshal(t, userItem{ID: "u-1", Email: "jane@example.com", Username: "jane", AccountType: "Staff", AccountStatus: "Active"}),
			}}, nil
		},
	)

	got, err := repo.GetByEmail(context.Background(), "jane@example.com")
	require.NoError(t, err)
	assert.Equal(t, "u-1", got.ID)
	assert.Equal(t, entities.AccountType("Staff"), got.AccountType)
}

func TestRoleDynamoRepository_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	ddb := mocks.NewMockDynamoAPI(ctrl)
	repo := NewRoleDynamoRepository(ddb, "roles")

	ddb.EXPECT().Scan(gomock.Any(), gomock.Any(), gomock.Any()).Return(&dynamodb.ScanOutput{Items: []map[string]types.AttributeValue{
		mustMarshal(t, roleItem{Name: "Applicant", PermissionLevel: 1, CanSubmitApplication: true}),
		mustMarshal(t, roleItem{Name: "Administrator", PermissionLevel: 10, CanConfigureSystem: true}),
	}}, nil)

	got, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "Administrator", got[0].Name)
	assert.True(t, got[1].CanSubmitApplication)
}

func TestPermitTypeDynamoRepository_GetByID(t *testing.T) {
	ctrl := gomock.NewController(t)
	ddb := mocks.NewMockDynamoAPI(ctrl)
	repo := NewPermitTypeDynamoRepository(ddb, "permit_types")

	ddb.EXPECT().GetItem(gomock.Any(), gomock.Any()).Return(&dynamodb.GetItemOutput{Item: mustMarshal(t, permitTypeItem{
		ID:                     "pt-1",
		Name:                   "Residential Addition",
		Category:               "Construction",
		StandardProcessingDays: 30,
		DepartmentCodes:        []string{"BLDG", "ZON"},
		IsActive:               true,
	})}, nil)

	got, err := repo.GetByID(context.Background(), "pt-1")
	require.NoError(t, err)
	assert.Equal(t, entities.PermitCategory("Construction"), got.Category)
	assert.Equal(t, []string{"BLDG", "ZON"}, got.DepartmentCodes)
}
