package impl

import (
	"context"
	"testing"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	mockRepo "storefront/internal/mocks/repository"
	"storefront/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestAttributeService(t *testing.T) (usecase.AttributeUsecase, *mockRepo.MockAttributeRepository) {
	attributeRepo := mockRepo.NewMockAttributeRepository(t)
	service := NewAttributeService(AttributeServiceParams{AttributeRepo: attributeRepo})

	return service, attributeRepo
}

func TestAttributeService_CreateAttribute_Success(t *testing.T) {
	service, attributeRepo := createTestAttributeService(t)
	ctx := context.Background()

	attributeRepo.EXPECT().
		CreateAttribute(ctx, mock.AnythingOfType("*entity.Attribute")).
		Return(nil)

	attribute, err := service.CreateAttribute(ctx, " Color ", []usecase.AttributeValueInput{
		{ID: "Black", Labels: map[string]string{"en": "Black"}},
		{ID: "white"},
	})
	require.NoError(t, err)

	assert.Equal(t, "color", attribute.Key)
	require.Len(t, attribute.Values, 2)
	assert.Equal(t, "black", attribute.Values[0].ID)
	assert.Equal(t, 0, attribute.Values[0].Position)
	assert.Equal(t, "white", attribute.Values[1].ID)
	assert.Equal(t, 1, attribute.Values[1].Position)
}

func TestAttributeService_CreateAttribute_DuplicateKey(t *testing.T) {
	service, attributeRepo := createTestAttributeService(t)
	ctx := context.Background()

	attributeRepo.EXPECT().
		CreateAttribute(ctx, mock.AnythingOfType("*entity.Attribute")).
		Return(repository.ErrDuplicateAttribute)

	_, err := service.CreateAttribute(ctx, "color", []usecase.AttributeValueInput{{ID: "black"}})
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrDuplicateAttribute.ErrorCode(), appErr.ErrorCode())
}

func TestAttributeService_CreateAttribute_RequiresValues(t *testing.T) {
	service, _ := createTestAttributeService(t)

	_, err := service.CreateAttribute(context.Background(), "color", nil)
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrValidationFailed.ErrorCode(), appErr.ErrorCode())
}

func TestAttributeService_GetAttribute_NotFound(t *testing.T) {
	service, attributeRepo := createTestAttributeService(t)
	ctx := context.Background()

	attributeRepo.EXPECT().
		FindAttributeByKey(ctx, "size").
		Return(nil, repository.ErrAttributeNotFound)

	_, err := service.GetAttribute(ctx, "Size")
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrAttributeNotFound.ErrorCode(), appErr.ErrorCode())
}

func TestAttributeService_UpdateAttribute_ReplacesValues(t *testing.T) {
	service, attributeRepo := createTestAttributeService(t)
	ctx := context.Background()

	existing := &entity.Attribute{
		Key: "size",
		Values: []entity.AttributeValue{
			{ID: "s", Position: 0},
		},
	}

	attributeRepo.EXPECT().
		FindAttributeByKey(ctx, "size").
		Return(existing, nil)
	attributeRepo.EXPECT().
		UpdateAttribute(ctx, mock.AnythingOfType("*entity.Attribute")).
		Return(nil)

	attribute, err := service.UpdateAttribute(ctx, "size", []usecase.AttributeValueInput{
		{ID: "m"}, {ID: "l"}, {ID: "xl"},
	})
	require.NoError(t, err)
	require.Len(t, attribute.Values, 3)
	assert.Equal(t, "m", attribute.Values[0].ID)
	assert.Equal(t, "xl", attribute.Values[2].ID)
}
