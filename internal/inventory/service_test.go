package inventory_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/ehfoto/backoffice/internal/inventory"
)

func TestService_Create(t *testing.T) {
	tests := []struct {
		name      string
		params    inventory.ItemParams
		setupMock func(m *inventory.MockRepository)
		wantErr   error
	}{
		{
			name:   "Success",
			params: inventory.ItemParams{Name: "Canon R6", Category: inventory.CategoryCamera, Quantity: 2, Condition: "Baik"},
			setupMock: func(m *inventory.MockRepository) {
				m.EXPECT().CreateItem(gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{
			name:   "ZeroQuantityAllowed",
			params: inventory.ItemParams{Name: "Softbox", Category: inventory.CategoryLighting, Quantity: 0, Condition: "Rosak"},
			setupMock: func(m *inventory.MockRepository) {
				m.EXPECT().CreateItem(gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{
			name:    "NegativeQuantity",
			params:  inventory.ItemParams{Name: "Tripod", Category: inventory.CategoryAccessory, Quantity: -1, Condition: "Baik"},
			wantErr: inventory.ErrInvalid,
		},
		{
			name:    "MissingCategory",
			params:  inventory.ItemParams{Name: "Tripod", Quantity: 1, Condition: "Baik"},
			wantErr: inventory.ErrInvalid,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := inventory.NewMockRepository(ctrl)
			if tt.setupMock != nil {
				tt.setupMock(repo)
			}

			got, err := inventory.NewService(repo).Create(context.Background(), tt.params)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.params.Quantity, got.Quantity)
		})
	}
}

func TestService_Update(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := inventory.NewMockRepository(ctrl)
	svc := inventory.NewService(repo)
	id := uuid.New()

	repo.EXPECT().GetItem(gomock.Any(), id).Return(&inventory.Item{ID: id, Name: "Lensa 50mm", Quantity: 1}, nil)
	repo.EXPECT().UpdateItem(gomock.Any(), gomock.Any()).Return(nil)

	got, err := svc.Update(context.Background(), id, inventory.ItemParams{
		Name: "Lensa 50mm f/1.8", Category: inventory.CategoryLens, Quantity: 3, Condition: "Baru",
	})
	require.NoError(t, err)
	assert.Equal(t, "Lensa 50mm f/1.8", got.Name)
	assert.Equal(t, 3, got.Quantity)
}

func TestService_Update_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := inventory.NewMockRepository(ctrl)
	id := uuid.New()

	repo.EXPECT().GetItem(gomock.Any(), id).Return(nil, inventory.ErrNotFound)

	_, err := inventory.NewService(repo).Update(context.Background(), id, inventory.ItemParams{
		Name: "x", Category: "y", Condition: "z",
	})
	assert.ErrorIs(t, err, inventory.ErrNotFound)
}
