package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/markethub/catalog-server/internal/mocks"
	"github.com/markethub/catalog-server/internal/model"
	"github.com/markethub/catalog-server/internal/testutil"
)

func newProductService(productStore *mocks.ProductStore, storage *mocks.Storage) *Product {
	return NewProduct(productStore, storage, NewPolicy("admin@example.com"), testutil.MakeNoopLogger())
}

func TestProduct_List_SizeClamping(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name     string
		page     int
		size     int
		wantPage int
		wantSize int
	}{
		{"defaults", 0, 0, 0, 20},
		{"negative size", 0, -5, 0, 1},
		{"size above maximum", 0, 500, 0, 100},
		{"negative page", -3, 10, 0, 10},
		{"passthrough", 2, 50, 2, 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			productStore := &mocks.ProductStore{}
			productStore.On("List", mock.Anything, model.ProductFilter{Page: tt.wantPage, Size: tt.wantSize}).
				Return([]model.Product{}, int64(0), nil)

			s := newProductService(productStore, &mocks.Storage{})

			page, err := s.List(ctx, model.ProductFilter{Page: tt.page, Size: tt.size})
			require.NoError(t, err)
			assert.Equal(t, tt.wantSize, page.Size)
			assert.Equal(t, tt.wantPage, page.Number)
		})
	}
}

func TestProduct_List_TotalPages(t *testing.T) {
	ctx := context.Background()
	productStore := &mocks.ProductStore{}

	productStore.On("List", mock.Anything, model.ProductFilter{Page: 0, Size: 20}).
		Return([]model.Product{{ID: uuid.New()}}, int64(41), nil)

	s := newProductService(productStore, &mocks.Storage{})

	page, err := s.List(ctx, model.ProductFilter{})
	require.NoError(t, err)
	assert.Equal(t, int64(41), page.TotalElements)
	assert.Equal(t, 3, page.TotalPages)
}

func TestProduct_List_OwnerFilter(t *testing.T) {
	ctx := context.Background()
	productStore := &mocks.ProductStore{}

	ownerID := uuid.New()
	productStore.On("List", mock.Anything, mock.MatchedBy(func(f model.ProductFilter) bool {
		return f.OwnerID != nil && *f.OwnerID == ownerID
	})).Return([]model.Product{{OwnerID: ownerID}}, int64(1), nil)

	s := newProductService(productStore, &mocks.Storage{})

	page, err := s.List(ctx, model.ProductFilter{OwnerID: &ownerID})
	require.NoError(t, err)
	require.Len(t, page.Content, 1)
}

func TestProduct_Create_OwnedByPrincipal(t *testing.T) {
	ctx := context.Background()
	productStore := &mocks.ProductStore{}

	principal := model.User{ID: uuid.New(), Role: model.RoleUser}
	productStore.On("Create", mock.Anything, mock.MatchedBy(func(p model.Product) bool {
		return p.OwnerID == principal.ID && p.Name == "Widget"
	})).Return(model.Product{ID: uuid.New(), Name: "Widget", OwnerID: principal.ID}, nil)

	s := newProductService(productStore, &mocks.Storage{})

	got, err := s.Create(ctx, principal, model.CreateProductParams{Name: "Widget", Price: 9.99, Quantity: 3})
	require.NoError(t, err)
	assert.Equal(t, principal.ID, got.OwnerID)
}

func TestProduct_Update_OwnerOrAdminOnly(t *testing.T) {
	ctx := context.Background()

	ownerID := uuid.New()
	productID := uuid.New()
	existing := model.Product{ID: productID, Name: "Old", OwnerID: ownerID}

	name := "New"

	t.Run("stranger refused", func(t *testing.T) {
		productStore := &mocks.ProductStore{}
		productStore.On("GetByID", mock.Anything, productID).Return(existing, nil)

		s := newProductService(productStore, &mocks.Storage{})

		_, err := s.Update(ctx, model.User{ID: uuid.New(), Role: model.RoleUser}, productID, model.UpdateProductParams{Name: &name})
		require.ErrorIs(t, err, model.ErrForbidden)
	})

	t.Run("owner allowed", func(t *testing.T) {
		productStore := &mocks.ProductStore{}
		productStore.On("GetByID", mock.Anything, productID).Return(existing, nil)
		productStore.On("Update", mock.Anything, mock.MatchedBy(func(p model.Product) bool {
			return p.ID == productID && p.Name == "New"
		})).Return(model.Product{ID: productID, Name: "New", OwnerID: ownerID}, nil)

		s := newProductService(productStore, &mocks.Storage{})

		got, err := s.Update(ctx, model.User{ID: ownerID, Role: model.RoleUser}, productID, model.UpdateProductParams{Name: &name})
		require.NoError(t, err)
		assert.Equal(t, "New", got.Name)
	})

	t.Run("admin allowed", func(t *testing.T) {
		productStore := &mocks.ProductStore{}
		productStore.On("GetByID", mock.Anything, productID).Return(existing, nil)
		productStore.On("Update", mock.Anything, mock.Anything).Return(existing, nil)

		s := newProductService(productStore, &mocks.Storage{})

		_, err := s.Update(ctx, model.User{ID: uuid.New(), Role: model.RoleAdmin}, productID, model.UpdateProductParams{Name: &name})
		require.NoError(t, err)
	})
}

func TestProduct_Update_EmptyParams(t *testing.T) {
	ctx := context.Background()
	s := newProductService(&mocks.ProductStore{}, &mocks.Storage{})

	_, err := s.Update(ctx, model.User{ID: uuid.New()}, uuid.New(), model.UpdateProductParams{})
	require.ErrorIs(t, err, model.ErrEmptyUpdate)
}

func TestProduct_Delete_RemovesStoredImage(t *testing.T) {
	ctx := context.Background()
	productStore := &mocks.ProductStore{}
	storage := &mocks.Storage{}

	ownerID := uuid.New()
	productID := uuid.New()
	key := fmt.Sprintf("products/%s/image", productID)
	productStore.On("GetByID", mock.Anything, productID).Return(model.Product{ID: productID, OwnerID: ownerID, ImageKey: key}, nil)
	productStore.On("Delete", mock.Anything, productID).Return(nil)
	storage.On("Delete", mock.Anything, key).Return(nil)

	s := newProductService(productStore, storage)

	require.NoError(t, s.Delete(ctx, model.User{ID: ownerID, Role: model.RoleUser}, productID))
	storage.AssertCalled(t, "Delete", mock.Anything, key)
}

func TestProduct_Delete_ImageCleanupFailureTolerated(t *testing.T) {
	ctx := context.Background()
	productStore := &mocks.ProductStore{}
	storage := &mocks.Storage{}

	ownerID := uuid.New()
	productID := uuid.New()
	productStore.On("GetByID", mock.Anything, productID).Return(model.Product{ID: productID, OwnerID: ownerID, ImageKey: "k"}, nil)
	productStore.On("Delete", mock.Anything, productID).Return(nil)
	storage.On("Delete", mock.Anything, "k").Return(errors.New("bucket unreachable"))

	s := newProductService(productStore, storage)

	assert.NoError(t, s.Delete(ctx, model.User{ID: ownerID, Role: model.RoleUser}, productID))
}

func TestProduct_Delete_NotFound(t *testing.T) {
	ctx := context.Background()
	productStore := &mocks.ProductStore{}

	productID := uuid.New()
	productStore.On("GetByID", mock.Anything, productID).Return(model.Product{}, model.ErrNotFound)

	s := newProductService(productStore, &mocks.Storage{})

	err := s.Delete(ctx, model.User{ID: uuid.New(), Role: model.RoleAdmin}, productID)
	require.ErrorIs(t, err, model.ErrNotFound)
}

func TestProduct_SetImage_UploadsAndRecordsKey(t *testing.T) {
	ctx := context.Background()
	productStore := &mocks.ProductStore{}
	storage := &mocks.Storage{}

	ownerID := uuid.New()
	productID := uuid.New()
	key := fmt.Sprintf("products/%s/image", productID)
	productStore.On("GetByID", mock.Anything, productID).Return(model.Product{ID: productID, OwnerID: ownerID}, nil)
	storage.On("Upload", mock.Anything, key, mock.Anything).Return(nil)
	productStore.On("Update", mock.Anything, mock.MatchedBy(func(p model.Product) bool {
		return p.ID == productID && p.ImageKey == key
	})).Return(model.Product{ID: productID, OwnerID: ownerID, ImageKey: key}, nil)

	s := newProductService(productStore, storage)

	err := s.SetImage(ctx, model.User{ID: ownerID, Role: model.RoleUser}, productID, strings.NewReader("png bytes"))
	require.NoError(t, err)
}

func TestProduct_SetImage_StrangerRefused(t *testing.T) {
	ctx := context.Background()
	productStore := &mocks.ProductStore{}

	productID := uuid.New()
	productStore.On("GetByID", mock.Anything, productID).Return(model.Product{ID: productID, OwnerID: uuid.New()}, nil)

	s := newProductService(productStore, &mocks.Storage{})

	err := s.SetImage(ctx, model.User{ID: uuid.New(), Role: model.RoleUser}, productID, strings.NewReader("x"))
	require.ErrorIs(t, err, model.ErrForbidden)
}

func TestProduct_GetImage_Success(t *testing.T) {
	ctx := context.Background()
	productStore := &mocks.ProductStore{}
	storage := &mocks.Storage{}

	productID := uuid.New()
	productStore.On("GetByID", mock.Anything, productID).Return(model.Product{ID: productID, ImageKey: "k"}, nil)
	storage.On("Download", mock.Anything, "k").Return(io.NopCloser(strings.NewReader("png bytes")), nil)

	s := newProductService(productStore, storage)

	reader, err := s.GetImage(ctx, productID)
	require.NoError(t, err)
	defer reader.Close()

	data, err := io.ReadAll(reader)
	require.NoError(t, err)
	assert.Equal(t, "png bytes", string(data))
}

func TestProduct_GetImage_NoImage(t *testing.T) {
	ctx := context.Background()
	productStore := &mocks.ProductStore{}

	productID := uuid.New()
	productStore.On("GetByID", mock.Anything, productID).Return(model.Product{ID: productID}, nil)

	s := newProductService(productStore, &mocks.Storage{})

	_, err := s.GetImage(ctx, productID)
	require.ErrorIs(t, err, model.ErrNotFound)
}
