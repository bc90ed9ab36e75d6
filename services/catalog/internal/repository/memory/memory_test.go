package memory

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/oms-integration/mockcommerce/pkg/errors"
	"github.com/oms-integration/mockcommerce/services/catalog/internal/domain"
)

func TestListKeepsInsertionOrder(t *testing.T) {
	store := NewProductStore()
	store.Seed()

	products, err := store.List(context.Background())

	require.NoError(t, err)
	require.Len(t, products, 3)
	assert.Equal(t, "P001", products[0].ProductID)
	assert.Equal(t, "P002", products[1].ProductID)
	assert.Equal(t, "P003", products[2].ProductID)
}

func TestGetByIDReturnsCopy(t *testing.T) {
	store := NewProductStore()
	store.Seed()
	ctx := context.Background()

	first, err := store.GetByID(ctx, "P001")
	require.NoError(t, err)

	first.Name = "tampered"
	first.AdditionalProperties["color"] = "blue"

	again, err := store.GetByID(ctx, "P001")
	require.NoError(t, err)
	assert.Equal(t, "Laptop Pro", again.Name)
	assert.Equal(t, "red", again.AdditionalProperties["color"])
}

func TestGetByIDNotFound(t *testing.T) {
	store := NewProductStore()

	_, err := store.GetByID(context.Background(), "P999")

	var appErr *apperrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "Product with ID P999 not found.", appErr.Message)
}

func TestReplaceOverwritesInPlace(t *testing.T) {
	store := NewProductStore()
	store.Seed()
	ctx := context.Background()

	require.NoError(t, store.Replace(ctx, &domain.Product{
		ProductID: "P002",
		Name:      "Wireless Mouse v2",
		Price:     29.00,
	}))

	products, err := store.List(ctx)
	require.NoError(t, err)
	require.Len(t, products, 3)
	assert.Equal(t, "Wireless Mouse v2", products[1].Name)
}

func TestReplaceUnknownProduct(t *testing.T) {
	store := NewProductStore()

	err := store.Replace(context.Background(), &domain.Product{ProductID: "P999"})

	assert.Error(t, err)
}

func TestDeleteTombstonesSlot(t *testing.T) {
	store := NewProductStore()
	store.Seed()
	ctx := context.Background()

	require.NoError(t, store.Delete(ctx, "P002"))

	products, err := store.List(ctx)
	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.Equal(t, "P001", products[0].ProductID)
	assert.Equal(t, "P003", products[1].ProductID)

	_, err = store.GetByID(ctx, "P002")
	assert.Error(t, err)
	assert.Error(t, store.Delete(ctx, "P002"))
}
