package services

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tyrehub/stockroom-backend/internal/models"
)

func TestAddAndGetProduct(t *testing.T) {
	svc := NewStockService(newTestDB(t))

	product := &models.Product{
		CategoryName: "Summer",
		Code:         "SU-01",
		RimSize:      "17",
		OE:           "false",
		TyreModel:    "Pilot Sport",
		CreatedBy:    "alice",
	}
	require.NoError(t, svc.Add(product))
	require.NotEqual(t, uuid.Nil, product.ID)

	got, err := svc.Get(product.ID)
	require.NoError(t, err)
	assert.Equal(t, "Summer", got.CategoryName)
	assert.Equal(t, "Pilot Sport", got.TyreModel)
	assert.Equal(t, "alice", got.CreatedBy)
}

func TestGetUnknownProduct(t *testing.T) {
	svc := NewStockService(newTestDB(t))

	_, err := svc.Get(uuid.New())
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestReplaceOverwritesWholeDocument(t *testing.T) {
	svc := NewStockService(newTestDB(t))

	product := &models.Product{
		CategoryName: "Summer",
		Code:         "SU-01",
		RimSize:      "17",
		OE:           "true",
		TyreModel:    "X",
		Description:  "old description",
		CreatedBy:    "alice",
	}
	require.NoError(t, svc.Add(product))

	// Edit form submitted without tyre_model or description: those fields
	// must not survive from the prior version.
	replacement := &models.Product{
		CategoryName: "Winter",
		Code:         "WI-02",
		RimSize:      "18",
		OE:           "false",
		CreatedBy:    "bob",
	}
	require.NoError(t, svc.Replace(product.ID, replacement))

	got, err := svc.Get(product.ID)
	require.NoError(t, err)
	assert.Equal(t, "Winter", got.CategoryName)
	assert.Equal(t, "WI-02", got.Code)
	assert.Equal(t, "18", got.RimSize)
	assert.Equal(t, "false", got.OE)
	assert.Empty(t, got.TyreModel)
	assert.Empty(t, got.Description)
	assert.Equal(t, "bob", got.CreatedBy)
}

func TestReplaceUnknownProduct(t *testing.T) {
	svc := NewStockService(newTestDB(t))

	err := svc.Replace(uuid.New(), &models.Product{Code: "X"})
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestLookupsAreSortedAscending(t *testing.T) {
	db := newTestDB(t)
	svc := NewStockService(db)

	for _, name := range []string{"Winter", "All Season", "Summer"} {
		require.NoError(t, db.Create(&models.Category{ID: uuid.New(), CategoryName: name}).Error)
	}
	for _, size := range []string{"19", "15", "17"} {
		require.NoError(t, db.Create(&models.RimSize{ID: uuid.New(), RimSize: size}).Error)
	}

	categories, err := svc.Categories()
	require.NoError(t, err)
	names := make([]string, 0, len(categories))
	for _, c := range categories {
		names = append(names, c.CategoryName)
	}
	assert.Equal(t, []string{"All Season", "Summer", "Winter"}, names)

	sizes, err := svc.RimSizes()
	require.NoError(t, err)
	values := make([]string, 0, len(sizes))
	for _, s := range sizes {
		values = append(values, s.RimSize)
	}
	assert.Equal(t, []string{"15", "17", "19"}, values)
}

func TestListReturnsAllProducts(t *testing.T) {
	svc := NewStockService(newTestDB(t))

	require.NoError(t, svc.Add(&models.Product{Code: "A"}))
	require.NoError(t, svc.Add(&models.Product{Code: "B"}))

	products, err := svc.List()
	require.NoError(t, err)
	assert.Len(t, products, 2)
}
