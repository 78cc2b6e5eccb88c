package catalog

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProduct(t *testing.T) {
	t.Run("creates product with valid inputs", func(t *testing.T) {
		product, err := NewProduct("Airplain Delay Insurance",
			decimal.NewFromInt(1000), decimal.NewFromInt(1000),
			ProductCategoryDevice, 30)
		require.NoError(t, err)
		require.NotNil(t, product)

		assert.Equal(t, "Airplain Delay Insurance", product.Name)
		assert.Equal(t, ProductCategoryDevice, product.Category)
		assert.Equal(t, 30, product.ValidityDays)
		assert.True(t, product.Active)
		assert.NotEmpty(t, product.ID)
	})

	t.Run("fails with empty name", func(t *testing.T) {
		_, err := NewProduct("   ", decimal.NewFromInt(1), decimal.NewFromInt(1), ProductCategoryHealth, 30)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "name cannot be empty")
	})

	t.Run("fails with unknown category", func(t *testing.T) {
		_, err := NewProduct("P", decimal.NewFromInt(1), decimal.NewFromInt(1), ProductCategory("PETS"), 30)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "category")
	})

	t.Run("fails with negative amounts", func(t *testing.T) {
		_, err := NewProduct("P", decimal.NewFromInt(-1), decimal.NewFromInt(1), ProductCategoryHealth, 30)
		require.Error(t, err)
	})

	t.Run("fails with non-positive validity", func(t *testing.T) {
		_, err := NewProduct("P", decimal.NewFromInt(1), decimal.NewFromInt(1), ProductCategoryHealth, 0)
		require.Error(t, err)
	})
}

func TestProduct_Describe(t *testing.T) {
	product, err := NewProduct("P", decimal.NewFromInt(2000), decimal.NewFromInt(1500), ProductCategoryHealth, 30)
	require.NoError(t, err)

	features := FeatureList{
		{Title: "Exact Trigger Only", Body: "Pays only for the defined injury profile."},
	}
	product.Describe("coverage", "short", "# long", features)

	assert.Equal(t, "coverage", product.CoverageSummary)
	assert.Equal(t, "short", product.ShortDescription)
	assert.Equal(t, "# long", product.DescriptionMd)
	assert.Len(t, product.Features, 1)
}

func TestFeatureList_ValueScan(t *testing.T) {
	features := FeatureList{{Title: "A", Body: "B"}}

	value, err := features.Value()
	require.NoError(t, err)

	var decoded FeatureList
	require.NoError(t, decoded.Scan(value))
	assert.Equal(t, features, decoded)

	var fromBytes FeatureList
	raw, _ := json.Marshal(features)
	require.NoError(t, fromBytes.Scan(raw))
	assert.Equal(t, features, fromBytes)

	var empty FeatureList
	require.NoError(t, empty.Scan(nil))
	assert.Nil(t, empty)

	assert.Error(t, empty.Scan(42))
}
