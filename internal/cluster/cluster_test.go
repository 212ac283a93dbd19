package cluster_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/zhytomyr-tourism/internal/cluster"
	"github.com/zhytomyr-tourism/internal/domain"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		raw      string
		expected domain.Category
	}{
		{"historical", domain.CategoryHistorical},
		{"parks", domain.CategoryParks},
		{"shopping", domain.CategoryShopping},
		{"culture", domain.CategoryCulture},
		{"nature", domain.CategoryNature},
		{"gastro", domain.CategoryGastro},
		{"hotels", domain.CategoryHotels},
		{"Historical", domain.CategoryUnknown},
		{" parks", domain.CategoryUnknown},
		{"sport", domain.CategoryUnknown},
		{"unknown", domain.CategoryUnknown},
		{"", domain.CategoryUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.expected, cluster.Classify(tt.raw))
		})
	}
}

func TestDefinitions_CoverEveryCategory(t *testing.T) {
	defs := cluster.Definitions()
	assert.Len(t, defs, len(domain.Categories))

	for i, c := range domain.Categories {
		assert.Equal(t, c, defs[i].ID)
		assert.NotEmpty(t, defs[i].Name, "category %s", c)
		assert.NotEmpty(t, defs[i].Color, "category %s", c)
		assert.NotEmpty(t, defs[i].Icon, "category %s", c)

		def, ok := cluster.Definition(c)
		assert.True(t, ok)
		assert.Equal(t, defs[i], def)
	}

	_, ok := cluster.Definition(domain.CategoryUnknown)
	assert.False(t, ok)
}

func TestDefinitions_ReturnsCopy(t *testing.T) {
	defs := cluster.Definitions()
	defs[0].Name = "changed"

	def, _ := cluster.Definition(domain.CategoryHistorical)
	assert.NotEqual(t, "changed", def.Name)
}
