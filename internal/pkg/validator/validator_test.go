package validator

import (
	"errors"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type clusterRequest struct {
	Category string `query:"category" validate:"omitempty,cluster"`
}

type pointRequest struct {
	Lat *float64 `json:"lat" validate:"required,min=-90,max=90"`
}

func TestValidate_Cluster(t *testing.T) {
	for _, ok := range []string{"", "historical", "hotels", "unknown"} {
		assert.NoError(t, Validate(clusterRequest{Category: ok}), ok)
	}
	for _, bad := range []string{"Historical", "sport", " parks"} {
		assert.Error(t, Validate(clusterRequest{Category: bad}), bad)
	}
}

func TestValidate_FieldNamesFromTags(t *testing.T) {
	err := Validate(pointRequest{})
	require.Error(t, err)

	var verrs validator.ValidationErrors
	require.True(t, errors.As(err, &verrs))
	require.Len(t, verrs, 1)
	assert.Equal(t, "lat", verrs[0].Field())
	assert.Equal(t, "required", verrs[0].Tag())

	lat := 91.0
	err = Validate(pointRequest{Lat: &lat})
	require.True(t, errors.As(err, &verrs))
	assert.Equal(t, "max", verrs[0].Tag())
}
