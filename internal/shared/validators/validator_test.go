package validators

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type rangeParams struct {
	Low  int    `param:"low" validate:"gte=0"`
	Zone string `validate:"required,timezone"`
}

func TestNew_ReportsParamNames(t *testing.T) {
	t.Parallel()

	err := New().Struct(&rangeParams{Low: -1})
	require.Error(t, err)

	var validationErrors ValidationErrors
	require.True(t, errors.As(err, &validationErrors))
	require.Len(t, validationErrors, 2)

	assert.Equal(t, "low", validationErrors[0].Field())
	assert.Equal(t, "gte", validationErrors[0].Tag())
	assert.Equal(t, "Zone", validationErrors[1].Field())
	assert.Equal(t, "rangeParams.Zone", validationErrors[1].StructNamespace())
}

func TestNew_Timezone(t *testing.T) {
	t.Parallel()

	assert.NoError(t, New().Struct(&rangeParams{Zone: "America/New_York"}))
	assert.Error(t, New().Struct(&rangeParams{Zone: "Mars/Olympus_Mons"}))
}
