package kernel_test

import (
	"testing"

	"orderbot/internal/core/domain/model/kernel"
	"orderbot/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNominalSize(t *testing.T) {
	tests := []struct {
		quantity float64
		expected kernel.Size
	}{
		{quantity: 5, expected: kernel.SizeWhole},
		{quantity: 1, expected: kernel.SizeWhole},
		{quantity: 0.99, expected: kernel.SizeHalf},
		{quantity: 0.5, expected: kernel.SizeHalf},
		{quantity: 0.49, expected: kernel.SizeQuarter},
		{quantity: 0.25, expected: kernel.SizeQuarter},
		{quantity: 0.1, expected: kernel.SizeQuarter},
	}

	for _, tt := range tests {
		t.Run(kernel.Size(tt.quantity).String(), func(t *testing.T) {
			assert.Equal(t, tt.expected, kernel.NominalSize(tt.quantity))
		})
	}
}

func TestSize_Validate(t *testing.T) {
	for _, s := range kernel.AllSizes() {
		require.NoError(t, s.Validate())
	}

	err := kernel.Size(0.75).Validate()
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestAllSizes_Ascending(t *testing.T) {
	sizes := kernel.AllSizes()

	require.Len(t, sizes, 3)
	assert.Less(t, sizes[0], sizes[1])
	assert.Less(t, sizes[1], sizes[2])
}

func TestSize_String(t *testing.T) {
	assert.Equal(t, "1", kernel.SizeWhole.String())
	assert.Equal(t, "0.5", kernel.SizeHalf.String())
	assert.Equal(t, "0.25", kernel.SizeQuarter.String())
}
