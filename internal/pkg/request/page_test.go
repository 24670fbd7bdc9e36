package request

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPageParamsValidate(t *testing.T) {
	tests := []struct {
		name    string
		page    PageParams
		wantErr bool
	}{
		{name: "valid", page: PageParams{From: 0, Size: 10}},
		{name: "negative_from", page: PageParams{From: -1, Size: 10}, wantErr: true},
		{name: "zero_size", page: PageParams{From: 0, Size: 0}, wantErr: true},
		{name: "negative_size", page: PageParams{From: 0, Size: -5}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.page.Validate()
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidPageableParameters)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestPageParamsOffset(t *testing.T) {
	tests := []struct {
		from, size int
		wantIndex  int
		wantOffset int
	}{
		{from: 0, size: 10, wantIndex: 0, wantOffset: 0},
		{from: 2, size: 2, wantIndex: 1, wantOffset: 2},
		{from: 3, size: 2, wantIndex: 1, wantOffset: 2},
		{from: 10, size: 3, wantIndex: 3, wantOffset: 9},
	}

	for _, tt := range tests {
		p := PageParams{From: tt.from, Size: tt.size}
		assert.Equal(t, tt.wantIndex, p.Index())
		assert.Equal(t, tt.wantOffset, p.Offset())
	}
}
