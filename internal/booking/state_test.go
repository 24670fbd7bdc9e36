package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseState(t *testing.T) {
	tests := []struct {
		raw     string
		want    State
		wantErr bool
	}{
		{raw: "", want: StateAll},
		{raw: "ALL", want: StateAll},
		{raw: "all", want: StateAll},
		{raw: " Current ", want: StateCurrent},
		{raw: "PAST", want: StatePast},
		{raw: "future", want: StateFuture},
		{raw: "Waiting", want: StateWaiting},
		{raw: "REJECTED", want: StateRejected},
		{raw: "APPROVED", wantErr: true},
		{raw: "bogus", wantErr: true},
	}

	for _, tt := range tests {
		t.Run("raw="+tt.raw, func(t *testing.T) {
			got, err := ParseState(tt.raw)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrUnsupportedState)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
