package sweep

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name      string
		grid      Grid
		runLength int
		wantErr   bool
	}{
		{
			name:      "Valid 1x1 grid",
			grid:      Grid{{5}},
			runLength: 1,
		},
		{
			name:      "Valid rectangular grid",
			grid:      Grid{{1, 2, 3}, {4, 5, 6}},
			runLength: 2,
		},
		{
			name:      "Run length longer than both dimensions is still valid input",
			grid:      Grid{{1, 2}, {3, 4}},
			runLength: 99,
		},
		{
			name:      "Zero run length",
			grid:      Grid{{1}},
			runLength: 0,
			wantErr:   true,
		},
		{
			name:      "Negative run length",
			grid:      Grid{{1}},
			runLength: -3,
			wantErr:   true,
		},
		{
			name:      "Nil grid",
			grid:      nil,
			runLength: 1,
			wantErr:   true,
		},
		{
			name:      "Empty grid",
			grid:      Grid{},
			runLength: 1,
			wantErr:   true,
		},
		{
			name:      "Ragged rows",
			grid:      Grid{{1, 2, 3}, {4, 5}},
			runLength: 1,
			wantErr:   true,
		},
		{
			name:      "Row of zero columns",
			grid:      Grid{{}},
			runLength: 1,
			wantErr:   true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			err := Validate(tc.grid, tc.runLength)

			if tc.wantErr {
				require.ErrorIs(t, err, ErrInvalidParameter)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestPosition_InBounds(t *testing.T) {
	t.Parallel()

	g := Grid{{1, 2, 3}, {4, 5, 6}}

	require.True(t, Position{Row: 0, Col: 0}.InBounds(g))
	require.True(t, Position{Row: 1, Col: 2}.InBounds(g))
	require.False(t, Position{Row: 2, Col: 0}.InBounds(g))
	require.False(t, Position{Row: 0, Col: 3}.InBounds(g))
	require.False(t, Position{Row: -1, Col: 0}.InBounds(g))
	require.False(t, Position{Row: 0, Col: -1}.InBounds(g))
}
