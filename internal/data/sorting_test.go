package data

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSortColumn(t *testing.T) {
	t.Run("Empty selects created_at", func(t *testing.T) {
		column, err := ParseSortColumn("")
		require.NoError(t, err)
		assert.Equal(t, SortByCreatedAt, column)
	})

	t.Run("Every permitted column", func(t *testing.T) {
		for _, want := range SortColumns {
			column, err := ParseSortColumn(string(want))
			require.NoError(t, err, string(want))
			assert.Equal(t, want, column)
			assert.NotEmpty(t, column.sql())
		}
	})

	rejected := []string{
		"body",
		"banana",
		"VOTES",
		"votes; DROP TABLE articles",
		"a.votes",
		" votes",
	}
	for _, value := range rejected {
		t.Run("Rejects "+value, func(t *testing.T) {
			_, err := ParseSortColumn(value)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestParseSortOrder(t *testing.T) {
	testCases := []struct {
		value   string
		want    SortOrder
		wantSQL string
		wantErr error
	}{
		{value: "", want: SortDesc, wantSQL: "DESC"},
		{value: "asc", want: SortAsc, wantSQL: "ASC"},
		{value: "desc", want: SortDesc, wantSQL: "DESC"},
		{value: "ASC", wantErr: ErrInvalidInput},
		{value: "Desc", wantErr: ErrInvalidInput},
		{value: "banana", wantErr: ErrInvalidInput},
	}

	for _, tc := range testCases {
		t.Run(tc.value, func(t *testing.T) {
			order, err := ParseSortOrder(tc.value)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, order)
			assert.Equal(t, tc.wantSQL, order.sql())
		})
	}
}
