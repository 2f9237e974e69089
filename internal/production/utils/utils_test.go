package utils

import (
	"strings"
	"testing"
	"time"

	"github.com/go-gota/gota/dataframe"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testFrame(t *testing.T, csv string) dataframe.DataFrame {
	t.Helper()
	df := dataframe.ReadCSV(strings.NewReader(csv))
	require.NoError(t, df.Error())
	return df
}

func TestHasColumn(t *testing.T) {
	df := testFrame(t, "ot,cliente\n100,ACME\n")

	assert.True(t, HasColumn(&df, "ot"))
	assert.False(t, HasColumn(&df, "estatus"))
	assert.False(t, HasColumn(nil, "ot"))
}

func TestGetStrPtr(t *testing.T) {
	df := testFrame(t, "ot,orden_compra\n100,OC-1\n101,\n")

	got := GetStrPtr("orden_compra", 0, &df)
	require.NotNil(t, got)
	assert.Equal(t, "OC-1", *got)

	assert.Nil(t, GetStrPtr("orden_compra", 1, &df))
	assert.Nil(t, GetStrPtr("no_such_column", 0, &df))
}

func TestGetFloatPtr(t *testing.T) {
	df := testFrame(t, "ot,horas\n100,12.5\n101,\n102,texto\n")

	got := GetFloatPtr("horas", 0, &df)
	require.NotNil(t, got)
	assert.Equal(t, 12.5, *got)

	assert.Nil(t, GetFloatPtr("horas", 1, &df))
	assert.Nil(t, GetFloatPtr("horas", 2, &df))
	assert.Nil(t, GetFloatPtr("no_such_column", 0, &df))
}

func TestGetFloatPtrCommaDecimal(t *testing.T) {
	// A comma-decimal cell forces the column to string; the value must still
	// come through instead of silently dropping to nil.
	df := testFrame(t, `ot,horas
100,"10,5"
101,8
102,NaN
`)

	got := GetFloatPtr("horas", 0, &df)
	require.NotNil(t, got)
	assert.Equal(t, 10.5, *got)

	got = GetFloatPtr("horas", 1, &df)
	require.NotNil(t, got)
	assert.Equal(t, 8.0, *got)

	assert.Nil(t, GetFloatPtr("horas", 2, &df))
}

func TestGetTimePtr(t *testing.T) {
	df := testFrame(t, "ot,fecha\n100,2025-03-15\n101,pendiente\n")

	got := GetTimePtr("fecha", 0, &df)
	require.NotNil(t, got)
	assert.Equal(t, time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC), *got)

	assert.Nil(t, GetTimePtr("fecha", 1, &df))
	assert.Nil(t, GetTimePtr("no_such_column", 0, &df))
}
