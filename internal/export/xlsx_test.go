package export_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"saralgst/internal/export"
	"saralgst/internal/service"
)

func TestWriteXLSX_Register(t *testing.T) {
	var buf bytes.Buffer

	err := export.WriteXLSX(&buf, []*service.ProcessedInvoice{
		processedInvoice(true),
		processedInvoice(false),
	})
	require.NoError(t, err)

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	assert.Equal(t, []string{"Purchase Register"}, f.GetSheetList())

	rows, err := f.GetRows("Purchase Register")
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, "Invoice Number", rows[0][0])
	assert.Equal(t, "INV-2024-0042", rows[1][0])
	assert.Equal(t, "admissible", rows[1][19])
	assert.Equal(t, "blocked", rows[2][19])
}

func TestWriteXLSX_EmptyRegister(t *testing.T) {
	var buf bytes.Buffer

	err := export.WriteXLSX(&buf, nil)
	require.NoError(t, err)

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	rows, err := f.GetRows("Purchase Register")
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}
