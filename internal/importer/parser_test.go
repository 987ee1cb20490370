package importer_test

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/charmap"

	"github.com/ehfoto/backoffice/internal/importer"
	"github.com/ehfoto/backoffice/internal/transaction"
)

func date(y, m, d int) time.Time {
	return time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
}

func TestParser_MalayHeaders(t *testing.T) {
	csv := `Lejar EH Foto Artwork,,,
,,,
Tarikh,Jenis,Keterangan,Jumlah (RM)
2024-03-01,Pendapatan,Deposit majlis Puan Siti,"1,500.00"
05/03/2024,Perbelanjaan,Bateri kamera,RM 85.90
,,JUMLAH,"1,585.90"
`

	txs, err := importer.NewParser().Parse(strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, txs, 2)

	assert.Equal(t, date(2024, 3, 1), txs[0].Date)
	assert.Equal(t, transaction.TypeIncome, txs[0].Type)
	assert.Equal(t, "Deposit majlis Puan Siti", txs[0].Description)
	assert.Equal(t, int64(150000), txs[0].Amount)
	assert.Equal(t, transaction.SourceImport, txs[0].Source)

	assert.Equal(t, date(2024, 3, 5), txs[1].Date)
	assert.Equal(t, transaction.TypeExpense, txs[1].Type)
	assert.Equal(t, int64(8590), txs[1].Amount)
}

func TestParser_EnglishSemicolons(t *testing.T) {
	csv := "Amount;Description;Date;Type\n" +
		"200;Studio rental;12-04-2024;income\n" +
		"45.5;Parking;13-04-2024;EXPENSE\n"

	txs, err := importer.NewParser().Parse(strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, txs, 2)

	assert.Equal(t, int64(20000), txs[0].Amount)
	assert.Equal(t, date(2024, 4, 12), txs[0].Date)
	assert.Equal(t, transaction.TypeExpense, txs[1].Type)
	assert.Equal(t, int64(4550), txs[1].Amount)
}

func TestParser_Windows1252(t *testing.T) {
	text := "Tarikh,Jenis,Keterangan,Jumlah\n2024-06-01,Perbelanjaan,Café Ayam Penyet,32.00\n"

	encoded, err := charmap.Windows1252.NewEncoder().Bytes([]byte(text))
	require.NoError(t, err)

	txs, err := importer.NewParser().Parse(bytes.NewReader(encoded))
	require.NoError(t, err)
	require.Len(t, txs, 1)
	assert.Equal(t, "Café Ayam Penyet", txs[0].Description)
}

func TestParser_UTF8BOM(t *testing.T) {
	input := append([]byte{0xEF, 0xBB, 0xBF}, []byte("Tarikh,Jenis,Keterangan,Jumlah\n2024-06-01,Pendapatan,Sewa,10\n")...)

	txs, err := importer.NewParser().Parse(bytes.NewReader(input))
	require.NoError(t, err)
	require.Len(t, txs, 1)
	assert.Equal(t, int64(1000), txs[0].Amount)
}

func TestParser_Errors(t *testing.T) {
	tests := []struct {
		name    string
		csv     string
		wantErr error
		wantMsg string
	}{
		{
			name:    "NoHeader",
			csv:     "a,b,c\n1,2,3\n",
			wantErr: importer.ErrNoHeader,
		},
		{
			name:    "BadAmount",
			csv:     "Tarikh,Jenis,Keterangan,Jumlah\n2024-01-01,Pendapatan,ok,10\n2024-01-02,Pendapatan,bad,abc\n",
			wantErr: importer.ErrInvalidRow,
			wantMsg: "row 3",
		},
		{
			name:    "UnknownType",
			csv:     "Tarikh,Jenis,Keterangan,Jumlah\n2024-01-01,Hadiah,x,10\n",
			wantErr: importer.ErrInvalidRow,
			wantMsg: "row 2",
		},
		{
			name:    "MissingDescription",
			csv:     "Tarikh,Jenis,Keterangan,Jumlah\n2024-01-01,Pendapatan,,10\n",
			wantErr: importer.ErrInvalidRow,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := importer.NewParser().Parse(strings.NewReader(tt.csv))
			assert.ErrorIs(t, err, tt.wantErr)

			if tt.wantMsg != "" {
				assert.ErrorContains(t, err, tt.wantMsg)
			}
		})
	}
}
