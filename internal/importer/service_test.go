package importer_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/ehfoto/backoffice/internal/importer"
	"github.com/ehfoto/backoffice/internal/transaction"
)

func TestService_Import(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ledger := importer.NewMockLedger(ctrl)
	svc := importer.NewService(ledger)

	ledger.EXPECT().
		CreateBatch(gomock.Any(), gomock.Len(2)).
		DoAndReturn(func(_ context.Context, params []transaction.CreateParams) ([]*transaction.Transaction, error) {
			out := make([]*transaction.Transaction, len(params))
			for i, p := range params {
				out[i] = &transaction.Transaction{Type: p.Type, Amount: p.Amount, Source: p.Source}
			}

			return out, nil
		})

	txs, err := svc.Import(context.Background(), strings.NewReader(
		"Tarikh,Jenis,Keterangan,Jumlah\n2024-01-01,Pendapatan,a,1\n2024-01-02,Perbelanjaan,b,2\n",
	))
	require.NoError(t, err)
	require.Len(t, txs, 2)
	assert.Equal(t, transaction.SourceImport, txs[1].Source)
}

func TestService_Import_InvalidStoresNothing(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := importer.NewService(importer.NewMockLedger(ctrl))

	_, err := svc.Import(context.Background(), strings.NewReader(
		"Tarikh,Jenis,Keterangan,Jumlah\n2024-01-01,Pendapatan,a,x\n",
	))
	assert.ErrorIs(t, err, importer.ErrInvalidRow)
}

func TestService_Import_EmptyFile(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := importer.NewService(importer.NewMockLedger(ctrl))

	txs, err := svc.Import(context.Background(), strings.NewReader("Tarikh,Jenis,Keterangan,Jumlah\n"))
	require.NoError(t, err)
	assert.Empty(t, txs)
}
