package invoice_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ehfoto/backoffice/internal/invoice"
)

func TestNextNumber(t *testing.T) {
	tests := []struct {
		name     string
		existing []string
		want     string
	}{
		{"Empty", nil, "INV-EHFA-0001"},
		{"GapNotFilled", []string{"INV-EHFA-0001", "INV-EHFA-0003"}, "INV-EHFA-0004"},
		{"Unordered", []string{"INV-EHFA-0012", "INV-EHFA-0002"}, "INV-EHFA-0013"},
		{"IgnoresForeignPrefix", []string{"INV-OTHER-0099", "INV-EHFA-0005"}, "INV-EHFA-0006"},
		{"IgnoresMalformed", []string{"INV-EHFA-00x1", "INV-EHFA-", "INV-EHFA-0002-B"}, "INV-EHFA-0001"},
		{"GrowsPastPadding", []string{"INV-EHFA-9999"}, "INV-EHFA-10000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, invoice.NextNumber(invoice.DefaultPrefix, tt.existing))
		})
	}
}

func TestNextNumber_PrefixIsLiteral(t *testing.T) {
	assert.Equal(t, "A.B-0001", invoice.NextNumber("A.B", []string{"AxB-0007"}))
}

func TestTotalAndBalance(t *testing.T) {
	items := []invoice.Item{{Name: "Pakej A", Price: 150000}, {Name: "Album", Price: 35000}}

	inv := invoice.Invoice{Total: invoice.Total(items), Deposit: 50000}
	assert.Equal(t, int64(185000), inv.Total)
	assert.Equal(t, int64(135000), inv.Balance())

	inv.Deposit = 200000
	assert.Equal(t, int64(-15000), inv.Balance())
}
