package importer

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// parseRinggit reads an amount such as "1,250.50", "RM 80" or "rm1 000.00"
// into sen. Commas and spaces are thousands separators; "." is the decimal
// point. The amount must be positive.
func parseRinggit(s string) (int64, error) {
	clean := strings.TrimSpace(s)
	if len(clean) >= 2 && strings.EqualFold(clean[:2], "RM") {
		clean = clean[2:]
	}

	clean = strings.NewReplacer(",", "", " ", "", "\u00a0", "").Replace(clean)
	if clean == "" {
		return 0, errors.New("empty amount")
	}

	d, err := decimal.NewFromString(clean)
	if err != nil {
		return 0, err
	}

	sen := d.Mul(hundred).Round(0).IntPart()
	if sen <= 0 {
		return 0, errors.New("amount must be positive")
	}

	return sen, nil
}
