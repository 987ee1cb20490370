package invoice

import (
	"fmt"
	"regexp"
	"strconv"
)

const DefaultPrefix = "INV-EHFA"

// NextNumber returns the number following the highest existing
// "<prefix>-NNNN" in existing. Gaps are not reused. Numbers with a
// different prefix or a non-numeric suffix are ignored.
func NextNumber(prefix string, existing []string) string {
	re := regexp.MustCompile(`^` + regexp.QuoteMeta(prefix) + `-(\d+)$`)

	highest := 0

	for _, n := range existing {
		m := re.FindStringSubmatch(n)
		if m == nil {
			continue
		}

		v, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}

		if v > highest {
			highest = v
		}
	}

	return fmt.Sprintf("%s-%04d", prefix, highest+1)
}
