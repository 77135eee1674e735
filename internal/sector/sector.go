// Package sector derives coarse industry groupings for listed symbols.
// The exchange does not publish sector metadata, so the mapping is a
// static table maintained against the listed-company register.
package sector

import (
	"slices"

	"github.com/kwangdi/RSEBL-Tracker-Backend/internal/model"
)

// Other is the label for symbols not present in the static table.
const Other = "Other"

// sectors maps listed symbols to their sector label. New listings not yet
// added here classify as Other until the table is updated.
var sectors = map[string]string{
	"BNBL": "Banking",
	"BOBL": "Banking",
	"DPNB": "Banking",
	"TBL":  "Banking",
	"BIL":  "Insurance",
	"RICB": "Insurance",
	"GICB": "Insurance",
	"BCCL": "Manufacturing",
	"BFAL": "Manufacturing",
	"DFAL": "Manufacturing",
	"DWAL": "Manufacturing",
	"BBPL": "Manufacturing",
	"BPCL": "Manufacturing",
	"DPL":  "Manufacturing",
	"PCAL": "Manufacturing",
	"KCL":  "Manufacturing",
	"STCB": "Trading",
	"SVL":  "Trading",
	"BTCL": "Services",
	"DPOP": "Services",
}

// Of returns the sector label for a symbol. It is total: unmapped symbols
// always classify as Other.
func Of(symbol string) string {
	if s, ok := sectors[symbol]; ok {
		return s
	}
	return Other
}

// Counts returns the number of loaded securities in each sector, for the
// sector bar. Only sectors actually present in the list appear.
func Counts(securities []model.Security) map[string]int {
	counts := make(map[string]int)
	for _, sec := range securities {
		counts[Of(sec.Symbol)]++
	}
	return counts
}

// Labels returns the sorted distinct sector labels present in the loaded
// data, for populating the sector filter.
func Labels(securities []model.Security) []string {
	seen := make(map[string]bool)
	var labels []string
	for _, sec := range securities {
		label := Of(sec.Symbol)
		if !seen[label] {
			seen[label] = true
			labels = append(labels, label)
		}
	}
	slices.Sort(labels)
	return labels
}
