package source

import (
	"math"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/kubev2v/migration-dashboard/pkg/inventory"
)

func parseIntOrZero(s string) int {
	s = strings.ReplaceAll(s, ",", "")
	val, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		// Some export tools format integer columns as floats.
		if f, ferr := strconv.ParseFloat(strings.TrimSpace(s), 64); ferr == nil {
			return int(f)
		}
		return 0
	}
	return val
}

func parseFloatOrZero(s string) float64 {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", "")
	if s == "" {
		return 0
	}
	val, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return val
}

func parseBooleanValue(s string) bool {
	if s == "" {
		return false
	}
	cleanStr := strings.ToLower(strings.TrimSpace(s))
	return cleanStr == "true" || cleanStr == "1" || cleanStr == "yes" || cleanStr == "enabled"
}

// dateLayouts are tried in order when parsing creation-date cells. Excel
// renders dates differently depending on locale and cell formatting.
var dateLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05Z07:00",
	"2006-01-02",
	"2006/01/02 15:04:05",
	"2006/01/02",
	"01-02-06 15:04",
	"1/2/2006 15:04:05",
	"1/2/2006 15:04",
	"1/2/2006",
	"1/2/06 15:04",
	"02.01.2006 15:04:05",
}

// parseDate parses a creation-date cell. Unparseable values resolve to nil,
// never to an error.
func parseDate(s string) *time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return &t
		}
	}
	return nil
}

// percentile computes the q-th percentile (0..1) with linear interpolation
// between closest ranks.
func percentile(values []float64, q float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	pos := q * float64(len(sorted)-1)
	lower := int(math.Floor(pos))
	upper := int(math.Ceil(pos))
	if lower == upper {
		return sorted[lower]
	}
	frac := pos - float64(lower)
	return sorted[lower] + frac*(sorted[upper]-sorted[lower])
}

// filterMemoryOutliers drops rows whose memory exceeds 10x the 99th
// percentile. Some export tools inject subtotal rows at the bottom of the
// sheet; those dwarf real VMs and would skew every aggregate. The guard is
// skipped when fewer than two rows remain.
func filterMemoryOutliers(vms []inventory.VM) []inventory.VM {
	if len(vms) < 2 {
		return vms
	}

	memories := make([]float64, 0, len(vms))
	for _, vm := range vms {
		memories = append(memories, float64(vm.MemoryGB))
	}
	threshold := percentile(memories, 0.99) * 10

	filtered := make([]inventory.VM, 0, len(vms))
	for _, vm := range vms {
		if float64(vm.MemoryGB) <= threshold {
			filtered = append(filtered, vm)
		}
	}
	return filtered
}

func stringOrUnknown(s string) string {
	if s == "" {
		return inventory.UnknownValue
	}
	return s
}
