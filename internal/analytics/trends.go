package analytics

import (
	"sort"

	"github.com/kubev2v/migration-dashboard/pkg/inventory"
)

// ComputeGrowthTrends buckets dated records by calendar month and produces
// aligned monthly and cumulative series in chronological order. Returns nil
// when the source has no temporal data or no record carries a valid date.
func ComputeGrowthTrends(vms []inventory.DerivedVM, hasDateData bool) *GrowthTrends {
	if !hasDateData {
		return nil
	}

	dated := make([]inventory.DerivedVM, 0, len(vms))
	for _, vm := range vms {
		if vm.CreationDate != nil {
			dated = append(dated, vm)
		}
	}
	if len(dated) == 0 {
		return nil
	}

	sort.SliceStable(dated, func(i, j int) bool {
		return dated[i].CreationDate.Before(*dated[j].CreationDate)
	})

	trends := &GrowthTrends{
		Months:           []string{},
		MonthlyVMs:       []int{},
		MonthlyCPUs:      []int{},
		MonthlyMemory:    []int{},
		CumulativeVMs:    []int{},
		CumulativeCPUs:   []int{},
		CumulativeMemory: []int{},
	}

	// Records are sorted, so months appear in strictly increasing order;
	// months with no activity are simply absent.
	for _, vm := range dated {
		month := vm.CreationDate.Format(monthFormat)
		last := len(trends.Months) - 1
		if last < 0 || trends.Months[last] != month {
			trends.Months = append(trends.Months, month)
			trends.MonthlyVMs = append(trends.MonthlyVMs, 0)
			trends.MonthlyCPUs = append(trends.MonthlyCPUs, 0)
			trends.MonthlyMemory = append(trends.MonthlyMemory, 0)
			last++
		}
		trends.MonthlyVMs[last]++
		trends.MonthlyCPUs[last] += vm.CPUCount
		trends.MonthlyMemory[last] += vm.MemoryGB
	}

	vmTotal, cpuTotal, memTotal := 0, 0, 0
	for i := range trends.Months {
		vmTotal += trends.MonthlyVMs[i]
		cpuTotal += trends.MonthlyCPUs[i]
		memTotal += trends.MonthlyMemory[i]
		trends.CumulativeVMs = append(trends.CumulativeVMs, vmTotal)
		trends.CumulativeCPUs = append(trends.CumulativeCPUs, cpuTotal)
		trends.CumulativeMemory = append(trends.CumulativeMemory, memTotal)
	}

	return trends
}
