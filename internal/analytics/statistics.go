package analytics

import (
	"math"
	"sort"
	"time"

	"github.com/kubev2v/migration-dashboard/pkg/inventory"
)

const monthFormat = "2006-01"

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// ComputeStatistics reduces the derived dataset to scalar summary metrics.
// Date-derived statistics are only attached when the source reported
// temporal data and at least one record carries a valid creation date.
func ComputeStatistics(vms []inventory.DerivedVM, hasDateData bool) Statistics {
	stats := Statistics{TotalVMs: len(vms)}

	clusters := make(map[string]struct{})
	hosts := make(map[string]struct{})
	for _, vm := range vms {
		stats.TotalCPUs += vm.CPUCount
		stats.TotalMemoryGB += vm.MemoryGB
		stats.TotalStorageProvisionedGB += vm.StorageGB
		stats.TotalStorageUsedGB += vm.UsedGB
		clusters[vm.Cluster] = struct{}{}
		hosts[vm.Host] = struct{}{}
		switch vm.Status {
		case inventory.PowerOn:
			stats.RunningVMs++
		case inventory.PowerOff:
			stats.StoppedVMs++
		}
	}
	stats.TotalStorageProvisionedGB = inventory.RoundGB(stats.TotalStorageProvisionedGB)
	stats.TotalStorageUsedGB = inventory.RoundGB(stats.TotalStorageUsedGB)
	stats.Clusters = len(clusters)
	stats.Hosts = len(hosts)

	if hasDateData {
		stats.ProvisioningStats = computeProvisioningStats(vms)
	}
	return stats
}

func computeProvisioningStats(vms []inventory.DerivedVM) *ProvisioningStats {
	var first, last *time.Time
	monthlyCounts := make(map[string]int)
	dated := 0

	for _, vm := range vms {
		if vm.CreationDate == nil {
			continue
		}
		dated++
		t := *vm.CreationDate
		if first == nil || t.Before(*first) {
			first = &t
		}
		if last == nil || t.After(*last) {
			last = &t
		}
		monthlyCounts[t.Format(monthFormat)]++
	}
	if dated == 0 {
		return nil
	}

	// Peak month, ties broken by the first month in sorted order.
	months := make([]string, 0, len(monthlyCounts))
	for month := range monthlyCounts {
		months = append(months, month)
	}
	sort.Strings(months)

	peakMonth := months[0]
	for _, month := range months {
		if monthlyCounts[month] > monthlyCounts[peakMonth] {
			peakMonth = month
		}
	}

	return &ProvisioningStats{
		FirstVMDate:    first.Format(dateFormat),
		LastVMDate:     last.Format(dateFormat),
		AvgVMsPerMonth: round1(float64(dated) / float64(len(monthlyCounts))),
		PeakMonth:      peakMonth,
		PeakMonthCount: monthlyCounts[peakMonth],
	}
}
