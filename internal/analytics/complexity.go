package analytics

import "github.com/kubev2v/migration-dashboard/pkg/inventory"

// ComputeComplexityByOS counts complexity levels within every distinct
// consolidated-OS group present in the dataset.
func ComputeComplexityByOS(vms []inventory.DerivedVM) map[string]ComplexityBreakdown {
	result := make(map[string]ComplexityBreakdown)
	for _, vm := range vms {
		breakdown := result[vm.OSConsolidated]
		switch vm.Complexity {
		case inventory.ComplexityLow:
			breakdown.Low++
		case inventory.ComplexityMedium:
			breakdown.Medium++
		case inventory.ComplexityHigh:
			breakdown.High++
		}
		result[vm.OSConsolidated] = breakdown
	}
	return result
}
