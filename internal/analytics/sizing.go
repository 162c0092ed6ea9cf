package analytics

import "github.com/kubev2v/migration-dashboard/pkg/inventory"

var sizeOrder = []string{
	inventory.SizeSmall,
	inventory.SizeMedium,
	inventory.SizeLarge,
	inventory.SizeXLarge,
}

type sizeSpec struct {
	cpuRange string
	memRange string
}

var sizeSpecs = map[string]sizeSpec{
	inventory.SizeSmall:  {cpuRange: "≤4", memRange: "≤8 GB"},
	inventory.SizeMedium: {cpuRange: "≤8", memRange: "≤32 GB"},
	inventory.SizeLarge:  {cpuRange: "≤16", memRange: "≤64 GB"},
	inventory.SizeXLarge: {cpuRange: ">16", memRange: ">64 GB"},
}

// ComputeSizeDetails builds the ordered size-category breakdown table.
// Categories with no matching records are omitted.
func ComputeSizeDetails(vms []inventory.DerivedVM) []SizeDetail {
	details := make([]SizeDetail, 0, len(sizeOrder))
	for _, size := range sizeOrder {
		detail := SizeDetail{
			Category: size,
			CPURange: sizeSpecs[size].cpuRange,
			MemRange: sizeSpecs[size].memRange,
		}
		for _, vm := range vms {
			if vm.SizeCategory != size {
				continue
			}
			detail.VMCount++
			detail.TotalCPUs += vm.CPUCount
			detail.TotalMemoryGB += vm.MemoryGB
			detail.TotalStorageGB += vm.StorageGB
		}
		if detail.VMCount > 0 {
			detail.TotalStorageGB = inventory.RoundGB(detail.TotalStorageGB)
			details = append(details, detail)
		}
	}
	return details
}
