package analytics

import "github.com/kubev2v/migration-dashboard/pkg/inventory"

type waveSpec struct {
	name        string
	description string
	criteria    string
	matches     func(vm inventory.DerivedVM) bool
}

// The four wave criteria in their fixed order. Together they cover every
// combination the complexity rules can produce except Unknown-family VMs
// with Low complexity, which deliberately fall through all waves.
var waveSpecs = []waveSpec{
	{
		name:        "Pilot - Low Complexity Linux",
		description: "RHEL 8/9 VMs with standard sizing",
		criteria:    "Linux, Low complexity, Small/Medium size",
		matches: func(vm inventory.DerivedVM) bool {
			return vm.Complexity == inventory.ComplexityLow && vm.OSFamily == inventory.OSFamilyLinux
		},
	},
	{
		name:        "Linux Extended",
		description: "RHEL 7 and large Linux VMs",
		criteria:    "Linux, Medium complexity",
		matches: func(vm inventory.DerivedVM) bool {
			return vm.Complexity == inventory.ComplexityMedium && vm.OSFamily == inventory.OSFamilyLinux
		},
	},
	{
		name:        "Windows Standard",
		description: "Windows VMs with standard sizing",
		criteria:    "Windows, ≤64GB RAM, ≤16 vCPU",
		matches: func(vm inventory.DerivedVM) bool {
			return vm.Complexity == inventory.ComplexityMedium && vm.OSFamily == inventory.OSFamilyWindows
		},
	},
	{
		name:        "High Complexity",
		description: "Large Windows VMs requiring special attention",
		criteria:    "Windows, >64GB RAM or >16 vCPU",
		matches: func(vm inventory.DerivedVM) bool {
			return vm.Complexity == inventory.ComplexityHigh
		},
	},
}

// ComputeMigrationWaves partitions the inventory into the ordered migration
// wave groups. Empty waves are omitted; wave numbers reflect the fixed
// order, not the position after omission.
func ComputeMigrationWaves(vms []inventory.DerivedVM) []MigrationWave {
	waves := make([]MigrationWave, 0, len(waveSpecs))
	for i, spec := range waveSpecs {
		wave := MigrationWave{
			Wave:        i + 1,
			Name:        spec.name,
			Description: spec.description,
			Criteria:    spec.criteria,
		}
		for _, vm := range vms {
			if !spec.matches(vm) {
				continue
			}
			wave.VMCount++
			wave.CPUs += vm.CPUCount
			wave.MemoryGB += vm.MemoryGB
		}
		if wave.VMCount > 0 {
			waves = append(waves, wave)
		}
	}
	return waves
}
