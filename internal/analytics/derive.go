package analytics

import (
	"fmt"
	"math"
	"regexp"
	"strings"

	"github.com/kubev2v/migration-dashboard/pkg/inventory"
)

var (
	rhelPattern    = regexp.MustCompile(`(?i)^(RHEL|Red Hat Enterprise Linux)\s*(\d+)`)
	windowsPattern = regexp.MustCompile(`(?i)^Windows\s*(Server\s*)?(\d+)`)
)

// OSFamily classifies a guest OS label as Windows, Linux or Unknown.
func OSFamily(guestOS string) string {
	if guestOS == "" || guestOS == inventory.UnknownValue {
		return inventory.OSFamilyUnknown
	}
	if strings.Contains(strings.ToLower(guestOS), "windows") {
		return inventory.OSFamilyWindows
	}
	return inventory.OSFamilyLinux
}

// ConsolidateOS collapses a guest OS label to its major version
// (e.g. "RHEL 8.6" -> "RHEL 8", "Windows Server 2019 Standard" ->
// "Windows 2019"). Labels that match no pattern pass through unchanged.
func ConsolidateOS(guestOS string) string {
	if guestOS == "" || guestOS == inventory.UnknownValue {
		return inventory.UnknownValue
	}

	osLabel := strings.TrimSpace(guestOS)

	if m := rhelPattern.FindStringSubmatch(osLabel); m != nil {
		return fmt.Sprintf("RHEL %s", m[2])
	}
	if strings.Contains(strings.ToLower(osLabel), "windows") {
		if m := windowsPattern.FindStringSubmatch(osLabel); m != nil {
			return fmt.Sprintf("Windows %s", m[2])
		}
	}
	return osLabel
}

// SizeCategory buckets a VM by memory and vCPU count. Boundaries are
// exclusive: a VM at exactly 64 GB / 16 vCPU is Large, not X-Large.
func SizeCategory(memGB, cpus int) string {
	switch {
	case memGB > 64 || cpus > 16:
		return inventory.SizeXLarge
	case memGB > 32 || cpus > 8:
		return inventory.SizeLarge
	case memGB > 8 || cpus > 4:
		return inventory.SizeMedium
	default:
		return inventory.SizeSmall
	}
}

// MigrationComplexity estimates migration difficulty. Large Windows VMs are
// High, other Windows VMs Medium; Linux is Medium when running RHEL 7 or
// oversized, Low otherwise.
func MigrationComplexity(guestOS, osFamily string, memGB, cpus int) string {
	isLarge := memGB > 64 || cpus > 16
	osLower := strings.ToLower(guestOS)
	isRHEL7 := strings.Contains(osLower, "rhel 7") || strings.Contains(osLower, "rhel7")

	if osFamily == inventory.OSFamilyWindows {
		if isLarge {
			return inventory.ComplexityHigh
		}
		return inventory.ComplexityMedium
	}
	if isRHEL7 || isLarge {
		return inventory.ComplexityMedium
	}
	return inventory.ComplexityLow
}

// StorageEfficiency returns used/provisioned as a percentage rounded to one
// decimal, or 0 when nothing is provisioned.
func StorageEfficiency(usedGB, provisionedGB float64) float64 {
	if provisionedGB <= 0 {
		return 0
	}
	return math.Round(usedGB/provisionedGB*1000) / 10
}

// Derive computes the classification fields for every normalized record.
func Derive(vms []inventory.VM) []inventory.DerivedVM {
	derived := make([]inventory.DerivedVM, 0, len(vms))
	for _, vm := range vms {
		family := OSFamily(vm.GuestOS)
		derived = append(derived, inventory.DerivedVM{
			VM:                vm,
			OSFamily:          family,
			OSConsolidated:    ConsolidateOS(vm.GuestOS),
			SizeCategory:      SizeCategory(vm.MemoryGB, vm.CPUCount),
			Complexity:        MigrationComplexity(vm.GuestOS, family, vm.MemoryGB, vm.CPUCount),
			StorageEfficiency: StorageEfficiency(vm.UsedGB, vm.StorageGB),
		})
	}
	return derived
}
