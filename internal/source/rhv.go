package source

import (
	"strings"

	"go.uber.org/zap"

	"github.com/kubev2v/migration-dashboard/pkg/inventory"
)

// rhvNormalizer handles RHV/oVirt exports. The column layout varies across
// export tool versions, so every field goes through the alias resolver.
// Values already arrive in GB and the export always carries creation dates.
type rhvNormalizer struct{}

func (n *rhvNormalizer) Name() string        { return PlatformRHV }
func (n *rhvNormalizer) DisplayName() string { return "Red Hat Virtualization" }

func (n *rhvNormalizer) Normalize(table *RawTable) ([]inventory.VM, bool, error) {
	resolver := NewColumnResolver(rhvColumnAliases)

	columns := make(map[string]int)
	for field := range rhvColumnAliases {
		if idx, found := resolver.Resolve(table.Header, field); found {
			columns[field] = idx
		}
	}
	if _, found := columns["vm_name"]; !found {
		zap.S().Named("rhv").Infof("no VM name column found among %d headers, sheet yields no records", len(table.Header))
	}

	cell := func(row []string, field string) string {
		if idx, ok := columns[field]; ok && idx < len(row) {
			return strings.TrimSpace(row[idx])
		}
		return ""
	}

	vms := make([]inventory.VM, 0, len(table.Rows))
	for _, row := range table.Rows {
		if len(row) == 0 {
			continue
		}
		name := cell(row, "vm_name")
		if name == "" {
			continue
		}

		vm := inventory.VM{
			Name:         name,
			Cluster:      stringOrUnknown(cell(row, "cluster_name")),
			GuestOS:      stringOrUnknown(cell(row, "guest_os")),
			Host:         stringOrUnknown(cell(row, "vm_host")),
			Status:       normalizeRHVStatus(cell(row, "status")),
			MemoryGB:     parseIntOrZero(cell(row, "mem_size_GB")),
			CPUCount:     parseIntOrZero(cell(row, "num_of_cpus")),
			StorageGB:    parseFloatOrZero(cell(row, "storage_size_GB")),
			UsedGB:       parseFloatOrZero(cell(row, "used_size_GB")),
			CreationDate: parseDate(cell(row, "creation_date")),
		}
		vms = append(vms, vm)
	}

	before := len(vms)
	vms = filterMemoryOutliers(vms)
	if dropped := before - len(vms); dropped > 0 {
		zap.S().Named("rhv").Debugf("dropped %d memory outlier rows", dropped)
	}

	// RHV exports always include the creation_date column, even when some
	// cells fail to parse.
	return vms, true, nil
}

func normalizeRHVStatus(status string) inventory.PowerStatus {
	switch strings.ToLower(status) {
	case "on", "up", "running":
		return inventory.PowerOn
	case "off", "down", "stopped":
		return inventory.PowerOff
	default:
		return inventory.PowerUnknown
	}
}
