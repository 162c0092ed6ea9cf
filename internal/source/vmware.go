package source

import (
	"math"
	"strings"

	"go.uber.org/zap"

	"github.com/kubev2v/migration-dashboard/pkg/inventory"
)

// vmwareNormalizer handles VMware vSphere exports in RVTools vInfo format.
// Memory and storage arrive in MB, power state uses the vendor enum and
// creation dates are only present in some RVTools versions, so the date
// column is discovered at runtime.
type vmwareNormalizer struct {
	// Creation-date capability is probed once during the first Normalize
	// call and never re-probed afterwards.
	probed      bool
	hasDateData bool
	dateColumn  string
}

func (n *vmwareNormalizer) Name() string        { return PlatformVMware }
func (n *vmwareNormalizer) DisplayName() string { return "VMware vSphere" }

// HasDateData reports the probed creation-date capability. Valid after the
// first Normalize call; false before.
func (n *vmwareNormalizer) HasDateData() bool {
	return n.probed && n.hasDateData
}

func (n *vmwareNormalizer) Normalize(table *RawTable) ([]inventory.VM, bool, error) {
	log := zap.S().Named("vmware")
	colMap := buildColumnMap(table.Header)

	canonical := make(map[string]int)
	for header, field := range vmwareColumnNames {
		if idx, ok := colMap[header]; ok {
			canonical[field] = idx
		}
	}

	cell := func(row []string, field string) string {
		if idx, ok := canonical[field]; ok && idx < len(row) {
			return strings.TrimSpace(row[idx])
		}
		return ""
	}

	if !n.probed {
		n.dateColumn = probeDateColumn(table.Header)
		if n.dateColumn != "" {
			log.Debugf("creation-date candidate column: %q", n.dateColumn)
		}
	}
	// An empty probe result means no date column was discovered; never let
	// it alias a blank header cell in the column map.
	dateIdx, hasDateColumn := 0, false
	if n.dateColumn != "" {
		dateIdx, hasDateColumn = colMap[n.dateColumn]
	}

	// When the cluster column is wholly absent or empty, fall back to the
	// datacenter as the organizational grouping.
	useDatacenter := clusterColumnEmpty(table.Rows, canonical)

	anyValidDate := false
	vms := make([]inventory.VM, 0, len(table.Rows))
	for _, row := range table.Rows {
		if len(row) == 0 {
			continue
		}
		// Template rows are not real workloads.
		if parseBooleanValue(getColumnValue(row, colMap, "template")) {
			continue
		}
		name := cell(row, "vm_name")
		if name == "" {
			continue
		}

		guestOS := cell(row, "guest_os")
		if guestOS == "" {
			guestOS = cell(row, "guest_os_config")
		}

		cluster := cell(row, "cluster_name")
		if useDatacenter {
			cluster = cell(row, "datacenter")
		}

		vm := inventory.VM{
			Name:      name,
			Cluster:   stringOrUnknown(cluster),
			GuestOS:   stringOrUnknown(guestOS),
			Host:      stringOrUnknown(cell(row, "vm_host")),
			Status:    normalizeVMwareStatus(cell(row, "power_state")),
			MemoryGB:  int(math.Round(parseFloatOrZero(cell(row, "memory_mb")) / 1024)),
			CPUCount:  parseIntOrZero(cell(row, "num_of_cpus")),
			StorageGB: inventory.RoundGB(parseFloatOrZero(cell(row, "storage_provisioned_mb")) / 1024),
			UsedGB:    inventory.RoundGB(parseFloatOrZero(cell(row, "storage_used_mb")) / 1024),
		}
		if hasDateColumn && dateIdx < len(row) {
			if t := parseDate(row[dateIdx]); t != nil {
				vm.CreationDate = t
				anyValidDate = true
			}
		}
		vms = append(vms, vm)
	}

	before := len(vms)
	vms = filterMemoryOutliers(vms)
	if dropped := before - len(vms); dropped > 0 {
		log.Debugf("dropped %d memory outlier rows", dropped)
	}

	if !n.probed {
		n.hasDateData = anyValidDate
		n.probed = true
		if n.hasDateData {
			log.Infof("creation dates available from column %q", n.dateColumn)
		} else {
			log.Infof("no usable creation dates in export, trends will be unavailable")
		}
	}

	return vms, n.hasDateData, nil
}

// probeDateColumn searches the header for a creation-date column: first the
// known aliases, then any header containing both "creat" and "date", and as
// a last resort the free-text annotation column some operators use to record
// provisioning dates.
func probeDateColumn(headers []string) string {
	colMap := buildColumnMap(headers)

	for _, alias := range vmwareDateAliases {
		if _, ok := colMap[alias]; ok {
			return alias
		}
	}
	for _, header := range headers {
		key := strings.ToLower(strings.TrimSpace(header))
		if strings.Contains(key, "creat") && strings.Contains(key, "date") {
			return key
		}
	}
	if _, ok := colMap[vmwareNotesColumn]; ok {
		return vmwareNotesColumn
	}
	return ""
}

func clusterColumnEmpty(rows [][]string, canonical map[string]int) bool {
	idx, ok := canonical["cluster_name"]
	if !ok {
		return true
	}
	for _, row := range rows {
		if idx < len(row) && strings.TrimSpace(row[idx]) != "" {
			return false
		}
	}
	return true
}

func normalizeVMwareStatus(state string) inventory.PowerStatus {
	switch state {
	case "poweredOn":
		return inventory.PowerOn
	case "poweredOff":
		return inventory.PowerOff
	default:
		return inventory.PowerUnknown
	}
}
