package source

import "strings"

// rhvColumnAliases maps each canonical field to the header variations seen
// across RHV/oVirt export tool versions. Alias order decides the tie-break
// when several aliases are present in the same sheet.
var rhvColumnAliases = map[string][]string{
	"vm_name":           {"vm_name", "name", "vm"},
	"cluster_name":      {"cluster_name", "cluster"},
	"storage_pool_name": {"storage_pool_name", "storage_pool", "storage_domain"},
	"guest_os":          {"guest_os", "os", "operating_system"},
	"vm_host":           {"vm_host", "host", "hypervisor"},
	"status":            {"On/Off", "status", "power_state", "state"},
	"mem_size_GB":       {"mem_size_GB", "memory", "ram", "mem_gb"},
	"num_of_cpus":       {"num_of_cpus", "vcpus", "cpus", "cpu"},
	"storage_size_GB":   {"storage_size-GB", "storage_size_GB", "provisioned_storage", "storage"},
	"used_size_GB":      {"used_size-GB", "used_size_GB", "used_storage"},
	"creation_date":     {"creation_date", "created", "create_date"},
}

// vmwareColumnNames maps RVTools vInfo headers (lowercased) to canonical
// fields. RVTools has a fixed schema, so a static rename table is enough.
var vmwareColumnNames = map[string]string{
	"vm":                                     "vm_name",
	"cluster":                                "cluster_name",
	"datacenter":                             "datacenter",
	"host":                                   "vm_host",
	"cpus":                                   "num_of_cpus",
	"os according to the vmware tools":       "guest_os",
	"os according to the configuration file": "guest_os_config",
	"powerstate":                             "power_state",
	"memory":                                 "memory_mb",
	"provisioned mb":                         "storage_provisioned_mb",
	"in use mb":                              "storage_used_mb",
}

// vmwareDateAliases are the column names probed for VM creation dates.
// Availability varies across RVTools versions, so the probe also accepts
// any header containing both "creat" and "date".
var vmwareDateAliases = []string{"creation date", "created", "create date"}

// vmwareNotesColumn is the free-text column checked as a last resort when
// no dedicated creation-date column exists.
const vmwareNotesColumn = "annotation"

// ColumnResolver performs case-insensitive, alias-aware lookup of source
// column names against a canonical field table.
type ColumnResolver struct {
	aliases map[string][]string
}

func NewColumnResolver(aliases map[string][]string) *ColumnResolver {
	return &ColumnResolver{aliases: aliases}
}

// Resolve returns the index of the first header matching one of the
// canonical field's aliases. Matching is case-insensitive and trimmed;
// alias order wins over header order.
func (r *ColumnResolver) Resolve(headers []string, field string) (int, bool) {
	variations, ok := r.aliases[field]
	if !ok {
		variations = []string{field}
	}
	for _, variation := range variations {
		want := strings.ToLower(strings.TrimSpace(variation))
		for i, header := range headers {
			if strings.ToLower(strings.TrimSpace(header)) == want {
				return i, true
			}
		}
	}
	return 0, false
}

func buildColumnMap(headers []string) map[string]int {
	colMap := make(map[string]int)
	for i, header := range headers {
		key := strings.ToLower(strings.TrimSpace(header))
		if _, exists := colMap[key]; !exists {
			colMap[key] = i
		}
	}
	return colMap
}

func getColumnValue(row []string, colMap map[string]int, key string) string {
	if idx, exists := colMap[key]; exists && idx < len(row) {
		return strings.TrimSpace(row[idx])
	}
	return ""
}
