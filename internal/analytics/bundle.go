package analytics

import "github.com/kubev2v/migration-dashboard/pkg/inventory"

// Bundle is the complete analytics output consumed by the presentation
// layer. It is created once per pipeline run and read-only afterwards.
type Bundle struct {
	Stats             Statistics                       `json:"stats"`
	Distributions     Distributions                    `json:"distributions"`
	SizeDetails       []SizeDetail                     `json:"size_details"`
	MigrationWaves    []MigrationWave                  `json:"migration_waves"`
	GrowthTrends      *GrowthTrends                    `json:"growth_trends"`
	ComplexityByOS    map[string]ComplexityBreakdown   `json:"complexity_by_os"`
	VMList            []VMRecord                       `json:"vm_list"`
	UniqueClusters    []string                         `json:"unique_clusters"`
	UniqueHosts       []string                         `json:"unique_hosts"`
	UniqueOS          []string                         `json:"unique_os"`
	GeneratedAt       string                           `json:"generated_at"`
	SourcePlatform    string                           `json:"source_platform"`
	SourceDisplayName string                           `json:"source_display_name"`
	HasDateData       bool                             `json:"has_date_data"`
}

// Statistics holds scalar summary metrics for the whole inventory. The
// embedded provisioning stats are nil, and absent from the JSON encoding,
// when the source has no usable creation dates.
type Statistics struct {
	TotalVMs                  int     `json:"total_vms"`
	TotalCPUs                 int     `json:"total_vcpus"`
	TotalMemoryGB             int     `json:"total_memory_gb"`
	TotalStorageProvisionedGB float64 `json:"total_storage_provisioned_gb"`
	TotalStorageUsedGB        float64 `json:"total_storage_used_gb"`
	Clusters                  int     `json:"clusters"`
	Hosts                     int     `json:"hosts"`
	RunningVMs                int     `json:"running_vms"`
	StoppedVMs                int     `json:"stopped_vms"`

	*ProvisioningStats
}

// ProvisioningStats are the date-derived statistics, distinguishing "no
// data" from "zero activity" by being entirely absent when unavailable.
type ProvisioningStats struct {
	FirstVMDate    string  `json:"first_vm_date"`
	LastVMDate     string  `json:"last_vm_date"`
	AvgVMsPerMonth float64 `json:"avg_vms_per_month"`
	PeakMonth      string  `json:"peak_month"`
	PeakMonthCount int     `json:"peak_month_count"`
}

// Distributions groups records by categorical dimensions. Grouping keys are
// exact strings; no casing normalization is applied to cluster/host names.
type Distributions struct {
	OSFamily       map[string]int          `json:"os_family"`
	OSConsolidated map[string]int          `json:"os_consolidated"`
	SizeCategory   map[string]int          `json:"size_category"`
	Complexity     map[string]int          `json:"complexity"`
	Status         map[string]int          `json:"status"`
	ByCluster      map[string]ClusterUsage `json:"by_cluster"`
	ByHost         map[string]HostUsage    `json:"by_host"`
}

// ClusterUsage is the per-cluster resource rollup.
type ClusterUsage struct {
	VMCount   int     `json:"vm_count"`
	CPUs      int     `json:"num_of_cpus"`
	MemoryGB  int     `json:"mem_size_gb"`
	StorageGB float64 `json:"storage_size_gb"`
	UsedGB    float64 `json:"used_size_gb"`
}

// HostUsage is the per-host resource rollup.
type HostUsage struct {
	VMCount  int `json:"vm_count"`
	CPUs     int `json:"num_of_cpus"`
	MemoryGB int `json:"mem_size_gb"`
}

// SizeDetail is one row of the size-category breakdown table. Range strings
// are fixed per category.
type SizeDetail struct {
	Category       string  `json:"category"`
	CPURange       string  `json:"cpu_range"`
	MemRange       string  `json:"mem_range"`
	VMCount        int     `json:"vm_count"`
	TotalCPUs      int     `json:"total_vcpus"`
	TotalMemoryGB  int     `json:"total_memory"`
	TotalStorageGB float64 `json:"total_storage"`
}

// MigrationWave is one suggested group of VMs to migrate together.
type MigrationWave struct {
	Wave        int    `json:"wave"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Criteria    string `json:"criteria"`
	VMCount     int    `json:"vm_count"`
	CPUs        int    `json:"vcpus"`
	MemoryGB    int    `json:"memory_gb"`
}

// GrowthTrends holds aligned monthly and cumulative series in chronological
// order. Months with zero activity are absent, not zero-filled. A nil
// GrowthTrends means the source has no usable temporal data.
type GrowthTrends struct {
	Months           []string `json:"months"`
	MonthlyVMs       []int    `json:"monthly_vms"`
	MonthlyCPUs      []int    `json:"monthly_vcpus"`
	MonthlyMemory    []int    `json:"monthly_memory"`
	CumulativeVMs    []int    `json:"cumulative_vms"`
	CumulativeCPUs   []int    `json:"cumulative_vcpus"`
	CumulativeMemory []int    `json:"cumulative_memory"`
}

// ComplexityBreakdown counts complexity levels within one OS group.
type ComplexityBreakdown struct {
	Low    int `json:"Low"`
	Medium int `json:"Medium"`
	High   int `json:"High"`
}

// VMRecord is the per-VM projection for the inventory detail table.
type VMRecord struct {
	Name              string  `json:"vm_name"`
	Cluster           string  `json:"cluster"`
	GuestOS           string  `json:"guest_os"`
	Host              string  `json:"host"`
	Status            string  `json:"status"`
	MemoryGB          int     `json:"memory_gb"`
	CPUs              int     `json:"vcpus"`
	StorageGB         float64 `json:"storage_gb"`
	UsedGB            float64 `json:"used_gb"`
	Utilization       float64 `json:"utilization"`
	SizeCategory      string  `json:"size_category"`
	Complexity        string  `json:"complexity"`
	OSFamily          string  `json:"os_family"`
	OSConsolidated    string  `json:"os_consolidated"`
	CreationDate      string  `json:"creation_date"`
}

const dateFormat = "2006-01-02"

func buildVMList(vms []inventory.DerivedVM) []VMRecord {
	records := make([]VMRecord, 0, len(vms))
	for _, vm := range vms {
		creationDate := ""
		if vm.CreationDate != nil {
			creationDate = vm.CreationDate.Format(dateFormat)
		}
		records = append(records, VMRecord{
			Name:           vm.Name,
			Cluster:        vm.Cluster,
			GuestOS:        vm.GuestOS,
			Host:           vm.Host,
			Status:         string(vm.Status),
			MemoryGB:       vm.MemoryGB,
			CPUs:           vm.CPUCount,
			StorageGB:      inventory.RoundGB(vm.StorageGB),
			UsedGB:         inventory.RoundGB(vm.UsedGB),
			Utilization:    vm.StorageEfficiency,
			SizeCategory:   vm.SizeCategory,
			Complexity:     vm.Complexity,
			OSFamily:       vm.OSFamily,
			OSConsolidated: vm.OSConsolidated,
			CreationDate:   creationDate,
		})
	}
	return records
}
