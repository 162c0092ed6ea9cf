package analytics

import "github.com/kubev2v/migration-dashboard/pkg/inventory"

// ComputeDistributions groups the dataset by its categorical dimensions and
// rolls up per-cluster and per-host resource usage.
func ComputeDistributions(vms []inventory.DerivedVM) Distributions {
	dist := Distributions{
		OSFamily:       make(map[string]int),
		OSConsolidated: make(map[string]int),
		SizeCategory:   make(map[string]int),
		Complexity:     make(map[string]int),
		Status:         make(map[string]int),
		ByCluster:      make(map[string]ClusterUsage),
		ByHost:         make(map[string]HostUsage),
	}

	for _, vm := range vms {
		dist.OSFamily[vm.OSFamily]++
		dist.OSConsolidated[vm.OSConsolidated]++
		dist.SizeCategory[vm.SizeCategory]++
		dist.Complexity[vm.Complexity]++
		dist.Status[string(vm.Status)]++

		cluster := dist.ByCluster[vm.Cluster]
		cluster.VMCount++
		cluster.CPUs += vm.CPUCount
		cluster.MemoryGB += vm.MemoryGB
		cluster.StorageGB += vm.StorageGB
		cluster.UsedGB += vm.UsedGB
		dist.ByCluster[vm.Cluster] = cluster

		host := dist.ByHost[vm.Host]
		host.VMCount++
		host.CPUs += vm.CPUCount
		host.MemoryGB += vm.MemoryGB
		dist.ByHost[vm.Host] = host
	}

	for name, cluster := range dist.ByCluster {
		cluster.StorageGB = inventory.RoundGB(cluster.StorageGB)
		cluster.UsedGB = inventory.RoundGB(cluster.UsedGB)
		dist.ByCluster[name] = cluster
	}

	return dist
}
