package inventory

import (
	"math"
	"time"
)

// PowerStatus is the normalized power state of a VM.
type PowerStatus string

const (
	PowerOn      PowerStatus = "On"
	PowerOff     PowerStatus = "Off"
	PowerUnknown PowerStatus = "Unknown"
)

// OS family values derived from the guest OS label.
const (
	OSFamilyWindows = "Windows"
	OSFamilyLinux   = "Linux"
	OSFamilyUnknown = "Unknown"
)

// Size categories ordered from smallest to largest.
const (
	SizeSmall  = "Small"
	SizeMedium = "Medium"
	SizeLarge  = "Large"
	SizeXLarge = "X-Large"
)

// Migration complexity levels.
const (
	ComplexityLow    = "Low"
	ComplexityMedium = "Medium"
	ComplexityHigh   = "High"
)

// UnknownValue is the default for string fields absent from the source.
const UnknownValue = "Unknown"

// RoundGB rounds a gigabyte quantity to two decimals for reporting.
func RoundGB(v float64) float64 {
	return math.Round(v*100) / 100
}

// VM is the canonical per-VM record after column and unit reconciliation.
// Every field is populated after normalization: missing source data resolves
// to "Unknown" strings, zero numerics or a nil creation date.
type VM struct {
	Name         string      `json:"vm_name"`
	Cluster      string      `json:"cluster_name"`
	GuestOS      string      `json:"guest_os"`
	Host         string      `json:"vm_host"`
	Status       PowerStatus `json:"status"`
	MemoryGB     int         `json:"mem_size_gb"`
	CPUCount     int         `json:"num_of_cpus"`
	StorageGB    float64     `json:"storage_size_gb"`
	UsedGB       float64     `json:"used_size_gb"`
	CreationDate *time.Time  `json:"creation_date,omitempty"`
}

// DerivedVM is a VM plus the computed classification fields. Size category
// and complexity are pure functions of memory, vCPU count and guest OS.
type DerivedVM struct {
	VM
	OSFamily          string  `json:"os_family"`
	OSConsolidated    string  `json:"os_consolidated"`
	SizeCategory      string  `json:"size_category"`
	Complexity        string  `json:"complexity"`
	StorageEfficiency float64 `json:"storage_efficiency"`
}
