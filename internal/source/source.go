package source

import (
	"fmt"

	"github.com/kubev2v/migration-dashboard/pkg/inventory"
)

// RawTable is one sheet of a source export: a header row plus data rows.
// Values are untyped cell strings; column names are source specific.
type RawTable struct {
	Header []string
	Rows   [][]string
}

// Normalizer loads a raw table and normalizes it to the canonical VM schema.
// The boolean reports whether the source provided usable creation dates.
type Normalizer interface {
	// Name returns the machine identifier of the platform (e.g. "rhv").
	Name() string
	// DisplayName returns the human readable platform name.
	DisplayName() string
	// Normalize converts a raw table into normalized VM records and reports
	// temporal-data availability. Per-row data issues degrade to defaults
	// and never produce an error.
	Normalize(table *RawTable) ([]inventory.VM, bool, error)
}

const (
	PlatformRHV    = "rhv"
	PlatformVMware = "vmware"
)

// NewNormalizer returns the normalizer for the given platform identifier.
// An unknown identifier is a configuration error.
func NewNormalizer(platform string) (Normalizer, error) {
	switch platform {
	case PlatformRHV:
		return &rhvNormalizer{}, nil
	case PlatformVMware:
		return &vmwareNormalizer{}, nil
	default:
		return nil, fmt.Errorf("unknown source platform %q (supported: %v)", platform, Platforms())
	}
}

// Platforms lists the supported platform identifiers.
func Platforms() []string {
	return []string{PlatformRHV, PlatformVMware}
}
