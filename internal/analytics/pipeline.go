package analytics

import (
	"fmt"
	"sort"
	"time"

	"github.com/thoas/go-funk"
	"go.uber.org/zap"

	"github.com/kubev2v/migration-dashboard/internal/source"
	"github.com/kubev2v/migration-dashboard/pkg/inventory"
)

const generatedAtFormat = "2006-01-02 15:04:05"

// Pipeline orchestrates normalize -> derive -> aggregate for one source
// platform. Construction fails on an unknown platform identifier; a run
// either completes fully or returns an error with no partial bundle.
type Pipeline struct {
	normalizer source.Normalizer
}

func NewPipeline(platform string) (*Pipeline, error) {
	normalizer, err := source.NewNormalizer(platform)
	if err != nil {
		return nil, fmt.Errorf("pipeline construction failed: %w", err)
	}
	return &Pipeline{normalizer: normalizer}, nil
}

// Source returns the normalizer the pipeline was constructed with.
func (p *Pipeline) Source() source.Normalizer {
	return p.normalizer
}

// Run processes one raw table into the analytics bundle.
func (p *Pipeline) Run(table *source.RawTable) (*Bundle, error) {
	log := zap.S().Named("pipeline")

	vms, hasDateData, err := p.normalizer.Normalize(table)
	if err != nil {
		return nil, fmt.Errorf("normalization failed: %w", err)
	}
	log.Infof("normalized %d VMs from %s export", len(vms), p.normalizer.Name())

	derived := Derive(vms)

	bundle := &Bundle{
		Stats:             ComputeStatistics(derived, hasDateData),
		Distributions:     ComputeDistributions(derived),
		SizeDetails:       ComputeSizeDetails(derived),
		MigrationWaves:    ComputeMigrationWaves(derived),
		GrowthTrends:      ComputeGrowthTrends(derived, hasDateData),
		ComplexityByOS:    ComputeComplexityByOS(derived),
		VMList:            buildVMList(derived),
		UniqueClusters:    sortedUnique(derived, func(vm inventory.DerivedVM) string { return vm.Cluster }),
		UniqueHosts:       sortedUnique(derived, func(vm inventory.DerivedVM) string { return vm.Host }),
		UniqueOS:          sortedUnique(derived, func(vm inventory.DerivedVM) string { return vm.OSConsolidated }),
		GeneratedAt:       time.Now().Format(generatedAtFormat),
		SourcePlatform:    p.normalizer.Name(),
		SourceDisplayName: p.normalizer.DisplayName(),
		HasDateData:       hasDateData,
	}

	log.Infof("bundle ready: %d VMs, %d clusters, %d hosts, %d waves",
		bundle.Stats.TotalVMs, bundle.Stats.Clusters, bundle.Stats.Hosts, len(bundle.MigrationWaves))
	return bundle, nil
}

func sortedUnique(vms []inventory.DerivedVM, key func(inventory.DerivedVM) string) []string {
	values := make([]string, 0, len(vms))
	for _, vm := range vms {
		values = append(values, key(vm))
	}
	unique := funk.UniqString(values)
	sort.Strings(unique)
	return unique
}
