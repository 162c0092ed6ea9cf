package source_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/kubev2v/migration-dashboard/internal/source"
)

var _ = Describe("ColumnResolver", func() {
	aliases := map[string][]string{
		"mem_size_GB": {"mem_size_GB", "memory", "ram", "mem_gb"},
		"vm_name":     {"vm_name", "name", "vm"},
	}

	It("matches case-insensitively and trims whitespace", func() {
		resolver := source.NewColumnResolver(aliases)
		idx, found := resolver.Resolve([]string{"  VM_NAME ", "Memory"}, "vm_name")
		Expect(found).To(BeTrue())
		Expect(idx).To(Equal(0))
	})

	It("breaks ties by alias order, not header order", func() {
		resolver := source.NewColumnResolver(aliases)
		// "ram" appears first in the sheet but "memory" comes first in the
		// alias list.
		idx, found := resolver.Resolve([]string{"ram", "memory"}, "mem_size_GB")
		Expect(found).To(BeTrue())
		Expect(idx).To(Equal(1))
	})

	It("reports a miss for unknown columns", func() {
		resolver := source.NewColumnResolver(aliases)
		_, found := resolver.Resolve([]string{"cluster", "host"}, "mem_size_GB")
		Expect(found).To(BeFalse())
	})

	It("falls back to the field name itself for untabled fields", func() {
		resolver := source.NewColumnResolver(aliases)
		idx, found := resolver.Resolve([]string{"cluster"}, "cluster")
		Expect(found).To(BeTrue())
		Expect(idx).To(Equal(0))
	})
})

var _ = Describe("NewNormalizer", func() {
	It("returns the registered normalizers", func() {
		for _, platform := range source.Platforms() {
			normalizer, err := source.NewNormalizer(platform)
			Expect(err).ToNot(HaveOccurred())
			Expect(normalizer.Name()).To(Equal(platform))
			Expect(normalizer.DisplayName()).ToNot(BeEmpty())
		}
	})

	It("rejects unknown platform identifiers", func() {
		_, err := source.NewNormalizer("xen")
		Expect(err).To(MatchError(ContainSubstring("unknown source platform")))
	})
})
