package source_test

import (
	"fmt"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/kubev2v/migration-dashboard/internal/source"
	"github.com/kubev2v/migration-dashboard/pkg/inventory"
)

var _ = Describe("RHV normalizer", func() {
	newRHV := func() source.Normalizer {
		n, err := source.NewNormalizer(source.PlatformRHV)
		Expect(err).ToNot(HaveOccurred())
		return n
	}

	It("resolves header variations through the alias table", func() {
		table := &source.RawTable{
			Header: []string{"Name", "Cluster", "Operating_System", "Hypervisor", "State", "RAM", "CPU", "Provisioned_Storage", "Used_Storage", "Created"},
			Rows: [][]string{
				{"vm01", "prod", "RHEL 8.6", "kvm1", "On", "16", "8", "120.5", "60.25", "2023-04-01"},
			},
		}

		vms, hasDates, err := newRHV().Normalize(table)
		Expect(err).ToNot(HaveOccurred())
		Expect(hasDates).To(BeTrue())
		Expect(vms).To(HaveLen(1))

		vm := vms[0]
		Expect(vm.Name).To(Equal("vm01"))
		Expect(vm.Cluster).To(Equal("prod"))
		Expect(vm.GuestOS).To(Equal("RHEL 8.6"))
		Expect(vm.Host).To(Equal("kvm1"))
		Expect(vm.Status).To(Equal(inventory.PowerOn))
		Expect(vm.MemoryGB).To(Equal(16))
		Expect(vm.CPUCount).To(Equal(8))
		Expect(vm.StorageGB).To(Equal(120.5))
		Expect(vm.UsedGB).To(Equal(60.25))
		Expect(vm.CreationDate).ToNot(BeNil())
		Expect(vm.CreationDate.Format("2006-01-02")).To(Equal("2023-04-01"))
	})

	It("fills defaults for columns absent from the sheet", func() {
		table := &source.RawTable{
			Header: []string{"vm_name"},
			Rows:   [][]string{{"lonely"}},
		}

		vms, hasDates, err := newRHV().Normalize(table)
		Expect(err).ToNot(HaveOccurred())
		Expect(hasDates).To(BeTrue())
		Expect(vms).To(HaveLen(1))

		vm := vms[0]
		Expect(vm.Cluster).To(Equal("Unknown"))
		Expect(vm.GuestOS).To(Equal("Unknown"))
		Expect(vm.Host).To(Equal("Unknown"))
		Expect(vm.Status).To(Equal(inventory.PowerUnknown))
		Expect(vm.MemoryGB).To(Equal(0))
		Expect(vm.CPUCount).To(Equal(0))
		Expect(vm.StorageGB).To(Equal(0.0))
		Expect(vm.UsedGB).To(Equal(0.0))
		Expect(vm.CreationDate).To(BeNil())
	})

	It("drops rows without a VM name", func() {
		table := &source.RawTable{
			Header: []string{"vm_name", "memory"},
			Rows: [][]string{
				{"vm01", "8"},
				{"", "4"},
				{},
				{"vm02", "2"},
			},
		}

		vms, _, err := newRHV().Normalize(table)
		Expect(err).ToNot(HaveOccurred())
		Expect(vms).To(HaveLen(2))
	})

	It("coerces unparseable numerics and dates to defaults", func() {
		table := &source.RawTable{
			Header: []string{"vm_name", "memory", "vcpus", "creation_date"},
			Rows: [][]string{
				{"vm01", "lots", "many", "sometime in spring"},
			},
		}

		vms, hasDates, err := newRHV().Normalize(table)
		Expect(err).ToNot(HaveOccurred())
		Expect(hasDates).To(BeTrue())
		Expect(vms).To(HaveLen(1))
		Expect(vms[0].MemoryGB).To(Equal(0))
		Expect(vms[0].CPUCount).To(Equal(0))
		Expect(vms[0].CreationDate).To(BeNil())
	})

	It("drops subtotal rows through the memory outlier guard", func() {
		rows := make([][]string, 0, 101)
		for i := 0; i < 100; i++ {
			rows = append(rows, []string{fmt.Sprintf("vm%03d", i), "8"})
		}
		rows = append(rows, []string{"TOTAL", "10000"})

		table := &source.RawTable{
			Header: []string{"vm_name", "memory"},
			Rows:   rows,
		}

		vms, _, err := newRHV().Normalize(table)
		Expect(err).ToNot(HaveOccurred())
		Expect(vms).To(HaveLen(100))
		for _, vm := range vms {
			Expect(vm.MemoryGB).To(Equal(8))
		}
	})

	It("keeps all rows when only one row exists", func() {
		table := &source.RawTable{
			Header: []string{"vm_name", "memory"},
			Rows:   [][]string{{"huge", "100000"}},
		}

		vms, _, err := newRHV().Normalize(table)
		Expect(err).ToNot(HaveOccurred())
		Expect(vms).To(HaveLen(1))
	})
})
