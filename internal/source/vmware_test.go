package source_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/kubev2v/migration-dashboard/internal/source"
	"github.com/kubev2v/migration-dashboard/pkg/inventory"
)

type dateCapability interface {
	HasDateData() bool
}

var _ = Describe("VMware normalizer", func() {
	newVMware := func() source.Normalizer {
		n, err := source.NewNormalizer(source.PlatformVMware)
		Expect(err).ToNot(HaveOccurred())
		return n
	}

	vInfoHeader := []string{"VM", "Powerstate", "Template", "CPUs", "Memory", "Provisioned MB", "In Use MB", "OS according to the VMware Tools", "OS according to the configuration file", "Host", "Cluster", "Datacenter"}

	It("converts MB to GB and maps the power state enum", func() {
		table := &source.RawTable{
			Header: vInfoHeader,
			Rows: [][]string{
				{"web01", "poweredOn", "False", "2", "1000", "2048", "1024", "Red Hat Enterprise Linux 8 (64-bit)", "", "esx1", "prod", "dc1"},
				{"web02", "poweredOff", "False", "2", "4096", "10240", "5120", "Red Hat Enterprise Linux 9 (64-bit)", "", "esx1", "prod", "dc1"},
				{"web03", "suspended", "False", "2", "2048", "1024", "512", "Red Hat Enterprise Linux 9 (64-bit)", "", "esx1", "prod", "dc1"},
			},
		}

		vms, hasDates, err := newVMware().Normalize(table)
		Expect(err).ToNot(HaveOccurred())
		Expect(hasDates).To(BeFalse())
		Expect(vms).To(HaveLen(3))

		Expect(vms[0].MemoryGB).To(Equal(1))
		Expect(vms[0].StorageGB).To(Equal(2.0))
		Expect(vms[0].UsedGB).To(Equal(1.0))
		Expect(vms[0].Status).To(Equal(inventory.PowerOn))

		Expect(vms[1].MemoryGB).To(Equal(4))
		Expect(vms[1].Status).To(Equal(inventory.PowerOff))

		Expect(vms[2].Status).To(Equal(inventory.PowerUnknown))
	})

	It("excludes template rows before normalization", func() {
		table := &source.RawTable{
			Header: vInfoHeader,
			Rows: [][]string{
				{"vm01", "poweredOn", "False", "2", "2048", "1024", "512", "RHEL 8", "", "esx1", "prod", "dc1"},
				{"rhel8-template", "poweredOff", "True", "2", "2048", "1024", "512", "RHEL 8", "", "esx1", "prod", "dc1"},
			},
		}

		vms, _, err := newVMware().Normalize(table)
		Expect(err).ToNot(HaveOccurred())
		Expect(vms).To(HaveLen(1))
		Expect(vms[0].Name).To(Equal("vm01"))
	})

	It("falls back to the configuration-file OS column per row", func() {
		table := &source.RawTable{
			Header: vInfoHeader,
			Rows: [][]string{
				{"vm01", "poweredOn", "False", "2", "2048", "1024", "512", "", "Microsoft Windows Server 2019 (64-bit)", "esx1", "prod", "dc1"},
			},
		}

		vms, _, err := newVMware().Normalize(table)
		Expect(err).ToNot(HaveOccurred())
		Expect(vms[0].GuestOS).To(Equal("Microsoft Windows Server 2019 (64-bit)"))
	})

	It("uses the datacenter when the cluster column is wholly empty", func() {
		table := &source.RawTable{
			Header: vInfoHeader,
			Rows: [][]string{
				{"vm01", "poweredOn", "False", "2", "2048", "1024", "512", "RHEL 8", "", "esx1", "", "dc1"},
				{"vm02", "poweredOn", "False", "2", "2048", "1024", "512", "RHEL 8", "", "esx1", "", "dc2"},
			},
		}

		vms, _, err := newVMware().Normalize(table)
		Expect(err).ToNot(HaveOccurred())
		Expect(vms[0].Cluster).To(Equal("dc1"))
		Expect(vms[1].Cluster).To(Equal("dc2"))
	})

	It("keeps the cluster column when any row has a value", func() {
		table := &source.RawTable{
			Header: vInfoHeader,
			Rows: [][]string{
				{"vm01", "poweredOn", "False", "2", "2048", "1024", "512", "RHEL 8", "", "esx1", "prod", "dc1"},
				{"vm02", "poweredOn", "False", "2", "2048", "1024", "512", "RHEL 8", "", "esx1", "", "dc1"},
			},
		}

		vms, _, err := newVMware().Normalize(table)
		Expect(err).ToNot(HaveOccurred())
		Expect(vms[0].Cluster).To(Equal("prod"))
		Expect(vms[1].Cluster).To(Equal("Unknown"))
	})

	Describe("creation-date probe", func() {
		withDateHeader := func(dateColumn string) []string {
			return append(append([]string{}, vInfoHeader...), dateColumn)
		}

		It("finds a known alias column and parses dates", func() {
			table := &source.RawTable{
				Header: withDateHeader("Creation date"),
				Rows: [][]string{
					{"vm01", "poweredOn", "False", "2", "2048", "1024", "512", "RHEL 8", "", "esx1", "prod", "dc1", "2023/09/27 10:00:00"},
					{"vm02", "poweredOn", "False", "2", "2048", "1024", "512", "RHEL 8", "", "esx1", "prod", "dc1", ""},
				},
			}

			normalizer := newVMware()
			vms, hasDates, err := normalizer.Normalize(table)
			Expect(err).ToNot(HaveOccurred())
			Expect(hasDates).To(BeTrue())
			Expect(vms[0].CreationDate).ToNot(BeNil())
			Expect(vms[0].CreationDate.Format("2006-01-02")).To(Equal("2023-09-27"))
			Expect(vms[1].CreationDate).To(BeNil())

			capability, ok := normalizer.(dateCapability)
			Expect(ok).To(BeTrue())
			Expect(capability.HasDateData()).To(BeTrue())
		})

		It("matches columns containing both 'creat' and 'date'", func() {
			table := &source.RawTable{
				Header: withDateHeader("VM Creation Date (UTC)"),
				Rows: [][]string{
					{"vm01", "poweredOn", "False", "2", "2048", "1024", "512", "RHEL 8", "", "esx1", "prod", "dc1", "2022-06-15"},
				},
			}

			_, hasDates, err := newVMware().Normalize(table)
			Expect(err).ToNot(HaveOccurred())
			Expect(hasDates).To(BeTrue())
		})

		It("falls back to the annotation column as a last resort", func() {
			table := &source.RawTable{
				Header: withDateHeader("Annotation"),
				Rows: [][]string{
					{"vm01", "poweredOn", "False", "2", "2048", "1024", "512", "RHEL 8", "", "esx1", "prod", "dc1", "2021-03-02"},
				},
			}

			_, hasDates, err := newVMware().Normalize(table)
			Expect(err).ToNot(HaveOccurred())
			Expect(hasDates).To(BeTrue())
		})

		It("ignores date-like values under a blank header when no column was discovered", func() {
			table := &source.RawTable{
				Header: withDateHeader(""),
				Rows: [][]string{
					{"vm01", "poweredOn", "False", "2", "2048", "1024", "512", "RHEL 8", "", "esx1", "prod", "dc1", "2023-05-01"},
				},
			}

			vms, hasDates, err := newVMware().Normalize(table)
			Expect(err).ToNot(HaveOccurred())
			Expect(hasDates).To(BeFalse())
			Expect(vms[0].CreationDate).To(BeNil())
		})

		It("reports no temporal data when the discovered column never parses", func() {
			table := &source.RawTable{
				Header: withDateHeader("Annotation"),
				Rows: [][]string{
					{"vm01", "poweredOn", "False", "2", "2048", "1024", "512", "RHEL 8", "", "esx1", "prod", "dc1", "owned by web team"},
				},
			}

			normalizer := newVMware()
			_, hasDates, err := normalizer.Normalize(table)
			Expect(err).ToNot(HaveOccurred())
			Expect(hasDates).To(BeFalse())

			capability, ok := normalizer.(dateCapability)
			Expect(ok).To(BeTrue())
			Expect(capability.HasDateData()).To(BeFalse())
		})

		It("does not re-probe on subsequent calls", func() {
			noDates := &source.RawTable{
				Header: vInfoHeader,
				Rows: [][]string{
					{"vm01", "poweredOn", "False", "2", "2048", "1024", "512", "RHEL 8", "", "esx1", "prod", "dc1"},
				},
			}
			withDates := &source.RawTable{
				Header: withDateHeader("Creation date"),
				Rows: [][]string{
					{"vm02", "poweredOn", "False", "2", "2048", "1024", "512", "RHEL 8", "", "esx1", "prod", "dc1", "2023-01-01"},
				},
			}

			normalizer := newVMware()
			_, hasDates, err := normalizer.Normalize(noDates)
			Expect(err).ToNot(HaveOccurred())
			Expect(hasDates).To(BeFalse())

			// The capability was fixed on the first call.
			_, hasDates, err = normalizer.Normalize(withDates)
			Expect(err).ToNot(HaveOccurred())
			Expect(hasDates).To(BeFalse())
		})
	})
})
