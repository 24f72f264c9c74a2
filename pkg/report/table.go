package report

import (
	"lparsum/pkg/common"
	"lparsum/pkg/inventory"

	"github.com/dustin/go-humanize"
)

// Table lays inv out with one row per partition, or one row per volume
// group when byVG is set. The inventory totals form the footer.
func Table(inv *inventory.Inventory, byVG bool, unit string) *common.Table {
	capHeader := "Capacity (" + unit + ")"
	t := &common.Table{}

	if byVG {
		t.Header = []string{"LPAR", "VG", "Disks", capHeader}
		for _, pn := range inv.PartitionNames() {
			p := inv.Partitions[pn]
			for _, gn := range p.GroupNames() {
				vg := p.Groups[gn]
				t.Rows = append(t.Rows, []string{
					p.Name, vg.Name, humanize.Comma(int64(vg.DiskCount)), humanize.Comma(vg.TotalSize),
				})
			}
		}
		t.Footer = []string{
			"total", humanize.Comma(int64(inv.VGCount)), humanize.Comma(int64(inv.DiskCount)), humanize.Comma(inv.TotalSize),
		}
		return t
	}

	t.Header = []string{"LPAR", "VGs", "Disks", capHeader}
	for _, pn := range inv.PartitionNames() {
		p := inv.Partitions[pn]
		t.Rows = append(t.Rows, []string{
			p.Name, humanize.Comma(int64(p.VGCount)), humanize.Comma(int64(p.DiskCount)), humanize.Comma(p.TotalSize),
		})
	}
	t.Footer = []string{
		"total", humanize.Comma(int64(inv.VGCount)), humanize.Comma(int64(inv.DiskCount)), humanize.Comma(inv.TotalSize),
	}
	return t
}
