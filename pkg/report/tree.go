package report

import (
	"fmt"
	"io"
	"strings"

	"lparsum/pkg/display"
	"lparsum/pkg/inventory"

	"github.com/dustin/go-humanize"
)

// Tree writes every partition, volume group and disk as a tree with the
// totals of each level next to its name.
func Tree(w io.Writer, inv *inventory.Inventory, t *display.Theme, unit string) error {
	var sb strings.Builder

	for _, pn := range inv.PartitionNames() {
		p := inv.Partitions[pn]
		fmt.Fprintf(&sb, "%s%s  %s\n",
			t.Icon(t.IconLpar),
			t.Styled(t.Bold, p.Name),
			t.Styled(t.Dim, fmt.Sprintf("%s, %s, %s",
				count(p.VGCount, "VG"), count(p.DiskCount, "disk"), capacity(p.TotalSize, unit))))

		groups := p.GroupNames()
		for i, gn := range groups {
			vg := p.Groups[gn]
			last := i == len(groups)-1
			fmt.Fprintf(&sb, "%s %s%s  %s\n",
				branch(t, last),
				t.Icon(t.IconVG),
				t.Styled(t.Cyan, vg.Name),
				t.Styled(t.Dim, fmt.Sprintf("%s, %s", count(vg.DiskCount, "disk"), capacity(vg.TotalSize, unit))))

			indent := t.BoxItem + " "
			if last {
				indent = "    "
			}
			disks := vg.DiskNames()
			for j, d := range disks {
				fmt.Fprintf(&sb, "%s%s %s  %s\n",
					indent,
					branch(t, j == len(disks)-1),
					d,
					t.Styled(t.Green, capacity(vg.Disks[d], unit)))
			}
		}
		sb.WriteString("\n")
	}

	fmt.Fprintf(&sb, "%s%s\n", t.Icon(t.IconTotal), t.Styled(t.Bold, fmt.Sprintf("%s, %s, %s, %s",
		count(inv.LparCount, "LPAR"), count(inv.VGCount, "VG"), count(inv.DiskCount, "disk"), capacity(inv.TotalSize, unit))))

	_, err := io.WriteString(w, sb.String())
	return err
}

func branch(t *display.Theme, last bool) string {
	if last {
		return t.BoxLast
	}
	return t.BoxTree
}

func count(n int, noun string) string {
	if n == 1 {
		return "1 " + noun
	}
	return humanize.Comma(int64(n)) + " " + noun + "s"
}

func capacity(size int64, unit string) string {
	return humanize.Comma(size) + " " + unit
}
