// Package report renders a summarized inventory.
package report

import (
	"fmt"
	"io"
	"strings"

	"lparsum/pkg/inventory"
)

// Banner is the rule printed above the summary block.
var Banner = strings.Repeat("-", 20)

// Summary writes the fixed four-line summary of inv:
//
//	--------------------
//	Number of LPARS: 2
//	Total number of VGs: 3
//	Total number of disks: 4
//	Total capacity: 280024 MB
//
// The block is preceded and followed by an empty line.
func Summary(w io.Writer, inv *inventory.Inventory, unit string) error {
	_, err := fmt.Fprintf(w,
		"\n%s\n"+
			"Number of LPARS: %d\n"+
			"Total number of VGs: %d\n"+
			"Total number of disks: %d\n"+
			"Total capacity: %d %s\n\n",
		Banner, inv.LparCount, inv.VGCount, inv.DiskCount, inv.TotalSize, unit)
	return err
}
