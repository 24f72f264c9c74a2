package inventory

// Summarize fills in the counts and totals at every level of inv, bottom-up,
// and returns inv. Every aggregate is recomputed from the disk sizes, so
// summarizing an already summarized inventory leaves it unchanged.
func Summarize(inv *Inventory) *Inventory {
	if inv == nil {
		return nil
	}

	var vgs, disks int
	var total int64

	for _, p := range inv.Partitions {
		var pDisks int
		var pSize int64

		for _, vg := range p.Groups {
			var vgSize int64
			for _, size := range vg.Disks {
				vgSize += size
			}
			vg.TotalSize = vgSize
			vg.DiskCount = len(vg.Disks)

			pSize += vg.TotalSize
			pDisks += vg.DiskCount
		}

		p.VGCount = len(p.Groups)
		p.DiskCount = pDisks
		p.TotalSize = pSize

		vgs += p.VGCount
		disks += p.DiskCount
		total += p.TotalSize
	}

	inv.LparCount = len(inv.Partitions)
	inv.VGCount = vgs
	inv.DiskCount = disks
	inv.TotalSize = total

	return inv
}
