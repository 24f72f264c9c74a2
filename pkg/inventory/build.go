package inventory

// Build creates an inventory from records in order. A disk seen twice for
// the same partition and volume group keeps the size of the later record.
// The records slice is not modified.
func Build(records []Record) *Inventory {
	inv := New()
	for _, rec := range records {
		inv.Add(rec)
	}
	return inv
}

// Add places one record into the hierarchy, creating its partition and
// volume group on first sight.
func (inv *Inventory) Add(rec Record) {
	p, ok := inv.Partitions[rec.Partition]
	if !ok {
		p = &Partition{
			Name:   rec.Partition,
			Groups: make(map[string]*VolumeGroup),
		}
		inv.Partitions[rec.Partition] = p
	}

	vg, ok := p.Groups[rec.VolumeGroup]
	if !ok {
		vg = &VolumeGroup{
			Name:  rec.VolumeGroup,
			Disks: make(map[string]int64),
		}
		p.Groups[rec.VolumeGroup] = vg
	}

	vg.Disks[rec.Disk] = rec.Size
}
