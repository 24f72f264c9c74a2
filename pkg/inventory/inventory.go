// Package inventory builds the LPAR → volume group → disk hierarchy from
// inventory records and folds disk counts and capacities up through it.
//
// Aggregates are kept in their own fields next to the disk map, so a disk or
// group may be named anything, including "n_disks" or "t_size".
package inventory

import (
	"maps"
	"slices"
)

// VolumeGroup holds the disks of one volume group and their totals.
type VolumeGroup struct {
	Name      string           `json:"-"`
	Disks     map[string]int64 `json:"disks"`
	DiskCount int              `json:"n_disks"`
	TotalSize int64            `json:"t_size"`
}

// Partition holds the volume groups of one LPAR and their totals.
type Partition struct {
	Name      string                  `json:"-"`
	Groups    map[string]*VolumeGroup `json:"groups"`
	VGCount   int                     `json:"n_vgs"`
	DiskCount int                     `json:"n_disks"`
	TotalSize int64                   `json:"t_size"`
}

// Inventory is the whole hierarchy plus the totals across all partitions.
// Totals are zero until Summarize runs.
type Inventory struct {
	Partitions map[string]*Partition `json:"partitions"`
	LparCount  int                   `json:"n_lpars"`
	VGCount    int                   `json:"n_vgs"`
	DiskCount  int                   `json:"n_disks"`
	TotalSize  int64                 `json:"t_size"`
}

// New returns an empty inventory.
func New() *Inventory {
	return &Inventory{Partitions: make(map[string]*Partition)}
}

// PartitionNames returns the partition names in sorted order.
func (inv *Inventory) PartitionNames() []string {
	return slices.Sorted(maps.Keys(inv.Partitions))
}

// GroupNames returns the volume group names in sorted order.
func (p *Partition) GroupNames() []string {
	return slices.Sorted(maps.Keys(p.Groups))
}

// DiskNames returns the disk names in sorted order.
func (vg *VolumeGroup) DiskNames() []string {
	return slices.Sorted(maps.Keys(vg.Disks))
}

// Each calls fn for every disk, walking partitions, groups and disks in
// sorted order.
func (inv *Inventory) Each(fn func(p *Partition, vg *VolumeGroup, disk string, size int64)) {
	for _, pn := range inv.PartitionNames() {
		p := inv.Partitions[pn]
		for _, gn := range p.GroupNames() {
			vg := p.Groups[gn]
			for _, d := range vg.DiskNames() {
				fn(p, vg, d, vg.Disks[d])
			}
		}
	}
}
