// Package stats describes how disk sizes are distributed across an
// inventory: exact count, min, max and mean, and sketched percentiles.
package stats

import (
	"fmt"
	"math"

	"lparsum/pkg/common"
	"lparsum/pkg/inventory"

	"github.com/DataDog/sketches-go/ddsketch"
	"github.com/dustin/go-humanize"
)

// Distribution holds running statistics over a set of disk sizes.
type Distribution struct {
	Name  string
	Count int
	Min   int64
	Max   int64
	Sum   int64

	sketch *ddsketch.DDSketch
}

// NewDistribution creates an empty distribution whose percentiles are within
// the given relative accuracy.
func NewDistribution(name string, accuracy float64) (*Distribution, error) {
	sketch, err := ddsketch.NewDefaultDDSketch(accuracy)
	if err != nil {
		return nil, fmt.Errorf("create sketch: %w", err)
	}
	return &Distribution{Name: name, sketch: sketch}, nil
}

// Add records one disk size.
func (d *Distribution) Add(size int64) error {
	if err := d.sketch.Add(float64(size)); err != nil {
		return fmt.Errorf("add %d to %s: %w", size, d.Name, err)
	}
	if d.Count == 0 || size < d.Min {
		d.Min = size
	}
	if d.Count == 0 || size > d.Max {
		d.Max = size
	}
	d.Count++
	d.Sum += size
	return nil
}

// Merge folds other into d.
func (d *Distribution) Merge(other *Distribution) error {
	if other.Count == 0 {
		return nil
	}
	if err := d.sketch.MergeWith(other.sketch); err != nil {
		return fmt.Errorf("merge %s into %s: %w", other.Name, d.Name, err)
	}
	if d.Count == 0 || other.Min < d.Min {
		d.Min = other.Min
	}
	if d.Count == 0 || other.Max > d.Max {
		d.Max = other.Max
	}
	d.Count += other.Count
	d.Sum += other.Sum
	return nil
}

// Mean returns the average disk size, or 0 when empty.
func (d *Distribution) Mean() float64 {
	if d.Count == 0 {
		return 0
	}
	return float64(d.Sum) / float64(d.Count)
}

// Quantile returns the approximate size at quantile q in [0, 1], or 0 when
// empty.
func (d *Distribution) Quantile(q float64) float64 {
	if d.Count == 0 {
		return 0
	}
	v, err := d.sketch.GetValueAtQuantile(q)
	if err != nil {
		return 0
	}
	return v
}

// Report is the distribution for the whole inventory and for each partition.
type Report struct {
	Overall    *Distribution
	Partitions []*Distribution
}

// Collect builds a Report from every disk in inv.
func Collect(inv *inventory.Inventory, accuracy float64) (*Report, error) {
	overall, err := NewDistribution("all", accuracy)
	if err != nil {
		return nil, err
	}
	r := &Report{Overall: overall}

	for _, name := range inv.PartitionNames() {
		d, err := NewDistribution(name, accuracy)
		if err != nil {
			return nil, err
		}
		p := inv.Partitions[name]
		for _, vg := range p.Groups {
			for _, size := range vg.Disks {
				if err := d.Add(size); err != nil {
					return nil, err
				}
			}
		}
		if err := r.Overall.Merge(d); err != nil {
			return nil, err
		}
		r.Partitions = append(r.Partitions, d)
	}
	return r, nil
}

// Table lays the report out with one row per partition and the overall
// distribution as footer.
func (r *Report) Table() *common.Table {
	t := &common.Table{
		Header: []string{"LPAR", "Disks", "Min", "P50", "P90", "P99", "Max", "Mean"},
	}
	for _, d := range r.Partitions {
		t.Rows = append(t.Rows, row(d))
	}
	t.Footer = row(r.Overall)
	return t
}

func row(d *Distribution) []string {
	return []string{
		d.Name,
		humanize.Comma(int64(d.Count)),
		humanize.Comma(d.Min),
		formatSize(d.Quantile(0.50)),
		formatSize(d.Quantile(0.90)),
		formatSize(d.Quantile(0.99)),
		humanize.Comma(d.Max),
		formatSize(d.Mean()),
	}
}

func formatSize(v float64) string {
	return humanize.Comma(int64(math.Round(v)))
}
