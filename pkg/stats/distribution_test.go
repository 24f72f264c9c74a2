package stats

import (
	"math"
	"testing"

	"lparsum/pkg/inventory"
)

func TestDistribution(t *testing.T) {
	d, err := NewDistribution("test", 0.01)
	if err != nil {
		t.Fatalf("NewDistribution failed: %v", err)
	}
	for i := int64(1); i <= 100; i++ {
		if err := d.Add(i); err != nil {
			t.Fatalf("Add(%d) failed: %v", i, err)
		}
	}

	if d.Count != 100 || d.Min != 1 || d.Max != 100 || d.Sum != 5050 {
		t.Errorf("got count=%d min=%d max=%d sum=%d, want 100 1 100 5050", d.Count, d.Min, d.Max, d.Sum)
	}
	if d.Mean() != 50.5 {
		t.Errorf("Mean() = %v, want 50.5", d.Mean())
	}

	tests := []struct {
		q    float64
		want float64
	}{
		{0.50, 50},
		{0.90, 90},
		{0.99, 99},
	}
	for _, tt := range tests {
		got := d.Quantile(tt.q)
		if math.Abs(got-tt.want)/tt.want > 0.04 {
			t.Errorf("Quantile(%v) = %v, want about %v", tt.q, got, tt.want)
		}
	}
}

func TestDistributionEmpty(t *testing.T) {
	d, err := NewDistribution("empty", 0.01)
	if err != nil {
		t.Fatal(err)
	}
	if d.Mean() != 0 || d.Quantile(0.5) != 0 {
		t.Error("empty distribution should report zeros")
	}
}

func TestDistributionMerge(t *testing.T) {
	a, _ := NewDistribution("a", 0.01)
	b, _ := NewDistribution("b", 0.01)
	empty, _ := NewDistribution("empty", 0.01)
	for _, v := range []int64{10, 20} {
		a.Add(v)
	}
	for _, v := range []int64{5, 40, 30} {
		b.Add(v)
	}

	if err := a.Merge(b); err != nil {
		t.Fatalf("Merge failed: %v", err)
	}
	if err := a.Merge(empty); err != nil {
		t.Fatalf("Merge of empty failed: %v", err)
	}
	if a.Count != 5 || a.Min != 5 || a.Max != 40 || a.Sum != 105 {
		t.Errorf("got count=%d min=%d max=%d sum=%d, want 5 5 40 105", a.Count, a.Min, a.Max, a.Sum)
	}

	if err := empty.Merge(a); err != nil {
		t.Fatal(err)
	}
	if empty.Min != 5 || empty.Max != 40 {
		t.Errorf("merging into empty: min=%d max=%d, want 5 40", empty.Min, empty.Max)
	}
}

func TestCollect(t *testing.T) {
	inv := inventory.Summarize(inventory.Build([]inventory.Record{
		{Partition: "lpar02", Disk: "hdisk0", Size: 70006, VolumeGroup: "rootvg"},
		{Partition: "lpar01", Disk: "hdisk0", Size: 70006, VolumeGroup: "rootvg"},
		{Partition: "lpar01", Disk: "hdisk1", Size: 0, VolumeGroup: "datavg"},
		{Partition: "lpar01", Disk: "hdisk2", Size: 140012, VolumeGroup: "datavg"},
	}))

	r, err := Collect(inv, 0.01)
	if err != nil {
		t.Fatalf("Collect failed: %v", err)
	}
	if len(r.Partitions) != 2 || r.Partitions[0].Name != "lpar01" || r.Partitions[1].Name != "lpar02" {
		t.Fatalf("unexpected partitions: %+v", r.Partitions)
	}
	if r.Overall.Count != inv.DiskCount || r.Overall.Sum != inv.TotalSize {
		t.Errorf("overall count=%d sum=%d, want %d %d", r.Overall.Count, r.Overall.Sum, inv.DiskCount, inv.TotalSize)
	}
	if r.Overall.Min != 0 || r.Overall.Max != 140012 {
		t.Errorf("overall min=%d max=%d, want 0 140012", r.Overall.Min, r.Overall.Max)
	}

	table := r.Table()
	if len(table.Rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(table.Rows))
	}
	if table.Footer[0] != "all" || table.Footer[1] != "4" || table.Footer[6] != "140,012" {
		t.Errorf("unexpected footer: %v", table.Footer)
	}
}
