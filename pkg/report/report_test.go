package report

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"lparsum/pkg/display"
	"lparsum/pkg/filelock"
	"lparsum/pkg/inventory"

	"github.com/parquet-go/parquet-go"
)

func goldenInventory() *inventory.Inventory {
	return inventory.Summarize(inventory.Build([]inventory.Record{
		{Partition: "lpar01", Disk: "hdisk0", Size: 70006, VolumeGroup: "rootvg"},
		{Partition: "lpar01", Disk: "hdisk1", Size: 70006, VolumeGroup: "datavg"},
		{Partition: "lpar01", Disk: "hdisk2", Size: 70006, VolumeGroup: "datavg"},
		{Partition: "lpar02", Disk: "hdisk0", Size: 70006, VolumeGroup: "rootvg"},
	}))
}

func TestSummary(t *testing.T) {
	var buf bytes.Buffer
	if err := Summary(&buf, goldenInventory(), "MB"); err != nil {
		t.Fatalf("Summary failed: %v", err)
	}

	want := "\n" +
		"--------------------\n" +
		"Number of LPARS: 2\n" +
		"Total number of VGs: 3\n" +
		"Total number of disks: 4\n" +
		"Total capacity: 280024 MB\n" +
		"\n"
	if buf.String() != want {
		t.Errorf("Summary mismatch\n got: %q\nwant: %q", buf.String(), want)
	}
}

func TestTree(t *testing.T) {
	var buf bytes.Buffer
	if err := Tree(&buf, goldenInventory(), display.PlainTheme(), "MB"); err != nil {
		t.Fatalf("Tree failed: %v", err)
	}

	want := "" +
		"lpar01  2 VGs, 3 disks, 210,018 MB\n" +
		"├── datavg  2 disks, 140,012 MB\n" +
		"│   ├── hdisk1  70,006 MB\n" +
		"│   └── hdisk2  70,006 MB\n" +
		"└── rootvg  1 disk, 70,006 MB\n" +
		"    └── hdisk0  70,006 MB\n" +
		"\n" +
		"lpar02  1 VG, 1 disk, 70,006 MB\n" +
		"└── rootvg  1 disk, 70,006 MB\n" +
		"    └── hdisk0  70,006 MB\n" +
		"\n" +
		"2 LPARs, 3 VGs, 4 disks, 280,024 MB\n"
	if buf.String() != want {
		t.Errorf("Tree mismatch\n got:\n%s\nwant:\n%s", buf.String(), want)
	}
}

func TestTable(t *testing.T) {
	inv := goldenInventory()

	byLpar := Table(inv, false, "MB")
	if got := strings.Join(byLpar.Header, "|"); got != "LPAR|VGs|Disks|Capacity (MB)" {
		t.Errorf("header = %q", got)
	}
	if len(byLpar.Rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(byLpar.Rows))
	}
	if got := strings.Join(byLpar.Rows[0], "|"); got != "lpar01|2|3|210,018" {
		t.Errorf("row 0 = %q", got)
	}
	if got := strings.Join(byLpar.Footer, "|"); got != "total|3|4|280,024" {
		t.Errorf("footer = %q", got)
	}

	byVG := Table(inv, true, "MB")
	if len(byVG.Rows) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(byVG.Rows))
	}
	if got := strings.Join(byVG.Rows[0], "|"); got != "lpar01|datavg|2|140,012" {
		t.Errorf("row 0 = %q", got)
	}
}

func TestJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := JSON(&buf, goldenInventory(), true); err != nil {
		t.Fatalf("JSON failed: %v", err)
	}

	var doc struct {
		Partitions map[string]struct {
			Groups map[string]struct {
				Disks  map[string]int64 `json:"disks"`
				NDisks int              `json:"n_disks"`
				TSize  int64            `json:"t_size"`
			} `json:"groups"`
			NVGs int `json:"n_vgs"`
		} `json:"partitions"`
		NLpars int   `json:"n_lpars"`
		NVGs   int   `json:"n_vgs"`
		NDisks int   `json:"n_disks"`
		TSize  int64 `json:"t_size"`
	}
	if err := json.Unmarshal(buf.Bytes(), &doc); err != nil {
		t.Fatalf("output is not JSON: %v", err)
	}
	if doc.NLpars != 2 || doc.NVGs != 3 || doc.NDisks != 4 || doc.TSize != 280024 {
		t.Errorf("unexpected totals: %+v", doc)
	}
	datavg := doc.Partitions["lpar01"].Groups["datavg"]
	if datavg.NDisks != 2 || datavg.TSize != 140012 || datavg.Disks["hdisk2"] != 70006 {
		t.Errorf("unexpected datavg: %+v", datavg)
	}
}

func TestQuery(t *testing.T) {
	tests := []struct {
		name string
		expr string
		want string
	}{
		{"total", ".t_size", "280024\n"},
		{"lpar names", ".partitions | keys[]", "\"lpar01\"\n\"lpar02\"\n"},
		{"vg sizes", `.partitions.lpar01.groups | to_entries | map({(.key): .value.t_size}) | add`, `{"datavg":140012,"rootvg":70006}` + "\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := Query(&buf, goldenInventory(), tt.expr, true); err != nil {
				t.Fatalf("Query failed: %v", err)
			}
			if buf.String() != tt.want {
				t.Errorf("Query(%q) = %q, want %q", tt.expr, buf.String(), tt.want)
			}
		})
	}
}

func TestQueryErrors(t *testing.T) {
	var buf bytes.Buffer
	if err := Query(&buf, goldenInventory(), ".partitions[", true); err == nil {
		t.Error("expected parse error")
	}
	if err := Query(&buf, goldenInventory(), `error("boom")`, true); err == nil {
		t.Error("expected runtime error")
	}
}

func TestExport(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "disks.parquet")

	n, err := ExportFile(context.Background(), path, goldenInventory(), "zstd")
	if err != nil {
		t.Fatalf("ExportFile failed: %v", err)
	}
	if n != 4 {
		t.Errorf("wrote %d rows, want 4", n)
	}

	if _, err := os.Stat(filelock.Path(path)); !os.IsNotExist(err) {
		t.Errorf("lock file left behind: %v", err)
	}
	if _, err := os.Stat(path + ".tmp"); !os.IsNotExist(err) {
		t.Errorf("temp file left behind: %v", err)
	}

	rows, err := parquet.ReadFile[DiskRow](path)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	want := []DiskRow{
		{"lpar01", "datavg", "hdisk1", 70006},
		{"lpar01", "datavg", "hdisk2", 70006},
		{"lpar01", "rootvg", "hdisk0", 70006},
		{"lpar02", "rootvg", "hdisk0", 70006},
	}
	if len(rows) != len(want) {
		t.Fatalf("read %d rows, want %d", len(rows), len(want))
	}
	for i := range want {
		if rows[i] != want[i] {
			t.Errorf("row %d = %+v, want %+v", i, rows[i], want[i])
		}
	}
}

func TestExportUnknownCompression(t *testing.T) {
	var buf bytes.Buffer
	if _, err := Export(&buf, goldenInventory(), "lzma"); err == nil {
		t.Error("expected error for unknown compression")
	}
}
