package report

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"lparsum/pkg/filelock"
	"lparsum/pkg/inventory"

	"github.com/parquet-go/parquet-go"
	"github.com/parquet-go/parquet-go/compress"
)

// DiskRow is one disk in Parquet export form.
type DiskRow struct {
	Partition   string `parquet:"partition,dict"`
	VolumeGroup string `parquet:"volume_group,dict"`
	Disk        string `parquet:"disk"`
	Size        int64  `parquet:"size"`
}

// Rows flattens inv into disk rows ordered by partition, volume group and disk.
func Rows(inv *inventory.Inventory) []DiskRow {
	rows := make([]DiskRow, 0, inv.DiskCount)
	inv.Each(func(p *inventory.Partition, vg *inventory.VolumeGroup, disk string, size int64) {
		rows = append(rows, DiskRow{
			Partition:   p.Name,
			VolumeGroup: vg.Name,
			Disk:        disk,
			Size:        size,
		})
	})
	return rows
}

func codec(name string) (compress.Codec, error) {
	switch name {
	case "zstd", "":
		return &parquet.Zstd, nil
	case "snappy":
		return &parquet.Snappy, nil
	case "gzip":
		return &parquet.Gzip, nil
	case "none":
		return &parquet.Uncompressed, nil
	default:
		return nil, fmt.Errorf("unsupported compression: %s", name)
	}
}

// Export writes one Parquet row per disk of inv to w.
func Export(w io.Writer, inv *inventory.Inventory, compression string) (int, error) {
	c, err := codec(compression)
	if err != nil {
		return 0, err
	}

	pw := parquet.NewGenericWriter[DiskRow](w, parquet.Compression(c))
	n, err := pw.Write(Rows(inv))
	if err != nil {
		return n, fmt.Errorf("write rows: %w", err)
	}
	if err := pw.Close(); err != nil {
		return n, fmt.Errorf("close writer: %w", err)
	}
	return n, nil
}

// ExportFile writes the Parquet export to path, creating parent directories.
// The file is written under a lock next to path and renamed into place, so
// readers never see a partial export.
func ExportFile(ctx context.Context, path string, inv *inventory.Inventory, compression string) (int, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return 0, fmt.Errorf("create directory: %w", err)
	}
	unlock, err := filelock.Lock(ctx, path)
	if err != nil {
		return 0, err
	}
	defer unlock()

	tmp := path + ".tmp"
	f, err := os.Create(tmp)
	if err != nil {
		return 0, fmt.Errorf("create file: %w", err)
	}

	n, err := Export(f, inv, compression)
	if cerr := f.Close(); err == nil && cerr != nil {
		err = fmt.Errorf("close file: %w", cerr)
	}
	if err != nil {
		os.Remove(tmp)
		return n, err
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return n, fmt.Errorf("rename export: %w", err)
	}
	return n, nil
}
