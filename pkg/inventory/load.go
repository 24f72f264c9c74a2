package inventory

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/url"
	"os"
	"strings"

	"lparsum/pkg/logging"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"golang.org/x/sync/errgroup"
)

// Stdin is the path that makes Open read standard input.
const Stdin = "-"

// Open opens an inventory file, decompressing .gz and .zst files on the fly.
// Paths starting with http:// or https:// are fetched.
func Open(ctx context.Context, path string) (io.ReadCloser, error) {
	if path == Stdin {
		return io.NopCloser(os.Stdin), nil
	}

	name := path
	var rc io.ReadCloser
	if isURL(path) {
		u, err := url.Parse(path)
		if err != nil {
			return nil, fmt.Errorf("invalid inventory url: %w", err)
		}
		name = u.Path
		if rc, err = fetch(ctx, httpClient, path); err != nil {
			return nil, err
		}
	} else {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("failed to open inventory: %w", err)
		}
		rc = f
	}
	return decompress(rc, name)
}

func decompress(rc io.ReadCloser, name string) (io.ReadCloser, error) {
	switch {
	case strings.HasSuffix(name, ".gz"):
		gzr, err := gzip.NewReader(rc)
		if err != nil {
			rc.Close()
			return nil, fmt.Errorf("failed to create gzip reader: %w", err)
		}
		return &stackedReader{Reader: gzr, closers: []func() error{gzr.Close, rc.Close}}, nil
	case strings.HasSuffix(name, ".zst"):
		zr, err := zstd.NewReader(rc)
		if err != nil {
			rc.Close()
			return nil, fmt.Errorf("failed to create zstd reader: %w", err)
		}
		return &stackedReader{Reader: zr, closers: []func() error{
			func() error { zr.Close(); return nil },
			rc.Close,
		}}, nil
	default:
		return rc, nil
	}
}

type stackedReader struct {
	io.Reader
	closers []func() error
}

func (s *stackedReader) Close() error {
	var errs []error
	for _, c := range s.closers {
		errs = append(errs, c())
	}
	return errors.Join(errs...)
}

// ReadFile opens path and reads all of its records.
func ReadFile(ctx context.Context, path string) ([]Record, error) {
	rc, err := Open(ctx, path)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	source := path
	if path == Stdin {
		source = "stdin"
	}
	return ReadRecords(rc, source)
}

// Load reads the given files, builds one inventory from all of their
// records and summarizes it. Files are parsed concurrently but their records
// are applied in argument order, so a disk listed in a later file overrides
// the same disk in an earlier one.
func Load(ctx context.Context, paths ...string) (*Inventory, error) {
	if len(paths) == 0 {
		return nil, errors.New("no inventory file given")
	}
	log := logging.Component("inventory")

	parsed := make([][]Record, len(paths))
	g, ctx := errgroup.WithContext(ctx)
	for i, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			recs, err := ReadFile(ctx, path)
			if err != nil {
				return err
			}
			log.Debug("Parsed inventory file", "path", path, "records", len(recs))
			parsed[i] = recs
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	inv := New()
	for _, recs := range parsed {
		for _, rec := range recs {
			inv.Add(rec)
		}
	}
	Summarize(inv)
	log.Debug("Inventory summarized", "lpars", inv.LparCount, "vgs", inv.VGCount, "disks", inv.DiskCount)
	return inv, nil
}
