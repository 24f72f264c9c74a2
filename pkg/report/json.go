package report

import (
	"encoding/json"
	"fmt"
	"io"

	"lparsum/pkg/inventory"

	"github.com/itchyny/gojq"
)

// JSON writes the whole summarized inventory as one JSON document, using the
// aggregate keys n_lpars, n_vgs, n_disks and t_size at each level.
func JSON(w io.Writer, inv *inventory.Inventory, compact bool) error {
	enc := json.NewEncoder(w)
	if !compact {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(inv)
}

// Query runs a jq filter over the JSON form of inv and writes each result as
// one JSON value per line.
func Query(w io.Writer, inv *inventory.Inventory, expr string, compact bool) error {
	q, err := gojq.Parse(expr)
	if err != nil {
		return fmt.Errorf("invalid query: %w", err)
	}

	data, err := json.Marshal(inv)
	if err != nil {
		return err
	}
	var input any
	if err := json.Unmarshal(data, &input); err != nil {
		return err
	}

	enc := json.NewEncoder(w)
	if !compact {
		enc.SetIndent("", "  ")
	}

	iter := q.Run(input)
	for {
		v, ok := iter.Next()
		if !ok {
			break
		}
		if err, ok := v.(error); ok {
			return fmt.Errorf("query failed: %w", err)
		}
		if err := enc.Encode(v); err != nil {
			return err
		}
	}
	return nil
}
