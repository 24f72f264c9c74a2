package cli

var filesArg = &Arg{Name: "files", Type: "files", Desc: "Inventory CSV files or http(s) URLs (.gz/.zst accepted, - for stdin)"}

// GlobalFlags are accepted anywhere on the command line.
func GlobalFlags() []*Flag {
	return []*Flag{
		{Name: "verbose", Short: "v", Type: "bool", Desc: "Enable debug logging"},
		{Name: "config", Type: "string", Desc: "Path to config.yaml"},
		{Name: "no-color", Type: "bool", Desc: "Disable colors and icons"},
	}
}

// Commands lists every lparsum command.
func Commands() []*Command {
	return []*Command{
		{
			Name:     "summary",
			Desc:     "Print LPAR, VG, disk and capacity totals",
			Args:     []*Arg{filesArg},
			Examples: []string{"lparsum summary disks.csv", "lparsum disks.csv"},
		},
		{
			Name:     "tree",
			Desc:     "Show every LPAR, VG and disk with totals",
			Args:     []*Arg{filesArg},
			Examples: []string{"lparsum tree frame1.csv frame2.csv.gz"},
		},
		{
			Name: "table",
			Desc: "Tabulate totals per LPAR",
			Args: []*Arg{filesArg},
			Flags: []*Flag{
				{Name: "vgs", Type: "bool", Desc: "One row per volume group"},
			},
			Examples: []string{"lparsum table --vgs disks.csv"},
		},
		{
			Name: "json",
			Desc: "Dump the summarized inventory as JSON",
			Args: []*Arg{filesArg},
			Flags: []*Flag{
				{Name: "query", Short: "q", Type: "string", Desc: "jq filter applied to the document"},
				{Name: "compact", Short: "c", Type: "bool", Desc: "One line per value"},
			},
			Examples: []string{"lparsum json -q '.partitions | map_values(.t_size)' disks.csv"},
		},
		{
			Name:     "stats",
			Desc:     "Disk size distribution per LPAR",
			Args:     []*Arg{filesArg},
			Examples: []string{"lparsum stats disks.csv"},
		},
		{
			Name: "export",
			Desc: "Write one Parquet row per disk",
			Args: []*Arg{filesArg},
			Flags: []*Flag{
				{Name: "output", Short: "o", Type: "string", Desc: "Parquet file to write (required)"},
			},
			Examples: []string{"lparsum export -o disks.parquet disks.csv"},
		},
		{
			Name: "version",
			Desc: "Show build information",
		},
	}
}
