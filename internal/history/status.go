package history

import (
	"fmt"
	"sort"

	"github.com/northstarwang/burnlens/schema"
)

// PrintStatus prints history store row counts per table.
func PrintStatus(backend schema.DatabaseBackend, counts map[string]int64) {
	fmt.Printf("History Backend: %s\n", backend)
	if backend == schema.NoneBackend {
		return
	}
	fmt.Println("Table Sizes:")
	tables := make([]string, 0, len(counts))
	for table := range counts {
		tables = append(tables, table)
	}
	sort.Strings(tables)
	for _, table := range tables {
		fmt.Printf("  %s: %d rows\n", table, counts[table])
	}
}
