package cli

import (
	"cmp"
	"io"
	"slices"
	"strconv"
	"time"

	"github.com/aavshr/fixcache/pkg/domain/model"
	"github.com/olekukonko/tablewriter"
)

// renderCache writes the entries of set as a table, most hit files first. Files with equal hit
// counts keep their admission order.
func renderCache(w io.Writer, set *model.CacheSet) {
	entries := slices.Clone(set.Entries)
	slices.SortStableFunc(entries, func(a, b *model.CacheEntry) int {
		return cmp.Compare(b.HitCount, a.HitCount)
	})

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"#", "File", "Hits", "Last hit"})
	table.SetBorder(false)
	table.SetAutoWrapText(false)
	table.SetAlignment(tablewriter.ALIGN_LEFT)

	for i, entry := range entries {
		table.Append([]string{
			strconv.Itoa(i + 1),
			entry.Path,
			strconv.Itoa(entry.HitCount),
			entry.LastHit.UTC().Format(time.RFC3339),
		})
	}
	table.Render()
}
