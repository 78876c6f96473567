package usecase

import (
	"fmt"
	"strings"
)

type fileHit struct {
	Path string
	Hits int
}

// collectHits returns the cached files among files in the order of files.
func collectHits(files []string, cache map[string]int) []fileHit {
	var hits []fileHit
	seen := make(map[string]struct{}, len(files))
	for _, f := range files {
		if _, ok := seen[f]; ok {
			continue
		}
		seen[f] = struct{}{}

		if n, ok := cache[f]; ok {
			hits = append(hits, fileHit{Path: f, Hits: n})
		}
	}
	return hits
}

func buildWarningComment(hits []fileHit) string {
	var b strings.Builder
	b.WriteString("Following files updated in the PR are present in the fix-cache:\n")
	for _, h := range hits {
		unit := "hits"
		if h.Hits == 1 {
			unit = "hit"
		}
		fmt.Fprintf(&b, "\n- `%s` : *%d* %s", h.Path, h.Hits, unit)
	}
	return b.String()
}
