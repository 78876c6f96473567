package memory

import (
	"sort"

	"github.com/aavshr/fixcache/pkg/domain/model"
)

func copyRepository(repo *model.Repository) *model.Repository {
	if repo == nil {
		return nil
	}
	copied := *repo
	copied.SkipPaths = append([]string(nil), repo.SkipPaths...)
	copied.FixKeywords = append([]string(nil), repo.FixKeywords...)
	return &copied
}

func copyEntry(entry *model.CacheEntry) *model.CacheEntry {
	if entry == nil {
		return nil
	}
	copied := *entry
	return &copied
}

func sortEntries(entries []*model.CacheEntry) []*model.CacheEntry {
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Seq < entries[j].Seq
	})
	return entries
}
