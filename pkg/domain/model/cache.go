package model

import (
	"time"

	"github.com/aavshr/fixcache/pkg/domain/types"
)

// CacheEntry is one bug-prone file prediction of a repository.
type CacheEntry struct {
	RepoID   types.GitHubRepoID
	Path     string
	HitCount int
	LastHit  time.Time
	// Seq is the admission sequence number. It defines first-seen order within a CacheSet.
	Seq int64
}

// CacheSet is the entry set of one repository as it was read from the store. Entries are kept in
// ascending Seq order. Version is the store's version of the set and is used for conditional writes.
type CacheSet struct {
	RepoID  types.GitHubRepoID
	Version int64
	Entries []*CacheEntry
}

// CacheChange describes what Seed or Apply did to a CacheSet.
type CacheChange struct {
	Admitted  []string
	Refreshed []string
	Evicted   []string
}

func (x *CacheChange) Changed() bool {
	return len(x.Admitted) > 0 || len(x.Refreshed) > 0 || len(x.Evicted) > 0
}

// Lookup returns hit counts keyed by file path.
func (x *CacheSet) Lookup() map[string]int {
	hits := make(map[string]int, len(x.Entries))
	for _, e := range x.Entries {
		hits[e.Path] = e.HitCount
	}
	return hits
}

// Seed admits files that are not yet present in encounter order until capacity distinct entries are
// held. It never evicts.
func (x *CacheSet) Seed(files []string, now time.Time, capacity int) *CacheChange {
	change := &CacheChange{}
	idx := x.index()
	for _, f := range files {
		if len(x.Entries) >= capacity {
			break
		}
		if _, ok := idx[f]; ok {
			continue
		}
		idx[f] = x.admit(f, now)
		change.Admitted = append(change.Admitted, f)
	}
	return change
}

// Apply records one observation of every file in files. A present file is refreshed. An absent file
// is admitted, evicting the least recently hit entry first when the set is at capacity. An empty set
// is seeded instead.
func (x *CacheSet) Apply(files []string, now time.Time, capacity int) *CacheChange {
	if len(x.Entries) == 0 {
		return x.Seed(files, now, capacity)
	}

	change := &CacheChange{}
	if capacity <= 0 {
		return change
	}

	idx := x.index()
	for _, f := range files {
		if e, ok := idx[f]; ok {
			e.HitCount++
			e.LastHit = now
			change.Refreshed = append(change.Refreshed, f)
			continue
		}

		for len(x.Entries) >= capacity {
			victim := x.evict()
			delete(idx, victim.Path)
			change.Evicted = append(change.Evicted, victim.Path)
		}

		idx[f] = x.admit(f, now)
		change.Admitted = append(change.Admitted, f)
	}

	return change
}

func (x *CacheSet) index() map[string]*CacheEntry {
	idx := make(map[string]*CacheEntry, len(x.Entries))
	for _, e := range x.Entries {
		idx[e.Path] = e
	}
	return idx
}

func (x *CacheSet) admit(path string, now time.Time) *CacheEntry {
	var seq int64 = 1
	if n := len(x.Entries); n > 0 {
		seq = x.Entries[n-1].Seq + 1
	}

	entry := &CacheEntry{
		RepoID:   x.RepoID,
		Path:     path,
		HitCount: 1,
		LastHit:  now,
		Seq:      seq,
	}
	x.Entries = append(x.Entries, entry)
	return entry
}

// evict removes the entry with the oldest LastHit. Entries are scanned in Seq order and only a
// strictly older entry replaces the candidate, so ties go to the first-seen entry.
func (x *CacheSet) evict() *CacheEntry {
	victim := 0
	for i, e := range x.Entries {
		if e.LastHit.Before(x.Entries[victim].LastHit) {
			victim = i
		}
	}

	entry := x.Entries[victim]
	x.Entries = append(x.Entries[:victim], x.Entries[victim+1:]...)
	return entry
}
