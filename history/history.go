// Package history keeps the links the user has opened.
package history

import (
	"github.com/metafates/gache"
	"github.com/tubegrab/tubegrab/filesystem"
	"github.com/tubegrab/tubegrab/where"
	"golang.org/x/exp/slices"
)

// records are keyed by video id, so opening a video again replaces its entry.
var cacher = gache.New[map[string]*Record](
	&gache.Options{
		Path:       where.History(),
		FileSystem: &filesystem.GacheFs{},
	},
)

func load() (map[string]*Record, error) {
	cached, expired, err := cacher.Get()
	if err != nil {
		return nil, err
	}
	if expired || cached == nil {
		return make(map[string]*Record), nil
	}
	return cached, nil
}

// Get returns all records, newest first.
func Get() ([]*Record, error) {
	saved, err := load()
	if err != nil {
		return nil, err
	}

	records := make([]*Record, 0, len(saved))
	for _, r := range saved {
		records = append(records, r)
	}

	slices.SortFunc(records, func(a, b *Record) int {
		return b.SavedAt.Compare(a.SavedAt)
	})

	return records, nil
}

// Save stores the record.
func Save(record *Record) error {
	saved, err := load()
	if err != nil {
		return err
	}

	saved[record.ID] = record
	return cacher.Set(saved)
}

// Remove deletes the record for the given video id.
func Remove(id string) error {
	saved, err := load()
	if err != nil {
		return err
	}

	delete(saved, id)
	return cacher.Set(saved)
}

// Clear deletes every record.
func Clear() error {
	return cacher.Set(make(map[string]*Record))
}
