package corpus

import (
	"path/filepath"
	"testing"

	"github.com/feedlattice/classify/internal/model"
)

func strPtr(s string) *string { return &s }

func TestStorePutLoad(t *testing.T) {
	dir := t.TempDir()
	store, err := Open(filepath.Join(dir, "corpus.db"))
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer store.Close()

	item := model.MatchableItem{ID: "x", GuidHash: strPtr("g-1")}
	if err := store.Put("feed-a", item); err != nil {
		t.Fatalf("Put() error = %v", err)
	}

	items, err := store.Load("feed-a")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(items) != 1 || items[0].ID != "x" {
		t.Fatalf("Load() = %+v, want one item with ID x", items)
	}
}

func TestStoreLoadMissingChannel(t *testing.T) {
	dir := t.TempDir()
	store, err := Open(filepath.Join(dir, "corpus.db"))
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer store.Close()

	items, err := store.Load("does-not-exist")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(items) != 0 {
		t.Fatalf("Load() = %+v, want empty", items)
	}
}

func TestStorePutAllAndChannels(t *testing.T) {
	dir := t.TempDir()
	store, err := Open(filepath.Join(dir, "corpus.db"))
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer store.Close()

	items := []model.MatchableItem{
		{ID: "a", GuidHash: strPtr("g-a")},
		{ID: "b", GuidHash: strPtr("g-b")},
	}
	if err := store.PutAll("feed-b", items); err != nil {
		t.Fatalf("PutAll() error = %v", err)
	}

	channels, err := store.Channels()
	if err != nil {
		t.Fatalf("Channels() error = %v", err)
	}
	if len(channels) != 1 || channels[0] != "feed-b" {
		t.Fatalf("Channels() = %v, want [feed-b]", channels)
	}

	loaded, err := store.Load("feed-b")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(loaded) != 2 {
		t.Fatalf("Load() = %+v, want 2 items", loaded)
	}
}
