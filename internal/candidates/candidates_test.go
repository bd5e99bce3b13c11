package candidates

import (
	"testing"

	"github.com/feedlattice/classify/internal/model"
)

func strPtr(s string) *string { return &s }

func TestFind_MatchesOnAnySharedSlot(t *testing.T) {
	existing := []model.MatchableItem{
		{ID: "a", GuidHash: strPtr("g-1")},
		{ID: "b", LinkHash: strPtr("l-1")},
		{ID: "c", GuidHash: strPtr("g-other")},
	}
	got := Find(model.ItemHashes{Guid: strPtr("g-1"), Link: strPtr("l-1")}, existing)
	if len(got) != 2 {
		t.Fatalf("Find() len = %d, want 2", len(got))
	}
}

func TestFind_TitleIgnoredWhenStrongHashPresent(t *testing.T) {
	existing := []model.MatchableItem{{ID: "a", TitleHash: strPtr("t-1")}}
	got := Find(model.ItemHashes{Guid: strPtr("g-1"), Title: strPtr("t-1")}, existing)
	if len(got) != 0 {
		t.Errorf("Find() = %+v, want none (title suppressed by strong hash)", got)
	}
}

func TestFind_TitleUsedWhenNoStrongHash(t *testing.T) {
	existing := []model.MatchableItem{{ID: "a", TitleHash: strPtr("t-1")}}
	got := Find(model.ItemHashes{Title: strPtr("t-1")}, existing)
	if len(got) != 1 {
		t.Errorf("Find() = %+v, want one match", got)
	}
}

func TestIndex_MatchesPlainFind(t *testing.T) {
	existing := []model.MatchableItem{
		{ID: "a", GuidHash: strPtr("g-1")},
		{ID: "b", LinkHash: strPtr("l-1")},
		{ID: "c", EnclosureHash: strPtr("e-1")},
	}
	idx := Build(existing)
	hashes := model.ItemHashes{Guid: strPtr("g-1"), Link: strPtr("l-1")}

	want := Find(hashes, existing)
	got := idx.Find(hashes)

	if len(got) != len(want) {
		t.Fatalf("Index.Find() len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i].ID != want[i].ID {
			t.Errorf("Index.Find()[%d] = %s, want %s", i, got[i].ID, want[i].ID)
		}
	}
}

func TestIndex_NoMatch(t *testing.T) {
	existing := []model.MatchableItem{{ID: "a", GuidHash: strPtr("g-1")}}
	idx := Build(existing)
	got := idx.Find(model.ItemHashes{Guid: strPtr("g-2")})
	if len(got) != 0 {
		t.Errorf("Index.Find() = %+v, want none", got)
	}
}
