package model

import "testing"

func strPtr2(s string) *string { return &s }

func TestItemHashes_Get(t *testing.T) {
	h := ItemHashes{Guid: strPtr2("g"), Title: strPtr2("t")}
	if got := h.Get(SlotGuid); got == nil || *got != "g" {
		t.Errorf("Get(SlotGuid) = %v, want g", got)
	}
	if got := h.Get(SlotLink); got != nil {
		t.Errorf("Get(SlotLink) = %v, want nil", got)
	}
}

func TestItemHashes_HasStrongHash(t *testing.T) {
	if (ItemHashes{Title: strPtr2("t")}).HasStrongHash() {
		t.Error("HasStrongHash() = true for title-only hashes")
	}
	if !(ItemHashes{Link: strPtr2("l")}).HasStrongHash() {
		t.Error("HasStrongHash() = false with link present")
	}
}

func TestMatchableItem_Get(t *testing.T) {
	m := MatchableItem{ID: "x", EnclosureHash: strPtr2("e")}
	if got := m.Get(SlotEnclosure); got == nil || *got != "e" {
		t.Errorf("Get(SlotEnclosure) = %v, want e", got)
	}
}

func TestHashesEqual(t *testing.T) {
	a := strPtr2("v")
	b := strPtr2("v")
	c := strPtr2("other")

	if !HashesEqual(a, b) {
		t.Error("HashesEqual() = false for equal values")
	}
	if HashesEqual(a, c) {
		t.Error("HashesEqual() = true for different values")
	}
	if HashesEqual(nil, nil) {
		t.Error("HashesEqual() = true for two absent values, want false")
	}
	if HashesEqual(a, nil) {
		t.Error("HashesEqual() = true when one side absent, want false")
	}
}

func TestPresent(t *testing.T) {
	if Present(nil) {
		t.Error("Present(nil) = true")
	}
	empty := ""
	if Present(&empty) {
		t.Error("Present(empty) = true")
	}
	v := "x"
	if !Present(&v) {
		t.Error("Present(v) = false")
	}
}
