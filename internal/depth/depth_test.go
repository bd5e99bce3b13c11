package depth

import (
	"testing"

	"github.com/feedlattice/classify/internal/identifier"
	"github.com/feedlattice/classify/internal/ladder"
	"github.com/feedlattice/classify/internal/model"
)

func strPtr(s string) *string { return &s }

func TestCompute_NoItems_NoFloor_ReturnsWeakest(t *testing.T) {
	got := Compute(nil, nil)
	if got != ladder.Weakest {
		t.Errorf("Compute() = %v, want Weakest", got)
	}
}

func TestCompute_NoItems_WithFloor_ReturnsFloor(t *testing.T) {
	floor := ladder.RungLink
	got := Compute(nil, &floor)
	if got != floor {
		t.Errorf("Compute() = %v, want %v", got, floor)
	}
}

func TestCompute_AllGuidPresent_ResolvesToGuid(t *testing.T) {
	items := []identifier.HashSource{
		model.ItemHashes{Guid: strPtr("a")},
		model.ItemHashes{Guid: strPtr("b")},
	}
	got := Compute(items, nil)
	if got != ladder.RungGuid {
		t.Errorf("Compute() = %v, want guid", got)
	}
}

func TestCompute_CollidingLinks_DowngradesToTitle(t *testing.T) {
	items := []identifier.HashSource{
		model.ItemHashes{Link: strPtr("same"), Title: strPtr("a")},
		model.ItemHashes{Link: strPtr("same"), Title: strPtr("b")},
	}
	floor := ladder.RungLink
	got := Compute(items, &floor)
	if got != ladder.RungTitle {
		t.Errorf("Compute() = %v, want title", got)
	}
}

func TestCompute_NeverUpgradesPastFloor(t *testing.T) {
	items := []identifier.HashSource{
		model.ItemHashes{Guid: strPtr("a")},
	}
	floor := ladder.RungLink
	got := Compute(items, &floor)
	if got != ladder.RungLink {
		t.Errorf("Compute() = %v, want floor link (never upgrade)", got)
	}
}
