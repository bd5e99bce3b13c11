package profile

import "testing"

func TestCompute_NoData_ReturnsZero(t *testing.T) {
	got := Compute(nil, nil)
	if got.LinkUniquenessRate != 0 {
		t.Errorf("LinkUniquenessRate = %v, want 0", got.LinkUniquenessRate)
	}
}

func TestCompute_HistoricalOnly(t *testing.T) {
	got := Compute([]string{"a", "a", "b"}, nil)
	want := 2.0 / 3.0
	if got.LinkUniquenessRate != want {
		t.Errorf("LinkUniquenessRate = %v, want %v", got.LinkUniquenessRate, want)
	}
}

func TestCompute_BatchOnly(t *testing.T) {
	got := Compute(nil, []string{"a", "b"})
	if got.LinkUniquenessRate != 1 {
		t.Errorf("LinkUniquenessRate = %v, want 1", got.LinkUniquenessRate)
	}
}

func TestCompute_CombinesAsMinimum(t *testing.T) {
	// historical: 18/20 = 0.9, batch: fully unique = 1.0 -> min is 0.9.
	hist := make([]string, 0, 20)
	for i := 0; i < 17; i++ {
		hist = append(hist, string(rune('a'+i)))
	}
	hist = append(hist, "dup", "dup", "dup")

	got := Compute(hist, []string{"x", "y"})
	if got.LinkUniquenessRate != 0.9 {
		t.Errorf("LinkUniquenessRate = %v, want 0.9", got.LinkUniquenessRate)
	}
}

func TestCompute_MoreDuplicatesOnlyLowersRate(t *testing.T) {
	low := Compute([]string{"a", "a", "a"}, nil)
	high := Compute([]string{"a", "b", "c"}, nil)
	if low.LinkUniquenessRate >= high.LinkUniquenessRate {
		t.Errorf("expected more duplicates to lower the rate: low=%v high=%v", low.LinkUniquenessRate, high.LinkUniquenessRate)
	}
}
