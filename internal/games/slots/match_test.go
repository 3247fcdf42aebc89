package slots

import (
	"errors"
	"fmt"
	"testing"
)

// fillers returns n ids that never reach MinMatch (each used at most twice).
func fillers(n int) []SymbolID {
	pool := []SymbolID{"9", "9", "10", "10", "A", "A", "J", "J", "Q", "Q", "M1", "M1", "M2", "M2", "M3"}
	return append([]SymbolID(nil), pool[:n]...)
}

func repeat(id SymbolID, n int) []SymbolID {
	ids := make([]SymbolID, n)
	for i := range ids {
		ids[i] = id
	}
	return ids
}

func TestResolveSingleMatch(t *testing.T) {
	tests := []struct {
		count  int
		points int
	}{
		{3, 30},
		{4, 50},
		{5, 75},
		{6, 100},
		{7, 150},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%d of a kind", tt.count), func(t *testing.T) {
			ids := append(repeat("H1", tt.count), fillers(15-tt.count)...)

			out, err := Resolve(ids)
			if err != nil {
				t.Fatalf("Resolve() error = %v", err)
			}
			if out.Delta != tt.points {
				t.Errorf("Delta = %d, want %d", out.Delta, tt.points)
			}
			wantLabel := fmt.Sprintf("%d-symbol match", tt.count)
			if out.Label != wantLabel {
				t.Errorf("Label = %q, want %q", out.Label, wantLabel)
			}
			if len(out.Groups) != 1 || out.Groups[0] != (MatchGroup{Symbol: "H1", Count: tt.count, Points: tt.points}) {
				t.Errorf("Groups = %+v, want single H1 group", out.Groups)
			}
		})
	}
}

func TestResolveLoss(t *testing.T) {
	out, err := Resolve(fillers(15))
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if out.Delta != LossPoints {
		t.Errorf("Delta = %d, want %d", out.Delta, LossPoints)
	}
	if out.Label != "Loss" {
		t.Errorf("Label = %q, want Loss", out.Label)
	}
	if out.Won() || len(out.Groups) != 0 {
		t.Errorf("Groups = %+v, want none", out.Groups)
	}
	if got := out.Summary(); got != "Match: Loss" {
		t.Errorf("Summary() = %q", got)
	}
}

func TestResolveMultiMatch(t *testing.T) {
	ids := append(repeat("K", 4), repeat("H1", 3)...)
	ids = append(ids, fillers(8)...)

	out, err := Resolve(ids)
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if out.Delta != 80 {
		t.Errorf("Delta = %d, want 30 + 50 = 80", out.Delta)
	}
	if len(out.Groups) != 2 {
		t.Fatalf("Groups = %+v, want 2", out.Groups)
	}
	// First appearance order
	if out.Groups[0].Symbol != "K" || out.Groups[1].Symbol != "H1" {
		t.Errorf("group order = %s, %s; want K, H1", out.Groups[0].Symbol, out.Groups[1].Symbol)
	}
	if !out.Matched("K") || !out.Matched("H1") || out.Matched("9") {
		t.Error("Matched() disagrees with groups")
	}
	// Label follows the largest group
	if out.Label != "4-symbol match" {
		t.Errorf("Label = %q, want 4-symbol match", out.Label)
	}
	if got, want := out.Summary(), "Match: 4 K, 3 H1 - 4-symbol match"; got != want {
		t.Errorf("Summary() = %q, want %q", got, want)
	}
}

func TestResolvePositionIndependent(t *testing.T) {
	a := []SymbolID{"H1", "9", "H1", "10", "H1"}
	b := []SymbolID{"10", "H1", "H1", "H1", "9"}

	outA, errA := Resolve(a)
	outB, errB := Resolve(b)
	if errA != nil || errB != nil {
		t.Fatalf("Resolve() errors: %v, %v", errA, errB)
	}
	if outA.Delta != outB.Delta || outA.Label != outB.Label {
		t.Errorf("outcomes differ: %+v vs %+v", outA, outB)
	}
}

func TestResolveUnscoredCount(t *testing.T) {
	ids := append(repeat("M4", 8), fillers(7)...)

	out, err := Resolve(ids)
	if !errors.Is(err, ErrUnscoredCount) {
		t.Fatalf("Resolve() error = %v, want ErrUnscoredCount", err)
	}
	var uce *UnscoredCountError
	if !errors.As(err, &uce) || uce.Count != 8 || uce.Symbol != "M4" {
		t.Errorf("error detail = %+v, want 8 x M4", uce)
	}
	if out.Delta != 0 || out.Groups != nil {
		t.Errorf("failed resolution returned partial outcome %+v", out)
	}
}

func TestPointTable(t *testing.T) {
	want := [][2]int{{3, 30}, {4, 50}, {5, 75}, {6, 100}, {7, 150}}
	got := PointTable()
	if len(got) != len(want) {
		t.Fatalf("PointTable() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("PointTable()[%d] = %v, want %v", i, got[i], want[i])
		}
	}

	if _, ok := PointsFor(2); ok {
		t.Error("PointsFor(2) should not score")
	}
	if _, ok := PointsFor(8); ok {
		t.Error("PointsFor(8) should not score")
	}
}
