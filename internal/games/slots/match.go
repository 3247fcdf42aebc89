package slots

import (
	"errors"
	"fmt"
	"strings"
)

const (
	// MinMatch is the smallest count that scores.
	MinMatch = 3
	// LossPoints is applied when nothing matches.
	LossPoints = -10
	// LossLabel names a spin without matches.
	LossLabel = "Loss"
)

// pointTable maps match counts to points. Counts outside it do not score.
var pointTable = map[int]int{
	3: 30,
	4: 50,
	5: 75,
	6: 100,
	7: 150,
}

// ErrUnscoredCount is returned when a count is missing from the point table.
var ErrUnscoredCount = errors.New("match count not in point table")

// UnscoredCountError reports the symbol and count that could not be scored.
type UnscoredCountError struct {
	Symbol SymbolID
	Count  int
}

func (e *UnscoredCountError) Error() string {
	return fmt.Sprintf("slots: %d x %s has no entry in the point table", e.Count, string(e.Symbol))
}

func (e *UnscoredCountError) Unwrap() error {
	return ErrUnscoredCount
}

// PointsFor returns the points for a match of count identical symbols.
func PointsFor(count int) (int, bool) {
	p, ok := pointTable[count]
	return p, ok
}

// PointTable returns the scoring counts in ascending order with their points.
func PointTable() [][2]int {
	rows := make([][2]int, 0, len(pointTable))
	for count := MinMatch; ; count++ {
		p, ok := pointTable[count]
		if !ok {
			break
		}
		rows = append(rows, [2]int{count, p})
	}
	return rows
}

// MatchGroup is one symbol that occurred at least MinMatch times.
type MatchGroup struct {
	Symbol SymbolID
	Count  int
	Points int
}

// SpinOutcome is the result of resolving one settled grid.
type SpinOutcome struct {
	Groups []MatchGroup
	Delta  int
	Label  string
}

// Won reports whether any group matched.
func (o SpinOutcome) Won() bool {
	return len(o.Groups) > 0
}

// Matched reports whether id belongs to a winning group.
func (o SpinOutcome) Matched(id SymbolID) bool {
	for _, g := range o.Groups {
		if g.Symbol == id {
			return true
		}
	}
	return false
}

// Summary renders the outcome as a single line, e.g.
// "Match: 3 H1, 4 K - 4-symbol match".
func (o SpinOutcome) Summary() string {
	if !o.Won() {
		return "Match: " + o.Label
	}
	parts := make([]string, len(o.Groups))
	for i, g := range o.Groups {
		parts[i] = fmt.Sprintf("%d %s", g.Count, string(g.Symbol))
	}
	return fmt.Sprintf("Match: %s - %s", strings.Join(parts, ", "), o.Label)
}

// Resolve counts every symbol of a settled grid regardless of position and
// scores each one occurring at least MinMatch times. Groups are ordered by
// the first appearance of their symbol. The label follows the largest group;
// on ties the later group wins.
//
// Resolve fails with an *UnscoredCountError when a count has no table entry;
// no partial outcome is returned in that case.
func Resolve(ids []SymbolID) (SpinOutcome, error) {
	counts := make(map[SymbolID]int, len(ids))
	order := make([]SymbolID, 0, len(ids))
	for _, id := range ids {
		if counts[id] == 0 {
			order = append(order, id)
		}
		counts[id]++
	}

	var out SpinOutcome
	labelCount := 0
	for _, id := range order {
		n := counts[id]
		if n < MinMatch {
			continue
		}
		points, ok := PointsFor(n)
		if !ok {
			return SpinOutcome{}, &UnscoredCountError{Symbol: id, Count: n}
		}
		out.Groups = append(out.Groups, MatchGroup{Symbol: id, Count: n, Points: points})
		out.Delta += points
		if n >= labelCount {
			labelCount = n
		}
	}

	if !out.Won() {
		out.Delta = LossPoints
		out.Label = LossLabel
		return out, nil
	}

	out.Label = fmt.Sprintf("%d-symbol match", labelCount)
	return out, nil
}
