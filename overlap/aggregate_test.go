package overlap

import (
	"math"
	"math/rand"
	"testing"

	"github.com/grailbio/testutil/expect"
)

func hitsToMatches(hits ...Hit) []Match {
	matches := make([]Match, len(hits))
	for i, h := range hits {
		matches[i] = Match{Query: h.Query, Subject: h.Subject}
	}
	return matches
}

func TestCountMatches(t *testing.T) {
	matches := hitsToMatches(Hit{0, 0}, Hit{0, 1}, Hit{1, 2})
	expect.EQ(t, CountMatches(matches, 2, false, nil), []int{2, 1})

	// Unmatched query breakends still get a (zero) slot.
	expect.EQ(t, CountMatches(matches, 4, false, nil), []int{2, 1, 0, 0})
	expect.EQ(t, CountMatches(nil, 3, false, nil), []int{0, 0, 0})
}

func TestCountMatchesBestOnly(t *testing.T) {
	scores := []float64{5, 9}
	score := func(q int) float64 { return scores[q] }

	// Both queries hit subject 0; the higher-scoring query claims it.
	matches := hitsToMatches(Hit{0, 0}, Hit{1, 0})
	expect.EQ(t, CountMatches(matches, 2, true, score), []int{0, 1})

	// Tied scores break toward the lower query index.
	tied := func(int) float64 { return 7 }
	expect.EQ(t, CountMatches(matches, 2, true, tied), []int{1, 0})

	// NaN scores lose to any real score.
	scores = []float64{math.NaN(), 1}
	expect.EQ(t, CountMatches(matches, 2, true, score), []int{0, 1})
}

func TestCountMatchesBestOnlyUnique(t *testing.T) {
	rng := rand.New(rand.NewSource(4))
	var matches []Match
	subjects := make(map[int]bool)
	for i := 0; i < 200; i++ {
		m := Match{Query: rng.Intn(20), Subject: rng.Intn(30)}
		matches = append(matches, m)
		subjects[m.Subject] = true
	}
	scores := make([]float64, 20)
	for i := range scores {
		scores[i] = rng.Float64()
	}
	counts := CountMatches(matches, 20, true, func(q int) float64 { return scores[q] })

	// Each subject contributes to at most one query, so the counts sum to
	// the number of distinct subjects.
	total := 0
	for _, c := range counts {
		total += c
	}
	expect.EQ(t, total, len(subjects))
}
