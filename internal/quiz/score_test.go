package quiz

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScoreIdentity(t *testing.T) {
	tests := []struct {
		name    string
		age     int
		scores  []int
		total   int
		bioAge  int
		outcome Outcome
	}{
		{"all zeros", 30, make([]int, 20), 0, 30, OutcomeEqual},
		{"negative sum", 40, []int{-2, -2, -1, -1, -2, -1, -1, -1, -1, -2, -1, 0, 0, 0, 0, 0, 0, 0, 0, 0}, -15, 25, OutcomeYounger},
		{"positive sum", 25, []int{3, 3, 2, 2}, 10, 35, OutcomeOlder},
		{"mixed cancels out", 50, []int{-3, 1, 2}, 0, 50, OutcomeEqual},
		{"single point older", 16, []int{1}, 1, 17, OutcomeOlder},
		{"single point younger", 99, []int{-1}, -1, 98, OutcomeYounger},
		{"no answers", 60, nil, 0, 60, OutcomeEqual},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := Score(tt.age, tt.scores)
			assert.Equal(t, tt.total, r.Total)
			assert.Equal(t, tt.bioAge, r.BioAge)
			assert.Equal(t, tt.outcome, r.Outcome())
		})
	}
}

func TestSignedTotal(t *testing.T) {
	assert.Equal(t, "+0", Result{Total: 0}.SignedTotal())
	assert.Equal(t, "+7", Result{Total: 7}.SignedTotal())
	assert.Equal(t, "-15", Result{Total: -15}.SignedTotal())
}

func TestFormatIncludesAgesAndConclusion(t *testing.T) {
	r := Score(40, []int{-10, -5})
	text := r.Format()
	assert.Contains(t, text, "паспортный возраст: 40 лет")
	assert.Contains(t, text, "Сумма набранных баллов: -15")
	assert.Contains(t, text, "биологический возраст: 25 лет")
	assert.Contains(t, text, msgResultYounger)
	assert.Contains(t, text, "/test")
}
