package quiz

import "fmt"

type Outcome string

const (
	OutcomeYounger Outcome = "younger"
	OutcomeOlder   Outcome = "older"
	OutcomeEqual   Outcome = "equal"
)

// Result is the final scoring of a completed run. Pure data, no transport.
type Result struct {
	PassportAge int
	Total       int
	BioAge      int
}

func Score(passportAge int, scores []int) Result {
	total := 0
	for _, v := range scores {
		total += v
	}
	return Result{
		PassportAge: passportAge,
		Total:       total,
		BioAge:      passportAge + total,
	}
}

func (r Result) Outcome() Outcome {
	switch {
	case r.BioAge < r.PassportAge:
		return OutcomeYounger
	case r.BioAge > r.PassportAge:
		return OutcomeOlder
	default:
		return OutcomeEqual
	}
}

// SignedTotal renders the point sum with an explicit sign: "+3", "+0", "-15".
func (r Result) SignedTotal() string {
	if r.Total >= 0 {
		return fmt.Sprintf("+%d", r.Total)
	}
	return fmt.Sprintf("%d", r.Total)
}

func (r Result) conclusion() string {
	switch r.Outcome() {
	case OutcomeYounger:
		return msgResultYounger
	case OutcomeOlder:
		return msgResultOlder
	default:
		return msgResultEqual
	}
}

// Format builds the full result message shown to the user.
func (r Result) Format() string {
	return fmt.Sprintf(msgResult, r.PassportAge, r.SignedTotal(), r.BioAge, r.conclusion())
}
