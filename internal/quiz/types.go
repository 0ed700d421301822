package quiz

import "github.com/abhisek/thronesquiz/internal/thrones"

const (
	// NumChoices is the number of answer options per question.
	NumChoices = 4

	// WrongValue marks a decoy option.
	WrongValue = -1
)

// Option is one answer slot.
type Option struct {
	Label string
	Value int
}

// Question is a single quiz round.
type Question struct {
	// RoundID identifies the round; async results tagged with another
	// round are stale.
	RoundID     string
	Target      thrones.Character
	Options     [NumChoices]Option
	CorrectSlot int
}

// Labels returns the option labels in display order.
func (q *Question) Labels() []string {
	labels := make([]string, NumChoices)
	for i, o := range q.Options {
		labels[i] = o.Label
	}
	return labels
}

// Values returns the option values in display order.
func (q *Question) Values() []int {
	values := make([]int, NumChoices)
	for i, o := range q.Options {
		values[i] = o.Value
	}
	return values
}

// Verdict is the outcome of an answered question.
type Verdict int

const (
	Incorrect Verdict = iota
	Correct
)

func (v Verdict) String() string {
	if v == Correct {
		return "correct"
	}
	return "incorrect"
}

// Grade classifies a selected option value. Only the sign is checked: the
// correct slot is the only one carrying a non-negative value.
func Grade(value int) Verdict {
	if value < 0 {
		return Incorrect
	}
	return Correct
}
