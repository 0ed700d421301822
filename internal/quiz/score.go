package quiz

// Score counts answered questions. The zero value is a fresh score.
type Score struct {
	Correct   int
	Incorrect int
}

// Reset zeroes both counters.
func (s *Score) Reset() {
	s.Correct = 0
	s.Incorrect = 0
}

func (s *Score) RecordCorrect() {
	s.Correct++
}

func (s *Score) RecordIncorrect() {
	s.Incorrect++
}

// Record increments the counter matching v.
func (s *Score) Record(v Verdict) {
	if v == Correct {
		s.RecordCorrect()
		return
	}
	s.RecordIncorrect()
}

// Total returns the number of answered questions.
func (s Score) Total() int {
	return s.Correct + s.Incorrect
}

// Accuracy returns the share of correct answers in [0, 1]; 0 when nothing
// has been answered.
func (s Score) Accuracy() float64 {
	if s.Total() == 0 {
		return 0
	}
	return float64(s.Correct) / float64(s.Total())
}
