package quiz

import "github.com/abhisek/thronesquiz/internal/thrones"

// Game is the quiz state owned by the application: the score and the
// question currently on screen. It is not safe for concurrent use; the UI
// loop is its only owner.
type Game struct {
	gen      *Generator
	score    Score
	question *Question
}

// NewGame creates a Game using gen for question generation.
func NewGame(gen *Generator) *Game {
	if gen == nil {
		gen = NewGenerator(nil)
	}
	return &Game{gen: gen}
}

// Reset starts a new game: both counters go to zero and the current
// question is discarded.
func (g *Game) Reset() {
	g.score.Reset()
	g.question = nil
}

// Score returns a copy of the current score.
func (g *Game) Score() Score {
	return g.score
}

// Question returns the question on screen, or nil.
func (g *Game) Question() *Question {
	return g.question
}

// NextRound replaces the current question with a fresh one.
func (g *Game) NextRound(characters []thrones.Character) (*Question, error) {
	q, err := g.gen.NewQuestion(characters)
	if err != nil {
		return nil, err
	}
	g.question = q
	return q, nil
}

// Answer records the selected option value. ok=false means nothing was
// selected; the score is left alone and answered is false.
func (g *Game) Answer(value int, ok bool) (verdict Verdict, answered bool) {
	if !ok {
		return Incorrect, false
	}
	verdict = Grade(value)
	g.score.Record(verdict)
	return verdict, true
}
