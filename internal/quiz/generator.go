package quiz

import (
	"errors"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/thronesquiz/internal/thrones"
)

// ErrNoCharacters is returned when a question is requested from an empty list.
var ErrNoCharacters = errors.New("no characters to build a question from")

// Generator builds quiz questions from a character list.
type Generator struct {
	rng *rand.Rand
}

// NewGenerator creates a Generator drawing from src. A nil src seeds from the
// clock.
func NewGenerator(src rand.Source) *Generator {
	if src == nil {
		now := uint64(time.Now().UnixNano())
		src = rand.NewPCG(now, now>>32|1)
	}
	return &Generator{rng: rand.New(src)}
}

// NewQuestion picks a target and three decoys.
//
// The target is drawn uniformly; earlier targets are not excluded. The
// correct slot is drawn uniformly from the four positions. Each decoy is an
// independent draw with replacement, so a decoy may repeat the target or
// another decoy, and a single-character list yields four identical labels.
func (g *Generator) NewQuestion(characters []thrones.Character) (*Question, error) {
	if len(characters) == 0 {
		return nil, ErrNoCharacters
	}

	target := characters[g.rng.IntN(len(characters))]
	correctSlot := g.rng.IntN(NumChoices)

	q := &Question{
		RoundID:     uuid.NewString(),
		Target:      target,
		CorrectSlot: correctSlot,
	}
	for i := range NumChoices {
		if i == correctSlot {
			q.Options[i] = Option{Label: target.FullName, Value: target.ID}
			continue
		}
		decoy := characters[g.rng.IntN(len(characters))]
		q.Options[i] = Option{Label: decoy.FullName, Value: WrongValue}
	}

	return q, nil
}
