package quiz

import (
	"image"

	"github.com/abhisek/thronesquiz/internal/thrones"
)

// charactersLoadedMsg carries the character list for the next round.
// Owner is the screen instance that asked for it.
type charactersLoadedMsg struct {
	Owner      string
	Characters []thrones.Character
	Err        error
}

// portraitLoadedMsg carries the image for one round.
type portraitLoadedMsg struct {
	RoundID string
	Image   image.Image
	Err     error
}
