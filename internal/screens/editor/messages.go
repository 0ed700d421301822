package editor

import (
	"image"

	"github.com/abhisek/thronesquiz/internal/thrones"
)

// characterLoadedMsg carries the character being edited.
type characterLoadedMsg struct {
	Owner     string
	Character *thrones.Character
	Err       error
}

// portraitLoadedMsg carries the character's image.
type portraitLoadedMsg struct {
	Owner string
	Image image.Image
	Err   error
}

// saveDoneMsg reports the outcome of a save.
type saveDoneMsg struct {
	Owner string
	Err   error
}
