package thrones

import "context"

// API is the set of character operations the quiz and the editor rely on.
type API interface {
	// ListCharacters returns every character known to the API.
	ListCharacters(ctx context.Context) ([]Character, error)

	// GetCharacter returns the character with the given id. The id is not
	// checked against the list; unknown ids surface as ErrNotFound.
	GetCharacter(ctx context.Context, id int) (*Character, error)

	// SaveCharacter posts the update record. The response is not interpreted
	// beyond its status code.
	SaveCharacter(ctx context.Context, update CharacterUpdate) error
}
