package thrones

import "strconv"

// Character is a single entry of the Thrones API character list.
type Character struct {
	ID        int    `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	FullName  string `json:"fullName"`
	Title     string `json:"title,omitempty"`
	Family    string `json:"family,omitempty"`
	Image     string `json:"image,omitempty"`
	ImageURL  string `json:"imageUrl"`
}

// CharacterUpdate is the payload posted to the update endpoint.
// Fields are sent exactly as entered, so the id travels as a string.
type CharacterUpdate struct {
	ID        string `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	FullName  string `json:"fullName"`
	ImageURL  string `json:"imageUrl"`
}

// UpdateFrom builds an update record carrying the character's current fields.
func UpdateFrom(c Character) CharacterUpdate {
	return CharacterUpdate{
		ID:        strconv.Itoa(c.ID),
		FirstName: c.FirstName,
		LastName:  c.LastName,
		FullName:  c.FullName,
		ImageURL:  c.ImageURL,
	}
}
