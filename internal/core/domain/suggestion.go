package domain

// Idea is a suggested family activity used to pre-fill a new event.
type Idea struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}
