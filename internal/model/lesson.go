package model

// Lesson describes one mounted tutorial.
type Lesson struct {
	Slug   string `json:"slug"`
	Title  string `json:"title"`
	Prefix string `json:"prefix"`
}
