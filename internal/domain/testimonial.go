package domain

import "time"

// DefaultAvatar is served when a testimonial is submitted without one.
const DefaultAvatar = "./images/testimonial.jpg"

type Testimonial struct {
	ID     string    `json:"id"`
	Author string    `json:"author"`
	Text   string    `json:"text"`
	Avatar string    `json:"avatar"`
	Date   time.Time `json:"date"`
}

// Popup is the single process-wide promotional-image setting, persisted as
// one flat JSON file. Reading when nothing was ever set yields {active:false}.
type Popup struct {
	Active   bool   `json:"active"`
	ImageURL string `json:"imageUrl,omitempty"`
}
