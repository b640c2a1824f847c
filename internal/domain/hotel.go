package domain

import "time"

type Hotel struct {
	ID          int64     `json:"-"`
	Name        string    `json:"name"`
	Location    *string   `json:"location,omitempty"`
	Description string    `json:"description"`
	Images      []string  `json:"images"`
	CreatedAt   time.Time `json:"-"`
	UpdatedAt   time.Time `json:"-"`
}

// AllowedHotelNames is the fixed set accepted when strict name checking is on.
var AllowedHotelNames = []string{
	"Hotel SouthEnd",
	"Hotel Surf Ride Digha",
	"Hotel Rupsagar",
	"Mahamaya Dham",
}

func NameAllowed(name string) bool {
	for _, n := range AllowedHotelNames {
		if n == name {
			return true
		}
	}
	return false
}
