package domain

import "context"

type HotelRepository interface {
	// Write paths
	CreateHotel(ctx context.Context, h Hotel) (Hotel, error)
	UpdateHotel(ctx context.Context, h Hotel) (Hotel, error)
	DeleteHotel(ctx context.Context, name string) error

	// Read paths
	GetHotel(ctx context.Context, name string) (Hotel, error)
	ListHotels(ctx context.Context) ([]Hotel, error)
}

type TestimonialRepository interface {
	InsertTestimonial(ctx context.Context, t Testimonial) error
	ListTestimonials(ctx context.Context) ([]Testimonial, error)
	DeleteTestimonial(ctx context.Context, id string) error
}

// PopupStore persists the single popup record. Get never fails on absence;
// it reports the inactive default instead.
type PopupStore interface {
	Get() (Popup, error)
	Set(p Popup) error
	Clear() error
}

// Message is one outbound mail. Bodies are HTML.
type Message struct {
	From    string
	To      string
	Subject string
	HTML    string
}

type MailGateway interface {
	Send(ctx context.Context, m Message) error
}

type Cache interface {
	Get(ctx context.Context, key string, dst any) (bool, error)
	Set(ctx context.Context, key string, v any, ttlSec int) error
	Del(ctx context.Context, key string) error
}
