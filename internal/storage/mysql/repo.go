package mysql

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"southend_backend/internal/domain"
)

func valStr(p *string) any {
	if p == nil {
		return nil
	}
	return *p
}

// imagesJSON marshals an image list, storing [] rather than null for empty.
func imagesJSON(imgs []string) string {
	if imgs == nil {
		imgs = []string{}
	}
	b, _ := json.Marshal(imgs)
	return string(b)
}

type Repo struct{ db *sql.DB }

func New(db *sql.DB) *Repo { return &Repo{db: db} }

func (r *Repo) CreateHotel(ctx context.Context, h domain.Hotel) (domain.Hotel, error) {
	_, err := r.db.ExecContext(ctx, insertHotelSQL,
		h.Name,
		valStr(h.Location),
		h.Description,
		imagesJSON(h.Images),
	)
	if err != nil {
		return domain.Hotel{}, err
	}
	return r.GetHotel(ctx, h.Name)
}

func (r *Repo) UpdateHotel(ctx context.Context, h domain.Hotel) (domain.Hotel, error) {
	_, err := r.db.ExecContext(ctx, updateHotelSQL,
		valStr(h.Location),
		h.Description,
		imagesJSON(h.Images),
		h.Name,
	)
	if err != nil {
		return domain.Hotel{}, err
	}
	// Re-read for fresh timestamps; also catches updates against a name that
	// was deleted concurrently.
	return r.GetHotel(ctx, h.Name)
}

func (r *Repo) DeleteHotel(ctx context.Context, name string) error {
	res, err := r.db.ExecContext(ctx, deleteHotelSQL, name)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *Repo) GetHotel(ctx context.Context, name string) (domain.Hotel, error) {
	row := r.db.QueryRowContext(ctx, getHotelSQL, name)
	return scanHotel(row.Scan)
}

func (r *Repo) ListHotels(ctx context.Context) ([]domain.Hotel, error) {
	rows, err := r.db.QueryContext(ctx, listHotelsSQL)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Hotel
	for rows.Next() {
		h, err := scanHotel(rows.Scan)
		if err != nil {
			return nil, err
		}
		out = append(out, h)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func scanHotel(scan func(dst ...any) error) (domain.Hotel, error) {
	var h domain.Hotel
	var loc sql.NullString
	var imgs []byte
	if err := scan(&h.ID, &h.Name, &loc, &h.Description, &imgs, &h.CreatedAt, &h.UpdatedAt); err != nil {
		if err == sql.ErrNoRows {
			return domain.Hotel{}, domain.ErrNotFound
		}
		return domain.Hotel{}, err
	}
	if loc.Valid {
		l := loc.String
		h.Location = &l
	}
	if err := json.Unmarshal(imgs, &h.Images); err != nil {
		return domain.Hotel{}, fmt.Errorf("decode images column for %q: %w", h.Name, err)
	}
	if h.Images == nil {
		h.Images = []string{}
	}
	return h, nil
}

func (r *Repo) InsertTestimonial(ctx context.Context, t domain.Testimonial) error {
	_, err := r.db.ExecContext(ctx, insertTestimonialSQL,
		t.ID,
		t.Author,
		t.Text,
		t.Avatar,
		t.Date,
	)
	return err
}

func (r *Repo) ListTestimonials(ctx context.Context) ([]domain.Testimonial, error) {
	rows, err := r.db.QueryContext(ctx, listTestimonialsSQL)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Testimonial
	for rows.Next() {
		var t domain.Testimonial
		if err := rows.Scan(&t.ID, &t.Author, &t.Text, &t.Avatar, &t.Date); err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *Repo) DeleteTestimonial(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, deleteTestimonialSQL, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrNotFound
	}
	return nil
}
