package httpserver

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"southend_backend/internal/app"
	"southend_backend/internal/domain"
)

type Handlers struct {
	Hotels       *app.HotelService
	Testimonials *app.TestimonialService
	Notify       *app.NotificationService
	Popup        domain.PopupStore
}

type problem struct {
	Type   string `json:"type"`
	Title  string `json:"title"`
	Status int    `json:"status"`
	Detail string `json:"detail,omitempty"`
}

func (s *Server) MountHandlers(h *Handlers) {
	s.mux.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200); _, _ = w.Write([]byte("ok")) })

	s.mux.Route("/api/hotels", func(r chi.Router) {
		r.Get("/", h.listHotels)
		r.Post("/", h.upsertHotel)
		r.Get("/{name}", h.getHotel)
		r.Put("/{name}", h.upsertHotelByName)
		r.Delete("/{name}", h.deleteHotel)
		r.Post("/{name}/images", h.addImages)
		r.Delete("/{name}/images", h.removeImage)
		r.Put("/{name}/description", h.updateDescription)
	})

	s.mux.Route("/api/testimonials", func(r chi.Router) {
		r.Get("/", h.listTestimonials)
		r.Post("/", h.createTestimonial)
		r.Delete("/{id}", h.deleteTestimonial)
	})

	s.mux.Get("/api/popup", h.getPopup)
	s.mux.Post("/api/popup", h.setPopup)
	s.mux.Delete("/api/popup", h.clearPopup)

	s.mux.Post("/send-enquiry", h.sendEnquiry)
	s.mux.Post("/send-mail", h.sendContact)
	s.mux.Post("/send-contact-message", h.sendDetailedContact)
	s.mux.Post("/api/reservation", h.sendReservation)
}

// ---- response helpers ----

func writeProblem(w http.ResponseWriter, status int, title, detail string) {
	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(problem{Type: "about:blank", Title: title, Status: status, Detail: detail}); err != nil {
		log.Error().Err(err).Msg("write JSON problem response failed")
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("write JSON response failed")
	}
}

// writeServiceError maps domain sentinels to statuses; everything unmatched
// is a dependency failure.
func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		writeProblem(w, http.StatusNotFound, "Not Found", err.Error())
	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrInvalidName),
		errors.Is(err, domain.ErrNoValidImages),
		errors.Is(err, domain.ErrAllDuplicate):
		writeProblem(w, http.StatusBadRequest, "Bad Request", err.Error())
	default:
		log.Error().Err(err).Msg("request failed")
		writeProblem(w, http.StatusInternalServerError, "Internal Server Error", "dependency failure")
	}
}

func decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeProblem(w, http.StatusBadRequest, "Bad Request", "invalid JSON body")
		return false
	}
	return true
}

// ---- hotels ----

type hotelPayload struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Location    string          `json:"location"`
	Images      json.RawMessage `json:"images"`
}

// imageList accepts a JSON array, a single string, or a mixed array; anything
// that is not a string is discarded.
func imageList(raw json.RawMessage) []string {
	if len(raw) == 0 {
		return nil
	}
	var one string
	if err := json.Unmarshal(raw, &one); err == nil {
		return []string{one}
	}
	var many []any
	if err := json.Unmarshal(raw, &many); err != nil {
		return nil
	}
	out := make([]string, 0, len(many))
	for _, v := range many {
		if s, ok := v.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

func (h *Handlers) listHotels(w http.ResponseWriter, r *http.Request) {
	hotels, err := h.Hotels.List(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if hotels == nil {
		hotels = []domain.Hotel{}
	}
	writeJSON(w, http.StatusOK, hotels)
}

func (h *Handlers) getHotel(w http.ResponseWriter, r *http.Request) {
	hotel, err := h.Hotels.Get(r.Context(), chi.URLParam(r, "name"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, hotel)
}

func (h *Handlers) upsertHotel(w http.ResponseWriter, r *http.Request) {
	var p hotelPayload
	if !decode(w, r, &p) {
		return
	}
	h.upsert(w, r, p)
}

func (h *Handlers) upsertHotelByName(w http.ResponseWriter, r *http.Request) {
	var p hotelPayload
	if !decode(w, r, &p) {
		return
	}
	p.Name = chi.URLParam(r, "name")
	h.upsert(w, r, p)
}

func (h *Handlers) upsert(w http.ResponseWriter, r *http.Request, p hotelPayload) {
	hotel, created, err := h.Hotels.Upsert(r.Context(), app.UpsertInput{
		Name:        p.Name,
		Description: p.Description,
		Location:    p.Location,
		Images:      imageList(p.Images),
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}
	status, msg := http.StatusOK, "Hotel updated successfully!"
	if created {
		status, msg = http.StatusCreated, "Hotel added successfully!"
	}
	writeJSON(w, status, map[string]any{"message": msg, "hotel": hotel})
}

func (h *Handlers) deleteHotel(w http.ResponseWriter, r *http.Request) {
	if err := h.Hotels.Delete(r.Context(), chi.URLParam(r, "name")); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"message": "Hotel deleted successfully!"})
}

func (h *Handlers) addImages(w http.ResponseWriter, r *http.Request) {
	var p struct {
		Images json.RawMessage `json:"images"`
	}
	if !decode(w, r, &p) {
		return
	}
	hotel, added, err := h.Hotels.AddImages(r.Context(), chi.URLParam(r, "name"), imageList(p.Images))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"message":     fmt.Sprintf("%d image(s) added successfully!", len(added)),
		"hotel":       hotel,
		"addedImages": added,
	})
}

func (h *Handlers) removeImage(w http.ResponseWriter, r *http.Request) {
	var p struct {
		ImageURL string `json:"imageUrl"`
	}
	if !decode(w, r, &p) {
		return
	}
	hotel, err := h.Hotels.RemoveImage(r.Context(), chi.URLParam(r, "name"), p.ImageURL)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"message": "Image deleted successfully!", "hotel": hotel})
}

func (h *Handlers) updateDescription(w http.ResponseWriter, r *http.Request) {
	var p struct {
		Description string `json:"description"`
	}
	if !decode(w, r, &p) {
		return
	}
	hotel, err := h.Hotels.UpdateDescription(r.Context(), chi.URLParam(r, "name"), p.Description)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"message": "Description updated successfully!", "hotel": hotel})
}

// ---- testimonials ----

func (h *Handlers) listTestimonials(w http.ResponseWriter, r *http.Request) {
	ts, err := h.Testimonials.List(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if ts == nil {
		ts = []domain.Testimonial{}
	}
	writeJSON(w, http.StatusOK, ts)
}

func (h *Handlers) createTestimonial(w http.ResponseWriter, r *http.Request) {
	var p struct {
		Author string `json:"author"`
		Text   string `json:"text"`
	}
	if !decode(w, r, &p) {
		return
	}
	t, err := h.Testimonials.Create(r.Context(), p.Author, p.Text)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{"message": "Testimonial added successfully!", "testimonial": t})
}

func (h *Handlers) deleteTestimonial(w http.ResponseWriter, r *http.Request) {
	if err := h.Testimonials.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"message": "Testimonial deleted successfully!"})
}

// ---- popup ----

func (h *Handlers) getPopup(w http.ResponseWriter, r *http.Request) {
	p, err := h.Popup.Get()
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (h *Handlers) setPopup(w http.ResponseWriter, r *http.Request) {
	var p struct {
		ImageURL string `json:"imageUrl"`
	}
	if !decode(w, r, &p) {
		return
	}
	if p.ImageURL == "" {
		writeProblem(w, http.StatusBadRequest, "Bad Request", "image URL is required")
		return
	}
	popup := domain.Popup{Active: true, ImageURL: p.ImageURL}
	if err := h.Popup.Set(popup); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"message":  "Popup image added successfully!",
		"active":   popup.Active,
		"imageUrl": popup.ImageURL,
	})
}

func (h *Handlers) clearPopup(w http.ResponseWriter, r *http.Request) {
	if err := h.Popup.Clear(); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"message": "Popup removed successfully!"})
}

// ---- notifications ----

func (h *Handlers) sendEnquiry(w http.ResponseWriter, r *http.Request) {
	var in app.EnquiryInput
	if !decode(w, r, &in) {
		return
	}
	h.sendMail(w, r, func() error { return h.Notify.SendEnquiry(r.Context(), in) }, "Emails sent to admin and user successfully!")
}

func (h *Handlers) sendContact(w http.ResponseWriter, r *http.Request) {
	var in app.ContactInput
	if !decode(w, r, &in) {
		return
	}
	h.sendMail(w, r, func() error { return h.Notify.SendContact(r.Context(), in) }, "Message sent successfully!")
}

func (h *Handlers) sendDetailedContact(w http.ResponseWriter, r *http.Request) {
	var in app.DetailedContactInput
	if !decode(w, r, &in) {
		return
	}
	h.sendMail(w, r, func() error { return h.Notify.SendDetailedContact(r.Context(), in) }, "Emails sent successfully!")
}

func (h *Handlers) sendReservation(w http.ResponseWriter, r *http.Request) {
	var in app.ReservationInput
	if !decode(w, r, &in) {
		return
	}
	h.sendMail(w, r, func() error { return h.Notify.SendReservation(r.Context(), in) }, "Emails sent successfully")
}

func (h *Handlers) sendMail(w http.ResponseWriter, r *http.Request, send func() error, okMsg string) {
	if err := send(); err != nil {
		if errors.Is(err, domain.ErrValidation) {
			writeProblem(w, http.StatusBadRequest, "Bad Request", err.Error())
			return
		}
		log.Error().Err(err).Str("route", r.URL.Path).Msg("mail dispatch failed")
		writeProblem(w, http.StatusInternalServerError, "Internal Server Error", "email sending failed")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true, "message": okMsg})
}
