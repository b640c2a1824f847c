package httpserver_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	httpserver "southend_backend/internal/adapters/http_server"
	"southend_backend/internal/app"
	"southend_backend/internal/domain"
	"southend_backend/internal/storage/popupfile"
)

// ---- fakes ----

type memHotelRepo struct{ hotels map[string]domain.Hotel }

func (f *memHotelRepo) CreateHotel(ctx context.Context, h domain.Hotel) (domain.Hotel, error) {
	if h.Images == nil {
		h.Images = []string{}
	}
	f.hotels[h.Name] = h
	return h, nil
}
func (f *memHotelRepo) UpdateHotel(ctx context.Context, h domain.Hotel) (domain.Hotel, error) {
	f.hotels[h.Name] = h
	return h, nil
}
func (f *memHotelRepo) DeleteHotel(ctx context.Context, name string) error {
	if _, ok := f.hotels[name]; !ok {
		return domain.ErrNotFound
	}
	delete(f.hotels, name)
	return nil
}
func (f *memHotelRepo) GetHotel(ctx context.Context, name string) (domain.Hotel, error) {
	h, ok := f.hotels[name]
	if !ok {
		return domain.Hotel{}, domain.ErrNotFound
	}
	return h, nil
}
func (f *memHotelRepo) ListHotels(ctx context.Context) ([]domain.Hotel, error) {
	out := make([]domain.Hotel, 0, len(f.hotels))
	for _, h := range f.hotels {
		out = append(out, h)
	}
	return out, nil
}

type memTestimonialRepo struct{ items []domain.Testimonial }

func (f *memTestimonialRepo) InsertTestimonial(ctx context.Context, t domain.Testimonial) error {
	f.items = append(f.items, t)
	return nil
}
func (f *memTestimonialRepo) ListTestimonials(ctx context.Context) ([]domain.Testimonial, error) {
	return f.items, nil
}
func (f *memTestimonialRepo) DeleteTestimonial(ctx context.Context, id string) error {
	for i, t := range f.items {
		if t.ID == id {
			f.items = append(f.items[:i], f.items[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

type noopCache struct{}

func (noopCache) Get(ctx context.Context, key string, dst any) (bool, error) { return false, nil }
func (noopCache) Set(ctx context.Context, key string, v any, ttlSec int) error {
	return nil
}
func (noopCache) Del(ctx context.Context, key string) error { return nil }

type memGateway struct {
	sent   int
	failAt int
}

func (g *memGateway) Send(ctx context.Context, m domain.Message) error {
	if g.failAt > 0 && g.sent+1 == g.failAt {
		return errors.New("relay down")
	}
	g.sent++
	return nil
}

func newTestServer(t *testing.T, gw *memGateway) *httptest.Server {
	t.Helper()
	hotels := app.NewHotelService(&memHotelRepo{hotels: map[string]domain.Hotel{}}, noopCache{}, time.Minute, false, true)
	testimonials := app.NewTestimonialService(&memTestimonialRepo{}, noopCache{}, time.Minute)
	notify := app.NewNotificationService(gw, "admin@example.com", "noreply@example.com")
	popup := popupfile.New(filepath.Join(t.TempDir(), "popup.json"))

	srv := httpserver.New(nil)
	srv.MountHandlers(&httpserver.Handlers{
		Hotels:       hotels,
		Testimonials: testimonials,
		Notify:       notify,
		Popup:        popup,
	})
	ts := httptest.NewServer(srv.Mux())
	t.Cleanup(ts.Close)
	return ts
}

func postJSON(t *testing.T, url string, body any) *http.Response {
	t.Helper()
	b, _ := json.Marshal(body)
	res, err := http.Post(url, "application/json", bytes.NewReader(b))
	if err != nil {
		t.Fatalf("POST %s: %v", url, err)
	}
	return res
}

func decodeHotel(t *testing.T, res *http.Response) (string, domain.Hotel) {
	t.Helper()
	defer res.Body.Close()
	var out struct {
		Message string       `json:"message"`
		Hotel   domain.Hotel `json:"hotel"`
	}
	if err := json.NewDecoder(res.Body).Decode(&out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	return out.Message, out.Hotel
}

// ---- tests ----

func TestUpsertEndpoint_CreateThenMerge(t *testing.T) {
	ts := newTestServer(t, &memGateway{})

	res := postJSON(t, ts.URL+"/api/hotels", map[string]any{"name": "X", "images": []string{"http://a"}})
	if res.StatusCode != http.StatusCreated {
		t.Fatalf("first POST status %d", res.StatusCode)
	}
	_, hotel := decodeHotel(t, res)
	if !reflect.DeepEqual(hotel.Images, []string{"http://a"}) {
		t.Fatalf("images after create: %v", hotel.Images)
	}

	res = postJSON(t, ts.URL+"/api/hotels", map[string]any{"name": "X", "images": []string{"http://a", "http://b"}})
	if res.StatusCode != http.StatusOK {
		t.Fatalf("second POST status %d", res.StatusCode)
	}
	msg, hotel := decodeHotel(t, res)
	if msg != "Hotel updated successfully!" {
		t.Fatalf("message: %q", msg)
	}
	if !reflect.DeepEqual(hotel.Images, []string{"http://a", "http://b"}) {
		t.Fatalf("images after merge: %v", hotel.Images)
	}
}

func TestUpsertEndpoint_SingleStringImage(t *testing.T) {
	ts := newTestServer(t, &memGateway{})

	res := postJSON(t, ts.URL+"/api/hotels", map[string]any{"name": "X", "images": "http://solo"})
	if res.StatusCode != http.StatusCreated {
		t.Fatalf("status %d", res.StatusCode)
	}
	_, hotel := decodeHotel(t, res)
	if !reflect.DeepEqual(hotel.Images, []string{"http://solo"}) {
		t.Fatalf("images: %v", hotel.Images)
	}
}

func TestGetHotel_NotFound(t *testing.T) {
	ts := newTestServer(t, &memGateway{})

	res, err := http.Get(ts.URL + "/api/hotels/Nope")
	if err != nil {
		t.Fatalf("GET: %v", err)
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusNotFound {
		t.Fatalf("status %d", res.StatusCode)
	}
}

func TestAddImages_AllDuplicateIs400(t *testing.T) {
	ts := newTestServer(t, &memGateway{})

	postJSON(t, ts.URL+"/api/hotels", map[string]any{"name": "X", "images": []string{"http://a"}}).Body.Close()

	res := postJSON(t, ts.URL+"/api/hotels/X/images", map[string]any{"images": []string{"http://a"}})
	defer res.Body.Close()
	if res.StatusCode != http.StatusBadRequest {
		t.Fatalf("status %d", res.StatusCode)
	}
}

func TestPopupRoundTrip(t *testing.T) {
	ts := newTestServer(t, &memGateway{})

	res, _ := http.Get(ts.URL + "/api/popup")
	var p domain.Popup
	_ = json.NewDecoder(res.Body).Decode(&p)
	res.Body.Close()
	if p.Active {
		t.Fatalf("expected inactive default")
	}

	postJSON(t, ts.URL+"/api/popup", map[string]any{"imageUrl": "http://cdn/p.jpg"}).Body.Close()

	res, _ = http.Get(ts.URL + "/api/popup")
	_ = json.NewDecoder(res.Body).Decode(&p)
	res.Body.Close()
	if !p.Active || p.ImageURL != "http://cdn/p.jpg" {
		t.Fatalf("expected last-set popup, got %+v", p)
	}

	req, _ := http.NewRequest(http.MethodDelete, ts.URL+"/api/popup", nil)
	dres, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("DELETE: %v", err)
	}
	dres.Body.Close()

	res, _ = http.Get(ts.URL + "/api/popup")
	_ = json.NewDecoder(res.Body).Decode(&p)
	res.Body.Close()
	if p.Active {
		t.Fatalf("expected inactive after clear, got %+v", p)
	}
}

func TestReservation_GatewayFailureIs500(t *testing.T) {
	gw := &memGateway{failAt: 2}
	ts := newTestServer(t, gw)

	res := postJSON(t, ts.URL+"/api/reservation", map[string]any{
		"name": "Ana", "email": "ana@example.com", "hotel": "Hotel SouthEnd",
		"checkIn": "2026-10-01", "checkOut": "2026-10-03", "nights": 2, "guests": 3, "adults": 2,
	})
	defer res.Body.Close()
	if res.StatusCode != http.StatusInternalServerError {
		t.Fatalf("status %d", res.StatusCode)
	}
	if gw.sent != 1 {
		t.Fatalf("expected one delivered message before failure, got %d", gw.sent)
	}
}

func TestEnquiry_MissingAddressIs400(t *testing.T) {
	gw := &memGateway{}
	ts := newTestServer(t, gw)

	res := postJSON(t, ts.URL+"/send-enquiry", map[string]any{"checkIn": "2026-10-01"})
	defer res.Body.Close()
	if res.StatusCode != http.StatusBadRequest {
		t.Fatalf("status %d", res.StatusCode)
	}
	if gw.sent != 0 {
		t.Fatalf("no sends expected, got %d", gw.sent)
	}
}

func TestTestimonialLifecycle(t *testing.T) {
	ts := newTestServer(t, &memGateway{})

	res := postJSON(t, ts.URL+"/api/testimonials", map[string]any{"author": "Ana", "text": "lovely"})
	var created struct {
		Testimonial domain.Testimonial `json:"testimonial"`
	}
	if err := json.NewDecoder(res.Body).Decode(&created); err != nil {
		t.Fatalf("decode: %v", err)
	}
	res.Body.Close()
	if res.StatusCode != http.StatusCreated || created.Testimonial.ID == "" {
		t.Fatalf("create failed: %d %+v", res.StatusCode, created)
	}

	res = postJSON(t, ts.URL+"/api/testimonials", map[string]any{"author": "Ana"})
	res.Body.Close()
	if res.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400 for missing text, got %d", res.StatusCode)
	}

	req, _ := http.NewRequest(http.MethodDelete, ts.URL+"/api/testimonials/"+created.Testimonial.ID, nil)
	dres, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("DELETE: %v", err)
	}
	dres.Body.Close()
	if dres.StatusCode != http.StatusOK {
		t.Fatalf("delete status %d", dres.StatusCode)
	}

	req, _ = http.NewRequest(http.MethodDelete, ts.URL+"/api/testimonials/"+created.Testimonial.ID, nil)
	dres, _ = http.DefaultClient.Do(req)
	dres.Body.Close()
	if dres.StatusCode != http.StatusNotFound {
		t.Fatalf("second delete status %d", dres.StatusCode)
	}
}
