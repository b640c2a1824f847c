package app

import (
	"context"
	"fmt"
	"strings"

	"southend_backend/internal/domain"
)

// NotificationService builds the transactional emails for the website forms
// and dispatches them through the mail gateway. Each trigger sends the admin
// message first, then the acknowledgment to the submitter; the first failed
// send aborts and the whole call fails. There is no retry and no
// partial-success reporting.
type NotificationService struct {
	gw    domain.MailGateway
	admin string
	from  string
}

func NewNotificationService(gw domain.MailGateway, adminAddr, fromAddr string) *NotificationService {
	return &NotificationService{gw: gw, admin: adminAddr, from: fromAddr}
}

type EnquiryInput struct {
	CheckIn  string `json:"checkIn"`
	CheckOut string `json:"checkOut"`
	Adults   int    `json:"adults"`
	Children int    `json:"children"`
	// Phone carries the submitter's email address; the form field kept its
	// historical name.
	Phone string `json:"phone"`
}

func (s *NotificationService) SendEnquiry(ctx context.Context, in EnquiryInput) error {
	if strings.TrimSpace(in.Phone) == "" {
		return fmt.Errorf("%w: user email is required", domain.ErrValidation)
	}
	admin := domain.Message{
		From:    s.from,
		To:      s.admin,
		Subject: "New Enquiry Received from Website",
		HTML: fmt.Sprintf(`<h2>New Enquiry Received</h2>
<p>Here are the details:</p>
<ul>
  <li><b>Check-In:</b> %s</li>
  <li><b>Check-Out:</b> %s</li>
  <li><b>Adults:</b> %d</li>
  <li><b>Children:</b> %d</li>
  <li><b>User Email:</b> %s</li>
</ul>
<p>— This enquiry was submitted via your website form.</p>`,
			in.CheckIn, in.CheckOut, in.Adults, in.Children, in.Phone),
	}
	user := domain.Message{
		From:    s.from,
		To:      in.Phone,
		Subject: "Thank You for Your Enquiry",
		HTML: fmt.Sprintf(`<h2>Thank you for reaching out!</h2>
<p>We have received your enquiry with the following details:</p>
<ul>
  <li><b>Check-In:</b> %s</li>
  <li><b>Check-Out:</b> %s</li>
  <li><b>Adults:</b> %d</li>
  <li><b>Children:</b> %d</li>
</ul>
<p>Our team will contact you shortly.</p>
<br>
<p>— Team Southend Group</p>`,
			in.CheckIn, in.CheckOut, in.Adults, in.Children),
	}
	return s.dispatch(ctx, admin, user)
}

type ContactInput struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

func (s *NotificationService) SendContact(ctx context.Context, in ContactInput) error {
	if strings.TrimSpace(in.Name) == "" || strings.TrimSpace(in.Email) == "" || strings.TrimSpace(in.Message) == "" {
		return fmt.Errorf("%w: all fields are required", domain.ErrValidation)
	}
	admin := domain.Message{
		From:    s.from,
		To:      s.admin,
		Subject: fmt.Sprintf("New Message from %s", in.Name),
		HTML: fmt.Sprintf(`<h2>New Contact Message</h2>
<p><b>Name:</b> %s</p>
<p><b>Email:</b> %s</p>
<p><b>Message:</b></p>
<p>%s</p>`,
			in.Name, in.Email, in.Message),
	}
	user := domain.Message{
		From:    s.from,
		To:      in.Email,
		Subject: "Thank You for Contacting Us!",
		HTML: fmt.Sprintf(`<h2>Hello %s,</h2>
<p>Thank you for reaching out! We have received your message.</p>
<p>Our team will contact you shortly.</p>
<br>
<p>— Team Southend Group</p>`,
			in.Name),
	}
	return s.dispatch(ctx, admin, user)
}

type DetailedContactInput struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Message   string `json:"message"`
}

func (s *NotificationService) SendDetailedContact(ctx context.Context, in DetailedContactInput) error {
	if strings.TrimSpace(in.FirstName) == "" || strings.TrimSpace(in.LastName) == "" ||
		strings.TrimSpace(in.Email) == "" || strings.TrimSpace(in.Message) == "" {
		return fmt.Errorf("%w: please fill all required fields", domain.ErrValidation)
	}
	phone := in.Phone
	if strings.TrimSpace(phone) == "" {
		phone = "Not provided"
	}
	admin := domain.Message{
		From:    s.from,
		To:      s.admin,
		Subject: fmt.Sprintf("New Contact Message from %s %s", in.FirstName, in.LastName),
		HTML: fmt.Sprintf(`<h2>New Contact Form Message</h2>
<ul>
  <li><b>Name:</b> %s %s</li>
  <li><b>Email:</b> %s</li>
  <li><b>Phone:</b> %s</li>
</ul>
<p><b>Message:</b></p>
<p>%s</p>
<br>
<p>— Sent via Website Contact Form</p>`,
			in.FirstName, in.LastName, in.Email, phone, in.Message),
	}
	user := domain.Message{
		From:    s.from,
		To:      in.Email,
		Subject: "Thank You for Contacting Us!",
		HTML: fmt.Sprintf(`<h2>Hello %s,</h2>
<p>Thank you for reaching out! We have received your message.</p>
<p>Our team will contact you shortly.</p>
<br>
<p>— Team Southend Group</p>`,
			in.FirstName),
	}
	return s.dispatch(ctx, admin, user)
}

type ReservationInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Hotel    string `json:"hotel"`
	CheckIn  string `json:"checkIn"`
	CheckOut string `json:"checkOut"`
	Nights   int    `json:"nights"`
	Guests   int    `json:"guests"`
	Adults   int    `json:"adults"`
}

func (s *NotificationService) SendReservation(ctx context.Context, in ReservationInput) error {
	if strings.TrimSpace(in.Name) == "" || strings.TrimSpace(in.Email) == "" {
		return fmt.Errorf("%w: name and email are required", domain.ErrValidation)
	}
	admin := domain.Message{
		From:    s.from,
		To:      s.admin,
		Subject: fmt.Sprintf("New Reservation - %s", in.Hotel),
		HTML: fmt.Sprintf(`<h2>New Reservation Request</h2>
<ul>
  <li><b>Name:</b> %s</li>
  <li><b>Email:</b> %s</li>
  <li><b>Phone:</b> %s</li>
  <li><b>Hotel:</b> %s</li>
  <li><b>Check-In:</b> %s</li>
  <li><b>Check-Out:</b> %s</li>
  <li><b>Nights:</b> %d</li>
  <li><b>Guests:</b> %d (Adults: %d)</li>
</ul>`,
			in.Name, in.Email, in.Phone, in.Hotel, in.CheckIn, in.CheckOut, in.Nights, in.Guests, in.Adults),
	}
	user := domain.Message{
		From:    s.from,
		To:      in.Email,
		Subject: fmt.Sprintf("Your Reservation at %s is Confirmed", in.Hotel),
		HTML: fmt.Sprintf(`<h2>Reservation Confirmed!</h2>
<p>Dear %s,</p>
<p>Thank you for booking with us. Here are your details:</p>
<ul>
  <li><b>Hotel:</b> %s</li>
  <li><b>Check-In:</b> %s</li>
  <li><b>Check-Out:</b> %s</li>
  <li><b>Nights:</b> %d</li>
  <li><b>Guests:</b> %d (Adults: %d)</li>
</ul>
<p>We look forward to welcoming you!</p>`,
			in.Name, in.Hotel, in.CheckIn, in.CheckOut, in.Nights, in.Guests, in.Adults),
	}
	return s.dispatch(ctx, admin, user)
}

func (s *NotificationService) dispatch(ctx context.Context, msgs ...domain.Message) error {
	for _, m := range msgs {
		if err := s.gw.Send(ctx, m); err != nil {
			return err
		}
	}
	return nil
}
