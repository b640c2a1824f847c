// Package smtpgw sends mail through the configured SMTP relay. Calls are
// rate-limited client-side; relays like Gmail throttle bursty senders.
package smtpgw

import (
	"context"
	"time"

	mail "github.com/wneessen/go-mail"
	"golang.org/x/time/rate"

	"southend_backend/internal/adapters/observability"
	"southend_backend/internal/domain"
)

type Gateway struct {
	client *mail.Client
	rl     *rate.Limiter
}

func New(host string, port int, user, pass string, rps int) (*Gateway, error) {
	if rps <= 0 {
		rps = 2
	}
	opts := []mail.Option{
		mail.WithPort(port),
		mail.WithTimeout(20 * time.Second),
	}
	if user != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(user),
			mail.WithPassword(pass),
		)
	}
	c, err := mail.NewClient(host, opts...)
	if err != nil {
		return nil, err
	}
	return &Gateway{client: c, rl: rate.NewLimiter(rate.Limit(rps), rps)}, nil
}

func (g *Gateway) Send(ctx context.Context, m domain.Message) error {
	if err := g.rl.Wait(ctx); err != nil {
		return err
	}
	msg := mail.NewMsg()
	if err := msg.From(m.From); err != nil {
		return err
	}
	if err := msg.To(m.To); err != nil {
		return err
	}
	msg.Subject(m.Subject)
	msg.SetBodyString(mail.TypeTextHTML, m.HTML)

	start := time.Now()
	err := g.client.DialAndSendWithContext(ctx, msg)
	status := 200
	if err != nil {
		status = 500
	}
	observability.ObserveExternal("smtp", "send", status, time.Since(start))
	return err
}
