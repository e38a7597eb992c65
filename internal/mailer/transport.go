package mailer

import (
	"crypto/tls"
	"net/smtp"

	"github.com/Jnyanu18/portfolio/internal/config"

	"github.com/jordan-wright/email"
)

// Transport hands a composed message to an outbound relay for delivery.
type Transport interface {
	Send(msg *email.Email) error
}

// SMTPTransport delivers messages over a single configured SMTP relay.
type SMTPTransport struct {
	addr string
	host string
	auth smtp.Auth
	ssl  bool
}

// NewSMTPTransport builds the transport from configuration. The
// EMAIL_SERVICE=gmail preset selects Gmail's relay; otherwise the
// generic SMTP host and port are used.
func NewSMTPTransport(cfg *config.Config) *SMTPTransport {
	addr, host := cfg.SMTPAddr()
	return &SMTPTransport{
		addr: addr,
		host: host,
		auth: smtp.PlainAuth("", cfg.EmailUser, cfg.EmailPass, host),
		ssl:  cfg.SMTPSecure,
	}
}

func (t *SMTPTransport) Send(msg *email.Email) error {
	if t.ssl {
		return msg.SendWithTLS(t.addr, t.auth, &tls.Config{ServerName: t.host})
	}
	return msg.Send(t.addr, t.auth)
}
