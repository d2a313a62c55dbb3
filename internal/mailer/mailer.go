// Package mailer sends transactional mail over plain SMTP. Send failures are
// logged and swallowed: mail is best-effort and must never fail a request.
package mailer

import (
	"fmt"
	"net/smtp"
	"strings"
	"sync"

	"github.com/colletro/colletro-backend/internal/config"
	"github.com/colletro/colletro-backend/pkg/logger"
)

type client struct {
	host string
	port string
	user string
	pass string
	from string
}

var (
	instance *client
	once     sync.Once
)

// get lazily builds the SMTP client from config. Returns nil when SMTP is
// not configured.
func get() *client {
	once.Do(func() {
		cfg := config.AppConfig
		if cfg == nil || cfg.SMTPHost == "" || cfg.SMTPUser == "" {
			logger.Warn().Msg("SMTP not configured, mail disabled")
			return
		}
		port := cfg.SMTPPort
		if port == "" {
			port = "587"
		}
		from := cfg.MailFrom
		if from == "" {
			from = "noreply@colletro.app"
		}
		instance = &client{
			host: cfg.SMTPHost,
			port: port,
			user: cfg.SMTPUser,
			pass: cfg.SMTPPassword,
			from: from,
		}
	})
	return instance
}

func send(recipient, subject, body string) {
	c := get()
	if c == nil {
		return
	}

	contentType := "text/plain; charset=UTF-8"
	if strings.Contains(strings.ToLower(body), "<html>") || strings.Contains(strings.ToLower(body), "<p>") {
		contentType = "text/html; charset=UTF-8"
	}

	message := []byte(fmt.Sprintf("To: %s\r\n"+
		"From: %s\r\n"+
		"Subject: %s\r\n"+
		"Content-Type: %s\r\n"+
		"\r\n"+
		"%s\r\n", recipient, c.from, subject, contentType, body))

	auth := smtp.PlainAuth("", c.user, c.pass, c.host)
	if err := smtp.SendMail(c.host+":"+c.port, auth, c.from, []string{recipient}, message); err != nil {
		logger.Error().Err(err).Str("to", recipient).Str("subject", subject).Msg("Failed to send mail")
		return
	}
	logger.Info().Str("to", recipient).Str("subject", subject).Msg("Mail sent")
}

// SendVerification mails the email-verification link
func SendVerification(recipient, name, token string) {
	frontend := config.AppConfig.FrontendURL
	body := fmt.Sprintf("<p>Hi %s,</p><p>Welcome to Colletro! Please verify your email address by clicking the link below:</p><p><a href=\"%s/verify?token=%s\">Verify my email</a></p>", name, frontend, token)
	go send(recipient, "Verify your Colletro account", body)
}

// SendWishlistShared notifies a recipient that a wishlist was shared with them
func SendWishlistShared(recipient, ownerName, shareToken string) {
	frontend := config.AppConfig.FrontendURL
	body := fmt.Sprintf("<p>%s shared their Colletro wishlist with you:</p><p><a href=\"%s/wishlist/shared/%s\">View wishlist</a></p>", ownerName, frontend, shareToken)
	go send(recipient, ownerName+" shared a wishlist with you", body)
}
