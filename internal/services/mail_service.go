// services/mail_service.go
package services

import (
	"bytes"
	"context"
	"crypto/tls"
	"fmt"
	"html/template"
	"io"
	"mime"
	"net"
	"net/smtp"
	"strings"
	texttemplate "text/template"
	"time"

	"go.uber.org/zap"

	"ait/pkg/metrics"
)

type IMailService interface {
	Send(ctx context.Context, mail OutgoingMail) error
	Backend() string
}

// OutgoingMail is one message. ReplyTo carries the visitor's address; the envelope sender is
// always the configured From, since relays refuse to send as arbitrary third parties.
type OutgoingMail struct {
	To          []string
	Subject     string
	Body        string
	ReplyTo     string
	ReplyToName string
}

// SMTPConfig holds your SMTP + branding config.
type SMTPConfig struct {
	Host       string // e.g. "smtp.gmail.com"
	Port       int    // e.g. 587 (STARTTLS) or 465 (SMTPS)
	Username   string // SMTP username / login
	Password   string // SMTP password / app password
	From       string // envelope from, e.g. "no-reply@yourapp.com"
	FromName   string // display name, e.g. "Your App"
	UseSSL     bool   // true for SMTPS 465, false for STARTTLS 587
	RequireTLS bool   // if true, fail if STARTTLS not available

	AppName string // used in footer, header
}

type EmailData struct {
	Title   string
	Intro   string
	ReplyTo string
	AppName string
	Year    int
}

const baseHTMLTemplate = `<!doctype html>
<html>
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width,initial-scale=1">
  <title>{{.Title}}</title>
  <style>
    body { margin: 0; padding: 0; background: #f8fafc; color: #0f172a; font-family: -apple-system, "Segoe UI", Roboto, Helvetica, Arial, sans-serif; }
    .container { max-width: 600px; margin: 32px auto; background: #ffffff; border-radius: 12px; border: 1px solid #e2e8f0; }
    .header { padding: 24px 32px; border-bottom: 1px solid #e2e8f0; font-weight: 700; color: #2563eb; text-transform: uppercase; }
    .hero { padding: 32px; }
    h1 { margin: 0 0 16px; font-size: 22px; }
    p { margin: 0 0 16px; line-height: 1.6; white-space: pre-wrap; }
    .muted { color: #64748b; font-size: 13px; }
    .footer { padding: 16px 32px; color: #64748b; font-size: 13px; text-align: center; border-top: 1px solid #e2e8f0; }
  </style>
</head>
<body>
  <div class="container">
    <div class="header">{{.AppName}}</div>
    <div class="hero">
      <h1>{{.Title}}</h1>
      <p>{{.Intro}}</p>
      {{if .ReplyTo}}<p class="muted">Reply to: {{.ReplyTo}}</p>{{end}}
    </div>
    <div class="footer">© {{.Year}} {{.AppName}}</div>
  </div>
</body>
</html>`

const plainTextTemplate = `{{.Title}}

{{.Intro}}
{{if .ReplyTo}}
Reply to: {{.ReplyTo}}
{{end}}
-- {{.AppName}} (c) {{.Year}}
`

type mailRenderer struct {
	appName string
	htmlTpl *template.Template
	textTpl *texttemplate.Template
}

func newMailRenderer(appName string) mailRenderer {
	return mailRenderer{
		appName: appName,
		htmlTpl: template.Must(template.New("mailHTML").Parse(baseHTMLTemplate)),
		textTpl: texttemplate.Must(texttemplate.New("mailText").Parse(plainTextTemplate)),
	}
}

func (r mailRenderer) render(m OutgoingMail) (html string, text string, err error) {
	data := EmailData{
		Title:   m.Subject,
		Intro:   m.Body,
		ReplyTo: m.ReplyTo,
		AppName: r.appName,
		Year:    time.Now().Year(),
	}

	var hb, tb bytes.Buffer
	if err = r.htmlTpl.Execute(&hb, data); err != nil {
		return "", "", err
	}
	if err = r.textTpl.Execute(&tb, data); err != nil {
		return "", "", err
	}
	return hb.String(), tb.String(), nil
}

// composeMessage builds a multipart/alternative message with a plain and an HTML part.
func composeMessage(from string, m OutgoingMail, htmlBody, textBody string) []byte {
	date := time.Now().Format(time.RFC1123Z)
	boundary := fmt.Sprintf("mixed_%d", time.Now().UnixNano())

	var msg bytes.Buffer
	write := func(format string, a ...any) { _, _ = msg.WriteString(fmt.Sprintf(format, a...)) }

	write("From: %s\r\n", from)
	write("To: %s\r\n", strings.Join(m.To, ", "))
	if m.ReplyTo != "" {
		write("Reply-To: %s\r\n", formatAddress(m.ReplyToName, m.ReplyTo))
	}
	write("Subject: %s\r\n", mime.QEncoding.Encode("UTF-8", m.Subject))
	write("Date: %s\r\n", date)
	write("MIME-Version: 1.0\r\n")
	write("Content-Type: multipart/alternative; boundary=%q\r\n", boundary)
	write("\r\n")

	write("--%s\r\n", boundary)
	write("Content-Type: text/plain; charset=UTF-8\r\n")
	write("Content-Transfer-Encoding: 8bit\r\n\r\n")
	write("%s\r\n\r\n", textBody)

	write("--%s\r\n", boundary)
	write("Content-Type: text/html; charset=UTF-8\r\n")
	write("Content-Transfer-Encoding: 8bit\r\n\r\n")
	write("%s\r\n\r\n", htmlBody)

	write("--%s--\r\n", boundary)
	return msg.Bytes()
}

// formatAddress quotes non-ASCII display names per RFC 2047.
func formatAddress(name, addr string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return addr
	}
	return fmt.Sprintf("%s <%s>", mime.QEncoding.Encode("UTF-8", name), addr)
}

// ------------------- SMTP -------------------

type smtpMailService struct {
	cfg      SMTPConfig
	renderer mailRenderer
	logger   *zap.Logger
}

func NewSMTPMailService(cfg SMTPConfig, logger *zap.Logger) (IMailService, error) {
	if cfg.Host == "" || cfg.Port == 0 {
		return nil, fmt.Errorf("smtp host and port are required")
	}
	if cfg.From == "" {
		return nil, fmt.Errorf("smtp from address is required")
	}
	return &smtpMailService{
		cfg:      cfg,
		renderer: newMailRenderer(cfg.AppName),
		logger:   logger.Named("mail"),
	}, nil
}

func (s *smtpMailService) Backend() string { return "smtp" }

func (s *smtpMailService) Send(ctx context.Context, m OutgoingMail) error {
	html, text, err := s.renderer.render(m)
	if err != nil {
		return err
	}
	msg := composeMessage(formatAddress(s.cfg.FromName, s.cfg.From), m, html, text)

	err = s.deliver(ctx, m.To, msg)
	metrics.ObserveMail(s.Backend(), err)
	if err != nil {
		return err
	}
	s.logger.Info("mail sent", zap.Strings("to", m.To), zap.String("subject", m.Subject))
	return nil
}

func (s *smtpMailService) deliver(ctx context.Context, to []string, msg []byte) error {
	addr := net.JoinHostPort(s.cfg.Host, fmt.Sprint(s.cfg.Port))
	tlsCfg := &tls.Config{ServerName: s.cfg.Host, MinVersion: tls.VersionTLS12}

	dialer := &net.Dialer{Timeout: 10 * time.Second}
	var conn net.Conn
	var err error
	if s.cfg.UseSSL {
		// SMTPS (implicit TLS, usually port 465)
		conn, err = (&tls.Dialer{NetDialer: dialer, Config: tlsCfg}).DialContext(ctx, "tcp", addr)
	} else {
		conn, err = dialer.DialContext(ctx, "tcp", addr)
	}
	if err != nil {
		return err
	}
	defer conn.Close()
	if deadline, ok := ctx.Deadline(); ok {
		_ = conn.SetDeadline(deadline)
	}

	c, err := smtp.NewClient(conn, s.cfg.Host)
	if err != nil {
		return err
	}
	defer c.Quit()

	if !s.cfg.UseSSL {
		// STARTTLS path (typically port 587)
		if ok, _ := c.Extension("STARTTLS"); ok {
			if err = c.StartTLS(tlsCfg); err != nil {
				return err
			}
		} else if s.cfg.RequireTLS {
			return fmt.Errorf("server does not support STARTTLS and RequireTLS=true")
		}
	}

	if s.cfg.Username != "" {
		if err = c.Auth(smtp.PlainAuth("", s.cfg.Username, s.cfg.Password, s.cfg.Host)); err != nil {
			return err
		}
	}
	if err = c.Mail(s.cfg.From); err != nil {
		return err
	}
	for _, rcpt := range to {
		if err = c.Rcpt(rcpt); err != nil {
			return err
		}
	}
	w, err := c.Data()
	if err != nil {
		return err
	}
	if _, err = w.Write(msg); err != nil {
		return err
	}
	return w.Close()
}

// ------------------- Console -------------------

// consoleMailService prints messages instead of sending them, for development.
type consoleMailService struct {
	from     string
	out      io.Writer
	renderer mailRenderer
	logger   *zap.Logger
}

func NewConsoleMailService(from, appName string, out io.Writer, logger *zap.Logger) IMailService {
	return &consoleMailService{
		from:     from,
		out:      out,
		renderer: newMailRenderer(appName),
		logger:   logger.Named("mail"),
	}
}

func (s *consoleMailService) Backend() string { return "console" }

func (s *consoleMailService) Send(_ context.Context, m OutgoingMail) error {
	html, text, err := s.renderer.render(m)
	if err != nil {
		return err
	}
	msg := composeMessage(s.from, m, html, text)

	_, err = fmt.Fprintf(s.out, "%s\n%s\n", msg, strings.Repeat("-", 79))
	metrics.ObserveMail(s.Backend(), err)
	if err != nil {
		return err
	}
	s.logger.Info("mail written to console", zap.Strings("to", m.To), zap.String("subject", m.Subject))
	return nil
}
