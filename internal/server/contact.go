package server

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"net/smtp"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/YuHsuanChien/portfolio/internal/config"
)

var errSMTPNotConfigured = errors.New("SMTP credentials not configured")

var registerValidators sync.Once

// setupValidators adds the "singleline" tag to gin's validator. Values that
// end up in mail headers must not contain line breaks.
func setupValidators() {
	registerValidators.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		err := v.RegisterValidation("singleline", func(fl validator.FieldLevel) bool {
			return !strings.ContainsAny(fl.Field().String(), "\r\n")
		})
		if err != nil {
			log.Fatalf("Failed to register validator: %v", err)
		}
	})
}

// headerSafe drops line breaks from a mail header value.
func headerSafe(s string) string {
	return strings.NewReplacer("\r", "", "\n", "").Replace(s)
}

// ContactMessage is a submission of the contact form.
type ContactMessage struct {
	Name    string `form:"fullName" binding:"required,max=200,singleline"`
	Email   string `form:"email" binding:"required,email,singleline"`
	Message string `form:"message" binding:"required,max=5000"`
}

// Mailer delivers contact messages.
type Mailer interface {
	Send(m ContactMessage) error
}

type smtpMailer struct {
	cfg config.Config
}

func (s smtpMailer) Send(m ContactMessage) error {
	if !s.cfg.SMTPConfigured() {
		return errSMTPNotConfigured
	}

	auth := smtp.PlainAuth("", s.cfg.SMTPUser, s.cfg.SMTPPass, s.cfg.SMTPHost)
	addr := s.cfg.SMTPHost + ":" + s.cfg.SMTPPort
	if err := smtp.SendMail(addr, auth, s.cfg.SMTPUser, []string{s.cfg.ToEmail}, s.message(m)); err != nil {
		return fmt.Errorf("send mail via %s: %w", addr, err)
	}
	return nil
}

// message renders m as an RFC 5322 message.
func (s smtpMailer) message(m ContactMessage) []byte {
	subject := fmt.Sprintf("Portfolio Contact: %s", headerSafe(m.Name))
	body := fmt.Sprintf(`
New contact form submission from your portfolio:

Name: %s
Email: %s
Message:
%s

---
Sent from your portfolio contact form
`, m.Name, m.Email, m.Message)

	return []byte("To: " + s.cfg.ToEmail + "\r\n" +
		"Subject: " + subject + "\r\n" +
		"From: " + s.cfg.SMTPUser + "\r\n" +
		"Reply-To: " + headerSafe(m.Email) + "\r\n" +
		"\r\n" +
		body + "\r\n")
}

func (s *Server) contactForm(c *gin.Context) {
	c.HTML(http.StatusOK, "contact.html", gin.H{
		"title": "Contact Me",
	})
}

func (s *Server) contact(c *gin.Context) {
	var m ContactMessage
	if err := c.ShouldBind(&m); err != nil {
		c.HTML(http.StatusOK, "contact-error.html", gin.H{
			"error": "Please fill in your name, a valid email and a message.",
		})
		return
	}

	if err := s.mailer.Send(m); err != nil {
		log.Printf("Error sending email: %v", err)
		c.HTML(http.StatusOK, "contact-error.html", gin.H{
			"error": "Sorry, there was an error sending your message. Please try again later.",
		})
		return
	}

	log.Printf("Email sent successfully from %s", m.Name)
	c.HTML(http.StatusOK, "contact-success.html", gin.H{
		"success": "Thank you for your message! I'll get back to you soon.",
	})
}
