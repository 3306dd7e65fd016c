package utils

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"gopkg.in/gomail.v2"
)

// sendMail delivers a single message through the configured SMTP relay. When
// SMTP_HOST is unset (local dev, tests) the mail is logged and dropped.
func sendMail(to, subject, body string) error {
	host := os.Getenv("SMTP_HOST")
	if host == "" {
		log.Printf("📧 SMTP not configured, skipping mail to %s (%s)", to, subject)
		return nil
	}

	port, err := strconv.Atoi(os.Getenv("SMTP_PORT"))
	if err != nil {
		port = 587
	}

	m := gomail.NewMessage()
	m.SetHeader("From", os.Getenv("EMAIL_FROM"))
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", body)

	d := gomail.NewDialer(host, port, os.Getenv("SMTP_USER"), os.Getenv("SMTP_PASS"))
	return d.DialAndSend(m)
}

// SendApprovalEmail notifies a restaurant owner that their account was approved.
// Callers fire this from a goroutine; delivery is best effort.
func SendApprovalEmail(to, firstName, lastName, restaurantName string) {
	body := fmt.Sprintf(
		"<p>Hi %s %s,</p><p>Your restaurant <b>%s</b> has been approved. You can now log in and start accepting orders.</p>",
		firstName, lastName, restaurantName,
	)
	if err := sendMail(to, "MealMate: restaurant approved", body); err != nil {
		log.Printf("❌ Failed to send approval email to %s: %v", to, err)
	}
}

func SendRejectionEmail(to, firstName, lastName, restaurantName, feedback string) {
	body := fmt.Sprintf(
		"<p>Hi %s %s,</p><p>Your registration for <b>%s</b> was declined.</p><p>Feedback: %s</p>",
		firstName, lastName, restaurantName, feedback,
	)
	if err := sendMail(to, "MealMate: registration declined", body); err != nil {
		log.Printf("❌ Failed to send rejection email to %s: %v", to, err)
	}
}

func SendOtpEmail(to, code string) error {
	body := fmt.Sprintf("<p>Your MealMate verification code is <b>%s</b>. It expires in 10 minutes.</p>", code)
	return sendMail(to, "MealMate: email verification code", body)
}

func SendWelcomeEmail(to, firstName string) {
	body := fmt.Sprintf("<p>Welcome to MealMate, %s!</p>", firstName)
	if err := sendMail(to, "Welcome to MealMate", body); err != nil {
		log.Printf("❌ Failed to send welcome email to %s: %v", to, err)
	}
}
