// Package mailer delivers the templated HTML notifications the
// membership flows produce. Delivery is best-effort: callers log
// failures and never roll back the store mutation that preceded them.
package mailer

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/dept-026/membership-api/internal/config"
	"gopkg.in/gomail.v2"
)

// Sender is the notification collaborator invoked by the registration,
// role-transition and password flows.
type Sender interface {
	SendMemberWelcome(to, name, role, regNo, password string) error
	SendLecturerWelcome(to, name, role, password string) error
	SendRoleChange(to, name, oldRole, newRole string) error
	SendPasswordChange(to, name, regNo string) error
	SendLecturerPasswordChange(to, name string) error
	SendMemberOTP(to, name, regNo, code string) error
	SendLecturerOTP(to, name, code string) error
}

// Mailer sends notifications over SMTP with STARTTLS.
type Mailer struct {
	cfg    config.SMTPConfig
	dialer *gomail.Dialer
}

func New(cfg config.SMTPConfig) *Mailer {
	return &Mailer{
		cfg:    cfg,
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
	}
}

func (m *Mailer) send(to, subject string, tpl *template.Template, data any) error {
	var body bytes.Buffer
	if err := tpl.Execute(&body, data); err != nil {
		return fmt.Errorf("render %s email: %w", tpl.Name(), err)
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.cfg.Username)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", body.String())

	if err := m.dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("send %s email to %s: %w", tpl.Name(), to, err)
	}
	return nil
}

func (m *Mailer) SendMemberWelcome(to, name, role, regNo, password string) error {
	return m.send(to, "Welcome to the Department", memberWelcomeTemplate, welcomeData{
		Name:     name,
		Role:     role,
		RegNo:    regNo,
		Password: password,
	})
}

func (m *Mailer) SendLecturerWelcome(to, name, role, password string) error {
	return m.send(to, "Welcome to the Department Faculty", lecturerWelcomeTemplate, welcomeData{
		Name:     name,
		Role:     role,
		Password: password,
		ImageURL: m.cfg.LecturerImageURL,
	})
}

func (m *Mailer) SendRoleChange(to, name, oldRole, newRole string) error {
	return m.send(to, "Role Change Notification", roleChangeTemplate, roleChangeData{
		Name:     name,
		OldRole:  oldRole,
		NewRole:  newRole,
		ImageURL: m.cfg.ImageURL,
	})
}

func (m *Mailer) SendPasswordChange(to, name, regNo string) error {
	return m.send(to, "Password Changed Successfully", passwordChangeTemplate, passwordChangeData{
		Name:  name,
		RegNo: regNo,
	})
}

func (m *Mailer) SendLecturerPasswordChange(to, name string) error {
	return m.send(to, "Password Changed Successfully", lecturerPasswordChangeTemplate, passwordChangeData{
		Name: name,
	})
}

func (m *Mailer) SendMemberOTP(to, name, regNo, code string) error {
	return m.send(to, "Your Password Reset OTP", otpTemplate, otpData{
		Name:  name,
		RegNo: regNo,
		Code:  code,
	})
}

func (m *Mailer) SendLecturerOTP(to, name, code string) error {
	return m.send(to, "Your Password Reset OTP", otpTemplate, otpData{
		Name: name,
		Code: code,
	})
}
