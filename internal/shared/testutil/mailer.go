package testutil

import "sync"

// SentMail records one dispatched notification.
type SentMail struct {
	Kind     string
	To       string
	Name     string
	Role     string
	RegNo    string
	Password string
	OldRole  string
	NewRole  string
	Code     string
}

// RecordingMailer implements mailer.Sender and records every dispatch
// instead of talking to SMTP. Set Err to simulate delivery failures.
type RecordingMailer struct {
	mu   sync.Mutex
	Sent []SentMail
	Err  error
}

func NewRecordingMailer() *RecordingMailer {
	return &RecordingMailer{}
}

func (m *RecordingMailer) record(mail SentMail) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return m.Err
	}
	m.Sent = append(m.Sent, mail)
	return nil
}

// Kind returns all recorded mails of the given kind.
func (m *RecordingMailer) Kind(kind string) []SentMail {
	m.mu.Lock()
	defer m.mu.Unlock()

	var out []SentMail
	for _, mail := range m.Sent {
		if mail.Kind == kind {
			out = append(out, mail)
		}
	}
	return out
}

func (m *RecordingMailer) SendMemberWelcome(to, name, role, regNo, password string) error {
	return m.record(SentMail{Kind: "member_welcome", To: to, Name: name, Role: role, RegNo: regNo, Password: password})
}

func (m *RecordingMailer) SendLecturerWelcome(to, name, role, password string) error {
	return m.record(SentMail{Kind: "lecturer_welcome", To: to, Name: name, Role: role, Password: password})
}

func (m *RecordingMailer) SendRoleChange(to, name, oldRole, newRole string) error {
	return m.record(SentMail{Kind: "role_change", To: to, Name: name, OldRole: oldRole, NewRole: newRole})
}

func (m *RecordingMailer) SendPasswordChange(to, name, regNo string) error {
	return m.record(SentMail{Kind: "password_change", To: to, Name: name, RegNo: regNo})
}

func (m *RecordingMailer) SendLecturerPasswordChange(to, name string) error {
	return m.record(SentMail{Kind: "lecturer_password_change", To: to, Name: name})
}

func (m *RecordingMailer) SendMemberOTP(to, name, regNo, code string) error {
	return m.record(SentMail{Kind: "member_otp", To: to, Name: name, RegNo: regNo, Code: code})
}

func (m *RecordingMailer) SendLecturerOTP(to, name, code string) error {
	return m.record(SentMail{Kind: "lecturer_otp", To: to, Name: name, Code: code})
}
