package lecturer

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/dept-026/membership-api/internal/member"
	"github.com/dept-026/membership-api/internal/model"
	sharedError "github.com/dept-026/membership-api/internal/shared/error"
	"github.com/dept-026/membership-api/internal/shared/logger"
	"github.com/dept-026/membership-api/internal/shared/mailer"
	"github.com/dept-026/membership-api/internal/shared/otp"
	"github.com/dept-026/membership-api/internal/shared/validate"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"
)

const otpTTL = 5 * time.Minute

type Service struct {
	repo    Repository
	dirRepo DirectoryRepository
	members member.Repository
	mail    mailer.Sender
}

func NewService(repo Repository, dirRepo DirectoryRepository, members member.Repository, mail mailer.Sender) *Service {
	return &Service{
		repo:    repo,
		dirRepo: dirRepo,
		members: members,
		mail:    mail,
	}
}

// Register creates a lecturer account with the default password and
// dispatches a welcome email.
func (s *Service) Register(ctx context.Context, req *RegisterRequest) error {
	log := logger.FromContext(ctx)

	surname := validate.Name(req.Surname)
	firstName := validate.Name(req.FirstName)
	otherNames := validate.Name(req.OtherNames)
	phone := validate.Phone(req.PhoneNumber)
	email := validate.Email(req.Email)
	gender := strings.ToLower(strings.TrimSpace(req.Gender))
	title := validate.Word(req.Title)

	if surname == "" {
		return sharedError.NewValidation("surname", "Surname is required")
	}
	if firstName == "" {
		return sharedError.NewValidation("first_name", "First name is required")
	}
	if !validate.IsNigerianPhone(phone) {
		return sharedError.NewValidation("phone_number", "Invalid Nigerian phone number")
	}
	if !validate.IsGmail(email) {
		return sharedError.NewValidation("email", "Invalid Gmail address")
	}
	if !validate.IsGender(gender) {
		return sharedError.NewValidation("gender", "Gender must be either 'Male' or 'Female'")
	}
	if title != "" && !validate.IsTitle(title) {
		return sharedError.NewValidation("title", "Title must be either 'Dr' or 'Prof'")
	}

	if _, err := s.repo.FindByPhone(ctx, phone); err == nil {
		return fmt.Errorf("register lecturer phone=%s: %w", phone, ErrPhoneExists)
	} else if !errors.Is(err, mongo.ErrNoDocuments) {
		return fmt.Errorf("check lecturer phone: %w", err)
	}

	if _, err := s.repo.FindByEmail(ctx, email); err == nil {
		return fmt.Errorf("register lecturer email=%s: %w", logger.MaskEmail(email), ErrEmailExists)
	} else if !errors.Is(err, mongo.ErrNoDocuments) {
		return fmt.Errorf("check lecturer email: %w", err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(member.DefaultPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash default password: %w", err)
	}

	lecturer := &model.Lecturer{
		Surname:     surname,
		FirstName:   firstName,
		OtherNames:  otherNames,
		PhoneNumber: phone,
		Email:       email,
		Gender:      validate.Word(gender),
		Title:       title,
		Role:        "lecturer",
		Password:    string(hashed),
	}

	if err := s.repo.Insert(ctx, lecturer); err != nil {
		return fmt.Errorf("insert lecturer: %w", err)
	}

	log.Info("lecturer registered", "email", logger.MaskEmail(email))

	if err := s.mail.SendLecturerWelcome(email, lecturer.DisplayName(), lecturer.Role, member.DefaultPassword); err != nil {
		log.Warn("lecturer welcome email dispatch failed",
			"email", logger.MaskEmail(email),
			"error", err,
		)
	}

	return nil
}

// Login verifies the credentials and returns the lecturer record with
// the secret fields blanked.
func (s *Service) Login(ctx context.Context, req *LoginRequest) (*model.Lecturer, error) {
	email := validate.Email(req.Email)

	lecturer, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("lecturer login email=%s: %w", logger.MaskEmail(email), ErrInvalidCredentials)
		}
		return nil, fmt.Errorf("find lecturer for login: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(lecturer.Password), []byte(strings.TrimSpace(req.Password))); err != nil {
		return nil, fmt.Errorf("lecturer login email=%s: %w", logger.MaskEmail(email), ErrInvalidCredentials)
	}

	logger.FromContext(ctx).Info("lecturer logged in", "email", logger.MaskEmail(email))

	lecturer.Password = ""
	lecturer.ResetOTP = ""
	lecturer.OTPExpiry = time.Time{}
	return lecturer, nil
}

// ChangePassword replaces the password after verifying the previous one
// and emails a change notification.
func (s *Service) ChangePassword(ctx context.Context, req *ChangePasswordRequest) error {
	log := logger.FromContext(ctx)
	email := validate.Email(req.Email)

	if !validate.IsGmail(email) {
		return sharedError.NewValidation("email", "Invalid Gmail address")
	}

	lecturer, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return fmt.Errorf("change lecturer password email=%s: %w", logger.MaskEmail(email), ErrNotFound)
		}
		return fmt.Errorf("find lecturer for password change: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(lecturer.Password), []byte(req.PreviousPassword)); err != nil {
		return fmt.Errorf("change lecturer password email=%s: %w", logger.MaskEmail(email), ErrPrevPasswordIncorrect)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash new password: %w", err)
	}

	if err := s.repo.UpdatePassword(ctx, email, string(hashed)); err != nil {
		return fmt.Errorf("update lecturer password: %w", err)
	}

	log.Info("lecturer password changed", "email", logger.MaskEmail(email))

	if err := s.mail.SendLecturerPasswordChange(email, lecturer.DisplayName()); err != nil {
		log.Warn("password change email dispatch failed",
			"email", logger.MaskEmail(email),
			"error", err,
		)
	}

	return nil
}

// ForgotPassword issues a password-reset OTP. A still-valid pending OTP
// is not replaced.
func (s *Service) ForgotPassword(ctx context.Context, req *ForgotPasswordRequest) (*ForgotPasswordResponse, error) {
	log := logger.FromContext(ctx)
	email := validate.Email(req.Email)

	lecturer, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("lecturer forgot password email=%s: %w", logger.MaskEmail(email), ErrNotFound)
		}
		return nil, fmt.Errorf("find lecturer for password reset: %w", err)
	}

	now := time.Now().UTC()
	if !lecturer.OTPExpiry.IsZero() && lecturer.OTPExpiry.After(now) {
		return &ForgotPasswordResponse{
			Status: "pending",
			Message: fmt.Sprintf("An OTP has already been sent to %s. It expires at %s.",
				email, lecturer.OTPExpiry.UTC().Format("15:04:05 UTC")),
		}, nil
	}

	name := strings.TrimSpace(lecturer.Surname + " " + lecturer.FirstName)
	if name == "" {
		name = "Lecturer"
	}

	code, err := otp.Generate()
	if err != nil {
		return nil, fmt.Errorf("generate otp: %w", err)
	}

	if err := s.repo.SetResetOTP(ctx, email, code, now.Add(otpTTL)); err != nil {
		return nil, fmt.Errorf("store otp: %w", err)
	}

	log.Info("lecturer reset otp issued", "email", logger.MaskEmail(email))

	if err := s.mail.SendLecturerOTP(email, name, code); err != nil {
		log.Warn("otp email dispatch failed",
			"email", logger.MaskEmail(email),
			"error", err,
		)
	}

	return &ForgotPasswordResponse{
		Status:  "success",
		Message: fmt.Sprintf("An OTP has been sent to %s. It expires in 5 minutes.", email),
	}, nil
}

// ResetPasswordWithOTP consumes a valid OTP and sets the new password.
func (s *Service) ResetPasswordWithOTP(ctx context.Context, req *ResetPasswordRequest) error {
	email := validate.Email(req.Email)

	lecturer, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return fmt.Errorf("lecturer reset password email=%s: %w", logger.MaskEmail(email), ErrNotFound)
		}
		return fmt.Errorf("find lecturer for otp reset: %w", err)
	}

	code := strings.TrimSpace(req.OTP)
	if lecturer.ResetOTP == "" || lecturer.ResetOTP != code {
		return fmt.Errorf("lecturer reset password email=%s: %w", logger.MaskEmail(email), ErrInvalidOTP)
	}
	if lecturer.OTPExpiry.IsZero() || !lecturer.OTPExpiry.After(time.Now().UTC()) {
		return fmt.Errorf("lecturer reset password email=%s: %w", logger.MaskEmail(email), ErrOTPExpired)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(strings.TrimSpace(req.NewPassword)), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash new password: %w", err)
	}

	if err := s.repo.ConsumeResetOTP(ctx, email, string(hashed)); err != nil {
		return fmt.Errorf("consume otp: %w", err)
	}

	logger.FromContext(ctx).Info("lecturer password reset via otp", "email", logger.MaskEmail(email))
	return nil
}

// Promote flips a member's role from Student to Exco after the acting
// lecturer's credentials pass the ordered precondition checks.
func (s *Service) Promote(ctx context.Context, req *RoleChangeRequest) (*RoleChangeResponse, error) {
	return s.changeRole(ctx, req, "student", "Exco",
		"This student is already an Exco",
		"Student with reg_no %s has been promoted from Student to Exco, and notified by email")
}

// Demote flips a member's role from Exco back to Student.
func (s *Service) Demote(ctx context.Context, req *RoleChangeRequest) (*RoleChangeResponse, error) {
	return s.changeRole(ctx, req, "exco", "Student",
		"This user is already a student",
		"Student with reg_no %s has been demoted from Exco to Student, and notified by email")
}

// changeRole runs the transition preconditions in order. Every failure
// is reported as a plain validation error with the reason verbatim;
// callers depend on the generic shape.
func (s *Service) changeRole(ctx context.Context, req *RoleChangeRequest, fromRole, toRole, noopMessage, successFormat string) (*RoleChangeResponse, error) {
	log := logger.FromContext(ctx)
	email := validate.Email(req.Email)
	regNo := validate.RegNo(req.RegNo)

	lecturer, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, sharedError.NewValidation("", "Lecturer not found")
		}
		return nil, fmt.Errorf("find lecturer for role change: %w", err)
	}

	if lecturer.Role != "lecturer" {
		return nil, sharedError.NewValidation("", "Only lecturers can perform this action")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(lecturer.Password), []byte(req.Password)); err != nil {
		return nil, sharedError.NewValidation("", "Invalid password")
	}

	target, err := s.members.FindByRegNo(ctx, regNo)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, sharedError.NewValidation("", "Student not found")
		}
		return nil, fmt.Errorf("find member for role change: %w", err)
	}

	currentRole := strings.ToLower(target.Role)
	if currentRole != "exco" && currentRole != "student" {
		return nil, sharedError.NewValidation("", "Invalid role for student. Must be 'exco' or 'student'")
	}

	if currentRole != fromRole {
		return &RoleChangeResponse{Message: noopMessage}, nil
	}

	if err := s.members.UpdateRole(ctx, regNo, toRole); err != nil {
		return nil, fmt.Errorf("update member role: %w", err)
	}

	log.Info("member role changed",
		"reg_no", regNo,
		"old_role", validate.Word(fromRole),
		"new_role", toRole,
		"acting_lecturer", logger.MaskEmail(email),
	)

	name := strings.TrimSpace(target.Surname + " " + target.FirstName)
	if err := s.mail.SendRoleChange(target.Email, name, validate.Word(fromRole), toRole); err != nil {
		log.Warn("role change email dispatch failed",
			"reg_no", regNo,
			"email", logger.MaskEmail(target.Email),
			"error", err,
		)
	}

	return &RoleChangeResponse{Message: fmt.Sprintf(successFormat, regNo)}, nil
}

// Directory returns the student-facing lecturer directory, sorted by
// the entries' display name when present.
func (s *Service) Directory(ctx context.Context) ([]bson.M, error) {
	entries, err := s.dirRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list lecturer directory: %w", err)
	}
	if len(entries) == 0 {
		return nil, fmt.Errorf("lecturer directory: %w", ErrNoLecturers)
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return strings.ToLower(entryName(entries[i])) < strings.ToLower(entryName(entries[j]))
	})
	return entries, nil
}

func entryName(entry bson.M) string {
	if name, ok := entry["name"].(string); ok {
		return name
	}
	return ""
}

// All returns every lecturer record, sorted by surname, with the secret
// fields already projected out by the store.
func (s *Service) All(ctx context.Context) ([]model.Lecturer, error) {
	lecturers, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list lecturers: %w", err)
	}
	if len(lecturers) == 0 {
		return nil, fmt.Errorf("list lecturers: %w", ErrNoLecturers)
	}

	sort.SliceStable(lecturers, func(i, j int) bool {
		return strings.ToLower(lecturers[i].Surname) < strings.ToLower(lecturers[j].Surname)
	})
	return lecturers, nil
}
