package member

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/dept-026/membership-api/internal/model"
	sharedError "github.com/dept-026/membership-api/internal/shared/error"
	"github.com/dept-026/membership-api/internal/shared/logger"
	"github.com/dept-026/membership-api/internal/shared/mailer"
	"github.com/dept-026/membership-api/internal/shared/otp"
	"github.com/dept-026/membership-api/internal/shared/validate"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"
)

// Every new account starts with this password; the welcome email tells
// the member to change it after first login.
const DefaultPassword = "000000"

const otpTTL = 5 * time.Minute

type Service struct {
	repo Repository
	mail mailer.Sender
}

func NewService(repo Repository, mail mailer.Sender) *Service {
	return &Service{
		repo: repo,
		mail: mail,
	}
}

// Register creates a member account and dispatches a welcome email with
// the initial credentials.
func (s *Service) Register(ctx context.Context, req *RegisterRequest) error {
	return s.register(ctx, req, true)
}

// RegisterNoMail creates a member account without sending the welcome
// email; used for bulk imports where the credentials are handed out
// another way.
func (s *Service) RegisterNoMail(ctx context.Context, req *RegisterRequest) error {
	return s.register(ctx, req, false)
}

func (s *Service) register(ctx context.Context, req *RegisterRequest, notify bool) error {
	log := logger.FromContext(ctx)

	surname := validate.Name(req.Surname)
	firstName := validate.Name(req.FirstName)
	otherNames := validate.Name(req.OtherNames)
	admissionType := strings.ToLower(strings.TrimSpace(req.AdmissionType))
	phone := validate.Phone(req.PhoneNumber)
	email := validate.Email(req.Email)
	gender := strings.ToLower(strings.TrimSpace(req.Gender))
	role := strings.ToLower(strings.TrimSpace(req.Role))
	regNo := validate.RegNo(req.RegNo)

	if surname == "" {
		return sharedError.NewValidation("surname", "Surname is required")
	}
	if firstName == "" {
		return sharedError.NewValidation("first_name", "First name is required")
	}
	if !validate.IsAdmissionType(admissionType) {
		return sharedError.NewValidation("admission_type", "Admission type must be one of 'utme', 'direct entry', 'transfer admission'")
	}
	if !validate.IsNigerianPhone(phone) {
		return sharedError.NewValidation("phone_number", "Invalid Nigerian phone number")
	}
	if !validate.IsGmail(email) {
		return sharedError.NewValidation("email", "Invalid Gmail address")
	}

	if _, err := s.repo.FindByEmail(ctx, email); err == nil {
		return fmt.Errorf("register member email=%s: %w", logger.MaskEmail(email), ErrEmailExists)
	} else if !errors.Is(err, mongo.ErrNoDocuments) {
		return fmt.Errorf("check member email: %w", err)
	}

	if !validate.IsGender(gender) {
		return sharedError.NewValidation("gender", "Gender must be either 'Male' or 'Female'")
	}
	if !validate.IsMemberRole(role) {
		return sharedError.NewValidation("role", "Role must be either 'Student' or 'Exco'")
	}
	if err := validate.CheckRegNo(regNo); err != nil {
		return sharedError.NewValidation("reg_no", err.Error())
	}

	if _, err := s.repo.FindByRegNo(ctx, regNo); err == nil {
		return fmt.Errorf("register member reg_no=%s: %w", regNo, ErrRegNoExists)
	} else if !errors.Is(err, mongo.ErrNoDocuments) {
		return fmt.Errorf("check member reg_no: %w", err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(DefaultPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash default password: %w", err)
	}

	member := &model.Member{
		Surname:       surname,
		FirstName:     firstName,
		OtherNames:    otherNames,
		AdmissionType: validate.Word(admissionType),
		PhoneNumber:   phone,
		Email:         email,
		Gender:        validate.Word(gender),
		Role:          validate.Word(role),
		RegNo:         regNo,
		Password:      string(hashed),
	}

	if err := s.repo.Insert(ctx, member); err != nil {
		return fmt.Errorf("insert member: %w", err)
	}

	log.Info("member registered",
		"reg_no", regNo,
		"email", logger.MaskEmail(email),
		"role", member.Role,
	)

	if notify {
		if err := s.mail.SendMemberWelcome(email, member.FullName(), member.Role, regNo, DefaultPassword); err != nil {
			log.Warn("welcome email dispatch failed",
				"reg_no", regNo,
				"email", logger.MaskEmail(email),
				"error", err,
			)
		}
	}

	return nil
}

// Login verifies the credentials and returns the member record with the
// secret fields blanked.
func (s *Service) Login(ctx context.Context, req *LoginRequest) (*model.Member, error) {
	regNo := validate.RegNo(req.RegNo)

	member, err := s.repo.FindByRegNo(ctx, regNo)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("login reg_no=%s: %w", regNo, ErrInvalidCredentials)
		}
		return nil, fmt.Errorf("find member for login: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(member.Password), []byte(req.Password)); err != nil {
		return nil, fmt.Errorf("login reg_no=%s: %w", regNo, ErrInvalidCredentials)
	}

	logger.FromContext(ctx).Info("member logged in", "reg_no", regNo)

	member.Password = ""
	member.ResetOTP = ""
	member.OTPExpiry = time.Time{}
	return member, nil
}

// ChangePassword replaces the password after verifying the previous one
// and emails a change notification.
func (s *Service) ChangePassword(ctx context.Context, req *ChangePasswordRequest) error {
	log := logger.FromContext(ctx)
	regNo := validate.RegNo(req.RegNo)

	member, err := s.repo.FindByRegNo(ctx, regNo)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return fmt.Errorf("change password reg_no=%s: %w", regNo, ErrNotFound)
		}
		return fmt.Errorf("find member for password change: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(member.Password), []byte(req.PreviousPassword)); err != nil {
		return fmt.Errorf("change password reg_no=%s: %w", regNo, ErrPrevPasswordIncorrect)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash new password: %w", err)
	}

	if err := s.repo.UpdatePassword(ctx, regNo, string(hashed)); err != nil {
		return fmt.Errorf("update member password: %w", err)
	}

	log.Info("member password changed", "reg_no", regNo)

	name := strings.TrimSpace(member.Surname + " " + member.FirstName)
	if err := s.mail.SendPasswordChange(member.Email, name, regNo); err != nil {
		log.Warn("password change email dispatch failed",
			"reg_no", regNo,
			"email", logger.MaskEmail(member.Email),
			"error", err,
		)
	}

	return nil
}

// ForgotPassword issues a password-reset OTP. A still-valid pending OTP
// is not replaced; the caller is told to check their inbox instead.
func (s *Service) ForgotPassword(ctx context.Context, req *ForgotPasswordRequest) (*ForgotPasswordResponse, error) {
	log := logger.FromContext(ctx)
	regNo := validate.RegNo(req.RegNo)

	member, err := s.repo.FindByRegNo(ctx, regNo)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("forgot password reg_no=%s: %w", regNo, ErrNotFound)
		}
		return nil, fmt.Errorf("find member for password reset: %w", err)
	}

	if member.Email == "" {
		return nil, sharedError.NewValidation("email", "This student has no email on record")
	}

	now := time.Now().UTC()
	if !member.OTPExpiry.IsZero() && member.OTPExpiry.After(now) {
		return &ForgotPasswordResponse{
			Status: "pending",
			Message: fmt.Sprintf("An OTP has already been sent to %s. It expires at %s.",
				member.Email, member.OTPExpiry.UTC().Format("15:04:05 UTC")),
		}, nil
	}

	code, err := otp.Generate()
	if err != nil {
		return nil, fmt.Errorf("generate otp: %w", err)
	}

	if err := s.repo.SetResetOTP(ctx, regNo, code, now.Add(otpTTL)); err != nil {
		return nil, fmt.Errorf("store otp: %w", err)
	}

	log.Info("member reset otp issued", "reg_no", regNo)

	name := strings.TrimSpace(member.Surname + " " + member.FirstName)
	if err := s.mail.SendMemberOTP(member.Email, name, regNo, code); err != nil {
		log.Warn("otp email dispatch failed",
			"reg_no", regNo,
			"email", logger.MaskEmail(member.Email),
			"error", err,
		)
	}

	return &ForgotPasswordResponse{
		Status:  "success",
		Message: fmt.Sprintf("An OTP has been sent to %s. It expires in 5 minutes.", member.Email),
	}, nil
}

// ResetPasswordWithOTP consumes a valid OTP and sets the new password.
// An expired code is left in place; the next forgot-password request
// overwrites it.
func (s *Service) ResetPasswordWithOTP(ctx context.Context, req *ResetPasswordRequest) error {
	regNo := validate.RegNo(req.RegNo)

	member, err := s.repo.FindByRegNo(ctx, regNo)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return fmt.Errorf("reset password reg_no=%s: %w", regNo, ErrNotFound)
		}
		return fmt.Errorf("find member for otp reset: %w", err)
	}

	code := strings.TrimSpace(req.OTP)
	if member.ResetOTP == "" || member.ResetOTP != code {
		return fmt.Errorf("reset password reg_no=%s: %w", regNo, ErrInvalidOTP)
	}
	if member.OTPExpiry.IsZero() || !member.OTPExpiry.After(time.Now().UTC()) {
		return fmt.Errorf("reset password reg_no=%s: %w", regNo, ErrOTPExpired)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash new password: %w", err)
	}

	if err := s.repo.ConsumeResetOTP(ctx, regNo, string(hashed)); err != nil {
		return fmt.Errorf("consume otp: %w", err)
	}

	logger.FromContext(ctx).Info("member password reset via otp", "reg_no", regNo)
	return nil
}

// Stats returns the full roster alongside the per-role counts.
func (s *Service) Stats(ctx context.Context) (*StatsResponse, error) {
	members, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list members: %w", err)
	}
	if members == nil {
		members = []model.Member{}
	}

	excos, err := s.repo.CountByRole(ctx, "exco")
	if err != nil {
		return nil, fmt.Errorf("count excos: %w", err)
	}
	students, err := s.repo.CountByRole(ctx, "student")
	if err != nil {
		return nil, fmt.Errorf("count students: %w", err)
	}

	return &StatsResponse{
		Members: members,
		Summary: StatsSummary{
			TotalExcos:    excos,
			TotalStudents: students,
			TotalMembers:  len(members),
		},
	}, nil
}

// SummarySorted returns the roster ordered by surname with gender counts.
func (s *Service) SummarySorted(ctx context.Context) (*SummaryResponse, error) {
	members, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list members: %w", err)
	}
	if len(members) == 0 {
		return nil, fmt.Errorf("summary: %w", ErrNoMembers)
	}

	SortBySurname(members)

	var male, female int
	for _, m := range members {
		switch strings.ToLower(m.Gender) {
		case "male":
			male++
		case "female":
			female++
		}
	}

	return &SummaryResponse{
		TotalStudents: len(members),
		Male:          male,
		Female:        female,
		Students:      members,
	}, nil
}

// ByGender returns members of the requested gender ordered by surname.
func (s *Service) ByGender(ctx context.Context, gender string) ([]model.Member, error) {
	gender = strings.ToLower(strings.TrimSpace(gender))
	if !validate.IsGender(gender) {
		return nil, sharedError.NewValidation("gender", "Invalid gender. Please provide 'male' or 'female'.")
	}

	members, err := s.repo.FindByGender(ctx, gender)
	if err != nil {
		return nil, fmt.Errorf("list members by gender: %w", err)
	}
	if len(members) == 0 {
		return nil, fmt.Errorf("by gender %s: %w", gender, ErrNoMembersForGender)
	}

	SortBySurname(members)
	return members, nil
}

// SortBySurname orders members alphabetically by lowercased surname.
func SortBySurname(members []model.Member) {
	sort.SliceStable(members, func(i, j int) bool {
		return strings.ToLower(members[i].Surname) < strings.ToLower(members[j].Surname)
	})
}
