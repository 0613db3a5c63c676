package announcement

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/dept-026/membership-api/internal/lecturer"
	"github.com/dept-026/membership-api/internal/member"
	"github.com/dept-026/membership-api/internal/model"
	sharedError "github.com/dept-026/membership-api/internal/shared/error"
	"github.com/dept-026/membership-api/internal/shared/logger"
	"github.com/dept-026/membership-api/internal/shared/validate"
	"go.mongodb.org/mongo-driver/mongo"
)

type Service struct {
	repo      Repository
	members   member.Repository
	lecturers lecturer.Repository
}

func NewService(repo Repository, members member.Repository, lecturers lecturer.Repository) *Service {
	return &Service{
		repo:      repo,
		members:   members,
		lecturers: lecturers,
	}
}

// Post records a new announcement. The author is resolved by phone
// number against the member roster first, then the lecturer roster, and
// must hold the exco or lecturer role. Identical announcement text is
// rejected, never merged.
func (s *Service) Post(ctx context.Context, req *PostRequest) error {
	log := logger.FromContext(ctx)

	phone := validate.Phone(req.PhoneNumber)
	text := strings.TrimSpace(req.Text)
	if text == "" {
		return sharedError.NewValidation("announcement", "Announcement text must not be empty")
	}

	role, name, err := s.resolveAuthor(ctx, phone)
	if err != nil {
		return err
	}

	if role != "exco" && role != "lecturer" {
		return fmt.Errorf("post announcement phone=%s role=%s: %w", phone, role, ErrRoleForbidden)
	}

	if _, err := s.repo.FindByText(ctx, text); err == nil {
		return fmt.Errorf("post announcement: %w", ErrDuplicate)
	} else if !errors.Is(err, mongo.ErrNoDocuments) {
		return fmt.Errorf("check duplicate announcement: %w", err)
	}

	ann := &model.Announcement{
		PhoneNumber: phone,
		Role:        role,
		StudentName: name,
		Text:        text,
		Composed:    fmt.Sprintf("%s says: %s", name, text),
		CreatedAt:   time.Now().UTC(),
	}

	if err := s.repo.Insert(ctx, ann); err != nil {
		return fmt.Errorf("insert announcement: %w", err)
	}

	log.Info("announcement posted", "role", role, "author", name)
	return nil
}

// resolveAuthor returns the lowercased role and display name of the
// record matching the phone number, checking members before lecturers.
func (s *Service) resolveAuthor(ctx context.Context, phone string) (string, string, error) {
	if m, err := s.members.FindByPhone(ctx, phone); err == nil {
		return strings.ToLower(m.Role), m.FullName(), nil
	} else if !errors.Is(err, mongo.ErrNoDocuments) {
		return "", "", fmt.Errorf("find member by phone: %w", err)
	}

	if l, err := s.lecturers.FindByPhone(ctx, phone); err == nil {
		return strings.ToLower(l.Role), l.DisplayName(), nil
	} else if !errors.Is(err, mongo.ErrNoDocuments) {
		return "", "", fmt.Errorf("find lecturer by phone: %w", err)
	}

	return "", "", fmt.Errorf("resolve announcement author phone=%s: %w", phone, ErrAuthorNotFound)
}

// List returns all announcements, newest first.
func (s *Service) List(ctx context.Context) ([]model.Announcement, error) {
	anns, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list announcements: %w", err)
	}
	if len(anns) == 0 {
		return nil, fmt.Errorf("list announcements: %w", ErrNoneFound)
	}

	sort.SliceStable(anns, func(i, j int) bool {
		return anns[i].CreatedAt.After(anns[j].CreatedAt)
	})
	return anns, nil
}
