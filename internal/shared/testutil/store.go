package testutil

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/dept-026/membership-api/internal/model"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// In-memory store fakes implementing the domain repository contracts.
// Misses return mongo.ErrNoDocuments, matching the real driver, and
// list reads apply the same projection as the Mongo repositories
// (password and OTP fields stripped).

// MemberStore is an in-memory member.Repository.
type MemberStore struct {
	mu      sync.Mutex
	members []model.Member
}

func NewMemberStore() *MemberStore {
	return &MemberStore{}
}

func (s *MemberStore) findOne(match func(*model.Member) bool) (*model.Member, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.members {
		if match(&s.members[i]) {
			copy := s.members[i]
			return &copy, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (s *MemberStore) FindByEmail(_ context.Context, email string) (*model.Member, error) {
	return s.findOne(func(m *model.Member) bool { return m.Email == email })
}

func (s *MemberStore) FindByRegNo(_ context.Context, regNo string) (*model.Member, error) {
	return s.findOne(func(m *model.Member) bool { return m.RegNo == regNo })
}

func (s *MemberStore) FindByPhone(_ context.Context, phone string) (*model.Member, error) {
	return s.findOne(func(m *model.Member) bool { return m.PhoneNumber == phone })
}

func (s *MemberStore) Insert(_ context.Context, member *model.Member) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.members = append(s.members, *member)
	return nil
}

func (s *MemberStore) update(regNo string, apply func(*model.Member)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.members {
		if s.members[i].RegNo == regNo {
			apply(&s.members[i])
			return nil
		}
	}
	return nil
}

func (s *MemberStore) UpdatePassword(_ context.Context, regNo, hashedPassword string) error {
	return s.update(regNo, func(m *model.Member) { m.Password = hashedPassword })
}

func (s *MemberStore) SetResetOTP(_ context.Context, regNo, code string, expiry time.Time) error {
	return s.update(regNo, func(m *model.Member) {
		m.ResetOTP = code
		m.OTPExpiry = expiry
	})
}

func (s *MemberStore) ConsumeResetOTP(_ context.Context, regNo, hashedPassword string) error {
	return s.update(regNo, func(m *model.Member) {
		m.Password = hashedPassword
		m.ResetOTP = ""
		m.OTPExpiry = time.Time{}
	})
}

func (s *MemberStore) UpdateRole(_ context.Context, regNo, role string) error {
	return s.update(regNo, func(m *model.Member) { m.Role = role })
}

func (s *MemberStore) findMany(match func(*model.Member) bool) ([]model.Member, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []model.Member
	for i := range s.members {
		if match(&s.members[i]) {
			projected := s.members[i]
			projected.Password = ""
			projected.ResetOTP = ""
			projected.OTPExpiry = time.Time{}
			out = append(out, projected)
		}
	}
	return out, nil
}

func (s *MemberStore) FindAll(_ context.Context) ([]model.Member, error) {
	return s.findMany(func(*model.Member) bool { return true })
}

func (s *MemberStore) FindByGender(_ context.Context, gender string) ([]model.Member, error) {
	return s.findMany(func(m *model.Member) bool { return strings.EqualFold(m.Gender, gender) })
}

func (s *MemberStore) FindByRole(_ context.Context, role string) ([]model.Member, error) {
	return s.findMany(func(m *model.Member) bool { return strings.EqualFold(m.Role, role) })
}

func (s *MemberStore) CountByRole(_ context.Context, role string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var count int64
	for i := range s.members {
		if strings.EqualFold(s.members[i].Role, role) {
			count++
		}
	}
	return count, nil
}

// LecturerStore is an in-memory lecturer.Repository.
type LecturerStore struct {
	mu        sync.Mutex
	lecturers []model.Lecturer
}

func NewLecturerStore() *LecturerStore {
	return &LecturerStore{}
}

func (s *LecturerStore) findOne(match func(*model.Lecturer) bool) (*model.Lecturer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.lecturers {
		if match(&s.lecturers[i]) {
			copy := s.lecturers[i]
			return &copy, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (s *LecturerStore) FindByEmail(_ context.Context, email string) (*model.Lecturer, error) {
	return s.findOne(func(l *model.Lecturer) bool { return l.Email == email })
}

func (s *LecturerStore) FindByPhone(_ context.Context, phone string) (*model.Lecturer, error) {
	return s.findOne(func(l *model.Lecturer) bool { return l.PhoneNumber == phone })
}

func (s *LecturerStore) Insert(_ context.Context, lecturer *model.Lecturer) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lecturers = append(s.lecturers, *lecturer)
	return nil
}

func (s *LecturerStore) update(email string, apply func(*model.Lecturer)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.lecturers {
		if s.lecturers[i].Email == email {
			apply(&s.lecturers[i])
			return nil
		}
	}
	return nil
}

func (s *LecturerStore) UpdatePassword(_ context.Context, email, hashedPassword string) error {
	return s.update(email, func(l *model.Lecturer) { l.Password = hashedPassword })
}

func (s *LecturerStore) SetResetOTP(_ context.Context, email, code string, expiry time.Time) error {
	return s.update(email, func(l *model.Lecturer) {
		l.ResetOTP = code
		l.OTPExpiry = expiry
	})
}

func (s *LecturerStore) ConsumeResetOTP(_ context.Context, email, hashedPassword string) error {
	return s.update(email, func(l *model.Lecturer) {
		l.Password = hashedPassword
		l.ResetOTP = ""
		l.OTPExpiry = time.Time{}
	})
}

func (s *LecturerStore) FindAll(_ context.Context) ([]model.Lecturer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []model.Lecturer
	for i := range s.lecturers {
		projected := s.lecturers[i]
		projected.Password = ""
		projected.ResetOTP = ""
		projected.OTPExpiry = time.Time{}
		out = append(out, projected)
	}
	return out, nil
}

// DirectoryStore is an in-memory lecturer.DirectoryRepository.
type DirectoryStore struct {
	mu      sync.Mutex
	Entries []bson.M
}

func NewDirectoryStore(entries ...bson.M) *DirectoryStore {
	return &DirectoryStore{Entries: entries}
}

func (s *DirectoryStore) FindAll(_ context.Context) ([]bson.M, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]bson.M(nil), s.Entries...), nil
}

// AnnouncementStore is an in-memory announcement.Repository.
type AnnouncementStore struct {
	mu            sync.Mutex
	announcements []model.Announcement
}

func NewAnnouncementStore() *AnnouncementStore {
	return &AnnouncementStore{}
}

func (s *AnnouncementStore) FindByText(_ context.Context, text string) (*model.Announcement, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.announcements {
		if s.announcements[i].Text == text {
			copy := s.announcements[i]
			return &copy, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (s *AnnouncementStore) Insert(_ context.Context, ann *model.Announcement) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.announcements = append(s.announcements, *ann)
	return nil
}

func (s *AnnouncementStore) FindAll(_ context.Context) ([]model.Announcement, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]model.Announcement(nil), s.announcements...), nil
}
