package report

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/dept-026/membership-api/internal/lecturer"
	"github.com/dept-026/membership-api/internal/member"
	"github.com/dept-026/membership-api/internal/model"
	sharedError "github.com/dept-026/membership-api/internal/shared/error"
	"github.com/dept-026/membership-api/internal/shared/validate"
)

// Document is a rendered export ready to be sent as an attachment.
type Document struct {
	Filename string
	Data     []byte
}

type Service struct {
	members   member.Repository
	lecturers lecturer.Repository
}

func NewService(members member.Repository, lecturers lecturer.Repository) *Service {
	return &Service{
		members:   members,
		lecturers: lecturers,
	}
}

var memberHeaders = []string{
	"S/N", "surname", "first_name", "other_names", "admission_type",
	"phone_number", "email", "gender", "role", "reg_no",
}

var lecturerHeaders = []string{
	"S/N", "surname", "first_name", "other_names", "phone_number",
	"email", "gender", "title", "role",
}

func memberRows(members []model.Member) [][]string {
	rows := make([][]string, 0, len(members))
	for i, m := range members {
		rows = append(rows, []string{
			strconv.Itoa(i + 1), m.Surname, m.FirstName, m.OtherNames,
			m.AdmissionType, m.PhoneNumber, m.Email, m.Gender, m.Role, m.RegNo,
		})
	}
	return rows
}

func lecturerRows(lecturers []model.Lecturer) [][]string {
	rows := make([][]string, 0, len(lecturers))
	for i, l := range lecturers {
		rows = append(rows, []string{
			strconv.Itoa(i + 1), l.Surname, l.FirstName, l.OtherNames,
			l.PhoneNumber, l.Email, l.Gender, l.Title, l.Role,
		})
	}
	return rows
}

func renderMembers(title, filename string, members []model.Member) (*Document, error) {
	data, err := Render(title, []Table{{Headers: memberHeaders, Rows: memberRows(members)}})
	if err != nil {
		return nil, err
	}
	return &Document{Filename: filename, Data: data}, nil
}

// Students exports the full roster in store order.
func (s *Service) Students(ctx context.Context) (*Document, error) {
	members, err := s.members.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list members: %w", err)
	}
	if len(members) == 0 {
		return nil, fmt.Errorf("students export: %w", member.ErrNoMembers)
	}

	return renderMembers("026 Students", "026 Students.pdf", members)
}

// StudentsSorted exports the roster ordered by surname.
func (s *Service) StudentsSorted(ctx context.Context) (*Document, error) {
	members, err := s.members.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list members: %w", err)
	}
	if len(members) == 0 {
		return nil, fmt.Errorf("sorted students export: %w", member.ErrNoMembers)
	}

	member.SortBySurname(members)
	return renderMembers("026 Students List", "026 Students.pdf", members)
}

// Excos exports the exco roster ordered by surname.
func (s *Service) Excos(ctx context.Context) (*Document, error) {
	excos, err := s.members.FindByRole(ctx, "exco")
	if err != nil {
		return nil, fmt.Errorf("list excos: %w", err)
	}
	if len(excos) == 0 {
		return nil, fmt.Errorf("excos export: %w", ErrNoExcos)
	}

	member.SortBySurname(excos)
	return renderMembers("026 Excos List", "026_Excos.pdf", excos)
}

// MembersByGender exports members of one gender ordered by surname.
func (s *Service) MembersByGender(ctx context.Context, gender string) (*Document, error) {
	gender = strings.ToLower(strings.TrimSpace(gender))
	if !validate.IsGender(gender) {
		return nil, sharedError.NewValidation("gender", "Invalid gender. Please provide 'male' or 'female'.")
	}

	members, err := s.members.FindByGender(ctx, gender)
	if err != nil {
		return nil, fmt.Errorf("list members by gender: %w", err)
	}
	if len(members) == 0 {
		return nil, fmt.Errorf("gender export %s: %w", gender, member.ErrNoMembersForGender)
	}

	member.SortBySurname(members)
	return renderMembers(
		fmt.Sprintf("026 Members (%s)", validate.Word(gender)),
		fmt.Sprintf("026_Members_%s.pdf", gender),
		members,
	)
}

// GroupedMembers exports the sorted roster split into fixed-size course
// groups, one grid per group.
func (s *Service) GroupedMembers(ctx context.Context, req *GroupsRequest) (*Document, error) {
	courseTitle := strings.TrimSpace(req.CourseTitle)
	if courseTitle == "" {
		return nil, sharedError.NewValidation("course_title", "Course title is required")
	}
	if req.GroupSize <= 0 {
		return nil, sharedError.NewValidation("group_size", "Group size must be greater than zero")
	}

	members, err := s.members.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list members: %w", err)
	}
	if len(members) == 0 {
		return nil, fmt.Errorf("groups export: %w", member.ErrNoMembers)
	}

	member.SortBySurname(members)

	var tables []Table
	for start := 0; start < len(members); start += req.GroupSize {
		end := start + req.GroupSize
		if end > len(members) {
			end = len(members)
		}
		tables = append(tables, Table{
			Heading: fmt.Sprintf("Group %d", len(tables)+1),
			Headers: memberHeaders,
			Rows:    memberRows(members[start:end]),
		})
	}

	data, err := Render(courseTitle+" - Grouping", tables)
	if err != nil {
		return nil, err
	}
	return &Document{Filename: courseTitle + "_Groups.pdf", Data: data}, nil
}

// Lecturers exports all lecturers ordered by surname.
func (s *Service) Lecturers(ctx context.Context) (*Document, error) {
	lecturers, err := s.lecturers.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list lecturers: %w", err)
	}
	if len(lecturers) == 0 {
		return nil, fmt.Errorf("lecturers export: %w", lecturer.ErrNoLecturers)
	}

	sort.SliceStable(lecturers, func(i, j int) bool {
		return strings.ToLower(lecturers[i].Surname) < strings.ToLower(lecturers[j].Surname)
	})

	data, err := Render("All Lecturers List", []Table{{Headers: lecturerHeaders, Rows: lecturerRows(lecturers)}})
	if err != nil {
		return nil, err
	}
	return &Document{Filename: "All_Lecturers.pdf", Data: data}, nil
}
