package announcement_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/dept-026/membership-api/internal/announcement"
	"github.com/dept-026/membership-api/internal/model"
	sharedError "github.com/dept-026/membership-api/internal/shared/error"
	"github.com/dept-026/membership-api/internal/shared/testutil"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupTestEnvironment creates all dependencies needed for announcement handler tests
func setupTestEnvironment(t *testing.T) (*gin.Engine, *testutil.MemberStore, *testutil.LecturerStore, *testutil.AnnouncementStore) {
	t.Helper()

	members := testutil.NewMemberStore()
	lecturers := testutil.NewLecturerStore()
	store := testutil.NewAnnouncementStore()

	service := announcement.NewService(store, members, lecturers)
	handler := announcement.NewHandler(service)

	router := testutil.SetupTestRouter()
	router.POST("/announcement", handler.Post)
	router.GET("/get/announcement", handler.List)

	return router, members, lecturers, store
}

func seedExco(t *testing.T, members *testutil.MemberStore) {
	t.Helper()

	err := members.Insert(context.Background(), &model.Member{
		Surname:     "Okoye",
		FirstName:   "Ada",
		PhoneNumber: "08031234567",
		Email:       "ada.okoye@gmail.com",
		Gender:      "Female",
		Role:        "Exco",
		RegNo:       "2022/CS/01",
	})
	require.NoError(t, err)
}

func TestPostAnnouncement_ByExco(t *testing.T) {
	router, members, _, store := setupTestEnvironment(t)
	seedExco(t, members)

	recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodPost,
		URL:    "/announcement",
		Body: announcement.PostRequest{
			PhoneNumber: "08031234567",
			Text:        "Departmental meeting holds on Friday",
		},
	})
	require.Equal(t, http.StatusCreated, recorder.Code)

	stored, err := store.FindByText(context.Background(), "Departmental meeting holds on Friday")
	require.NoError(t, err)
	assert.Equal(t, "exco", stored.Role)
	assert.Equal(t, "Okoye Ada", stored.StudentName)
	assert.Equal(t, "Okoye Ada says: Departmental meeting holds on Friday", stored.Composed)
	assert.False(t, stored.CreatedAt.IsZero())
}

func TestPostAnnouncement_ByLecturerFallback(t *testing.T) {
	router, _, lecturers, _ := setupTestEnvironment(t)

	// Given: the phone number matches no member, but does match a lecturer
	err := lecturers.Insert(context.Background(), &model.Lecturer{
		Surname:     "Ibe",
		FirstName:   "John",
		PhoneNumber: "08051234567",
		Email:       "john.ibe@gmail.com",
		Gender:      "Male",
		Title:       "Dr",
		Role:        "lecturer",
	})
	require.NoError(t, err)

	recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodPost,
		URL:    "/announcement",
		Body: announcement.PostRequest{
			PhoneNumber: "08051234567",
			Text:        "Lecture moved to 10am",
		},
	})

	assert.Equal(t, http.StatusCreated, recorder.Code)
}

func TestPostAnnouncement_StudentForbidden(t *testing.T) {
	router, members, _, _ := setupTestEnvironment(t)

	err := members.Insert(context.Background(), &model.Member{
		Surname:     "Bello",
		FirstName:   "Musa",
		PhoneNumber: "08131234567",
		Role:        "Student",
		RegNo:       "2022/CS/02",
	})
	require.NoError(t, err)

	recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodPost,
		URL:    "/announcement",
		Body: announcement.PostRequest{
			PhoneNumber: "08131234567",
			Text:        "I want to announce something",
		},
	})

	assert.Equal(t, http.StatusForbidden, recorder.Code)

	var errorResponse sharedError.ErrorResponse
	testutil.ParseResponse(t, recorder, &errorResponse)
	assert.Equal(t, "ANNOUNCEMENT-002", errorResponse.Code)
}

func TestPostAnnouncement_UnknownAuthor(t *testing.T) {
	router, _, _, _ := setupTestEnvironment(t)

	recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodPost,
		URL:    "/announcement",
		Body: announcement.PostRequest{
			PhoneNumber: "08099999999",
			Text:        "Hello",
		},
	})

	assert.Equal(t, http.StatusNotFound, recorder.Code)
}

func TestPostAnnouncement_DuplicateRejected(t *testing.T) {
	router, members, _, store := setupTestEnvironment(t)
	seedExco(t, members)

	body := announcement.PostRequest{
		PhoneNumber: "08031234567",
		Text:        "Exam timetable is out",
	}

	first := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodPost, URL: "/announcement", Body: body,
	})
	require.Equal(t, http.StatusCreated, first.Code)

	second := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodPost, URL: "/announcement", Body: body,
	})

	assert.Equal(t, http.StatusConflict, second.Code)

	all, err := store.FindAll(context.Background())
	require.NoError(t, err)
	assert.Len(t, all, 1, "duplicate must be rejected, not merged")
}

func TestListAnnouncements_NewestFirst(t *testing.T) {
	router, members, _, _ := setupTestEnvironment(t)
	seedExco(t, members)

	for _, text := range []string{"first notice", "second notice"} {
		recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
			Method: http.MethodPost,
			URL:    "/announcement",
			Body:   announcement.PostRequest{PhoneNumber: "08031234567", Text: text},
		})
		require.Equal(t, http.StatusCreated, recorder.Code)
	}

	recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodGet,
		URL:    "/get/announcement",
	})
	require.Equal(t, http.StatusOK, recorder.Code)

	var response announcement.ListResponse
	testutil.ParseResponse(t, recorder, &response)
	require.Len(t, response.Announcements, 2)
	assert.False(t, response.Announcements[0].CreatedAt.Before(response.Announcements[1].CreatedAt))
}

func TestListAnnouncements_Empty(t *testing.T) {
	router, _, _, _ := setupTestEnvironment(t)

	recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodGet,
		URL:    "/get/announcement",
	})

	assert.Equal(t, http.StatusNotFound, recorder.Code)
}
