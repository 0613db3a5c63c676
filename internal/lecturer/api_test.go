package lecturer_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/dept-026/membership-api/internal/lecturer"
	"github.com/dept-026/membership-api/internal/model"
	sharedError "github.com/dept-026/membership-api/internal/shared/error"
	"github.com/dept-026/membership-api/internal/shared/testutil"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

type testEnv struct {
	router    *gin.Engine
	lecturers *testutil.LecturerStore
	directory *testutil.DirectoryStore
	members   *testutil.MemberStore
	mail      *testutil.RecordingMailer
}

// setupTestEnvironment creates all dependencies needed for lecturer handler tests
func setupTestEnvironment(t *testing.T) *testEnv {
	t.Helper()

	lecturers := testutil.NewLecturerStore()
	directory := testutil.NewDirectoryStore()
	members := testutil.NewMemberStore()
	mail := testutil.NewRecordingMailer()

	service := lecturer.NewService(lecturers, directory, members, mail)
	handler := lecturer.NewHandler(service)

	router := testutil.SetupTestRouter()
	router.POST("/api/register/lecturer", handler.Register)
	router.POST("/api/lecturer/login", handler.Login)
	router.POST("/api/lecturer/change_password", handler.ChangePassword)
	router.POST("/api/lecturer/forgot-password", handler.ForgotPassword)
	router.POST("/api/lecturer/reset-password-using-otp", handler.ResetPassword)
	router.POST("/api/promote/student", handler.Promote)
	router.POST("/api/demote/student", handler.Demote)
	router.GET("/Student/view_all_lecturers", handler.Directory)

	return &testEnv{
		router:    router,
		lecturers: lecturers,
		directory: directory,
		members:   members,
		mail:      mail,
	}
}

func validLecturerRequest() lecturer.RegisterRequest {
	return lecturer.RegisterRequest{
		Surname:     "ibe",
		FirstName:   "john",
		PhoneNumber: "08051234567",
		Email:       "john.ibe@gmail.com",
		Gender:      "male",
		Title:       "dr",
	}
}

func registerLecturer(t *testing.T, env *testEnv) {
	t.Helper()

	recorder := testutil.ExecuteRequest(t, env.router, testutil.TestRequest{
		Method: http.MethodPost,
		URL:    "/api/register/lecturer",
		Body:   validLecturerRequest(),
	})
	require.Equal(t, http.StatusCreated, recorder.Code, "lecturer register failed: %s", recorder.Body.String())
}

// seedStudent inserts a member record directly, bypassing the
// registration flow; role transition only needs existence and role.
func seedStudent(t *testing.T, env *testEnv, regNo, role string) {
	t.Helper()

	err := env.members.Insert(context.Background(), &model.Member{
		Surname:     "Okoye",
		FirstName:   "Ada",
		PhoneNumber: "08031234567",
		Email:       "ada.okoye@gmail.com",
		Gender:      "Female",
		Role:        role,
		RegNo:       regNo,
	})
	require.NoError(t, err)
}

func TestRegisterLecturer_Success(t *testing.T) {
	env := setupTestEnvironment(t)

	registerLecturer(t, env)

	stored, err := env.lecturers.FindByEmail(context.Background(), "john.ibe@gmail.com")
	require.NoError(t, err)
	assert.Equal(t, "Ibe", stored.Surname)
	assert.Equal(t, "John", stored.FirstName)
	assert.Equal(t, "Dr", stored.Title)
	assert.Equal(t, "lecturer", stored.Role)

	welcomes := env.mail.Kind("lecturer_welcome")
	require.Len(t, welcomes, 1)
	assert.Equal(t, "Dr Ibe John", welcomes[0].Name)
	assert.Equal(t, "000000", welcomes[0].Password)
}

func TestRegisterLecturer_DuplicatePhone(t *testing.T) {
	env := setupTestEnvironment(t)
	registerLecturer(t, env)

	second := validLecturerRequest()
	second.Email = "other.email1@gmail.com"

	recorder := testutil.ExecuteRequest(t, env.router, testutil.TestRequest{
		Method: http.MethodPost,
		URL:    "/api/register/lecturer",
		Body:   second,
	})

	assert.Equal(t, http.StatusConflict, recorder.Code)

	var errorResponse sharedError.ErrorResponse
	testutil.ParseResponse(t, recorder, &errorResponse)
	assert.Equal(t, "LECTURER-001", errorResponse.Code)
}

func TestRegisterLecturer_InvalidTitle(t *testing.T) {
	env := setupTestEnvironment(t)

	req := validLecturerRequest()
	req.Title = "Mr"

	recorder := testutil.ExecuteRequest(t, env.router, testutil.TestRequest{
		Method: http.MethodPost,
		URL:    "/api/register/lecturer",
		Body:   req,
	})

	assert.Equal(t, http.StatusBadRequest, recorder.Code)

	var errorResponse sharedError.ErrorResponse
	testutil.ParseResponse(t, recorder, &errorResponse)
	assert.Equal(t, "Title must be either 'Dr' or 'Prof'", errorResponse.Message)
}

func TestLecturerLogin(t *testing.T) {
	env := setupTestEnvironment(t)
	registerLecturer(t, env)

	recorder := testutil.ExecuteRequest(t, env.router, testutil.TestRequest{
		Method: http.MethodPost,
		URL:    "/api/lecturer/login",
		Body:   lecturer.LoginRequest{Email: "JOHN.IBE@gmail.com", Password: "000000"},
	})
	require.Equal(t, http.StatusOK, recorder.Code)

	var response map[string]any
	testutil.ParseResponse(t, recorder, &response)
	record, ok := response["lecturer"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "john.ibe@gmail.com", record["email"])
	assert.NotContains(t, record, "password")

	wrong := testutil.ExecuteRequest(t, env.router, testutil.TestRequest{
		Method: http.MethodPost,
		URL:    "/api/lecturer/login",
		Body:   lecturer.LoginRequest{Email: "john.ibe@gmail.com", Password: "bad"},
	})
	assert.Equal(t, http.StatusUnauthorized, wrong.Code)
}

func TestPromote_TransitionsOnce(t *testing.T) {
	env := setupTestEnvironment(t)
	registerLecturer(t, env)
	seedStudent(t, env, "2022/CS/01", "Student")

	body := lecturer.RoleChangeRequest{
		Email:    "john.ibe@gmail.com",
		Password: "000000",
		RegNo:    "2022/cs/01",
	}

	// When: the student is promoted
	first := testutil.ExecuteRequest(t, env.router, testutil.TestRequest{
		Method: http.MethodPost,
		URL:    "/api/promote/student",
		Body:   body,
	})
	require.Equal(t, http.StatusOK, first.Code)

	var response lecturer.RoleChangeResponse
	testutil.ParseResponse(t, first, &response)
	assert.Equal(t, "Student with reg_no 2022/CS/01 has been promoted from Student to Exco, and notified by email", response.Message)

	stored, err := env.members.FindByRegNo(context.Background(), "2022/CS/01")
	require.NoError(t, err)
	assert.Equal(t, "Exco", stored.Role)
	assert.Len(t, env.mail.Kind("role_change"), 1)

	// When: promoted again
	second := testutil.ExecuteRequest(t, env.router, testutil.TestRequest{
		Method: http.MethodPost,
		URL:    "/api/promote/student",
		Body:   body,
	})
	require.Equal(t, http.StatusOK, second.Code)

	testutil.ParseResponse(t, second, &response)
	assert.Equal(t, "This student is already an Exco", response.Message)

	// Then: no second notification was dispatched
	assert.Len(t, env.mail.Kind("role_change"), 1)
}

func TestDemote_TransitionsBack(t *testing.T) {
	env := setupTestEnvironment(t)
	registerLecturer(t, env)
	seedStudent(t, env, "2022/CS/01", "Exco")

	body := lecturer.RoleChangeRequest{
		Email:    "john.ibe@gmail.com",
		Password: "000000",
		RegNo:    "2022/cs/01",
	}

	first := testutil.ExecuteRequest(t, env.router, testutil.TestRequest{
		Method: http.MethodPost,
		URL:    "/api/demote/student",
		Body:   body,
	})
	require.Equal(t, http.StatusOK, first.Code)

	stored, err := env.members.FindByRegNo(context.Background(), "2022/CS/01")
	require.NoError(t, err)
	assert.Equal(t, "Student", stored.Role)

	// Demoting a student again is a no-op
	second := testutil.ExecuteRequest(t, env.router, testutil.TestRequest{
		Method: http.MethodPost,
		URL:    "/api/demote/student",
		Body:   body,
	})
	require.Equal(t, http.StatusOK, second.Code)

	var response lecturer.RoleChangeResponse
	testutil.ParseResponse(t, second, &response)
	assert.Equal(t, "This user is already a student", response.Message)
	assert.Len(t, env.mail.Kind("role_change"), 1)
}

func TestRoleChange_PreconditionFailures(t *testing.T) {
	env := setupTestEnvironment(t)
	registerLecturer(t, env)
	seedStudent(t, env, "2022/CS/01", "Student")

	testCases := []struct {
		name    string
		body    lecturer.RoleChangeRequest
		message string
	}{
		{
			name:    "lecturer not found",
			body:    lecturer.RoleChangeRequest{Email: "nobody123@gmail.com", Password: "000000", RegNo: "2022/cs/01"},
			message: "Lecturer not found",
		},
		{
			name:    "invalid lecturer password",
			body:    lecturer.RoleChangeRequest{Email: "john.ibe@gmail.com", Password: "wrong", RegNo: "2022/cs/01"},
			message: "Invalid password",
		},
		{
			name:    "student not found",
			body:    lecturer.RoleChangeRequest{Email: "john.ibe@gmail.com", Password: "000000", RegNo: "2022/cs/99"},
			message: "Student not found",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			recorder := testutil.ExecuteRequest(t, env.router, testutil.TestRequest{
				Method: http.MethodPost,
				URL:    "/api/promote/student",
				Body:   tc.body,
			})

			// Every precondition failure is reported the same way
			assert.Equal(t, http.StatusBadRequest, recorder.Code)

			var errorResponse sharedError.ErrorResponse
			testutil.ParseResponse(t, recorder, &errorResponse)
			assert.Equal(t, tc.message, errorResponse.Message)
		})
	}
}

func TestLecturerChangePassword(t *testing.T) {
	env := setupTestEnvironment(t)
	registerLecturer(t, env)

	recorder := testutil.ExecuteRequest(t, env.router, testutil.TestRequest{
		Method: http.MethodPost,
		URL:    "/api/lecturer/change_password",
		Body: lecturer.ChangePasswordRequest{
			Email:            "john.ibe@gmail.com",
			PreviousPassword: "000000",
			NewPassword:      "faculty-secret",
		},
	})
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Len(t, env.mail.Kind("lecturer_password_change"), 1)

	login := testutil.ExecuteRequest(t, env.router, testutil.TestRequest{
		Method: http.MethodPost,
		URL:    "/api/lecturer/login",
		Body:   lecturer.LoginRequest{Email: "john.ibe@gmail.com", Password: "faculty-secret"},
	})
	assert.Equal(t, http.StatusOK, login.Code)
}

func TestLecturerOTPFlow(t *testing.T) {
	env := setupTestEnvironment(t)
	registerLecturer(t, env)

	forgot := testutil.ExecuteRequest(t, env.router, testutil.TestRequest{
		Method: http.MethodPost,
		URL:    "/api/lecturer/forgot-password",
		Body:   lecturer.ForgotPasswordRequest{Email: "john.ibe@gmail.com"},
	})
	require.Equal(t, http.StatusOK, forgot.Code)

	otps := env.mail.Kind("lecturer_otp")
	require.Len(t, otps, 1)

	reset := testutil.ExecuteRequest(t, env.router, testutil.TestRequest{
		Method: http.MethodPost,
		URL:    "/api/lecturer/reset-password-using-otp",
		Body: lecturer.ResetPasswordRequest{
			Email:       "john.ibe@gmail.com",
			OTP:         otps[0].Code,
			NewPassword: "after-reset",
		},
	})
	require.Equal(t, http.StatusOK, reset.Code)

	stored, err := env.lecturers.FindByEmail(context.Background(), "john.ibe@gmail.com")
	require.NoError(t, err)
	assert.Empty(t, stored.ResetOTP)

	login := testutil.ExecuteRequest(t, env.router, testutil.TestRequest{
		Method: http.MethodPost,
		URL:    "/api/lecturer/login",
		Body:   lecturer.LoginRequest{Email: "john.ibe@gmail.com", Password: "after-reset"},
	})
	assert.Equal(t, http.StatusOK, login.Code)
}

func TestDirectory(t *testing.T) {
	env := setupTestEnvironment(t)

	// Empty directory is reported as not found
	empty := testutil.ExecuteRequest(t, env.router, testutil.TestRequest{
		Method: http.MethodGet,
		URL:    "/Student/view_all_lecturers",
	})
	assert.Equal(t, http.StatusNotFound, empty.Code)

	env.directory.Entries = []bson.M{
		{"name": "Prof Zulu", "office": "B12"},
		{"name": "Dr Adamu", "office": "A3"},
	}

	recorder := testutil.ExecuteRequest(t, env.router, testutil.TestRequest{
		Method: http.MethodGet,
		URL:    "/Student/view_all_lecturers",
	})
	require.Equal(t, http.StatusOK, recorder.Code)

	var response lecturer.DirectoryResponse
	testutil.ParseResponse(t, recorder, &response)
	require.Len(t, response.Lecturers, 2)
	assert.Equal(t, "Dr Adamu", response.Lecturers[0]["name"])
	assert.Equal(t, "Prof Zulu", response.Lecturers[1]["name"])
}
