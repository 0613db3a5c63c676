package member_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/dept-026/membership-api/internal/member"
	sharedError "github.com/dept-026/membership-api/internal/shared/error"
	"github.com/dept-026/membership-api/internal/shared/testutil"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupTestEnvironment creates all dependencies needed for member handler tests
func setupTestEnvironment(t *testing.T) (*gin.Engine, *testutil.MemberStore, *testutil.RecordingMailer) {
	t.Helper()

	store := testutil.NewMemberStore()
	mail := testutil.NewRecordingMailer()
	service := member.NewService(store, mail)
	handler := member.NewHandler(service)

	router := testutil.SetupTestRouter()
	router.POST("/api/register", handler.Register)
	router.POST("/api/v1/register_student_no_mail", handler.RegisterNoMail)
	router.POST("/api/student/login", handler.Login)
	router.POST("/api/change-password", handler.ChangePassword)
	router.POST("/api/student/forgot-password", handler.ForgotPassword)
	router.POST("/api/student/reset-password-using-otp", handler.ResetPassword)
	router.GET("/members/stats", handler.Stats)
	router.GET("/students/summary-sorted", handler.SummarySorted)
	router.POST("/students/by-gender", handler.ByGender)

	return router, store, mail
}

func validRegisterRequest() member.RegisterRequest {
	return member.RegisterRequest{
		Surname:       "okoye",
		FirstName:     "ada",
		AdmissionType: "utme",
		PhoneNumber:   "08031234567",
		Email:         "ADA.OKOYE@gmail.com",
		Gender:        "Female",
		Role:          "Student",
		RegNo:         "2022/cs/01",
	}
}

func registerMember(t *testing.T, router *gin.Engine, req member.RegisterRequest) {
	t.Helper()

	recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodPost,
		URL:    "/api/register",
		Body:   req,
	})
	require.Equal(t, http.StatusCreated, recorder.Code, "register failed: %s", recorder.Body.String())
}

func TestRegister_Success_NormalizesFields(t *testing.T) {
	// Given: a raw registration payload with unnormalized casing
	router, store, mail := setupTestEnvironment(t)

	// When: the member registers
	registerMember(t, router, validRegisterRequest())

	// Then: the stored record carries normalized fields
	stored, err := store.FindByRegNo(context.Background(), "2022/CS/01")
	require.NoError(t, err)
	assert.Equal(t, "Okoye", stored.Surname)
	assert.Equal(t, "Ada", stored.FirstName)
	assert.Equal(t, "ada.okoye@gmail.com", stored.Email)
	assert.Equal(t, "Female", stored.Gender)
	assert.Equal(t, "Student", stored.Role)
	assert.Equal(t, "Utme", stored.AdmissionType)
	assert.NotEqual(t, "000000", stored.Password, "password must be stored hashed")

	// Then: the welcome email discloses the default password exactly once
	welcomes := mail.Kind("member_welcome")
	require.Len(t, welcomes, 1)
	assert.Equal(t, "ada.okoye@gmail.com", welcomes[0].To)
	assert.Equal(t, "000000", welcomes[0].Password)
	assert.Equal(t, "2022/CS/01", welcomes[0].RegNo)
}

func TestRegister_DuplicateRegNo(t *testing.T) {
	router, store, _ := setupTestEnvironment(t)

	registerMember(t, router, validRegisterRequest())

	// When: a second registration reuses the reg_no with a fresh email
	second := validRegisterRequest()
	second.Email = "other.person1@gmail.com"
	second.PhoneNumber = "08131234567"

	recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodPost,
		URL:    "/api/register",
		Body:   second,
	})

	// Then: conflict, and the store still holds exactly one record
	assert.Equal(t, http.StatusConflict, recorder.Code)

	var errorResponse sharedError.ErrorResponse
	testutil.ParseResponse(t, recorder, &errorResponse)
	assert.Equal(t, "MEMBER-002", errorResponse.Code)

	all, err := store.FindAll(context.Background())
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	router, _, _ := setupTestEnvironment(t)

	registerMember(t, router, validRegisterRequest())

	second := validRegisterRequest()
	second.RegNo = "2022/cs/02"

	recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodPost,
		URL:    "/api/register",
		Body:   second,
	})

	assert.Equal(t, http.StatusConflict, recorder.Code)

	var errorResponse sharedError.ErrorResponse
	testutil.ParseResponse(t, recorder, &errorResponse)
	assert.Equal(t, "MEMBER-001", errorResponse.Code)
}

func TestRegister_ValidationErrors(t *testing.T) {
	testCases := []struct {
		name    string
		mutate  func(*member.RegisterRequest)
		message string
	}{
		{
			name:    "invalid admission type",
			mutate:  func(r *member.RegisterRequest) { r.AdmissionType = "jamb" },
			message: "Admission type must be one of 'utme', 'direct entry', 'transfer admission'",
		},
		{
			name:    "invalid phone number",
			mutate:  func(r *member.RegisterRequest) { r.PhoneNumber = "12345" },
			message: "Invalid Nigerian phone number",
		},
		{
			name:    "invalid email domain",
			mutate:  func(r *member.RegisterRequest) { r.Email = "ada.okoye@yahoo.com" },
			message: "Invalid Gmail address",
		},
		{
			name:    "invalid gender",
			mutate:  func(r *member.RegisterRequest) { r.Gender = "other" },
			message: "Gender must be either 'Male' or 'Female'",
		},
		{
			name:    "invalid role",
			mutate:  func(r *member.RegisterRequest) { r.Role = "lecturer" },
			message: "Role must be either 'Student' or 'Exco'",
		},
		{
			name:    "reg_no wrong prefix",
			mutate:  func(r *member.RegisterRequest) { r.RegNo = "2023/cs/01" },
			message: "Registration number must start with '2022/'",
		},
		{
			name:    "reg_no too long",
			mutate:  func(r *member.RegisterRequest) { r.RegNo = "2022/csc/123" },
			message: "Registration number must not exceed 11 characters",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			router, _, mail := setupTestEnvironment(t)

			req := validRegisterRequest()
			tc.mutate(&req)

			recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
				Method: http.MethodPost,
				URL:    "/api/register",
				Body:   req,
			})

			assert.Equal(t, http.StatusBadRequest, recorder.Code)

			var errorResponse sharedError.ErrorResponse
			testutil.ParseResponse(t, recorder, &errorResponse)
			assert.Equal(t, tc.message, errorResponse.Message)
			assert.Empty(t, mail.Sent, "no email on validation failure")
		})
	}
}

func TestRegisterNoMail_SkipsWelcomeEmail(t *testing.T) {
	router, store, mail := setupTestEnvironment(t)

	recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodPost,
		URL:    "/api/v1/register_student_no_mail",
		Body:   validRegisterRequest(),
	})

	assert.Equal(t, http.StatusCreated, recorder.Code)
	assert.Empty(t, mail.Sent)

	_, err := store.FindByRegNo(context.Background(), "2022/CS/01")
	assert.NoError(t, err)
}

func TestLogin_DefaultPasswordRoundTrip(t *testing.T) {
	router, _, _ := setupTestEnvironment(t)
	registerMember(t, router, validRegisterRequest())

	recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodPost,
		URL:    "/api/student/login",
		Body:   member.LoginRequest{RegNo: "2022/cs/01", Password: "000000"},
	})

	require.Equal(t, http.StatusOK, recorder.Code)

	var response map[string]any
	testutil.ParseResponse(t, recorder, &response)
	assert.Equal(t, "Login successful", response["message"])

	student, ok := response["student"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "2022/CS/01", student["reg_no"])
	assert.NotContains(t, student, "password")
	assert.NotContains(t, student, "reset_otp")
}

func TestLogin_InvalidCredentials(t *testing.T) {
	router, _, _ := setupTestEnvironment(t)
	registerMember(t, router, validRegisterRequest())

	testCases := []struct {
		name string
		body member.LoginRequest
	}{
		{"wrong password", member.LoginRequest{RegNo: "2022/cs/01", Password: "wrong"}},
		{"unknown reg_no", member.LoginRequest{RegNo: "2022/cs/99", Password: "000000"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
				Method: http.MethodPost,
				URL:    "/api/student/login",
				Body:   tc.body,
			})

			assert.Equal(t, http.StatusUnauthorized, recorder.Code)

			var errorResponse sharedError.ErrorResponse
			testutil.ParseResponse(t, recorder, &errorResponse)
			assert.Equal(t, "MEMBER-004", errorResponse.Code, "credential errors stay generic")
		})
	}
}

func TestChangePassword_RoundTrip(t *testing.T) {
	router, _, mail := setupTestEnvironment(t)
	registerMember(t, router, validRegisterRequest())

	// When: the member changes the default password
	recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodPost,
		URL:    "/api/change-password",
		Body: member.ChangePasswordRequest{
			RegNo:            "2022/cs/01",
			PreviousPassword: "000000",
			NewPassword:      "new-secret",
		},
	})
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Len(t, mail.Kind("password_change"), 1)

	// Then: the old password no longer authenticates
	oldLogin := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodPost,
		URL:    "/api/student/login",
		Body:   member.LoginRequest{RegNo: "2022/cs/01", Password: "000000"},
	})
	assert.Equal(t, http.StatusUnauthorized, oldLogin.Code)

	// Then: the new one does
	newLogin := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodPost,
		URL:    "/api/student/login",
		Body:   member.LoginRequest{RegNo: "2022/cs/01", Password: "new-secret"},
	})
	assert.Equal(t, http.StatusOK, newLogin.Code)
}

func TestChangePassword_WrongPrevious(t *testing.T) {
	router, _, mail := setupTestEnvironment(t)
	registerMember(t, router, validRegisterRequest())

	recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodPost,
		URL:    "/api/change-password",
		Body: member.ChangePasswordRequest{
			RegNo:            "2022/cs/01",
			PreviousPassword: "wrong",
			NewPassword:      "new-secret",
		},
	})

	assert.Equal(t, http.StatusBadRequest, recorder.Code)

	var errorResponse sharedError.ErrorResponse
	testutil.ParseResponse(t, recorder, &errorResponse)
	assert.Equal(t, "MEMBER-005", errorResponse.Code)
	assert.Empty(t, mail.Kind("password_change"))
}

func TestForgotPassword_IssuesOTP(t *testing.T) {
	router, store, mail := setupTestEnvironment(t)
	registerMember(t, router, validRegisterRequest())

	recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodPost,
		URL:    "/api/student/forgot-password",
		Body:   member.ForgotPasswordRequest{RegNo: "2022/cs/01"},
	})

	require.Equal(t, http.StatusOK, recorder.Code)

	var response member.ForgotPasswordResponse
	testutil.ParseResponse(t, recorder, &response)
	assert.Equal(t, "success", response.Status)

	otps := mail.Kind("member_otp")
	require.Len(t, otps, 1)
	assert.Regexp(t, `^\d{6}$`, otps[0].Code)

	stored, err := store.FindByRegNo(context.Background(), "2022/CS/01")
	require.NoError(t, err)
	assert.Equal(t, otps[0].Code, stored.ResetOTP)
	assert.WithinDuration(t, time.Now().UTC().Add(5*time.Minute), stored.OTPExpiry, 10*time.Second)
}

func TestForgotPassword_IdempotentWithinWindow(t *testing.T) {
	router, _, mail := setupTestEnvironment(t)
	registerMember(t, router, validRegisterRequest())

	first := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodPost,
		URL:    "/api/student/forgot-password",
		Body:   member.ForgotPasswordRequest{RegNo: "2022/cs/01"},
	})
	require.Equal(t, http.StatusOK, first.Code)

	// When: the member asks again before the code expires
	second := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodPost,
		URL:    "/api/student/forgot-password",
		Body:   member.ForgotPasswordRequest{RegNo: "2022/cs/01"},
	})
	require.Equal(t, http.StatusOK, second.Code)

	var response member.ForgotPasswordResponse
	testutil.ParseResponse(t, second, &response)
	assert.Equal(t, "pending", response.Status)

	// Then: no second OTP was generated or sent
	assert.Len(t, mail.Kind("member_otp"), 1)
}

func TestResetPassword_WithValidOTP(t *testing.T) {
	router, store, mail := setupTestEnvironment(t)
	registerMember(t, router, validRegisterRequest())

	forgot := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodPost,
		URL:    "/api/student/forgot-password",
		Body:   member.ForgotPasswordRequest{RegNo: "2022/cs/01"},
	})
	require.Equal(t, http.StatusOK, forgot.Code)

	code := mail.Kind("member_otp")[0].Code

	recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodPost,
		URL:    "/api/student/reset-password-using-otp",
		Body: member.ResetPasswordRequest{
			RegNo:       "2022/cs/01",
			OTP:         code,
			NewPassword: "after-reset",
		},
	})
	require.Equal(t, http.StatusOK, recorder.Code)

	// Then: the OTP fields are cleared with the password update
	stored, err := store.FindByRegNo(context.Background(), "2022/CS/01")
	require.NoError(t, err)
	assert.Empty(t, stored.ResetOTP)
	assert.True(t, stored.OTPExpiry.IsZero())

	login := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodPost,
		URL:    "/api/student/login",
		Body:   member.LoginRequest{RegNo: "2022/cs/01", Password: "after-reset"},
	})
	assert.Equal(t, http.StatusOK, login.Code)
}

func TestResetPassword_InvalidOTP(t *testing.T) {
	router, _, _ := setupTestEnvironment(t)
	registerMember(t, router, validRegisterRequest())

	testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodPost,
		URL:    "/api/student/forgot-password",
		Body:   member.ForgotPasswordRequest{RegNo: "2022/cs/01"},
	})

	recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodPost,
		URL:    "/api/student/reset-password-using-otp",
		Body: member.ResetPasswordRequest{
			RegNo:       "2022/cs/01",
			OTP:         "000001",
			NewPassword: "after-reset",
		},
	})

	assert.Equal(t, http.StatusBadRequest, recorder.Code)

	var errorResponse sharedError.ErrorResponse
	testutil.ParseResponse(t, recorder, &errorResponse)
	assert.Equal(t, "MEMBER-006", errorResponse.Code)
}

func TestResetPassword_Expired_LeavesStaleCode(t *testing.T) {
	router, store, _ := setupTestEnvironment(t)
	registerMember(t, router, validRegisterRequest())

	// Given: an OTP that expired a minute ago
	past := time.Now().UTC().Add(-time.Minute)
	require.NoError(t, store.SetResetOTP(context.Background(), "2022/CS/01", "123456", past))

	recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodPost,
		URL:    "/api/student/reset-password-using-otp",
		Body: member.ResetPasswordRequest{
			RegNo:       "2022/cs/01",
			OTP:         "123456",
			NewPassword: "after-reset",
		},
	})

	assert.Equal(t, http.StatusBadRequest, recorder.Code)

	var errorResponse sharedError.ErrorResponse
	testutil.ParseResponse(t, recorder, &errorResponse)
	assert.Equal(t, "MEMBER-007", errorResponse.Code)

	// Then: the stale code is left in place, to be overwritten by the
	// next forgot-password request
	stored, err := store.FindByRegNo(context.Background(), "2022/CS/01")
	require.NoError(t, err)
	assert.Equal(t, "123456", stored.ResetOTP)
}

func TestStats_CountsByRole(t *testing.T) {
	router, _, _ := setupTestEnvironment(t)

	first := validRegisterRequest()
	registerMember(t, router, first)

	second := validRegisterRequest()
	second.Surname = "bello"
	second.Email = "bello.musa1@gmail.com"
	second.PhoneNumber = "08131234567"
	second.Gender = "Male"
	second.Role = "Exco"
	second.RegNo = "2022/cs/02"
	registerMember(t, router, second)

	recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodGet,
		URL:    "/members/stats",
	})
	require.Equal(t, http.StatusOK, recorder.Code)

	var response member.StatsResponse
	testutil.ParseResponse(t, recorder, &response)
	assert.Equal(t, int64(1), response.Summary.TotalExcos)
	assert.Equal(t, int64(1), response.Summary.TotalStudents)
	assert.Equal(t, 2, response.Summary.TotalMembers)
	assert.Len(t, response.Members, 2)
}

func TestSummarySorted(t *testing.T) {
	router, _, _ := setupTestEnvironment(t)

	// Given: surnames inserted out of alphabetical order
	first := validRegisterRequest()
	registerMember(t, router, first) // Okoye

	second := validRegisterRequest()
	second.Surname = "bello"
	second.Email = "bello.musa1@gmail.com"
	second.PhoneNumber = "08131234567"
	second.Gender = "Male"
	second.RegNo = "2022/cs/02"
	registerMember(t, router, second)

	recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodGet,
		URL:    "/students/summary-sorted",
	})
	require.Equal(t, http.StatusOK, recorder.Code)

	var response member.SummaryResponse
	testutil.ParseResponse(t, recorder, &response)
	assert.Equal(t, 2, response.TotalStudents)
	assert.Equal(t, 1, response.Male)
	assert.Equal(t, 1, response.Female)
	require.Len(t, response.Students, 2)
	assert.Equal(t, "Bello", response.Students[0].Surname)
	assert.Equal(t, "Okoye", response.Students[1].Surname)
}

func TestSummarySorted_EmptyRoster(t *testing.T) {
	router, _, _ := setupTestEnvironment(t)

	recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodGet,
		URL:    "/students/summary-sorted",
	})

	assert.Equal(t, http.StatusNotFound, recorder.Code)

	var errorResponse sharedError.ErrorResponse
	testutil.ParseResponse(t, recorder, &errorResponse)
	assert.Equal(t, "MEMBER-008", errorResponse.Code)
}

func TestByGender(t *testing.T) {
	router, _, _ := setupTestEnvironment(t)
	registerMember(t, router, validRegisterRequest())

	recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodPost,
		URL:    "/students/by-gender",
		Body:   member.ByGenderRequest{Gender: "female"},
	})
	require.Equal(t, http.StatusOK, recorder.Code)

	var response map[string]any
	testutil.ParseResponse(t, recorder, &response)
	assert.Equal(t, float64(1), response["total"])

	// None registered for the other gender
	missing := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodPost,
		URL:    "/students/by-gender",
		Body:   member.ByGenderRequest{Gender: "male"},
	})
	assert.Equal(t, http.StatusNotFound, missing.Code)

	// Invalid gender is a validation error
	invalid := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodPost,
		URL:    "/students/by-gender",
		Body:   member.ByGenderRequest{Gender: "unknown"},
	})
	assert.Equal(t, http.StatusBadRequest, invalid.Code)
}
