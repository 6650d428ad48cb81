package users_controllers

import (
	"net/http"
	"testing"

	users_dto "teamboard/internal/features/users/dto"
	users_middleware "teamboard/internal/features/users/middleware"
	users_services "teamboard/internal/features/users/services"
	users_testing "teamboard/internal/features/users/testing"
	test_utils "teamboard/internal/util/testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"golang.org/x/time/rate"
)

type AuditLogWriterStub struct{}

func (s *AuditLogWriterStub) WriteAuditLog(message string, userID *uuid.UUID, projectID *uuid.UUID) {}

func createUserTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	v1 := router.Group("/api/v1")

	// Register public routes
	GetUserController().RegisterRoutes(v1)

	// Register protected routes with auth middleware
	protected := v1.Group("").Use(users_middleware.AuthMiddleware(users_services.GetUserService()))
	GetUserController().RegisterProtectedRoutes(protected.(*gin.RouterGroup))
	GetUserController().SetSignInLimiter(rate.NewLimiter(rate.Limit(100), 100))

	users_services.GetUserService().SetAuditLogWriter(&AuditLogWriterStub{})

	return router
}

func Test_RegisterUser_WithValidData_UserCreated(t *testing.T) {
	router := createUserTestRouter()

	request := users_dto.RegisterRequestDTO{
		Email:    "test" + uuid.New().String() + "@example.com",
		Password: "testpassword123",
		Name:     "Test User",
	}

	var response users_dto.UserProfileResponseDTO
	test_utils.MakePostRequestAndUnmarshal(
		t,
		router,
		"/api/v1/users/register",
		"",
		request,
		http.StatusOK,
		&response,
	)

	assert.Equal(t, request.Email, response.Email)
	assert.Equal(t, "Test User", response.Name)
	assert.NotEqual(t, uuid.Nil, response.ID)
}

func Test_RegisterUser_WithDuplicateEmail_ReturnsConflict(t *testing.T) {
	router := createUserTestRouter()
	email := "duplicate" + uuid.New().String() + "@example.com"

	request := users_dto.RegisterRequestDTO{
		Email:    email,
		Password: "testpassword123",
		Name:     "First User",
	}

	test_utils.MakePostRequest(t, router, "/api/v1/users/register", "", request, http.StatusOK)

	resp := test_utils.MakePostRequest(t, router, "/api/v1/users/register", "", request, http.StatusConflict)
	assert.Contains(t, string(resp.Body), "email already registered")
}

func Test_RegisterUser_WithValidationErrors_ReturnsBadRequest(t *testing.T) {
	router := createUserTestRouter()

	testCases := []struct {
		name    string
		request users_dto.RegisterRequestDTO
	}{
		{
			name: "missing email",
			request: users_dto.RegisterRequestDTO{
				Password: "testpassword123",
				Name:     "No Email",
			},
		},
		{
			name: "missing name",
			request: users_dto.RegisterRequestDTO{
				Email:    "test@example.com",
				Password: "testpassword123",
			},
		},
		{
			name: "short password",
			request: users_dto.RegisterRequestDTO{
				Email:    "test@example.com",
				Password: "short",
				Name:     "Short Password",
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			test_utils.MakePostRequest(t, router, "/api/v1/users/register", "", tc.request, http.StatusBadRequest)
		})
	}
}

func Test_SignInUser_WithValidCredentials_ReturnsToken(t *testing.T) {
	router := createUserTestRouter()
	email := "signin" + uuid.New().String() + "@example.com"
	password := "testpassword123"

	registerRequest := users_dto.RegisterRequestDTO{
		Email:    email,
		Password: password,
		Name:     "Signin User",
	}
	test_utils.MakePostRequest(t, router, "/api/v1/users/register", "", registerRequest, http.StatusOK)

	signinRequest := users_dto.SignInRequestDTO{
		Email:    email,
		Password: password,
	}

	var response users_dto.SignInResponseDTO
	test_utils.MakePostRequestAndUnmarshal(
		t,
		router,
		"/api/v1/users/signin",
		"",
		signinRequest,
		http.StatusOK,
		&response,
	)

	assert.NotEmpty(t, response.Token)
	assert.Equal(t, email, response.Email)
}

func Test_SignInUser_WithWrongPassword_ReturnsBadRequest(t *testing.T) {
	router := createUserTestRouter()
	email := "wrongpass" + uuid.New().String() + "@example.com"

	registerRequest := users_dto.RegisterRequestDTO{
		Email:    email,
		Password: "correctpassword",
		Name:     "Wrong Password User",
	}
	test_utils.MakePostRequest(t, router, "/api/v1/users/register", "", registerRequest, http.StatusOK)

	signinRequest := users_dto.SignInRequestDTO{
		Email:    email,
		Password: "wrongpassword",
	}

	resp := test_utils.MakePostRequest(t, router, "/api/v1/users/signin", "", signinRequest, http.StatusBadRequest)
	assert.Contains(t, string(resp.Body), "invalid email or password")
}

func Test_GetCurrentUser_WithValidToken_ReturnsProfile(t *testing.T) {
	router := createUserTestRouter()
	user := users_testing.CreateTestUser()

	var response users_dto.UserProfileResponseDTO
	test_utils.MakeGetRequestAndUnmarshal(
		t,
		router,
		"/api/v1/users/me",
		"Bearer "+user.Token,
		http.StatusOK,
		&response,
	)

	assert.Equal(t, user.UserID, response.ID)
	assert.Equal(t, user.Email, response.Email)
}

func Test_GetCurrentUser_WithoutToken_ReturnsUnauthorized(t *testing.T) {
	router := createUserTestRouter()

	test_utils.MakeGetRequest(t, router, "/api/v1/users/me", "", http.StatusUnauthorized)
}

func Test_UpdateProfile_WithNewName_NameUpdated(t *testing.T) {
	router := createUserTestRouter()
	user := users_testing.CreateTestUser()

	request := users_dto.UpdateProfileRequestDTO{
		Name: "Renamed User",
	}

	var response users_dto.UserProfileResponseDTO
	test_utils.MakeRequest(t, router, "PUT", "/api/v1/users/profile", "Bearer "+user.Token, request, http.StatusOK)

	test_utils.MakeGetRequestAndUnmarshal(
		t,
		router,
		"/api/v1/users/me",
		"Bearer "+user.Token,
		http.StatusOK,
		&response,
	)

	assert.Equal(t, "Renamed User", response.Name)
}

func Test_Logout_ThenUseToken_ReturnsUnauthorized(t *testing.T) {
	router := createUserTestRouter()
	email := "logout" + uuid.New().String() + "@example.com"
	password := "testpassword123"

	registerRequest := users_dto.RegisterRequestDTO{
		Email:    email,
		Password: password,
		Name:     "Logout User",
	}
	test_utils.MakePostRequest(t, router, "/api/v1/users/register", "", registerRequest, http.StatusOK)

	var signinResponse users_dto.SignInResponseDTO
	test_utils.MakePostRequestAndUnmarshal(
		t,
		router,
		"/api/v1/users/signin",
		"",
		users_dto.SignInRequestDTO{Email: email, Password: password},
		http.StatusOK,
		&signinResponse,
	)

	test_utils.MakeGetRequest(t, router, "/api/v1/users/me", "Bearer "+signinResponse.Token, http.StatusOK)

	test_utils.MakePostRequest(
		t,
		router,
		"/api/v1/users/logout",
		"Bearer "+signinResponse.Token,
		nil,
		http.StatusOK,
	)

	test_utils.MakeGetRequest(t, router, "/api/v1/users/me", "Bearer "+signinResponse.Token, http.StatusUnauthorized)
}

func Test_UserSettings_SaveAndGet_RoundTrips(t *testing.T) {
	router := createUserTestRouter()
	user := users_testing.CreateTestUser()

	request := users_dto.UserSettingsRequestDTO{DarkMode: true}
	test_utils.MakeRequest(t, router, "PUT", "/api/v1/users/settings", "Bearer "+user.Token, request, http.StatusOK)

	resp := test_utils.MakeGetRequest(t, router, "/api/v1/users/settings", "Bearer "+user.Token, http.StatusOK)
	assert.Contains(t, string(resp.Body), "\"darkMode\":true")
}
