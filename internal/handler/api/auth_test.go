//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"hotel-booking/internal/handler/api"
	resdto "hotel-booking/internal/handler/dto/response"
	"hotel-booking/internal/handler/middleware"
	"hotel-booking/internal/pkg/config"
	"hotel-booking/internal/pkg/cookie"
	"hotel-booking/internal/pkg/errs"
	"hotel-booking/internal/pkg/jwt"
	"hotel-booking/internal/usecase"
	"hotel-booking/tests/common/builder"
	"hotel-booking/tests/common/httptest"
	"hotel-booking/tests/common/testutil"
	commandsmock "hotel-booking/tests/mock/commands"
	queriesmock "hotel-booking/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// fakeOpener hands out one prepared session and records what gets closed.
type fakeOpener struct {
	session *usecase.Session
	opened  int
	closed  []uuid.UUID
}

func (f *fakeOpener) Open() *usecase.Session {
	f.opened++
	return f.session
}

func (f *fakeOpener) Close(id uuid.UUID) {
	f.closed = append(f.closed, id)
}

type AuthHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockAuth    *commandsmock.MockAuthCommands
	mockAccount *queriesmock.MockAccountQueries
	session     *usecase.Session
	opener      *fakeOpener
	tokens      *jwt.Service
	signedIn    *usecase.Session
	handler     *api.AuthHandler
}

func (s *AuthHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockAuth = commandsmock.NewMockAuthCommands(s.mockCtrl)
	s.mockAccount = queriesmock.NewMockAccountQueries(s.mockCtrl)
	s.session = &usecase.Session{ID: uuid.New(), Auth: s.mockAuth, Account: s.mockAccount}
	s.opener = &fakeOpener{session: s.session}
	s.tokens = jwt.NewService("test-secret", time.Hour)
	s.signedIn = nil
	s.handler = api.NewAuthHandler(s.opener, s.tokens, config.NewTestConfig())

	s.router.Use(func(c *gin.Context) {
		if s.signedIn != nil {
			middleware.SetSession(c, s.signedIn)
		}
	})
	s.router.POST("/auth/login", s.handler.Login)
	s.router.POST("/auth/register", s.handler.Register)
	s.router.POST("/auth/logout", s.handler.Logout)
	s.router.GET("/auth/me", s.handler.Me)
}

func (s *AuthHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAuthHandlerSuite(t *testing.T) {
	suite.Run(t, new(AuthHandlerTestSuite))
}

func (s *AuthHandlerTestSuite) assertTokenFor(token string, userID uuid.UUID) {
	claims, err := s.tokens.ValidateToken(token)
	s.Require().NoError(err)
	s.Equal(s.session.ID, claims.SessionID)
	s.Equal(userID, claims.UserID)
}

func (s *AuthHandlerTestSuite) TestLogin() {
	url := "/auth/login"
	a := builder.NewAuthBuilder()
	reqBody := a.BuildDTO()

	s.Run("success: opens a session and sets the cookie", func() {
		u := builder.NewUserBuilder().BuildView()
		s.mockAuth.EXPECT().Login(gomock.Any(), a.BuildLoginInput()).Return(u, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var res resdto.LoginResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &res)
		s.Equal(1, s.opener.opened)
		s.Equal(u.ID.String(), res.User.ID)
		s.Equal("budi@example.com", res.User.Email)
		s.assertTokenFor(res.AccessToken, u.ID)

		c := httptest.ExtractCookie(rec, cookie.SessionTokenCookieName)
		s.Require().NotNil(c)
		s.Equal(res.AccessToken, c.Value)
		s.True(c.HttpOnly)
	})

	s.Run("success: reuses the caller's session", func() {
		s.opener.opened = 0
		s.signedIn = s.session
		u := builder.NewUserBuilder().BuildView()
		s.mockAuth.EXPECT().Login(gomock.Any(), gomock.Any()).Return(u, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
		s.Zero(s.opener.opened)
		s.signedIn = nil
	})

	s.Run("error: 400 on validation errors", func() {
		testCases := []struct {
			name   string
			mutate func(m map[string]any)
		}{
			{name: "missing email", mutate: testutil.Field("email", nil)},
			{name: "missing password", mutate: testutil.Field("password", nil)},
		}
		for _, tc := range testCases {
			s.Run(tc.name, func() {
				body := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
			})
		}
	})

	s.Run("error: a failed sign in closes the new session", func() {
		s.opener.closed = nil
		s.mockAuth.EXPECT().Login(gomock.Any(), gomock.Any()).
			Return(nil, errs.Mark(errors.New("boom"), errs.New("session update failed"))).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Login failed")
		s.Equal([]uuid.UUID{s.session.ID}, s.opener.closed)
		s.Nil(httptest.ExtractCookie(rec, cookie.SessionTokenCookieName))
	})
}

func (s *AuthHandlerTestSuite) TestRegister() {
	a := builder.NewAuthBuilder()

	s.Run("success: returns 201 with the new user", func() {
		u := builder.NewUserBuilder().With(func(b *builder.UserBuilder) {
			b.Name = a.Name
		}).BuildView()
		s.mockAuth.EXPECT().Register(gomock.Any(), a.BuildRegisterInput()).Return(u, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/auth/register", a.BuildRegisterDTO(), "")

		var res resdto.LoginResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &res)
		s.Equal("Budi Santoso", res.User.Name)
		s.assertTokenFor(res.AccessToken, u.ID)
	})

	s.Run("error: 400 without a name", func() {
		body := testutil.DtoMap(s.T(), a.BuildRegisterDTO(), testutil.Field("name", nil))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/auth/register", body, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
	})
}

func (s *AuthHandlerTestSuite) TestLogout() {
	s.Run("success: closes the session and clears the cookie", func() {
		s.signedIn = s.session
		s.opener.closed = nil
		s.mockAuth.EXPECT().Logout(gomock.Any()).Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/auth/logout", nil, "")

		s.Equal(http.StatusNoContent, rec.Code)
		s.Equal([]uuid.UUID{s.session.ID}, s.opener.closed)
		c := httptest.ExtractCookie(rec, cookie.SessionTokenCookieName)
		s.Require().NotNil(c)
		s.Empty(c.Value)
		s.signedIn = nil
	})

	s.Run("error: 401 without a session", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/auth/logout", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})
}

func (s *AuthHandlerTestSuite) TestMe() {
	s.Run("success: returns the current user", func() {
		s.signedIn = s.session
		u := builder.NewUserBuilder().BuildView()
		s.mockAccount.EXPECT().CurrentUser(gomock.Any()).Return(u, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/auth/me", nil, "")

		var res resdto.UserResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &res)
		s.Equal(u.ID.String(), res.ID)
		s.signedIn = nil
	})

	s.Run("error: 401 when the session is signed out", func() {
		s.signedIn = s.session
		s.mockAccount.EXPECT().CurrentUser(gomock.Any()).Return(nil, errs.ErrNotAuthenticated)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/auth/me", nil, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "User not logged in")
		s.signedIn = nil
	})
}
