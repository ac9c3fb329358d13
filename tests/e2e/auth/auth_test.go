//go:build e2e

package auth_test

import (
	"net/http"
	"testing"

	"hotel-booking/internal/handler/dto/request"
	"hotel-booking/tests/common/authtest"
	"hotel-booking/tests/common/httptest"
	"hotel-booking/tests/e2e"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	loginURL    = "/api/auth/login"
	registerURL = "/api/auth/register"
	logoutURL   = "/api/auth/logout"
	meURL       = "/api/auth/me"
)

type authSuite struct {
	e2e.SharedSuite
	jwtHelper *authtest.JWTHelper
}

func TestAuthSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(authSuite))
}

func (s *authSuite) SetupSuite() {
	s.SharedSuite.SetupSuite()
	s.jwtHelper = authtest.NewJWTHelper(s.Config.JWT)
}

func (s *authSuite) TestLogin() {
	tests := []struct {
		name           string
		email          string
		password       string
		expectedStatus int
		description    string
	}{
		{
			name:           "正常なログイン",
			email:          "budi@example.com",
			password:       "password123",
			expectedStatus: http.StatusOK,
			description:    "メールアドレスとパスワードがあればログインできること",
		},
		{
			name:           "未登録のメールアドレス",
			email:          "someone@example.com",
			password:       "anything",
			expectedStatus: http.StatusOK,
			description:    "資格情報は照合されないこと",
		},
		{
			name:           "空のメールアドレス",
			email:          "",
			password:       "password123",
			expectedStatus: http.StatusBadRequest,
			description:    "空のメールアドレスは拒否されること",
		},
		{
			name:           "空のパスワード",
			email:          "budi@example.com",
			password:       "",
			expectedStatus: http.StatusBadRequest,
			description:    "空のパスワードは拒否されること",
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			t := s.T()

			reqBody := request.LoginRequest{
				Email:    tt.email,
				Password: tt.password,
			}

			w := httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL, reqBody, "")
			require.Equal(t, tt.expectedStatus, w.Code, tt.description)

			if tt.expectedStatus == http.StatusOK {
				var loginRes struct {
					AccessToken string `json:"access_token"`
					User        struct {
						Email string `json:"email"`
						Name  string `json:"name"`
					} `json:"user"`
				}
				httptest.AssertSuccessResponse(t, w, http.StatusOK, &loginRes)
				require.NotEmpty(t, loginRes.AccessToken, "アクセストークンが空")
				require.Equal(t, tt.email, loginRes.User.Email)
				require.NotEmpty(t, loginRes.User.Name, "表示名が空")
			}
		})
	}
}

func (s *authSuite) TestRegister() {
	s.Run("登録したユーザーでサインインされる", func() {
		t := s.T()

		reqBody := request.RegisterRequest{
			Email:    "siti@example.com",
			Password: "password123",
			Name:     "Siti Rahma",
		}
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, registerURL, reqBody, "")
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		var res struct {
			AccessToken string `json:"access_token"`
		}
		httptest.AssertSuccessResponse(t, w, http.StatusCreated, &res)

		me := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, res.AccessToken)
		require.Equal(t, http.StatusOK, me.Code)
		require.Contains(t, me.Body.String(), "Siti Rahma")
	})

	s.Run("名前なしは拒否される", func() {
		t := s.T()

		reqBody := request.RegisterRequest{Email: "siti@example.com", Password: "password123"}
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, registerURL, reqBody, "")
		require.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func (s *authSuite) TestLogout() {
	tests := []struct {
		name           string
		setupToken     func() string
		expectedStatus int
		description    string
	}{
		{
			name: "正常なログアウト",
			setupToken: func() string {
				return authtest.LoginUser(s.T(), s.Router, "budi@example.com", "password123")
			},
			expectedStatus: http.StatusNoContent,
			description:    "有効なトークンでログアウトできること",
		},
		{
			name: "無効なトークン",
			setupToken: func() string {
				return "invalid-token"
			},
			expectedStatus: http.StatusUnauthorized,
			description:    "無効なトークンでログアウトできないこと",
		},
		{
			name: "トークンなし",
			setupToken: func() string {
				return ""
			},
			expectedStatus: http.StatusUnauthorized,
			description:    "トークンなしでログアウトできないこと",
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			t := s.T()

			token := tt.setupToken()
			w := httptest.PerformRequest(t, s.Router, http.MethodPost, logoutURL, nil, token)
			require.Equal(t, tt.expectedStatus, w.Code, tt.description)
		})
	}

	s.Run("ログアウト後のトークンは使えない", func() {
		t := s.T()

		token := authtest.LoginUser(t, s.Router, "budi@example.com", "password123")
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, logoutURL, nil, token)
		require.Equal(t, http.StatusNoContent, w.Code)

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, token)
		require.Equal(t, http.StatusUnauthorized, w.Code, "閉じたセッションのトークンは拒否されるべき")
	})
}

func (s *authSuite) TestMe() {
	s.Run("ログイン中のユーザー情報取得", func() {
		t := s.T()

		token := authtest.LoginUser(t, s.Router, "budi@example.com", "password123")
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, token)
		require.Equal(t, http.StatusOK, w.Code)

		responseBody := w.Body.String()
		require.Contains(t, responseBody, "budi@example.com", "レスポンスにメールアドレスが含まれていない")
		require.NotContains(t, responseBody, "password", "レスポンスにパスワード情報が含まれている")
	})

	s.Run("クッキーのトークンでも認証される", func() {
		t := s.T()

		login := httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL,
			request.LoginRequest{Email: "budi@example.com", Password: "password123"}, "")
		require.Equal(t, http.StatusOK, login.Code)

		w := httptest.PerformRequestWithCookies(t, s.Router, http.MethodGet, meURL, nil, login.Result().Cookies(), "")
		require.Equal(t, http.StatusOK, w.Code)
	})

	s.Run("存在しないセッションのトークン", func() {
		t := s.T()

		token := s.jwtHelper.GenerateToken(t, uuid.New(), uuid.New())
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, token)
		require.Equal(t, http.StatusUnauthorized, w.Code, "未知のセッションは拒否されるべき")
	})
}

func (s *authSuite) TestTokenExpiry() {
	s.Run("期限切れトークンの拒否", func() {
		t := s.T()

		expiredToken := s.jwtHelper.CreateExpiredToken(t, uuid.New(), uuid.New())

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, expiredToken)
		require.Equal(t, http.StatusUnauthorized, w.Code, "期限切れトークンは拒否されるべき")
	})
}

func (s *authSuite) TestAuthenticationRequired() {
	s.Run("認証が必要なエンドポイント", func() {
		t := s.T()

		endpoints := []struct {
			method string
			path   string
		}{
			{http.MethodPost, logoutURL},
			{http.MethodGet, meURL},
			{http.MethodPatch, "/api/profile"},
			{http.MethodGet, "/api/bookings"},
			{http.MethodPost, "/api/bookings"},
		}

		for _, endpoint := range endpoints {
			w := httptest.PerformRequest(t, s.Router, endpoint.method, endpoint.path, nil, "")
			require.Equal(t, http.StatusUnauthorized, w.Code, "認証なしでは拒否されるべき: %s %s", endpoint.method, endpoint.path)
		}
	})
}

func (s *authSuite) TestConcurrentLogin() {
	s.Run("同時ログイン", func() {
		t := s.T()

		token1 := authtest.LoginUser(t, s.Router, "budi@example.com", "password123")
		token2 := authtest.LoginUser(t, s.Router, "budi@example.com", "password123")

		require.NotEqual(t, token1, token2, "同時ログインで同じトークンが返された")

		w1 := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, token1)
		w2 := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, token2)

		require.Equal(t, http.StatusOK, w1.Code, "最初のトークンが無効")
		require.Equal(t, http.StatusOK, w2.Code, "二番目のトークンが無効")
	})
}
