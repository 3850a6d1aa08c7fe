package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"tradefood/internal/domain/entity"
	domainerrors "tradefood/internal/domain/errors"
	"tradefood/internal/errors"
	mockUsecase "tradefood/internal/mocks/usecase"
	"tradefood/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newSessionHandlerFixture(t *testing.T) (*mockUsecase.MockSessionUsecase, func(method, target, body string) *httptest.ResponseRecorder) {
	e, api := newTestEcho(t)
	uc := mockUsecase.NewMockSessionUsecase(t)
	h := NewSessionHandler(SessionHandlerParams{SessionUC: uc, Logger: discardLogger})

	api.POST("/session", h.CreateSession)
	api.POST("/auth/login", h.Login)
	api.POST("/auth/register", h.Register)
	api.POST("/auth/logout", h.Logout)
	api.POST("/clients/select", h.SelectClient)

	return uc, func(method, target, body string) *httptest.ResponseRecorder {
		return do(e, method, target, body)
	}
}

func TestSessionHandler_CreateSession(t *testing.T) {
	e, api := newTestEcho(t)
	h := NewSessionHandler(SessionHandlerParams{SessionUC: mockUsecase.NewMockSessionUsecase(t), Logger: discardLogger})
	api.POST("/session", h.CreateSession)

	t.Run("opens a session without header", func(t *testing.T) {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/session", nil))

		require.Equal(t, http.StatusCreated, rec.Code)
		env := decode[SessionResponse](t, rec)
		assert.True(t, env.Data.Created)
		assert.Equal(t, env.Data.SessionID, rec.Header().Get(sessionHeader))
		_, err := uuid.Parse(env.Data.SessionID)
		assert.NoError(t, err)
	})

	t.Run("reuses a known session", func(t *testing.T) {
		rec := do(e, http.MethodPost, "/api/session", "")

		require.Equal(t, http.StatusOK, rec.Code)
		env := decode[SessionResponse](t, rec)
		assert.False(t, env.Data.Created)
		assert.Equal(t, testSessionID, env.Data.SessionID)
	})

	t.Run("replaces a malformed id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/session", nil)
		req.Header.Set(sessionHeader, "../../etc/passwd")
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		require.Equal(t, http.StatusCreated, rec.Code)
		assert.NotEqual(t, "../../etc/passwd", rec.Header().Get(sessionHeader))
	})
}

func TestSessionHandler_Login(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		setupMock  func(uc *mockUsecase.MockSessionUsecase)
		wantStatus int
		wantCode   string
	}{
		{
			name: "success",
			body: `{"email":"marie@curie.fr","password":"radium"}`,
			setupMock: func(uc *mockUsecase.MockSessionUsecase) {
				uc.EXPECT().Login(mock.Anything, inSession(), usecase.LoginInput{Email: "marie@curie.fr", Password: "radium"}).
					Return(&entity.User{ID: 7, Email: "marie@curie.fr", Role: entity.RoleCustomer}, nil).Once()
			},
			wantStatus: http.StatusOK,
		},
		{
			name:       "invalid email never reaches the usecase",
			body:       `{"email":"marie","password":"radium"}`,
			setupMock:  func(uc *mockUsecase.MockSessionUsecase) {},
			wantStatus: http.StatusBadRequest,
			wantCode:   "VALIDATION_FAILED",
		},
		{
			name:       "malformed body",
			body:       `{"email":`,
			setupMock:  func(uc *mockUsecase.MockSessionUsecase) {},
			wantStatus: http.StatusBadRequest,
			wantCode:   "INVALID_INPUT",
		},
		{
			name: "wrong password",
			body: `{"email":"marie@curie.fr","password":"polonium"}`,
			setupMock: func(uc *mockUsecase.MockSessionUsecase) {
				uc.EXPECT().Login(mock.Anything, inSession(), mock.Anything).
					Return(nil, errors.WithStack(domainerrors.ErrInvalidCredentials)).Once()
			},
			wantStatus: http.StatusUnauthorized,
			wantCode:   "INVALID_CREDENTIALS",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc, call := newSessionHandlerFixture(t)
			tt.setupMock(uc)

			rec := call(http.MethodPost, "/api/auth/login", tt.body)

			require.Equal(t, tt.wantStatus, rec.Code, rec.Body.String())
			env := decode[*entity.User](t, rec)
			if tt.wantCode == "" {
				assert.True(t, env.Success)
				assert.Equal(t, "marie@curie.fr", env.Data.Email)

				return
			}
			assert.False(t, env.Success)
			require.NotNil(t, env.Error)
			assert.Equal(t, tt.wantCode, env.Error.Code)
		})
	}
}

func TestSessionHandler_Register(t *testing.T) {
	uc, call := newSessionHandlerFixture(t)
	uc.EXPECT().Register(mock.Anything, inSession(), mock.MatchedBy(func(in usecase.RegisterInput) bool {
		return in.CompanyName == "Curie SARL" && in.Siret == "12345678901234"
	})).Return(&entity.User{ID: 7, Email: "marie@curie.fr"}, nil).Once()

	rec := call(http.MethodPost, "/api/auth/register",
		`{"email":"marie@curie.fr","password":"radium-88","companyName":"Curie SARL","siret":"12345678901234"}`)

	assert.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
}

func TestSessionHandler_Logout(t *testing.T) {
	uc, call := newSessionHandlerFixture(t)
	uc.EXPECT().Logout(mock.Anything, inSession()).Return(nil).Once()

	rec := call(http.MethodPost, "/api/auth/logout", "")

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestSessionHandler_SelectClient(t *testing.T) {
	t.Run("selects", func(t *testing.T) {
		uc, call := newSessionHandlerFixture(t)
		uc.EXPECT().SelectClient(mock.Anything, inSession(), mock.MatchedBy(func(id *int64) bool {
			return id != nil && *id == 12
		})).Return(nil).Once()

		rec := call(http.MethodPost, "/api/clients/select", `{"clientId":12}`)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("null clears", func(t *testing.T) {
		uc, call := newSessionHandlerFixture(t)
		uc.EXPECT().SelectClient(mock.Anything, inSession(), (*int64)(nil)).Return(nil).Once()

		rec := call(http.MethodPost, "/api/clients/select", `{"clientId":null}`)

		assert.Equal(t, http.StatusOK, rec.Code)
	})
}
