package auth

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"account-console/internal/database"
	"account-console/internal/model"
	"account-console/internal/service"
	"account-console/internal/store"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

type stubValidator struct{ err error }

func (s *stubValidator) Validate(i interface{}) error { return s.err }

func restore() {
	getUserByUsername = store.GetUserByUsername
	authenticateUser = service.AuthenticateUser
	issueAccessToken = service.IssueAccessToken
}

func newLoginCtx(e *echo.Echo, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestLoginHandler(t *testing.T) {
	e := echo.New()
	valid := `{"username": "alice", "password": "pw"}`

	t.Run("bind error", func(t *testing.T) {
		t.Cleanup(restore)
		e.Validator = &stubValidator{}
		ctx, rec := newLoginCtx(e, "{")
		require.NoError(t, LoginHandler(nil)(ctx))
		require.Equal(t, http.StatusBadRequest, rec.Code)
		require.Contains(t, rec.Body.String(), "invalid request payload")
	})

	t.Run("validate error", func(t *testing.T) {
		t.Cleanup(restore)
		e.Validator = &stubValidator{err: errors.New("v")}
		ctx, rec := newLoginCtx(e, valid)
		require.NoError(t, LoginHandler(nil)(ctx))
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("unknown user", func(t *testing.T) {
		t.Cleanup(restore)
		e.Validator = &stubValidator{}
		getUserByUsername = func(context.Context, database.DB, string) (*model.User, error) {
			return nil, errors.New("no rows")
		}
		ctx, rec := newLoginCtx(e, valid)
		require.NoError(t, LoginHandler(nil)(ctx))
		require.Equal(t, http.StatusUnauthorized, rec.Code)
		require.Contains(t, rec.Body.String(), "invalid credentials")
	})

	t.Run("wrong password", func(t *testing.T) {
		t.Cleanup(restore)
		e.Validator = &stubValidator{}
		getUserByUsername = func(context.Context, database.DB, string) (*model.User, error) {
			return &model.User{ID: 1, Username: "alice"}, nil
		}
		authenticateUser = func(context.Context, model.User, string) (*model.User, error) {
			return nil, errors.New("invalid password")
		}
		ctx, rec := newLoginCtx(e, valid)
		require.NoError(t, LoginHandler(nil)(ctx))
		require.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("token error", func(t *testing.T) {
		t.Cleanup(restore)
		e.Validator = &stubValidator{}
		getUserByUsername = func(context.Context, database.DB, string) (*model.User, error) {
			return &model.User{ID: 1}, nil
		}
		authenticateUser = func(_ context.Context, u model.User, _ string) (*model.User, error) {
			return &u, nil
		}
		issueAccessToken = func(model.User, time.Duration) (string, error) {
			return "", errors.New("no secret")
		}
		ctx, rec := newLoginCtx(e, valid)
		require.NoError(t, LoginHandler(nil)(ctx))
		require.Equal(t, http.StatusInternalServerError, rec.Code)
	})

	t.Run("success", func(t *testing.T) {
		t.Cleanup(restore)
		e.Validator = &stubValidator{}
		getUserByUsername = func(context.Context, database.DB, string) (*model.User, error) {
			return &model.User{ID: 1, Username: "alice", IsAdmin: true}, nil
		}
		authenticateUser = func(_ context.Context, u model.User, _ string) (*model.User, error) {
			return &u, nil
		}
		issueAccessToken = func(u model.User, ttl time.Duration) (string, error) {
			require.True(t, u.IsAdmin)
			require.Equal(t, accessTokenTTL, ttl)
			return "tok", nil
		}
		ctx, rec := newLoginCtx(e, valid)
		require.NoError(t, LoginHandler(nil)(ctx))
		require.Equal(t, http.StatusOK, rec.Code)
		require.Contains(t, rec.Body.String(), "tok")
	})
}
