package router

import (
	"context"
	"net/http"
	"testing"

	"account-console/internal/cache"
	"account-console/internal/client"
	"account-console/internal/database"
	"account-console/internal/worker"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

type noopSubmitter struct{}

func (noopSubmitter) SubmitAccountCreation(context.Context, client.FormInput) (client.Outcome, error) {
	return client.Outcome{}, nil
}

func TestSetupRoutes(t *testing.T) {
	e := echo.New()
	wp := worker.NewPool(1)
	defer wp.Stop()
	Setup(e, &database.FakeDB{}, &cache.FakeCache{}, noopSubmitter{}, wp)

	got := map[string]struct{}{}
	for _, r := range e.Routes() {
		got[r.Method+" "+r.Path] = struct{}{}
	}

	expected := []string{
		http.MethodGet + " /api/ping",
		http.MethodPost + " /api/auth/login",
		http.MethodPut + " /api/user",
		http.MethodGet + " /api/users",
		http.MethodGet + " /api/users/:user_id",
		http.MethodDelete + " /api/users/:user_id",
		http.MethodGet + " /users",
		http.MethodGet + " /users/new",
		http.MethodPost + " /users/new",
		http.MethodPost + " /users/new/dismiss",
	}

	require.Equal(t, len(expected), len(got))
	for _, k := range expected {
		_, ok := got[k]
		require.True(t, ok, "missing route %s", k)
	}
}
