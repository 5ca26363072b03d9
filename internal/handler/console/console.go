// Package console serves the account-administration pages: the
// create-account form with its status banner, and the user listing the
// success path navigates to.
package console

import (
	"context"
	"errors"
	"net/http"

	"account-console/internal/client"
	"account-console/internal/database"
	"account-console/internal/model"
	"account-console/internal/store"
	"account-console/internal/ui"

	"github.com/labstack/echo/v4"
)

// Submitter is the account-creation command the form posts into.
type Submitter interface {
	SubmitAccountCreation(ctx context.Context, in client.FormInput) (client.Outcome, error)
}

var listUsers = store.ListUsers

type accountNewPage struct {
	Banner ui.View
	Values client.FormInput
}

// NewAccountPageHandler renders the empty create-account form. The
// banner starts hidden.
func NewAccountPageHandler() echo.HandlerFunc {
	return func(c echo.Context) error {
		return c.Render(http.StatusOK, "account_new", accountNewPage{
			Banner: ui.Render(ui.HiddenBanner()),
		})
	}
}

// CreateAccountHandler reads the six posted field values, runs the
// submission command, and either navigates to the listing or re-renders
// the form with whatever banner state the outcome carries.
func CreateAccountHandler(cl Submitter) echo.HandlerFunc {
	return func(c echo.Context) error {
		in := client.FormInput{
			FirstName: c.FormValue("firstname"),
			LastName:  c.FormValue("lastname"),
			Email:     c.FormValue("email"),
			Username:  c.FormValue("username"),
			Password:  c.FormValue("password"),
			IsAdmin:   c.FormValue("is_admin"),
		}

		out, err := cl.SubmitAccountCreation(c.Request().Context(), in)
		if errors.Is(err, client.ErrSubmissionInFlight) {
			return c.Render(http.StatusConflict, "account_new", accountNewPage{
				Banner: ui.Render(ui.ErrorBanner("a submission is already in progress")),
				Values: in,
			})
		}
		if err != nil {
			return c.Render(http.StatusInternalServerError, "account_new", accountNewPage{
				Banner: ui.Render(ui.ErrorBanner("submission failed")),
				Values: in,
			})
		}

		if out.Navigate != "" {
			return c.Redirect(http.StatusSeeOther, out.Navigate)
		}

		banner := ui.HiddenBanner()
		if out.Show {
			banner = out.Banner
		}
		return c.Render(http.StatusOK, "account_new", accountNewPage{
			Banner: ui.Render(banner),
			Values: in,
		})
	}
}

// DismissBannerHandler hides the banner and redraws the form. Nothing
// else changes and no request goes out.
func DismissBannerHandler() echo.HandlerFunc {
	return func(c echo.Context) error {
		return c.Render(http.StatusOK, "account_new", accountNewPage{
			Banner: ui.Render(ui.HiddenBanner()),
		})
	}
}

type usersPage struct {
	Users []model.User
}

// UsersPageHandler renders the user listing.
func UsersPageHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		list, err := listUsers(c.Request().Context(), db)
		if err != nil {
			return c.Render(http.StatusInternalServerError, "users_index", usersPage{})
		}
		return c.Render(http.StatusOK, "users_index", usersPage{Users: list})
	}
}
