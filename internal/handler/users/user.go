package users

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"net/mail"
	"strconv"
	"strings"
	"time"

	"account-console/internal/api"
	"account-console/internal/cache"
	"account-console/internal/database"
	"account-console/internal/model"
	"account-console/internal/service"
	"account-console/internal/store"
	"account-console/internal/worker"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/labstack/echo/v4"
)

var (
	hashPassword = service.HashPassword
	createUser   = store.CreateUser
	getUserByID  = store.GetUserByID
	listUsers    = store.ListUsers
	deleteUser   = store.DeleteUser
)

const (
	usersCacheKey = "users:list"
	usersCacheTTL = 30 * time.Second

	uniqueViolation = "23505"
)

func toResponse(u *model.User) api.UserResponse {
	return api.UserResponse{
		ID:        u.ID,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Email:     u.Email,
		Username:  u.Username,
		IsAdmin:   u.IsAdmin,
		CreatedAt: u.CreatedAt,
	}
}

// CreateAccountHandler creates a user account from the console's JSON
// payload. Every error body carries a message field so the console
// banner has something to show.
// @Summary     Create a user account
// @Description Creates a new user from the JSON payload; is_admin is sent as a string and parsed server-side
// @Tags        users
// @Accept      json
// @Produce     json
// @Param       body body api.CreateAccountRequest true "account fields"
// @Success     201 {object} api.UserResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     409 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /user [put]
func CreateAccountHandler(db database.DB, rdb cache.Cache, wp worker.Pool) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.CreateAccountRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid request payload"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}

		isAdmin, err := strconv.ParseBool(req.IsAdmin)
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid is_admin value"})
		}

		req.Email = strings.ToLower(req.Email)
		if _, err := mail.ParseAddress(req.Email); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid email format"})
		}

		hash, err := hashPassword(req.Password)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "failed to hash password"})
		}

		user, err := createUser(c.Request().Context(), db, &model.User{
			Email:        req.Email,
			FirstName:    req.FirstName,
			LastName:     req.LastName,
			Username:     req.Username,
			PasswordHash: hash,
			IsAdmin:      isAdmin,
		})
		if err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
				return c.JSON(http.StatusConflict, api.ErrorResponse{Message: "username or email already taken"})
			}
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}

		rdb.Del(c.Request().Context(), usersCacheKey)
		wp.Submit(func() {
			log.Printf("account created: id=%d username=%q admin=%t", user.ID, user.Username, user.IsAdmin)
		})

		return c.JSON(http.StatusCreated, toResponse(user))
	}
}

// ListUsersHandler returns all users, serving from the redis cache when
// a fresh copy is there.
// @Summary     List users
// @Tags        users
// @Produce     json
// @Success     200 {array} api.UserResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /users [get]
func ListUsersHandler(db database.DB, rdb cache.Cache) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		if cached, err := rdb.Get(ctx, usersCacheKey).Result(); err == nil && cached != "" {
			return c.JSONBlob(http.StatusOK, []byte(cached))
		}

		list, err := listUsers(ctx, db)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}

		resp := make([]api.UserResponse, 0, len(list))
		for i := range list {
			resp = append(resp, toResponse(&list[i]))
		}

		buf, err := json.Marshal(resp)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}
		rdb.Set(ctx, usersCacheKey, buf, usersCacheTTL) // best effort
		return c.JSONBlob(http.StatusOK, buf)
	}
}

// GetUserHandler returns one user by ID.
// @Summary     Get a user by ID
// @Tags        users
// @Produce     json
// @Param       user_id path int true "user ID"
// @Success     200 {object} api.UserResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /users/{user_id} [get]
func GetUserHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := strconv.Atoi(c.Param("user_id"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid user ID"})
		}
		user, err := getUserByID(c.Request().Context(), db, id)
		if err != nil {
			return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "user not found"})
		}
		return c.JSON(http.StatusOK, toResponse(user))
	}
}

// DeleteUserHandler removes a user by ID.
// @Summary     Delete a user by ID
// @Tags        users
// @Param       user_id path int true "user ID"
// @Success     204 "No Content"
// @Failure     400 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /users/{user_id} [delete]
func DeleteUserHandler(db database.DB, rdb cache.Cache) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := strconv.Atoi(c.Param("user_id"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid user ID"})
		}
		if err := deleteUser(c.Request().Context(), db, id); err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}
		rdb.Del(c.Request().Context(), usersCacheKey)
		return c.NoContent(http.StatusNoContent)
	}
}
