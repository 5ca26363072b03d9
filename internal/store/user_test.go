package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"account-console/internal/database"
	"account-console/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"
)

// fakeRow implements pgx.Row for single-row scans.
type fakeRow struct {
	scanErr error
	user    *model.User
}

func (r *fakeRow) Scan(dest ...any) error {
	if r.scanErr != nil {
		return r.scanErr
	}
	u := r.user
	switch len(dest) {
	case 8:
		// GetUserByID / GetUserByUsername
		*dest[0].(*int) = u.ID
		*dest[1].(*string) = u.Email
		*dest[2].(*string) = u.FirstName
		*dest[3].(*string) = u.LastName
		*dest[4].(*string) = u.Username
		*dest[5].(*string) = u.PasswordHash
		*dest[6].(*bool) = u.IsAdmin
		*dest[7].(*time.Time) = u.CreatedAt
	case 2:
		// CreateUser: id, created_at
		*dest[0].(*int) = u.ID
		*dest[1].(*time.Time) = u.CreatedAt
	default:
		panic("fakeRow.Scan: unexpected number of dest")
	}
	return nil
}

// fakeRows implements pgx.Rows for multi-row scans.
type fakeRows struct {
	data    []model.User
	idx     int
	scanErr error
	err     error
}

func (r *fakeRows) Close()                                       {}
func (r *fakeRows) Err() error                                   { return r.err }
func (r *fakeRows) CommandTag() pgconn.CommandTag                { return pgconn.CommandTag{} }
func (r *fakeRows) FieldDescriptions() []pgconn.FieldDescription { return nil }
func (r *fakeRows) Next() bool                                   { return r.idx < len(r.data) }
func (r *fakeRows) Scan(dest ...any) error {
	if r.scanErr != nil {
		return r.scanErr
	}
	u := r.data[r.idx]
	r.idx++
	*dest[0].(*int) = u.ID
	*dest[1].(*string) = u.Email
	*dest[2].(*string) = u.FirstName
	*dest[3].(*string) = u.LastName
	*dest[4].(*string) = u.Username
	*dest[5].(*string) = u.PasswordHash
	*dest[6].(*bool) = u.IsAdmin
	*dest[7].(*time.Time) = u.CreatedAt
	return nil
}
func (r *fakeRows) Values() ([]any, error) { return nil, nil }
func (r *fakeRows) RawValues() [][]byte    { return nil }
func (r *fakeRows) Conn() *pgx.Conn        { return nil }

func sampleUser() model.User {
	return model.User{
		ID:           1,
		Email:        "alice@example.com",
		FirstName:    "Alice",
		LastName:     "Smith",
		Username:     "alice",
		PasswordHash: "hash",
		IsAdmin:      true,
		CreatedAt:    time.Now().UTC().Truncate(time.Second),
	}
}

func TestCreateUser(t *testing.T) {
	sample := sampleUser()
	db := &database.FakeDB{
		QueryRowFn: func(ctx context.Context, sql string, args ...any) pgx.Row {
			require.Len(t, args, 6)
			require.Equal(t, "alice@example.com", args[0])
			return &fakeRow{user: &sample}
		},
	}
	u := sampleUser()
	u.ID = 0
	got, err := CreateUser(context.Background(), db, &u)
	require.NoError(t, err)
	require.Equal(t, sample.ID, got.ID)
	require.Equal(t, sample.CreatedAt, got.CreatedAt)

	db.QueryRowFn = func(ctx context.Context, sql string, args ...any) pgx.Row {
		return &fakeRow{scanErr: errors.New("dup")}
	}
	_, err = CreateUser(context.Background(), db, &u)
	require.Error(t, err)
}

func TestGetUser(t *testing.T) {
	sample := sampleUser()
	db := &database.FakeDB{
		QueryRowFn: func(ctx context.Context, sql string, args ...any) pgx.Row {
			return &fakeRow{user: &sample}
		},
	}

	got, err := GetUserByID(context.Background(), db, 1)
	require.NoError(t, err)
	require.Equal(t, sample, *got)

	got, err = GetUserByUsername(context.Background(), db, "alice")
	require.NoError(t, err)
	require.Equal(t, sample, *got)

	db.QueryRowFn = func(ctx context.Context, sql string, args ...any) pgx.Row {
		return &fakeRow{scanErr: pgx.ErrNoRows}
	}
	_, err = GetUserByID(context.Background(), db, 2)
	require.Error(t, err)
	_, err = GetUserByUsername(context.Background(), db, "bob")
	require.Error(t, err)
}

func TestListUsers(t *testing.T) {
	a, b := sampleUser(), sampleUser()
	b.ID, b.Username = 2, "bob"

	db := &database.FakeDB{
		QueryFn: func(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
			return &fakeRows{data: []model.User{a, b}}, nil
		},
	}
	users, err := ListUsers(context.Background(), db)
	require.NoError(t, err)
	require.Len(t, users, 2)
	require.Equal(t, "bob", users[1].Username)

	db.QueryFn = func(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
		return nil, errors.New("q")
	}
	_, err = ListUsers(context.Background(), db)
	require.Error(t, err)

	db.QueryFn = func(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
		return &fakeRows{data: []model.User{a}, scanErr: errors.New("scan")}, nil
	}
	_, err = ListUsers(context.Background(), db)
	require.Error(t, err)

	db.QueryFn = func(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
		return &fakeRows{err: errors.New("rows")}, nil
	}
	_, err = ListUsers(context.Background(), db)
	require.Error(t, err)
}

func TestUpdateUserPasswordAndDelete(t *testing.T) {
	execErr := errors.New("exec")
	db := &database.FakeDB{
		ExecFn: func(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
			return pgconn.CommandTag{}, nil
		},
	}
	require.NoError(t, UpdateUserPassword(context.Background(), db, 1, "h"))
	require.NoError(t, DeleteUser(context.Background(), db, 1))

	db.ExecFn = func(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
		return pgconn.CommandTag{}, execErr
	}
	require.Error(t, UpdateUserPassword(context.Background(), db, 1, "h"))
	require.Error(t, DeleteUser(context.Background(), db, 1))
}
