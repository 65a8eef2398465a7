package storage

import (
	"context"
	"errors"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/alicebob/miniredis/v2"
	"github.com/jmoiron/sqlx"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// exerciseStorage runs the behaviour every driver must share.
func exerciseStorage(t *testing.T, s Storage) {
	t.Helper()
	ctx := context.Background()

	_, err := s.Get(ctx, "products_data")
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, s.Set(ctx, "products_data", `[{"id":"1"}]`))
	got, err := s.Get(ctx, "products_data")
	require.NoError(t, err)
	assert.Equal(t, `[{"id":"1"}]`, got)

	require.NoError(t, s.Set(ctx, "products_data", `[]`))
	got, err = s.Get(ctx, "products_data")
	require.NoError(t, err)
	assert.Equal(t, `[]`, got)

	require.NoError(t, s.Remove(ctx, "products_data"))
	_, err = s.Get(ctx, "products_data")
	assert.ErrorIs(t, err, ErrNotFound)

	// removing a missing key is not an error
	require.NoError(t, s.Remove(ctx, "products_data"))
}

func TestMemoryStorage(t *testing.T) {
	exerciseStorage(t, NewMemoryStorage())
}

func TestBoltStorage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "shop.db")
	s, err := OpenBoltStorage(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	exerciseStorage(t, s)
}

func TestBoltStorage_SurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "shop.db")
	ctx := context.Background()

	s, err := OpenBoltStorage(path)
	require.NoError(t, err)
	require.NoError(t, s.Set(ctx, "cart_data:abc", `{"items":[]}`))
	require.NoError(t, s.Close())

	s, err = OpenBoltStorage(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	got, err := s.Get(ctx, "cart_data:abc")
	require.NoError(t, err)
	assert.Equal(t, `{"items":[]}`, got)
}

func TestRedisStorage(t *testing.T) {
	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	s := NewRedisStorage(client, "shop:")
	exerciseStorage(t, s)

	require.NoError(t, s.Set(context.Background(), "products_data", "x"))
	got, err := mr.Get("shop:products_data")
	require.NoError(t, err)
	assert.Equal(t, "x", got)
}

func TestRedisStorage_ConnectionError(t *testing.T) {
	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	mr.Close()

	_, err := NewRedisStorage(client, "").Get(context.Background(), "k")
	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrNotFound))
}

func newSQLMock(t *testing.T) (Storage, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewSQLStorage(sqlx.NewDb(db, "mysql")), mock
}

func TestSQLStorage_Get(t *testing.T) {
	tests := []struct {
		name     string
		mockCall func(m sqlmock.Sqlmock)
		want     string
		wantErr  error
	}{
		{
			name: "success: value present",
			mockCall: func(m sqlmock.Sqlmock) {
				m.ExpectQuery(regexp.QuoteMeta(getValueQuery)).
					WithArgs("products_data").
					WillReturnRows(sqlmock.NewRows([]string{"v"}).AddRow("[]"))
			},
			want: "[]",
		},
		{
			name: "error: missing key maps to ErrNotFound",
			mockCall: func(m sqlmock.Sqlmock) {
				m.ExpectQuery(regexp.QuoteMeta(getValueQuery)).
					WithArgs("products_data").
					WillReturnRows(sqlmock.NewRows([]string{"v"}))
			},
			wantErr: ErrNotFound,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			s, m := newSQLMock(t)
			tt.mockCall(m)

			got, err := s.Get(context.Background(), "products_data")
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
			}
			assert.NoError(t, m.ExpectationsWereMet())
		})
	}
}

func TestSQLStorage_SetAndRemove(t *testing.T) {
	s, m := newSQLMock(t)
	m.ExpectExec(regexp.QuoteMeta(upsertValueQuery)).
		WithArgs("products_data", "[]").
		WillReturnResult(sqlmock.NewResult(0, 1))
	m.ExpectExec(regexp.QuoteMeta(deleteValueQuery)).
		WithArgs("products_data").
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, s.Set(context.Background(), "products_data", "[]"))
	require.NoError(t, s.Remove(context.Background(), "products_data"))
	assert.NoError(t, m.ExpectationsWereMet())
}
