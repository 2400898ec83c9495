package repository_test

import (
	"encoding/json"
	"testing"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/AdwaitMishr/vitmart/internal/port"
	"github.com/AdwaitMishr/vitmart/internal/repository"
)

type postgresKVSuite struct {
	suite.Suite

	kv   port.KV
	pool *pgxpool.Pool
}

// entry point to run the tests in the suite
func TestPostgresKVSuite(t *testing.T) {
	suite.Run(t, new(postgresKVSuite))
}

// before all tests in the suite
func (suite *postgresKVSuite) SetupSuite() {
	ctx := suite.T().Context()

	_, connStr, err := startPostgres(ctx)
	suite.NoError(err)

	suite.pool, err = pgxpool.New(ctx, connStr)
	suite.NoError(err)

	suite.kv = repository.NewPostgresKV(suite.pool)
}

// after all tests in the suite
func (suite *postgresKVSuite) TearDownSuite() {
	if suite.pool != nil {
		suite.pool.Close()
	}
}

func (suite *postgresKVSuite) TestSetGet() {
	defer suite.deleteAll()

	tests := []struct {
		name      string
		key       string
		value     string
		wantError string
	}{
		{
			name:  "set and get plain value: ok",
			key:   gofakeit.UUID(),
			value: gofakeit.HackerPhrase(),
		},
		{
			name:  "set and get json value: ok",
			key:   port.KeyUser,
			value: mustJSON(suite.T(), map[string]string{"name": gofakeit.Name(), "email": gofakeit.Email()}),
		},
		{
			name:      "set with empty key: error",
			key:       "",
			value:     "x",
			wantError: "key is empty",
		},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			t := suite.T()
			ctx := t.Context()

			err := suite.kv.Set(ctx, tt.key, tt.value)
			if tt.wantError != "" {
				require.EqualError(t, err, tt.wantError)
				return
			}
			require.NoError(t, err)

			got, ok, err := suite.kv.Get(ctx, tt.key)
			require.NoError(t, err)
			require.True(t, ok)
			assert.Equal(t, tt.value, got)
		})
	}
}

func (suite *postgresKVSuite) TestSetOverwrites() {
	defer suite.deleteAll()

	t := suite.T()
	ctx := t.Context()
	key := gofakeit.UUID()

	require.NoError(t, suite.kv.Set(ctx, key, "first"))
	require.NoError(t, suite.kv.Set(ctx, key, "second"))

	got, ok, err := suite.kv.Get(ctx, key)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "second", got)
}

func (suite *postgresKVSuite) TestGetMissing() {
	t := suite.T()

	_, ok, err := suite.kv.Get(t.Context(), gofakeit.UUID())
	require.NoError(t, err)
	assert.False(t, ok)
}

func (suite *postgresKVSuite) TestSetMany() {
	defer suite.deleteAll()

	t := suite.T()
	ctx := t.Context()

	entries := map[string]string{
		port.KeyUser:       mustJSON(t, map[string]string{"name": gofakeit.Name()}),
		port.KeyListings:   "[]",
		port.KeyOrders:     "[]",
		port.KeyIsLoggedIn: "true",
	}

	require.NoError(t, suite.kv.SetMany(ctx, entries))

	for key, want := range entries {
		got, ok, err := suite.kv.Get(ctx, key)
		require.NoError(t, err)
		require.True(t, ok, "key %s", key)
		assert.Equal(t, want, got)
	}
}

func (suite *postgresKVSuite) TestDelete() {
	defer suite.deleteAll()

	t := suite.T()
	ctx := t.Context()
	key := gofakeit.UUID()

	require.NoError(t, suite.kv.Set(ctx, key, "value"))
	require.NoError(t, suite.kv.Delete(ctx, key))

	_, ok, err := suite.kv.Get(ctx, key)
	require.NoError(t, err)
	assert.False(t, ok)

	// deleting an absent key is not an error
	require.NoError(t, suite.kv.Delete(ctx, key))
}

func (suite *postgresKVSuite) deleteAll() {
	_, err := suite.pool.Exec(suite.T().Context(), "TRUNCATE TABLE kv_entries")
	suite.NoError(err)
}

func mustJSON(t *testing.T, v any) string {
	t.Helper()

	b, err := json.Marshal(v)
	require.NoError(t, err)
	return string(b)
}
