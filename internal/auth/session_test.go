package auth_test

import (
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AdwaitMishr/vitmart/internal/auth"
)

func TestSessionManager_SignAndParse(t *testing.T) {
	mgr := auth.NewSessionManager(auth.SessionConfig{
		Issuer: "vitmart",
		Secret: "test-secret",
		TTL:    time.Hour,
	})

	email := gofakeit.Email()
	token, exp, err := mgr.Sign(email)
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.True(t, exp.After(time.Now()))

	claims, err := mgr.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, email, claims.Email)
	assert.Equal(t, "vitmart", claims.Issuer)
}

func TestSessionManager_RejectsForeignToken(t *testing.T) {
	mgr := auth.NewSessionManager(auth.SessionConfig{Issuer: "vitmart", Secret: "one", TTL: time.Hour})
	other := auth.NewSessionManager(auth.SessionConfig{Issuer: "vitmart", Secret: "two", TTL: time.Hour})

	token, _, err := other.Sign(gofakeit.Email())
	require.NoError(t, err)

	_, err = mgr.Parse(token)
	require.Error(t, err)
}
