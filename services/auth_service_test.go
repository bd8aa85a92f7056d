package services

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qslrm-api/apperrors"
	"github.com/qslrm-api/dto"
)

func TestLoginIssuesToken(t *testing.T) {
	env := newTestEnv(t)
	researcher := env.createResearcher(t, "ada@mit.edu")

	resp, err := env.auth.Login(&dto.LoginRequest{Email: strPtr("ada@mit.edu")}, "10.0.0.1", "go-test")
	require.NoError(t, err)
	assert.Equal(t, "Login successful", resp.Message)
	assert.Equal(t, researcher.ResearcherID, resp.Researcher.ResearcherID)
	require.NotEmpty(t, resp.Token)

	claims, err := env.auth.ParseToken(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, researcher.ResearcherID, claims.ResearcherID)
	assert.Equal(t, "ada@mit.edu", claims.Email)
}

func TestLoginRecordsAccessTrail(t *testing.T) {
	env := newTestEnv(t)
	researcher := env.createResearcher(t, "ada@mit.edu")

	_, err := env.auth.Login(&dto.LoginRequest{Email: strPtr("ada@mit.edu")}, "10.0.0.1", "go-test")
	require.NoError(t, err)

	entries, err := env.analytics.Activity(10)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "login", entries[0].ActionType)
	assert.Equal(t, researcher.ResearcherID, entries[0].ResearcherID)
	require.NotNil(t, entries[0].IPAddress)
	assert.Equal(t, "10.0.0.1", *entries[0].IPAddress)
}

func TestLoginUnknownEmail(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.auth.Login(&dto.LoginRequest{Email: strPtr("nobody@example.org")}, "", "")
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrNotFound))
}

func TestLoginRequiresEmail(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.auth.Login(&dto.LoginRequest{}, "", "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "email")
}

func TestLogoutAppendsTrail(t *testing.T) {
	env := newTestEnv(t)
	researcher := env.createResearcher(t, "ada@mit.edu")

	require.NoError(t, env.auth.Logout(&dto.LogoutRequest{ResearcherID: intPtr(researcher.ResearcherID)}, "", ""))

	entries, err := env.analytics.Activity(10)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "logout", entries[0].ActionType)
}

func TestParseTokenRejectsGarbage(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.auth.ParseToken("not-a-token")
	assert.Error(t, err)
}

func TestMe(t *testing.T) {
	env := newTestEnv(t)
	researcher := env.createResearcher(t, "ada@mit.edu")

	me, err := env.auth.Me(researcher.ResearcherID)
	require.NoError(t, err)
	assert.Equal(t, "ada@mit.edu", me.Email)
}
