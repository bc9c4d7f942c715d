package main

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"miswa/internal/docstore"
	"miswa/internal/domain/auth"
)

func stubPasswords(t *testing.T, answers ...string) {
	t.Helper()
	orig := readPassword
	t.Cleanup(func() { readPassword = orig })
	readPassword = func() ([]byte, error) {
		next := answers[0]
		answers = answers[1:]
		return []byte(next), nil
	}
}

func newService() (*auth.Service, *auth.Repository) {
	repo := auth.NewRepository(docstore.NewMemStore(), zap.NewNop())
	return auth.NewService(repo, nil, zap.NewNop()), repo
}

func TestRun_PasswdCreatesThenRotates(t *testing.T) {
	ctx := context.Background()
	svc, repo := newService()
	var out bytes.Buffer

	stubPasswords(t, "first-password", "first-password")
	require.NoError(t, run(ctx, []string{"passwd", "ops"}, svc, &out))
	assert.Contains(t, out.String(), `admin "ops" created`)

	before, err := repo.FindByUsername(ctx, "ops")
	require.NoError(t, err)
	require.NotNil(t, before)

	stubPasswords(t, "second-password", "second-password")
	out.Reset()
	require.NoError(t, run(ctx, []string{"passwd", "ops"}, svc, &out))
	assert.Contains(t, out.String(), "updated")

	after, err := repo.FindByUsername(ctx, "ops")
	require.NoError(t, err)
	assert.True(t, auth.VerifyPassword("second-password", after.PasswordHash))
	assert.Equal(t, before.ID, after.ID)
}

func TestRun_PasswdRejectsMismatchAndWeak(t *testing.T) {
	ctx := context.Background()
	svc, _ := newService()

	stubPasswords(t, "password-one", "password-two")
	assert.Error(t, run(ctx, []string{"passwd", "ops"}, svc, &bytes.Buffer{}))

	stubPasswords(t, "short", "short")
	assert.Error(t, run(ctx, []string{"passwd", "ops"}, svc, &bytes.Buffer{}))
}

func TestRun_Delete(t *testing.T) {
	ctx := context.Background()
	svc, repo := newService()
	_, err := repo.Create(ctx, "ops", "some-password")
	require.NoError(t, err)

	require.NoError(t, run(ctx, []string{"delete", "ops"}, svc, &bytes.Buffer{}))
	assert.Error(t, run(ctx, []string{"delete", "ops"}, svc, &bytes.Buffer{}))
}

func TestRun_Usage(t *testing.T) {
	svc, _ := newService()
	for _, args := range [][]string{nil, {"passwd"}, {"rename", "ops"}, {"delete", ""}} {
		assert.ErrorIs(t, run(context.Background(), args, svc, &bytes.Buffer{}), errUsage)
	}
}
