package identity

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"studysync/internal/kvstore"
	mytesting "studysync/internal/testing"
)

func bootstrap(t *testing.T) *Registry {
	logger, err := zap.NewDevelopment()
	require.NoError(t, err)

	kv, err := kvstore.Open(logger.Sugar(), t.TempDir())
	require.NoError(t, err)

	return New(logger.Sugar(), kv)
}

func bootstrapWithKV(t *testing.T) (*Registry, *kvstore.Store) {
	logger, err := zap.NewDevelopment()
	require.NoError(t, err)

	kv, err := kvstore.Open(logger.Sugar(), t.TempDir())
	require.NoError(t, err)

	return New(logger.Sugar(), kv), kv
}

func TestSignup(t *testing.T) {
	r := bootstrap(t)

	email := mytesting.RandEmail()
	session, err := r.Signup(context.Background(), "Alex Johnson", email, "CL-1042", "hunter2")
	require.NoError(t, err)
	require.Equal(t, "Alex Johnson", session.Name)
	require.Equal(t, email, session.Email)
	require.Equal(t, "CL-1042", session.CollegeID)
	require.NotEmpty(t, session.Avatar)

	// signup acts as an implicit login
	active, ok := r.Session()
	require.True(t, ok)
	require.Equal(t, session, active)
}

func TestSignupDuplicateEmail(t *testing.T) {
	r := bootstrap(t)

	email := mytesting.RandEmail()
	_, err := r.Signup(context.Background(), "Alex Johnson", email, "", "hunter2")
	require.NoError(t, err)

	_, err = r.Signup(context.Background(), "Other Alex", email, "", "different")
	require.Equal(t, ErrAccountExists, err)
	require.Len(t, r.accounts, 1)
}

func TestLogin(t *testing.T) {
	r := bootstrap(t)

	email := mytesting.RandEmail()
	created, err := r.Signup(context.Background(), "Sarah Chen", email, "CL-2201", "secret")
	require.NoError(t, err)
	r.Logout()

	session, err := r.Login(context.Background(), email, "secret")
	require.NoError(t, err)
	require.Equal(t, created, session)
}

func TestLoginWrongPassword(t *testing.T) {
	r, kv := bootstrapWithKV(t)

	email := mytesting.RandEmail()
	_, err := r.Signup(context.Background(), "Sarah Chen", email, "", "secret")
	require.NoError(t, err)

	_, err = r.Login(context.Background(), email, "wrong")
	require.Equal(t, ErrInvalidCredentials, err)

	// the failed login must not disturb the persisted session
	raw, ok := kv.Get(KeySession)
	require.True(t, ok)
	require.Contains(t, string(raw), email)
}

func TestLoginUnknownEmail(t *testing.T) {
	r := bootstrap(t)

	_, err := r.Login(context.Background(), mytesting.RandEmail(), "whatever")
	require.Equal(t, ErrInvalidCredentials, err)
}

func TestLogout(t *testing.T) {
	r, kv := bootstrapWithKV(t)

	_, err := r.Signup(context.Background(), "Mike Ross", mytesting.RandEmail(), "", "pw")
	require.NoError(t, err)

	r.Logout()
	_, ok := r.Session()
	require.False(t, ok)
	_, ok = kv.Get(KeySession)
	require.False(t, ok)

	// logging out while signed out is fine
	r.Logout()
}

func TestSessionRestoredAcrossRestart(t *testing.T) {
	logger, err := zap.NewDevelopment()
	require.NoError(t, err)

	dir := t.TempDir()
	kv, err := kvstore.Open(logger.Sugar(), dir)
	require.NoError(t, err)

	r := New(logger.Sugar(), kv)
	created, err := r.Signup(context.Background(), "Jessica Lee", mytesting.RandEmail(), "CL-3377", "pw")
	require.NoError(t, err)

	kv2, err := kvstore.Open(logger.Sugar(), dir)
	require.NoError(t, err)
	restarted := New(logger.Sugar(), kv2)

	restored, ok := restarted.Session()
	require.True(t, ok)
	require.Equal(t, created, restored)

	// accounts survive too: the restored registry can log the user back in
	restarted.Logout()
	_, err = restarted.Login(context.Background(), created.Email, "pw")
	require.NoError(t, err)
}

func TestColdStartWithoutSession(t *testing.T) {
	r := bootstrap(t)

	_, ok := r.Session()
	require.False(t, ok)
}

func TestSimulatedLatency(t *testing.T) {
	logger, err := zap.NewDevelopment()
	require.NoError(t, err)

	kv, err := kvstore.Open(logger.Sugar(), t.TempDir())
	require.NoError(t, err)

	delay := 50 * time.Millisecond
	r := New(logger.Sugar(), kv, SimulatedLatency(delay))

	start := time.Now()
	_, err = r.Login(context.Background(), mytesting.RandEmail(), "pw")
	require.Equal(t, ErrInvalidCredentials, err)
	require.GreaterOrEqual(t, time.Since(start), delay)
}
