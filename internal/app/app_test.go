package app

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"studysync/internal/identity"
	"studysync/internal/kvstore"
	"studysync/internal/storage"
	mytesting "studysync/internal/testing"
)

func bootstrap(t *testing.T) *App {
	logger, err := zap.NewDevelopment()
	require.NoError(t, err)

	kv, err := kvstore.Open(logger.Sugar(), t.TempDir())
	require.NoError(t, err)

	sugar := logger.Sugar()
	return New(sugar, identity.New(sugar, kv), storage.New(sugar, kv))
}

func TestMutationNotifiesSubscribers(t *testing.T) {
	a := bootstrap(t)

	notified := 0
	a.Subscribe(func() { notified++ })

	a.CreateGroup(mytesting.RandString(), "Physics", "lab group")
	require.Equal(t, 1, notified)

	a.CreateDirectThread("Sam")
	require.Equal(t, 2, notified)
}

func TestSubscriberSeesMutation(t *testing.T) {
	a := bootstrap(t)

	name := mytesting.RandString()
	var seen bool
	a.Subscribe(func() {
		groups := a.Groups()
		seen = groups[len(groups)-1].Name == name
	})

	a.CreateGroup(name, "Arts", "modernism talks")
	require.True(t, seen)
}

func TestUnsubscribe(t *testing.T) {
	a := bootstrap(t)

	notified := 0
	token := a.Subscribe(func() { notified++ })
	a.Unsubscribe(token)

	a.CreateGroup(mytesting.RandString(), "Chemistry", "o-chem")
	require.Equal(t, 0, notified)
}

func TestNoOpDoesNotNotify(t *testing.T) {
	a := bootstrap(t)

	notified := 0
	a.Subscribe(func() { notified++ })

	_, ok := a.PostGroupMessage(424242, "hello?", storage.Author{Name: "Alex"})
	require.False(t, ok)
	require.Equal(t, 0, notified)

	_, ok = a.PostDirectMessage(424242, "hello?", storage.Author{Name: "Alex"})
	require.False(t, ok)
	require.Equal(t, 0, notified)
}

func TestFailedAuthDoesNotNotify(t *testing.T) {
	a := bootstrap(t)

	notified := 0
	a.Subscribe(func() { notified++ })

	_, err := a.Login(context.Background(), mytesting.RandEmail(), "pw")
	require.Equal(t, identity.ErrInvalidCredentials, err)
	require.Equal(t, 0, notified)
}

func TestAuthRoundTrip(t *testing.T) {
	a := bootstrap(t)

	email := mytesting.RandEmail()
	session, err := a.Signup(context.Background(), "Alex Johnson", email, "CL-1042", "hunter2")
	require.NoError(t, err)

	active, ok := a.Session()
	require.True(t, ok)
	require.Equal(t, session, active)

	// the session projects straight onto a message author
	group := a.CreateGroup(mytesting.RandString(), "Mathematics", "finals prep")
	message, ok := a.PostGroupMessage(group.ID, "hello", AuthorFromSession(session))
	require.True(t, ok)
	require.Equal(t, session.Name, message.User)
	require.Equal(t, session.Avatar, message.Avatar)

	a.Logout()
	_, ok = a.Session()
	require.False(t, ok)
}
