package social_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"kurier/internal/domain"
	"kurier/internal/services/social"
	"kurier/internal/store"
)

func newService(t *testing.T) (*social.Service, *store.UserStore) {
	t.Helper()
	users := store.NewUserStore()
	return social.New(users, store.NewContactStore(), store.NewPostStore()), users
}

func addUser(t *testing.T, users *store.UserStore, id domain.UserID, name string) {
	t.Helper()
	err := users.CreateAccount(
		domain.Account{ID: id, Username: name},
		domain.Profile{UserID: id, Name: name},
	)
	require.NoError(t, err)
}

func TestContacts(t *testing.T) {
	svc, users := newService(t)
	addUser(t, users, "u1", "alice")
	addUser(t, users, "u2", "bob")

	require.NoError(t, svc.AddContact("u1", "u2"))
	require.NoError(t, svc.AddContact("u1", "u2")) // idempotent

	got := svc.Contacts("u1")
	require.Len(t, got, 1)
	require.Equal(t, "bob", got[0].Name)

	require.ErrorIs(t, svc.AddContact("u1", "ghost"), domain.ErrNotFound)
	require.Error(t, svc.AddContact("u1", "u1"))
}

func TestFeedIsContactsOnly(t *testing.T) {
	svc, users := newService(t)
	addUser(t, users, "u1", "alice")
	addUser(t, users, "u2", "bob")
	addUser(t, users, "u3", "carol")

	require.NoError(t, svc.AddContact("u1", "u2"))

	_, err := svc.CreatePost("u2", "from bob", "", "")
	require.NoError(t, err)
	_, err = svc.CreatePost("u3", "from carol", "", "")
	require.NoError(t, err)

	feed := svc.Feed("u1")
	require.Len(t, feed, 1)
	require.Equal(t, "from bob", feed[0].Text)

	require.Empty(t, svc.Feed("u3"))
}

func TestCreatePostValidation(t *testing.T) {
	svc, users := newService(t)
	addUser(t, users, "u1", "alice")

	_, err := svc.CreatePost("u1", "", "", "")
	require.Error(t, err)

	post, err := svc.CreatePost("u1", "", "aGk=", "image/png")
	require.NoError(t, err)
	require.NotEmpty(t, post.ID)
	require.NotZero(t, post.Timestamp)
}

func TestPostLifecycle(t *testing.T) {
	svc, users := newService(t)
	addUser(t, users, "u1", "alice")
	addUser(t, users, "u2", "bob")

	post, err := svc.CreatePost("u1", "hello", "", "")
	require.NoError(t, err)

	liked, err := svc.LikePost(post.ID, "u2")
	require.NoError(t, err)
	require.Equal(t, []domain.UserID{"u2"}, liked.Likes)

	text := "edited"
	_, err = svc.UpdatePost(post.ID, "u2", domain.PostUpdate{Text: &text})
	require.ErrorIs(t, err, domain.ErrNotOwner)

	updated, err := svc.UpdatePost(post.ID, "u1", domain.PostUpdate{Text: &text})
	require.NoError(t, err)
	require.Equal(t, "edited", updated.Text)

	require.NoError(t, svc.DeletePost(post.ID, "u1"))
	require.ErrorIs(t, svc.DeletePost(post.ID, "u1"), domain.ErrNotFound)
}

func TestProfile(t *testing.T) {
	svc, users := newService(t)
	addUser(t, users, "u1", "alice")

	bio := "keeper of keys"
	got, err := svc.UpdateProfile("u1", domain.ProfileUpdate{Bio: &bio})
	require.NoError(t, err)
	require.Equal(t, "keeper of keys", got.Bio)

	_, err = svc.Profile("ghost")
	require.ErrorIs(t, err, domain.ErrNotFound)
}
