package social

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"kurier/internal/domain"
)

// Service ties the user, contact, and post stores together behind the
// REST handlers.
type Service struct {
	users    domain.UserStore
	contacts domain.ContactStore
	posts    domain.PostStore

	now   func() time.Time
	newID func() string
}

// New constructs the service over its stores.
func New(users domain.UserStore, contacts domain.ContactStore, posts domain.PostStore) *Service {
	return &Service{
		users:    users,
		contacts: contacts,
		posts:    posts,
		now:      time.Now,
		newID:    uuid.NewString,
	}
}

// Profile returns the profile for id.
func (s *Service) Profile(id domain.UserID) (domain.Profile, error) {
	p, ok := s.users.Profile(id)
	if !ok {
		return domain.Profile{}, domain.ErrNotFound
	}
	return p, nil
}

// UpdateProfile merges upd into the stored profile.
func (s *Service) UpdateProfile(id domain.UserID, upd domain.ProfileUpdate) (domain.Profile, error) {
	return s.users.UpdateProfile(id, upd)
}

// AddContact links contact into user's list. The contact must exist.
func (s *Service) AddContact(user, contact domain.UserID) error {
	if user == contact {
		return fmt.Errorf("%w: cannot add yourself", domain.ErrNotFound)
	}
	if _, ok := s.users.Profile(contact); !ok {
		return domain.ErrNotFound
	}
	s.contacts.Add(user, contact)
	return nil
}

// Contacts resolves user's contact list to profiles.
func (s *Service) Contacts(user domain.UserID) []domain.Profile {
	return s.users.Profiles(s.contacts.ListFor(user))
}

// CreatePost publishes a post. Text or an image is required.
func (s *Service) CreatePost(author domain.UserID, text, image, imageMime string) (domain.Post, error) {
	if text == "" && image == "" {
		return domain.Post{}, fmt.Errorf("text or image required")
	}
	post := domain.Post{
		ID:        s.newID(),
		From:      author,
		Text:      text,
		Image:     image,
		ImageMime: imageMime,
		Timestamp: s.now().UnixMilli(),
		Likes:     []domain.UserID{},
	}
	s.posts.Create(post)
	return post, nil
}

// UpdatePost applies owner-only partial changes.
func (s *Service) UpdatePost(id string, owner domain.UserID, upd domain.PostUpdate) (domain.Post, error) {
	return s.posts.Update(id, owner, upd)
}

// DeletePost removes an owned post.
func (s *Service) DeletePost(id string, owner domain.UserID) error {
	return s.posts.Delete(id, owner)
}

// LikePost records an idempotent like.
func (s *Service) LikePost(id string, user domain.UserID) (domain.Post, error) {
	return s.posts.Like(id, user)
}

// Feed returns the posts authored by user's contacts, oldest first.
func (s *Service) Feed(user domain.UserID) []domain.Post {
	return s.posts.ByAuthors(s.contacts.ListFor(user))
}

var _ domain.Social = (*Service)(nil)
