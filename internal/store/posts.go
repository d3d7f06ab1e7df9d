package store

import (
	"slices"
	"sync"

	"kurier/internal/domain"
)

// PostStore keeps feed posts in insertion order. Ownership checks live
// here so every caller gets the same rule: only the author mutates a post.
type PostStore struct {
	mu    sync.RWMutex
	posts []domain.Post
}

// NewPostStore returns an empty post store.
func NewPostStore() *PostStore {
	return &PostStore{}
}

// Create appends a post to the feed.
func (s *PostStore) Create(post domain.Post) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.posts = append(s.posts, post)
}

// Get returns the post with id.
func (s *PostStore) Get(id string) (domain.Post, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.posts {
		if p.ID == id {
			return clonePost(p), true
		}
	}
	return domain.Post{}, false
}

// Update merges non-nil fields of upd into the post. Fails with
// domain.ErrNotFound for an unknown id and domain.ErrNotOwner when owner
// is not the author.
func (s *PostStore) Update(id string, owner domain.UserID, upd domain.PostUpdate) (domain.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.posts {
		if s.posts[i].ID != id {
			continue
		}
		if s.posts[i].From != owner {
			return domain.Post{}, domain.ErrNotOwner
		}
		if upd.Text != nil {
			s.posts[i].Text = *upd.Text
		}
		if upd.Image != nil {
			s.posts[i].Image = *upd.Image
		}
		if upd.ImageMime != nil {
			s.posts[i].ImageMime = *upd.ImageMime
		}
		return clonePost(s.posts[i]), nil
	}
	return domain.Post{}, domain.ErrNotFound
}

// Delete removes the post. Same ownership rule as Update.
func (s *PostStore) Delete(id string, owner domain.UserID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.posts {
		if s.posts[i].ID != id {
			continue
		}
		if s.posts[i].From != owner {
			return domain.ErrNotOwner
		}
		s.posts = slices.Delete(s.posts, i, i+1)
		return nil
	}
	return domain.ErrNotFound
}

// Like records user's like on the post, idempotently.
func (s *PostStore) Like(id string, user domain.UserID) (domain.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.posts {
		if s.posts[i].ID != id {
			continue
		}
		if !slices.Contains(s.posts[i].Likes, user) {
			s.posts[i].Likes = append(s.posts[i].Likes, user)
		}
		return clonePost(s.posts[i]), nil
	}
	return domain.Post{}, domain.ErrNotFound
}

// ByAuthors returns posts authored by any of authors, in insertion order.
func (s *PostStore) ByAuthors(authors []domain.UserID) []domain.Post {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Post, 0)
	for _, p := range s.posts {
		if slices.Contains(authors, p.From) {
			out = append(out, clonePost(p))
		}
	}
	return out
}

// clonePost copies the post so callers never alias the stored Likes slice.
func clonePost(p domain.Post) domain.Post {
	p.Likes = slices.Clone(p.Likes)
	if p.Likes == nil {
		p.Likes = []domain.UserID{}
	}
	return p
}

var _ domain.PostStore = (*PostStore)(nil)
