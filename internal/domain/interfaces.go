package domain

import "context"

// TokenVerifier is the identity-verification collaborator consumed by the
// relay during the auth handshake, once per connection. Implementations
// must honour ctx cancellation: a hung verification must not block the
// connection task forever.
type TokenVerifier interface {
	Verify(ctx context.Context, token string) (UserID, error)
}

// MessageLog is the message-log collaborator. Append is called once per
// relayed message; ListFor feeds the REST history endpoint and returns
// entries involving the user in insertion (chronological) order.
type MessageLog interface {
	Append(entry MessageLogEntry)
	ListFor(user UserID) []MessageLogEntry
}

// UserStore persists accounts and profiles.
type UserStore interface {
	CreateAccount(acc Account, profile Profile) error
	AccountByUsername(username string) (Account, bool)
	Profile(id UserID) (Profile, bool)
	UpdateProfile(id UserID, upd ProfileUpdate) (Profile, error)
	Profiles(ids []UserID) []Profile
}

// ContactStore keeps each user's contact list, duplicate-free.
type ContactStore interface {
	Add(user, contact UserID)
	ListFor(user UserID) []UserID
}

// PostStore keeps the social feed records.
type PostStore interface {
	Create(post Post)
	Get(id string) (Post, bool)
	Update(id string, owner UserID, upd PostUpdate) (Post, error)
	Delete(id string, owner UserID) error
	Like(id string, user UserID) (Post, error)
	ByAuthors(authors []UserID) []Post
}

// Accounts is the registration/login/verification service surface consumed
// by the REST layer and, via TokenVerifier, by the relay.
type Accounts interface {
	TokenVerifier
	Register(username, password string) (Credentials, error)
	Login(username, password string) (Credentials, error)
}

// Social is the profile/contact/post service surface behind the REST layer.
type Social interface {
	Profile(id UserID) (Profile, error)
	UpdateProfile(id UserID, upd ProfileUpdate) (Profile, error)
	AddContact(user, contact UserID) error
	Contacts(user UserID) []Profile
	CreatePost(author UserID, text, image, imageMime string) (Post, error)
	UpdatePost(id string, owner UserID, upd PostUpdate) (Post, error)
	DeletePost(id string, owner UserID) error
	LikePost(id string, user UserID) (Post, error)
	Feed(user UserID) []Post
}
