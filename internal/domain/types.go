package domain

// UserID is the opaque stable identifier of a registered user. It is minted
// by the accounts service at registration time and never reused.
type UserID string

// Account holds a user's login credentials. The password is stored as a
// PBKDF2-SHA512 hash alongside its per-user salt.
type Account struct {
	ID           UserID
	Username     string
	PasswordHash []byte
	Salt         []byte
}

// Profile is the public face of a user.
type Profile struct {
	UserID UserID `json:"userId"`
	Name   string `json:"name"`
	Bio    string `json:"bio,omitempty"`
	Avatar string `json:"avatar,omitempty"`
}

// ProfileUpdate carries partial profile changes. Nil fields are left
// untouched.
type ProfileUpdate struct {
	Name   *string `json:"name,omitempty"`
	Bio    *string `json:"bio,omitempty"`
	Avatar *string `json:"avatar,omitempty"`
}

// Credentials is what register and login hand back to the client: the
// identity plus a bearer token for the REST API and the relay handshake.
type Credentials struct {
	UserID   UserID `json:"userId"`
	Username string `json:"username"`
	Token    string `json:"token"`
}

// MessagePayload is the opaque content of a relayed direct message. The
// relay never interprets it: either the encrypted triplet is set, or the
// legacy plaintext Text field is.
type MessagePayload struct {
	Ciphertext string `json:"ciphertext,omitempty"`
	IV         string `json:"iv,omitempty"`
	AuthTag    string `json:"authTag,omitempty"`
	Text       string `json:"text,omitempty"`
}

// Empty reports whether the payload carries neither an encrypted triplet
// nor legacy plaintext.
func (p MessagePayload) Empty() bool {
	return p.Ciphertext == "" && p.Text == ""
}

// MessageLogEntry is one relayed direct message as appended to the shared
// durable log. Entries are never mutated or deleted.
type MessageLogEntry struct {
	ID        string         `json:"id"`
	From      UserID         `json:"from"`
	To        UserID         `json:"to"`
	Payload   MessagePayload `json:"payload"`
	Timestamp int64          `json:"timestamp"`
}

// Post is a social feed entry.
type Post struct {
	ID        string   `json:"id"`
	From      UserID   `json:"from"`
	Text      string   `json:"text,omitempty"`
	Image     string   `json:"image,omitempty"` // base64, opaque to the server
	ImageMime string   `json:"imageMime,omitempty"`
	Timestamp int64    `json:"timestamp"`
	Likes     []UserID `json:"likes"`
}

// PostUpdate carries partial post changes. Nil fields are left untouched.
type PostUpdate struct {
	Text      *string `json:"text,omitempty"`
	Image     *string `json:"image,omitempty"`
	ImageMime *string `json:"imageMime,omitempty"`
}
