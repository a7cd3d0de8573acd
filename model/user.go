package model

// PublicProfile is the reduced projection of an identity-directory record.
// User accounts live entirely in the directory; nothing here is persisted.
type PublicProfile struct {
	Id              string `json:"id"`
	Username        string `json:"username,omitempty"`
	ProfileImageUrl string `json:"profileImageUrl"`
}
