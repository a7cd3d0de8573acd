package services

import (
	"context"
	"fmt"
	"strings"

	"firebase.google.com/go/v4/auth"
	"github.com/chirper-app/chirper-be/model"
	"github.com/chirper-app/chirper-be/util"
)

// IdentityDirectory is the read side of the external service of record for
// user accounts. Implementations project directory records down to the
// fields this system needs and nothing else.
type IdentityDirectory interface {
	// LookupByIds may resolve fewer profiles than ids requested
	// (deleted or suspended accounts); callers decide whether that is fatal.
	LookupByIds(ctx context.Context, ids []string) (map[string]*model.PublicProfile, error)
	// LookupByUsername returns nil, nil when no account matches.
	LookupByUsername(ctx context.Context, username string) (*model.PublicProfile, error)
}

// FirebaseDirectory resolves profiles against Firebase Auth. Firebase has
// no username attribute, so usernames map to the local part of the account
// email under accountDomain.
type FirebaseDirectory struct {
	client        *auth.Client
	accountDomain string
}

func NewFirebaseDirectory(client *auth.Client, accountDomain string) *FirebaseDirectory {
	return &FirebaseDirectory{
		client:        client,
		accountDomain: accountDomain,
	}
}

func (fd *FirebaseDirectory) LookupByIds(ctx context.Context, ids []string) (map[string]*model.PublicProfile, error) {
	if len(ids) == 0 {
		return map[string]*model.PublicProfile{}, nil
	}
	identifiers := make([]auth.UserIdentifier, len(ids))
	for i, id := range ids {
		identifiers[i] = auth.UIDIdentifier{UID: id}
	}
	result, err := fd.client.GetUsers(ctx, identifiers)
	if err != nil {
		return nil, fmt.Errorf("error fetching users from directory: %w", err)
	}
	profiles := make(map[string]*model.PublicProfile, len(result.Users))
	for _, record := range result.Users {
		profiles[record.UID] = fd.buildProfile(record)
	}
	return profiles, nil
}

func (fd *FirebaseDirectory) LookupByUsername(ctx context.Context, username string) (*model.PublicProfile, error) {
	record, err := fd.client.GetUserByEmail(ctx, fmt.Sprintf("%s@%s", username, fd.accountDomain))
	if err != nil {
		if auth.IsUserNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("error fetching user by username: %w", err)
	}
	return fd.buildProfile(record), nil
}

func (fd *FirebaseDirectory) buildProfile(record *auth.UserRecord) *model.PublicProfile {
	avatar := record.PhotoURL
	if avatar == "" {
		avatar = util.Avatar(record.UID)
	}
	return &model.PublicProfile{
		Id:              record.UID,
		Username:        usernameFromEmail(record.Email, fd.accountDomain),
		ProfileImageUrl: avatar,
	}
}

func usernameFromEmail(email, accountDomain string) string {
	local, domain, found := strings.Cut(email, "@")
	if !found || domain != accountDomain {
		return ""
	}
	return local
}
