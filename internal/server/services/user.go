// Package services contains server-side business logic. This file implements
// UserService: registration, credential verification, token issuance, and
// resolving the calling identity from a presented token.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/avolkovs/clippings/internal/common"
	"github.com/avolkovs/clippings/internal/dbx"
	"github.com/avolkovs/clippings/internal/server/auth"
	"github.com/avolkovs/clippings/internal/server/models"
	"github.com/avolkovs/clippings/internal/server/repositories/repomanager"
)

// dummyHash keeps the cost of "no such email" equal to the cost of "wrong
// password": the miss path still burns one bcrypt comparison.
const dummyHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// UserService provides identity-related operations:
// - Register: create users with hashed passwords
// - Authenticate/Login: verify credentials and mint access tokens
// - ResolveCaller: map a bearer token back onto a stored user
// - Get/GetWithArticles/List/Update/Delete: user CRUD with authorization
type UserService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	tokens      *auth.Tokens
}

// NewUserService constructs a UserService over the given DB handle,
// repository manager, and token issuer.
func NewUserService(db *sql.DB, m repomanager.RepositoryManager, tokens *auth.Tokens) *UserService {
	return &UserService{db: db, repomanager: m, tokens: tokens}
}

// UserUpdate carries a partial user update; nil fields stay untouched.
type UserUpdate struct {
	FirstName *string
	LastName  *string
	Email     *string
	Password  *string
	Admin     *bool
}

// Register hashes the password and creates the user. A duplicate email
// surfaces as common.ErrorConflict.
func (s *UserService) Register(ctx context.Context, user *models.User, password string) (*models.User, error) {
	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}
	user.PasswordHash = hash

	repo := s.repomanager.Users(s.db)
	u, err := repo.Create(ctx, user)
	if err != nil {
		if errors.Is(err, common.ErrorConflict) {
			return nil, common.ErrorConflict
		}
		return nil, fmt.Errorf("error creating user: %w", err)
	}
	return u, nil
}

// Authenticate verifies an email/password pair. "No such email" and "wrong
// password" are the same outcome for the caller: common.ErrorUnauthorized.
func (s *UserService) Authenticate(ctx context.Context, email string, password string) (*models.User, error) {
	repo := s.repomanager.Users(s.db)
	user, err := repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			auth.CheckPassword(password, dummyHash)
			return nil, common.ErrorUnauthorized
		}
		return nil, common.ErrorInternal
	}
	if !auth.CheckPassword(password, user.PasswordHash) {
		return nil, common.ErrorUnauthorized
	}
	return user, nil
}

// Login authenticates and, on success, mints an access token.
func (s *UserService) Login(ctx context.Context, email string, password string) (string, error) {
	user, err := s.Authenticate(ctx, email, password)
	if err != nil {
		return "", err
	}
	token, err := s.tokens.Generate(user.ID)
	if err != nil {
		return "", common.ErrorInternal
	}
	return token, nil
}

// ResolveCaller verifies the token and loads the user it names. A valid
// token whose subject no longer exists yields common.ErrUnknownSubject;
// token verification failures pass through as their sentinels. The HTTP
// boundary collapses all of these into one response.
func (s *UserService) ResolveCaller(ctx context.Context, token string) (*models.User, error) {
	userID, err := s.tokens.Parse(token)
	if err != nil {
		return nil, err
	}

	repo := s.repomanager.Users(s.db)
	user, err := repo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrUnknownSubject
		}
		return nil, common.ErrorInternal
	}
	return user, nil
}

// Get returns a single user by ID.
func (s *UserService) Get(ctx context.Context, id int64) (*models.User, error) {
	return s.repomanager.Users(s.db).GetByID(ctx, id)
}

// GetWithArticles returns a user together with the articles they own,
// loaded with an explicit second query.
func (s *UserService) GetWithArticles(ctx context.Context, id int64) (*models.User, []*models.Article, error) {
	user, err := s.repomanager.Users(s.db).GetByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	articles, err := s.repomanager.Articles(s.db).ListByUser(ctx, id)
	if err != nil {
		return nil, nil, fmt.Errorf("error loading articles: %w", err)
	}
	return user, articles, nil
}

// List returns all users.
func (s *UserService) List(ctx context.Context) ([]*models.User, error) {
	return s.repomanager.Users(s.db).List(ctx)
}

// Update applies a partial update to the user with the given id. The caller
// must be that user or an admin; only admins may flip the admin flag. The
// read and write run in one transaction.
func (s *UserService) Update(ctx context.Context, caller *models.User, id int64, upd UserUpdate) (*models.User, error) {
	if err := authorizeUserMutation(caller, id); err != nil {
		return nil, err
	}
	if upd.Admin != nil && !caller.Admin {
		return nil, common.ErrorForbidden
	}

	var updated *models.User
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Users(tx)

		user, err := repo.GetByID(ctx, id)
		if err != nil {
			return err
		}

		if upd.FirstName != nil {
			user.FirstName = *upd.FirstName
		}
		if upd.LastName != nil {
			user.LastName = *upd.LastName
		}
		if upd.Email != nil {
			user.Email = *upd.Email
		}
		if upd.Password != nil {
			hash, err := auth.HashPassword(*upd.Password)
			if err != nil {
				return fmt.Errorf("error hashing password: %w", err)
			}
			user.PasswordHash = hash
		}
		if upd.Admin != nil {
			user.Admin = *upd.Admin
		}

		updated, err = repo.Update(ctx, user)
		return err
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// Delete removes the user; their articles go with them via the FK cascade.
// The caller must be that user or an admin.
func (s *UserService) Delete(ctx context.Context, caller *models.User, id int64) error {
	if err := authorizeUserMutation(caller, id); err != nil {
		return err
	}
	return s.repomanager.Users(s.db).Delete(ctx, id)
}

// authorizeUserMutation lets a user mutate their own record; admins may
// mutate anyone.
func authorizeUserMutation(caller *models.User, targetID int64) error {
	if caller.ID != targetID && !caller.Admin {
		return common.ErrorForbidden
	}
	return nil
}
