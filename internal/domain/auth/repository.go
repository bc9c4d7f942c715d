package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"miswa/internal/docstore"
)

const collectionName = "admins"

// Repository is the credential store.
type Repository struct {
	admins *docstore.Collection[Admin]
	log    *zap.Logger
}

func NewRepository(store docstore.Store, log *zap.Logger) *Repository {
	if log == nil {
		log = zap.NewNop()
	}
	return &Repository{admins: docstore.NewCollection[Admin](store, collectionName), log: log}
}

// FindByUsername returns nil, nil when no admin has that username.
func (r *Repository) FindByUsername(ctx context.Context, username string) (*Admin, error) {
	a, err := r.admins.FindOne(ctx, docstore.Filter{"username": username})
	if err != nil {
		if docstore.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("find admin: %w", err)
	}
	return a, nil
}

func (r *Repository) Count(ctx context.Context) (int64, error) {
	return r.admins.Count(ctx, nil)
}

// Create hashes password and stores a new admin.
func (r *Repository) Create(ctx context.Context, username, password string) (*Admin, error) {
	username = strings.TrimSpace(username)
	existing, err := r.FindByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrUsernameTaken
	}

	hash, err := HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	a := &Admin{
		ID:           uuid.NewString(),
		Username:     username,
		PasswordHash: hash,
		CreatedAt:    time.Now().UTC(),
	}
	if err := r.admins.Insert(ctx, a); err != nil {
		if errors.Is(err, docstore.ErrDuplicateKey) {
			return nil, ErrUsernameTaken
		}
		return nil, fmt.Errorf("insert admin: %w", err)
	}
	return a, nil
}

func (r *Repository) UpdatePassword(ctx context.Context, username, password string) error {
	hash, err := HashPassword(password)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	_, err = r.admins.Update(ctx, docstore.Filter{"username": username}, docstore.Document{"password_hash": hash})
	if docstore.IsNotFound(err) {
		return ErrAdminNotFound
	}
	return err
}

func (r *Repository) Delete(ctx context.Context, username string) error {
	err := r.admins.Delete(ctx, docstore.Filter{"username": username})
	if docstore.IsNotFound(err) {
		return ErrAdminNotFound
	}
	return err
}

// BootstrapIfEmpty creates the initial admin when the collection is empty. It is safe
// to call on every start; it reports whether an admin was created.
func (r *Repository) BootstrapIfEmpty(ctx context.Context, username, password string, usingDefaults bool) (bool, error) {
	n, err := r.Count(ctx)
	if err != nil {
		return false, fmt.Errorf("count admins: %w", err)
	}
	if n > 0 {
		return false, nil
	}

	if _, err := r.Create(ctx, username, password); err != nil {
		if errors.Is(err, ErrUsernameTaken) {
			// Another instance bootstrapped concurrently.
			return false, nil
		}
		return false, err
	}

	r.log.Info("bootstrap admin created", zap.String("username", username))
	if usingDefaults {
		r.log.Warn("default admin credentials are in use; set ADMIN_PASSWORD or rotate with adminctl",
			zap.String("username", username))
	}
	return true, nil
}
