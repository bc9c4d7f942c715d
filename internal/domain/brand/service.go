package brand

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"miswa/internal/docstore"
)

const collectionName = "brands"

type Service struct {
	brands *docstore.Collection[Brand]
	log    *zap.Logger
}

func NewService(store docstore.Store, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{brands: docstore.NewCollection[Brand](store, collectionName), log: log}
}

func (s *Service) List(ctx context.Context) ([]Brand, error) {
	return s.brands.Find(ctx, nil, nil)
}

func (s *Service) Create(ctx context.Context, in BrandInput) (*Brand, error) {
	b := &Brand{
		ID:          uuid.NewString(),
		Name:        in.Name,
		Tagline:     in.Tagline,
		Description: in.Description,
		Website:     in.Website,
		LogoURL:     in.LogoURL,
		ImageURL:    in.ImageURL,
		CreatedAt:   time.Now().UTC(),
	}
	if err := s.brands.Insert(ctx, b); err != nil {
		return nil, fmt.Errorf("insert brand: %w", err)
	}
	return b, nil
}

// Replace overwrites every input field of an existing brand.
func (s *Service) Replace(ctx context.Context, id string, in BrandInput) (*Brand, error) {
	set, err := docstore.Encode(in)
	if err != nil {
		return nil, err
	}
	set["updated_at"] = time.Now().UTC().Format(time.RFC3339Nano)

	b, err := s.brands.Update(ctx, docstore.ByID(id), set)
	if err != nil {
		if docstore.IsNotFound(err) {
			return nil, ErrBrandNotFound
		}
		return nil, fmt.Errorf("update brand: %w", err)
	}
	return b, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.brands.Delete(ctx, docstore.ByID(id)); err != nil {
		if docstore.IsNotFound(err) {
			return ErrBrandNotFound
		}
		return fmt.Errorf("delete brand: %w", err)
	}
	return nil
}

// SeedDefaults inserts the built-in brands when the collection is empty.
func (s *Service) SeedDefaults(ctx context.Context) error {
	n, err := s.brands.Count(ctx, nil)
	if err != nil {
		return fmt.Errorf("count brands: %w", err)
	}
	if n > 0 {
		return nil
	}
	for _, in := range defaultBrands() {
		if _, err := s.Create(ctx, in); err != nil {
			return err
		}
	}
	s.log.Info("initialized default brand data")
	return nil
}
