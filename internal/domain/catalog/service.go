package catalog

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"miswa/internal/docstore"
)

const collectionName = "catalogs"

type Service struct {
	catalogs *docstore.Collection[Catalog]
}

func NewService(store docstore.Store) *Service {
	return &Service{catalogs: docstore.NewCollection[Catalog](store, collectionName)}
}

func (s *Service) List(ctx context.Context, category string) ([]Catalog, error) {
	var filter docstore.Filter
	if category != "" {
		filter = docstore.Filter{"category": category}
	}
	return s.catalogs.Find(ctx, filter, nil)
}

func (s *Service) Create(ctx context.Context, in CatalogInput) (*Catalog, error) {
	cat := &Catalog{
		ID:          uuid.NewString(),
		Title:       in.Title,
		Description: in.Description,
		Category:    in.Category,
		PDFURL:      in.PDFURL,
		ImageURL:    in.ImageURL,
		CreatedAt:   time.Now().UTC(),
	}
	if err := s.catalogs.Insert(ctx, cat); err != nil {
		return nil, fmt.Errorf("insert catalog: %w", err)
	}
	return cat, nil
}

func (s *Service) Replace(ctx context.Context, id string, in CatalogInput) (*Catalog, error) {
	set, err := docstore.Encode(in)
	if err != nil {
		return nil, err
	}
	set["updated_at"] = time.Now().UTC().Format(time.RFC3339Nano)

	cat, err := s.catalogs.Update(ctx, docstore.ByID(id), set)
	if err != nil {
		if docstore.IsNotFound(err) {
			return nil, ErrCatalogNotFound
		}
		return nil, fmt.Errorf("update catalog: %w", err)
	}
	return cat, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.catalogs.Delete(ctx, docstore.ByID(id)); err != nil {
		if docstore.IsNotFound(err) {
			return ErrCatalogNotFound
		}
		return fmt.Errorf("delete catalog: %w", err)
	}
	return nil
}
