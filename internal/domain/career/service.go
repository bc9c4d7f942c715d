package career

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"miswa/internal/docstore"
)

const collectionName = "careers"

type Service struct {
	careers *docstore.Collection[Career]
}

func NewService(store docstore.Store) *Service {
	return &Service{careers: docstore.NewCollection[Career](store, collectionName)}
}

func (s *Service) List(ctx context.Context, activeOnly bool) ([]Career, error) {
	var filter docstore.Filter
	if activeOnly {
		filter = docstore.Filter{"active": true}
	}
	return s.careers.Find(ctx, filter, nil)
}

func (s *Service) Create(ctx context.Context, in CareerInput) (*Career, error) {
	c := &Career{
		ID:           uuid.NewString(),
		Title:        in.Title,
		Department:   in.Department,
		Location:     in.Location,
		Type:         in.Type,
		Description:  in.Description,
		Requirements: string(in.Requirements),
		Active:       in.active(),
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.careers.Insert(ctx, c); err != nil {
		return nil, fmt.Errorf("insert career: %w", err)
	}
	return c, nil
}

func (s *Service) Replace(ctx context.Context, id string, in CareerInput) (*Career, error) {
	set := docstore.Document{
		"title":        in.Title,
		"department":   in.Department,
		"location":     in.Location,
		"type":         in.Type,
		"description":  in.Description,
		"requirements": string(in.Requirements),
		"active":       in.active(),
	}
	c, err := s.careers.Update(ctx, docstore.ByID(id), set)
	if err != nil {
		if docstore.IsNotFound(err) {
			return nil, ErrCareerNotFound
		}
		return nil, fmt.Errorf("update career: %w", err)
	}
	return c, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.careers.Delete(ctx, docstore.ByID(id)); err != nil {
		if docstore.IsNotFound(err) {
			return ErrCareerNotFound
		}
		return fmt.Errorf("delete career: %w", err)
	}
	return nil
}
