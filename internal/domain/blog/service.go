package blog

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"miswa/internal/docstore"
)

const collectionName = "blogs"

type Service struct {
	blogs *docstore.Collection[Blog]
	now   func() time.Time
}

func NewService(store docstore.Store) *Service {
	return &Service{
		blogs: docstore.NewCollection[Blog](store, collectionName),
		now:   func() time.Time { return time.Now().UTC() },
	}
}

// List returns posts newest first.
func (s *Service) List(ctx context.Context, publishedOnly bool) ([]Blog, error) {
	var filter docstore.Filter
	if publishedOnly {
		filter = docstore.Filter{"published": true}
	}
	return s.blogs.Find(ctx, filter, &docstore.FindOptions{SortBy: "created_at", Order: docstore.Descending})
}

func (s *Service) GetBySlug(ctx context.Context, slug string) (*Blog, error) {
	b, err := s.blogs.FindOne(ctx, docstore.Filter{"slug": slug})
	if err != nil {
		if docstore.IsNotFound(err) {
			return nil, ErrBlogNotFound
		}
		return nil, fmt.Errorf("find blog: %w", err)
	}
	return b, nil
}

func (s *Service) Create(ctx context.Context, in BlogInput) (*Blog, error) {
	now := s.now()
	b := &Blog{
		ID:        uuid.NewString(),
		Title:     in.Title,
		Slug:      in.Slug,
		Excerpt:   in.Excerpt,
		Content:   in.Content,
		ImageURL:  in.ImageURL,
		Author:    in.author(),
		Published: in.published(),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.blogs.Insert(ctx, b); err != nil {
		return nil, fmt.Errorf("insert blog: %w", err)
	}
	return b, nil
}

func (s *Service) Replace(ctx context.Context, id string, in BlogInput) (*Blog, error) {
	set := docstore.Document{
		"title":      in.Title,
		"slug":       in.Slug,
		"excerpt":    in.Excerpt,
		"content":    in.Content,
		"image_url":  nil,
		"author":     in.author(),
		"published":  in.published(),
		"updated_at": s.now().Format(time.RFC3339Nano),
	}
	if in.ImageURL != nil {
		set["image_url"] = *in.ImageURL
	}

	b, err := s.blogs.Update(ctx, docstore.ByID(id), set)
	if err != nil {
		if docstore.IsNotFound(err) {
			return nil, ErrBlogNotFound
		}
		return nil, fmt.Errorf("update blog: %w", err)
	}
	return b, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.blogs.Delete(ctx, docstore.ByID(id)); err != nil {
		if docstore.IsNotFound(err) {
			return ErrBlogNotFound
		}
		return fmt.Errorf("delete blog: %w", err)
	}
	return nil
}
