package linkpage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"miswa/internal/docstore"
)

const (
	collectionName = "link_pages"
	slugsName      = "link_page_slugs"
)

// slugClaim is keyed by the slug itself, so the store's key uniqueness is what
// keeps two pages from sharing a slug.
type slugClaim struct {
	Slug   string `json:"id"`
	PageID string `json:"page_id"`
}

type Service struct {
	pages *docstore.Collection[LinkPage]
	slugs *docstore.Collection[slugClaim]
	log   *zap.Logger
	now   func() time.Time
}

func NewService(store docstore.Store, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{
		pages: docstore.NewCollection[LinkPage](store, collectionName),
		slugs: docstore.NewCollection[slugClaim](store, slugsName),
		log:   log,
		now:   func() time.Time { return time.Now().UTC() },
	}
}

func bySlug(slug string) docstore.Filter {
	return docstore.Filter{"brand_slug": slug}
}

func (s *Service) List(ctx context.Context) ([]LinkPage, error) {
	return s.pages.Find(ctx, nil, nil)
}

func (s *Service) Get(ctx context.Context, slug string) (*LinkPage, error) {
	p, err := s.pages.FindOne(ctx, bySlug(slug))
	if err != nil {
		if docstore.IsNotFound(err) {
			return nil, ErrLinkPageNotFound
		}
		return nil, fmt.Errorf("find link page: %w", err)
	}
	return p, nil
}

// Create rejects a slug that already has a page, since pages are addressed by slug.
func (s *Service) Create(ctx context.Context, in CreateInput) (*LinkPage, error) {
	n, err := s.pages.Count(ctx, bySlug(in.BrandSlug))
	if err != nil {
		return nil, fmt.Errorf("count link pages: %w", err)
	}
	if n > 0 {
		return nil, ErrSlugTaken
	}

	p := in.page(uuid.NewString(), s.now())
	if err := s.slugs.Insert(ctx, &slugClaim{Slug: p.BrandSlug, PageID: p.ID}); err != nil {
		if errors.Is(err, docstore.ErrDuplicateKey) {
			return nil, ErrSlugTaken
		}
		return nil, fmt.Errorf("claim slug: %w", err)
	}
	if err := s.pages.Insert(ctx, p); err != nil {
		s.releaseSlug(ctx, p.BrandSlug)
		return nil, fmt.Errorf("insert link page: %w", err)
	}
	return p, nil
}

func (s *Service) releaseSlug(ctx context.Context, slug string) {
	if err := s.slugs.Delete(ctx, docstore.ByID(slug)); err != nil && !docstore.IsNotFound(err) {
		s.log.Warn("failed to release link page slug", zap.String("slug", slug), zap.Error(err))
	}
}

// Update writes only the fields present in patch and stamps updated_at.
func (s *Service) Update(ctx context.Context, slug string, patch Patch) (*LinkPage, error) {
	set, err := docstore.Encode(patch)
	if err != nil {
		return nil, err
	}
	set["updated_at"] = s.now().Format(time.RFC3339Nano)

	p, err := s.pages.Update(ctx, bySlug(slug), set)
	if err != nil {
		if docstore.IsNotFound(err) {
			return nil, ErrLinkPageNotFound
		}
		return nil, fmt.Errorf("update link page: %w", err)
	}
	return p, nil
}

func (s *Service) Delete(ctx context.Context, slug string) error {
	if err := s.pages.Delete(ctx, bySlug(slug)); err != nil {
		if docstore.IsNotFound(err) {
			return ErrLinkPageNotFound
		}
		return fmt.Errorf("delete link page: %w", err)
	}
	s.releaseSlug(ctx, slug)
	return nil
}

// SeedDefaults inserts the built-in brand pages when the collection is empty.
func (s *Service) SeedDefaults(ctx context.Context) error {
	n, err := s.pages.Count(ctx, nil)
	if err != nil {
		return fmt.Errorf("count link pages: %w", err)
	}
	if n > 0 {
		return nil
	}
	for _, in := range defaultPages() {
		if _, err := s.Create(ctx, in); err != nil {
			return err
		}
	}
	s.log.Info("initialized default link pages data")
	return nil
}
