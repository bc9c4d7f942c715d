package payment

import (
	"context"

	"go.uber.org/zap"

	"miswa/internal/docstore"
	"miswa/internal/domain/singleton"
	"miswa/internal/domain/upload"
)

// Service keeps the UPI singleton and owns the logo and QR images it points at.
type Service struct {
	info    *singleton.Store[UPIPaymentInfo]
	uploads *upload.Service
	log     *zap.Logger
}

func NewService(store docstore.Store, uploads *upload.Service, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{
		info:    singleton.New(store, collectionName, documentKey, Defaults),
		uploads: uploads,
		log:     log,
	}
}

func (s *Service) Get(ctx context.Context) (*UPIPaymentInfo, error) {
	return s.info.Get(ctx)
}

func (s *Service) Update(ctx context.Context, patch Patch) (*UPIPaymentInfo, error) {
	return s.info.Update(ctx, patch)
}

// ReplaceImage points the logo or QR code URL at an already stored upi image and
// removes the image it replaced. The previous image is only removed when it is one of
// ours; the new one is removed again if the update fails.
func (s *Service) ReplaceImage(ctx context.Context, img Image, ref *upload.Reference) (*UPIPaymentInfo, error) {
	current, err := s.info.Get(ctx)
	if err != nil {
		s.uploads.Remove(ctx, upload.ClassUPI, ref.Filename)
		return nil, err
	}
	previous := img.current(current)

	info, err := s.info.Update(ctx, img.patch(ref.URL))
	if err != nil {
		s.uploads.Remove(ctx, upload.ClassUPI, ref.Filename)
		return nil, err
	}

	if name, ok := s.uploads.FilenameFromURL(upload.ClassUPI, previous); ok && name != ref.Filename {
		s.uploads.Remove(ctx, upload.ClassUPI, name)
	}
	return info, nil
}
