package inquiry

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"mime/multipart"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"miswa/internal/docstore"
	"miswa/internal/domain/upload"
)

const collectionName = "inquiries"

var csvHeader = []string{"id", "name", "email", "phone", "company", "message", "inquiry_type", "created_at"}

// Service stores inquiries and owns their CV files.
type Service struct {
	inquiries *docstore.Collection[Inquiry]
	uploads   *upload.Service
	log       *zap.Logger
	now       func() time.Time
}

func NewService(store docstore.Store, uploads *upload.Service, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{
		inquiries: docstore.NewCollection[Inquiry](store, collectionName),
		uploads:   uploads,
		log:       log,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// Create stores the CV first, when given, and drops it again if the inquiry cannot be
// saved.
func (s *Service) Create(ctx context.Context, in CreateInput, cv *multipart.FileHeader) (*Inquiry, error) {
	inq := &Inquiry{
		ID:          uuid.NewString(),
		Name:        in.Name,
		Email:       in.Email,
		Phone:       in.Phone,
		Company:     in.Company,
		Subject:     in.Subject,
		Message:     in.Message,
		InquiryType: in.inquiryType(),
		CreatedAt:   s.now(),
	}

	if cv != nil {
		ref, err := s.uploads.AcceptMultipart(ctx, upload.ClassCV, cv)
		if err != nil {
			return nil, err
		}
		inq.CVFilename = &ref.Filename
	}

	if err := s.inquiries.Insert(ctx, inq); err != nil {
		if inq.HasCV() {
			s.uploads.Remove(ctx, upload.ClassCV, *inq.CVFilename)
		}
		return nil, fmt.Errorf("insert inquiry: %w", err)
	}

	s.log.Info("inquiry received",
		zap.String("inquiry_id", inq.ID),
		zap.String("inquiry_type", inq.InquiryType),
		zap.Bool("has_cv", inq.HasCV()),
	)
	return inq, nil
}

// List returns inquiries newest first.
func (s *Service) List(ctx context.Context) ([]Inquiry, error) {
	return s.inquiries.Find(ctx, nil, &docstore.FindOptions{SortBy: "created_at", Order: docstore.Descending})
}

func (s *Service) Get(ctx context.Context, id string) (*Inquiry, error) {
	inq, err := s.inquiries.FindByID(ctx, id)
	if err != nil {
		if docstore.IsNotFound(err) {
			return nil, ErrInquiryNotFound
		}
		return nil, fmt.Errorf("find inquiry: %w", err)
	}
	return inq, nil
}

// Delete removes the inquiry, then its CV. A CV that cannot be removed is logged and
// left behind.
func (s *Service) Delete(ctx context.Context, id string) error {
	inq, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if err := s.inquiries.Delete(ctx, docstore.ByID(id)); err != nil {
		if docstore.IsNotFound(err) {
			return ErrInquiryNotFound
		}
		return fmt.Errorf("delete inquiry: %w", err)
	}
	if inq.HasCV() {
		s.uploads.Remove(ctx, upload.ClassCV, *inq.CVFilename)
	}
	return nil
}

// CVFilename returns the stored CV name of an inquiry, or ErrNoCV.
func (s *Service) CVFilename(ctx context.Context, id string) (string, error) {
	inq, err := s.Get(ctx, id)
	if err != nil {
		return "", err
	}
	if !inq.HasCV() {
		return "", ErrNoCV
	}
	return *inq.CVFilename, nil
}

// ExportCSV writes every inquiry, newest first, as CSV with a header row.
func (s *Service) ExportCSV(ctx context.Context, w io.Writer) error {
	inquiries, err := s.List(ctx)
	if err != nil {
		return err
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for _, inq := range inquiries {
		record := []string{
			inq.ID,
			inq.Name,
			inq.Email,
			deref(inq.Phone),
			deref(inq.Company),
			inq.Message,
			inq.InquiryType,
			inq.CreatedAt.Format(time.RFC3339Nano),
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
