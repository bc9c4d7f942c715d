package upload

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"path"
	"sort"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"miswa/internal/storage"
)

const (
	DefaultMaxFileSize = 10 * 1024 * 1024 // 10 MB
	DefaultURLPrefix   = "/api/uploads"
)

// Service stores uploaded files under generated names and hands out references.
type Service struct {
	storage   storage.Storage
	urlPrefix string
	maxSize   int64
	log       *zap.Logger
}

func NewService(st storage.Storage, urlPrefix string, maxSize int64, log *zap.Logger) *Service {
	if urlPrefix == "" {
		urlPrefix = DefaultURLPrefix
	}
	if maxSize <= 0 {
		maxSize = DefaultMaxFileSize
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{
		storage:   st,
		urlPrefix: strings.TrimRight(urlPrefix, "/"),
		maxSize:   maxSize,
		log:       log,
	}
}

func (s *Service) MaxSize() int64 { return s.maxSize }

// Accept validates and stores one file. The stored name is a fresh UUID plus the
// lower-cased original extension; the original name is otherwise discarded.
// size may be -1 when unknown, in which case the limit is enforced while copying.
func (s *Service) Accept(ctx context.Context, class Class, r io.Reader, size int64, originalName string) (*Reference, error) {
	ext := strings.ToLower(path.Ext(strings.ReplaceAll(originalName, "\\", "/")))
	if !class.Allows(ext) {
		return nil, ErrInvalidFileType
	}
	if size == 0 {
		return nil, ErrEmptyFile
	}
	if size > s.maxSize {
		return nil, ErrFileTooLarge
	}

	body := r
	var counter *countingReader
	if size < 0 {
		counter = &countingReader{r: io.LimitReader(r, s.maxSize+1)}
		body = counter
	}

	filename := uuid.NewString() + ext
	key := class.key(filename)
	if err := s.storage.Put(ctx, key, body, ContentTypeFor(filename)); err != nil {
		return nil, fmt.Errorf("store %s: %w", key, err)
	}

	if counter != nil && (counter.n == 0 || counter.n > s.maxSize) {
		s.Remove(ctx, class, filename)
		if counter.n == 0 {
			return nil, ErrEmptyFile
		}
		return nil, ErrFileTooLarge
	}

	s.log.Info("file stored", zap.String("class", string(class)), zap.String("filename", filename))
	return &Reference{Filename: filename, URL: s.URLFor(class, filename)}, nil
}

func (s *Service) AcceptMultipart(ctx context.Context, class Class, fh *multipart.FileHeader) (*Reference, error) {
	if fh == nil {
		return nil, ErrEmptyFile
	}
	// Check the name before opening so a wrong type never touches storage.
	if !class.Allows(strings.ToLower(path.Ext(fh.Filename))) {
		return nil, ErrInvalidFileType
	}
	f, err := fh.Open()
	if err != nil {
		return nil, fmt.Errorf("open upload: %w", err)
	}
	defer f.Close()
	return s.Accept(ctx, class, f, fh.Size, fh.Filename)
}

// Remove deletes a stored file. It is best-effort: failures are logged, a missing
// file is fine.
func (s *Service) Remove(ctx context.Context, class Class, filename string) {
	if filename == "" || !s.validName(class, filename) {
		return
	}
	if err := s.storage.Delete(ctx, class.key(filename)); err != nil {
		s.log.Warn("failed to remove file",
			zap.String("class", string(class)), zap.String("filename", filename), zap.Error(err))
	}
}

// Delete removes a stored file and reports ErrFileNotFound when there is none.
func (s *Service) Delete(ctx context.Context, class Class, filename string) error {
	rc, _, err := s.open(ctx, class, filename)
	if err != nil {
		return err
	}
	rc.Close()
	if err := s.storage.Delete(ctx, class.key(filename)); err != nil {
		return fmt.Errorf("delete %s: %w", filename, err)
	}
	s.log.Info("file deleted", zap.String("class", string(class)), zap.String("filename", filename))
	return nil
}

// Retrieve opens a stored file. An empty filename and a missing file are both
// ErrFileNotFound. The caller closes the reader.
func (s *Service) Retrieve(ctx context.Context, class Class, filename string) (io.ReadCloser, *FileInfo, error) {
	rc, obj, err := s.open(ctx, class, filename)
	if err != nil {
		return nil, nil, err
	}
	return rc, &FileInfo{
		Category:   class,
		Filename:   filename,
		URL:        s.URLFor(class, filename),
		Size:       obj.Size,
		ModifiedAt: obj.ModifiedAt,
	}, nil
}

func (s *Service) open(ctx context.Context, class Class, filename string) (io.ReadCloser, *storage.Object, error) {
	if filename == "" || !s.validName(class, filename) {
		return nil, nil, ErrFileNotFound
	}
	rc, obj, err := s.storage.Open(ctx, class.key(filename))
	if err != nil {
		if errors.Is(err, storage.ErrNotExist) || errors.Is(err, storage.ErrInvalidKey) {
			return nil, nil, ErrFileNotFound
		}
		return nil, nil, fmt.Errorf("open %s: %w", filename, err)
	}
	return rc, obj, nil
}

// List returns stored files of the given classes (all classes when none are given),
// newest first.
func (s *Service) List(ctx context.Context, classes ...Class) ([]FileInfo, error) {
	if len(classes) == 0 {
		classes = Classes
	}
	out := []FileInfo{}
	for _, class := range classes {
		objs, err := s.storage.List(ctx, string(class)+"/")
		if err != nil {
			return nil, err
		}
		for _, o := range objs {
			name := strings.TrimPrefix(o.Key, string(class)+"/")
			if strings.Contains(name, "/") {
				continue
			}
			out = append(out, FileInfo{
				Category:   class,
				Filename:   name,
				URL:        s.URLFor(class, name),
				Size:       o.Size,
				ModifiedAt: o.ModifiedAt,
			})
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].ModifiedAt.After(out[j].ModifiedAt) })
	return out, nil
}

// URLFor is the root-relative URL a stored file is served from.
func (s *Service) URLFor(class Class, filename string) string {
	return s.urlPrefix + "/" + string(class) + "/" + filename
}

// FilenameFromURL extracts the stored filename from a URL produced by URLFor.
func (s *Service) FilenameFromURL(class Class, url string) (string, bool) {
	prefix := s.urlPrefix + "/" + string(class) + "/"
	if !strings.HasPrefix(url, prefix) {
		return "", false
	}
	name := strings.TrimPrefix(url, prefix)
	if !s.validName(class, name) {
		return "", false
	}
	return name, true
}

// validName accepts only names this service generates: a UUID plus an allowed extension.
func (s *Service) validName(class Class, filename string) bool {
	if filename != path.Base(filename) || strings.ContainsAny(filename, "/\\") {
		return false
	}
	ext := path.Ext(filename)
	if ext != strings.ToLower(ext) || !class.Allows(ext) {
		return false
	}
	stem := strings.TrimSuffix(filename, ext)
	if len(stem) != 36 {
		return false
	}
	_, err := uuid.Parse(stem)
	return err == nil
}

type countingReader struct {
	r io.Reader
	n int64
}

func (c *countingReader) Read(p []byte) (int, error) {
	n, err := c.r.Read(p)
	c.n += int64(n)
	return n, err
}
