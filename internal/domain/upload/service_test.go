package upload

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"miswa/internal/storage"
)

func newTestService(t *testing.T, maxSize int64) (*Service, storage.Storage) {
	t.Helper()
	st, err := storage.NewLocal(t.TempDir())
	require.NoError(t, err)
	return NewService(st, "/api/uploads", maxSize, nil), st
}

func countFiles(t *testing.T, st storage.Storage) int {
	t.Helper()
	objs, err := st.List(context.Background(), "")
	require.NoError(t, err)
	return len(objs)
}

func TestAccept_StoresUnderGeneratedName(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t, 1024)

	ref, err := svc.Accept(ctx, ClassCV, strings.NewReader("%PDF"), 4, "My Resume.PDF")
	require.NoError(t, err)

	assert.True(t, strings.HasSuffix(ref.Filename, ".pdf"), "extension is lower-cased")
	_, err = uuid.Parse(strings.TrimSuffix(ref.Filename, ".pdf"))
	assert.NoError(t, err)
	assert.Equal(t, "/api/uploads/cv/"+ref.Filename, ref.URL)
	assert.NotContains(t, ref.Filename, "Resume")

	rc, info, err := svc.Retrieve(ctx, ClassCV, ref.Filename)
	require.NoError(t, err)
	defer rc.Close()
	data, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, "%PDF", string(data))
	assert.Equal(t, int64(4), info.Size)
	assert.Equal(t, "application/pdf", ContentTypeFor(ref.Filename))
}

func TestAccept_SameOriginalNameGetsDistinctReferences(t *testing.T) {
	ctx := context.Background()
	svc, st := newTestService(t, 1024)

	first, err := svc.Accept(ctx, ClassCV, strings.NewReader("first"), 5, "cv.pdf")
	require.NoError(t, err)
	second, err := svc.Accept(ctx, ClassCV, strings.NewReader("second"), 6, "cv.pdf")
	require.NoError(t, err)

	assert.NotEqual(t, first.Filename, second.Filename)
	assert.NotEqual(t, first.URL, second.URL)
	assert.Equal(t, 2, countFiles(t, st))

	for ref, want := range map[*Reference]string{first: "first", second: "second"} {
		rc, _, err := svc.Retrieve(ctx, ClassCV, ref.Filename)
		require.NoError(t, err)
		data, err := io.ReadAll(rc)
		rc.Close()
		require.NoError(t, err)
		assert.Equal(t, want, string(data))
	}
}

func TestAccept_RejectsDisallowedExtensionWithoutStoring(t *testing.T) {
	ctx := context.Background()
	svc, st := newTestService(t, 1024)

	for _, tc := range []struct {
		class Class
		name  string
	}{
		{ClassCV, "virus.exe"},
		{ClassCV, "photo.png"},
		{ClassCV, "no-extension"},
		{ClassUPI, "qr.pdf"},
		{ClassAssets, "script.js"},
		{ClassAssets, "../../etc/passwd"},
	} {
		_, err := svc.Accept(ctx, tc.class, strings.NewReader("x"), 1, tc.name)
		assert.ErrorIs(t, err, ErrInvalidFileType, "%s %s", tc.class, tc.name)
	}
	assert.Zero(t, countFiles(t, st))
}

func TestAccept_SizeLimits(t *testing.T) {
	ctx := context.Background()
	svc, st := newTestService(t, 8)

	_, err := svc.Accept(ctx, ClassAssets, strings.NewReader(""), 0, "a.png")
	assert.ErrorIs(t, err, ErrEmptyFile)

	_, err = svc.Accept(ctx, ClassAssets, strings.NewReader("0123456789"), 10, "a.png")
	assert.ErrorIs(t, err, ErrFileTooLarge)

	// Unknown size: the limit is enforced while copying and the partial file removed.
	_, err = svc.Accept(ctx, ClassAssets, bytes.NewReader(make([]byte, 20)), -1, "a.png")
	assert.ErrorIs(t, err, ErrFileTooLarge)

	_, err = svc.Accept(ctx, ClassAssets, strings.NewReader(""), -1, "a.png")
	assert.ErrorIs(t, err, ErrEmptyFile)

	assert.Zero(t, countFiles(t, st))

	_, err = svc.Accept(ctx, ClassAssets, strings.NewReader("12345678"), -1, "a.png")
	assert.NoError(t, err)
}

func TestRetrieve_NotFound(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t, 1024)

	for _, name := range []string{"", uuid.NewString() + ".pdf", "../secret.pdf", "cv.pdf"} {
		_, _, err := svc.Retrieve(ctx, ClassCV, name)
		assert.ErrorIs(t, err, ErrFileNotFound, "filename %q", name)
	}
}

func TestRemove_IsBestEffort(t *testing.T) {
	ctx := context.Background()
	svc, st := newTestService(t, 1024)

	ref, err := svc.Accept(ctx, ClassUPI, strings.NewReader("png"), 3, "logo.png")
	require.NoError(t, err)

	svc.Remove(ctx, ClassUPI, ref.Filename)
	svc.Remove(ctx, ClassUPI, ref.Filename)
	svc.Remove(ctx, ClassUPI, "")
	assert.Zero(t, countFiles(t, st))

	assert.ErrorIs(t, svc.Delete(ctx, ClassUPI, ref.Filename), ErrFileNotFound)
}

func TestList_AndFilenameFromURL(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t, 1024)

	cv, err := svc.Accept(ctx, ClassCV, strings.NewReader("doc"), 3, "cv.docx")
	require.NoError(t, err)
	logo, err := svc.Accept(ctx, ClassUPI, strings.NewReader("img"), 3, "logo.svg")
	require.NoError(t, err)

	all, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	upi, err := svc.List(ctx, ClassUPI)
	require.NoError(t, err)
	require.Len(t, upi, 1)
	assert.Equal(t, logo.Filename, upi[0].Filename)
	assert.Equal(t, logo.URL, upi[0].URL)

	name, ok := svc.FilenameFromURL(ClassUPI, logo.URL)
	assert.True(t, ok)
	assert.Equal(t, logo.Filename, name)

	_, ok = svc.FilenameFromURL(ClassUPI, cv.URL)
	assert.False(t, ok)
	_, ok = svc.FilenameFromURL(ClassUPI, "https://cdn.example.com/logo.png")
	assert.False(t, ok)
}

func TestContentTypeFor(t *testing.T) {
	cases := map[string]string{
		"a.pdf":  "application/pdf",
		"a.DOC":  "application/msword",
		"a.docx": "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
		"a.jpeg": "image/jpeg",
		"a.svg":  "image/svg+xml",
		"a.bin":  "application/octet-stream",
		"noext":  "application/octet-stream",
	}
	for name, want := range cases {
		assert.Equal(t, want, ContentTypeFor(name), name)
	}
}
