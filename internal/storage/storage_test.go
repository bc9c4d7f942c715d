package storage

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeS3 is an in-memory bucket.
type fakeS3 struct {
	mu      sync.Mutex
	objects map[string][]byte
	types   map[string]string
}

func newFakeS3() *fakeS3 {
	return &fakeS3{objects: map[string][]byte{}, types: map[string]string{}}
}

func (f *fakeS3) PutObject(_ context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	data, err := io.ReadAll(in.Body)
	if err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.objects[aws.ToString(in.Key)] = data
	f.types[aws.ToString(in.Key)] = aws.ToString(in.ContentType)
	return &s3.PutObjectOutput{}, nil
}

func (f *fakeS3) GetObject(_ context.Context, in *s3.GetObjectInput, _ ...func(*s3.Options)) (*s3.GetObjectOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	data, ok := f.objects[aws.ToString(in.Key)]
	if !ok {
		return nil, &types.NoSuchKey{}
	}
	now := time.Now()
	return &s3.GetObjectOutput{
		Body:          io.NopCloser(bytes.NewReader(data)),
		ContentLength: aws.Int64(int64(len(data))),
		LastModified:  &now,
	}, nil
}

func (f *fakeS3) DeleteObject(_ context.Context, in *s3.DeleteObjectInput, _ ...func(*s3.Options)) (*s3.DeleteObjectOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.objects, aws.ToString(in.Key))
	return &s3.DeleteObjectOutput{}, nil
}

func (f *fakeS3) ListObjectsV2(_ context.Context, in *s3.ListObjectsV2Input, _ ...func(*s3.Options)) (*s3.ListObjectsV2Output, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := &s3.ListObjectsV2Output{IsTruncated: aws.Bool(false)}
	for k, v := range f.objects {
		if strings.HasPrefix(k, aws.ToString(in.Prefix)) {
			out.Contents = append(out.Contents, types.Object{Key: aws.String(k), Size: aws.Int64(int64(len(v)))})
		}
	}
	return out, nil
}

func backends(t *testing.T) map[string]Storage {
	local, err := NewLocal(filepath.Join(t.TempDir(), "uploads"))
	require.NoError(t, err)
	return map[string]Storage{
		"local": local,
		"s3":    NewS3WithClient(newFakeS3(), "bucket"),
	}
}

func keys(objs []Object) []string {
	out := make([]string, 0, len(objs))
	for _, o := range objs {
		out = append(out, o.Key)
	}
	sort.Strings(out)
	return out
}

func TestStorage_RoundTrip(t *testing.T) {
	ctx := context.Background()
	for name, st := range backends(t) {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, st.Put(ctx, "cv/a.pdf", strings.NewReader("%PDF-1.4"), "application/pdf"))
			require.NoError(t, st.Put(ctx, "assets/b.png", bytes.NewBufferString("png"), "image/png"))

			rc, obj, err := st.Open(ctx, "cv/a.pdf")
			require.NoError(t, err)
			data, err := io.ReadAll(rc)
			require.NoError(t, rc.Close())
			require.NoError(t, err)
			assert.Equal(t, "%PDF-1.4", string(data))
			assert.Equal(t, int64(8), obj.Size)

			objs, err := st.List(ctx, "")
			require.NoError(t, err)
			assert.Equal(t, []string{"assets/b.png", "cv/a.pdf"}, keys(objs))

			objs, err = st.List(ctx, "cv/")
			require.NoError(t, err)
			assert.Equal(t, []string{"cv/a.pdf"}, keys(objs))

			require.NoError(t, st.Delete(ctx, "cv/a.pdf"))
			require.NoError(t, st.Delete(ctx, "cv/a.pdf"), "delete must be idempotent")

			_, _, err = st.Open(ctx, "cv/a.pdf")
			assert.ErrorIs(t, err, ErrNotExist)
		})
	}
}

func TestStorage_RejectsEscapingKeys(t *testing.T) {
	ctx := context.Background()
	for name, st := range backends(t) {
		t.Run(name, func(t *testing.T) {
			for _, key := range []string{"", "/etc/passwd", "../x", "cv/../../x", "cv/./a", "cv\\a"} {
				err := st.Put(ctx, key, strings.NewReader("x"), "")
				assert.ErrorIs(t, err, ErrInvalidKey, "key %q", key)
			}
		})
	}
}

func TestLocal_PutReplacesAtomically(t *testing.T) {
	ctx := context.Background()
	root := t.TempDir()
	st, err := NewLocal(root)
	require.NoError(t, err)

	require.NoError(t, st.Put(ctx, "upi/logo.png", strings.NewReader("one"), ""))
	require.NoError(t, st.Put(ctx, "upi/logo.png", strings.NewReader("two"), ""))

	data, err := os.ReadFile(filepath.Join(root, "upi", "logo.png"))
	require.NoError(t, err)
	assert.Equal(t, "two", string(data))

	entries, err := os.ReadDir(filepath.Join(root, "upi"))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "no temp files left behind")
}
