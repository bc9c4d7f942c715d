package linkpage

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"miswa/internal/docstore/docstoretest"
)

func TestService_SeedDefaultsOnce(t *testing.T) {
	ctx := context.Background()
	svc := NewService(docstoretest.NewSQLite(t), nil)

	require.NoError(t, svc.SeedDefaults(ctx))
	require.NoError(t, svc.SeedDefaults(ctx))

	pages, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, pages, 2)

	mlt, err := svc.Get(ctx, "mylittletales")
	require.NoError(t, err)
	assert.Equal(t, DefaultGradientFrom, mlt.GradientFrom)
	assert.Equal(t, DefaultButtonText, mlt.InstagramText)
	require.Len(t, mlt.QRCodes, 2)

	tt, err := svc.Get(ctx, "tyneetots")
	require.NoError(t, err)
	assert.Equal(t, "from-purple-400", tt.GradientFrom)
	assert.Equal(t, "to-indigo-50/30", tt.BgGradientTo)
}

func TestService_CreateAppliesDefaultsAndRejectsDuplicateSlug(t *testing.T) {
	ctx := context.Background()
	svc := NewService(docstoretest.NewSQLite(t), nil)

	p, err := svc.Create(ctx, CreateInput{BrandSlug: "acme", BrandName: "Acme"})
	require.NoError(t, err)
	assert.Equal(t, DefaultButtonText, p.WebsiteText)
	assert.Equal(t, DefaultBgGradientVia, p.BgGradientVia)
	assert.NotNil(t, p.QRCodes)

	_, err = svc.Create(ctx, CreateInput{BrandSlug: "acme", BrandName: "Acme 2"})
	assert.ErrorIs(t, err, ErrSlugTaken)
}

func TestService_UpdateIsPartial(t *testing.T) {
	ctx := context.Background()
	svc := NewService(docstoretest.NewSQLite(t), nil)

	site := "https://acme.example"
	created, err := svc.Create(ctx, CreateInput{BrandSlug: "acme", BrandName: "Acme", Tagline: "Old", WebsiteURL: &site})
	require.NoError(t, err)

	tagline := "New"
	qr := []QRCode{{Title: "Site", URL: site}}
	updated, err := svc.Update(ctx, "acme", Patch{Tagline: &tagline, QRCodes: &qr})
	require.NoError(t, err)

	assert.Equal(t, "New", updated.Tagline)
	assert.Equal(t, "Acme", updated.BrandName)
	require.NotNil(t, updated.WebsiteURL)
	assert.Equal(t, site, *updated.WebsiteURL)
	assert.Equal(t, qr, updated.QRCodes)
	assert.Equal(t, created.ID, updated.ID)
	assert.False(t, updated.UpdatedAt.Before(created.UpdatedAt))

	_, err = svc.Update(ctx, "missing", Patch{Tagline: &tagline})
	assert.ErrorIs(t, err, ErrLinkPageNotFound)

	require.NoError(t, svc.Delete(ctx, "acme"))
	assert.ErrorIs(t, svc.Delete(ctx, "acme"), ErrLinkPageNotFound)
}

func TestService_ConcurrentCreatesClaimSlugOnce(t *testing.T) {
	ctx := context.Background()
	svc := NewService(docstoretest.NewSQLite(t), nil)

	const n = 8
	var wg sync.WaitGroup
	errs := make(chan error, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.Create(ctx, CreateInput{BrandSlug: "acme", BrandName: fmt.Sprintf("Acme %d", i)})
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	created := 0
	for err := range errs {
		if err == nil {
			created++
			continue
		}
		assert.ErrorIs(t, err, ErrSlugTaken)
	}
	assert.Equal(t, 1, created)

	pages, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, pages, 1)
}

func TestService_DeleteFreesSlug(t *testing.T) {
	ctx := context.Background()
	svc := NewService(docstoretest.NewSQLite(t), nil)

	_, err := svc.Create(ctx, CreateInput{BrandSlug: "acme", BrandName: "Acme"})
	require.NoError(t, err)
	require.NoError(t, svc.Delete(ctx, "acme"))

	again, err := svc.Create(ctx, CreateInput{BrandSlug: "acme", BrandName: "Acme again"})
	require.NoError(t, err)
	assert.Equal(t, "Acme again", again.BrandName)
}
