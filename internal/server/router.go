// Package server wires the domain services into one gin engine.
package server

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"miswa/internal/docstore"
	"miswa/internal/domain/auth"
	"miswa/internal/domain/blog"
	"miswa/internal/domain/brand"
	"miswa/internal/domain/career"
	"miswa/internal/domain/catalog"
	"miswa/internal/domain/company"
	"miswa/internal/domain/inquiry"
	"miswa/internal/domain/linkpage"
	"miswa/internal/domain/payment"
	"miswa/internal/domain/singleton"
	"miswa/internal/domain/social"
	"miswa/internal/domain/upload"
	"miswa/internal/middleware"
	"miswa/internal/pkg/jwt"
	"miswa/internal/pkg/response"
	"miswa/internal/storage"
)

// Services holds every domain service built over one document store and one file store.
type Services struct {
	Auth      *auth.Service
	Uploads   *upload.Service
	Brands    *brand.Service
	Catalogs  *catalog.Service
	Blogs     *blog.Service
	Careers   *career.Service
	LinkPages *linkpage.Service
	Inquiries *inquiry.Service
	Payment   *payment.Service
	Company   *singleton.Store[company.CompanyInfo]
	Social    *singleton.Store[social.SocialMediaInfo]

	AdminRepo *auth.Repository
}

type Options struct {
	UploadsURLPrefix string
	MaxUploadSize    int64
	CORSOrigins      []string
}

func NewServices(store docstore.Store, files storage.Storage, tokens *jwt.Service, opts Options, log *zap.Logger) *Services {
	uploads := upload.NewService(files, opts.UploadsURLPrefix, opts.MaxUploadSize, log.Named("upload"))
	admins := auth.NewRepository(store, log.Named("auth"))

	return &Services{
		Auth:      auth.NewService(admins, tokens, log.Named("auth")),
		Uploads:   uploads,
		Brands:    brand.NewService(store, log.Named("brand")),
		Catalogs:  catalog.NewService(store),
		Blogs:     blog.NewService(store),
		Careers:   career.NewService(store),
		LinkPages: linkpage.NewService(store, log.Named("linkpage")),
		Inquiries: inquiry.NewService(store, uploads, log.Named("inquiry")),
		Payment:   payment.NewService(store, uploads, log.Named("payment")),
		Company:   company.NewStore(store),
		Social:    social.NewStore(store),
		AdminRepo: admins,
	}
}

// Seed inserts the default brands and link pages into empty collections.
func (s *Services) Seed(ctx context.Context) error {
	if err := s.Brands.SeedDefaults(ctx); err != nil {
		return fmt.Errorf("seed brands: %w", err)
	}
	if err := s.LinkPages.SeedDefaults(ctx); err != nil {
		return fmt.Errorf("seed link pages: %w", err)
	}
	return nil
}

// NewRouter builds the engine. Every route lives under /api; uploads are additionally
// served from the configured URL prefix when it differs from /api/uploads.
func NewRouter(svc *Services, opts Options, log *zap.Logger) *gin.Engine {
	r := gin.New()
	r.Use(
		middleware.RequestID(),
		middleware.RequestLogger(log.Named("http")),
		middleware.Recovery(log),
		middleware.CORS(opts.CORSOrigins),
	)

	requireAdmin := auth.RequireAdmin(svc.Auth, log.Named("auth"))
	uploadHandler := upload.NewHandler(svc.Uploads, log.Named("upload"))

	api := r.Group("/api")
	api.GET("/health", func(c *gin.Context) {
		response.JSON(c, http.StatusOK, gin.H{"status": "ok"})
	})

	auth.RegisterRoutes(api, auth.NewHandler(svc.Auth, log.Named("auth")), requireAdmin)
	upload.RegisterRoutes(api, uploadHandler, requireAdmin)
	brand.RegisterRoutes(api, brand.NewHandler(svc.Brands, log), requireAdmin)
	catalog.RegisterRoutes(api, catalog.NewHandler(svc.Catalogs, log), requireAdmin)
	blog.RegisterRoutes(api, blog.NewHandler(svc.Blogs, log), requireAdmin)
	career.RegisterRoutes(api, career.NewHandler(svc.Careers, log), requireAdmin)
	linkpage.RegisterRoutes(api, linkpage.NewHandler(svc.LinkPages, log), requireAdmin)
	inquiry.RegisterRoutes(api, inquiry.NewHandler(svc.Inquiries, uploadHandler, log), requireAdmin)
	payment.RegisterRoutes(api, payment.NewHandler(svc.Payment, uploadHandler, log), requireAdmin)
	company.RegisterRoutes(api, company.NewHandler(svc.Company, log), requireAdmin)
	social.RegisterRoutes(api, social.NewHandler(svc.Social, log), requireAdmin)

	if prefix := strings.TrimRight(opts.UploadsURLPrefix, "/"); prefix != "" && prefix != upload.DefaultURLPrefix {
		r.GET(prefix+"/:category/:filename", uploadHandler.Serve)
	}

	r.NoRoute(func(c *gin.Context) {
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Not Found")
	})
	return r
}
