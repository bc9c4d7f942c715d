package docstore

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"miswa/internal/database"
)

// Open picks a backend from the URL scheme: mongodb:// and mongodb+srv:// use MongoDB,
// memory:// keeps everything in process, postgres:// and plain paths go through gorm.
func Open(ctx context.Context, url, dbName string, log *zap.Logger) (Store, error) {
	if log == nil {
		log = zap.NewNop()
	}

	switch {
	case strings.HasPrefix(url, "mongodb://"), strings.HasPrefix(url, "mongodb+srv://"):
		log.Info("document store: mongodb", zap.String("db", dbName))
		return NewMongoStore(ctx, url, dbName)
	case strings.HasPrefix(url, "memory://"):
		log.Warn("document store: in-memory, data is lost on restart")
		return NewMemStore(), nil
	}

	db, err := database.Connect(url, log)
	if err != nil {
		return nil, err
	}
	return NewGormStore(db)
}
