package docstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// documentRow is one document in the shared documents table.
type documentRow struct {
	ID         uint           `gorm:"primaryKey"`
	Collection string         `gorm:"size:64;not null;uniqueIndex:idx_documents_collection_key"`
	Key        string         `gorm:"column:doc_key;size:128;not null;uniqueIndex:idx_documents_collection_key"`
	Data       datatypes.JSON `gorm:"not null"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (documentRow) TableName() string { return "documents" }

// GormStore stores documents as JSON payloads in a single relational table.
type GormStore struct {
	db *gorm.DB
}

// NewGormStore migrates the documents table and returns a Store backed by db.
func NewGormStore(db *gorm.DB) (*GormStore, error) {
	if err := db.AutoMigrate(&documentRow{}); err != nil {
		return nil, fmt.Errorf("docstore: migrate documents: %w", err)
	}
	return &GormStore{db: db}, nil
}

func (s *GormStore) Find(ctx context.Context, coll string, filter Filter, opts *FindOptions) ([]Document, error) {
	docs, err := s.scan(s.db.WithContext(ctx), coll, filter, 0)
	if err != nil {
		return nil, err
	}
	return applyFindOptions(docs, opts), nil
}

func (s *GormStore) FindOne(ctx context.Context, coll string, filter Filter) (Document, error) {
	docs, err := s.scan(s.db.WithContext(ctx), coll, filter, 1)
	if err != nil {
		return nil, err
	}
	if len(docs) == 0 {
		return nil, ErrNotFound
	}
	return docs[0], nil
}

func (s *GormStore) InsertOne(ctx context.Context, coll string, doc Document) error {
	row, err := newRow(coll, doc)
	if err != nil {
		return err
	}
	if err := s.db.WithContext(ctx).Create(row).Error; err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicateKey
		}
		return fmt.Errorf("docstore: insert %s: %w", coll, err)
	}
	return nil
}

func (s *GormStore) UpdateOne(ctx context.Context, coll string, filter Filter, set Document, opts *UpdateOptions) (UpdateResult, error) {
	res, err := s.updateOne(ctx, coll, filter, set, opts)
	if errors.Is(err, ErrDuplicateKey) && opts != nil && opts.Upsert {
		// A concurrent upsert inserted the same key first; apply ours as an update.
		return s.updateOne(ctx, coll, filter, set, &UpdateOptions{})
	}
	return res, err
}

func (s *GormStore) updateOne(ctx context.Context, coll string, filter Filter, set Document, opts *UpdateOptions) (UpdateResult, error) {
	var result UpdateResult
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		rows, err := s.rows(forUpdate(tx), coll, filter, 1)
		if err != nil {
			return err
		}

		if len(rows) == 1 {
			doc, err := decodeBytes(rows[0].Data)
			if err != nil {
				return err
			}
			for k, v := range set {
				doc[k] = v
			}
			raw, err := json.Marshal(doc)
			if err != nil {
				return fmt.Errorf("docstore: encode: %w", err)
			}
			if err := tx.Model(&documentRow{}).Where("id = ?", rows[0].ID).
				Updates(map[string]any{"data": datatypes.JSON(raw), "updated_at": time.Now().UTC()}).Error; err != nil {
				return fmt.Errorf("docstore: update %s: %w", coll, err)
			}
			result.Matched = 1
			return nil
		}

		if opts == nil || !opts.Upsert {
			return nil
		}
		row, err := newRow(coll, upsertDocument(filter, set, opts))
		if err != nil {
			return err
		}
		if err := tx.Create(row).Error; err != nil {
			if isUniqueViolation(err) {
				return ErrDuplicateKey
			}
			return fmt.Errorf("docstore: upsert %s: %w", coll, err)
		}
		result.Upserted = true
		return nil
	})
	return result, err
}

func (s *GormStore) DeleteOne(ctx context.Context, coll string, filter Filter) (int64, error) {
	var deleted int64
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		rows, err := s.rows(forUpdate(tx), coll, filter, 1)
		if err != nil || len(rows) == 0 {
			return err
		}
		res := tx.Delete(&documentRow{}, rows[0].ID)
		if res.Error != nil {
			return fmt.Errorf("docstore: delete %s: %w", coll, res.Error)
		}
		deleted = res.RowsAffected
		return nil
	})
	return deleted, err
}

func (s *GormStore) Count(ctx context.Context, coll string, filter Filter) (int64, error) {
	if len(filter) == 0 {
		var n int64
		err := s.db.WithContext(ctx).Model(&documentRow{}).Where("collection = ?", coll).Count(&n).Error
		if err != nil {
			return 0, fmt.Errorf("docstore: count %s: %w", coll, err)
		}
		return n, nil
	}
	docs, err := s.scan(s.db.WithContext(ctx), coll, filter, 0)
	if err != nil {
		return 0, err
	}
	return int64(len(docs)), nil
}

func (s *GormStore) Close(context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// rows loads candidate rows in insertion order. Only the id is pushed down to SQL;
// the remaining fields are matched on the decoded payload.
func (s *GormStore) rows(tx *gorm.DB, coll string, filter Filter, limit int) ([]documentRow, error) {
	q := tx.Where("collection = ?", coll).Order("id")
	if id, ok := filter[KeyField].(string); ok {
		q = q.Where("doc_key = ?", id)
	}

	var rows []documentRow
	if err := q.Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("docstore: query %s: %w", coll, err)
	}

	out := rows[:0]
	for _, row := range rows {
		doc, err := decodeBytes(row.Data)
		if err != nil {
			return nil, err
		}
		if matches(doc, filter) {
			out = append(out, row)
			if limit > 0 && len(out) == limit {
				break
			}
		}
	}
	return out, nil
}

// forUpdate holds row locks on the read half of a read-merge-write until the
// transaction ends. SQLite ignores the clause and relies on its single writer.
func forUpdate(tx *gorm.DB) *gorm.DB {
	return tx.Clauses(clause.Locking{Strength: "UPDATE"})
}

func (s *GormStore) scan(tx *gorm.DB, coll string, filter Filter, limit int) ([]Document, error) {
	rows, err := s.rows(tx, coll, filter, limit)
	if err != nil {
		return nil, err
	}
	docs := make([]Document, 0, len(rows))
	for _, row := range rows {
		doc, err := decodeBytes(row.Data)
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}
	return docs, nil
}

func newRow(coll string, doc Document) (*documentRow, error) {
	id, err := keyOf(doc)
	if err != nil {
		return nil, err
	}
	raw, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("docstore: encode: %w", err)
	}
	return &documentRow{Collection: coll, Key: id, Data: datatypes.JSON(raw)}, nil
}

func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
