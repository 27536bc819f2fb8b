package storage

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"docmeister/internal/models/entity"
	"docmeister/internal/storage/postgres"
	"docmeister/pkg/appError"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type docs struct {
	pool postgres.DBPool
}

// DocStorage scopes every per-document operation to (uuid, owner_id) inside
// the query itself, so a document owned by someone else is indistinguishable
// from a missing one.
type DocStorage interface {
	SaveDoc(ctx context.Context, doc *entity.Document) error
	GetDocScoped(ctx context.Context, id uuid.UUID, ownerID int64) (*entity.Document, error)
	ListDocs(ctx context.Context, ownerID int64, tag string, limit, offset int) ([]entity.Document, error)
	CountDocs(ctx context.Context, ownerID int64, tag string) (int, error)
	UpdateTags(ctx context.Context, id uuid.UUID, ownerID int64, tags []string) (*entity.Document, error)
	DeleteDoc(ctx context.Context, id uuid.UUID, ownerID int64) error
}

func NewDocStorage(pool postgres.DBPool) DocStorage {
	return &docs{
		pool: pool,
	}
}

func (d *docs) SaveDoc(ctx context.Context, doc *entity.Document) error {
	query := `insert into documents(uuid, pages, doc_text, tags, doc_type, owner_id)
				values($1, $2, $3, $4, $5, $6)
				returning created`

	err := d.pool.QueryRow(ctx, query,
		doc.UUID,
		doc.Pages,
		doc.Text,
		doc.Tags,
		doc.DocType,
		doc.OwnerID,
	).Scan(&doc.Created)
	if err != nil {
		slog.Error("save document failed", "error", err)
		return appError.Unavailable()
	}

	return nil
}

func (d *docs) GetDocScoped(ctx context.Context, id uuid.UUID, ownerID int64) (*entity.Document, error) {
	query := `select uuid, pages, doc_text, tags, doc_type, owner_id, created
				from documents
				where uuid = $1 and owner_id = $2`

	var doc entity.Document
	err := d.pool.QueryRow(ctx, query, id, ownerID).Scan(
		&doc.UUID,
		&doc.Pages,
		&doc.Text,
		&doc.Tags,
		&doc.DocType,
		&doc.OwnerID,
		&doc.Created,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, appError.NotFound("document not found")
		}

		slog.Error("get document failed", "error", err)
		return nil, appError.Unavailable()
	}

	return &doc, nil
}

// listFilter builds the where clause shared by ListDocs and CountDocs. Both
// must apply the identical predicate so the reported total matches the slice.
func listFilter(ownerID int64, tag string) (string, []interface{}) {
	where := ` where owner_id = $1`
	args := []interface{}{ownerID}

	if tag != "" {
		where += ` and $2 = ANY(tags)`
		args = append(args, tag)
	}

	return where, args
}

func (d *docs) ListDocs(ctx context.Context, ownerID int64, tag string, limit, offset int) ([]entity.Document, error) {
	where, args := listFilter(ownerID, tag)

	query := `select uuid, pages, doc_text, tags, doc_type, owner_id, created
				from documents` + where

	// stable collection order: creation order, row id as tiebreak
	query += ` order by created, id`
	query += fmt.Sprintf(` limit $%d offset $%d`, len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	rows, err := d.pool.Query(ctx, query, args...)
	if err != nil {
		slog.Error("list documents failed", "error", err)
		return nil, appError.Unavailable()
	}
	defer rows.Close()

	list := []entity.Document{}
	for rows.Next() {
		var doc entity.Document
		err := rows.Scan(
			&doc.UUID,
			&doc.Pages,
			&doc.Text,
			&doc.Tags,
			&doc.DocType,
			&doc.OwnerID,
			&doc.Created,
		)
		if err != nil {
			slog.Error("scan document failed", "error", err)
			return nil, appError.Unavailable()
		}
		list = append(list, doc)
	}
	if rows.Err() != nil {
		slog.Error("list documents failed", "error", rows.Err())
		return nil, appError.Unavailable()
	}

	return list, nil
}

func (d *docs) CountDocs(ctx context.Context, ownerID int64, tag string) (int, error) {
	where, args := listFilter(ownerID, tag)

	var count int
	err := d.pool.QueryRow(ctx, `select count(*) from documents`+where, args...).Scan(&count)
	if err != nil {
		slog.Error("count documents failed", "error", err)
		return 0, appError.Unavailable()
	}

	return count, nil
}

func (d *docs) UpdateTags(ctx context.Context, id uuid.UUID, ownerID int64, tags []string) (*entity.Document, error) {
	query := `update documents
				set tags = $1
				where uuid = $2 and owner_id = $3
				returning uuid, pages, doc_text, tags, doc_type, owner_id, created`

	var doc entity.Document
	err := d.pool.QueryRow(ctx, query, tags, id, ownerID).Scan(
		&doc.UUID,
		&doc.Pages,
		&doc.Text,
		&doc.Tags,
		&doc.DocType,
		&doc.OwnerID,
		&doc.Created,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, appError.NotFound("document not found")
		}

		slog.Error("update document tags failed", "error", err)
		return nil, appError.Unavailable()
	}

	return &doc, nil
}

func (d *docs) DeleteDoc(ctx context.Context, id uuid.UUID, ownerID int64) error {
	query := `delete from documents
				where uuid = $1 and owner_id = $2`

	tag, err := d.pool.Exec(ctx, query, id, ownerID)
	if err != nil {
		slog.Error("delete document failed", "error", err)
		return appError.Unavailable()
	}

	if tag.RowsAffected() == 0 {
		return appError.NotFound("document not found")
	}

	return nil
}
