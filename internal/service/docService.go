package service

import (
	"context"
	"encoding/json"
	"strconv"
	"strings"

	"docmeister/internal/models/entity"
	"docmeister/internal/models/response"
	"docmeister/internal/storage"
	"docmeister/internal/storage/cache"
	"docmeister/pkg/appError"

	"github.com/google/uuid"
)

type docs struct {
	docStorage        storage.DocStorage
	cache             cache.Cache
	defaultPageSize   int
	defaultPageNumber int
}

type DocService interface {
	Upload(ctx context.Context, owner *entity.User, text string, pages int, tags []string) (*entity.Document, error)
	List(ctx context.Context, owner *entity.User, tagFilter, pageSizeRaw, pageRaw string) (*response.DocumentList, error)
	UpdateTags(ctx context.Context, owner *entity.User, docID uuid.UUID, tags *[]string) (*entity.Document, error)
	Delete(ctx context.Context, owner *entity.User, docID uuid.UUID) error
}

func NewDocService(docStorage storage.DocStorage, cache cache.Cache, defaultPageSize, defaultPageNumber int) DocService {
	return &docs{
		docStorage:        docStorage,
		cache:             cache,
		defaultPageSize:   defaultPageSize,
		defaultPageNumber: defaultPageNumber,
	}
}

func (d *docs) Upload(ctx context.Context, owner *entity.User, text string, pages int, tags []string) (*entity.Document, error) {
	if strings.TrimSpace(text) == "" {
		return nil, appError.BadRequest("text must be a non-empty string")
	}
	if pages <= 0 {
		return nil, appError.BadRequest("pages must be a positive integer")
	}
	if tags == nil {
		tags = []string{}
	}

	doc := &entity.Document{
		UUID:    uuid.New(),
		Pages:   pages,
		Text:    text,
		Tags:    tags,
		DocType: classifyDocument(text),
		OwnerID: owner.ID,
	}

	if err := d.docStorage.SaveDoc(ctx, doc); err != nil {
		return nil, err
	}

	d.cache.InvalidateOwner(owner.ID)

	return doc, nil
}

// parsePageParam parses a pagination query parameter, falling back to a
// configured default when the parameter is absent.
func parsePageParam(raw string, def int) (int, error) {
	if raw == "" {
		return def, nil
	}

	v, err := strconv.Atoi(raw)
	if err != nil || v < 1 {
		return 0, appError.BadRequest("pagination parameters must be positive integers")
	}

	return v, nil
}

func (d *docs) List(ctx context.Context, owner *entity.User, tagFilter, pageSizeRaw, pageRaw string) (*response.DocumentList, error) {
	pageSize, err := parsePageParam(pageSizeRaw, d.defaultPageSize)
	if err != nil {
		return nil, err
	}
	pageNumber, err := parsePageParam(pageRaw, d.defaultPageNumber)
	if err != nil {
		return nil, err
	}

	tag := strings.ToLower(tagFilter)

	cacheKey := cache.ListKey(tag, pageSize, pageNumber)
	if cached, ok := d.cache.Get(owner.ID, cacheKey); ok {
		var list response.DocumentList
		if err := json.Unmarshal(cached.Body, &list); err == nil {
			return &list, nil
		}
	}

	// count first, then slice, with the identical filter predicate
	totalCount, err := d.docStorage.CountDocs(ctx, owner.ID, tag)
	if err != nil {
		return nil, err
	}

	offset := (pageNumber - 1) * pageSize
	documents, err := d.docStorage.ListDocs(ctx, owner.ID, tag, pageSize, offset)
	if err != nil {
		return nil, err
	}

	list := &response.DocumentList{
		TotalCount: totalCount,
		PageSize:   pageSize,
		PageNumber: pageNumber,
		TotalPages: (totalCount + pageSize - 1) / pageSize,
		Documents:  documents,
	}

	if body, err := json.Marshal(list); err == nil {
		d.cache.Set(owner.ID, cacheKey, cache.CachedListResp{Body: body})
	}

	return list, nil
}

func (d *docs) UpdateTags(ctx context.Context, owner *entity.User, docID uuid.UUID, tags *[]string) (*entity.Document, error) {
	// absent tags leave the document unchanged
	if tags == nil {
		return d.docStorage.GetDocScoped(ctx, docID, owner.ID)
	}

	doc, err := d.docStorage.UpdateTags(ctx, docID, owner.ID, *tags)
	if err != nil {
		return nil, err
	}

	d.cache.InvalidateOwner(owner.ID)

	return doc, nil
}

func (d *docs) Delete(ctx context.Context, owner *entity.User, docID uuid.UUID) error {
	if err := d.docStorage.DeleteDoc(ctx, docID, owner.ID); err != nil {
		return err
	}

	d.cache.InvalidateOwner(owner.ID)

	return nil
}
