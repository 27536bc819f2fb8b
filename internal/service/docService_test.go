package service

import (
	"context"
	"testing"

	"docmeister/internal/models/entity"
	"docmeister/internal/storage/cache"
	"docmeister/pkg/appError"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockDocStorage struct{ mock.Mock }

func (m *mockDocStorage) SaveDoc(ctx context.Context, doc *entity.Document) error {
	args := m.Called(ctx, doc)
	return args.Error(0)
}

func (m *mockDocStorage) GetDocScoped(ctx context.Context, id uuid.UUID, ownerID int64) (*entity.Document, error) {
	args := m.Called(ctx, id, ownerID)
	if doc, ok := args.Get(0).(*entity.Document); ok {
		return doc, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockDocStorage) ListDocs(ctx context.Context, ownerID int64, tag string, limit, offset int) ([]entity.Document, error) {
	args := m.Called(ctx, ownerID, tag, limit, offset)
	if docs, ok := args.Get(0).([]entity.Document); ok {
		return docs, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockDocStorage) CountDocs(ctx context.Context, ownerID int64, tag string) (int, error) {
	args := m.Called(ctx, ownerID, tag)
	return args.Int(0), args.Error(1)
}

func (m *mockDocStorage) UpdateTags(ctx context.Context, id uuid.UUID, ownerID int64, tags []string) (*entity.Document, error) {
	args := m.Called(ctx, id, ownerID, tags)
	if doc, ok := args.Get(0).(*entity.Document); ok {
		return doc, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockDocStorage) DeleteDoc(ctx context.Context, id uuid.UUID, ownerID int64) error {
	args := m.Called(ctx, id, ownerID)
	return args.Error(0)
}

var testOwner = &entity.User{ID: 5, Email: "owner@x.com", IsActive: true}

func TestDocService_Upload(t *testing.T) {
	testCases := []struct {
		name       string
		text       string
		pages      int
		tags       []string
		expectSave bool
		expectType string
		expectErr  bool
	}{
		{
			name:       "bank statement is classified at creation",
			text:       "account number 1234",
			pages:      2,
			tags:       []string{"work"},
			expectSave: true,
			expectType: "Bank Statement",
		},
		{
			name:       "unclassifiable text gets Unknown",
			text:       "just some notes",
			pages:      1,
			expectSave: true,
			expectType: "Unknown",
		},
		{
			name:      "empty text",
			text:      "",
			pages:     1,
			expectErr: true,
		},
		{
			name:      "whitespace-only text",
			text:      "   \t ",
			pages:     1,
			expectErr: true,
		},
		{
			name:      "non-positive pages",
			text:      "passport number",
			pages:     0,
			expectErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctx := context.Background()
			store := new(mockDocStorage)

			if tc.expectSave {
				store.On("SaveDoc", ctx, mock.MatchedBy(func(d *entity.Document) bool {
					return d.OwnerID == testOwner.ID &&
						d.DocType == tc.expectType &&
						d.UUID != uuid.Nil &&
						d.Tags != nil
				})).Return(nil)
			}

			svc := NewDocService(store, cache.NewListCache(), 10, 1)

			doc, err := svc.Upload(ctx, testOwner, tc.text, tc.pages, tc.tags)
			if tc.expectErr {
				require.Error(t, err)
				var appErr appError.AppError
				require.ErrorAs(t, err, &appErr)
				assert.Equal(t, 400, appErr.Code())
			} else {
				require.NoError(t, err)
				require.NotNil(t, doc)
				assert.Equal(t, tc.expectType, doc.DocType)
			}

			store.AssertExpectations(t)
		})
	}
}

func TestDocService_List_Pagination(t *testing.T) {
	testCases := []struct {
		name             string
		pageSizeRaw      string
		pageRaw          string
		totalCount       int
		listed           []entity.Document
		expectLimit      int
		expectOffset     int
		expectTotalPages int
	}{
		{
			name:             "defaults applied when params absent",
			totalCount:       3,
			listed:           make([]entity.Document, 3),
			expectLimit:      10,
			expectOffset:     0,
			expectTotalPages: 1,
		},
		{
			name:             "explicit page and size",
			pageSizeRaw:      "2",
			pageRaw:          "2",
			totalCount:       5,
			listed:           make([]entity.Document, 2),
			expectLimit:      2,
			expectOffset:     2,
			expectTotalPages: 3,
		},
		{
			name:             "page beyond range returns empty slice with unchanged total",
			pageSizeRaw:      "2",
			pageRaw:          "9",
			totalCount:       5,
			listed:           []entity.Document{},
			expectLimit:      2,
			expectOffset:     16,
			expectTotalPages: 3,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctx := context.Background()
			store := new(mockDocStorage)
			store.On("CountDocs", ctx, testOwner.ID, "").Return(tc.totalCount, nil)
			store.On("ListDocs", ctx, testOwner.ID, "", tc.expectLimit, tc.expectOffset).Return(tc.listed, nil)

			svc := NewDocService(store, cache.NewListCache(), 10, 1)

			list, err := svc.List(ctx, testOwner, "", tc.pageSizeRaw, tc.pageRaw)
			require.NoError(t, err)
			assert.Equal(t, tc.totalCount, list.TotalCount)
			assert.Equal(t, tc.expectTotalPages, list.TotalPages)
			assert.Len(t, list.Documents, len(tc.listed))

			store.AssertExpectations(t)
		})
	}
}

func TestDocService_List_InvalidPagination(t *testing.T) {
	svc := NewDocService(new(mockDocStorage), cache.NewListCache(), 10, 1)

	for _, params := range [][2]string{
		{"abc", ""},
		{"", "abc"},
		{"0", ""},
		{"", "-1"},
		{"2.5", "1"},
	} {
		_, err := svc.List(context.Background(), testOwner, "", params[0], params[1])
		require.Error(t, err)
		var appErr appError.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, 400, appErr.Code())
	}
}

func TestDocService_List_TagFilterLowercased(t *testing.T) {
	ctx := context.Background()
	store := new(mockDocStorage)
	store.On("CountDocs", ctx, testOwner.ID, "invoices").Return(1, nil)
	store.On("ListDocs", ctx, testOwner.ID, "invoices", 10, 0).Return([]entity.Document{{}}, nil)

	svc := NewDocService(store, cache.NewListCache(), 10, 1)

	list, err := svc.List(ctx, testOwner, "Invoices", "", "")
	require.NoError(t, err)
	assert.Equal(t, 1, list.TotalCount)

	store.AssertExpectations(t)
}

func TestDocService_List_CacheHitSkipsStorage(t *testing.T) {
	ctx := context.Background()
	store := new(mockDocStorage)
	store.On("CountDocs", ctx, testOwner.ID, "").Return(1, nil).Once()
	store.On("ListDocs", ctx, testOwner.ID, "", 10, 0).Return([]entity.Document{{Pages: 1}}, nil).Once()

	svc := NewDocService(store, cache.NewListCache(), 10, 1)

	first, err := svc.List(ctx, testOwner, "", "", "")
	require.NoError(t, err)

	// second identical listing is served from the cache
	second, err := svc.List(ctx, testOwner, "", "", "")
	require.NoError(t, err)
	assert.Equal(t, first, second)

	store.AssertExpectations(t)
}

func TestDocService_List_MutationInvalidatesCache(t *testing.T) {
	ctx := context.Background()
	docID := uuid.New()

	store := new(mockDocStorage)
	store.On("CountDocs", ctx, testOwner.ID, "").Return(1, nil).Twice()
	store.On("ListDocs", ctx, testOwner.ID, "", 10, 0).Return([]entity.Document{{}}, nil).Twice()
	store.On("DeleteDoc", ctx, docID, testOwner.ID).Return(nil)

	svc := NewDocService(store, cache.NewListCache(), 10, 1)

	_, err := svc.List(ctx, testOwner, "", "", "")
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, testOwner, docID))

	// delete dropped the cached page, storage is hit again
	_, err = svc.List(ctx, testOwner, "", "", "")
	require.NoError(t, err)

	store.AssertExpectations(t)
}

func TestDocService_UpdateTags(t *testing.T) {
	ctx := context.Background()
	docID := uuid.New()
	newTags := []string{"x", "y"}

	t.Run("replaces tags wholesale", func(t *testing.T) {
		store := new(mockDocStorage)
		store.On("UpdateTags", ctx, docID, testOwner.ID, newTags).
			Return(&entity.Document{UUID: docID, Tags: newTags, OwnerID: testOwner.ID}, nil)

		svc := NewDocService(store, cache.NewListCache(), 10, 1)

		doc, err := svc.UpdateTags(ctx, testOwner, docID, &newTags)
		require.NoError(t, err)
		assert.Equal(t, newTags, doc.Tags)

		store.AssertExpectations(t)
	})

	t.Run("absent tags leave the document unchanged", func(t *testing.T) {
		current := &entity.Document{UUID: docID, Tags: []string{"old"}, OwnerID: testOwner.ID}

		store := new(mockDocStorage)
		store.On("GetDocScoped", ctx, docID, testOwner.ID).Return(current, nil)

		svc := NewDocService(store, cache.NewListCache(), 10, 1)

		doc, err := svc.UpdateTags(ctx, testOwner, docID, nil)
		require.NoError(t, err)
		assert.Equal(t, []string{"old"}, doc.Tags)

		store.AssertExpectations(t)
	})

	t.Run("foreign document is not found", func(t *testing.T) {
		store := new(mockDocStorage)
		store.On("UpdateTags", ctx, docID, testOwner.ID, newTags).
			Return(nil, appError.NotFound("document not found"))

		svc := NewDocService(store, cache.NewListCache(), 10, 1)

		_, err := svc.UpdateTags(ctx, testOwner, docID, &newTags)
		require.Error(t, err)
		var appErr appError.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, 404, appErr.Code())

		store.AssertExpectations(t)
	})
}

func TestDocService_Delete_NotFound(t *testing.T) {
	ctx := context.Background()
	docID := uuid.New()

	store := new(mockDocStorage)
	store.On("DeleteDoc", ctx, docID, testOwner.ID).Return(appError.NotFound("document not found"))

	svc := NewDocService(store, cache.NewListCache(), 10, 1)

	err := svc.Delete(ctx, testOwner, docID)
	require.Error(t, err)
	var appErr appError.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 404, appErr.Code())

	store.AssertExpectations(t)
}
