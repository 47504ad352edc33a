// internal/handlers/book_handler_test.go
package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/ibubooks/consign-be/internal/core/domain"
	"github.com/ibubooks/consign-be/internal/core/ports"
	"github.com/ibubooks/consign-be/internal/handlers"
	"github.com/ibubooks/consign-be/test/helpers"
	"github.com/ibubooks/consign-be/test/mocks"
)

func TestBookHandler_GetBook(t *testing.T) {
	testBook := helpers.CreateTestBook(func(b *domain.Book) {
		b.CopiesAvailable = 3
	})

	tests := []struct {
		name           string
		isbn           string
		setupMocks     func(*mocks.MockInventoryService)
		expectedStatus int
		validateBody   func(*testing.T, []byte)
	}{
		{
			name: "successfully_retrieves_book",
			isbn: testBook.ISBN,
			setupMocks: func(m *mocks.MockInventoryService) {
				m.EXPECT().
					GetBook(gomock.Any(), testBook.ISBN).
					Return(testBook, nil)
			},
			expectedStatus: http.StatusOK,
			validateBody: func(t *testing.T, body []byte) {
				var response domain.Book
				err := json.Unmarshal(body, &response)
				require.NoError(t, err)
				assert.Equal(t, testBook.ISBN, response.ISBN)
				assert.Equal(t, 3, response.CopiesAvailable)
			},
		},
		{
			name: "unknown_isbn_returns_not_found",
			isbn: "9999999999999",
			setupMocks: func(m *mocks.MockInventoryService) {
				m.EXPECT().
					GetBook(gomock.Any(), "9999999999999").
					Return(nil, domain.ErrBookNotFound)
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name: "store_failure_returns_internal_error",
			isbn: testBook.ISBN,
			setupMocks: func(m *mocks.MockInventoryService) {
				m.EXPECT().
					GetBook(gomock.Any(), testBook.ISBN).
					Return(nil, assert.AnError)
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			inventory := mocks.NewMockInventoryService(ctrl)
			tt.setupMocks(inventory)

			handler := handlers.NewBookHandler(inventory, helpers.TestLogger())

			req := httptest.NewRequest(http.MethodGet, "/api/v1/books/"+tt.isbn, nil)
			req.SetPathValue("isbn", tt.isbn)
			rec := httptest.NewRecorder()

			handler.GetBook(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			if tt.validateBody != nil {
				tt.validateBody(t, rec.Body.Bytes())
			}
		})
	}
}

func TestBookHandler_ListBooks(t *testing.T) {
	testBook := helpers.CreateTestBook()

	t.Run("passes_parsed_query_params_to_service", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		inventory := mocks.NewMockInventoryService(ctrl)
		inventory.EXPECT().
			ListBooks(gomock.Any(), ports.BookListParams{
				Search:        "algorithms",
				Course:        "CSC263",
				AvailableOnly: true,
				SortBy:        "author",
				SortOrder:     "desc",
				Page:          2,
				PageSize:      25,
			}).
			Return(&ports.BookListResult{
				Books:      []*domain.Book{testBook},
				Page:       2,
				PageSize:   25,
				TotalCount: 26,
				TotalPages: 2,
			}, nil)

		handler := handlers.NewBookHandler(inventory, helpers.TestLogger())

		req := httptest.NewRequest(http.MethodGet,
			"/api/v1/books?search=algorithms&course=CSC263&available=true&sort=author&order=desc&page=2&limit=25", nil)
		rec := httptest.NewRecorder()

		handler.ListBooks(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)

		var response ports.BookListResult
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
		assert.Equal(t, int64(26), response.TotalCount)
		assert.Len(t, response.Books, 1)
	})

	t.Run("caps_page_size_at_one_hundred", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		inventory := mocks.NewMockInventoryService(ctrl)
		inventory.EXPECT().
			ListBooks(gomock.Any(), gomock.Cond(func(p ports.BookListParams) bool {
				return p.PageSize == 100
			})).
			Return(&ports.BookListResult{Page: 1, PageSize: 100}, nil)

		handler := handlers.NewBookHandler(inventory, helpers.TestLogger())

		req := httptest.NewRequest(http.MethodGet, "/api/v1/books?limit=500", nil)
		rec := httptest.NewRecorder()

		handler.ListBooks(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("service_failure_returns_internal_error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		inventory := mocks.NewMockInventoryService(ctrl)
		inventory.EXPECT().
			ListBooks(gomock.Any(), gomock.Any()).
			Return(nil, assert.AnError)

		handler := handlers.NewBookHandler(inventory, helpers.TestLogger())

		req := httptest.NewRequest(http.MethodGet, "/api/v1/books", nil)
		rec := httptest.NewRecorder()

		handler.ListBooks(rec, req)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}
