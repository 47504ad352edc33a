// internal/handlers/consignment_handler_test.go
package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/ibubooks/consign-be/internal/core/domain"
	"github.com/ibubooks/consign-be/internal/core/ports"
	"github.com/ibubooks/consign-be/internal/handlers"
	"github.com/ibubooks/consign-be/test/helpers"
	"github.com/ibubooks/consign-be/test/mocks"
)

func validSubmissionBody() ports.ConsignmentSubmission {
	return ports.ConsignmentSubmission{
		ConsignorSubmission: ports.ConsignorSubmission{
			StudentID: "s1234567",
			FirstName: "Maya",
			LastName:  "Osei",
			Email:     "maya.osei@mail.university.edu",
			Faculty:   "Engineering",
		},
		Books: []ports.BookSubmission{
			{
				ISBN:    "9780131103627",
				Title:   "The C Programming Language",
				Author:  "Kernighan & Ritchie",
				Edition: "2nd",
				Courses: []string{"CSC201"},
				Price:   decimal.NewFromFloat(45.99),
			},
		},
	}
}

func TestConsignmentHandler_SubmitConsignment(t *testing.T) {
	consignorID := uuid.New()
	itemID := uuid.New()
	bookID := uuid.New()

	confirmation := &ports.ConsignmentConfirmation{
		ConsignorID: consignorID,
		StudentID:   "s1234567",
		Items: []ports.ConfirmedItem{
			{
				ItemID:          itemID,
				BookID:          bookID,
				ISBN:            "9780131103627",
				Title:           "The C Programming Language",
				Price:           decimal.NewFromFloat(45.99),
				State:           domain.StateAvailable,
				CopiesAvailable: 1,
			},
		},
	}

	tests := []struct {
		name           string
		body           interface{}
		setupMocks     func(*mocks.MockIntakeService)
		expectedStatus int
		validateBody   func(*testing.T, []byte)
	}{
		{
			name: "successfully_submits_consignment",
			body: validSubmissionBody(),
			setupMocks: func(m *mocks.MockIntakeService) {
				m.EXPECT().
					SubmitConsignment(gomock.Any(), gomock.Any()).
					Return(confirmation, nil)
			},
			expectedStatus: http.StatusCreated,
			validateBody: func(t *testing.T, body []byte) {
				var response ports.ConsignmentConfirmation
				err := json.Unmarshal(body, &response)
				require.NoError(t, err)
				assert.Equal(t, consignorID, response.ConsignorID)
				require.Len(t, response.Items, 1)
				assert.Equal(t, 1, response.Items[0].CopiesAvailable)
			},
		},
		{
			name: "validation_failure_returns_messages",
			body: ports.ConsignmentSubmission{},
			setupMocks: func(m *mocks.MockIntakeService) {
				m.EXPECT().
					SubmitConsignment(gomock.Any(), gomock.Any()).
					Return(nil, &domain.ValidationError{Messages: []string{
						"Some consignor fields are missing: studentId, firstName, lastName, email, faculty.",
						"There are no items in the consignment.",
					}})
			},
			expectedStatus: http.StatusUnprocessableEntity,
			validateBody: func(t *testing.T, body []byte) {
				var response map[string]interface{}
				err := json.Unmarshal(body, &response)
				require.NoError(t, err)
				assert.Equal(t, "Validation failed", response["error"])
				messages := response["messages"].([]interface{})
				assert.Len(t, messages, 2)
			},
		},
		{
			name: "concurrent_update_maps_to_conflict",
			body: validSubmissionBody(),
			setupMocks: func(m *mocks.MockIntakeService) {
				m.EXPECT().
					SubmitConsignment(gomock.Any(), gomock.Any()).
					Return(nil, domain.ErrConcurrentUpdate)
			},
			expectedStatus: http.StatusConflict,
		},
		{
			name: "store_timeout_maps_to_gateway_timeout",
			body: validSubmissionBody(),
			setupMocks: func(m *mocks.MockIntakeService) {
				m.EXPECT().
					SubmitConsignment(gomock.Any(), gomock.Any()).
					Return(nil, domain.ErrStoreTimeout)
			},
			expectedStatus: http.StatusGatewayTimeout,
		},
		{
			name: "unexpected_error_maps_to_internal",
			body: validSubmissionBody(),
			setupMocks: func(m *mocks.MockIntakeService) {
				m.EXPECT().
					SubmitConsignment(gomock.Any(), gomock.Any()).
					Return(nil, errors.New("database connection failed"))
			},
			expectedStatus: http.StatusInternalServerError,
		},
		{
			name:           "malformed_body_is_rejected",
			body:           "not json",
			setupMocks:     func(m *mocks.MockIntakeService) {},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			intake := mocks.NewMockIntakeService(ctrl)
			inventory := mocks.NewMockInventoryService(ctrl)
			tt.setupMocks(intake)

			handler := handlers.NewConsignmentHandler(intake, inventory, helpers.TestLogger())

			var reqBody []byte
			if s, ok := tt.body.(string); ok {
				reqBody = []byte(s)
			} else {
				var err error
				reqBody, err = json.Marshal(tt.body)
				require.NoError(t, err)
			}

			req := httptest.NewRequest(http.MethodPost, "/api/v1/consignments", bytes.NewReader(reqBody))
			rec := httptest.NewRecorder()

			handler.SubmitConsignment(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			if tt.validateBody != nil {
				tt.validateBody(t, rec.Body.Bytes())
			}
		})
	}
}

// Clients send the consignor fields at the top level of the payload, next to
// the book list. The handler must decode that shape, not a nested one.
func TestConsignmentHandler_SubmitConsignment_FlatPayload(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	intake := mocks.NewMockIntakeService(ctrl)
	inventory := mocks.NewMockInventoryService(ctrl)

	intake.EXPECT().
		SubmitConsignment(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, sub ports.ConsignmentSubmission) (*ports.ConsignmentConfirmation, error) {
			assert.Equal(t, "s1234567", sub.StudentID)
			assert.Equal(t, "Maya", sub.FirstName)
			assert.Equal(t, "Osei", sub.LastName)
			assert.Equal(t, "maya.osei@mail.university.edu", sub.Email)
			assert.Equal(t, "Engineering", sub.Faculty)
			require.Len(t, sub.Books, 1)
			assert.Equal(t, "9780131103627", sub.Books[0].ISBN)
			return &ports.ConsignmentConfirmation{StudentID: sub.StudentID}, nil
		})

	handler := handlers.NewConsignmentHandler(intake, inventory, helpers.TestLogger())

	body := `{
		"studentId": "s1234567",
		"firstName": "Maya",
		"lastName": "Osei",
		"email": "maya.osei@mail.university.edu",
		"faculty": "Engineering",
		"books": [{
			"isbn": "9780131103627", "title": "The C Programming Language",
			"author": "Kernighan & Ritchie", "edition": "2nd",
			"courses": ["CSC201"], "price": "45.99"
		}]
	}`

	req := httptest.NewRequest(http.MethodPost, "/api/v1/consignments", strings.NewReader(body))
	rec := httptest.NewRecorder()

	handler.SubmitConsignment(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestConsignmentHandler_GetItem(t *testing.T) {
	consignor := helpers.CreateTestConsignor()
	book := helpers.CreateTestBook()
	testItem := helpers.CreateTestItem(consignor.ConsignorID, book.BookID)

	tests := []struct {
		name           string
		itemID         string
		setupMocks     func(*mocks.MockInventoryService)
		expectedStatus int
	}{
		{
			name:   "successfully_retrieves_item",
			itemID: testItem.ItemID.String(),
			setupMocks: func(m *mocks.MockInventoryService) {
				m.EXPECT().
					GetItem(gomock.Any(), testItem.ItemID).
					Return(testItem, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "invalid_uuid_format",
			itemID:         "not-a-uuid",
			setupMocks:     func(m *mocks.MockInventoryService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:   "item_not_found",
			itemID: uuid.New().String(),
			setupMocks: func(m *mocks.MockInventoryService) {
				m.EXPECT().
					GetItem(gomock.Any(), gomock.Any()).
					Return(nil, domain.ErrItemNotFound)
			},
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			intake := mocks.NewMockIntakeService(ctrl)
			inventory := mocks.NewMockInventoryService(ctrl)
			tt.setupMocks(inventory)

			handler := handlers.NewConsignmentHandler(intake, inventory, helpers.TestLogger())

			req := httptest.NewRequest(http.MethodGet, "/api/v1/items/"+tt.itemID, nil)
			req.SetPathValue("id", tt.itemID)
			rec := httptest.NewRecorder()

			handler.GetItem(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
		})
	}
}

func TestConsignmentHandler_ChangeItemState(t *testing.T) {
	consignor := helpers.CreateTestConsignor()
	book := helpers.CreateTestBook()
	testItem := helpers.CreateTestItem(consignor.ConsignorID, book.BookID, func(i *domain.ConsignmentItem) {
		i.CurrentState = domain.StateSold
	})

	tests := []struct {
		name           string
		state          string
		setupMocks     func(*mocks.MockInventoryService)
		expectedStatus int
	}{
		{
			name:  "successfully_changes_state",
			state: "sold",
			setupMocks: func(m *mocks.MockInventoryService) {
				m.EXPECT().
					ChangeState(gomock.Any(), testItem.ItemID, domain.StateSold).
					Return(testItem, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:  "unknown_state_is_rejected",
			state: "teleported",
			setupMocks: func(m *mocks.MockInventoryService) {
				m.EXPECT().
					ChangeState(gomock.Any(), testItem.ItemID, domain.ConsignmentState("teleported")).
					Return(nil, &domain.InvalidStateError{State: "teleported"})
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:  "missing_item_returns_not_found",
			state: "sold",
			setupMocks: func(m *mocks.MockInventoryService) {
				m.EXPECT().
					ChangeState(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, domain.ErrItemNotFound)
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name:  "exhausted_retries_map_to_conflict",
			state: "sold",
			setupMocks: func(m *mocks.MockInventoryService) {
				m.EXPECT().
					ChangeState(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, domain.ErrConcurrentUpdate)
			},
			expectedStatus: http.StatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			intake := mocks.NewMockIntakeService(ctrl)
			inventory := mocks.NewMockInventoryService(ctrl)
			tt.setupMocks(inventory)

			handler := handlers.NewConsignmentHandler(intake, inventory, helpers.TestLogger())

			body, err := json.Marshal(handlers.ChangeStateRequest{State: tt.state})
			require.NoError(t, err)

			req := httptest.NewRequest(http.MethodPatch,
				"/api/v1/items/"+testItem.ItemID.String()+"/state", bytes.NewReader(body))
			req.SetPathValue("id", testItem.ItemID.String())
			rec := httptest.NewRecorder()

			handler.ChangeItemState(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
		})
	}
}

func TestConsignmentHandler_Audit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	intake := mocks.NewMockIntakeService(ctrl)
	inventory := mocks.NewMockInventoryService(ctrl)
	inventory.EXPECT().
		Audit(gomock.Any()).
		Return([]string{"9780131103627", "9780262033848"}, nil)

	handler := handlers.NewConsignmentHandler(intake, inventory, helpers.TestLogger())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/audit", nil)
	rec := httptest.NewRecorder()

	handler.Audit(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, float64(2), response["corrected_count"])
}
