//go:build e2e
// +build e2e

package e2e_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/ibubooks/consign-be/internal/adapters/db"
	redis_a "github.com/ibubooks/consign-be/internal/adapters/redis_adapter"
	"github.com/ibubooks/consign-be/internal/core/services"
	"github.com/ibubooks/consign-be/internal/handlers"
	"github.com/ibubooks/consign-be/test/helpers"
)

type ConsignmentE2ESuite struct {
	suite.Suite
	server    *httptest.Server
	client    *http.Client
	baseURL   string
	testDB    *helpers.TestDB
	testRedis *helpers.TestRedis
}

func (s *ConsignmentE2ESuite) SetupSuite() {
	// Setup test database
	s.testDB = helpers.SetupTestDB(s.T())

	// Setup test Redis
	s.testRedis = helpers.SetupTestRedis(s.T())

	// Start test server
	s.server = s.startTestServer()
	s.client = &http.Client{Timeout: 10 * time.Second}
	s.baseURL = s.server.URL + "/api/v1"
}

func (s *ConsignmentE2ESuite) TearDownSuite() {
	s.server.Close()
}

func (s *ConsignmentE2ESuite) SetupTest() {
	helpers.TruncateAllTables(s.T(), s.testDB.PgxPool)
	s.testRedis.Server.FlushAll()
}

func (s *ConsignmentE2ESuite) TestConsignmentIntakeWorkflow() {
	// 1. Submit a consignment with two copies of the same title
	submission := map[string]interface{}{
		"studentId": "s1234567",
		"firstName": "Maya",
		"lastName":  "Osei",
		"email":     "maya.osei@mail.university.edu",
		"faculty":   "Engineering",
		"books": []map[string]interface{}{
			{
				"isbn": "9780131103627", "title": "The C Programming Language",
				"author": "Kernighan & Ritchie", "edition": "2nd",
				"courses": []string{"CSC201"}, "price": "45.99",
			},
			{
				"isbn": "9780131103627", "title": "The C Programming Language",
				"author": "Kernighan & Ritchie", "edition": "2nd",
				"courses": []string{"CSC201"}, "price": "39.99",
			},
		},
	}

	resp := s.makeRequest("POST", "/consignments", submission)
	s.Equal(http.StatusCreated, resp.StatusCode)

	var confirmation map[string]interface{}
	s.decodeResponse(resp, &confirmation)
	items := confirmation["items"].([]interface{})
	s.Len(items, 2)

	// 2. The book is visible with both copies counted
	resp = s.makeRequest("GET", "/books/9780131103627", nil)
	s.Equal(http.StatusOK, resp.StatusCode)

	var book map[string]interface{}
	s.decodeResponse(resp, &book)
	s.Equal(float64(2), book["copies_available"])

	// 3. A second submission from the same student reuses the consignor row
	resp = s.makeRequest("POST", "/consignments", submission)
	s.Equal(http.StatusCreated, resp.StatusCode)

	var second map[string]interface{}
	s.decodeResponse(resp, &second)
	s.Equal(confirmation["consignor_id"], second["consignor_id"])

	// 4. Selling a copy decrements availability
	firstItem := items[0].(map[string]interface{})
	itemID := firstItem["item_id"].(string)

	resp = s.makeRequest("PATCH", fmt.Sprintf("/items/%s/state", itemID),
		map[string]interface{}{"state": "sold"})
	s.Equal(http.StatusOK, resp.StatusCode)

	resp = s.makeRequest("GET", "/books/9780131103627", nil)
	s.Equal(http.StatusOK, resp.StatusCode)
	s.decodeResponse(resp, &book)
	s.Equal(float64(3), book["copies_available"])

	// 5. The item reflects its new state
	resp = s.makeRequest("GET", fmt.Sprintf("/items/%s", itemID), nil)
	s.Equal(http.StatusOK, resp.StatusCode)

	var item map[string]interface{}
	s.decodeResponse(resp, &item)
	s.Equal("sold", item["current_state"])

	// 6. Dashboard aggregates line up
	resp = s.makeRequest("GET", "/dashboard", nil)
	s.Equal(http.StatusOK, resp.StatusCode)

	var dashboard map[string]interface{}
	s.decodeResponse(resp, &dashboard)
	s.Equal(float64(1), dashboard["total_books"])
	s.Equal(float64(3), dashboard["total_copies"])
}

func (s *ConsignmentE2ESuite) TestValidationRejectsIncompleteSubmission() {
	submission := map[string]interface{}{
		"studentId": "s7654321",
		"firstName": "Kwame",
		"books":     []map[string]interface{}{},
	}

	resp := s.makeRequest("POST", "/consignments", submission)
	s.Equal(http.StatusUnprocessableEntity, resp.StatusCode)

	var errBody map[string]interface{}
	s.decodeResponse(resp, &errBody)
	s.Contains(errBody, "messages")

	// Nothing was written
	resp = s.makeRequest("GET", "/books", nil)
	s.Equal(http.StatusOK, resp.StatusCode)

	var list map[string]interface{}
	s.decodeResponse(resp, &list)
	s.Equal(float64(0), list["total_count"])
}

func (s *ConsignmentE2ESuite) TestConcurrentSubmissionsKeepCountsConsistent() {
	const workers = 8

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()

			submission := map[string]interface{}{
				"studentId": fmt.Sprintf("s%07d", 2000000+idx),
				"firstName": "Test",
				"lastName":  "Student",
				"email":     fmt.Sprintf("student%d@mail.university.edu", idx),
				"faculty":   "Science",
				"books": []map[string]interface{}{
					{
						"isbn": "9780262033848", "title": "Introduction to Algorithms",
						"author": "Cormen et al.", "edition": "3rd",
						"courses": []string{"CSC263"}, "price": "89.99",
					},
				},
			}

			resp := s.makeRequest("POST", "/consignments", submission)
			s.Equal(http.StatusCreated, resp.StatusCode)
			resp.Body.Close()
		}(i)
	}
	wg.Wait()

	// Every submitted copy is counted exactly once
	resp := s.makeRequest("GET", "/books/9780262033848", nil)
	s.Equal(http.StatusOK, resp.StatusCode)

	var book map[string]interface{}
	s.decodeResponse(resp, &book)
	s.Equal(float64(workers), book["copies_available"])
}

// Helper methods

func (s *ConsignmentE2ESuite) startTestServer() *httptest.Server {
	logger := helpers.TestLogger()
	cfg := helpers.LoadTestConfig()

	cache := redis_a.NewCache(s.testRedis.Client, time.Minute, logger)

	consignorRepo := db.NewConsignorRepository(s.testDB.Database, logger)
	bookRepo := db.NewBookRepository(s.testDB.Database, logger)
	itemRepo := db.NewConsignmentItemRepository(s.testDB.Database, logger)

	intake := services.NewIntakeService(
		consignorRepo, bookRepo, itemRepo, s.testDB.Database,
		cfg.Intake.MaxRetries, cfg.Intake.StoreTimeout, logger)
	inventory := services.NewInventoryService(
		bookRepo, itemRepo, s.testDB.Database, cache,
		cfg.Intake.MaxRetries, logger)

	consignmentHandler := handlers.NewConsignmentHandler(intake, inventory, logger)
	bookHandler := handlers.NewBookHandler(inventory, logger)
	dashboardHandler := handlers.NewDashboardHandler(inventory, cache, logger)

	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/v1/consignments", consignmentHandler.SubmitConsignment)
	mux.HandleFunc("GET /api/v1/items/{id}", consignmentHandler.GetItem)
	mux.HandleFunc("PATCH /api/v1/items/{id}/state", consignmentHandler.ChangeItemState)
	mux.HandleFunc("GET /api/v1/books", bookHandler.ListBooks)
	mux.HandleFunc("GET /api/v1/books/{isbn}", bookHandler.GetBook)
	mux.HandleFunc("GET /api/v1/dashboard", dashboardHandler.GetDashboard)
	mux.HandleFunc("POST /api/v1/admin/audit", consignmentHandler.Audit)

	return httptest.NewServer(mux)
}

func (s *ConsignmentE2ESuite) makeRequest(method, path string, body interface{}) *http.Response {
	var reqBody io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		s.NoError(err)
		reqBody = bytes.NewReader(jsonBody)
	}

	req, err := http.NewRequest(method, s.baseURL+path, reqBody)
	s.NoError(err)

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := s.client.Do(req)
	s.NoError(err)

	return resp
}

func (s *ConsignmentE2ESuite) decodeResponse(resp *http.Response, v interface{}) {
	defer resp.Body.Close()
	err := json.NewDecoder(resp.Body).Decode(v)
	s.NoError(err)
}

func TestConsignmentE2ESuite(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping E2E tests in short mode")
	}
	suite.Run(t, new(ConsignmentE2ESuite))
}
