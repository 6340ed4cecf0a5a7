package integrationtests

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	auction "auction-service/internal/auctionService"
	"auction-service/internal/repository"
	"auction-service/internal/server"
	"auction-service/services/auction/helpers"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

// SetupTestRouter initializes the router with in-memory repository for integration testing.
func SetupTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	repo := repository.NewMemoryRepo()
	service := auction.NewAuctionService(repo, time.Hour)
	router := server.SetupRouter(service)
	return router
}

// ExecuteRequestAndParse executes an HTTP request on the given router and parses the response
func ExecuteRequestAndParse(t *testing.T, router *gin.Engine, method, url string, body any) (map[string]any, *httptest.ResponseRecorder) {
	var reqBody []byte
	var err error

	switch v := body.(type) {
	case nil:
	case []byte:
		reqBody = v
	case string:
		reqBody = []byte(v)
	default:
		reqBody, err = json.Marshal(v)
		if err != nil {
			t.Fatalf("failed to marshal body: %v", err)
		}
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, url, bytes.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	var resp map[string]any
	if len(w.Body.Bytes()) > 0 {
		err := json.Unmarshal(w.Body.Bytes(), &resp)
		if err != nil {
			t.Fatalf("failed to unmarshal response: %v", err)
		}

		if w.Code == 201 {
			resp = resp["data"].(map[string]any)
		}
	}

	return resp, w
}

// RegisterItem registers an item through the API and returns its generated ID.
func RegisterItem(t *testing.T, router *gin.Engine, description string, startingPrice float64) string {
	resp, w := ExecuteRequestAndParse(t, router, http.MethodPost, "/items", helpers.RegisterItemRequest{
		Description:   description,
		StartingPrice: startingPrice,
	})
	require.Equal(t, http.StatusCreated, w.Code)
	return resp["item_id"].(string)
}

// RegisterBuyer registers a buyer through the API and returns its generated ID.
func RegisterBuyer(t *testing.T, router *gin.Engine, name string) string {
	resp, w := ExecuteRequestAndParse(t, router, http.MethodPost, "/buyers", helpers.RegisterBuyerRequest{Name: name})
	require.Equal(t, http.StatusCreated, w.Code)
	return resp["buyer_id"].(string)
}

// GetListing fetches a single item's listing projection through the API.
func GetListing(t *testing.T, router *gin.Engine, itemID string) map[string]any {
	resp, w := ExecuteRequestAndParse(t, router, http.MethodGet, "/items/"+itemID, nil)
	require.Equal(t, http.StatusOK, w.Code)
	return resp["data"].(map[string]any)
}
