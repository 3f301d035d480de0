package service

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go-retail-crm/internal/model"
	"go-retail-crm/pkg/config"
	"go-retail-crm/pkg/textgen"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func insightClient(baseURL string) *textgen.Client {
	return textgen.New(config.InsightConfig{
		BaseURL: baseURL,
		Model:   "gemini-3-flash-preview",
		Timeout: 2 * time.Second,
	})
}

func TestInventoryInsightsReturnsGeneratedText(t *testing.T) {
	var gotPrompt string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		var body map[string]string
		require.NoError(t, json.NewDecoder(req.Body).Decode(&body))
		gotPrompt = body["prompt"]
		json.NewEncoder(w).Encode(map[string]string{"text": "Restock milk before the weekend."})
	}))
	defer srv.Close()

	svc := NewInsightService(&stubStore{snap: model.Snapshot{
		Products: []model.Product{{ID: "P002", Name: "Whole Milk 1L", Quantity: 5}},
	}}, insightClient(srv.URL), zerolog.Nop())

	text := svc.InventoryInsights(context.Background())
	assert.Equal(t, "Restock milk before the weekend.", text)
	assert.Contains(t, gotPrompt, "Whole Milk 1L", "prompt carries the serialized inventory snapshot")
}

func TestInventoryInsightsDegradesOnServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	svc := NewInsightService(&stubStore{}, insightClient(srv.URL), zerolog.Nop())

	assert.Equal(t, InventoryInsightsUnavailable, svc.InventoryInsights(context.Background()))
}

func TestSalesSummaryDegradesWhenUnconfigured(t *testing.T) {
	svc := NewInsightService(&stubStore{}, insightClient(""), zerolog.Nop())

	assert.Equal(t, SalesSummaryUnavailable, svc.SalesSummary(context.Background()))
}

func TestSalesSummaryReturnsGeneratedText(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{"text": "Sales are trending up."})
	}))
	defer srv.Close()

	svc := NewInsightService(&stubStore{}, insightClient(srv.URL), zerolog.Nop())

	assert.Equal(t, "Sales are trending up.", svc.SalesSummary(context.Background()))
}
