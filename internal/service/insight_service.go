package service

import (
	"context"
	"encoding/json"
	"fmt"

	"go-retail-crm/internal/repository"
	"go-retail-crm/pkg/textgen"

	"github.com/rs/zerolog"
)

// Fixed degradation messages. Insights are advisory; a failing generation
// service must never bubble up as an error.
const (
	InventoryInsightsUnavailable = "Unable to generate insights at this time."
	SalesSummaryUnavailable      = "Sales summary unavailable."
)

type InsightService interface {
	InventoryInsights(ctx context.Context) string
	SalesSummary(ctx context.Context) string
}

type insightService struct {
	store  repository.Store
	client *textgen.Client
	log    zerolog.Logger
}

func NewInsightService(store repository.Store, client *textgen.Client, log zerolog.Logger) InsightService {
	return &insightService{
		store:  store,
		client: client,
		log:    log.With().Str("component", "insight_service").Logger(),
	}
}

func (s *insightService) InventoryInsights(ctx context.Context) string {
	products, err := s.store.Products(ctx)
	if err != nil {
		s.log.Warn().Err(err).Msg("inventory insights: loading products failed")
		return InventoryInsightsUnavailable
	}
	raw, err := json.Marshal(products)
	if err != nil {
		return InventoryInsightsUnavailable
	}

	text, err := s.client.Generate(ctx,
		"You are a retail operations expert. Provide concise, actionable bullet-point insights.",
		fmt.Sprintf("Analyze this grocery inventory data and provide top 3 management recommendations: %s", raw),
	)
	if err != nil {
		s.log.Warn().Err(err).Msg("inventory insights degraded")
		return InventoryInsightsUnavailable
	}
	return text
}

func (s *insightService) SalesSummary(ctx context.Context) string {
	orders, err := s.store.Orders(ctx)
	if err != nil {
		s.log.Warn().Err(err).Msg("sales summary: loading orders failed")
		return SalesSummaryUnavailable
	}
	raw, err := json.Marshal(orders)
	if err != nil {
		return SalesSummaryUnavailable
	}

	text, err := s.client.Generate(ctx,
		"Provide a quick paragraph summary of sales trends.",
		fmt.Sprintf("Summarize the sales performance for these orders: %s", raw),
	)
	if err != nil {
		s.log.Warn().Err(err).Msg("sales summary degraded")
		return SalesSummaryUnavailable
	}
	return text
}
