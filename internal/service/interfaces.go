package service

import (
	"context"
	"encoding/json"

	"github.com/pageza/mealplan-gateway/backend/internal/types"
)

// MealPlanGenerator turns a validated request into the generation
// service's JSON answer. Failures are *UpstreamStatusError or *TransportError.
type MealPlanGenerator interface {
	Generate(ctx context.Context, req *types.MealPlanRequest) (json.RawMessage, error)
}
