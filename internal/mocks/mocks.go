package mocks

import (
	"context"
	"encoding/json"

	"github.com/stretchr/testify/mock"

	"github.com/pageza/mealplan-gateway/backend/internal/types"
)

// MockMealPlanGenerator is a testify mock of service.MealPlanGenerator
type MockMealPlanGenerator struct {
	mock.Mock
}

func (m *MockMealPlanGenerator) Generate(ctx context.Context, req *types.MealPlanRequest) (json.RawMessage, error) {
	args := m.Called(ctx, req)
	payload, _ := args.Get(0).(json.RawMessage)
	return payload, args.Error(1)
}
