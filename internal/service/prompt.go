package service

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pageza/mealplan-gateway/backend/internal/types"
)

const (
	promptHeader      = "Create a daily meal plan for someone with the following requirements:"
	promptInstruction = "Please provide a detailed meal plan with breakfast, lunch, dinner, and snacks. " +
		"For each meal list the ingredients with portion sizes, the macros, and a step-by-step recipe."
	noIngredients = "No specific preferences"
)

// BuildPrompt renders the request into the fixed prompt sent to the model.
// Line order: diet, goal, calories, protein, carbs, fat, ingredients, instruction.
func BuildPrompt(req *types.MealPlanRequest) string {
	calories, protein, carbs, fat := req.Macros.Values()

	ingredients := noIngredients
	if len(req.Ingredients) > 0 {
		ingredients = strings.Join(req.Ingredients, ", ")
	}

	var b strings.Builder
	b.WriteString(promptHeader)
	b.WriteByte('\n')
	fmt.Fprintf(&b, "- Diet type: %s\n", req.Diet)
	fmt.Fprintf(&b, "- Goal: %s\n", req.Goal)
	fmt.Fprintf(&b, "- Calories: %s kcal\n", formatAmount(calories))
	fmt.Fprintf(&b, "- Protein: %sg\n", formatAmount(protein))
	fmt.Fprintf(&b, "- Carbohydrates: %sg\n", formatAmount(carbs))
	fmt.Fprintf(&b, "- Fat: %sg\n", formatAmount(fat))
	fmt.Fprintf(&b, "Preferred ingredients: %s\n", ingredients)
	b.WriteString(promptInstruction)

	return b.String()
}

func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
