package types

// Macros holds the macronutrient targets of a meal plan. The fields are
// pointers so that an explicit 0 is accepted while a missing key is not.
type Macros struct {
	Calories *float64 `json:"calories" binding:"required"`
	Protein  *float64 `json:"protein" binding:"required"`
	Carbs    *float64 `json:"carbs" binding:"required"`
	Fat      *float64 `json:"fat" binding:"required"`
}

// MealPlanRequest represents the request body for generating a meal plan.
// Ingredients must be present but may be an empty list.
type MealPlanRequest struct {
	Diet        string   `json:"diet" binding:"required"`
	Goal        string   `json:"goal" binding:"required"`
	Macros      *Macros  `json:"macros" binding:"required"`
	Ingredients []string `json:"ingredients" binding:"required"`
}

// NewMacros builds a fully populated Macros value
func NewMacros(calories, protein, carbs, fat float64) *Macros {
	return &Macros{
		Calories: &calories,
		Protein:  &protein,
		Carbs:    &carbs,
		Fat:      &fat,
	}
}

// Values returns the four targets in prompt order, reading absent ones as 0.
func (m *Macros) Values() (calories, protein, carbs, fat float64) {
	if m == nil {
		return 0, 0, 0, 0
	}
	return deref(m.Calories), deref(m.Protein), deref(m.Carbs), deref(m.Fat)
}

func deref(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}
