package service

import (
	"fmt"
	"math"
	"strings"

	"github.com/pageza/recipe-cost-api/backend/internal/model"
)

// DefaultMarkup is applied when the caller omits the multiplier or sends one ≤ 0
const DefaultMarkup = 3.0

// CostInput is everything the calculator needs about a recipe
type CostInput struct {
	RecipeName  string
	Servings    int
	Ingredients []model.Ingredient
	Markup      float64
}

// IngredientCost is the cost of one ingredient line
type IngredientCost struct {
	Name     string  `json:"name"`
	Quantity float64 `json:"quantity"`
	Unit     string  `json:"unit"`
	UnitCost float64 `json:"unit_cost"`
	LineCost float64 `json:"line_cost"`
}

// CostBreakdown is the priced result for a recipe. Money and percent values
// are rounded to two decimals.
type CostBreakdown struct {
	RecipeName      string           `json:"recipe_name"`
	Servings        int              `json:"servings"`
	Markup          float64          `json:"markup"`
	TotalCost       float64          `json:"total_cost"`
	CostPerServing  float64          `json:"cost_per_serving"`
	SuggestedPrice  float64          `json:"suggested_price"`
	ProfitMargin    float64          `json:"profit_margin"`
	FoodCostPercent float64          `json:"food_cost_percent"`
	Ingredients     []IngredientCost `json:"ingredients"`
}

// CalculateCost prices a recipe:
//
//	total_cost        = Σ quantity × unit_cost
//	cost_per_serving  = total_cost / servings
//	suggested_price   = cost_per_serving × markup
//	profit_margin     = suggested_price − cost_per_serving
//	food_cost_percent = cost_per_serving / suggested_price × 100
func CalculateCost(in CostInput) (*CostBreakdown, error) {
	if err := validateCostInput(in); err != nil {
		return nil, err
	}

	markup := in.Markup
	if markup <= 0 {
		markup = DefaultMarkup
	}

	lines := make([]IngredientCost, 0, len(in.Ingredients))
	var total float64
	for _, ing := range in.Ingredients {
		line := ing.Quantity * ing.UnitCost
		total += line
		lines = append(lines, IngredientCost{
			Name:     ing.Name,
			Quantity: ing.Quantity,
			Unit:     ing.Unit,
			UnitCost: ing.UnitCost,
			LineCost: round2(line),
		})
	}

	perServing := total / float64(in.Servings)
	price := perServing * markup
	if !isFinite(total) || !isFinite(price) {
		return nil, NewValidationError("ingredient costs are too large")
	}

	var foodCostPercent float64
	if price > 0 {
		foodCostPercent = perServing / price * 100
	}

	return &CostBreakdown{
		RecipeName:      in.RecipeName,
		Servings:        in.Servings,
		Markup:          markup,
		TotalCost:       round2(total),
		CostPerServing:  round2(perServing),
		SuggestedPrice:  round2(price),
		ProfitMargin:    round2(price - perServing),
		FoodCostPercent: round2(foodCostPercent),
		Ingredients:     lines,
	}, nil
}

// CalculateRecipeCost prices a stored recipe with the given markup
func CalculateRecipeCost(r *model.Recipe, markup float64) (*CostBreakdown, error) {
	return CalculateCost(CostInput{
		RecipeName:  r.RecipeName,
		Servings:    r.Servings,
		Ingredients: r.Ingredients,
		Markup:      markup,
	})
}

func validateCostInput(in CostInput) error {
	var msgs []string
	if strings.TrimSpace(in.RecipeName) == "" {
		msgs = append(msgs, "recipe_name is required")
	}
	if in.Servings <= 0 {
		msgs = append(msgs, "servings must be greater than 0")
	}
	if len(in.Ingredients) == 0 {
		msgs = append(msgs, "ingredients must contain at least 1 item")
	}
	for i, ing := range in.Ingredients {
		if strings.TrimSpace(ing.Name) == "" {
			msgs = append(msgs, fmt.Sprintf("ingredients[%d].name is required", i))
		}
		if ing.Quantity <= 0 {
			msgs = append(msgs, fmt.Sprintf("ingredients[%d].quantity must be greater than 0", i))
		}
		if strings.TrimSpace(ing.Unit) == "" {
			msgs = append(msgs, fmt.Sprintf("ingredients[%d].unit is required", i))
		}
		if ing.UnitCost < 0 || math.IsNaN(ing.UnitCost) {
			msgs = append(msgs, fmt.Sprintf("ingredients[%d].unit_cost must be at least 0", i))
		}
	}
	if len(msgs) > 0 {
		return NewValidationError(msgs...)
	}
	return nil
}

func isFinite(v float64) bool {
	return !math.IsInf(v, 0) && !math.IsNaN(v)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
