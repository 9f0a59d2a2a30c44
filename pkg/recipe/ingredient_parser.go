package recipe

import (
	"strings"

	"github.com/Theamazinguero/recipeclone2/domain"
)

// ParseIngredientLine turns a free-text line into a best-guess structured
// ingredient. The common shape is "quantity unit name"; a line with fewer
// than two tokens is kept as a bare name with no quantity or unit. Nothing
// is ever rejected for not fitting the shape.
func ParseIngredientLine(line string) *domain.IngredientRequest {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return nil
	}

	parts := strings.Fields(trimmed)
	if len(parts) < 2 {
		return &domain.IngredientRequest{Name: trimmed}
	}

	quantity := parts[0]
	unit := parts[1]
	name := strings.Join(parts[2:], " ")
	if name == "" {
		name = quantity + " " + unit
	}

	return &domain.IngredientRequest{
		Name:     name,
		Quantity: &quantity,
		Unit:     &unit,
	}
}

func ParseIngredients(text string) []domain.IngredientRequest {
	var out []domain.IngredientRequest
	for _, line := range strings.Split(text, "\n") {
		if parsed := ParseIngredientLine(line); parsed != nil {
			out = append(out, *parsed)
		}
	}
	return out
}
