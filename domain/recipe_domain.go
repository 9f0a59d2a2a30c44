package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessGetRecipes      = "success get recipes"
	MessageSuccessGetRecipeDetail = "success get recipe detail"
	MessageSuccessSubmitRecipe    = "recipe submitted for approval"
	MessageSuccessGetPending      = "success get pending recipes"
	MessageSuccessApproveRecipe   = "recipe approved"
	MessageSuccessDisableRecipe   = "recipe disabled"
	MessageSuccessUploadImage     = "image uploaded successfully"

	MessageFailedGetRecipes      = "failed to get recipes"
	MessageFailedGetRecipeDetail = "failed to get recipe detail"
	MessageFailedSubmitRecipe    = "failed to submit recipe"
	MessageFailedGetPending      = "failed to get pending recipes"
	MessageFailedApproveRecipe   = "failed to approve recipe"
	MessageFailedDisableRecipe   = "failed to disable recipe"
	MessageFailedUploadImage     = "failed to upload image"

	ErrRecipeNotFound = errors.New("recipe not found")
	ErrTitleRequired  = errors.New("title is required")
)

type (
	IngredientRequest struct {
		Name     string  `json:"name" validate:"required"`
		Quantity *string `json:"quantity,omitempty"`
		Unit     *string `json:"unit,omitempty"`
	}

	StepRequest struct {
		Description string `json:"description" validate:"required"`
	}

	// SubmitRecipeRequest carries either structured ingredients or raw
	// newline-separated text; when both are present the structured list
	// wins. Step numbers are assigned from input order, never taken from
	// the client.
	SubmitRecipeRequest struct {
		Title            string              `json:"title" validate:"required"`
		ShortDescription string              `json:"shortDescription,omitempty"`
		ImageURL         string              `json:"imageUrl,omitempty"`
		Tags             []string            `json:"tags,omitempty"`
		Ingredients      []IngredientRequest `json:"ingredients,omitempty"`
		IngredientsText  string              `json:"ingredientsText,omitempty"`
		Steps            []StepRequest       `json:"steps,omitempty"`
	}

	IngredientResponse struct {
		Name     string  `json:"name"`
		Quantity *string `json:"quantity"`
		Unit     *string `json:"unit"`
	}

	StepResponse struct {
		StepNumber  int    `json:"stepNumber"`
		Description string `json:"description"`
	}

	RecipeResponse struct {
		ID               string               `json:"id"`
		Title            string               `json:"title"`
		ShortDescription string               `json:"shortDescription,omitempty"`
		ImageURL         string               `json:"imageUrl,omitempty"`
		Status           string               `json:"status"`
		Tags             []string             `json:"tags"`
		Ingredients      []IngredientResponse `json:"ingredients"`
		Steps            []StepResponse       `json:"steps"`
		Author           string               `json:"author,omitempty"`
		CreatedAtUTC     time.Time            `json:"createdAtUtc"`
	}

	UploadImageResponse struct {
		ImageURL string `json:"imageUrl"`
	}
)
