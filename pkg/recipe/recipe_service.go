package recipe

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"strings"

	"github.com/Theamazinguero/recipeclone2/domain"
	"github.com/Theamazinguero/recipeclone2/entities"
	"github.com/Theamazinguero/recipeclone2/internal/utils/storage"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	RecipeService interface {
		SubmitRecipe(ctx context.Context, req domain.SubmitRecipeRequest, userID string) (*domain.RecipeResponse, error)
		GetPublicRecipes(ctx context.Context, search string) ([]domain.RecipeResponse, error)
		GetRecipeDetail(ctx context.Context, recipeID string, viewerID string, viewerIsAdmin bool) (*domain.RecipeResponse, error)
		GetPendingRecipes(ctx context.Context) ([]domain.RecipeResponse, error)
		ApproveRecipe(ctx context.Context, recipeID string) error
		DisableRecipe(ctx context.Context, recipeID string) error
		UploadImage(file *multipart.FileHeader, userID string) (string, error)
	}

	recipeService struct {
		recipeRepository RecipeRepository
		s3               storage.AwsS3
	}
)

func NewRecipeService(recipeRepository RecipeRepository, s3 storage.AwsS3) RecipeService {
	return &recipeService{
		recipeRepository: recipeRepository,
		s3:               s3,
	}
}

// SubmitRecipe creates the recipe in Pending; nothing becomes publicly
// visible until an admin approves it.
func (s *recipeService) SubmitRecipe(ctx context.Context, req domain.SubmitRecipeRequest, userID string) (*domain.RecipeResponse, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return nil, domain.ErrTitleRequired
	}

	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}

	ingredients := req.Ingredients
	if len(ingredients) == 0 && strings.TrimSpace(req.IngredientsText) != "" {
		ingredients = ParseIngredients(req.IngredientsText)
	}

	recipeID := uuid.New()

	recipe := &entities.Recipe{
		ID:               recipeID,
		UserID:           userUUID,
		Title:            title,
		ShortDescription: strings.TrimSpace(req.ShortDescription),
		ImageURL:         strings.TrimSpace(req.ImageURL),
		Status:           entities.RecipeStatusPending,
	}

	seen := make(map[string]bool)
	for _, raw := range req.Tags {
		name := strings.TrimSpace(raw)
		if name == "" || seen[strings.ToLower(name)] {
			continue
		}
		seen[strings.ToLower(name)] = true

		tag, err := s.recipeRepository.EnsureTag(ctx, name)
		if err != nil {
			return nil, err
		}
		recipe.Tags = append(recipe.Tags, *tag)
	}

	for i, ing := range ingredients {
		name := strings.TrimSpace(ing.Name)
		if name == "" {
			continue
		}
		recipe.Ingredients = append(recipe.Ingredients, entities.RecipeIngredient{
			ID:       uuid.New(),
			RecipeID: recipeID,
			Position: i + 1,
			Name:     name,
			Quantity: ing.Quantity,
			Unit:     ing.Unit,
		})
	}

	// Step numbers come from input order, never from the client.
	stepNumber := 0
	for _, st := range req.Steps {
		description := strings.TrimSpace(st.Description)
		if description == "" {
			continue
		}
		stepNumber++
		recipe.Steps = append(recipe.Steps, entities.RecipeStep{
			ID:          uuid.New(),
			RecipeID:    recipeID,
			StepNumber:  stepNumber,
			Description: description,
		})
	}

	if err := s.recipeRepository.CreateRecipe(ctx, recipe); err != nil {
		return nil, err
	}

	res := toRecipeResponse(recipe)
	return &res, nil
}

func (s *recipeService) GetPublicRecipes(ctx context.Context, search string) ([]domain.RecipeResponse, error) {
	recipes, err := s.recipeRepository.GetRecipesByStatus(ctx, entities.RecipeStatusApproved, search)
	if err != nil {
		return nil, err
	}
	return toRecipeResponses(recipes), nil
}

// GetRecipeDetail returns an Approved recipe to anyone; a Pending or
// Disabled one only to its author or an admin, and NotFound to everyone
// else so hidden recipes are indistinguishable from absent ones.
func (s *recipeService) GetRecipeDetail(ctx context.Context, recipeID string, viewerID string, viewerIsAdmin bool) (*domain.RecipeResponse, error) {
	recipe, err := s.recipeRepository.GetRecipeByID(ctx, recipeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrRecipeNotFound
		}
		return nil, err
	}

	if recipe.Status != entities.RecipeStatusApproved {
		if !viewerIsAdmin && recipe.UserID.String() != viewerID {
			return nil, domain.ErrRecipeNotFound
		}
	}

	res := toRecipeResponse(recipe)
	return &res, nil
}

func (s *recipeService) GetPendingRecipes(ctx context.Context) ([]domain.RecipeResponse, error) {
	recipes, err := s.recipeRepository.GetRecipesByStatus(ctx, entities.RecipeStatusPending, "")
	if err != nil {
		return nil, err
	}
	return toRecipeResponses(recipes), nil
}

// ApproveRecipe moves Pending or Disabled to Approved; approving an already
// approved recipe is a no-op success.
func (s *recipeService) ApproveRecipe(ctx context.Context, recipeID string) error {
	return s.setStatus(ctx, recipeID, entities.RecipeStatusApproved)
}

// DisableRecipe moves any state to Disabled; idempotent like ApproveRecipe.
func (s *recipeService) DisableRecipe(ctx context.Context, recipeID string) error {
	return s.setStatus(ctx, recipeID, entities.RecipeStatusDisabled)
}

func (s *recipeService) setStatus(ctx context.Context, recipeID string, status string) error {
	recipe, err := s.recipeRepository.GetRecipeByID(ctx, recipeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrRecipeNotFound
		}
		return err
	}

	if recipe.Status == status {
		return nil
	}

	if err := s.recipeRepository.UpdateRecipeStatus(ctx, recipeID, status); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrRecipeNotFound
		}
		return err
	}
	return nil
}

func (s *recipeService) UploadImage(file *multipart.FileHeader, userID string) (string, error) {
	objectKey, err := s.s3.UploadFile(
		fmt.Sprintf("recipe-%s-%s", userID, uuid.New().String()),
		file,
		"recipes",
		storage.AllowImage...,
	)
	if err != nil {
		return "", err
	}
	return s.s3.GetPublicLink(objectKey), nil
}

func toRecipeResponse(recipe *entities.Recipe) domain.RecipeResponse {
	res := domain.RecipeResponse{
		ID:               recipe.ID.String(),
		Title:            recipe.Title,
		ShortDescription: recipe.ShortDescription,
		ImageURL:         recipe.ImageURL,
		Status:           recipe.Status,
		Tags:             []string{},
		Ingredients:      []domain.IngredientResponse{},
		Steps:            []domain.StepResponse{},
		CreatedAtUTC:     recipe.CreatedAt.UTC(),
	}

	if recipe.User != nil {
		res.Author = recipe.User.DisplayName
	}
	for _, tag := range recipe.Tags {
		res.Tags = append(res.Tags, tag.Name)
	}
	for _, ing := range recipe.Ingredients {
		res.Ingredients = append(res.Ingredients, domain.IngredientResponse{
			Name:     ing.Name,
			Quantity: ing.Quantity,
			Unit:     ing.Unit,
		})
	}
	for _, st := range recipe.Steps {
		res.Steps = append(res.Steps, domain.StepResponse{
			StepNumber:  st.StepNumber,
			Description: st.Description,
		})
	}
	return res
}

func toRecipeResponses(recipes []*entities.Recipe) []domain.RecipeResponse {
	out := make([]domain.RecipeResponse, 0, len(recipes))
	for _, r := range recipes {
		out = append(out, toRecipeResponse(r))
	}
	return out
}
