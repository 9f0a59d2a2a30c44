package recipe

import (
	"context"
	"strings"
	"testing"

	"github.com/Theamazinguero/recipeclone2/domain"
	"github.com/Theamazinguero/recipeclone2/entities"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// fakeRecipeRepository is an in-memory RecipeRepository for service tests.
// Listing order is insertion order, newest last reversed to newest first,
// matching the repository's created_at desc contract closely enough for the
// service-level assertions here.
type fakeRecipeRepository struct {
	recipes []*entities.Recipe
	tags    map[string]*entities.Tag
}

func newFakeRecipeRepository() *fakeRecipeRepository {
	return &fakeRecipeRepository{tags: make(map[string]*entities.Tag)}
}

func (f *fakeRecipeRepository) CreateRecipe(_ context.Context, recipe *entities.Recipe) error {
	f.recipes = append(f.recipes, recipe)
	return nil
}

func (f *fakeRecipeRepository) GetRecipeByID(_ context.Context, id string) (*entities.Recipe, error) {
	for _, r := range f.recipes {
		if r.ID.String() == id {
			return r, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeRecipeRepository) GetRecipesByStatus(_ context.Context, status string, search string) ([]*entities.Recipe, error) {
	search = strings.ToLower(strings.TrimSpace(search))
	var out []*entities.Recipe
	for i := len(f.recipes) - 1; i >= 0; i-- {
		r := f.recipes[i]
		if r.Status != status {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(r.Title), search) &&
			!strings.Contains(strings.ToLower(r.ShortDescription), search) {
			continue
		}
		out = append(out, r)
	}
	return out, nil
}

func (f *fakeRecipeRepository) UpdateRecipeStatus(ctx context.Context, id string, status string) error {
	recipe, err := f.GetRecipeByID(ctx, id)
	if err != nil {
		return err
	}
	recipe.Status = status
	return nil
}

func (f *fakeRecipeRepository) EnsureTag(_ context.Context, name string) (*entities.Tag, error) {
	if tag, ok := f.tags[name]; ok {
		return tag, nil
	}
	tag := &entities.Tag{ID: uuid.New(), Name: name}
	f.tags[name] = tag
	return tag, nil
}

func submit(t *testing.T, svc RecipeService, userID, title string) *domain.RecipeResponse {
	t.Helper()
	res, err := svc.SubmitRecipe(context.Background(), domain.SubmitRecipeRequest{Title: title}, userID)
	require.NoError(t, err)
	return res
}

func TestSubmitRecipeStartsPending(t *testing.T) {
	repo := newFakeRecipeRepository()
	svc := NewRecipeService(repo, nil)
	author := uuid.New().String()

	res, err := svc.SubmitRecipe(context.Background(), domain.SubmitRecipeRequest{
		Title:            "  Soup  ",
		ShortDescription: "warm",
		Tags:             []string{"dinner", " Dinner ", "easy", ""},
		Ingredients: []domain.IngredientRequest{
			{Name: "carrot"},
			{Name: ""},
		},
		Steps: []domain.StepRequest{
			{Description: "chop"},
			{Description: "   "},
			{Description: "boil"},
		},
	}, author)
	require.NoError(t, err)

	assert.Equal(t, entities.RecipeStatusPending, res.Status)
	assert.Equal(t, "Soup", res.Title)
	// tags deduplicated case-insensitively, first spelling kept
	assert.Equal(t, []string{"dinner", "easy"}, res.Tags)
	// blank ingredient dropped
	require.Len(t, res.Ingredients, 1)
	assert.Equal(t, "carrot", res.Ingredients[0].Name)
	// steps renumbered from input order, blanks skipped
	require.Len(t, res.Steps, 2)
	assert.Equal(t, 1, res.Steps[0].StepNumber)
	assert.Equal(t, "chop", res.Steps[0].Description)
	assert.Equal(t, 2, res.Steps[1].StepNumber)
	assert.Equal(t, "boil", res.Steps[1].Description)
}

func TestSubmitRecipeTitleRequired(t *testing.T) {
	svc := NewRecipeService(newFakeRecipeRepository(), nil)

	_, err := svc.SubmitRecipe(context.Background(), domain.SubmitRecipeRequest{Title: "   "}, uuid.New().String())
	assert.ErrorIs(t, err, domain.ErrTitleRequired)
}

func TestSubmitRecipeParsesIngredientsText(t *testing.T) {
	svc := NewRecipeService(newFakeRecipeRepository(), nil)

	res, err := svc.SubmitRecipe(context.Background(), domain.SubmitRecipeRequest{
		Title:           "Soup",
		IngredientsText: "2 cups water\nsalt\n",
	}, uuid.New().String())
	require.NoError(t, err)

	require.Len(t, res.Ingredients, 2)
	assert.Equal(t, "water", res.Ingredients[0].Name)
	require.NotNil(t, res.Ingredients[0].Quantity)
	assert.Equal(t, "2", *res.Ingredients[0].Quantity)
	require.NotNil(t, res.Ingredients[0].Unit)
	assert.Equal(t, "cups", *res.Ingredients[0].Unit)

	assert.Equal(t, "salt", res.Ingredients[1].Name)
	assert.Nil(t, res.Ingredients[1].Quantity)
	assert.Nil(t, res.Ingredients[1].Unit)
}

func TestFreshRecipeHiddenFromPublicListing(t *testing.T) {
	repo := newFakeRecipeRepository()
	svc := NewRecipeService(repo, nil)

	submit(t, svc, uuid.New().String(), "Soup")

	public, err := svc.GetPublicRecipes(context.Background(), "")
	require.NoError(t, err)
	assert.Empty(t, public)

	pending, err := svc.GetPendingRecipes(context.Background())
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, "Soup", pending[0].Title)
}

func TestApproveMakesRecipePublic(t *testing.T) {
	repo := newFakeRecipeRepository()
	svc := NewRecipeService(repo, nil)

	res := submit(t, svc, uuid.New().String(), "Soup")
	require.NoError(t, svc.ApproveRecipe(context.Background(), res.ID))

	public, err := svc.GetPublicRecipes(context.Background(), "Soup")
	require.NoError(t, err)
	require.Len(t, public, 1)
	assert.Equal(t, "Soup", public[0].Title)
	assert.Equal(t, entities.RecipeStatusApproved, public[0].Status)

	pending, err := svc.GetPendingRecipes(context.Background())
	require.NoError(t, err)
	assert.Empty(t, pending)
}

func TestDisableHidesRecipeFromEitherPriorState(t *testing.T) {
	repo := newFakeRecipeRepository()
	svc := NewRecipeService(repo, nil)
	ctx := context.Background()

	// from Pending
	fromPending := submit(t, svc, uuid.New().String(), "Stew")
	require.NoError(t, svc.DisableRecipe(ctx, fromPending.ID))

	// from Approved
	fromApproved := submit(t, svc, uuid.New().String(), "Curry")
	require.NoError(t, svc.ApproveRecipe(ctx, fromApproved.ID))
	require.NoError(t, svc.DisableRecipe(ctx, fromApproved.ID))

	public, err := svc.GetPublicRecipes(ctx, "")
	require.NoError(t, err)
	assert.Empty(t, public)

	// Disabled recipes can still be re-approved
	require.NoError(t, svc.ApproveRecipe(ctx, fromApproved.ID))
	public, err = svc.GetPublicRecipes(ctx, "")
	require.NoError(t, err)
	require.Len(t, public, 1)
	assert.Equal(t, "Curry", public[0].Title)
}

func TestApproveAndDisableAreIdempotent(t *testing.T) {
	repo := newFakeRecipeRepository()
	svc := NewRecipeService(repo, nil)
	ctx := context.Background()

	res := submit(t, svc, uuid.New().String(), "Soup")

	require.NoError(t, svc.ApproveRecipe(ctx, res.ID))
	require.NoError(t, svc.ApproveRecipe(ctx, res.ID))

	stored, err := repo.GetRecipeByID(ctx, res.ID)
	require.NoError(t, err)
	assert.Equal(t, entities.RecipeStatusApproved, stored.Status)

	require.NoError(t, svc.DisableRecipe(ctx, res.ID))
	require.NoError(t, svc.DisableRecipe(ctx, res.ID))

	stored, err = repo.GetRecipeByID(ctx, res.ID)
	require.NoError(t, err)
	assert.Equal(t, entities.RecipeStatusDisabled, stored.Status)
}

func TestModerateUnknownRecipe(t *testing.T) {
	svc := NewRecipeService(newFakeRecipeRepository(), nil)
	unknown := uuid.New().String()

	assert.ErrorIs(t, svc.ApproveRecipe(context.Background(), unknown), domain.ErrRecipeNotFound)
	assert.ErrorIs(t, svc.DisableRecipe(context.Background(), unknown), domain.ErrRecipeNotFound)
}

func TestPublicSearchMatchesTitleCaseInsensitive(t *testing.T) {
	repo := newFakeRecipeRepository()
	svc := NewRecipeService(repo, nil)
	ctx := context.Background()

	soup := submit(t, svc, uuid.New().String(), "Soup")
	bread := submit(t, svc, uuid.New().String(), "Bread")
	require.NoError(t, svc.ApproveRecipe(ctx, soup.ID))
	require.NoError(t, svc.ApproveRecipe(ctx, bread.ID))

	matches, err := svc.GetPublicRecipes(ctx, "soup")
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, "Soup", matches[0].Title)

	// blank search equals no filter
	all, err := svc.GetPublicRecipes(ctx, "   ")
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestRecipeDetailVisibility(t *testing.T) {
	repo := newFakeRecipeRepository()
	svc := NewRecipeService(repo, nil)
	ctx := context.Background()

	author := uuid.New().String()
	stranger := uuid.New().String()
	res := submit(t, svc, author, "Soup")

	// pending: owner and admin see it, everyone else gets not found
	_, err := svc.GetRecipeDetail(ctx, res.ID, author, false)
	assert.NoError(t, err)
	_, err = svc.GetRecipeDetail(ctx, res.ID, stranger, true)
	assert.NoError(t, err)
	_, err = svc.GetRecipeDetail(ctx, res.ID, stranger, false)
	assert.ErrorIs(t, err, domain.ErrRecipeNotFound)
	_, err = svc.GetRecipeDetail(ctx, res.ID, "", false)
	assert.ErrorIs(t, err, domain.ErrRecipeNotFound)

	// approved: visible to anyone
	require.NoError(t, svc.ApproveRecipe(ctx, res.ID))
	_, err = svc.GetRecipeDetail(ctx, res.ID, "", false)
	assert.NoError(t, err)
}
