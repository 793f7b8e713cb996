package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/pageza/cookbook/backend/internal/middleware"
	"github.com/pageza/cookbook/backend/internal/service"
	"github.com/pageza/cookbook/backend/internal/types"
)

type RecipeHandler struct {
	recipes         service.IRecipeService
	creationLimiter *middleware.RateLimiter
}

// NewRecipeHandler creates a recipe handler. creationLimiter may be nil to disable rate limiting.
func NewRecipeHandler(recipes service.IRecipeService, creationLimiter *middleware.RateLimiter) *RecipeHandler {
	return &RecipeHandler{
		recipes:         recipes,
		creationLimiter: creationLimiter,
	}
}

// RegisterRoutes mounts the recipe routes under /recipes. Authentication is
// applied by the caller on router.
func (h *RecipeHandler) RegisterRoutes(router *gin.RouterGroup) {
	create := []gin.HandlerFunc{h.CreateRecipe}
	if h.creationLimiter != nil {
		create = append([]gin.HandlerFunc{h.creationLimiter.RateLimitMiddleware()}, create...)
	}

	recipes := router.Group("/recipes")
	{
		recipes.GET("", h.ListRecipes)
		recipes.GET("/category/:category", h.ListRecipesByCategory)
		recipes.GET("/name/:name", h.SearchRecipesByName)
		recipes.GET("/date/:date", h.ListRecipesByDate)
		recipes.GET("/:id", h.GetRecipe)
		recipes.POST("", create...)
		recipes.PUT("/:id", h.UpdateRecipe)
		recipes.DELETE("/all", h.DeleteAllRecipes)
		recipes.DELETE("/:id", h.DeleteRecipe)
	}
}

// internalError hands err to middleware.ErrorHandler for logging and rendering
func internalError(c *gin.Context, err error) {
	c.Status(http.StatusInternalServerError)
	_ = c.Error(err)
}

func parseRecipeID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid recipe ID"})
		return 0, false
	}
	return uint(id), true
}

func (h *RecipeHandler) ListRecipes(c *gin.Context) {
	recipes, err := h.recipes.ListRecipes(c.Request.Context())
	if err != nil {
		internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, types.NewRecipeResponses(recipes))
}

// ListRecipesByCategory takes the ordinal category token: 1 for MAIN_COURSE,
// 2 for DESSERT, anything else for STARTER.
func (h *RecipeHandler) ListRecipesByCategory(c *gin.Context) {
	recipes, err := h.recipes.ListRecipesByCategory(c.Request.Context(), c.Param("category"))
	if err != nil {
		internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, types.NewRecipeResponses(recipes))
}

// SearchRecipesByName answers 404 when no recipe name matches
func (h *RecipeHandler) SearchRecipesByName(c *gin.Context) {
	recipes, err := h.recipes.SearchRecipesByName(c.Request.Context(), c.Param("name"))
	if err != nil {
		internalError(c, err)
		return
	}
	if len(recipes) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "no recipe matches the given name"})
		return
	}
	c.JSON(http.StatusOK, types.NewRecipeResponses(recipes))
}

func (h *RecipeHandler) ListRecipesByDate(c *gin.Context) {
	recipes, err := h.recipes.ListRecipesByCreationDate(c.Request.Context(), c.Param("date"))
	if err != nil {
		internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, types.NewRecipeResponses(recipes))
}

func (h *RecipeHandler) GetRecipe(c *gin.Context) {
	id, ok := parseRecipeID(c)
	if !ok {
		return
	}

	recipe, found, err := h.recipes.GetRecipe(c.Request.Context(), id)
	if err != nil {
		internalError(c, err)
		return
	}
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "recipe not found"})
		return
	}
	c.JSON(http.StatusOK, types.NewRecipeResponse(recipe))
}

func (h *RecipeHandler) CreateRecipe(c *gin.Context) {
	var req types.RecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	recipe, err := h.recipes.CreateRecipe(c.Request.Context(), req.ToModel())
	if err != nil {
		internalError(c, err)
		return
	}
	c.JSON(http.StatusCreated, types.NewRecipeResponse(recipe))
}

func (h *RecipeHandler) UpdateRecipe(c *gin.Context) {
	id, ok := parseRecipeID(c)
	if !ok {
		return
	}

	var req types.RecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	recipe, found, err := h.recipes.UpdateRecipe(c.Request.Context(), id, req.ToModel())
	if err != nil {
		internalError(c, err)
		return
	}
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "recipe not found"})
		return
	}
	c.JSON(http.StatusOK, types.NewRecipeResponse(recipe))
}

func (h *RecipeHandler) DeleteRecipe(c *gin.Context) {
	id, ok := parseRecipeID(c)
	if !ok {
		return
	}

	deleted, err := h.recipes.DeleteRecipe(c.Request.Context(), id)
	if err != nil {
		internalError(c, err)
		return
	}
	if !deleted {
		c.JSON(http.StatusNotFound, gin.H{"error": "recipe not found"})
		return
	}
	c.JSON(http.StatusOK, types.MessageResponse{Message: "Recipe deleted successfully"})
}

func (h *RecipeHandler) DeleteAllRecipes(c *gin.Context) {
	if err := h.recipes.DeleteAllRecipes(c.Request.Context()); err != nil {
		internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, types.MessageResponse{Message: "All recipes deleted"})
}
