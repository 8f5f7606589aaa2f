package api

import (
	"errors"
	"net/http"

	reqdto "takeout-api/internal/handler/dto/request"
	resdto "takeout-api/internal/handler/dto/response"
	"takeout-api/internal/usecase/commands"
	"takeout-api/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AdminCatalogHandler struct {
	catalogCommands commands.CatalogCommands
	catalogQueries  queries.CatalogQueries
}

func NewAdminCatalogHandler(catalogCommands commands.CatalogCommands, catalogQueries queries.CatalogQueries) *AdminCatalogHandler {
	return &AdminCatalogHandler{
		catalogCommands: catalogCommands,
		catalogQueries:  catalogQueries,
	}
}

// @Summary List categories
// @Description All catalog categories, inactive ones included
// @Tags admin-catalog
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.CategoryResponse
// @Router /admin/categories [get]
func (h *AdminCatalogHandler) ListCategories(c *gin.Context) {
	views, err := h.catalogQueries.ListCategories(c.Request.Context(), true)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	response := make([]*resdto.CategoryResponse, len(views))
	for i, v := range views {
		response[i] = resdto.FromCategoryView(v)
	}
	c.JSON(http.StatusOK, response)
}

// @Summary Create category
// @Tags admin-catalog
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateCategoryRequest true "Category"
// @Success 201 {object} resdto.CategoryResponse
// @Failure 400 {object} map[string]string
// @Router /admin/categories [post]
func (h *AdminCatalogHandler) CreateCategory(c *gin.Context) {
	var req reqdto.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	id, err := h.catalogCommands.CreateCategory(c.Request.Context(), req)
	if err != nil {
		h.respondCatalogError(c, err)
		return
	}

	view, err := h.catalogQueries.GetCategory(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	c.JSON(http.StatusCreated, resdto.FromCategoryView(view))
}

// @Summary Update category
// @Tags admin-catalog
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Category ID"
// @Param request body reqdto.UpdateCategoryRequest true "Category"
// @Success 200 {object} resdto.CategoryResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /admin/categories/{id} [put]
func (h *AdminCatalogHandler) UpdateCategory(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid category ID format",
		})
		return
	}

	var req reqdto.UpdateCategoryRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	if err := h.catalogCommands.UpdateCategory(c.Request.Context(), id, req); err != nil {
		h.respondCatalogError(c, err)
		return
	}

	view, err := h.catalogQueries.GetCategory(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	c.JSON(http.StatusOK, resdto.FromCategoryView(view))
}

// @Summary Delete category
// @Tags admin-catalog
// @Security BearerAuth
// @Param id path string true "Category ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /admin/categories/{id} [delete]
func (h *AdminCatalogHandler) DeleteCategory(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid category ID format",
		})
		return
	}

	if err := h.catalogCommands.DeleteCategory(c.Request.Context(), id); err != nil {
		h.respondCatalogError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary List items
// @Description All catalog items, optionally filtered by category, inactive ones included
// @Tags admin-catalog
// @Produce json
// @Security BearerAuth
// @Param category_id query string false "Filter by category ID"
// @Success 200 {array} resdto.ItemResponse
// @Router /admin/items [get]
func (h *AdminCatalogHandler) ListItems(c *gin.Context) {
	var categoryID *uuid.UUID
	if s := c.Query("category_id"); s != "" {
		id, err := uuid.Parse(s)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid category ID format",
			})
			return
		}
		categoryID = &id
	}

	views, err := h.catalogQueries.ListItems(c.Request.Context(), categoryID, true)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	response := make([]*resdto.ItemResponse, len(views))
	for i, v := range views {
		response[i] = resdto.FromItemView(v)
	}
	c.JSON(http.StatusOK, response)
}

// @Summary Create item
// @Tags admin-catalog
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateItemRequest true "Item"
// @Success 201 {object} resdto.ItemResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /admin/items [post]
func (h *AdminCatalogHandler) CreateItem(c *gin.Context) {
	var req reqdto.CreateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	id, err := h.catalogCommands.CreateItem(c.Request.Context(), req)
	if err != nil {
		h.respondCatalogError(c, err)
		return
	}

	view, err := h.catalogQueries.GetItem(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	c.JSON(http.StatusCreated, resdto.FromItemView(view))
}

// @Summary Update item
// @Tags admin-catalog
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Item ID"
// @Param request body reqdto.UpdateItemRequest true "Item"
// @Success 200 {object} resdto.ItemResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /admin/items/{id} [put]
func (h *AdminCatalogHandler) UpdateItem(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid item ID format",
		})
		return
	}

	var req reqdto.UpdateItemRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	if err := h.catalogCommands.UpdateItem(c.Request.Context(), id, req); err != nil {
		h.respondCatalogError(c, err)
		return
	}

	view, err := h.catalogQueries.GetItem(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	c.JSON(http.StatusOK, resdto.FromItemView(view))
}

// @Summary Delete item
// @Tags admin-catalog
// @Security BearerAuth
// @Param id path string true "Item ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string
// @Router /admin/items/{id} [delete]
func (h *AdminCatalogHandler) DeleteItem(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid item ID format",
		})
		return
	}

	if err := h.catalogCommands.DeleteItem(c.Request.Context(), id); err != nil {
		h.respondCatalogError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Set stock level
// @Description Set the remaining stock of a stock-kind item for one date
// @Tags admin-catalog
// @Accept json
// @Security BearerAuth
// @Param id path string true "Item ID"
// @Param request body reqdto.SetStockLevelRequest true "Stock level"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /admin/items/{id}/stock [put]
func (h *AdminCatalogHandler) SetStockLevel(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid item ID format",
		})
		return
	}

	var req reqdto.SetStockLevelRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	if err := h.catalogCommands.SetStockLevel(c.Request.Context(), id, req); err != nil {
		h.respondCatalogError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *AdminCatalogHandler) respondCatalogError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, commands.ErrCategoryNotFoundWrite):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Category not found",
		})
	case errors.Is(err, commands.ErrItemNotFoundWrite):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Item not found",
		})
	case errors.Is(err, commands.ErrCategoryInUse):
		c.JSON(http.StatusConflict, gin.H{
			"error": "Category still has items",
		})
	case errors.Is(err, commands.ErrItemNotStockKind):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error": "Item does not carry stock",
		})
	case errors.Is(err, commands.ErrInvalidCatalogInput):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid catalog data",
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
	}
}
