package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"zestyflow/models"
	"zestyflow/services"
)

type MenuController struct {
	menu *services.MenuService
	dev  bool
}

func NewMenuController(menu *services.MenuService, dev bool) *MenuController {
	return &MenuController{menu: menu, dev: dev}
}

// List godoc
// @Summary List available menu items
// @Description Get all available menu items, newest first
// @Tags Menu
// @Produce json
// @Success 200 {object} models.Response
// @Router /menu [get]
func (ctrl *MenuController) List(c *gin.Context) {
	items, err := ctrl.menu.ListAvailable(c.Request.Context())
	if err != nil {
		respondInternal(c, ctrl.dev, err)
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Data:    items,
	})
}

// Create godoc
// @Summary Add menu item
// @Description Create a new menu item
// @Tags Menu
// @Accept json
// @Produce json
// @Param request body models.CreateMenuItemRequest true "Menu Item"
// @Success 201 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /menu [post]
func (ctrl *MenuController) Create(c *gin.Context) {
	var req models.CreateMenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Success: false, Message: "Invalid request"})
		return
	}

	item, err := ctrl.menu.Create(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, services.ErrInvalidInput) {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{Success: false, Message: "name and price required"})
			return
		}
		respondInternal(c, ctrl.dev, err)
		return
	}

	c.JSON(http.StatusCreated, models.Response{
		Success: true,
		Message: "Menu item created",
		Data:    item,
	})
}
