package controllers

import (
	"errors"

	"gofood/pkg/resp"
	"gofood/services"
	"gofood/utils"

	"github.com/gin-gonic/gin"
)

// AddFavoriteRequest is the food being bookmarked; only its id is used.
type AddFavoriteRequest struct {
	ID uint `json:"id" binding:"required"`
}

type FavoriteController struct{ Svc *services.FavoriteService }

func NewFavoriteController(s *services.FavoriteService) *FavoriteController {
	return &FavoriteController{Svc: s}
}

// GET /favorites
func (h *FavoriteController) List(c *gin.Context) {
	favs, err := h.Svc.List(utils.CurrentUserID(c))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, favs)
}

// GET /favorites/:id
func (h *FavoriteController) Detail(c *gin.Context) {
	foodID, err := utils.ParamID(c, "id")
	if err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	fav, err := h.Svc.Get(utils.CurrentUserID(c), foodID)
	if errors.Is(err, services.ErrFavoriteNotFound) {
		resp.NotFound(c, err.Error())
		return
	}
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, fav)
}

// POST /favorites
func (h *FavoriteController) Create(c *gin.Context) {
	var req AddFavoriteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	fav, err := h.Svc.Add(utils.CurrentUserID(c), req.ID)
	if errors.Is(err, services.ErrFoodNotFound) {
		resp.NotFound(c, err.Error())
		return
	}
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, fav)
}

// DELETE /favorites/:id
func (h *FavoriteController) Delete(c *gin.Context) {
	foodID, err := utils.ParamID(c, "id")
	if err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	if err := h.Svc.Remove(utils.CurrentUserID(c), foodID); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"id": foodID})
}
