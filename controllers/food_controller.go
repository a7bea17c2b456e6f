package controllers

import (
	"errors"

	"gofood/pkg/resp"
	"gofood/repository"
	"gofood/services"
	"gofood/utils"

	"github.com/gin-gonic/gin"
)

type FoodController struct{ Svc *services.FoodService }

func NewFoodController(s *services.FoodService) *FoodController { return &FoodController{Svc: s} }

// GET /foods?name_like=&category=
func (h *FoodController) List(c *gin.Context) {
	foods, err := h.Svc.List(repository.FoodFilter{
		NameLike: c.Query("name_like"),
		Category: c.Query("category"),
	})
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, foods)
}

// GET /foods/:id
func (h *FoodController) Detail(c *gin.Context) {
	id, err := utils.ParamID(c, "id")
	if err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	food, err := h.Svc.Get(id)
	if errors.Is(err, services.ErrFoodNotFound) {
		resp.NotFound(c, err.Error())
		return
	}
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, food)
}
