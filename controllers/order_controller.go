package controllers

import (
	"errors"

	"gofood/pkg/resp"
	"gofood/services"
	"gofood/utils"

	"github.com/gin-gonic/gin"
)

type OrderController struct{ Svc *services.OrderService }

func NewOrderController(s *services.OrderService) *OrderController { return &OrderController{Svc: s} }

// POST /orders
func (h *OrderController) Create(c *gin.Context) {
	var req services.CreateOrderIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	order, err := h.Svc.Create(utils.CurrentUserID(c), &req)
	switch {
	case errors.Is(err, services.ErrFoodNotFound):
		resp.NotFound(c, err.Error())
	case errors.Is(err, services.ErrInvalidQuantity), errors.Is(err, services.ErrUnknownExtra):
		resp.BadRequest(c, err.Error())
	case err != nil:
		resp.ServerError(c, err)
	default:
		resp.Created(c, order)
	}
}

// GET /orders
func (h *OrderController) ListForMe(c *gin.Context) {
	orders, err := h.Svc.ListForUser(utils.CurrentUserID(c))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, orders)
}

// GET /orders/:code
func (h *OrderController) Detail(c *gin.Context) {
	order, err := h.Svc.Get(utils.CurrentUserID(c), c.Param("code"))
	if errors.Is(err, services.ErrOrderNotFound) {
		resp.NotFound(c, err.Error())
		return
	}
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, order)
}
