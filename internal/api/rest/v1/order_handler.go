package v1

import (
	"net/http"

	"github.com/GRBalance8/realshot-sub001/internal/domain/orders"

	"github.com/gin-gonic/gin"
)

// OrderHandler defines the interface for the customer order routes
type OrderHandler interface {
	List(ctx *gin.Context)
	GetByID(ctx *gin.Context)
	ListGenerated(ctx *gin.Context)
	Cancel(ctx *gin.Context)
}

type orderHandler struct {
	orderService orders.OrderService
}

// NewOrderHandler creates a new OrderHandler
func NewOrderHandler(orderService orders.OrderService) OrderHandler {
	return &orderHandler{orderService: orderService}
}

// List returns the caller's orders, newest first
// @Summary List own orders
// @Tags Order
// @Produce json
// @Success 200 {array} OrderResponse
// @Failure 401 {object} ErrorResponse
// @Router /orders [get]
func (handler *orderHandler) List(ctx *gin.Context) {
	list, err := handler.orderService.List(ctx.Request.Context(), userID(ctx))
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, newOrderResponses(list))
}

// GetByID returns one of the caller's orders with its attachments
// @Summary Get an own order
// @Tags Order
// @Produce json
// @Param id path string true "Order ID"
// @Success 200 {object} OrderDetailResponse
// @Failure 404 {object} ErrorResponse
// @Router /orders/{id} [get]
func (handler *orderHandler) GetByID(ctx *gin.Context) {
	detail, err := handler.orderService.Get(ctx.Request.Context(), userID(ctx), ctx.Param("id"))
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, newOrderDetailResponse(detail))
}

// ListGenerated returns the delivered images of one of the caller's orders
// @Summary List generated photos of an own order
// @Tags Order
// @Produce json
// @Param id path string true "Order ID"
// @Success 200 {array} GeneratedPhotoResponse
// @Failure 404 {object} ErrorResponse
// @Router /orders/{id}/generated [get]
func (handler *orderHandler) ListGenerated(ctx *gin.Context) {
	generated, err := handler.orderService.ListGenerated(ctx.Request.Context(), userID(ctx), ctx.Param("id"))
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, newGeneratedPhotoResponses(generated))
}

// Cancel cancels one of the caller's pending orders
// @Summary Cancel an own pending order
// @Tags Order
// @Produce json
// @Param id path string true "Order ID"
// @Success 200 {object} OrderResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /orders/{id}/cancel [post]
func (handler *orderHandler) Cancel(ctx *gin.Context) {
	order, err := handler.orderService.Cancel(ctx.Request.Context(), userID(ctx), ctx.Param("id"))
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, newOrderResponse(order))
}
