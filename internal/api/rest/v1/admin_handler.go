package v1

import (
	"fmt"
	"net/http"

	"github.com/GRBalance8/realshot-sub001/internal/domain/errorlogs"
	"github.com/GRBalance8/realshot-sub001/internal/domain/orders"
	"github.com/GRBalance8/realshot-sub001/internal/pkg/strutil"

	"github.com/gin-gonic/gin"
)

// AdminHandler defines the interface for the administrator routes
type AdminHandler interface {
	ListOrders(ctx *gin.Context)
	GetOrder(ctx *gin.Context)
	PatchOrder(ctx *gin.Context)
	UploadGenerated(ctx *gin.Context)
	ListErrorLogs(ctx *gin.Context)
}

type adminHandler struct {
	adminOrderService orders.AdminOrderService
	recorder          errorlogs.Recorder
}

// NewAdminHandler creates a new AdminHandler
func NewAdminHandler(adminOrderService orders.AdminOrderService, recorder errorlogs.Recorder) AdminHandler {
	return &adminHandler{adminOrderService: adminOrderService, recorder: recorder}
}

// ListOrders lists every order filtered by status and user, paged and sorted
// @Summary List orders
// @Tags Admin
// @Produce json
// @Param status query string false "Order status"
// @Param userId query string false "Customer ID"
// @Param limit query int false "Limit the number of results"
// @Param offset query int false "Offset the results"
// @Param sortBy query string false "Sort by a specific field"
// @Param sortOrder query string false "Sort order (asc/desc)"
// @Success 200 {array} OrderResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Router /admin/orders [get]
func (handler *adminHandler) ListOrders(ctx *gin.Context) {
	query := orders.NewOrderQuery()

	if status := ctx.Query("status"); status != "" {
		query.Status = status
	}
	if uid := ctx.Query("userId"); uid != "" {
		query.UserID = uid
	}
	if limit := ctx.Query("limit"); limit != "" {
		query.Limit = strutil.ConvertToInt(limit)
	}
	if offset := ctx.Query("offset"); offset != "" {
		query.Offset = strutil.ConvertToInt(offset)
	}
	if sortBy := ctx.Query("sortBy"); sortBy != "" {
		query.SortBy = sortBy
	}
	if sortOrder := ctx.Query("sortOrder"); sortOrder != "" {
		query.SortOrder = sortOrder
	}

	list, err := handler.adminOrderService.List(ctx.Request.Context(), query)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, newOrderResponses(list))
}

// GetOrder returns any order with its customer and attachments
// @Summary Get an order
// @Tags Admin
// @Produce json
// @Param id path string true "Order ID"
// @Success 200 {object} OrderDetailResponse
// @Failure 404 {object} ErrorResponse
// @Router /admin/orders/{id} [get]
func (handler *adminHandler) GetOrder(ctx *gin.Context) {
	detail, err := handler.adminOrderService.Get(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, newOrderDetailResponse(detail))
}

// PatchOrder updates the status and progress flags of an order
// @Summary Update an order
// @Description Apply a partial update of status and progress flags. Completing an order notifies the customer.
// @Tags Admin
// @Accept json
// @Produce json
// @Param id path string true "Order ID"
// @Param requestBody body PatchOrderRequest true "Order Patch"
// @Success 200 {object} OrderResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /admin/orders/{id} [patch]
func (handler *adminHandler) PatchOrder(ctx *gin.Context) {
	var request PatchOrderRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		respondBadRequest(ctx, fmt.Sprintf("invalid request body: %v", err))
		return
	}
	if err := request.Validate(); err != nil {
		respondBadRequest(ctx, fmt.Sprintf("validation failed: %v", err))
		return
	}

	order, err := handler.adminOrderService.Patch(ctx.Request.Context(), ctx.Param("id"), request.ToPatch())
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, newOrderResponse(order))
}

// UploadGenerated attaches result images of the multipart field "files" to an order
// @Summary Upload generated photos
// @Tags Admin
// @Accept multipart/form-data
// @Produce json
// @Param id path string true "Order ID"
// @Param files formData file true "Generated images"
// @Success 201 {array} GeneratedPhotoResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /admin/orders/{id}/generated [post]
func (handler *adminHandler) UploadGenerated(ctx *gin.Context) {
	form, err := ctx.MultipartForm()
	if err != nil {
		respondBadRequest(ctx, "invalid form data")
		return
	}

	generated, err := handler.adminOrderService.UploadGenerated(ctx.Request.Context(), ctx.Param("id"), form)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, newGeneratedPhotoResponses(generated))
}

// ListErrorLogs returns the most recent recorded server errors
// @Summary List recorded server errors
// @Tags Admin
// @Produce json
// @Param limit query int false "Limit the number of results"
// @Success 200 {array} ErrorLogResponse
// @Failure 403 {object} ErrorResponse
// @Router /admin/error-logs [get]
func (handler *adminHandler) ListErrorLogs(ctx *gin.Context) {
	limit := strutil.ConvertToInt(ctx.Query("limit"))

	entries, err := handler.recorder.ListRecent(ctx.Request.Context(), limit)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, newErrorLogResponses(entries))
}
