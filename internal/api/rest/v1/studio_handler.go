package v1

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/GRBalance8/realshot-sub001/internal/domain/apperrors"
	"github.com/GRBalance8/realshot-sub001/internal/domain/payments"
	"github.com/GRBalance8/realshot-sub001/internal/domain/photos"
	"github.com/GRBalance8/realshot-sub001/internal/domain/studio"
	"github.com/GRBalance8/realshot-sub001/internal/domain/users"

	"github.com/gin-gonic/gin"
)

// referenceField is the multipart field carrying the optional reference image of a photo request
const referenceField = "reference"

// StudioHandler defines the interface for the customer studio routes
type StudioHandler interface {
	GetProfile(ctx *gin.Context)
	SaveProfile(ctx *gin.Context)
	Upload(ctx *gin.Context)
	ListUploads(ctx *gin.Context)
	DeleteUpload(ctx *gin.Context)
	ListPhotoRequests(ctx *gin.Context)
	CreatePhotoRequest(ctx *gin.Context)
	DeletePhotoRequest(ctx *gin.Context)
	GetWizard(ctx *gin.Context)
	UpdateWizard(ctx *gin.Context)
	Checkout(ctx *gin.Context)
}

type studioHandler struct {
	profileService      users.ProfileService
	uploadService       photos.UploadService
	photoRequestService photos.PhotoRequestService
	studioService       studio.StudioService
	checkoutService     payments.CheckoutService
}

// NewStudioHandler creates a new StudioHandler
func NewStudioHandler(
	profileService users.ProfileService,
	uploadService photos.UploadService,
	photoRequestService photos.PhotoRequestService,
	studioService studio.StudioService,
	checkoutService payments.CheckoutService,
) StudioHandler {
	return &studioHandler{
		profileService:      profileService,
		uploadService:       uploadService,
		photoRequestService: photoRequestService,
		studioService:       studioService,
		checkoutService:     checkoutService,
	}
}

// GetProfile returns the caller's profile
// @Summary Get the studio profile
// @Tags Studio
// @Produce json
// @Success 200 {object} ProfileResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /studio/profile [get]
func (handler *studioHandler) GetProfile(ctx *gin.Context) {
	profile, err := handler.profileService.Get(ctx.Request.Context(), userID(ctx))
	if err != nil {
		respondError(ctx, err)
		return
	}
	if profile == nil {
		respondError(ctx, apperrors.NotFound("profile", userID(ctx)))
		return
	}

	ctx.JSON(http.StatusOK, newProfileResponse(profile))
}

// SaveProfile creates or updates the caller's profile
// @Summary Save the studio profile
// @Description Create or update the appearance attributes of the caller.
// @Tags Studio
// @Accept json
// @Produce json
// @Param requestBody body users.ProfileInput true "Profile Data"
// @Success 200 {object} ProfileResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Router /studio/profile [post]
func (handler *studioHandler) SaveProfile(ctx *gin.Context) {
	var input users.ProfileInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		respondBadRequest(ctx, fmt.Sprintf("invalid request body: %v", err))
		return
	}

	profile, err := handler.profileService.Save(ctx.Request.Context(), userID(ctx), &input)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, newProfileResponse(profile))
}

// Upload stores the images of the multipart field "files"
// @Summary Upload photos
// @Description Store one or more jpeg, png, webp or heic images in blob storage.
// @Tags Studio
// @Accept multipart/form-data
// @Produce json
// @Param files formData file true "Images to upload"
// @Success 201 {array} UploadedPhotoResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Router /studio/upload [post]
func (handler *studioHandler) Upload(ctx *gin.Context) {
	form, err := ctx.MultipartForm()
	if err != nil {
		respondBadRequest(ctx, "invalid form data")
		return
	}

	uploaded, err := handler.uploadService.Upload(ctx.Request.Context(), userID(ctx), form)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, newUploadedPhotoResponses(uploaded))
}

// ListUploads returns the caller's photos
// @Summary List uploaded photos
// @Tags Studio
// @Produce json
// @Success 200 {array} UploadedPhotoResponse
// @Failure 401 {object} ErrorResponse
// @Router /studio/uploads [get]
func (handler *studioHandler) ListUploads(ctx *gin.Context) {
	uploaded, err := handler.uploadService.List(ctx.Request.Context(), userID(ctx))
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, newUploadedPhotoResponses(uploaded))
}

// DeleteUpload removes one of the caller's photos
// @Summary Delete an uploaded photo
// @Description Delete the blob and then the row of one of the caller's photos.
// @Tags Studio
// @Param id path string true "Photo ID"
// @Success 204
// @Failure 404 {object} ErrorResponse
// @Router /studio/uploads/{id} [delete]
func (handler *studioHandler) DeleteUpload(ctx *gin.Context) {
	if err := handler.uploadService.Delete(ctx.Request.Context(), userID(ctx), ctx.Param("id")); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// ListPhotoRequests returns the caller's open photo requests
// @Summary List photo requests
// @Tags Studio
// @Produce json
// @Success 200 {array} PhotoRequestResponse
// @Failure 401 {object} ErrorResponse
// @Router /studio/photo-requests [get]
func (handler *studioHandler) ListPhotoRequests(ctx *gin.Context) {
	requests, err := handler.photoRequestService.List(ctx.Request.Context(), userID(ctx))
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, newPhotoRequestResponses(requests))
}

// CreatePhotoRequest accepts JSON {instruction} or a multipart form with an optional reference image
// @Summary Create a photo request
// @Description Add an instruction for one generated photo, optionally with a reference image.
// @Tags Studio
// @Accept json
// @Accept multipart/form-data
// @Produce json
// @Param instruction formData string true "Instruction"
// @Param reference formData file false "Reference image"
// @Success 201 {object} PhotoRequestResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Router /studio/photo-requests [post]
func (handler *studioHandler) CreatePhotoRequest(ctx *gin.Context) {
	input := &photos.PhotoRequestInput{}

	if strings.HasPrefix(ctx.ContentType(), "multipart/") {
		form, err := ctx.MultipartForm()
		if err != nil {
			respondBadRequest(ctx, "invalid form data")
			return
		}
		if values := form.Value["instruction"]; len(values) > 0 {
			input.Instruction = values[0]
		}
		if files := form.File[referenceField]; len(files) > 0 {
			input.Reference = files[0]
		}
	} else {
		var body struct {
			Instruction string `json:"instruction"`
		}
		if err := ctx.ShouldBindJSON(&body); err != nil {
			respondBadRequest(ctx, fmt.Sprintf("invalid request body: %v", err))
			return
		}
		input.Instruction = body.Instruction
	}

	request, err := handler.photoRequestService.Create(ctx.Request.Context(), userID(ctx), input)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, newPhotoRequestResponse(request))
}

// DeletePhotoRequest removes one of the caller's photo requests
// @Summary Delete a photo request
// @Tags Studio
// @Param id path string true "Photo Request ID"
// @Success 204
// @Failure 404 {object} ErrorResponse
// @Router /studio/photo-requests/{id} [delete]
func (handler *studioHandler) DeletePhotoRequest(ctx *gin.Context) {
	if err := handler.photoRequestService.Delete(ctx.Request.Context(), userID(ctx), ctx.Param("id")); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// GetWizard returns the hydrated wizard state
// @Summary Get the wizard state
// @Description Return the persisted step capped by the profile, uploads and photo requests present.
// @Tags Studio
// @Produce json
// @Success 200 {object} WizardResponse
// @Failure 401 {object} ErrorResponse
// @Router /studio/wizard [get]
func (handler *studioHandler) GetWizard(ctx *gin.Context) {
	view, err := handler.studioService.Get(ctx.Request.Context(), userID(ctx))
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, newWizardResponse(view))
}

// UpdateWizard moves the wizard with {action: next|prev|goto, step}
// @Summary Move the wizard
// @Tags Studio
// @Accept json
// @Produce json
// @Param requestBody body studio.Update true "Wizard Action"
// @Success 200 {object} WizardResponse
// @Failure 400 {object} ErrorResponse
// @Router /studio/wizard [put]
func (handler *studioHandler) UpdateWizard(ctx *gin.Context) {
	var update studio.Update
	if err := ctx.ShouldBindJSON(&update); err != nil {
		respondBadRequest(ctx, fmt.Sprintf("invalid request body: %v", err))
		return
	}

	view, err := handler.studioService.Update(ctx.Request.Context(), userID(ctx), &update)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, newWizardResponse(view))
}

// Checkout turns the studio into an order and returns the payment page
// @Summary Check out the studio
// @Description Create a pending order for a package and a Stripe Checkout Session for it.
// @Tags Studio
// @Accept json
// @Produce json
// @Param requestBody body payments.CheckoutInput true "Package Selection"
// @Success 201 {object} CheckoutResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /studio/checkout [post]
func (handler *studioHandler) Checkout(ctx *gin.Context) {
	var input payments.CheckoutInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		respondBadRequest(ctx, fmt.Sprintf("invalid request body: %v", err))
		return
	}

	result, err := handler.checkoutService.Checkout(ctx.Request.Context(), userID(ctx), &input)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, CheckoutResponse{OrderID: result.Order.ID, URL: result.URL})
}
