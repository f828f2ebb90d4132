package v1

import (
	"time"

	"github.com/GRBalance8/realshot-sub001/internal/domain/errorlogs"
	"github.com/GRBalance8/realshot-sub001/internal/domain/orders"
	"github.com/GRBalance8/realshot-sub001/internal/domain/photos"
	"github.com/GRBalance8/realshot-sub001/internal/domain/studio"
	"github.com/GRBalance8/realshot-sub001/internal/domain/users"

	"github.com/go-playground/validator/v10"
)

// ErrorResponse is the body of every failed request
type ErrorResponse struct {
	Message string `json:"message"`
}

// UserResponse is the public view of an account
type UserResponse struct {
	ID       string  `json:"id"`
	Email    string  `json:"email"`
	Name     string  `json:"name"`
	Image    *string `json:"image,omitempty"`
	Provider string  `json:"provider"`
	Role     string  `json:"role"`
}

// SessionResponse is returned by every sign-in route
type SessionResponse struct {
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expiresAt"`
	User      UserResponse `json:"user"`
}

// ProfileResponse is the studio profile of the caller
type ProfileResponse struct {
	ID              string    `json:"id"`
	Gender          string    `json:"gender"`
	AgeRange        string    `json:"ageRange"`
	Ethnicity       string    `json:"ethnicity"`
	HairColor       string    `json:"hairColor"`
	EyeColor        string    `json:"eyeColor"`
	BodyType        string    `json:"bodyType"`
	AdditionalInfo  string    `json:"additionalInfo"`
	WizardStep      int       `json:"wizardStep"`
	DesignSubstep   bool      `json:"designSubstep"`
	DateTimeUpdated time.Time `json:"dateTimeUpdated"`
}

// UploadedPhotoResponse describes a stored customer photo
type UploadedPhotoResponse struct {
	ID              string    `json:"id"`
	OrderID         *string   `json:"orderId,omitempty"`
	URL             string    `json:"url"`
	FileName        string    `json:"fileName"`
	ContentType     string    `json:"contentType"`
	Size            int64     `json:"size"`
	DateTimeCreated time.Time `json:"dateTimeCreated"`
}

// PhotoRequestResponse describes a per-photo instruction
type PhotoRequestResponse struct {
	ID                string    `json:"id"`
	OrderID           *string   `json:"orderId,omitempty"`
	Instruction       string    `json:"instruction"`
	ReferenceImageURL *string   `json:"referenceImageUrl,omitempty"`
	DateTimeCreated   time.Time `json:"dateTimeCreated"`
}

// GeneratedPhotoResponse describes a delivered result image
type GeneratedPhotoResponse struct {
	ID              string    `json:"id"`
	OrderID         string    `json:"orderId"`
	URL             string    `json:"url"`
	FileName        string    `json:"fileName"`
	DateTimeCreated time.Time `json:"dateTimeCreated"`
}

// OrderResponse describes an order without attachments
type OrderResponse struct {
	ID                string          `json:"id"`
	UserID            string          `json:"userId"`
	Status            orders.Status   `json:"status"`
	Progress          orders.Progress `json:"progress"`
	PackageID         string          `json:"packageId"`
	Amount            int64           `json:"amount"`
	Currency          string          `json:"currency"`
	PaymentStatus     string          `json:"paymentStatus"`
	DateTimeCompleted *time.Time      `json:"dateTimeCompleted,omitempty"`
	DateTimeCreated   time.Time       `json:"dateTimeCreated"`
	DateTimeUpdated   time.Time       `json:"dateTimeUpdated"`
}

// OrderDetailResponse is an order with everything attached to it
type OrderDetailResponse struct {
	OrderResponse
	User            *UserResponse            `json:"user,omitempty"`
	Uploads         []UploadedPhotoResponse  `json:"uploads"`
	PhotoRequests   []PhotoRequestResponse   `json:"photoRequests"`
	GeneratedPhotos []GeneratedPhotoResponse `json:"generatedPhotos"`
}

// WizardResponse is the hydrated studio wizard
type WizardResponse struct {
	CurrentStep   studio.Step  `json:"currentStep"`
	StepName      string       `json:"stepName"`
	DesignSubstep bool         `json:"designSubstep"`
	MaxStep       studio.Step  `json:"maxStep"`
	Facts         studio.Facts `json:"facts"`
}

// CheckoutResponse carries the hosted payment page of a new order
type CheckoutResponse struct {
	OrderID string `json:"orderId"`
	URL     string `json:"url"`
}

// ErrorLogResponse is a recorded server error
type ErrorLogResponse struct {
	ID              string    `json:"id"`
	Source          string    `json:"source"`
	Message         string    `json:"message"`
	Detail          string    `json:"detail"`
	UserID          *string   `json:"userId,omitempty"`
	DateTimeCreated time.Time `json:"dateTimeCreated"`
}

// PatchOrderRequest is the admin partial update of an order
type PatchOrderRequest struct {
	Status            *string `json:"status" validate:"omitempty,oneof=PENDING PROCESSING COMPLETED CANCELLED"`
	ImagesProcessed   *bool   `json:"imagesProcessed"`
	TrainingInitiated *bool   `json:"trainingInitiated"`
	ImagesGenerated   *bool   `json:"imagesGenerated"`
	OrderCompleted    *bool   `json:"orderCompleted"`
}

// Validate checks the status is a known order status
func (r *PatchOrderRequest) Validate() error {
	return validator.New().Struct(r)
}

// ToPatch converts the request into a domain patch
func (r *PatchOrderRequest) ToPatch() *orders.Patch {
	patch := &orders.Patch{
		ImagesProcessed:   r.ImagesProcessed,
		TrainingInitiated: r.TrainingInitiated,
		ImagesGenerated:   r.ImagesGenerated,
		OrderCompleted:    r.OrderCompleted,
	}
	if r.Status != nil {
		status := orders.Status(*r.Status)
		patch.Status = &status
	}
	return patch
}

func newUserResponse(u *users.User) UserResponse {
	return UserResponse{
		ID:       u.ID,
		Email:    u.Email,
		Name:     u.Name,
		Image:    u.Image,
		Provider: u.Provider,
		Role:     string(u.Role),
	}
}

func newSessionResponse(s *users.Session) SessionResponse {
	return SessionResponse{Token: s.Token, ExpiresAt: s.ExpiresAt, User: newUserResponse(s.User)}
}

func newProfileResponse(p *users.Profile) ProfileResponse {
	return ProfileResponse{
		ID:              p.ID,
		Gender:          p.Gender,
		AgeRange:        p.AgeRange,
		Ethnicity:       p.Ethnicity,
		HairColor:       p.HairColor,
		EyeColor:        p.EyeColor,
		BodyType:        p.BodyType,
		AdditionalInfo:  p.AdditionalInfo,
		WizardStep:      p.WizardStep,
		DesignSubstep:   p.DesignSubstep,
		DateTimeUpdated: p.DateTimeUpdated,
	}
}

func newUploadedPhotoResponses(list []*photos.UploadedPhoto) []UploadedPhotoResponse {
	responses := make([]UploadedPhotoResponse, 0, len(list))
	for _, p := range list {
		responses = append(responses, UploadedPhotoResponse{
			ID:              p.ID,
			OrderID:         p.OrderID,
			URL:             p.URL,
			FileName:        p.FileName,
			ContentType:     p.ContentType,
			Size:            p.Size,
			DateTimeCreated: p.DateTimeCreated,
		})
	}
	return responses
}

func newPhotoRequestResponse(r *photos.PhotoRequest) PhotoRequestResponse {
	return PhotoRequestResponse{
		ID:                r.ID,
		OrderID:           r.OrderID,
		Instruction:       r.Instruction,
		ReferenceImageURL: r.ReferenceImageURL,
		DateTimeCreated:   r.DateTimeCreated,
	}
}

func newPhotoRequestResponses(list []*photos.PhotoRequest) []PhotoRequestResponse {
	responses := make([]PhotoRequestResponse, 0, len(list))
	for _, r := range list {
		responses = append(responses, newPhotoRequestResponse(r))
	}
	return responses
}

func newGeneratedPhotoResponses(list []*photos.GeneratedPhoto) []GeneratedPhotoResponse {
	responses := make([]GeneratedPhotoResponse, 0, len(list))
	for _, p := range list {
		responses = append(responses, GeneratedPhotoResponse{
			ID:              p.ID,
			OrderID:         p.OrderID,
			URL:             p.URL,
			FileName:        p.FileName,
			DateTimeCreated: p.DateTimeCreated,
		})
	}
	return responses
}

func newOrderResponse(o *orders.Order) OrderResponse {
	return OrderResponse{
		ID:                o.ID,
		UserID:            o.UserID,
		Status:            o.Status,
		Progress:          o.Progress,
		PackageID:         o.PackageID,
		Amount:            o.Amount,
		Currency:          o.Currency,
		PaymentStatus:     o.PaymentStatus,
		DateTimeCompleted: o.DateTimeCompleted,
		DateTimeCreated:   o.DateTimeCreated,
		DateTimeUpdated:   o.DateTimeUpdated,
	}
}

func newOrderResponses(list []*orders.Order) []OrderResponse {
	responses := make([]OrderResponse, 0, len(list))
	for _, o := range list {
		responses = append(responses, newOrderResponse(o))
	}
	return responses
}

func newOrderDetailResponse(d *orders.Detail) OrderDetailResponse {
	response := OrderDetailResponse{
		OrderResponse:   newOrderResponse(d.Order),
		Uploads:         newUploadedPhotoResponses(d.Uploads),
		PhotoRequests:   newPhotoRequestResponses(d.PhotoRequests),
		GeneratedPhotos: newGeneratedPhotoResponses(d.GeneratedPhotos),
	}
	if d.User != nil {
		user := newUserResponse(d.User)
		response.User = &user
	}
	return response
}

func newWizardResponse(v *studio.View) WizardResponse {
	return WizardResponse{
		CurrentStep:   v.State.CurrentStep,
		StepName:      v.State.CurrentStep.String(),
		DesignSubstep: v.State.DesignSubstep,
		MaxStep:       v.MaxStep,
		Facts:         v.Facts,
	}
}

func newErrorLogResponses(list []*errorlogs.ErrorLog) []ErrorLogResponse {
	responses := make([]ErrorLogResponse, 0, len(list))
	for _, e := range list {
		responses = append(responses, ErrorLogResponse{
			ID:              e.ID,
			Source:          e.Source,
			Message:         e.Message,
			Detail:          e.Detail,
			UserID:          e.UserID,
			DateTimeCreated: e.DateTimeCreated,
		})
	}
	return responses
}
