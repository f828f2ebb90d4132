package v1

import (
	"crypto/subtle"
	"fmt"
	"net/http"

	"github.com/GRBalance8/realshot-sub001/internal/domain/apperrors"
	"github.com/GRBalance8/realshot-sub001/internal/domain/cleanup"

	"github.com/gin-gonic/gin"
)

// CronHandler defines the interface for externally triggered maintenance jobs
type CronHandler interface {
	Cleanup(ctx *gin.Context)
}

type cronHandler struct {
	cleanupService cleanup.Service
	secret         string
}

// NewCronHandler creates a new CronHandler. An empty secret rejects every call.
func NewCronHandler(cleanupService cleanup.Service, secret string) CronHandler {
	return &cronHandler{cleanupService: cleanupService, secret: secret}
}

// Cleanup runs the job named by ?job= (default all) when the Bearer secret matches
// @Summary Run cleanup jobs
// @Description Purge expired uploads and abandoned orders. Requires the cron secret as Bearer token.
// @Tags Cron
// @Produce json
// @Param job query string false "Job name (uploads, abandoned, all)"
// @Success 200 {object} cleanup.Report
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Router /cron/cleanup [get]
func (handler *cronHandler) Cleanup(ctx *gin.Context) {
	token := bearerToken(ctx.GetHeader("Authorization"))
	if handler.secret == "" || subtle.ConstantTimeCompare([]byte(token), []byte(handler.secret)) != 1 {
		respondError(ctx, fmt.Errorf("%w: invalid cron secret", apperrors.ErrUnauthorized))
		return
	}

	job := ctx.DefaultQuery("job", cleanup.JobAll)

	report, err := handler.cleanupService.Run(ctx.Request.Context(), job)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, report)
}
