package v1

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yizeng/gab/gin/gorm/vaccination/internal/api/handler/v1/response"
	"github.com/yizeng/gab/gin/gorm/vaccination/internal/service"
)

type HealthWorkerHandler struct {
	vaccinationSvc VaccinationService
}

func NewHealthWorkerHandler(vaccinationSvc VaccinationService) *HealthWorkerHandler {
	return &HealthWorkerHandler{
		vaccinationSvc: vaccinationSvc,
	}
}

// HandleListAppointments godoc
// @Summary      List appointments of the health worker's hospital
// @Tags         health-worker
// @Produce      json
// @Success      200  {array}   response.HospitalAppointmentResponse
// @Failure      401  {object}  response.Err
// @Failure      403  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /health-worker/appointments [get]
// @Security BearerAuth
func (h *HealthWorkerHandler) HandleListAppointments(ctx *gin.Context) {
	session, respErr := getSessionFromContext(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	appointments, err := h.vaccinationSvc.ListHealthWorkerAppointments(ctx.Request.Context(), session.ID)
	if err != nil {
		if errors.Is(err, service.ErrAccountNotFound) {
			response.RenderErr(ctx, response.ErrUnauthorized(service.ErrAccountNotFound))
			return
		}

		err = fmt.Errorf("v1.HandleListAppointments -> h.vaccinationSvc.ListHealthWorkerAppointments -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, response.NewHospitalAppointmentsResponse(appointments))
}
