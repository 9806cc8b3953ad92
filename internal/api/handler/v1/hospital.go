package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yizeng/gab/gin/gorm/vaccination/internal/api/handler/v1/request"
	"github.com/yizeng/gab/gin/gorm/vaccination/internal/api/handler/v1/response"
	"github.com/yizeng/gab/gin/gorm/vaccination/internal/domain"
	"github.com/yizeng/gab/gin/gorm/vaccination/internal/service"
)

type HospitalService interface {
	AddHealthWorker(ctx context.Context, hospitalID uint, worker domain.HealthWorker) (domain.HealthWorker, error)
	ListHealthWorkers(ctx context.Context, hospitalID uint) ([]domain.HealthWorker, error)
}

type HospitalHandler struct {
	svc            HospitalService
	vaccinationSvc VaccinationService
}

func NewHospitalHandler(svc HospitalService, vaccinationSvc VaccinationService) *HospitalHandler {
	return &HospitalHandler{
		svc:            svc,
		vaccinationSvc: vaccinationSvc,
	}
}

// HandleListAppointments godoc
// @Summary      List appointments booked at the hospital
// @Tags         hospital
// @Produce      json
// @Success      200  {array}   response.HospitalAppointmentResponse
// @Failure      401  {object}  response.Err
// @Failure      403  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /hospital/appointments [get]
// @Security BearerAuth
func (h *HospitalHandler) HandleListAppointments(ctx *gin.Context) {
	session, respErr := getSessionFromContext(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	appointments, err := h.vaccinationSvc.ListHospitalAppointments(ctx.Request.Context(), session.ID)
	if err != nil {
		err = fmt.Errorf("v1.HandleListAppointments -> h.vaccinationSvc.ListHospitalAppointments -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, response.NewHospitalAppointmentsResponse(appointments))
}

// HandleAddHealthWorker godoc
// @Summary      Add a health worker to the hospital
// @Tags         hospital
// @Accept       json
// @Produce      json
// @Param        request  body      request.AddHealthWorkerRequest  true  "request body"
// @Success      201      {object}  domain.HealthWorker
// @Failure      400      {object}  response.Err
// @Failure      401      {object}  response.Err
// @Failure      403      {object}  response.Err
// @Failure      409      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /hospital/health-workers [post]
// @Security BearerAuth
func (h *HospitalHandler) HandleAddHealthWorker(ctx *gin.Context) {
	session, respErr := getSessionFromContext(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	var req request.AddHealthWorkerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	worker, err := h.svc.AddHealthWorker(ctx.Request.Context(), session.ID, domain.HealthWorker{
		Name:     req.Name,
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		if errors.Is(err, service.ErrUsernameExists) {
			response.RenderErr(ctx, response.ErrConflict(service.ErrUsernameExists))
			return
		}

		err = fmt.Errorf("v1.HandleAddHealthWorker -> h.svc.AddHealthWorker -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusCreated, worker)
}

// HandleListHealthWorkers godoc
// @Summary      List the hospital's health workers
// @Tags         hospital
// @Produce      json
// @Success      200  {array}   domain.HealthWorker
// @Failure      401  {object}  response.Err
// @Failure      403  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /hospital/health-workers [get]
// @Security BearerAuth
func (h *HospitalHandler) HandleListHealthWorkers(ctx *gin.Context) {
	session, respErr := getSessionFromContext(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	workers, err := h.svc.ListHealthWorkers(ctx.Request.Context(), session.ID)
	if err != nil {
		err = fmt.Errorf("v1.HandleListHealthWorkers -> h.svc.ListHealthWorkers -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, workers)
}
