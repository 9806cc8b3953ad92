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

type ChildService interface {
	AddChild(ctx context.Context, parentID uint, name, dateOfBirth string) (domain.Child, error)
	ListChildren(ctx context.Context, parentID uint) ([]domain.Child, error)
}

type VaccinationService interface {
	ListVaccines(ctx context.Context) ([]domain.Vaccine, error)
	ListHospitals(ctx context.Context) ([]domain.Hospital, error)
	BookAppointment(ctx context.Context, parentID, childID, vaccineID, hospitalID uint) (domain.VaccineRecord, error)
	ListParentAppointments(ctx context.Context, parentID uint) ([]domain.ParentAppointment, error)
	ListHospitalAppointments(ctx context.Context, hospitalID uint) ([]domain.HospitalAppointment, error)
	ListHealthWorkerAppointments(ctx context.Context, workerID uint) ([]domain.HospitalAppointment, error)
	Pay(ctx context.Context, parentID, recordID uint) (domain.Payment, bool, error)
}

type ReminderService interface {
	DueReminders(ctx context.Context, parentID uint) ([]domain.Reminder, error)
}

type ParentHandler struct {
	childSvc       ChildService
	vaccinationSvc VaccinationService
	reminderSvc    ReminderService
}

func NewParentHandler(childSvc ChildService, vaccinationSvc VaccinationService, reminderSvc ReminderService) *ParentHandler {
	return &ParentHandler{
		childSvc:       childSvc,
		vaccinationSvc: vaccinationSvc,
		reminderSvc:    reminderSvc,
	}
}

// HandleAddChild godoc
// @Summary      Add a child
// @Tags         parent
// @Accept       json
// @Produce      json
// @Param        request  body      request.AddChildRequest  true  "request body"
// @Success      201      {object}  response.ChildResponse
// @Failure      400      {object}  response.Err
// @Failure      401      {object}  response.Err
// @Failure      403      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /parent/children [post]
// @Security BearerAuth
func (h *ParentHandler) HandleAddChild(ctx *gin.Context) {
	session, respErr := getSessionFromContext(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	var req request.AddChildRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	child, err := h.childSvc.AddChild(ctx.Request.Context(), session.ID, req.Name, req.DateOfBirth)
	if err != nil {
		if errors.Is(err, service.ErrInvalidDate) || errors.Is(err, service.ErrDateOfBirthInFuture) {
			response.RenderErr(ctx, response.ErrBadRequest(err))
			return
		}

		err = fmt.Errorf("v1.HandleAddChild -> h.childSvc.AddChild -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusCreated, response.NewChildResponse(child))
}

// HandleListChildren godoc
// @Summary      List the parent's children
// @Tags         parent
// @Produce      json
// @Success      200  {array}   response.ChildResponse
// @Failure      401  {object}  response.Err
// @Failure      403  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /parent/children [get]
// @Security BearerAuth
func (h *ParentHandler) HandleListChildren(ctx *gin.Context) {
	session, respErr := getSessionFromContext(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	children, err := h.childSvc.ListChildren(ctx.Request.Context(), session.ID)
	if err != nil {
		err = fmt.Errorf("v1.HandleListChildren -> h.childSvc.ListChildren -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, response.NewChildrenResponse(children))
}

// HandleBookAppointment godoc
// @Summary      Book a vaccination appointment
// @Description  Schedules the child for the vaccine at the hospital, dated today.
// @Tags         parent
// @Accept       json
// @Produce      json
// @Param        request  body      request.BookAppointmentRequest  true  "request body"
// @Success      201      {object}  response.AppointmentResponse
// @Failure      400      {object}  response.Err
// @Failure      401      {object}  response.Err
// @Failure      403      {object}  response.Err
// @Failure      404      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /parent/appointments [post]
// @Security BearerAuth
func (h *ParentHandler) HandleBookAppointment(ctx *gin.Context) {
	session, respErr := getSessionFromContext(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	var req request.BookAppointmentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	record, err := h.vaccinationSvc.BookAppointment(ctx.Request.Context(), session.ID, req.ChildID, req.VaccineID, req.HospitalID)
	if err != nil {
		if errors.Is(err, service.ErrChildNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("child", "id", req.ChildID))
			return
		}
		if errors.Is(err, service.ErrInvalidSelection) {
			response.RenderErr(ctx, response.ErrBadRequest(service.ErrInvalidSelection))
			return
		}

		err = fmt.Errorf("v1.HandleBookAppointment -> h.vaccinationSvc.BookAppointment -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusCreated, response.NewAppointmentResponse(record))
}

// HandleListAppointments godoc
// @Summary      List the parent's appointments with payment status
// @Tags         parent
// @Produce      json
// @Success      200  {array}   response.ParentAppointmentResponse
// @Failure      401  {object}  response.Err
// @Failure      403  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /parent/appointments [get]
// @Security BearerAuth
func (h *ParentHandler) HandleListAppointments(ctx *gin.Context) {
	session, respErr := getSessionFromContext(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	appointments, err := h.vaccinationSvc.ListParentAppointments(ctx.Request.Context(), session.ID)
	if err != nil {
		err = fmt.Errorf("v1.HandleListAppointments -> h.vaccinationSvc.ListParentAppointments -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, response.NewParentAppointmentsResponse(appointments))
}

// HandlePay godoc
// @Summary      Pay for an appointment
// @Description  Records the flat fee. Paying twice returns the existing payment with 200.
// @Tags         parent
// @Produce      json
// @Param        appointmentID  path      int  true  "appointment id"
// @Success      200            {object}  response.PaymentResponse
// @Success      201            {object}  response.PaymentResponse
// @Failure      400            {object}  response.Err
// @Failure      401            {object}  response.Err
// @Failure      403            {object}  response.Err
// @Failure      404            {object}  response.Err
// @Failure      500            {object}  response.Err
// @Router       /parent/appointments/{appointmentID}/payment [post]
// @Security BearerAuth
func (h *ParentHandler) HandlePay(ctx *gin.Context) {
	session, respErr := getSessionFromContext(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	recordID, respErr := parseIDParam(ctx, "appointmentID")
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	payment, created, err := h.vaccinationSvc.Pay(ctx.Request.Context(), session.ID, recordID)
	if err != nil {
		if errors.Is(err, service.ErrRecordNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("appointment", "id", recordID))
			return
		}

		err = fmt.Errorf("v1.HandlePay -> h.vaccinationSvc.Pay -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	if !created {
		ctx.JSON(http.StatusOK, response.NewPaymentResponse("payment already made", payment))
		return
	}

	ctx.JSON(http.StatusCreated, response.NewPaymentResponse("payment successful", payment))
}

// HandleListReminders godoc
// @Summary      List vaccines the parent's children are due for
// @Tags         parent
// @Produce      json
// @Success      200  {array}   response.ReminderResponse
// @Failure      401  {object}  response.Err
// @Failure      403  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /parent/reminders [get]
// @Security BearerAuth
func (h *ParentHandler) HandleListReminders(ctx *gin.Context) {
	session, respErr := getSessionFromContext(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	reminders, err := h.reminderSvc.DueReminders(ctx.Request.Context(), session.ID)
	if err != nil {
		err = fmt.Errorf("v1.HandleListReminders -> h.reminderSvc.DueReminders -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, response.NewRemindersResponse(reminders))
}
