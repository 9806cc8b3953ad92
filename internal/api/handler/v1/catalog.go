package v1

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yizeng/gab/gin/gorm/vaccination/internal/api/handler/v1/response"
)

type CatalogHandler struct {
	svc VaccinationService
}

func NewCatalogHandler(svc VaccinationService) *CatalogHandler {
	return &CatalogHandler{
		svc: svc,
	}
}

// HandleListVaccines godoc
// @Summary      List vaccines
// @Tags         catalog
// @Produce      json
// @Success      200  {array}   domain.Vaccine
// @Failure      401  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /vaccines [get]
// @Security BearerAuth
func (h *CatalogHandler) HandleListVaccines(ctx *gin.Context) {
	vaccines, err := h.svc.ListVaccines(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleListVaccines -> h.svc.ListVaccines -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, vaccines)
}

// HandleListHospitals godoc
// @Summary      List hospitals
// @Tags         catalog
// @Produce      json
// @Success      200  {array}   domain.Hospital
// @Failure      401  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /hospitals [get]
// @Security BearerAuth
func (h *CatalogHandler) HandleListHospitals(ctx *gin.Context) {
	hospitals, err := h.svc.ListHospitals(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleListHospitals -> h.svc.ListHospitals -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, hospitals)
}
