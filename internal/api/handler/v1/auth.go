package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yizeng/gab/gin/gorm/vaccination/internal/api/handler/v1/request"
	"github.com/yizeng/gab/gin/gorm/vaccination/internal/api/handler/v1/response"
	"github.com/yizeng/gab/gin/gorm/vaccination/internal/config"
	"github.com/yizeng/gab/gin/gorm/vaccination/internal/domain"
	"github.com/yizeng/gab/gin/gorm/vaccination/internal/pkg/jwthelper"
	"github.com/yizeng/gab/gin/gorm/vaccination/internal/service"
)

type AuthService interface {
	SignupParent(ctx context.Context, parent domain.Parent) (domain.Parent, error)
	SignupHospital(ctx context.Context, hospital domain.Hospital) (domain.Hospital, error)
	Login(ctx context.Context, role domain.Role, username, password string) (domain.Identity, error)
	GetIdentity(ctx context.Context, session domain.Session) (domain.Identity, error)
}

type AuthHandler struct {
	conf *config.APIConfig
	svc  AuthService
}

func NewAuthHandler(conf *config.APIConfig, svc AuthService) *AuthHandler {
	return &AuthHandler{
		conf: conf,
		svc:  svc,
	}
}

// HandleSignup godoc
// @Summary      Register a parent or a hospital
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request   body      request.SignupRequest true "request body"
// @Success      201      {object}   domain.Parent
// @Failure      400      {object}   response.Err
// @Failure      409      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /auth/signup [post]
func (h *AuthHandler) HandleSignup(ctx *gin.Context) {
	var req request.SignupRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	var (
		created any
		err     error
	)

	switch domain.Role(req.Role) {
	case domain.RoleParent:
		created, err = h.svc.SignupParent(ctx.Request.Context(), domain.Parent{
			Username: req.Username,
			Password: req.Password,
			Name:     req.Name,
			Contact:  req.Contact,
		})

	case domain.RoleHospital:
		created, err = h.svc.SignupHospital(ctx.Request.Context(), domain.Hospital{
			Username: req.Username,
			Password: req.Password,
			Name:     req.Name,
		})

	default:
		response.RenderErr(ctx, response.ErrBadRequest(domain.ErrInvalidRole))
		return
	}

	if err != nil {
		if errors.Is(err, service.ErrUsernameExists) {
			response.RenderErr(ctx, response.ErrConflict(service.ErrUsernameExists))
			return
		}

		err = fmt.Errorf("v1.HandleSignup -> h.svc.Signup -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusCreated, created)
}

// HandleLogin godoc
// @Summary      Login as a parent, hospital or health worker
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request   body      request.LoginRequest true "request body"
// @Success      200      {object}   response.LoginResponse
// @Failure      400      {object}   response.Err
// @Failure      401      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /auth/login [post]
func (h *AuthHandler) HandleLogin(ctx *gin.Context) {
	req := request.LoginRequest{}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	identity, err := h.svc.Login(ctx.Request.Context(), domain.Role(req.Role), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			response.RenderErr(ctx, response.ErrWrongCredentials(service.ErrInvalidCredentials))
			return
		}

		err = fmt.Errorf("v1.HandleLogin -> h.svc.Login -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	session := domain.NewSession(identity)
	token, err := jwthelper.GenerateToken([]byte(h.conf.JWTSigningKey), session, h.conf.TokenTTL)
	if err != nil {
		err = fmt.Errorf("v1.HandleLogin -> jwthelper.GenerateToken -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, response.LoginResponse{
		Token:   token,
		Session: session,
	})
}

// HandleGetMe godoc
// @Summary      Get the account behind the session token
// @Tags         auth
// @Produce      json
// @Success      200  {object}  response.MeResponse
// @Failure      401  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /me [get]
// @Security BearerAuth
func (h *AuthHandler) HandleGetMe(ctx *gin.Context) {
	session, respErr := getSessionFromContext(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	identity, err := h.svc.GetIdentity(ctx.Request.Context(), session)
	if err != nil {
		if errors.Is(err, service.ErrAccountNotFound) {
			response.RenderErr(ctx, response.ErrUnauthorized(service.ErrAccountNotFound))
			return
		}

		err = fmt.Errorf("v1.HandleGetMe -> h.svc.GetIdentity -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, response.MeResponse{
		Session:  session,
		Identity: identity,
	})
}
