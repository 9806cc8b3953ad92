package v1

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/yizeng/gab/gin/gorm/vaccination/internal/api/handler/v1/response"
	"github.com/yizeng/gab/gin/gorm/vaccination/internal/api/middleware"
	"github.com/yizeng/gab/gin/gorm/vaccination/internal/domain"
)

var errNoSession = errors.New("no session on request")

func getSessionFromContext(ctx *gin.Context) (domain.Session, *response.Err) {
	session, ok := middleware.GetSession(ctx)
	if !ok {
		return domain.Session{}, response.ErrUnauthorized(errNoSession)
	}

	return session, nil
}

func parseIDParam(ctx *gin.Context, name string) (uint, *response.Err) {
	id, err := strconv.ParseUint(ctx.Param(name), 10, 64)
	if err != nil || id == 0 {
		return 0, response.ErrBadRequest(errors.New("invalid " + name))
	}

	return uint(id), nil
}
