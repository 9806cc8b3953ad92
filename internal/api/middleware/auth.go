package middleware

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/yizeng/gab/gin/gorm/vaccination/internal/api/handler/v1/response"
	"github.com/yizeng/gab/gin/gorm/vaccination/internal/domain"
	"github.com/yizeng/gab/gin/gorm/vaccination/internal/pkg/jwthelper"
)

const sessionKey = "session"

var (
	errMissingToken = errors.New("missing bearer token")
	errNoSession    = errors.New("no session")
)

type Authenticator struct {
	signingKey []byte
}

func NewAuthenticator(signingKey string) *Authenticator {
	return &Authenticator{
		signingKey: []byte(signingKey),
	}
}

// VerifyJWT decodes the bearer token and stores the session on the context.
func (a *Authenticator) VerifyJWT() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		token := bearerToken(ctx.GetHeader("Authorization"))
		if token == "" {
			response.RenderErr(ctx, response.ErrUnauthorized(errMissingToken))
			return
		}

		session, err := jwthelper.ParseToken(a.signingKey, token)
		if err != nil {
			response.RenderErr(ctx, response.ErrUnauthorized(jwthelper.ErrInvalidToken))
			return
		}

		ctx.Set(sessionKey, session)
		ctx.Next()
	}
}

// RequireRole rejects sessions whose role is not one of roles.
func RequireRole(roles ...domain.Role) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		session, ok := GetSession(ctx)
		if !ok {
			response.RenderErr(ctx, response.ErrUnauthorized(errNoSession))
			return
		}

		for _, role := range roles {
			if session.Role == role {
				ctx.Next()
				return
			}
		}

		response.RenderErr(ctx, response.ErrPermissionDenied(fmt.Errorf("role %v may not access this resource", session.Role)))
	}
}

func GetSession(ctx *gin.Context) (domain.Session, bool) {
	v, ok := ctx.Get(sessionKey)
	if !ok {
		return domain.Session{}, false
	}

	session, ok := v.(domain.Session)
	return session, ok
}

func bearerToken(header string) string {
	parts := strings.SplitN(strings.TrimSpace(header), " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}

	return strings.TrimSpace(parts[1])
}
