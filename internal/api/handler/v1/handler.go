package v1

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/tdrmf/foundation-api/internal/api/handler/v1/response"
	"github.com/tdrmf/foundation-api/internal/api/middleware"
	"github.com/tdrmf/foundation-api/internal/domain"
)

// getUserFromContext reads the authenticated user the JWT middleware
// stored on the request context.
func getUserFromContext(ctx *gin.Context) (domain.User, *response.Err) {
	value, exists := ctx.Get(middleware.ContextKeyUser)
	if !exists {
		return domain.User{}, response.ErrUnauthorized()
	}

	user, ok := value.(domain.User)
	if !ok {
		return domain.User{}, response.ErrUnauthorized()
	}

	return user, nil
}

func parseIDParam(ctx *gin.Context, name string) (uint, *response.Err) {
	id, err := strconv.ParseUint(ctx.Param(name), 10, 32)
	if err != nil {
		return 0, response.ErrBadRequest(err)
	}

	return uint(id), nil
}
