package controllers

import (
	"errors"
	"strconv"

	"plateful/pkg/resp"
	"plateful/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// writeErr maps service errors onto HTTP responses in one place so every
// controller surfaces the same taxonomy: validation 400, missing 404,
// ownership 403, state conflicts 409, the rest 500.
func writeErr(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrNotFound), errors.Is(err, gorm.ErrRecordNotFound):
		resp.NotFound(c, "not found")
	case errors.Is(err, services.ErrForbidden):
		resp.Forbidden(c, "forbidden")
	case errors.Is(err, services.ErrConflict),
		errors.Is(err, services.ErrAlreadyReviewed),
		errors.Is(err, services.ErrAlreadyClaimed),
		errors.Is(err, services.ErrCartRestaurant):
		resp.Conflict(c, err.Error())
	case errors.Is(err, services.ErrCartEmpty),
		errors.Is(err, services.ErrInvalidPromo),
		errors.Is(err, services.ErrInvalidOTP):
		resp.BadRequest(c, err.Error())
	default:
		resp.ServerError(c, err)
	}
}

func paramUint(c *gin.Context, name string) (uint, bool) {
	n, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || n == 0 {
		resp.BadRequest(c, "invalid "+name)
		return 0, false
	}
	return uint(n), true
}

func queryInt(c *gin.Context, name string, def int) int {
	n, err := strconv.Atoi(c.DefaultQuery(name, strconv.Itoa(def)))
	if err != nil {
		return def
	}
	return n
}
