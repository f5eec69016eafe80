package httpapi

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"orgboard/internal/core/errs"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func statusFor(err error) int {
	gin.SetMode(gin.TestMode)
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	respondError(c, err)
	return rec.Code
}

func TestRespondErrorStatusMapping(t *testing.T) {
	assert.Equal(t, http.StatusUnauthorized, statusFor(errs.ErrUnauthenticated))
	assert.Equal(t, http.StatusForbidden, statusFor(errs.ErrUnauthorized))
	assert.Equal(t, http.StatusNotFound, statusFor(errs.ErrPostNotFound))
	assert.Equal(t, http.StatusNotFound, statusFor(errs.ErrGroupNotFound))
	assert.Equal(t, http.StatusConflict, statusFor(errs.ErrUsernameTaken))
	assert.Equal(t, http.StatusInternalServerError, statusFor(errors.New("driver: bad connection")))
}

// A missing owner row can only be seen after authentication has already
// succeeded, so it signals broken data, not a bad request.
func TestRespondErrorMissingUserIsInternal(t *testing.T) {
	assert.Equal(t, http.StatusInternalServerError, statusFor(errs.ErrUserNotFound))
}
