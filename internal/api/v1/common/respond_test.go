package common

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"promptsmith-backend/internal/services"
	"promptsmith-backend/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestRespondError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		err  error
		code int
	}{
		{fmt.Errorf("get: %w", store.ErrNotFound), http.StatusNotFound},
		{services.ErrTitleRequired, http.StatusBadRequest},
		{fmt.Errorf("%w: %q", services.ErrUnsupportedFormat, "pdf"), http.StatusBadRequest},
		{services.ErrInvalidSettings, http.StatusBadRequest},
		{fmt.Errorf("disk full"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		RespondError(c, tt.err, "Prompt not found")
		assert.Equal(t, tt.code, w.Code, tt.err.Error())
	}
}

func TestParseID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	for value, ok := range map[string]bool{"12": true, "0": false, "-1": false, "abc": false} {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Params = gin.Params{{Key: "id", Value: value}}

		_, got := ParseID(c)
		assert.Equal(t, ok, got, value)
		if !ok {
			assert.Equal(t, http.StatusBadRequest, w.Code)
		}
	}
}

func TestQueryBindings(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest("GET", "/x?format=md&var.topic=Go&var.first%20name=Ann&var.=skip", nil)

	assert.Equal(t, map[string]string{"topic": "Go", "first name": "Ann"}, QueryBindings(c))
}
