package settings_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"promptsmith-backend/internal/api/v1/settings"
	"promptsmith-backend/internal/models"
	"promptsmith-backend/internal/services"
	"promptsmith-backend/internal/store"
	"promptsmith-backend/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func newHandler() *settings.Handler {
	gin.SetMode(gin.TestMode)
	return settings.NewHandler(services.NewSettingsService(store.NewMemorySettingsStore(), zap.NewNop()))
}

func TestGetSettings(t *testing.T) {
	h := newHandler()

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest("GET", "/settings", nil)

	h.GetSettings(c)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Data models.Settings `json:"data"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "John Doe", resp.Data.DisplayName)
	assert.Equal(t, models.ThemeLight, resp.Data.Preferences.Theme)
	assert.NotContains(t, w.Body.String(), `"id"`)
}

func TestUpdateSettings(t *testing.T) {
	h := newHandler()

	s := models.DefaultSettings()
	s.DisplayName = "Jane Roe"
	s.Preferences.Theme = models.ThemeDark
	body, _ := json.Marshal(s)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest("PUT", "/settings", bytes.NewBuffer(body))

	h.UpdateSettings(c)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Data models.Settings `json:"data"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Jane Roe", resp.Data.DisplayName)
	assert.Equal(t, models.ThemeDark, resp.Data.Preferences.Theme)
}

func TestUpdateSettingsValidation(t *testing.T) {
	h := newHandler()

	s := models.DefaultSettings()
	s.Preferences.DefaultFormat = "haiku"
	body, _ := json.Marshal(s)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest("PUT", "/settings", bytes.NewBuffer(body))

	h.UpdateSettings(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	var resp struct {
		Data utils.ValidationErrorData `json:"data"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Data.Errors, 1)
	assert.Equal(t, "default_format", resp.Data.Errors[0].Field)
	assert.Equal(t, "paragraph|bullet-points|numbered-list|json|table", resp.Data.Errors[0].Expected)
}
