package utils

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type sampleRequest struct {
	Email string   `json:"email" binding:"required,email"`
	Theme string   `json:"theme" binding:"omitempty,oneof=light dark"`
	Tags  []string `json:"tags" binding:"max=2"`
}

func bind(t *testing.T, body string) (*httptest.ResponseRecorder, bool) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest("POST", "/", bytes.NewBufferString(body))
	c.Request.Header.Set("Content-Type", "application/json")

	var req sampleRequest
	return w, BindAndValidate(c, &req)
}

func decodeDetails(t *testing.T, w *httptest.ResponseRecorder) []ValidationErrorDetail {
	t.Helper()
	var resp struct {
		Data ValidationErrorData `json:"data"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp.Data.Errors
}

func TestBindAndValidateOK(t *testing.T) {
	w, ok := bind(t, `{"email":"a@b.co","theme":"dark"}`)
	assert.True(t, ok)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestBindAndValidateUsesJSONNames(t *testing.T) {
	w, ok := bind(t, `{"email":"nope","theme":"neon","tags":["a","b","c"]}`)
	assert.False(t, ok)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	details := decodeDetails(t, w)
	fields := map[string]ValidationErrorDetail{}
	for _, d := range details {
		fields[d.Field] = d
	}
	assert.Contains(t, fields, "email")
	assert.Equal(t, "email format", fields["email"].Expected)
	assert.Equal(t, "light|dark", fields["theme"].Expected)
	assert.Equal(t, "max length 2", fields["tags"].Expected)
}

func TestBindAndValidateTypeMismatch(t *testing.T) {
	w, ok := bind(t, `{"email":42}`)
	assert.False(t, ok)
	details := decodeDetails(t, w)
	assert.Len(t, details, 1)
	assert.Equal(t, "email", details[0].Field)
	assert.Equal(t, "string", details[0].Expected)
}

func TestBindAndValidateMalformed(t *testing.T) {
	w, ok := bind(t, `{`)
	assert.False(t, ok)
	details := decodeDetails(t, w)
	assert.Equal(t, "body", details[0].Field)
}
