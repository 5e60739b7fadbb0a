package prompt_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"promptsmith-backend/internal/api/v1/prompt"
	"promptsmith-backend/internal/services"
	"promptsmith-backend/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	seed, err := store.SeedPrompts()
	assert.NoError(t, err)
	svc := services.NewPromptService(store.NewMemoryPromptStore(seed), nil, time.Minute, zap.NewNop())

	r := gin.New()
	prompt.RegisterRoutes(r.Group("/api/v1"), prompt.NewHandler(svc))
	return r
}

func do(r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req, _ := http.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

type promptEnvelope struct {
	Status int                   `json:"status"`
	Data   prompt.PromptResponse `json:"data"`
}

func decodePrompt(t *testing.T, w *httptest.ResponseRecorder) prompt.PromptResponse {
	t.Helper()
	var resp promptEnvelope
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp.Data
}

func TestListPrompts(t *testing.T) {
	r := setupRouter(t)

	w := do(r, "GET", "/api/v1/prompts", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data prompt.PromptListResponse `json:"data"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 3, resp.Data.Total)
	assert.Equal(t, uint(1), resp.Data.Prompts[0].ID)
	assert.False(t, resp.Data.Prompts[0].Stale)
	assert.True(t, resp.Data.Prompts[2].Stale)

	w = do(r, "GET", "/api/v1/prompts?search=coding", nil)
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 1, resp.Data.Total)
	assert.Equal(t, uint(2), resp.Data.Prompts[0].ID)
}

func TestGetPrompt(t *testing.T) {
	r := setupRouter(t)

	w := do(r, "GET", "/api/v1/prompts/2", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	p := decodePrompt(t, w)
	assert.Equal(t, "Code Review Assistant", p.Title)
	assert.Equal(t, []string{"language"}, []string(p.Variables))

	assert.Equal(t, http.StatusNotFound, do(r, "GET", "/api/v1/prompts/99", nil).Code)
	assert.Equal(t, http.StatusBadRequest, do(r, "GET", "/api/v1/prompts/abc", nil).Code)
}

func TestCreatePrompt(t *testing.T) {
	r := setupRouter(t)

	w := do(r, "POST", "/api/v1/prompts", map[string]interface{}{
		"title":     "  Research Assistant ",
		"tags":      []string{"Research", " ", "Research"},
		"tone_role": "Act as a {{field}} researcher",
		"goal":      "Summarize {{paper}}",
		"generate":  true,
	})
	assert.Equal(t, http.StatusCreated, w.Code)

	var env promptEnvelope
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	assert.Equal(t, http.StatusCreated, env.Status)

	p := env.Data
	assert.Equal(t, uint(4), p.ID)
	assert.Equal(t, "Research Assistant", p.Title)
	assert.Equal(t, []string{"Research"}, []string(p.Tags))
	assert.Equal(t, "Act as a {{field}} researcher. Summarize {{paper}}.", p.AssembledPrompt)
	assert.Equal(t, []string{"field", "paper"}, []string(p.Variables))
	assert.Equal(t, 1, p.Version)
	assert.False(t, p.Stale)
}

func TestCreatePromptWithoutGenerateIsStale(t *testing.T) {
	r := setupRouter(t)

	w := do(r, "POST", "/api/v1/prompts", map[string]interface{}{
		"title": "Draft",
		"goal":  "Plan a trip to {{city}}",
	})
	assert.Equal(t, http.StatusCreated, w.Code)

	p := decodePrompt(t, w)
	assert.Empty(t, p.AssembledPrompt)
	assert.True(t, p.Stale)
}

func TestCreatePromptValidation(t *testing.T) {
	r := setupRouter(t)

	w := do(r, "POST", "/api/v1/prompts", map[string]interface{}{"title": "   ", "goal": "x"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "title is required")

	w = do(r, "POST", "/api/v1/prompts", map[string]interface{}{"title": 42})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid request parameters")

	w = do(r, "POST", "/api/v1/prompts", map[string]interface{}{"title": strings.Repeat("a", 201)})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdatePrompt(t *testing.T) {
	r := setupRouter(t)

	body := map[string]interface{}{
		"title":     "Code Review Assistant",
		"tags":      []string{"Coding"},
		"tone_role": "Act as a staff {{language}} engineer",
		"goal":      "Review the following code",
	}
	w := do(r, "PUT", "/api/v1/prompts/2", body)
	assert.Equal(t, http.StatusOK, w.Code)

	p := decodePrompt(t, w)
	assert.True(t, p.Stale)
	assert.Contains(t, p.AssembledPrompt, "Act as a senior {{language}} engineer")

	w = do(r, "POST", "/api/v1/prompts/2/generate", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	p = decodePrompt(t, w)
	assert.False(t, p.Stale)
	assert.Equal(t, "Act as a staff {{language}} engineer. Review the following code.", p.AssembledPrompt)
	assert.Equal(t, 1, p.Version)

	assert.Equal(t, http.StatusNotFound, do(r, "PUT", "/api/v1/prompts/99", body).Code)
}

func TestDeletePrompt(t *testing.T) {
	r := setupRouter(t)

	assert.Equal(t, http.StatusOK, do(r, "DELETE", "/api/v1/prompts/1", nil).Code)
	assert.Equal(t, http.StatusNotFound, do(r, "GET", "/api/v1/prompts/1", nil).Code)
	assert.Equal(t, http.StatusNotFound, do(r, "DELETE", "/api/v1/prompts/1", nil).Code)
}

func TestDuplicatePrompt(t *testing.T) {
	r := setupRouter(t)

	w := do(r, "POST", "/api/v1/prompts/1/duplicate", nil)
	assert.Equal(t, http.StatusCreated, w.Code)

	p := decodePrompt(t, w)
	assert.Equal(t, uint(4), p.ID)
	assert.Equal(t, "Blog Post Outline Generator (Copy)", p.Title)
	assert.False(t, p.Stale)
}

func TestPreviewPrompt(t *testing.T) {
	r := setupRouter(t)

	w := do(r, "POST", "/api/v1/prompts/2/preview", map[string]interface{}{
		"bindings": map[string]string{"language": "Go"},
	})
	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data services.Preview `json:"data"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, strings.HasPrefix(resp.Data.Rendered, "Act as a senior Go engineer."))
	assert.Empty(t, resp.Data.Unresolved)

	w = do(r, "POST", "/api/v1/prompts/2/preview", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, []string{"language"}, resp.Data.Unresolved)
}

func TestExportPrompt(t *testing.T) {
	r := setupRouter(t)

	w := do(r, "GET", "/api/v1/prompts/2/export?format=text&var.language=Rust", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/plain; charset=utf-8", w.Header().Get("Content-Type"))
	assert.True(t, strings.HasPrefix(w.Body.String(), "Act as a senior Rust engineer."))

	w = do(r, "GET", "/api/v1/prompts/2/export?format=md", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, strings.HasPrefix(w.Body.String(), "# Code Review Assistant\n\n"))

	w = do(r, "GET", "/api/v1/prompts/2/export?format=pdf", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(r, "GET", "/api/v1/prompts/99/export", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
