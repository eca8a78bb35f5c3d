package api

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/pageza/recipe-cost-api/backend/internal/logger"
	"github.com/pageza/recipe-cost-api/backend/internal/middleware"
	"github.com/pageza/recipe-cost-api/backend/internal/service"
	"github.com/pageza/recipe-cost-api/backend/internal/testhelpers"
)

// setupRecipeTestRouter wires the recipe handler to svc behind the error
// middleware. A nil svc gets a real service on a fresh SQLite database.
func setupRecipeTestRouter(t *testing.T, svc service.IRecipeService) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	if svc == nil {
		svc = service.NewRecipeService(testhelpers.SetupSQLiteDatabase(t))
	}

	router := gin.New()
	router.Use(middleware.ErrorHandler(logger.NewWithWriter(io.Discard, "error")))
	NewRecipeHandler(svc).RegisterRoutes(&router.RouterGroup)
	return router
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = bytes.NewBufferString(b)
	default:
		data, err := json.Marshal(b)
		if err != nil {
			t.Fatalf("Failed to marshal body: %v", err)
		}
		reader = bytes.NewBuffer(data)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeErrors(t *testing.T, w *httptest.ResponseRecorder) []string {
	t.Helper()

	var resp struct {
		Error []string `json:"error"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Failed to decode error list from %s: %v", w.Body.String(), err)
	}
	return resp.Error
}

func pancakes() map[string]interface{} {
	return map[string]interface{}{
		"recipe_name": "Pancakes",
		"servings":    2,
		"ingredients": []map[string]interface{}{
			{"name": "Flour", "quantity": 2, "unit": "cup", "unit_cost": 1.5},
		},
	}
}

