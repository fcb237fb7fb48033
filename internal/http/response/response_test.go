package response

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestErrorCarriesRequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Set("request_id", "req-1")

	NotFound(c, "producto no encontrado")

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status want 404 got %d", rec.Code)
	}
	var body ErrorBody
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body failed: %v", err)
	}
	if body.Error != "producto no encontrado" || body.RequestID != "req-1" {
		t.Fatalf("unexpected body: %+v", body)
	}
}

func TestErrorRejectsSuccessStatus(t *testing.T) {
	gin.SetMode(gin.TestMode)
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)

	Error(c, http.StatusOK, "boom")

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("non-error status should become 500, got %d", rec.Code)
	}
}

func TestAppErrorUnwrap(t *testing.T) {
	cause := errors.New("db down")
	err := WrapError(CodeInternal, "no se pudo guardar", cause)
	if !errors.Is(err, cause) {
		t.Fatalf("wrapped error should unwrap to cause")
	}
	if err.Error() != "no se pudo guardar: db down" {
		t.Fatalf("unexpected message: %s", err.Error())
	}
}

func TestResolveAppError(t *testing.T) {
	code, msg := ResolveAppError(WrapError(CodeConflict, "conflicto", nil))
	if code != CodeConflict || msg != "conflicto" {
		t.Fatalf("unexpected resolve: %d %s", code, msg)
	}
	code, _ = ResolveAppError(errors.New("plain"))
	if code != CodeInternal {
		t.Fatalf("plain errors should map to 500, got %d", code)
	}
}
