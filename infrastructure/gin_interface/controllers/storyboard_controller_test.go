package controllers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"generate-reel-service/application/services"
	"generate-reel-service/infrastructure/adapters"
	"generate-reel-service/infrastructure/gin_interface/dto"
)

type fixedRandom struct{}

func (fixedRandom) Intn(_ int) int { return 0 }

func (fixedRandom) Token() string { return "abc123" }

func newStoryboardRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	logger := adapters.NewZerologWrapper()
	controller := NewStoryboardController(logger, services.NewStoryboardGenerator(logger, fixedRandom{}))
	router := gin.New()
	controller.RegisterRoutes(router)
	return router
}

func TestStoryboardController_CreateStoryboard(t *testing.T) {
	router := newStoryboardRouter()

	body := `{"idea":"Launch day","audience":"founders","tone":"direct","length":"short","call_to_action":"Subscribe"}`
	req := httptest.NewRequest(http.MethodPost, "/storyboard", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatal("status:", rec.Code, rec.Body.String())
	}

	var res dto.StoryboardResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
		t.Fatal("response decode:", err)
	}
	if len(res.Scenes) != 3 {
		t.Fatal("scene count:", len(res.Scenes))
	}
	if res.Scenes[0].Title != "Launch day" {
		t.Error("first title:", res.Scenes[0].Title)
	}
	if res.Scenes[2].CTA != "Subscribe" {
		t.Error("last CTA:", res.Scenes[2].CTA)
	}
	if res.Scenes[0].Background.Kind != "gradient" {
		t.Error("background kind:", res.Scenes[0].Background.Kind)
	}
}

func TestStoryboardController_MissingRequiredFields(t *testing.T) {
	router := newStoryboardRouter()

	req := httptest.NewRequest(http.MethodPost, "/storyboard", bytes.NewBufferString(`{"idea":"x"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatal("status:", rec.Code)
	}
}

func TestStoryboardController_ExportImportRoundTrip(t *testing.T) {
	router := newStoryboardRouter()

	// Generate a storyboard first so the export payload is realistic.
	req := httptest.NewRequest(http.MethodPost, "/storyboard",
		bytes.NewBufferString(`{"tone":"playful","length":"medium"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatal("generate status:", rec.Code)
	}

	exportReq := httptest.NewRequest(http.MethodPost, "/storyboard/export", bytes.NewBuffer(rec.Body.Bytes()))
	exportReq.Header.Set("Content-Type", "application/json")
	exportRec := httptest.NewRecorder()
	router.ServeHTTP(exportRec, exportReq)
	if exportRec.Code != http.StatusOK {
		t.Fatal("export status:", exportRec.Code, exportRec.Body.String())
	}
	if got := exportRec.Header().Get("Content-Type"); got != "application/x-yaml" {
		t.Error("export content type:", got)
	}

	importReq := httptest.NewRequest(http.MethodPost, "/storyboard/import", bytes.NewBuffer(exportRec.Body.Bytes()))
	importRec := httptest.NewRecorder()
	router.ServeHTTP(importRec, importReq)
	if importRec.Code != http.StatusOK {
		t.Fatal("import status:", importRec.Code, importRec.Body.String())
	}

	var original, restored dto.StoryboardResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &original); err != nil {
		t.Fatal("original decode:", err)
	}
	if err := json.Unmarshal(importRec.Body.Bytes(), &restored); err != nil {
		t.Fatal("restored decode:", err)
	}
	if len(restored.Scenes) != len(original.Scenes) {
		t.Fatal("scene count changed in transit")
	}
	for i := range original.Scenes {
		if restored.Scenes[i] != original.Scenes[i] {
			t.Errorf("scene %d changed in transit:\n got %#v\nwant %#v", i, restored.Scenes[i], original.Scenes[i])
		}
	}
}
