package controller

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"finlearn_backend/internal/curriculum"
	"finlearn_backend/internal/finmath"
	"finlearn_backend/internal/model"
	"finlearn_backend/internal/repository"
	"finlearn_backend/internal/service"
	"finlearn_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type mapKV struct {
	data map[string]string
}

func (m *mapKV) Get(ctx context.Context, key string) (string, error) {
	val, ok := m.data[key]
	if !ok {
		return "", repository.ErrKeyNotFound
	}
	return val, nil
}

func (m *mapKV) Set(ctx context.Context, key, value string) error {
	m.data[key] = value
	return nil
}

func modulesRouter(t *testing.T) (*gin.Engine, *repository.RecordRepository) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	records := repository.NewRecordRepository(&mapKV{data: make(map[string]string)})
	tables, err := finmath.NewTaxTables(finmath.DefaultRegimeSet())
	if err != nil {
		t.Fatal(err)
	}
	registry := finmath.NewRegistry(tables)

	curriculumSvc := service.NewCurriculumService(curriculum.Catalog(), registry, tables, nil)
	progressSvc := service.NewProgressService(records, curriculum.Catalog())
	ctrl := NewCurriculumController(curriculumSvc, progressSvc)

	router := gin.New()
	router.GET("/api/modules", func(c *gin.Context) {
		c.Set("user", &util.Claims{UserID: "u1"})
	}, ctrl.GetModules)
	return router, records
}

func TestGetModulesMissingProfile(t *testing.T) {
	router, _ := modulesRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/modules", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}
	var body struct {
		Success bool   `json:"success"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatal(err)
	}
	if body.Success || body.Error != "profile not found" {
		t.Errorf("body = %+v, want failure envelope with profile not found", body)
	}
}

func TestGetModulesSeededProfile(t *testing.T) {
	router, records := modulesRouter(t)
	if err := records.SaveProfile(context.Background(), "u1", model.ProfileRecord{ID: "u1"}); err != nil {
		t.Fatal(err)
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/modules", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	var body struct {
		Success bool                   `json:"success"`
		Modules []service.ModuleStatus `json:"modules"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatal(err)
	}
	if !body.Success || len(body.Modules) == 0 {
		t.Fatalf("body = %+v, want success with modules", body)
	}
	if !body.Modules[0].Unlocked {
		t.Error("first module must be unlocked for a fresh profile")
	}
}
