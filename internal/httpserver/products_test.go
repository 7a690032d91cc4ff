package httpserver

import (
	"encoding/json"
	"net/http"
	"testing"

	"shopadmin/internal/domain"
)

func TestCreateProduct_Created(t *testing.T) {
	deps := testDeps()
	deps.ProductSvc = &stubProductService{product: &domain.Product{ID: "prod-1", Title: "Runner", Price: 89.99}}
	router := newTestRouter(t, deps)

	rec := doRequest(router, http.MethodPost, "/products", adminToken, `{"title":"Runner","price":89.99}`)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d body=%s", rec.Code, rec.Body.String())
	}
	var body domain.Product
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal body: %v", err)
	}
	if body.ID != "prod-1" || body.Title != "Runner" {
		t.Fatalf("unexpected body %+v", body)
	}
}

func TestUpdateProduct_NonStringImageEntryRejectedBeforeService(t *testing.T) {
	deps := testDeps()
	stub := deps.ProductSvc.(*stubProductService)
	router := newTestRouter(t, deps)

	rec := doRequest(router, http.MethodPut, "/products/prod-1", adminToken, `{"title":"X","price":1,"images":["ok",7]}`)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d body=%s", rec.Code, rec.Body.String())
	}
	var body map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal body: %v", err)
	}
	if body["error"] != "validation_error" {
		t.Fatalf("expected validation_error kind, got %v", body["error"])
	}
	if stub.updateCalls != 0 {
		t.Fatalf("expected stored product untouched, update was called")
	}
}

func TestUpdateProduct_NonFlatPropertiesRejected(t *testing.T) {
	deps := testDeps()
	stub := deps.ProductSvc.(*stubProductService)
	router := newTestRouter(t, deps)

	rec := doRequest(router, http.MethodPut, "/products/prod-1", adminToken, `{"title":"X","price":1,"properties":{"size":{"eu":"42"}}}`)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d body=%s", rec.Code, rec.Body.String())
	}
	if stub.updateCalls != 0 {
		t.Fatalf("expected stored product untouched, update was called")
	}
}

func TestGetProduct_NotFound(t *testing.T) {
	router := newTestRouter(t, testDeps())

	rec := doRequest(router, http.MethodGet, "/products/missing", viewerToken, "")

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d body=%s", rec.Code, rec.Body.String())
	}
}

func TestDeleteProduct_PassesID(t *testing.T) {
	deps := testDeps()
	stub := deps.ProductSvc.(*stubProductService)
	router := newTestRouter(t, deps)

	rec := doRequest(router, http.MethodDelete, "/products/prod-9", adminToken, "")

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", rec.Code, rec.Body.String())
	}
	if stub.deleteID != "prod-9" {
		t.Fatalf("expected delete of prod-9, got %q", stub.deleteID)
	}
}

func TestListProducts_EmptyIsJSONArray(t *testing.T) {
	router := newTestRouter(t, testDeps())

	rec := doRequest(router, http.MethodGet, "/products", viewerToken, "")

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if rec.Body.String() != "[]" {
		t.Fatalf("expected empty array body, got %s", rec.Body.String())
	}
}
