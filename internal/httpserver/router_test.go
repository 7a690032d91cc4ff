package httpserver

import (
	"context"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"shopadmin/internal/domain"
	sessionrepo "shopadmin/internal/repository/session"
	categorysvc "shopadmin/internal/service/category"
	productsvc "shopadmin/internal/service/product"
	"github.com/gin-gonic/gin"
)

func logDiscard() *log.Logger {
	return log.New(io.Discard, "", 0)
}

type stubSessions struct {
	sessions map[string]sessionrepo.Session
	err      error
}

func (s *stubSessions) Get(_ context.Context, token string) (*sessionrepo.Session, error) {
	if s.err != nil {
		return nil, s.err
	}
	sess, ok := s.sessions[token]
	if !ok {
		return nil, domain.ErrNotFound
	}
	clone := sess
	return &clone, nil
}

type stubCategoryService struct {
	listResult    []domain.Category
	resolveResult []domain.AttributeSchema
	created       *domain.Category
	updated       *domain.Category
	err           error

	deleteID    string
	deleteForce bool
	updateCalls int
	createCalls int
}

func (s *stubCategoryService) List(_ context.Context) ([]domain.Category, error) {
	return s.listResult, s.err
}

func (s *stubCategoryService) Create(_ context.Context, _ categorysvc.Input) (*domain.Category, error) {
	s.createCalls++
	return s.created, s.err
}

func (s *stubCategoryService) Update(_ context.Context, _ string, _ categorysvc.Input) (*domain.Category, error) {
	s.updateCalls++
	return s.updated, s.err
}

func (s *stubCategoryService) Delete(_ context.Context, id string, force bool) error {
	s.deleteID = id
	s.deleteForce = force
	return s.err
}

func (s *stubCategoryService) Resolve(_ context.Context, _ string) ([]domain.AttributeSchema, error) {
	return s.resolveResult, s.err
}

type stubProductService struct {
	listResult []domain.Product
	product    *domain.Product
	err        error

	createCalls int
	updateCalls int
	deleteID    string
}

func (s *stubProductService) List(_ context.Context) ([]domain.Product, error) {
	return s.listResult, s.err
}

func (s *stubProductService) Get(_ context.Context, _ string) (*domain.Product, error) {
	if s.product == nil && s.err == nil {
		return nil, domain.ErrNotFound
	}
	return s.product, s.err
}

func (s *stubProductService) Create(_ context.Context, _ productsvc.CreateInput) (*domain.Product, error) {
	s.createCalls++
	return s.product, s.err
}

func (s *stubProductService) Update(_ context.Context, _ string, _ productsvc.UpdateInput) (*domain.Product, error) {
	s.updateCalls++
	return s.product, s.err
}

func (s *stubProductService) Delete(_ context.Context, id string) error {
	s.deleteID = id
	return s.err
}

type stubOrderService struct {
	listResult []domain.Order
	err        error
}

func (s *stubOrderService) List(_ context.Context) ([]domain.Order, error) {
	return s.listResult, s.err
}

const (
	adminToken  = "admin-token"
	viewerToken = "viewer-token"
)

func testSessions() *stubSessions {
	return &stubSessions{sessions: map[string]sessionrepo.Session{
		adminToken:  {Token: adminToken, Email: "admin@example.com", ExpiresAt: time.Now().Add(time.Hour)},
		viewerToken: {Token: viewerToken, Email: "viewer@example.com", ExpiresAt: time.Now().Add(time.Hour)},
		"expired":   {Token: "expired", Email: "admin@example.com", ExpiresAt: time.Now().Add(-time.Minute)},
	}}
}

func testDeps() Deps {
	return Deps{
		CategorySvc: &stubCategoryService{},
		ProductSvc:  &stubProductService{},
		OrderSvc:    &stubOrderService{},
		Sessions:    testSessions(),
		AdminEmails: []string{"admin@example.com"},
	}
}

func newTestRouter(t *testing.T, deps Deps) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	router, err := buildRouter(logDiscard(), nil, deps)
	if err != nil {
		t.Fatalf("build router: %v", err)
	}
	return router
}

func doRequest(router *gin.Engine, method, target, token, body string) *httptest.ResponseRecorder {
	var rdr io.Reader
	if body != "" {
		rdr = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, rdr)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestRouter_RequiresSession(t *testing.T) {
	router := newTestRouter(t, testDeps())

	rec := doRequest(router, http.MethodGet, "/categories", "", "")

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d body=%s", rec.Code, rec.Body.String())
	}
}

func TestRouter_RejectsExpiredSession(t *testing.T) {
	router := newTestRouter(t, testDeps())

	rec := doRequest(router, http.MethodGet, "/categories", "expired", "")

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d body=%s", rec.Code, rec.Body.String())
	}
}

func TestRouter_ViewerCanRead(t *testing.T) {
	router := newTestRouter(t, testDeps())

	rec := doRequest(router, http.MethodGet, "/categories", viewerToken, "")

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", rec.Code, rec.Body.String())
	}
}

func TestRouter_ViewerCannotMutate(t *testing.T) {
	deps := testDeps()
	stub := deps.CategorySvc.(*stubCategoryService)
	router := newTestRouter(t, deps)

	rec := doRequest(router, http.MethodPost, "/categories", viewerToken, `{"name":"X"}`)

	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d body=%s", rec.Code, rec.Body.String())
	}
	if stub.createCalls != 0 {
		t.Fatalf("expected create not to be called")
	}
}

func TestRouter_AdminCanMutate(t *testing.T) {
	deps := testDeps()
	deps.CategorySvc = &stubCategoryService{created: &domain.Category{ID: "cat-1", Name: "X"}}
	router := newTestRouter(t, deps)

	rec := doRequest(router, http.MethodPost, "/categories", adminToken, `{"name":"X"}`)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d body=%s", rec.Code, rec.Body.String())
	}
}

func TestRouter_HealthzIsOpen(t *testing.T) {
	router := newTestRouter(t, testDeps())

	rec := doRequest(router, http.MethodGet, "/healthz", "", "")

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}
