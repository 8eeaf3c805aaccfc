package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/google/uuid"

	"github.com/ghuser/stockroom/pkg/auth"
	"github.com/ghuser/stockroom/pkg/config"
	"github.com/ghuser/stockroom/pkg/logger"
	appsvcs "github.com/ghuser/stockroom/services/product/application/services"
	productdomain "github.com/ghuser/stockroom/services/product/domain"
	"github.com/ghuser/stockroom/services/product/domain/models"
)

// memRepo is an in-memory ProductRepository preserving insertion order.
type memRepo struct {
	mu        sync.Mutex
	order     []uuid.UUID
	records   map[uuid.UUID]*models.Product
	searchErr error
}

func newMemRepo() *memRepo {
	return &memRepo{records: map[uuid.UUID]*models.Product{}}
}

func (m *memRepo) Save(_ context.Context, p *models.Product) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.records[p.ID]; ok {
		return productdomain.ErrProductAlreadyExists
	}
	m.records[p.ID] = p
	m.order = append(m.order, p.ID)
	return nil
}

func (m *memRepo) GetByID(_ context.Context, id uuid.UUID) (*models.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.records[id]
	if !ok {
		return nil, productdomain.ErrProductNotFound
	}
	return p, nil
}

func (m *memRepo) Search(_ context.Context, term string) ([]*models.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.searchErr != nil {
		return nil, m.searchErr
	}
	term = strings.ToLower(term)
	out := make([]*models.Product, 0, len(m.order))
	for _, id := range m.order {
		p := m.records[id]
		if term == "" ||
			strings.Contains(strings.ToLower(p.Title.String()), term) ||
			strings.Contains(strings.ToLower(p.Description), term) {
			out = append(out, p)
		}
	}
	return out, nil
}

func (m *memRepo) Update(_ context.Context, p *models.Product) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.records[p.ID]; !ok {
		return productdomain.ErrProductNotFound
	}
	m.records[p.ID] = p
	return nil
}

func (m *memRepo) Delete(_ context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.records[id]; !ok {
		return productdomain.ErrProductNotFound
	}
	delete(m.records, id)
	for i, oid := range m.order {
		if oid == id {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}
	return nil
}

func (m *memRepo) Exists(_ context.Context, id uuid.UUID) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.records[id]
	return ok, nil
}

func (m *memRepo) count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.records)
}

func newTestServices(repo *memRepo) *appsvcs.Services {
	svc := appsvcs.NewProductService(repo, nil)
	return &appsvcs.Services{
		Product:     svc,
		Importer:    appsvcs.NewImporter(svc),
		BulkDeleter: appsvcs.NewBulkDeleter(svc),
	}
}

func testLogger() logger.Logger {
	return logger.New(&config.Config{LogLevel: "error"})
}

var testAdmin = auth.Actor{ID: uuid.New(), Role: auth.RoleAdmin}

func seed(t *testing.T, svc *appsvcs.Services, title, category string, price float64) *models.Product {
	t.Helper()
	p, err := svc.Product.Create(context.Background(), testAdmin, appsvcs.ProductFields{
		Title:    title,
		Category: category,
		Price:    price,
		Quantity: 1,
	})
	if err != nil {
		t.Fatalf("seed %q: %v", title, err)
	}
	return p
}

func asAdmin(r *http.Request) *http.Request {
	return r.WithContext(auth.WithActor(r.Context(), testAdmin))
}

func TestGetProducts_RendersFilteredSortedPage(t *testing.T) {
	repo := newMemRepo()
	svcs := newTestServices(repo)

	seed(t, svcs, "Monitor", "electronics", 199.00)
	seed(t, svcs, "Mouse", "electronics", 24.99)
	seed(t, svcs, "Novel", "books", 12.50)
	seed(t, svcs, "Keyboard", "electronics", 89.99)

	h := NewGetProductsHandler(svcs, testLogger())
	r := httptest.NewRequest(http.MethodGet, "/products?category=electronics&price=under-100&sort=price-asc", nil)
	w := httptest.NewRecorder()
	h.Execute(w, r)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body)
	}

	var resp ListProductsResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("bad response JSON: %v", err)
	}
	if resp.Total != 2 {
		t.Fatalf("Total: got %d, want 2", resp.Total)
	}
	if len(resp.Products) != 2 || resp.Products[0].Title != "Mouse" || resp.Products[1].Title != "Keyboard" {
		t.Fatalf("unexpected page: %+v", resp.Products)
	}
}

func TestGetProducts_Pagination(t *testing.T) {
	repo := newMemRepo()
	svcs := newTestServices(repo)
	for i := 0; i < 7; i++ {
		seed(t, svcs, fmt.Sprintf("Record %02d", i), "other", float64(i))
	}

	h := NewGetProductsHandler(svcs, testLogger())

	t.Run("second page holds the remainder", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/products?page=2", nil)
		w := httptest.NewRecorder()
		h.Execute(w, r)

		var resp ListProductsResponse
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("bad response JSON: %v", err)
		}
		if resp.Page != 2 || resp.TotalPages != 2 || len(resp.Products) != 2 {
			t.Fatalf("unexpected pagination: %+v", resp)
		}
	})

	t.Run("out-of-range page clamps", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/products?page=9", nil)
		w := httptest.NewRecorder()
		h.Execute(w, r)

		var resp ListProductsResponse
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("bad response JSON: %v", err)
		}
		if resp.Page != 2 {
			t.Fatalf("expected clamp to last page 2, got %d", resp.Page)
		}
	})
}

func TestGetProducts_InvalidQueryParams(t *testing.T) {
	h := NewGetProductsHandler(newTestServices(newMemRepo()), testLogger())

	for _, q := range []string{"category=gadgets", "price=under-1000", "sort=cheapest", "page=0", "page=x"} {
		t.Run(q, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, "/products?"+q, nil)
			w := httptest.NewRecorder()
			h.Execute(w, r)
			if w.Code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d", w.Code)
			}
		})
	}
}

func TestGetProducts_FailsSoftOnStoreError(t *testing.T) {
	repo := newMemRepo()
	svcs := newTestServices(repo)
	repo.searchErr = fmt.Errorf("connection refused")

	h := NewGetProductsHandler(svcs, testLogger())
	r := httptest.NewRequest(http.MethodGet, "/products", nil)
	w := httptest.NewRecorder()
	h.Execute(w, r)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 on degraded fetch, got %d", w.Code)
	}
	var resp ListProductsResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("bad response JSON: %v", err)
	}
	if resp.Total != 0 || resp.Page != 1 || resp.TotalPages != 1 {
		t.Fatalf("expected empty page 1 of 1, got %+v", resp)
	}
}

func TestBulkDelete_ExplicitIDs(t *testing.T) {
	repo := newMemRepo()
	svcs := newTestServices(repo)
	a := seed(t, svcs, "A", "other", 1)
	b := seed(t, svcs, "B", "other", 2)
	seed(t, svcs, "C", "other", 3)

	body := fmt.Sprintf(`{"ids":[%q,%q]}`, a.ID, b.ID)
	r := asAdmin(httptest.NewRequest(http.MethodPost, "/products/bulk-delete", strings.NewReader(body)))
	r.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	NewBulkDeleteHandler(svcs, testLogger()).Execute(w, r)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body)
	}
	var resp BulkDeleteResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("bad response JSON: %v", err)
	}
	if resp.Deleted != 2 {
		t.Fatalf("Deleted: got %d, want 2", resp.Deleted)
	}
	if repo.count() != 1 {
		t.Fatalf("expected 1 record left, got %d", repo.count())
	}
}

func TestBulkDelete_SelectAllHonorsFilter(t *testing.T) {
	repo := newMemRepo()
	svcs := newTestServices(repo)
	seed(t, svcs, "Cheap Book", "books", 9.99)
	seed(t, svcs, "Pricey Book", "books", 75.00)
	survivor := seed(t, svcs, "Gadget", "electronics", 19.99)

	body := `{"select_all":true,"category":"books"}`
	r := asAdmin(httptest.NewRequest(http.MethodPost, "/products/bulk-delete", strings.NewReader(body)))
	r.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	NewBulkDeleteHandler(svcs, testLogger()).Execute(w, r)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body)
	}
	if repo.count() != 1 {
		t.Fatalf("expected only the electronics record left, got %d", repo.count())
	}
	if ok, _ := repo.Exists(context.Background(), survivor.ID); !ok {
		t.Fatal("record outside the filter was deleted")
	}
}

func TestBulkDelete_RequiresAuth(t *testing.T) {
	svcs := newTestServices(newMemRepo())

	r := httptest.NewRequest(http.MethodPost, "/products/bulk-delete", strings.NewReader(`{"ids":[]}`))
	r.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	NewBulkDeleteHandler(svcs, testLogger()).Execute(w, r)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
}

func TestPostProduct_CreateAndRoleGate(t *testing.T) {
	repo := newMemRepo()
	svcs := newTestServices(repo)
	h := NewPostProductHandler(svcs)

	body := `{"title":"Keyboard","category":"electronics","price":89.99,"quantity":12}`

	t.Run("admin creates", func(t *testing.T) {
		r := asAdmin(httptest.NewRequest(http.MethodPost, "/products", strings.NewReader(body)))
		r.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		h.Execute(w, r)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body)
		}
		if repo.count() != 1 {
			t.Fatalf("expected 1 record, got %d", repo.count())
		}
	})

	t.Run("non-admin gets 403", func(t *testing.T) {
		viewer := auth.Actor{ID: uuid.New(), Role: auth.RoleUser}
		r := httptest.NewRequest(http.MethodPost, "/products", strings.NewReader(body))
		r = r.WithContext(auth.WithActor(r.Context(), viewer))
		r.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		h.Execute(w, r)

		if w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d: %s", w.Code, w.Body)
		}
	})
}

func TestImportProducts_EndToEnd(t *testing.T) {
	repo := newMemRepo()
	svcs := newTestServices(repo)

	payload := strings.Join([]string{
		"title,description,category,price,quantity,image",
		"Keyboard,,electronics,89.99,12,",
		"Broken,,electronics,abc,1,",
		"Novel,,books,12.50,40,",
	}, "\n")

	r := asAdmin(httptest.NewRequest(http.MethodPost, "/products/import", strings.NewReader(payload)))
	w := httptest.NewRecorder()
	NewImportProductsHandler(svcs, testLogger()).Execute(w, r)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body)
	}
	var resp ImportProductsResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("bad response JSON: %v", err)
	}
	if resp.Succeeded != 2 || resp.Failed != 1 {
		t.Fatalf("got succeeded=%d failed=%d, want 2/1", resp.Succeeded, resp.Failed)
	}
	if resp.Error == "" {
		t.Fatal("expected first row error reported")
	}
	if repo.count() != 2 {
		t.Fatalf("expected 2 records persisted, got %d", repo.count())
	}
}
