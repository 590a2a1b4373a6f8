package controller

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/lucasferr/pdv-varejo/internal/adapter/repository"
	productdomain "github.com/lucasferr/pdv-varejo/internal/domain/product"
	"github.com/lucasferr/pdv-varejo/pkg/logger"
)

// memDeleteProducts devolve um erro configurável no Delete; os demais
// métodos não são exercitados por estes testes
type memDeleteProducts struct {
	deleteErr error
}

func (m *memDeleteProducts) Create(ctx context.Context, p *productdomain.Product) error { return nil }

func (m *memDeleteProducts) FindByID(ctx context.Context, id string) (*productdomain.Product, error) {
	return nil, repository.ErrProductNotFound
}

func (m *memDeleteProducts) FindByBarcode(ctx context.Context, barcode string) (*productdomain.Product, error) {
	return nil, repository.ErrProductNotFound
}

func (m *memDeleteProducts) List(ctx context.Context, limit, offset int) ([]*productdomain.Product, error) {
	return nil, nil
}

func (m *memDeleteProducts) Search(ctx context.Context, term string, limit, offset int) ([]*productdomain.Product, error) {
	return nil, nil
}

func (m *memDeleteProducts) FindLowStock(ctx context.Context) ([]*productdomain.Product, error) {
	return nil, nil
}

func (m *memDeleteProducts) Update(ctx context.Context, p *productdomain.Product) error { return nil }
func (m *memDeleteProducts) Delete(ctx context.Context, id string) error                { return m.deleteErr }

func (m *memDeleteProducts) UpdateActive(ctx context.Context, id string, active bool) error {
	return nil
}

func (m *memDeleteProducts) AdjustStock(ctx context.Context, id string, delta int) (int, int, error) {
	return 0, 0, nil
}

func (m *memDeleteProducts) Count(ctx context.Context) (int, error) { return 0, nil }

func (m *memDeleteProducts) ExistsByBarcode(ctx context.Context, barcode string) (bool, error) {
	return false, nil
}

func deleteProduct(t *testing.T, deleteErr error) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)

	c := NewProductController(&memDeleteProducts{deleteErr: deleteErr}, logger.NewLogger())

	rec := httptest.NewRecorder()
	ctx, _ := gin.CreateTestContext(rec)
	ctx.Request = httptest.NewRequest(http.MethodDelete, "/products/p1", nil)
	ctx.Params = gin.Params{{Key: "id", Value: "p1"}}
	c.Delete(ctx)
	return rec
}

func TestDeleteProdutoComMovimentacoesRetornaConflito(t *testing.T) {
	rec := deleteProduct(t, repository.ErrProductInUse)
	if rec.Code != http.StatusConflict {
		t.Errorf("status = %d, esperado 409", rec.Code)
	}
}

func TestDeleteProdutoInexistenteRetorna404(t *testing.T) {
	rec := deleteProduct(t, repository.ErrProductNotFound)
	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, esperado 404", rec.Code)
	}
}

func TestDeleteProdutoComSucesso(t *testing.T) {
	rec := deleteProduct(t, nil)
	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, esperado 200", rec.Code)
	}
}
