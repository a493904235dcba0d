package receiving

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ilogush/backoffice-api/internal/application/dto"
	"github.com/ilogush/backoffice-api/internal/domain"
	"github.com/ilogush/backoffice-api/internal/domain/entity"
	"github.com/ilogush/backoffice-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Dobles de test
// ──────────────────────────────────────────────────────────────────────────────

type fakeReceiptRepo struct {
	receipts []*entity.Receipt
	items    []*entity.ReceiptItem
	failItem bool
}

func (r *fakeReceiptRepo) Create(receipt *entity.Receipt) error {
	r.receipts = append(r.receipts, receipt)
	return nil
}

func (r *fakeReceiptRepo) CreateItem(item *entity.ReceiptItem) error {
	if r.failItem {
		return errors.New("insert falló")
	}
	r.items = append(r.items, item)
	return nil
}

func (r *fakeReceiptRepo) GetByID(id string) (*entity.Receipt, error) {
	for _, rec := range r.receipts {
		if rec.ID == id {
			return rec, nil
		}
	}
	return nil, nil
}

func (r *fakeReceiptRepo) ListItems(receiptID string) ([]*entity.ReceiptItem, error) {
	var out []*entity.ReceiptItem
	for _, it := range r.items {
		if it.ReceiptID == receiptID {
			out = append(out, it)
		}
	}
	return out, nil
}

func (r *fakeReceiptRepo) List(limit, offset int) ([]*entity.Receipt, error) {
	return r.receipts, nil
}

type fakeProductRepo struct {
	products map[int64]*entity.Product
}

func (r *fakeProductRepo) Create(*entity.Product) (int64, error) { return 0, nil }
func (r *fakeProductRepo) GetByID(id int64) (*entity.Product, error) {
	return r.products[id], nil
}
func (r *fakeProductRepo) GetByArticle(string) (*entity.Product, error) { return nil, nil }
func (r *fakeProductRepo) List(int, int) ([]*entity.Product, error)    { return nil, nil }
func (r *fakeProductRepo) Update(*entity.Product) error                { return nil }

// fakeTxRunner pasa el repo al callback directamente. Si el callback falla,
// descarta lo escrito para emular el rollback de una transacción real.
type fakeTxRunner struct {
	repo *fakeReceiptRepo
}

func (r *fakeTxRunner) RunReceiving(_ context.Context, fn func(receiptRepo repository.ReceiptRepository) error) error {
	savedReceipts := len(r.repo.receipts)
	savedItems := len(r.repo.items)
	if err := fn(r.repo); err != nil {
		r.repo.receipts = r.repo.receipts[:savedReceipts]
		r.repo.items = r.repo.items[:savedItems]
		return err
	}
	return nil
}

func newTestUsecase(failItem bool) (*Usecase, *fakeReceiptRepo) {
	repo := &fakeReceiptRepo{failItem: failItem}
	products := &fakeProductRepo{products: map[int64]*entity.Product{
		1: {ID: 1, Article: "CAM-001", Name: "Camiseta básica", ColorID: 2, Price: decimal.NewFromInt(35000)},
		2: {ID: 2, Article: "PAN-001", Name: "Pantalón clásico", ColorID: 1, Price: decimal.NewFromInt(90000)},
	}}
	return NewUsecase(&fakeTxRunner{repo: repo}, repo, products), repo
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

func TestCreate_InsertaDocumentoYRenglones(t *testing.T) {
	uc, repo := newTestUsecase(false)

	out, err := uc.Create(context.Background(), "user-1", dto.CreateReceiptRequest{
		Note: "entrega proveedor",
		Items: []dto.ReceiptItemInput{
			{ProductID: 1, Size: "M", ColorID: 2, Quantity: 10},
			{ProductID: 2, Size: "L", ColorID: 1, Quantity: 5},
		},
	})
	require.NoError(t, err)
	require.NotNil(t, out)

	assert.NotEmpty(t, out.ID)
	assert.Equal(t, "user-1", out.CreatedBy)
	assert.Len(t, out.Items, 2)

	require.Len(t, repo.receipts, 1)
	require.Len(t, repo.items, 2)
	for _, it := range repo.items {
		assert.Equal(t, repo.receipts[0].ID, it.ReceiptID, "cada renglón debe referenciar el documento")
	}
}

func TestCreate_SinRenglonesEsInvalido(t *testing.T) {
	uc, _ := newTestUsecase(false)

	_, err := uc.Create(context.Background(), "user-1", dto.CreateReceiptRequest{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCreate_CantidadNoPositivaEsInvalida(t *testing.T) {
	uc, repo := newTestUsecase(false)

	for _, qty := range []int64{0, -3} {
		_, err := uc.Create(context.Background(), "user-1", dto.CreateReceiptRequest{
			Items: []dto.ReceiptItemInput{{ProductID: 1, Size: "M", ColorID: 2, Quantity: qty}},
		})
		assert.ErrorIs(t, err, domain.ErrInvalidInput, "cantidad %d debe rechazarse", qty)
	}
	assert.Empty(t, repo.receipts, "no debe escribirse nada ante renglones inválidos")
}

func TestCreate_TallaDesconocidaEsInvalida(t *testing.T) {
	uc, _ := newTestUsecase(false)

	_, err := uc.Create(context.Background(), "user-1", dto.CreateReceiptRequest{
		Items: []dto.ReceiptItemInput{{ProductID: 1, Size: "XXL", ColorID: 2, Quantity: 1}},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCreate_ProductoInexistenteRetornaNotFound(t *testing.T) {
	uc, repo := newTestUsecase(false)

	_, err := uc.Create(context.Background(), "user-1", dto.CreateReceiptRequest{
		Items: []dto.ReceiptItemInput{{ProductID: 999, Size: "M", ColorID: 2, Quantity: 1}},
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Empty(t, repo.receipts)
}

func TestCreate_FalloEnRenglonDeshaceTodo(t *testing.T) {
	uc, repo := newTestUsecase(true)

	_, err := uc.Create(context.Background(), "user-1", dto.CreateReceiptRequest{
		Items: []dto.ReceiptItemInput{{ProductID: 1, Size: "M", ColorID: 2, Quantity: 10}},
	})
	require.Error(t, err)
	assert.Empty(t, repo.receipts, "el documento no debe quedar sin sus renglones")
	assert.Empty(t, repo.items)
}

func TestGetByID_InexistenteRetornaNil(t *testing.T) {
	uc, _ := newTestUsecase(false)

	out, err := uc.GetByID("no-existe")
	require.NoError(t, err)
	assert.Nil(t, out)
}

func TestGetByID_IncluyeRenglones(t *testing.T) {
	uc, _ := newTestUsecase(false)

	created, err := uc.Create(context.Background(), "user-1", dto.CreateReceiptRequest{
		Items: []dto.ReceiptItemInput{
			{ProductID: 1, Size: "S", ColorID: 2, Quantity: 3},
			{ProductID: 1, Size: "M", ColorID: 2, Quantity: 7},
		},
	})
	require.NoError(t, err)

	out, err := uc.GetByID(created.ID)
	require.NoError(t, err)
	require.NotNil(t, out)
	assert.Len(t, out.Items, 2)
}

func TestValidSize(t *testing.T) {
	for _, s := range []string{"XS", "S", "M", "L", "XL", "2XL", "3XL"} {
		assert.True(t, ValidSize(s), "talla %s debe ser válida", s)
	}
	for _, s := range []string{"", "m", "XXL", "4XL", "38"} {
		assert.False(t, ValidSize(s), "talla %s debe rechazarse", s)
	}
}
