package usecase

import (
	"context"
	"runtime"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pos/src/billing/domain/entity"
	"pos/src/billing/infrastructure/session"
)

// catalogStub implementa port.CatalogPort con una función inyectable
type catalogStub struct {
	calls int32
	fn    func(ctx context.Context, barcode string) (*entity.ProductSnapshot, error)
}

func (s *catalogStub) GetProductByBarcode(ctx context.Context, barcode string) (*entity.ProductSnapshot, error) {
	atomic.AddInt32(&s.calls, 1)
	return s.fn(ctx, barcode)
}

func snapshotMilk() *entity.ProductSnapshot {
	return &entity.ProductSnapshot{
		ID:       7,
		Name:     "Milk 1L",
		Barcode:  "8901030700001",
		Price:    decimal.NewFromInt(30),
		Quantity: 10,
		Status:   entity.ProductStatusInStock,
	}
}

func TestScanBarcode_AltaEIncremento(t *testing.T) {
	store := session.NewStore(decimal.NewFromInt(5))
	sess := store.Create()
	catalog := &catalogStub{fn: func(context.Context, string) (*entity.ProductSnapshot, error) {
		return snapshotMilk(), nil
	}}
	uc := NewScanBarcodeUseCase(catalog, store)

	resp, err := uc.Execute(context.Background(), sess.ID, "8901030700001")
	require.NoError(t, err)
	require.Len(t, resp.Items, 1)
	assert.Equal(t, 1, resp.Items[0].Quantity)
	assert.False(t, resp.ClearInput)
	require.NotNil(t, resp.Notice)
	assert.Equal(t, entity.NoticeLevelSuccess, resp.Notice.Level)
	assert.Equal(t, "Added Milk 1L to bill", resp.Notice.Message)

	resp, err = uc.Execute(context.Background(), sess.ID, "8901030700001")
	require.NoError(t, err)
	require.Len(t, resp.Items, 1)
	assert.Equal(t, 2, resp.Items[0].Quantity)
	require.NotNil(t, resp.Notice)
	assert.Equal(t, "Added 1 more Milk 1L", resp.Notice.Message)
}

func TestScanBarcode_EntradaVaciaEsNoOp(t *testing.T) {
	store := session.NewStore(decimal.NewFromInt(5))
	sess := store.Create()
	catalog := &catalogStub{fn: func(context.Context, string) (*entity.ProductSnapshot, error) {
		t.Fatal("no debería haber lookup para entrada vacía")
		return nil, nil
	}}
	uc := NewScanBarcodeUseCase(catalog, store)

	resp, err := uc.Execute(context.Background(), sess.ID, "   ")
	require.NoError(t, err)
	assert.Empty(t, resp.Items)
	assert.Zero(t, atomic.LoadInt32(&catalog.calls))
}

func TestScanBarcode_NoEncontradoLimpiaEntrada(t *testing.T) {
	store := session.NewStore(decimal.NewFromInt(5))
	sess := store.Create()
	catalog := &catalogStub{fn: func(context.Context, string) (*entity.ProductSnapshot, error) {
		return nil, entity.ErrProductNotFound
	}}
	uc := NewScanBarcodeUseCase(catalog, store)

	resp, err := uc.Execute(context.Background(), sess.ID, "0000000000000")
	require.NoError(t, err)
	assert.True(t, resp.ClearInput)
	assert.Empty(t, resp.Items)
	require.NotNil(t, resp.Notice)
	assert.Equal(t, entity.NoticeLevelDanger, resp.Notice.Level)
	assert.Equal(t, "Product not found with barcode: 0000000000000", resp.Notice.Message)
}

func TestScanBarcode_SinStockNoMutaYLimpia(t *testing.T) {
	store := session.NewStore(decimal.NewFromInt(5))
	sess := store.Create()
	catalog := &catalogStub{fn: func(context.Context, string) (*entity.ProductSnapshot, error) {
		p := snapshotMilk()
		p.Status = entity.ProductStatusOutOfStock
		return p, nil
	}}
	uc := NewScanBarcodeUseCase(catalog, store)

	resp, err := uc.Execute(context.Background(), sess.ID, "8901030700001")
	require.NoError(t, err)
	assert.True(t, resp.ClearInput)
	assert.Empty(t, resp.Items)
	require.NotNil(t, resp.Notice)
	assert.Equal(t, "Milk 1L is out of stock", resp.Notice.Message)
}

func TestScanBarcode_ErrorDeTransporteDejaElCarritoIntacto(t *testing.T) {
	store := session.NewStore(decimal.NewFromInt(5))
	sess := store.Create()

	ok := &catalogStub{fn: func(context.Context, string) (*entity.ProductSnapshot, error) {
		return snapshotMilk(), nil
	}}
	_, err := NewScanBarcodeUseCase(ok, store).Execute(context.Background(), sess.ID, "8901030700001")
	require.NoError(t, err)

	failing := &catalogStub{fn: func(context.Context, string) (*entity.ProductSnapshot, error) {
		return nil, &entity.TransportError{Message: "connection refused"}
	}}
	_, err = NewScanBarcodeUseCase(failing, store).Execute(context.Background(), sess.ID, "8901030700001")

	var tErr *entity.TransportError
	require.ErrorAs(t, err, &tErr)
	snap := sess.Snapshot()
	require.Len(t, snap.Items, 1)
	assert.Equal(t, 1, snap.Items[0].Quantity)
}

func TestScanBarcode_SesionCerradaDescartaElResultado(t *testing.T) {
	store := session.NewStore(decimal.NewFromInt(5))
	sess := store.Create()

	// El lookup "resuelve" después de que alguien cerró la sesión
	catalog := &catalogStub{fn: func(context.Context, string) (*entity.ProductSnapshot, error) {
		store.Delete(sess.ID)
		return snapshotMilk(), nil
	}}
	uc := NewScanBarcodeUseCase(catalog, store)

	_, err := uc.Execute(context.Background(), sess.ID, "8901030700001")
	assert.ErrorIs(t, err, entity.ErrSessionNotFound)
	// El resultado tardío no se aplica al objeto de la sesión desmontada
	assert.Empty(t, sess.Snapshot().Items)
}

// Dos escaneos rápidos del mismo barcode nuevo cuyos lookups resuelven
// fuera de orden deben terminar en UN solo renglón con cantidad 2,
// porque el commit siempre se aplica sobre el carrito vigente.
func TestScanBarcode_LookupsFueraDeOrden(t *testing.T) {
	store := session.NewStore(decimal.NewFromInt(5))
	sess := store.Create()

	// El primer lookup queda bloqueado hasta que el segundo termine
	firstBlocked := make(chan struct{})
	var callSeq int32
	catalog := &catalogStub{fn: func(context.Context, string) (*entity.ProductSnapshot, error) {
		if atomic.AddInt32(&callSeq, 1) == 1 {
			<-firstBlocked
		}
		return snapshotMilk(), nil
	}}
	uc := NewScanBarcodeUseCase(catalog, store)

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		_, err := uc.Execute(context.Background(), sess.ID, "8901030700001")
		assert.NoError(t, err)
	}()
	go func() {
		defer wg.Done()
		// Espera a que el primero ya esté bloqueado en el catálogo
		for atomic.LoadInt32(&callSeq) == 0 {
			runtime.Gosched()
		}
		_, err := uc.Execute(context.Background(), sess.ID, "8901030700001")
		assert.NoError(t, err)
		close(firstBlocked)
	}()
	wg.Wait()

	snap := sess.Snapshot()
	require.Len(t, snap.Items, 1, "dos commits del mismo barcode no deben duplicar el renglón")
	assert.Equal(t, 2, snap.Items[0].Quantity)
	assert.Equal(t, int32(2), atomic.LoadInt32(&callSeq))
}
