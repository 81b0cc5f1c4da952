package usecase

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pos/src/billing/domain/entity"
	"pos/src/billing/infrastructure/session"
)

// billingStub implementa port.BillingPort contando las llamadas
type billingStub struct {
	calls int32
	fn    func(ctx context.Context, draft *entity.BillDraft) (*entity.FinalizedBill, error)
}

func (s *billingStub) CreateBill(ctx context.Context, draft *entity.BillDraft) (*entity.FinalizedBill, error) {
	atomic.AddInt32(&s.calls, 1)
	return s.fn(ctx, draft)
}

func sessionWithMilk(t *testing.T, store *session.Store) *entity.BillingSession {
	t.Helper()
	sess := store.Create()
	require.NoError(t, sess.Apply(func(c *entity.Cart) error {
		_, err := c.AddProduct(snapshotMilk())
		return err
	}))
	return sess
}

func TestFinalizeBill_CarritoVacioNoLlamaAlServidor(t *testing.T) {
	store := session.NewStore(decimal.NewFromInt(5))
	sess := store.Create()
	billing := &billingStub{fn: func(context.Context, *entity.BillDraft) (*entity.FinalizedBill, error) {
		return nil, nil
	}}
	uc := NewFinalizeBillUseCase(billing, store)

	resp, err := uc.Execute(context.Background(), sess.ID)
	require.NoError(t, err)
	assert.Zero(t, atomic.LoadInt32(&billing.calls), "carrito vacío no debe generar llamada de red")
	assert.Equal(t, entity.CartStateEmpty, resp.State)
	require.NotNil(t, resp.Notice)
	assert.Equal(t, entity.NoticeLevelWarning, resp.Notice.Level)
	assert.Equal(t, "Please add items to the bill", resp.Notice.Message)
}

func TestFinalizeBill_FalloMantieneElCarrito(t *testing.T) {
	store := session.NewStore(decimal.NewFromInt(5))
	sess := sessionWithMilk(t, store)
	require.NoError(t, sess.Apply(func(c *entity.Cart) error {
		return c.SetDiscount(decimal.NewFromInt(10))
	}))

	billing := &billingStub{fn: func(context.Context, *entity.BillDraft) (*entity.FinalizedBill, error) {
		return nil, &entity.TransportError{StatusCode: 500, Message: "insufficient stock for Milk 1L"}
	}}
	uc := NewFinalizeBillUseCase(billing, store)

	resp, err := uc.Execute(context.Background(), sess.ID)
	require.NoError(t, err)

	// Vuelve a Building con renglones y ajustes intactos; el aviso
	// lleva el mensaje del servidor
	assert.Equal(t, entity.CartStateBuilding, resp.State)
	require.Len(t, resp.Items, 1)
	assert.True(t, resp.Discount.Equal(decimal.NewFromInt(10)))
	require.NotNil(t, resp.Notice)
	assert.Equal(t, entity.NoticeLevelDanger, resp.Notice.Level)
	assert.Equal(t, "Failed to generate bill: insufficient stock for Milk 1L", resp.Notice.Message)
}

func TestFinalizeBill_ExitoFinalizaYResetea(t *testing.T) {
	store := session.NewStore(decimal.NewFromInt(5))
	sess := sessionWithMilk(t, store)
	require.NoError(t, sess.Apply(func(c *entity.Cart) error {
		if err := c.SetTaxRate(decimal.NewFromInt(12)); err != nil {
			return err
		}
		return c.SetDiscount(decimal.NewFromInt(500))
	}))

	var gotDraft *entity.BillDraft
	billing := &billingStub{fn: func(_ context.Context, draft *entity.BillDraft) (*entity.FinalizedBill, error) {
		gotDraft = draft
		return &entity.FinalizedBill{
			ID:         42,
			BillNumber: "BILL-0042",
			Total:      decimal.NewFromInt(0),
			CreatedAt:  time.Now(),
		}, nil
	}}
	uc := NewFinalizeBillUseCase(billing, store)

	resp, err := uc.Execute(context.Background(), sess.ID)
	require.NoError(t, err)

	// El draft lleva el descuento clampeado (min(500, 30) = 30)
	require.NotNil(t, gotDraft)
	require.Len(t, gotDraft.Items, 1)
	assert.Equal(t, "8901030700001", gotDraft.Items[0].Barcode)
	assert.True(t, gotDraft.Discount.Equal(decimal.NewFromInt(30)), "discount: %s", gotDraft.Discount)
	assert.True(t, gotDraft.TaxRate.Equal(decimal.NewFromInt(12)))

	assert.Equal(t, entity.CartStateFinalized, resp.State)
	require.NotNil(t, resp.Bill)
	assert.Equal(t, "BILL-0042", resp.Bill.BillNumber)
	assert.Empty(t, resp.Items)
	assert.True(t, resp.Discount.Equal(decimal.Zero))
	assert.True(t, resp.TaxRate.Equal(decimal.NewFromInt(5)), "vuelve a la tasa default")
	require.NotNil(t, resp.Notice)
	assert.Equal(t, "Bill generated successfully!", resp.Notice.Message)
}

func TestFinalizeBill_DobleFinalizeEnVuelo(t *testing.T) {
	store := session.NewStore(decimal.NewFromInt(5))
	sess := sessionWithMilk(t, store)

	inFlight := make(chan struct{})
	release := make(chan struct{})
	billing := &billingStub{fn: func(context.Context, *entity.BillDraft) (*entity.FinalizedBill, error) {
		close(inFlight)
		<-release
		return &entity.FinalizedBill{BillNumber: "BILL-0001", CreatedAt: time.Now()}, nil
	}}
	uc := NewFinalizeBillUseCase(billing, store)

	done := make(chan struct{})
	go func() {
		defer close(done)
		_, err := uc.Execute(context.Background(), sess.ID)
		assert.NoError(t, err)
	}()

	<-inFlight
	_, err := uc.Execute(context.Background(), sess.ID)
	assert.ErrorIs(t, err, entity.ErrCartSubmitting)

	close(release)
	<-done
	assert.Equal(t, int32(1), atomic.LoadInt32(&billing.calls))
}

// Con la finalización en vuelo, remove y new-bill deben rechazarse:
// el draft ya capturó los renglones y un reset sería pisado por el
// commit tardío de la factura.
func TestFinalizeBill_MutacionesRechazadasDuranteElEnvio(t *testing.T) {
	store := session.NewStore(decimal.NewFromInt(5))
	sess := sessionWithMilk(t, store)

	inFlight := make(chan struct{})
	release := make(chan struct{})
	billing := &billingStub{fn: func(context.Context, *entity.BillDraft) (*entity.FinalizedBill, error) {
		close(inFlight)
		<-release
		return &entity.FinalizedBill{BillNumber: "BILL-0002", CreatedAt: time.Now()}, nil
	}}

	done := make(chan struct{})
	go func() {
		defer close(done)
		_, err := NewFinalizeBillUseCase(billing, store).Execute(context.Background(), sess.ID)
		assert.NoError(t, err)
	}()

	<-inFlight
	_, err := NewRemoveItemUseCase(store).Execute(sess.ID, "8901030700001")
	assert.ErrorIs(t, err, entity.ErrCartSubmitting)
	_, err = NewNewBillUseCase(store).Execute(sess.ID)
	assert.ErrorIs(t, err, entity.ErrCartSubmitting)

	// El rechazo no tocó nada: la finalización termina normal
	close(release)
	<-done
	snap := sess.Snapshot()
	assert.Equal(t, entity.CartStateFinalized, snap.State)
	require.NotNil(t, snap.Bill)
	assert.Equal(t, "BILL-0002", snap.Bill.BillNumber)
}

func TestNewBill_DescartaLaFacturaYVuelveAEmpty(t *testing.T) {
	store := session.NewStore(decimal.NewFromInt(5))
	sess := sessionWithMilk(t, store)
	billing := &billingStub{fn: func(context.Context, *entity.BillDraft) (*entity.FinalizedBill, error) {
		return &entity.FinalizedBill{BillNumber: "BILL-0007", CreatedAt: time.Now()}, nil
	}}
	_, err := NewFinalizeBillUseCase(billing, store).Execute(context.Background(), sess.ID)
	require.NoError(t, err)

	resp, err := NewNewBillUseCase(store).Execute(sess.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.CartStateEmpty, resp.State)
	assert.Nil(t, resp.Bill)
	assert.Nil(t, resp.Notice, "new bill descarta el aviso vigente")
}
