package usecase

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pos/src/billing/domain/entity"
	"pos/src/billing/infrastructure/session"
)

func TestSetQuantity_PorEncimaDelStock(t *testing.T) {
	store := session.NewStore(decimal.NewFromInt(5))
	sess := store.Create()
	catalog := &catalogStub{fn: func(context.Context, string) (*entity.ProductSnapshot, error) {
		return snapshotMilk(), nil
	}}
	_, err := NewScanBarcodeUseCase(catalog, store).Execute(context.Background(), sess.ID, "8901030700001")
	require.NoError(t, err)

	// snapshotMilk tiene 10 unidades disponibles
	resp, err := NewSetQuantityUseCase(store).Execute(sess.ID, "8901030700001", 11)
	require.NoError(t, err)
	assert.Equal(t, 1, resp.Items[0].Quantity, "el renglón no cambia")
	require.NotNil(t, resp.Notice)
	assert.Equal(t, entity.NoticeLevelWarning, resp.Notice.Level)
	assert.Equal(t, "Only 10 units available", resp.Notice.Message)
}

func TestSetQuantity_CeroEliminaElRenglon(t *testing.T) {
	store := session.NewStore(decimal.NewFromInt(5))
	sess := store.Create()
	catalog := &catalogStub{fn: func(context.Context, string) (*entity.ProductSnapshot, error) {
		return snapshotMilk(), nil
	}}
	_, err := NewScanBarcodeUseCase(catalog, store).Execute(context.Background(), sess.ID, "8901030700001")
	require.NoError(t, err)

	resp, err := NewSetQuantityUseCase(store).Execute(sess.ID, "8901030700001", 0)
	require.NoError(t, err)
	assert.Empty(t, resp.Items)
	assert.Equal(t, entity.CartStateEmpty, resp.State)
}

func TestSetQuantity_RenglonInexistente(t *testing.T) {
	store := session.NewStore(decimal.NewFromInt(5))
	sess := store.Create()

	_, err := NewSetQuantityUseCase(store).Execute(sess.ID, "no-such-barcode", 1)
	assert.ErrorIs(t, err, entity.ErrLineItemNotFound)
}

func TestRemoveItem_EsIdempotenteANivelDeUseCase(t *testing.T) {
	store := session.NewStore(decimal.NewFromInt(5))
	sess := store.Create()
	catalog := &catalogStub{fn: func(context.Context, string) (*entity.ProductSnapshot, error) {
		return snapshotMilk(), nil
	}}
	_, err := NewScanBarcodeUseCase(catalog, store).Execute(context.Background(), sess.ID, "8901030700001")
	require.NoError(t, err)

	uc := NewRemoveItemUseCase(store)
	resp, err := uc.Execute(sess.ID, "8901030700001")
	require.NoError(t, err)
	assert.Empty(t, resp.Items)

	resp, err = uc.Execute(sess.ID, "8901030700001")
	require.NoError(t, err)
	assert.Empty(t, resp.Items)
}
