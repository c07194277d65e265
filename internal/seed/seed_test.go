package seed

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"medsupply/internal/domain"
	"medsupply/internal/repository"
	"medsupply/internal/service"
)

func TestLoad(t *testing.T) {
	ctx := context.Background()
	log := zap.NewNop()
	store := repository.NewMemoryStore()
	vendorsRepo := repository.NewMemoryVendors(store)
	stock := repository.NewMemoryStock(store)
	tx := repository.NewMemoryTx(store)
	vs := service.NewVendorService(vendorsRepo, repository.NewMemoryOrders(store), store, stock, tx, log)
	catalog := service.NewCatalogService(repository.NewMemoryBatches(store), vendorsRepo, store, stock, tx, log)
	inventory := service.NewInventoryService(store, stock, vs, tx, log)

	require.NoError(t, Load(ctx, catalog, inventory))

	v, err := catalog.GetVendor(ctx, "V002")
	require.NoError(t, err)
	assert.Equal(t, "Globex Inc", v.Name)

	entries, err := inventory.List(ctx)
	require.NoError(t, err)
	assert.Len(t, entries, len(medicines))

	// loading twice collides on vendor ids
	err = Load(ctx, catalog, inventory)
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)
}
