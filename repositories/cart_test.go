package repositories

import (
	"mongolshop/domain"
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_Cart_Empty_By_Default(t *testing.T) {
	req := require.New(t)
	db := openTestDB(t)

	repository := NewCartRepository(db)

	cart, err := repository.Load()
	req.NoError(err)
	req.True(cart.IsEmpty())
	req.Zero(cart.Total())
}

func Test_Cart_Save_Then_Load_Roundtrip(t *testing.T) {
	req := require.New(t)
	db := openTestDB(t)

	repository := NewCartRepository(db)
	cart := domain.Cart{Lines: []domain.CartLine{
		{Product: SeedCatalog[0], Quantity: 2},
		{Product: SeedCatalog[4], Quantity: 1},
	}}

	req.NoError(repository.Save(cart))

	loaded, err := repository.Load()
	req.NoError(err)
	req.Equal(cart, loaded)
	req.Equal(cart.Total(), loaded.Total())
}
