// internal/services/product_service_test.go
package services

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newMockDB returns a gorm handle backed by sqlmock so the SQL the services
// generate can be asserted without a live database.
func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		SkipDefaultTransaction: true,
		DisableAutomaticPing:   true,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	return db, mock
}

func TestGetProductBumpsViewCountPerFetch(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewProductService(db)

	// Two fetches of the same product must bump the counter twice; there is
	// no de-duplication window.
	for i, stored := range []int{10, 11} {
		mock.ExpectQuery(`SELECT \* FROM "products" WHERE product_id = \$1`).
			WillReturnRows(sqlmock.NewRows([]string{"product_id", "name", "view_count"}).
				AddRow(int64(7), "Ceramic Planter", stored))
		mock.ExpectExec(`UPDATE "products" SET "view_count"=view_count \+ 1 WHERE product_id = \$1`).
			WithArgs(int64(7)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		product, err := svc.GetProduct(7, nil)
		require.NoError(t, err)
		assert.Equal(t, int64(stored+1), product.ViewCount, "fetch %d", i+1)
	}

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetProductRecordsViewForAuthenticatedUser(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewProductService(db)
	userID := uuid.New()

	mock.ExpectQuery(`SELECT \* FROM "products" WHERE product_id = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"product_id", "name", "view_count"}).
			AddRow(int64(7), "Ceramic Planter", 10))
	mock.ExpectExec(`UPDATE "products" SET "view_count"=view_count \+ 1 WHERE product_id = \$1`).
		WithArgs(int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(`INSERT INTO "interactions"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(uuid.NewString()))

	product, err := svc.GetProduct(7, &userID)
	require.NoError(t, err)
	assert.Equal(t, int64(11), product.ViewCount)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetProductUnknownID(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewProductService(db)

	mock.ExpectQuery(`SELECT \* FROM "products" WHERE product_id = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"product_id"}))

	_, err := svc.GetProduct(999, nil)
	assert.ErrorIs(t, err, ErrProductNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSimilarProductsShareCategoryExcludeSourceOrderByRatingThenViews(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewProductService(db)

	mock.ExpectQuery(`SELECT \* FROM "products" WHERE product_id = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"product_id", "name", "category", "rating"}).
			AddRow(int64(1), "Ceramic Planter", "Home", 4.5))
	mock.ExpectQuery(`SELECT \* FROM "products" WHERE category = \$1 AND product_id <> \$2 ORDER BY rating DESC, view_count DESC`).
		WillReturnRows(sqlmock.NewRows([]string{"product_id", "name", "category", "rating", "view_count"}).
			AddRow(int64(3), "Woven Basket", "Home", 4.8, 120).
			AddRow(int64(5), "Wall Clock", "Home", 4.8, 40))

	products, err := svc.GetSimilarProducts(1, 5)
	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.Equal(t, int64(3), products[0].ProductID)
	assert.Equal(t, int64(5), products[1].ProductID)
	for _, p := range products {
		assert.Equal(t, "Home", p.Category)
		assert.NotEqual(t, int64(1), p.ProductID)
	}
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSimilarProductsUnknownSource(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewProductService(db)

	mock.ExpectQuery(`SELECT \* FROM "products" WHERE product_id = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"product_id"}))

	_, err := svc.GetSimilarProducts(999, 5)
	assert.ErrorIs(t, err, ErrProductNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
