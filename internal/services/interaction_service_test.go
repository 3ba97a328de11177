// internal/services/interaction_service_test.go
package services

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/javajoker/shopsmart-backend/internal/models"
)

func TestRecordRejectsUnknownAction(t *testing.T) {
	// A nil DB proves rejected actions never reach the store.
	svc := NewInteractionService(nil)

	_, err := svc.Record(uuid.New(), &RecordInteractionRequest{
		ProductID: 1,
		Action:    "browsed",
	})
	assert.ErrorIs(t, err, ErrInvalidAction)
}

func TestRecordRejectsMissingFields(t *testing.T) {
	svc := NewInteractionService(nil)

	_, err := svc.Record(uuid.New(), &RecordInteractionRequest{})
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalidAction)
}

func TestRecordRejectsOutOfRangeRating(t *testing.T) {
	svc := NewInteractionService(nil)

	rating := 7.5
	_, err := svc.Record(uuid.New(), &RecordInteractionRequest{
		ProductID: 1,
		Action:    "liked",
		Rating:    &rating,
	})
	assert.Error(t, err)
}

func expectProductLookup(mock sqlmock.Sqlmock, productID int64) {
	mock.ExpectQuery(`SELECT \* FROM "products" WHERE product_id = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"product_id", "name", "category"}).
			AddRow(productID, "Ceramic Planter", "Home"))
}

func expectInteractionInsert(mock sqlmock.Sqlmock) {
	mock.ExpectQuery(`INSERT INTO "interactions"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(uuid.NewString()))
}

func TestRecordViewedBumpsViewCount(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewInteractionService(db)

	expectProductLookup(mock, 1)
	expectInteractionInsert(mock)
	mock.ExpectExec(`UPDATE "products" SET "view_count"=view_count \+ 1 WHERE product_id = \$1`).
		WithArgs(int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	interaction, err := svc.Record(uuid.New(), &RecordInteractionRequest{
		ProductID: 1,
		Action:    "viewed",
		Duration:  12.5,
	})
	require.NoError(t, err)
	assert.Equal(t, models.ActionViewed, interaction.Action)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRecordPurchasedBumpsPurchaseCount(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewInteractionService(db)

	expectProductLookup(mock, 1)
	expectInteractionInsert(mock)
	mock.ExpectExec(`UPDATE "products" SET "purchase_count"=purchase_count \+ 1 WHERE product_id = \$1`).
		WithArgs(int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	_, err := svc.Record(uuid.New(), &RecordInteractionRequest{
		ProductID: 1,
		Action:    "purchased",
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRecordLikedAndAddedToCartBumpNoCounter(t *testing.T) {
	for _, action := range []string{"liked", "added_to_cart"} {
		db, mock := newMockDB(t)
		svc := NewInteractionService(db)

		expectProductLookup(mock, 1)
		expectInteractionInsert(mock)
		// No UPDATE is expected; an unexpected counter bump would fail the
		// mock and surface as an error here.

		_, err := svc.Record(uuid.New(), &RecordInteractionRequest{
			ProductID: 1,
			Action:    action,
		})
		require.NoError(t, err, action)
		assert.NoError(t, mock.ExpectationsWereMet(), action)
	}
}

func TestRecordUnknownProduct(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewInteractionService(db)

	mock.ExpectQuery(`SELECT \* FROM "products" WHERE product_id = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"product_id"}))

	_, err := svc.Record(uuid.New(), &RecordInteractionRequest{
		ProductID: 999,
		Action:    "viewed",
	})
	assert.ErrorIs(t, err, ErrProductNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
