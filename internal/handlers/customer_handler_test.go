package handlers

import (
	"net/http"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func customerRouter(t *testing.T) (*gin.Engine, sqlmock.Sqlmock) {
	t.Helper()

	db, mock := setupMockDB(t)
	h := NewCustomerHandler(db, newDispatcher(db))

	r := authedRouter(testActor())
	r.POST("/customers", h.Create)
	r.GET("/customers", h.List)
	r.GET("/customers/:id", h.Get)
	return r, mock
}

func TestCreateCustomerMismatchedCampsPrices(t *testing.T) {
	r, _ := customerRouter(t)

	w := doJSON(t, r, http.MethodPost, "/customers", gin.H{
		"full_name": "Ayşe Yılmaz",
		"phone":     "+905551112233",
		"email":     "ayse@example.com",
		"camps":     []string{"A", "B"},
		"prices":    []float64{100.0},
	})

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "validation_error", decodeBody(t, w)["error_code"])
}

func TestCreateCustomerDanglingCode(t *testing.T) {
	r, mock := customerRouter(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT (.+) FROM "partnership_codes"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectRollback()

	w := doJSON(t, r, http.MethodPost, "/customers", gin.H{
		"full_name":        "Ayşe Yılmaz",
		"phone":            "+905551112233",
		"email":            "ayse@example.com",
		"partnership_code": "NOPE",
	})

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "invalid_reference", decodeBody(t, w)["error_code"])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateCustomerInactiveCode(t *testing.T) {
	r, mock := customerRouter(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT (.+) FROM "partnership_codes"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "code", "is_active"}).
			AddRow(3, "RETIRED", false))
	mock.ExpectRollback()

	w := doJSON(t, r, http.MethodPost, "/customers", gin.H{
		"full_name":        "Ayşe Yılmaz",
		"phone":            "+905551112233",
		"email":            "ayse@example.com",
		"partnership_code": "RETIRED",
	})

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "invalid_reference", decodeBody(t, w)["error_code"])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateCustomerWithoutCode(t *testing.T) {
	r, mock := customerRouter(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "customers"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(11))
	mock.ExpectCommit()

	w := doJSON(t, r, http.MethodPost, "/customers", gin.H{
		"full_name": "Ayşe Yılmaz",
		"phone":     "+905551112233",
		"email":     "ayse@example.com",
		"camps":     []string{"Winter"},
		"prices":    []float64{1500.0},
	})

	require.Equal(t, http.StatusCreated, w.Code)

	body := decodeBody(t, w)
	assert.Equal(t, float64(11), body["id"])
	assert.Nil(t, body["partnership_code"])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func deletedCustomerRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "full_name", "phone", "email",
		"camps", "prices", "is_paid", "is_deleted", "deleted_at",
	}).AddRow(
		7, "Mehmet Demir", "+905550001122", "mehmet@example.com",
		`["Winter","Spring"]`, `[1500,2000.5]`, true, true,
		time.Date(2025, time.March, 1, 10, 0, 0, 0, time.UTC),
	)
}

func TestListCustomersExcludesDeletedByDefault(t *testing.T) {
	r, mock := customerRouter(t)

	mock.ExpectQuery(`SELECT (.+) FROM "customers" WHERE is_deleted =`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "full_name", "is_deleted"}).
			AddRow(1, "Ayşe Yılmaz", false))

	w := doJSON(t, r, http.MethodGet, "/customers", nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(1), decodeBody(t, w)["total"])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetCustomerHiddenWhenDeleted(t *testing.T) {
	r, mock := customerRouter(t)

	mock.ExpectQuery(`SELECT (.+) FROM "customers" WHERE id = (.+) AND is_deleted =`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	w := doJSON(t, r, http.MethodGet, "/customers/7", nil)

	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "not_found", decodeBody(t, w)["error_code"])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetCustomerIncludeDeleted(t *testing.T) {
	r, mock := customerRouter(t)

	mock.ExpectQuery(`SELECT (.+) FROM "customers" WHERE id =`).
		WillReturnRows(deletedCustomerRows())

	w := doJSON(t, r, http.MethodGet, "/customers/7?include_deleted=true", nil)

	require.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	assert.Equal(t, true, body["is_deleted"])
	assert.NotNil(t, body["deleted_at"])
	assert.Equal(t, []any{"Winter", "Spring"}, body["camps"])
	assert.Equal(t, []any{1500.0, 2000.5}, body["prices"])
	assert.NoError(t, mock.ExpectationsWereMet())
}
