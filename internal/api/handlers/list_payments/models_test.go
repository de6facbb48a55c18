package list_payments

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/washify/marketplace-service/internal/domain"
)

func TestParseFilter_AllParams(t *testing.T) {
	r := httptest.NewRequest("GET", "/api/payments?bookingId=2&businessId=5&status=PAID", nil)

	filter, err := ParseFilter(r, 20, 0)
	require.NoError(t, err)

	require.NotNil(t, filter.BookingID)
	assert.Equal(t, int64(2), *filter.BookingID)
	require.NotNil(t, filter.BusinessID)
	assert.Equal(t, int64(5), *filter.BusinessID)
	require.NotNil(t, filter.Status)
	assert.Equal(t, domain.PaymentPaid, *filter.Status)
	assert.Equal(t, uint64(20), filter.Limit)
}

func TestParseFilter_Empty(t *testing.T) {
	r := httptest.NewRequest("GET", "/api/payments", nil)

	filter, err := ParseFilter(r, 20, 10)
	require.NoError(t, err)
	assert.Nil(t, filter.BookingID)
	assert.Nil(t, filter.BusinessID)
	assert.Nil(t, filter.Status)
	assert.Equal(t, uint64(10), filter.Offset)
}

func TestParseFilter_InvalidBusinessID(t *testing.T) {
	r := httptest.NewRequest("GET", "/api/payments?businessId=abc", nil)

	_, err := ParseFilter(r, 20, 0)
	assert.Error(t, err)
}
