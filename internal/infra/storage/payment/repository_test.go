package payment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/washify/marketplace-service/internal/domain"
	"github.com/washify/marketplace-service/pkg/psqlbuilder"
	"github.com/washify/marketplace-service/pkg/ptr"
)

func TestApplyPaymentsFilter_BusinessIDJoinsBookings(t *testing.T) {
	filter := domain.PaymentsFilter{BusinessID: ptr.Ptr(int64(5))}

	b := psqlbuilder.Select(paymentColumns).From("payments p")
	query, args, err := applyPaymentsFilter(b, filter).ToSql()

	require.NoError(t, err)
	assert.Contains(t, query, "JOIN bookings bk ON bk.id = p.booking_id")
	assert.Contains(t, query, "bk.business_id = $1")
	assert.Equal(t, []interface{}{int64(5)}, args)
}

func TestApplyPaymentsFilter_WithoutBusinessID(t *testing.T) {
	filter := domain.PaymentsFilter{
		BookingID: ptr.Ptr(int64(2)),
		Status:    ptr.Ptr(domain.PaymentPaid),
	}

	b := psqlbuilder.Select(paymentColumns).From("payments p")
	query, args, err := applyPaymentsFilter(b, filter).ToSql()

	require.NoError(t, err)
	assert.NotContains(t, query, "JOIN")
	assert.Contains(t, query, "p.booking_id = $1")
	assert.Contains(t, query, "p.status = $2")
	assert.Equal(t, []interface{}{int64(2), domain.PaymentPaid}, args)
}
