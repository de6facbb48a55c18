package handlers

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/washify/marketplace-service/internal/domain"
)

func TestNewPagination(t *testing.T) {
	p := NewPagination(25, 10, 0)
	assert.Equal(t, int64(25), p.Total)
	assert.True(t, p.HasMore)

	p = NewPagination(25, 10, 20)
	assert.False(t, p.HasMore)

	p = NewPagination(0, 10, 0)
	assert.False(t, p.HasMore)

	// offset+limit ровно total, следующей страницы нет
	p = NewPagination(20, 10, 10)
	assert.False(t, p.HasMore)
}

func TestParseLimitOffset_Defaults(t *testing.T) {
	r := httptest.NewRequest("GET", "/api/bookings", nil)
	limit, offset := ParseLimitOffset(r, 20)
	assert.Equal(t, uint64(20), limit)
	assert.Equal(t, uint64(0), offset)
}

func TestParseLimitOffset_Explicit(t *testing.T) {
	r := httptest.NewRequest("GET", "/api/bookings?limit=5&offset=15", nil)
	limit, offset := ParseLimitOffset(r, 20)
	assert.Equal(t, uint64(5), limit)
	assert.Equal(t, uint64(15), offset)
}

func TestParseLimitOffset_CapsLimit(t *testing.T) {
	r := httptest.NewRequest("GET", "/api/bookings?limit=10000", nil)
	limit, _ := ParseLimitOffset(r, 20)
	assert.Equal(t, uint64(domain.MaxLimit), limit)
}

func TestParseLimitOffset_IgnoresGarbage(t *testing.T) {
	r := httptest.NewRequest("GET", "/api/bookings?limit=abc&offset=-5", nil)
	limit, offset := ParseLimitOffset(r, 20)
	assert.Equal(t, uint64(20), limit)
	assert.Equal(t, uint64(0), offset)
}

func TestParseInt64Param(t *testing.T) {
	r := httptest.NewRequest("GET", "/api/services?businessId=7", nil)
	value, err := ParseInt64Param(r, "businessId")
	require.NoError(t, err)
	require.NotNil(t, value)
	assert.Equal(t, int64(7), *value)

	value, err = ParseInt64Param(r, "missing")
	require.NoError(t, err)
	assert.Nil(t, value)

	r = httptest.NewRequest("GET", "/api/services?businessId=abc", nil)
	_, err = ParseInt64Param(r, "businessId")
	assert.Error(t, err)
}

func TestParseFloatParam(t *testing.T) {
	r := httptest.NewRequest("GET", "/api/businesses?lat=40.78", nil)
	value, err := ParseFloatParam(r, "lat", 0)
	require.NoError(t, err)
	assert.Equal(t, 40.78, value)

	value, err = ParseFloatParam(r, "radius", 10)
	require.NoError(t, err)
	assert.Equal(t, 10.0, value)

	r = httptest.NewRequest("GET", "/api/businesses?lat=north", nil)
	_, err = ParseFloatParam(r, "lat", 0)
	assert.Error(t, err)
}
