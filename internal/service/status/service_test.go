package status

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avdeev-lv/SM-ReservationService/internal/domain"
	"github.com/avdeev-lv/SM-ReservationService/internal/integrations/listingservice"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type fakeListingClient struct {
	listing *listingservice.Listing
	err     error
}

func (c *fakeListingClient) GetListing(ctx context.Context, listingID int64) (*listingservice.Listing, error) {
	if c.err != nil {
		return nil, c.err
	}
	return c.listing, nil
}

type fakeResolver struct {
	status domain.AvailabilityStatus
	err    error

	keys []string
}

func (r *fakeResolver) Resolve(key string, schedule domain.WeekSchedule) (domain.AvailabilityStatus, error) {
	r.keys = append(r.keys, key)
	return r.status, r.err
}

func testListing() *listingservice.Listing {
	hours := make([]listingservice.DayHours, 7)
	for i := range hours {
		hours[i] = listingservice.DayHours{DayOfWeek: i, OpenTime: "09:00", CloseTime: "21:00"}
	}
	return &listingservice.Listing{
		ID:           42,
		BusinessName: "Салон Люкс",
		Employees:    []listingservice.Employee{{ID: 10, FullName: "Анна Петрова"}},
		StoreHours:   hours,
	}
}

func TestGetListingStatus(t *testing.T) {
	resolver := &fakeResolver{status: domain.AvailabilityStatus{Message: "Open", Severity: domain.SeverityGreen}}
	svc := NewService(&fakeListingClient{listing: testListing()}, resolver, nopLogger{})

	resp, err := svc.GetListingStatus(context.Background(), 42)
	require.NoError(t, err)
	assert.Equal(t, "Open", resp.Message)
	assert.Equal(t, "green", resp.Severity)
	assert.Equal(t, []string{"listing:42"}, resolver.keys)
}

func TestGetProviderStatus(t *testing.T) {
	resolver := &fakeResolver{status: domain.AvailabilityStatus{Message: "Closing", Severity: domain.SeverityOrange}}
	svc := NewService(&fakeListingClient{listing: testListing()}, resolver, nopLogger{})
	ctx := context.Background()

	resp, err := svc.GetProviderStatus(ctx, 42, 10)
	require.NoError(t, err)
	assert.Equal(t, "Closing", resp.Message)
	assert.Equal(t, "orange", resp.Severity)
	// Статус мастера отслеживается под собственным ключом
	assert.Equal(t, []string{"listing:42:provider:10"}, resolver.keys)

	_, err = svc.GetProviderStatus(ctx, 42, 999)
	assert.ErrorIs(t, err, ErrProviderNotFound)
}

func TestListingErrors(t *testing.T) {
	resolver := &fakeResolver{}
	ctx := context.Background()

	svc := NewService(&fakeListingClient{err: listingservice.ErrListingNotFound}, resolver, nopLogger{})
	_, err := svc.GetListingStatus(ctx, 42)
	assert.ErrorIs(t, err, ErrListingNotFound)

	svc = NewService(&fakeListingClient{err: errors.New("connection refused")}, resolver, nopLogger{})
	_, err = svc.GetListingStatus(ctx, 42)
	assert.ErrorIs(t, err, ErrListingUnavailable)
}

func TestResolverFailure(t *testing.T) {
	resolver := &fakeResolver{err: errors.New("malformed schedule")}
	svc := NewService(&fakeListingClient{listing: testListing()}, resolver, nopLogger{})

	_, err := svc.GetListingStatus(context.Background(), 42)
	assert.ErrorIs(t, err, ErrInternal)
}
