package get_time_slots

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avdeev-lv/SM-ReservationService/internal/integrations/listingservice"
)

type fakeTimeProvider struct {
	now time.Time
}

func (p *fakeTimeProvider) Now() time.Time {
	return p.now
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type fakeListingClient struct {
	err error
}

func (c *fakeListingClient) GetListing(ctx context.Context, listingID int64) (*listingservice.Listing, error) {
	if c.err != nil {
		return nil, c.err
	}
	return &listingservice.Listing{ID: listingID, BusinessName: "Салон Люкс"}, nil
}

func newTestUseCase(clientErr error) (*UseCase, *fakeTimeProvider) {
	clock := &fakeTimeProvider{now: time.Date(2026, 2, 2, 10, 15, 0, 0, time.UTC)}
	uc := NewUseCase(&fakeListingClient{err: clientErr}, nopLogger{})
	uc.timeProvider = clock
	return uc, clock
}

func TestExecuteValidation(t *testing.T) {
	uc, clock := newTestUseCase(nil)
	ctx := context.Background()

	_, err := uc.Execute(ctx, &Request{ListingID: 0, Date: clock.now})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(ctx, &Request{ListingID: 42})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(ctx, &Request{ListingID: 42, Date: clock.now.AddDate(0, 0, -1)})
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestExecuteListingErrors(t *testing.T) {
	uc, clock := newTestUseCase(listingservice.ErrListingNotFound)
	_, err := uc.Execute(context.Background(), &Request{ListingID: 42, Date: clock.now})
	assert.ErrorIs(t, err, ErrListingNotFound)

	uc, clock = newTestUseCase(errors.New("connection refused"))
	_, err = uc.Execute(context.Background(), &Request{ListingID: 42, Date: clock.now})
	assert.ErrorIs(t, err, ErrListingUnavailable)
}

func TestExecuteTodayMarksBufferedSlots(t *testing.T) {
	uc, clock := newTestUseCase(nil)

	// Сейчас 10:15: доступны только слоты строго позже 11:15, то есть с 12:00
	resp, err := uc.Execute(context.Background(), &Request{ListingID: 42, Date: clock.now})
	require.NoError(t, err)
	require.Len(t, resp.Slots, 9)

	expected := map[string]bool{
		"09:00": false,
		"10:00": false,
		"11:00": false,
		"12:00": true,
		"13:00": true,
		"14:00": true,
		"15:00": true,
		"16:00": true,
		"17:00": true,
	}
	for _, slot := range resp.Slots {
		assert.Equal(t, expected[slot.Time.String()], slot.Bookable, "slot %s", slot.Time)
	}
}

func TestExecuteFutureDateAllBookable(t *testing.T) {
	uc, clock := newTestUseCase(nil)

	resp, err := uc.Execute(context.Background(), &Request{ListingID: 42, Date: clock.now.AddDate(0, 0, 1)})
	require.NoError(t, err)
	require.Len(t, resp.Slots, 9)

	assert.Equal(t, "09:00", resp.Slots[0].Time.String())
	assert.Equal(t, "17:00", resp.Slots[8].Time.String())
	for _, slot := range resp.Slots {
		assert.True(t, slot.Bookable, "slot %s", slot.Time)
	}
}
