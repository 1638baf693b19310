package dto_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"inn/internal/domains/booking/model/dto"
	"inn/shared/failure"
	"inn/shared/timezone"
)

func TestCreateBookingRequest_ToModel(t *testing.T) {
	tests := []struct {
		name    string
		req     dto.CreateBookingRequest
		wantErr bool
	}{
		{
			name: "valid request",
			req: dto.CreateBookingRequest{
				CustomerID: 5,
				StartDate:  "2026-09-10",
				EndDate:    "2026-09-12",
			},
		},
		{
			name: "bad start date",
			req: dto.CreateBookingRequest{
				CustomerID: 5,
				StartDate:  "10/09/2026",
				EndDate:    "2026-09-12",
			},
			wantErr: true,
		},
		{
			name: "bad end date",
			req: dto.CreateBookingRequest{
				CustomerID: 5,
				StartDate:  "2026-09-10",
				EndDate:    "someday",
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			booking, err := tt.req.ToModel("system")
			if tt.wantErr {
				assert.Error(t, err)
				assert.True(t, failure.IsBadRequest(err))

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, int64(5), booking.CustomerID)
			assert.True(t, booking.IsActive)
			assert.Equal(t, "system", booking.CreatedBy)

			// Stay boundaries are normalized to midnight.
			assert.Equal(t, 0, booking.StartDate.Hour())
			assert.Equal(t, 0, booking.EndDate.Hour())
			assert.Equal(t, 10, booking.StartDate.Day())
			assert.Equal(t, 12, booking.EndDate.Day())
		})
	}
}

func TestNewBookingEvent(t *testing.T) {
	booking, err := (&dto.CreateBookingRequest{
		CustomerID: 5,
		StartDate:  "2026-09-10",
		EndDate:    "2026-09-12",
	}).ToModel("system")
	assert.NoError(t, err)

	booking.RoomID = 2

	event := dto.NewBookingEvent(booking)

	assert.NotEmpty(t, event.EventID)
	assert.Equal(t, int64(5), event.CustomerID)
	assert.Equal(t, int64(2), event.RoomID)
	assert.Equal(t, "2026-09-10", event.StartDate)
	assert.Equal(t, "2026-09-12", event.EndDate)
	assert.NotEmpty(t, event.OccurredAt)
}

func TestBookingOverlapHelpers(t *testing.T) {
	start := timezone.Date(time.Date(2026, time.September, 10, 0, 0, 0, 0, time.UTC))
	end := start.AddDate(0, 0, 5)

	booking, err := (&dto.CreateBookingRequest{
		CustomerID: 5,
		StartDate:  "2026-09-10",
		EndDate:    "2026-09-15",
	}).ToModel("system")
	assert.NoError(t, err)

	assert.True(t, booking.Overlaps(start, end))
	assert.True(t, booking.Overlaps(end, end.AddDate(0, 0, 3)))
	assert.True(t, booking.Overlaps(start.AddDate(0, 0, -3), start))
	assert.False(t, booking.Overlaps(end.AddDate(0, 0, 1), end.AddDate(0, 0, 4)))
	assert.False(t, booking.Overlaps(start.AddDate(0, 0, -4), start.AddDate(0, 0, -1)))

	assert.True(t, booking.Covers(start.AddDate(0, 0, 2)))
	assert.False(t, booking.Covers(end.AddDate(0, 0, 1)))
}
