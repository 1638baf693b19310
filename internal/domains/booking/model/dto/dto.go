package dto

import (
	"inn/internal/domains/booking/model"
	"inn/shared"
	"inn/shared/constant"
	gDto "inn/shared/dto"
	"inn/shared/failure"
	gModel "inn/shared/model"
	"inn/shared/timezone"

	"github.com/google/uuid"
)

type CreateBookingRequest struct {
	CustomerID int64  `json:"customer_id" validate:"required,gte=1"`
	RoomID     int64  `json:"room_id"     validate:"omitempty,gte=1"`
	StartDate  string `json:"start_date"  validate:"required,datetime=2006-01-02"`
	EndDate    string `json:"end_date"    validate:"required,datetime=2006-01-02"`
}

// ToModel parses the requested stay into a date-only booking. The room id is
// carried over as a hint only; availability search assigns the final room.
func (c *CreateBookingRequest) ToModel(user string) (model.Booking, error) {
	start, err := timezone.Parse(constant.DateFormat, c.StartDate)
	if err != nil {
		return model.Booking{}, failure.BadRequestFromString("start date must be a valid calendar date") // nolint:wrapcheck
	}

	end, err := timezone.Parse(constant.DateFormat, c.EndDate)
	if err != nil {
		return model.Booking{}, failure.BadRequestFromString("end date must be a valid calendar date") // nolint:wrapcheck
	}

	return model.Booking{
		CustomerID: c.CustomerID,
		RoomID:     c.RoomID,
		StartDate:  timezone.Date(start),
		EndDate:    timezone.Date(end),
		IsActive:   true,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}, nil
}

type BookingResponse struct {
	ID         int64  `json:"id"`
	CustomerID int64  `json:"customer_id"`
	RoomID     int64  `json:"room_id"`
	StartDate  string `json:"start_date"`
	EndDate    string `json:"end_date"`
	IsActive   bool   `json:"is_active"`
	gDto.Metadata
}

func (r *BookingResponse) FromModel(model model.Booking) {
	r.ID = model.ID
	r.CustomerID = model.CustomerID
	r.RoomID = model.RoomID
	r.StartDate = timezone.Format(model.StartDate, constant.DateFormat)
	r.EndDate = timezone.Format(model.EndDate, constant.DateFormat)
	r.IsActive = model.IsActive
	r.Metadata.FromModel(model.Metadata)
}

type GetBookingsResponse struct {
	Bookings  []BookingResponse `json:"bookings"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetBookingsResponse) FromModels(models []model.Booking, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Bookings = make([]BookingResponse, len(models))
	for i, mod := range models {
		r.Bookings[i].FromModel(mod)
	}
}

// BookingEvent is the payload published after a booking request is decided.
type BookingEvent struct {
	EventID    string `json:"event_id"`
	CustomerID int64  `json:"customer_id"`
	RoomID     int64  `json:"room_id"`
	StartDate  string `json:"start_date"`
	EndDate    string `json:"end_date"`
	OccurredAt string `json:"occurred_at"`
}

func NewBookingEvent(booking model.Booking) BookingEvent {
	return BookingEvent{
		EventID:    uuid.NewString(),
		CustomerID: booking.CustomerID,
		RoomID:     booking.RoomID,
		StartDate:  timezone.Format(booking.StartDate, constant.DateFormat),
		EndDate:    timezone.Format(booking.EndDate, constant.DateFormat),
		OccurredAt: timezone.Format(timezone.Now(), constant.DateTimeFormat),
	}
}
