package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"inn/config"
	"inn/infras/kafka"
	"inn/infras/otel"
	"inn/internal/domains/booking/model"
	"inn/internal/domains/booking/model/dto"
	"inn/internal/domains/booking/repository"
	roomModel "inn/internal/domains/room/model"
	roomRepository "inn/internal/domains/room/repository"
	"inn/shared"
	"inn/shared/cache"
	"inn/shared/clock"
	"inn/shared/constant"
	gDto "inn/shared/dto"
	"inn/shared/failure"
	"inn/shared/metrics"
	"inn/shared/timezone"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetBooking      = "booking:get"
	cacheGetAllBooking   = "booking:gets"
	cacheCountBooking    = "booking:count"
	cacheOccupiedBooking = "booking:occupied"

	outcomeCreated  = "created"
	outcomeRejected = "rejected"
)

// RoomNone is returned when no room can host the requested stay.
// It is a normal negative result, not an error.
const RoomNone int64 = -1

type Booking interface {
	FindAvailableRoom(ctx context.Context, startDate, endDate time.Time) (int64, error)
	Create(ctx context.Context, req dto.CreateBookingRequest) (bool, error)
	FullyOccupiedDates(ctx context.Context, startDate, endDate time.Time) ([]time.Time, error)
	Cancel(ctx context.Context, id int64) error
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetBookingsResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id int64) (dto.BookingResponse, error)
}

type serviceImpl struct {
	repo     repository.Booking
	roomRepo roomRepository.Room
	cfg      *config.Config
	cache    cache.RedisCache
	otel     otel.Otel
	kafka    kafka.Client
	clock    clock.Clock

	// Serializes the availability check against the insert so two
	// concurrent requests cannot both claim the last free room.
	mu sync.Mutex
}

func New(
	repo repository.Booking,
	roomRepo roomRepository.Room,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
	kafkaClient kafka.Client,
	clk clock.Clock,
) Booking {
	return &serviceImpl{
		repo:     repo,
		roomRepo: roomRepo,
		cfg:      cfg,
		cache:    cache,
		otel:     otel,
		kafka:    kafkaClient,
		clock:    clk,
	}
}

func (s *serviceImpl) FindAvailableRoom(ctx context.Context, startDate, endDate time.Time) (res int64, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".FindAvailableRoom")
	defer scope.End()
	defer scope.TraceIfError(err)

	return s.findAvailableRoom(ctx, startDate, endDate)
}

func (s *serviceImpl) findAvailableRoom(ctx context.Context, startDate, endDate time.Time) (int64, error) {
	start := timezone.Date(startDate)
	end := timezone.Date(endDate)

	if !start.After(s.clock.Today()) {
		return RoomNone, failure.BadRequestFromString("start date must be after today") // nolint:wrapcheck
	}

	if start.After(end) {
		return RoomNone, failure.BadRequestFromString("start date must not be after end date") // nolint:wrapcheck
	}

	if max := s.cfg.Booking.MaxStayDays; max > 0 {
		stayDays := int(end.Sub(start).Hours()/24) + 1
		if stayDays > max {
			return RoomNone, failure.BadRequestFromString(fmt.Sprintf("stay must not exceed %d days", max)) // nolint:wrapcheck
		}
	}

	rooms, err := s.getRooms(ctx)
	if err != nil {
		return RoomNone, err
	}

	bookings, err := s.getActiveBookings(ctx, start, end)
	if err != nil {
		return RoomNone, err
	}

	occupied := map[int64]bool{}

	// Only active stays occupy a room; re-checked here alongside the
	// overlap even though the query already filters on both.
	for i := range bookings {
		if bookings[i].IsActive && bookings[i].Overlaps(start, end) {
			occupied[bookings[i].RoomID] = true
		}
	}

	for _, room := range rooms {
		if !occupied[room.ID] {
			return room.ID, nil
		}
	}

	return RoomNone, nil
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateBookingRequest) (created bool, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	booking, err := req.ToModel(constant.SystemUser)
	if err != nil {
		return false, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	roomID, err := s.findAvailableRoom(ctx, booking.StartDate, booking.EndDate)
	if err != nil {
		return false, err
	}

	if roomID == RoomNone {
		log.Info().
			Int64("customerID", booking.CustomerID).
			Str("startDate", timezone.Format(booking.StartDate, constant.DateFormat)).
			Str("endDate", timezone.Format(booking.EndDate, constant.DateFormat)).
			Msg("no room available for requested stay")

		s.publishDecision(ctx, s.cfg.Kafka.Topic.BookingRejected, outcomeRejected, booking)

		return false, nil
	}

	// Room assignment is authoritative from the availability search,
	// regardless of what the request carried.
	booking.RoomID = roomID

	if err = s.repo.Insert(ctx, booking); err != nil {
		return false, err
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllBooking)
		shared.InvalidateCaches(c, s.cache, cacheCountBooking)
		shared.InvalidateCaches(c, s.cache, cacheOccupiedBooking)
	}()

	s.publishDecision(ctx, s.cfg.Kafka.Topic.BookingCreated, outcomeCreated, booking)

	return true, nil
}

func (s *serviceImpl) FullyOccupiedDates(ctx context.Context, startDate, endDate time.Time) (res []time.Time, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".FullyOccupiedDates")
	defer scope.End()
	defer scope.TraceIfError(err)

	start := timezone.Date(startDate)
	end := timezone.Date(endDate)

	res = []time.Time{}

	// An inverted range is not an error; there is simply nothing to scan.
	if start.After(end) {
		return res, nil
	}

	cacheKey := shared.BuildCacheKey(cacheOccupiedBooking,
		timezone.Format(start, constant.DateFormat),
		timezone.Format(end, constant.DateFormat),
	)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for fully occupied dates")

		return res, nil
	}

	res = []time.Time{}

	rooms, err := s.getRooms(ctx)
	if err != nil {
		return nil, err
	}

	if len(rooms) == 0 {
		return res, nil
	}

	bookings, err := s.getActiveBookings(ctx, start, end)
	if err != nil {
		return nil, err
	}

	byRoom := map[int64][]model.Booking{}

	for _, booking := range bookings {
		if !booking.IsActive {
			continue
		}

		byRoom[booking.RoomID] = append(byRoom[booking.RoomID], booking)
	}

	for date := start; !date.After(end); date = date.AddDate(0, 0, 1) {
		if s.allRoomsCovered(rooms, byRoom, date) {
			res = append(res, date)
		}
	}

	occupied := res

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, occupied, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save fully occupied dates to cache")
		}
	}()

	return res, nil
}

// allRoomsCovered checks coverage room by room rather than comparing booking
// counts against the room total, so a double-booked room cannot mask a
// vacancy elsewhere.
func (s *serviceImpl) allRoomsCovered(rooms []roomModel.Room, byRoom map[int64][]model.Booking, date time.Time) bool {
	for _, room := range rooms {
		covered := false

		for i := range byRoom[room.ID] {
			if byRoom[room.ID][i].Covers(date) {
				covered = true

				break
			}
		}

		if !covered {
			return false
		}
	}

	return true
}

func (s *serviceImpl) Cancel(ctx context.Context, id int64) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Cancel")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check booking existence")

		return fmt.Errorf("failed to check booking existence: %w", err)
	}

	if !exist {
		return failure.NotFound("booking not found") // nolint:wrapcheck
	}

	fields := map[string]any{
		model.FieldIsActive:      false,
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: constant.SystemUser,
	}

	if err = s.repo.Update(ctx, fields, filter); err != nil {
		log.Error().Err(err).Msg("failed to cancel booking")

		return fmt.Errorf("failed to cancel booking: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetBooking, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete booking cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllBooking)
		shared.InvalidateCaches(c, s.cache, cacheCountBooking)
		shared.InvalidateCaches(c, s.cache, cacheOccupiedBooking)
	}()

	return nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	req.ApplyDefaults()

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllBooking, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for bookings")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return res, fmt.Errorf("failed to count bookings: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings")

		return res, fmt.Errorf("failed to get bookings: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save bookings to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountBooking, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for booking count")

		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return res, fmt.Errorf("failed to count bookings: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save booking count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id int64) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetBooking, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for booking")

		return res, nil
	}

	booking, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return res, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == 0 {
		return res, failure.NotFound("booking not found") // nolint:wrapcheck
	}

	res.FromModel(booking)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save booking to cache")
		}
	}()

	return res, nil
}

// getRooms lists every room in ascending id order, which is the tie-break
// order for availability search.
func (s *serviceImpl) getRooms(ctx context.Context) ([]roomModel.Room, error) {
	params := gDto.QueryParams{
		SortBy:  fmt.Sprintf("%s.%s", roomModel.TableName, roomModel.FieldID),
		SortDir: gDto.SortDirAsc,
	}

	rooms, err := s.roomRepo.GetAll(ctx, params, gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to get rooms")

		return nil, fmt.Errorf("failed to get rooms: %w", err)
	}

	return rooms, nil
}

// getActiveBookings fetches the active bookings whose stay intersects
// [start, end], both ends inclusive.
func (s *serviceImpl) getActiveBookings(ctx context.Context, start, end time.Time) ([]model.Booking, error) {
	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldIsActive,
				Value:    true,
				Operator: gDto.FilterOperatorEq,
				Table:    model.TableName,
			},
			gDto.Filter{
				Field:    model.FieldStartDate,
				Value:    end,
				Operator: gDto.FilterOperatorLessEq,
				Table:    model.TableName,
			},
			gDto.Filter{
				Field:    model.FieldEndDate,
				Value:    start,
				Operator: gDto.FilterOperatorGreaterEq,
				Table:    model.TableName,
			},
		},
	}

	bookings, err := s.repo.GetAll(ctx, gDto.QueryParams{}, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings")

		return nil, fmt.Errorf("failed to get bookings: %w", err)
	}

	return bookings, nil
}

func (s *serviceImpl) publishDecision(ctx context.Context, topic, outcome string, booking model.Booking) {
	metrics.IncBooking(outcome)

	event := dto.NewBookingEvent(booking)

	go func() {
		c := context.WithoutCancel(ctx)

		message := kafka.Message{
			Key:   event.EventID,
			Value: event,
		}

		if err := s.kafka.SendMessages(c, topic, message); err != nil {
			log.Error().Err(err).Str("topic", topic).Msg("failed to publish booking event")
		}
	}()
}
