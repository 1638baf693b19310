package kafka

import (
	"bytes"
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"
	kafkaGo "github.com/segmentio/kafka-go"

	"inn/config"
	"inn/infras/kafka"
	bookingDto "inn/internal/domains/booking/model/dto"
	bookingService "inn/internal/domains/booking/service"
	"inn/shared/constant"
	"inn/shared/metrics"
	"inn/shared/validator"
)

type WorkerState int

const (
	WorkerStateReady WorkerState = iota + 1
	WorkerStateInGracePeriod
	WorkerStateInCleanupPeriod
)

// Worker consumes booking requests from the intake topic and drives them
// through the booking service. Decisions are published back by the service.
type Worker struct {
	Config  *config.Config
	Client  kafka.Client
	Booking bookingService.Booking
	State   WorkerState

	cancel context.CancelFunc
}

func New(cfg *config.Config, client kafka.Client, booking bookingService.Booking) *Worker {
	return &Worker{
		Config:  cfg,
		Client:  client,
		Booking: booking,
	}
}

func (w *Worker) Serve() {
	ctx, cancel := context.WithCancel(context.Background())
	w.cancel = cancel

	w.setupGracefulShutdown()
	w.State = WorkerStateReady

	topic := w.Config.Kafka.Topic.BookingRequested

	log.Info().Str("topic", topic).Msg("Starting up booking intake worker.")

	w.Client.Consume(ctx, w.Config.Kafka.ConsumerGroup, topic, w.handleBookingRequested)
}

func (w *Worker) handleBookingRequested(msg kafkaGo.Message) {
	ctx := context.Background()
	topic := w.Config.Kafka.Topic.BookingRequested

	metrics.IncMessage(topic)

	var req bookingDto.CreateBookingRequest

	err := validator.Validate(bytes.NewReader(msg.Value), &req)
	if err != nil {
		log.Error().Err(err).Str("key", string(msg.Key)).Msg("Discarding malformed booking request.")

		return
	}

	created, err := w.Booking.Create(ctx, req)
	if err != nil {
		log.Error().Err(err).Str("key", string(msg.Key)).Msg("Failed to process booking request.")

		return
	}

	log.Info().
		Str("key", string(msg.Key)).
		Int64("customerID", req.CustomerID).
		Bool("created", created).
		Msg("Processed booking request.")
}

func (w *Worker) setupGracefulShutdown() {
	workerStateCh := make(chan os.Signal, 1)

	signal.Notify(workerStateCh, os.Interrupt, syscall.SIGTERM)

	go w.respondToSigterm(workerStateCh)
}

func (w *Worker) respondToSigterm(done chan os.Signal) {
	<-done

	defer os.Exit(0)

	if w.Config.Server.Env == constant.ServerEnvDevelopment {
		log.Warn().Msg("Received SIGTERM. Shutting down now.")

		w.cancel()

		return
	}

	shutdownConfig := w.Config.Server.Shutdown

	log.Info().Msg("Received SIGTERM.")
	log.Info().Int64("seconds", shutdownConfig.GracePeriodSeconds).Msg("Entering grace period.")

	w.State = WorkerStateInGracePeriod

	time.Sleep(time.Duration(shutdownConfig.GracePeriodSeconds) * time.Second)

	log.Info().Int64("seconds", shutdownConfig.CleanupPeriodSeconds).Msg("Entering cleanup period.")

	w.State = WorkerStateInCleanupPeriod
	w.cancel()

	time.Sleep(time.Duration(shutdownConfig.CleanupPeriodSeconds) * time.Second)

	log.Info().Msg("Cleaning up completed. Shutting down now.")
}
