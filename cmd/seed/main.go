package main

import (
	"context"
	"flag"
	"strings"

	"github.com/rs/zerolog/log"

	"inn/config"
	"inn/di"
	roomDto "inn/internal/domains/room/model/dto"
	"inn/shared/logger"
	"inn/shared/validator"
)

// Seeds the room inventory. Rooms are reference data; the booking worker
// never creates them.
func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	descriptions := flag.String("rooms", "", "comma-separated room descriptions to seed")
	flag.Parse()

	if *descriptions == "" {
		log.Fatal().Msg("No rooms given. Use -rooms 'single street side,double garden view'.")
	}

	svc := di.InitializeRoomService()
	ctx := context.Background()

	for _, description := range strings.Split(*descriptions, ",") {
		req := roomDto.CreateRoomRequest{Description: strings.TrimSpace(description)}

		if err := validator.ValidateStruct(&req); err != nil {
			log.Fatal().Err(err).Str("description", req.Description).Msg("Invalid room description.")
		}

		if err := svc.Create(ctx, req); err != nil {
			log.Fatal().Err(err).Str("description", req.Description).Msg("Failed to seed room.")
		}

		log.Info().Str("description", req.Description).Msg("Seeded room.")
	}
}
