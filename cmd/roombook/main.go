package main

import (
	"context"
	"errors"
	"io"
	"log"
	"os"

	"github.com/joho/godotenv"

	"roombook/internal/cli"
	"roombook/internal/config"
	"roombook/internal/database"
	"roombook/internal/modules/booking"
	"roombook/internal/modules/directory"
	"roombook/internal/notification"
	"roombook/internal/repository"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()

	db, err := database.Connect(cfg.DatabaseDSN)
	if err != nil {
		log.Fatal(err)
	}

	if err := repository.Migrate(db); err != nil {
		log.Fatal("migrate failed: ", err)
	}

	userRepo := repository.NewUserRepository(db)
	bookingRepo := repository.NewBookingRepository(db)

	users := directory.NewService(userRepo)
	bookings := booking.NewService(bookingRepo)
	notifs := notification.NewConsoleSender(os.Stdout)

	loop := cli.New(bookings, users, notifs, os.Stdin, os.Stdout)
	if err := loop.Run(context.Background()); err != nil && !errors.Is(err, io.EOF) {
		log.Fatal(err)
	}
}
