package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	authapi "green-wheels/internal/auth/api"
	authapp "green-wheels/internal/auth/app"
	"green-wheels/internal/auth/jwt"
	"green-wheels/internal/cascade"
	chatapi "green-wheels/internal/chat/api"
	chatapp "green-wheels/internal/chat/app"
	chatdomain "green-wheels/internal/chat/domain"
	communityapi "green-wheels/internal/community/api"
	communityapp "green-wheels/internal/community/app"
	communitydomain "green-wheels/internal/community/domain"
	evaluationapi "green-wheels/internal/evaluation/api"
	evaluationapp "green-wheels/internal/evaluation/app"
	evaluationdomain "green-wheels/internal/evaluation/domain"
	"green-wheels/internal/event"
	profileapi "green-wheels/internal/profile/api"
	profileapp "green-wheels/internal/profile/app"
	profiledomain "green-wheels/internal/profile/domain"
	reservationapi "green-wheels/internal/reservation/api"
	reservationapp "green-wheels/internal/reservation/app"
	reservationdomain "green-wheels/internal/reservation/domain"
	rideapi "green-wheels/internal/ride/api"
	rideapp "green-wheels/internal/ride/app"
	ridedomain "green-wheels/internal/ride/domain"
	"green-wheels/internal/shared/config"
	"green-wheels/internal/shared/health"
	"green-wheels/internal/shared/middleware"
	"green-wheels/internal/shared/util"
	"green-wheels/internal/storage"
	userapi "green-wheels/internal/user/api"
	userapp "green-wheels/internal/user/app"
	userdomain "green-wheels/internal/user/domain"
)

func main() {
	log := util.New()

	log.Info("GreenWheels", "Starting service initialization...")

	cfg, err := config.LoadConfig("config.yaml")
	if err != nil {
		log.Fatal("Config", fmt.Errorf("failed to load configuration: %w", err))
	}
	log.OK("Config", "Configuration loaded successfully")

	var (
		store storage.Persistence
		ping  health.PingFunc
	)
	switch cfg.Storage.Driver {
	case "postgres":
		pg, err := storage.ConnectPostgres(context.Background(), &cfg.Storage)
		if err != nil {
			log.Fatal("Storage", err)
		}
		defer pg.Close()
		store = pg
		ping = pg.Ping
		log.OK("Storage", "Connected to postgres")
	default:
		store = storage.NewFilePersistence(cfg.Storage.Path)
		log.OK("Storage", fmt.Sprintf("Using file store at %s", cfg.Storage.Path))
	}

	db, err := storage.NewDatabase(store)
	if err != nil {
		log.Fatal("Storage", err)
	}

	users := mustTable[userdomain.User](db, storage.UsersTable, log)
	communities := mustTable[communitydomain.Community](db, storage.CommunitiesTable, log)
	profiles := mustTable[profiledomain.Profile](db, storage.ProfilesTable, log)
	rides := mustTable[ridedomain.Ride](db, storage.RidesTable, log)
	reservations := mustTable[reservationdomain.Reservation](db, storage.ReservationsTable, log)
	messages := mustTable[chatdomain.Message](db, storage.MessagesTable, log)
	evaluations := mustTable[evaluationdomain.Evaluation](db, storage.EvaluationsTable, log)

	ttl, err := strconv.Atoi(cfg.Auth.TokenTTLMinutes)
	if err != nil || ttl <= 0 {
		ttl = 60
	}
	tokens := jwt.NewTokenManager(cfg.Auth.Secret, time.Duration(ttl)*time.Minute)

	bus := event.NewBus(log)

	// Subscriber construction order fixes the dispatch order: evaluations are
	// created before the chat prompts referencing them, and the cascade runs
	// after the domain services.
	userService := userapp.NewUserService(users, bus, log)
	profileService := profileapp.NewProfileService(profiles, bus, log)
	communityService := communityapp.NewCommunityService(communities)
	reservationService := reservationapp.NewReservationService(reservations, bus, log)
	rideService := rideapp.NewRideService(rides, bus, reservationService, userService, log)
	evaluationService := evaluationapp.NewEvaluationService(evaluations, bus, log)

	hub := chatapi.NewHub(log)
	chatService := chatapp.NewChatService(messages, bus, hub, log)

	cascade.New(rides, reservations, bus, log)

	authService := authapp.NewAuthService(userService, tokens, log)

	authenticate := authapi.Authenticate(tokens)

	mux := http.NewServeMux()
	authapi.NewHandler(authService, log).RegisterRoutes(mux)
	userapi.NewHandler(userService, log).RegisterRoutes(mux, authenticate)
	profileapi.NewHandler(profileService, log).RegisterRoutes(mux, authenticate)
	communityapi.NewHandler(communityService).RegisterRoutes(mux)
	rideapi.NewHandler(rideService, userService, profileService, log).RegisterRoutes(mux, authenticate)
	reservationapi.NewHandler(reservationService, rideService, userService, log).RegisterRoutes(mux, authenticate)
	evaluationapi.NewHandler(evaluationService, chatService, log).RegisterRoutes(mux, authenticate)
	chatapi.NewHandler(chatService, userService, hub, log).RegisterRoutes(mux, authenticate, tokens)
	health.NewHandler(ping).RegisterRoutes(mux)

	server := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: middleware.RequestID(mux),
	}

	go func() {
		log.OK("HTTP", fmt.Sprintf("green-wheels running on :%s", cfg.Server.Port))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("HTTP", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Warn("GreenWheels", "Shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error("HTTP", err)
	} else {
		log.OK("HTTP", "Server stopped gracefully")
	}
	log.Info("GreenWheels", "Shutdown complete")
}

func mustTable[T any, P interface {
	*T
	storage.Row
}](db *storage.Database, name string, log *util.Logger) *storage.Table[T, P] {
	table, err := storage.NewTable[T, P](db, name)
	if err != nil {
		log.Fatal("Storage", err)
	}
	return table
}
