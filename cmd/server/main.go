package main

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/inkwell-blog/inkwell/internal/config"
	"github.com/inkwell-blog/inkwell/internal/database"
	postgresrepo "github.com/inkwell-blog/inkwell/internal/repository/postgres"
	"github.com/inkwell-blog/inkwell/internal/service"
	"github.com/inkwell-blog/inkwell/internal/transport/http/handlers"
	"github.com/inkwell-blog/inkwell/internal/transport/http/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	// Database
	if err := database.Migrate(context.Background(), cfg); err != nil {
		log.Fatal(err)
	}
	pool, err := database.Connect(cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer pool.Close()
	log.Println("Connected to database")

	// Repositories
	userRepo := postgresrepo.NewUserRepo(pool)
	followRepo := postgresrepo.NewFollowRepo(pool)
	postRepo := postgresrepo.NewPostRepo(pool)

	// Services
	authService := service.NewAuthService(userRepo, cfg.JWTSecret, cfg.SessionTTL())
	profileService := service.NewProfileService(userRepo)
	followService := service.NewFollowService(followRepo, userRepo)
	pageService := service.NewPageService(userRepo, postRepo, followRepo)

	// Handlers
	authHandler := handlers.NewAuthHandler(authService)
	profileHandler := handlers.NewProfileHandler(profileService, pageService)
	followHandler := handlers.NewFollowHandler(followService)
	pagesHandler := handlers.NewPagesHandler(pageService)

	requireUser := middleware.RequireUser

	// Routes
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status": "ok"}`))
	})
	mux.Handle("GET /metrics", promhttp.Handler())

	// Public
	mux.HandleFunc("GET /{$}", pagesHandler.Home)
	mux.HandleFunc("GET /error", pagesHandler.Error)
	mux.HandleFunc("GET /sign-up", authHandler.SignUpForm)
	mux.HandleFunc("POST /sign-up", authHandler.SignUp)
	mux.HandleFunc("GET /log-in", authHandler.LogInForm)
	mux.HandleFunc("POST /log-in", authHandler.LogIn)
	mux.HandleFunc("POST /log-out", authHandler.LogOut)

	// Protected
	mux.Handle("GET /read-profile", requireUser(http.HandlerFunc(profileHandler.Profile)))
	mux.Handle("POST /read-profile", requireUser(http.HandlerFunc(profileHandler.UpdateProfile)))
	mux.Handle("GET /dashboard", requireUser(http.HandlerFunc(pagesHandler.Dashboard)))
	mux.Handle("GET /author/{id}", requireUser(http.HandlerFunc(pagesHandler.Author)))
	mux.Handle("GET /follow/{id}", requireUser(http.HandlerFunc(followHandler.Follow)))
	mux.Handle("GET /unfollow/{id}", requireUser(http.HandlerFunc(followHandler.Unfollow)))

	identity := middleware.Identity(authService)

	addr := fmt.Sprintf(":%s", cfg.ServerPort)
	log.Printf("Starting server on %s", addr)
	log.Fatal(http.ListenAndServe(addr, middleware.Metrics(identity(mux))))
}
