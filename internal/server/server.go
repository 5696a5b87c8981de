package server

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/joho/godotenv"

	"github.com/sy4k1/gla-it-project/internal/database"
	"github.com/sy4k1/gla-it-project/internal/handlers"
	"github.com/sy4k1/gla-it-project/internal/logger"
	"github.com/sy4k1/gla-it-project/internal/mailer"
	"github.com/sy4k1/gla-it-project/internal/metrics"
	"github.com/sy4k1/gla-it-project/internal/services"
)

type Server struct {
	Router   *gin.Engine
	DB       *database.Database
	Redis    *redis.Client
	AccountH *handlers.AccountHandler
	PostH    *handlers.PostHandler
}

func NewServer() *Server {
	if err := godotenv.Load(".env.local"); err != nil {
		if err := godotenv.Load(); err != nil {
			log.Println(".env not found, using environment variables")
		}
	}

	level := os.Getenv("LOG_LEVEL")
	if level == "" {
		level = "info"
	}
	if err := logger.Initialize(level); err != nil {
		log.Fatalf("invalid LOG_LEVEL: %v", err)
	}

	dbConn := &database.Database{}
	if err := dbConn.Connect(); err != nil {
		log.Fatalf("Postgres connect failed: %v", err)
	}

	// Session cache is optional: without REDIS_URL every resolve goes to
	// the database.
	var rdb *redis.Client
	if url := os.Getenv("REDIS_URL"); url != "" {
		redisOpts, err := redis.ParseURL(url)
		if err != nil {
			log.Fatalf("invalid REDIS_URL: %v", err)
		}
		rdb = redis.NewClient(redisOpts)
		if err := rdb.Ping(context.Background()).Err(); err != nil {
			log.Fatalf("Redis connect failed: %v", err)
		}
	}

	var m mailer.Mailer = mailer.LogMailer{}
	if addr := os.Getenv("SMTP_ADDR"); addr != "" {
		m = mailer.NewSMTPMailer(addr, os.Getenv("SMTP_FROM"))
	}

	cache := services.NewSessionCache(rdb)
	credentials := services.NewCredentialService(dbConn, cache)
	sessions := services.NewSessionService(dbConn, cache)
	graph := services.NewGraphService(dbConn)
	notifications := services.NewNotificationService(dbConn)
	content := services.NewContentService(dbConn)

	accountH := handlers.NewAccountHandler(credentials, sessions, graph, notifications, m)
	postH := handlers.NewPostHandler(content, sessions, graph)

	router := gin.Default()
	router.Use(metrics.Middleware())
	APIEndpoints(router, accountH, postH)

	return &Server{
		Router:   router,
		DB:       dbConn,
		Redis:    rdb,
		AccountH: accountH,
		PostH:    postH,
	}
}

func (s *Server) Run() {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("Server starting on port %s", port)
	if err := s.Router.Run(":" + port); err != nil {
		log.Fatalf("Server run error: %v", err)
	}
}
