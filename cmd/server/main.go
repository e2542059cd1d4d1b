package main

import (
	"log"
	"strconv"
	"time"

	"github.com/pienas/amongus/internal/config"
	"github.com/pienas/amongus/internal/database"
	"github.com/pienas/amongus/internal/handlers"
	"github.com/pienas/amongus/internal/middleware"
	"github.com/pienas/amongus/internal/services"
	"github.com/pienas/amongus/internal/watcher"
	"github.com/pienas/amongus/internal/ws"

	_ "github.com/pienas/amongus/docs"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title           Among Us LARP API
// @version         1.0
// @description     Game-state coordination API for the live-action game: player registry, tasks, sabotages, meetings and win tracking
// @host            localhost:8080
// @BasePath        /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Enter "Bearer {token}"

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using environment")
	}

	cfg := config.Load()

	db := database.Connect(cfg)
	database.AutoMigrate(db)
	database.SeedTasks(db)

	hub := ws.NewHub()

	logService := services.NewLogService(db)
	authService := services.NewAuthService(db, cfg.JWTSecret)
	gameService := services.NewGameService(db, logService)
	playerService := services.NewPlayerService(db, gameService, logService)
	sabotageService := services.NewSabotageService(db, gameService, logService)
	meetingService := services.NewMeetingService(db, gameService, logService)

	deduction, err := strconv.Atoi(cfg.ScoreDeduction)
	if err != nil || deduction < 0 {
		log.Fatalf("invalid SCORE_DEDUCTION %q", cfg.ScoreDeduction)
	}
	taskService := services.NewTaskService(db, gameService, logService, deduction)

	authHandler := handlers.NewAuthHandler(authService)
	playerHandler := handlers.NewPlayerHandler(playerService, authService, hub)
	gameHandler := handlers.NewGameHandler(gameService, playerService, authService, hub)
	taskHandler := handlers.NewTaskHandler(taskService, playerService, hub)
	sabotageHandler := handlers.NewSabotageHandler(sabotageService, playerService, hub)
	meetingHandler := handlers.NewMeetingHandler(meetingService, playerService, authService, hub)
	logHandler := handlers.NewLogHandler(logService)
	wsHandler := handlers.NewWSHandler(hub)

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	r.GET("/ws/game", wsHandler.HandleWebSocket)

	pollSec, _ := strconv.Atoi(cfg.PollInterval)
	if pollSec <= 0 {
		pollSec = 1
	}
	oxygenWatcher := watcher.New(sabotageService, playerService, hub, time.Duration(pollSec)*time.Second)
	oxygenWatcher.Start()
	defer oxygenWatcher.Stop()

	api := r.Group("/api/v1")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
		}

		players := api.Group("/players")
		{
			players.POST("/signin", playerHandler.SignIn)
			players.POST("/join", playerHandler.Join)
			players.POST("/rename", playerHandler.Rename)
			players.POST("/screen-hidden", playerHandler.HideScreen)
			players.GET("", playerHandler.List)
			players.GET("/state", playerHandler.State)

			players.POST("/:uid/disqualify", middleware.JWTAuth(authService), playerHandler.Disqualify)
			players.PUT("/:uid/name", middleware.JWTAuth(authService), playerHandler.AdminRename)
		}

		tasks := api.Group("/tasks")
		{
			tasks.POST("/complete", taskHandler.Complete)
			tasks.GET("/progress", taskHandler.Progress)
		}

		sabotage := api.Group("/sabotage")
		{
			sabotage.POST("/start", sabotageHandler.Start)
			sabotage.POST("/resolve", sabotageHandler.Resolve)
		}

		meetings := api.Group("/meetings")
		{
			meetings.POST("/report", meetingHandler.Report)
			meetings.POST("/call", meetingHandler.Call)

			meetings.POST("/confirm", middleware.JWTAuth(authService), meetingHandler.Confirm)
			meetings.POST("/end", middleware.JWTAuth(authService), meetingHandler.End)
			meetings.POST("/vote", middleware.JWTAuth(authService), meetingHandler.Vote)
		}

		game := api.Group("/game")
		{
			game.POST("/kill", gameHandler.Kill)

			game.POST("/start", middleware.JWTAuth(authService), gameHandler.Start)
			game.POST("/reset", middleware.JWTAuth(authService), gameHandler.Reset)
			game.POST("/pause", middleware.JWTAuth(authService), gameHandler.Pause)
			game.POST("/unpause", middleware.JWTAuth(authService), gameHandler.Unpause)
			game.POST("/undo-win", middleware.JWTAuth(authService), gameHandler.UndoWin)
		}

		api.GET("/logs", middleware.JWTAuth(authService), logHandler.List)
	}

	log.Printf("server starting on :%s", cfg.ServerPort)
	if err := r.Run(":" + cfg.ServerPort); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
