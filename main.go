package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"

	"linkup/config"
	"linkup/database"
	"linkup/handlers"
	"linkup/middleware"
	"linkup/store"
)

func main() {
	config.Load()

	if err := database.Connect(); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close()

	if err := database.EnsureIndexes(); err != nil {
		log.Fatalf("Failed to create indexes: %v", err)
	}

	if err := os.MkdirAll(config.Cfg.UploadDir, 0755); err != nil {
		log.Fatalf("Failed to create upload directory: %v", err)
	}

	h := handlers.New(
		store.NewMongoUserStore(database.Users()),
		store.NewMongoFriendStore(database.Friendships(), database.Users()),
		store.NewMongoMessageStore(database.Messages(), database.Users()),
	)

	r := gin.Default()

	r.Use(middleware.CORSMiddleware(config.Cfg.CORSOrigins))

	r.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{"success": true, "msg": "Server running"})
	})

	r.POST("/register", h.Register)
	r.POST("/login", h.Login)
	r.GET("/me", middleware.AuthMiddleware(), h.Me)

	r.GET("/users/:userId", h.ListUsers)
	r.GET("/user/:userId", h.GetUser)

	r.POST("/friend-request", h.SendFriendRequest)
	r.GET("/friend-request/sent/:userId", h.GetSentFriendRequests)
	r.GET("/friend-request/:userId", h.GetFriendRequests)
	r.POST("/friend-request/accept", h.AcceptFriendRequest)
	r.GET("/accepted-friends/:userId", h.GetAcceptedFriends)
	r.GET("/friends/:userId", h.GetFriendIDs)

	r.POST("/messages", h.SendMessage)
	r.GET("/messages/:senderId/:recepientId", h.GetThread)
	r.POST("/deletedMessages", h.DeleteMessages)
	r.GET("/files/:filename", h.ServeFile)

	log.Printf("Server starting on %s", config.Cfg.ServerAddr)
	if err := r.Run(config.Cfg.ServerAddr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
