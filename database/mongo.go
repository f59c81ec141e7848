package database

import (
	"context"
	"fmt"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"linkup/config"
)

var (
	Client *mongo.Client
	DB     *mongo.Database
)

func Connect() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(config.Cfg.MongoURI))
	if err != nil {
		return fmt.Errorf("failed to connect to mongodb: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		return fmt.Errorf("failed to ping mongodb: %w", err)
	}

	Client = client
	DB = client.Database(config.Cfg.MongoDB)

	log.Println("Database connected successfully")
	return nil
}

func Close() {
	if Client == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := Client.Disconnect(ctx); err != nil {
		log.Printf("Error disconnecting from mongodb: %v", err)
	}
}

func Users() *mongo.Collection       { return DB.Collection("users") }
func Friendships() *mongo.Collection { return DB.Collection("friendships") }
func Messages() *mongo.Collection    { return DB.Collection("messages") }

// EnsureIndexes creates the unique pair index the friendship edge model
// depends on. Email uniqueness is intentionally not enforced here.
func EnsureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_, err := Friendships().Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "pairKey", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("failed to create friendships index: %w", err)
	}

	log.Println("Database indexes created successfully")
	return nil
}
