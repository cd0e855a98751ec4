package client

import (
	"context"
	"fmt"
	"log"
	"net/url"
	"time"

	"insurance-intake/internal/config"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoURI assembles the connection string from the environment,
// escaping credentials so they survive URL parsing.
func MongoURI() string {
	user := url.QueryEscape(config.GetEnvOrDefault("MONGODB_USER", "user"))
	password := url.QueryEscape(config.GetEnvOrDefault("MONGODB_PASSWORD", "password"))
	host := config.GetEnvOrDefault("MONGODB_HOST", "mongodb")
	return fmt.Sprintf("mongodb://%s:%s@%s:27017", user, password, host)
}

func MongoClient() *mongo.Client {
	uri := MongoURI()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	clientOptions := options.Client().ApplyURI(uri)
	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		log.Fatalf("error to connect the MongoDB: %v", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		log.Fatalf("error to verify connection with MongoDB: %v", err)
	}

	return client
}
