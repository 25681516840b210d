package container

import (
	"context"
	"fmt"
	"net/http"

	"go-object-recognizer/internal/config"
	"go-object-recognizer/internal/dictionary"
	"go-object-recognizer/internal/logger"
	"go-object-recognizer/internal/repository"
	"go-object-recognizer/internal/service"
	"go-object-recognizer/internal/transport"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Container holds all application dependencies
type Container struct {
	config             *config.Config
	mongoClient        *mongo.Client
	imageRepository    repository.ImageRepository
	definitionResolver dictionary.Resolver
	recognitionService service.RecognitionService
	handler            http.Handler
}

// NewContainer creates a new dependency injection container. The
// document store connection is established and verified here; without
// it the service cannot produce any useful response.
func NewContainer(cfg *config.Config) (*Container, error) {
	ctx, cancel := context.WithTimeout(context.Background(), cfg.Mongo.ConnectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.Mongo.URI))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return nil, fmt.Errorf("failed to ping MongoDB: %w", err)
	}
	logger.Info("Connected to MongoDB")

	// Build dependency graph
	imageRepository := repository.NewMongoImageRepository(client.Database(cfg.Mongo.Database))
	definitionResolver := dictionary.NewClient(cfg.Dictionary.BaseURL, cfg.Dictionary.APIKey, cfg.Dictionary.Timeout)
	recognitionService := service.NewRecognitionService(imageRepository, definitionResolver)
	handler := transport.NewHandler(recognitionService, cfg)

	return &Container{
		config:             cfg,
		mongoClient:        client,
		imageRepository:    imageRepository,
		definitionResolver: definitionResolver,
		recognitionService: recognitionService,
		handler:            handler,
	}, nil
}

// Handler returns the HTTP handler
func (c *Container) Handler() http.Handler {
	return c.handler
}

// Config returns the configuration
func (c *Container) Config() *config.Config {
	return c.config
}

// Close releases the document store connection.
func (c *Container) Close(ctx context.Context) error {
	return c.mongoClient.Disconnect(ctx)
}
