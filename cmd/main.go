package main

import (
	"context"
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/panjf2000/ants/v2"
	"github.com/rs/zerolog/log"

	"generate-reel-service/application/services"
	"generate-reel-service/config"
	"generate-reel-service/infrastructure/adapters"
	"generate-reel-service/infrastructure/gin_interface/controllers"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Info().Msg("No .env file found, using process environment")
	}

	renderConfig, err := config.GetRenderConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to get render config")
	}

	blobConfig, err := config.GetBlobStoreConfig()
	if err != nil {
		log.Warn().Err(err).Msg("Blob store is not configured, uploads will fail")
	}

	s3Config, err := config.GetS3Config()
	if err != nil && renderConfig.StorageBackend == config.StorageBackendS3 {
		log.Fatal().Err(err).Msg("Failed to get s3 config")
	}

	publisherConfig, err := config.GetPublisherConfig()
	if err != nil {
		log.Warn().Err(err).Msg("Publisher is not configured, publishing will fail")
	}

	zeroLogger := adapters.NewZerologWrapper()

	panicHandler := func(p interface{}) {
		zeroLogger.Error(fmt.Errorf("%v", p), "Panic in worker pool")
	}

	workerPool, err := ants.NewPool(120, ants.WithPanicHandler(panicHandler))
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create worker pool")
	}
	defer workerPool.Release()

	contentFetcher := adapters.NewContentFetcher(zeroLogger)
	imageFetcher := adapters.NewImageFetcher(contentFetcher, zeroLogger)
	randomSource := adapters.NewRandomSource()

	encoder := adapters.NewFFmpegEncoder(zeroLogger)
	if err := encoder.Init(context.Background()); err != nil {
		log.Warn().Err(err).Msg("Video encoder failed to initialize, renders will be rejected")
	}

	var videoStore = adapters.NewBlobVideoStore(zeroLogger, blobConfig)
	if renderConfig.StorageBackend == config.StorageBackendS3 {
		videoStore = adapters.NewS3VideoStore(zeroLogger, s3Config)
	}

	reelsPublisher := adapters.NewReelsPublisher(zeroLogger, publisherConfig)

	storyboardGenerator := services.NewStoryboardGenerator(zeroLogger, randomSource)

	frameRenderer, err := services.NewFrameRenderer(zeroLogger, imageFetcher, services.RenderOptions{
		Width:  renderConfig.FrameWidth,
		Height: renderConfig.FrameHeight,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create frame renderer")
	}

	videoAssembler := services.NewVideoAssembler(zeroLogger, frameRenderer, encoder, renderConfig.ScratchDir)

	reelCreatorPipeline := services.NewReelCreatorPipeline(zeroLogger, videoAssembler, videoStore, reelsPublisher)

	renderJobManager := services.NewRenderJobManager(zeroLogger, videoAssembler, workerPool)

	storyboardController := controllers.NewStoryboardController(zeroLogger, storyboardGenerator)
	reelsController := controllers.NewReelsController(zeroLogger, videoAssembler, reelCreatorPipeline, renderJobManager)

	router := gin.Default()

	if err := router.SetTrustedProxies(nil); err != nil {
		log.Fatal().Err(err).Msg("Failed to set trusted proxies!")
	}

	storyboardController.RegisterRoutes(router)
	reelsController.RegisterRoutes(router)

	if err := router.Run(":8080"); err != nil {
		log.Fatal().Err(err).Msg("Failed to start server!")
	}
}
