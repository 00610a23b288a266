package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"

	"agro-help-api/config"
	"agro-help-api/internal/advisor"
	"agro-help-api/internal/geocode"
	"agro-help-api/internal/language"
	"agro-help-api/internal/llm"
	"agro-help-api/internal/logging"
	"agro-help-api/internal/middlewares"
	"agro-help-api/internal/speech"
	"agro-help-api/internal/weather"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("no .env file loaded: %v", err)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal(err)
	}
	logging.Setup(cfg.LogLevel, cfg.LogFormat)

	httpClient := &http.Client{Timeout: cfg.HTTPTimeout}

	model := cfg.GeminiModel
	if cfg.AIProvider == config.ProviderOpenAI {
		model = cfg.OpenAIModel
	}

	ctx := context.Background()
	generator, err := llm.New(ctx, cfg.AIProvider, cfg.AIKey(), model, httpClient)
	if err != nil {
		log.Fatal("Failed to configure AI provider:", err)
	}
	if generator == nil {
		slog.Warn("AI API key missing, running in demo mode", "provider", cfg.AIProvider)
	}
	if cfg.OpenWeatherAPIKey == "" {
		slog.Warn("OpenWeather API key missing, using simulated weather")
	}

	advisorService := &advisor.AdvisorService{
		Languages: language.Default(),
		Weather:   weather.NewWeatherService(cfg.OpenWeatherAPIKey, cfg.WeatherBaseURL, httpClient),
		Locations: geocode.NewGeocodeService(cfg.GeocodeBaseURL, httpClient),
		Generator: generator,
		Audio:     speech.NewPipeline(speech.NewTranslateTTS(cfg.TTSBaseURL, httpClient), cfg.ChunkSize),
		DemoDelay: cfg.DemoDelay,
	}

	r := gin.Default()
	r.MaxMultipartMemory = cfg.MaxUploadMB << 20

	r.Use(middlewares.RequestID())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", middlewares.RequestIDHeader},
		ExposeHeaders:    []string{middlewares.RequestIDHeader},
		AllowCredentials: true,
	}))

	advisor.RegisterRoutes(r, advisorService, cfg.MaxUploadMB<<20)

	slog.Info("starting server", "addr", "0.0.0.0:"+cfg.Port, "provider", cfg.AIProvider, "demo_mode", generator == nil)
	log.Fatal(r.Run("0.0.0.0:" + cfg.Port))
}
