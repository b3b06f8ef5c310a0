/*
Copyright © 2025 Wish2code
*/
package cmd

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/Wish2code/AI-Powered-Book-Summarizer/config"
	"github.com/Wish2code/AI-Powered-Book-Summarizer/handler"
	"github.com/Wish2code/AI-Powered-Book-Summarizer/service"
)

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the summarization server",
	Long:  `Starts the HTTP API that accepts PDF uploads and returns summaries`,
	Run: func(cmd *cobra.Command, args []string) {
		configPath, _ := cmd.Flags().GetString("config-file")
		cfg, err := config.LoadConfig(configPath)
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}

		// Initialize services
		pdfService := service.NewPDFService(cfg.MaxUploadMB)
		fileService, err := service.NewFileService(cfg.UploadDir)
		if err != nil {
			log.Fatalf("Failed to init upload storage: %v", err)
		}

		registry := service.NewEngineRegistry(
			cfg.Model,
			service.DefaultEngineFactory(cfg.AIEndpoint, cfg.OpenAIAPIKey, cfg.GeminiKeys()),
		)
		pipeline := service.NewPipelineService(registry, cfg.Summary.MaxReductionDepth)
		wsService := service.NewWebSocketService(pipeline, pdfService, fileService, cfg.DefaultOptions())

		// Initialize handlers
		corsHandler := handler.NewCorsHandler()
		healthHandler := handler.NewHealthHandler(registry)
		modelsHandler := handler.NewModelsHandler(registry)
		uploadHandler := handler.NewUploadHandler(pdfService, fileService)
		extractHandler := handler.NewExtractHandler(pdfService)
		summarizeHandler := handler.NewSummarizeHandler(pdfService, pipeline, cfg.DefaultOptions())
		documentHandler := handler.NewDocumentHandler(fileService)

		// Setup Gin router
		router := gin.Default()
		router.Use(corsHandler.CorsMiddleware)

		router.GET("/", healthHandler.HandleRoot)
		router.GET("/health", healthHandler.HandleHealth)
		router.GET("/models", modelsHandler.HandleListModels)
		router.POST("/change-model", modelsHandler.HandleChangeModel)
		router.POST("/upload-pdf", uploadHandler.HandleUploadPDF)
		router.POST("/extract-text", extractHandler.HandleExtractText)
		router.POST("/summarize", summarizeHandler.HandleSummarize)
		router.POST("/summarize-stream", summarizeHandler.HandleSummarizeStream)
		router.GET("/pdf", documentHandler.HandleServeDocument)
		router.GET("/ws/summarize", func(c *gin.Context) {
			wsService.HandleSummarize(c.Writer, c.Request)
		})

		log.Printf("Starting server on port %s...\n", cfg.Port)
		if err := router.Run(":" + cfg.Port); err != nil {
			log.Fatal("Server error:", err)
		}
	},
}

func init() {
	rootCmd.AddCommand(startCmd)
	startCmd.Flags().StringP("config-file", "c", "config/config.yaml", "config file")
}
