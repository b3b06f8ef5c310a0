/*
Copyright © 2025 Wish2code
*/
package cmd

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Wish2code/AI-Powered-Book-Summarizer/config"
	"github.com/Wish2code/AI-Powered-Book-Summarizer/service"
)

// batchSummarizeCmd represents the batch-summarize command
var batchSummarizeCmd = &cobra.Command{
	Use:   "batch-summarize",
	Short: "Summarize every PDF in a directory",
	Long: `Walks a directory and runs the summarization pipeline on each
PDF found, writing <name>_summary.txt next to each input. A failed file
is logged and skipped; the batch keeps going.`,
	Run: func(cmd *cobra.Command, args []string) {
		configPath, _ := cmd.Flags().GetString("config-file")
		directory, _ := cmd.Flags().GetString("directory")
		if directory == "" {
			log.Fatal("--directory is required")
		}

		cfg, err := config.LoadConfig(configPath)
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
		opts := optionsFromFlags(cmd, cfg)

		registry := service.NewEngineRegistry(
			cfg.Model,
			service.DefaultEngineFactory(cfg.AIEndpoint, cfg.OpenAIAPIKey, cfg.GeminiKeys()),
		)
		pipeline := service.NewPipelineService(registry, cfg.Summary.MaxReductionDepth)
		pdfService := service.NewPDFService(cfg.MaxUploadMB)

		files, err := os.ReadDir(directory)
		if err != nil {
			log.Fatalf("Failed to read directory: %v", err)
		}
		for _, file := range files {
			if file.IsDir() || !strings.HasSuffix(strings.ToLower(file.Name()), ".pdf") {
				continue
			}
			filePath := fmt.Sprintf("%s/%s", directory, file.Name())
			summary, err := summarizeFile(context.Background(), pdfService, pipeline, filePath, opts)
			if err != nil {
				log.Printf("Failed to summarize %s: %v", filePath, err)
				continue
			}
			output := strings.TrimSuffix(filePath, ".pdf") + "_summary.txt"
			if err := os.WriteFile(output, []byte(summary), 0644); err != nil {
				log.Printf("Failed to write summary for %s: %v", filePath, err)
				continue
			}
			log.Println("Summary written to", output)
		}
	},
}

func init() {
	rootCmd.AddCommand(batchSummarizeCmd)
	batchSummarizeCmd.Flags().StringP("directory", "d", "", "directory containing PDF files")
	addSummarizeFlags(batchSummarizeCmd)
}
