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
	"github.com/Wish2code/AI-Powered-Book-Summarizer/types"
	"github.com/Wish2code/AI-Powered-Book-Summarizer/utils"
)

// summarizeCmd represents the summarize command
var summarizeCmd = &cobra.Command{
	Use:   "summarize",
	Short: "Summarize a local PDF file",
	Long: `Runs the extraction and summarization pipeline on a local PDF
without starting the server. The summary is written next to the input as
<name>_summary.txt unless --output is given.`,
	Run: func(cmd *cobra.Command, args []string) {
		configPath, _ := cmd.Flags().GetString("config-file")
		filePath, _ := cmd.Flags().GetString("file")
		output, _ := cmd.Flags().GetString("output")
		if filePath == "" {
			log.Fatal("--file is required")
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

		summary, err := summarizeFile(context.Background(), pdfService, pipeline, filePath, opts)
		if err != nil {
			log.Fatalf("Failed to summarize %s: %v", filePath, err)
		}

		if output == "" {
			output = strings.TrimSuffix(filePath, ".pdf") + "_summary.txt"
		}
		if err := os.WriteFile(output, []byte(summary), 0644); err != nil {
			log.Fatalf("Failed to write summary: %v", err)
		}
		fmt.Println("Summary written to", output)
	},
}

// summarizeFile runs extract + pipeline on one file, logging progress.
func summarizeFile(ctx context.Context, pdfService *service.PDFService, pipeline *service.PipelineService, filePath string, opts types.SummarizeOptions) (string, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return "", err
	}

	doc, err := pdfService.ExtractText(data)
	if err != nil {
		return "", err
	}
	log.Printf("Extracted %d characters from %d pages of %s",
		doc.Characters, doc.Pages, utils.GetFileNameWithoutExt(filePath))

	result, err := pipeline.Summarize(ctx, doc.Text, opts, func(status types.ProcessingStatus) {
		log.Printf("%s", status.Message)
	})
	if err != nil {
		return "", err
	}
	log.Printf("Done: %d chunks, %d passes, %.1f%% of the original length",
		result.Statistics.TotalChunks,
		result.Statistics.ReductionPasses,
		result.Statistics.OverallCompressionRatio*100)
	return result.Summary, nil
}

// optionsFromFlags merges CLI flags over the configured defaults.
func optionsFromFlags(cmd *cobra.Command, cfg *config.Config) types.SummarizeOptions {
	opts := cfg.DefaultOptions()
	if v, _ := cmd.Flags().GetString("model"); v != "" {
		opts.ModelName = v
	}
	if v, _ := cmd.Flags().GetInt("max-length"); v > 0 {
		opts.MaxLength = v
	}
	if v, _ := cmd.Flags().GetInt("min-length"); v > 0 {
		opts.MinLength = v
	}
	if v, _ := cmd.Flags().GetInt("chunk-size"); v > 0 {
		opts.ChunkSize = v
	}
	if v, _ := cmd.Flags().GetInt("chunk-overlap"); v > 0 {
		opts.ChunkOverlap = v
	}
	return opts
}

func addSummarizeFlags(cmd *cobra.Command) {
	cmd.Flags().String("config-file", "config/config.yaml", "config file")
	cmd.Flags().String("model", "", "summarization model to use")
	cmd.Flags().Int("max-length", 0, "maximum summary length in words")
	cmd.Flags().Int("min-length", 0, "minimum summary length in words")
	cmd.Flags().Int("chunk-size", 0, "chunk size in characters")
	cmd.Flags().Int("chunk-overlap", 0, "overlap between chunks in characters")
}

func init() {
	rootCmd.AddCommand(summarizeCmd)
	summarizeCmd.Flags().StringP("file", "f", "", "path to the PDF file to summarize")
	summarizeCmd.Flags().StringP("output", "o", "", "path to write the summary to")
	addSummarizeFlags(summarizeCmd)
}
