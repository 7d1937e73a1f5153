package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fadilmartias/resume-reviewer/internal/config"
	"github.com/fadilmartias/resume-reviewer/internal/service"
	"github.com/fadilmartias/resume-reviewer/internal/usecase"
	"github.com/fadilmartias/resume-reviewer/internal/util"
	"github.com/spf13/cobra"
)

type analyzeOptions struct {
	provider  string
	questions int
	workers   int
	ocr       bool
	out       string
}

func newRootCmd() *cobra.Command {
	opts := &analyzeOptions{}
	cmd := &cobra.Command{
		Use:           "analyze <resume-file>",
		Short:         "Analyze a resume file and print the generated review as JSON",
		Long:          "Extracts text from a .pdf, .docx or .txt resume, runs the analysis, interview question and career roadmap generation, and prints the result without storing anything.",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAnalyze(cmd, args[0], opts)
		},
	}

	generation := config.LoadGenerationConfig()
	cmd.Flags().StringVarP(&opts.provider, "provider", "p", generation.Provider, "AI provider (gemini or openrouter)")
	cmd.Flags().IntVarP(&opts.questions, "questions", "q", generation.QuestionCount, "Number of technical interview questions")
	cmd.Flags().IntVar(&opts.workers, "workers", generation.Workers, "Concurrent generator calls")
	cmd.Flags().BoolVar(&opts.ocr, "ocr", config.LoadUploadConfig().PDFOCRFallback, "OCR scanned PDFs with tesseract when they carry no text layer")
	cmd.Flags().StringVarP(&opts.out, "out", "o", "", "Write JSON to this file instead of stdout")
	return cmd
}

func runAnalyze(cmd *cobra.Command, path string, opts *analyzeOptions) error {
	text, err := util.NewTextExtractor(opts.ocr).Extract(path)
	if err != nil {
		return fmt.Errorf("failed to extract %s: %w", path, err)
	}
	if len(strings.TrimSpace(text)) < usecase.MinResumeTextLength {
		return usecase.ErrInsufficientText
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), config.LoadGenerationConfig().Timeout)
	defer cancel()

	generator, err := service.NewContentGenerator(ctx, strings.ToLower(opts.provider))
	if err != nil {
		return err
	}

	bundle, err := usecase.NewGenerationUsecase(generator, opts.workers, opts.questions).GenerateAll(ctx, text)
	if err != nil {
		return fmt.Errorf("failed to generate review: %w", err)
	}

	var w io.Writer = cmd.OutOrStdout()
	if opts.out != "" {
		f, err := os.Create(opts.out)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()
		w = f
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(bundle)
}
