package handler

import (
	"context"
	"errors"
	"fmt"
	"log"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fadilmartias/resume-reviewer/internal/middleware"
	"github.com/fadilmartias/resume-reviewer/internal/usecase"
	"github.com/fadilmartias/resume-reviewer/internal/util"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type TextExtractor interface {
	Extract(path string) (string, error)
}

type Options struct {
	UploadDir         string
	MaxFileSize       int64
	GenerationTimeout time.Duration
	UploadRateLimit   int
}

type ResumeHandler struct {
	uc        *usecase.ResumeUsecase
	extractor TextExtractor
	opts      Options
}

func NewResumeHandler(uc *usecase.ResumeUsecase, extractor TextExtractor, opts Options) *ResumeHandler {
	if opts.UploadDir == "" {
		opts.UploadDir = "./uploads"
	}
	if opts.MaxFileSize <= 0 {
		opts.MaxFileSize = 5 * 1024 * 1024
	}
	if opts.GenerationTimeout <= 0 {
		opts.GenerationTimeout = 3 * time.Minute
	}
	if opts.UploadRateLimit <= 0 {
		opts.UploadRateLimit = 10
	}
	return &ResumeHandler{uc: uc, extractor: extractor, opts: opts}
}

func (h *ResumeHandler) RegisterRoutes(app *fiber.App) {
	api := app.Group("/api")
	api.Post("/resumes/upload", middleware.NewRateLimiter(middleware.RateLimitConfig{
		Max:     h.opts.UploadRateLimit,
		Window:  time.Minute,
		Message: "Too many uploads, please try again later",
	}), h.Upload)
	api.Get("/resumes", h.ListResumes)
	api.Get("/dashboard", h.Dashboard)
	api.Get("/analysis/:resumeId", h.Analysis)
	api.Get("/interview/:resumeId", h.Interview)
	api.Get("/roadmap/:resumeId", h.Roadmap)
}

func (h *ResumeHandler) Upload(c *fiber.Ctx) error {
	file, err := c.FormFile("resume")
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "No file uploaded",
		}, err)
	}
	if strings.TrimSpace(file.Filename) == "" {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "Empty filename",
		})
	}
	if file.Size > h.opts.MaxFileSize {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: fmt.Sprintf("File size is too large (max %dMB)", h.opts.MaxFileSize/(1024*1024)),
		})
	}

	filename := clientBaseName(file.Filename)
	text, err := h.extractUpload(c, file, filename)
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{Message: err.Error()}, err)
	}

	ctx, cancel := context.WithTimeout(c.UserContext(), h.opts.GenerationTimeout)
	defer cancel()

	result, err := h.uc.Upload(ctx, usecase.DefaultUserID, filename, text)
	if errors.Is(err, usecase.ErrInsufficientText) {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusUnprocessableEntity,
			Message: "Could not extract text. The file may be empty, scanned, or unsupported.",
		})
	}
	if err != nil {
		log.Printf("Upload of %s failed: %v", filename, err)
		return util.ErrorResponse(c, util.ErrorResponseFormat{Message: err.Error()}, err)
	}

	return util.SuccessResponse(c, result)
}

// extractUpload saves the upload under a generated name and removes it again
// before returning, whatever the extraction outcome.
func (h *ResumeHandler) extractUpload(c *fiber.Ctx, file *multipart.FileHeader, filename string) (string, error) {
	if err := os.MkdirAll(h.opts.UploadDir, 0o755); err != nil {
		return "", fmt.Errorf("cannot prepare upload directory: %w", err)
	}

	ext := strings.ToLower(filepath.Ext(filename))
	savePath := filepath.Join(h.opts.UploadDir, fmt.Sprintf("%d-%s%s", time.Now().UnixMilli(), uuid.NewString(), ext))
	defer func() {
		if err := os.Remove(savePath); err != nil && !os.IsNotExist(err) {
			log.Printf("Could not remove upload %s: %v", savePath, err)
		}
	}()

	if err := c.SaveFile(file, savePath); err != nil {
		return "", fmt.Errorf("cannot save uploaded file: %w", err)
	}
	return h.extractor.Extract(savePath)
}

func (h *ResumeHandler) Dashboard(c *fiber.Ctx) error {
	dashboard, err := h.uc.Dashboard(usecase.DefaultUserID)
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusNotFound,
			Message: "User progress not found",
		})
	}
	return util.SuccessResponse(c, dashboard)
}

func (h *ResumeHandler) Analysis(c *fiber.Ctx) error {
	analysis, err := h.uc.GetAnalysis(c.Params("resumeId"))
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusNotFound,
			Message: "Analysis not found",
		})
	}
	return util.SuccessResponse(c, analysis)
}

func (h *ResumeHandler) Interview(c *fiber.Ctx) error {
	return util.SuccessResponse(c, h.uc.GetInterviewQuestions(c.Params("resumeId")))
}

func (h *ResumeHandler) Roadmap(c *fiber.Ctx) error {
	roadmap, err := h.uc.GetRoadmap(c.Params("resumeId"))
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusNotFound,
			Message: "Career roadmap not found",
		})
	}
	return util.SuccessResponse(c, roadmap)
}

func (h *ResumeHandler) ListResumes(c *fiber.Ctx) error {
	return util.SuccessResponse(c, h.uc.ListResumes(usecase.DefaultUserID))
}

// clientBaseName drops any directory part of a client supplied name, including
// Windows style paths, which filepath.Base leaves intact on Unix.
func clientBaseName(name string) string {
	return filepath.Base(strings.ReplaceAll(name, `\`, "/"))
}
