package usecase

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/fadilmartias/resume-reviewer/internal/dto"
	"github.com/fadilmartias/resume-reviewer/internal/model"
	"github.com/fadilmartias/resume-reviewer/internal/repository"
	"github.com/google/uuid"
)

// DefaultUserID is the single implicit identity every request acts as.
const DefaultUserID = "default-user"

// MinResumeTextLength is the minimum trimmed length of usable extracted text.
const MinResumeTextLength = 20

type ResumeUsecase struct {
	store      *repository.RecordStore
	generation *GenerationUsecase
}

func NewResumeUsecase(store *repository.RecordStore, generation *GenerationUsecase) *ResumeUsecase {
	return &ResumeUsecase{store: store, generation: generation}
}

// Upload generates the analysis, questions and roadmap for the extracted text
// and commits them together with the resume. Nothing is stored unless every
// generation step succeeded.
func (uc *ResumeUsecase) Upload(ctx context.Context, userID, filename, text string) (*dto.UploadResultDTO, error) {
	if len(strings.TrimSpace(text)) < MinResumeTextLength {
		return nil, ErrInsufficientText
	}

	bundle, err := uc.generation.GenerateAll(ctx, text)
	if err != nil {
		return nil, fmt.Errorf("generate resume content: %w", err)
	}

	result := &dto.UploadResultDTO{
		Processing: false,
		Message:    fmt.Sprintf("Resume uploaded. Analysis completed with %s.", uc.generation.ProviderName()),
	}
	uc.store.Update(func(tx *repository.RecordTx) {
		resume := tx.CreateResume(model.Resume{
			UserID:       userID,
			Filename:     filename,
			OriginalText: text,
		})

		analysis := bundle.Analysis
		analysis.ID = uuid.NewString()
		analysis.ResumeID = resume.ID
		tx.AppendAnalysis(analysis)

		questions := assembleQuestions(resume.ID, bundle.TechnicalQuestions)
		tx.ReplaceInterviewQuestions(resume.ID, questions)

		roadmap := bundle.Roadmap
		roadmap.ID = resume.ID
		roadmap.ResumeID = resume.ID
		tx.ReplaceRoadmap(resume.ID, roadmap)

		tx.BumpProgress(userID, analysis.AtsScore)

		result.Resume = resume
		result.Analysis = analysis
		result.InterviewQuestions = questions
		result.CareerRoadmap = roadmap
	})

	log.Printf("Stored resume %s for %s: ats=%d overall=%d questions=%d",
		result.Resume.ID, userID, result.Analysis.AtsScore, result.Analysis.OverallScore, len(result.InterviewQuestions))
	return result, nil
}

func (uc *ResumeUsecase) Dashboard(userID string) (*dto.DashboardDTO, error) {
	dashboard := uc.store.GetDashboard(userID)
	if dashboard.UserProgress == nil {
		return nil, ErrNotFound
	}
	return &dashboard, nil
}

func (uc *ResumeUsecase) GetAnalysis(resumeID string) (*model.Analysis, error) {
	analysis := uc.store.FindAnalysisByResumeID(resumeID)
	if analysis == nil {
		return nil, ErrNotFound
	}
	return analysis, nil
}

// GetInterviewQuestions never reports absence; an unknown resume has no questions.
func (uc *ResumeUsecase) GetInterviewQuestions(resumeID string) []model.InterviewQuestion {
	return uc.store.FindInterviewQuestionsByResumeID(resumeID)
}

func (uc *ResumeUsecase) GetRoadmap(resumeID string) (*model.Roadmap, error) {
	roadmap := uc.store.FindRoadmapByResumeID(resumeID)
	if roadmap == nil {
		return nil, ErrNotFound
	}
	return roadmap, nil
}

func (uc *ResumeUsecase) ListResumes(userID string) []model.Resume {
	return uc.store.FindResumesByUserID(userID)
}
