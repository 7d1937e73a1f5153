package usecase

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/fadilmartias/resume-reviewer/internal/config"
	"github.com/fadilmartias/resume-reviewer/internal/dto"
	"github.com/fadilmartias/resume-reviewer/internal/model"
	"github.com/fadilmartias/resume-reviewer/internal/service"
	"golang.org/x/sync/errgroup"
)

type GenerationUsecase struct {
	generator     service.ContentGeneratorInterface
	workers       int
	questionCount int
}

func NewGenerationUsecase(generator service.ContentGeneratorInterface, workers, questionCount int) *GenerationUsecase {
	if workers < config.MinGenerationWorkers {
		workers = config.MinGenerationWorkers
	}
	if questionCount <= 0 {
		questionCount = 10
	}
	return &GenerationUsecase{generator: generator, workers: workers, questionCount: questionCount}
}

func (uc *GenerationUsecase) ProviderName() string {
	return uc.generator.Name()
}

// GenerateAll runs analysis and question generation side by side, then starts
// the roadmap once the analysis has produced its skill list. Any failure
// cancels the remaining calls and no partial bundle is returned.
func (uc *GenerationUsecase) GenerateAll(ctx context.Context, resumeText string) (*dto.GenerationBundle, error) {
	started := time.Now()
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(uc.workers)

	var (
		analysis  model.Analysis
		questions []model.InterviewQuestion
		roadmap   model.Roadmap
	)
	analysisDone := make(chan struct{})

	g.Go(func() error {
		a, err := uc.generator.AnalyzeResume(gctx, resumeText)
		if err != nil {
			return err
		}
		analysis = a
		close(analysisDone)
		return nil
	})
	g.Go(func() error {
		qs, err := uc.generator.GenerateTechnicalQuestions(gctx, resumeText, uc.questionCount)
		if err != nil {
			return err
		}
		if len(qs) > uc.questionCount {
			qs = qs[:uc.questionCount]
		}
		questions = qs
		return nil
	})

	select {
	case <-analysisDone:
	case <-gctx.Done():
		if err := g.Wait(); err != nil {
			return nil, err
		}
		return nil, fmt.Errorf("generation aborted: %w", ctx.Err())
	}
	log.Printf("Analysis ready after %v, starting roadmap with %d skills", time.Since(started), len(analysis.SkillsIdentified))

	skills := analysis.SkillsIdentified
	g.Go(func() error {
		rm, err := uc.generator.GenerateCareerRoadmap(gctx, resumeText, skills)
		if err != nil {
			return err
		}
		roadmap = rm
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	log.Printf("Generated analysis, %d technical questions and roadmap via %s in %v", len(questions), uc.generator.Name(), time.Since(started))

	if questions == nil {
		questions = []model.InterviewQuestion{}
	}
	return &dto.GenerationBundle{
		Analysis:           analysis,
		TechnicalQuestions: questions,
		Roadmap:            roadmap,
	}, nil
}
