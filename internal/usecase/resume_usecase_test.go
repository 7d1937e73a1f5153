package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/fadilmartias/resume-reviewer/internal/model"
	"github.com/fadilmartias/resume-reviewer/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const resumeText = "Jane Doe\nSenior Go engineer with experience in Kubernetes, PostgreSQL and AWS."

func newResumeUsecase(gen *fakeGenerator, questionCount int) (*ResumeUsecase, *repository.RecordStore) {
	store := repository.NewRecordStore()
	return NewResumeUsecase(store, NewGenerationUsecase(gen, 3, questionCount)), store
}

func countByType(qs []model.InterviewQuestion) map[string]int {
	counts := map[string]int{}
	for _, q := range qs {
		counts[q.Type]++
	}
	return counts
}

func TestUpload_StoresLinkedRecords(t *testing.T) {
	uc, store := newResumeUsecase(&fakeGenerator{}, 6)

	res, err := uc.Upload(context.Background(), DefaultUserID, "cv.txt", resumeText)
	require.NoError(t, err)

	resumeID := res.Resume.ID
	require.NotEmpty(t, resumeID)
	assert.Equal(t, "cv.txt", res.Resume.Filename)
	assert.Equal(t, resumeText, res.Resume.OriginalText)
	assert.Equal(t, resumeID, res.Analysis.ResumeID)
	assert.NotEmpty(t, res.Analysis.ID)
	assert.Equal(t, resumeID, res.CareerRoadmap.ResumeID)
	assert.Equal(t, resumeID, res.CareerRoadmap.ID)
	assert.False(t, res.Processing)
	assert.Equal(t, "Resume uploaded. Analysis completed with Fake.", res.Message)

	counts := countByType(res.InterviewQuestions)
	assert.Equal(t, 6, counts[model.QuestionTypeTechnical])
	assert.Equal(t, 3, counts[model.QuestionTypeBehavioral])
	assert.Equal(t, 4, counts[model.QuestionTypeSituational])

	ids := map[string]bool{}
	for _, q := range res.InterviewQuestions {
		assert.Equal(t, resumeID, q.ResumeID)
		assert.False(t, ids[q.ID], "duplicate question id")
		ids[q.ID] = true
	}

	assert.Equal(t, res.InterviewQuestions, store.FindInterviewQuestionsByResumeID(resumeID))
	assert.Equal(t, res.Analysis, *store.FindAnalysisByResumeID(resumeID))
	assert.Equal(t, res.CareerRoadmap, *store.FindRoadmapByResumeID(resumeID))
}

func TestUpload_QuestionOrder(t *testing.T) {
	uc, _ := newResumeUsecase(&fakeGenerator{}, 2)

	res, err := uc.Upload(context.Background(), DefaultUserID, "cv.txt", resumeText)
	require.NoError(t, err)

	var types []string
	for _, q := range res.InterviewQuestions {
		types = append(types, q.Type)
	}
	assert.Equal(t, []string{
		"technical", "technical",
		"behavioral", "behavioral", "behavioral",
		"situational", "situational", "situational", "situational",
	}, types)
}

func TestUpload_GeneratedQuestionsAreTechnical(t *testing.T) {
	gen := &fakeGenerator{
		questions: func(ctx context.Context, text string, count int) ([]model.InterviewQuestion, error) {
			qs := sampleTechnical(count)
			qs[0].Type = model.QuestionTypeBehavioral
			qs[1].Type = model.QuestionTypeSituational
			return qs, nil
		},
	}
	uc, store := newResumeUsecase(gen, 4)

	res, err := uc.Upload(context.Background(), DefaultUserID, "cv.txt", resumeText)
	require.NoError(t, err)

	for _, qs := range [][]model.InterviewQuestion{res.InterviewQuestions, store.FindInterviewQuestionsByResumeID(res.Resume.ID)} {
		counts := countByType(qs)
		assert.Equal(t, 4, counts[model.QuestionTypeTechnical])
		assert.Equal(t, 3, counts[model.QuestionTypeBehavioral])
		assert.Equal(t, 4, counts[model.QuestionTypeSituational])
	}
}

func TestUpload_InsufficientTextCommitsNothing(t *testing.T) {
	gen := &fakeGenerator{}
	uc, store := newResumeUsecase(gen, 3)

	_, err := uc.Upload(context.Background(), DefaultUserID, "cv.txt", "   too short   \n")
	assert.ErrorIs(t, err, ErrInsufficientText)
	assert.Empty(t, store.FindResumesByUserID(DefaultUserID))
	assert.Nil(t, store.FindUserProgress(DefaultUserID))
	assert.Zero(t, gen.roadmapCalls.Load())
}

func TestUpload_GenerationFailureCommitsNothing(t *testing.T) {
	gen := &fakeGenerator{
		roadmap: func(ctx context.Context, text string, skills []string) (model.Roadmap, error) {
			return model.Roadmap{}, errors.New("quota exceeded")
		},
	}
	uc, store := newResumeUsecase(gen, 3)

	_, err := uc.Upload(context.Background(), DefaultUserID, "cv.txt", resumeText)
	require.ErrorContains(t, err, "quota exceeded")

	assert.Empty(t, store.FindResumesByUserID(DefaultUserID))
	assert.Nil(t, store.FindUserProgress(DefaultUserID))
	_, err = uc.Dashboard(DefaultUserID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpload_ProgressAcrossUploads(t *testing.T) {
	scores := []int{60, 85, 40, 92}
	var call int
	var mu sync.Mutex
	gen := &fakeGenerator{
		analyze: func(ctx context.Context, text string) (model.Analysis, error) {
			mu.Lock()
			defer mu.Unlock()
			a := sampleAnalysis(scores[call])
			call++
			return a, nil
		},
	}
	uc, _ := newResumeUsecase(gen, 2)

	best := 0
	for i, score := range scores {
		_, err := uc.Upload(context.Background(), DefaultUserID, fmt.Sprintf("cv%d.txt", i), resumeText)
		require.NoError(t, err)
		best = max(best, score)

		d, err := uc.Dashboard(DefaultUserID)
		require.NoError(t, err)
		p := d.UserProgress
		assert.Equal(t, i+1, p.TotalUploads)
		assert.Equal(t, best, p.BestAtsScore)
		assert.Equal(t, p.TotalUploads, p.CurrentStreak)
		if best > model.HighAtsScoreThreshold {
			assert.Equal(t, []string{model.AchievementHighAtsScore}, p.Achievements)
		} else {
			assert.Empty(t, p.Achievements)
		}
	}
}

func TestDashboard_UsesLatestUpload(t *testing.T) {
	uc, _ := newResumeUsecase(&fakeGenerator{}, 8)

	_, err := uc.Upload(context.Background(), DefaultUserID, "first.txt", resumeText)
	require.NoError(t, err)
	second, err := uc.Upload(context.Background(), DefaultUserID, "second.txt", resumeText)
	require.NoError(t, err)

	d, err := uc.Dashboard(DefaultUserID)
	require.NoError(t, err)
	assert.Equal(t, second.Analysis.ID, d.LatestAnalysis.ID)
	assert.Len(t, d.InterviewQuestions, 5)
	assert.Equal(t, 8+3+4, d.TotalInterviewQuestions)
	assert.Equal(t, second.InterviewQuestions[:5], d.InterviewQuestions)
	assert.Equal(t, second.Resume.ID, d.CareerRoadmap.ResumeID)

	assert.Len(t, uc.ListResumes(DefaultUserID), 2)
}

func TestLookups_NotFoundAsymmetry(t *testing.T) {
	uc, _ := newResumeUsecase(&fakeGenerator{}, 2)

	_, err := uc.GetAnalysis("missing")
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = uc.GetRoadmap("missing")
	assert.ErrorIs(t, err, ErrNotFound)

	qs := uc.GetInterviewQuestions("missing")
	assert.NotNil(t, qs)
	assert.Empty(t, qs)
	assert.NotNil(t, uc.ListResumes("nobody"))
}

func TestUpload_ConcurrentUploadsKeepSetsIntact(t *testing.T) {
	uc, store := newResumeUsecase(&fakeGenerator{}, 4)

	const uploads = 16
	results := make([]string, uploads)
	var wg sync.WaitGroup
	for i := 0; i < uploads; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			res, err := uc.Upload(context.Background(), DefaultUserID, fmt.Sprintf("cv%d.txt", i), strings.Repeat(resumeText, 2))
			if assert.NoError(t, err) {
				results[i] = res.Resume.ID
			}
		}()
	}
	wg.Wait()

	for _, resumeID := range results {
		qs := store.FindInterviewQuestionsByResumeID(resumeID)
		assert.Len(t, qs, 4+3+4)
		require.NotNil(t, store.FindRoadmapByResumeID(resumeID))
	}
	p := store.FindUserProgress(DefaultUserID)
	assert.Equal(t, uploads, p.TotalUploads)
	assert.Equal(t, uploads, p.CurrentStreak)
}
