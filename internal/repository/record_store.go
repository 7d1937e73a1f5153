package repository

import (
	"slices"
	"sync"
	"time"

	"github.com/fadilmartias/resume-reviewer/internal/dto"
	"github.com/fadilmartias/resume-reviewer/internal/model"
	"github.com/google/uuid"
)

const dashboardQuestionLimit = 5

// RecordStore is the in-memory repository behind every read endpoint.
// Collections keep insertion order. Absence is reported as nil or an empty
// slice, never as an error.
type RecordStore struct {
	mu        sync.RWMutex
	resumes   []model.Resume
	analyses  []model.Analysis
	questions []model.InterviewQuestion
	roadmaps  []model.Roadmap
	progress  map[string]*model.UserProgress
	now       func() time.Time
}

func NewRecordStore() *RecordStore {
	return &RecordStore{
		progress: make(map[string]*model.UserProgress),
		now:      time.Now,
	}
}

// RecordTx exposes the store's write operations inside Update, where the
// write lock is already held.
type RecordTx struct {
	s *RecordStore
}

// Update runs fn with the write lock held so a group of writes lands atomically.
func (r *RecordStore) Update(fn func(tx *RecordTx)) {
	r.mu.Lock()
	defer r.mu.Unlock()
	fn(&RecordTx{s: r})
}

func (r *RecordStore) CreateResume(resume model.Resume) model.Resume {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.createResume(resume)
}

func (r *RecordStore) AppendAnalysis(analysis model.Analysis) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.appendAnalysis(analysis)
}

func (r *RecordStore) ReplaceInterviewQuestions(resumeID string, questions []model.InterviewQuestion) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.replaceInterviewQuestions(resumeID, questions)
}

func (r *RecordStore) ReplaceRoadmap(resumeID string, roadmap model.Roadmap) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.replaceRoadmap(resumeID, roadmap)
}

func (r *RecordStore) BumpProgress(userID string, atsScore int) model.UserProgress {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.bumpProgress(userID, atsScore)
}

func (tx *RecordTx) CreateResume(resume model.Resume) model.Resume {
	return tx.s.createResume(resume)
}

func (tx *RecordTx) AppendAnalysis(analysis model.Analysis) {
	tx.s.appendAnalysis(analysis)
}

func (tx *RecordTx) ReplaceInterviewQuestions(resumeID string, questions []model.InterviewQuestion) {
	tx.s.replaceInterviewQuestions(resumeID, questions)
}

func (tx *RecordTx) ReplaceRoadmap(resumeID string, roadmap model.Roadmap) {
	tx.s.replaceRoadmap(resumeID, roadmap)
}

func (tx *RecordTx) BumpProgress(userID string, atsScore int) model.UserProgress {
	return tx.s.bumpProgress(userID, atsScore)
}

func (r *RecordStore) createResume(resume model.Resume) model.Resume {
	resume.ID = uuid.NewString()
	r.resumes = append(r.resumes, resume)
	if _, ok := r.progress[resume.UserID]; !ok {
		r.progress[resume.UserID] = newUserProgress(resume.UserID)
	}
	return resume
}

// appendAnalysis never replaces: a second analysis for the same resume is kept,
// but lookups by resume keep returning the first one.
func (r *RecordStore) appendAnalysis(analysis model.Analysis) {
	r.analyses = append(r.analyses, analysis)
}

func (r *RecordStore) replaceInterviewQuestions(resumeID string, questions []model.InterviewQuestion) {
	kept := make([]model.InterviewQuestion, 0, len(r.questions)+len(questions))
	for _, q := range r.questions {
		if q.ResumeID != resumeID {
			kept = append(kept, q)
		}
	}
	r.questions = append(kept, questions...)
}

func (r *RecordStore) replaceRoadmap(resumeID string, roadmap model.Roadmap) {
	kept := make([]model.Roadmap, 0, len(r.roadmaps)+1)
	for _, rm := range r.roadmaps {
		if rm.ResumeID != resumeID {
			kept = append(kept, rm)
		}
	}
	r.roadmaps = append(kept, roadmap)
}

// bumpProgress records one upload. CurrentStreak mirrors TotalUploads; it is
// not a consecutive-day streak.
func (r *RecordStore) bumpProgress(userID string, atsScore int) model.UserProgress {
	p, ok := r.progress[userID]
	if !ok {
		p = newUserProgress(userID)
		r.progress[userID] = p
	}
	p.TotalUploads++
	p.BestAtsScore = max(p.BestAtsScore, atsScore)
	p.CurrentStreak = p.TotalUploads
	if p.BestAtsScore > model.HighAtsScoreThreshold && !slices.Contains(p.Achievements, model.AchievementHighAtsScore) {
		p.Achievements = append(p.Achievements, model.AchievementHighAtsScore)
	}
	now := r.now()
	p.LastUploadAt = &now
	return cloneProgress(p)
}

func (r *RecordStore) FindUserProgress(userID string) *model.UserProgress {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.progress[userID]
	if !ok {
		return nil
	}
	c := cloneProgress(p)
	return &c
}

func (r *RecordStore) FindAnalysisByResumeID(resumeID string) *model.Analysis {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, a := range r.analyses {
		if a.ResumeID == resumeID {
			return &a
		}
	}
	return nil
}

func (r *RecordStore) FindInterviewQuestionsByResumeID(resumeID string) []model.InterviewQuestion {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.questionsFor(resumeID)
}

func (r *RecordStore) FindRoadmapByResumeID(resumeID string) *model.Roadmap {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.roadmapFor(resumeID)
}

func (r *RecordStore) FindResumesByUserID(userID string) []model.Resume {
	r.mu.RLock()
	defer r.mu.RUnlock()
	resumes := []model.Resume{}
	for _, res := range r.resumes {
		if res.UserID == userID {
			resumes = append(resumes, res)
		}
	}
	return resumes
}

// GetDashboard assembles the user's summary. LatestAnalysis is the newest
// analysis of any of the user's resumes, while the questions and roadmap come
// from the user's newest resume; the two are picked independently.
func (r *RecordStore) GetDashboard(userID string) dto.DashboardDTO {
	r.mu.RLock()
	defer r.mu.RUnlock()

	dashboard := dto.DashboardDTO{
		InterviewQuestions: []model.InterviewQuestion{},
	}
	if p, ok := r.progress[userID]; ok {
		c := cloneProgress(p)
		dashboard.UserProgress = &c
	}

	owned := make(map[string]bool)
	var latestResume *model.Resume
	for i := range r.resumes {
		if r.resumes[i].UserID == userID {
			owned[r.resumes[i].ID] = true
			latestResume = &r.resumes[i]
		}
	}

	for i := len(r.analyses) - 1; i >= 0; i-- {
		if owned[r.analyses[i].ResumeID] {
			a := r.analyses[i]
			dashboard.LatestAnalysis = &a
			break
		}
	}
	if dashboard.LatestAnalysis == nil || latestResume == nil {
		return dashboard
	}

	questions := r.questionsFor(latestResume.ID)
	dashboard.TotalInterviewQuestions = len(questions)
	if len(questions) > dashboardQuestionLimit {
		questions = questions[:dashboardQuestionLimit]
	}
	dashboard.InterviewQuestions = questions
	dashboard.CareerRoadmap = r.roadmapFor(latestResume.ID)
	return dashboard
}

func (r *RecordStore) questionsFor(resumeID string) []model.InterviewQuestion {
	questions := []model.InterviewQuestion{}
	for _, q := range r.questions {
		if q.ResumeID == resumeID {
			questions = append(questions, q)
		}
	}
	return questions
}

func (r *RecordStore) roadmapFor(resumeID string) *model.Roadmap {
	for _, rm := range r.roadmaps {
		if rm.ResumeID == resumeID {
			return &rm
		}
	}
	return nil
}

func newUserProgress(userID string) *model.UserProgress {
	return &model.UserProgress{
		UserID:       userID,
		Achievements: []string{},
	}
}

func cloneProgress(p *model.UserProgress) model.UserProgress {
	c := *p
	c.Achievements = slices.Clone(p.Achievements)
	if c.Achievements == nil {
		c.Achievements = []string{}
	}
	if p.LastUploadAt != nil {
		t := *p.LastUploadAt
		c.LastUploadAt = &t
	}
	return c
}
