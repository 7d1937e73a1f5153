package dto

import "github.com/fadilmartias/resume-reviewer/internal/model"

type DashboardDTO struct {
	UserProgress            *model.UserProgress       `json:"userProgress"`
	LatestAnalysis          *model.Analysis           `json:"latestAnalysis"`
	InterviewQuestions      []model.InterviewQuestion `json:"interviewQuestions"`
	CareerRoadmap           *model.Roadmap            `json:"careerRoadmap"`
	TotalInterviewQuestions int                       `json:"totalInterviewQuestions"`
}
