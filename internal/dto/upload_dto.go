package dto

import "github.com/fadilmartias/resume-reviewer/internal/model"

type UploadResultDTO struct {
	Resume             model.Resume              `json:"resume"`
	Analysis           model.Analysis            `json:"analysis"`
	InterviewQuestions []model.InterviewQuestion `json:"interviewQuestions"`
	CareerRoadmap      model.Roadmap             `json:"careerRoadmap"`
	Processing         bool                      `json:"processing"`
	Message            string                    `json:"message"`
}
