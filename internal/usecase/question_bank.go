package usecase

import (
	"github.com/fadilmartias/resume-reviewer/internal/model"
	"github.com/google/uuid"
)

type bankQuestion struct {
	question     string
	sampleAnswer string
	difficulty   string
}

var behavioralBank = []bankQuestion{
	{
		question:     "Tell me about a time when you had to work under pressure to meet a tight deadline.",
		sampleAnswer: "I prioritized tasks, communicated with stakeholders, and delivered the project on time by working efficiently and staying focused.",
		difficulty:   model.DifficultyMedium,
	},
	{
		question:     "Describe a situation where you had to resolve a conflict with a team member.",
		sampleAnswer: "I listened to their concerns, found common ground, and worked together to reach a solution that benefited the project.",
		difficulty:   model.DifficultyMedium,
	},
	{
		question:     "How do you handle feedback and criticism?",
		sampleAnswer: "I view feedback as an opportunity to grow, listen actively, and implement suggestions to improve my performance.",
		difficulty:   model.DifficultyEasy,
	},
}

var situationalBank = []bankQuestion{
	{
		question:     "If you discovered a security vulnerability in production code, what would be your immediate steps?",
		sampleAnswer: "I would immediately assess the severity, document the vulnerability, notify the security team and management, implement a temporary fix if possible, and coordinate a proper patch deployment.",
		difficulty:   model.DifficultyHard,
	},
	{
		question:     "How would you handle a situation where a project deadline is at risk due to technical challenges?",
		sampleAnswer: "I would analyze the blockers, communicate transparently with stakeholders about risks and options, propose solutions like scope reduction or timeline adjustment, and focus the team on critical path items.",
		difficulty:   model.DifficultyMedium,
	},
	{
		question:     "What would you do if you disagreed with a technical decision made by your team lead?",
		sampleAnswer: "I would prepare my concerns with data and alternatives, request a private discussion to present my viewpoint respectfully, listen to their reasoning, and support the final decision while documenting any risks.",
		difficulty:   model.DifficultyMedium,
	},
	{
		question:     "How would you approach debugging a performance issue in a system you're unfamiliar with?",
		sampleAnswer: "I would start by gathering metrics and logs, identify the bottleneck areas, review documentation and code, use profiling tools, and collaborate with team members familiar with the system.",
		difficulty:   model.DifficultyHard,
	},
}

// assembleQuestions returns the stored question set for a resume in display
// order: generated technical questions, then behavioral, then situational.
func assembleQuestions(resumeID string, technical []model.InterviewQuestion) []model.InterviewQuestion {
	out := make([]model.InterviewQuestion, 0, len(technical)+len(behavioralBank)+len(situationalBank))
	for _, q := range technical {
		q.ID = uuid.NewString()
		q.ResumeID = resumeID
		q.Type = model.QuestionTypeTechnical
		out = append(out, q)
	}
	out = appendBank(out, resumeID, model.QuestionTypeBehavioral, behavioralBank)
	return appendBank(out, resumeID, model.QuestionTypeSituational, situationalBank)
}

func appendBank(out []model.InterviewQuestion, resumeID, questionType string, bank []bankQuestion) []model.InterviewQuestion {
	for _, b := range bank {
		out = append(out, model.InterviewQuestion{
			ID:           uuid.NewString(),
			ResumeID:     resumeID,
			Question:     b.question,
			SampleAnswer: b.sampleAnswer,
			Type:         questionType,
			Difficulty:   b.difficulty,
		})
	}
	return out
}
