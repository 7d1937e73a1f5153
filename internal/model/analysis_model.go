package model

type Feedback struct {
	Strengths    []string `json:"strengths"`
	Improvements []string `json:"improvements"`
	Issues       []string `json:"issues"`
}

// Analysis is the scored review of one resume. ResumeID is a back-reference only.
type Analysis struct {
	ID               string   `json:"id"`
	ResumeID         string   `json:"resumeId"`
	AtsScore         int      `json:"ats_score" validate:"min=0,max=100"`
	OverallScore     int      `json:"overall_score" validate:"min=0,max=100"`
	KeywordMatch     int      `json:"keyword_match" validate:"min=0,max=100"`
	FormatQuality    int      `json:"format_quality" validate:"min=0,max=100"`
	GrammarStyle     int      `json:"grammar_style" validate:"min=0,max=100"`
	ContentStrength  int      `json:"content_strength" validate:"min=0,max=100"`
	Feedback         Feedback `json:"feedback"`
	SkillsIdentified []string `json:"skillsIdentified"`
	CareerStage      string   `json:"careerStage"`
}
