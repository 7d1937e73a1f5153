package service

import (
	"fmt"
	"strings"

	"google.golang.org/genai"
)

const analysisSystemPrompt = `You are an expert resume analyzer and ATS specialist. Analyze the provided resume text and provide comprehensive feedback.

Provide scores (0-100) for:
- ats_score: ATS (Applicant Tracking System) compatibility and keyword optimization
- overall_score: Overall resume quality and effectiveness
- keyword_match: Relevance and density of industry keywords
- format_quality: Structure, organization, and visual appeal
- grammar_style: Language quality, grammar, and writing style
- content_strength: Impact of achievements, quantified results, and experience depth

Identify:
- strengths: Top 3-5 strong points (skills, achievements, experiences)
- improvements: 3-5 areas for improvement (missing skills, weak experience, etc.)
- issues: 2-4 critical problems (formatting issues, inconsistent dates, missing sections)
- skills: 10-20 technical and professional skills identified
- career stage: Current career level (entry, junior, mid, senior, executive)`

const roadmapSystemPrompt = `You are an expert career coach and industry advisor. Create a highly personalized career roadmap based on the resume content.

Analyze the candidate's:
- Current experience level and career trajectory
- Technical skills and expertise areas
- Industry and role focus
- Career gaps and growth opportunities

Provide:
- currentSkills: Assess proficiency levels (beginner/intermediate/advanced/expert) for identified skills
- recommendedSkills: Suggest 5-8 high-impact skills with priority (high/medium/low) and detailed descriptions
- actionPlan: Create 6-10 specific, actionable tasks with realistic timelines (1-12 weeks) and priorities (1-5)
- timelineWeeks: Overall roadmap duration (12-52 weeks)

Focus on skills and actions that will have the biggest career impact for their specific role and industry.`

func questionsSystemPrompt(count int) string {
	return fmt.Sprintf(`You are an expert technical interviewer. Generate %d technical interview questions based on the resume.
Focus ONLY on technical questions related to:
- Programming languages and frameworks mentioned
- Technical skills and tools
- System design and architecture
- Problem-solving and coding challenges
- Technology-specific best practices

Each question should include: question, sampleAnswer (2-3 sentences), difficulty (easy/medium/hard).`, count)
}

func analysisUserPrompt(resumeText string) string {
	return "Analyze this resume:\n\n" + resumeText
}

func questionsUserPrompt(resumeText string) string {
	return "Generate technical interview questions for this resume:\n\n" + resumeText
}

func roadmapUserPrompt(resumeText string, skills []string) string {
	return fmt.Sprintf(`Create a personalized career roadmap for this professional:

Resume Content:
%s

Identified Skills: %s

Focus on their specific industry, role, and career level to provide the most relevant recommendations.`, resumeText, strings.Join(skills, ", "))
}

func stringArray(minItems, maxItems int64) *genai.Schema {
	s := &genai.Schema{Type: genai.TypeArray, Items: &genai.Schema{Type: genai.TypeString}}
	if minItems > 0 {
		s.MinItems = genai.Ptr(minItems)
	}
	if maxItems > 0 {
		s.MaxItems = genai.Ptr(maxItems)
	}
	return s
}

func boundedNumber(minimum, maximum float64) *genai.Schema {
	return &genai.Schema{Type: genai.TypeNumber, Minimum: genai.Ptr(minimum), Maximum: genai.Ptr(maximum)}
}

func analysisSchema() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"ats_score":        boundedNumber(0, 100),
			"overall_score":    boundedNumber(0, 100),
			"keyword_match":    boundedNumber(0, 100),
			"format_quality":   boundedNumber(0, 100),
			"grammar_style":    boundedNumber(0, 100),
			"content_strength": boundedNumber(0, 100),
			"feedback": {
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"strengths":    stringArray(3, 5),
					"improvements": stringArray(3, 5),
					"issues":       stringArray(2, 4),
				},
				Required: []string{"strengths", "improvements", "issues"},
			},
			"skillsIdentified": stringArray(10, 20),
			"careerStage": {
				Type: genai.TypeString,
				Enum: []string{"entry", "junior", "mid", "senior", "executive"},
			},
		},
		Required: []string{
			"ats_score", "overall_score", "keyword_match", "format_quality",
			"grammar_style", "content_strength", "feedback", "skillsIdentified", "careerStage",
		},
	}
}

func questionsSchema() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"questions": {
				Type: genai.TypeArray,
				Items: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"question":     {Type: genai.TypeString},
						"sampleAnswer": {Type: genai.TypeString},
						"type":         {Type: genai.TypeString, Enum: []string{"technical"}},
						"difficulty":   {Type: genai.TypeString, Enum: []string{"easy", "medium", "hard"}},
					},
					Required: []string{"question", "sampleAnswer", "type", "difficulty"},
				},
			},
		},
		Required: []string{"questions"},
	}
}

func roadmapSchema() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"currentSkills": {
				Type: genai.TypeArray,
				Items: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"name":  {Type: genai.TypeString},
						"level": {Type: genai.TypeString, Enum: []string{"beginner", "intermediate", "advanced", "expert"}},
					},
					Required: []string{"name", "level"},
				},
				MinItems: genai.Ptr[int64](5),
				MaxItems: genai.Ptr[int64](15),
			},
			"recommendedSkills": {
				Type: genai.TypeArray,
				Items: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"name":        {Type: genai.TypeString},
						"priority":    {Type: genai.TypeString, Enum: []string{"high", "medium", "low"}},
						"description": {Type: genai.TypeString},
					},
					Required: []string{"name", "priority", "description"},
				},
				MinItems: genai.Ptr[int64](5),
				MaxItems: genai.Ptr[int64](8),
			},
			"actionPlan": {
				Type: genai.TypeArray,
				Items: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"task":           {Type: genai.TypeString},
						"estimatedWeeks": boundedNumber(1, 12),
						"priority":       boundedNumber(1, 5),
					},
					Required: []string{"task", "estimatedWeeks", "priority"},
				},
				MinItems: genai.Ptr[int64](6),
				MaxItems: genai.Ptr[int64](10),
			},
			"timelineWeeks": boundedNumber(12, 52),
		},
		Required: []string{"currentSkills", "recommendedSkills", "actionPlan", "timelineWeeks"},
	}
}

// jsonInstruction is appended to system prompts for providers without
// schema-constrained output.
func jsonInstruction(example string) string {
	return "\n\nReturn your answer STRICTLY as a single JSON object with this shape and no surrounding text:\n" + example
}

const analysisJSONShape = `{"ats_score": 0, "overall_score": 0, "keyword_match": 0, "format_quality": 0, "grammar_style": 0, "content_strength": 0, "feedback": {"strengths": [""], "improvements": [""], "issues": [""]}, "skillsIdentified": [""], "careerStage": "entry|junior|mid|senior|executive"}`

const questionsJSONShape = `{"questions": [{"question": "", "sampleAnswer": "", "type": "technical", "difficulty": "easy|medium|hard"}]}`

const roadmapJSONShape = `{"currentSkills": [{"name": "", "level": "beginner|intermediate|advanced|expert"}], "recommendedSkills": [{"name": "", "priority": "high|medium|low", "description": ""}], "actionPlan": [{"task": "", "estimatedWeeks": 1, "priority": 1}], "timelineWeeks": 12}`
