package model

import "time"

const AchievementHighAtsScore = "high_ats_score"

// HighAtsScoreThreshold must be exceeded (not met) to earn AchievementHighAtsScore.
const HighAtsScoreThreshold = 80

type UserProgress struct {
	UserID        string     `json:"userId"`
	TotalUploads  int        `json:"totalUploads"`
	BestAtsScore  int        `json:"bestAtsScore"`
	CurrentStreak int        `json:"currentStreak"`
	Achievements  []string   `json:"achievements"`
	LastUploadAt  *time.Time `json:"lastUploadAt"`
}
