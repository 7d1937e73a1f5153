package model

type Resume struct {
	ID           string `json:"id"`
	UserID       string `json:"userId"`
	Filename     string `json:"filename"`
	OriginalText string `json:"originalText"`
}
