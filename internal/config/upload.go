package config

import (
	"sync"
)

type UploadConfig struct {
	Dir            string
	MaxFileSize    int64
	PDFOCRFallback bool
}

var (
	uploadConfig *UploadConfig
	uploadOnce   sync.Once
)

func LoadUploadConfig() *UploadConfig {
	uploadOnce.Do(func() {
		maxMB := getEnvInt("MAX_UPLOAD_MB", 5)
		if maxMB <= 0 {
			maxMB = 5
		}
		uploadConfig = &UploadConfig{
			Dir:            getEnv("UPLOAD_DIR", "./uploads"),
			MaxFileSize:    int64(maxMB) * 1024 * 1024,
			PDFOCRFallback: getEnvBool("PDF_OCR_FALLBACK", false),
		}
	})
	return uploadConfig
}
