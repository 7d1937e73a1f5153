package usecase

import "errors"

var (
	// ErrInsufficientText means extraction produced too little text to analyze.
	ErrInsufficientText = errors.New("could not extract text. The file may be empty, scanned, or unsupported")
	ErrNotFound         = errors.New("not found")
)
