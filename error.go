package hue

import "fmt"

var (
	// Base error; every error in hue inherits from this
	Err = fmt.Errorf("hue error")

	// Lookup and load errors
	ErrUnsupportedLanguage = fmt.Errorf("unsupported language (%w)", Err)
	ErrPatternFileNotFound = fmt.Errorf("pattern file not found (%w)", Err)
	ErrPatternFileParse    = fmt.Errorf("pattern file parse error (%w)", Err)
	ErrUnknownFormat       = fmt.Errorf("unknown format (%w)", Err)

	// Specific parse errors
	ErrInvalidPattern = fmt.Errorf("invalid pattern (%w)", ErrPatternFileParse)
	ErrMissingGroup   = fmt.Errorf("missing pattern group (%w)", ErrPatternFileParse)
	ErrUnknownGroup   = fmt.Errorf("unknown pattern group (%w)", ErrPatternFileParse)
	ErrInvalidGroup   = fmt.Errorf("invalid pattern group (%w)", ErrPatternFileParse)
)
