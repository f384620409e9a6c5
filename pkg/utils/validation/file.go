package validation

import (
	"errors"
	"mime/multipart"
	"path/filepath"
	"strings"
)

var (
	ErrFileSize     = errors.New("file size exceeds limit of 10MB")
	ErrImageType    = errors.New("invalid file type. Allowed types: JPG, PNG, WEBP")
	ErrDocumentType = errors.New("invalid file type. Allowed types: PDF, DOC, DOCX")
	ErrFileRequired = errors.New("no file provided")
)

const MaxFileSize = 10 * 1024 * 1024 // 10MB

var AllowedImageTypes = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".webp": true,
}

var AllowedDocumentTypes = map[string]bool{
	".pdf":  true,
	".doc":  true,
	".docx": true,
}

func ValidateImage(file *multipart.FileHeader) error {
	if file == nil {
		return ErrFileRequired
	}

	if file.Size > MaxFileSize {
		return ErrFileSize
	}

	ext := filepath.Ext(strings.ToLower(file.Filename))
	if !AllowedImageTypes[ext] {
		return ErrImageType
	}

	return nil
}

// ValidateDocument CV ve katalog dosyaları için
func ValidateDocument(file *multipart.FileHeader) error {
	if file == nil {
		return ErrFileRequired
	}

	if file.Size > MaxFileSize {
		return ErrFileSize
	}

	ext := filepath.Ext(strings.ToLower(file.Filename))
	if !AllowedDocumentTypes[ext] {
		return ErrDocumentType
	}

	return nil
}
