// Package upload validates resume files before a job is created.
package upload

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/artem13815/resume-screening/pkg/errs"
)

// DefaultMaxBytes — лимит размера файла по умолчанию (10 MiB).
const DefaultMaxBytes int64 = 10 << 20

// Typed причины отказа: обработчик различает их для 413 vs 415.
var (
	ErrTooLarge        = errors.New("file exceeds the size limit")
	ErrUnsupportedType = errors.New("unsupported file type")
)

// TypeDetector — опциональная возможность определения типа по сигнатуре
// файла. Когда отсутствует, валидатор молча доверяет расширению имени:
// это деградация точности, а не ошибка.
type TypeDetector interface {
	Detect(data []byte) (mime string, ext string)
}

var allowedExtensions = map[string]string{
	".pdf":  "application/pdf",
	".docx": "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
	".doc":  "application/msword",
	".txt":  "text/plain",
}

// Validator проверяет загрузку по размеру и типу.
type Validator struct {
	maxBytes int64
	detector TypeDetector
}

// NewValidator builds a validator. detector may be nil: the capability is
// wired in by configuration, never discovered through runtime failures.
func NewValidator(maxBytes int64, detector TypeDetector) *Validator {
	if maxBytes <= 0 {
		maxBytes = DefaultMaxBytes
	}
	return &Validator{maxBytes: maxBytes, detector: detector}
}

// Validate returns the effective mime type for an acceptable file, or a
// validation error naming the violated constraint.
func (v *Validator) Validate(filename string, data []byte) (string, error) {
	if int64(len(data)) > v.maxBytes {
		return "", errs.Wrap(errs.KindValidation,
			fmt.Sprintf("file size %d exceeds maximum allowed size %d", len(data), v.maxBytes),
			ErrTooLarge)
	}

	ext := strings.ToLower(filepath.Ext(filename))

	if v.detector != nil {
		mime, sniffedExt := v.detector.Detect(data)
		// Prefer the canonical mapping: sniffers report docx as a
		// zip-derived type with parameters.
		if canonical, ok := allowedExtensions[sniffedExt]; ok {
			return canonical, nil
		}
		return "", errs.Wrap(errs.KindValidation,
			fmt.Sprintf("unsupported file type %q: allowed are pdf, docx, doc, txt", mime),
			ErrUnsupportedType)
	}

	// Extension fallback.
	mime, ok := allowedExtensions[ext]
	if !ok {
		return "", errs.Wrap(errs.KindValidation,
			fmt.Sprintf("unsupported file extension %q: allowed are .pdf, .docx, .doc, .txt", ext),
			ErrUnsupportedType)
	}
	return mime, nil
}

// MaxBytes reports the configured size limit.
func (v *Validator) MaxBytes() int64 { return v.maxBytes }
