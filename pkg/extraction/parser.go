package extraction

import (
	"archive/zip"
	"bytes"
	"io"
	"path/filepath"
	"regexp"
	"strings"
	"unicode"

	pdf "github.com/ledongthuc/pdf"

	"github.com/artem13815/resume-screening/pkg/errs"
)

// ParseText extracts plain text from supported resume formats.
// Supports: pdf, docx, doc (best effort) and txt.
//
// Формат выбирается по mime-типу, установленному валидатором: имя файла
// может вовсе не иметь расширения (сниффинг по сигнатуре). Расширение —
// только запасной путь для пустого или незнакомого mime.
func ParseText(filename, mimeType string, data []byte) (string, error) {
	switch mimeType {
	case "application/pdf":
		return extractTextFromPDF(data)
	case "application/vnd.openxmlformats-officedocument.wordprocessingml.document":
		return extractTextFromDocx(data)
	case "application/msword":
		return extractTextFromDoc(data)
	case "text/plain":
		return normalizeWhitespace(string(data)), nil
	}

	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".pdf":
		return extractTextFromPDF(data)
	case ".docx":
		return extractTextFromDocx(data)
	case ".doc":
		return extractTextFromDoc(data)
	case ".txt":
		return normalizeWhitespace(string(data)), nil
	default:
		return "", errs.New(errs.KindValidation, "unsupported file format: only pdf, docx, doc and txt are allowed")
	}
}

func extractTextFromPDF(data []byte) (string, error) {
	reader := bytes.NewReader(data)
	r, err := pdf.NewReader(reader, int64(len(data)))
	if err != nil {
		return "", errs.Wrap(errs.KindExtractionRejected, "broken pdf", err)
	}
	rs, err := r.GetPlainText()
	if err != nil {
		return "", errs.Wrap(errs.KindExtractionRejected, "pdf has no extractable text", err)
	}
	var buf bytes.Buffer
	if _, err = io.Copy(&buf, rs); err != nil {
		return "", errs.Wrap(errs.KindExtractionRejected, "pdf read failed", err)
	}
	return normalizeWhitespace(buf.String()), nil
}

func extractTextFromDocx(data []byte) (string, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", errs.Wrap(errs.KindExtractionRejected, "broken docx archive", err)
	}
	var docXML []byte
	for _, f := range zr.File {
		if f.Name == "word/document.xml" {
			rc, err := f.Open()
			if err != nil {
				return "", errs.Wrap(errs.KindExtractionRejected, "broken docx entry", err)
			}
			defer rc.Close()
			docXML, err = io.ReadAll(rc)
			if err != nil {
				return "", errs.Wrap(errs.KindExtractionRejected, "docx read failed", err)
			}
			break
		}
	}
	if len(docXML) == 0 {
		return "", errs.New(errs.KindExtractionRejected, "no document.xml found in docx")
	}
	xml := string(docXML)
	// Convert paragraph boundaries to newlines (very naive but effective).
	xml = strings.ReplaceAll(xml, "</w:p>", "\n")
	xml = strings.ReplaceAll(xml, "<w:tab/>", "\t")
	// Remove all XML tags.
	reTags := regexp.MustCompile(`<[^>]+>`)
	txt := reTags.ReplaceAllString(xml, " ")
	return normalizeWhitespace(txt), nil
}

// extractTextFromDoc делает лучшее возможное для legacy .doc без внешних
// конвертеров: оставляет только печатные последовательности из бинарного
// потока. Качество хуже docx, но для LLM этого обычно достаточно.
func extractTextFromDoc(data []byte) (string, error) {
	var b strings.Builder
	var run []rune
	flush := func() {
		// Short runs are compound-file noise, not prose.
		if len(run) >= 4 {
			b.WriteString(string(run))
			b.WriteByte('\n')
		}
		run = run[:0]
	}
	for _, r := range string(data) {
		if unicode.IsPrint(r) && r != unicode.ReplacementChar {
			run = append(run, r)
			continue
		}
		flush()
	}
	flush()
	txt := normalizeWhitespace(b.String())
	if txt == "" {
		return "", errs.New(errs.KindExtractionRejected, "no extractable text in doc")
	}
	return txt, nil
}

func normalizeWhitespace(s string) string {
	// Collapse excessive whitespace and trim
	re := regexp.MustCompile(`[ \t\r\f\v]+`)
	s = re.ReplaceAllString(s, " ")
	s = strings.ReplaceAll(s, " ", " ")
	// Preserve newlines but collapse runs
	reN := regexp.MustCompile(`\n+`)
	s = reN.ReplaceAllString(s, "\n")
	return strings.TrimSpace(s)
}
