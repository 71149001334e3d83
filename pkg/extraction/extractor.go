package extraction

import (
	"context"

	"github.com/artem13815/resume-screening/pkg/resume"
)

// Extractor turns raw resume bytes into a structured record.
//
// Реализации обязаны возвращать ошибки из pkg/errs: шлюз повторяет только
// транспортные сбои, всё остальное считается окончательным отказом.
type Extractor interface {
	Extract(ctx context.Context, filename, mimeType string, data []byte) (resume.Record, error)
}
