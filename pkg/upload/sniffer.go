package upload

import "github.com/gabriel-vasile/mimetype"

// Sniffer определяет тип файла по сигнатуре (magic numbers) через
// gabriel-vasile/mimetype. Подключается флагом SNIFF_CONTENT.
type Sniffer struct{}

func NewSniffer() *Sniffer { return &Sniffer{} }

func (Sniffer) Detect(data []byte) (string, string) {
	m := mimetype.Detect(data)
	return m.String(), m.Extension()
}

// compile-time check
var _ TypeDetector = (*Sniffer)(nil)
