package extract

import (
	"bytes"
	"strings"

	"github.com/ledongthuc/pdf"
)

// extractPDF concatenates the plain text of every page in order.
// The pdf reader panics on some corrupt streams, so panics become an ExtractionError.
func extractPDF(blob []byte) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			text = ""
			err = extractionErrorf("panic during PDF extraction: %v", r)
		}
	}()

	if len(blob) == 0 {
		return "", extractionErrorf("empty PDF")
	}

	r, openErr := pdf.NewReader(bytes.NewReader(blob), int64(len(blob)))
	if openErr != nil {
		return "", extractionErrorf("failed to open PDF: %v", openErr)
	}

	var sb strings.Builder
	for i := 1; i <= r.NumPage(); i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}
		pageText, pageErr := page.GetPlainText(nil)
		if pageErr != nil {
			return "", extractionErrorf("page %d: %v", i, pageErr)
		}
		sb.WriteString(pageText)
	}

	return sb.String(), nil
}
