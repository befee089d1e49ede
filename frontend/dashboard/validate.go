package dashboard

import (
	"errors"
	"strings"
)

var (
	errNoFile     = errors.New("Please select a CSV file to upload.")
	errNotCSV     = errors.New("Please upload a valid CSV file.")
	csvNameSuffix = ".csv"
)

// validateCSVFilename gates a candidate file by name only. The suffix match
// is deliberately case-sensitive, and no content sniffing happens here: the
// ingestion backend owns content validation.
func validateCSVFilename(name string) error {
	if strings.TrimSpace(name) == "" {
		return errNoFile
	}
	if !strings.HasSuffix(name, csvNameSuffix) {
		return errNotCSV
	}
	return nil
}
