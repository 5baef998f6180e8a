package ouaudit

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// CSVHeader is the column order of the export file.
var CSVHeader = []string{
	"identity", "rights", "isInherited", "objectType", "owner", "distinguishedName",
}

// Row renders the finding as one CSV record. Values are verbatim, a
// parsed back row reproduces the finding exactly.
func (f AuditFinding) Row() []string {
	return []string{
		f.Identity,
		f.Rights.String(),
		strconv.FormatBool(f.IsInherited),
		f.ObjectType,
		f.Owner,
		f.DistinguishedName,
	}
}

// ExportCSV writes the findings to a timestamped file in dir and
// returns its path. The timestamp in the name avoids clobbering the
// output of earlier runs.
func ExportCSV(findings []AuditFinding, dir string, now time.Time) (string, error) {
	path := filepath.Join(dir, fmt.Sprintf("ouaudit_%s.csv", now.Format("20060102_150405")))

	file, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer file.Close()

	w := csv.NewWriter(file)
	if err := w.Write(CSVHeader); err != nil {
		return "", err
	}
	for _, f := range findings {
		if err := w.Write(f.Row()); err != nil {
			return "", err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return "", err
	}
	return path, nil
}
