package klayout

import (
	"bytes"
	"encoding/xml"
	"strings"

	"github.com/teranos/precheck/errors"
)

// itemMarker opens one violation in a KLayout report database.
var itemMarker = []byte("<item>")

// HasViolations reports whether the report database lists any item.
func HasViolations(report []byte) bool {
	return bytes.Contains(report, itemMarker)
}

type reportDatabase struct {
	XMLName xml.Name     `xml:"report-database"`
	Items   []reportItem `xml:"items>item"`
}

type reportItem struct {
	Category string `xml:"category"`
	Cell     string `xml:"cell"`
}

// CountCategories returns the number of items per rule category. Category
// names are unquoted.
func CountCategories(report []byte) (map[string]int, error) {
	var db reportDatabase
	if err := xml.Unmarshal(report, &db); err != nil {
		return nil, errors.Wrap(err, "failed to parse report database")
	}
	counts := make(map[string]int)
	for _, it := range db.Items {
		counts[strings.Trim(strings.TrimSpace(it.Category), "'")]++
	}
	return counts, nil
}
