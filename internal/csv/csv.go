package csv

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
)

var bom = []byte{0xef, 0xbb, 0xbf}

// CSV is a parsed file split into its header record and data records.
type CSV struct {
	Header []string
	Body   [][]string
}

// Load reads r to the end, strips a UTF-8 BOM if present and parses the
// comma-separated records. Rows may differ in width; width checks belong to
// the caller.
func Load(r io.Reader) (*CSV, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	data = bytes.TrimPrefix(data, bom)
	reader := csv.NewReader(bytes.NewReader(data))
	reader.FieldsPerRecord = -1
	records, err := reader.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("empty csv")
	}
	return &CSV{
		Header: records[0],
		Body:   records[1:],
	}, nil
}
