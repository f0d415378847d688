package rsaattack

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"math/big"
	"os"
	"strings"

	"github.com/pkg/errors"
)

// TargetParser defines the interface for reading attack targets from
// various sources.
type TargetParser interface {
	// ParseTargets parses targets from a source and returns them.
	ParseTargets(source string) ([]*Target, error)
}

// JSONParser parses attack targets from JSON files.
type JSONParser struct {
	EField string // field name for the public exponent (default: "e")
	NField string // field name for the modulus (default: "n")
	CField string // field name for an optional ciphertext (default: "c")
}

// ParseTargets parses targets from a JSON file.
//
// Expected format:
//
//	[
//	  {"e": "65537", "n": "0x..."},
//	  {"e": "3", "n": "...", "c": "..."}
//	]
//
// Values may be decimal or hex strings (0x prefix) or JSON numbers.
func (p *JSONParser) ParseTargets(jsonFile string) ([]*Target, error) {
	file, err := os.Open(jsonFile)
	if err != nil {
		return nil, errors.Wrap(err, "opening file")
	}
	defer file.Close()

	decoder := json.NewDecoder(file)
	decoder.UseNumber() // preserve large numbers as json.Number instead of float64

	var items []map[string]interface{}
	if err := decoder.Decode(&items); err != nil {
		return nil, errors.Wrap(err, "decoding JSON")
	}

	eField := fieldOrDefault(p.EField, "e")
	nField := fieldOrDefault(p.NField, "n")
	cField := fieldOrDefault(p.CField, "c")

	targets := make([]*Target, 0, len(items))
	for i, item := range items {
		eVal, ok := item[eField]
		if !ok {
			return nil, errors.Wrapf(ErrInvalidInput, "record %d: missing field %q", i, eField)
		}
		e, err := parseBigInt(eVal)
		if err != nil {
			return nil, errors.Wrapf(err, "record %d: field %q", i, eField)
		}

		nVal, ok := item[nField]
		if !ok {
			return nil, errors.Wrapf(ErrInvalidInput, "record %d: missing field %q", i, nField)
		}
		n, err := parseBigInt(nVal)
		if err != nil {
			return nil, errors.Wrapf(err, "record %d: field %q", i, nField)
		}

		target := &Target{Key: &PublicKey{E: e, N: n}}
		if cVal, ok := item[cField]; ok {
			c, err := parseBigInt(cVal)
			if err != nil {
				return nil, errors.Wrapf(err, "record %d: field %q", i, cField)
			}
			target.Ciphertext = c
		}
		targets = append(targets, target)
	}
	return targets, nil
}

// CSVParser parses attack targets from CSV files with a header row.
type CSVParser struct {
	ECol string // column name for the public exponent (default: "e")
	NCol string // column name for the modulus (default: "n")
	CCol string // column name for an optional ciphertext (default: "c")
}

// ParseTargets parses targets from a CSV file.
func (p *CSVParser) ParseTargets(csvFile string) ([]*Target, error) {
	file, err := os.Open(csvFile)
	if err != nil {
		return nil, errors.Wrap(err, "opening file")
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, errors.Wrap(err, "reading header")
	}

	eCol := fieldOrDefault(p.ECol, "e")
	nCol := fieldOrDefault(p.NCol, "n")
	cCol := fieldOrDefault(p.CCol, "c")

	eIdx, nIdx, cIdx := -1, -1, -1
	for i, col := range header {
		switch col {
		case eCol:
			eIdx = i
		case nCol:
			nIdx = i
		case cCol:
			cIdx = i
		}
	}
	if eIdx == -1 || nIdx == -1 {
		return nil, errors.Wrapf(ErrInvalidInput, "missing required columns %q or %q", eCol, nCol)
	}

	var targets []*Target
	for line := 2; ; line++ {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrapf(err, "reading line %d", line)
		}
		if eIdx >= len(record) || nIdx >= len(record) {
			return nil, errors.Wrapf(ErrInvalidInput, "line %d: too few columns", line)
		}

		e, err := parseBigInt(record[eIdx])
		if err != nil {
			return nil, errors.Wrapf(err, "line %d: column %q", line, eCol)
		}
		n, err := parseBigInt(record[nIdx])
		if err != nil {
			return nil, errors.Wrapf(err, "line %d: column %q", line, nCol)
		}

		target := &Target{Key: &PublicKey{E: e, N: n}}
		if cIdx >= 0 && cIdx < len(record) && record[cIdx] != "" {
			c, err := parseBigInt(record[cIdx])
			if err != nil {
				return nil, errors.Wrapf(err, "line %d: column %q", line, cCol)
			}
			target.Ciphertext = c
		}
		targets = append(targets, target)
	}
	return targets, nil
}

func fieldOrDefault(field, fallback string) string {
	if field == "" {
		return fallback
	}
	return field
}

// parseBigInt parses a big integer from the formats target files use:
// decimal strings, hex strings with a 0x prefix, bare hex containing
// letters, and JSON numbers.
func parseBigInt(val interface{}) (*big.Int, error) {
	switch v := val.(type) {
	case string:
		s := strings.TrimSpace(v)
		hadPrefix := strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X")
		s = strings.TrimPrefix(s, "0x")
		s = strings.TrimPrefix(s, "0X")
		if s == "" {
			return nil, errors.Wrap(ErrInvalidInput, "empty number")
		}

		base := 10
		if hadPrefix || strings.ContainsAny(s, "abcdefABCDEF") {
			base = 16
		}
		z, ok := new(big.Int).SetString(s, base)
		if !ok {
			return nil, errors.Wrapf(ErrInvalidInput, "invalid number format: %s", v)
		}
		return z, nil

	case json.Number:
		z, ok := new(big.Int).SetString(string(v), 10)
		if !ok {
			return nil, errors.Wrapf(ErrInvalidInput, "invalid number format: %s", v)
		}
		return z, nil

	case float64:
		return big.NewInt(int64(v)), nil

	case int64:
		return big.NewInt(v), nil

	case int:
		return big.NewInt(int64(v)), nil

	default:
		return nil, errors.Wrapf(ErrInvalidInput, "unsupported type: %T", val)
	}
}
