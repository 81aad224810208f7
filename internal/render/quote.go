package render

import (
	"database/sql/driver"
	"encoding/hex"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// QuoteStyle describes how a dialect writes literals.
type QuoteStyle struct {
	True        string
	False       string
	Backslashes bool   // escape backslashes inside strings
	TimeLayout  string // layout for time.Time; quoted as a string
	Bytes       func([]byte) string
}

// HexBytes renders bytes as X'..', accepted by MySQL and SQLite.
func HexBytes(b []byte) string {
	return "X'" + hex.EncodeToString(b) + "'"
}

// Quote renders a scalar as a SQL literal.
func (s QuoteStyle) Quote(v any) (string, error) {
	switch x := v.(type) {
	case nil:
		return "NULL", nil
	case bool:
		if x {
			return s.True, nil
		}
		return s.False, nil
	case int:
		return strconv.FormatInt(int64(x), 10), nil
	case int8:
		return strconv.FormatInt(int64(x), 10), nil
	case int16:
		return strconv.FormatInt(int64(x), 10), nil
	case int32:
		return strconv.FormatInt(int64(x), 10), nil
	case int64:
		return strconv.FormatInt(x, 10), nil
	case uint:
		return strconv.FormatUint(uint64(x), 10), nil
	case uint8:
		return strconv.FormatUint(uint64(x), 10), nil
	case uint16:
		return strconv.FormatUint(uint64(x), 10), nil
	case uint32:
		return strconv.FormatUint(uint64(x), 10), nil
	case uint64:
		return strconv.FormatUint(x, 10), nil
	case float32:
		return s.float(float64(x), 32)
	case float64:
		return s.float(x, 64)
	case string:
		return s.str(x), nil
	case []byte:
		if x == nil {
			return "NULL", nil
		}
		if s.Bytes == nil {
			return HexBytes(x), nil
		}
		return s.Bytes(x), nil
	case time.Time:
		layout := s.TimeLayout
		if layout == "" {
			layout = "2006-01-02 15:04:05.999999"
		}
		return s.str(x.Format(layout)), nil
	case driver.Valuer:
		inner, err := x.Value()
		if err != nil {
			return "", err
		}
		if _, again := inner.(driver.Valuer); again {
			return "", fmt.Errorf("cannot quote value of type %T", v)
		}
		return s.Quote(inner)
	default:
		return "", fmt.Errorf("cannot quote value of type %T", v)
	}
}

func (s QuoteStyle) float(f float64, bits int) (string, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return "", fmt.Errorf("cannot quote non-finite float %v", f)
	}
	return strconv.FormatFloat(f, 'g', -1, bits), nil
}

func (s QuoteStyle) str(v string) string {
	if s.Backslashes {
		v = strings.ReplaceAll(v, `\`, `\\`)
	}
	return "'" + strings.ReplaceAll(v, "'", "''") + "'"
}
