package dataset

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// digits grouped in threes by commas, e.g. 1,234 or -12,500,000
var commaGrouped = regexp.MustCompile(`^[+-]?[1-9]\d{0,2}(,\d{3})+$`)

// missing spellings treated as empty numeric cells
var missingTokens = map[string]bool{
	"": true, "na": true, "n/a": true, "nan": true, "null": true, "none": true, "-": true,
}

func isMissing(s string) bool {
	return missingTokens[strings.ToLower(strings.TrimSpace(s))]
}

// parseNumeric parses s honoring the decimal/thousands separators in opt,
// auto-detecting them when unset. A trailing percent sign is ignored. With no
// separators configured, a comma that groups digits in threes is a thousands
// separator, so "1,234" is 1234 while "1,5" and "0,250" are decimals.
func parseNumeric(s string, opt Options) (float64, bool) {
	raw := strings.TrimSpace(s)
	raw = strings.TrimSuffix(raw, "%")
	// Normalize spaces
	raw = strings.ReplaceAll(raw, "\u00A0", " ")
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, false
	}
	dec := opt.DecimalSeparator
	thou := opt.ThousandsSeparator
	if dec == 0 {
		cpos := strings.LastIndex(raw, ",")
		dpos := strings.LastIndex(raw, ".")
		if cpos >= 0 && dpos >= 0 {
			if cpos > dpos {
				dec = ','
				thou = '.'
			} else {
				dec = '.'
				thou = ','
			}
		} else if cpos >= 0 {
			if thou == ',' || commaGrouped.MatchString(raw) {
				dec = '.'
				thou = ','
			} else {
				dec = ','
			}
		} else {
			dec = '.'
		}
	}
	// Remove thousands separators if they differ from decimal
	if thou == 0 {
		for _, sep := range []rune{',', '.', ' '} {
			if sep != dec {
				raw = strings.ReplaceAll(raw, string(sep), "")
			}
		}
	} else if thou != dec {
		raw = strings.ReplaceAll(raw, string(thou), "")
	}
	if dec != '.' {
		raw = strings.ReplaceAll(raw, string(dec), ".")
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}
