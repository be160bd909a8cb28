package canon

import (
	"regexp"
	"strings"
)

const utf8BOM = "\uFEFF"

var rePunct = regexp.MustCompile(`[^a-z0-9_\s]`)

// Header normalizes a column header to its snake_case key so that
// "Model Year", " model_year " and "MODEL-YEAR" all become "model_year".
func Header(h string) string {
	h = strings.TrimPrefix(h, utf8BOM)
	h = strings.ToLower(strings.TrimSpace(h))
	h = strings.ReplaceAll(h, "-", " ")
	h = rePunct.ReplaceAllString(h, "")
	return strings.Join(strings.Fields(h), "_")
}

// Headers normalizes a whole header row in place and returns it.
func Headers(hs []string) []string {
	for i, h := range hs {
		hs[i] = Header(h)
	}
	return hs
}

// missing lists the cell spellings read as a missing value, the same set
// common dataframe tooling treats as NA by default.
var missing = map[string]struct{}{
	"": {}, "#N/A": {}, "#N/A N/A": {}, "#NA": {}, "-1.#IND": {}, "-1.#QNAN": {},
	"-NaN": {}, "-nan": {}, "1.#IND": {}, "1.#QNAN": {}, "<NA>": {}, "N/A": {},
	"NA": {}, "NULL": {}, "NaN": {}, "None": {}, "n/a": {}, "nan": {}, "null": {},
}

// IsMissing reports whether a raw cell denotes a missing value.
func IsMissing(cell string) bool {
	_, ok := missing[strings.TrimSpace(cell)]
	return ok
}
