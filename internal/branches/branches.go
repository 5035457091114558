// Package branches holds the static branch directory: code to display
// name. It is reference data loaded once at process start and plays no
// part in access control.
package branches

import "sort"

var displayNames = map[string]string{
	"aceh":        "Cabang Aceh",
	"sumut":       "Cabang Sumatera Utara",
	"sumbar":      "Cabang Sumatera Barat",
	"riau":        "Cabang Riau",
	"kepri":       "Cabang Kepulauan Riau",
	"jambi":       "Cabang Jambi",
	"sumsel":      "Cabang Sumatera Selatan & Bangka Belitung",
	"bengkulu":    "Cabang Bengkulu",
	"lampung":     "Cabang Lampung",
	"banten":      "Cabang Banten",
	"jakarta":     "Cabang Jakarta",
	"bogor":       "Cabang Bogor",
	"bekasi":      "Cabang Bekasi",
	"depok":       "Cabang Depok",
	"jabar":       "Cabang Jawa Barat",
	"jateng":      "Cabang Jawa Tengah",
	"surakarta":   "Cabang Surakarta",
	"yogya":       "Cabang Yogyakarta",
	"jatim":       "Cabang Jawa Timur",
	"malang":      "Cabang Malang",
	"bali":        "Cabang Bali",
	"ntb":         "Cabang Nusa Tenggara Barat",
	"ntt":         "Cabang Nusa Tenggara Timur",
	"kalsel":      "Cabang Kalimantan Selatan",
	"kaltimtara":  "Cabang Kalimantan Timur & Utara",
	"kalbar":      "Cabang Kalimantan Barat",
	"kalteng":     "Cabang Kalimantan Tengah",
	"sulselbara":  "Cabang Sulawesi Selatan-Barat-Tenggara",
	"suluttenggo": "Cabang Sulawesi Utara-Tengah-Gorontalo",
	"maluku":      "Cabang Maluku & Maluku Utara",
	"papua":       "Cabang Papua",
}

// Branch pairs a branch code with its display name.
type Branch struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// DisplayName resolves a branch code to its display name. Unknown codes
// fall back to the code itself so stale data still renders.
func DisplayName(code string) string {
	if name, ok := displayNames[code]; ok {
		return name
	}
	return code
}

// IsKnown reports whether the code belongs to the directory.
func IsKnown(code string) bool {
	_, ok := displayNames[code]
	return ok
}

// All returns the directory sorted by code.
func All() []Branch {
	out := make([]Branch, 0, len(displayNames))
	for code, name := range displayNames {
		out = append(out, Branch{Code: code, Name: name})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Code < out[j].Code })
	return out
}
