package gallery

import (
	"path"
	"strings"

	"github.com/agnivade/levenshtein"
)

// Find returns the index of the photo whose alt text or file name best
// matches query, or -1 when query is blank or the list is empty. A substring
// hit always beats an edit-distance match; ties go to the earlier photo.
func (s State) Find(query string) int {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" || len(s.photos) == 0 {
		return -1
	}
	best, bestScore := -1, 0
	for i, p := range s.photos {
		score := -1
		for _, cand := range searchKeys(p.Src, p.Alt) {
			var d int
			if strings.Contains(cand, q) {
				d = 0
			} else {
				d = 1 + levenshtein.ComputeDistance(q, cand)
			}
			if score < 0 || d < score {
				score = d
			}
		}
		if score < 0 {
			continue
		}
		if best < 0 || score < bestScore {
			best, bestScore = i, score
		}
	}
	return best
}

func searchKeys(src, alt string) []string {
	keys := make([]string, 0, 2)
	if alt = strings.ToLower(strings.TrimSpace(alt)); alt != "" {
		keys = append(keys, alt)
	}
	name := path.Base(src)
	name = strings.TrimSuffix(name, path.Ext(name))
	if name = strings.ToLower(name); name != "" && name != "." && name != "/" {
		keys = append(keys, name)
	}
	return keys
}
