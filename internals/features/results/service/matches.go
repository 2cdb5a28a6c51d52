// file: internals/features/results/service/matches.go
package service

import (
	"fmt"
	"sort"

	"skillmatch_backend/internals/upstream"
)

// DedupeMatches buang entri profesi duplikat (backend bisa mengembalikan
// baris ganda lintas attempt). First-seen per professionId yang menang.
func DedupeMatches(matches []upstream.ProfessionMatch) []upstream.ProfessionMatch {
	seen := make(map[int64]struct{}, len(matches))
	out := make([]upstream.ProfessionMatch, 0, len(matches))
	for _, m := range matches {
		if _, ok := seen[m.ProfessionID]; ok {
			continue
		}
		seen[m.ProfessionID] = struct{}{}
		out = append(out, m)
	}
	return out
}

// SortMatchesDesc urutkan menurun by matchPercentage; tie-break by nama
// supaya urutan render deterministik.
func SortMatchesDesc(matches []upstream.ProfessionMatch) {
	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].MatchPercentage != matches[j].MatchPercentage {
			return matches[i].MatchPercentage > matches[j].MatchPercentage
		}
		return matches[i].ProfessionName < matches[j].ProfessionName
	})
}

// FormatPercentage satu desimal, style tampilan detail list ("62.5").
func FormatPercentage(pct float64) string {
	return fmt.Sprintf("%.1f", pct)
}
