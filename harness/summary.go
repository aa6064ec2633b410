package harness

import (
	"fmt"
	"sort"
)

// Metrics are the numeric record fields that are summarized.
var Metrics = []string{"runtime", "package", "cpu"}

func (r Record) metric(name string) float64 {
	switch name {
	case "runtime":
		return r.Runtime
	case "package":
		return r.Package
	case "cpu":
		return r.CPU
	}
	return 0
}

// Validate reports failed iterations and negative readings. Energy values
// of exactly -1 mean "not measured" and are accepted.
func Validate(records []Record) []string {
	var problems []string
	for _, r := range records {
		if !r.Success {
			problems = append(problems, fmt.Sprintf("Iteration %d of %s %s failed", r.Iteration, r.Language, r.Algorithm))
			continue
		}
		for _, m := range Metrics {
			v := r.metric(m)
			if m != "runtime" && v == -1 {
				continue // not measured
			}
			if v < 0 {
				problems = append(problems, fmt.Sprintf("Iteration %d of %s %s has a negative numerical value in %s",
					r.Iteration, r.Language, r.Algorithm, m))
			}
		}
	}
	return problems
}

// Stat summarizes one metric of one language/algorithm pair.
type Stat struct {
	Samples int     `yaml:"samples"`
	Mean    float64 `yaml:"mean"`
	Median  float64 `yaml:"median"`
	Notes   string  `yaml:"notes,omitempty"`
}

// Summary holds statistics indexed by language, algorithm, then metric.
type Summary struct {
	Languages  []string                              `yaml:"languages"`
	Algorithms []string                              `yaml:"algorithms"`
	Cells      map[string]map[string]map[string]Stat `yaml:"cells"`
}

// Summarize groups records by language and algorithm and computes the mean
// and median of every metric. Cells with fewer samples than the largest
// cell carry a note.
func Summarize(records []Record) Summary {
	groups := map[string]map[string][]Record{}
	langSet, algoSet := map[string]bool{}, map[string]bool{}
	for _, r := range records {
		if groups[r.Language] == nil {
			groups[r.Language] = map[string][]Record{}
		}
		groups[r.Language][r.Algorithm] = append(groups[r.Language][r.Algorithm], r)
		langSet[r.Language] = true
		algoSet[r.Algorithm] = true
	}

	maxSize := 0
	for _, algos := range groups {
		for _, recs := range algos {
			maxSize = max(maxSize, len(recs))
		}
	}

	s := Summary{
		Languages:  sortedKeys(langSet),
		Algorithms: sortedKeys(algoSet),
		Cells:      map[string]map[string]map[string]Stat{},
	}
	for lang, algos := range groups {
		s.Cells[lang] = map[string]map[string]Stat{}
		for algo, recs := range algos {
			cell := map[string]Stat{}
			for _, m := range Metrics {
				values := make([]float64, len(recs))
				for i, r := range recs {
					values[i] = r.metric(m)
				}
				st := Stat{Samples: len(values), Mean: mean(values), Median: median(values)}
				if len(values) != maxSize {
					st.Notes = fmt.Sprintf("Based on %d samples", len(values))
				}
				cell[m] = st
			}
			s.Cells[lang][algo] = cell
		}
	}
	return s
}

func sortedKeys(m map[string]bool) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func mean(v []float64) float64 {
	if len(v) == 0 {
		return 0
	}
	sum := 0.0
	for _, x := range v {
		sum += x
	}
	return sum / float64(len(v))
}

func median(v []float64) float64 {
	if len(v) == 0 {
		return 0
	}
	s := append([]float64(nil), v...)
	sort.Float64s(s)
	mid := len(s) / 2
	if len(s)%2 == 1 {
		return s[mid]
	}
	return (s[mid-1] + s[mid]) / 2
}
