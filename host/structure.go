package host

import (
	"github.com/relateby/pattern-go/pattern"
	"github.com/relateby/pattern-go/subject"
)

// StructureAnalysis summarizes the shape of a pattern tree for a host
// that wants a cheap structural overview without walking the tree itself.
type StructureAnalysis struct {
	NodeCount  int
	LeafCount  int
	MaxDepth   int
	Identities []string
	Labels     []string
	HasCycles  bool
}

// AnalyzeStructure walks p bottom-up and reports its size, depth, the
// identities and labels encountered (each in first-occurrence order, no
// duplicates), and whether any non-root identity repeats elsewhere in the
// tree (the only cycle signal available without a PatternGraph, since a
// bare Pattern tree cannot itself contain a back-reference).
func AnalyzeStructure(p pat) StructureAnalysis {
	seenIdentity := make(map[string]bool)
	seenLabel := make(map[string]bool)
	result := pattern.Para(p, func(s subject.Subject, children []StructureAnalysis) StructureAnalysis {
		acc := StructureAnalysis{NodeCount: 1, MaxDepth: 1}
		if len(children) == 0 {
			acc.LeafCount = 1
		}
		for _, c := range children {
			acc.NodeCount += c.NodeCount
			acc.LeafCount += c.LeafCount
			if c.MaxDepth+1 > acc.MaxDepth {
				acc.MaxDepth = c.MaxDepth + 1
			}
			if c.HasCycles {
				acc.HasCycles = true
			}
		}

		if id := s.Identity(); id != "" {
			if seenIdentity[id] {
				acc.HasCycles = true
			} else {
				seenIdentity[id] = true
				acc.Identities = append(acc.Identities, id)
			}
		}
		for _, l := range s.Labels() {
			if seenLabel[l] {
				continue
			}
			seenLabel[l] = true
			acc.Labels = append(acc.Labels, l)
		}
		for _, c := range children {
			acc.Identities = append(acc.Identities, c.Identities...)
			acc.Labels = append(acc.Labels, c.Labels...)
		}
		return acc
	})
	return result
}
