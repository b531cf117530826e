package portfolio

import (
	"sort"
	"strings"
)

// Derived views are always recomputed from the canonical lists. Nothing in
// this file is ever cached, so the projections cannot drift from the data
// they summarize.

// AdvancedLevel is the skill level treated as a highlight.
const AdvancedLevel = "advanced"

// TechnologyCounts returns the distinct technology names used across the
// given projects, sorted, together with how many projects use each.
func TechnologyCounts(projects []Project) ([]string, map[string]int) {
	counts := make(map[string]int)
	for _, p := range projects {
		seen := make(map[string]bool)
		for _, ref := range p.TechnologiesUsed {
			name := ref.Name()
			if name == "" || seen[name] {
				continue
			}
			seen[name] = true
			counts[name]++
		}
	}
	names := make([]string, 0, len(counts))
	for name := range counts {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, counts
}

// FilterByTechnology returns the projects that use the named technology.
// An empty name returns the input unchanged.
func FilterByTechnology(projects []Project, name string) []Project {
	if name == "" {
		return projects
	}
	var out []Project
	for _, p := range projects {
		for _, ref := range p.TechnologiesUsed {
			if ref.Name() == name {
				out = append(out, p)
				break
			}
		}
	}
	return out
}

// AdvancedSkills returns every skill across the given stacks whose level is
// "advanced" (case-insensitive).
func AdvancedSkills(stacks []TechStack) []Skill {
	var out []Skill
	for _, stack := range stacks {
		for _, s := range stack.Skills {
			if strings.EqualFold(s.Level, AdvancedLevel) {
				out = append(out, s)
			}
		}
	}
	return out
}
