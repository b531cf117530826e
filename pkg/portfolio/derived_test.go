package portfolio

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTechnologyCounts(t *testing.T) {
	projects := []Project{
		{ID: "p1", TechnologiesUsed: []TechnologyRef{{Raw: "Go"}, {Raw: "React"}}},
		{ID: "p2", TechnologiesUsed: []TechnologyRef{{Raw: "Go"}, {Skill: &Skill{Name: "Postgres"}}}},
		{ID: "p3"},
	}

	names, counts := TechnologyCounts(projects)
	assert.Equal(t, []string{"Go", "Postgres", "React"}, names)
	assert.Equal(t, 2, counts["Go"])
	assert.Equal(t, 1, counts["React"])
	assert.Equal(t, 1, counts["Postgres"])
}

func TestTechnologyCounts_CountsPerProjectNotPerMention(t *testing.T) {
	projects := []Project{
		{ID: "p1", TechnologiesUsed: []TechnologyRef{{Raw: "Go"}, {Raw: "Go"}}},
	}
	_, counts := TechnologyCounts(projects)
	assert.Equal(t, 1, counts["Go"])
}

func TestFilterByTechnology(t *testing.T) {
	projects := []Project{
		{ID: "p1", TechnologiesUsed: []TechnologyRef{{Raw: "Go"}}},
		{ID: "p2", TechnologiesUsed: []TechnologyRef{{Raw: "React"}}},
	}

	filtered := FilterByTechnology(projects, "Go")
	assert.Len(t, filtered, 1)
	assert.Equal(t, "p1", filtered[0].ID)

	assert.Equal(t, projects, FilterByTechnology(projects, ""))
	assert.Empty(t, FilterByTechnology(projects, "Rust"))
}

func TestAdvancedSkills(t *testing.T) {
	stacks := []TechStack{
		{Category: "Backend", Skills: []Skill{
			{Name: "Go", Level: "Advanced"},
			{Name: "Python", Level: "intermediate"},
		}},
		{Category: "Frontend", Skills: []Skill{
			{Name: "React", Level: "advanced"},
		}},
	}

	highlights := AdvancedSkills(stacks)
	assert.Len(t, highlights, 2)
	assert.Equal(t, "Go", highlights[0].Name)
	assert.Equal(t, "React", highlights[1].Name)
}
