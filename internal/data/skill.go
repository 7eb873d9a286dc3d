package data

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type SkillTemplate struct {
	ID      int    `yaml:"id"`
	Name    string `yaml:"name"`
	Passive bool   `yaml:"passive"`
}

type skillListFile struct {
	Skills []SkillTemplate `yaml:"skills"`
}

type SkillTable struct {
	skills map[int]*SkillTemplate
}

func LoadSkillTable(path string) (*SkillTable, error) {
	t := &SkillTable{skills: make(map[int]*SkillTemplate)}
	if path == "" {
		return t, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read skill list: %w", err)
	}
	var f skillListFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("parse skill list: %w", err)
	}
	for i := range f.Skills {
		s := &f.Skills[i]
		t.skills[s.ID] = s
	}
	return t, nil
}

func (t *SkillTable) Get(id int) *SkillTemplate { return t.skills[id] }

func (t *SkillTable) Name(id int) string {
	if s := t.skills[id]; s != nil {
		return s.Name
	}
	return fmt.Sprintf("skill #%d", id)
}

func (t *SkillTable) Count() int { return len(t.skills) }
