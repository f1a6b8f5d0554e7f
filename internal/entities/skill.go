package entities

import (
	"fmt"
	"strings"
)

// Skill is one row of the skill list. Name is the lookup key: the label alone,
// or "label (sublabel)" for specialised skills such as Knowledge or Craft.
type Skill struct {
	Name     string
	Label    string
	Sublabel *string
	Total    int
	Ranks    int
	Misc     int
	Stat     string
}

// SkillName builds the display and lookup name for a skill
func SkillName(label string, sublabel *string) string {
	if sublabel == nil {
		return label
	}
	return fmt.Sprintf("%s (%s)", label, *sublabel)
}

// SkillSublabel recovers the sub-label from a composite skill name by taking
// the text between the first "(" and the first ")" after it.
func SkillSublabel(name string) (string, bool) {
	open := strings.Index(name, "(")
	if open < 0 {
		return "", false
	}
	end := strings.Index(name[open+1:], ")")
	if end < 0 {
		return "", false
	}
	return name[open+1 : open+1+end], true
}

// Skill returns the skill stored under its composite name
func (c *CharacterRecord) Skill(name string) (Skill, bool) {
	for _, s := range c.Skills {
		if s.Name == name {
			return s, true
		}
	}
	return Skill{}, false
}
