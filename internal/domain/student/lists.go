package student

import "slices"

// The profile row lists (skills, experiences, links) are value lists:
// every mutation returns a fresh slice and leaves the input untouched,
// so a list reference shared across requests can never be edited
// underneath a reader.

func AddSkill(skills []Skill, s Skill) []Skill {
	out := make([]Skill, 0, len(skills)+1)
	out = append(out, skills...)
	return append(out, s)
}

func RemoveSkill(skills []Skill, index int) []Skill {
	if index < 0 || index >= len(skills) {
		return slices.Clone(skills)
	}
	out := make([]Skill, 0, len(skills)-1)
	out = append(out, skills[:index]...)
	return append(out, skills[index+1:]...)
}

func UpdateSkill(skills []Skill, index int, s Skill) []Skill {
	out := slices.Clone(skills)
	if index >= 0 && index < len(out) {
		out[index] = s
	}
	return out
}

func AddExperience(exps []Experience, e Experience) []Experience {
	out := make([]Experience, 0, len(exps)+1)
	out = append(out, exps...)
	return append(out, e)
}

func RemoveExperience(exps []Experience, index int) []Experience {
	if index < 0 || index >= len(exps) {
		return slices.Clone(exps)
	}
	out := make([]Experience, 0, len(exps)-1)
	out = append(out, exps[:index]...)
	return append(out, exps[index+1:]...)
}

func AddLink(links []Link, l Link) []Link {
	out := make([]Link, 0, len(links)+1)
	out = append(out, links...)
	return append(out, l)
}

func RemoveLink(links []Link, index int) []Link {
	if index < 0 || index >= len(links) {
		return slices.Clone(links)
	}
	out := make([]Link, 0, len(links)-1)
	out = append(out, links[:index]...)
	return append(out, links[index+1:]...)
}
