package portfolio

import "encoding/json"

// TechnologyRef is one entry of a project's technologiesUsed array.
//
// The backend has shipped this field in several shapes over time: a plain
// string, an object holding a populated skill reference, or an object holding
// a tech stack reference that may itself be just an identifier. All variants
// are accepted; Name() resolves whichever one is present.
type TechnologyRef struct {
	// Plain form: the tag itself.
	Raw string

	// Populated skill reference: {"skill": {"name": "..."}}.
	Skill *Skill

	// Tech stack reference: either a bare identifier string or a populated
	// {"category": "..."} object.
	TechStackID  string
	TechCategory string
}

// Name resolves the display name of the reference, or "" when the reference
// carries only an unpopulated identifier.
func (r TechnologyRef) Name() string {
	switch {
	case r.Raw != "":
		return r.Raw
	case r.Skill != nil && r.Skill.Name != "":
		return r.Skill.Name
	case r.TechCategory != "":
		return r.TechCategory
	case r.TechStackID != "":
		return r.TechStackID
	}
	return ""
}

func (r TechnologyRef) MarshalJSON() ([]byte, error) {
	switch {
	case r.Skill != nil:
		return json.Marshal(map[string]*Skill{"skill": r.Skill})
	case r.TechCategory != "":
		return json.Marshal(map[string]map[string]string{
			"techStack": {"category": r.TechCategory},
		})
	case r.TechStackID != "":
		return json.Marshal(map[string]string{"techStack": r.TechStackID})
	}
	return json.Marshal(r.Raw)
}

func (r *TechnologyRef) UnmarshalJSON(data []byte) error {
	*r = TechnologyRef{}

	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		r.Raw = s
		return nil
	}

	var obj struct {
		Skill     *Skill          `json:"skill"`
		TechStack json.RawMessage `json:"techStack"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		// Unknown shape, treat as an empty reference rather than failing the
		// whole project decode.
		return nil
	}
	r.Skill = obj.Skill

	if len(obj.TechStack) > 0 {
		var id string
		if err := json.Unmarshal(obj.TechStack, &id); err == nil {
			r.TechStackID = id
			return nil
		}
		var stack struct {
			ID       string `json:"_id"`
			Category string `json:"category"`
		}
		if err := json.Unmarshal(obj.TechStack, &stack); err == nil {
			r.TechStackID = stack.ID
			r.TechCategory = stack.Category
		}
	}
	return nil
}
