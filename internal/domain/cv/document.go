package cv

import "encoding/json"

// Document is the structured CV payload of one version. Field names on disk
// match the camelCase layout the web client stores, so snapshots produced by
// either side stay interchangeable. Entries have no identity of their own;
// their position in the list is significant.
type Document struct {
	Profile      []ProfileItem    `json:"profile"`
	Skills       SkillsData       `json:"skills"`
	Experience   []ExperienceItem `json:"experience"`
	Projects     []ProjectItem    `json:"projects"`
	Education    []EducationItem  `json:"education"`
	OtherStudies []string         `json:"otherStudies"`
	Languages    []LanguageItem   `json:"languages"`
	Contact      ContactInfo      `json:"contact"`
}

type ProfileItem struct {
	Icon IconID `json:"icon"`
	Text string `json:"text"`
}

type SkillsData struct {
	Tooltips   map[string]string `json:"tooltips"`
	Management []string          `json:"management"`
}

type ExperienceItem struct {
	Date        string   `json:"date"`
	Title       string   `json:"title"`
	Company     string   `json:"company"`
	Location    string   `json:"location,omitempty"`
	Description []string `json:"description"`
	Icon        IconID   `json:"icon,omitempty"`
}

type ProjectItem struct {
	Title       string   `json:"title"`
	Date        string   `json:"date"`
	Description []string `json:"description"`
	Icon        IconID   `json:"icon,omitempty"`
}

type EducationItem struct {
	Icon        IconID     `json:"icon"`
	IconColor   string     `json:"iconColor,omitempty"`
	Title       string     `json:"title"`
	Period      string     `json:"period"`
	Description StringList `json:"description"`
}

type LanguageItem struct {
	Language    string `json:"language"`
	Proficiency string `json:"proficiency"`
}

type ContactInfo struct {
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	LinkedIn string `json:"linkedin"`
	CVUrl    string `json:"cvUrl,omitempty"`
}

// StringList decodes both a bare JSON string and an array of strings. Old
// exports store single-line education descriptions as a plain string.
type StringList []string

func (s *StringList) UnmarshalJSON(data []byte) error {
	var single string
	if err := json.Unmarshal(data, &single); err == nil {
		*s = StringList{single}
		return nil
	}
	var many []string
	if err := json.Unmarshal(data, &many); err != nil {
		return err
	}
	*s = StringList(many)
	return nil
}

// DocumentPatch is a partial Document used by update commands. Only non-nil
// fields are applied, and each field replaces its counterpart wholesale; there
// is no deep merge below the top level.
type DocumentPatch struct {
	Profile      *[]ProfileItem    `json:"profile"`
	Skills       *SkillsData       `json:"skills"`
	Experience   *[]ExperienceItem `json:"experience"`
	Projects     *[]ProjectItem    `json:"projects"`
	Education    *[]EducationItem  `json:"education"`
	OtherStudies *[]string         `json:"otherStudies"`
	Languages    *[]LanguageItem   `json:"languages"`
	Contact      *ContactInfo      `json:"contact"`
}

// Apply merges the patch into the document, field by field.
func (d *Document) Apply(p DocumentPatch) {
	if p.Profile != nil {
		d.Profile = *p.Profile
	}
	if p.Skills != nil {
		d.Skills = *p.Skills
	}
	if p.Experience != nil {
		d.Experience = *p.Experience
	}
	if p.Projects != nil {
		d.Projects = *p.Projects
	}
	if p.Education != nil {
		d.Education = *p.Education
	}
	if p.OtherStudies != nil {
		d.OtherStudies = *p.OtherStudies
	}
	if p.Languages != nil {
		d.Languages = *p.Languages
	}
	if p.Contact != nil {
		d.Contact = *p.Contact
	}
}

// Clone returns a deep copy. Versions hand out copies of their data so that
// callers can never mutate engine-owned state in place.
func (d Document) Clone() Document {
	out := d
	out.Profile = append([]ProfileItem(nil), d.Profile...)
	out.Experience = make([]ExperienceItem, len(d.Experience))
	for i, e := range d.Experience {
		e.Description = append([]string(nil), e.Description...)
		out.Experience[i] = e
	}
	out.Projects = make([]ProjectItem, len(d.Projects))
	for i, p := range d.Projects {
		p.Description = append([]string(nil), p.Description...)
		out.Projects[i] = p
	}
	out.Education = make([]EducationItem, len(d.Education))
	for i, e := range d.Education {
		e.Description = append(StringList(nil), e.Description...)
		out.Education[i] = e
	}
	out.OtherStudies = append([]string(nil), d.OtherStudies...)
	out.Languages = append([]LanguageItem(nil), d.Languages...)
	out.Skills.Management = append([]string(nil), d.Skills.Management...)
	if d.Skills.Tooltips != nil {
		out.Skills.Tooltips = make(map[string]string, len(d.Skills.Tooltips))
		for k, v := range d.Skills.Tooltips {
			out.Skills.Tooltips[k] = v
		}
	}
	return out
}
