package cv

// IconID is an opaque symbolic tag for the small glyph rendered next to a
// list entry. The engine never interprets these; the presentation layer maps
// them to concrete glyphs.
type IconID string

const (
	IconUser          IconID = "user"
	IconBriefcase     IconID = "briefcase"
	IconGraduationCap IconID = "graduation-cap"
	IconGlobe         IconID = "globe"
	IconZap           IconID = "zap"
	IconBrain         IconID = "brain"
	IconLandmark      IconID = "landmark"
	IconFileText      IconID = "file-text"
	IconHardHat       IconID = "hard-hat"
	IconUsers         IconID = "users"
	IconBarChart      IconID = "bar-chart"
	IconGem           IconID = "gem"
	IconLightbulb     IconID = "lightbulb"
	IconSettings      IconID = "settings"
	IconBot           IconID = "bot"
	IconHandshake     IconID = "handshake"
	IconBookOpen      IconID = "book-open"
)
