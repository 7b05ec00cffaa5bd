package cv

// DefaultVersionName is the display name of the version the engine creates on
// first run.
const DefaultVersionName = "Versión General"

// PlaceholderDocument returns the empty template document used for new
// versions created without base data. The texts guide the user through
// filling in each section.
func PlaceholderDocument() Document {
	return Document{
		Profile: []ProfileItem{
			{Icon: IconBriefcase, Text: "Describe tu experiencia profesional principal aquí..."},
			{Icon: IconSettings, Text: "Menciona tus habilidades técnicas y de gestión..."},
			{Icon: IconBot, Text: "Incluye información sobre tecnologías emergentes o IA si aplica..."},
			{Icon: IconHandshake, Text: "Destaca tu experiencia en relaciones comerciales o liderazgo..."},
		},
		Skills: SkillsData{
			Tooltips: map[string]string{
				"Herramientas Office":     "Nivel de dominio de herramientas de productividad",
				"Comunicación":            "Habilidades de comunicación escrita y verbal",
				"Liderazgo":               "Capacidad de liderar equipos y proyectos",
				"Análisis de datos":       "Competencia en análisis e interpretación de información",
				"Gestión de proyectos":    "Experiencia en planificación y ejecución de proyectos",
				"Tecnologías emergentes":  "Adaptación a nuevas tecnologías y herramientas digitales",
			},
			Management: []string{
				"Organización y autonomía",
				"Manejo confidencial de información",
				"Adaptabilidad a cambios",
				"Habilidades de negociación",
				"Resolución de problemas",
				"Atención al detalle",
				"Gestión de equipos",
				"Aprendizaje continuo",
				"Comunicación efectiva",
				"Trabajo en equipo",
			},
		},
		Experience: []ExperienceItem{
			{
				Date:     "Fecha de inicio - Fecha fin",
				Title:    "Título del puesto",
				Company:  "Nombre de la empresa",
				Location: "Ciudad, País (opcional)",
				Description: []string{
					"Descripción de responsabilidades principales...",
					"Logros específicos con métricas si es posible...",
					"Impacto en la organización...",
					"Tecnologías o metodologías utilizadas...",
				},
				Icon: IconBriefcase,
			},
		},
		Projects: []ProjectItem{
			{
				Title: "Nombre del Proyecto",
				Date:  "Fecha del proyecto",
				Description: []string{
					"Descripción del proyecto y objetivos...",
					"Tu rol y responsabilidades...",
					"Tecnologías utilizadas...",
					"Resultados obtenidos...",
				},
				Icon: IconBrain,
			},
		},
		Education: []EducationItem{
			{
				Icon:        IconGraduationCap,
				IconColor:   "#3B82F6",
				Title:       "Título académico",
				Period:      "Año de graduación",
				Description: StringList{"Institución educativa"},
			},
		},
		OtherStudies: []string{
			"Curso, certificación o diplomado; Institución; Año",
			"Añade más estudios complementarios según necesites",
		},
		Languages: []LanguageItem{
			{Language: "Español", Proficiency: "Lengua nativa"},
			{Language: "Inglés", Proficiency: "Nivel (básico/intermedio/avanzado/fluido)"},
		},
		Contact: ContactInfo{
			Email:    "tu.email@ejemplo.com",
			Phone:    "+XX XXX XXX XXXX",
			LinkedIn: "https://www.linkedin.com/in/tu-perfil/",
			CVUrl:    "#",
		},
	}
}
