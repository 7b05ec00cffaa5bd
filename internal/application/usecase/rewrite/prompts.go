package rewrite

import "github.com/aaguilard28/cv-areli/internal/domain/cv"

// FieldType names the kind of text being improved.
type FieldType string

const (
	FieldProfile    FieldType = "profile"
	FieldExperience FieldType = "experience"
	FieldProjects   FieldType = "projects"
	FieldSkills     FieldType = "skills"
)

func (f FieldType) Valid() bool {
	switch f {
	case FieldProfile, FieldExperience, FieldProjects, FieldSkills:
		return true
	}
	return false
}

// prompts maps version type and field type to the rewrite instruction sent to
// the model. The texts mirror the tone guidance of the original assist
// service: balanced for general, results-driven for commercial, technical for
// tech, formal for academic.
var prompts = map[cv.VersionType]map[FieldType]string{
	cv.TypeGeneral: {
		FieldProfile: "Reescribe este texto de perfil profesional con un enfoque balanceado y versátil. " +
			"Debe sonar profesional, mostrar adaptabilidad y destacar competencias clave sin ser demasiado específico a una industria. " +
			"Mantén un tono formal pero accesible y usa verbos de acción.",
		FieldExperience: "Mejora esta descripción de experiencia laboral para una versión general del CV. " +
			"Enfócate en responsabilidades equilibradas, logros tangibles y habilidades transferibles. " +
			"Usa verbos de acción fuertes e incluye métricas cuando sea posible.",
		FieldProjects: "Optimiza esta descripción de proyecto para mostrar versatilidad profesional. " +
			"Destaca metodologías, resultados y competencias desarrolladas aplicables a diferentes contextos.",
		FieldSkills: "Reformula estas habilidades de manera balanceada, combinando competencias técnicas y blandas " +
			"relevantes para múltiples industrias y tipos de rol.",
	},
	cv.TypeCommercial: {
		FieldProfile: "Reescribe este perfil enfocándolo en competencias comerciales y de negocios. " +
			"Destaca experiencia en ventas, desarrollo de negocios, negociación y logros cuantificables. " +
			"Incluye términos como ROI, KPIs, crecimiento. Mantén tono ejecutivo y orientado a resultados.",
		FieldExperience: "Optimiza esta experiencia laboral para un enfoque comercial. " +
			"Prioriza logros en ventas, números concretos, porcentajes de crecimiento, nuevos clientes adquiridos " +
			"e ingresos generados. Usa verbos como \"incrementé\", \"desarrollé\", \"cerré\", \"negocié\".",
		FieldProjects: "Reformula este proyecto destacando el impacto comercial y de negocio: " +
			"resultados económicos, eficiencia operativa, ahorros generados y valor agregado.",
		FieldSkills: "Prioriza habilidades comerciales: negociación, desarrollo de negocios, análisis de mercado, " +
			"gestión de relaciones comerciales, CRM, prospección, cierre de ventas.",
	},
	cv.TypeTech: {
		FieldProfile: "Reescribe este perfil con enfoque tecnológico y de innovación. " +
			"Destaca competencias en tecnologías emergentes, automatización, transformación digital, " +
			"inteligencia artificial y análisis de datos. Usa terminología técnica apropiada.",
		FieldExperience: "Optimiza esta experiencia para el sector tecnológico. " +
			"Enfócate en implementaciones tecnológicas, optimizaciones, automatizaciones, stack técnico " +
			"y metodologías ágiles. Incluye métricas de performance y mejoras técnicas logradas.",
		FieldProjects: "Reformula este proyecto destacando los aspectos técnicos e innovadores: " +
			"tecnologías utilizadas, arquitecturas implementadas, problemas técnicos resueltos y mejoras en eficiencia.",
		FieldSkills: "Prioriza competencias técnicas: inteligencia artificial, análisis de datos, automatización, " +
			"transformación digital, metodologías ágiles, integración de sistemas.",
	},
	cv.TypeAcademic: {
		FieldProfile: "Reescribe este perfil con enfoque académico y de investigación. " +
			"Destaca experiencia en docencia, investigación, publicaciones, análisis riguroso " +
			"y comunicación académica. Mantén tono formal y académico.",
		FieldExperience: "Optimiza esta experiencia para el ámbito académico. " +
			"Enfócate en responsabilidades docentes, proyectos de investigación, publicaciones, " +
			"colaboraciones académicas y metodologías de enseñanza.",
		FieldProjects: "Reformula este proyecto con perspectiva académica: metodología de investigación utilizada, " +
			"análisis realizados, contribuciones al conocimiento y publicaciones resultantes.",
		FieldSkills: "Prioriza competencias académicas: investigación, análisis crítico, redacción académica, " +
			"metodologías de investigación, presentaciones y docencia.",
	},
}
