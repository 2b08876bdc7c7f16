package catalog

import (
	"slices"

	"github.com/tbxark/lessonflow/types"
)

type localized[T any] map[types.Locale]T

func (l localized[T]) get(locale types.Locale) T {
	return l[locale.Or()]
}

var flowLabels = localized[[]string]{
	types.LocaleFR: {"Préparer une leçon", "Préparer une leçon numérique", "Produire une activité d'intégration", "Créer une évaluation"},
	types.LocaleEN: {"Prepare a lesson", "Prepare a digital lesson", "Produce an integration activity", "Create an assessment"},
}

var subsystems = localized[[]string]{
	types.LocaleFR: {"Enseignement Secondaire Général (ESG)", "Enseignement Secondaire Technique (EST)"},
	types.LocaleEN: {"General Education", "Technical Education"},
}

var syllabusMethods = localized[[]string]{
	types.LocaleFR: {"🤖 Recherche Automatique (RAG)", "✍️ Fournir Manuellement"},
	types.LocaleEN: {"🤖 Automatic Search (RAG)", "✍️ Provide Manually"},
}

var assessmentTypes = localized[[]string]{
	types.LocaleFR: {"Ressources + Compétences", "QCM Uniquement"},
	types.LocaleEN: {"Resources + Competencies", "MCQ Only"},
}

var contentLanguages = localized[[]string]{
	types.LocaleFR: {"Français", "English", "Deutsch", "Español", "Italiano", "中文 (Chinois)", "العربية (Arabe)"},
	types.LocaleEN: {"English", "Français"},
}

var classes = localized[map[string][]string]{
	types.LocaleFR: {
		types.SubsystemGeneral:   {"6ème", "5ème", "4ème", "3ème", "Seconde", "Première", "Terminale"},
		types.SubsystemTechnical: {"1ère Année CAP", "2ème Année CAP", "Seconde Technique", "Première Technique", "Terminale Technique"},
	},
	types.LocaleEN: {
		types.SubsystemGeneral:   {"Form 1", "Form 2", "Form 3", "Form 4", "Form 5", "Lower Sixth", "Upper Sixth"},
		types.SubsystemTechnical: {"Year 1 (Technical)", "Year 2 (Technical)", "Form 4 (Technical)", "Form 5 (Technical)", "Upper Sixth (Technical)"},
	},
}

var subjects = localized[map[string][]string]{
	types.LocaleFR: {
		types.SubsystemGeneral: sorted(
			"Allemand", "Anglais", "Chimie", "Chinois", "ECM", "Espagnol", "Français", "Géographie", "Histoire",
			"Informatique", "Italien", "Mathématiques", "Orientation", "Philosophie", "Physique", "SVT",
		),
		types.SubsystemTechnical: sorted(
			"Mathématiques", "Physique", "Chimie", "Français", "Histoire", "Géographie", "Philosophie", "Anglais", "ECM", "Allemand", "Informatique",
			"Accueil et Animation Touristique", "Action et Communication Administrative", "Action et Communication Commerciale",
			"Affuteur Scieur", "Agence de Voyage", "Aide Chimique Biologiste", "Aide Chimique Industrielle", "Ajustage",
			"Bijouterie", "Boulangerie Patisserie", "Bureau d'Études", "Carrelage", "Carrosserie Peinture Automobile",
			"Céramique", "Chaudronnerie", "Chaudronnerie et Tuyauterie Industrielle", "Chimie Industrielle",
			"Comptabilité de Gestion", "Construction et Ouvrage Métallique", "Construction Mécanique", "Couture sur Mesure",
			"Cuisine", "Décoration", "Dessin en Bâtiment", "Economie Sociale et Familiale", "Electricité Automobile",
			"Electricité d'Équipement", "Electricité Bâtiment", "Electro Mécanique", "Electronique",
			"Employé des Services Comptables", "Employé des Services Financiers", "Esthétique Coiffure",
			"Exploitation Forestière", "Fabrication Mécanique", "Fiscalité et Informatique de Gestion",
			"Froid et Climatisation", "Génie Chimique Bioprocédés et Pétrochimie", "Génie Chimique Cosmétique et Pharmacie",
			"Génie Chimique Mines et Pétroles", "Génie Civil Bâtiment", "Géomètre Topographe", "Hébergement", "Hôtellerie",
			"Industrie d'Habillement", "Industrie du Bois", "Installation Sanitaire", "Maçonnerie",
			"Maintenance Audiovisuelle", "Maintenance des Equipements Agricoles", "Maintenance des Equipements Hospitaliers",
			"Maintenance des Systèmes Electroniques", "Maintenance Electromécanique", "Maintenance Véhicules de Tourisme",
			"Maintenance Véhicules Poids Lourds", "Menuiserie", "Menuiserie Ebénisterie", "Métaux en Feuilles",
			"Mécanique Automobile de Réparation", "Mécanique Automobile Electricité", "Mécanique Automobile Injection",
			"Mécanique de Fabrication", "Peinture", "Production Animale", "Production Végétale", "Restauration",
			"Réparation Carrosserie Automobile", "Science et Technique Biologique", "Science et Technologie de la Santé",
			"Sciences Economiques et Sociales", "Sculpture", "Secrétariat et Bureautique", "Secrétariat Médical",
			"Service Hôtelier", "Technique et Mathématique", "Techniques et Gestion Forestières", "Tourisme",
			"Transformation des Produits", "Transformation et Conservation des Produits Agropastoraux", "Travaux Publics", "Vente",
		),
	},
	types.LocaleEN: {
		types.SubsystemGeneral: sorted(
			"Additional Maths", "Biology", "Chemistry", "Computer Science", "Economics", "English", "Food and Nutrition",
			"French", "Further Maths", "Geography", "Geology", "History", "ICT", "Logic", "Mathematics", "Orientation", "Physics",
		),
		types.SubsystemTechnical: sorted(
			"Mathematics", "Physics", "Chemistry", "French", "History", "Geography", "Philosophy", "English", "Citizenship Education", "German", "Computer Science", "ICT",
			"Accommodation", "Accounting Services Employee", "Administrative Communication and Action",
			"Aesthetics and Hairdressing", "Agricultural Equipment Maintenance", "Animal Production",
			"Audiovisual Maintenance", "Automobile Body Painting", "Automobile Body Repair",
			"Automobile Electrical Mechanics", "Automobile Electricity", "Automobile Injection Mechanics",
			"Automobile Repair Mechanics", "Bakery and Pastry", "Biological Science and Technique", "Boilermaking",
			"Boilermaking and Industrial Piping", "Building Design", "Building Electricity", "Cabinet Making", "Carpentry",
			"Catering", "Ceramics", "Chemical Biology Assistant", "Chemical Engineering - Bioprocesses and Petrochemicals",
			"Chemical Engineering - Cosmetics and Pharmacy", "Chemical Engineering - Mines and Petroleum",
			"Civil Engineering - Building", "Clothing Industry", "Commercial Communication and Action",
			"Cuisine", "Custom Sewing", "Decoration", "Design Office", "Economic and Social Sciences",
			"Electro-Mechanics", "Electromechanical Maintenance", "Electronic Systems Maintenance", "Electronics",
			"Equipment Electricity", "Financial Services Employee", "Fitting", "Forestry", "Health Science and Technology",
			"Heavy Goods Vehicle Maintenance", "Hotel Management", "Hotel Services", "Hospital Equipment Maintenance",
			"Industrial Chemical Assistant", "Industrial Chemistry", "Jewelry", "Management Accounting",
			"Manufacturing Mechanics", "Masonry", "Mechanical Construction", "Mechanical Manufacturing", "Medical Secretariat",
			"Metal Construction and Works", "Painting", "Plant Production", "Product Transformation",
			"Processing and Conservation of Agropastoral Products", "Public Works",
			"Refrigeration and Air Conditioning", "Sales", "Sanitary Installation", "Saw Sharpener",
			"Secretarial and Office Skills", "Sheet Metal Work", "Social and Family Economy", "Sculpture",
			"Surveyor Topographer", "Taxation and Management Information Systems", "Technique and Mathematics",
			"Tiling", "Tourism", "Tourism Reception and Animation", "Tourism Vehicle Maintenance", "Travel Agency", "Wood Industry",
		),
	},
}

func sorted(values ...string) []string {
	slices.Sort(values)
	return slices.Compact(values)
}

// bySubsystem picks the list for the collected subsystem. A missing or
// unknown subsystem yields no options.
func bySubsystem(table localized[map[string][]string]) func(types.Locale, map[string]string) []string {
	return func(locale types.Locale, data map[string]string) []string {
		values, ok := table.get(locale)[data[string(types.FieldSubsystem)]]
		if !ok {
			return []string{}
		}
		return slices.Clone(values)
	}
}

func static(table localized[[]string]) func(types.Locale, map[string]string) []string {
	return func(locale types.Locale, _ map[string]string) []string {
		return slices.Clone(table.get(locale))
	}
}

func noOptions(types.Locale, map[string]string) []string {
	return []string{}
}

// FlowLabels returns the flow menu in presentation order.
func FlowLabels(locale types.Locale) []string {
	return slices.Clone(flowLabels.get(locale))
}
