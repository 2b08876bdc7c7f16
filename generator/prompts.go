package generator

import (
	"github.com/cloudwego/eino/components/prompt"
	"github.com/cloudwego/eino/schema"
)

const systemPrompt = `Tu es un inspecteur pédagogique expérimenté de l'enseignement secondaire camerounais (ESG et EST).
Tu rédiges des documents prêts à l'emploi pour les enseignants, en Markdown propre : titres avec #, listes, tableaux Markdown si utile.
Le contenu doit être entièrement rédigé en {content_language}, y compris les titres de section (code langue : {titles_language}).
N'ajoute aucun commentaire hors du document.`

const lessonPrompt = `Rédige une fiche de leçon complète selon l'approche par les compétences.

- Classe : {class}
- Matière : {subject}
- Module : {module}
- Titre de la leçon : {lesson_title}
- Contexte du programme : {syllabus}

La fiche contient : les objectifs pédagogiques, les prérequis, une situation-problème de départ, le déroulement de la leçon par étapes avec les activités de l'enseignant et des élèves, la trace écrite, des exercices d'application corrigés et une évaluation formative.`

const digitalLessonPrompt = `Rédige le support d'une leçon numérique destiné à être projeté en classe sous forme de diapositives.

- Classe : {class}
- Matière : {subject}
- Module : {module}
- Titre de la leçon : {lesson_title}

Découpe le contenu en diapositives courtes : chaque diapositive commence par un titre de niveau 2 (##) et contient au plus six puces. Termine par une diapositive de synthèse et une diapositive d'exercices interactifs.`

const integrationPrompt = `Conçois une activité d'intégration qui mobilise les ressources de plusieurs leçons.

- Classe : {class}
- Matière : {subject}
- Leçons concernées : {lesson_list}
- Objectifs visés : {objectives}

L'activité contient : un contexte réaliste tiré de l'environnement de l'élève, un support (texte, document ou tableau), trois consignes graduées, puis une grille d'évaluation critériée.`

const evaluationPrompt = `Rédige une épreuve d'évaluation sommative.

- Classe : {class}
- Matière : {subject}
- Leçons couvertes : {lesson_list}
- Durée : {duration}
- Coefficient : {coefficient}
- Type d'épreuve : {assessment_type}
- Contexte du programme : {syllabus_context}

Si le type d'épreuve est junior_mcq, l'épreuve ne comporte que des questions à choix multiples. Sinon, elle comporte une partie Évaluation des ressources et une partie Évaluation des compétences avec une situation-problème.
Après toute l'épreuve, écris le séparateur ` + AnswerKeySeparator + ` seul sur sa ligne, puis le corrigé détaillé avec le barème.`

func newTemplate(userPrompt string) prompt.ChatTemplate {
	return prompt.FromMessages(schema.FString,
		schema.SystemMessage(systemPrompt),
		schema.UserMessage(userPrompt),
	)
}
