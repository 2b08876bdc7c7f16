package dialogue

import (
	"github.com/tbxark/lessonflow/command"
	"github.com/tbxark/lessonflow/types"
)

type MessageKey int

const (
	MsgWelcome MessageKey = iota
	MsgLanguageSelected
	MsgNotUnderstood
	MsgRestarted
	MsgDownloadComplete
	MsgLost
	MsgGenerationFailed
	MsgRenderFailed
	MsgReady
)

var messages = map[MessageKey]map[types.Locale]string{
	MsgWelcome: {
		types.LocaleFR: "Bonjour ! Veuillez choisir votre langue. / Hello! Please choose your language.",
		types.LocaleEN: "Bonjour ! Veuillez choisir votre langue. / Hello! Please choose your language.",
	},
	MsgLanguageSelected: {
		types.LocaleFR: "Langue sélectionnée : Français.",
		types.LocaleEN: "Language selected: English.",
	},
	MsgNotUnderstood: {
		types.LocaleFR: "Désolé, je n'ai pas compris. Veuillez choisir une des options proposées.",
		types.LocaleEN: "Sorry, I didn't understand. Please choose one of the options below.",
	},
	MsgRestarted: {
		types.LocaleFR: "Très bien, recommençons.",
		types.LocaleEN: "All right, let's start over.",
	},
	MsgDownloadComplete: {
		types.LocaleFR: "Votre document a été téléchargé.",
		types.LocaleEN: "Your document has been downloaded.",
	},
	MsgLost: {
		types.LocaleFR: "Désolé, je suis perdu. Recommençons.",
		types.LocaleEN: "Sorry, I'm lost. Let's start over.",
	},
	MsgGenerationFailed: {
		types.LocaleFR: "Désolé, une erreur est survenue pendant la génération du document. Veuillez réessayer.",
		types.LocaleEN: "Sorry, an error occurred while generating the document. Please try again.",
	},
	MsgRenderFailed: {
		types.LocaleFR: "Désolé, la création du fichier a échoué. Vous pouvez régénérer le contenu ou recommencer.",
		types.LocaleEN: "Sorry, the file could not be created. You can regenerate the content or start over.",
	},
	MsgReady: {
		types.LocaleFR: "Toutes les informations sont réunies. Choisissez « Régénérer » pour lancer la génération.",
		types.LocaleEN: "All the information has been collected. Choose \"Regenerate\" to start the generation.",
	},
}

func Text(key MessageKey, locale types.Locale) string {
	return messages[key][locale.Or()]
}

var downloadLabels = map[bool]map[types.Locale]string{
	false: {types.LocaleFR: "Télécharger en PDF", types.LocaleEN: "Download PDF"},
	true:  {types.LocaleFR: "Télécharger la présentation", types.LocaleEN: "Download Presentation"},
}

func DownloadLabel(locale types.Locale, flow types.FlowType) string {
	return downloadLabels[flow == types.FlowDigital][locale.Or()]
}

// PostGenerationOptions are offered with a generated document.
func PostGenerationOptions(locale types.Locale, flow types.FlowType) []string {
	return []string{
		command.Label(command.Restart, locale),
		command.Label(command.Regenerate, locale),
		DownloadLabel(locale, flow),
	}
}

// RecoveryOptions are offered when nothing can be shown for the current step.
func RecoveryOptions(locale types.Locale) []string {
	return []string{
		command.Label(command.Regenerate, locale),
		command.Label(command.Restart, locale),
	}
}

func withNotice(notice, text string) string {
	if notice == "" {
		return text
	}
	return notice + "\n\n" + text
}
