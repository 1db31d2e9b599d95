// Package i18n translates the fixed UI strings into the learner's
// preferred language. Lookup is pure: unknown languages and untranslated
// strings fall back to the English source text.
package i18n

import "strings"

type lang int

const (
	langEnglish lang = iota
	langSpanish
	langFrench
	langGerman
)

// normalize maps the free-text language a learner typed during onboarding
// to a bundled table. Matching is case-insensitive and accepts native
// names, English names, and ISO codes.
func normalize(language string) lang {
	switch strings.ToLower(strings.TrimSpace(language)) {
	case "español", "espanol", "spanish", "es":
		return langSpanish
	case "français", "francais", "french", "fr":
		return langFrench
	case "deutsch", "german", "de":
		return langGerman
	}
	return langEnglish
}

// Translate returns the translation of text for the given language, or
// text unchanged when no translation is bundled.
func Translate(text, language string) string {
	l := normalize(language)
	if l == langEnglish {
		return text
	}
	if t, ok := tables[l][text]; ok {
		return t
	}
	return text
}

// Supported reports whether a language has a bundled table.
func Supported(language string) bool {
	return normalize(language) != langEnglish
}

var tables = map[lang]map[string]string{
	langSpanish: {
		"Welcome back":       "Bienvenido de nuevo",
		"Continue Learning":  "Seguir aprendiendo",
		"Choose an activity": "Elige una actividad",
		"Solar Energy":       "Energía solar",
		"Wind Energy":        "Energía eólica",
		"Custom Project":     "Proyecto personalizado",
		"Talk to Me":         "Habla conmigo",
		"Next":               "Siguiente",
		"Back":               "Atrás",
		"Confirm":            "Confirmar",
		"Try Again":          "Intentar de nuevo",
		"Reset Profile":      "Restablecer perfil",
		"Exit":               "Salir",
		"Workshop":           "Taller",
		"Home":               "Inicio",
		"Score":              "Puntuación",
		"Time":               "Tiempo",
		"Efficiency":         "Eficiencia",
		"Level":              "Nivel",
		"Level complete!":    "¡Nivel completado!",
		"Time's up":          "Se acabó el tiempo",
		"Quiz complete!":     "¡Cuestionario completado!",
		"What's your name?":  "¿Cómo te llamas?",
		"Name your project":  "Dale un nombre a tu proyecto",
	},
	langFrench: {
		"Welcome back":       "Bon retour",
		"Continue Learning":  "Continuer à apprendre",
		"Choose an activity": "Choisis une activité",
		"Solar Energy":       "Énergie solaire",
		"Wind Energy":        "Énergie éolienne",
		"Custom Project":     "Projet personnalisé",
		"Talk to Me":         "Parle avec moi",
		"Next":               "Suivant",
		"Back":               "Retour",
		"Confirm":            "Confirmer",
		"Try Again":          "Réessayer",
		"Reset Profile":      "Réinitialiser le profil",
		"Exit":               "Quitter",
		"Workshop":           "Atelier",
		"Home":               "Accueil",
		"Score":              "Score",
		"Time":               "Temps",
		"Efficiency":         "Efficacité",
		"Level":              "Niveau",
		"Level complete!":    "Niveau terminé !",
		"Time's up":          "Temps écoulé",
		"Quiz complete!":     "Quiz terminé !",
		"What's your name?":  "Comment t'appelles-tu ?",
		"Name your project":  "Nomme ton projet",
	},
	langGerman: {
		"Welcome back":       "Willkommen zurück",
		"Continue Learning":  "Weiterlernen",
		"Choose an activity": "Wähle eine Aktivität",
		"Solar Energy":       "Solarenergie",
		"Wind Energy":        "Windenergie",
		"Custom Project":     "Eigenes Projekt",
		"Talk to Me":         "Sprich mit mir",
		"Next":               "Weiter",
		"Back":               "Zurück",
		"Confirm":            "Bestätigen",
		"Try Again":          "Nochmal versuchen",
		"Reset Profile":      "Profil zurücksetzen",
		"Exit":               "Beenden",
		"Workshop":           "Werkstatt",
		"Home":               "Start",
		"Score":              "Punkte",
		"Time":               "Zeit",
		"Efficiency":         "Wirkungsgrad",
		"Level":              "Level",
		"Level complete!":    "Level geschafft!",
		"Time's up":          "Zeit abgelaufen",
		"Quiz complete!":     "Quiz geschafft!",
		"What's your name?":  "Wie heißt du?",
		"Name your project":  "Gib deinem Projekt einen Namen",
	},
}
