package dto

import "strings"

// DateLayout format attendu pour toutes les dates de l'API.
const DateLayout = "2006-01-02"

// normalizeList nettoie une liste de chaînes : éléments trimés,
// entrées vides écartées, ordre et doublons conservés.
func normalizeList(items []string) []string {
	normalized := make([]string, 0, len(items))
	for _, item := range items {
		item = strings.TrimSpace(item)
		if item != "" {
			normalized = append(normalized, item)
		}
	}
	return normalized
}

// trimOptional trime une chaîne optionnelle; une valeur blanche devient "".
// Le service interprète "" comme « effacer le champ ».
func trimOptional(value *string) *string {
	if value == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*value)
	return &trimmed
}
