package core

import (
	"strings"
	"unicode"
)

// NormalizeNom genera la clau de comparacio d'un nom: noms de pila i
// cognom en minuscules separats per espais. Prefix, sufix, titol i
// sobrenom en queden fora. Es per deduplicar, no per mostrar.
func NormalizeNom(raw string) string {
	if raw == "" {
		return ""
	}
	parsed := ParseNomGenealogic(raw)
	parts := []string{}
	for _, nom := range parsed.NomsPila {
		parts = append(parts, strings.ToLower(nom))
	}
	if parsed.Cognom != "" {
		parts = append(parts, strings.ToLower(parsed.Cognom))
	}
	return strings.Join(parts, " ")
}

// NormalizeNomKey genera una clau compacta per deduplicar formes d'un
// mateix nom: sense diacritics, apostrofs ni puntuacio, tot en majuscules.
func NormalizeNomKey(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	s = strings.ToLower(s)
	s = stripDiacritics(s)
	s = strings.ReplaceAll(s, "’", "")
	s = strings.ReplaceAll(s, "'", "")
	s = strings.ReplaceAll(s, "-", " ")
	s = strings.ReplaceAll(s, ".", " ")
	s = strings.ReplaceAll(s, ",", " ")
	s = strings.Join(strings.Fields(s), " ")
	s = strings.ReplaceAll(s, " ", "")
	return strings.ToUpper(s)
}

func stripDiacritics(val string) string {
	replacer := strings.NewReplacer(
		"à", "a", "á", "a", "â", "a", "ä", "a", "ã", "a", "å", "a",
		"è", "e", "é", "e", "ê", "e", "ë", "e",
		"ì", "i", "í", "i", "î", "i", "ï", "i",
		"ò", "o", "ó", "o", "ô", "o", "ö", "o", "õ", "o",
		"ù", "u", "ú", "u", "û", "u", "ü", "u",
		"ç", "c", "ñ", "n",
		"·", "",
	)
	return replacer.Replace(val)
}

// sanitizeNomLiteral descarta valors que no semblen un nom de persona
// (xifres, claudators, simbols estranys) i normalitza els espais.
func sanitizeNomLiteral(value string) string {
	value = strings.TrimSpace(value)
	value = strings.Trim(value, "\"'“”«»")
	value = strings.TrimSpace(value)
	if value == "" {
		return ""
	}
	if strings.ContainsAny(value, "0123456789") {
		return ""
	}
	if strings.ContainsAny(value, "()[]{}") {
		return ""
	}
	for _, r := range value {
		if unicode.IsLetter(r) || r == ' ' || r == '-' || r == '\'' || r == '’' || r == '·' || r == '.' {
			continue
		}
		return ""
	}
	value = strings.Join(strings.Fields(value), " ")
	if len([]rune(value)) < 2 {
		return ""
	}
	return value
}
