package core

import "strings"

// FormatGedcomNom reconstrueix la forma canonica GEDCOM d'un nom: el
// cognom embolcallat amb barres ("/Cognom/") i la resta de parts presents
// al seu voltant en ordre natural. Si no hi ha cognom no s'emet cap
// parella de barres buida.
func FormatGedcomNom(n NomGenealogic) string {
	parts := []string{}
	if n.Prefix != "" {
		parts = append(parts, n.Prefix)
	}
	if len(n.NomsPila) > 0 {
		parts = append(parts, strings.Join(n.NomsPila, " "))
	}
	if n.Cognom != "" {
		parts = append(parts, "/"+n.Cognom+"/")
	}
	if n.Sufix != "" {
		parts = append(parts, n.Sufix)
	}
	return strings.Join(parts, " ")
}

// FormatGedcomNomFromString parseja el nom i en retorna la forma canonica
// GEDCOM. Sobre una entrada ja canonica (sense espais sobrers) es un punt
// fix: tornar a formatar no canvia res.
func FormatGedcomNomFromString(raw string) string {
	return FormatGedcomNom(ParseNomGenealogic(raw))
}
