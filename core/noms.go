package core

import (
	"regexp"
	"strings"
	"unicode"
)

// NomGenealogic representa un nom personal tal com apareix en registres
// genealogics, separat en components. Es construeix una sola vegada amb
// ParseNomGenealogic i no es modifica despres.
type NomGenealogic struct {
	OriginalText string   `json:"original_text"`
	NomsPila     []string `json:"noms_pila"`
	Cognom       string   `json:"cognom"`
	Prefix       string   `json:"prefix,omitempty"`
	Sufix        string   `json:"sufix,omitempty"`
	Sobrenom     string   `json:"sobrenom,omitempty"`
	Titol        string   `json:"titol,omitempty"`
}

var (
	reSobrenom = regexp.MustCompile(`"([^"]+)"`)
	reCognom   = regexp.MustCompile(`/([^/]+)/`)

	// L'alternativa final "$" cobreix entrades que nomes contenen
	// l'honorific ("Sir", "Mr."), que han de quedar sense noms de pila
	// ni cognom.
	rePrefix = regexp.MustCompile(`(?i)^(Mr\.?|Mrs\.?|Ms\.?|Miss|Mister|Madam|Dr\.?|Doctor|Prof\.?|Professor|Rev\.?|Reverend|Sir|Lady|Lord|Dame)(?:\s+|$)`)
	reSufix  = regexp.MustCompile(`(?i)\s+(Jr\.?|Sr\.?|II|III|IV|V|VI|Esq\.?|Esquire)$`)

	// El patro de titol es el mateix que el de prefix. El prefix sempre
	// guanya; el camp Titol nomes s'omple quan el prefix no ha consumit
	// el token inicial.
	reTitol = rePrefix
)

// prefixosTitols conte prefixos, titols i sufixos coneguts, en majuscules
// i sense punt final.
var prefixosTitols = map[string]struct{}{
	"MR": {}, "MRS": {}, "MS": {}, "MISS": {}, "MISTER": {}, "MADAM": {},
	"DR": {}, "DOCTOR": {}, "PROF": {}, "PROFESSOR": {}, "REV": {},
	"REVEREND": {}, "SIR": {}, "LADY": {}, "LORD": {}, "DAME": {},
	"JR": {}, "SR": {}, "ESQ": {}, "ESQUIRE": {},
}

// ParseNomGenealogic parseja una cadena de nom en format lliure o GEDCOM
// ("Nom /Cognom/"). Mai falla: una entrada buida retorna un NomGenealogic
// buit. L'ordre d'extraccio es fix: sobrenom, cognom delimitat, prefix,
// sufix, titol i finalment noms de pila; cada pas elimina el que captura.
func ParseNomGenealogic(raw string) NomGenealogic {
	original := strings.TrimSpace(raw)
	if original == "" {
		return NomGenealogic{OriginalText: "", NomsPila: []string{}, Cognom: ""}
	}

	resta := original

	// Sobrenom entre cometes dobles. Nomes es captura el primer tram
	// (limitacio coneguda), pero s'eliminen tots.
	sobrenom := ""
	if m := reSobrenom.FindStringSubmatch(resta); m != nil {
		sobrenom = m[1]
		resta = strings.TrimSpace(reSobrenom.ReplaceAllString(resta, ""))
	}

	// Cognom delimitat per barres.
	cognom := ""
	if m := reCognom.FindStringSubmatch(resta); m != nil {
		cognom = strings.TrimSpace(m[1])
		resta = strings.TrimSpace(reCognom.ReplaceAllString(resta, ""))
	}

	prefix := ""
	if loc := rePrefix.FindStringSubmatchIndex(resta); loc != nil {
		prefix = resta[loc[2]:loc[3]]
		resta = strings.TrimSpace(resta[loc[1]:])
	}

	sufix := ""
	if loc := reSufix.FindStringSubmatchIndex(resta); loc != nil {
		sufix = resta[loc[2]:loc[3]]
		resta = strings.TrimSpace(resta[:loc[0]])
	}

	titol := ""
	if prefix == "" {
		if loc := reTitol.FindStringSubmatchIndex(resta); loc != nil {
			titol = resta[loc[2]:loc[3]]
			resta = strings.TrimSpace(resta[loc[1]:])
		}
	}

	nomsPila := []string{}
	if resta != "" {
		nomsPila = strings.Fields(resta)
	}

	// Inferencia de cognom: si l'entrada no duia barres i l'ultim token
	// te forma de cognom (tot majuscules o Majuscula+minuscules), es
	// promociona.
	if cognom == "" && len(nomsPila) > 0 && !reCognom.MatchString(original) {
		ultim := nomsPila[len(nomsPila)-1]
		if teFormaDeCognom(ultim) && !IsPrefixOrTitle(ultim) {
			cognom = ultim
			nomsPila = nomsPila[:len(nomsPila)-1]
		}
	}

	parsed := NomGenealogic{
		OriginalText: original,
		NomsPila:     nomsPila,
		Cognom:       cognom,
		Prefix:       prefix,
		Sufix:        sufix,
		Sobrenom:     sobrenom,
		Titol:        titol,
	}
	Debugf("ParseNomGenealogic %q -> pila=%v cognom=%q prefix=%q sufix=%q sobrenom=%q", original, parsed.NomsPila, parsed.Cognom, parsed.Prefix, parsed.Sufix, parsed.Sobrenom)
	return parsed
}

// String retorna la forma estandarditzada: prefix, noms de pila, cognom i
// sufix separats per espais, ometent les parts absents. El titol i el
// sobrenom no hi apareixen.
func (n NomGenealogic) String() string {
	parts := []string{}
	if n.Prefix != "" {
		parts = append(parts, n.Prefix)
	}
	if len(n.NomsPila) > 0 {
		parts = append(parts, strings.Join(n.NomsPila, " "))
	}
	if n.Cognom != "" {
		parts = append(parts, n.Cognom)
	}
	if n.Sufix != "" {
		parts = append(parts, n.Sufix)
	}
	return strings.Join(parts, " ")
}

// IsPrefixOrTitle indica si el token es un prefix, titol o sufix conegut.
// La comparacio ignora majuscules pero no elimina punts ("Mr." no hi es).
func IsPrefixOrTitle(token string) bool {
	_, ok := prefixosTitols[strings.ToUpper(token)]
	return ok
}

func teFormaDeCognom(token string) bool {
	runes := []rune(token)
	if esTotMajuscules(token) {
		return true
	}
	if len(runes) > 1 && unicode.IsUpper(runes[0]) && esTotMinuscules(string(runes[1:])) {
		return true
	}
	return false
}

// esTotMajuscules: cap lletra minuscula i almenys una majuscula; els
// signes com apostrofs o punts no compten.
func esTotMajuscules(s string) bool {
	teMajuscula := false
	for _, r := range s {
		if unicode.IsLower(r) {
			return false
		}
		if unicode.IsUpper(r) {
			teMajuscula = true
		}
	}
	return teMajuscula
}

func esTotMinuscules(s string) bool {
	teMinuscula := false
	for _, r := range s {
		if unicode.IsUpper(r) {
			return false
		}
		if unicode.IsLower(r) {
			teMinuscula = true
		}
	}
	return teMinuscula
}
