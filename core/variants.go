package core

import (
	"sort"
	"strings"
)

// FindNomVariants retorna les variants textuals habituals d'un nom, en
// ordre fix: l'entrada original, la substitucio pel sobrenom, les inicials
// abreujades i el cognom sol. Les repeticions es descarten ignorant
// majuscules pero conservant la primera grafia vista.
func FindNomVariants(raw string) []string {
	parsed := ParseNomGenealogic(raw)
	variants := []string{raw}

	if parsed.Sobrenom != "" && len(parsed.NomsPila) > 0 {
		parts := []string{}
		if parsed.Prefix != "" {
			parts = append(parts, parsed.Prefix)
		}
		parts = append(parts, parsed.Sobrenom)
		if parsed.Cognom != "" {
			parts = append(parts, parsed.Cognom)
		}
		if parsed.Sufix != "" {
			parts = append(parts, parsed.Sufix)
		}
		variants = append(variants, strings.Join(parts, " "))
	}

	if len(parsed.NomsPila) > 0 {
		abreujats := []string{}
		for _, nom := range parsed.NomsPila {
			if nom != "" {
				abreujats = append(abreujats, string([]rune(nom)[:1])+".")
			}
		}
		if len(abreujats) > 0 || parsed.Cognom != "" {
			parts := []string{}
			if parsed.Prefix != "" {
				parts = append(parts, parsed.Prefix)
			}
			parts = append(parts, abreujats...)
			if parsed.Cognom != "" {
				parts = append(parts, parsed.Cognom)
			}
			if parsed.Sufix != "" {
				parts = append(parts, parsed.Sufix)
			}
			variants = append(variants, strings.Join(parts, " "))
		}
	}

	if parsed.Cognom != "" {
		variants = append(variants, parsed.Cognom)
	}

	seen := map[string]struct{}{}
	unique := []string{}
	for _, variant := range variants {
		key := strings.ToLower(variant)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		unique = append(unique, variant)
	}
	return unique
}

// NomSuggeriment es una forma candidata propera a un nom base.
type NomSuggeriment struct {
	Forma     string `json:"forma"`
	Distancia int    `json:"distancia"`
	Puntuacio int    `json:"puntuacio"`
}

// NomSimilarity retorna la similitud entre dos noms sobre 100, calculada
// amb la distancia d'edicio entre les claus normalitzades. 100 vol dir
// claus identiques; 0 cap semblanca (o claus buides).
func NomSimilarity(a, b string) int {
	keyA := NormalizeNomKey(a)
	keyB := NormalizeNomKey(b)
	if keyA == "" || keyB == "" {
		return 0
	}
	if keyA == keyB {
		return 100
	}
	dist := levenshteinDistance(keyA, keyB)
	max := len([]rune(keyA))
	if l := len([]rune(keyB)); l > max {
		max = l
	}
	if dist >= max {
		return 0
	}
	return (max - dist) * 100 / max
}

// SuggestNomsSimilars filtra els candidats que semblen grafies alternatives
// del nom base: distancia d'edicio curta (<= 2) o similitud per sobre del
// llindar (per defecte 80 sobre 100). El resultat va ordenat per distancia
// i limitat (per defecte 12 entrades).
func SuggestNomsSimilars(base string, candidats []string, llindar, limit int) []NomSuggeriment {
	baseKey := NormalizeNomKey(base)
	if baseKey == "" {
		return nil
	}
	if llindar <= 0 || llindar > 100 {
		llindar = 80
	}
	if limit <= 0 {
		limit = 12
	}

	seen := map[string]struct{}{}
	suggeriments := []NomSuggeriment{}
	for _, candidat := range candidats {
		forma := sanitizeNomLiteral(candidat)
		if forma == "" {
			continue
		}
		key := NormalizeNomKey(forma)
		if key == "" || key == baseKey {
			continue
		}
		if _, ok := seen[key]; ok {
			continue
		}
		dist := levenshteinDistance(baseKey, key)
		score := NomSimilarity(base, forma)
		if dist > 2 && score < llindar {
			continue
		}
		seen[key] = struct{}{}
		suggeriments = append(suggeriments, NomSuggeriment{
			Forma:     forma,
			Distancia: dist,
			Puntuacio: score,
		})
	}
	sort.Slice(suggeriments, func(i, j int) bool {
		if suggeriments[i].Distancia != suggeriments[j].Distancia {
			return suggeriments[i].Distancia < suggeriments[j].Distancia
		}
		return strings.ToLower(suggeriments[i].Forma) < strings.ToLower(suggeriments[j].Forma)
	})
	if len(suggeriments) > limit {
		suggeriments = suggeriments[:limit]
	}
	Debugf("SuggestNomsSimilars %q: %d candidats, %d suggeriments", base, len(candidats), len(suggeriments))
	return suggeriments
}

func levenshteinDistance(a, b string) int {
	if a == b {
		return 0
	}
	ar := []rune(a)
	br := []rune(b)
	if len(ar) == 0 {
		return len(br)
	}
	if len(br) == 0 {
		return len(ar)
	}
	prev := make([]int, len(br)+1)
	curr := make([]int, len(br)+1)
	for j := 0; j <= len(br); j++ {
		prev[j] = j
	}
	for i := 1; i <= len(ar); i++ {
		curr[0] = i
		for j := 1; j <= len(br); j++ {
			cost := 0
			if ar[i-1] != br[j-1] {
				cost = 1
			}
			del := prev[j] + 1
			ins := curr[j-1] + 1
			sub := prev[j-1] + cost
			curr[j] = del
			if ins < curr[j] {
				curr[j] = ins
			}
			if sub < curr[j] {
				curr[j] = sub
			}
		}
		copy(prev, curr)
	}
	return prev[len(br)]
}
