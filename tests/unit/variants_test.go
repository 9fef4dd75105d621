package unit

import (
	"strings"
	"testing"

	"github.com/marcmoiagese/NomsGenealogics/core"
)

func contains(list []string, val string) bool {
	for _, item := range list {
		if item == val {
			return true
		}
	}
	return false
}

func TestFindNomVariantsBasic(t *testing.T) {
	variants := core.FindNomVariants("John Smith")
	if len(variants) == 0 || variants[0] != "John Smith" {
		t.Fatalf("la primera variant ha de ser l'entrada original: %v", variants)
	}
	for _, esperada := range []string{"John Smith", "J. Smith", "Smith"} {
		if !contains(variants, esperada) {
			t.Errorf("falta la variant %q a %v", esperada, variants)
		}
	}
}

func TestFindNomVariantsSobrenom(t *testing.T) {
	variants := core.FindNomVariants(`John "Jack" Smith`)
	if !contains(variants, "Jack Smith") {
		t.Errorf("falta la variant amb sobrenom a %v", variants)
	}
	if !contains(variants, "J. Smith") {
		t.Errorf("falta la variant amb inicials a %v", variants)
	}
}

func TestFindNomVariantsAmbPrefixISufix(t *testing.T) {
	variants := core.FindNomVariants("Mr. John Smith Jr.")
	if !contains(variants, "Mr. J. Smith Jr.") {
		t.Errorf("la variant amb inicials ha de conservar prefix i sufix: %v", variants)
	}
	if !contains(variants, "Smith") {
		t.Errorf("falta la variant nomes-cognom a %v", variants)
	}
}

func TestFindNomVariantsMultiplesNoms(t *testing.T) {
	variants := core.FindNomVariants("John Paul Smith")
	if !contains(variants, "J. P. Smith") {
		t.Errorf("falta la variant amb totes les inicials a %v", variants)
	}
}

// El sobrenom nomes substitueix noms de pila existents; sense noms de
// pila no es genera la variant.
func TestFindNomVariantsSobrenomSenseNomsPila(t *testing.T) {
	variants := core.FindNomVariants(`"Jack" /Smith/`)
	if contains(variants, "Jack Smith") {
		t.Errorf("no s'esperava variant de sobrenom sense noms de pila: %v", variants)
	}
	if !contains(variants, "Smith") {
		t.Errorf("falta la variant nomes-cognom a %v", variants)
	}
}

func TestFindNomVariantsDedup(t *testing.T) {
	variants := core.FindNomVariants("Smith")
	if len(variants) != 1 || variants[0] != "Smith" {
		t.Fatalf("les repeticions s'han d'eliminar conservant la primera grafia: %v", variants)
	}
}

func TestFindNomVariantsSenseDuplicatsInsensibles(t *testing.T) {
	inputs := []string{
		"John Smith",
		"SMITH",
		`Mr. John "Jack" /Smith/ Jr.`,
		"Maria /de la Cruz/",
		"Rev. John Smith III",
	}
	for _, input := range inputs {
		variants := core.FindNomVariants(input)
		seen := map[string]struct{}{}
		for _, v := range variants {
			key := strings.ToLower(v)
			if _, ok := seen[key]; ok {
				t.Errorf("per %q hi ha duplicats insensibles a majuscules: %v", input, variants)
			}
			seen[key] = struct{}{}
		}
	}
}

func TestFindNomVariantsSurnameOnlyUpper(t *testing.T) {
	variants := core.FindNomVariants("SMITH")
	if len(variants) != 1 || variants[0] != "SMITH" {
		t.Fatalf("s'esperava una unica variant amb la grafia original: %v", variants)
	}
}
