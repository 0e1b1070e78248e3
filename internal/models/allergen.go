package models

// Allergen is one of the 14 EU-regulated allergen labels. Values are
// copied from the product catalog or set manually on a recipe; the
// application never invents new ones.
type Allergen string

const (
	AllergenGluten         Allergen = "Gluten"
	AllergenCrustaceos     Allergen = "Crustáceos"
	AllergenHuevos         Allergen = "Huevos"
	AllergenPescado        Allergen = "Pescado"
	AllergenCacahuetes     Allergen = "Cacahuetes"
	AllergenSoja           Allergen = "Soja"
	AllergenLacteos        Allergen = "Lácteos"
	AllergenFrutosCascara  Allergen = "Frutos de cáscara"
	AllergenApio           Allergen = "Apio"
	AllergenMostaza        Allergen = "Mostaza"
	AllergenSesamo         Allergen = "Sésamo"
	AllergenSulfitos       Allergen = "Sulfitos"
	AllergenAltramuces     Allergen = "Altramuces"
	AllergenMoluscos       Allergen = "Moluscos"
)

// AllAllergens lists the full vocabulary in declaration order.
var AllAllergens = []Allergen{
	AllergenGluten,
	AllergenCrustaceos,
	AllergenHuevos,
	AllergenPescado,
	AllergenCacahuetes,
	AllergenSoja,
	AllergenLacteos,
	AllergenFrutosCascara,
	AllergenApio,
	AllergenMostaza,
	AllergenSesamo,
	AllergenSulfitos,
	AllergenAltramuces,
	AllergenMoluscos,
}

// IsValid reports whether a is part of the fixed vocabulary.
func (a Allergen) IsValid() bool {
	for _, known := range AllAllergens {
		if a == known {
			return true
		}
	}
	return false
}
