package nutrients

// Key identifies a micronutrient (vitamin or mineral), or fiber in a target map.
type Key string

// vitamins
const (
	VitaminA        Key = "vitaminA"
	VitaminB1       Key = "vitaminB1"
	VitaminB2       Key = "vitaminB2"
	VitaminB6       Key = "vitaminB6"
	VitaminB12      Key = "vitaminB12"
	VitaminC        Key = "vitaminC"
	VitaminD        Key = "vitaminD"
	VitaminE        Key = "vitaminE"
	VitaminK        Key = "vitaminK"
	Niacin          Key = "niacin"
	PantothenicAcid Key = "pantothenicAcid"
	Biotin          Key = "biotin"
	FolicAcid       Key = "folicAcid"
)

// minerals
const (
	Calcium    Key = "calcium"
	Iron       Key = "iron"
	Magnesium  Key = "magnesium"
	Zinc       Key = "zinc"
	Sodium     Key = "sodium"
	Potassium  Key = "potassium"
	Phosphorus Key = "phosphorus"
	Copper     Key = "copper"
	Manganese  Key = "manganese"
	Iodine     Key = "iodine"
	Selenium   Key = "selenium"
	Chromium   Key = "chromium"
	Molybdenum Key = "molybdenum"
)

// Fiber is only used as a target key; fiber totals are tracked as a macro field.
const Fiber Key = "fiber"

var VitaminKeys = []Key{
	VitaminA, VitaminB1, VitaminB2, VitaminB6, VitaminB12,
	VitaminC, VitaminD, VitaminE, VitaminK,
	Niacin, PantothenicAcid, Biotin, FolicAcid,
}

var MineralKeys = []Key{
	Calcium, Iron, Magnesium, Zinc, Sodium, Potassium,
	Phosphorus, Copper, Manganese, Iodine, Selenium, Chromium, Molybdenum,
}

// aliases maps legacy identifiers found in stored food data onto canonical keys.
// Food entries carry both "folate" and "folicAcid"; both land in the folicAcid bucket.
var aliases = map[string]Key{
	"folate": FolicAcid,
}

// nestedAliases are the short vitamin names used inside nested "vitamins" objects.
var nestedAliases = map[string]Key{
	"A":   VitaminA,
	"B1":  VitaminB1,
	"B2":  VitaminB2,
	"B6":  VitaminB6,
	"B12": VitaminB12,
	"C":   VitaminC,
	"D":   VitaminD,
	"E":   VitaminE,
	"K":   VitaminK,
}

var (
	vitaminSet = keySet(VitaminKeys)
	mineralSet = keySet(MineralKeys)
)

func keySet(keys []Key) map[Key]bool {
	set := make(map[Key]bool, len(keys))
	for _, k := range keys {
		set[k] = true
	}
	return set
}

// Canonical resolves a raw identifier (possibly a legacy alias) to its key.
// ok is false when the identifier is neither a vitamin nor a mineral.
func Canonical(raw string) (Key, bool) {
	if k, found := aliases[raw]; found {
		return k, true
	}
	k := Key(raw)
	if vitaminSet[k] || mineralSet[k] {
		return k, true
	}
	return "", false
}

// CanonicalNested is Canonical for keys of a nested vitamins object,
// which also accepts the short vitamin names (A, B1, ... K).
func CanonicalNested(raw string) (Key, bool) {
	if k, found := nestedAliases[raw]; found {
		return k, true
	}
	return Canonical(raw)
}

func IsVitamin(k Key) bool { return vitaminSet[k] }

func IsMineral(k Key) bool { return mineralSet[k] }
