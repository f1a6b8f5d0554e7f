package entities

// CharacterRecord is the flat in-memory view of one character export.
// It is built once per document and never updated in place.
type CharacterRecord struct {
	Profile

	Abilities   []Ability
	Saves       NamedValues
	HP          NamedValues
	Initiative  NamedValues
	AC          ArmorClass
	AttackBonus AttackBonus
	Defenses    Defenses
	Encumbrance NamedValues

	Skills           []Skill
	Inventory        []Item
	Weapons          []WeaponRecord
	SpellSet         SpellSet
	Feats            []Feat
	Traits           []Trait
	SpecialAbilities []Trait
	Languages        []string
	Proficiencies    []string
}

// Profile holds the scalar leaves of the export
type Profile struct {
	Name       string
	Level      int
	ClassLevel string
	Race       string
	Deity      string
	Alignment  string
	Size       string
	Age        string
	Appearance string
	Gender     string
	Height     string
	Weight     string
	Speed      string
}

// NamedValue is one entry of a section driven by an ordered list of names
type NamedValue struct {
	Name  string
	Value int
}

// NamedValues keeps section entries in the order of the schema enumeration
type NamedValues []NamedValue

// Lookup returns the value stored under name
func (n NamedValues) Lookup(name string) (int, bool) {
	for _, v := range n {
		if v.Name == name {
			return v.Value, true
		}
	}
	return 0, false
}

// Ability holds an ability score and its derived modifier
type Ability struct {
	Name  string
	Score int
	Bonus int
}

// Ability returns the named ability
func (c *CharacterRecord) Ability(name string) (Ability, bool) {
	for _, a := range c.Abilities {
		if a.Name == name {
			return a, true
		}
	}
	return Ability{}, false
}

// ArmorClass groups the AC totals (general, flat-footed, touch, CMD) and the
// sources that contribute to them
type ArmorClass struct {
	Totals  NamedValues
	Sources NamedValues
}

// AttackBonus holds the base attack bonus and the per-type totals
type AttackBonus struct {
	Base   int
	Totals NamedValues
}

// Defenses holds damage reduction and spell resistance. Both are optional in
// the export.
type Defenses struct {
	DamageReduction string
	SpellResistance *int
}

// Item is one inventory entry
type Item struct {
	Name     string
	Count    int
	Weight   float64
	Location string
	Carried  string
}

// Feat is one entry of the feat list
type Feat struct {
	Name    string
	Summary string
}

// Trait is one racial trait or special ability. Description holds only the
// first sentence of the source text.
type Trait struct {
	Name        string
	Description string
}
