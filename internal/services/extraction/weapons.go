package extraction

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/beevik/etree"

	"github.com/KirkDiggler/rpg-sheetfill/internal/entities"
	"github.com/KirkDiggler/rpg-sheetfill/internal/errors"
	"github.com/KirkDiggler/rpg-sheetfill/internal/xmlnode"
)

// noValue marks a melee range increment or a weapon without ammunition
const noValue = "0"

// Weapons reads the weapon list
func (s *Schema) Weapons(character *etree.Element) ([]entities.WeaponRecord, error) {
	list, err := child(character, "weaponlist")
	if err != nil {
		return nil, err
	}

	entries := xmlnode.ChildElements(list)
	weapons := make([]entities.WeaponRecord, 0, len(entries))
	for _, entry := range entries {
		w, err := weapon(entry)
		if err != nil {
			return nil, err
		}
		weapons = append(weapons, w)
	}
	return weapons, nil
}

func weapon(entry *etree.Element) (entities.WeaponRecord, error) {
	var w entities.WeaponRecord
	var err error

	if w.Name, err = requiredText(entry, "name"); err != nil {
		return w, err
	}
	if w.Attack, err = attackSequence(entry); err != nil {
		return w, err
	}
	if w.CritRange, err = requiredText(entry, "critatkrange"); err != nil {
		return w, err
	}
	if w.CritMultiplier, err = requiredText(entry, "critdmgmult"); err != nil {
		return w, err
	}
	if w.DamageDice, err = requiredText(entry, "damagedice"); err != nil {
		return w, err
	}

	bonus, err := optionalInt(entry, "damagebonus")
	if err != nil {
		return w, err
	}
	w.DamageBonus = intOr(bonus, 0)
	w.DamageType = CompactDamageType(optionalText(entry, "damagetype"))

	if w.Range, err = rangeIncrement(entry); err != nil {
		return w, err
	}
	if w.Ammo, err = remainingAmmo(entry); err != nil {
		return w, err
	}
	return w, nil
}

// attackSequence joins attack1..attackN with "/", N taken from attacks
func attackSequence(entry *etree.Element) (string, error) {
	count, err := requiredInt(entry, "attacks")
	if err != nil {
		return "", err
	}

	bonuses := make([]string, 0, count)
	for i := 1; i <= count; i++ {
		bonus, err := requiredText(entry, fmt.Sprintf("attack%d", i))
		if err != nil {
			return "", err
		}
		bonuses = append(bonuses, bonus)
	}
	return strings.Join(bonuses, "/"), nil
}

// rangeIncrement is nil for melee weapons, whose increment is "0"
func rangeIncrement(entry *etree.Element) (*int, error) {
	raw := optionalText(entry, "rangeincrement")
	if raw == "" || raw == noValue {
		return nil, nil
	}
	return optionalInt(entry, "rangeincrement")
}

// remainingAmmo is maxammo minus the used count. It is nil when maxammo is
// "0" (the weapon does not use ammunition) or not recorded at all.
func remainingAmmo(entry *etree.Element) (*int, error) {
	raw := optionalText(entry, "maxammo")
	if raw == "" || raw == noValue {
		return nil, nil
	}

	maxAmmo, err := strconv.Atoi(raw)
	if err != nil {
		path := xmlnode.Path(entry, "maxammo")
		return nil, errors.Structuralf("element %s is not a number", path).
			WithMeta("path", path).
			WithMeta("value", raw)
	}
	used, err := optionalInt(entry, "ammo")
	if err != nil {
		return nil, err
	}

	remaining := maxAmmo - intOr(used, 0)
	return &remaining, nil
}

// CompactDamageType reduces each comma separated damage type to its upper-cased
// first letter: "Slashing, Piercing" becomes "S,P". Blank tokens are dropped.
func CompactDamageType(raw string) string {
	var letters []string
	for _, token := range strings.Split(raw, ",") {
		token = strings.TrimSpace(token)
		if token == "" {
			continue
		}
		first := []rune(token)[0]
		letters = append(letters, string(unicode.ToUpper(first)))
	}
	return strings.Join(letters, ",")
}
