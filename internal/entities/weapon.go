package entities

import (
	"fmt"
	"strconv"
)

// WeaponRecord is one entry of the weapon list
type WeaponRecord struct {
	Name string
	// Attack is the iterative attack sequence, e.g. "6/1"
	Attack         string
	CritRange      string
	CritMultiplier string
	DamageDice     string
	DamageBonus    int
	// DamageType is the compact form, e.g. "S,P"
	DamageType string
	// Range is nil for melee weapons
	Range *int
	// Ammo is nil for weapons that do not use ammunition
	Ammo *int
}

// Damage returns the dice with the signed bonus appended when non-zero
func (w WeaponRecord) Damage() string {
	if w.DamageBonus == 0 {
		return w.DamageDice
	}
	return w.DamageDice + SignedInt(w.DamageBonus)
}

// Critical returns the threat range and multiplier, e.g. "19-20/x2"
func (w WeaponRecord) Critical() string {
	threat := w.CritRange
	if n, err := strconv.Atoi(w.CritRange); err == nil && n < 20 {
		threat = fmt.Sprintf("%d-20", n)
	}
	return fmt.Sprintf("%s/x%s", threat, w.CritMultiplier)
}

// SignedInt formats n with an explicit sign
func SignedInt(n int) string {
	if n < 0 {
		return strconv.Itoa(n)
	}
	return "+" + strconv.Itoa(n)
}
