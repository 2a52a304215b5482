package shared

// HPResource tracks hit points and temporary HP
type HPResource struct {
	Current   int `json:"current"`
	Max       int `json:"max"`
	Temporary int `json:"temporary"`
}

// Damage applies damage, consuming temp HP first, and returns the amount dealt
func (hp *HPResource) Damage(amount int) int {
	if amount <= 0 {
		return 0
	}

	originalAmount := amount

	if hp.Temporary > 0 {
		if hp.Temporary >= amount {
			hp.Temporary -= amount
			return originalAmount // All absorbed by temp HP
		}
		amount -= hp.Temporary
		hp.Temporary = 0
	}

	hp.Current -= amount
	if hp.Current < 0 {
		hp.Current = 0
	}

	return originalAmount
}

// Heal restores hit points up to max and returns the amount actually healed
func (hp *HPResource) Heal(amount int) int {
	if amount <= 0 || hp.Current >= hp.Max {
		return 0
	}

	oldHP := hp.Current
	hp.Current += amount
	if hp.Current > hp.Max {
		hp.Current = hp.Max
	}

	return hp.Current - oldHP
}

// AddTemporaryHP adds temporary hit points (doesn't stack, keeps the higher value)
func (hp *HPResource) AddTemporaryHP(amount int) {
	if amount > hp.Temporary {
		hp.Temporary = amount
	}
}
