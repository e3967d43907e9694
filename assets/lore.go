package assets

// KillLines are announced when a strike kills. %[1]s is the victor, %[2]s the loser.
var KillLines = []string{
	"%[1]s fells %[2]s. The crowd roars.",
	"%[2]s drops to the sand. %[1]s is already eyeing the gear.",
	"%[1]s finishes %[2]s with a tired swing.",
	"The arena falls quiet as %[2]s stops moving. %[1]s stands alone.",
}

// MissLines are announced on a miss. %[1]s is the attacker, %[2]s the defender.
var MissLines = []string{
	"%[1]s swings wide of %[2]s.",
	"%[2]s turns %[1]s's blow aside.",
	"%[1]s stumbles in the sand.",
}
