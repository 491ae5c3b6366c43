package assembly

import (
	"strconv"
)

var systemNames = []string{
	"Altair", "Vega", "Sirius", "Arcturus", "Capella", "Rigel", "Procyon",
	"Betelgeuse", "Aldebaran", "Spica", "Antares", "Pollux", "Fomalhaut",
	"Deneb", "Regulus", "Adhara", "Castor", "Gacrux", "Bellatrix", "Elnath",
	"Miaplacidus", "Alnilam", "Alnair", "Alioth", "Dubhe", "Mirfak", "Wezen",
	"Sargas", "Kaus", "Avior", "Menkalinan", "Atria", "Alhena", "Peacock",
	"Alsephina", "Mirzam", "Polaris", "Alphard", "Hamal", "Algieba", "Diphda",
	"Mizar", "Nunki", "Menkent", "Mirach", "Alpheratz", "Rasalhague", "Kochab",
	"Saiph", "Zubenelgenubi", "Enif", "Schedar", "Markab", "Unukalhai", "Tau",
}

var romanNumerals = []string{
	"I", "II", "III", "IV", "V", "VI", "VII", "VIII", "IX", "X",
	"XI", "XII", "XIII", "XIV", "XV", "XVI", "XVII", "XVIII", "XIX", "XX",
}

// starSuffixes name the members of a multiple system.
var starSuffixes = []string{"A", "B", "C"}

func roman(index int) string {
	if index >= 0 && index < len(romanNumerals) {
		return romanNumerals[index]
	}
	return strconv.Itoa(index + 1)
}

// letter returns a, b, ... z, then aa, ab and so on.
func letter(index int) string {
	if index < 26 {
		return string(rune('a' + index))
	}
	return letter(index/26-1) + letter(index%26)
}

func starName(system string, index, count int) string {
	if count <= 1 {
		return system
	}
	if index < len(starSuffixes) {
		return system + " " + starSuffixes[index]
	}
	return system + " " + strconv.Itoa(index+1)
}

func planetName(system string, index int) string {
	return system + " " + roman(index)
}

func moonName(parent string, index int) string {
	return parent + letter(index)
}
