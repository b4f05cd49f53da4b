package record

// class names by class id
var classNames = map[uint8]string{
	1:  "Drifter",
	2:  "Striker",
	3:  "Samurai Gunner",
	4:  "Duelist",
	5:  "Shield Trooper",
	6:  "Bastion Warrior",
	7:  "Commando",
	8:  "Winged Viper",
	9:  "Full Metal Jaguar",
	10: "Partisan Eagle",
	11: "Astral Crusader",
	12: "Enforcer",
	13: "Psycorruptor",
	14: "Mastermind",
	15: "Blast Fencer",
	16: "Galactic Knight",
}

// BLADE division names by division id
var divisionNames = map[uint32]string{
	0: "none",
	1: "Pathfinders",
	2: "Interceptors",
	3: "Harriers",
	4: "Reclaimers",
	5: "Curators",
	6: "Prospectors",
	7: "Outfitters",
	8: "Mediators",
}

const (
	DefaultClassName    = "Drifter"
	DefaultDivisionName = "none"
)

// ClassName returns the name of a combat class, DefaultClassName for unknown ids.
func ClassName(id uint8) string {
	if name, ok := classNames[id]; ok {
		return name
	}

	return DefaultClassName
}

// DivisionName returns the name of a BLADE division, DefaultDivisionName for
// unknown ids.
func DivisionName(id uint32) string {
	if name, ok := divisionNames[id]; ok {
		return name
	}

	return DefaultDivisionName
}
