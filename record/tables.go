package record

// generated from the game's FnetVeinList, FLD_Location and ITM_BeaconList tables

var probeTypes = map[uint16]Probe{
	1:   {TypeID: 1, Name: "Basic Probe", Code: "BA", FrontierNavType: 1},
	2:   {TypeID: 2, Name: "Mining Probe G1", Code: "M1", FrontierNavType: 2},
	3:   {TypeID: 3, Name: "Mining Probe G2", Code: "M2", FrontierNavType: 3},
	4:   {TypeID: 4, Name: "Mining Probe G3", Code: "M3", FrontierNavType: 4},
	5:   {TypeID: 5, Name: "Mining Probe G4", Code: "M4", FrontierNavType: 5},
	6:   {TypeID: 6, Name: "Mining Probe G5", Code: "M5", FrontierNavType: 6},
	7:   {TypeID: 7, Name: "Mining Probe G6", Code: "M6", FrontierNavType: 7},
	8:   {TypeID: 8, Name: "Mining Probe G7", Code: "M7", FrontierNavType: 8},
	9:   {TypeID: 9, Name: "Mining Probe G8", Code: "M8", FrontierNavType: 9},
	10:  {TypeID: 10, Name: "Mining Probe G9", Code: "M9", FrontierNavType: 10},
	11:  {TypeID: 11, Name: "Mining Probe G10", Code: "M10", FrontierNavType: 11},
	14:  {TypeID: 14, Name: "Research Probe G1", Code: "R1", FrontierNavType: 12},
	15:  {TypeID: 15, Name: "Research Probe G2", Code: "R2", FrontierNavType: 13},
	16:  {TypeID: 16, Name: "Research Probe G3", Code: "R3", FrontierNavType: 14},
	17:  {TypeID: 17, Name: "Research Probe G4", Code: "R4", FrontierNavType: 15},
	18:  {TypeID: 18, Name: "Research Probe G5", Code: "R5", FrontierNavType: 16},
	19:  {TypeID: 19, Name: "Research Probe G6", Code: "R6", FrontierNavType: 17},
	22:  {TypeID: 22, Name: "Booster Probe G1", Code: "B1", FrontierNavType: 18},
	23:  {TypeID: 23, Name: "Booster Probe G2", Code: "B2", FrontierNavType: 19},
	26:  {TypeID: 26, Name: "Storage Probe", Code: "S", FrontierNavType: 20},
	29:  {TypeID: 29, Name: "Duplicator Probe", Code: "D", FrontierNavType: 21},
	30:  {TypeID: 30, Name: "Fuel Recovery Probe", Code: "FR", FrontierNavType: 22},
	31:  {TypeID: 31, Name: "Melee Attack Probe", Code: "MA", FrontierNavType: 22},
	32:  {TypeID: 32, Name: "Ranged Attack Probe", Code: "RA", FrontierNavType: 22},
	33:  {TypeID: 33, Name: "EZ Debuff Probe", Code: "ED", FrontierNavType: 22},
	34:  {TypeID: 34, Name: "Attribute Resistance Probe", Code: "AR", FrontierNavType: 22},
	254: {TypeID: 254, Name: "[LOCKED]", Code: "XX", FrontierNavType: 0},
}

// sites in FrontierNav array order
var sites = [SiteCount]Site{
	{ID: 0, Name: "skip", Code: "skip", Mining: 'C', Revenue: 'C', Combat: 'C'},
	{ID: 1, Name: "FN Site 101", Code: "101", Mining: 'C', Revenue: 'S', Combat: 'S', SightseeingSpots: []uint16{34}},
	{ID: 2, Name: "FN Site 102", Code: "102", Mining: 'C', Revenue: 'F', Combat: 'B'},
	{ID: 3, Name: "FN Site 103", Code: "103", Mining: 'C', Revenue: 'E', Combat: 'A', SightseeingSpots: []uint16{57}},
	{ID: 4, Name: "FN Site 104", Code: "104", Mining: 'C', Revenue: 'S', Combat: 'B', SightseeingSpots: []uint16{48}},
	{ID: 5, Name: "FN Site 106", Code: "106", Mining: 'B', Revenue: 'E', Combat: 'B', SightseeingSpots: []uint16{41}, Ores: []string{"Arc Sand Ore"}},
	{ID: 6, Name: "FN Site 108", Code: "108", Mining: 'C', Revenue: 'F', Combat: 'B', Ores: []string{"Aurorite", "Arc Sand Ore", "Foucaultium"}},
	{ID: 7, Name: "FN Site 107", Code: "107", Mining: 'A', Revenue: 'F', Combat: 'B'},
	{ID: 8, Name: "FN Site 109", Code: "109", Mining: 'C', Revenue: 'D', Combat: 'B', Ores: []string{"Foucaultium", "Dawnstone", "Lionbone Bort"}},
	{ID: 9, Name: "FN Site 110", Code: "110", Mining: 'C', Revenue: 'E', Combat: 'B', SightseeingSpots: []uint16{74}, Ores: []string{"Aurorite", "Arc Sand Ore", "White Cometite", "Dawnstone"}},
	{ID: 10, Name: "FN Site 111", Code: "111", Mining: 'C', Revenue: 'F', Combat: 'B', Ores: []string{"Foucaultium"}},
	{ID: 11, Name: "FN Site 112", Code: "112", Mining: 'A', Revenue: 'F', Combat: 'A'},
	{ID: 12, Name: "FN Site 113", Code: "113", Mining: 'C', Revenue: 'C', Combat: 'B'},
	{ID: 13, Name: "FN Site 114", Code: "114", Mining: 'C', Revenue: 'E', Combat: 'B'},
	{ID: 14, Name: "FN Site 115", Code: "115", Mining: 'C', Revenue: 'D', Combat: 'B', Ores: []string{"Arc Sand Ore", "White Cometite", "Lionbone Bort"}},
	{ID: 15, Name: "FN Site 116", Code: "116", Mining: 'A', Revenue: 'D', Combat: 'B'},
	{ID: 16, Name: "FN Site 117", Code: "117", Mining: 'A', Revenue: 'D', Combat: 'A', SightseeingSpots: []uint16{81}},
	{ID: 17, Name: "FN Site 118", Code: "118", Mining: 'C', Revenue: 'E', Combat: 'B', Ores: []string{"Aurorite", "White Cometite", "Dawnstone"}},
	{ID: 18, Name: "FN Site 119", Code: "119", Mining: 'C', Revenue: 'E', Combat: 'B'},
	{ID: 19, Name: "FN Site 120", Code: "120", Mining: 'B', Revenue: 'B', Combat: 'B'},
	{ID: 20, Name: "FN Site 121", Code: "121", Mining: 'A', Revenue: 'E', Combat: 'B'},
	{ID: 21, Name: "FN Site 105", Code: "105", Mining: 'A', Revenue: 'F', Combat: 'B'},
	{ID: 22, Name: "FN Site 201", Code: "201", Mining: 'C', Revenue: 'B', Combat: 'S'},
	{ID: 23, Name: "FN Site 202", Code: "202", Mining: 'C', Revenue: 'C', Combat: 'B', Ores: []string{"Cimmerian Cinnabar", "Everfreeze Ore"}},
	{ID: 24, Name: "FN Site 203", Code: "203", Mining: 'C', Revenue: 'A', Combat: 'B', Ores: []string{"Cimmerian Cinnabar"}},
	{ID: 25, Name: "FN Site 204", Code: "204", Mining: 'A', Revenue: 'C', Combat: 'B'},
	{ID: 26, Name: "FN Site 205", Code: "205", Mining: 'A', Revenue: 'F', Combat: 'B'},
	{ID: 27, Name: "FN Site 206", Code: "206", Mining: 'B', Revenue: 'A', Combat: 'S'},
	{ID: 28, Name: "FN Site 207", Code: "207", Mining: 'C', Revenue: 'C', Combat: 'B', Ores: []string{"Infernium", "White Cometite", "Cimmerian Cinnabar", "Foucaultium"}},
	{ID: 29, Name: "FN Site 208", Code: "208", Mining: 'B', Revenue: 'D', Combat: 'B', Ores: []string{"Foucaultium"}},
	{ID: 30, Name: "FN Site 209", Code: "209", Mining: 'C', Revenue: 'F', Combat: 'B'},
	{ID: 31, Name: "FN Site 210", Code: "210", Mining: 'B', Revenue: 'D', Combat: 'B'},
	{ID: 32, Name: "FN Site 211", Code: "211", Mining: 'A', Revenue: 'D', Combat: 'B'},
	{ID: 33, Name: "FN Site 212", Code: "212", Mining: 'B', Revenue: 'E', Combat: 'B', Ores: []string{"Aurorite", "Enduron Lead", "White Cometite"}},
	{ID: 34, Name: "FN Site 213", Code: "213", Mining: 'C', Revenue: 'S', Combat: 'B', SightseeingSpots: []uint16{162}},
	{ID: 35, Name: "FN Site 214", Code: "214", Mining: 'C', Revenue: 'D', Combat: 'B', SightseeingSpots: []uint16{229, 241}},
	{ID: 36, Name: "FN Site 215", Code: "215", Mining: 'C', Revenue: 'D', Combat: 'B', Ores: []string{"Aurorite", "Enduron Lead", "Everfreeze Ore"}},
	{ID: 37, Name: "FN Site 216", Code: "216", Mining: 'C', Revenue: 'A', Combat: 'A', SightseeingSpots: []uint16{133}},
	{ID: 38, Name: "FN Site 217", Code: "217", Mining: 'C', Revenue: 'C', Combat: 'B', Ores: []string{"Aurorite", "Infernium", "Cimmerian Cinnabar"}},
	{ID: 39, Name: "FN Site 218", Code: "218", Mining: 'C', Revenue: 'E', Combat: 'B', Ores: []string{"Aurorite", "Enduron Lead", "White Cometite"}},
	{ID: 40, Name: "FN Site 219", Code: "219", Mining: 'C', Revenue: 'E', Combat: 'B', Ores: []string{"Enduron Lead", "White Cometite"}},
	{ID: 41, Name: "FN Site 220", Code: "220", Mining: 'C', Revenue: 'C', Combat: 'A', SightseeingSpots: []uint16{126}, Ores: []string{"Infernium", "Everfreeze Ore"}},
	{ID: 42, Name: "FN Site 221", Code: "221", Mining: 'C', Revenue: 'E', Combat: 'B', SightseeingSpots: []uint16{118, 112}},
	{ID: 43, Name: "FN Site 222", Code: "222", Mining: 'C', Revenue: 'D', Combat: 'B', SightseeingSpots: []uint16{153}},
	{ID: 44, Name: "FN Site 223", Code: "223", Mining: 'C', Revenue: 'F', Combat: 'B', SightseeingSpots: []uint16{168}},
	{ID: 45, Name: "FN Site 224", Code: "224", Mining: 'C', Revenue: 'A', Combat: 'B'},
	{ID: 46, Name: "FN Site 225", Code: "225", Mining: 'C', Revenue: 'A', Combat: 'B', SightseeingSpots: []uint16{131}},
	{ID: 47, Name: "skip", Code: "skip", Mining: 'C', Revenue: 'C', Combat: 'C'},
	{ID: 48, Name: "skip", Code: "skip", Mining: 'C', Revenue: 'C', Combat: 'C'},
	{ID: 49, Name: "FN Site 301", Code: "301", Mining: 'B', Revenue: 'D', Combat: 'B', Ores: []string{"Infernium", "Arc Sand Ore", "Lionbone Bort"}},
	{ID: 50, Name: "FN Site 302", Code: "302", Mining: 'C', Revenue: 'E', Combat: 'B'},
	{ID: 51, Name: "FN Site 303", Code: "303", Mining: 'C', Revenue: 'E', Combat: 'B', Ores: []string{"Aurorite", "White Cometite"}},
	{ID: 52, Name: "FN Site 304", Code: "304", Mining: 'B', Revenue: 'A', Combat: 'S'},
	{ID: 53, Name: "FN Site 305", Code: "305", Mining: 'C', Revenue: 'E', Combat: 'B', Ores: []string{"Aurorite", "Arc Sand Ore", "Enduron Lead"}},
	{ID: 54, Name: "FN Site 306", Code: "306", Mining: 'C', Revenue: 'D', Combat: 'B', SightseeingSpots: []uint16{211}},
	{ID: 55, Name: "FN Site 307", Code: "307", Mining: 'C', Revenue: 'B', Combat: 'B', Ores: []string{"Infernium", "Arc Sand Ore", "Enduron Lead", "White Cometite"}},
	{ID: 56, Name: "FN Site 308", Code: "308", Mining: 'B', Revenue: 'C', Combat: 'A', Ores: []string{"Ouroboros Crystal"}},
	{ID: 57, Name: "FN Site 309", Code: "309", Mining: 'C', Revenue: 'C', Combat: 'B', Ores: []string{"Enduron Lead", "Ouroboros Crystal"}},
	{ID: 58, Name: "FN Site 310", Code: "310", Mining: 'C', Revenue: 'A', Combat: 'B'},
	{ID: 59, Name: "FN Site 311", Code: "311", Mining: 'C', Revenue: 'B', Combat: 'B'},
	{ID: 60, Name: "FN Site 312", Code: "312", Mining: 'C', Revenue: 'D', Combat: 'B', Ores: []string{"Infernium", "Boiled-Egg Ore", "Lionbone Bort"}},
	{ID: 61, Name: "FN Site 313", Code: "313", Mining: 'C', Revenue: 'E', Combat: 'A', SightseeingSpots: []uint16{235, 206}},
	{ID: 62, Name: "FN Site 314", Code: "314", Mining: 'C', Revenue: 'B', Combat: 'S'},
	{ID: 63, Name: "FN Site 315", Code: "315", Mining: 'A', Revenue: 'S', Combat: 'B', SightseeingSpots: []uint16{229, 241}},
	{ID: 64, Name: "FN Site 316", Code: "316", Mining: 'C', Revenue: 'D', Combat: 'B'},
	{ID: 65, Name: "FN Site 317", Code: "317", Mining: 'C', Revenue: 'A', Combat: 'B', SightseeingSpots: []uint16{205}},
	{ID: 66, Name: "FN Site 318", Code: "318", Mining: 'C', Revenue: 'B', Combat: 'B', SightseeingSpots: []uint16{201, 210}, Ores: []string{"Boiled-Egg Ore", "White Cometite", "Lionbone Bort"}},
	{ID: 67, Name: "FN Site 320", Code: "320", Mining: 'C', Revenue: 'B', Combat: 'B', Ores: []string{"Aurorite", "Ouroboros Crystal"}},
	{ID: 68, Name: "FN Site 321", Code: "321", Mining: 'A', Revenue: 'D', Combat: 'A'},
	{ID: 69, Name: "FN Site 319", Code: "319", Mining: 'C', Revenue: 'D', Combat: 'B', SightseeingSpots: []uint16{233}, Ores: []string{"Infernium", "Boiled-Egg Ore"}},
	{ID: 70, Name: "FN Site 322", Code: "322", Mining: 'A', Revenue: 'A', Combat: 'B'},
	{ID: 71, Name: "skip", Code: "skip", Mining: 'C', Revenue: 'C', Combat: 'C'},
	{ID: 72, Name: "skip", Code: "skip", Mining: 'C', Revenue: 'C', Combat: 'C'},
	{ID: 73, Name: "skip", Code: "skip", Mining: 'C', Revenue: 'C', Combat: 'C'},
	{ID: 74, Name: "FN Site 401", Code: "401", Mining: 'C', Revenue: 'B', Combat: 'B', Ores: []string{"Parhelion Platinum", "Marine Rutile"}},
	{ID: 75, Name: "FN Site 402", Code: "402", Mining: 'A', Revenue: 'B', Combat: 'B'},
	{ID: 76, Name: "FN Site 403", Code: "403", Mining: 'A', Revenue: 'C', Combat: 'S'},
	{ID: 77, Name: "FN Site 404", Code: "404", Mining: 'B', Revenue: 'S', Combat: 'S', SightseeingSpots: []uint16{309}},
	{ID: 78, Name: "FN Site 405", Code: "405", Mining: 'A', Revenue: 'E', Combat: 'A', Ores: []string{"Arc Sand Ore"}},
	{ID: 79, Name: "FN Site 406", Code: "406", Mining: 'C', Revenue: 'B', Combat: 'B'},
	{ID: 80, Name: "FN Site 407", Code: "407", Mining: 'A', Revenue: 'B', Combat: 'B'},
	{ID: 81, Name: "FN Site 408", Code: "408", Mining: 'B', Revenue: 'D', Combat: 'B', SightseeingSpots: []uint16{312}, Ores: []string{"Aurorite", "Arc Sand Ore", "Everfreeze Ore"}},
	{ID: 82, Name: "FN Site 409", Code: "409", Mining: 'B', Revenue: 'S', Combat: 'B'},
	{ID: 83, Name: "FN Site 410", Code: "410", Mining: 'C', Revenue: 'S', Combat: 'B', SightseeingSpots: []uint16{308}},
	{ID: 84, Name: "FN Site 411", Code: "411", Mining: 'A', Revenue: 'A', Combat: 'S'},
	{ID: 85, Name: "FN Site 412", Code: "412", Mining: 'A', Revenue: 'B', Combat: 'A'},
	{ID: 86, Name: "FN Site 413", Code: "413", Mining: 'C', Revenue: 'A', Combat: 'B', SightseeingSpots: []uint16{276}},
	{ID: 87, Name: "FN Site 414", Code: "414", Mining: 'C', Revenue: 'B', Combat: 'B', SightseeingSpots: []uint16{303, 313}, Ores: []string{"Parhelion Platinum", "Marine Rutile"}},
	{ID: 88, Name: "FN Site 415", Code: "415", Mining: 'C', Revenue: 'S', Combat: 'B'},
	{ID: 89, Name: "FN Site 416", Code: "416", Mining: 'C', Revenue: 'B', Combat: 'B'},
	{ID: 90, Name: "FN Site 417", Code: "417", Mining: 'B', Revenue: 'D', Combat: 'B', Ores: []string{"Everfreeze Ore", "Boiled-Egg Ore"}},
	{ID: 91, Name: "FN Site 418", Code: "418", Mining: 'C', Revenue: 'C', Combat: 'B', Ores: []string{"Parhelion Platinum", "Arc Sand Ore", "Everfreeze Ore", "Boiled-Egg Ore", "Marine Rutile"}},
	{ID: 92, Name: "FN Site 419", Code: "419", Mining: 'C', Revenue: 'S', Combat: 'S', SightseeingSpots: []uint16{305}},
	{ID: 93, Name: "FN Site 420", Code: "420", Mining: 'B', Revenue: 'C', Combat: 'B', Ores: []string{"Everfreeze Ore"}},
	{ID: 94, Name: "FN Site 501", Code: "501", Mining: 'B', Revenue: 'F', Combat: 'B', Ores: []string{"Arc Sand Ore"}},
	{ID: 95, Name: "FN Site 502", Code: "502", Mining: 'A', Revenue: 'C', Combat: 'B', SightseeingSpots: []uint16{336}, Ores: []string{"Bonjelium"}},
	{ID: 96, Name: "FN Site 503", Code: "503", Mining: 'C', Revenue: 'D', Combat: 'B', SightseeingSpots: []uint16{339}, Ores: []string{"Enduron Lead"}},
	{ID: 97, Name: "FN Site 504", Code: "504", Mining: 'C', Revenue: 'C', Combat: 'B', Ores: []string{"Arc Sand Ore", "Enduron Lead", "Marine Rutile", "Bonjelium"}},
	{ID: 98, Name: "FN Site 505", Code: "505", Mining: 'C', Revenue: 'B', Combat: 'B', SightseeingSpots: []uint16{341, 364}},
	{ID: 99, Name: "FN Site 506", Code: "506", Mining: 'C', Revenue: 'B', Combat: 'B', SightseeingSpots: []uint16{345}, Ores: []string{"Bonjelium", "Arc Sand Ore"}},
	{ID: 100, Name: "FN Site 507", Code: "507", Mining: 'C', Revenue: 'A', Combat: 'B', SightseeingSpots: []uint16{346}, Ores: []string{"Bonjelium"}},
	{ID: 101, Name: "FN Site 508", Code: "508", Mining: 'A', Revenue: 'B', Combat: 'S', SightseeingSpots: []uint16{347}, Ores: []string{"Enduron Lead", "Marine Rutile"}},
	{ID: 102, Name: "FN Site 509", Code: "509", Mining: 'A', Revenue: 'A', Combat: 'A'},
	{ID: 103, Name: "FN Site 510", Code: "510", Mining: 'C', Revenue: 'B', Combat: 'B', Ores: []string{"Bonjelium"}},
	{ID: 104, Name: "FN Site 511", Code: "511", Mining: 'A', Revenue: 'C', Combat: 'A', Ores: []string{"Bonjelium"}},
	{ID: 105, Name: "FN Site 512", Code: "512", Mining: 'C', Revenue: 'A', Combat: 'S'},
	{ID: 106, Name: "FN Site 513", Code: "513", Mining: 'C', Revenue: 'A', Combat: 'B', SightseeingSpots: []uint16{358, 360}},
	{ID: 107, Name: "FN Site 514", Code: "514", Mining: 'C', Revenue: 'A', Combat: 'B', SightseeingSpots: []uint16{356}},
	{ID: 108, Name: "FN Site 515", Code: "515", Mining: 'C', Revenue: 'B', Combat: 'S'},
	{ID: 109, Name: "FN Site 516", Code: "516", Mining: 'B', Revenue: 'E', Combat: 'B'},
}

// sightseeing spot flags, offsets relative to LocationsOffset
var sightseeingSpots = []LocationFlag{
	{LocationID: 57, Offset: 0x04, Bit: 0x10},
	{LocationID: 48, Offset: 0x05, Bit: 0x08},
	{LocationID: 41, Offset: 0x06, Bit: 0x10},
	{LocationID: 34, Offset: 0x07, Bit: 0x20},
	{LocationID: 81, Offset: 0x09, Bit: 0x10},
	{LocationID: 74, Offset: 0x0a, Bit: 0x20},
	{LocationID: 118, Offset: 0x0c, Bit: 0x02},
	{LocationID: 112, Offset: 0x0d, Bit: 0x08},
	{LocationID: 153, Offset: 0x10, Bit: 0x10},
	{LocationID: 147, Offset: 0x11, Bit: 0x40},
	{LocationID: 133, Offset: 0x12, Bit: 0x01},
	{LocationID: 126, Offset: 0x13, Bit: 0x02},
	{LocationID: 131, Offset: 0x13, Bit: 0x40},
	{LocationID: 162, Offset: 0x17, Bit: 0x20},
	{LocationID: 210, Offset: 0x19, Bit: 0x04},
	{LocationID: 211, Offset: 0x19, Bit: 0x08},
	{LocationID: 201, Offset: 0x1a, Bit: 0x02},
	{LocationID: 205, Offset: 0x1a, Bit: 0x20},
	{LocationID: 206, Offset: 0x1a, Bit: 0x40},
	{LocationID: 241, Offset: 0x1d, Bit: 0x02},
	{LocationID: 233, Offset: 0x1e, Bit: 0x02},
	{LocationID: 235, Offset: 0x1e, Bit: 0x08},
	{LocationID: 229, Offset: 0x1f, Bit: 0x20},
	{LocationID: 276, Offset: 0x21, Bit: 0x10},
	{LocationID: 312, Offset: 0x24, Bit: 0x01},
	{LocationID: 313, Offset: 0x24, Bit: 0x02},
	{LocationID: 308, Offset: 0x25, Bit: 0x10},
	{LocationID: 309, Offset: 0x25, Bit: 0x20},
	{LocationID: 303, Offset: 0x26, Bit: 0x80},
	{LocationID: 305, Offset: 0x25, Bit: 0x02},
	{LocationID: 345, Offset: 0x28, Bit: 0x02},
	{LocationID: 350, Offset: 0x28, Bit: 0x40},
	{LocationID: 336, Offset: 0x29, Bit: 0x01},
	{LocationID: 339, Offset: 0x29, Bit: 0x08},
	{LocationID: 341, Offset: 0x29, Bit: 0x20},
	{LocationID: 360, Offset: 0x2e, Bit: 0x01},
	{LocationID: 364, Offset: 0x2e, Bit: 0x10},
	{LocationID: 356, Offset: 0x2f, Bit: 0x10},
	{LocationID: 358, Offset: 0x2f, Bit: 0x40},
	{LocationID: 167, Offset: 0x3b, Bit: 0x01},
	{LocationID: 168, Offset: 0x3b, Bit: 0x02},
	{LocationID: 347, Offset: 0x28, Bit: 0x08},
}

// named landmarks, offsets relative to LocationsOffset
var landmarks = []Location{
	{LocationFlag: LocationFlag{LocationID: 53, Offset: 0x04, Bit: 0x01}, Name: "Biahno Grassland", Type: 4, Worth: 3384},
	{LocationFlag: LocationFlag{LocationID: 45, Offset: 0x05, Bit: 0x01}, Name: "Green Threshold", Type: 4, Worth: 3376},
	{LocationFlag: LocationFlag{LocationID: 46, Offset: 0x05, Bit: 0x02}, Name: "Headwater Cavern", Type: 4, Worth: 3377},
	{LocationFlag: LocationFlag{LocationID: 50, Offset: 0x05, Bit: 0x20}, Name: "Biahno Lake", Type: 4, Worth: 3381},
	{LocationFlag: LocationFlag{LocationID: 52, Offset: 0x05, Bit: 0x80}, Name: "Grieving Plains", Type: 1, Worth: 3383},
	{LocationFlag: LocationFlag{LocationID: 37, Offset: 0x06, Bit: 0x01}, Name: "Stickstone Rise", Type: 4, Worth: 3368},
	{LocationFlag: LocationFlag{LocationID: 40, Offset: 0x06, Bit: 0x08}, Name: "Unicorn Rock", Type: 4, Worth: 3371},
	{LocationFlag: LocationFlag{LocationID: 35, Offset: 0x07, Bit: 0x40}, Name: "Greater Gemini Bridge", Type: 1, Worth: 3366},
	{LocationFlag: LocationFlag{LocationID: 86, Offset: 0x08, Bit: 0x02}, Name: "FN Site 102", Type: 5, Worth: 3417},
	{LocationFlag: LocationFlag{LocationID: 87, Offset: 0x08, Bit: 0x04}, Name: "FN Site 103", Type: 5, Worth: 3418},
	{LocationFlag: LocationFlag{LocationID: 78, Offset: 0x09, Bit: 0x02}, Name: "Shadow Rise", Type: 1, Worth: 3409},
	{LocationFlag: LocationFlag{LocationID: 80, Offset: 0x09, Bit: 0x08}, Name: "Starfall Basin", Type: 1, Worth: 3411},
	{LocationFlag: LocationFlag{LocationID: 154, Offset: 0x10, Bit: 0x20}, Name: "Nopon Braidbridge", Type: 1, Worth: 0},
	{LocationFlag: LocationFlag{LocationID: 155, Offset: 0x10, Bit: 0x40}, Name: "Skybound Coil Tree", Type: 1, Worth: 0},
	{LocationFlag: LocationFlag{LocationID: 129, Offset: 0x13, Bit: 0x10}, Name: "Nopon Highroad", Type: 4, Worth: 0},
	{LocationFlag: LocationFlag{LocationID: 131, Offset: 0x13, Bit: 0x40}, Name: "Decapotamon Vista", Type: 3, Worth: 2000},
	{LocationFlag: LocationFlag{LocationID: 132, Offset: 0x13, Bit: 0x80}, Name: "Decapotamon", Type: 4, Worth: 0},
	{LocationFlag: LocationFlag{LocationID: 163, Offset: 0x17, Bit: 0x40}, Name: "Canopied Nightwood", Type: 4, Worth: 0},
	{LocationFlag: LocationFlag{LocationID: 404, Offset: 0x31, Bit: 0x10}, Name: "Canopied Nightwood BC", Type: 4, Worth: 0},
	{LocationFlag: LocationFlag{LocationID: 405, Offset: 0x31, Bit: 0x20}, Name: "Decapotamon BC", Type: 4, Worth: 0},
	{LocationFlag: LocationFlag{LocationID: 392, Offset: 0x32, Bit: 0x01}, Name: "Shadow Beach BC", Type: 4, Worth: 3720},
	{LocationFlag: LocationFlag{LocationID: 395, Offset: 0x32, Bit: 0x08}, Name: "Biahno Grassland BC", Type: 4, Worth: 3723},
	{LocationFlag: LocationFlag{LocationID: 391, Offset: 0x33, Bit: 0x80}, Name: "Shadow Rise BC", Type: 4, Worth: 3719},
}
