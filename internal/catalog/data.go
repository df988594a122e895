package catalog

// cars is the full catalog. Prices are ex-showroom rupees.
var cars = map[string]map[string]Variants{
	"Tata": {
		"Tiago": {
			"XE":  {"Manual": 549900},
			"XT":  {"Manual": 629900, "AMT": 684900},
			"XZ+": {"Manual": 729900, "AMT": 784900},
		},
		"Tigor": {
			"XM": {"Manual": 649900},
			"XZ": {"Manual": 749900, "AMT": 804900},
		},
		"Altroz": {
			"XE": {"Manual": 664900},
			"XZ": {"Manual": 829900, "DCA": 899900},
		},
		"Punch": {
			"Pure":       {"Manual": 612900},
			"Adventure":  {"Manual": 709900, "AMT": 769900},
			"Accomplish": {"Manual": 809900, "AMT": 869900},
		},
		"Nexon": {
			"Smart":    {"Manual": 799900},
			"Creative": {"Manual": 1099900, "DCA": 1169900},
			"Fearless": {"Manual": 1279900, "DCA": 1349900},
		},
		"Curvv": {
			"Smart":    {"Manual": 999900},
			"Creative": {"Manual": 1299900, "DCA": 1369900},
		},
		"Harrier": {
			"Smart":    {"Manual": 1499900},
			"Fearless": {"Manual": 1999900, "Automatic": 2129900},
		},
		"Safari": {
			"Smart":      {"Manual": 1519900},
			"Accomplished": {"Manual": 2169900, "Automatic": 2299900},
		},
	},
	"Mahindra": {
		"XUV300": {
			"W4": {"Manual": 799900},
			"W8": {"Manual": 999900, "AMT": 1054900},
		},
		"Scorpio-N": {
			"Z2": {"Manual": 1362900},
			"Z8": {"Manual": 1899900, "Automatic": 2029900},
		},
		"XUV700": {
			"MX": {"Manual": 1399900},
			"AX7": {"Manual": 1999900, "Automatic": 2149900},
		},
		"Thar": {
			"AX": {"Manual": 1135900},
			"LX": {"Manual": 1399900, "Automatic": 1549900},
		},
	},
	"Kia": {
		"Sonet": {
			"HTE": {"Manual": 799900},
			"HTX": {"Manual": 999900, "iMT": 1049900, "Automatic": 1119900},
		},
		"Seltos": {
			"HTE": {"Manual": 1089900},
			"HTX": {"Manual": 1399900, "Automatic": 1549900},
		},
		"Carens": {
			"Premium": {"Manual": 1049900},
			"Luxury":  {"Manual": 1399900, "Automatic": 1529900},
		},
	},
	"Hyundai": {
		"i20": {
			"Magna":  {"Manual": 699900},
			"Sportz": {"Manual": 799900, "IVT": 874900},
		},
		"Venue": {
			"E":   {"Manual": 794900},
			"SX":  {"Manual": 1079900, "DCT": 1189900},
		},
		"Creta": {
			"E":  {"Manual": 1099900},
			"SX": {"Manual": 1499900, "IVT": 1629900},
		},
		"Verna": {
			"EX": {"Manual": 1099900},
			"SX": {"Manual": 1349900, "IVT": 1474900},
		},
	},
	"Honda": {
		"Amaze": {
			"V":  {"Manual": 799900},
			"VX": {"Manual": 899900, "CVT": 979900},
		},
		"City": {
			"SV": {"Manual": 1189900},
			"ZX": {"Manual": 1499900, "CVT": 1609900},
		},
		"Elevate": {
			"SV": {"Manual": 1159900},
			"ZX": {"Manual": 1499900, "CVT": 1599900},
		},
	},
	"Maruti": {
		"Swift": {
			"LXi": {"Manual": 649000},
			"ZXi": {"Manual": 819000, "AMT": 869000},
		},
		"Baleno": {
			"Sigma": {"Manual": 666000},
			"Alpha": {"Manual": 883000, "AMT": 933000},
		},
		"Brezza": {
			"LXi": {"Manual": 834000},
			"ZXi": {"Manual": 1049000, "Automatic": 1169000},
		},
		"Grand Vitara": {
			"Sigma": {"Manual": 1099000},
			"Zeta":  {"Manual": 1389000, "Automatic": 1539000},
		},
	},
	"Volkswagen": {
		"Virtus": {
			"Comfortline": {"Manual": 1156900},
			"Topline":     {"Manual": 1399900, "Automatic": 1489900},
		},
		"Taigun": {
			"Comfortline": {"Manual": 1169900},
			"Topline":     {"Manual": 1449900, "Automatic": 1549900},
		},
	},
	"Toyota": {
		"Glanza": {
			"E": {"Manual": 689900},
			"V": {"Manual": 879900, "AMT": 929900},
		},
		"Urban Cruiser Hyryder": {
			"E": {"Manual": 1134900},
			"V": {"Manual": 1499900, "Hybrid": 1749900},
		},
		"Innova Crysta": {
			"GX": {"Manual": 1999900},
			"ZX": {"Manual": 2599900},
		},
	},
}
