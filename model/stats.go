package model

import "strconv"

// ESPN basketball stat ids.
var statNames = map[int]string{
	0:  "PTS",
	1:  "BLK",
	2:  "STL",
	3:  "AST",
	4:  "OREB",
	5:  "DREB",
	6:  "REB",
	7:  "EJ",
	8:  "FF",
	9:  "PF",
	10: "TF",
	11: "TO",
	12: "DQ",
	13: "FGM",
	14: "FGA",
	15: "FTM",
	16: "FTA",
	17: "3PM",
	18: "3PA",
	19: "FG%",
	20: "FT%",
	21: "3PT%",
	37: "DD",
	38: "TD",
	39: "QD",
	40: "MIN",
	41: "GS",
	42: "GP",
	43: "TW",
	44: "FTR",
}

// StatName converts an ESPN stat id, given as the string key used in stat
// payloads, to its abbreviation. Unknown ids are returned unchanged.
func StatName(id string) string {
	n, err := strconv.Atoi(id)
	if err != nil {
		return id
	}
	if name, found := statNames[n]; found {
		return name
	}
	return id
}
