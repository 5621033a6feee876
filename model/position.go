package model

import (
	"strings"
)

type Position string

const (
	POS_UNKNOWN Position = "UNK"
	POS_PG      Position = "PG"
	POS_SG      Position = "SG"
	POS_SF      Position = "SF"
	POS_PF      Position = "PF"
	POS_C       Position = "C"
	POS_G       Position = "G"
	POS_F       Position = "F"
	POS_SG_SF   Position = "SG/SF"
	POS_G_F     Position = "G/F"
	POS_PF_C    Position = "PF/C"
	POS_F_C     Position = "F/C"
	POS_UT      Position = "UT"
	POS_BE      Position = "BE"
	POS_IR      Position = "IR"
)

// ESPN lineup slot ids, also used for eligibleSlots.
var slotPositions = []Position{
	POS_PG, POS_SG, POS_SF, POS_PF, POS_C,
	POS_G, POS_F, POS_SG_SF, POS_G_F, POS_PF_C, POS_F_C,
	POS_UT, POS_BE, POS_IR,
}

// SlotPosition converts an ESPN lineup slot id to a Position.
func SlotPosition(slotID int) Position {
	if slotID < 0 || slotID >= len(slotPositions) {
		return POS_UNKNOWN
	}
	return slotPositions[slotID]
}

// DefaultPosition converts a player's defaultPositionId. Those ids are one
// based, so 1 is PG and 5 is C.
func DefaultPosition(defaultPositionID int) Position {
	return SlotPosition(defaultPositionID - 1)
}

func ParsePosition(pos string) Position {
	pos = strings.ToUpper(strings.TrimSpace(pos))
	switch pos {
	case "POINT GUARD":
		return POS_PG
	case "SHOOTING GUARD":
		return POS_SG
	case "SMALL FORWARD":
		return POS_SF
	case "POWER FORWARD":
		return POS_PF
	case "CENTER":
		return POS_C
	}

	for _, p := range slotPositions {
		if string(p) == pos {
			return p
		}
	}
	return POS_UNKNOWN
}
