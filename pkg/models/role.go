package models

// Role is the derived position of a player.
type Role string

const (
	RoleTop     Role = "TOP"
	RoleJungle  Role = "JUNGLE"
	RoleMid     Role = "MID"
	RoleADC     Role = "ADC"
	RoleSupport Role = "SUPPORT"
	RoleUnknown Role = "UNKNOWN"
)

// Raw lane and role values sent by the match list.
const (
	LaneBottom   = "BOTTOM"
	RoleDuoCarry = "DUO_CARRY"
)
