package core

// Color is a palette role for a screen cell. The game picks roles and the
// platform maps each one to a terminal style.
type Color uint8

const (
	ColorDefault Color = iota

	// Text
	ColorText
	ColorHighlight
	ColorTitle
	ColorFaint
	ColorProgress

	// Player
	ColorPlayer
	ColorPlayerAir
	ColorPlayerFall
	ColorPlayerHit

	// Hazards
	ColorBeam
	ColorLaser
	ColorFlashLaser
	ColorRain
	ColorHeavy
	ColorSweeper
	ColorTelegraph

	// Floor
	ColorGround
)
