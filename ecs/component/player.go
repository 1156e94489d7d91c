package component

import "github.com/milk9111/platformer/physics"

type Player struct {
	Tuning physics.Tuning

	// StompVelocity is the minimum speed along gravity that turns an enemy
	// contact into a stomp instead of a death.
	StompVelocity float64
	// StompBounce scales the rebound after a stomp.
	StompBounce float64

	DeathDropSpeed float64
	DeathGravity   float64

	Alive       bool
	Score       int
	Coins       int
	DoubleJumps int
	FacingLeft  bool
	// AirFrames counts consecutive frames that started without ground
	// contact.
	AirFrames int
	// HatCoins is the coin count at which the hat is drawn; zero disables it.
	HatCoins int
}

var PlayerComponent = NewComponent[Player]()
