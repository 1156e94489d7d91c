package component

import "github.com/milk9111/platformer/common"

type PickupKind string

const (
	PickupCoin     PickupKind = "coin"
	PickupJumpCoin PickupKind = "jump_coin"
)

// Pickup is a collectible tested by overlap only; it never pushes the player.
type Pickup struct {
	Kind        PickupKind
	Rect        common.Rect
	Score       int
	DoubleJumps int
	Collected   bool
}

var PickupComponent = NewComponent[Pickup]()
