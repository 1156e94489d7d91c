package component

import "github.com/milk9111/platformer/common"

// Enemy patrols horizontally in world space. A positive Speed moves it left.
type Enemy struct {
	Rect   common.Rect
	Speed  float64
	Alive  bool
	Points int
	// Script names the tengo script consulted on wall contact. Empty means the
	// speed is simply reversed.
	Script string
}

var EnemyComponent = NewComponent[Enemy]()
