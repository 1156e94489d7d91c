package component

// Input stores per-frame input state for an entity.
type Input struct {
	MoveX       float64
	Left        bool
	Right       bool
	Jump        bool
	JumpPressed bool
	Run         bool
	Shoot       bool
	Flip        bool
}

var InputComponent = NewComponent[Input]()
