package component

// Facing is the horizontal direction the player sprite looks towards.
type Facing int

const (
	FacingRight Facing = iota
	FacingLeft
)

func (f Facing) String() string {
	if f == FacingLeft {
		return "left"
	}
	return "right"
}

// TextureKind selects which texture set the player sprite shows.
type TextureKind int

const (
	TextureIdle TextureKind = iota
	TextureJump
	TextureFall
	TextureWalk
)

func (k TextureKind) String() string {
	switch k {
	case TextureJump:
		return "jump"
	case TextureFall:
		return "fall"
	case TextureWalk:
		return "walk"
	default:
		return "idle"
	}
}

// Texture is the texture the player sprite currently shows. Frame is only
// meaningful for TextureWalk. Facing is captured when the texture is selected
// and does not follow later facing changes on its own.
type Texture struct {
	Kind   TextureKind
	Frame  int
	Facing Facing
}

// WalkFrames is the length of the walk cycle.
const WalkFrames = 8

// Player is the animation state of the player entity.
type Player struct {
	Facing       Facing
	Texture      Texture
	WalkFrame    int
	WalkOdometer float64
}
