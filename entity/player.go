package entity

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/jakecoffman/cp"

	"github.com/milk9111/adventure/assets"
	"github.com/milk9111/adventure/component"
	"github.com/milk9111/adventure/physics"
	"github.com/milk9111/adventure/prefabs"
)

// Player bundles everything the game keeps about the player character.
type Player struct {
	State    *component.Player
	Sprite   *component.Sprite
	Body     *physics.Body
	Textures *component.PlayerTextures
	Audio    *component.Audio
}

// LoadPlayerTextures resolves the texture paths of spec.
func LoadPlayerTextures(spec *prefabs.PlayerSpec) (*component.PlayerTextures, error) {
	if spec == nil {
		return nil, fmt.Errorf("player: nil spec")
	}
	if len(spec.Textures.Walk) != component.WalkFrames {
		return nil, fmt.Errorf("player: need %d walk textures, got %d", component.WalkFrames, len(spec.Textures.Walk))
	}
	var (
		pt  component.PlayerTextures
		err error
	)
	if pt.Idle, err = assets.LoadImage(spec.Textures.Idle); err != nil {
		return nil, fmt.Errorf("player: idle texture: %w", err)
	}
	if pt.Jump, err = assets.LoadImage(spec.Textures.Jump); err != nil {
		return nil, fmt.Errorf("player: jump texture: %w", err)
	}
	if pt.Fall, err = assets.LoadImage(spec.Textures.Fall); err != nil {
		return nil, fmt.Errorf("player: fall texture: %w", err)
	}
	for i, path := range spec.Textures.Walk {
		if pt.Walk[i], err = assets.LoadImage(path); err != nil {
			return nil, fmt.Errorf("player: walk texture %d: %w", i, err)
		}
	}
	return &pt, nil
}

// LoadPlayerAudio creates one player per audio clip of spec.
func LoadPlayerAudio(spec *prefabs.PlayerSpec) (*component.Audio, error) {
	if spec == nil {
		return nil, fmt.Errorf("player: nil spec")
	}
	a := &component.Audio{}
	for _, clip := range spec.Audio {
		p, err := assets.LoadAudioPlayer(clip.File)
		if err != nil {
			return nil, fmt.Errorf("player: audio %q: %w", clip.Name, err)
		}
		appendClip(a, clip, p)
	}
	return a, nil
}

func appendClip(a *component.Audio, clip prefabs.AudioSpec, p *audio.Player) {
	vol := clip.Volume
	if vol == 0 {
		vol = 1
	}
	a.Names = append(a.Names, clip.Name)
	a.Players = append(a.Players, p)
	a.Volume = append(a.Volume, vol)
	a.Play = append(a.Play, false)
}

// SpawnPosition returns the world centre of the spawn cell of spec.
func SpawnPosition(spec *prefabs.PlayerSpec) cp.Vector {
	scale := spec.Scale
	if scale <= 0 {
		scale = 1
	}
	size := spec.Spawn.Size * scale
	return cp.Vector{
		X: size*float64(spec.Spawn.Col) + size/2,
		Y: size*float64(spec.Spawn.Row) + size/2,
	}
}

// NewPlayer registers the player body at its spawn position and wires the
// sprite to follow it. textures and clips may be nil.
func NewPlayer(w *physics.World, spec *prefabs.PlayerSpec, t component.Tuning, textures *component.PlayerTextures, clips *component.Audio) (*Player, error) {
	if w == nil {
		return nil, fmt.Errorf("player: nil world")
	}
	if spec == nil {
		return nil, fmt.Errorf("player: nil spec")
	}
	scale := spec.Scale
	if scale <= 0 {
		scale = 1
	}
	if clips == nil {
		clips = &component.Audio{}
	}

	pos := SpawnPosition(spec)
	body := w.AddBody(pos, physics.BodyParams{
		Width:                 spec.Collider.Width * scale,
		Height:                spec.Collider.Height * scale,
		Friction:              t.PlayerFriction,
		Mass:                  t.PlayerMass,
		Moment:                physics.MomentInfinite,
		MaxHorizontalVelocity: t.MaxHorizontalSpeed,
		MaxVerticalVelocity:   t.MaxVerticalSpeed,
		Category:              physics.CategoryPlayer,
	})

	p := &Player{
		State:    &component.Player{},
		Sprite:   &component.Sprite{X: pos.X, Y: pos.Y, Scale: scale},
		Body:     body,
		Textures: textures,
		Audio:    clips,
	}
	p.SyncTexture()
	Follow(body, p.Sprite)
	return p, nil
}

// SyncTexture points the sprite at the image of the current texture state.
func (p *Player) SyncTexture() {
	if p == nil || p.Sprite == nil || p.State == nil {
		return
	}
	if img, _ := p.Textures.Image(p.State.Texture); img != nil {
		p.Sprite.Image = img
	}
	p.Sprite.FacingLeft = p.State.Texture.Facing == component.FacingLeft
}
