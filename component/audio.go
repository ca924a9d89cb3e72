package component

// Clip is the part of an *audio.Player the game drives.
type Clip interface {
	SetVolume(volume float64)
	Rewind() error
	Play()
}

type Audio struct {
	Names   []string
	Players []Clip
	Volume  []float64
	Play    []bool
}

// Request marks the named clip for playback on the next audio update. It
// reports whether the clip exists.
func (a *Audio) Request(name string) bool {
	if a == nil {
		return false
	}
	for i, n := range a.Names {
		if n != name || i >= len(a.Play) {
			continue
		}
		a.Play[i] = true
		return true
	}
	return false
}
