package assets

import (
	"bytes"
	"embed"
	"fmt"
	"image"
	_ "image/png"
	"path/filepath"
	"strings"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
)

//go:embed player/*.png tiles/*.png *.wav
var assetsFS embed.FS

const sampleRate = 44100

var (
	audioOnce    sync.Once
	audioContext *audio.Context

	imagesMu sync.Mutex
	images   = map[string]*ebiten.Image{}
)

// LoadImage loads an embedded image by assets-relative path. Images are
// cached, so every caller asking for the same path shares one *ebiten.Image.
func LoadImage(path string) (*ebiten.Image, error) {
	clean := cleanAssetPath(path)
	if clean == "" {
		return nil, fmt.Errorf("assets: empty image path")
	}

	imagesMu.Lock()
	defer imagesMu.Unlock()
	if img, ok := images[clean]; ok {
		return img, nil
	}

	b, err := assetsFS.ReadFile(clean)
	if err != nil {
		return nil, fmt.Errorf("assets: read %q: %w", clean, err)
	}
	decoded, _, err := image.Decode(bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("assets: decode %q: %w", clean, err)
	}
	img := ebiten.NewImageFromImage(decoded)
	images[clean] = img
	return img, nil
}

// LoadFile loads an embedded asset by assets-relative path.
func LoadFile(path string) ([]byte, error) {
	return assetsFS.ReadFile(cleanAssetPath(path))
}

// LoadAudioPlayer loads an embedded audio asset and creates an audio player.
func LoadAudioPlayer(path string) (*audio.Player, error) {
	b, err := LoadFile(path)
	if err != nil {
		return nil, fmt.Errorf("assets: read %q: %w", path, err)
	}

	ctx := audioCtx()
	clean := strings.ToLower(cleanAssetPath(path))
	reader := bytes.NewReader(b)

	if strings.HasSuffix(clean, ".wav") {
		stream, err := wav.DecodeWithSampleRate(ctx.SampleRate(), reader)
		if err != nil {
			return nil, fmt.Errorf("assets: decode wav %q: %w", path, err)
		}
		return ctx.NewPlayer(stream)
	}

	// Fallback for already-decoded PCM assets in Ebiten's native format.
	return ctx.NewPlayerFromBytes(b), nil
}

func audioCtx() *audio.Context {
	audioOnce.Do(func() {
		audioContext = audio.NewContext(sampleRate)
	})
	return audioContext
}

func cleanAssetPath(path string) string {
	if path == "" {
		return ""
	}
	s := filepath.ToSlash(path)
	if filepath.IsAbs(path) {
		if idx := strings.LastIndex(s, "/assets/"); idx >= 0 {
			return s[idx+len("/assets/"):]
		}
		return filepath.Base(path)
	}
	return strings.TrimPrefix(s, "assets/")
}
