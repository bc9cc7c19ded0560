package scenes

import "github.com/hajimehoshi/ebiten/v2"

// Scene is a single screen of the game loop.
type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

// SceneChanger swaps the active scene.
type SceneChanger interface {
	ChangeScene(scene interface{})
}
