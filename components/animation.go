package components

import (
	"github.com/automoto/doomerang-hangar/assets/animations"
	"github.com/yohamta/donburi"
)

// AnimatorData holds the clip set of a part's model.
type AnimatorData struct {
	*animations.Animator
}

var Animator = donburi.NewComponentType[AnimatorData]()
