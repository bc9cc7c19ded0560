package components

import (
	"github.com/automoto/doomerang-hangar/deploy"
	"github.com/yohamta/donburi"
)

// PartData ties a placed part to its transition controller.
type PartData struct {
	ID         string
	Definition string
	Title      string
	Controller *deploy.Controller
	Control    *deploy.ToggleControl

	// Reachable is recomputed each tick from focus, distance and context.
	Reachable bool
}

var Part = donburi.NewComponentType[PartData]()
