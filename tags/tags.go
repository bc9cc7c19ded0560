package tags

import "github.com/yohamta/donburi"

var (
	Part = donburi.NewTag().SetName("Part")
)

// Resolv tags for part picking
const (
	ResolvPart = "part"
)
