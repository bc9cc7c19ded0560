package animations

import "sort"

// Animator owns the clips of one model.
type Animator struct {
	clips map[string]*Clip
}

func NewAnimator(clips ...*Clip) *Animator {
	a := &Animator{clips: make(map[string]*Clip, len(clips))}
	for _, c := range clips {
		a.Add(c)
	}
	return a
}

func (a *Animator) Add(c *Clip) {
	if c == nil || c.Name == "" {
		return
	}
	a.clips[c.Name] = c
}

func (a *Animator) Find(name string) (*Clip, bool) {
	if a == nil {
		return nil, false
	}
	c, ok := a.clips[name]
	return c, ok
}

// Play starts the named clip and stops any other clip on its layer.
func (a *Animator) Play(name string) bool {
	c, ok := a.Find(name)
	if !ok {
		return false
	}
	for _, other := range a.clips {
		if other != c && other.layer == c.layer {
			other.Stop()
		}
	}
	c.Play()
	return true
}

func (a *Animator) Update(dt float64) {
	if a == nil {
		return
	}
	for _, c := range a.clips {
		c.Update(dt)
	}
}

// Names returns the clip names in sorted order.
func (a *Animator) Names() []string {
	if a == nil {
		return nil
	}
	names := make([]string, 0, len(a.clips))
	for name := range a.clips {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
