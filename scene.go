package yuletree

// Scene is the top-level container that owns the node tree, the lights and
// the background color.
type Scene struct {
	root   *Node
	lights []*Light

	// Background is the color the surface is cleared to before each frame.
	Background Color
}

// NewScene creates a new scene with a pre-created root group and a black
// background.
func NewScene() *Scene {
	return &Scene{
		root:       NewGroup("root"),
		Background: ColorBlack,
	}
}

// Root returns the scene's root group node.
func (s *Scene) Root() *Node {
	return s.root
}

// Add appends nodes to the root group.
func (s *Scene) Add(nodes ...*Node) {
	for _, n := range nodes {
		s.root.AddChild(n)
	}
}

// AddLight registers a light with the scene.
func (s *Scene) AddLight(l *Light) {
	if l == nil {
		panic("yuletree: cannot add nil light")
	}
	s.lights = append(s.lights, l)
}

// Lights returns the scene's lights. The returned slice MUST NOT be mutated.
func (s *Scene) Lights() []*Light {
	return s.lights
}

// UpdateWorldMatrices refreshes the world matrix of every dirty node.
func (s *Scene) UpdateWorldMatrices() {
	updateWorldMatrix(s.root, identityMatrix, false)
}

// SetDebugMode enables or disables node debug checks (tree depth and
// child count warnings).
func (s *Scene) SetDebugMode(enabled bool) {
	globalDebug = enabled
}
