package yuletree

import (
	"math"
	"math/rand/v2"
	"time"

	"github.com/tanema/gween/ease"
)

// treeLayer describes one cone of the tree.
type treeLayer struct {
	radius, height, y float64
}

var treeLayers = [...]treeLayer{
	{radius: 2, height: 2.2, y: -0.5},
	{radius: 1.5, height: 2, y: 0.8},
	{radius: 1, height: 1.8, y: 1.8},
}

// BulbPalette is the fixed set of bulb colors.
var BulbPalette = []Color{
	MustParseHex("#ff0000"),
	MustParseHex("#00ff00"),
	MustParseHex("#00ffff"),
	MustParseHex("#ff00ff"),
	MustParseHex("#ffff00"),
}

var (
	starColor   = RGB(0xffe700)
	trunkColor  = RGB(0x8b4513)
	needleColor = RGB(0x006400)
)

const (
	coneSegments   = 32
	trunkSegments  = 16
	bulbSize       = 0.05
	bulbSegments   = 12
	starSize       = 0.4
	starDetail     = 1
	starY          = 3
	trunkY         = -2.5
	fullTurn       = 2 * math.Pi
	seedMixingSalt = 0x9e3779b97f4a7c15
)

// App is the application state: the scene graph and everything the frame
// updater and viewport adapter mutate. Create it once with NewApp; it is
// not safe for concurrent use.
type App struct {
	cfg  Config
	seed uint64
	rng  *rand.Rand

	scene     *Scene
	camera    *Camera
	renderer  *Renderer
	scheduler *Scheduler

	trunk     *Node
	tree      *Node
	star      *Node
	starLight *Light
	bulbs     []*Node
	snowNode  *Node
	snow      *ParticleField

	turns int
	// OnTurn, when set, is called each time the tree completes a full turn.
	OnTurn func(turns int)

	testRunner      *TestRunner
	screenshotQueue []string
	quit            bool
}

// NewApp builds the scene once and attaches it to surface. The surface's
// current size is applied through Resize before NewApp returns.
func NewApp(cfg Config, surface Surface) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	a := &App{
		cfg:       cfg,
		seed:      seed,
		rng:       rand.New(rand.NewPCG(seed, seed^seedMixingSalt)),
		scene:     NewScene(),
		renderer:  NewRenderer(surface),
		scheduler: NewScheduler(),
	}
	a.scene.SetDebugMode(cfg.Debug)
	a.renderer.SetDebugMode(cfg.Debug)

	a.buildCamera()
	a.buildLights()
	a.buildTrunk()
	a.buildTree()
	a.buildStar()
	a.buildBulbs()
	a.buildSnow()
	a.scene.Add(a.trunk, a.tree, a.star, a.snowNode)

	a.scheduler.Add("tree", a.spinTree)
	a.scheduler.Add("star", a.spinStar)
	a.scheduler.Add("snow", a.fallSnow)
	a.scheduler.Add("camera", a.moveCamera)

	a.Resize(surface.Size())
	return a, nil
}

func (a *App) buildCamera() {
	a.camera = NewCamera(a.cfg.FOV, 1, a.cfg.Near, a.cfg.Far)
	a.camera.Position = a.cfg.CameraPosition
	if a.cfg.Intro {
		a.camera.Position[2] = a.cfg.IntroFromZ
		a.camera.DollyTo(a.cfg.CameraPosition.Z(), a.cfg.IntroSeconds, ease.OutCubic)
	}
}

func (a *App) buildLights() {
	a.scene.AddLight(NewAmbientLight(ColorWhite, 0.6))

	key := NewPointLight(ColorWhite, 1.2, 0)
	key.Name = "key"
	key.Position = Vec3{0, 5, 5}
	a.scene.AddLight(key)
}

func (a *App) buildTrunk() {
	a.trunk = NewMesh("trunk", NewCylinderGeometry(0.3, 0.3, 1.2, trunkSegments), NewStandardMaterial(trunkColor))
	a.trunk.SetPosition(0, trunkY, 0)
}

func (a *App) buildTree() {
	a.tree = NewGroup("tree")
	mat := NewStandardMaterial(needleColor)
	mat.Roughness = 0.5
	for _, l := range treeLayers {
		cone := NewMesh("layer", NewConeGeometry(l.radius, l.height, coneSegments), mat)
		cone.SetPosition(0, l.y, 0)
		a.tree.AddChild(cone)
	}
}

func (a *App) buildStar() {
	mat := &Material{
		Color:             starColor,
		Emissive:          starColor,
		EmissiveIntensity: 1.8,
		Metalness:         0.8,
		Roughness:         0.2,
	}
	a.star = NewMesh("star", NewOctahedronGeometry(starSize, starDetail), mat)
	a.star.SetPosition(0, starY, 0)

	a.starLight = NewPointLight(starColor, 2, 10)
	a.starLight.Name = "star"
	a.starLight.Position = Vec3{0, 3.2, 0}
	a.scene.AddLight(a.starLight)
}

// buildBulbs scatters bulbs around the tree using polar coordinates in the
// tree's local space. Color is drawn before position for every bulb.
func (a *App) buildBulbs() {
	geo := NewSphereGeometry(bulbSize, bulbSegments, bulbSegments)
	a.bulbs = make([]*Node, 0, a.cfg.BulbCount)
	for i := 0; i < a.cfg.BulbCount; i++ {
		color := BulbPalette[a.rng.IntN(len(BulbPalette))]
		angle := a.rng.Float64() * fullTurn
		radius := a.cfg.BulbRadius.Sample(a.rng)
		height := a.cfg.BulbHeight.Sample(a.rng)

		bulb := NewMesh("bulb", geo, NewEmissiveMaterial(color, 1))
		bulb.SetPosition(math.Cos(angle)*radius, height, math.Sin(angle)*radius)
		a.tree.AddChild(bulb)
		a.bulbs = append(a.bulbs, bulb)
	}
}

func (a *App) buildSnow() {
	a.snow = NewParticleField(a.cfg.Snow, a.rng)
	a.snowNode = NewPoints("snow", a.snow, NewPointsMaterial(ColorWhite, a.cfg.Snow.Size))
}

// --- Per-frame tasks ---

func (a *App) spinTree(float64) {
	a.tree.Rotate(0, a.cfg.TreeSpin, 0)
	if t := int(a.tree.Rotation.Y() / fullTurn); t > a.turns {
		a.turns = t
		if a.OnTurn != nil {
			a.OnTurn(t)
		}
	}
}

func (a *App) spinStar(float64) {
	a.star.Rotate(a.cfg.StarTilt, a.cfg.StarSpin, 0)
}

func (a *App) fallSnow(float64) {
	a.snow.Step()
}

func (a *App) moveCamera(dt float64) {
	a.camera.update(float32(dt))
}

// --- Frame loop ---

// Update runs one scheduler tick: tree spin, star spin, snowfall and the
// camera intro, in that order. A paused app skips the tick but still
// advances an attached test runner.
func (a *App) Update() {
	if a.testRunner != nil {
		a.testRunner.step(a)
	}
	a.scheduler.Tick(1 / float64(a.cfg.TPS))
}

// Draw renders the full scene with the current camera.
func (a *App) Draw() {
	a.renderer.Render(a.scene, a.camera)
}

// Tick runs Update followed by Draw: one complete frame.
func (a *App) Tick() {
	a.Update()
	a.Draw()
}

// SetPaused stops or resumes animation. Drawing continues while paused.
func (a *App) SetPaused(paused bool) {
	a.scheduler.SetPaused(paused)
}

// TogglePause flips the paused state.
func (a *App) TogglePause() {
	a.scheduler.SetPaused(!a.scheduler.Paused())
}

// Paused reports whether animation is paused.
func (a *App) Paused() bool {
	return a.scheduler.Paused()
}

// RequestQuit asks the hosting backend to stop after the current frame.
func (a *App) RequestQuit() {
	a.quit = true
}

// QuitRequested reports whether RequestQuit has been called.
func (a *App) QuitRequested() bool {
	return a.quit
}

// --- Accessors ---

func (a *App) Config() Config { return a.cfg }
func (a *App) Seed() uint64 { return a.seed }
func (a *App) Scene() *Scene { return a.scene }
func (a *App) Camera() *Camera { return a.camera }
func (a *App) Renderer() *Renderer { return a.renderer }
func (a *App) Scheduler() *Scheduler { return a.scheduler }
func (a *App) Trunk() *Node { return a.trunk }
func (a *App) Tree() *Node { return a.tree }
func (a *App) Star() *Node { return a.star }
func (a *App) StarLight() *Light { return a.starLight }
func (a *App) Bulbs() []*Node { return a.bulbs }
func (a *App) Snow() *ParticleField { return a.snow }
func (a *App) Frame() uint64 { return a.scheduler.Frame() }
func (a *App) Turns() int { return a.turns }
func (a *App) SetTestRunner(r *TestRunner) { a.testRunner = r }
