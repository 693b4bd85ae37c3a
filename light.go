package yuletree

import "math"

// LightType identifies the kind of light source.
type LightType uint8

const (
	// LightAmbient lights every surface equally, with no position.
	LightAmbient LightType = iota
	// LightPoint emits in all directions from Position, optionally limited
	// to Distance.
	LightPoint
)

// Light is a scene light source.
type Light struct {
	Name string
	Type LightType
	// Color is the light tint.
	Color Color
	// Intensity scales Color.
	Intensity float64
	// Position is the world-space origin of a point light.
	Position Vec3
	// Distance is the range of a point light. Zero means unlimited range
	// with no falloff.
	Distance float64
	// Enabled determines whether the light contributes to shading.
	Enabled bool
}

// NewAmbientLight returns an enabled ambient light.
func NewAmbientLight(c Color, intensity float64) *Light {
	return &Light{Name: "ambient", Type: LightAmbient, Color: c, Intensity: intensity, Enabled: true}
}

// NewPointLight returns an enabled point light at the origin.
func NewPointLight(c Color, intensity, distance float64) *Light {
	return &Light{Name: "point", Type: LightPoint, Color: c, Intensity: intensity, Distance: distance, Enabled: true}
}

// falloff returns the range attenuation of a point light at distance d.
func (l *Light) falloff(d float64) float64 {
	if l.Distance <= 0 {
		return 1
	}
	f := clamp01(1 - d/l.Distance)
	return f * f
}

// dielectricSpecular is the highlight color of non-metals.
var dielectricSpecular = Color{0.04, 0.04, 0.04, 1}

// shade computes the flat color of a surface at world position p with unit
// normal n, seen from eye.
func shade(mat *Material, p, n, eye Vec3, lights []*Light) Color {
	emissive := mat.Emissive.Scale(mat.EmissiveIntensity)
	if mat.Unlit {
		return Color{
			R: mat.Color.R + emissive.R,
			G: mat.Color.G + emissive.G,
			B: mat.Color.B + emissive.B,
			A: 1,
		}.Clamped()
	}

	diffuseWeight := 1 - mat.Metalness
	gloss := (1 - mat.Roughness) * (1 - mat.Roughness)
	shininess := 2 + gloss*126
	specTint := dielectricSpecular.Lerp(mat.Color, mat.Metalness)
	view := normalize(eye.Sub(p))

	var r, g, b float64
	for _, l := range lights {
		if !l.Enabled || l.Intensity == 0 {
			continue
		}
		lc := l.Color.Scale(l.Intensity)
		switch l.Type {
		case LightAmbient:
			r += mat.Color.R * diffuseWeight * lc.R
			g += mat.Color.G * diffuseWeight * lc.G
			b += mat.Color.B * diffuseWeight * lc.B
		case LightPoint:
			toLight := l.Position.Sub(p)
			dist := toLight.Len()
			att := l.falloff(dist)
			if att == 0 {
				continue
			}
			dir := normalize(toLight)
			ndl := n.Dot(dir)
			if ndl <= 0 {
				continue
			}
			k := ndl * att * diffuseWeight
			r += mat.Color.R * lc.R * k
			g += mat.Color.G * lc.G * k
			b += mat.Color.B * lc.B * k
			if gloss > 0 {
				half := normalize(dir.Add(view))
				s := math.Pow(math.Max(n.Dot(half), 0), shininess) * gloss * att
				r += specTint.R * lc.R * s
				g += specTint.G * lc.G * s
				b += specTint.B * lc.B * s
			}
		}
	}
	return Color{r + emissive.R, g + emissive.G, b + emissive.B, 1}.Clamped()
}
