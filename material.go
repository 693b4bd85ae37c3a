package yuletree

// Material describes how a mesh or points node is colored.
//
// Mesh nodes use the standard fields (Color, Emissive, EmissiveIntensity,
// Roughness, Metalness). Points nodes use Color and Size only.
type Material struct {
	// Color is the diffuse base color.
	Color Color
	// Emissive is light the surface gives off regardless of scene lighting.
	Emissive Color
	// EmissiveIntensity scales Emissive.
	EmissiveIntensity float64
	// Roughness in [0, 1]; lower values give tighter, brighter highlights.
	Roughness float64
	// Metalness in [0, 1]; tints highlights with the base color.
	Metalness float64
	// Size is the world-space edge length of each point (points only).
	Size float64
	// Unlit skips scene lighting and outputs Color + emissive directly.
	Unlit bool
}

// NewStandardMaterial returns a lit material with the given base color,
// full roughness, no metalness and no emission.
func NewStandardMaterial(c Color) *Material {
	return &Material{
		Color:             c,
		Emissive:          ColorBlack,
		EmissiveIntensity: 1,
		Roughness:         1,
	}
}

// NewEmissiveMaterial returns a material that only emits the given color,
// independent of scene lights.
func NewEmissiveMaterial(c Color, intensity float64) *Material {
	return &Material{
		Color:             ColorBlack,
		Emissive:          c,
		EmissiveIntensity: intensity,
		Roughness:         1,
		Unlit:             true,
	}
}

// NewPointsMaterial returns an unlit material for particle fields.
func NewPointsMaterial(c Color, size float64) *Material {
	return &Material{
		Color: c,
		Size:  size,
		Unlit: true,
	}
}
