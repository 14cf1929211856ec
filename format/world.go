package format

// Vec3 is a point or direction in world space. WLD geometry is stored with
// 64-bit precision.
type Vec3 struct {
	X, Y, Z float64
}

// World is the root of the decoded model. It owns its entire sub-tree; there
// are no back-references and no sharing. Fields default to empty or zero when
// their source chunk is absent.
type World struct {
	Name            string
	Description     string
	BackgroundColor uint32 // ARGB, high byte is alpha
	SpawnFlags      uint32

	// EngineBuild is nil when the file carries no BUIV header. EngineVersion
	// is non-empty only when EngineBuild is set.
	EngineBuild   *uint32
	EngineVersion string

	Entities []Entity
	Brushes  []Brush
}

// Brush is a solid-geometry object composed of one or more LOD mips.
// ID equals the brush's index within the archive it was read from.
type Brush struct {
	ID   int
	Mips []BrushMip
}

// DefaultMaxDistance is the mip switch threshold used when a brush mip has no
// BRMP header.
const DefaultMaxDistance float32 = 1_000_000

// BrushMip is one level of detail; the lowest-index mip is the highest
// detail.
type BrushMip struct {
	MaxDistance float32
	Sectors     []Sector
}

// Sector is a convex region described by shared vertices and polygons
// indexing into them.
type Sector struct {
	Name    string
	Color   uint32
	Ambient uint32
	Flags   uint32

	Vertices []Vec3
	Polygons []Polygon
}

// Polygon is one face of a sector. Vertices are resolved by copy from the
// sector's vertex pool. Indices holds triangle-strip elements when present;
// an empty Indices means the polygon is triangulated as a fan at render time.
type Polygon struct {
	Vertices []Vec3
	Indices  []uint32
	Color    uint32 // ARGB
	Flags    uint32
}

// Placement positions an entity in the world.
type Placement struct {
	Position Vec3
	Rotation Vec3
}

// Entity is a placed game object. Entity archives are not decoded yet, so
// worlds currently carry none; the type exists for the model's consumers.
type Entity struct {
	ID        int
	ClassName string
	Placement Placement
}
