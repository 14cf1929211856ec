package format

import (
	"fmt"
)

// Sanity envelopes for size- and count-based skips. A value outside its
// envelope abandons the skip; realignment then relies on the forward WSTA
// scan.
const (
	dictImportEnvelope  = 10_000_000
	textureEnvelope     = 10_000_000
	shadowMapEnvelope   = 10_000_000
	portalLinksEnvelope = 100_000_000
	bspNodeEnvelope     = 1_000_000
)

// Byte widths of the opaque substructures the decoder skips over.
const (
	planeSize   = 32 // normal xyz + distance, 4 x float64
	edgeSize    = 8  // two 32-bit vertex indices
	bspNodeSize = 48
)

// Decode parses a complete WLD buffer into a World. The buffer is borrowed
// read-only for the duration of the call. log receives the parse narrative
// and may be nil.
//
// Only two conditions are fatal: a missing WRLD root and a missing WSTA
// state marker. Every other failure is absorbed into a warn event at its
// section boundary and the parse continues from wherever the cursor stands.
// On a fatal failure exactly one error event is emitted and the partial
// world is discarded.
func Decode(data []byte, log LogFunc) (*World, error) {
	if log == nil {
		log = func(Level, string) {}
	}
	d := &decoder{cur: NewCursor(data), log: log, world: &World{}}
	if err := d.run(); err != nil {
		d.logf(LevelError, "world parse failed: %v", err)
		return nil, err
	}
	return d.world, nil
}

type decoder struct {
	cur   *Cursor
	log   LogFunc
	world *World
}

func (d *decoder) logf(level Level, format string, args ...any) {
	d.log(level, fmt.Sprintf(format, args...))
}

func (d *decoder) warnf(format string, args ...any) {
	d.logf(LevelWarn, format, args...)
}

// peekIs reports whether the next four bytes spell id.
func (d *decoder) peekIs(id FourCC) bool {
	got, err := d.cur.PeekChunkID()
	return err == nil && got == id
}

func (d *decoder) run() error {
	d.readEngineVersion()

	if err := d.cur.ExpectChunkID(ChunkWRLD); err != nil {
		return fmt.Errorf("world root: %w", err)
	}
	d.logf(LevelInfo, "world root found, %d bytes total", d.cur.Size())

	if err := d.readBrushesSection(); err != nil {
		return err
	}
	d.readStateSection()
	d.readEndMarker()
	return nil
}

// readEngineVersion consumes the optional BUIV/VERC header. Absence is not an
// error; a failure mid-header downgrades to a warning.
func (d *decoder) readEngineVersion() {
	if !d.peekIs(ChunkBUIV) {
		return
	}
	if err := d.engineVersion(); err != nil {
		d.warnf("engine version header: %v", err)
	}
}

func (d *decoder) engineVersion() error {
	_, _ = d.cur.ReadChunkID()
	build, err := d.cur.ReadU32()
	if err != nil {
		return fmt.Errorf("engine build: %w", err)
	}
	d.world.EngineBuild = &build
	d.logf(LevelInfo, "engine build %d", build)

	if !d.peekIs(ChunkVERC) {
		return nil
	}
	_, _ = d.cur.ReadChunkID()
	length, err := d.cur.ReadI32()
	if err != nil {
		return fmt.Errorf("engine version length: %w", err)
	}
	if length <= 0 || length >= 1000 {
		return nil
	}
	version, err := d.cur.ReadString(int(length))
	if err != nil {
		return fmt.Errorf("engine version string: %w", err)
	}
	d.world.EngineVersion = version
	d.logf(LevelInfo, "engine version %q", version)
	return nil
}

// readBrushesSection handles the partially-ordered WLIF / DIMP / DPOS / BRAR
// / TRAR elements and then realigns on the WSTA marker. The dictionary lives
// at a file offset announced by DPOS, usually past the data that references
// it; it is read eagerly through the forward pointer while sequential parsing
// resumes from just after DPOS. Not finding WSTA afterwards is fatal.
func (d *decoder) readBrushesSection() error {
	if d.peekIs(ChunkWLIF) {
		if err := d.readWorldInfo(); err != nil {
			d.warnf("world info: %v", err)
		}
	}
	d.skipDictImport()
	dictEnd := d.readDictPointer()

	if d.peekIs(ChunkBRAR) {
		if err := d.readBrushArchive(); err != nil {
			d.warnf("brush archive: %v", err)
		}
	}
	if d.peekIs(ChunkTRAR) {
		if err := d.skipTerrainArchive(); err != nil {
			d.warnf("terrain archive: %v", err)
		}
	}
	if dictEnd >= 0 {
		d.cur.SetPos(dictEnd)
	}
	if _, err := FindChunk(d.cur, ChunkWSTA); err != nil {
		return fmt.Errorf("brushes section: %w", ErrWstaNotFound)
	}
	return nil
}

// readStateSection decodes the WSTA block. Any failure here is non-fatal:
// defaults remain and a warning is logged.
func (d *decoder) readStateSection() {
	if err := d.stateSection(); err != nil {
		d.warnf("world state: %v", err)
	}
}

func (d *decoder) stateSection() error {
	d.skipDictImport()
	dictEnd := d.readDictPointer()

	if err := d.cur.ExpectChunkID(ChunkWSTA); err != nil {
		return err
	}
	version, err := d.cur.ReadI32()
	if err != nil {
		return fmt.Errorf("state version: %w", err)
	}
	d.logf(LevelInfo, "world state version %d", version)

	if d.peekIs(ChunkWLIF) {
		if err := d.readWorldInfo(); err != nil {
			return fmt.Errorf("world info: %w", err)
		}
	}
	background, err := d.cur.ReadU32()
	if err != nil {
		return fmt.Errorf("background color: %w", err)
	}
	d.world.BackgroundColor = background
	d.logf(LevelInfo, "background color #%08X", background)

	if dictEnd >= 0 {
		d.cur.SetPos(dictEnd)
	}
	return nil
}

// readEndMarker scans for WEND. A missing end marker is only a warning; the
// world is returned as-is.
func (d *decoder) readEndMarker() {
	SkipTo(d.cur, ChunkWEND)
	if err := d.cur.ExpectChunkID(ChunkWEND); err != nil {
		d.warnf("end marker: %v", err)
		return
	}
	d.logf(LevelSuccess, "world parse complete: %d brushes", len(d.world.Brushes))
}

// readWorldInfo decodes a WLIF block: optional DTRS marker, name, spawn
// flags, description. A length outside its accepted window marks the field
// absent; no payload bytes are consumed for it.
func (d *decoder) readWorldInfo() error {
	if err := d.cur.ExpectChunkID(ChunkWLIF); err != nil {
		return err
	}
	if d.peekIs(ChunkDTRS) {
		_, _ = d.cur.ReadChunkID()
	}

	length, err := d.cur.ReadI32()
	if err != nil {
		return fmt.Errorf("name length: %w", err)
	}
	if length > 0 && length < 1000 {
		name, err := d.cur.ReadString(int(length))
		if err != nil {
			return fmt.Errorf("name: %w", err)
		}
		d.world.Name = name
		d.logf(LevelInfo, "world name %q", name)
	}

	flags, err := d.cur.ReadU32()
	if err != nil {
		return fmt.Errorf("spawn flags: %w", err)
	}
	d.world.SpawnFlags = flags

	length, err = d.cur.ReadI32()
	if err != nil {
		return fmt.Errorf("description length: %w", err)
	}
	if length > 0 && length < 10000 {
		description, err := d.cur.ReadString(int(length))
		if err != nil {
			return fmt.Errorf("description: %w", err)
		}
		d.world.Description = description
	}
	return nil
}

// skipDictImport consumes an optional sized DIMP block.
func (d *decoder) skipDictImport() {
	if !d.peekIs(ChunkDIMP) {
		return
	}
	_, _ = d.cur.ReadChunkID()
	if err := SkipSized(d.cur, dictImportEnvelope); err != nil {
		d.warnf("dictionary import: %v", err)
	}
}

// readDictPointer consumes an optional DPOS block: a file-absolute offset to
// a DICT table. The dictionary is decoded through the pointer, the cursor is
// restored for sequential parsing, and the position just past DEND is
// returned so the caller can rejoin there. Returns -1 when no usable
// dictionary exists.
func (d *decoder) readDictPointer() int {
	if !d.peekIs(ChunkDPOS) {
		return -1
	}
	_, _ = d.cur.ReadChunkID()
	target, err := d.cur.ReadU32()
	if err != nil {
		d.warnf("dictionary position: %v", err)
		return -1
	}
	resume := d.cur.Pos()
	end, err := d.readDictionary(int(target))
	d.cur.SetPos(resume)
	if err != nil {
		d.warnf("dictionary at offset %d: %v", target, err)
		return -1
	}
	return end
}

func (d *decoder) readDictionary(pos int) (int, error) {
	d.cur.SetPos(pos)
	if err := d.cur.ExpectChunkID(ChunkDICT); err != nil {
		return -1, err
	}
	count, err := d.cur.ReadI32()
	if err != nil {
		return -1, fmt.Errorf("filename count: %w", err)
	}
	if count < 0 {
		return -1, fmt.Errorf("filename count %d: %w", count, ErrMalformed)
	}
	for i := int32(0); i < count; i++ {
		length, err := d.cur.ReadI32()
		if err != nil {
			return -1, fmt.Errorf("filename %d length: %w", i, err)
		}
		name, err := d.cur.ReadString(int(length))
		if err != nil {
			return -1, fmt.Errorf("filename %d: %w", i, err)
		}
		if i < 3 {
			d.logf(LevelInfo, "dictionary entry %d: %q", i, name)
		}
	}
	if err := d.cur.ExpectChunkID(ChunkDEND); err != nil {
		return -1, err
	}
	return d.cur.Pos(), nil
}

// readBrushArchive decodes a BRAR block: a counted run of BR3D entries
// followed by optional portal-sector links and the EOAR marker. Brush IDs
// equal the index at which each entry was read.
func (d *decoder) readBrushArchive() error {
	if err := d.cur.ExpectChunkID(ChunkBRAR); err != nil {
		return err
	}
	count, err := d.cur.ReadI32()
	if err != nil {
		return fmt.Errorf("brush count: %w", err)
	}
	if count < 0 {
		return fmt.Errorf("brush count %d: %w", count, ErrMalformed)
	}
	d.logf(LevelInfo, "brush archive: %d brushes", count)

	for i := int32(0); i < count; i++ {
		brush, err := d.readBrush()
		if err != nil {
			return fmt.Errorf("brush %d: %w", i, err)
		}
		brush.ID = len(d.world.Brushes)
		d.world.Brushes = append(d.world.Brushes, brush)
	}

	if d.peekIs(ChunkPSLS) {
		if err := d.skipPortalLinks(); err != nil {
			d.warnf("portal-sector links: %v", err)
			return nil
		}
	}
	if d.peekIs(ChunkEOAR) {
		_, _ = d.cur.ReadChunkID()
	}
	d.logf(LevelSuccess, "brush archive parsed: %d brushes", len(d.world.Brushes))
	return nil
}

func (d *decoder) readBrush() (Brush, error) {
	var brush Brush
	if err := d.cur.ExpectChunkID(ChunkBR3D); err != nil {
		return brush, err
	}
	version, err := d.cur.ReadI32()
	if err != nil {
		return brush, fmt.Errorf("version: %w", err)
	}
	mipCount, err := d.cur.ReadI32()
	if err != nil {
		return brush, fmt.Errorf("mip count: %w", err)
	}
	if mipCount < 0 {
		return brush, fmt.Errorf("mip count %d: %w", mipCount, ErrMalformed)
	}
	d.logf(LevelInfo, "brush version %d, %d mips", version, mipCount)

	for i := int32(0); i < mipCount; i++ {
		mip, err := d.readMip()
		if err != nil {
			return brush, fmt.Errorf("mip %d: %w", i, err)
		}
		brush.Mips = append(brush.Mips, mip)
	}
	if err := d.cur.ExpectChunkID(ChunkBREN); err != nil {
		return brush, err
	}
	return brush, nil
}

func (d *decoder) readMip() (BrushMip, error) {
	mip := BrushMip{MaxDistance: DefaultMaxDistance}
	if d.peekIs(ChunkBRMP) {
		_, _ = d.cur.ReadChunkID()
		distance, err := d.cur.ReadF32()
		if err != nil {
			return mip, fmt.Errorf("max distance: %w", err)
		}
		mip.MaxDistance = distance
	}
	sectorCount, err := d.cur.ReadI32()
	if err != nil {
		return mip, fmt.Errorf("sector count: %w", err)
	}
	if sectorCount < 0 {
		return mip, fmt.Errorf("sector count %d: %w", sectorCount, ErrMalformed)
	}
	for i := int32(0); i < sectorCount; i++ {
		sector, err := d.readSector()
		if err != nil {
			return mip, fmt.Errorf("sector %d: %w", i, err)
		}
		mip.Sectors = append(mip.Sectors, sector)
	}
	return mip, nil
}

// readSector decodes one BSC block. Field presence is gated on the embedded
// sector version; fields must be consumed in file order since the container
// carries only offsets, never names.
func (d *decoder) readSector() (Sector, error) {
	var sector Sector
	if err := d.cur.ExpectChunkID(ChunkBSC); err != nil {
		return sector, err
	}
	version, err := d.cur.ReadI32()
	if err != nil {
		return sector, fmt.Errorf("version: %w", err)
	}

	if version >= 1 {
		length, err := d.cur.ReadI32()
		if err != nil {
			return sector, fmt.Errorf("name length: %w", err)
		}
		name, err := d.cur.ReadString(int(length))
		if err != nil {
			return sector, fmt.Errorf("name: %w", err)
		}
		sector.Name = name
	}
	if sector.Color, err = d.cur.ReadU32(); err != nil {
		return sector, fmt.Errorf("color: %w", err)
	}
	if sector.Ambient, err = d.cur.ReadU32(); err != nil {
		return sector, fmt.Errorf("ambient: %w", err)
	}
	if sector.Flags, err = d.cur.ReadU32(); err != nil {
		return sector, fmt.Errorf("flags: %w", err)
	}
	if version >= 2 {
		if _, err := d.cur.ReadU32(); err != nil { // flags2
			return sector, fmt.Errorf("flags2: %w", err)
		}
	}
	if version >= 3 {
		if _, err := d.cur.ReadU32(); err != nil { // visibility flags
			return sector, fmt.Errorf("vis flags: %w", err)
		}
	}

	if err := d.cur.ExpectChunkID(ChunkVTXs); err != nil {
		return sector, err
	}
	vertexCount, err := d.cur.ReadI32()
	if err != nil {
		return sector, fmt.Errorf("vertex count: %w", err)
	}
	if vertexCount < 0 {
		return sector, fmt.Errorf("vertex count %d: %w", vertexCount, ErrMalformed)
	}
	sector.Vertices = make([]Vec3, 0, capFor(int(vertexCount), 24, d.cur))
	for i := int32(0); i < vertexCount; i++ {
		var v Vec3
		if v.X, err = d.cur.ReadF64(); err != nil {
			return sector, fmt.Errorf("vertex %d: %w", i, err)
		}
		if v.Y, err = d.cur.ReadF64(); err != nil {
			return sector, fmt.Errorf("vertex %d: %w", i, err)
		}
		if v.Z, err = d.cur.ReadF64(); err != nil {
			return sector, fmt.Errorf("vertex %d: %w", i, err)
		}
		sector.Vertices = append(sector.Vertices, v)
	}

	if err := d.skipCounted(ChunkPLNs, planeSize); err != nil {
		return sector, fmt.Errorf("planes: %w", err)
	}
	if err := d.skipCounted(ChunkEDGs, edgeSize); err != nil {
		return sector, fmt.Errorf("edges: %w", err)
	}

	if err := d.cur.ExpectChunkID(ChunkBPOs); err != nil {
		return sector, err
	}
	polyVersion, err := d.cur.ReadI32()
	if err != nil {
		return sector, fmt.Errorf("polygon version: %w", err)
	}
	polyCount, err := d.cur.ReadI32()
	if err != nil {
		return sector, fmt.Errorf("polygon count: %w", err)
	}
	if polyCount < 0 {
		return sector, fmt.Errorf("polygon count %d: %w", polyCount, ErrMalformed)
	}
	for i := int32(0); i < polyCount; i++ {
		polygon, err := d.readPolygon(polyVersion, &sector)
		if err != nil {
			return sector, fmt.Errorf("polygon %d: %w", i, err)
		}
		sector.Polygons = append(sector.Polygons, polygon)
	}

	if d.peekIs(ChunkBSP0) {
		_, _ = d.cur.ReadChunkID()
		nodeCount, err := d.cur.ReadI32()
		if err != nil {
			return sector, fmt.Errorf("bsp node count: %w", err)
		}
		if err := d.skipSpan(int(nodeCount)*bspNodeSize, nodeCount, bspNodeEnvelope); err != nil {
			d.warnf("bsp tree: %v", err)
		}
	}
	return sector, nil
}

// skipCounted consumes a counted fixed-width substructure (planes, edges)
// without decoding it.
func (d *decoder) skipCounted(id FourCC, width int) error {
	if err := d.cur.ExpectChunkID(id); err != nil {
		return err
	}
	count, err := d.cur.ReadI32()
	if err != nil {
		return fmt.Errorf("count: %w", err)
	}
	if count < 0 {
		return fmt.Errorf("count %d: %w", count, ErrMalformed)
	}
	return d.cur.Skip(int(count) * width)
}

// readPolygon decodes one polygon record of a BPOs run, gated on the embedded
// version. Texture slots, polygon properties, edge indices, and shadow maps
// are recognized only well enough to skip. Triangle vertex and element
// indices are resolved against the sector's vertex pool; out-of-range
// indices are dropped without a warning (the volume would overwhelm the
// log).
func (d *decoder) readPolygon(version int32, sector *Sector) (Polygon, error) {
	polygon := Polygon{Color: 0xFFFFFFFF}

	if _, err := d.cur.ReadI32(); err != nil { // plane index
		return polygon, fmt.Errorf("plane index: %w", err)
	}

	if version >= 2 {
		var err error
		if polygon.Color, err = d.cur.ReadU32(); err != nil {
			return polygon, fmt.Errorf("color: %w", err)
		}
		if polygon.Flags, err = d.cur.ReadU32(); err != nil {
			return polygon, fmt.Errorf("flags: %w", err)
		}
		for slot := 0; slot < 3; slot++ {
			if err := d.skipTextureSlot(); err != nil {
				return polygon, fmt.Errorf("texture slot %d: %w", slot, err)
			}
		}
		if err := d.cur.Skip(8); err != nil { // polygon properties
			return polygon, fmt.Errorf("properties: %w", err)
		}
	}

	edgeCount, err := d.cur.ReadI32()
	if err != nil {
		return polygon, fmt.Errorf("edge count: %w", err)
	}
	if edgeCount < 0 {
		return polygon, fmt.Errorf("edge count %d: %w", edgeCount, ErrMalformed)
	}
	if err := d.cur.Skip(int(edgeCount) * 4); err != nil {
		return polygon, fmt.Errorf("edge indices: %w", err)
	}

	var triangleVertices, triangleElements []uint32
	if version >= 4 {
		if triangleVertices, err = d.readIndexRun("triangle vertex"); err != nil {
			return polygon, err
		}
		if triangleElements, err = d.readIndexRun("triangle element"); err != nil {
			return polygon, err
		}
	}

	d.skipShadowMap()

	if version >= 2 {
		if _, err := d.cur.ReadU32(); err != nil { // shadow color
			return polygon, fmt.Errorf("shadow color: %w", err)
		}
	} else {
		if _, err := d.cur.ReadU8(); err != nil { // legacy dummy byte
			return polygon, fmt.Errorf("legacy pad: %w", err)
		}
	}

	for _, idx := range triangleVertices {
		if int(idx) < len(sector.Vertices) {
			polygon.Vertices = append(polygon.Vertices, sector.Vertices[idx])
		}
	}
	for _, idx := range triangleElements {
		if int(idx) < len(sector.Vertices) {
			polygon.Indices = append(polygon.Indices, idx)
		}
	}
	return polygon, nil
}

func (d *decoder) readIndexRun(what string) ([]uint32, error) {
	count, err := d.cur.ReadI32()
	if err != nil {
		return nil, fmt.Errorf("%s count: %w", what, err)
	}
	if count < 0 {
		return nil, fmt.Errorf("%s count %d: %w", what, count, ErrMalformed)
	}
	run := make([]uint32, 0, capFor(int(count), 4, d.cur))
	for i := int32(0); i < count; i++ {
		v, err := d.cur.ReadU32()
		if err != nil {
			return nil, fmt.Errorf("%s %d: %w", what, i, err)
		}
		run = append(run, v)
	}
	return run, nil
}

// skipTextureSlot consumes one of a polygon's three texture slots: filename
// length and bytes, a 6-float mapping definition, packed scroll/blend bytes,
// and a color. A filename length outside its envelope abandons the filename
// skip with a warning; zero means no filename and is consumed silently.
func (d *decoder) skipTextureSlot() error {
	length, err := d.cur.ReadI32()
	if err != nil {
		return fmt.Errorf("filename length: %w", err)
	}
	if length < 0 || length >= textureEnvelope {
		d.warnf("texture filename length %d at offset %d out of range", length, d.cur.Pos())
	} else if length > 0 {
		if err := d.cur.Skip(int(length)); err != nil {
			return fmt.Errorf("filename: %w", err)
		}
	}
	// mapping definition (6 x f32) + packed bytes + color
	return d.cur.Skip(24 + 4 + 4)
}

// skipShadowMap consumes an optional SHMP block.
func (d *decoder) skipShadowMap() {
	if !d.peekIs(ChunkSHMP) {
		return
	}
	_, _ = d.cur.ReadChunkID()
	size, err := d.cur.ReadI32()
	if err != nil {
		d.warnf("shadow map size: %v", err)
		return
	}
	if size < 0 || size >= shadowMapEnvelope {
		d.warnf("shadow map size %d at offset %d out of range", size, d.cur.Pos())
		return
	}
	if err := d.cur.Skip(int(size)); err != nil {
		d.warnf("shadow map: %v", err)
	}
}

// skipPortalLinks consumes a PSLS/PSLE pair. The payload is adjacency
// metadata between sectors, opaque to this decoder.
func (d *decoder) skipPortalLinks() error {
	if err := d.cur.ExpectChunkID(ChunkPSLS); err != nil {
		return err
	}
	if _, err := d.cur.ReadI32(); err != nil { // version
		return fmt.Errorf("version: %w", err)
	}
	size, err := d.cur.ReadI32()
	if err != nil {
		return fmt.Errorf("payload size: %w", err)
	}
	if err := d.skipSpan(int(size), size, portalLinksEnvelope); err != nil {
		return err
	}
	return d.cur.ExpectChunkID(ChunkPSLE)
}

// skipSpan advances past a sized span whose announcing field must lie
// strictly inside (0, envelope) and within the remaining buffer. Outside
// those bounds the cursor is left in place.
func (d *decoder) skipSpan(bytes int, field, envelope int32) error {
	if field <= 0 || field >= envelope {
		return fmt.Errorf("size %d at offset %d: %w", field, d.cur.Pos(), ErrMalformed)
	}
	if bytes > d.cur.Remaining() {
		return fmt.Errorf("size %d exceeds %d remaining bytes: %w", bytes, d.cur.Remaining(), ErrMalformed)
	}
	return d.cur.Skip(bytes)
}

// skipTerrainArchive consumes a TRAR block. Heightmaps and edge masks are
// skipped; after each entry the cursor byte-steps forward to the next
// recognizable identifier because terrain payloads are not self-terminating.
func (d *decoder) skipTerrainArchive() error {
	if err := d.cur.ExpectChunkID(ChunkTRAR); err != nil {
		return err
	}
	count, err := d.cur.ReadI32()
	if err != nil {
		return fmt.Errorf("terrain count: %w", err)
	}
	if count < 0 {
		return fmt.Errorf("terrain count %d: %w", count, ErrMalformed)
	}
	d.logf(LevelInfo, "terrain archive: %d terrains (skipped)", count)

	for i := int32(0); i < count; i++ {
		if err := d.skipTerrain(); err != nil {
			return fmt.Errorf("terrain %d: %w", i, err)
		}
	}
	if d.peekIs(ChunkEOTA) {
		_, _ = d.cur.ReadChunkID()
	}
	return nil
}

func (d *decoder) skipTerrain() error {
	if err := d.cur.ExpectChunkID(ChunkTRRN); err != nil {
		return err
	}
	if _, err := d.cur.ReadI32(); err != nil { // version
		return fmt.Errorf("version: %w", err)
	}
	length, err := d.cur.ReadI32()
	if err != nil {
		return fmt.Errorf("name length: %w", err)
	}
	if length > 0 && length < 1000 {
		if _, err := d.cur.ReadString(int(length)); err != nil {
			return fmt.Errorf("name: %w", err)
		}
	}
	if err := d.cur.Skip(8); err != nil { // flags + pad
		return fmt.Errorf("flags: %w", err)
	}
	sizeX, err := d.cur.ReadI32()
	if err != nil {
		return fmt.Errorf("size x: %w", err)
	}
	sizeY, err := d.cur.ReadI32()
	if err != nil {
		return fmt.Errorf("size y: %w", err)
	}
	if sizeX < 0 || sizeY < 0 {
		return fmt.Errorf("grid %dx%d: %w", sizeX, sizeY, ErrMalformed)
	}
	cells := int(sizeX) * int(sizeY)
	if err := d.cur.Skip(cells * 2); err != nil { // heightmap, 16-bit per cell
		return fmt.Errorf("heightmap: %w", err)
	}
	if err := d.cur.Skip(cells); err != nil { // edge mask
		return fmt.Errorf("edge mask: %w", err)
	}

	// Realign on the next recognizable identifier; terrain entries carry
	// trailing data this decoder does not model.
	for {
		id, err := d.cur.PeekChunkID()
		if err != nil {
			d.cur.SetPos(d.cur.Size())
			break
		}
		if id == ChunkTREN || id == ChunkTRRN || id == ChunkEOTA || id == ChunkDPOS {
			break
		}
		d.cur.SetPos(d.cur.Pos() + 1)
	}
	if d.peekIs(ChunkTREN) {
		_, _ = d.cur.ReadChunkID()
	}
	return nil
}

// capFor bounds a preallocation by what the remaining buffer could actually
// hold, so a hostile count cannot force a huge allocation before the first
// element read fails.
func capFor(count, width int, c *Cursor) int {
	if max := c.Remaining() / width; count > max {
		return max
	}
	return count
}
