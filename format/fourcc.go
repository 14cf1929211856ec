package format

// FourCC is a four-character chunk identifier. It is compared by exact byte
// equality; non-printable bytes are preserved as read from the file.
type FourCC [4]byte

// fourCC builds a FourCC from a string literal, space-padding short inputs.
func fourCC(s string) FourCC {
	id := FourCC{' ', ' ', ' ', ' '}
	copy(id[:], s)
	return id
}

// String renders the identifier as a 4-character string.
func (id FourCC) String() string {
	return string(id[:])
}

// Chunk identifiers recognized by the decoder. ChunkBSC carries a literal
// trailing space; it must never be trimmed.
var (
	ChunkBUIV = fourCC("BUIV")
	ChunkVERC = fourCC("VERC")
	ChunkWRLD = fourCC("WRLD")
	ChunkWLIF = fourCC("WLIF")
	ChunkDTRS = fourCC("DTRS")
	ChunkDIMP = fourCC("DIMP")
	ChunkDPOS = fourCC("DPOS")
	ChunkDICT = fourCC("DICT")
	ChunkDEND = fourCC("DEND")
	ChunkBRAR = fourCC("BRAR")
	ChunkBR3D = fourCC("BR3D")
	ChunkBRMP = fourCC("BRMP")
	ChunkBREN = fourCC("BREN")
	ChunkBSC  = fourCC("BSC ")
	ChunkVTXs = fourCC("VTXs")
	ChunkPLNs = fourCC("PLNs")
	ChunkEDGs = fourCC("EDGs")
	ChunkBPOs = fourCC("BPOs")
	ChunkBSP0 = fourCC("BSP0")
	ChunkSHMP = fourCC("SHMP")
	ChunkPSLS = fourCC("PSLS")
	ChunkPSLE = fourCC("PSLE")
	ChunkEOAR = fourCC("EOAR")
	ChunkTRAR = fourCC("TRAR")
	ChunkTRRN = fourCC("TRRN")
	ChunkTREN = fourCC("TREN")
	ChunkEOTA = fourCC("EOTA")
	ChunkWSTA = fourCC("WSTA")
	ChunkWEND = fourCC("WEND")
)
