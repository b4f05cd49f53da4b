package section

// offsets and sizes of the decoded save header
const (
	HeaderSize     = 16 // fixed decoded header size in bytes
	KeyInfoOffset  = 0  // key info word, passed through the transform unchanged
	MarkerOffset   = 4  // format marker word
	DataSizeOffset = 8  // data size word
	ChecksumOffset = 12 // checksum word
	PayloadOffset  = HeaderSize

	// MarkerValue is the decoded value of the marker word in either byte order.
	MarkerValue = 1
)

// container sizes
const (
	// GameDataSize is the size of the gamedata.bin container.
	GameDataSize = 359984
)

// KnownSizes lists every container size recognized without extra configuration.
var KnownSizes = []int{GameDataSize}
