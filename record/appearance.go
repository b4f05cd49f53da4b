package record

import (
	"math"
)

// AppearanceSize is the size of a packed character appearance record.
const AppearanceSize = 52

// Appearance holds the character creator settings of a player character.
//
// Layout (big-endian):
//
//	0-5    face, hair style, hair addon      3 x uint16
//	6-9    moles, freckles, cheeks, scars    4 x uint8
//	10-17  face paint, eye style, gender     2 x uint16, uint32
//	18-25  voice, skin tone, lips, shadow    4 x uint16
//	26-33  eye colors, hair colors           4 x uint16
//	34-35  padding
//	36-51  height, chest depth/height/width  4 x float32
type Appearance struct {
	Face       uint16
	HairStyle  uint16
	HairAddon  uint16
	Moles      uint8
	Freckles   uint8
	Cheeks     uint8
	Scars      uint8
	FacePaint  uint16
	EyeStyle   uint16
	Gender     uint32
	Voice      uint16
	SkinTone   uint16
	Lips       uint16
	EyeShadow  uint16
	EyeColor1  uint16
	EyeColor2  uint16
	HairColor1 uint16
	HairColor2 uint16

	Height      float32
	ChestDepth  float32
	ChestHeight float32
	ChestWidth  float32
}

// ParseAppearance decodes the first AppearanceSize bytes of b.
func ParseAppearance(b []byte) (Appearance, error) {
	if err := need(b, "appearance", AppearanceSize); err != nil {
		return Appearance{}, err
	}

	return Appearance{
		Face:        be.Uint16(b[0:2]),
		HairStyle:   be.Uint16(b[2:4]),
		HairAddon:   be.Uint16(b[4:6]),
		Moles:       b[6],
		Freckles:    b[7],
		Cheeks:      b[8],
		Scars:       b[9],
		FacePaint:   be.Uint16(b[10:12]),
		EyeStyle:    be.Uint16(b[12:14]),
		Gender:      be.Uint32(b[14:18]),
		Voice:       be.Uint16(b[18:20]),
		SkinTone:    be.Uint16(b[20:22]),
		Lips:        be.Uint16(b[22:24]),
		EyeShadow:   be.Uint16(b[24:26]),
		EyeColor1:   be.Uint16(b[26:28]),
		EyeColor2:   be.Uint16(b[28:30]),
		HairColor1:  be.Uint16(b[30:32]),
		HairColor2:  be.Uint16(b[32:34]),
		Height:      math.Float32frombits(be.Uint32(b[36:40])),
		ChestDepth:  math.Float32frombits(be.Uint32(b[40:44])),
		ChestHeight: math.Float32frombits(be.Uint32(b[44:48])),
		ChestWidth:  math.Float32frombits(be.Uint32(b[48:52])),
	}, nil
}

// ReadAppearance decodes an appearance record at offset of a decoded save buffer.
func ReadAppearance(buf []byte, offset int) (Appearance, error) {
	b, err := span(buf, "appearance", offset, AppearanceSize)
	if err != nil {
		return Appearance{}, err
	}

	return ParseAppearance(b)
}

// Bytes packs the appearance into a new AppearanceSize-byte slice. Padding is zero.
func (a Appearance) Bytes() []byte {
	b := make([]byte, AppearanceSize)
	be.PutUint16(b[0:2], a.Face)
	be.PutUint16(b[2:4], a.HairStyle)
	be.PutUint16(b[4:6], a.HairAddon)
	b[6] = a.Moles
	b[7] = a.Freckles
	b[8] = a.Cheeks
	b[9] = a.Scars
	be.PutUint16(b[10:12], a.FacePaint)
	be.PutUint16(b[12:14], a.EyeStyle)
	be.PutUint32(b[14:18], a.Gender)
	be.PutUint16(b[18:20], a.Voice)
	be.PutUint16(b[20:22], a.SkinTone)
	be.PutUint16(b[22:24], a.Lips)
	be.PutUint16(b[24:26], a.EyeShadow)
	be.PutUint16(b[26:28], a.EyeColor1)
	be.PutUint16(b[28:30], a.EyeColor2)
	be.PutUint16(b[30:32], a.HairColor1)
	be.PutUint16(b[32:34], a.HairColor2)
	be.PutUint32(b[36:40], math.Float32bits(a.Height))
	be.PutUint32(b[40:44], math.Float32bits(a.ChestDepth))
	be.PutUint32(b[44:48], math.Float32bits(a.ChestHeight))
	be.PutUint32(b[48:52], math.Float32bits(a.ChestWidth))

	return b
}
