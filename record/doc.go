// Package record decodes typed values from fixed offsets of a decoded save buffer.
//
// Every decoder is a pure function over the decoded buffer (or a slice of it) and
// returns a *errs.FieldDecodeError when the input is shorter than the record; a
// record is never partially decoded. All multi-byte integers inside the payload are
// big-endian regardless of the edition that wrote the container.
//
// # Records
//
//	Offset   | Size  | Record
//	---------|-------|------------------------------------------------
//	0x000058 | 1404  | Character block (name, level, class)
//	0x02F0EC | 1200  | Probe inventory, 100 slots of 12 bytes
//	0x032658 | 0x44  | Found location flags
//	0x039178 | 8     | BLADE level and division
//	0x045D64 | 4     | Saved time, packed 6/9/5/6/6 bits
//	0x045E40 | 4     | Game timer, packed 20/6/6 bits
//	0x0480C4 | 330   | FrontierNav sites, 110 entries of 3 bytes
//
// Packed integers are described by a BitLayout, most significant field first:
//
//	fields := GameTimerLayout.Unpack(0xB0F68) // [176, 61, 40]
//
// Lookup tables (classes, divisions, probe types and sites) never fail: an unknown
// id maps to a default entry.
package record
