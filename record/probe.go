package record

import (
	"iter"
	"maps"
	"slices"
)

const (
	// LockedProbeID marks a FrontierNav site that has not been unlocked.
	LockedProbeID = 254
	// probeSlotTag is the third byte of every occupied inventory slot.
	probeSlotTag = 0x80
)

// Probe is a data probe type.
type Probe struct {
	TypeID uint16
	Name   string
	// Code is the short name used by the xenoprobes optimizer, e.g. "M3".
	Code string
	// FrontierNavType is the probe type number used by frontiernav.net.
	FrontierNavType int
}

// ProbeByID returns the probe type with the given id. Unknown ids return a probe
// named "Unknown Probe" with code "??".
func ProbeByID(id uint16) Probe {
	if p, ok := probeTypes[id]; ok {
		return p
	}

	return Probe{TypeID: id, Name: "Unknown Probe", Code: "??"}
}

// IsLocked reports whether p is the placeholder for a locked site.
func (p Probe) IsLocked() bool {
	return p.TypeID == LockedProbeID
}

func (p Probe) String() string {
	return p.Name
}

// ProbeSlot is one occupied slot of the probe inventory.
type ProbeSlot struct {
	TypeID   uint16
	Quantity uint32
}

// ParseProbeSlot decodes a 12-byte inventory slot. The second result is false for
// an empty slot, whose third byte is not 0x80.
func ParseProbeSlot(b []byte) (ProbeSlot, bool, error) {
	if err := need(b, "probe slot", ProbeSlotSize); err != nil {
		return ProbeSlot{}, false, err
	}
	if b[2] != probeSlotTag {
		return ProbeSlot{}, false, nil
	}

	return ProbeSlot{
		TypeID:   be.Uint16(b[0:2]) >> 3,
		Quantity: uint32(be.Uint16(b[2:4])>>3) & 0x1FF,
	}, true, nil
}

// Inventory maps probe type ids to the quantity held.
type Inventory map[uint16]uint32

// ParseProbeInventory aggregates the 100 slots of a 1200-byte probe inventory
// table by probe type. Empty slots are skipped.
func ParseProbeInventory(b []byte) (Inventory, error) {
	if err := need(b, "probe inventory", ProbeInventorySize); err != nil {
		return nil, err
	}

	inv := Inventory{}
	for off := 0; off < ProbeInventorySize; off += ProbeSlotSize {
		slot, ok, err := ParseProbeSlot(b[off : off+ProbeSlotSize])
		if err != nil {
			return nil, err
		}
		if ok {
			inv[slot.TypeID] += slot.Quantity
		}
	}

	return inv, nil
}

// ReadProbeInventory decodes the probe inventory of a decoded save buffer.
func ReadProbeInventory(buf []byte) (Inventory, error) {
	b, err := span(buf, "probe inventory", ProbeInventoryOffset, ProbeInventorySize)
	if err != nil {
		return nil, err
	}

	return ParseProbeInventory(b)
}

// TypeIDs returns the probe type ids held, in ascending order.
func (inv Inventory) TypeIDs() []uint16 {
	return slices.Sorted(maps.Keys(inv))
}

// All iterates probes and quantities in ascending type id order.
func (inv Inventory) All() iter.Seq2[Probe, uint32] {
	return func(yield func(Probe, uint32) bool) {
		for _, id := range inv.TypeIDs() {
			if !yield(ProbeByID(id), inv[id]) {
				return
			}
		}
	}
}

// Total returns the number of probes held across all types.
func (inv Inventory) Total() uint32 {
	var total uint32
	for _, n := range inv {
		total += n
	}

	return total
}
