package regmap

// ECRegisters is a concrete register map for an EtherCAT slave controller's
// ESC register space, adapted from the teacher's flat ecad constant block
// into named, width-tagged entries a shadow table's views can address
// symbolically instead of by raw offset.
var ECRegisters = mustBuildECRegisters()

func mustBuildECRegisters() Map {
	m, err := NewBuilder().
		Add("Type", 0x0000, 1).
		Add("Revision", 0x0001, 1).
		Add("Build", 0x0002, 2).
		Add("FMMUsSupported", 0x0004, 1).
		Add("RAMSize", 0x0006, 1).
		Add("PortDescriptor", 0x0007, 1).
		Add("ESCFeaturesSupported", 0x0008, 2).
		Add("ConfiguredStationAddress", 0x0010, 2).
		Add("ConfiguredStationAlias", 0x0012, 2).
		Add("DLControl", 0x0100, 4).
		Add("DLStatus", 0x0110, 2).
		Add("ALControl", 0x0120, 2).
		Add("ALStatus", 0x0130, 2).
		Add("ALStatusCode", 0x0134, 2).
		Add("PDIControl", 0x0140, 1).
		Add("ECATEventMask", 0x0200, 2).
		Add("EEPROMConfiguration", 0x0500, 1).
		Add("EEPROMPDIAccessState", 0x0501, 1).
		Add("EEPROMControlStatus", 0x0502, 2).
		Add("EEPROMAddress", 0x0504, 4).
		Add("EEPROMData", 0x0508, 8).
		Add("FMMU0", 0x0600, 16).
		Add("SyncManager0", 0x0800, 8).
		Add("SyncManager1", 0x0808, 8).
		Build(0x0900)
	if err != nil {
		panic("regmap: built-in EtherCAT register map is invalid: " + err.Error())
	}
	return m
}

// SyncManagerChannelLen is the byte stride between successive sync manager
// channels in the ESC register space.
const SyncManagerChannelLen = 0x08

// Sync manager channel field offsets, relative to a channel's base address
// (e.g. ECRegisters.MustOffset("SyncManager0")).
const (
	SyncManagerPhysStartAddrOffset = 0x00
	SyncManagerLengthOffset        = 0x02
	SyncManagerControlOffset       = 0x04
	SyncManagerStatusOffset        = 0x05
	SyncManagerActivateOffset      = 0x06
	SyncManagerPDIControlOffset    = 0x07
)
