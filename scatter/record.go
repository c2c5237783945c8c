package scatter

import (
	"github.com/moffa90/go-mtkscatter/partition"
)

// Layout constants shared by every record of an eMMC scatter file.
const (
	// StorageName is the storage kind named in the general settings block
	StorageName = "EMMC"

	// StorageEMMC is the storage tag of every record
	StorageEMMC = "HW_STORAGE_EMMC"

	// RegionUser is the eMMC user data area
	RegionUser = "EMMC_USER"

	// RegionBoot is the eMMC boot partition pair holding the preloader
	RegionBoot = "EMMC_BOOT1_BOOT2"

	// ReserveByte is the value of the reserve field
	ReserveByte = "0x00"

	// FirstEntryIndex is the index of the first table entry; SYS0 and SYS1 are fixed
	FirstEntryIndex = 2
)

// Addresses and sizes of the fixed records.
const (
	PreloaderSize = "0x40000"
	PGPTSize      = "0x8000"
	SGPTStartAddr = "0xFFFF0000"
	SGPTSize      = "0x8000"
)

// Record is one partition block of a scatter file.
type Record struct {
	// Index is rendered as SYS<Index>
	Index int

	Name     string
	FileName string

	IsDownload bool
	Type       partition.ImageType

	// StartAddr is used for both the linear and the physical start address
	StartAddr string
	Size      string

	Region  string
	Storage string

	BoundaryCheck bool
	IsReserved    bool

	OperationType partition.OperationType

	IsUpgradable       bool
	EmptyBootNeeded    bool
	ComboPartsizeCheck bool

	Reserve string
}

// NewRecord builds the record of a table partition from its classification.
// startAddr and size must already be normalized hex literals.
func NewRecord(index int, name, startAddr, size string) Record {
	attrs := partition.Classify(name)
	return Record{
		Index:           index,
		Name:            name,
		FileName:        attrs.FileName,
		IsDownload:      attrs.IsDownload,
		Type:            attrs.Type,
		StartAddr:       startAddr,
		Size:            size,
		Region:          RegionUser,
		Storage:         StorageEMMC,
		BoundaryCheck:   true,
		IsReserved:      attrs.IsReserved,
		OperationType:   attrs.OperationType,
		IsUpgradable:    attrs.IsUpgradable,
		EmptyBootNeeded: attrs.EmptyBootNeeded,
		Reserve:         ReserveByte,
	}
}

// PreloaderRecord returns the fixed SYS0 record of the boot region.
func PreloaderRecord() Record {
	return Record{
		Index:         0,
		Name:          "preloader",
		FileName:      "preloader.bin",
		IsDownload:    true,
		Type:          partition.TypeBootloader,
		StartAddr:     "0x0",
		Size:          PreloaderSize,
		Region:        RegionBoot,
		Storage:       StorageEMMC,
		BoundaryCheck: true,
		OperationType: partition.OpBootloaders,
		IsUpgradable:  true,
		Reserve:       ReserveByte,
	}
}

// PGPTRecord returns the fixed SYS1 record of the primary GPT.
func PGPTRecord() Record {
	return Record{
		Index:         1,
		Name:          "pgpt",
		FileName:      partition.NoFile,
		Type:          partition.TypeNormalROM,
		StartAddr:     "0x0",
		Size:          PGPTSize,
		Region:        RegionUser,
		Storage:       StorageEMMC,
		BoundaryCheck: true,
		OperationType: partition.OpInvisible,
		Reserve:       ReserveByte,
	}
}

// SGPTRecord returns the trailing record of the secondary GPT at the given index.
// Its start address is a sentinel the flashing tool resolves to the end of the device.
func SGPTRecord(index int) Record {
	return Record{
		Index:         index,
		Name:          "sgpt",
		FileName:      partition.NoFile,
		Type:          partition.TypeNormalROM,
		StartAddr:     SGPTStartAddr,
		Size:          SGPTSize,
		Region:        RegionUser,
		Storage:       StorageEMMC,
		IsReserved:    true,
		OperationType: partition.OpReserved,
		Reserve:       ReserveByte,
	}
}
