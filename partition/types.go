package partition

// OperationType tells the flashing tool how a partition is treated.
type OperationType string

// Operation types used in scatter records.
const (
	// OpBinRegion marks calibration data kept in a binary region (nvram)
	OpBinRegion OperationType = "BINREGION"

	// OpInvisible marks partitions the tool never shows or writes
	OpInvisible OperationType = "INVISIBLE"

	// OpProtected marks partitions preserved across a firmware upgrade
	OpProtected OperationType = "PROTECTED"

	// OpReserved marks partitions reserved by the platform
	OpReserved OperationType = "RESERVED"

	// OpUpdate marks regular partitions updated by a firmware download
	OpUpdate OperationType = "UPDATE"

	// OpBootloaders marks the boot region holding the preloader
	OpBootloaders OperationType = "BOOTLOADERS"
)

// ImageType is the storage image type of a partition.
type ImageType string

// Image types used in scatter records.
const (
	// TypeExt4 is an ext4 filesystem image
	TypeExt4 ImageType = "EXT4_IMG"

	// TypeNormalROM is a raw image
	TypeNormalROM ImageType = "NORMAL_ROM"

	// TypeBootloader is the signed preloader binary
	TypeBootloader ImageType = "SV5_BL_BIN"
)

// NoFile is the file name used for partitions without a backing image.
const NoFile = "NONE"

// Attributes contains every name-derived attribute of a scatter record.
type Attributes struct {
	// Name is the partition name as given
	Name string

	// OperationType is the result of Operation
	OperationType OperationType

	// Type is the result of StorageType
	Type ImageType

	// FileName is the result of FileName
	FileName string

	// IsDownload is the result of IsDownload
	IsDownload bool

	// IsUpgradable is the result of IsUpgradable
	IsUpgradable bool

	// EmptyBootNeeded is the result of NeedsEmptyBoot
	EmptyBootNeeded bool

	// IsReserved is true when OperationType is OpReserved
	IsReserved bool
}
