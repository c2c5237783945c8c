package partition

import "strings"

// Slot suffixes of A/B partitions.
const (
	SlotSuffixA = "_a"
	SlotSuffixB = "_b"
)

// logoName is the only partition whose image is not an .img file.
const logoName = "logo"

// StripSlotSuffix removes a trailing "_a" or "_b" from name.
// Names without a slot suffix are returned unchanged.
func StripSlotSuffix(name string) string {
	if strings.HasSuffix(name, SlotSuffixA) || strings.HasSuffix(name, SlotSuffixB) {
		return name[:len(name)-2]
	}
	return name
}

func isSlotB(name string) bool {
	return strings.HasSuffix(name, SlotSuffixB)
}

// Operation returns the operation type of the partition.
//
// The name is matched as given against the BINREGION, INVISIBLE, PROTECTED and
// RESERVED sets, in that order. Names in none of them are INVISIBLE when they
// belong to slot B and UPDATE otherwise.
func Operation(name string) OperationType {
	for _, s := range operationSets {
		if s.names.has(name) {
			return s.op
		}
	}
	if isSlotB(name) {
		return OpInvisible
	}
	return OpUpdate
}

// StorageType returns EXT4_IMG for filesystem partitions and NORMAL_ROM for the rest.
// The slot suffix is not stripped.
func StorageType(name string) ImageType {
	if ext4Names.has(name) {
		return TypeExt4
	}
	return TypeNormalROM
}

// FileName returns the image file flashed into the partition, or NONE.
func FileName(name string) string {
	if name == logoName {
		return "logo.bin"
	}
	if isSlotB(name) || noFileNames.has(name) {
		return NoFile
	}
	return StripSlotSuffix(name) + ".img"
}

// IsDownload reports whether the partition is written by a firmware download.
// Slot B partitions are never downloaded.
func IsDownload(name string) bool {
	if isSlotB(name) {
		return false
	}
	return downloadNames.has(StripSlotSuffix(name))
}

// IsUpgradable reports whether the partition is part of a firmware upgrade.
// Unlike IsDownload, slot B names are looked up like any other.
func IsUpgradable(name string) bool {
	return upgradableNames.has(StripSlotSuffix(name))
}

// NeedsEmptyBoot reports whether the partition may be flashed with an empty image.
func NeedsEmptyBoot(name string) bool {
	if isSlotB(name) {
		return false
	}
	return emptyBootNames.has(StripSlotSuffix(name))
}

// IsReserved reports whether the partition's operation type is RESERVED.
func IsReserved(name string) bool {
	return Operation(name) == OpReserved
}

// Classify computes all name-derived attributes of a partition.
func Classify(name string) Attributes {
	op := Operation(name)
	return Attributes{
		Name:            name,
		OperationType:   op,
		Type:            StorageType(name),
		FileName:        FileName(name),
		IsDownload:      IsDownload(name),
		IsUpgradable:    IsUpgradable(name),
		EmptyBootNeeded: NeedsEmptyBoot(name),
		IsReserved:      op == OpReserved,
	}
}
