// Package partition classifies MediaTek partitions by name for scatter file generation.
//
// # Overview
//
// Every attribute of a scatter record that is not an address or a size is a pure
// function of the partition name. This package holds those functions together with
// the fixed membership sets they consult.
//
// Names may carry an A/B slot suffix ("_a" or "_b"). Some predicates strip the suffix
// before looking the name up and some do not:
//
//	Operation       unstripped; unknown "_b" names are INVISIBLE
//	StorageType     unstripped ("userdata_a" is NORMAL_ROM)
//	FileName        unstripped set, "_b" names are NONE, stripped name for the .img file
//	IsDownload      stripped, "_b" names are never downloaded
//	IsUpgradable    stripped, no "_b" override
//	NeedsEmptyBoot  stripped, "_b" names never need an empty boot
//
// The flashing tool relies on this exact behavior, so the asymmetry is kept as is.
//
// # Usage
//
//	attrs := partition.Classify("boot_a")
//	fmt.Println(attrs.FileName)      // boot.img
//	fmt.Println(attrs.OperationType) // UPDATE
//	fmt.Println(attrs.IsDownload)    // true
package partition
