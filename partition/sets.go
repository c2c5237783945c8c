package partition

type nameSet map[string]struct{}

func newNameSet(names ...string) nameSet {
	s := make(nameSet, len(names))
	for _, n := range names {
		s[n] = struct{}{}
	}
	return s
}

func (s nameSet) has(name string) bool {
	_, ok := s[name]
	return ok
}

// operationSets is checked in order; the first set containing the name wins.
var operationSets = []struct {
	op    OperationType
	names nameSet
}{
	{OpBinRegion, newNameSet("nvram")},
	{OpInvisible, newNameSet(
		"pgpt", "boot_para", "para", "expdb", "frp",
		"nvdata", "md_udc", "metadata", "seccfg", "sec1",
	)},
	{OpProtected, newNameSet("nvcfg", "protect1", "protect2", "persist", "proinfo")},
	{OpReserved, newNameSet("otp", "flashinfo", "sgpt")},
}

var ext4Names = newNameSet("nvcfg", "nvdata", "protect1", "protect2", "persist", "userdata")

// Partitions written without an image file.
var noFileNames = newNameSet(
	"pgpt", "boot_para", "para", "expdb", "frp",
	"nvcfg", "nvdata", "md_udc", "metadata", "protect1",
	"protect2", "seccfg", "persist", "sec1", "proinfo",
	"nvram", "otp", "flashinfo", "sgpt",
)

var downloadNames = newNameSet(
	"preloader", "logo", "md1img", "spmfw", "scp", "sspm",
	"gz", "lk", "boot", "dtbo", "tee", "vbmeta",
	"vbmeta_system", "vbmeta_vendor", "super", "userdata", "init_boot", "vendor_boot",
)

var upgradableNames = newNameSet(
	"preloader", "md1img", "spmfw", "scp", "sspm", "gz",
	"lk", "boot", "dtbo", "tee", "super", "vbmeta",
	"vbmeta_system", "vbmeta_vendor", "init_boot", "vendor_boot",
)

var emptyBootNames = newNameSet("logo", "lk", "tee")
