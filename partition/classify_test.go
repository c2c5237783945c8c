package partition

import "testing"

func TestStripSlotSuffix(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "slot a", in: "boot_a", want: "boot"},
		{name: "slot b", in: "boot_b", want: "boot"},
		{name: "no suffix", in: "boot", want: "boot"},
		{name: "underscore name", in: "vbmeta_system_a", want: "vbmeta_system"},
		{name: "only the last token", in: "boot_a_b", want: "boot_a"},
		{name: "not a slot", in: "boot_ab", want: "boot_ab"},
		{name: "other letter", in: "boot_c", want: "boot_c"},
		{name: "bare suffix", in: "_a", want: ""},
		{name: "empty", in: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := StripSlotSuffix(tt.in)
			if got != tt.want {
				t.Errorf("StripSlotSuffix(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestOperation(t *testing.T) {
	tests := []struct {
		name string
		want OperationType
	}{
		{"nvram", OpBinRegion},
		{"pgpt", OpInvisible},
		{"boot_para", OpInvisible},
		{"md_udc", OpInvisible},
		{"sec1", OpInvisible},
		{"nvcfg", OpProtected},
		{"persist", OpProtected},
		{"proinfo", OpProtected},
		{"otp", OpReserved},
		{"flashinfo", OpReserved},
		{"sgpt", OpReserved},
		{"boot_a", OpUpdate},
		{"boot", OpUpdate},
		{"super", OpUpdate},
		{"userdata", OpUpdate},
		{"boot_b", OpInvisible},
		{"vendor_boot_b", OpInvisible},
		// Set lookups are not slot-agnostic.
		{"nvram_a", OpUpdate},
		{"seccfg_a", OpUpdate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Operation(tt.name); got != tt.want {
				t.Errorf("Operation(%q) = %s, want %s", tt.name, got, tt.want)
			}
		})
	}
}

func TestOperationDefaultsToUpdate(t *testing.T) {
	for _, name := range []string{"cache", "recovery", "logo", "lk_a", "mystery_partition", ""} {
		if got := Operation(name); got != OpUpdate {
			t.Errorf("Operation(%q) = %s, want %s", name, got, OpUpdate)
		}
	}
}

func TestStorageType(t *testing.T) {
	tests := []struct {
		name string
		want ImageType
	}{
		{"nvcfg", TypeExt4},
		{"nvdata", TypeExt4},
		{"protect1", TypeExt4},
		{"protect2", TypeExt4},
		{"persist", TypeExt4},
		{"userdata", TypeExt4},
		{"userdata_a", TypeNormalROM},
		{"boot", TypeNormalROM},
		{"super", TypeNormalROM},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StorageType(tt.name); got != tt.want {
				t.Errorf("StorageType(%q) = %s, want %s", tt.name, got, tt.want)
			}
		})
	}
}

func TestFileName(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"logo", "logo.bin"},
		{"logo_a", "logo.img"},
		{"logo_b", NoFile},
		{"boot_a", "boot.img"},
		{"boot_b", NoFile},
		{"super", "super.img"},
		{"vbmeta_vendor_a", "vbmeta_vendor.img"},
		{"pgpt", NoFile},
		{"nvram", NoFile},
		{"persist", NoFile},
		{"sgpt", NoFile},
		{"userdata", "userdata.img"},
		{"cache", "cache.img"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FileName(tt.name); got != tt.want {
				t.Errorf("FileName(%q) = %q, want %q", tt.name, got, tt.want)
			}
		})
	}
}

func TestIsDownload(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{"preloader", true},
		{"boot_a", true},
		{"boot", true},
		{"vbmeta_system_a", true},
		{"userdata", true},
		{"boot_b", false},
		{"pgpt", false},
		{"cache", false},
		{"nvram", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsDownload(tt.name); got != tt.want {
				t.Errorf("IsDownload(%q) = %v, want %v", tt.name, got, tt.want)
			}
		})
	}
}

func TestIsDownloadSlotBOverride(t *testing.T) {
	for name := range downloadNames {
		if !IsDownload(name) {
			t.Errorf("IsDownload(%q) = false, want true", name)
		}
		if IsDownload(name + SlotSuffixB) {
			t.Errorf("IsDownload(%q) = true, want false", name+SlotSuffixB)
		}
	}
}

func TestIsUpgradable(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{"preloader", true},
		{"boot_a", true},
		{"boot_b", true},
		{"tee_b", true},
		{"logo", false},
		{"userdata", false},
		{"pgpt", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsUpgradable(tt.name); got != tt.want {
				t.Errorf("IsUpgradable(%q) = %v, want %v", tt.name, got, tt.want)
			}
		})
	}
}

func TestNeedsEmptyBoot(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{"logo", true},
		{"lk", true},
		{"lk_a", true},
		{"tee_a", true},
		{"lk_b", false},
		{"tee_b", false},
		{"boot_a", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NeedsEmptyBoot(tt.name); got != tt.want {
				t.Errorf("NeedsEmptyBoot(%q) = %v, want %v", tt.name, got, tt.want)
			}
		})
	}
}

func TestIsReserved(t *testing.T) {
	for _, name := range []string{"otp", "flashinfo", "sgpt"} {
		if !IsReserved(name) {
			t.Errorf("IsReserved(%q) = false, want true", name)
		}
	}
	for _, name := range []string{"otp_a", "boot_b", "nvram", "userdata"} {
		if IsReserved(name) {
			t.Errorf("IsReserved(%q) = true, want false", name)
		}
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		want Attributes
	}{
		{
			name: "boot_a",
			want: Attributes{
				Name:          "boot_a",
				OperationType: OpUpdate,
				Type:          TypeNormalROM,
				FileName:      "boot.img",
				IsDownload:    true,
				IsUpgradable:  true,
			},
		},
		{
			name: "lk_b",
			want: Attributes{
				Name:          "lk_b",
				OperationType: OpInvisible,
				Type:          TypeNormalROM,
				FileName:      NoFile,
				IsUpgradable:  true,
			},
		},
		{
			name: "logo",
			want: Attributes{
				Name:            "logo",
				OperationType:   OpUpdate,
				Type:            TypeNormalROM,
				FileName:        "logo.bin",
				IsDownload:      true,
				EmptyBootNeeded: true,
			},
		},
		{
			name: "flashinfo",
			want: Attributes{
				Name:          "flashinfo",
				OperationType: OpReserved,
				Type:          TypeNormalROM,
				FileName:      NoFile,
				IsReserved:    true,
			},
		},
		{
			name: "nvdata",
			want: Attributes{
				Name:          "nvdata",
				OperationType: OpInvisible,
				Type:          TypeExt4,
				FileName:      NoFile,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(tt.name)
			if got != tt.want {
				t.Errorf("Classify(%q) = %+v, want %+v", tt.name, got, tt.want)
			}
		})
	}
}

func TestClassifyIsDeterministic(t *testing.T) {
	names := []string{"boot_a", "boot_b", "userdata", "nvram", "logo"}
	first := make([]Attributes, len(names))
	for i, n := range names {
		first[i] = Classify(n)
	}
	// Reverse order must not change any result.
	for i := len(names) - 1; i >= 0; i-- {
		if got := Classify(names[i]); got != first[i] {
			t.Errorf("Classify(%q) = %+v on second pass, want %+v", names[i], got, first[i])
		}
	}
}

func BenchmarkClassify(b *testing.B) {
	names := []string{"preloader", "boot_a", "boot_b", "userdata", "nvram", "vbmeta_system_a"}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = Classify(names[i%len(names)])
	}
}
