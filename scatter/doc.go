// Package scatter renders MediaTek flashing-tool scatter files from GPT tables.
//
// # Overview
//
// A scatter file is a YAML-like list of blocks. The first block holds general platform
// settings, each following block describes one partition:
//
//	- partition_index: SYS3
//	  partition_name: boot_a
//	  file_name: boot.img
//	  is_download: true
//	  type: NORMAL_ROM
//	  linear_start_addr: 0x100000
//	  physical_start_addr: 0x100000
//	  partition_size: 0x2000000
//	  ...
//
// Documents always start with a fixed preloader record (SYS0) and a fixed pgpt record
// (SYS1), followed by one record per table entry from SYS2 on, and end with a
// synthetic sgpt record right after the last entry. Everything except addresses and
// sizes comes from package partition.
//
// # Usage
//
// Generate a scatter file from a GPT table:
//
//	gen := scatter.New()
//	data, err := gen.Generate(strings.NewReader(table))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	err = scatter.WriteFile("MT6765_Android_scatter.txt", data, 0o644)
//
// Use a different platform profile and a logger:
//
//	p, _ := config.Load("profile.yaml")
//	gen := scatter.New(
//	    scatter.WithPlatform(p),
//	    scatter.WithLogger(logger),
//	)
//
// # Error Handling
//
// Generation is all or nothing. A malformed table line (*gpt.LineError) or an invalid
// hex literal (*EntryError) fails the whole document, and WriteFile never leaves a
// partially written file behind.
package scatter
