// Command mtkscatter generates a MediaTek MT6765 scatter file from a GPT table listing.
//
// Usage:
//
//	mtkscatter                      # type the table, finish with an empty line
//	mtkscatter -i gpt.txt -o out.txt
//	mtkscatter classify boot_a boot_b userdata
//	mtkscatter profile k65.yaml
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
