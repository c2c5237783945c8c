package scatter

import "text/template"

// sectionRule frames the comment banners of a scatter file.
const sectionRule = "############################################################################################################"

// headerTemplate renders the general settings block and the layout banner.
// The space after "info:" is part of the format.
const headerTemplate = sectionRule + "\n" +
	"#\n" +
	"#  General Setting\n" +
	"#\n" +
	sectionRule + "\n" +
	"- general: MTK_PLATFORM_CFG\n" +
	"  info: \n" +
	"    - config_version: {{.ConfigVersion}}\n" +
	"      platform: {{.Platform}}\n" +
	"      project: {{.Project}}\n" +
	"      storage: " + StorageName + "\n" +
	"      boot_channel: {{.BootChannel}}\n" +
	"      block_size: {{.BlockSize}}\n" +
	sectionRule + "\n" +
	"#\n" +
	"#  " + StorageName + " Layout Setting\n" +
	"#\n" +
	sectionRule + "\n"

// recordTemplate renders one partition record without a trailing newline.
const recordTemplate = `- partition_index: SYS{{.Index}}
  partition_name: {{.Name}}
  file_name: {{.FileName}}
  is_download: {{.IsDownload}}
  type: {{.Type}}
  linear_start_addr: {{.StartAddr}}
  physical_start_addr: {{.StartAddr}}
  partition_size: {{.Size}}
  region: {{.Region}}
  storage: {{.Storage}}
  boundary_check: {{.BoundaryCheck}}
  is_reserved: {{.IsReserved}}
  operation_type: {{.OperationType}}
  is_upgradable: {{.IsUpgradable}}
  empty_boot_needed: {{.EmptyBootNeeded}}
  combo_partsize_check: {{.ComboPartsizeCheck}}
  reserve: {{.Reserve}}`

var (
	headerTmpl = template.Must(template.New("header").Parse(headerTemplate))
	recordTmpl = template.Must(template.New("record").Parse(recordTemplate))
)
