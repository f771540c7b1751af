// Package document holds the ordered configuration tree that validation
// walks, and decodes it from YAML or JSONC source.
//
// Go maps lose insertion order, and duplicate keys must survive decoding so
// they can be reported, so mappings are kept as ordered entry lists.
//
// Home Assistant include tags decode to Include nodes rather than being
// followed:
//
//	sensors: !include_dir_named sensors/
//	panels:
//	  house: !include alarm_house.yaml
//
// !secret, !env_var and !input scalars decode to opaque strings.
package document
