// Package data embeds partner feed fixtures used by the provider adapters.
package data

import _ "embed"

//go:embed skyway.json
var SkywayData []byte

//go:embed nestico.json
var NesticoData []byte

//go:embed gearup.json
var GearupData []byte
