package data

import _ "embed"

//go:embed offers.json
var Offers []byte
