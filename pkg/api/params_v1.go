// pkg/api/params_v1.go
package api

// ParameterV1 is the stable JSON schema for one named fit parameter.
// Keep fields, names, and types stable. Add new fields only with ",omitempty".
type ParameterV1 struct {
	Name   string  `json:"name"`
	Value  float64 `json:"value"`
	Stderr float64 `json:"stderr,omitempty"`
	Vary   bool    `json:"vary"`
	Expr   string  `json:"expr,omitempty"`
}

// ComponentRowV1 is the stable schema for one velocity component regrouped
// from a flat parameter set. Column order mirrors the fit-output text format.
type ComponentRowV1 struct {
	Index   int     `json:"index"`
	Ion     string  `json:"ion"`
	Z       float64 `json:"z"`
	ZErr    float64 `json:"z_err"`
	B       float64 `json:"b"`
	BErr    float64 `json:"b_err"`
	LogN    float64 `json:"logN"`
	LogNErr float64 `json:"logN_err"`
	RF      float64 `json:"rf"`
	RFErr   float64 `json:"rf_err"`
}
