package gasmeter

import "time"

// Report is the full property report for one gas mixture at one operating
// point. Group and field names (and their units) are the wire contract for
// downstream report consumers; do not rename them.
type Report struct {
	InputConditions    InputConditions         `json:"input_conditions"`
	BasicProperties    BasicProperties         `json:"basic_properties"`
	StandardConditions StandardConditions      `json:"standard_conditions"`
	HeatingValues      HeatingValues           `json:"heating_values"`
	CriticalProperties CriticalProperties      `json:"critical_properties"`
	Thermodynamics     ThermodynamicProperties `json:"thermodynamic_properties"`
	Uncertainties      Uncertainties           `json:"uncertainties"`
	Additional         AdditionalProperties    `json:"additional_properties"`
	Compliance         Compliance              `json:"compliance"`
}

// InputConditions echoes the operating point, in both the gauge/Celsius
// units supplied by the caller and the absolute units used internally.
type InputConditions struct {
	PressureBarg    float64            `json:"pressure_barg"`
	PressureBara    float64            `json:"pressure_bara"`
	TemperatureDegC float64            `json:"temperature_degc"`
	TemperatureK    float64            `json:"temperature_k"`
	Composition     map[string]float64 `json:"composition"` // normalized, mol%
}

type BasicProperties struct {
	MolecularWeight       float64 `json:"molecular_weight"` // g/mol
	SpecificGravity       float64 `json:"specific_gravity"` // relative to air
	CompressibilityFactor float64 `json:"compressibility_factor"`
	DensityKgM3           float64 `json:"density_kg_m3"`
	DensityStdKgM3        float64 `json:"density_std_kg_m3"`
}

// StandardConditions holds the results of the second pipeline run at the
// reference state (15 degC, 1.01325 bara).
type StandardConditions struct {
	PressureBara          float64 `json:"pressure_bara"`
	TemperatureK          float64 `json:"temperature_k"`
	CompressibilityFactor float64 `json:"compressibility_factor"`
	DensityKgM3           float64 `json:"density_kg_m3"`
}

type HeatingValues struct {
	HigherHeatingValueMJM3 float64 `json:"higher_heating_value_mj_m3"`
	LowerHeatingValueMJM3  float64 `json:"lower_heating_value_mj_m3"`
	WobbeIndexMJM3         float64 `json:"wobbe_index_mj_m3"`
}

type CriticalProperties struct {
	CriticalTemperatureK float64 `json:"critical_temperature_k"`
	CriticalPressureMPa  float64 `json:"critical_pressure_mpa"`
	CriticalDensityKgM3  float64 `json:"critical_density_kg_m3"`
}

// ThermodynamicProperties uses a constant-gamma model. Joule-Thomson,
// enthalpy and entropy are placeholders pinned to zero until a residual
// Helmholtz formulation is available; they are reported so the schema is
// stable for consumers.
type ThermodynamicProperties struct {
	SpeedOfSoundMS      float64 `json:"speed_of_sound_ms"`
	CpCvRatio           float64 `json:"cp_cv_ratio"`
	JouleThomsonKPerBar float64 `json:"joule_thomson_k_per_bar"` // placeholder: 0
	EnthalpyKJKg        float64 `json:"enthalpy_kj_kg"`          // placeholder: 0
	EntropyKJKgK        float64 `json:"entropy_kj_kg_k"`         // placeholder: 0
}

// Uncertainties are relative (percent) estimates for the headline numbers.
type Uncertainties struct {
	CompressibilityPct float64 `json:"compressibility_factor_pct"`
	DensityPct         float64 `json:"density_pct"`
	MolecularWeightPct float64 `json:"molecular_weight_pct"`
	HeatingValuePct    float64 `json:"heating_value_pct"`
}

type AdditionalProperties struct {
	VolumeFactor       float64 `json:"volume_factor"`
	ReducedTemperature float64 `json:"reduced_temperature"`
	ReducedPressure    float64 `json:"reduced_pressure"`
}

// Compliance records which simplified method variant produced the report.
type Compliance struct {
	Method             string `json:"method"`
	Strategy           string `json:"strategy"`
	StandardConditions string `json:"standard_conditions"`
	FullDetailMethod   bool   `json:"full_detail_method"`
}

// ReportRecord is one persisted calculation: the request that produced it
// plus the assembled report.
type ReportRecord struct {
	ID              string             `json:"id"`
	CreatedAt       time.Time          `json:"created_at"`
	Strategy        string             `json:"strategy"`
	PressureBarg    float64            `json:"pressure_barg"`
	TemperatureDegC float64            `json:"temperature_degc"`
	Composition     map[string]float64 `json:"composition"`
	Report          Report             `json:"report"`
}

type User struct {
	ID           int    `json:"id"`
	Username     string `json:"username"`
	PasswordHash string `json:"-"` // never expose the hash
}
