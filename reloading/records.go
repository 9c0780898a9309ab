// Package reloading defines the records kept in a cartridge reloading logbook.
//
// Records are plain row shapes. They describe their table layout through the
// Record interface so the store can build statements for them and map rows
// back into them.
package reloading

// Record is implemented by pointers to every logbook record.
type Record interface {
	// Table returns the table the record is stored in.
	Table() string
	// Columns returns the column names, key column first.
	Columns() []string
	// Values returns the column values in Columns order.
	Values() []any
	// Dest returns scan destinations in Columns order.
	Dest() []any
	// ID returns the key value.
	ID() int64
}

// Table names.
const (
	TableCasing        = "casing"
	TableProjectile    = "projectile"
	TablePowder        = "powder"
	TableLoad          = "load"
	TableBallisticTest = "ballistic_test"
)

// Tables lists every table in dependency order: a table only references
// tables listed before it.
var Tables = []string{TableCasing, TablePowder, TableProjectile, TableLoad, TableBallisticTest}

// Casing is a cartridge case specification.
type Casing struct {
	CasingID   int64   `json:"casing_id" yaml:"casing_id" msgpack:"casing_id"`
	Name       string  `json:"name" yaml:"name" msgpack:"name"`
	PrimerSize string  `json:"primer_size" yaml:"primer_size" msgpack:"primer_size"`
	CaseType   string  `json:"case_type" yaml:"case_type" msgpack:"case_type"`
	MaxPSI     float64 `json:"max_psi" yaml:"max_psi" msgpack:"max_psi"`
	MaxCUP     float64 `json:"max_cup" yaml:"max_cup" msgpack:"max_cup"`
}

// Table returns "casing".
func (*Casing) Table() string { return TableCasing }

// Columns returns the casing columns, casing_id first.
func (*Casing) Columns() []string {
	return []string{"casing_id", "name", "primer_size", "case_type", "max_psi", "max_cup"}
}

// Values returns the column values of Casing in Columns order.
func (c *Casing) Values() []any {
	return []any{c.CasingID, c.Name, c.PrimerSize, c.CaseType, c.MaxPSI, c.MaxCUP}
}

// Dest returns pointers to the fields of Casing for scanning a row.
func (c *Casing) Dest() []any {
	return []any{&c.CasingID, &c.Name, &c.PrimerSize, &c.CaseType, &c.MaxPSI, &c.MaxCUP}
}

// ID returns the casing_id key.
func (c *Casing) ID() int64 { return c.CasingID }

// Projectile is a bullet specification.
type Projectile struct {
	ProjectileID     int64   `json:"projectile_id" yaml:"projectile_id" msgpack:"projectile_id"`
	CasingID         int64   `json:"casing_id" yaml:"casing_id" msgpack:"casing_id"`
	Manufacturer     string  `json:"manufacturer" yaml:"manufacturer" msgpack:"manufacturer"`
	Diameter         float64 `json:"diameter" yaml:"diameter" msgpack:"diameter"`
	Weight           float64 `json:"weight" yaml:"weight" msgpack:"weight"`
	ProjectileType   string  `json:"projectile_type" yaml:"projectile_type" msgpack:"projectile_type"`
	Length           float64 `json:"length" yaml:"length" msgpack:"length"`
	SectionalDensity float64 `json:"sectional_density" yaml:"sectional_density" msgpack:"sectional_density"`
}

// Table returns "projectile".
func (*Projectile) Table() string { return TableProjectile }

// Columns returns the projectile columns, projectile_id first.
func (*Projectile) Columns() []string {
	return []string{
		"projectile_id", "casing_id", "manufacturer", "diameter",
		"weight", "projectile_type", "length", "sectional_density",
	}
}

// Values returns the column values of Projectile in Columns order.
func (p *Projectile) Values() []any {
	return []any{
		p.ProjectileID, p.CasingID, p.Manufacturer, p.Diameter,
		p.Weight, p.ProjectileType, p.Length, p.SectionalDensity,
	}
}

// Dest returns pointers to the fields of Projectile for scanning a row.
func (p *Projectile) Dest() []any {
	return []any{
		&p.ProjectileID, &p.CasingID, &p.Manufacturer, &p.Diameter,
		&p.Weight, &p.ProjectileType, &p.Length, &p.SectionalDensity,
	}
}

// ID returns the projectile_id key.
func (p *Projectile) ID() int64 { return p.ProjectileID }

// Powder is a propellant.
type Powder struct {
	PowderID     int64  `json:"powder_id" yaml:"powder_id" msgpack:"powder_id"`
	Manufacturer string `json:"manufacturer" yaml:"manufacturer" msgpack:"manufacturer"`
	PowderType   string `json:"powder_type" yaml:"powder_type" msgpack:"powder_type"`
}

// Table returns "powder".
func (*Powder) Table() string { return TablePowder }

// Columns returns the powder columns, powder_id first.
func (*Powder) Columns() []string { return []string{"powder_id", "manufacturer", "powder_type"} }

// Values returns the column values of Powder in Columns order.
func (p *Powder) Values() []any { return []any{p.PowderID, p.Manufacturer, p.PowderType} }

// Dest returns pointers to the fields of Powder for scanning a row.
func (p *Powder) Dest() []any { return []any{&p.PowderID, &p.Manufacturer, &p.PowderType} }

// ID returns the powder_id key.
func (p *Powder) ID() int64 { return p.PowderID }

// Load is one recipe: a casing, projectile and powder charge put together.
type Load struct {
	LoadID                 int64   `json:"load_id" yaml:"load_id" msgpack:"load_id"`
	PowderID               int64   `json:"powder_id" yaml:"powder_id" msgpack:"powder_id"`
	CasingID               int64   `json:"casing_id" yaml:"casing_id" msgpack:"casing_id"`
	ProjectileID           int64   `json:"projectile_id" yaml:"projectile_id" msgpack:"projectile_id"`
	PowderWeight           float64 `json:"powder_weight" yaml:"powder_weight" msgpack:"powder_weight"`
	PrimerMake             string  `json:"primer_make" yaml:"primer_make" msgpack:"primer_make"`
	PrimerLot              string  `json:"primer_lot" yaml:"primer_lot" msgpack:"primer_lot"`
	Headstamp              string  `json:"headstamp" yaml:"headstamp" msgpack:"headstamp"`
	BrassLot               string  `json:"brass_lot" yaml:"brass_lot" msgpack:"brass_lot"`
	TrimToLength           float64 `json:"trim_to_length" yaml:"trim_to_length" msgpack:"trim_to_length"`
	CartridgeOverallLength float64 `json:"cartridge_overall_length" yaml:"cartridge_overall_length" msgpack:"cartridge_overall_length"`
	CrimpDiameter          float64 `json:"crimp_diameter" yaml:"crimp_diameter" msgpack:"crimp_diameter"`
}

// Table returns "load".
func (*Load) Table() string { return TableLoad }

// Columns returns the load columns, load_id first.
func (*Load) Columns() []string {
	return []string{
		"load_id", "powder_id", "casing_id", "projectile_id", "powder_weight",
		"primer_make", "primer_lot", "headstamp", "brass_lot",
		"trim_to_length", "cartridge_overall_length", "crimp_diameter",
	}
}

// Values returns the column values of Load in Columns order.
func (l *Load) Values() []any {
	return []any{
		l.LoadID, l.PowderID, l.CasingID, l.ProjectileID, l.PowderWeight,
		l.PrimerMake, l.PrimerLot, l.Headstamp, l.BrassLot,
		l.TrimToLength, l.CartridgeOverallLength, l.CrimpDiameter,
	}
}

// Dest returns pointers to the fields of Load for scanning a row.
func (l *Load) Dest() []any {
	return []any{
		&l.LoadID, &l.PowderID, &l.CasingID, &l.ProjectileID, &l.PowderWeight,
		&l.PrimerMake, &l.PrimerLot, &l.Headstamp, &l.BrassLot,
		&l.TrimToLength, &l.CartridgeOverallLength, &l.CrimpDiameter,
	}
}

// ID returns the load_id key.
func (l *Load) ID() int64 { return l.LoadID }

// BallisticTest records the conditions of one range session with a load.
type BallisticTest struct {
	TestID           int64   `json:"test_id" yaml:"test_id" msgpack:"test_id"`
	LoadID           int64   `json:"load_id" yaml:"load_id" msgpack:"load_id"`
	AirPressure      float64 `json:"air_pressure" yaml:"air_pressure" msgpack:"air_pressure"`
	Altitude         float64 `json:"altitude" yaml:"altitude" msgpack:"altitude"`
	AirTemperature   float64 `json:"air_temperature" yaml:"air_temperature" msgpack:"air_temperature"`
	WindSpeed        float64 `json:"wind_speed" yaml:"wind_speed" msgpack:"wind_speed"`
	WindDirection    string  `json:"wind_direction" yaml:"wind_direction" msgpack:"wind_direction"`
	BarrelLength     float64 `json:"barrel_length" yaml:"barrel_length" msgpack:"barrel_length"`
	TwistRate        float64 `json:"twist_rate" yaml:"twist_rate" msgpack:"twist_rate"`
	DistanceToTarget float64 `json:"distance_to_target" yaml:"distance_to_target" msgpack:"distance_to_target"`
	Date             string  `json:"date" yaml:"date" msgpack:"date"`
}

// Table returns "ballistic_test".
func (*BallisticTest) Table() string { return TableBallisticTest }

// Columns returns the ballistic_test columns, test_id first.
func (*BallisticTest) Columns() []string {
	return []string{
		"test_id", "load_id", "air_pressure", "altitude", "air_temperature",
		"wind_speed", "wind_direction", "barrel_length", "twist_rate",
		"distance_to_target", "date",
	}
}

// Values returns the column values of BallisticTest in Columns order.
func (b *BallisticTest) Values() []any {
	return []any{
		b.TestID, b.LoadID, b.AirPressure, b.Altitude, b.AirTemperature,
		b.WindSpeed, b.WindDirection, b.BarrelLength, b.TwistRate,
		b.DistanceToTarget, b.Date,
	}
}

// Dest returns pointers to the fields of BallisticTest for scanning a row.
func (b *BallisticTest) Dest() []any {
	return []any{
		&b.TestID, &b.LoadID, &b.AirPressure, &b.Altitude, &b.AirTemperature,
		&b.WindSpeed, &b.WindDirection, &b.BarrelLength, &b.TwistRate,
		&b.DistanceToTarget, &b.Date,
	}
}

// ID returns the test_id key.
func (b *BallisticTest) ID() int64 { return b.TestID }

var (
	_ Record = (*Casing)(nil)
	_ Record = (*Projectile)(nil)
	_ Record = (*Powder)(nil)
	_ Record = (*Load)(nil)
	_ Record = (*BallisticTest)(nil)
)
