// internal/catalog/coil.go
package catalog

// Coils: binary status and control bits (FC1/FC5).
var coilRegisters = []Descriptor{
	{
		Address: 0, Bank: Coil,
		Name:        "System Enable",
		Description: "Master system enable/disable",
		Scale:       1, Writable: true,
	},
	{
		Address: 1, Bank: Coil,
		Name:        "Heating Enable",
		Description: "Heating function enable/disable",
		Scale:       1, Writable: true,
	},
	{
		Address: 2, Bank: Coil,
		Name:        "Cooling Enable",
		Description: "Cooling function enable/disable",
		Scale:       1, Writable: true,
		Capability: CapCooling,
	},
	{
		Address: 3, Bank: Coil,
		Name:        "DHW Enable",
		Description: "DHW heating enable/disable",
		Scale:       1, Writable: true,
		Capability: CapDHW,
	},
	{
		Address: 4, Bank: Coil,
		Name:        "Weather Compensation Enable",
		Description: "Weather compensation enable/disable",
		Scale:       1, Writable: true,
	},
	{
		Address: 5, Bank: Coil,
		Name:        "Eco Mode Enable",
		Description: "Eco mode enable/disable",
		Scale:       1, Writable: true,
	},
	{
		Address: 6, Bank: Coil,
		Name:        "Boost Mode Enable",
		Description: "Boost mode enable/disable",
		Scale:       1, Writable: true,
	},
	{
		Address: 7, Bank: Coil,
		Name:        "Holiday Mode Enable",
		Description: "Holiday mode enable/disable",
		Scale:       1, Writable: true,
	},
	{
		Address: 8, Bank: Coil,
		Name:        "Quiet Mode Enable",
		Description: "Quiet mode enable/disable",
		Scale:       1, Writable: true,
	},
	{
		Address: 9, Bank: Coil,
		Name:        "Frost Protection Enable",
		Description: "Frost protection enable/disable",
		Scale:       1, Writable: true,
	},
}
