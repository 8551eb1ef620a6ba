// internal/catalog/input.go
package catalog

// Input registers: sensor readings, read-only (FC4).
// Addresses and scales follow the vendor Modbus map; monitor display
// numbers (d0..d9) are kept in the descriptions for cross-reference
// against the controller's service menu.
var inputRegisters = []Descriptor{
	{
		Address: 0, Bank: Input,
		Name:        "Return Water Temperature",
		Description: "Return water temperature (monitor display No.d0)",
		Unit:        "°C", Scale: 1, Signed: true,
	},
	{
		Address: 1, Bank: Input,
		Name:        "Compressor Operating Frequency",
		Description: "Compressor operating frequency (monitor display No.d1)",
		Unit:        "Hz", Scale: 1,
	},
	{
		Address: 2, Bank: Input,
		Name:        "Discharge Temperature",
		Description: "Discharge temperature (monitor display No.d2)",
		Unit:        "°C", Scale: 1, Signed: true,
	},
	{
		Address: 3, Bank: Input,
		Name:        "Current Consumption Value",
		Description: "Current consumption value (monitor display No.d3)",
		Unit:        "W", Scale: 100,
	},
	{
		Address: 4, Bank: Input,
		Name:        "Fan Control Rotation",
		Description: "Fan control number of rotation",
		Unit:        "rpm", Scale: 10,
	},
	{
		Address: 5, Bank: Input,
		Name:        "Defrost Temperature",
		Description: "Defrost temperature (monitor display No.d5)",
		Unit:        "°C", Scale: 1, Signed: true,
	},
	{
		Address: 6, Bank: Input,
		Name:        "Outdoor Air Temperature",
		Description: "Outdoor air temperature (monitor display No.d6)",
		Unit:        "°C", Scale: 1, Signed: true,
	},
	{
		Address: 7, Bank: Input,
		Name:        "Water Pump Control Rotation",
		Description: "Water pump control number of rotation (monitor display No.d7)",
		Unit:        "rpm", Scale: 100,
	},
	{
		Address: 8, Bank: Input,
		Name:        "Suction Temperature",
		Description: "Suction temperature (monitor display No.d8)",
		Unit:        "°C", Scale: 1, Signed: true,
	},
	{
		Address: 9, Bank: Input,
		Name:        "Outgoing Water Temperature",
		Description: "Outgoing water temperature (monitor display No.d9)",
		Unit:        "°C", Scale: 1, Signed: true,
	},
	{
		Address: 10, Bank: Input,
		Name:        "Selected Operating Mode",
		Description: "Selected operating mode",
		Scale:       1,
		EnumMap:     OperatingModes,
	},
	{
		Address: 11, Bank: Input,
		Name:        "Room Air Set Temperature Zone1",
		Description: "Room air set temperature of Zone1 (master remote controller)",
		Unit:        "°C", Scale: 0.1, Signed: true,
	},
	{
		Address: 12, Bank: Input,
		Name:        "Room Air Set Temperature Zone2",
		Description: "Room air set temperature of Zone2 (slave remote controller)",
		Unit:        "°C", Scale: 0.1, Signed: true,
		Capability: CapZone2,
	},
	{
		Address: 13, Bank: Input,
		Name:        "Selected DHW Operating Mode",
		Description: "Selected DHW operating mode",
		Scale:       1,
		EnumMap:     DHWModes,
		Capability:  CapDHW,
	},
	{
		Address: 14, Bank: Input,
		Name:        "Day of Week",
		Description: "Controller day of week",
		Scale:       1,
		EnumMap:     DaysOfWeek,
	},
	{
		Address: 15, Bank: Input,
		Name:        "Legionella Cycle Set Time",
		Description: "Legionella cycle set time (default 12:00)",
		Unit:        "min", Scale: 1,
		Capability: CapDHW,
	},
	{
		Address: 16, Bank: Input,
		Name:        "DHW Tank Temperature",
		Description: "DHW tank temperature (terminal 7-8)",
		Unit:        "°C", Scale: 0.1, Signed: true,
		Capability: CapDHW,
	},
	{
		Address: 17, Bank: Input,
		Name:        "Outdoor Air Temperature Additional",
		Description: "Outdoor air temperature (terminal 9-10, additional sensor)",
		Unit:        "°C", Scale: 0.1, Signed: true,
	},
	{
		Address: 18, Bank: Input,
		Name:        "Buffer Tank Temperature",
		Description: "Buffer tank temperature (terminal 11-12)",
		Unit:        "°C", Scale: 0.1, Signed: true,
		Capability: CapBuffer,
	},
	{
		Address: 19, Bank: Input,
		Name:        "Mix Water Temperature",
		Description: "Mix water temperature (terminal 13-14)",
		Unit:        "°C", Scale: 0.1, Signed: true,
	},
	{
		Address: 20, Bank: Input,
		Name:        "Humidity Sensor",
		Description: "Humidity sensor (terminal 17-18)",
		Unit:        "%", Scale: 1,
	},
	{
		Address: 32, Bank: Input,
		Name:        "Plate Heat Exchanger Temperature",
		Description: "Plate heat exchanger temperature (monitor display No.d4)",
		Unit:        "°C", Scale: 1, Signed: true,
	},
}
