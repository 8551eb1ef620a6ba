// internal/catalog/holding.go
package catalog

// Holding registers: configuration parameters, read/write (FC3/FC6).
// The address map is sparse; gaps are unimplemented on the controller and
// must never be read as part of a block spanning them.
var holdingRegisters = []Descriptor{
	// ---- Zone 1 heating ----
	{
		Address: 2, Bank: Holding,
		Name:        "Zone 1 Heating Fixed Outgoing Water Set Point",
		Description: "Heating Zone1, fixed outgoing water set point (default 45°C)",
		Unit:        "°C", Scale: 0.1, Signed: true, Writable: true,
	},
	{
		Address: 3, Bank: Holding,
		Name:        "Zone 1 Max Outgoing Water Temperature Heating",
		Description: "Max outgoing water temperature in heating (Tm1) Zone1 (default 45°C)",
		Unit:        "°C", Scale: 0.1, Signed: true, Writable: true,
	},
	{
		Address: 4, Bank: Holding,
		Name:        "Zone 1 Min Outgoing Water Temperature Heating",
		Description: "Min outgoing water temperature in heating (Tm2) Zone1 (default 30°C)",
		Unit:        "°C", Scale: 0.1, Signed: true, Writable: true,
	},
	{
		Address: 5, Bank: Holding,
		Name:        "Zone 1 Min Outdoor Temperature For Max Water Temperature",
		Description: "Min outdoor air temperature for max outgoing water temperature (Te1) Zone1 (default 0°C)",
		Unit:        "°C", Scale: 0.1, Signed: true, Writable: true,
	},
	{
		Address: 6, Bank: Holding,
		Name:        "Zone 1 Max Outdoor Temperature For Max Water Temperature",
		Description: "Max outdoor air temperature for max outgoing water temperature (Te2) Zone1 (default 20°C)",
		Unit:        "°C", Scale: 0.1, Signed: true, Writable: true,
	},

	// ---- Zone 2 heating ----
	{
		Address: 7, Bank: Holding,
		Name:        "Zone 2 Heating Fixed Outgoing Water Set Point",
		Description: "Heating Zone2, fixed outgoing water set point (default 45°C)",
		Unit:        "°C", Scale: 0.1, Signed: true, Writable: true,
		Capability: CapZone2,
	},
	{
		Address: 8, Bank: Holding,
		Name:        "Zone 2 Max Outgoing Water Temperature Heating",
		Description: "Max outgoing water temperature in heating (Tm1) Zone2 (default 45°C)",
		Unit:        "°C", Scale: 0.1, Signed: true, Writable: true,
		Capability: CapZone2,
	},
	{
		Address: 9, Bank: Holding,
		Name:        "Zone 2 Min Outgoing Water Temperature Heating",
		Description: "Min outgoing water temperature in heating (Tm2) Zone2 (default 30°C)",
		Unit:        "°C", Scale: 0.1, Signed: true, Writable: true,
		Capability: CapZone2,
	},
	{
		Address: 10, Bank: Holding,
		Name:        "Zone 2 Min Outdoor Temperature For Max Water Temperature",
		Description: "Min outdoor air temperature for max outgoing water temperature (Te1) Zone2 (default 0°C)",
		Unit:        "°C", Scale: 0.1, Signed: true, Writable: true,
		Capability: CapZone2,
	},
	{
		Address: 11, Bank: Holding,
		Name:        "Zone 2 Max Outdoor Temperature For Max Water Temperature",
		Description: "Max outdoor air temperature for max outgoing water temperature (Te2) Zone2 (default 20°C)",
		Unit:        "°C", Scale: 0.1, Signed: true, Writable: true,
		Capability: CapZone2,
	},

	// ---- Zone 1 cooling ----
	{
		Address: 12, Bank: Holding,
		Name:        "Zone 1 Cooling Fixed Outgoing Water Set Point",
		Description: "Cooling Zone1, fixed outgoing water set point (default 7°C)",
		Unit:        "°C", Scale: 0.1, Signed: true, Writable: true,
		Capability: CapCooling,
	},
	{
		Address: 13, Bank: Holding,
		Name:        "Zone 1 Max Outgoing Water Temperature Cooling",
		Description: "Max outgoing water temperature in cooling (Tm1) Zone1 (default 20°C)",
		Unit:        "°C", Scale: 0.1, Signed: true, Writable: true,
		Capability: CapCooling,
	},
	{
		Address: 14, Bank: Holding,
		Name:        "Zone 1 Min Outgoing Water Temperature Cooling",
		Description: "Min outgoing water temperature in cooling (Tm2) Zone1 (default 18°C)",
		Unit:        "°C", Scale: 0.1, Signed: true, Writable: true,
		Capability: CapCooling,
	},
	{
		Address: 15, Bank: Holding,
		Name:        "Zone 1 Min Outdoor Temperature For Cooling",
		Description: "Min outdoor air temperature for max outgoing water temperature (Te1) Zone1 cooling (default 25°C)",
		Unit:        "°C", Scale: 0.1, Signed: true, Writable: true,
		Capability: CapCooling,
	},
	{
		Address: 16, Bank: Holding,
		Name:        "Zone 1 Max Outdoor Temperature For Cooling",
		Description: "Max outdoor air temperature for max outgoing water temperature (Te2) Zone1 cooling (default 35°C)",
		Unit:        "°C", Scale: 0.1, Signed: true, Writable: true,
		Capability: CapCooling,
	},

	// ---- Zone 2 cooling ----
	{
		Address: 17, Bank: Holding,
		Name:        "Zone 2 Cooling Fixed Outgoing Water Set Point",
		Description: "Cooling Zone2, fixed outgoing water set point (default 7°C)",
		Unit:        "°C", Scale: 0.1, Signed: true, Writable: true,
		Capability: CapZone2,
	},
	{
		Address: 18, Bank: Holding,
		Name:        "Zone 2 Max Outgoing Water Temperature Cooling",
		Description: "Max outgoing water temperature in cooling (Tm1) Zone2 (default 20°C)",
		Unit:        "°C", Scale: 0.1, Signed: true, Writable: true,
		Capability: CapZone2,
	},
	{
		Address: 19, Bank: Holding,
		Name:        "Zone 2 Min Outgoing Water Temperature Cooling",
		Description: "Min outgoing water temperature in cooling (Tm2) Zone2 (default 18°C)",
		Unit:        "°C", Scale: 0.1, Signed: true, Writable: true,
		Capability: CapZone2,
	},
	{
		Address: 20, Bank: Holding,
		Name:        "Zone 2 Min Outdoor Temperature For Cooling",
		Description: "Min outdoor air temperature for max outgoing water temperature (Te1) Zone2 cooling (default 25°C)",
		Unit:        "°C", Scale: 0.1, Signed: true, Writable: true,
		Capability: CapZone2,
	},
	{
		Address: 21, Bank: Holding,
		Name:        "Zone 2 Max Outdoor Temperature For Cooling",
		Description: "Max outdoor air temperature for max outgoing water temperature (Te2) Zone2 cooling (default 35°C)",
		Unit:        "°C", Scale: 0.1, Signed: true, Writable: true,
		Capability: CapZone2,
	},

	// ---- Hysteresis ----
	{
		Address: 22, Bank: Holding,
		Name:        "Water Set Point Hysteresis Heating And DHW",
		Description: "Hysteresis of water set point in heating and DHW (default 8°C)",
		Unit:        "°C", Scale: 0.1, Writable: true,
	},
	{
		Address: 23, Bank: Holding,
		Name:        "Water Set Point Hysteresis Cooling",
		Description: "Hysteresis of water set point in cooling (default 8°C)",
		Unit:        "°C", Scale: 0.1, Writable: true,
		Capability: CapCooling,
	},

	// ---- Low tariff ----
	{
		Address: 24, Bank: Holding,
		Name:        "Low Tariff Differential Water Set Point Heating",
		Description: "Low tariff differential water set point for heating (default 5°C)",
		Unit:        "°C", Scale: 0.1, Writable: true,
	},
	{
		Address: 25, Bank: Holding,
		Name:        "Low Tariff Differential Water Set Point Cooling",
		Description: "Low tariff differential water set point for cooling (default 5°C)",
		Unit:        "°C", Scale: 0.1, Writable: true,
		Capability: CapCooling,
	},

	// ---- DHW ----
	{
		Address: 26, Bank: Holding,
		Name:        "DHW Production Priority",
		Description: "DHW production priority setting (default 0)",
		Scale:       1, Writable: true,
		EnumMap:    dhwPriorityModes,
		Capability: CapDHW,
	},
	{
		Address: 27, Bank: Holding,
		Name:        "DHW Configuration Type",
		Description: "Type of configuration to heat the DHW (default 1)",
		Scale:       1, Writable: true,
		EnumMap:    dhwConfigTypes,
		Capability: CapDHW,
	},
	{
		Address: 28, Bank: Holding,
		Name:        "DHW Comfort Set Temperature",
		Description: "DHW comfort set temperature (default 50°C)",
		Unit:        "°C", Scale: 0.1, Writable: true,
		Capability: CapDHW,
	},
	{
		Address: 29, Bank: Holding,
		Name:        "DHW Economy Set Temperature",
		Description: "DHW economy set temperature (default 40°C)",
		Unit:        "°C", Scale: 0.1, Writable: true,
		Capability: CapDHW,
	},
	{
		Address: 30, Bank: Holding,
		Name:        "DHW Set Point Hysteresis",
		Description: "DHW set point hysteresis (default 3°C)",
		Unit:        "°C", Scale: 0.1, Writable: true,
		Capability: CapDHW,
	},
	{
		Address: 31, Bank: Holding,
		Name:        "DHW Over Boost Mode Set Point",
		Description: "DHW over boost mode set point (default 60°C)",
		Unit:        "°C", Scale: 0.1, Writable: true,
		Capability: CapDHW,
	},
	{
		Address: 32, Bank: Holding,
		Name:        "Max Time For DHW Request",
		Description: "Max time for DHW request (default 60 minutes)",
		Unit:        "min", Scale: 1, Writable: true,
		Capability: CapDHW,
	},
	{
		Address: 33, Bank: Holding,
		Name:        "DHW Heater Delay From Compressor Off",
		Description: "Delay time on DHW heater from compressor off (default 30 minutes)",
		Unit:        "min", Scale: 1, Writable: true,
		Capability: CapDHW,
	},
	{
		Address: 34, Bank: Holding,
		Name:        "Outdoor Temperature To Enable DHW Heaters",
		Description: "Outdoor air temperature to enable DHW heaters (default -5°C)",
		Unit:        "°C", Scale: 0.1, Signed: true, Writable: true,
		Capability: CapDHW,
	},
	{
		Address: 35, Bank: Holding,
		Name:        "Outdoor Temperature Hysteresis To Disable DHW Heaters",
		Description: "Outdoor air temperature hysteresis to disable DHW heaters (default 5°C)",
		Unit:        "°C", Scale: 0.1, Writable: true,
		Capability: CapDHW,
	},
	{
		Address: 36, Bank: Holding,
		Name:        "Anti-Legionella Set Point",
		Description: "Anti-legionella set point",
		Unit:        "°C", Scale: 0.1, Writable: true,
		Capability: CapDHW,
	},

	// ---- Night mode and compressor timing ----
	{
		Address: 37, Bank: Holding,
		Name:        "Max Frequency Of Night Mode",
		Description: "Max frequency of night mode (default 80%, 5% steps)",
		Unit:        "%", Scale: 1, Writable: true,
	},
	{
		Address: 38, Bank: Holding,
		Name:        "Min Time Compressor On/Off",
		Description: "Min compressor on/off time (default 0 seconds)",
		Unit:        "s", Scale: 1, Writable: true,
	},
	{
		Address: 39, Bank: Holding,
		Name:        "Delay Pump Off From Compressor Off",
		Description: "Delay time pump off from compressor off (default 30 seconds)",
		Unit:        "s", Scale: 1, Writable: true,
	},
	{
		Address: 40, Bank: Holding,
		Name:        "Delay Compressor On From Pump On",
		Description: "Delay time compressor on from pump on (default 30 seconds)",
		Unit:        "s", Scale: 1, Writable: true,
	},
	{
		Address: 41, Bank: Holding,
		Name:        "Main Water Pump Configuration",
		Description: "Type of configuration of main water pump (default 0)",
		Scale:       1, Writable: true,
		EnumMap: pumpConfigTypes,
	},

	// ---- Backup heater / freeze protection / EHS ----
	{
		Address: 71, Bank: Holding,
		Name:        "Backup Heater Function",
		Description: "Backup heater type of function (default 0)",
		Scale:       1, Writable: true,
		EnumMap: backupHeaterModes,
	},
	{
		Address: 77, Bank: Holding,
		Name:        "Outdoor Temperature To Enable Backup Heaters",
		Description: "Outdoor air temperature to enable backup heaters and disable compressor (default -5°C)",
		Unit:        "°C", Scale: 0.1, Signed: true, Writable: true,
	},
	{
		Address: 78, Bank: Holding,
		Name:        "Outdoor Temperature Hysteresis To Disable Backup Heaters",
		Description: "Outdoor air temperature hysteresis to disable backup heaters (default 5°C)",
		Unit:        "°C", Scale: 0.1, Writable: true,
	},
	{
		Address: 81, Bank: Holding,
		Name:        "Freeze Protection Functions",
		Description: "Freeze protection functions (default 0)",
		Scale:       1, Writable: true,
		EnumMap: freezeProtectionModes,
	},
	{
		Address: 84, Bank: Holding,
		Name:        "EHS Function",
		Description: "External heat source type of function (default 0)",
		Scale:       1, Writable: true,
		EnumMap: ehsModes,
	},

	// ---- Terminal configuration ----
	{
		Address: 91, Bank: Holding,
		Name:        "Terminal 20-21 Remote Contact",
		Description: "Terminal 20-21: on/off remote contact or EHS alarm input (default 0)",
		Scale:       1, Writable: true,
		EnumMap: remoteContactModes,
	},
	{
		Address: 92, Bank: Holding,
		Name:        "Terminal 24-25 Heating/Cooling Contact",
		Description: "Terminal 24-25: heating/cooling mode remote contact (default 0)",
		Scale:       1, Writable: true,
		EnumMap: heatCoolContactModes,
	},
	{
		Address: 93, Bank: Holding,
		Name:        "Terminal 47 Alarm Output",
		Description: "Terminal 47: alarm configurable output (default 0)",
		Scale:       1, Writable: true,
		EnumMap: alarmOutputModes,
	},
	{
		Address: 94, Bank: Holding,
		Name:        "Terminal 48 Pump 1",
		Description: "Terminal 48: 1st additional water pump for Zone1 (default 0)",
		Scale:       1, Writable: true,
		EnumMap: pumpOutputModes,
	},
	{
		Address: 95, Bank: Holding,
		Name:        "Terminal 49 Pump 2",
		Description: "Terminal 49: 2nd additional water pump for Zone2 (default 0)",
		Scale:       1, Writable: true,
		EnumMap:    pumpOutputModes,
		Capability: CapZone2,
	},
	{
		Address: 96, Bank: Holding,
		Name:        "Terminal 50-52 DHW 3-Way Valve",
		Description: "Terminal 50-51-52: DHW 3-way valve (default 1)",
		Scale:       1, Writable: true,
		EnumMap:    valveOutputModes,
		Capability: CapDHW,
	},

	// ---- Buffer tank ----
	{
		Address: 99, Bank: Holding,
		Name:        "Buffer Tank Set Point Heating",
		Description: "Buffer tank set point for heating (default 45°C)",
		Unit:        "°C", Scale: 0.1, Writable: true,
		Capability: CapBuffer,
	},
	{
		Address: 100, Bank: Holding,
		Name:        "Buffer Tank Set Point Cooling",
		Description: "Buffer tank set point for cooling (default 7°C)",
		Unit:        "°C", Scale: 0.1, Writable: true,
		Capability: CapBuffer,
	},
}
