// internal/catalog/enums.go
package catalog

// Enumerated-value maps shared between descriptors and consumers.
// Select-style consumers translate raw integers through these
// bidirectionally; a raw value absent from a map decodes as
// "unknown value N", never as a failure.

var OperatingModes = map[int]string{
	0: "Off",
	1: "Heating",
	2: "Cooling",
	3: "DHW",
	4: "Auto",
}

var DHWModes = map[int]string{
	0: "Off",
	1: "Comfort",
	2: "Economy",
	3: "Boost",
}

var DaysOfWeek = map[int]string{
	0: "Monday",
	1: "Tuesday",
	2: "Wednesday",
	3: "Thursday",
	4: "Friday",
	5: "Saturday",
	6: "Sunday",
}

var dhwPriorityModes = map[int]string{
	0: "Unavailable",
	1: "Priority Over Heating",
	2: "Heating Priority",
}

var dhwConfigTypes = map[int]string{
	0: "HP + Heater",
	1: "HP Only",
	2: "Heater Only",
}

var pumpConfigTypes = map[int]string{
	0: "Always On",
	1: "Buffer Tank Temperature",
	2: "Sniffing Cycles",
}

var backupHeaterModes = map[int]string{
	0: "Disabled",
	1: "Replacement Mode",
	2: "Emergency Mode",
	3: "Supplementary Mode",
}

var freezeProtectionModes = map[int]string{
	0: "Disabled",
	1: "During Start-up",
	2: "During Defrost",
	3: "During Start-up and Defrost",
}

var ehsModes = map[int]string{
	0: "Disabled",
	1: "Replacement Mode",
	2: "Supplementary Mode",
}

var remoteContactModes = map[int]string{
	0: "Disabled",
	1: "On/Off Remote Contact",
	2: "EHS Alarm Input",
}

var heatCoolContactModes = map[int]string{
	0: "Disabled",
	1: "Cooling Closed / Heating Open",
	2: "Cooling Open / Heating Closed",
}

var alarmOutputModes = map[int]string{
	0: "Disabled",
	1: "Alarm",
	2: "Ambient Temperature Reached",
}

var pumpOutputModes = map[int]string{
	0: "Disabled",
	1: "Additional Water Pump",
}

var valveOutputModes = map[int]string{
	0: "Disabled",
	1: "Enabled",
}

// ErrorCodes maps controller fault codes to labels. Surfaced through the
// diagnostics path, not a register descriptor of its own.
var ErrorCodes = map[int]string{
	0:  "No Error",
	1:  "High Pressure",
	2:  "Low Pressure",
	3:  "Compressor Overload",
	4:  "Fan Motor Error",
	5:  "Water Flow Error",
	6:  "Temperature Sensor Error",
	7:  "Communication Error",
	8:  "Outdoor Sensor Error",
	9:  "Indoor Sensor Error",
	10: "Flow Sensor Error",
	11: "Return Sensor Error",
	12: "DHW Sensor Error",
	13: "Buffer Tank Sensor Error",
	14: "Mix Water Sensor Error",
	15: "Defrost Sensor Error",
}
