package schema

// DeviceClassesBinarySensor lists the binary sensor device classes.
// https://www.home-assistant.io/integrations/binary_sensor/#device-class
var DeviceClassesBinarySensor = NewEnumSet("DeviceClassesBinarySensor",
	"battery",
	"battery_charging",
	"carbon_monoxide",
	"cold",
	"connectivity",
	"door",
	"garage_door",
	"gas",
	"heat",
	"light",
	"lock",
	"moisture",
	"motion",
	"moving",
	"occupancy",
	"opening",
	"plug",
	"power",
	"presence",
	"problem",
	"running",
	"safety",
	"smoke",
	"sound",
	"tamper",
	"update",
	"vibration",
	"window",
)

// DeviceClassesSensor lists the sensor device classes.
// https://www.home-assistant.io/integrations/sensor/#device-class
var DeviceClassesSensor = NewEnumSet("DeviceClassesSensor",
	"apparent_power",
	"aqi",
	"atmospheric_pressure",
	"battery",
	"carbon_dioxide",
	"carbon_monoxide",
	"current",
	"data_rate",
	"data_size",
	"date",
	"distance",
	"duration",
	"energy",
	"energy_storage",
	"enum",
	"frequency",
	"gas",
	"humidity",
	"illuminance",
	"irradiance",
	"moisture",
	"monetary",
	"nitrogen_dioxide",
	"nitrogen_monoxide",
	"nitrous_oxide",
	"ozone",
	"ph",
	"pm1",
	"pm10",
	"pm25",
	"power",
	"power_factor",
	"precipitation",
	"precipitation_intensity",
	"pressure",
	"reactive_power",
	"signal_strength",
	"sound_pressure",
	"speed",
	"sulphur_dioxide",
	"temperature",
	"timestamp",
	"volatile_organic_compounds",
	"volatile_organic_compounds_parts",
	"voltage",
	"volume",
	"volume_flow_rate",
	"volume_storage",
	"water",
	"weight",
	"wind_speed",
)
