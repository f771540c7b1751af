package schema

// TemplatePlatform is the platform literal of the template integration.
const TemplatePlatform = "template"

// Domains the template platform is registered under.
const (
	DomainAlarmControlPanel = "alarm_control_panel"
	DomainBinarySensor      = "binary_sensor"
	DomainSensor            = "sensor"
)

const (
	alarmDocs  = "https://www.home-assistant.io/integrations/alarm_control_panel.template/"
	binaryDocs = "https://www.home-assistant.io/integrations/binary_sensor.template"
	sensorDocs = "https://www.home-assistant.io/integrations/template"
)

func action(name, description, anchor string) FieldDescriptor {
	return FieldDescriptor{
		Name:        name,
		Kind:        KindActionList,
		Description: description,
		DocURL:      alarmDocs + "#" + anchor,
	}
}

// AlarmControlPanelItem is one entry of an alarm panel's "panels" mapping.
var AlarmControlPanelItem = MustObjectSchema(ObjectSpec{
	Name: "alarm control panel item",
	Fields: []FieldDescriptor{
		action("arm_away", "Defines an action to run when the alarm is armed to away mode.", "arm_away"),
		action("arm_home", "Defines an action to run when the alarm is armed to home mode.", "arm_home"),
		action("arm_night", "Defines an action to run when the alarm is armed to night mode.", "arm_night"),
		{
			Name:        "code_arm_required",
			Kind:        KindBoolean,
			Description: "If true, the code is required to arm the alarm.",
			DocURL:      alarmDocs + "#code_arm_required",
		},
		action("disarm", "Defines an action to run when the alarm is disarmed.", "disarm"),
		{
			Name:        "name",
			Kind:        KindString,
			Description: "Name to use in the frontend.",
			DocURL:      alarmDocs + "#name",
		},
		{
			Name: "unique_id",
			Kind: KindString,
			Description: "An ID that uniquely identifies this alarm control panel. " +
				"Set this to an unique value to allow customization trough the UI.",
			DocURL: alarmDocs + "#unique_id",
		},
		{
			Name:          "value_template",
			Kind:          KindTemplate,
			ValueDefining: true,
			Description: "Defines a template to set the state of the alarm panel. Only the states " +
				"armed_away, armed_home, armed_night, disarmed, pending, triggered and unavailable are used.",
			DocURL: alarmDocs + "#value_template",
		},
	},
})

// Fields shared by binary sensor and sensor items.

func attributeTemplates(docs string) FieldDescriptor {
	return FieldDescriptor{
		Name:        "attribute_templates",
		Kind:        KindMapping,
		Values:      &FieldDescriptor{Name: "attribute", Kind: KindTemplate},
		Description: "Defines templates for attributes of the sensor.",
		DocURL:      docs + "#attribute_templates",
	}
}

func availabilityTemplate(docs string) FieldDescriptor {
	return FieldDescriptor{
		Name: "availability_template",
		Kind: KindTemplate,
		Description: "Defines a template to get the available state of the sensor. " +
			"Return true if the device is available, false otherwise.",
		DocURL: docs + "#availability_template",
	}
}

func deviceClass(docs string, classes *EnumSet) FieldDescriptor {
	return FieldDescriptor{
		Name:        "device_class",
		Kind:        KindEnum,
		Enum:        classes,
		Description: "Sets the class of the device, changing the device state and icon that is displayed on the frontend.",
		DocURL:      docs + "#device_class",
	}
}

func uniqueID(docs string) FieldDescriptor {
	return FieldDescriptor{
		Name: "unique_id",
		Kind: KindString,
		Description: "An ID that uniquely identifies this sensor. " +
			"Set this to an unique value to allow customization through the UI.",
		DocURL: docs + "#unique_id",
	}
}

var (
	entityID = FieldDescriptor{
		Name:            "entity_id",
		Kind:            KindDeprecated,
		DeprecatedSince: "0.115.0",
		Description:     "DEPRECATED as of Home Assistant 0.115.0",
	}
	entityPictureTemplate = FieldDescriptor{
		Name:        "entity_picture_template",
		Kind:        KindTemplate,
		Description: "Defines a template for the entity picture of the sensor.",
		DocURL:      binaryDocs + "#entity_picture_template",
	}
	friendlyName = FieldDescriptor{
		Name:        "friendly_name",
		Kind:        KindString,
		Description: "Name to use in the frontend.",
		DocURL:      binaryDocs + "#friendly_name",
	}
	iconTemplate = FieldDescriptor{
		Name:        "icon_template",
		Kind:        KindTemplate,
		Description: "Defines a template for the icon of the sensor.",
		DocURL:      binaryDocs + "#icon_template",
	}
)

// BinarySensorItem is one entry of a binary sensor block's "sensors" mapping.
var BinarySensorItem = MustObjectSchema(ObjectSpec{
	Name:         "binary sensor item",
	MissingValue: "required field %q is missing: a binary sensor without a state template has no purpose",
	Fields: []FieldDescriptor{
		attributeTemplates(binaryDocs),
		availabilityTemplate(binaryDocs),
		{
			Name:        "delay_off",
			Kind:        KindTimePeriod,
			Description: "The amount of time the template state must be not met before this sensor will switch to off.",
			DocURL:      binaryDocs + "#delay_off",
		},
		{
			Name:        "delay_on",
			Kind:        KindTimePeriod,
			Description: "The amount of time the template state must be met before this sensor will switch to on.",
			DocURL:      binaryDocs + "#delay_on",
		},
		deviceClass(binaryDocs, DeviceClassesBinarySensor),
		entityID,
		entityPictureTemplate,
		friendlyName,
		iconTemplate,
		uniqueID(binaryDocs),
		{
			Name:          "value_template",
			Required:      true,
			Kind:          KindTemplate,
			ValueDefining: true,
			Description:   "The sensor is on if the template evaluates as True and off otherwise.",
			DocURL:        binaryDocs + "#value_template",
		},
	},
})

// SensorItem is one entry of a sensor block's "sensors" mapping.
var SensorItem = MustObjectSchema(ObjectSpec{
	Name:         "sensor item",
	MissingValue: "required field %q is missing: a sensor without a state template has no purpose",
	Fields: []FieldDescriptor{
		attributeTemplates(sensorDocs),
		availabilityTemplate(sensorDocs),
		deviceClass(sensorDocs, DeviceClassesSensor),
		entityID,
		entityPictureTemplate,
		friendlyName,
		{
			Name:        "friendly_name_template",
			Kind:        KindTemplate,
			Overrides:   "friendly_name",
			Description: "Defines a template for the name to be used in the frontend (this overrides friendly_name).",
			DocURL:      binaryDocs + "#friendly_name",
		},
		iconTemplate,
		{
			Name: "unit_of_measurement",
			Kind: KindString,
			Description: "Defines the units of measurement of the sensor, if any. This will also influence " +
				"the graphical presentation in the history visualization as a continuous value.",
			DocURL: binaryDocs + "#unique_id",
		},
		uniqueID(sensorDocs),
		{
			Name:          "value_template",
			Required:      true,
			Kind:          KindTemplate,
			ValueDefining: true,
			Description:   "Defines a template to get the state of the sensor.",
			DocURL:        sensorDocs + "#value_template",
		},
	},
})

// AlarmControlPanelPlatform is the template platform of alarm_control_panel.
var AlarmControlPanelPlatform = MustPlatformSchema(PlatformSpec{
	Domain:     DomainAlarmControlPanel,
	Platform:   TemplatePlatform,
	Collection: "panels",
	Item:       AlarmControlPanelItem,
	Description: "The template integrations creates alarm control panels that combine integrations " +
		"or adds pre-processing logic to actions.",
	DocURL:                alarmDocs,
	CollectionDescription: "List of panels.",
	CollectionDocURL:      alarmDocs + "#panels",
})

// BinarySensorPlatform is the template platform of binary_sensor.
var BinarySensorPlatform = MustPlatformSchema(PlatformSpec{
	Domain:     DomainBinarySensor,
	Platform:   TemplatePlatform,
	Collection: "sensors",
	Item:       BinarySensorItem,
	Description: "The template platform supports binary sensors which get their values from other entities. " +
		"The state of a Template Binary Sensor can only be on or off.",
	DocURL:                binaryDocs,
	CollectionDescription: "List of sensors.",
	CollectionDocURL:      binaryDocs + "#sensors",
})

// SensorPlatform is the template platform of sensor.
var SensorPlatform = MustPlatformSchema(PlatformSpec{
	Domain:                DomainSensor,
	Platform:              TemplatePlatform,
	Collection:            "sensors",
	Item:                  SensorItem,
	Description:           "The template platform supports sensors which get their values from other entities.",
	DocURL:                sensorDocs,
	CollectionDescription: "List of sensors.",
	CollectionDocURL:      sensorDocs + "#sensors",
})
