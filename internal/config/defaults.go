package config

// Default returns the stock dashboard: GPS, AIS, depth, wind and audio widgets
// against the public demo server.
func Default() *Config {
	return &Config{
		Target: TargetDemo,
		Widgets: []WidgetConfig{
			{
				ID:       "gps",
				Title:    "GPS",
				Endpoint: "vessels/self/navigation/",
				Fields: []FieldConfig{
					{Label: "Num. of Satellites", Path: "gnss/satellites/value/"},
					{Label: "Latitude", Path: "position/value/", Key: "latitude"},
					{Label: "Longitude", Path: "position/value/", Key: "longitude"},
				},
			},
			{
				ID:       "ais",
				Title:    "AIS",
				Kind:     KindNearest,
				Endpoint: "vessels/",
				Fields: []FieldConfig{
					{Label: "Target MMSI"},
					{Label: "Target Class"},
					{Label: "Distance to Target (m)"},
				},
			},
			{
				ID:       "depth",
				Title:    "Depth",
				Endpoint: "vessels/self/environment/depth/",
				Parallel: true,
				Fields: []FieldConfig{
					{Label: "Below Transducer (m)", Path: "belowTransducer/value/", Transform: "trim", Args: []int{3}},
					{Label: "Transducer to Keel (m)", Path: "transducerToKeel/value/", Transform: "trim", Args: []int{3}},
					{Label: "Below Keel (m)", Path: "belowKeel/value/", Transform: "trim", Args: []int{3}},
				},
			},
			{
				ID:       "wind",
				Title:    "Wind",
				Endpoint: "vessels/self/environment/wind/",
				Parallel: true,
				Fields: []FieldConfig{
					{Label: "Apparent Speed (m/s)", Path: "speedApparent/value/", Transform: "trim", Args: []int{3}},
					{Label: "Angle from Port (rad)", Path: "angleApparent/value/", Transform: "trim", Args: []int{3}},
				},
			},
			{
				ID:       "audio",
				Title:    "Audio",
				Endpoint: "vessels/self/audio/",
				Parallel: true,
				Fields: []FieldConfig{
					{Label: "File", Path: "file/"},
					{Label: "Status", Path: "status/"},
				},
			},
		},
	}
}
