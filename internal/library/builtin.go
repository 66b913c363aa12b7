package library

// Builtin palette. Templates are groups so Instantiate can position them
// with a translate transform.
var builtinDefinitions = []Definition{
	{
		Type: "motor", Label: "Motor", Width: 60, Height: 60,
		Template:   `<g data-type="motor"><circle cx="30" cy="30" r="28" fill="#cfd8dc" stroke="#455a64" stroke-width="2"/><text x="30" y="36" text-anchor="middle" font-size="18">M</text></g>`,
		Parameters: map[string]interface{}{"speed": 0.0, "running": false},
	},
	{
		Type: "led", Label: "LED", Width: 24, Height: 24,
		Template:   `<g data-type="led"><circle cx="12" cy="12" r="10" fill="#9e9e9e" stroke="#424242" stroke-width="1.5"/></g>`,
		Parameters: map[string]interface{}{"color": "#ff0000", "on": false, "blink": false},
	},
	{
		Type: "button", Label: "Button", Width: 40, Height: 40,
		Template:   `<g data-type="button"><circle cx="20" cy="20" r="18" fill="#1e88e5" stroke="#0d47a1" stroke-width="2"/><circle cx="20" cy="20" r="12" fill="#42a5f5"/></g>`,
		Parameters: map[string]interface{}{"label": "Start"},
	},
	{
		Type: "switch", Label: "Switch", Width: 48, Height: 24,
		Template:   `<g data-type="switch"><rect x="1" y="1" width="46" height="22" rx="11" fill="#b0bec5" stroke="#546e7a"/><circle cx="12" cy="12" r="9" fill="#eceff1"/></g>`,
		Parameters: map[string]interface{}{"state": false},
	},
	{
		Type: "sensor", Label: "Sensor", Width: 40, Height: 40,
		Template:   `<g data-type="sensor"><rect x="2" y="2" width="36" height="36" rx="4" fill="#fff3e0" stroke="#e65100" stroke-width="2"/><circle cx="20" cy="20" r="6" fill="#ff9800"/></g>`,
		Parameters: map[string]interface{}{"value": 0.0, "unit": "C"},
	},
	{
		Type: "display", Label: "Display", Width: 80, Height: 32,
		Template:   `<g data-type="display"><rect x="1" y="1" width="78" height="30" fill="#263238" stroke="#000"/><text x="40" y="21" text-anchor="middle" font-size="14" fill="#76ff03">0.0</text></g>`,
		Parameters: map[string]interface{}{"text": "", "value": 0.0},
	},
	{
		Type: "slider", Label: "Slider", Width: 100, Height: 20,
		Template:   `<g data-type="slider"><rect x="0" y="8" width="100" height="4" rx="2" fill="#90a4ae"/><circle cx="30" cy="10" r="8" fill="#1e88e5"/></g>`,
		Parameters: map[string]interface{}{"value": 30.0, "min": 0.0, "max": 100.0},
	},
	{
		Type: "gauge", Label: "Gauge", Width: 64, Height: 64,
		Template:   `<g data-type="gauge"><circle cx="32" cy="32" r="30" fill="#fafafa" stroke="#616161" stroke-width="2"/><line x1="32" y1="32" x2="32" y2="8" stroke="#d32f2f" stroke-width="2"/></g>`,
		Parameters: map[string]interface{}{"value": 0.0},
	},
}
