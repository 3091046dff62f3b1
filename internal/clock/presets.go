package clock

// Preset is a well-known timezone offered when adding a clock
type Preset struct {
	Name     string
	Timezone string
}

// Presets lists one representative zone per common UTC offset
func Presets() []Preset {
	return []Preset{
		{Name: "Local", Timezone: "Local"},
		{Name: "UTC", Timezone: "UTC"},
		{Name: "Honolulu", Timezone: "Pacific/Honolulu"},
		{Name: "Anchorage", Timezone: "America/Anchorage"},
		{Name: "Los Angeles, Vancouver", Timezone: "America/Los_Angeles"},
		{Name: "Denver, Phoenix", Timezone: "America/Denver"},
		{Name: "Chicago, Mexico City", Timezone: "America/Chicago"},
		{Name: "New York, Toronto", Timezone: "America/New_York"},
		{Name: "Santiago", Timezone: "America/Santiago"},
		{Name: "St. John's", Timezone: "America/St_Johns"},
		{Name: "São Paulo, Buenos Aires", Timezone: "America/Sao_Paulo"},
		{Name: "Azores", Timezone: "Atlantic/Azores"},
		{Name: "London", Timezone: "Europe/London"},
		{Name: "Lisbon", Timezone: "Europe/Lisbon"},
		{Name: "Paris, Berlin, Madrid", Timezone: "Europe/Paris"},
		{Name: "Athens, Cairo", Timezone: "Europe/Athens"},
		{Name: "Moscow, Istanbul", Timezone: "Europe/Moscow"},
		{Name: "Tehran", Timezone: "Asia/Tehran"},
		{Name: "Dubai, Baku", Timezone: "Asia/Dubai"},
		{Name: "Kabul", Timezone: "Asia/Kabul"},
		{Name: "Karachi, Tashkent", Timezone: "Asia/Karachi"},
		{Name: "Mumbai, Delhi", Timezone: "Asia/Kolkata"},
		{Name: "Kathmandu", Timezone: "Asia/Kathmandu"},
		{Name: "Dhaka, Almaty", Timezone: "Asia/Dhaka"},
		{Name: "Bangkok, Jakarta", Timezone: "Asia/Bangkok"},
		{Name: "Beijing, Singapore", Timezone: "Asia/Shanghai"},
		{Name: "Tokyo, Seoul", Timezone: "Asia/Tokyo"},
		{Name: "Adelaide, Darwin", Timezone: "Australia/Adelaide"},
		{Name: "Sydney, Melbourne", Timezone: "Australia/Sydney"},
		{Name: "Auckland, Fiji", Timezone: "Pacific/Auckland"},
		{Name: "Chatham Islands", Timezone: "Pacific/Chatham"},
		{Name: "Kiritimati", Timezone: "Pacific/Kiritimati"},
	}
}

// PresetTimezones returns the timezone names of Presets, in order
func PresetTimezones() []string {
	presets := Presets()
	names := make([]string, 0, len(presets))
	for _, p := range presets {
		names = append(names, p.Timezone)
	}
	return names
}
