package entities

type Settings struct {
	Theme             string `json:"theme"` // light|dark
	Notifications     bool   `json:"notifications"`
	WateringReminders bool   `json:"watering_reminders"`
	SprinklerControl  bool   `json:"sprinkler_control"`
	TestMode          bool   `json:"test_mode"`
}

func DefaultSettings() Settings {
	return Settings{Theme: "light", Notifications: true, WateringReminders: true, SprinklerControl: true}
}
