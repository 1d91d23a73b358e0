package store

const (
	KeyCustomPlants = "growsphere.plants.custom"
	KeyHiddenPlants = "growsphere.plants.hidden"
	KeyHistory      = "growsphere.history"
	KeySettings     = "growsphere.settings"
	KeyStorageProbe = "growsphere.test"
)

// KeyPrefix is shared by every key the app owns.
const KeyPrefix = "growsphere."
