package models

// ActiveCategories maps support-need category keys to the captions shown in
// the request form. The keys are what gets persisted in the needs array.
var ActiveCategories = map[string]string{
	"grocery-pickup":      "Grocery pick-up and delivery",
	"prescription-pickup": "Prescription pick-up",
	"errand-run":          "Help with errands",
	"emotional-support":   "A phone call to check in",
	"other":               "Other",
}

func IsActiveCategory(key string) bool {
	_, ok := ActiveCategories[key]
	return ok
}
