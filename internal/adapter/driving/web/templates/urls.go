package templates

import "github.com/a-h/templ"

var exportFormats = []string{"txt", "csv", "json"}

func exportURL(format string, selected bool) templ.SafeURL {
	u := "/api/v1/export?format=" + format
	if selected {
		u += "&selected=true"
	}
	return templ.URL(u)
}

func resultAction(id, action string) templ.SafeURL {
	return templ.URL("/app/results/" + id + "/" + action)
}

func favoriteRemoveAction(id string) templ.SafeURL {
	return templ.URL("/app/favorites/" + id + "/remove")
}

func selectLabel(selected bool) string {
	if selected {
		return "Deselect"
	}
	return "Select"
}

func favoriteLabel(favorite bool) string {
	if favorite {
		return "★ Favorited"
	}
	return "☆ Favorite"
}
