package domain

// Structure is a player-ready dictation document. Its shape is owned by the
// external web player, so it is kept as a generic JSON object tree.
type Structure map[string]any

// Slides returns data.structure.slides, or nil when the path is missing.
func (s Structure) Slides() []any {
	data, _ := s["data"].(map[string]any)
	structure, _ := data["structure"].(map[string]any)
	slides, _ := structure["slides"].([]any)
	return slides
}

// AlbumFields returns data.album_store.album.fields, or nil when missing.
func (s Structure) AlbumFields() map[string]any {
	data, _ := s["data"].(map[string]any)
	store, _ := data["album_store"].(map[string]any)
	album, _ := store["album"].(map[string]any)
	fields, _ := album["fields"].(map[string]any)
	return fields
}
