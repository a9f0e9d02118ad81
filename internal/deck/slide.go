package deck

// Helpers over decoded slide objects. Slides are plain JSON trees owned by
// the player; only layer info strings and answer arrays are touched.

func layerList(slide map[string]any) []any {
	layers, _ := slide["layers"].([]any)
	return layers
}

func findLayer(slide map[string]any, id string) map[string]any {
	for _, l := range layerList(slide) {
		layer, ok := l.(map[string]any)
		if ok && layer["id"] == id {
			return layer
		}
	}
	return nil
}

func setInfo(slide map[string]any, id, info string) {
	if layer := findLayer(slide, id); layer != nil {
		layer["info"] = info
	}
}

func removeLayer(slide map[string]any, id string) {
	layers := layerList(slide)
	kept := make([]any, 0, len(layers))
	for _, l := range layers {
		if layer, ok := l.(map[string]any); ok && layer["id"] == id {
			continue
		}
		kept = append(kept, l)
	}
	slide["layers"] = kept
}

// answerSettings returns activities[0].shapes[0].settings.
func answerSettings(slide map[string]any) map[string]any {
	activities, _ := slide["activities"].([]any)
	if len(activities) == 0 {
		return nil
	}
	activity, _ := activities[0].(map[string]any)
	shapes, _ := activity["shapes"].([]any)
	if len(shapes) == 0 {
		return nil
	}
	shape, _ := shapes[0].(map[string]any)
	settings, _ := shape["settings"].(map[string]any)
	return settings
}

func setAnswers(slide map[string]any, answers ...string) {
	settings := answerSettings(slide)
	if settings == nil {
		return
	}
	list := make([]any, len(answers))
	for i, a := range answers {
		list[i] = a
	}
	settings["textAnswerArray"] = list
}

// Answers returns the accepted answers of a dictation slide.
func Answers(slide any) []string {
	s, _ := slide.(map[string]any)
	settings := answerSettings(s)
	list, _ := settings["textAnswerArray"].([]any)
	out := make([]string, 0, len(list))
	for _, a := range list {
		if str, ok := a.(string); ok {
			out = append(out, str)
		}
	}
	return out
}

// LayerInfo returns the info string of the layer with the given id.
func LayerInfo(slide any, id string) (string, bool) {
	s, _ := slide.(map[string]any)
	layer := findLayer(s, id)
	if layer == nil {
		return "", false
	}
	info, _ := layer["info"].(string)
	return info, true
}
